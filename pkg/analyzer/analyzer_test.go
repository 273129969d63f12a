package analyzer

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/talan-labs/cardtriage/pkg/grounding"
	"github.com/talan-labs/cardtriage/pkg/models"
)

type fakeGenerator struct {
	response string
	err      error
	prompts  []string
}

func (g *fakeGenerator) Generate(_ context.Context, prompt string) (string, error) {
	g.prompts = append(g.prompts, prompt)
	return g.response, g.err
}

type fakeContextSource struct {
	appContext string
	readErr    error
	similar    []grounding.CardTrace
	traces     []string
}

func (s *fakeContextSource) ReadContext(context.Context) (string, error) {
	return s.appContext, s.readErr
}

func (s *fakeContextSource) SimilarCards(context.Context, string, int) []grounding.CardTrace {
	return s.similar
}

func (s *fakeContextSource) SaveAnalysisTrace(_ context.Context, card models.CardPayload, criticality string) {
	s.traces = append(s.traces, card.ID+":"+criticality)
}

func testCard(id string) models.CardPayload {
	return models.CardPayload{ID: id, Name: "Card " + id, Desc: "description of " + id}
}

func TestAnalyzeCardLevels(t *testing.T) {
	tests := []struct {
		name     string
		response string
		level    string
	}{
		{name: "high", response: "Criticality Level: HIGH\nJustification: paiement bloqué", level: models.CriticalityHigh},
		{name: "medium", response: "Le niveau est MEDIUM car la fonctionnalité est dégradée", level: models.CriticalityMedium},
		{name: "low", response: "criticality level: low", level: models.CriticalityLow},
		{name: "high wins over low mention", response: "Pas LOW: HIGH, incident majeur", level: models.CriticalityHigh},
		{name: "unrecognizable defaults to low", response: "je ne sais pas", level: models.CriticalityLow},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			docs := &fakeContextSource{appContext: "Application de paiement"}
			a := New(&fakeGenerator{response: tc.response}, docs)

			verdict := a.AnalyzeCard(context.Background(), testCard("c1"))
			assert.True(t, verdict.Success)
			assert.Equal(t, tc.level, verdict.CriticalityLevel)
			assert.Equal(t, "c1", verdict.CardID)
		})
	}
}

func TestAnalyzeCardOutOfContextWins(t *testing.T) {
	docs := &fakeContextSource{appContext: "Application de paiement"}
	a := New(&fakeGenerator{response: "HIGH mais en fait OUT_OF_CONTEXT"}, docs)

	verdict := a.AnalyzeCard(context.Background(), testCard("c1"))
	assert.True(t, verdict.Success)
	assert.Equal(t, models.CriticalityOutOfContext, verdict.CriticalityLevel)
	assert.Equal(t, outOfContextJustification, verdict.Justification)
	assert.Empty(t, docs.traces, "out-of-context verdicts must not enter the similarity corpus")
}

func TestAnalyzeCardEmptyCorpusDefaultsLow(t *testing.T) {
	gen := &fakeGenerator{response: "HIGH"}
	docs := &fakeContextSource{readErr: grounding.ErrNoDocuments}
	a := New(gen, docs)

	verdict := a.AnalyzeCard(context.Background(), testCard("c1"))
	assert.True(t, verdict.Success)
	assert.Equal(t, models.CriticalityLow, verdict.CriticalityLevel)
	assert.Equal(t, defaultLowJustification, verdict.Justification)
	assert.Empty(t, gen.prompts, "no LLM call without a grounding corpus")
}

func TestAnalyzeCardGeneratorFailure(t *testing.T) {
	docs := &fakeContextSource{appContext: "ctx"}
	a := New(&fakeGenerator{err: errors.New("provider down")}, docs)

	verdict := a.AnalyzeCard(context.Background(), testCard("c1"))
	assert.False(t, verdict.Success)
	assert.Equal(t, models.CriticalityLow, verdict.CriticalityLevel)
	assert.Contains(t, verdict.Error, "provider down")
	assert.Empty(t, docs.traces)
}

func TestAnalyzeCardSavesTrace(t *testing.T) {
	docs := &fakeContextSource{appContext: "ctx"}
	a := New(&fakeGenerator{response: "MEDIUM"}, docs)

	a.AnalyzeCard(context.Background(), testCard("c1"))
	assert.Equal(t, []string{"c1:MEDIUM"}, docs.traces)
}

func TestAnalyzeCardPromptIncludesSimilarCards(t *testing.T) {
	docs := &fakeContextSource{
		appContext: "ctx",
		similar: []grounding.CardTrace{
			{CardID: "old-1", Content: "Card: Ancienne panne | Criticité: HIGH"},
		},
	}
	gen := &fakeGenerator{response: "LOW"}
	a := New(gen, docs)

	a.AnalyzeCard(context.Background(), testCard("c1"))
	require.Len(t, gen.prompts, 1)
	assert.Contains(t, gen.prompts[0], "Ancienne panne")
	assert.Contains(t, gen.prompts[0], "Card c1")
}

func TestReanalyzePromptIncludesPreviousVerdict(t *testing.T) {
	gen := &fakeGenerator{response: "HIGH"}
	a := New(gen, &fakeContextSource{appContext: "ctx"})

	previous := &models.PreviousAnalysis{
		CriticalityLevel: models.CriticalityLow,
		Justification:    "rien d'urgent à l'époque",
	}
	verdict := a.Reanalyze(context.Background(), testCard("c1"), previous)
	assert.Equal(t, models.CriticalityHigh, verdict.CriticalityLevel)
	require.Len(t, gen.prompts, 1)
	assert.Contains(t, gen.prompts[0], "LOW")
	assert.Contains(t, gen.prompts[0], "rien d'urgent")
}

func TestAnalyzeBatch(t *testing.T) {
	response := "Voici l'analyse:\n```json\n" + `[
		{"id": "c1", "criticality_level": "HIGH", "justification": "incident de paiement"},
		{"id": "c2", "criticality_level": "low", "justification": "cosmétique"},
		{"id": "c3", "criticality_level": "OUT_OF_CONTEXT", "justification": "ignored"},
		{"id": "ghost", "criticality_level": "HIGH", "justification": "unknown card"}
	]` + "\n```"

	docs := &fakeContextSource{appContext: "ctx"}
	a := New(&fakeGenerator{response: response}, docs)

	cards := []models.CardPayload{testCard("c1"), testCard("c2"), testCard("c3"), testCard("c4")}
	verdicts, err := a.AnalyzeBatch(context.Background(), cards)
	require.NoError(t, err)

	require.Len(t, verdicts, 3)
	assert.Equal(t, models.CriticalityHigh, verdicts["c1"].CriticalityLevel)
	assert.Equal(t, "incident de paiement", verdicts["c1"].Justification)
	assert.Equal(t, models.CriticalityLow, verdicts["c2"].CriticalityLevel, "levels are normalized to upper case")
	assert.Equal(t, models.CriticalityOutOfContext, verdicts["c3"].CriticalityLevel)
	assert.Equal(t, outOfContextJustification, verdicts["c3"].Justification)

	_, found := verdicts["c4"]
	assert.False(t, found, "missing cards are left for the single-card retry")
	_, found = verdicts["ghost"]
	assert.False(t, found, "verdicts for unknown ids are dropped")

	assert.ElementsMatch(t, []string{"c1:HIGH", "c2:LOW"}, docs.traces)
}

func TestAnalyzeBatchUnparsableResponse(t *testing.T) {
	a := New(&fakeGenerator{response: "désolé, pas de JSON ici"}, &fakeContextSource{appContext: "ctx"})

	_, err := a.AnalyzeBatch(context.Background(), []models.CardPayload{testCard("c1")})
	require.Error(t, err)
}

func TestAnalyzeBatchSkipsUnknownLevel(t *testing.T) {
	response := `[{"id": "c1", "criticality_level": "CRITICAL", "justification": "x"}]`
	a := New(&fakeGenerator{response: response}, &fakeContextSource{appContext: "ctx"})

	verdicts, err := a.AnalyzeBatch(context.Background(), []models.CardPayload{testCard("c1")})
	require.NoError(t, err)
	assert.Empty(t, verdicts, "unrecognized levels fall through to the single-card path")
}

func TestAnalyzeBatchEmptyCorpus(t *testing.T) {
	gen := &fakeGenerator{}
	a := New(gen, &fakeContextSource{readErr: grounding.ErrNoDocuments})

	verdicts, err := a.AnalyzeBatch(context.Background(), []models.CardPayload{testCard("c1"), testCard("c2")})
	require.NoError(t, err)
	require.Len(t, verdicts, 2)
	for _, verdict := range verdicts {
		assert.Equal(t, models.CriticalityLow, verdict.CriticalityLevel)
		assert.Equal(t, defaultLowJustification, verdict.Justification)
	}
	assert.Empty(t, gen.prompts)
}

func TestAnalyzeBatchEmptyInput(t *testing.T) {
	gen := &fakeGenerator{}
	a := New(gen, &fakeContextSource{appContext: "ctx"})

	verdicts, err := a.AnalyzeBatch(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, verdicts)
	assert.Empty(t, gen.prompts)
}

func TestNoSimilarCardsSection(t *testing.T) {
	gen := &fakeGenerator{response: "LOW"}
	a := New(gen, &fakeContextSource{appContext: "ctx"})

	a.AnalyzeCard(context.Background(), testCard("c1"))
	require.Len(t, gen.prompts, 1)
	assert.True(t, strings.Contains(gen.prompts[0], noSimilarCards))
}
