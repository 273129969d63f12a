package orchestrator

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/talan-labs/cardtriage/ent"
	"github.com/talan-labs/cardtriage/pkg/crypto"
	"github.com/talan-labs/cardtriage/pkg/models"
	"github.com/talan-labs/cardtriage/pkg/services"
	"github.com/talan-labs/cardtriage/test/util"
)

// fakeBoard records board actions and serves scripted cards.
type fakeBoard struct {
	mu       sync.Mutex
	cards    []models.CardPayload
	listErr  error
	moveErr  error
	labels   map[string]string
	comments map[string]string
	moves    map[string]string
}

func newFakeBoard(cards ...models.CardPayload) *fakeBoard {
	return &fakeBoard{
		cards:    cards,
		labels:   map[string]string{},
		comments: map[string]string{},
		moves:    map[string]string{},
	}
}

func (b *fakeBoard) ListCards(_ context.Context, _, _ string) ([]models.CardPayload, error) {
	return b.cards, b.listErr
}

func (b *fakeBoard) GetCard(_ context.Context, cardID, _ string) (models.CardPayload, error) {
	for _, card := range b.cards {
		if card.ID == cardID {
			return card, nil
		}
	}
	return models.CardPayload{}, errors.New("card not found")
}

func (b *fakeBoard) ApplyPriorityLabel(_ context.Context, cardID, _, level, _ string) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.labels[cardID] = level
	return nil
}

func (b *fakeBoard) AddComment(_ context.Context, cardID, text, _ string) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.comments[cardID] = text
	return nil
}

func (b *fakeBoard) MoveCard(_ context.Context, cardID, listID, _ string) error {
	if b.moveErr != nil {
		return b.moveErr
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	b.moves[cardID] = listID
	return nil
}

// fakeAnalyzer returns scripted levels by card id. Ids absent from the map
// fall back to LOW. batchErr forces the single-card reroute; skipInBatch
// leaves ids out of batch responses.
type fakeAnalyzer struct {
	mu          sync.Mutex
	levels      map[string]string
	batchErr    error
	skipInBatch map[string]bool
	batchCalls  int
	singleCalls []string
}

func (a *fakeAnalyzer) verdict(card models.CardPayload) models.CardVerdict {
	level, ok := a.levels[card.ID]
	if !ok {
		level = models.CriticalityLow
	}
	if level == "FAIL" {
		return models.CardVerdict{CardID: card.ID, CardName: card.Name, Error: "llm failure"}
	}
	return models.CardVerdict{
		CardID:           card.ID,
		CardName:         card.Name,
		Success:          true,
		CriticalityLevel: level,
		Justification:    "verdict for " + card.ID,
	}
}

func (a *fakeAnalyzer) AnalyzeCard(_ context.Context, card models.CardPayload) models.CardVerdict {
	a.mu.Lock()
	a.singleCalls = append(a.singleCalls, card.ID)
	a.mu.Unlock()
	return a.verdict(card)
}

func (a *fakeAnalyzer) AnalyzeBatch(_ context.Context, cards []models.CardPayload) (map[string]models.CardVerdict, error) {
	a.mu.Lock()
	a.batchCalls++
	a.mu.Unlock()
	if a.batchErr != nil {
		return nil, a.batchErr
	}
	verdicts := make(map[string]models.CardVerdict, len(cards))
	for _, card := range cards {
		if a.skipInBatch[card.ID] {
			continue
		}
		verdicts[card.ID] = a.verdict(card)
	}
	return verdicts, nil
}

type orchestratorFixture struct {
	client   *ent.Client
	board    *fakeBoard
	analyzer *fakeAnalyzer
	configs  *services.ConfigService
	tickets  *services.TicketService
	orch     *Orchestrator
}

func newFixture(t *testing.T, board *fakeBoard, analyzer *fakeAnalyzer) *orchestratorFixture {
	t.Helper()
	client, _ := util.SetupTestDatabase(t)
	cipher, err := crypto.NewCipher("test-secret")
	require.NoError(t, err)

	configs := services.NewConfigService(client, cipher)
	sessions := services.NewSessionService(client)
	tickets := services.NewTicketService(client)
	return &orchestratorFixture{
		client:   client,
		board:    board,
		analyzer: analyzer,
		configs:  configs,
		tickets:  tickets,
		orch:     New(board, analyzer, configs, sessions, tickets, 2, 2),
	}
}

func (f *orchestratorFixture) subscribe(t *testing.T, extra map[string]any) *ent.BoardConfig {
	t.Helper()
	data := map[string]any{
		services.ConfigKeyBoardID:   "board-1",
		services.ConfigKeyBoardName: "Support",
		services.ConfigKeyListID:    "list-1",
		services.ConfigKeyListName:  "Backlog",
		services.ConfigKeyToken:     "board-token",
	}
	for k, v := range extra {
		data[k] = v
	}
	cfg, err := f.configs.Create(context.Background(), data)
	require.NoError(t, err)
	return cfg
}

func card(id, name string) models.CardPayload {
	return models.CardPayload{ID: id, Name: name, Desc: "desc of " + id}
}

func TestRunAnalyzesAndPersists(t *testing.T) {
	board := newFakeBoard(card("c1", "Payment outage"), card("c2", "Typo in footer"), card("c3", "Slow exports"))
	analyzer := &fakeAnalyzer{levels: map[string]string{
		"c1": models.CriticalityHigh,
		"c2": models.CriticalityLow,
		"c3": models.CriticalityMedium,
	}}
	f := newFixture(t, board, analyzer)
	f.subscribe(t, nil)
	ctx := context.Background()

	report, err := f.orch.Run(ctx, models.AnalyzeListRequest{BoardID: "board-1", ListID: "list-1"})
	require.NoError(t, err)

	assert.Equal(t, "Support", report.BoardName, "names resolved from the config")
	assert.Equal(t, "Backlog", report.ListName)
	assert.True(t, strings.HasPrefix(report.SessionReference, "analyse_"))
	assert.True(t, report.Persisted)
	assert.Equal(t, 3, report.TicketsSaved)

	assert.Equal(t, 3, report.Summary.TotalCards)
	assert.Equal(t, 3, report.Summary.Analyzed)
	assert.Equal(t, 1, report.Summary.High)
	assert.Equal(t, 1, report.Summary.Medium)
	assert.Equal(t, 1, report.Summary.Low)
	assert.Zero(t, report.Summary.Errors)
	assert.InDelta(t, 100.0, report.Summary.SuccessRate, 0.001)

	// Board actions: every actionable card gets label and comment.
	assert.Equal(t, models.CriticalityHigh, board.labels["c1"])
	assert.Equal(t, "verdict for c2", board.comments["c2"])
	assert.Empty(t, board.moves, "no target list configured, no moves")

	// History landed for all three.
	history, err := f.tickets.History(ctx, "c1")
	require.NoError(t, err)
	require.Len(t, history, 1)
	assert.Equal(t, "high", history[0].CriticalityLevel)
}

func TestRunSecondPassServesCache(t *testing.T) {
	board := newFakeBoard(card("c1", "Payment outage"))
	analyzer := &fakeAnalyzer{levels: map[string]string{"c1": models.CriticalityHigh}}
	f := newFixture(t, board, analyzer)
	f.subscribe(t, nil)
	ctx := context.Background()

	first, err := f.orch.Run(ctx, models.AnalyzeListRequest{BoardID: "board-1", ListID: "list-1"})
	require.NoError(t, err)
	require.False(t, first.Results[0].FromCache)

	second, err := f.orch.Run(ctx, models.AnalyzeListRequest{BoardID: "board-1", ListID: "list-1"})
	require.NoError(t, err)
	require.Len(t, second.Results, 1)
	assert.True(t, second.Results[0].FromCache)
	assert.Equal(t, models.CriticalityHigh, second.Results[0].CriticalityLevel, "cached level served uppercase")
	assert.False(t, second.Persisted, "a fully cached run writes nothing")
	assert.Equal(t, 1, analyzer.batchCalls, "no second LLM call")

	history, err := f.tickets.History(ctx, "c1")
	require.NoError(t, err)
	assert.Len(t, history, 1)
}

func TestRunForceBypassesCache(t *testing.T) {
	board := newFakeBoard(card("c1", "Payment outage"))
	analyzer := &fakeAnalyzer{levels: map[string]string{"c1": models.CriticalityHigh}}
	f := newFixture(t, board, analyzer)
	f.subscribe(t, nil)
	ctx := context.Background()

	_, err := f.orch.Run(ctx, models.AnalyzeListRequest{BoardID: "board-1", ListID: "list-1"})
	require.NoError(t, err)

	report, err := f.orch.Run(ctx, models.AnalyzeListRequest{BoardID: "board-1", ListID: "list-1", Force: true})
	require.NoError(t, err)
	assert.False(t, report.Results[0].FromCache)
	assert.Equal(t, 2, analyzer.batchCalls)

	history, err := f.tickets.History(ctx, "c1")
	require.NoError(t, err)
	assert.Len(t, history, 2, "forced pass appends history")
}

func TestRunConfigChangeInvalidatesCache(t *testing.T) {
	board := newFakeBoard(card("c1", "Payment outage"))
	analyzer := &fakeAnalyzer{levels: map[string]string{"c1": models.CriticalityHigh}}
	f := newFixture(t, board, analyzer)
	cfg := f.subscribe(t, nil)
	ctx := context.Background()

	_, err := f.orch.Run(ctx, models.AnalyzeListRequest{BoardID: "board-1", ListID: "list-1"})
	require.NoError(t, err)

	// A functional config change invalidates the snapshot...
	_, err = f.configs.SetTargetList(ctx, cfg.ID, "list-critical", "Critiques")
	require.NoError(t, err)

	report, err := f.orch.Run(ctx, models.AnalyzeListRequest{BoardID: "board-1", ListID: "list-1"})
	require.NoError(t, err)
	assert.False(t, report.Results[0].FromCache)
	assert.Equal(t, 2, analyzer.batchCalls)
	assert.Equal(t, "list-critical", board.moves["c1"], "new target list applied on the fresh pass")

	// ...while a token rotation alone does not.
	data := map[string]any{
		services.ConfigKeyBoardID:        "board-1",
		services.ConfigKeyBoardName:      "Support",
		services.ConfigKeyListID:         "list-1",
		services.ConfigKeyListName:       "Backlog",
		services.ConfigKeyToken:          "rotated-token",
		services.ConfigKeyTargetListID:   "list-critical",
		services.ConfigKeyTargetListName: "Critiques",
	}
	_, err = f.configs.Update(ctx, cfg.ID, data)
	require.NoError(t, err)

	report, err = f.orch.Run(ctx, models.AnalyzeListRequest{BoardID: "board-1", ListID: "list-1"})
	require.NoError(t, err)
	assert.True(t, report.Results[0].FromCache, "token is excluded from the cache key")
	assert.Equal(t, 2, analyzer.batchCalls)
}

func TestRunOutOfContextNotPersisted(t *testing.T) {
	board := newFakeBoard(card("c1", "Recette de cuisine"), card("c2", "Payment outage"))
	analyzer := &fakeAnalyzer{levels: map[string]string{
		"c1": models.CriticalityOutOfContext,
		"c2": models.CriticalityHigh,
	}}
	f := newFixture(t, board, analyzer)
	f.subscribe(t, nil)
	ctx := context.Background()

	report, err := f.orch.Run(ctx, models.AnalyzeListRequest{BoardID: "board-1", ListID: "list-1"})
	require.NoError(t, err)

	assert.Equal(t, 1, report.TicketsSaved, "abstentions never reach the registry")
	_, hasLabel := board.labels["c1"]
	assert.False(t, hasLabel, "no board action for an abstention")
	assert.NotEmpty(t, board.labels["c2"])

	_, err = f.tickets.GetByExternalID(ctx, "c1")
	assert.ErrorIs(t, err, services.ErrNotFound)
}

func TestRunBatchFailureReroutesToSingle(t *testing.T) {
	board := newFakeBoard(card("c1", "Payment outage"), card("c2", "Typo in footer"))
	analyzer := &fakeAnalyzer{
		levels:   map[string]string{"c1": models.CriticalityHigh, "c2": models.CriticalityLow},
		batchErr: errors.New("unparsable batch"),
	}
	f := newFixture(t, board, analyzer)
	f.subscribe(t, nil)

	report, err := f.orch.Run(context.Background(), models.AnalyzeListRequest{BoardID: "board-1", ListID: "list-1"})
	require.NoError(t, err)

	assert.Equal(t, 2, report.Summary.Analyzed)
	assert.ElementsMatch(t, []string{"c1", "c2"}, analyzer.singleCalls)
}

func TestRunMissingBatchVerdictRetriedIndividually(t *testing.T) {
	board := newFakeBoard(card("c1", "Payment outage"), card("c2", "Typo in footer"))
	analyzer := &fakeAnalyzer{
		levels:      map[string]string{"c1": models.CriticalityHigh, "c2": models.CriticalityLow},
		skipInBatch: map[string]bool{"c2": true},
	}
	f := newFixture(t, board, analyzer)
	f.subscribe(t, nil)

	report, err := f.orch.Run(context.Background(), models.AnalyzeListRequest{BoardID: "board-1", ListID: "list-1"})
	require.NoError(t, err)

	assert.Equal(t, 2, report.Summary.Analyzed)
	assert.Equal(t, []string{"c2"}, analyzer.singleCalls)
}

func TestRunCardFailureRecordedNotPersisted(t *testing.T) {
	board := newFakeBoard(card("c1", "Payment outage"), card("c2", "Typo in footer"))
	analyzer := &fakeAnalyzer{levels: map[string]string{
		"c1": "FAIL",
		"c2": models.CriticalityLow,
	}}
	f := newFixture(t, board, analyzer)
	f.subscribe(t, nil)
	ctx := context.Background()

	report, err := f.orch.Run(ctx, models.AnalyzeListRequest{BoardID: "board-1", ListID: "list-1"})
	require.NoError(t, err)

	assert.Equal(t, 1, report.Summary.Errors)
	assert.Equal(t, 1, report.Summary.Analyzed)
	assert.InDelta(t, 50.0, report.Summary.SuccessRate, 0.001)
	assert.Equal(t, 1, report.TicketsSaved)

	_, err = f.tickets.GetByExternalID(ctx, "c1")
	assert.ErrorIs(t, err, services.ErrNotFound, "failed cards never enter the registry")
}

func TestRunMoveTargetApplied(t *testing.T) {
	board := newFakeBoard(card("c1", "Payment outage"))
	analyzer := &fakeAnalyzer{levels: map[string]string{"c1": models.CriticalityHigh}}
	f := newFixture(t, board, analyzer)
	f.subscribe(t, map[string]any{
		services.ConfigKeyTargetListID:   "list-critical",
		services.ConfigKeyTargetListName: "Critiques",
	})
	ctx := context.Background()

	report, err := f.orch.Run(ctx, models.AnalyzeListRequest{BoardID: "board-1", ListID: "list-1"})
	require.NoError(t, err)

	actions := report.Results[0].Actions
	assert.Equal(t, true, actions["card_moved"])
	assert.Equal(t, "list-critical", actions["target_list_id"])
	assert.Equal(t, "list-critical", board.moves["c1"])

	registered, err := f.tickets.GetByExternalID(ctx, "c1")
	require.NoError(t, err)
	assert.Equal(t, "list-critical", registered.Metadata["list_id"])
}

func TestRunMoveFailureRecordedInActions(t *testing.T) {
	board := newFakeBoard(card("c1", "Payment outage"))
	board.moveErr = errors.New("list gone")
	analyzer := &fakeAnalyzer{levels: map[string]string{"c1": models.CriticalityHigh}}
	f := newFixture(t, board, analyzer)
	f.subscribe(t, map[string]any{services.ConfigKeyTargetListID: "list-critical"})
	ctx := context.Background()

	report, err := f.orch.Run(ctx, models.AnalyzeListRequest{BoardID: "board-1", ListID: "list-1"})
	require.NoError(t, err)

	actions := report.Results[0].Actions
	assert.Equal(t, false, actions["card_moved"])
	assert.Contains(t, actions["move_error"], "list gone")
	assert.Equal(t, true, actions["label_added"], "earlier actions still applied")

	registered, err := f.tickets.GetByExternalID(ctx, "c1")
	require.NoError(t, err)
	assert.Equal(t, "list-1", registered.Metadata["list_id"], "failed move never reaches the snapshot")
}

func TestRunValidation(t *testing.T) {
	f := newFixture(t, newFakeBoard(), &fakeAnalyzer{})
	ctx := context.Background()

	_, err := f.orch.Run(ctx, models.AnalyzeListRequest{ListID: "list-1", Token: "tok"})
	assert.True(t, services.IsValidationError(err))
	_, err = f.orch.Run(ctx, models.AnalyzeListRequest{BoardID: "board-1", Token: "tok"})
	assert.True(t, services.IsValidationError(err))

	// No config and no token: nothing to authenticate with.
	_, err = f.orch.Run(ctx, models.AnalyzeListRequest{BoardID: "board-1", ListID: "list-1"})
	assert.True(t, services.IsValidationError(err))
}

func TestRunRequestTokenOverridesConfig(t *testing.T) {
	board := newFakeBoard(card("c1", "Payment outage"))
	analyzer := &fakeAnalyzer{levels: map[string]string{"c1": models.CriticalityLow}}
	f := newFixture(t, board, analyzer)
	// Unsubscribed list: the request token alone carries the run.
	report, err := f.orch.Run(context.Background(), models.AnalyzeListRequest{
		BoardID: "board-9",
		ListID:  "list-9",
		Token:   "caller-token",
	})
	require.NoError(t, err)
	assert.Equal(t, 1, report.Summary.Analyzed)
	assert.True(t, report.Persisted)
}

func TestRunEmptyList(t *testing.T) {
	f := newFixture(t, newFakeBoard(), &fakeAnalyzer{})
	f.subscribe(t, nil)

	report, err := f.orch.Run(context.Background(), models.AnalyzeListRequest{BoardID: "board-1", ListID: "list-1"})
	require.NoError(t, err)
	assert.Empty(t, report.Results)
	assert.Zero(t, report.Summary.TotalCards)
	assert.False(t, report.Persisted)
}

func TestRunBoardFetchFailureFailsRun(t *testing.T) {
	board := newFakeBoard()
	board.listErr = errors.New("board unreachable")
	f := newFixture(t, board, &fakeAnalyzer{})
	f.subscribe(t, nil)

	_, err := f.orch.Run(context.Background(), models.AnalyzeListRequest{BoardID: "board-1", ListID: "list-1"})
	require.ErrorContains(t, err, "board unreachable")
}

func TestRunReusesProvidedScope(t *testing.T) {
	board := newFakeBoard(card("c1", "Payment outage"))
	analyzer := &fakeAnalyzer{levels: map[string]string{"c1": models.CriticalityHigh}}
	f := newFixture(t, board, analyzer)
	f.subscribe(t, nil)
	ctx := context.Background()

	sessions := services.NewSessionService(f.client)
	session, err := sessions.Create(ctx, false)
	require.NoError(t, err)
	scope, err := sessions.AddScope(ctx, session.ID, "")
	require.NoError(t, err)

	report, err := f.orch.Run(ctx, models.AnalyzeListRequest{
		BoardID:        "board-1",
		ListID:         "list-1",
		AnalyseBoardID: scope.ID,
	})
	require.NoError(t, err)
	assert.Equal(t, session.Reference, report.SessionReference)

	count, err := f.client.AnalysisSession.Query().Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, count, "no extra session is opened")
}

func TestAnalyzeCardAdHoc(t *testing.T) {
	board := newFakeBoard(card("c1", "Payment outage"))
	analyzer := &fakeAnalyzer{levels: map[string]string{"c1": models.CriticalityHigh}}
	f := newFixture(t, board, analyzer)
	ctx := context.Background()

	verdict, err := f.orch.AnalyzeCard(ctx, "c1", "tok")
	require.NoError(t, err)
	assert.Equal(t, models.CriticalityHigh, verdict.CriticalityLevel)

	// Ad hoc analysis leaves no trace.
	count, err := f.client.AnalysisSession.Query().Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, count)
	assert.Empty(t, board.labels)

	_, err = f.orch.AnalyzeCard(ctx, "", "tok")
	assert.True(t, services.IsValidationError(err))
	_, err = f.orch.AnalyzeCard(ctx, "c1", "")
	assert.True(t, services.IsValidationError(err))
}

func TestChunkCards(t *testing.T) {
	cards := []models.CardPayload{card("a", ""), card("b", ""), card("c", ""), card("d", ""), card("e", "")}
	batches := chunkCards(cards, 2)
	require.Len(t, batches, 3)
	assert.Len(t, batches[0], 2)
	assert.Len(t, batches[2], 1)
}
