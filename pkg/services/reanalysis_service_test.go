package services

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/talan-labs/cardtriage/pkg/models"
	"github.com/talan-labs/cardtriage/test/util"
)

// scriptedReanalyzer returns a fixed verdict and records what it was fed.
type scriptedReanalyzer struct {
	level     string
	success   bool
	lastCard  models.CardPayload
	lastPrev  *models.PreviousAnalysis
	callCount int
}

func (r *scriptedReanalyzer) Reanalyze(_ context.Context, card models.CardPayload, previous *models.PreviousAnalysis) models.CardVerdict {
	r.callCount++
	r.lastCard = card
	r.lastPrev = previous
	if !r.success {
		return models.CardVerdict{CardID: card.ID, CardName: card.Name, Error: "provider down"}
	}
	return models.CardVerdict{
		CardID:           card.ID,
		CardName:         card.Name,
		Success:          true,
		CriticalityLevel: r.level,
		Justification:    "fresh look at " + card.ID,
	}
}

func TestReanalyzePersistsNewVerdict(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	ctx := context.Background()

	seedRun(t, client, []CardCommit{commitFor("card-1", "Payment outage", models.CriticalityLow)})

	sessions := NewSessionService(client)
	tickets := NewTicketService(client)
	fake := &scriptedReanalyzer{level: models.CriticalityHigh, success: true}
	svc := NewReanalysisService(client, sessions, tickets, fake)

	result, err := svc.Reanalyze(ctx, "card-1")
	require.NoError(t, err)

	assert.Equal(t, "card-1", result.TicketID)
	assert.Equal(t, models.CriticalityHigh, result.CriticalityLevel)
	assert.True(t, result.Changed, "LOW to HIGH is a change")
	assert.True(t, result.Persisted)
	assert.True(t, strings.HasPrefix(result.SessionReference, "REANALYSE-"))

	// The previous verdict reached the analyzer, rebuilt from the snapshot.
	require.NotNil(t, fake.lastPrev)
	assert.Equal(t, "low", fake.lastPrev.CriticalityLevel)
	assert.Equal(t, "Payment outage", fake.lastCard.Name)
	assert.Equal(t, "card-1", fake.lastCard.ID)

	history, err := tickets.History(ctx, "card-1")
	require.NoError(t, err)
	require.Len(t, history, 2)
	assert.Equal(t, "high", history[0].CriticalityLevel, "newest first")
	assert.True(t, history[0].Reanalyse)

	cached, err := tickets.LatestAnalysis(ctx, "card-1")
	require.NoError(t, err)
	assert.Equal(t, "high", cached["criticality_level"])
	assert.Equal(t, result.SessionReference, cached["session_reference"])
}

func TestReanalyzeSameLevelNotChanged(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	ctx := context.Background()

	seedRun(t, client, []CardCommit{commitFor("card-1", "Payment outage", models.CriticalityMedium)})

	fake := &scriptedReanalyzer{level: models.CriticalityMedium, success: true}
	svc := NewReanalysisService(client, NewSessionService(client), NewTicketService(client), fake)

	result, err := svc.Reanalyze(ctx, "card-1")
	require.NoError(t, err)
	assert.False(t, result.Changed)
	assert.True(t, result.Persisted)
}

func TestReanalyzeOutOfContextNotPersisted(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	ctx := context.Background()

	seedRun(t, client, []CardCommit{commitFor("card-1", "Payment outage", models.CriticalityLow)})

	tickets := NewTicketService(client)
	fake := &scriptedReanalyzer{level: models.CriticalityOutOfContext, success: true}
	svc := NewReanalysisService(client, NewSessionService(client), tickets, fake)

	result, err := svc.Reanalyze(ctx, "card-1")
	require.NoError(t, err)
	assert.Equal(t, models.CriticalityOutOfContext, result.CriticalityLevel)
	assert.False(t, result.Persisted)
	assert.Empty(t, result.SessionReference)

	history, err := tickets.History(ctx, "card-1")
	require.NoError(t, err)
	assert.Len(t, history, 1, "abstention leaves the history untouched")

	cached, err := tickets.LatestAnalysis(ctx, "card-1")
	require.NoError(t, err)
	assert.Equal(t, "low", cached["criticality_level"], "cached verdict survives")

	reanalyses, err := client.AnalysisSession.Query().Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, reanalyses, "no reanalyse session is opened")
}

func TestReanalyzeFailureSurfaces(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	ctx := context.Background()

	seedRun(t, client, []CardCommit{commitFor("card-1", "Payment outage", models.CriticalityLow)})

	fake := &scriptedReanalyzer{success: false}
	svc := NewReanalysisService(client, NewSessionService(client), NewTicketService(client), fake)

	_, err := svc.Reanalyze(ctx, "card-1")
	require.ErrorContains(t, err, "provider down")
}

func TestReanalyzeUnknownTicket(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	svc := NewReanalysisService(client, NewSessionService(client), NewTicketService(client), &scriptedReanalyzer{})

	_, err := svc.Reanalyze(context.Background(), "never-seen")
	assert.ErrorIs(t, err, ErrNotFound)
}
