package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/talan-labs/cardtriage/pkg/models"
	"github.com/talan-labs/cardtriage/test/util"
)

func TestStatisticsEmptyCorpus(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	svc := NewStatisticsService(client)

	stats, err := svc.Global(context.Background())
	require.NoError(t, err)
	assert.Zero(t, stats.TotalTickets)
	assert.Zero(t, stats.TotalSessions)
	assert.Zero(t, stats.TotalAnalyses)
	assert.Nil(t, stats.LastAnalysisAt)
	assert.Empty(t, stats.ByBoard)
}

func TestStatisticsGlobal(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	svc := NewStatisticsService(client)
	ctx := context.Background()

	seedRun(t, client, []CardCommit{
		commitFor("card-1", "Payment outage", models.CriticalityHigh),
		commitFor("card-2", "Typo in footer", models.CriticalityLow),
		commitFor("card-3", "Slow dashboard", models.CriticalityMedium),
	})
	// A reanalysis run over an already tracked card.
	sessions := NewSessionService(client)
	reanalyse, err := sessions.Create(ctx, true)
	require.NoError(t, err)
	scope, err := sessions.AddScope(ctx, reanalyse.ID, "")
	require.NoError(t, err)
	_, err = NewTicketService(client).CommitRun(ctx, CommitRunRequest{
		SessionID:        reanalyse.ID,
		SessionReference: reanalyse.Reference,
		ScopeID:          scope.ID,
		ListID:           "list-1",
		Cards:            []CardCommit{commitFor("card-1", "Payment outage", models.CriticalityHigh)},
	})
	require.NoError(t, err)

	stats, err := svc.Global(ctx)
	require.NoError(t, err)

	assert.Equal(t, 3, stats.TotalTickets)
	assert.Equal(t, 2, stats.TotalSessions)
	assert.Equal(t, 1, stats.TotalReanalyses)
	assert.Equal(t, 4, stats.TotalAnalyses)
	assert.Equal(t, 2, stats.Criticality.High)
	assert.Equal(t, 1, stats.Criticality.Medium)
	assert.Equal(t, 1, stats.Criticality.Low)
	assert.Equal(t, map[string]int{"Support": 3}, stats.ByBoard)
	require.NotNil(t, stats.LastAnalysisAt)
}
