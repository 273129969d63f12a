package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/talan-labs/cardtriage/pkg/models"
	"github.com/talan-labs/cardtriage/test/util"
)

func TestCacheStatus(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	svc := NewCacheService(client)
	ctx := context.Background()

	seedRun(t, client, []CardCommit{
		commitFor("card-1", "Payment outage", models.CriticalityHigh),
		commitFor("card-2", "Typo in footer", models.CriticalityLow),
	})

	status, err := svc.Status(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, status.TotalTickets)
	assert.Equal(t, 2, status.CachedTickets)
	assert.Equal(t, map[string]int{"Support": 2}, status.ByBoard)
}

func TestCacheClearOne(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	svc := NewCacheService(client)
	tickets := NewTicketService(client)
	ctx := context.Background()

	seedRun(t, client, []CardCommit{
		commitFor("card-1", "Payment outage", models.CriticalityHigh),
		commitFor("card-2", "Typo in footer", models.CriticalityLow),
	})

	require.NoError(t, svc.Clear(ctx, "card-1"))

	_, err := tickets.LatestAnalysis(ctx, "card-1")
	assert.ErrorIs(t, err, ErrNotFound, "cleared ticket has no cached verdict")

	registered, err := tickets.GetByExternalID(ctx, "card-1")
	require.NoError(t, err)
	_, hasSnapshot := registered.Metadata[MetadataKeyLastAnalysisConfig]
	assert.False(t, hasSnapshot, "config snapshot goes with the verdict")
	assert.Equal(t, "Payment outage", registered.Metadata["name"], "card snapshot survives")

	history, err := tickets.History(ctx, "card-1")
	require.NoError(t, err)
	assert.Len(t, history, 1, "history is never cleared")

	// The other ticket is untouched.
	_, err = tickets.LatestAnalysis(ctx, "card-2")
	require.NoError(t, err)

	status, err := svc.Status(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, status.TotalTickets)
	assert.Equal(t, 1, status.CachedTickets)
}

func TestCacheClearAll(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	svc := NewCacheService(client)
	ctx := context.Background()

	seedRun(t, client, []CardCommit{
		commitFor("card-1", "Payment outage", models.CriticalityHigh),
		commitFor("card-2", "Typo in footer", models.CriticalityLow),
	})

	cleared, err := svc.ClearAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, cleared)

	status, err := svc.Status(ctx)
	require.NoError(t, err)
	assert.Zero(t, status.CachedTickets)

	// Clearing an already empty cache is a no-op.
	cleared, err = svc.ClearAll(ctx)
	require.NoError(t, err)
	assert.Zero(t, cleared)
}

func TestCacheClearValidation(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	svc := NewCacheService(client)
	ctx := context.Background()

	assert.True(t, IsValidationError(svc.Clear(ctx, "")))
	assert.ErrorIs(t, svc.Clear(ctx, "missing"), ErrNotFound)
}
