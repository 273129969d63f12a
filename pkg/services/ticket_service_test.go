package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/talan-labs/cardtriage/pkg/models"
	"github.com/talan-labs/cardtriage/test/util"
)

func TestCommitRunRegistersTicketsAndHistory(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	svc := NewTicketService(client)
	ctx := context.Background()

	commit := commitFor("card-1", "Payment outage", models.CriticalityHigh)
	commit.MovedToListID = "list-critical"
	commit.MovedToListName = "Critiques"
	session, _ := seedRun(t, client, []CardCommit{commit})

	registered, err := svc.GetByExternalID(ctx, "card-1")
	require.NoError(t, err)
	assert.Equal(t, "Support", registered.BoardName)
	assert.Equal(t, "Payment outage", registered.Metadata["name"])
	assert.Equal(t, "list-critical", registered.Metadata["list_id"], "move is reflected in the snapshot")
	assert.Equal(t, "Critiques", registered.Metadata["list_name"])
	assert.NotEmpty(t, registered.Metadata["last_moved_at"])
	assert.Equal(t, `{"board_id":"board-1","list_id":"list-1"}`, registered.Metadata[MetadataKeyLastAnalysisConfig])

	result, err := svc.LatestAnalysis(ctx, "card-1")
	require.NoError(t, err)
	assert.Equal(t, "high", result["criticality_level"], "verdicts are stored lowercase")
	assert.Equal(t, "justification for card-1", result["justification"])
	assert.Equal(t, session.Reference, result["session_reference"])

	history, err := svc.History(ctx, "card-1")
	require.NoError(t, err)
	require.Len(t, history, 1)
	assert.Equal(t, "high", history[0].CriticalityLevel)
	assert.Equal(t, session.Reference, history[0].SessionReference)
	assert.False(t, history[0].Reanalyse)
}

func TestCommitRunAppendsOnReanalysis(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	svc := NewTicketService(client)
	ctx := context.Background()

	seedRun(t, client, []CardCommit{commitFor("card-1", "Payment outage", models.CriticalityLow)})
	seedRun(t, client, []CardCommit{commitFor("card-1", "Payment outage", models.CriticalityHigh)})

	count, err := client.Ticket.Query().Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, count, "a card registers exactly one ticket")

	history, err := svc.History(ctx, "card-1")
	require.NoError(t, err)
	require.Len(t, history, 2, "history is append-only")

	result, err := svc.LatestAnalysis(ctx, "card-1")
	require.NoError(t, err)
	assert.Equal(t, "high", result["criticality_level"], "cached verdict follows the latest run")
}

func TestCommitRunKeepsFirstScope(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	ctx := context.Background()

	_, firstScope := seedRun(t, client, []CardCommit{commitFor("card-1", "Payment outage", models.CriticalityLow)})
	_, secondScope := seedRun(t, client, []CardCommit{commitFor("card-1", "Payment outage", models.CriticalityHigh)})
	require.NotEqual(t, firstScope.ID, secondScope.ID)

	registered, err := NewTicketService(client).GetByExternalID(ctx, "card-1")
	require.NoError(t, err)
	assert.Equal(t, firstScope.ID, registered.BoardScopeID, "ticket scope is frozen at registration")
}

func TestCommitRunEmpty(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	svc := NewTicketService(client)

	persisted, err := svc.CommitRun(context.Background(), CommitRunRequest{})
	require.NoError(t, err)
	assert.Zero(t, persisted)
}

func TestByExternalIDs(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	svc := NewTicketService(client)
	ctx := context.Background()

	seedRun(t, client, []CardCommit{
		commitFor("card-1", "Payment outage", models.CriticalityHigh),
		commitFor("card-2", "Typo in footer", models.CriticalityLow),
	})

	byID, err := svc.ByExternalIDs(ctx, []string{"card-1", "card-2", "card-unknown"})
	require.NoError(t, err)
	require.Len(t, byID, 2)
	require.Contains(t, byID, "card-1")
	require.Len(t, byID["card-1"].Edges.Histories, 1)
	_, found := byID["card-unknown"]
	assert.False(t, found)

	empty, err := svc.ByExternalIDs(ctx, nil)
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestTicketNotFound(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	svc := NewTicketService(client)
	ctx := context.Background()

	_, err := svc.GetByExternalID(ctx, "missing")
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = svc.GetByExternalID(ctx, "")
	assert.True(t, IsValidationError(err))
	_, err = svc.History(ctx, "missing")
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = svc.LatestAnalysis(ctx, "missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestTicketListFilters(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	svc := NewTicketService(client)
	ctx := context.Background()

	seedRun(t, client, []CardCommit{
		commitFor("card-1", "Payment outage", models.CriticalityHigh),
		commitFor("card-2", "Typo in footer", models.CriticalityLow),
		commitFor("card-3", "Payment retries", models.CriticalityMedium),
	})

	list, err := svc.List(ctx, models.ListTicketsRequest{
		Filters: []models.Filter{{Field: "criticality_level", Op: "eq", Value: "HIGH"}},
	})
	require.NoError(t, err)
	require.Len(t, list.Items, 1)
	assert.Equal(t, "card-1", list.Items[0].ExternalID)
	assert.Equal(t, "high", list.Items[0].CriticalityLevel)

	list, err = svc.List(ctx, models.ListTicketsRequest{
		Filters: []models.Filter{{Field: "name", Op: "contains", Value: "payment"}},
	})
	require.NoError(t, err)
	assert.Len(t, list.Items, 2)

	_, err = svc.List(ctx, models.ListTicketsRequest{
		Filters: []models.Filter{{Field: "name", Op: "eq", Value: "x"}},
	})
	assert.True(t, IsValidationError(err))
}

func TestTicketListOrderByName(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	svc := NewTicketService(client)
	ctx := context.Background()

	seedRun(t, client, []CardCommit{
		commitFor("card-1", "Zebra migration", models.CriticalityLow),
		commitFor("card-2", "API gateway timeout", models.CriticalityHigh),
	})

	list, err := svc.List(ctx, models.ListTicketsRequest{OrderBy: "name", OrderDirection: "asc"})
	require.NoError(t, err)
	require.Len(t, list.Items, 2)
	assert.Equal(t, "API gateway timeout", list.Items[0].Name)
	assert.Equal(t, "Zebra migration", list.Items[1].Name)
}

func TestTicketListPagination(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	svc := NewTicketService(client)
	ctx := context.Background()

	cards := make([]CardCommit, 0, 6)
	for _, id := range []string{"a", "b", "c", "d", "e", "f"} {
		cards = append(cards, commitFor("card-"+id, "Card "+id, models.CriticalityLow))
	}
	seedRun(t, client, cards)

	list, err := svc.List(ctx, models.ListTicketsRequest{Page: 2, PerPage: 5})
	require.NoError(t, err)
	assert.Len(t, list.Items, 1)
	assert.Equal(t, 6, list.Pagination.TotalItems)
	assert.Equal(t, 2, list.Pagination.TotalPages)

	// Out-of-range pages come back empty rather than failing.
	list, err = svc.List(ctx, models.ListTicketsRequest{Page: 9})
	require.NoError(t, err)
	assert.Empty(t, list.Items)
}

func TestTicketListByAnalyseID(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	svc := NewTicketService(client)
	ctx := context.Background()

	first, _ := seedRun(t, client, []CardCommit{
		commitFor("card-1", "Payment outage", models.CriticalityHigh),
		commitFor("card-2", "Typo in footer", models.CriticalityLow),
	})
	second, _ := seedRun(t, client, []CardCommit{
		commitFor("card-3", "Export CSV", models.CriticalityMedium),
	})

	list, err := svc.List(ctx, models.ListTicketsRequest{AnalyseID: first.ID})
	require.NoError(t, err)
	require.Len(t, list.Items, 2)

	list, err = svc.List(ctx, models.ListTicketsRequest{AnalyseID: second.ID})
	require.NoError(t, err)
	require.Len(t, list.Items, 1)
	assert.Equal(t, "card-3", list.Items[0].ExternalID)

	// Unknown session matches nothing.
	list, err = svc.List(ctx, models.ListTicketsRequest{AnalyseID: second.ID + 100})
	require.NoError(t, err)
	assert.Empty(t, list.Items)
}
