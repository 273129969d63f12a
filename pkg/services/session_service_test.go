package services

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/talan-labs/cardtriage/ent"
	"github.com/talan-labs/cardtriage/pkg/models"
	"github.com/talan-labs/cardtriage/test/util"
)

// seedRun opens a session with one scope and commits the given cards as one
// run. It returns the session and scope for follow-up assertions.
func seedRun(t *testing.T, client *ent.Client, cards []CardCommit) (*ent.AnalysisSession, *ent.BoardScope) {
	t.Helper()
	ctx := context.Background()

	sessions := NewSessionService(client)
	session, err := sessions.Create(ctx, false)
	require.NoError(t, err)
	scope, err := sessions.AddScope(ctx, session.ID, "")
	require.NoError(t, err)

	if len(cards) > 0 {
		tickets := NewTicketService(client)
		persisted, err := tickets.CommitRun(ctx, CommitRunRequest{
			SessionID:        session.ID,
			SessionReference: session.Reference,
			ScopeID:          scope.ID,
			ListID:           "list-1",
			ConfigSnapshot:   `{"board_id":"board-1","list_id":"list-1"}`,
			Cards:            cards,
		})
		require.NoError(t, err)
		require.Equal(t, len(cards), persisted)
	}
	return session, scope
}

func commitFor(id, name, level string) CardCommit {
	return CardCommit{
		Card: models.CardPayload{
			ID:        id,
			Name:      name,
			Desc:      "desc of " + id,
			BoardID:   "board-1",
			BoardName: "Support",
			ListName:  "Backlog",
		},
		Criticality:   level,
		Justification: "justification for " + id,
	}
}

func TestGenerateSessionReference(t *testing.T) {
	at := time.Date(2026, 8, 26, 14, 30, 45, 0, time.UTC)
	assert.Equal(t, "analyse_20260826_1430", GenerateSessionReference(false, at))
	assert.Equal(t, "REANALYSE-20260826_143045", GenerateSessionReference(true, at))
}

func TestSessionCreateAndGet(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	svc := NewSessionService(client)
	ctx := context.Background()

	session, err := svc.Create(ctx, false)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(session.Reference, "analyse_"))
	assert.False(t, session.Reanalyse)

	scope, err := svc.AddScope(ctx, session.ID, "")
	require.NoError(t, err)
	assert.Equal(t, "trello", scope.Platform, "platform defaults to trello")

	loaded, err := svc.Get(ctx, session.ID)
	require.NoError(t, err)
	require.Len(t, loaded.Edges.Scopes, 1)
	assert.Equal(t, scope.ID, loaded.Edges.Scopes[0].ID)

	withSession, err := svc.Scope(ctx, scope.ID)
	require.NoError(t, err)
	require.NotNil(t, withSession.Edges.Session)
	assert.Equal(t, session.ID, withSession.Edges.Session.ID)

	_, err = svc.Get(ctx, 424242)
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = svc.AddScope(ctx, 424242, "")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestSessionCreateResolvesReferenceCollision(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	svc := NewSessionService(client)
	ctx := context.Background()

	// Pre-claim the reference a run created this minute would pick.
	base := GenerateSessionReference(false, time.Now())
	_, err := client.AnalysisSession.Create().
		SetReference(base).
		SetReanalyse(false).
		Save(ctx)
	require.NoError(t, err)

	session, err := svc.Create(ctx, false)
	require.NoError(t, err)
	assert.NotEqual(t, base, session.Reference)
	assert.True(t, strings.HasPrefix(session.Reference, base))
}

func TestSessionList(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	svc := NewSessionService(client)
	ctx := context.Background()

	seedRun(t, client, []CardCommit{
		commitFor("card-1", "Payment outage", models.CriticalityHigh),
		commitFor("card-2", "Typo in footer", models.CriticalityLow),
	})
	empty, err := svc.Create(ctx, true)
	require.NoError(t, err)

	list, err := svc.List(ctx, models.ListSessionsRequest{})
	require.NoError(t, err)
	require.Len(t, list.Items, 2)
	assert.Equal(t, 2, list.Pagination.TotalItems)

	// Newest first by default: the empty reanalyse session leads.
	assert.Equal(t, empty.ID, list.Items[0].ID)
	assert.Zero(t, list.Items[0].TicketsCount)

	full := list.Items[1]
	assert.Equal(t, 2, full.TicketsCount)
	assert.Equal(t, 1, full.Criticality.High)
	assert.Equal(t, 1, full.Criticality.Low)
	assert.Zero(t, full.Criticality.Medium)
	require.Len(t, full.Boards, 1)
	assert.Equal(t, "trello", full.Boards[0].Platform)
}

func TestSessionListTicketsCountFilter(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	svc := NewSessionService(client)
	ctx := context.Background()

	busy, _ := seedRun(t, client, []CardCommit{
		commitFor("card-1", "Payment outage", models.CriticalityHigh),
		commitFor("card-2", "Typo in footer", models.CriticalityLow),
	})
	_, err := svc.Create(ctx, false)
	require.NoError(t, err)

	list, err := svc.List(ctx, models.ListSessionsRequest{
		Filters: []models.Filter{{Field: "tickets_count", Op: "gte", Value: "1"}},
	})
	require.NoError(t, err)
	require.Len(t, list.Items, 1)
	assert.Equal(t, busy.ID, list.Items[0].ID)

	list, err = svc.List(ctx, models.ListSessionsRequest{
		Filters: []models.Filter{{Field: "tickets_count", Op: "eq", Value: "0"}},
	})
	require.NoError(t, err)
	require.Len(t, list.Items, 1)
	assert.NotEqual(t, busy.ID, list.Items[0].ID)
}

func TestSessionListOrderByTicketsCount(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	svc := NewSessionService(client)
	ctx := context.Background()

	busy, _ := seedRun(t, client, []CardCommit{
		commitFor("card-1", "Payment outage", models.CriticalityHigh),
		commitFor("card-2", "Typo in footer", models.CriticalityLow),
	})
	idle, err := svc.Create(ctx, false)
	require.NoError(t, err)

	list, err := svc.List(ctx, models.ListSessionsRequest{OrderBy: "tickets_count", OrderDirection: "asc"})
	require.NoError(t, err)
	require.Len(t, list.Items, 2)
	assert.Equal(t, idle.ID, list.Items[0].ID)
	assert.Equal(t, busy.ID, list.Items[1].ID)
}

func TestSessionListCreatedAtFilter(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	svc := NewSessionService(client)
	ctx := context.Background()

	session, err := svc.Create(ctx, false)
	require.NoError(t, err)

	tomorrow := time.Now().Add(24 * time.Hour).Format("2006-01-02")
	list, err := svc.List(ctx, models.ListSessionsRequest{
		Filters: []models.Filter{{Field: "createdAt", Op: "gte", Value: tomorrow}},
	})
	require.NoError(t, err)
	assert.Empty(t, list.Items)

	yesterday := time.Now().Add(-24 * time.Hour).Format(time.RFC3339)
	list, err = svc.List(ctx, models.ListSessionsRequest{
		Filters: []models.Filter{{Field: "createdAt", Op: "gte", Value: yesterday}},
	})
	require.NoError(t, err)
	require.Len(t, list.Items, 1)
	assert.Equal(t, session.ID, list.Items[0].ID)
}

func TestSessionListRejectsBadFilters(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	svc := NewSessionService(client)
	ctx := context.Background()

	tests := []models.Filter{
		{Field: "createdAt", Op: "gte", Value: "not-a-date"},
		{Field: "createdAt", Op: "contains", Value: "2026-01-01"},
		{Field: "tickets_count", Op: "gte", Value: "many"},
		{Field: "reference", Op: "eq", Value: "x"},
	}
	for _, f := range tests {
		_, err := svc.List(ctx, models.ListSessionsRequest{Filters: []models.Filter{f}})
		assert.True(t, IsValidationError(err), "filter %s:%s should be rejected", f.Field, f.Op)
	}
}

func TestSessionListPagination(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	svc := NewSessionService(client)
	ctx := context.Background()

	for i := 0; i < 7; i++ {
		_, err := client.AnalysisSession.Create().
			SetReference(GenerateSessionReference(true, time.Now().Add(time.Duration(i)*time.Second))).
			SetReanalyse(true).
			Save(ctx)
		require.NoError(t, err)
	}

	list, err := svc.List(ctx, models.ListSessionsRequest{Page: 2, PerPage: 5})
	require.NoError(t, err)
	assert.Len(t, list.Items, 2)
	assert.Equal(t, 7, list.Pagination.TotalItems)
	assert.Equal(t, 2, list.Pagination.TotalPages)
	assert.Equal(t, 2, list.Pagination.CurrentPage)
	assert.False(t, list.Pagination.HasNext)
	assert.True(t, list.Pagination.HasPrev)
}
