package trello

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/talan-labs/cardtriage/pkg/models"
)

// boardFixture is a scripted board API. Handlers are keyed by "METHOD /path".
type boardFixture struct {
	t        *testing.T
	mux      map[string]http.HandlerFunc
	requests []string
}

func newBoardFixture(t *testing.T) (*boardFixture, *Client) {
	fixture := &boardFixture{t: t, mux: map[string]http.HandlerFunc{}}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "service-key", r.URL.Query().Get("key"))
		assert.Equal(t, "board-token", r.URL.Query().Get("token"))

		key := r.Method + " " + r.URL.Path
		fixture.requests = append(fixture.requests, key)
		handler, ok := fixture.mux[key]
		if !ok {
			t.Errorf("unexpected board API call: %s", key)
			w.WriteHeader(http.StatusNotFound)
			return
		}
		handler(w, r)
	}))
	t.Cleanup(server.Close)
	return fixture, NewClient("service-key", server.URL)
}

func (f *boardFixture) respond(key string, payload any) {
	f.mux[key] = func(w http.ResponseWriter, _ *http.Request) {
		require.NoError(f.t, json.NewEncoder(w).Encode(payload))
	}
}

func TestListCards(t *testing.T) {
	fixture, client := newBoardFixture(t)
	due := "2026-09-01T00:00:00.000Z"
	fixture.respond("GET /lists/list-1/cards", []rawCard{
		{
			ID:   "card-1",
			Name: "Payment webhook retries failing",
			Desc: "Retries exhausted after 3 attempts",
			Due:  &due,
			URL:  "https://boards.example/c/card-1",
			Members: []rawMember{
				{ID: "m1", FullName: "Dana Reyes", Username: "dreyes"},
			},
		},
		{ID: "card-2", Name: "Update onboarding doc"},
	})

	cards, err := client.ListCards(context.Background(), "list-1", "board-token")
	require.NoError(t, err)
	require.Len(t, cards, 2)

	assert.Equal(t, "card-1", cards[0].ID)
	assert.Equal(t, "Payment webhook retries failing", cards[0].Name)
	assert.Equal(t, due, cards[0].Due)
	require.Len(t, cards[0].Members, 1)
	assert.Equal(t, "dreyes", cards[0].Members[0].Username)
	assert.Empty(t, cards[1].Due)
}

func TestGetCard(t *testing.T) {
	fixture, client := newBoardFixture(t)
	fixture.respond("GET /cards/card-9", rawCard{
		ID:      "card-9",
		Name:    "DB connections leaking",
		BoardID: "board-1",
	})

	card, err := client.GetCard(context.Background(), "card-9", "board-token")
	require.NoError(t, err)
	assert.Equal(t, "card-9", card.ID)
	assert.Equal(t, "board-1", card.BoardID)
}

func TestApplyPriorityLabelReplacesStale(t *testing.T) {
	fixture, client := newBoardFixture(t)

	// Card currently carries the Low priority label plus an unrelated one.
	fixture.respond("GET /cards/card-1/labels", []rawLabel{
		{ID: "lbl-low", Name: "Priority - Low", Color: "green"},
		{ID: "lbl-team", Name: "Team Alpha", Color: "blue"},
	})
	fixture.respond("GET /boards/board-1/labels", []rawLabel{
		{ID: "lbl-high", Name: "Priority - High", Color: "red"},
	})
	fixture.mux["DELETE /cards/card-1/idLabels/lbl-low"] = func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	}
	fixture.mux["POST /cards/card-1/idLabels"] = func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "lbl-high", r.URL.Query().Get("value"))
		w.WriteHeader(http.StatusOK)
	}

	err := client.ApplyPriorityLabel(context.Background(), "card-1", "board-1", models.CriticalityHigh, "board-token")
	require.NoError(t, err)

	assert.Contains(t, fixture.requests, "DELETE /cards/card-1/idLabels/lbl-low")
	assert.Contains(t, fixture.requests, "POST /cards/card-1/idLabels")
	assert.NotContains(t, fixture.requests, "DELETE /cards/card-1/idLabels/lbl-team")
}

func TestApplyPriorityLabelAlreadySet(t *testing.T) {
	fixture, client := newBoardFixture(t)
	fixture.respond("GET /cards/card-1/labels", []rawLabel{
		{ID: "lbl-high", Name: "Priority - High", Color: "red"},
	})

	err := client.ApplyPriorityLabel(context.Background(), "card-1", "board-1", models.CriticalityHigh, "board-token")
	require.NoError(t, err)

	// No delete, no create, no attach. Reapplying the same level is a no-op.
	assert.Equal(t, []string{"GET /cards/card-1/labels"}, fixture.requests)
}

func TestApplyPriorityLabelCreatesMissing(t *testing.T) {
	fixture, client := newBoardFixture(t)
	fixture.respond("GET /cards/card-1/labels", []rawLabel{})
	fixture.respond("GET /boards/board-1/labels", []rawLabel{})
	fixture.mux["POST /labels"] = func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Priority - Medium", r.URL.Query().Get("name"))
		assert.Equal(t, "orange", r.URL.Query().Get("color"))
		assert.Equal(t, "board-1", r.URL.Query().Get("idBoard"))
		_ = json.NewEncoder(w).Encode(rawLabel{ID: "lbl-new", Name: "Priority - Medium"})
	}
	fixture.mux["POST /cards/card-1/idLabels"] = func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "lbl-new", r.URL.Query().Get("value"))
		w.WriteHeader(http.StatusOK)
	}

	err := client.ApplyPriorityLabel(context.Background(), "card-1", "board-1", models.CriticalityMedium, "board-token")
	require.NoError(t, err)
}

func TestApplyPriorityLabelRejectsUnknownLevel(t *testing.T) {
	_, client := newBoardFixture(t)
	err := client.ApplyPriorityLabel(context.Background(), "card-1", "board-1", "OUT_OF_CONTEXT", "board-token")
	assert.ErrorContains(t, err, "no priority label")
}

func TestAddCommentPrefix(t *testing.T) {
	for _, tc := range []struct {
		name string
		text string
	}{
		{name: "bare text gets the marker", text: "Critical payment outage"},
		{name: "marker is never doubled", text: CommentPrefix + "Critical payment outage"},
	} {
		t.Run(tc.name, func(t *testing.T) {
			fixture, client := newBoardFixture(t)
			fixture.mux["POST /cards/card-1/actions/comments"] = func(w http.ResponseWriter, r *http.Request) {
				require.NoError(t, r.ParseForm())
				assert.Equal(t, CommentPrefix+"Critical payment outage", r.PostForm.Get("text"))
				w.WriteHeader(http.StatusOK)
			}

			require.NoError(t, client.AddComment(context.Background(), "card-1", tc.text, "board-token"))
		})
	}
}

func TestMoveCard(t *testing.T) {
	fixture, client := newBoardFixture(t)
	fixture.mux["PUT /cards/card-1/idList"] = func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "list-done", r.URL.Query().Get("value"))
		w.WriteHeader(http.StatusOK)
	}

	require.NoError(t, client.MoveCard(context.Background(), "card-1", "list-done", "board-token"))
}

func TestAPIErrorSurfacesStatus(t *testing.T) {
	fixture, client := newBoardFixture(t)
	fixture.mux["GET /cards/gone"] = func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "card not found", http.StatusNotFound)
	}

	_, err := client.GetCard(context.Background(), "gone", "board-token")
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusNotFound, apiErr.StatusCode)
	assert.Equal(t, "card not found", apiErr.Body)
}

func TestPriorityLabelName(t *testing.T) {
	assert.Equal(t, "Priority - High", PriorityLabelName("high"))
	assert.Equal(t, "Priority - Medium", PriorityLabelName("MEDIUM"))
	assert.Equal(t, "Priority - Low", PriorityLabelName("Low"))
	assert.Empty(t, PriorityLabelName("OUT_OF_CONTEXT"))
}
