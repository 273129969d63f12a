package e2e

import (
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestAnalysisPipeline walks the whole flow over real HTTP: grounding upload,
// board subscription, list analysis with board effects, cache reuse,
// reanalysis and the reporting endpoints.
func TestAnalysisPipeline(t *testing.T) {
	app := newTestApp(t)

	status, payload := app.uploadDocument("contexte.txt",
		"Application de gestion de patients. Les pannes de paiement et les fuites de données sont critiques.")
	require.Equal(t, http.StatusCreated, status, "upload payload: %v", payload)

	app.subscribe(map[string]any{
		"board_id":   "board-1",
		"board_name": "Support",
		"list_id":    "list-1",
		"list_name":  "Backlog",
		"token":      "board-token",
	})

	app.Board.addCard("board-1", "list-1", "card-high", "Panne paiement card-high", "Les paiements échouent en production")
	app.Board.addCard("board-1", "list-1", "card-low", "Typo footer card-low", "Faute de frappe dans le pied de page")
	app.Board.addCard("board-1", "list-1", "card-ooc", "Recette tarte card-ooc", "Pommes, pâte, four")

	app.LLM.scriptLevel("card-high", "HIGH")
	app.LLM.scriptLevel("card-low", "LOW")
	app.LLM.scriptLevel("card-ooc", "OUT_OF_CONTEXT")

	// First pass: everything goes through the LLM.
	status, payload = app.post("/api/trello/board/board-1/list/list-1/analyze", nil)
	require.Equal(t, http.StatusOK, status, "analyze payload: %v", payload)
	analysis := payload["analysis"].(map[string]any)
	summary := analysis["summary"].(map[string]any)
	assert.EqualValues(t, 3, summary["total_cards"])
	assert.EqualValues(t, 1, summary["high"])
	assert.EqualValues(t, 1, summary["low"])
	assert.Equal(t, true, analysis["persisted"])
	assert.EqualValues(t, 2, analysis["tickets_saved_count"])
	sessionRef := analysis["session_reference"].(string)
	assert.True(t, strings.HasPrefix(sessionRef, "analyse_"), "reference %q", sessionRef)

	// Board effects: label and prefixed comment on the actionable cards,
	// nothing on the out-of-context one.
	assert.Equal(t, []string{"Priority-High"}, app.Board.cardLabelNames("card-high"))
	assert.Equal(t, []string{"Priority-Low"}, app.Board.cardLabelNames("card-low"))
	assert.Empty(t, app.Board.cardLabelNames("card-ooc"))

	comments := app.Board.cardComments("card-high")
	require.Len(t, comments, 1)
	assert.True(t, strings.HasPrefix(comments[0], "[TALAN AGENT 🤖] "), "comment %q", comments[0])
	assert.Empty(t, app.Board.cardComments("card-ooc"))

	// Persistence: two tickets, one history row each.
	status, payload = app.get("/api/tickets")
	require.Equal(t, http.StatusOK, status)
	assert.Len(t, payload["data"].([]any), 2)

	status, payload = app.get("/api/tickets/card-high/analysis/history")
	require.Equal(t, http.StatusOK, status)
	assert.EqualValues(t, 1, payload["count"])

	status, _ = app.get("/api/tickets/card-ooc/analysis/history")
	assert.Equal(t, http.StatusNotFound, status)

	// Second pass: persisted verdicts come from the cache; only the
	// out-of-context card goes back to the LLM.
	status, payload = app.post("/api/trello/board/board-1/list/list-1/analyze", nil)
	require.Equal(t, http.StatusOK, status)
	analysis = payload["analysis"].(map[string]any)
	fromCache := map[string]bool{}
	for _, raw := range analysis["results"].([]any) {
		result := raw.(map[string]any)
		cached, _ := result["from_cache"].(bool)
		fromCache[result["card_id"].(string)] = cached
	}
	assert.True(t, fromCache["card-high"])
	assert.True(t, fromCache["card-low"])
	assert.False(t, fromCache["card-ooc"])

	status, payload = app.get("/api/tickets/card-high/analysis/history")
	require.Equal(t, http.StatusOK, status)
	assert.EqualValues(t, 1, payload["count"], "cache hits append no history")

	// Reanalysis: the verdict changes and a new history row lands.
	app.LLM.scriptLevel("card-high", "MEDIUM")
	status, payload = app.post("/api/tickets/card-high/reanalyze", nil)
	require.Equal(t, http.StatusOK, status, "reanalyze payload: %v", payload)
	reanalysis := payload["reanalysis"].(map[string]any)
	assert.Equal(t, "MEDIUM", reanalysis["criticality_level"])
	assert.Equal(t, true, reanalysis["changed"])
	assert.Equal(t, true, reanalysis["persisted"])

	status, payload = app.get("/api/tickets/card-high/analysis/history")
	require.Equal(t, http.StatusOK, status)
	assert.EqualValues(t, 2, payload["count"])

	// Reporting endpoints.
	status, payload = app.get("/api/analysis/statistics")
	require.Equal(t, http.StatusOK, status)
	stats := payload["statistics"].(map[string]any)
	assert.EqualValues(t, 2, stats["total_tickets"])
	assert.EqualValues(t, 1, stats["total_reanalyses"])

	status, payload = app.get("/api/analyses")
	require.Equal(t, http.StatusOK, status)
	assert.Len(t, payload["data"].([]any), 3, "one session per analyze pass plus the reanalysis")

	status, payload = app.get("/api/analysis/cache/status")
	require.Equal(t, http.StatusOK, status)
	assert.InDelta(t, 1.0, payload["cache_ratio"].(float64), 0.001)

	// Clearing one verdict drops it from the cache but keeps the history.
	status, payload = app.post("/api/analysis/cache/clear", map[string]any{"ticket_id": "card-low"})
	require.Equal(t, http.StatusOK, status)
	assert.EqualValues(t, 1, payload["cleared_count"])

	status, payload = app.get("/api/analysis/cache/status")
	require.Equal(t, http.StatusOK, status)
	assert.InDelta(t, 0.5, payload["cache_ratio"].(float64), 0.001)

	status, payload = app.get("/api/tickets/card-low/analysis/history")
	require.Equal(t, http.StatusOK, status)
	assert.EqualValues(t, 1, payload["count"])
}

// TestMoveToTargetList verifies that a configured target list routes
// analyzed cards and records the move in ticket metadata.
func TestMoveToTargetList(t *testing.T) {
	app := newTestApp(t)

	status, _ := app.uploadDocument("contexte.txt", "Plateforme de support client.")
	require.Equal(t, http.StatusCreated, status)

	configID := app.subscribe(map[string]any{
		"board_id":   "board-1",
		"board_name": "Support",
		"list_id":    "list-1",
		"list_name":  "Backlog",
		"token":      "board-token",
	})
	status, _ = app.post("/api/trello/config-board-subscription/1/target-list", map[string]any{
		"target_list_id":   "list-critical",
		"target_list_name": "Critiques",
	})
	require.Equal(t, http.StatusOK, status)
	require.Equal(t, 1, configID)

	app.Board.addCard("board-1", "list-1", "card-urgent", "Fuite de données card-urgent", "Exposition de données patients")
	app.LLM.scriptLevel("card-urgent", "HIGH")

	status, payload := app.post("/api/trello/board/board-1/list/list-1/analyze", nil)
	require.Equal(t, http.StatusOK, status, "analyze payload: %v", payload)

	assert.Equal(t, "list-critical", app.Board.cardListID("card-urgent"))

	analysis := payload["analysis"].(map[string]any)
	results := analysis["results"].([]any)
	require.Len(t, results, 1)
	actions := results[0].(map[string]any)["actions"].(map[string]any)
	assert.Equal(t, true, actions["card_moved"])
	assert.Equal(t, "list-critical", actions["target_list_id"])
}

// TestScheduledSweep triggers one unattended pass over the subscriptions via
// the run endpoint.
func TestScheduledSweep(t *testing.T) {
	app := newTestApp(t)

	status, _ := app.uploadDocument("contexte.txt", "Application de facturation.")
	require.Equal(t, http.StatusCreated, status)

	app.subscribe(map[string]any{
		"board_id":   "board-1",
		"board_name": "Support",
		"list_id":    "list-1",
		"list_name":  "Backlog",
		"token":      "board-token",
	})
	app.Board.addCard("board-1", "list-1", "card-1", "Erreur de facturation card-1", "Montants doublés")
	app.LLM.scriptLevel("card-1", "MEDIUM")

	status, payload := app.post("/api/analysis/run", nil)
	require.Equal(t, http.StatusOK, status, "run payload: %v", payload)
	assert.EqualValues(t, 1, payload["configs_analyzed"])

	outcomes := payload["outcomes"].([]any)
	require.Len(t, outcomes, 1)
	outcome := outcomes[0].(map[string]any)
	assert.Equal(t, "board-1", outcome["board_id"])

	assert.Equal(t, []string{"Priority-Medium"}, app.Board.cardLabelNames("card-1"))
}

// TestHealthEndpoint reports database, grounding and scheduler state.
func TestHealthEndpoint(t *testing.T) {
	app := newTestApp(t)

	status, payload := app.get("/health")
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "healthy", payload["status"])
	assert.NotNil(t, payload["database"])
	scheduler := payload["scheduler"].(map[string]any)
	assert.Equal(t, false, scheduler["running"])
}
