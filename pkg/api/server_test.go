package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/talan-labs/cardtriage/ent"
	"github.com/talan-labs/cardtriage/pkg/config"
	"github.com/talan-labs/cardtriage/pkg/grounding"
	"github.com/talan-labs/cardtriage/pkg/models"
	"github.com/talan-labs/cardtriage/pkg/scheduler"
	"github.com/talan-labs/cardtriage/pkg/services"
	"github.com/talan-labs/cardtriage/pkg/trello"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type fakeOrchestrator struct {
	lastRun models.AnalyzeListRequest
	runErr  error
	cardErr error
	token   string
}

func (f *fakeOrchestrator) Run(_ context.Context, req models.AnalyzeListRequest) (*models.ListAnalysis, error) {
	f.lastRun = req
	if f.runErr != nil {
		return nil, f.runErr
	}
	return &models.ListAnalysis{
		BoardID:          req.BoardID,
		ListID:           req.ListID,
		SessionReference: "analyse_test",
		Summary:          models.AnalysisSummary{TotalCards: 1, Analyzed: 1},
	}, nil
}

func (f *fakeOrchestrator) AnalyzeCard(_ context.Context, cardID, token string) (models.CardVerdict, error) {
	f.token = token
	if f.cardErr != nil {
		return models.CardVerdict{}, f.cardErr
	}
	return models.CardVerdict{CardID: cardID, Success: true, CriticalityLevel: models.CriticalityHigh}, nil
}

type fakeBoardActions struct {
	labels   map[string]string
	comments map[string]string
	moves    map[string]string
	err      error
}

func newFakeBoardActions() *fakeBoardActions {
	return &fakeBoardActions{labels: map[string]string{}, comments: map[string]string{}, moves: map[string]string{}}
}

func (f *fakeBoardActions) ApplyPriorityLabel(_ context.Context, cardID, _, level, _ string) error {
	if f.err != nil {
		return f.err
	}
	f.labels[cardID] = level
	return nil
}

func (f *fakeBoardActions) AddComment(_ context.Context, cardID, text, _ string) error {
	if f.err != nil {
		return f.err
	}
	f.comments[cardID] = text
	return nil
}

func (f *fakeBoardActions) MoveCard(_ context.Context, cardID, listID, _ string) error {
	if f.err != nil {
		return f.err
	}
	f.moves[cardID] = listID
	return nil
}

type fakeConfigStore struct {
	created map[string]any
	updated map[string]any
	token   string
	cfg     *ent.BoardConfig
}

func boardConfig(id int, data map[string]any) *ent.BoardConfig {
	return &ent.BoardConfig{ID: id, Data: data, CreatedAt: time.Now(), UpdatedAt: time.Now()}
}

func (f *fakeConfigStore) Create(_ context.Context, data map[string]any) (*ent.BoardConfig, error) {
	if err := requireBoardAndList(data); err != nil {
		return nil, err
	}
	f.created = data
	return boardConfig(1, data), nil
}

func requireBoardAndList(data map[string]any) error {
	if v, _ := data[services.ConfigKeyBoardID].(string); v == "" {
		return services.NewValidationError(services.ConfigKeyBoardID, "required")
	}
	if v, _ := data[services.ConfigKeyListID].(string); v == "" {
		return services.NewValidationError(services.ConfigKeyListID, "required")
	}
	return nil
}

func (f *fakeConfigStore) Update(_ context.Context, id int, data map[string]any) (*ent.BoardConfig, error) {
	if id != 1 {
		return nil, services.ErrNotFound
	}
	f.updated = data
	return boardConfig(id, data), nil
}

func (f *fakeConfigStore) List(context.Context) ([]*ent.BoardConfig, error) {
	if f.cfg == nil {
		return nil, nil
	}
	return []*ent.BoardConfig{f.cfg}, nil
}

func (f *fakeConfigStore) SetTargetList(_ context.Context, id int, targetListID, targetListName string) (*ent.BoardConfig, error) {
	if targetListID == "" {
		return nil, services.NewValidationError("target_list_id", "required")
	}
	if id != 1 {
		return nil, services.ErrNotFound
	}
	return boardConfig(id, map[string]any{
		services.ConfigKeyTargetListID:   targetListID,
		services.ConfigKeyTargetListName: targetListName,
	}), nil
}

func (f *fakeConfigStore) ActiveForBoard(_ context.Context, boardID string) (*ent.BoardConfig, error) {
	if f.cfg == nil {
		return nil, services.ErrNotFound
	}
	return f.cfg, nil
}

func (f *fakeConfigStore) DecryptedToken(*ent.BoardConfig) (string, error) {
	return f.token, nil
}

type fakeSessionReader struct{ list models.SessionList }

func (f *fakeSessionReader) List(_ context.Context, req models.ListSessionsRequest) (*models.SessionList, error) {
	for _, filter := range req.Filters {
		if filter.Field != "createdAt" && filter.Field != "tickets_count" {
			return nil, services.NewValidationError("filters", "unsupported filter field")
		}
	}
	return &f.list, nil
}

type fakeTicketReader struct {
	history []models.HistoryEntry
	latest  map[string]any
	known   string
}

func (f *fakeTicketReader) List(context.Context, models.ListTicketsRequest) (*models.TicketList, error) {
	return &models.TicketList{Items: []models.TicketListItem{}, Pagination: models.NewPagination(1, 10, 0)}, nil
}

func (f *fakeTicketReader) History(_ context.Context, externalID string) ([]models.HistoryEntry, error) {
	if externalID != f.known {
		return nil, services.ErrNotFound
	}
	return f.history, nil
}

func (f *fakeTicketReader) LatestAnalysis(_ context.Context, externalID string) (map[string]any, error) {
	if externalID != f.known || f.latest == nil {
		return nil, services.ErrNotFound
	}
	return f.latest, nil
}

type fakeReanalyzer struct{ result *models.ReanalysisResult }

func (f *fakeReanalyzer) Reanalyze(_ context.Context, externalID string) (*models.ReanalysisResult, error) {
	if f.result == nil {
		return nil, services.ErrNotFound
	}
	return f.result, nil
}

type fakeStatistics struct{ stats models.Statistics }

func (f *fakeStatistics) Global(context.Context) (*models.Statistics, error) { return &f.stats, nil }

type fakeCache struct {
	status  models.CacheStatus
	cleared []string
}

func (f *fakeCache) Status(context.Context) (*models.CacheStatus, error) { return &f.status, nil }

func (f *fakeCache) Clear(_ context.Context, externalID string) error {
	if externalID == "missing" {
		return services.ErrNotFound
	}
	f.cleared = append(f.cleared, externalID)
	return nil
}

func (f *fakeCache) ClearAll(context.Context) (int, error) {
	f.cleared = append(f.cleared, "*")
	return 3, nil
}

type fakeDocuments struct {
	docs      []grounding.DocumentInfo
	duplicate *grounding.DuplicateError
	ingested  string
}

func (f *fakeDocuments) Ingest(_ context.Context, filename string, content []byte) (*grounding.IngestResult, error) {
	if f.duplicate != nil {
		return nil, f.duplicate
	}
	f.ingested = filename
	return &grounding.IngestResult{DocumentID: "doc-1", Filename: filename, Chunks: 2}, nil
}

func (f *fakeDocuments) ListDocuments(context.Context) ([]grounding.DocumentInfo, error) {
	return f.docs, nil
}

func (f *fakeDocuments) DeleteDocument(_ context.Context, documentID string) error {
	if documentID == "missing" {
		return grounding.ErrDocumentNotFound
	}
	return nil
}

func (f *fakeDocuments) Status(context.Context) (*grounding.Status, error) {
	return &grounding.Status{Documents: len(f.docs)}, nil
}

type fakeRunner struct {
	outcomes []scheduler.RunOutcome
	busy     bool
}

func (f *fakeRunner) RunOnce(context.Context) ([]scheduler.RunOutcome, error) {
	if f.busy {
		return nil, services.ErrAnalysisRunning
	}
	return f.outcomes, nil
}

func (f *fakeRunner) Running() bool { return f.busy }

// testServer bundles the fakes behind a routed engine.
type testServer struct {
	engine       *gin.Engine
	orchestrator *fakeOrchestrator
	board        *fakeBoardActions
	configs      *fakeConfigStore
	cache        *fakeCache
	documents    *fakeDocuments
	runner       *fakeRunner
	tickets      *fakeTicketReader
	reanalyzer   *fakeReanalyzer
	sessions     *fakeSessionReader
}

func newTestServer() *testServer {
	ts := &testServer{
		orchestrator: &fakeOrchestrator{},
		board:        newFakeBoardActions(),
		configs:      &fakeConfigStore{},
		cache:        &fakeCache{},
		documents:    &fakeDocuments{},
		runner:       &fakeRunner{},
		tickets:      &fakeTicketReader{},
		reanalyzer:   &fakeReanalyzer{},
		sessions:     &fakeSessionReader{},
	}
	server := NewServer(Options{
		Orchestrator: ts.orchestrator,
		Board:        ts.board,
		Configs:      ts.configs,
		Sessions:     ts.sessions,
		Tickets:      ts.tickets,
		Reanalysis:   ts.reanalyzer,
		Statistics:   &fakeStatistics{},
		Cache:        ts.cache,
		Documents:    ts.documents,
		Runner:       ts.runner,
		Settings:     config.Settings{MaxContentLength: 1 << 20},
	})
	ts.engine = gin.New()
	server.RegisterRoutes(ts.engine)
	return ts
}

func (ts *testServer) do(t *testing.T, method, path string, body any) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	ts.engine.ServeHTTP(rec, req)

	var payload map[string]any
	if rec.Body.Len() > 0 {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &payload))
	}
	return rec, payload
}

func TestAnalyzeListEndpoint(t *testing.T) {
	ts := newTestServer()

	rec, payload := ts.do(t, http.MethodPost, "/api/trello/board/board-1/list/list-1/analyze", gin.H{
		"token": "tok",
		"force": true,
	})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "success", payload["status"])
	assert.NotNil(t, payload["analysis"])

	assert.Equal(t, "board-1", ts.orchestrator.lastRun.BoardID)
	assert.Equal(t, "list-1", ts.orchestrator.lastRun.ListID)
	assert.Equal(t, "tok", ts.orchestrator.lastRun.Token)
	assert.True(t, ts.orchestrator.lastRun.Force)
}

func TestAnalyzeListEmptyBody(t *testing.T) {
	ts := newTestServer()
	rec, _ := ts.do(t, http.MethodPost, "/api/trello/board/board-1/list/list-1/analyze", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, ts.orchestrator.lastRun.Token)
}

func TestAnalyzeListValidationError(t *testing.T) {
	ts := newTestServer()
	ts.orchestrator.runErr = services.NewValidationError("token", "required")

	rec, payload := ts.do(t, http.MethodPost, "/api/trello/board/b/list/l/analyze", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "error", payload["status"])
	assert.Contains(t, payload["message"], "token")
}

func TestAnalyzeListBoardAPIError(t *testing.T) {
	ts := newTestServer()
	ts.orchestrator.runErr = fmt.Errorf("failed to fetch list cards: %w",
		&trello.APIError{StatusCode: 401, Body: "invalid token"})

	rec, payload := ts.do(t, http.MethodPost, "/api/trello/board/b/list/l/analyze", nil)
	assert.Equal(t, http.StatusBadGateway, rec.Code)
	assert.Contains(t, payload["message"], "board API error")
}

func TestAnalyzeCardTokenFallback(t *testing.T) {
	ts := newTestServer()
	ts.configs.cfg = boardConfig(1, map[string]any{services.ConfigKeyBoardID: "board-1"})
	ts.configs.token = "config-token"

	rec, payload := ts.do(t, http.MethodPost, "/api/trello/card/card-1/analyze", gin.H{"board_id": "board-1"})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "config-token", ts.orchestrator.token, "token resolved from the board subscription")
	result := payload["result"].(map[string]any)
	assert.Equal(t, "HIGH", result["criticality_level"])
}

func TestAnalyzeCardNoToken(t *testing.T) {
	ts := newTestServer()
	rec, _ := ts.do(t, http.MethodPost, "/api/trello/card/card-1/analyze", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAddLabelEndpoint(t *testing.T) {
	ts := newTestServer()

	rec, _ := ts.do(t, http.MethodPost, "/api/trello/card/card-1/add-label", gin.H{
		"board_id":          "board-1",
		"criticality_level": "HIGH",
		"token":             "tok",
	})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "HIGH", ts.board.labels["card-1"])
}

func TestAddLabelRejectsUnknownLevel(t *testing.T) {
	ts := newTestServer()
	rec, payload := ts.do(t, http.MethodPost, "/api/trello/card/card-1/add-label", gin.H{
		"board_id":          "board-1",
		"criticality_level": "OUT_OF_CONTEXT",
		"token":             "tok",
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, payload["message"], "criticality_level")
	assert.Empty(t, ts.board.labels)
}

func TestAddCommentEndpoint(t *testing.T) {
	ts := newTestServer()

	rec, _ := ts.do(t, http.MethodPost, "/api/trello/card/card-1/add-comment", gin.H{
		"comment": "incident majeur",
		"token":   "tok",
	})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "incident majeur", ts.board.comments["card-1"])

	// Token is mandatory for comments.
	rec, _ = ts.do(t, http.MethodPost, "/api/trello/card/card-1/add-comment", gin.H{"comment": "x"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestMoveCardEndpoint(t *testing.T) {
	ts := newTestServer()

	rec, _ := ts.do(t, http.MethodPut, "/api/trello/card/card-1/move", gin.H{
		"new_list_id": "list-critical",
		"token":       "tok",
	})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "list-critical", ts.board.moves["card-1"])

	rec, _ = ts.do(t, http.MethodPut, "/api/trello/card/card-1/move", gin.H{"token": "tok"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestBoardActionError(t *testing.T) {
	ts := newTestServer()
	ts.board.err = &trello.APIError{StatusCode: 404, Body: "card not found"}

	rec, _ := ts.do(t, http.MethodPost, "/api/trello/card/gone/add-comment", gin.H{
		"comment": "x",
		"token":   "tok",
	})
	assert.Equal(t, http.StatusBadGateway, rec.Code)
}

func TestCreateConfigNormalizesKeys(t *testing.T) {
	ts := newTestServer()

	rec, payload := ts.do(t, http.MethodPost, "/api/trello/config-board-subscription", gin.H{
		"boardId":  "board-1",
		"listId":   "list-1",
		"listName": "Backlog",
		"token":    "secret-token",
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	assert.Equal(t, "board-1", ts.configs.created[services.ConfigKeyBoardID])
	assert.Equal(t, "Backlog", ts.configs.created[services.ConfigKeyListName])

	cfg := payload["config"].(map[string]any)
	data := cfg["data"].(map[string]any)
	assert.Equal(t, "***", data["token"], "tokens are masked in responses")
}

func TestCreateConfigValidation(t *testing.T) {
	ts := newTestServer()
	rec, _ := ts.do(t, http.MethodPost, "/api/trello/config-board-subscription", gin.H{"listId": "list-1"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestUpdateConfigEndpoint(t *testing.T) {
	ts := newTestServer()

	rec, _ := ts.do(t, http.MethodPut, "/api/trello/config-board-subscription", gin.H{
		"id":      1,
		"boardId": "board-1",
		"list_id": "list-2",
	})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "board-1", ts.configs.updated[services.ConfigKeyBoardID])
	assert.Equal(t, "list-2", ts.configs.updated[services.ConfigKeyListID])

	// Unknown id maps to 404.
	rec, _ = ts.do(t, http.MethodPut, "/api/trello/config-board-subscription", gin.H{
		"id":      99,
		"boardId": "board-1",
		"list_id": "list-2",
	})
	assert.Equal(t, http.StatusNotFound, rec.Code)

	// Missing id is a 400.
	rec, _ = ts.do(t, http.MethodPut, "/api/trello/config-board-subscription", gin.H{"boardId": "b"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestSetTargetListEndpoint(t *testing.T) {
	ts := newTestServer()

	rec, _ := ts.do(t, http.MethodPost, "/api/trello/config-board-subscription/1/target-list", gin.H{
		"targetListId":   "list-critical",
		"targetListName": "Critiques",
	})
	require.Equal(t, http.StatusOK, rec.Code)

	rec, _ = ts.do(t, http.MethodPost, "/api/trello/config-board-subscription/abc/target-list", gin.H{
		"target_list_id": "x",
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec, _ = ts.do(t, http.MethodPost, "/api/trello/config-board-subscription/1/target-list", gin.H{})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestListSessionsEndpoint(t *testing.T) {
	ts := newTestServer()
	ts.sessions.list = models.SessionList{
		Items:      []models.SessionListItem{{ID: 1, Reference: "analyse_test", TicketsCount: 2}},
		Pagination: models.NewPagination(1, 10, 1),
	}

	rec, payload := ts.do(t, http.MethodGet, "/api/analyses?filters[]=tickets_count:gte:1", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	data := payload["data"].([]any)
	require.Len(t, data, 1)
	meta := payload["meta"].(map[string]any)
	pagination := meta["pagination"].(map[string]any)
	assert.EqualValues(t, 1, pagination["totalItems"])

	rec, _ = ts.do(t, http.MethodGet, "/api/analyses?filters[]=badfilter", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec, _ = ts.do(t, http.MethodGet, "/api/analyses?filters[]=reference:eq:x", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec, _ = ts.do(t, http.MethodGet, "/api/analyses?page=zero", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestListTicketsEndpoint(t *testing.T) {
	ts := newTestServer()
	rec, payload := ts.do(t, http.MethodGet, "/api/tickets?perPage=5", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "success", payload["status"])
	assert.NotNil(t, payload["meta"])

	rec, _ = ts.do(t, http.MethodGet, "/api/tickets?analyse_id=12", nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec, _ = ts.do(t, http.MethodGet, "/api/tickets?analyse_id=abc", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestTicketHistoryEndpoint(t *testing.T) {
	ts := newTestServer()
	ts.tickets.known = "card-1"
	ts.tickets.history = []models.HistoryEntry{
		{ID: 1, CriticalityLevel: "high", SessionReference: "analyse_test"},
	}

	rec, payload := ts.do(t, http.MethodGet, "/api/tickets/card-1/analysis/history", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.EqualValues(t, 1, payload["count"])
	assert.Equal(t, "card-1", payload["ticket_id"])

	rec, _ = ts.do(t, http.MethodGet, "/api/tickets/unknown/analysis/history", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestTicketAnalysisEndpoint(t *testing.T) {
	ts := newTestServer()
	ts.tickets.known = "card-1"
	ts.tickets.latest = map[string]any{"criticality_level": "high"}

	rec, payload := ts.do(t, http.MethodGet, "/api/tickets/card-1/analysis", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	analysis := payload["analysis"].(map[string]any)
	assert.Equal(t, "high", analysis["criticality_level"])

	rec, _ = ts.do(t, http.MethodGet, "/api/tickets/unknown/analysis", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestReanalyzeEndpoint(t *testing.T) {
	ts := newTestServer()
	ts.reanalyzer.result = &models.ReanalysisResult{
		TicketID:         "card-1",
		CriticalityLevel: "HIGH",
		Changed:          true,
		Persisted:        true,
	}

	rec, payload := ts.do(t, http.MethodPost, "/api/tickets/card-1/reanalyze", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	result := payload["reanalysis"].(map[string]any)
	assert.Equal(t, true, result["changed"])

	ts.reanalyzer.result = nil
	rec, _ = ts.do(t, http.MethodPost, "/api/tickets/unknown/reanalyze", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestStatisticsEndpoint(t *testing.T) {
	ts := newTestServer()
	rec, payload := ts.do(t, http.MethodGet, "/api/analysis/statistics", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.NotNil(t, payload["statistics"])
}

func TestCacheStatusEndpoint(t *testing.T) {
	ts := newTestServer()
	ts.cache.status = models.CacheStatus{TotalTickets: 4, CachedTickets: 3}

	rec, payload := ts.do(t, http.MethodGet, "/api/analysis/cache/status", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.InDelta(t, 0.75, payload["cache_ratio"].(float64), 0.001)
}

func TestCacheClearEndpoint(t *testing.T) {
	ts := newTestServer()

	rec, payload := ts.do(t, http.MethodPost, "/api/analysis/cache/clear", gin.H{"ticket_id": "card-1"})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.EqualValues(t, 1, payload["cleared_count"])
	assert.Equal(t, []string{"card-1"}, ts.cache.cleared)

	rec, payload = ts.do(t, http.MethodPost, "/api/analysis/cache/clear", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.EqualValues(t, 3, payload["cleared_count"])

	rec, _ = ts.do(t, http.MethodPost, "/api/analysis/cache/clear", gin.H{"ticket_id": "missing"})
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestRunSweepEndpoint(t *testing.T) {
	ts := newTestServer()
	ts.runner.outcomes = []scheduler.RunOutcome{{ConfigID: 1, BoardID: "board-1"}}

	rec, payload := ts.do(t, http.MethodPost, "/api/analysis/run", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.EqualValues(t, 1, payload["configs_analyzed"])

	ts.runner.busy = true
	rec, _ = ts.do(t, http.MethodPost, "/api/analysis/run", nil)
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func multipartUpload(t *testing.T, filename, content string) (*bytes.Buffer, string) {
	t.Helper()
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	part, err := writer.CreateFormFile("file", filename)
	require.NoError(t, err)
	_, err = part.Write([]byte(content))
	require.NoError(t, err)
	require.NoError(t, writer.Close())
	return body, writer.FormDataContentType()
}

func (ts *testServer) upload(t *testing.T, filename, content string) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()
	body, contentType := multipartUpload(t, filename, content)
	req := httptest.NewRequest(http.MethodPost, "/fileapi/upload", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()
	ts.engine.ServeHTTP(rec, req)

	var payload map[string]any
	if rec.Body.Len() > 0 {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &payload))
	}
	return rec, payload
}

func TestUploadDocument(t *testing.T) {
	ts := newTestServer()

	rec, payload := ts.upload(t, "contexte.txt", "Document de contexte.")
	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "doc-1", payload["document_id"])
	assert.Equal(t, "contexte.txt", payload["original_filename"])
	assert.EqualValues(t, 2, payload["chunks"])
	assert.EqualValues(t, len("Document de contexte."), payload["content_length"])
}

func TestUploadRejectsNonTxt(t *testing.T) {
	ts := newTestServer()
	rec, _ := ts.upload(t, "contexte.pdf", "binary stuff")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Empty(t, ts.documents.ingested)
}

func TestUploadDuplicate(t *testing.T) {
	ts := newTestServer()
	ts.documents.duplicate = &grounding.DuplicateError{DocumentID: "doc-0", Filename: "v1.txt"}

	rec, payload := ts.upload(t, "v2.txt", "same content")
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, "doc-0", payload["document_id"])
	assert.Equal(t, "v1.txt", payload["original_filename"])
}

func TestUploadMissingFile(t *testing.T) {
	ts := newTestServer()
	req := httptest.NewRequest(http.MethodPost, "/fileapi/upload", strings.NewReader(""))
	rec := httptest.NewRecorder()
	ts.engine.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestListDocumentsEndpoint(t *testing.T) {
	ts := newTestServer()
	ts.documents.docs = []grounding.DocumentInfo{{DocumentID: "doc-1", Filename: "a.txt", Chunks: 1}}

	rec, payload := ts.do(t, http.MethodGet, "/fileapi/documents", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.EqualValues(t, 1, payload["count"])
}

func TestDeleteDocumentEndpoint(t *testing.T) {
	ts := newTestServer()

	rec, payload := ts.do(t, http.MethodDelete, "/fileapi/documents/doc-1", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "doc-1", payload["document_id"])

	rec, _ = ts.do(t, http.MethodDelete, "/fileapi/documents/missing", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestUnexpectedErrorMapsTo500(t *testing.T) {
	ts := newTestServer()
	ts.orchestrator.runErr = errors.New("database exploded")

	rec, payload := ts.do(t, http.MethodPost, "/api/trello/board/b/list/l/analyze", nil)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "internal server error", payload["message"])
}
