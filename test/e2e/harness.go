// Package e2e boots the full cardtriage stack — HTTP edge, pipeline,
// persistence and grounding store — against a real database, a scripted LLM
// endpoint and an in-memory board API.
package e2e

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/talan-labs/cardtriage/ent"
	"github.com/talan-labs/cardtriage/pkg/analyzer"
	"github.com/talan-labs/cardtriage/pkg/api"
	"github.com/talan-labs/cardtriage/pkg/config"
	"github.com/talan-labs/cardtriage/pkg/crypto"
	"github.com/talan-labs/cardtriage/pkg/database"
	"github.com/talan-labs/cardtriage/pkg/grounding"
	"github.com/talan-labs/cardtriage/pkg/llm"
	"github.com/talan-labs/cardtriage/pkg/orchestrator"
	"github.com/talan-labs/cardtriage/pkg/scheduler"
	"github.com/talan-labs/cardtriage/pkg/services"
	"github.com/talan-labs/cardtriage/pkg/trello"
	"github.com/talan-labs/cardtriage/test/util"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// testApp is one fully wired cardtriage instance.
type testApp struct {
	t *testing.T

	EntClient *ent.Client
	Board     *mockBoard
	LLM       *scriptedLLM
	Store     *grounding.Store
	Runner    *scheduler.Runner

	baseURL string
	httpSrv *httptest.Server
	client  *http.Client
}

// newTestApp wires the whole stack the way main does, swapping the external
// endpoints for scripted ones. Batch size 2 so multi-card lists exercise
// chunking.
func newTestApp(t *testing.T) *testApp {
	entClient, db := util.SetupTestDatabase(t)
	dbClient := database.NewClientFromEnt(entClient, db)

	board := newMockBoard(t)
	scripted := newScriptedLLM(t)

	store, err := grounding.NewStore(entClient, grounding.Config{
		Collection:    "e2e_documents",
		EmbeddingFunc: staticEmbedding,
	})
	require.NoError(t, err)

	cipher, err := crypto.NewCipher("e2e-secret-key")
	require.NoError(t, err)

	configService := services.NewConfigService(entClient, cipher)
	sessionService := services.NewSessionService(entClient)
	ticketService := services.NewTicketService(entClient)
	statisticsService := services.NewStatisticsService(entClient)
	cacheService := services.NewCacheService(entClient)

	llmClient := llm.NewClient(llm.Config{
		APIKey:  "test-key",
		Model:   "scripted-model",
		BaseURL: scripted.server.URL,
	})
	cardAnalyzer := analyzer.New(llmClient, store)
	boardClient := trello.NewClient("service-key", board.server.URL)
	pipeline := orchestrator.New(boardClient, cardAnalyzer,
		configService, sessionService, ticketService, 2, 2)
	reanalysisService := services.NewReanalysisService(entClient, sessionService, ticketService, cardAnalyzer)

	runner := scheduler.NewRunner(configService, pipeline, 0)

	server := api.NewServer(api.Options{
		Orchestrator: pipeline,
		Board:        boardClient,
		Configs:      configService,
		Sessions:     sessionService,
		Tickets:      ticketService,
		Reanalysis:   reanalysisService,
		Statistics:   statisticsService,
		Cache:        cacheService,
		Documents:    store,
		Runner:       runner,
		DB:           dbClient,
		Settings: config.Settings{
			MaxContentLength: 1 << 20,
			CORSAllowOrigins: []string{"*"},
		},
	})

	httpSrv := httptest.NewServer(server.Engine())
	t.Cleanup(httpSrv.Close)

	return &testApp{
		t:         t,
		EntClient: entClient,
		Board:     board,
		LLM:       scripted,
		Store:     store,
		Runner:    runner,
		baseURL:   httpSrv.URL,
		httpSrv:   httpSrv,
		client:    httpSrv.Client(),
	}
}

// staticEmbedding is a deterministic embedding so vector queries work without
// a live embeddings endpoint. Vectors depend only on byte content.
func staticEmbedding(_ context.Context, text string) ([]float32, error) {
	const dim = 16
	vec := make([]float32, dim)
	for i, r := range text {
		vec[i%dim] += float32(r%17) / 17
	}
	var norm float32
	for _, v := range vec {
		norm += v * v
	}
	if norm == 0 {
		vec[0] = 1
	}
	return vec, nil
}

// do sends a JSON request and decodes the JSON response.
func (a *testApp) do(method, path string, body any) (int, map[string]any) {
	a.t.Helper()
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(a.t, err)
		reader = bytes.NewReader(raw)
	}

	req, err := http.NewRequest(method, a.baseURL+path, reader)
	require.NoError(a.t, err)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := a.client.Do(req)
	require.NoError(a.t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(a.t, err)

	var payload map[string]any
	if len(raw) > 0 {
		require.NoError(a.t, json.Unmarshal(raw, &payload), "body: %s", raw)
	}
	return resp.StatusCode, payload
}

func (a *testApp) get(path string) (int, map[string]any) {
	a.t.Helper()
	return a.do(http.MethodGet, path, nil)
}

func (a *testApp) post(path string, body any) (int, map[string]any) {
	a.t.Helper()
	return a.do(http.MethodPost, path, body)
}

// uploadDocument pushes a .txt file into the grounding corpus.
func (a *testApp) uploadDocument(filename, content string) (int, map[string]any) {
	a.t.Helper()
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	part, err := writer.CreateFormFile("file", filename)
	require.NoError(a.t, err)
	_, err = part.Write([]byte(content))
	require.NoError(a.t, err)
	require.NoError(a.t, writer.Close())

	req, err := http.NewRequest(http.MethodPost, a.baseURL+"/fileapi/upload", body)
	require.NoError(a.t, err)
	req.Header.Set("Content-Type", writer.FormDataContentType())

	resp, err := a.client.Do(req)
	require.NoError(a.t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(a.t, err)

	var payload map[string]any
	if len(raw) > 0 {
		require.NoError(a.t, json.Unmarshal(raw, &payload))
	}
	return resp.StatusCode, payload
}

// subscribe creates a board subscription and returns its id.
func (a *testApp) subscribe(data map[string]any) int {
	a.t.Helper()
	status, payload := a.post("/api/trello/config-board-subscription", data)
	require.Equal(a.t, http.StatusCreated, status, "subscription payload: %v", payload)
	cfg := payload["config"].(map[string]any)
	return int(cfg["id"].(float64))
}
