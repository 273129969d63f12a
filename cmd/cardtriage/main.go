// cardtriage server — watches subscribed Kanban lists, assesses card
// criticality with an LLM grounded on uploaded documents, and applies the
// verdicts back to the board.
package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

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
	"github.com/talan-labs/cardtriage/pkg/version"
)

func main() {
	if err := godotenv.Load(); err != nil {
		slog.Warn("Could not load .env file, continuing with existing environment", "error", err)
	}

	settings, err := config.Load()
	if err != nil {
		slog.Error("Failed to load settings", "error", err)
		os.Exit(1)
	}
	if err := settings.Validate(); err != nil {
		slog.Error("Invalid settings", "error", err)
		os.Exit(1)
	}

	slog.Info("Starting cardtriage",
		"version", version.Full(),
		"addr", settings.Addr(),
		"batch_size", settings.AnalysisBatchSize,
		"llm_concurrency", settings.LLMConcurrency)

	ctx := context.Background()

	// Database (migrations run on connect).
	dbConfig, err := database.LoadConfigFromEnv()
	if err != nil {
		slog.Error("Failed to load database config", "error", err)
		os.Exit(1)
	}
	dbClient, err := database.NewClient(ctx, dbConfig)
	if err != nil {
		slog.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := dbClient.Close(); err != nil {
			slog.Error("Error closing database client", "error", err)
		}
	}()
	slog.Info("Connected to PostgreSQL database")

	// Grounding corpus: relational chunks plus the persistent vector index.
	store, err := grounding.NewStore(dbClient.Client, grounding.Config{
		Path:       settings.VectorDBPath,
		Collection: settings.VectorCollection,
		APIKey:     settings.LLMAPIKey,
		BaseURL:    settings.LLMBaseURL,
	})
	if err != nil {
		slog.Error("Failed to open grounding store", "error", err)
		os.Exit(1)
	}
	slog.Info("Grounding store ready", "path", settings.VectorDBPath, "collection", settings.VectorCollection)

	// Domain services.
	cipher, err := crypto.NewCipher(settings.CryptoSecretKey)
	if err != nil {
		slog.Error("Failed to initialize token cipher", "error", err)
		os.Exit(1)
	}
	configService := services.NewConfigService(dbClient.Client, cipher)
	sessionService := services.NewSessionService(dbClient.Client)
	ticketService := services.NewTicketService(dbClient.Client)
	statisticsService := services.NewStatisticsService(dbClient.Client)
	cacheService := services.NewCacheService(dbClient.Client)

	// Analysis pipeline.
	llmClient := llm.NewClient(llm.Config{
		APIKey:  settings.LLMAPIKey,
		Model:   settings.LLMModel,
		BaseURL: settings.LLMBaseURL,
	})
	cardAnalyzer := analyzer.New(llmClient, store)
	boardClient := trello.NewClient(settings.BoardAPIKey, settings.BoardAPIBaseURL)
	pipeline := orchestrator.New(boardClient, cardAnalyzer,
		configService, sessionService, ticketService,
		settings.AnalysisBatchSize, settings.LLMConcurrency)
	reanalysisService := services.NewReanalysisService(dbClient.Client, sessionService, ticketService, cardAnalyzer)
	slog.Info("Analysis pipeline initialized")

	// Scheduler: periodic sweeps when configured, manual runs always.
	runner := scheduler.NewRunner(configService, pipeline, settings.AgentRunInterval)
	runner.Start(ctx)
	defer runner.Stop()

	// HTTP server.
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
		Settings:     settings,
	})
	httpServer := &http.Server{
		Addr:    settings.Addr(),
		Handler: server.Engine(),
	}

	errCh := make(chan error, 1)
	go func() {
		slog.Info("HTTP server listening", "addr", settings.Addr())
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("HTTP server error", "error", err)
			errCh <- err
		}
	}()

	slog.Info("cardtriage started successfully")

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGTERM, syscall.SIGINT)

	select {
	case sig := <-sigCh:
		slog.Info("Shutdown signal received", "signal", sig)
	case err := <-errCh:
		slog.Error("Server error triggered shutdown", "error", err)
	}

	// Graceful shutdown: stop the scheduler first so no new run starts, then
	// drain the HTTP server.
	runner.Stop()
	slog.Info("Scheduler stopped")

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		slog.Error("HTTP server shutdown error", "error", err)
	}

	slog.Info("Shutdown complete")
}
