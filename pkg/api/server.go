// Package api is the HTTP edge of the service: gin routes over the
// orchestrator, the persistence services and the grounding store. Handlers
// validate input, delegate, and translate service errors to status codes in
// one place.
package api

import (
	"context"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/talan-labs/cardtriage/ent"
	"github.com/talan-labs/cardtriage/pkg/config"
	"github.com/talan-labs/cardtriage/pkg/database"
	"github.com/talan-labs/cardtriage/pkg/grounding"
	"github.com/talan-labs/cardtriage/pkg/models"
	"github.com/talan-labs/cardtriage/pkg/scheduler"
)

// ListAnalyzer runs the per-list pipeline and ad-hoc single-card analyses.
// *orchestrator.Orchestrator satisfies it.
type ListAnalyzer interface {
	Run(ctx context.Context, req models.AnalyzeListRequest) (*models.ListAnalysis, error)
	AnalyzeCard(ctx context.Context, cardID, token string) (models.CardVerdict, error)
}

// BoardActions is the thin action surface the proxy endpoints expose.
// *trello.Client satisfies it.
type BoardActions interface {
	ApplyPriorityLabel(ctx context.Context, cardID, boardID, level, token string) error
	AddComment(ctx context.Context, cardID, text, token string) error
	MoveCard(ctx context.Context, cardID, listID, token string) error
}

// ConfigStore manages board subscriptions. *services.ConfigService
// satisfies it.
type ConfigStore interface {
	Create(ctx context.Context, data map[string]any) (*ent.BoardConfig, error)
	Update(ctx context.Context, id int, data map[string]any) (*ent.BoardConfig, error)
	List(ctx context.Context) ([]*ent.BoardConfig, error)
	SetTargetList(ctx context.Context, id int, targetListID, targetListName string) (*ent.BoardConfig, error)
	ActiveForBoard(ctx context.Context, boardID string) (*ent.BoardConfig, error)
	DecryptedToken(cfg *ent.BoardConfig) (string, error)
}

// SessionReader lists analysis sessions. *services.SessionService
// satisfies it.
type SessionReader interface {
	List(ctx context.Context, req models.ListSessionsRequest) (*models.SessionList, error)
}

// TicketReader serves ticket listings and history. *services.TicketService
// satisfies it.
type TicketReader interface {
	List(ctx context.Context, req models.ListTicketsRequest) (*models.TicketList, error)
	History(ctx context.Context, externalID string) ([]models.HistoryEntry, error)
	LatestAnalysis(ctx context.Context, externalID string) (map[string]any, error)
}

// Reanalyzer re-evaluates one tracked ticket. *services.ReanalysisService
// satisfies it.
type Reanalyzer interface {
	Reanalyze(ctx context.Context, externalID string) (*models.ReanalysisResult, error)
}

// StatisticsReader computes corpus-wide aggregates.
// *services.StatisticsService satisfies it.
type StatisticsReader interface {
	Global(ctx context.Context) (*models.Statistics, error)
}

// CacheManager inspects and clears cached verdicts. *services.CacheService
// satisfies it.
type CacheManager interface {
	Status(ctx context.Context) (*models.CacheStatus, error)
	Clear(ctx context.Context, externalID string) error
	ClearAll(ctx context.Context) (int, error)
}

// DocumentStore ingests and serves grounding documents. *grounding.Store
// satisfies it.
type DocumentStore interface {
	Ingest(ctx context.Context, filename string, content []byte) (*grounding.IngestResult, error)
	ListDocuments(ctx context.Context) ([]grounding.DocumentInfo, error)
	DeleteDocument(ctx context.Context, documentID string) error
	Status(ctx context.Context) (*grounding.Status, error)
}

// SweepRunner triggers unattended analysis passes. *scheduler.Runner
// satisfies it.
type SweepRunner interface {
	RunOnce(ctx context.Context) ([]scheduler.RunOutcome, error)
	Running() bool
}

// Server holds the handler dependencies.
type Server struct {
	orchestrator ListAnalyzer
	board        BoardActions
	configs      ConfigStore
	sessions     SessionReader
	tickets      TicketReader
	reanalysis   Reanalyzer
	statistics   StatisticsReader
	cache        CacheManager
	documents    DocumentStore
	runner       SweepRunner
	db           *database.Client
	settings     config.Settings
}

// Options bundles the server dependencies.
type Options struct {
	Orchestrator ListAnalyzer
	Board        BoardActions
	Configs      ConfigStore
	Sessions     SessionReader
	Tickets      TicketReader
	Reanalysis   Reanalyzer
	Statistics   StatisticsReader
	Cache        CacheManager
	Documents    DocumentStore
	Runner       SweepRunner
	DB           *database.Client
	Settings     config.Settings
}

// NewServer creates an API server.
func NewServer(opts Options) *Server {
	return &Server{
		orchestrator: opts.Orchestrator,
		board:        opts.Board,
		configs:      opts.Configs,
		sessions:     opts.Sessions,
		tickets:      opts.Tickets,
		reanalysis:   opts.Reanalysis,
		statistics:   opts.Statistics,
		cache:        opts.Cache,
		documents:    opts.Documents,
		runner:       opts.Runner,
		db:           opts.DB,
		settings:     opts.Settings,
	}
}

// Engine builds the gin engine with middleware and all routes registered.
func (s *Server) Engine() *gin.Engine {
	engine := gin.New()
	engine.Use(gin.Recovery(), requestLogger(), securityHeaders())

	corsConfig := cors.DefaultConfig()
	if len(s.settings.CORSAllowOrigins) == 1 && s.settings.CORSAllowOrigins[0] == "*" {
		corsConfig.AllowAllOrigins = true
	} else {
		corsConfig.AllowOrigins = s.settings.CORSAllowOrigins
	}
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}
	engine.Use(cors.New(corsConfig))

	s.RegisterRoutes(engine)
	return engine
}

// RegisterRoutes attaches every endpoint to the engine.
func (s *Server) RegisterRoutes(engine *gin.Engine) {
	engine.GET("/health", s.health)

	api := engine.Group("/api")
	{
		board := api.Group("/trello")
		{
			board.POST("/board/:boardId/list/:listId/analyze", s.analyzeList)
			board.POST("/card/:cardId/analyze", s.analyzeCard)
			board.POST("/card/:cardId/add-label", s.addLabel)
			board.POST("/card/:cardId/add-comment", s.addComment)
			board.PUT("/card/:cardId/move", s.moveCard)

			board.POST("/config-board-subscription", s.createConfig)
			board.PUT("/config-board-subscription", s.updateConfig)
			board.GET("/config-board-subscription", s.listConfigs)
			board.POST("/config-board-subscription/:id/target-list", s.setTargetList)
		}

		api.GET("/analyses", s.listSessions)

		api.GET("/tickets", s.listTickets)
		api.GET("/tickets/:ticketId/analysis/history", s.ticketHistory)
		api.GET("/tickets/:ticketId/analysis", s.ticketAnalysis)
		api.POST("/tickets/:ticketId/reanalyze", s.reanalyzeTicket)

		analysis := api.Group("/analysis")
		{
			analysis.GET("/statistics", s.statisticsHandler)
			analysis.GET("/cache/status", s.cacheStatus)
			analysis.POST("/cache/clear", s.cacheClear)
			analysis.POST("/run", s.runSweep)
		}
	}

	files := engine.Group("/fileapi")
	{
		files.POST("/upload", s.uploadDocument)
		files.GET("/documents", s.listDocuments)
		files.DELETE("/documents/:documentId", s.deleteDocument)
	}
}
