// Package scheduler drives unattended analysis passes over every subscribed
// board list, either periodically or on demand.
package scheduler

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/talan-labs/cardtriage/pkg/config"
	"github.com/talan-labs/cardtriage/pkg/models"
	"github.com/talan-labs/cardtriage/pkg/services"
)

// ListRunner executes one list analysis. *orchestrator.Orchestrator
// satisfies it.
type ListRunner interface {
	Run(ctx context.Context, req models.AnalyzeListRequest) (*models.ListAnalysis, error)
}

// RunOutcome reports one config's pass within a scheduler sweep.
type RunOutcome struct {
	ConfigID         int                     `json:"config_id"`
	BoardID          string                  `json:"board_id"`
	ListID           string                  `json:"list_id"`
	SessionReference string                  `json:"session_reference,omitempty"`
	Summary          *models.AnalysisSummary `json:"summary,omitempty"`
	Error            string                  `json:"error,omitempty"`
}

// Runner sweeps all subscribed configs through the orchestrator. Only one
// sweep runs at a time; overlapping triggers are rejected.
type Runner struct {
	configs      *services.ConfigService
	orchestrator ListRunner
	interval     time.Duration
	runTimeout   time.Duration

	stopCh   chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup

	mu      sync.Mutex
	running bool
}

// NewRunner creates a Runner. An interval of zero disables the periodic
// loop; RunOnce stays available for manual triggers.
func NewRunner(configs *services.ConfigService, orchestrator ListRunner, interval time.Duration) *Runner {
	return &Runner{
		configs:      configs,
		orchestrator: orchestrator,
		interval:     interval,
		runTimeout:   config.ListAnalysisTimeout,
		stopCh:       make(chan struct{}),
	}
}

// Start begins the periodic loop when an interval is configured. Safe to
// call with a zero interval.
func (r *Runner) Start(ctx context.Context) {
	if r.interval <= 0 {
		slog.Info("Periodic analysis disabled")
		return
	}
	r.wg.Add(1)
	go r.loop(ctx)
}

// Stop signals the loop to stop and waits for the current sweep to finish.
// Safe to call multiple times.
func (r *Runner) Stop() {
	r.stopOnce.Do(func() { close(r.stopCh) })
	r.wg.Wait()
}

// Running reports whether a sweep is in flight.
func (r *Runner) Running() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.running
}

func (r *Runner) loop(ctx context.Context) {
	defer r.wg.Done()

	slog.Info("Periodic analysis started", "interval", r.interval)
	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	for {
		select {
		case <-r.stopCh:
			slog.Info("Periodic analysis shutting down")
			return
		case <-ctx.Done():
			slog.Info("Context cancelled, periodic analysis shutting down")
			return
		case <-ticker.C:
			if _, err := r.RunOnce(ctx); err != nil {
				if errors.Is(err, services.ErrAnalysisRunning) {
					continue
				}
				slog.Error("Periodic analysis sweep failed", "error", err)
			}
		}
	}
}

// RunOnce analyzes every subscribed list once, each under its own deadline.
// Returns ErrAnalysisRunning when a sweep is already in flight.
func (r *Runner) RunOnce(ctx context.Context) ([]RunOutcome, error) {
	if !r.begin() {
		return nil, services.ErrAnalysisRunning
	}
	defer r.end()

	configs, err := r.configs.List(ctx)
	if err != nil {
		return nil, err
	}

	outcomes := make([]RunOutcome, 0, len(configs))
	for _, cfg := range configs {
		boardID, _ := cfg.Data[services.ConfigKeyBoardID].(string)
		listID, _ := cfg.Data[services.ConfigKeyListID].(string)
		if boardID == "" || listID == "" {
			slog.Warn("Skipping config without board/list ids", "config_id", cfg.ID)
			continue
		}

		outcome := RunOutcome{ConfigID: cfg.ID, BoardID: boardID, ListID: listID}
		report, err := r.runOne(ctx, boardID, listID)
		if err != nil {
			slog.Error("Scheduled analysis failed",
				"config_id", cfg.ID,
				"board_id", boardID,
				"list_id", listID,
				"error", err)
			outcome.Error = err.Error()
		} else {
			outcome.SessionReference = report.SessionReference
			outcome.Summary = &report.Summary
		}
		outcomes = append(outcomes, outcome)

		select {
		case <-r.stopCh:
			return outcomes, nil
		case <-ctx.Done():
			return outcomes, ctx.Err()
		default:
		}
	}
	return outcomes, nil
}

func (r *Runner) runOne(ctx context.Context, boardID, listID string) (*models.ListAnalysis, error) {
	runCtx, cancel := context.WithTimeout(ctx, r.runTimeout)
	defer cancel()
	return r.orchestrator.Run(runCtx, models.AnalyzeListRequest{
		BoardID: boardID,
		ListID:  listID,
	})
}

func (r *Runner) begin() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.running {
		return false
	}
	r.running = true
	return true
}

func (r *Runner) end() {
	r.mu.Lock()
	r.running = false
	r.mu.Unlock()
}
