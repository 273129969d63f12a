// Package orchestrator runs the per-list analysis pipeline: fetch cards,
// arbitrate the cache, batch them through the analyzer, fan actions out to
// the board and commit history in one transaction.
package orchestrator

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/talan-labs/cardtriage/ent"
	"github.com/talan-labs/cardtriage/pkg/models"
	"github.com/talan-labs/cardtriage/pkg/services"
)

// DefaultBatchSize groups cards per LLM call.
const DefaultBatchSize = 8

// BoardGateway is the board-provider surface the pipeline needs. Tokens are
// per call: each run authenticates with its own board token.
type BoardGateway interface {
	ListCards(ctx context.Context, listID, token string) ([]models.CardPayload, error)
	GetCard(ctx context.Context, cardID, token string) (models.CardPayload, error)
	ApplyPriorityLabel(ctx context.Context, cardID, boardID, level, token string) error
	AddComment(ctx context.Context, cardID, text, token string) error
	MoveCard(ctx context.Context, cardID, listID, token string) error
}

// CardAnalyzer produces criticality verdicts. *analyzer.Analyzer satisfies it.
type CardAnalyzer interface {
	AnalyzeCard(ctx context.Context, card models.CardPayload) models.CardVerdict
	AnalyzeBatch(ctx context.Context, cards []models.CardPayload) (map[string]models.CardVerdict, error)
}

// Orchestrator wires the board gateway, the analyzer and the persistence
// services into the list analysis pipeline.
type Orchestrator struct {
	board       BoardGateway
	analyzer    CardAnalyzer
	configs     *services.ConfigService
	sessions    *services.SessionService
	tickets     *services.TicketService
	batchSize   int
	concurrency int
}

// New creates an Orchestrator. batchSize and concurrency fall back to sane
// values when not positive.
func New(board BoardGateway, analyzer CardAnalyzer, configs *services.ConfigService, sessions *services.SessionService, tickets *services.TicketService, batchSize, concurrency int) *Orchestrator {
	if batchSize <= 0 {
		batchSize = DefaultBatchSize
	}
	if concurrency <= 0 {
		concurrency = 1
	}
	return &Orchestrator{
		board:       board,
		analyzer:    analyzer,
		configs:     configs,
		sessions:    sessions,
		tickets:     tickets,
		batchSize:   batchSize,
		concurrency: concurrency,
	}
}

// RunScope identifies the session a run persists into.
type RunScope struct {
	SessionID        int
	SessionReference string
	ScopeID          int
}

// ListParams are the resolved inputs of one list analysis pass. A nil Scope
// disables persistence; a nil Config disables the move step and the config
// snapshot.
type ListParams struct {
	BoardID   string
	ListID    string
	BoardName string
	ListName  string
	Token     string
	Config    *ent.BoardConfig
	Scope     *RunScope
	Force     bool
}

// Run resolves the active config and session scope for a request, then
// executes the pipeline. The request token overrides the config token; an
// analyse_board_id reuses a pre-created scope instead of opening a session.
func (o *Orchestrator) Run(ctx context.Context, req models.AnalyzeListRequest) (*models.ListAnalysis, error) {
	if req.BoardID == "" {
		return nil, services.NewValidationError("board_id", "required")
	}
	if req.ListID == "" {
		return nil, services.NewValidationError("list_id", "required")
	}

	cfg, err := o.configs.ActiveFor(ctx, req.BoardID, req.ListID)
	if err != nil && !errors.Is(err, services.ErrNotFound) {
		return nil, err
	}

	token := req.Token
	if token == "" && cfg != nil {
		token, err = o.configs.DecryptedToken(cfg)
		if err != nil {
			return nil, err
		}
	}
	if token == "" {
		return nil, services.NewValidationError("token", "required")
	}

	params := ListParams{
		BoardID:   req.BoardID,
		ListID:    req.ListID,
		BoardName: req.BoardName,
		ListName:  req.ListName,
		Token:     token,
		Config:    cfg,
		Force:     req.Force,
	}
	if cfg != nil {
		if params.BoardName == "" {
			params.BoardName, _ = cfg.Data[services.ConfigKeyBoardName].(string)
		}
		if params.ListName == "" {
			params.ListName, _ = cfg.Data[services.ConfigKeyListName].(string)
		}
	}

	params.Scope, err = o.resolveScope(ctx, req.AnalyseBoardID)
	if err != nil {
		return nil, err
	}
	return o.AnalyzeList(ctx, params)
}

// resolveScope loads the caller-supplied scope, or opens a fresh session
// with one board scope.
func (o *Orchestrator) resolveScope(ctx context.Context, scopeID int) (*RunScope, error) {
	if scopeID > 0 {
		scope, err := o.sessions.Scope(ctx, scopeID)
		if err != nil {
			return nil, err
		}
		run := &RunScope{SessionID: scope.SessionID, ScopeID: scope.ID}
		if scope.Edges.Session != nil {
			run.SessionReference = scope.Edges.Session.Reference
		}
		return run, nil
	}

	session, err := o.sessions.Create(ctx, false)
	if err != nil {
		return nil, err
	}
	scope, err := o.sessions.AddScope(ctx, session.ID, "")
	if err != nil {
		return nil, err
	}
	return &RunScope{
		SessionID:        session.ID,
		SessionReference: session.Reference,
		ScopeID:          scope.ID,
	}, nil
}

// AnalyzeList runs one pass over a single list. Per-card analysis and action
// failures are captured in the report; only a board fetch failure or
// cancellation fails the whole run.
func (o *Orchestrator) AnalyzeList(ctx context.Context, params ListParams) (*models.ListAnalysis, error) {
	slog.Info("Starting list analysis",
		"board_id", params.BoardID,
		"list_id", params.ListID,
		"force", params.Force)

	cards, err := o.board.ListCards(ctx, params.ListID, params.Token)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch list cards: %w", err)
	}

	report := &models.ListAnalysis{
		BoardID:    params.BoardID,
		BoardName:  params.BoardName,
		ListID:     params.ListID,
		ListName:   params.ListName,
		Results:    []models.CardResult{},
		AnalyzedAt: time.Now(),
	}
	if params.Scope != nil {
		report.SessionReference = params.Scope.SessionReference
	}
	if len(cards) == 0 {
		slog.Info("No cards in list", "list_id", params.ListID)
		report.Summary = summarize(nil)
		return report, nil
	}

	for i := range cards {
		cards[i].BoardID = params.BoardID
		cards[i].BoardName = params.BoardName
		cards[i].ListName = params.ListName
	}

	canonical := ""
	if params.Config != nil {
		canonical, err = services.CanonicalData(params.Config.Data)
		if err != nil {
			return nil, err
		}
	}

	results, queue, err := o.classify(ctx, cards, params, canonical)
	if err != nil {
		return nil, err
	}

	verdicts, err := o.analyzeQueue(ctx, queue)
	if err != nil {
		return nil, err
	}

	commits := make([]services.CardCommit, 0, len(queue))
	for _, card := range queue {
		verdict := verdicts[card.ID]
		result := models.CardResult{
			CardID:           card.ID,
			CardName:         card.Name,
			Success:          verdict.Success,
			CriticalityLevel: verdict.CriticalityLevel,
			Justification:    verdict.Justification,
			Error:            verdict.Error,
		}
		if verdict.Success && models.IsActionable(verdict.CriticalityLevel) {
			commit := services.CardCommit{
				Card:          card,
				Criticality:   verdict.CriticalityLevel,
				Justification: verdict.Justification,
			}
			result.Actions = o.applyActions(ctx, card, verdict, params, &commit)
			commits = append(commits, commit)
		}
		results = append(results, result)
	}

	report.Results = results
	report.Summary = summarize(results)

	if params.Scope != nil && len(commits) > 0 {
		// Skip the commit once the deadline passed: no partial history.
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("analysis canceled before commit: %w", err)
		}
		saved, err := o.tickets.CommitRun(ctx, services.CommitRunRequest{
			SessionID:        params.Scope.SessionID,
			SessionReference: params.Scope.SessionReference,
			ScopeID:          params.Scope.ScopeID,
			ListID:           params.ListID,
			ConfigSnapshot:   canonical,
			Cards:            commits,
		})
		if err != nil {
			// Board actions already happened; the report still stands.
			slog.Error("Run commit failed", "session", params.Scope.SessionReference, "error", err)
		} else {
			report.Persisted = saved > 0
			report.TicketsSaved = saved
		}
	}

	slog.Info("List analysis finished",
		"list_id", params.ListID,
		"total_cards", report.Summary.TotalCards,
		"analyzed", report.Summary.Analyzed,
		"persisted", report.TicketsSaved)
	return report, nil
}

// classify splits cards into cached results and a queue for the analyzer.
func (o *Orchestrator) classify(ctx context.Context, cards []models.CardPayload, params ListParams, canonical string) ([]models.CardResult, []models.CardPayload, error) {
	ids := make([]string, 0, len(cards))
	for _, card := range cards {
		ids = append(ids, card.ID)
	}
	known, err := o.tickets.ByExternalIDs(ctx, ids)
	if err != nil {
		return nil, nil, err
	}

	results := make([]models.CardResult, 0, len(cards))
	queue := make([]models.CardPayload, 0, len(cards))
	for _, card := range cards {
		t, ok := known[card.ID]
		if ok && !params.Force && cacheValid(t, canonical) {
			results = append(results, cachedResult(card, t))
			continue
		}
		queue = append(queue, card)
	}
	if cached := len(results); cached > 0 {
		slog.Info("Reusing cached verdicts", "cached", cached, "queued", len(queue))
	}
	return results, queue, nil
}

// cacheValid reports whether the ticket's last analysis ran under the config
// currently in force. Both sides empty means no config was ever involved.
func cacheValid(t *ent.Ticket, canonical string) bool {
	if len(t.Edges.Histories) == 0 {
		return false
	}
	snapshot, _ := t.Metadata[services.MetadataKeyLastAnalysisConfig].(string)
	return snapshot == canonical
}

// cachedResult synthesizes a report entry from the latest history row.
func cachedResult(card models.CardPayload, t *ent.Ticket) models.CardResult {
	latest := t.Edges.Histories[0]
	result := models.CardResult{
		CardID:           card.ID,
		CardName:         card.Name,
		Success:          true,
		CriticalityLevel: strings.ToUpper(string(latest.Criticality)),
		FromCache:        true,
	}
	if text, ok := latest.Justification["justification"].(string); ok {
		result.Justification = text
	}
	return result
}

// analyzeQueue fans queued cards out to the analyzer in fixed-size batches,
// a bounded number in flight at once. An unusable batch response reroutes
// that batch card by card; cards still missing afterwards get one more
// individual pass. Only cancellation aborts.
func (o *Orchestrator) analyzeQueue(ctx context.Context, queue []models.CardPayload) (map[string]models.CardVerdict, error) {
	verdicts := make(map[string]models.CardVerdict, len(queue))
	if len(queue) == 0 {
		return verdicts, nil
	}

	batches := chunkCards(queue, o.batchSize)
	slog.Info("Analyzing cards", "cards", len(queue), "batches", len(batches), "batch_size", o.batchSize)

	slots := make([]map[string]models.CardVerdict, len(batches))
	g, groupCtx := errgroup.WithContext(ctx)
	g.SetLimit(o.concurrency)
	for i, batch := range batches {
		g.Go(func() error {
			if err := groupCtx.Err(); err != nil {
				return err
			}
			got, err := o.analyzer.AnalyzeBatch(groupCtx, batch)
			if err != nil {
				got = make(map[string]models.CardVerdict, len(batch))
				for _, card := range batch {
					if err := groupCtx.Err(); err != nil {
						return err
					}
					got[card.ID] = o.analyzer.AnalyzeCard(groupCtx, card)
				}
			}
			slots[i] = got
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("analysis canceled: %w", err)
	}
	for _, slot := range slots {
		for id, verdict := range slot {
			verdicts[id] = verdict
		}
	}

	for _, card := range queue {
		if _, ok := verdicts[card.ID]; ok {
			continue
		}
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("analysis canceled: %w", err)
		}
		slog.Warn("Missing batch verdict, analyzing card individually", "card_id", card.ID)
		verdicts[card.ID] = o.analyzer.AnalyzeCard(ctx, card)
	}
	return verdicts, nil
}

// applyActions runs label, comment and move for one card in that order.
// Failures are recorded per action and never stop the remaining steps.
func (o *Orchestrator) applyActions(ctx context.Context, card models.CardPayload, verdict models.CardVerdict, params ListParams, commit *services.CardCommit) map[string]any {
	actions := make(map[string]any)

	if err := o.board.ApplyPriorityLabel(ctx, card.ID, params.BoardID, verdict.CriticalityLevel, params.Token); err != nil {
		slog.Error("Label action failed", "card_id", card.ID, "error", err)
		actions["label_error"] = err.Error()
	} else {
		actions["label_added"] = true
	}

	if verdict.Justification != "" {
		if err := o.board.AddComment(ctx, card.ID, verdict.Justification, params.Token); err != nil {
			slog.Error("Comment action failed", "card_id", card.ID, "error", err)
			actions["comment_error"] = err.Error()
		} else {
			actions["comment_added"] = true
		}
	}

	targetID, targetName := services.TargetList(params.Config)
	if targetID != "" {
		if err := o.board.MoveCard(ctx, card.ID, targetID, params.Token); err != nil {
			slog.Error("Move action failed", "card_id", card.ID, "error", err)
			actions["card_moved"] = false
			actions["move_error"] = err.Error()
		} else {
			actions["card_moved"] = true
			actions["target_list_id"] = targetID
			if targetName != "" {
				actions["target_list_name"] = targetName
			}
			commit.MovedToListID = targetID
			commit.MovedToListName = targetName
		}
	}
	return actions
}

// AnalyzeCard evaluates a single card ad hoc: no session, no history row,
// no board actions.
func (o *Orchestrator) AnalyzeCard(ctx context.Context, cardID, token string) (models.CardVerdict, error) {
	if cardID == "" {
		return models.CardVerdict{}, services.NewValidationError("card_id", "required")
	}
	if token == "" {
		return models.CardVerdict{}, services.NewValidationError("token", "required")
	}
	card, err := o.board.GetCard(ctx, cardID, token)
	if err != nil {
		return models.CardVerdict{}, fmt.Errorf("failed to fetch card: %w", err)
	}
	return o.analyzer.AnalyzeCard(ctx, card), nil
}

func chunkCards(cards []models.CardPayload, size int) [][]models.CardPayload {
	batches := make([][]models.CardPayload, 0, (len(cards)+size-1)/size)
	for start := 0; start < len(cards); start += size {
		end := start + size
		if end > len(cards) {
			end = len(cards)
		}
		batches = append(batches, cards[start:end])
	}
	return batches
}

// summarize aggregates run counts. Every successful verdict counts toward
// the critical total; per-level counts only cover HIGH, MEDIUM and LOW.
func summarize(results []models.CardResult) models.AnalysisSummary {
	summary := models.AnalysisSummary{TotalCards: len(results)}
	for _, r := range results {
		if !r.Success {
			summary.Errors++
			continue
		}
		summary.Analyzed++
		summary.CriticalTotal++
		switch r.CriticalityLevel {
		case models.CriticalityHigh:
			summary.High++
		case models.CriticalityMedium:
			summary.Medium++
		case models.CriticalityLow:
			summary.Low++
		}
	}
	if summary.TotalCards > 0 {
		rate := float64(summary.Analyzed) / float64(summary.TotalCards) * 100
		summary.SuccessRate = math.Round(rate*100) / 100
	}
	return summary
}
