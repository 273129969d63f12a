package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/talan-labs/cardtriage/ent"
	"github.com/talan-labs/cardtriage/ent/analysishistory"
	"github.com/talan-labs/cardtriage/pkg/models"
)

// CardReanalyzer re-evaluates a card against the current grounding corpus.
// *analyzer.Analyzer satisfies it.
type CardReanalyzer interface {
	Reanalyze(ctx context.Context, card models.CardPayload, previous *models.PreviousAnalysis) models.CardVerdict
}

// ReanalysisService re-evaluates an already tracked ticket. It is a pure
// re-evaluation: a fresh reanalyse session records the new verdict, but no
// board action is replayed.
type ReanalysisService struct {
	client   *ent.Client
	sessions *SessionService
	tickets  *TicketService
	analyzer CardReanalyzer
}

// NewReanalysisService creates a new ReanalysisService.
func NewReanalysisService(client *ent.Client, sessions *SessionService, tickets *TicketService, analyzer CardReanalyzer) *ReanalysisService {
	return &ReanalysisService{
		client:   client,
		sessions: sessions,
		tickets:  tickets,
		analyzer: analyzer,
	}
}

// Reanalyze re-evaluates the ticket registered for a board card, using the
// card snapshot stored in its metadata. A successful verdict is appended to
// a fresh reanalyse session; an OUT_OF_CONTEXT verdict is reported but not
// persisted.
func (s *ReanalysisService) Reanalyze(ctx context.Context, externalID string) (*models.ReanalysisResult, error) {
	t, err := s.tickets.GetByExternalID(ctx, externalID)
	if err != nil {
		return nil, err
	}

	card, err := cardFromMetadata(t)
	if err != nil {
		return nil, err
	}

	previous, err := s.latestAnalysis(ctx, t)
	if err != nil {
		return nil, err
	}

	verdict := s.analyzer.Reanalyze(ctx, card, previous)
	if !verdict.Success {
		return nil, fmt.Errorf("reanalysis of ticket %s failed: %s", externalID, verdict.Error)
	}

	now := time.Now()
	result := &models.ReanalysisResult{
		TicketID:         externalID,
		CardName:         card.Name,
		Previous:         previous,
		CriticalityLevel: verdict.CriticalityLevel,
		Justification:    verdict.Justification,
		AnalyzedAt:       now,
	}
	if previous != nil {
		result.Changed = !strings.EqualFold(previous.CriticalityLevel, verdict.CriticalityLevel)
	}

	if !models.IsActionable(verdict.CriticalityLevel) {
		slog.Info("Reanalysis verdict out of context, nothing persisted", "ticket_id", externalID)
		return result, nil
	}

	session, err := s.sessions.Create(ctx, true)
	if err != nil {
		return nil, err
	}
	if _, err := s.sessions.AddScope(ctx, session.ID, ""); err != nil {
		return nil, err
	}

	if err := s.persist(ctx, t, session, verdict, now); err != nil {
		return nil, err
	}

	result.SessionID = session.ID
	result.SessionReference = session.Reference
	result.Persisted = true
	slog.Info("Ticket reanalyzed",
		"ticket_id", externalID,
		"session", session.Reference,
		"criticality", verdict.CriticalityLevel,
		"changed", result.Changed)
	return result, nil
}

// persist appends the history row and refreshes the cached verdict in one
// transaction.
func (s *ReanalysisService) persist(ctx context.Context, t *ent.Ticket, session *ent.AnalysisSession, verdict models.CardVerdict, now time.Time) error {
	tx, err := s.client.Tx(ctx)
	if err != nil {
		return fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	level := strings.ToLower(verdict.CriticalityLevel)
	_, err = tx.AnalysisHistory.Create().
		SetTicketID(t.ID).
		SetSessionID(session.ID).
		SetCriticality(analysishistory.Criticality(level)).
		SetJustification(map[string]any{"justification": verdict.Justification}).
		SetAnalyzedAt(now).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to append reanalysis history: %w", err)
	}

	metadata := make(map[string]any, len(t.Metadata)+1)
	for k, v := range t.Metadata {
		metadata[k] = v
	}
	metadata[MetadataKeyAnalysisResult] = map[string]any{
		"criticality_level": level,
		"justification":     verdict.Justification,
		"analyzed_at":       now.Format(time.RFC3339),
		"session_reference": session.Reference,
	}
	if _, err := tx.Ticket.UpdateOne(t).SetMetadata(metadata).Save(ctx); err != nil {
		return fmt.Errorf("failed to update ticket metadata: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit reanalysis: %w", err)
	}
	return nil
}

// latestAnalysis loads the most recent history row as prompt context, or nil
// for a ticket that was never analyzed.
func (s *ReanalysisService) latestAnalysis(ctx context.Context, t *ent.Ticket) (*models.PreviousAnalysis, error) {
	latest, err := s.client.AnalysisHistory.Query().
		Where(analysishistory.TicketIDEQ(t.ID)).
		Order(ent.Desc(analysishistory.FieldAnalyzedAt)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to load previous analysis: %w", err)
	}

	previous := &models.PreviousAnalysis{
		CriticalityLevel: string(latest.Criticality),
		AnalyzedAt:       latest.AnalyzedAt,
	}
	if text, ok := latest.Justification["justification"].(string); ok {
		previous.Justification = text
	}
	return previous, nil
}

// cardFromMetadata rebuilds the analyzer payload from the card snapshot a
// run stored on the ticket.
func cardFromMetadata(t *ent.Ticket) (models.CardPayload, error) {
	raw, err := json.Marshal(t.Metadata)
	if err != nil {
		return models.CardPayload{}, fmt.Errorf("failed to read ticket metadata: %w", err)
	}
	var card models.CardPayload
	if err := json.Unmarshal(raw, &card); err != nil {
		return models.CardPayload{}, fmt.Errorf("failed to read ticket metadata: %w", err)
	}
	card.ID = t.ExternalID
	if card.BoardName == "" {
		card.BoardName = t.BoardName
	}
	return card, nil
}
