package services

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/talan-labs/cardtriage/ent"
	"github.com/talan-labs/cardtriage/ent/analysishistory"
	"github.com/talan-labs/cardtriage/ent/ticket"
	"github.com/talan-labs/cardtriage/pkg/models"
)

// Ticket metadata keys written by analysis runs.
const (
	MetadataKeyLastAnalysisConfig = "last_analysis_config"
	MetadataKeyAnalysisResult     = "analysis_result"
)

// TicketService manages the per-board ticket registry and its append-only
// analysis history.
type TicketService struct {
	client *ent.Client
}

// NewTicketService creates a new TicketService
func NewTicketService(client *ent.Client) *TicketService {
	return &TicketService{client: client}
}

// GetByExternalID returns the ticket registered for a board card.
func (s *TicketService) GetByExternalID(ctx context.Context, externalID string) (*ent.Ticket, error) {
	if externalID == "" {
		return nil, NewValidationError("ticket_id", "required")
	}
	t, err := s.client.Ticket.Query().
		Where(ticket.ExternalIDEQ(externalID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get ticket: %w", err)
	}
	return t, nil
}

// ByExternalIDs returns the registered tickets for a set of cards, each with
// its history loaded newest first. Unknown cards are simply absent from the
// map.
func (s *TicketService) ByExternalIDs(ctx context.Context, externalIDs []string) (map[string]*ent.Ticket, error) {
	if len(externalIDs) == 0 {
		return map[string]*ent.Ticket{}, nil
	}
	tickets, err := s.client.Ticket.Query().
		Where(ticket.ExternalIDIn(externalIDs...)).
		WithHistories(func(q *ent.AnalysisHistoryQuery) {
			q.Order(ent.Desc(analysishistory.FieldAnalyzedAt))
		}).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load tickets: %w", err)
	}
	byID := make(map[string]*ent.Ticket, len(tickets))
	for _, t := range tickets {
		byID[t.ExternalID] = t
	}
	return byID, nil
}

// History returns every analysis of a card, newest first, with session
// references attached.
func (s *TicketService) History(ctx context.Context, externalID string) ([]models.HistoryEntry, error) {
	t, err := s.GetByExternalID(ctx, externalID)
	if err != nil {
		return nil, err
	}

	histories, err := s.client.AnalysisHistory.Query().
		Where(analysishistory.TicketIDEQ(t.ID)).
		WithSession().
		Order(ent.Desc(analysishistory.FieldAnalyzedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load ticket history: %w", err)
	}

	entries := make([]models.HistoryEntry, 0, len(histories))
	for _, h := range histories {
		entry := models.HistoryEntry{
			ID:               h.ID,
			CriticalityLevel: string(h.Criticality),
			Justification:    h.Justification,
			AnalyzedAt:       h.AnalyzedAt,
		}
		if h.Edges.Session != nil {
			entry.SessionReference = h.Edges.Session.Reference
			entry.Reanalyse = h.Edges.Session.Reanalyse
		}
		entries = append(entries, entry)
	}
	return entries, nil
}

// LatestAnalysis returns the cached verdict of a card, or ErrNotFound when
// the card was never analyzed.
func (s *TicketService) LatestAnalysis(ctx context.Context, externalID string) (map[string]any, error) {
	t, err := s.GetByExternalID(ctx, externalID)
	if err != nil {
		return nil, err
	}
	result, ok := t.Metadata[MetadataKeyAnalysisResult].(map[string]any)
	if !ok || len(result) == 0 {
		return nil, ErrNotFound
	}
	return result, nil
}

// List returns tickets with their latest verdicts. criticality_level and name
// filters match on the stored verdict snapshot, as the listing serves the
// snapshot rather than a join.
func (s *TicketService) List(ctx context.Context, req models.ListTicketsRequest) (*models.TicketList, error) {
	for _, f := range req.Filters {
		switch {
		case f.Field == "criticality_level" && f.Op == "eq":
		case f.Field == "name" && f.Op == "contains":
		default:
			return nil, NewValidationError("filters", fmt.Sprintf("unsupported filter %s:%s", f.Field, f.Op))
		}
	}

	direction := req.OrderDirection
	if direction != "asc" && direction != "desc" {
		direction = "desc"
	}

	query := s.client.Ticket.Query()
	if req.AnalyseID > 0 {
		query = query.Where(ticket.HasHistoriesWith(analysishistory.SessionIDEQ(req.AnalyseID)))
	}
	if direction == "asc" {
		query = query.Order(ent.Asc(ticket.FieldCreatedAt))
	} else {
		query = query.Order(ent.Desc(ticket.FieldCreatedAt))
	}

	tickets, err := query.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list tickets: %w", err)
	}

	items := make([]models.TicketListItem, 0, len(tickets))
	for _, t := range tickets {
		item := ticketListItem(t)
		if !matchesTicketFilters(item, req.Filters) {
			continue
		}
		items = append(items, item)
	}

	if req.OrderBy == "name" {
		sort.SliceStable(items, func(i, j int) bool {
			less := strings.ToLower(items[i].Name) < strings.ToLower(items[j].Name)
			if direction == "asc" {
				return less
			}
			return !less
		})
	}

	page := req.Page
	if page < 1 {
		page = models.DefaultPage
	}
	perPage := models.NormalizePerPage(req.PerPage)
	pagination := models.NewPagination(page, perPage, len(items))

	start := (page - 1) * perPage
	if start > len(items) {
		start = len(items)
	}
	end := start + perPage
	if end > len(items) {
		end = len(items)
	}

	return &models.TicketList{
		Items:      items[start:end],
		Pagination: pagination,
	}, nil
}

// CardCommit is the persistence payload of one analyzed card.
type CardCommit struct {
	Card            models.CardPayload
	Criticality     string // uppercase verdict; stored lowercase
	Justification   string
	MovedToListID   string // set when the card was moved during the run
	MovedToListName string
}

// CommitRunRequest carries everything a run persists in one transaction.
type CommitRunRequest struct {
	SessionID        int
	SessionReference string
	ScopeID          int
	ListID           string
	ConfigSnapshot   string
	Cards            []CardCommit
}

// CommitRun registers tickets and appends history rows for a whole run inside
// one transaction. A partially failed run persists nothing.
func (s *TicketService) CommitRun(ctx context.Context, req CommitRunRequest) (int, error) {
	if len(req.Cards) == 0 {
		return 0, nil
	}

	tx, err := s.client.Tx(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	now := time.Now()
	for _, commit := range req.Cards {
		t, err := ensureTicket(ctx, tx, req, commit, now)
		if err != nil {
			return 0, err
		}

		level := strings.ToLower(commit.Criticality)
		_, err = tx.AnalysisHistory.Create().
			SetTicketID(t.ID).
			SetSessionID(req.SessionID).
			SetCriticality(analysishistory.Criticality(level)).
			SetJustification(map[string]any{"justification": commit.Justification}).
			SetAnalyzedAt(now).
			Save(ctx)
		if err != nil {
			return 0, fmt.Errorf("failed to append history for card %s: %w", commit.Card.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("failed to commit run: %w", err)
	}
	return len(req.Cards), nil
}

// ensureTicket registers a card on first sight (scope frozen at creation).
// An already registered ticket keeps its card snapshot; only the move, the
// config snapshot and the cached verdict are written back.
func ensureTicket(ctx context.Context, tx *ent.Tx, req CommitRunRequest, commit CardCommit, now time.Time) (*ent.Ticket, error) {
	card := commit.Card

	existing, err := tx.Ticket.Query().
		Where(ticket.ExternalIDEQ(card.ID)).
		Only(ctx)
	if err != nil && !ent.IsNotFound(err) {
		return nil, fmt.Errorf("failed to look up ticket %s: %w", card.ID, err)
	}

	if existing == nil {
		created, err := tx.Ticket.Create().
			SetExternalID(card.ID).
			SetBoardScopeID(req.ScopeID).
			SetBoardName(card.BoardName).
			SetMetadata(initialTicketMetadata(req, commit, now)).
			Save(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to register ticket %s: %w", card.ID, err)
		}
		return created, nil
	}

	updated, err := existing.Update().
		SetMetadata(updatedTicketMetadata(existing.Metadata, req, commit, now)).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to update ticket %s: %w", card.ID, err)
	}
	return updated, nil
}

// initialTicketMetadata is the full card snapshot stored when a ticket is
// first registered.
func initialTicketMetadata(req CommitRunRequest, commit CardCommit, now time.Time) map[string]any {
	card := commit.Card
	metadata := map[string]any{
		"name":       card.Name,
		"desc":       card.Desc,
		"due":        card.Due,
		"url":        card.URL,
		"labels":     card.Labels,
		"members":    card.Members,
		"board_id":   card.BoardID,
		"board_name": card.BoardName,
		"list_id":    req.ListID,
		"list_name":  card.ListName,
	}
	applyRunMetadata(metadata, req, commit, now)
	return metadata
}

// updatedTicketMetadata rewrites only the keys an analysis run owns: the
// list position after a move, the config snapshot and the verdict cache.
func updatedTicketMetadata(existing map[string]any, req CommitRunRequest, commit CardCommit, now time.Time) map[string]any {
	metadata := make(map[string]any, len(existing)+4)
	for k, v := range existing {
		metadata[k] = v
	}
	applyRunMetadata(metadata, req, commit, now)
	return metadata
}

func applyRunMetadata(metadata map[string]any, req CommitRunRequest, commit CardCommit, now time.Time) {
	if commit.MovedToListID != "" {
		metadata["list_id"] = commit.MovedToListID
		if commit.MovedToListName != "" {
			metadata["list_name"] = commit.MovedToListName
		}
		metadata["last_moved_at"] = now.Format(time.RFC3339)
	}

	if req.ConfigSnapshot != "" {
		metadata[MetadataKeyLastAnalysisConfig] = req.ConfigSnapshot
	} else {
		delete(metadata, MetadataKeyLastAnalysisConfig)
	}

	metadata[MetadataKeyAnalysisResult] = map[string]any{
		"criticality_level": strings.ToLower(commit.Criticality),
		"justification":     commit.Justification,
		"analyzed_at":       now.Format(time.RFC3339),
		"session_reference": req.SessionReference,
	}
}

func ticketListItem(t *ent.Ticket) models.TicketListItem {
	item := models.TicketListItem{
		ID:         t.ID,
		ExternalID: t.ExternalID,
		BoardName:  t.BoardName,
		CreatedAt:  t.CreatedAt,
		UpdatedAt:  t.UpdatedAt,
	}
	if name, ok := t.Metadata["name"].(string); ok {
		item.Name = name
	}
	if result, ok := t.Metadata[MetadataKeyAnalysisResult].(map[string]any); ok {
		item.AnalysisResult = result
		if level, ok := result["criticality_level"].(string); ok {
			item.CriticalityLevel = level
		}
	}
	return item
}

func matchesTicketFilters(item models.TicketListItem, filters []models.Filter) bool {
	for _, f := range filters {
		switch f.Field {
		case "criticality_level":
			if !strings.EqualFold(item.CriticalityLevel, f.Value) {
				return false
			}
		case "name":
			if !strings.Contains(strings.ToLower(item.Name), strings.ToLower(f.Value)) {
				return false
			}
		}
	}
	return true
}
