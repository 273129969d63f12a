package services

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"time"

	"github.com/talan-labs/cardtriage/ent"
	"github.com/talan-labs/cardtriage/ent/analysishistory"
	"github.com/talan-labs/cardtriage/ent/analysissession"
	"github.com/talan-labs/cardtriage/ent/boardscope"
	"github.com/talan-labs/cardtriage/pkg/models"
)

// Session reference layouts. Bulk runs have minute resolution, reanalyses
// second resolution.
const (
	bulkReferencePrefix  = "analyse_"
	bulkReferenceLayout  = "20060102_1504"
	reanalyseRefPrefix   = "REANALYSE-"
	reanalyseRefLayout   = "20060102_150405"
	referenceMaxAttempts = 5
)

// SessionService manages analysis session lifecycle
type SessionService struct {
	client *ent.Client
}

// NewSessionService creates a new SessionService
func NewSessionService(client *ent.Client) *SessionService {
	return &SessionService{client: client}
}

// GenerateSessionReference builds the human-readable run id for a session
// created at t.
func GenerateSessionReference(reanalyse bool, t time.Time) string {
	if reanalyse {
		return reanalyseRefPrefix + t.Format(reanalyseRefLayout)
	}
	return bulkReferencePrefix + t.Format(bulkReferenceLayout)
}

// Create opens a new session. Reference collisions (two runs in the same
// minute) are resolved with a numeric suffix.
func (s *SessionService) Create(ctx context.Context, reanalyse bool) (*ent.AnalysisSession, error) {
	base := GenerateSessionReference(reanalyse, time.Now())

	var lastErr error
	for attempt := 0; attempt < referenceMaxAttempts; attempt++ {
		ref := base
		if attempt > 0 {
			ref = base + "_" + strconv.Itoa(attempt+1)
		}

		session, err := s.client.AnalysisSession.Create().
			SetReference(ref).
			SetReanalyse(reanalyse).
			Save(ctx)
		if err == nil {
			return session, nil
		}
		if !ent.IsConstraintError(err) {
			return nil, fmt.Errorf("failed to create session: %w", err)
		}
		lastErr = err
	}
	return nil, fmt.Errorf("failed to create session after %d attempts: %w", referenceMaxAttempts, lastErr)
}

// AddScope attaches a board scope to a session.
func (s *SessionService) AddScope(ctx context.Context, sessionID int, platform string) (*ent.BoardScope, error) {
	if platform == "" {
		platform = "trello"
	}
	scope, err := s.client.BoardScope.Create().
		SetSessionID(sessionID).
		SetPlatform(platform).
		Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to create board scope: %w", err)
	}
	return scope, nil
}

// Get returns a session with its scopes loaded.
func (s *SessionService) Get(ctx context.Context, id int) (*ent.AnalysisSession, error) {
	session, err := s.client.AnalysisSession.Query().
		Where(analysissession.IDEQ(id)).
		WithScopes().
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get session: %w", err)
	}
	return session, nil
}

// Scope returns a board scope with its owning session loaded.
func (s *SessionService) Scope(ctx context.Context, scopeID int) (*ent.BoardScope, error) {
	scope, err := s.client.BoardScope.Query().
		Where(boardscope.IDEQ(scopeID)).
		WithSession().
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get board scope: %w", err)
	}
	return scope, nil
}

// sessionAggregate collects per-session history counts.
type sessionAggregate struct {
	tickets     int
	criticality models.CriticalityBreakdown
}

// List returns sessions with their aggregates. createdAt filters run in the
// database; tickets_count filtering and ordering need the aggregate and run
// on the fetched set (session cardinality is run-scale, not card-scale).
func (s *SessionService) List(ctx context.Context, req models.ListSessionsRequest) (*models.SessionList, error) {
	query := s.client.AnalysisSession.Query().WithScopes()

	countFilters := make([]models.Filter, 0, len(req.Filters))
	for _, f := range req.Filters {
		switch f.Field {
		case "createdAt":
			ts, err := parseTimeValue(f.Value)
			if err != nil {
				return nil, NewValidationError("filters", fmt.Sprintf("invalid createdAt value %q", f.Value))
			}
			switch f.Op {
			case "gte":
				query = query.Where(analysissession.CreatedAtGTE(ts))
			case "lte":
				query = query.Where(analysissession.CreatedAtLTE(ts))
			default:
				return nil, NewValidationError("filters", fmt.Sprintf("unsupported createdAt op %q", f.Op))
			}
		case "tickets_count":
			if _, err := strconv.Atoi(f.Value); err != nil {
				return nil, NewValidationError("filters", fmt.Sprintf("invalid tickets_count value %q", f.Value))
			}
			switch f.Op {
			case "gte", "lte", "eq":
				countFilters = append(countFilters, f)
			default:
				return nil, NewValidationError("filters", fmt.Sprintf("unsupported tickets_count op %q", f.Op))
			}
		default:
			return nil, NewValidationError("filters", fmt.Sprintf("unsupported filter field %q", f.Field))
		}
	}

	direction := req.OrderDirection
	if direction != "asc" && direction != "desc" {
		direction = "desc"
	}
	orderBy := req.OrderBy
	if orderBy != "tickets_count" {
		orderBy = "createdAt"
	}

	if direction == "asc" {
		query = query.Order(ent.Asc(analysissession.FieldCreatedAt))
	} else {
		query = query.Order(ent.Desc(analysissession.FieldCreatedAt))
	}

	sessions, err := query.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list sessions: %w", err)
	}

	aggregates, err := s.loadAggregates(ctx)
	if err != nil {
		return nil, err
	}

	items := make([]models.SessionListItem, 0, len(sessions))
	for _, session := range sessions {
		agg := aggregates[session.ID]
		if !matchesCountFilters(agg.tickets, countFilters) {
			continue
		}
		item := models.SessionListItem{
			ID:           session.ID,
			Reference:    session.Reference,
			Reanalyse:    session.Reanalyse,
			CreatedAt:    session.CreatedAt,
			TicketsCount: agg.tickets,
			Criticality:  agg.criticality,
		}
		for _, scope := range session.Edges.Scopes {
			item.Boards = append(item.Boards, models.SessionBoard{ID: scope.ID, Platform: scope.Platform})
		}
		items = append(items, item)
	}

	if orderBy == "tickets_count" {
		sort.SliceStable(items, func(i, j int) bool {
			if direction == "asc" {
				return items[i].TicketsCount < items[j].TicketsCount
			}
			return items[i].TicketsCount > items[j].TicketsCount
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

	return &models.SessionList{
		Items:      items[start:end],
		Pagination: pagination,
	}, nil
}

// loadAggregates fetches history counts grouped by session and criticality in
// one query.
func (s *SessionService) loadAggregates(ctx context.Context) (map[int]sessionAggregate, error) {
	var rows []struct {
		SessionID   int    `json:"session_id"`
		Criticality string `json:"criticality"`
		Count       int    `json:"count"`
	}
	err := s.client.AnalysisHistory.Query().
		GroupBy(analysishistory.FieldSessionID, analysishistory.FieldCriticality).
		Aggregate(ent.Count()).
		Scan(ctx, &rows)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate session histories: %w", err)
	}

	aggregates := make(map[int]sessionAggregate, len(rows))
	for _, row := range rows {
		agg := aggregates[row.SessionID]
		agg.tickets += row.Count
		switch row.Criticality {
		case "high":
			agg.criticality.High += row.Count
		case "medium":
			agg.criticality.Medium += row.Count
		case "low":
			agg.criticality.Low += row.Count
		}
		aggregates[row.SessionID] = agg
	}
	return aggregates, nil
}

func matchesCountFilters(count int, filters []models.Filter) bool {
	for _, f := range filters {
		want, _ := strconv.Atoi(f.Value)
		switch f.Op {
		case "gte":
			if count < want {
				return false
			}
		case "lte":
			if count > want {
				return false
			}
		case "eq":
			if count != want {
				return false
			}
		}
	}
	return true
}

// parseTimeValue accepts RFC3339 timestamps and plain dates.
func parseTimeValue(raw string) (time.Time, error) {
	if ts, err := time.Parse(time.RFC3339, raw); err == nil {
		return ts, nil
	}
	return time.Parse("2006-01-02", raw)
}
