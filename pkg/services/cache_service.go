package services

import (
	"context"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqljson"
	"github.com/talan-labs/cardtriage/ent"
	"github.com/talan-labs/cardtriage/ent/predicate"
	"github.com/talan-labs/cardtriage/ent/ticket"
	"github.com/talan-labs/cardtriage/pkg/models"
)

// CacheService manages the cached verdicts stored in ticket metadata. A card
// with a cached verdict and an unchanged config snapshot skips the LLM on the
// next run; clearing the cache forces reanalysis.
type CacheService struct {
	client *ent.Client
}

// NewCacheService creates a new CacheService
func NewCacheService(client *ent.Client) *CacheService {
	return &CacheService{client: client}
}

// Status reports cache occupancy overall and per board.
func (s *CacheService) Status(ctx context.Context) (*models.CacheStatus, error) {
	total, err := s.client.Ticket.Query().Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count tickets: %w", err)
	}

	cached, err := s.client.Ticket.Query().
		Where(ticket.MetadataNotNil()).
		Where(predicate.Ticket(func(s *sql.Selector) {
			s.Where(sqljson.HasKey(ticket.FieldMetadata, sqljson.Path(MetadataKeyAnalysisResult)))
		})).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count cached tickets: %w", err)
	}

	byBoard := make(map[string]int)
	for _, t := range cached {
		if t.BoardName != "" {
			byBoard[t.BoardName]++
		}
	}

	return &models.CacheStatus{
		TotalTickets:  total,
		CachedTickets: len(cached),
		ByBoard:       byBoard,
	}, nil
}

// Clear removes the cached verdict and config snapshot of one ticket.
func (s *CacheService) Clear(ctx context.Context, externalID string) error {
	if externalID == "" {
		return NewValidationError("ticket_id", "required")
	}
	t, err := s.client.Ticket.Query().
		Where(ticket.ExternalIDEQ(externalID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to get ticket: %w", err)
	}
	return clearTicketCache(ctx, t)
}

// ClearAll removes cached verdicts from every ticket and returns how many
// were cleared.
func (s *CacheService) ClearAll(ctx context.Context) (int, error) {
	cached, err := s.client.Ticket.Query().
		Where(ticket.MetadataNotNil()).
		Where(predicate.Ticket(func(s *sql.Selector) {
			s.Where(sqljson.HasKey(ticket.FieldMetadata, sqljson.Path(MetadataKeyAnalysisResult)))
		})).
		All(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to load cached tickets: %w", err)
	}

	for _, t := range cached {
		if err := clearTicketCache(ctx, t); err != nil {
			return 0, err
		}
	}
	return len(cached), nil
}

func clearTicketCache(ctx context.Context, t *ent.Ticket) error {
	if t.Metadata == nil {
		return nil
	}
	metadata := make(map[string]any, len(t.Metadata))
	for k, v := range t.Metadata {
		if k == MetadataKeyAnalysisResult || k == MetadataKeyLastAnalysisConfig {
			continue
		}
		metadata[k] = v
	}
	if _, err := t.Update().SetMetadata(metadata).Save(ctx); err != nil {
		return fmt.Errorf("failed to clear ticket cache: %w", err)
	}
	return nil
}
