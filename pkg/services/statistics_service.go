package services

import (
	"context"
	"fmt"

	"github.com/talan-labs/cardtriage/ent"
	"github.com/talan-labs/cardtriage/ent/analysishistory"
	"github.com/talan-labs/cardtriage/ent/analysissession"
	"github.com/talan-labs/cardtriage/ent/ticket"
	"github.com/talan-labs/cardtriage/pkg/models"
)

// StatisticsService aggregates the analysis corpus for reporting.
type StatisticsService struct {
	client *ent.Client
}

// NewStatisticsService creates a new StatisticsService
func NewStatisticsService(client *ent.Client) *StatisticsService {
	return &StatisticsService{client: client}
}

// Global computes corpus-wide totals, the criticality distribution and the
// per-board ticket spread.
func (s *StatisticsService) Global(ctx context.Context) (*models.Statistics, error) {
	stats := &models.Statistics{ByBoard: make(map[string]int)}

	var err error
	if stats.TotalTickets, err = s.client.Ticket.Query().Count(ctx); err != nil {
		return nil, fmt.Errorf("failed to count tickets: %w", err)
	}
	if stats.TotalSessions, err = s.client.AnalysisSession.Query().Count(ctx); err != nil {
		return nil, fmt.Errorf("failed to count sessions: %w", err)
	}
	if stats.TotalReanalyses, err = s.client.AnalysisSession.Query().
		Where(analysissession.ReanalyseEQ(true)).
		Count(ctx); err != nil {
		return nil, fmt.Errorf("failed to count reanalyses: %w", err)
	}
	if stats.TotalAnalyses, err = s.client.AnalysisHistory.Query().Count(ctx); err != nil {
		return nil, fmt.Errorf("failed to count analyses: %w", err)
	}

	var byLevel []struct {
		Criticality string `json:"criticality"`
		Count       int    `json:"count"`
	}
	err = s.client.AnalysisHistory.Query().
		GroupBy(analysishistory.FieldCriticality).
		Aggregate(ent.Count()).
		Scan(ctx, &byLevel)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate criticalities: %w", err)
	}
	for _, row := range byLevel {
		switch row.Criticality {
		case "high":
			stats.Criticality.High = row.Count
		case "medium":
			stats.Criticality.Medium = row.Count
		case "low":
			stats.Criticality.Low = row.Count
		}
	}

	var byBoard []struct {
		BoardName string `json:"board_name"`
		Count     int    `json:"count"`
	}
	err = s.client.Ticket.Query().
		GroupBy(ticket.FieldBoardName).
		Aggregate(ent.Count()).
		Scan(ctx, &byBoard)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate boards: %w", err)
	}
	for _, row := range byBoard {
		if row.BoardName != "" {
			stats.ByBoard[row.BoardName] = row.Count
		}
	}

	latest, err := s.client.AnalysisHistory.Query().
		Order(ent.Desc(analysishistory.FieldAnalyzedAt)).
		First(ctx)
	if err != nil {
		if !ent.IsNotFound(err) {
			return nil, fmt.Errorf("failed to load latest analysis: %w", err)
		}
	} else {
		at := latest.AnalyzedAt
		stats.LastAnalysisAt = &at
	}

	return stats, nil
}
