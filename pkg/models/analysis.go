package models

import "time"

// CardVerdict is the analyzer's output for one card, before board actions.
type CardVerdict struct {
	CardID           string `json:"card_id"`
	CardName         string `json:"card_name"`
	Success          bool   `json:"success"`
	CriticalityLevel string `json:"criticality_level,omitempty"`
	Justification    string `json:"justification,omitempty"`
	Error            string `json:"error,omitempty"`
}

// BatchVerdict is one element of the JSON array the LLM returns for a batch
// prompt.
type BatchVerdict struct {
	ID               string `json:"id"`
	CriticalityLevel string `json:"criticality_level"`
	Justification    string `json:"justification"`
}

// CardResult is the per-card entry of a list analysis report: the verdict
// plus board-action outcomes and cache provenance.
type CardResult struct {
	CardID           string         `json:"card_id"`
	CardName         string         `json:"card_name"`
	Success          bool           `json:"success"`
	CriticalityLevel string         `json:"criticality_level,omitempty"`
	Justification    string         `json:"justification,omitempty"`
	FromCache        bool           `json:"from_cache,omitempty"`
	Actions          map[string]any `json:"actions,omitempty"`
	Error            string         `json:"error,omitempty"`
}

// AnalysisSummary aggregates a list analysis run. CriticalTotal counts every
// successfully analyzed card; NonCritical is always zero in this scheme.
type AnalysisSummary struct {
	TotalCards    int     `json:"total_cards"`
	Analyzed      int     `json:"analyzed"`
	CriticalTotal int     `json:"critical_total"`
	High          int     `json:"high"`
	Medium        int     `json:"medium"`
	Low           int     `json:"low"`
	NonCritical   int     `json:"non_critical"`
	SuccessRate   float64 `json:"success_rate"`
	Errors        int     `json:"errors"`
}

// ListAnalysis is the full report of one list analysis run.
type ListAnalysis struct {
	BoardID          string          `json:"board_id"`
	BoardName        string          `json:"board_name,omitempty"`
	ListID           string          `json:"list_id"`
	ListName         string          `json:"list_name,omitempty"`
	SessionReference string          `json:"session_reference,omitempty"`
	Persisted        bool            `json:"persisted"`
	TicketsSaved     int             `json:"tickets_saved_count,omitempty"`
	Results          []CardResult    `json:"results"`
	Summary          AnalysisSummary `json:"summary"`
	AnalyzedAt       time.Time       `json:"analyzed_at"`
}

// AnalyzeListRequest carries the inputs of a list analysis run. The board
// and list ids come from the route; the rest from the request body, with the
// active config as fallback. AnalyseBoardID points at a pre-created scope.
type AnalyzeListRequest struct {
	BoardID        string `json:"board_id"`
	ListID         string `json:"list_id"`
	BoardName      string `json:"board_name,omitempty"`
	ListName       string `json:"list_name,omitempty"`
	Token          string `json:"token,omitempty"`
	AnalyseBoardID int    `json:"analyse_board_id,omitempty"`
	Force          bool   `json:"force,omitempty"`
}

// PreviousAnalysis is the prior verdict fed into a reanalysis prompt.
type PreviousAnalysis struct {
	CriticalityLevel string    `json:"criticality_level"`
	Justification    string    `json:"justification"`
	AnalyzedAt       time.Time `json:"analyzed_at"`
}

// ReanalysisResult compares the fresh verdict with the previous one. Board
// actions are never replayed on reanalysis, so there is no action record.
type ReanalysisResult struct {
	TicketID         string            `json:"ticket_id"`
	CardName         string            `json:"card_name"`
	SessionID        int               `json:"analysis_session_id,omitempty"`
	SessionReference string            `json:"session_reference,omitempty"`
	Previous         *PreviousAnalysis `json:"previous_analysis,omitempty"`
	CriticalityLevel string            `json:"criticality_level"`
	Justification    string            `json:"justification"`
	Changed          bool              `json:"changed"`
	Persisted        bool              `json:"persisted"`
	AnalyzedAt       time.Time         `json:"analyzed_at"`
}
