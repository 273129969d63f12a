package models

import "time"

// ListSessionsRequest contains pagination, filtering and ordering options for
// listing analysis sessions.
type ListSessionsRequest struct {
	Page           int
	PerPage        int
	Filters        []Filter
	OrderBy        string
	OrderDirection string
}

// CriticalityBreakdown counts verdicts per level.
type CriticalityBreakdown struct {
	High   int `json:"high"`
	Medium int `json:"medium"`
	Low    int `json:"low"`
}

// SessionBoard is one board scope attached to a session.
type SessionBoard struct {
	ID       int    `json:"id"`
	Platform string `json:"platform"`
}

// SessionListItem is one session row with its aggregates.
type SessionListItem struct {
	ID           int                  `json:"id"`
	Reference    string               `json:"reference"`
	Reanalyse    bool                 `json:"reanalyse"`
	CreatedAt    time.Time            `json:"createdAt"`
	TicketsCount int                  `json:"tickets_count"`
	Criticality  CriticalityBreakdown `json:"criticality"`
	Boards       []SessionBoard       `json:"boards"`
}

// SessionList is the paginated session listing.
type SessionList struct {
	Items      []SessionListItem `json:"items"`
	Pagination Pagination        `json:"pagination"`
}

// ListTicketsRequest contains pagination, filtering and ordering options for
// listing tickets.
type ListTicketsRequest struct {
	Page           int
	PerPage        int
	Filters        []Filter
	OrderBy        string
	OrderDirection string
	AnalyseID      int // restrict to tickets analyzed in this session
}

// TicketListItem is one ticket row with its latest verdict.
type TicketListItem struct {
	ID               int            `json:"id"`
	ExternalID       string         `json:"ticket_id"`
	Name             string         `json:"name"`
	BoardName        string         `json:"board_name,omitempty"`
	CriticalityLevel string         `json:"criticality_level,omitempty"`
	AnalysisResult   map[string]any `json:"analysis_result,omitempty"`
	CreatedAt        time.Time      `json:"createdAt"`
	UpdatedAt        time.Time      `json:"updatedAt"`
}

// TicketList is the paginated ticket listing.
type TicketList struct {
	Items      []TicketListItem `json:"items"`
	Pagination Pagination       `json:"pagination"`
}

// HistoryEntry is one append-only analysis record of a ticket.
type HistoryEntry struct {
	ID               int            `json:"id"`
	SessionReference string         `json:"session_reference,omitempty"`
	Reanalyse        bool           `json:"reanalyse"`
	CriticalityLevel string         `json:"criticality_level"`
	Justification    map[string]any `json:"justification,omitempty"`
	AnalyzedAt       time.Time      `json:"analyzed_at"`
}

// Statistics aggregates the whole analysis corpus.
type Statistics struct {
	TotalTickets    int                  `json:"total_tickets"`
	TotalSessions   int                  `json:"total_sessions"`
	TotalReanalyses int                  `json:"total_reanalyses"`
	TotalAnalyses   int                  `json:"total_analyses"`
	Criticality     CriticalityBreakdown `json:"criticality"`
	ByBoard         map[string]int       `json:"by_board"`
	LastAnalysisAt  *time.Time           `json:"last_analysis_at,omitempty"`
}

// CacheStatus reports how many tickets hold a reusable cached verdict.
type CacheStatus struct {
	TotalTickets  int            `json:"total_tickets"`
	CachedTickets int            `json:"cached_tickets"`
	ByBoard       map[string]int `json:"by_board"`
}
