package models

// Criticality levels as produced by the analyzer. Persistence stores them
// lowercase; the board-facing flow uses these uppercase forms.
const (
	CriticalityHigh         = "HIGH"
	CriticalityMedium       = "MEDIUM"
	CriticalityLow          = "LOW"
	CriticalityOutOfContext = "OUT_OF_CONTEXT"
)

// CardLabel is a label attached to a board card.
type CardLabel struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Color string `json:"color,omitempty"`
}

// CardMember is a member assigned to a board card.
type CardMember struct {
	ID       string `json:"id"`
	FullName string `json:"fullName,omitempty"`
	Username string `json:"username,omitempty"`
}

// CardPayload is the normalized card representation handed to the analyzer
// and persisted into ticket metadata.
type CardPayload struct {
	ID        string       `json:"id"`
	Name      string       `json:"name"`
	Desc      string       `json:"desc"`
	Due       string       `json:"due,omitempty"`
	ListName  string       `json:"list_name,omitempty"`
	BoardID   string       `json:"board_id,omitempty"`
	BoardName string       `json:"board_name,omitempty"`
	Labels    []CardLabel  `json:"labels,omitempty"`
	Members   []CardMember `json:"members,omitempty"`
	URL       string       `json:"url,omitempty"`
}

// IsActionable reports whether a criticality verdict should trigger board
// actions and persistence. Empty and OUT_OF_CONTEXT verdicts are not acted on.
func IsActionable(criticality string) bool {
	return criticality != "" && criticality != CriticalityOutOfContext
}
