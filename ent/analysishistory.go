// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/talan-labs/cardtriage/ent/analysishistory"
	"github.com/talan-labs/cardtriage/ent/analysissession"
	"github.com/talan-labs/cardtriage/ent/ticket"
)

// AnalysisHistory is the model entity for the AnalysisHistory schema.
type AnalysisHistory struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// TicketID holds the value of the "ticket_id" field.
	TicketID int `json:"ticket_id,omitempty"`
	// SessionID holds the value of the "session_id" field.
	SessionID int `json:"session_id,omitempty"`
	// Criticality holds the value of the "criticality" field.
	Criticality analysishistory.Criticality `json:"criticality,omitempty"`
	// Verdict text plus board-action outcomes for the run
	Justification map[string]interface{} `json:"justification,omitempty"`
	// AnalyzedAt holds the value of the "analyzed_at" field.
	AnalyzedAt time.Time `json:"analyzed_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the AnalysisHistoryQuery when eager-loading is set.
	Edges        AnalysisHistoryEdges `json:"edges"`
	selectValues sql.SelectValues
}

// AnalysisHistoryEdges holds the relations/edges for other nodes in the graph.
type AnalysisHistoryEdges struct {
	// Ticket holds the value of the ticket edge.
	Ticket *Ticket `json:"ticket,omitempty"`
	// Session holds the value of the session edge.
	Session *AnalysisSession `json:"session,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [2]bool
}

// TicketOrErr returns the Ticket value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e AnalysisHistoryEdges) TicketOrErr() (*Ticket, error) {
	if e.Ticket != nil {
		return e.Ticket, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: ticket.Label}
	}
	return nil, &NotLoadedError{edge: "ticket"}
}

// SessionOrErr returns the Session value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e AnalysisHistoryEdges) SessionOrErr() (*AnalysisSession, error) {
	if e.Session != nil {
		return e.Session, nil
	} else if e.loadedTypes[1] {
		return nil, &NotFoundError{label: analysissession.Label}
	}
	return nil, &NotLoadedError{edge: "session"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*AnalysisHistory) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case analysishistory.FieldJustification:
			values[i] = new([]byte)
		case analysishistory.FieldID, analysishistory.FieldTicketID, analysishistory.FieldSessionID:
			values[i] = new(sql.NullInt64)
		case analysishistory.FieldCriticality:
			values[i] = new(sql.NullString)
		case analysishistory.FieldAnalyzedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the AnalysisHistory fields.
func (_m *AnalysisHistory) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case analysishistory.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case analysishistory.FieldTicketID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field ticket_id", values[i])
			} else if value.Valid {
				_m.TicketID = int(value.Int64)
			}
		case analysishistory.FieldSessionID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field session_id", values[i])
			} else if value.Valid {
				_m.SessionID = int(value.Int64)
			}
		case analysishistory.FieldCriticality:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field criticality", values[i])
			} else if value.Valid {
				_m.Criticality = analysishistory.Criticality(value.String)
			}
		case analysishistory.FieldJustification:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field justification", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Justification); err != nil {
					return fmt.Errorf("unmarshal field justification: %w", err)
				}
			}
		case analysishistory.FieldAnalyzedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field analyzed_at", values[i])
			} else if value.Valid {
				_m.AnalyzedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the AnalysisHistory.
// This includes values selected through modifiers, order, etc.
func (_m *AnalysisHistory) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryTicket queries the "ticket" edge of the AnalysisHistory entity.
func (_m *AnalysisHistory) QueryTicket() *TicketQuery {
	return NewAnalysisHistoryClient(_m.config).QueryTicket(_m)
}

// QuerySession queries the "session" edge of the AnalysisHistory entity.
func (_m *AnalysisHistory) QuerySession() *AnalysisSessionQuery {
	return NewAnalysisHistoryClient(_m.config).QuerySession(_m)
}

// Update returns a builder for updating this AnalysisHistory.
// Note that you need to call AnalysisHistory.Unwrap() before calling this method if this AnalysisHistory
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *AnalysisHistory) Update() *AnalysisHistoryUpdateOne {
	return NewAnalysisHistoryClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the AnalysisHistory entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *AnalysisHistory) Unwrap() *AnalysisHistory {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: AnalysisHistory is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *AnalysisHistory) String() string {
	var builder strings.Builder
	builder.WriteString("AnalysisHistory(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("ticket_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.TicketID))
	builder.WriteString(", ")
	builder.WriteString("session_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.SessionID))
	builder.WriteString(", ")
	builder.WriteString("criticality=")
	builder.WriteString(fmt.Sprintf("%v", _m.Criticality))
	builder.WriteString(", ")
	builder.WriteString("justification=")
	builder.WriteString(fmt.Sprintf("%v", _m.Justification))
	builder.WriteString(", ")
	builder.WriteString("analyzed_at=")
	builder.WriteString(_m.AnalyzedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// AnalysisHistories is a parsable slice of AnalysisHistory.
type AnalysisHistories []*AnalysisHistory
