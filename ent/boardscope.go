// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/talan-labs/cardtriage/ent/analysissession"
	"github.com/talan-labs/cardtriage/ent/boardscope"
)

// BoardScope is the model entity for the BoardScope schema.
type BoardScope struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// SessionID holds the value of the "session_id" field.
	SessionID int `json:"session_id,omitempty"`
	// Platform holds the value of the "platform" field.
	Platform string `json:"platform,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the BoardScopeQuery when eager-loading is set.
	Edges        BoardScopeEdges `json:"edges"`
	selectValues sql.SelectValues
}

// BoardScopeEdges holds the relations/edges for other nodes in the graph.
type BoardScopeEdges struct {
	// Session holds the value of the session edge.
	Session *AnalysisSession `json:"session,omitempty"`
	// Tickets holds the value of the tickets edge.
	Tickets []*Ticket `json:"tickets,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [2]bool
}

// SessionOrErr returns the Session value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e BoardScopeEdges) SessionOrErr() (*AnalysisSession, error) {
	if e.Session != nil {
		return e.Session, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: analysissession.Label}
	}
	return nil, &NotLoadedError{edge: "session"}
}

// TicketsOrErr returns the Tickets value or an error if the edge
// was not loaded in eager-loading.
func (e BoardScopeEdges) TicketsOrErr() ([]*Ticket, error) {
	if e.loadedTypes[1] {
		return e.Tickets, nil
	}
	return nil, &NotLoadedError{edge: "tickets"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*BoardScope) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case boardscope.FieldID, boardscope.FieldSessionID:
			values[i] = new(sql.NullInt64)
		case boardscope.FieldPlatform:
			values[i] = new(sql.NullString)
		case boardscope.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the BoardScope fields.
func (_m *BoardScope) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case boardscope.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case boardscope.FieldSessionID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field session_id", values[i])
			} else if value.Valid {
				_m.SessionID = int(value.Int64)
			}
		case boardscope.FieldPlatform:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field platform", values[i])
			} else if value.Valid {
				_m.Platform = value.String
			}
		case boardscope.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the BoardScope.
// This includes values selected through modifiers, order, etc.
func (_m *BoardScope) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QuerySession queries the "session" edge of the BoardScope entity.
func (_m *BoardScope) QuerySession() *AnalysisSessionQuery {
	return NewBoardScopeClient(_m.config).QuerySession(_m)
}

// QueryTickets queries the "tickets" edge of the BoardScope entity.
func (_m *BoardScope) QueryTickets() *TicketQuery {
	return NewBoardScopeClient(_m.config).QueryTickets(_m)
}

// Update returns a builder for updating this BoardScope.
// Note that you need to call BoardScope.Unwrap() before calling this method if this BoardScope
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *BoardScope) Update() *BoardScopeUpdateOne {
	return NewBoardScopeClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the BoardScope entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *BoardScope) Unwrap() *BoardScope {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: BoardScope is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *BoardScope) String() string {
	var builder strings.Builder
	builder.WriteString("BoardScope(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("session_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.SessionID))
	builder.WriteString(", ")
	builder.WriteString("platform=")
	builder.WriteString(_m.Platform)
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// BoardScopes is a parsable slice of BoardScope.
type BoardScopes []*BoardScope
