// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/talan-labs/cardtriage/ent/analysissession"
)

// AnalysisSession is the model entity for the AnalysisSession schema.
type AnalysisSession struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Human-readable run id: analyse_YYYYMMDD_HHMM or REANALYSE-YYYYMMDD_HHMMSS
	Reference string `json:"reference,omitempty"`
	// Reanalyse holds the value of the "reanalyse" field.
	Reanalyse bool `json:"reanalyse,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the AnalysisSessionQuery when eager-loading is set.
	Edges        AnalysisSessionEdges `json:"edges"`
	selectValues sql.SelectValues
}

// AnalysisSessionEdges holds the relations/edges for other nodes in the graph.
type AnalysisSessionEdges struct {
	// Scopes holds the value of the scopes edge.
	Scopes []*BoardScope `json:"scopes,omitempty"`
	// Histories holds the value of the histories edge.
	Histories []*AnalysisHistory `json:"histories,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [2]bool
}

// ScopesOrErr returns the Scopes value or an error if the edge
// was not loaded in eager-loading.
func (e AnalysisSessionEdges) ScopesOrErr() ([]*BoardScope, error) {
	if e.loadedTypes[0] {
		return e.Scopes, nil
	}
	return nil, &NotLoadedError{edge: "scopes"}
}

// HistoriesOrErr returns the Histories value or an error if the edge
// was not loaded in eager-loading.
func (e AnalysisSessionEdges) HistoriesOrErr() ([]*AnalysisHistory, error) {
	if e.loadedTypes[1] {
		return e.Histories, nil
	}
	return nil, &NotLoadedError{edge: "histories"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*AnalysisSession) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case analysissession.FieldReanalyse:
			values[i] = new(sql.NullBool)
		case analysissession.FieldID:
			values[i] = new(sql.NullInt64)
		case analysissession.FieldReference:
			values[i] = new(sql.NullString)
		case analysissession.FieldCreatedAt, analysissession.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the AnalysisSession fields.
func (_m *AnalysisSession) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case analysissession.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case analysissession.FieldReference:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field reference", values[i])
			} else if value.Valid {
				_m.Reference = value.String
			}
		case analysissession.FieldReanalyse:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field reanalyse", values[i])
			} else if value.Valid {
				_m.Reanalyse = value.Bool
			}
		case analysissession.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case analysissession.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the AnalysisSession.
// This includes values selected through modifiers, order, etc.
func (_m *AnalysisSession) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryScopes queries the "scopes" edge of the AnalysisSession entity.
func (_m *AnalysisSession) QueryScopes() *BoardScopeQuery {
	return NewAnalysisSessionClient(_m.config).QueryScopes(_m)
}

// QueryHistories queries the "histories" edge of the AnalysisSession entity.
func (_m *AnalysisSession) QueryHistories() *AnalysisHistoryQuery {
	return NewAnalysisSessionClient(_m.config).QueryHistories(_m)
}

// Update returns a builder for updating this AnalysisSession.
// Note that you need to call AnalysisSession.Unwrap() before calling this method if this AnalysisSession
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *AnalysisSession) Update() *AnalysisSessionUpdateOne {
	return NewAnalysisSessionClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the AnalysisSession entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *AnalysisSession) Unwrap() *AnalysisSession {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: AnalysisSession is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *AnalysisSession) String() string {
	var builder strings.Builder
	builder.WriteString("AnalysisSession(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("reference=")
	builder.WriteString(_m.Reference)
	builder.WriteString(", ")
	builder.WriteString("reanalyse=")
	builder.WriteString(fmt.Sprintf("%v", _m.Reanalyse))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// AnalysisSessions is a parsable slice of AnalysisSession.
type AnalysisSessions []*AnalysisSession
