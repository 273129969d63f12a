// Code generated by ent, DO NOT EDIT.

package analysissession

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the analysissession type in the database.
	Label = "analysis_session"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldReference holds the string denoting the reference field in the database.
	FieldReference = "reference"
	// FieldReanalyse holds the string denoting the reanalyse field in the database.
	FieldReanalyse = "reanalyse"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// EdgeScopes holds the string denoting the scopes edge name in mutations.
	EdgeScopes = "scopes"
	// EdgeHistories holds the string denoting the histories edge name in mutations.
	EdgeHistories = "histories"
	// Table holds the table name of the analysissession in the database.
	Table = "analysis_sessions"
	// ScopesTable is the table that holds the scopes relation/edge.
	ScopesTable = "board_scopes"
	// ScopesInverseTable is the table name for the BoardScope entity.
	// It exists in this package in order to avoid circular dependency with the "boardscope" package.
	ScopesInverseTable = "board_scopes"
	// ScopesColumn is the table column denoting the scopes relation/edge.
	ScopesColumn = "session_id"
	// HistoriesTable is the table that holds the histories relation/edge.
	HistoriesTable = "analysis_histories"
	// HistoriesInverseTable is the table name for the AnalysisHistory entity.
	// It exists in this package in order to avoid circular dependency with the "analysishistory" package.
	HistoriesInverseTable = "analysis_histories"
	// HistoriesColumn is the table column denoting the histories relation/edge.
	HistoriesColumn = "session_id"
)

// Columns holds all SQL columns for analysissession fields.
var Columns = []string{
	FieldID,
	FieldReference,
	FieldReanalyse,
	FieldCreatedAt,
	FieldUpdatedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultReanalyse holds the default value on creation for the "reanalyse" field.
	DefaultReanalyse bool
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
)

// OrderOption defines the ordering options for the AnalysisSession queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByReference orders the results by the reference field.
func ByReference(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldReference, opts...).ToFunc()
}

// ByReanalyse orders the results by the reanalyse field.
func ByReanalyse(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldReanalyse, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}

// ByScopesCount orders the results by scopes count.
func ByScopesCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newScopesStep(), opts...)
	}
}

// ByScopes orders the results by scopes terms.
func ByScopes(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newScopesStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByHistoriesCount orders the results by histories count.
func ByHistoriesCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newHistoriesStep(), opts...)
	}
}

// ByHistories orders the results by histories terms.
func ByHistories(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newHistoriesStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newScopesStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(ScopesInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, ScopesTable, ScopesColumn),
	)
}
func newHistoriesStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(HistoriesInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, HistoriesTable, HistoriesColumn),
	)
}
