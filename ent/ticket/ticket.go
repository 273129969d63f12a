// Code generated by ent, DO NOT EDIT.

package ticket

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the ticket type in the database.
	Label = "ticket"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldExternalID holds the string denoting the external_id field in the database.
	FieldExternalID = "external_id"
	// FieldBoardScopeID holds the string denoting the board_scope_id field in the database.
	FieldBoardScopeID = "board_scope_id"
	// FieldBoardName holds the string denoting the board_name field in the database.
	FieldBoardName = "board_name"
	// FieldMetadata holds the string denoting the metadata field in the database.
	FieldMetadata = "metadata"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// EdgeBoardScope holds the string denoting the board_scope edge name in mutations.
	EdgeBoardScope = "board_scope"
	// EdgeHistories holds the string denoting the histories edge name in mutations.
	EdgeHistories = "histories"
	// Table holds the table name of the ticket in the database.
	Table = "tickets"
	// BoardScopeTable is the table that holds the board_scope relation/edge.
	BoardScopeTable = "tickets"
	// BoardScopeInverseTable is the table name for the BoardScope entity.
	// It exists in this package in order to avoid circular dependency with the "boardscope" package.
	BoardScopeInverseTable = "board_scopes"
	// BoardScopeColumn is the table column denoting the board_scope relation/edge.
	BoardScopeColumn = "board_scope_id"
	// HistoriesTable is the table that holds the histories relation/edge.
	HistoriesTable = "analysis_histories"
	// HistoriesInverseTable is the table name for the AnalysisHistory entity.
	// It exists in this package in order to avoid circular dependency with the "analysishistory" package.
	HistoriesInverseTable = "analysis_histories"
	// HistoriesColumn is the table column denoting the histories relation/edge.
	HistoriesColumn = "ticket_id"
)

// Columns holds all SQL columns for ticket fields.
var Columns = []string{
	FieldID,
	FieldExternalID,
	FieldBoardScopeID,
	FieldBoardName,
	FieldMetadata,
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
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
)

// OrderOption defines the ordering options for the Ticket queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByExternalID orders the results by the external_id field.
func ByExternalID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldExternalID, opts...).ToFunc()
}

// ByBoardScopeID orders the results by the board_scope_id field.
func ByBoardScopeID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldBoardScopeID, opts...).ToFunc()
}

// ByBoardName orders the results by the board_name field.
func ByBoardName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldBoardName, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}

// ByBoardScopeField orders the results by board_scope field.
func ByBoardScopeField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newBoardScopeStep(), sql.OrderByField(field, opts...))
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
func newBoardScopeStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(BoardScopeInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, BoardScopeTable, BoardScopeColumn),
	)
}
func newHistoriesStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(HistoriesInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, HistoriesTable, HistoriesColumn),
	)
}
