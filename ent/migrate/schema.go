// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// AnalysisHistoriesColumns holds the columns for the "analysis_histories" table.
	AnalysisHistoriesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "criticality", Type: field.TypeEnum, Enums: []string{"high", "medium", "low"}},
		{Name: "justification", Type: field.TypeJSON, Nullable: true},
		{Name: "analyzed_at", Type: field.TypeTime},
		{Name: "session_id", Type: field.TypeInt},
		{Name: "ticket_id", Type: field.TypeInt},
	}
	// AnalysisHistoriesTable holds the schema information for the "analysis_histories" table.
	AnalysisHistoriesTable = &schema.Table{
		Name:       "analysis_histories",
		Columns:    AnalysisHistoriesColumns,
		PrimaryKey: []*schema.Column{AnalysisHistoriesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "analysis_histories_analysis_sessions_histories",
				Columns:    []*schema.Column{AnalysisHistoriesColumns[4]},
				RefColumns: []*schema.Column{AnalysisSessionsColumns[0]},
				OnDelete:   schema.Cascade,
			},
			{
				Symbol:     "analysis_histories_tickets_histories",
				Columns:    []*schema.Column{AnalysisHistoriesColumns[5]},
				RefColumns: []*schema.Column{TicketsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "analysishistory_criticality",
				Unique:  false,
				Columns: []*schema.Column{AnalysisHistoriesColumns[1]},
			},
			{
				Name:    "analysishistory_session_id",
				Unique:  false,
				Columns: []*schema.Column{AnalysisHistoriesColumns[4]},
			},
			{
				Name:    "analysishistory_ticket_id_analyzed_at",
				Unique:  false,
				Columns: []*schema.Column{AnalysisHistoriesColumns[5], AnalysisHistoriesColumns[3]},
			},
		},
	}
	// AnalysisSessionsColumns holds the columns for the "analysis_sessions" table.
	AnalysisSessionsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "reference", Type: field.TypeString, Unique: true},
		{Name: "reanalyse", Type: field.TypeBool, Default: false},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// AnalysisSessionsTable holds the schema information for the "analysis_sessions" table.
	AnalysisSessionsTable = &schema.Table{
		Name:       "analysis_sessions",
		Columns:    AnalysisSessionsColumns,
		PrimaryKey: []*schema.Column{AnalysisSessionsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "analysissession_reanalyse",
				Unique:  false,
				Columns: []*schema.Column{AnalysisSessionsColumns[2]},
			},
			{
				Name:    "analysissession_created_at",
				Unique:  false,
				Columns: []*schema.Column{AnalysisSessionsColumns[3]},
			},
		},
	}
	// BoardConfigsColumns holds the columns for the "board_configs" table.
	BoardConfigsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "data", Type: field.TypeJSON},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// BoardConfigsTable holds the schema information for the "board_configs" table.
	BoardConfigsTable = &schema.Table{
		Name:       "board_configs",
		Columns:    BoardConfigsColumns,
		PrimaryKey: []*schema.Column{BoardConfigsColumns[0]},
	}
	// BoardScopesColumns holds the columns for the "board_scopes" table.
	BoardScopesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "platform", Type: field.TypeString, Default: "trello"},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "session_id", Type: field.TypeInt},
	}
	// BoardScopesTable holds the schema information for the "board_scopes" table.
	BoardScopesTable = &schema.Table{
		Name:       "board_scopes",
		Columns:    BoardScopesColumns,
		PrimaryKey: []*schema.Column{BoardScopesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "board_scopes_analysis_sessions_scopes",
				Columns:    []*schema.Column{BoardScopesColumns[3]},
				RefColumns: []*schema.Column{AnalysisSessionsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "boardscope_session_id",
				Unique:  false,
				Columns: []*schema.Column{BoardScopesColumns[3]},
			},
		},
	}
	// DocumentChunksColumns holds the columns for the "document_chunks" table.
	DocumentChunksColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "document_id", Type: field.TypeString},
		{Name: "filename", Type: field.TypeString},
		{Name: "chunk_index", Type: field.TypeInt},
		{Name: "total_chunks", Type: field.TypeInt},
		{Name: "content", Type: field.TypeString, Size: 2147483647},
		{Name: "content_hash", Type: field.TypeString},
		{Name: "created_at", Type: field.TypeTime},
	}
	// DocumentChunksTable holds the schema information for the "document_chunks" table.
	DocumentChunksTable = &schema.Table{
		Name:       "document_chunks",
		Columns:    DocumentChunksColumns,
		PrimaryKey: []*schema.Column{DocumentChunksColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "documentchunk_content_hash",
				Unique:  false,
				Columns: []*schema.Column{DocumentChunksColumns[6]},
			},
			{
				Name:    "documentchunk_filename",
				Unique:  false,
				Columns: []*schema.Column{DocumentChunksColumns[2]},
			},
			{
				Name:    "documentchunk_document_id_chunk_index",
				Unique:  true,
				Columns: []*schema.Column{DocumentChunksColumns[1], DocumentChunksColumns[3]},
			},
		},
	}
	// TicketsColumns holds the columns for the "tickets" table.
	TicketsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "external_id", Type: field.TypeString, Unique: true},
		{Name: "board_name", Type: field.TypeString, Nullable: true},
		{Name: "metadata", Type: field.TypeJSON, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "board_scope_id", Type: field.TypeInt},
	}
	// TicketsTable holds the schema information for the "tickets" table.
	TicketsTable = &schema.Table{
		Name:       "tickets",
		Columns:    TicketsColumns,
		PrimaryKey: []*schema.Column{TicketsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "tickets_board_scopes_tickets",
				Columns:    []*schema.Column{TicketsColumns[6]},
				RefColumns: []*schema.Column{BoardScopesColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "ticket_board_name",
				Unique:  false,
				Columns: []*schema.Column{TicketsColumns[2]},
			},
			{
				Name:    "ticket_board_scope_id",
				Unique:  false,
				Columns: []*schema.Column{TicketsColumns[6]},
			},
			{
				Name:    "ticket_created_at",
				Unique:  false,
				Columns: []*schema.Column{TicketsColumns[4]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		AnalysisHistoriesTable,
		AnalysisSessionsTable,
		BoardConfigsTable,
		BoardScopesTable,
		DocumentChunksTable,
		TicketsTable,
	}
)

func init() {
	AnalysisHistoriesTable.ForeignKeys[0].RefTable = AnalysisSessionsTable
	AnalysisHistoriesTable.ForeignKeys[1].RefTable = TicketsTable
	BoardScopesTable.ForeignKeys[0].RefTable = AnalysisSessionsTable
	TicketsTable.ForeignKeys[0].RefTable = BoardScopesTable
}
