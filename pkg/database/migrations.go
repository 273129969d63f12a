package database

import (
	"context"
	"fmt"

	"entgo.io/ent/dialect/sql"
)

// CreateGINIndexes creates GIN indexes for PostgreSQL.
// These enable efficient full-text search over the grounding corpus and
// containment queries on card metadata.
func CreateGINIndexes(ctx context.Context, driver *sql.Driver) error {
	db := driver.DB()

	// GIN index for document chunk full-text search
	_, err := db.ExecContext(ctx,
		`CREATE INDEX IF NOT EXISTS idx_document_chunks_content_gin
		ON document_chunks USING gin(to_tsvector('simple', content))`)
	if err != nil {
		return fmt.Errorf("failed to create document content GIN index: %w", err)
	}

	// GIN index for ticket metadata containment queries
	_, err = db.ExecContext(ctx,
		`CREATE INDEX IF NOT EXISTS idx_tickets_metadata_gin
		ON tickets USING gin(metadata jsonb_path_ops)`)
	if err != nil {
		return fmt.Errorf("failed to create ticket metadata GIN index: %w", err)
	}

	return nil
}
