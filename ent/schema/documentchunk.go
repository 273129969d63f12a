package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// DocumentChunk holds the schema definition for the DocumentChunk entity.
// Relational copy of the grounding corpus: chunks are the unit of storage,
// document_id groups the chunks of one uploaded file. The vector index holds
// the same chunks for similarity search; these rows are the source of truth
// for full-context reads and duplicate detection.
type DocumentChunk struct {
	ent.Schema
}

// Fields of the DocumentChunk.
func (DocumentChunk) Fields() []ent.Field {
	return []ent.Field{
		field.String("document_id").
			Immutable(),
		field.String("filename").
			Immutable(),
		field.Int("chunk_index").
			Immutable(),
		field.Int("total_chunks").
			Immutable(),
		field.Text("content").
			Immutable(),
		field.String("content_hash").
			Immutable().
			Comment("MD5 of the whole source file, shared by all its chunks"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Indexes of the DocumentChunk.
func (DocumentChunk) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("content_hash"),
		index.Fields("filename"),
		index.Fields("document_id", "chunk_index").
			Unique(),
	}
}
