package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// AnalysisHistory holds the schema definition for the AnalysisHistory entity.
// Append-only: rows are created by analysis runs and never updated or
// deleted individually.
type AnalysisHistory struct {
	ent.Schema
}

// Fields of the AnalysisHistory.
func (AnalysisHistory) Fields() []ent.Field {
	return []ent.Field{
		field.Int("ticket_id").
			Immutable(),
		field.Int("session_id").
			Immutable(),
		field.Enum("criticality").
			Values("high", "medium", "low").
			Immutable(),
		field.JSON("justification", map[string]interface{}{}).
			Optional().
			Immutable().
			Comment("Verdict text plus board-action outcomes for the run"),
		field.Time("analyzed_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the AnalysisHistory.
func (AnalysisHistory) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("ticket", Ticket.Type).
			Ref("histories").
			Field("ticket_id").
			Unique().
			Required().
			Immutable(),
		edge.From("session", AnalysisSession.Type).
			Ref("histories").
			Field("session_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the AnalysisHistory.
func (AnalysisHistory) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("criticality"),
		index.Fields("session_id"),

		// Latest-first history reads per ticket
		index.Fields("ticket_id", "analyzed_at"),
	}
}
