package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Ticket holds the schema definition for the Ticket entity.
// One row per board card ever analyzed. external_id is the card id on the
// board platform; the scope is frozen at first observation.
type Ticket struct {
	ent.Schema
}

// Fields of the Ticket.
func (Ticket) Fields() []ent.Field {
	return []ent.Field{
		field.String("external_id").
			Unique().
			Immutable(),
		field.Int("board_scope_id").
			Immutable(),
		field.String("board_name").
			Optional(),
		field.JSON("metadata", map[string]interface{}{}).
			Optional().
			Comment("Card snapshot (name, desc, due, url, labels, members, list_name) plus last_analysis_config and analysis_result"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Edges of the Ticket.
func (Ticket) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("board_scope", BoardScope.Type).
			Ref("tickets").
			Field("board_scope_id").
			Unique().
			Required().
			Immutable(),
		edge.To("histories", AnalysisHistory.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

// Indexes of the Ticket.
func (Ticket) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("board_name"),
		index.Fields("board_scope_id"),
		index.Fields("created_at"),
	}
}
