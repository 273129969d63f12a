package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// BoardScope holds the schema definition for the BoardScope entity.
// Links a session to the board it analyzed; tickets are registered under the
// scope that first observed them.
type BoardScope struct {
	ent.Schema
}

// Fields of the BoardScope.
func (BoardScope) Fields() []ent.Field {
	return []ent.Field{
		field.Int("session_id").
			Immutable(),
		field.String("platform").
			Default("trello"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the BoardScope.
func (BoardScope) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("session", AnalysisSession.Type).
			Ref("scopes").
			Field("session_id").
			Unique().
			Required().
			Immutable(),
		edge.To("tickets", Ticket.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

// Indexes of the BoardScope.
func (BoardScope) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id"),
	}
}
