package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// AnalysisSession holds the schema definition for the AnalysisSession entity.
// One row per analysis run (bulk or reanalysis); scopes and history rows hang
// off it.
type AnalysisSession struct {
	ent.Schema
}

// Fields of the AnalysisSession.
func (AnalysisSession) Fields() []ent.Field {
	return []ent.Field{
		field.String("reference").
			Unique().
			Immutable().
			Comment("Human-readable run id: analyse_YYYYMMDD_HHMM or REANALYSE-YYYYMMDD_HHMMSS"),
		field.Bool("reanalyse").
			Default(false).
			Immutable(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Edges of the AnalysisSession.
func (AnalysisSession) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("scopes", BoardScope.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("histories", AnalysisHistory.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

// Indexes of the AnalysisSession.
func (AnalysisSession) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("reanalyse"),
		index.Fields("created_at"),
	}
}
