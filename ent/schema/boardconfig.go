package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
)

// BoardConfig holds the schema definition for the BoardConfig entity.
// One row per monitored (board, list) pair; the payload is free-form so
// platform-specific keys can be added without migrations.
type BoardConfig struct {
	ent.Schema
}

// Fields of the BoardConfig.
func (BoardConfig) Fields() []ent.Field {
	return []ent.Field{
		field.JSON("data", map[string]interface{}{}).
			Comment("Subscription payload: board_id, board_name, list_id, list_name, token (encrypted), target_list_id, target_list_name"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}
