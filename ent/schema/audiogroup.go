package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
)

// AudioGroup holds the schema definition for the AudioGroup entity: a
// named set of devices that receive shared audio for a message.
type AudioGroup struct {
	ent.Schema
}

// Fields of the AudioGroup.
func (AudioGroup) Fields() []ent.Field {
	return []ent.Field{
		field.String("name").
			Unique(),
		field.JSON("device_recnos", []int{}).
			Optional().
			Comment("Hardware recnos of the group members"),
	}
}
