package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
)

// Template holds the schema definition for the Template entity: the
// message template a banner instance was launched from. Only the options
// consumed by the dispatcher are modelled here.
type Template struct {
	ent.Schema
}

// Fields of the Template.
func (Template) Fields() []ent.Field {
	return []ent.Field{
		field.Int("id").
			StorageKey("recno").
			Unique().
			Immutable(),
		field.JSON("audio_groups", []string{}).
			Optional().
			Comment("Group names used when the banner's audio_group is the literal 'multiple'"),
	}
}
