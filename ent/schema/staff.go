package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
)

// Staff holds the schema definition for the Staff entity. The dispatcher
// only reads it to resolve the launcher's gender from a launch PIN.
type Staff struct {
	ent.Schema
}

// Fields of the Staff.
func (Staff) Fields() []ent.Field {
	return []ent.Field{
		field.Int("id").
			StorageKey("recno").
			Unique().
			Immutable(),
		field.String("pin").
			Unique(),
		field.String("gender").
			Default(""),
		field.String("name").
			Optional(),
	}
}
