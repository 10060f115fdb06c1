package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Hardware holds the schema definition for the Hardware entity: one row
// per notification endpoint (sign, IP speaker, mediaport, appliance).
type Hardware struct {
	ent.Schema
}

// Fields of the Hardware.
func (Hardware) Fields() []ent.Field {
	return []ent.Field{
		field.Int("id").
			StorageKey("recno").
			Unique().
			Immutable(),
		field.String("device_id").
			Unique(),
		field.Enum("device_kind").
			Values("transport", "io", "appliance"),
		field.String("name").
			Optional(),
		field.String("address").
			Default("").
			Comment("IP address or hostname; empty when not yet known"),
		field.Int("port").
			Default(8080),
		field.String("password").
			Default(""),
		field.Bool("auto_address").
			Default(false).
			Comment("Address was learned at runtime; cleared on transport failure so the next probe re-acquires it"),
		field.String("ip_method_config").
			Default("").
			Comment("Configured IP assignment method, e.g. DHCP"),
		field.String("ip_method_current").
			Default(""),
		field.Int("rtsp_port").
			Default(554).
			Comment("Stream port for camera-class devices"),
		field.Enum("connection_status").
			Values("active", "closed").
			Default("closed"),
	}
}

// Indexes of the Hardware.
func (Hardware) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("device_kind"),
	}
}
