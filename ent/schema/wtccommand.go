package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// WtcCommand holds the schema definition for the WtcCommand entity.
// Each row is one command envelope in the cross-worker queue; rows are
// deleted as they are consumed, so the table only ever holds in-flight
// commands. The autoincrement id carries FIFO order.
type WtcCommand struct {
	ent.Schema
}

// Fields of the WtcCommand.
func (WtcCommand) Fields() []ent.Field {
	return []ent.Field{
		field.Enum("command").
			Values("new_message", "stop_message", "clear_sign", "seq_change", "sign_messages", "hardware_update", "appliance_sync"),
		field.Enum("source").
			Values("browser", "banner_board", "banner_msg", "scheduler"),
		field.Enum("destination").
			Values("browser", "banner_board", "banner_msg", "scheduler"),
		field.Int("pid").
			Default(0).
			Comment("Originating process id, echoed back in responses"),
		field.Int("hardware_recno").
			Default(0),
		field.Int("stream_recno").
			Default(0).
			Comment("Banner stream (live message) record number"),
		field.Int("template_recno").
			Default(0),
		field.String("sequence").
			Default("").
			Comment("Sequence byte-string; byte i encodes the slot for position i"),
		field.Text("message").
			Default(""),
		field.String("return_node").
			Default(""),
		field.Int8("flag").
			Default(0).
			Comment("0 = data, 1 = end-of-response, 2 = cancel"),
		field.Int8("seq_operation").
			Default(0),
		field.Int8("message_type").
			Default(0).
			Comment("Response classification: 1 active, 2 waiting, 3 hidden"),
		field.String("node_name").
			Default(""),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Indexes of the WtcCommand.
func (WtcCommand) Indexes() []ent.Index {
	return []ent.Index{
		// Readers filter on the (command, source, destination) triple.
		index.Fields("command", "source", "destination"),
		index.Fields("node_name"),
		index.Fields("hardware_recno"),
	}
}
