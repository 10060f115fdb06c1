// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/messagenet/bannerd/ent/wtccommand"
)

// WtcCommand is the model entity for the WtcCommand schema.
type WtcCommand struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Command holds the value of the "command" field.
	Command wtccommand.Command `json:"command,omitempty"`
	// Source holds the value of the "source" field.
	Source wtccommand.Source `json:"source,omitempty"`
	// Destination holds the value of the "destination" field.
	Destination wtccommand.Destination `json:"destination,omitempty"`
	// Originating process id, echoed back in responses
	Pid int `json:"pid,omitempty"`
	// HardwareRecno holds the value of the "hardware_recno" field.
	HardwareRecno int `json:"hardware_recno,omitempty"`
	// Banner stream (live message) record number
	StreamRecno int `json:"stream_recno,omitempty"`
	// TemplateRecno holds the value of the "template_recno" field.
	TemplateRecno int `json:"template_recno,omitempty"`
	// Sequence byte-string; byte i encodes the slot for position i
	Sequence string `json:"sequence,omitempty"`
	// Message holds the value of the "message" field.
	Message string `json:"message,omitempty"`
	// ReturnNode holds the value of the "return_node" field.
	ReturnNode string `json:"return_node,omitempty"`
	// 0 = data, 1 = end-of-response, 2 = cancel
	Flag int8 `json:"flag,omitempty"`
	// SeqOperation holds the value of the "seq_operation" field.
	SeqOperation int8 `json:"seq_operation,omitempty"`
	// Response classification: 1 active, 2 waiting, 3 hidden
	MessageType int8 `json:"message_type,omitempty"`
	// NodeName holds the value of the "node_name" field.
	NodeName string `json:"node_name,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt    time.Time `json:"created_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*WtcCommand) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case wtccommand.FieldID, wtccommand.FieldPid, wtccommand.FieldHardwareRecno, wtccommand.FieldStreamRecno, wtccommand.FieldTemplateRecno, wtccommand.FieldFlag, wtccommand.FieldSeqOperation, wtccommand.FieldMessageType:
			values[i] = new(sql.NullInt64)
		case wtccommand.FieldCommand, wtccommand.FieldSource, wtccommand.FieldDestination, wtccommand.FieldSequence, wtccommand.FieldMessage, wtccommand.FieldReturnNode, wtccommand.FieldNodeName:
			values[i] = new(sql.NullString)
		case wtccommand.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the WtcCommand fields.
func (_m *WtcCommand) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case wtccommand.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case wtccommand.FieldCommand:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field command", values[i])
			} else if value.Valid {
				_m.Command = wtccommand.Command(value.String)
			}
		case wtccommand.FieldSource:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field source", values[i])
			} else if value.Valid {
				_m.Source = wtccommand.Source(value.String)
			}
		case wtccommand.FieldDestination:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field destination", values[i])
			} else if value.Valid {
				_m.Destination = wtccommand.Destination(value.String)
			}
		case wtccommand.FieldPid:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field pid", values[i])
			} else if value.Valid {
				_m.Pid = int(value.Int64)
			}
		case wtccommand.FieldHardwareRecno:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field hardware_recno", values[i])
			} else if value.Valid {
				_m.HardwareRecno = int(value.Int64)
			}
		case wtccommand.FieldStreamRecno:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field stream_recno", values[i])
			} else if value.Valid {
				_m.StreamRecno = int(value.Int64)
			}
		case wtccommand.FieldTemplateRecno:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field template_recno", values[i])
			} else if value.Valid {
				_m.TemplateRecno = int(value.Int64)
			}
		case wtccommand.FieldSequence:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field sequence", values[i])
			} else if value.Valid {
				_m.Sequence = value.String
			}
		case wtccommand.FieldMessage:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field message", values[i])
			} else if value.Valid {
				_m.Message = value.String
			}
		case wtccommand.FieldReturnNode:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field return_node", values[i])
			} else if value.Valid {
				_m.ReturnNode = value.String
			}
		case wtccommand.FieldFlag:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field flag", values[i])
			} else if value.Valid {
				_m.Flag = int8(value.Int64)
			}
		case wtccommand.FieldSeqOperation:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field seq_operation", values[i])
			} else if value.Valid {
				_m.SeqOperation = int8(value.Int64)
			}
		case wtccommand.FieldMessageType:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field message_type", values[i])
			} else if value.Valid {
				_m.MessageType = int8(value.Int64)
			}
		case wtccommand.FieldNodeName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field node_name", values[i])
			} else if value.Valid {
				_m.NodeName = value.String
			}
		case wtccommand.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the WtcCommand.
// This includes values selected through modifiers, order, etc.
func (_m *WtcCommand) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this WtcCommand.
// Note that you need to call WtcCommand.Unwrap() before calling this method if this WtcCommand
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *WtcCommand) Update() *WtcCommandUpdateOne {
	return NewWtcCommandClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the WtcCommand entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *WtcCommand) Unwrap() *WtcCommand {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: WtcCommand is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *WtcCommand) String() string {
	var builder strings.Builder
	builder.WriteString("WtcCommand(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("command=")
	builder.WriteString(fmt.Sprintf("%v", _m.Command))
	builder.WriteString(", ")
	builder.WriteString("source=")
	builder.WriteString(fmt.Sprintf("%v", _m.Source))
	builder.WriteString(", ")
	builder.WriteString("destination=")
	builder.WriteString(fmt.Sprintf("%v", _m.Destination))
	builder.WriteString(", ")
	builder.WriteString("pid=")
	builder.WriteString(fmt.Sprintf("%v", _m.Pid))
	builder.WriteString(", ")
	builder.WriteString("hardware_recno=")
	builder.WriteString(fmt.Sprintf("%v", _m.HardwareRecno))
	builder.WriteString(", ")
	builder.WriteString("stream_recno=")
	builder.WriteString(fmt.Sprintf("%v", _m.StreamRecno))
	builder.WriteString(", ")
	builder.WriteString("template_recno=")
	builder.WriteString(fmt.Sprintf("%v", _m.TemplateRecno))
	builder.WriteString(", ")
	builder.WriteString("sequence=")
	builder.WriteString(_m.Sequence)
	builder.WriteString(", ")
	builder.WriteString("message=")
	builder.WriteString(_m.Message)
	builder.WriteString(", ")
	builder.WriteString("return_node=")
	builder.WriteString(_m.ReturnNode)
	builder.WriteString(", ")
	builder.WriteString("flag=")
	builder.WriteString(fmt.Sprintf("%v", _m.Flag))
	builder.WriteString(", ")
	builder.WriteString("seq_operation=")
	builder.WriteString(fmt.Sprintf("%v", _m.SeqOperation))
	builder.WriteString(", ")
	builder.WriteString("message_type=")
	builder.WriteString(fmt.Sprintf("%v", _m.MessageType))
	builder.WriteString(", ")
	builder.WriteString("node_name=")
	builder.WriteString(_m.NodeName)
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// WtcCommands is a parsable slice of WtcCommand.
type WtcCommands []*WtcCommand
