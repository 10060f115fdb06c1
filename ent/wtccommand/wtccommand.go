// Code generated by ent, DO NOT EDIT.

package wtccommand

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the wtccommand type in the database.
	Label = "wtc_command"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldCommand holds the string denoting the command field in the database.
	FieldCommand = "command"
	// FieldSource holds the string denoting the source field in the database.
	FieldSource = "source"
	// FieldDestination holds the string denoting the destination field in the database.
	FieldDestination = "destination"
	// FieldPid holds the string denoting the pid field in the database.
	FieldPid = "pid"
	// FieldHardwareRecno holds the string denoting the hardware_recno field in the database.
	FieldHardwareRecno = "hardware_recno"
	// FieldStreamRecno holds the string denoting the stream_recno field in the database.
	FieldStreamRecno = "stream_recno"
	// FieldTemplateRecno holds the string denoting the template_recno field in the database.
	FieldTemplateRecno = "template_recno"
	// FieldSequence holds the string denoting the sequence field in the database.
	FieldSequence = "sequence"
	// FieldMessage holds the string denoting the message field in the database.
	FieldMessage = "message"
	// FieldReturnNode holds the string denoting the return_node field in the database.
	FieldReturnNode = "return_node"
	// FieldFlag holds the string denoting the flag field in the database.
	FieldFlag = "flag"
	// FieldSeqOperation holds the string denoting the seq_operation field in the database.
	FieldSeqOperation = "seq_operation"
	// FieldMessageType holds the string denoting the message_type field in the database.
	FieldMessageType = "message_type"
	// FieldNodeName holds the string denoting the node_name field in the database.
	FieldNodeName = "node_name"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// Table holds the table name of the wtccommand in the database.
	Table = "wtc_commands"
)

// Columns holds all SQL columns for wtccommand fields.
var Columns = []string{
	FieldID,
	FieldCommand,
	FieldSource,
	FieldDestination,
	FieldPid,
	FieldHardwareRecno,
	FieldStreamRecno,
	FieldTemplateRecno,
	FieldSequence,
	FieldMessage,
	FieldReturnNode,
	FieldFlag,
	FieldSeqOperation,
	FieldMessageType,
	FieldNodeName,
	FieldCreatedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultPid holds the default value on creation for the "pid" field.
	DefaultPid int
	// DefaultHardwareRecno holds the default value on creation for the "hardware_recno" field.
	DefaultHardwareRecno int
	// DefaultStreamRecno holds the default value on creation for the "stream_recno" field.
	DefaultStreamRecno int
	// DefaultTemplateRecno holds the default value on creation for the "template_recno" field.
	DefaultTemplateRecno int
	// DefaultSequence holds the default value on creation for the "sequence" field.
	DefaultSequence string
	// DefaultMessage holds the default value on creation for the "message" field.
	DefaultMessage string
	// DefaultReturnNode holds the default value on creation for the "return_node" field.
	DefaultReturnNode string
	// DefaultFlag holds the default value on creation for the "flag" field.
	DefaultFlag int8
	// DefaultSeqOperation holds the default value on creation for the "seq_operation" field.
	DefaultSeqOperation int8
	// DefaultMessageType holds the default value on creation for the "message_type" field.
	DefaultMessageType int8
	// DefaultNodeName holds the default value on creation for the "node_name" field.
	DefaultNodeName string
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
)

// Command defines the type for the "command" enum field.
type Command string

// Command values.
const (
	CommandNewMessage     Command = "new_message"
	CommandStopMessage    Command = "stop_message"
	CommandClearSign      Command = "clear_sign"
	CommandSeqChange      Command = "seq_change"
	CommandSignMessages   Command = "sign_messages"
	CommandHardwareUpdate Command = "hardware_update"
	CommandApplianceSync  Command = "appliance_sync"
)

func (c Command) String() string {
	return string(c)
}

// CommandValidator is a validator for the "command" field enum values. It is called by the builders before save.
func CommandValidator(c Command) error {
	switch c {
	case CommandNewMessage, CommandStopMessage, CommandClearSign, CommandSeqChange, CommandSignMessages, CommandHardwareUpdate, CommandApplianceSync:
		return nil
	default:
		return fmt.Errorf("wtccommand: invalid enum value for command field: %q", c)
	}
}

// Source defines the type for the "source" enum field.
type Source string

// Source values.
const (
	SourceBrowser     Source = "browser"
	SourceBannerBoard Source = "banner_board"
	SourceBannerMsg   Source = "banner_msg"
	SourceScheduler   Source = "scheduler"
)

func (s Source) String() string {
	return string(s)
}

// SourceValidator is a validator for the "source" field enum values. It is called by the builders before save.
func SourceValidator(s Source) error {
	switch s {
	case SourceBrowser, SourceBannerBoard, SourceBannerMsg, SourceScheduler:
		return nil
	default:
		return fmt.Errorf("wtccommand: invalid enum value for source field: %q", s)
	}
}

// Destination defines the type for the "destination" enum field.
type Destination string

// Destination values.
const (
	DestinationBrowser     Destination = "browser"
	DestinationBannerBoard Destination = "banner_board"
	DestinationBannerMsg   Destination = "banner_msg"
	DestinationScheduler   Destination = "scheduler"
)

func (d Destination) String() string {
	return string(d)
}

// DestinationValidator is a validator for the "destination" field enum values. It is called by the builders before save.
func DestinationValidator(d Destination) error {
	switch d {
	case DestinationBrowser, DestinationBannerBoard, DestinationBannerMsg, DestinationScheduler:
		return nil
	default:
		return fmt.Errorf("wtccommand: invalid enum value for destination field: %q", d)
	}
}

// OrderOption defines the ordering options for the WtcCommand queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByCommand orders the results by the command field.
func ByCommand(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCommand, opts...).ToFunc()
}

// BySource orders the results by the source field.
func BySource(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSource, opts...).ToFunc()
}

// ByDestination orders the results by the destination field.
func ByDestination(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDestination, opts...).ToFunc()
}

// ByPid orders the results by the pid field.
func ByPid(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPid, opts...).ToFunc()
}

// ByHardwareRecno orders the results by the hardware_recno field.
func ByHardwareRecno(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldHardwareRecno, opts...).ToFunc()
}

// ByStreamRecno orders the results by the stream_recno field.
func ByStreamRecno(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStreamRecno, opts...).ToFunc()
}

// ByTemplateRecno orders the results by the template_recno field.
func ByTemplateRecno(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTemplateRecno, opts...).ToFunc()
}

// BySequence orders the results by the sequence field.
func BySequence(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSequence, opts...).ToFunc()
}

// ByMessage orders the results by the message field.
func ByMessage(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMessage, opts...).ToFunc()
}

// ByReturnNode orders the results by the return_node field.
func ByReturnNode(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldReturnNode, opts...).ToFunc()
}

// ByFlag orders the results by the flag field.
func ByFlag(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFlag, opts...).ToFunc()
}

// BySeqOperation orders the results by the seq_operation field.
func BySeqOperation(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSeqOperation, opts...).ToFunc()
}

// ByMessageType orders the results by the message_type field.
func ByMessageType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMessageType, opts...).ToFunc()
}

// ByNodeName orders the results by the node_name field.
func ByNodeName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldNodeName, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}
