// Code generated by ent, DO NOT EDIT.

package hardware

import (
	"fmt"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the hardware type in the database.
	Label = "hardware"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "recno"
	// FieldDeviceID holds the string denoting the device_id field in the database.
	FieldDeviceID = "device_id"
	// FieldDeviceKind holds the string denoting the device_kind field in the database.
	FieldDeviceKind = "device_kind"
	// FieldName holds the string denoting the name field in the database.
	FieldName = "name"
	// FieldAddress holds the string denoting the address field in the database.
	FieldAddress = "address"
	// FieldPort holds the string denoting the port field in the database.
	FieldPort = "port"
	// FieldPassword holds the string denoting the password field in the database.
	FieldPassword = "password"
	// FieldAutoAddress holds the string denoting the auto_address field in the database.
	FieldAutoAddress = "auto_address"
	// FieldIPMethodConfig holds the string denoting the ip_method_config field in the database.
	FieldIPMethodConfig = "ip_method_config"
	// FieldIPMethodCurrent holds the string denoting the ip_method_current field in the database.
	FieldIPMethodCurrent = "ip_method_current"
	// FieldRtspPort holds the string denoting the rtsp_port field in the database.
	FieldRtspPort = "rtsp_port"
	// FieldConnectionStatus holds the string denoting the connection_status field in the database.
	FieldConnectionStatus = "connection_status"
	// Table holds the table name of the hardware in the database.
	Table = "hardwares"
)

// Columns holds all SQL columns for hardware fields.
var Columns = []string{
	FieldID,
	FieldDeviceID,
	FieldDeviceKind,
	FieldName,
	FieldAddress,
	FieldPort,
	FieldPassword,
	FieldAutoAddress,
	FieldIPMethodConfig,
	FieldIPMethodCurrent,
	FieldRtspPort,
	FieldConnectionStatus,
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
	// DefaultAddress holds the default value on creation for the "address" field.
	DefaultAddress string
	// DefaultPort holds the default value on creation for the "port" field.
	DefaultPort int
	// DefaultPassword holds the default value on creation for the "password" field.
	DefaultPassword string
	// DefaultAutoAddress holds the default value on creation for the "auto_address" field.
	DefaultAutoAddress bool
	// DefaultIPMethodConfig holds the default value on creation for the "ip_method_config" field.
	DefaultIPMethodConfig string
	// DefaultIPMethodCurrent holds the default value on creation for the "ip_method_current" field.
	DefaultIPMethodCurrent string
	// DefaultRtspPort holds the default value on creation for the "rtsp_port" field.
	DefaultRtspPort int
)

// DeviceKind defines the type for the "device_kind" enum field.
type DeviceKind string

// DeviceKind values.
const (
	DeviceKindTransport DeviceKind = "transport"
	DeviceKindIo        DeviceKind = "io"
	DeviceKindAppliance DeviceKind = "appliance"
)

func (dk DeviceKind) String() string {
	return string(dk)
}

// DeviceKindValidator is a validator for the "device_kind" field enum values. It is called by the builders before save.
func DeviceKindValidator(dk DeviceKind) error {
	switch dk {
	case DeviceKindTransport, DeviceKindIo, DeviceKindAppliance:
		return nil
	default:
		return fmt.Errorf("hardware: invalid enum value for device_kind field: %q", dk)
	}
}

// ConnectionStatus defines the type for the "connection_status" enum field.
type ConnectionStatus string

// ConnectionStatusClosed is the default value of the ConnectionStatus enum.
const DefaultConnectionStatus = ConnectionStatusClosed

// ConnectionStatus values.
const (
	ConnectionStatusActive ConnectionStatus = "active"
	ConnectionStatusClosed ConnectionStatus = "closed"
)

func (cs ConnectionStatus) String() string {
	return string(cs)
}

// ConnectionStatusValidator is a validator for the "connection_status" field enum values. It is called by the builders before save.
func ConnectionStatusValidator(cs ConnectionStatus) error {
	switch cs {
	case ConnectionStatusActive, ConnectionStatusClosed:
		return nil
	default:
		return fmt.Errorf("hardware: invalid enum value for connection_status field: %q", cs)
	}
}

// OrderOption defines the ordering options for the Hardware queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByDeviceID orders the results by the device_id field.
func ByDeviceID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDeviceID, opts...).ToFunc()
}

// ByDeviceKind orders the results by the device_kind field.
func ByDeviceKind(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDeviceKind, opts...).ToFunc()
}

// ByName orders the results by the name field.
func ByName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldName, opts...).ToFunc()
}

// ByAddress orders the results by the address field.
func ByAddress(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAddress, opts...).ToFunc()
}

// ByPort orders the results by the port field.
func ByPort(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPort, opts...).ToFunc()
}

// ByPassword orders the results by the password field.
func ByPassword(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPassword, opts...).ToFunc()
}

// ByAutoAddress orders the results by the auto_address field.
func ByAutoAddress(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAutoAddress, opts...).ToFunc()
}

// ByIPMethodConfig orders the results by the ip_method_config field.
func ByIPMethodConfig(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldIPMethodConfig, opts...).ToFunc()
}

// ByIPMethodCurrent orders the results by the ip_method_current field.
func ByIPMethodCurrent(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldIPMethodCurrent, opts...).ToFunc()
}

// ByRtspPort orders the results by the rtsp_port field.
func ByRtspPort(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRtspPort, opts...).ToFunc()
}

// ByConnectionStatus orders the results by the connection_status field.
func ByConnectionStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldConnectionStatus, opts...).ToFunc()
}
