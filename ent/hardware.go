// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/messagenet/bannerd/ent/hardware"
)

// Hardware is the model entity for the Hardware schema.
type Hardware struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// DeviceID holds the value of the "device_id" field.
	DeviceID string `json:"device_id,omitempty"`
	// DeviceKind holds the value of the "device_kind" field.
	DeviceKind hardware.DeviceKind `json:"device_kind,omitempty"`
	// Name holds the value of the "name" field.
	Name string `json:"name,omitempty"`
	// IP address or hostname; empty when not yet known
	Address string `json:"address,omitempty"`
	// Port holds the value of the "port" field.
	Port int `json:"port,omitempty"`
	// Password holds the value of the "password" field.
	Password string `json:"password,omitempty"`
	// Address was learned at runtime; cleared on transport failure so the next probe re-acquires it
	AutoAddress bool `json:"auto_address,omitempty"`
	// Configured IP assignment method, e.g. DHCP
	IPMethodConfig string `json:"ip_method_config,omitempty"`
	// IPMethodCurrent holds the value of the "ip_method_current" field.
	IPMethodCurrent string `json:"ip_method_current,omitempty"`
	// Stream port for camera-class devices
	RtspPort int `json:"rtsp_port,omitempty"`
	// ConnectionStatus holds the value of the "connection_status" field.
	ConnectionStatus hardware.ConnectionStatus `json:"connection_status,omitempty"`
	selectValues     sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Hardware) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case hardware.FieldAutoAddress:
			values[i] = new(sql.NullBool)
		case hardware.FieldID, hardware.FieldPort, hardware.FieldRtspPort:
			values[i] = new(sql.NullInt64)
		case hardware.FieldDeviceID, hardware.FieldDeviceKind, hardware.FieldName, hardware.FieldAddress, hardware.FieldPassword, hardware.FieldIPMethodConfig, hardware.FieldIPMethodCurrent, hardware.FieldConnectionStatus:
			values[i] = new(sql.NullString)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Hardware fields.
func (_m *Hardware) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case hardware.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case hardware.FieldDeviceID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field device_id", values[i])
			} else if value.Valid {
				_m.DeviceID = value.String
			}
		case hardware.FieldDeviceKind:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field device_kind", values[i])
			} else if value.Valid {
				_m.DeviceKind = hardware.DeviceKind(value.String)
			}
		case hardware.FieldName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field name", values[i])
			} else if value.Valid {
				_m.Name = value.String
			}
		case hardware.FieldAddress:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field address", values[i])
			} else if value.Valid {
				_m.Address = value.String
			}
		case hardware.FieldPort:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field port", values[i])
			} else if value.Valid {
				_m.Port = int(value.Int64)
			}
		case hardware.FieldPassword:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field password", values[i])
			} else if value.Valid {
				_m.Password = value.String
			}
		case hardware.FieldAutoAddress:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field auto_address", values[i])
			} else if value.Valid {
				_m.AutoAddress = value.Bool
			}
		case hardware.FieldIPMethodConfig:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field ip_method_config", values[i])
			} else if value.Valid {
				_m.IPMethodConfig = value.String
			}
		case hardware.FieldIPMethodCurrent:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field ip_method_current", values[i])
			} else if value.Valid {
				_m.IPMethodCurrent = value.String
			}
		case hardware.FieldRtspPort:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field rtsp_port", values[i])
			} else if value.Valid {
				_m.RtspPort = int(value.Int64)
			}
		case hardware.FieldConnectionStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field connection_status", values[i])
			} else if value.Valid {
				_m.ConnectionStatus = hardware.ConnectionStatus(value.String)
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Hardware.
// This includes values selected through modifiers, order, etc.
func (_m *Hardware) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this Hardware.
// Note that you need to call Hardware.Unwrap() before calling this method if this Hardware
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Hardware) Update() *HardwareUpdateOne {
	return NewHardwareClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Hardware entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Hardware) Unwrap() *Hardware {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Hardware is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Hardware) String() string {
	var builder strings.Builder
	builder.WriteString("Hardware(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("device_id=")
	builder.WriteString(_m.DeviceID)
	builder.WriteString(", ")
	builder.WriteString("device_kind=")
	builder.WriteString(fmt.Sprintf("%v", _m.DeviceKind))
	builder.WriteString(", ")
	builder.WriteString("name=")
	builder.WriteString(_m.Name)
	builder.WriteString(", ")
	builder.WriteString("address=")
	builder.WriteString(_m.Address)
	builder.WriteString(", ")
	builder.WriteString("port=")
	builder.WriteString(fmt.Sprintf("%v", _m.Port))
	builder.WriteString(", ")
	builder.WriteString("password=")
	builder.WriteString(_m.Password)
	builder.WriteString(", ")
	builder.WriteString("auto_address=")
	builder.WriteString(fmt.Sprintf("%v", _m.AutoAddress))
	builder.WriteString(", ")
	builder.WriteString("ip_method_config=")
	builder.WriteString(_m.IPMethodConfig)
	builder.WriteString(", ")
	builder.WriteString("ip_method_current=")
	builder.WriteString(_m.IPMethodCurrent)
	builder.WriteString(", ")
	builder.WriteString("rtsp_port=")
	builder.WriteString(fmt.Sprintf("%v", _m.RtspPort))
	builder.WriteString(", ")
	builder.WriteString("connection_status=")
	builder.WriteString(fmt.Sprintf("%v", _m.ConnectionStatus))
	builder.WriteByte(')')
	return builder.String()
}

// Hardwares is a parsable slice of Hardware.
type Hardwares []*Hardware
