// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/messagenet/bannerd/ent/audiogroup"
)

// AudioGroup is the model entity for the AudioGroup schema.
type AudioGroup struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Name holds the value of the "name" field.
	Name string `json:"name,omitempty"`
	// Hardware recnos of the group members
	DeviceRecnos []int `json:"device_recnos,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*AudioGroup) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case audiogroup.FieldDeviceRecnos:
			values[i] = new([]byte)
		case audiogroup.FieldID:
			values[i] = new(sql.NullInt64)
		case audiogroup.FieldName:
			values[i] = new(sql.NullString)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the AudioGroup fields.
func (_m *AudioGroup) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case audiogroup.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case audiogroup.FieldName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field name", values[i])
			} else if value.Valid {
				_m.Name = value.String
			}
		case audiogroup.FieldDeviceRecnos:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field device_recnos", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.DeviceRecnos); err != nil {
					return fmt.Errorf("unmarshal field device_recnos: %w", err)
				}
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the AudioGroup.
// This includes values selected through modifiers, order, etc.
func (_m *AudioGroup) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this AudioGroup.
// Note that you need to call AudioGroup.Unwrap() before calling this method if this AudioGroup
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *AudioGroup) Update() *AudioGroupUpdateOne {
	return NewAudioGroupClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the AudioGroup entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *AudioGroup) Unwrap() *AudioGroup {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: AudioGroup is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *AudioGroup) String() string {
	var builder strings.Builder
	builder.WriteString("AudioGroup(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("name=")
	builder.WriteString(_m.Name)
	builder.WriteString(", ")
	builder.WriteString("device_recnos=")
	builder.WriteString(fmt.Sprintf("%v", _m.DeviceRecnos))
	builder.WriteByte(')')
	return builder.String()
}

// AudioGroups is a parsable slice of AudioGroup.
type AudioGroups []*AudioGroup
