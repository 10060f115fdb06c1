// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/messagenet/bannerd/ent/hardware"
	"github.com/messagenet/bannerd/ent/predicate"
)

// HardwareUpdate is the builder for updating Hardware entities.
type HardwareUpdate struct {
	config
	hooks    []Hook
	mutation *HardwareMutation
}

// Where appends a list predicates to the HardwareUpdate builder.
func (_u *HardwareUpdate) Where(ps ...predicate.Hardware) *HardwareUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetDeviceID sets the "device_id" field.
func (_u *HardwareUpdate) SetDeviceID(v string) *HardwareUpdate {
	_u.mutation.SetDeviceID(v)
	return _u
}

// SetNillableDeviceID sets the "device_id" field if the given value is not nil.
func (_u *HardwareUpdate) SetNillableDeviceID(v *string) *HardwareUpdate {
	if v != nil {
		_u.SetDeviceID(*v)
	}
	return _u
}

// SetDeviceKind sets the "device_kind" field.
func (_u *HardwareUpdate) SetDeviceKind(v hardware.DeviceKind) *HardwareUpdate {
	_u.mutation.SetDeviceKind(v)
	return _u
}

// SetNillableDeviceKind sets the "device_kind" field if the given value is not nil.
func (_u *HardwareUpdate) SetNillableDeviceKind(v *hardware.DeviceKind) *HardwareUpdate {
	if v != nil {
		_u.SetDeviceKind(*v)
	}
	return _u
}

// SetName sets the "name" field.
func (_u *HardwareUpdate) SetName(v string) *HardwareUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *HardwareUpdate) SetNillableName(v *string) *HardwareUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// ClearName clears the value of the "name" field.
func (_u *HardwareUpdate) ClearName() *HardwareUpdate {
	_u.mutation.ClearName()
	return _u
}

// SetAddress sets the "address" field.
func (_u *HardwareUpdate) SetAddress(v string) *HardwareUpdate {
	_u.mutation.SetAddress(v)
	return _u
}

// SetNillableAddress sets the "address" field if the given value is not nil.
func (_u *HardwareUpdate) SetNillableAddress(v *string) *HardwareUpdate {
	if v != nil {
		_u.SetAddress(*v)
	}
	return _u
}

// SetPort sets the "port" field.
func (_u *HardwareUpdate) SetPort(v int) *HardwareUpdate {
	_u.mutation.ResetPort()
	_u.mutation.SetPort(v)
	return _u
}

// SetNillablePort sets the "port" field if the given value is not nil.
func (_u *HardwareUpdate) SetNillablePort(v *int) *HardwareUpdate {
	if v != nil {
		_u.SetPort(*v)
	}
	return _u
}

// AddPort adds value to the "port" field.
func (_u *HardwareUpdate) AddPort(v int) *HardwareUpdate {
	_u.mutation.AddPort(v)
	return _u
}

// SetPassword sets the "password" field.
func (_u *HardwareUpdate) SetPassword(v string) *HardwareUpdate {
	_u.mutation.SetPassword(v)
	return _u
}

// SetNillablePassword sets the "password" field if the given value is not nil.
func (_u *HardwareUpdate) SetNillablePassword(v *string) *HardwareUpdate {
	if v != nil {
		_u.SetPassword(*v)
	}
	return _u
}

// SetAutoAddress sets the "auto_address" field.
func (_u *HardwareUpdate) SetAutoAddress(v bool) *HardwareUpdate {
	_u.mutation.SetAutoAddress(v)
	return _u
}

// SetNillableAutoAddress sets the "auto_address" field if the given value is not nil.
func (_u *HardwareUpdate) SetNillableAutoAddress(v *bool) *HardwareUpdate {
	if v != nil {
		_u.SetAutoAddress(*v)
	}
	return _u
}

// SetIPMethodConfig sets the "ip_method_config" field.
func (_u *HardwareUpdate) SetIPMethodConfig(v string) *HardwareUpdate {
	_u.mutation.SetIPMethodConfig(v)
	return _u
}

// SetNillableIPMethodConfig sets the "ip_method_config" field if the given value is not nil.
func (_u *HardwareUpdate) SetNillableIPMethodConfig(v *string) *HardwareUpdate {
	if v != nil {
		_u.SetIPMethodConfig(*v)
	}
	return _u
}

// SetIPMethodCurrent sets the "ip_method_current" field.
func (_u *HardwareUpdate) SetIPMethodCurrent(v string) *HardwareUpdate {
	_u.mutation.SetIPMethodCurrent(v)
	return _u
}

// SetNillableIPMethodCurrent sets the "ip_method_current" field if the given value is not nil.
func (_u *HardwareUpdate) SetNillableIPMethodCurrent(v *string) *HardwareUpdate {
	if v != nil {
		_u.SetIPMethodCurrent(*v)
	}
	return _u
}

// SetRtspPort sets the "rtsp_port" field.
func (_u *HardwareUpdate) SetRtspPort(v int) *HardwareUpdate {
	_u.mutation.ResetRtspPort()
	_u.mutation.SetRtspPort(v)
	return _u
}

// SetNillableRtspPort sets the "rtsp_port" field if the given value is not nil.
func (_u *HardwareUpdate) SetNillableRtspPort(v *int) *HardwareUpdate {
	if v != nil {
		_u.SetRtspPort(*v)
	}
	return _u
}

// AddRtspPort adds value to the "rtsp_port" field.
func (_u *HardwareUpdate) AddRtspPort(v int) *HardwareUpdate {
	_u.mutation.AddRtspPort(v)
	return _u
}

// SetConnectionStatus sets the "connection_status" field.
func (_u *HardwareUpdate) SetConnectionStatus(v hardware.ConnectionStatus) *HardwareUpdate {
	_u.mutation.SetConnectionStatus(v)
	return _u
}

// SetNillableConnectionStatus sets the "connection_status" field if the given value is not nil.
func (_u *HardwareUpdate) SetNillableConnectionStatus(v *hardware.ConnectionStatus) *HardwareUpdate {
	if v != nil {
		_u.SetConnectionStatus(*v)
	}
	return _u
}

// Mutation returns the HardwareMutation object of the builder.
func (_u *HardwareUpdate) Mutation() *HardwareMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *HardwareUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *HardwareUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *HardwareUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *HardwareUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *HardwareUpdate) check() error {
	if v, ok := _u.mutation.DeviceKind(); ok {
		if err := hardware.DeviceKindValidator(v); err != nil {
			return &ValidationError{Name: "device_kind", err: fmt.Errorf(`ent: validator failed for field "Hardware.device_kind": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ConnectionStatus(); ok {
		if err := hardware.ConnectionStatusValidator(v); err != nil {
			return &ValidationError{Name: "connection_status", err: fmt.Errorf(`ent: validator failed for field "Hardware.connection_status": %w`, err)}
		}
	}
	return nil
}

func (_u *HardwareUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(hardware.Table, hardware.Columns, sqlgraph.NewFieldSpec(hardware.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.DeviceID(); ok {
		_spec.SetField(hardware.FieldDeviceID, field.TypeString, value)
	}
	if value, ok := _u.mutation.DeviceKind(); ok {
		_spec.SetField(hardware.FieldDeviceKind, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(hardware.FieldName, field.TypeString, value)
	}
	if _u.mutation.NameCleared() {
		_spec.ClearField(hardware.FieldName, field.TypeString)
	}
	if value, ok := _u.mutation.Address(); ok {
		_spec.SetField(hardware.FieldAddress, field.TypeString, value)
	}
	if value, ok := _u.mutation.Port(); ok {
		_spec.SetField(hardware.FieldPort, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPort(); ok {
		_spec.AddField(hardware.FieldPort, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Password(); ok {
		_spec.SetField(hardware.FieldPassword, field.TypeString, value)
	}
	if value, ok := _u.mutation.AutoAddress(); ok {
		_spec.SetField(hardware.FieldAutoAddress, field.TypeBool, value)
	}
	if value, ok := _u.mutation.IPMethodConfig(); ok {
		_spec.SetField(hardware.FieldIPMethodConfig, field.TypeString, value)
	}
	if value, ok := _u.mutation.IPMethodCurrent(); ok {
		_spec.SetField(hardware.FieldIPMethodCurrent, field.TypeString, value)
	}
	if value, ok := _u.mutation.RtspPort(); ok {
		_spec.SetField(hardware.FieldRtspPort, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRtspPort(); ok {
		_spec.AddField(hardware.FieldRtspPort, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ConnectionStatus(); ok {
		_spec.SetField(hardware.FieldConnectionStatus, field.TypeEnum, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{hardware.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// HardwareUpdateOne is the builder for updating a single Hardware entity.
type HardwareUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *HardwareMutation
}

// SetDeviceID sets the "device_id" field.
func (_u *HardwareUpdateOne) SetDeviceID(v string) *HardwareUpdateOne {
	_u.mutation.SetDeviceID(v)
	return _u
}

// SetNillableDeviceID sets the "device_id" field if the given value is not nil.
func (_u *HardwareUpdateOne) SetNillableDeviceID(v *string) *HardwareUpdateOne {
	if v != nil {
		_u.SetDeviceID(*v)
	}
	return _u
}

// SetDeviceKind sets the "device_kind" field.
func (_u *HardwareUpdateOne) SetDeviceKind(v hardware.DeviceKind) *HardwareUpdateOne {
	_u.mutation.SetDeviceKind(v)
	return _u
}

// SetNillableDeviceKind sets the "device_kind" field if the given value is not nil.
func (_u *HardwareUpdateOne) SetNillableDeviceKind(v *hardware.DeviceKind) *HardwareUpdateOne {
	if v != nil {
		_u.SetDeviceKind(*v)
	}
	return _u
}

// SetName sets the "name" field.
func (_u *HardwareUpdateOne) SetName(v string) *HardwareUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *HardwareUpdateOne) SetNillableName(v *string) *HardwareUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// ClearName clears the value of the "name" field.
func (_u *HardwareUpdateOne) ClearName() *HardwareUpdateOne {
	_u.mutation.ClearName()
	return _u
}

// SetAddress sets the "address" field.
func (_u *HardwareUpdateOne) SetAddress(v string) *HardwareUpdateOne {
	_u.mutation.SetAddress(v)
	return _u
}

// SetNillableAddress sets the "address" field if the given value is not nil.
func (_u *HardwareUpdateOne) SetNillableAddress(v *string) *HardwareUpdateOne {
	if v != nil {
		_u.SetAddress(*v)
	}
	return _u
}

// SetPort sets the "port" field.
func (_u *HardwareUpdateOne) SetPort(v int) *HardwareUpdateOne {
	_u.mutation.ResetPort()
	_u.mutation.SetPort(v)
	return _u
}

// SetNillablePort sets the "port" field if the given value is not nil.
func (_u *HardwareUpdateOne) SetNillablePort(v *int) *HardwareUpdateOne {
	if v != nil {
		_u.SetPort(*v)
	}
	return _u
}

// AddPort adds value to the "port" field.
func (_u *HardwareUpdateOne) AddPort(v int) *HardwareUpdateOne {
	_u.mutation.AddPort(v)
	return _u
}

// SetPassword sets the "password" field.
func (_u *HardwareUpdateOne) SetPassword(v string) *HardwareUpdateOne {
	_u.mutation.SetPassword(v)
	return _u
}

// SetNillablePassword sets the "password" field if the given value is not nil.
func (_u *HardwareUpdateOne) SetNillablePassword(v *string) *HardwareUpdateOne {
	if v != nil {
		_u.SetPassword(*v)
	}
	return _u
}

// SetAutoAddress sets the "auto_address" field.
func (_u *HardwareUpdateOne) SetAutoAddress(v bool) *HardwareUpdateOne {
	_u.mutation.SetAutoAddress(v)
	return _u
}

// SetNillableAutoAddress sets the "auto_address" field if the given value is not nil.
func (_u *HardwareUpdateOne) SetNillableAutoAddress(v *bool) *HardwareUpdateOne {
	if v != nil {
		_u.SetAutoAddress(*v)
	}
	return _u
}

// SetIPMethodConfig sets the "ip_method_config" field.
func (_u *HardwareUpdateOne) SetIPMethodConfig(v string) *HardwareUpdateOne {
	_u.mutation.SetIPMethodConfig(v)
	return _u
}

// SetNillableIPMethodConfig sets the "ip_method_config" field if the given value is not nil.
func (_u *HardwareUpdateOne) SetNillableIPMethodConfig(v *string) *HardwareUpdateOne {
	if v != nil {
		_u.SetIPMethodConfig(*v)
	}
	return _u
}

// SetIPMethodCurrent sets the "ip_method_current" field.
func (_u *HardwareUpdateOne) SetIPMethodCurrent(v string) *HardwareUpdateOne {
	_u.mutation.SetIPMethodCurrent(v)
	return _u
}

// SetNillableIPMethodCurrent sets the "ip_method_current" field if the given value is not nil.
func (_u *HardwareUpdateOne) SetNillableIPMethodCurrent(v *string) *HardwareUpdateOne {
	if v != nil {
		_u.SetIPMethodCurrent(*v)
	}
	return _u
}

// SetRtspPort sets the "rtsp_port" field.
func (_u *HardwareUpdateOne) SetRtspPort(v int) *HardwareUpdateOne {
	_u.mutation.ResetRtspPort()
	_u.mutation.SetRtspPort(v)
	return _u
}

// SetNillableRtspPort sets the "rtsp_port" field if the given value is not nil.
func (_u *HardwareUpdateOne) SetNillableRtspPort(v *int) *HardwareUpdateOne {
	if v != nil {
		_u.SetRtspPort(*v)
	}
	return _u
}

// AddRtspPort adds value to the "rtsp_port" field.
func (_u *HardwareUpdateOne) AddRtspPort(v int) *HardwareUpdateOne {
	_u.mutation.AddRtspPort(v)
	return _u
}

// SetConnectionStatus sets the "connection_status" field.
func (_u *HardwareUpdateOne) SetConnectionStatus(v hardware.ConnectionStatus) *HardwareUpdateOne {
	_u.mutation.SetConnectionStatus(v)
	return _u
}

// SetNillableConnectionStatus sets the "connection_status" field if the given value is not nil.
func (_u *HardwareUpdateOne) SetNillableConnectionStatus(v *hardware.ConnectionStatus) *HardwareUpdateOne {
	if v != nil {
		_u.SetConnectionStatus(*v)
	}
	return _u
}

// Mutation returns the HardwareMutation object of the builder.
func (_u *HardwareUpdateOne) Mutation() *HardwareMutation {
	return _u.mutation
}

// Where appends a list predicates to the HardwareUpdate builder.
func (_u *HardwareUpdateOne) Where(ps ...predicate.Hardware) *HardwareUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *HardwareUpdateOne) Select(field string, fields ...string) *HardwareUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Hardware entity.
func (_u *HardwareUpdateOne) Save(ctx context.Context) (*Hardware, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *HardwareUpdateOne) SaveX(ctx context.Context) *Hardware {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *HardwareUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *HardwareUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *HardwareUpdateOne) check() error {
	if v, ok := _u.mutation.DeviceKind(); ok {
		if err := hardware.DeviceKindValidator(v); err != nil {
			return &ValidationError{Name: "device_kind", err: fmt.Errorf(`ent: validator failed for field "Hardware.device_kind": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ConnectionStatus(); ok {
		if err := hardware.ConnectionStatusValidator(v); err != nil {
			return &ValidationError{Name: "connection_status", err: fmt.Errorf(`ent: validator failed for field "Hardware.connection_status": %w`, err)}
		}
	}
	return nil
}

func (_u *HardwareUpdateOne) sqlSave(ctx context.Context) (_node *Hardware, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(hardware.Table, hardware.Columns, sqlgraph.NewFieldSpec(hardware.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Hardware.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, hardware.FieldID)
		for _, f := range fields {
			if !hardware.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != hardware.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.DeviceID(); ok {
		_spec.SetField(hardware.FieldDeviceID, field.TypeString, value)
	}
	if value, ok := _u.mutation.DeviceKind(); ok {
		_spec.SetField(hardware.FieldDeviceKind, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(hardware.FieldName, field.TypeString, value)
	}
	if _u.mutation.NameCleared() {
		_spec.ClearField(hardware.FieldName, field.TypeString)
	}
	if value, ok := _u.mutation.Address(); ok {
		_spec.SetField(hardware.FieldAddress, field.TypeString, value)
	}
	if value, ok := _u.mutation.Port(); ok {
		_spec.SetField(hardware.FieldPort, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPort(); ok {
		_spec.AddField(hardware.FieldPort, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Password(); ok {
		_spec.SetField(hardware.FieldPassword, field.TypeString, value)
	}
	if value, ok := _u.mutation.AutoAddress(); ok {
		_spec.SetField(hardware.FieldAutoAddress, field.TypeBool, value)
	}
	if value, ok := _u.mutation.IPMethodConfig(); ok {
		_spec.SetField(hardware.FieldIPMethodConfig, field.TypeString, value)
	}
	if value, ok := _u.mutation.IPMethodCurrent(); ok {
		_spec.SetField(hardware.FieldIPMethodCurrent, field.TypeString, value)
	}
	if value, ok := _u.mutation.RtspPort(); ok {
		_spec.SetField(hardware.FieldRtspPort, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRtspPort(); ok {
		_spec.AddField(hardware.FieldRtspPort, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ConnectionStatus(); ok {
		_spec.SetField(hardware.FieldConnectionStatus, field.TypeEnum, value)
	}
	_node = &Hardware{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{hardware.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
