// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/messagenet/bannerd/ent/hardware"
)

// HardwareCreate is the builder for creating a Hardware entity.
type HardwareCreate struct {
	config
	mutation *HardwareMutation
	hooks    []Hook
}

// SetDeviceID sets the "device_id" field.
func (_c *HardwareCreate) SetDeviceID(v string) *HardwareCreate {
	_c.mutation.SetDeviceID(v)
	return _c
}

// SetDeviceKind sets the "device_kind" field.
func (_c *HardwareCreate) SetDeviceKind(v hardware.DeviceKind) *HardwareCreate {
	_c.mutation.SetDeviceKind(v)
	return _c
}

// SetName sets the "name" field.
func (_c *HardwareCreate) SetName(v string) *HardwareCreate {
	_c.mutation.SetName(v)
	return _c
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_c *HardwareCreate) SetNillableName(v *string) *HardwareCreate {
	if v != nil {
		_c.SetName(*v)
	}
	return _c
}

// SetAddress sets the "address" field.
func (_c *HardwareCreate) SetAddress(v string) *HardwareCreate {
	_c.mutation.SetAddress(v)
	return _c
}

// SetNillableAddress sets the "address" field if the given value is not nil.
func (_c *HardwareCreate) SetNillableAddress(v *string) *HardwareCreate {
	if v != nil {
		_c.SetAddress(*v)
	}
	return _c
}

// SetPort sets the "port" field.
func (_c *HardwareCreate) SetPort(v int) *HardwareCreate {
	_c.mutation.SetPort(v)
	return _c
}

// SetNillablePort sets the "port" field if the given value is not nil.
func (_c *HardwareCreate) SetNillablePort(v *int) *HardwareCreate {
	if v != nil {
		_c.SetPort(*v)
	}
	return _c
}

// SetPassword sets the "password" field.
func (_c *HardwareCreate) SetPassword(v string) *HardwareCreate {
	_c.mutation.SetPassword(v)
	return _c
}

// SetNillablePassword sets the "password" field if the given value is not nil.
func (_c *HardwareCreate) SetNillablePassword(v *string) *HardwareCreate {
	if v != nil {
		_c.SetPassword(*v)
	}
	return _c
}

// SetAutoAddress sets the "auto_address" field.
func (_c *HardwareCreate) SetAutoAddress(v bool) *HardwareCreate {
	_c.mutation.SetAutoAddress(v)
	return _c
}

// SetNillableAutoAddress sets the "auto_address" field if the given value is not nil.
func (_c *HardwareCreate) SetNillableAutoAddress(v *bool) *HardwareCreate {
	if v != nil {
		_c.SetAutoAddress(*v)
	}
	return _c
}

// SetIPMethodConfig sets the "ip_method_config" field.
func (_c *HardwareCreate) SetIPMethodConfig(v string) *HardwareCreate {
	_c.mutation.SetIPMethodConfig(v)
	return _c
}

// SetNillableIPMethodConfig sets the "ip_method_config" field if the given value is not nil.
func (_c *HardwareCreate) SetNillableIPMethodConfig(v *string) *HardwareCreate {
	if v != nil {
		_c.SetIPMethodConfig(*v)
	}
	return _c
}

// SetIPMethodCurrent sets the "ip_method_current" field.
func (_c *HardwareCreate) SetIPMethodCurrent(v string) *HardwareCreate {
	_c.mutation.SetIPMethodCurrent(v)
	return _c
}

// SetNillableIPMethodCurrent sets the "ip_method_current" field if the given value is not nil.
func (_c *HardwareCreate) SetNillableIPMethodCurrent(v *string) *HardwareCreate {
	if v != nil {
		_c.SetIPMethodCurrent(*v)
	}
	return _c
}

// SetRtspPort sets the "rtsp_port" field.
func (_c *HardwareCreate) SetRtspPort(v int) *HardwareCreate {
	_c.mutation.SetRtspPort(v)
	return _c
}

// SetNillableRtspPort sets the "rtsp_port" field if the given value is not nil.
func (_c *HardwareCreate) SetNillableRtspPort(v *int) *HardwareCreate {
	if v != nil {
		_c.SetRtspPort(*v)
	}
	return _c
}

// SetConnectionStatus sets the "connection_status" field.
func (_c *HardwareCreate) SetConnectionStatus(v hardware.ConnectionStatus) *HardwareCreate {
	_c.mutation.SetConnectionStatus(v)
	return _c
}

// SetNillableConnectionStatus sets the "connection_status" field if the given value is not nil.
func (_c *HardwareCreate) SetNillableConnectionStatus(v *hardware.ConnectionStatus) *HardwareCreate {
	if v != nil {
		_c.SetConnectionStatus(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *HardwareCreate) SetID(v int) *HardwareCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the HardwareMutation object of the builder.
func (_c *HardwareCreate) Mutation() *HardwareMutation {
	return _c.mutation
}

// Save creates the Hardware in the database.
func (_c *HardwareCreate) Save(ctx context.Context) (*Hardware, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *HardwareCreate) SaveX(ctx context.Context) *Hardware {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *HardwareCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *HardwareCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *HardwareCreate) defaults() {
	if _, ok := _c.mutation.Address(); !ok {
		v := hardware.DefaultAddress
		_c.mutation.SetAddress(v)
	}
	if _, ok := _c.mutation.Port(); !ok {
		v := hardware.DefaultPort
		_c.mutation.SetPort(v)
	}
	if _, ok := _c.mutation.Password(); !ok {
		v := hardware.DefaultPassword
		_c.mutation.SetPassword(v)
	}
	if _, ok := _c.mutation.AutoAddress(); !ok {
		v := hardware.DefaultAutoAddress
		_c.mutation.SetAutoAddress(v)
	}
	if _, ok := _c.mutation.IPMethodConfig(); !ok {
		v := hardware.DefaultIPMethodConfig
		_c.mutation.SetIPMethodConfig(v)
	}
	if _, ok := _c.mutation.IPMethodCurrent(); !ok {
		v := hardware.DefaultIPMethodCurrent
		_c.mutation.SetIPMethodCurrent(v)
	}
	if _, ok := _c.mutation.RtspPort(); !ok {
		v := hardware.DefaultRtspPort
		_c.mutation.SetRtspPort(v)
	}
	if _, ok := _c.mutation.ConnectionStatus(); !ok {
		v := hardware.DefaultConnectionStatus
		_c.mutation.SetConnectionStatus(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *HardwareCreate) check() error {
	if _, ok := _c.mutation.DeviceID(); !ok {
		return &ValidationError{Name: "device_id", err: errors.New(`ent: missing required field "Hardware.device_id"`)}
	}
	if _, ok := _c.mutation.DeviceKind(); !ok {
		return &ValidationError{Name: "device_kind", err: errors.New(`ent: missing required field "Hardware.device_kind"`)}
	}
	if v, ok := _c.mutation.DeviceKind(); ok {
		if err := hardware.DeviceKindValidator(v); err != nil {
			return &ValidationError{Name: "device_kind", err: fmt.Errorf(`ent: validator failed for field "Hardware.device_kind": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Address(); !ok {
		return &ValidationError{Name: "address", err: errors.New(`ent: missing required field "Hardware.address"`)}
	}
	if _, ok := _c.mutation.Port(); !ok {
		return &ValidationError{Name: "port", err: errors.New(`ent: missing required field "Hardware.port"`)}
	}
	if _, ok := _c.mutation.Password(); !ok {
		return &ValidationError{Name: "password", err: errors.New(`ent: missing required field "Hardware.password"`)}
	}
	if _, ok := _c.mutation.AutoAddress(); !ok {
		return &ValidationError{Name: "auto_address", err: errors.New(`ent: missing required field "Hardware.auto_address"`)}
	}
	if _, ok := _c.mutation.IPMethodConfig(); !ok {
		return &ValidationError{Name: "ip_method_config", err: errors.New(`ent: missing required field "Hardware.ip_method_config"`)}
	}
	if _, ok := _c.mutation.IPMethodCurrent(); !ok {
		return &ValidationError{Name: "ip_method_current", err: errors.New(`ent: missing required field "Hardware.ip_method_current"`)}
	}
	if _, ok := _c.mutation.RtspPort(); !ok {
		return &ValidationError{Name: "rtsp_port", err: errors.New(`ent: missing required field "Hardware.rtsp_port"`)}
	}
	if _, ok := _c.mutation.ConnectionStatus(); !ok {
		return &ValidationError{Name: "connection_status", err: errors.New(`ent: missing required field "Hardware.connection_status"`)}
	}
	if v, ok := _c.mutation.ConnectionStatus(); ok {
		if err := hardware.ConnectionStatusValidator(v); err != nil {
			return &ValidationError{Name: "connection_status", err: fmt.Errorf(`ent: validator failed for field "Hardware.connection_status": %w`, err)}
		}
	}
	return nil
}

func (_c *HardwareCreate) sqlSave(ctx context.Context) (*Hardware, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != _node.ID {
		id := _spec.ID.Value.(int64)
		_node.ID = int(id)
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *HardwareCreate) createSpec() (*Hardware, *sqlgraph.CreateSpec) {
	var (
		_node = &Hardware{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(hardware.Table, sqlgraph.NewFieldSpec(hardware.FieldID, field.TypeInt))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.DeviceID(); ok {
		_spec.SetField(hardware.FieldDeviceID, field.TypeString, value)
		_node.DeviceID = value
	}
	if value, ok := _c.mutation.DeviceKind(); ok {
		_spec.SetField(hardware.FieldDeviceKind, field.TypeEnum, value)
		_node.DeviceKind = value
	}
	if value, ok := _c.mutation.Name(); ok {
		_spec.SetField(hardware.FieldName, field.TypeString, value)
		_node.Name = value
	}
	if value, ok := _c.mutation.Address(); ok {
		_spec.SetField(hardware.FieldAddress, field.TypeString, value)
		_node.Address = value
	}
	if value, ok := _c.mutation.Port(); ok {
		_spec.SetField(hardware.FieldPort, field.TypeInt, value)
		_node.Port = value
	}
	if value, ok := _c.mutation.Password(); ok {
		_spec.SetField(hardware.FieldPassword, field.TypeString, value)
		_node.Password = value
	}
	if value, ok := _c.mutation.AutoAddress(); ok {
		_spec.SetField(hardware.FieldAutoAddress, field.TypeBool, value)
		_node.AutoAddress = value
	}
	if value, ok := _c.mutation.IPMethodConfig(); ok {
		_spec.SetField(hardware.FieldIPMethodConfig, field.TypeString, value)
		_node.IPMethodConfig = value
	}
	if value, ok := _c.mutation.IPMethodCurrent(); ok {
		_spec.SetField(hardware.FieldIPMethodCurrent, field.TypeString, value)
		_node.IPMethodCurrent = value
	}
	if value, ok := _c.mutation.RtspPort(); ok {
		_spec.SetField(hardware.FieldRtspPort, field.TypeInt, value)
		_node.RtspPort = value
	}
	if value, ok := _c.mutation.ConnectionStatus(); ok {
		_spec.SetField(hardware.FieldConnectionStatus, field.TypeEnum, value)
		_node.ConnectionStatus = value
	}
	return _node, _spec
}

// HardwareCreateBulk is the builder for creating many Hardware entities in bulk.
type HardwareCreateBulk struct {
	config
	err      error
	builders []*HardwareCreate
}

// Save creates the Hardware entities in the database.
func (_c *HardwareCreateBulk) Save(ctx context.Context) ([]*Hardware, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Hardware, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*HardwareMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				if specs[i].ID.Value != nil && nodes[i].ID == 0 {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int(id)
				}
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *HardwareCreateBulk) SaveX(ctx context.Context) []*Hardware {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *HardwareCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *HardwareCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
