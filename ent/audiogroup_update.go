// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/messagenet/bannerd/ent/audiogroup"
	"github.com/messagenet/bannerd/ent/predicate"
)

// AudioGroupUpdate is the builder for updating AudioGroup entities.
type AudioGroupUpdate struct {
	config
	hooks    []Hook
	mutation *AudioGroupMutation
}

// Where appends a list predicates to the AudioGroupUpdate builder.
func (_u *AudioGroupUpdate) Where(ps ...predicate.AudioGroup) *AudioGroupUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetName sets the "name" field.
func (_u *AudioGroupUpdate) SetName(v string) *AudioGroupUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *AudioGroupUpdate) SetNillableName(v *string) *AudioGroupUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetDeviceRecnos sets the "device_recnos" field.
func (_u *AudioGroupUpdate) SetDeviceRecnos(v []int) *AudioGroupUpdate {
	_u.mutation.SetDeviceRecnos(v)
	return _u
}

// AppendDeviceRecnos appends value to the "device_recnos" field.
func (_u *AudioGroupUpdate) AppendDeviceRecnos(v []int) *AudioGroupUpdate {
	_u.mutation.AppendDeviceRecnos(v)
	return _u
}

// ClearDeviceRecnos clears the value of the "device_recnos" field.
func (_u *AudioGroupUpdate) ClearDeviceRecnos() *AudioGroupUpdate {
	_u.mutation.ClearDeviceRecnos()
	return _u
}

// Mutation returns the AudioGroupMutation object of the builder.
func (_u *AudioGroupUpdate) Mutation() *AudioGroupMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *AudioGroupUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AudioGroupUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *AudioGroupUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AudioGroupUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *AudioGroupUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(audiogroup.Table, audiogroup.Columns, sqlgraph.NewFieldSpec(audiogroup.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(audiogroup.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.DeviceRecnos(); ok {
		_spec.SetField(audiogroup.FieldDeviceRecnos, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedDeviceRecnos(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, audiogroup.FieldDeviceRecnos, value)
		})
	}
	if _u.mutation.DeviceRecnosCleared() {
		_spec.ClearField(audiogroup.FieldDeviceRecnos, field.TypeJSON)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{audiogroup.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// AudioGroupUpdateOne is the builder for updating a single AudioGroup entity.
type AudioGroupUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *AudioGroupMutation
}

// SetName sets the "name" field.
func (_u *AudioGroupUpdateOne) SetName(v string) *AudioGroupUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *AudioGroupUpdateOne) SetNillableName(v *string) *AudioGroupUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetDeviceRecnos sets the "device_recnos" field.
func (_u *AudioGroupUpdateOne) SetDeviceRecnos(v []int) *AudioGroupUpdateOne {
	_u.mutation.SetDeviceRecnos(v)
	return _u
}

// AppendDeviceRecnos appends value to the "device_recnos" field.
func (_u *AudioGroupUpdateOne) AppendDeviceRecnos(v []int) *AudioGroupUpdateOne {
	_u.mutation.AppendDeviceRecnos(v)
	return _u
}

// ClearDeviceRecnos clears the value of the "device_recnos" field.
func (_u *AudioGroupUpdateOne) ClearDeviceRecnos() *AudioGroupUpdateOne {
	_u.mutation.ClearDeviceRecnos()
	return _u
}

// Mutation returns the AudioGroupMutation object of the builder.
func (_u *AudioGroupUpdateOne) Mutation() *AudioGroupMutation {
	return _u.mutation
}

// Where appends a list predicates to the AudioGroupUpdate builder.
func (_u *AudioGroupUpdateOne) Where(ps ...predicate.AudioGroup) *AudioGroupUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *AudioGroupUpdateOne) Select(field string, fields ...string) *AudioGroupUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated AudioGroup entity.
func (_u *AudioGroupUpdateOne) Save(ctx context.Context) (*AudioGroup, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AudioGroupUpdateOne) SaveX(ctx context.Context) *AudioGroup {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *AudioGroupUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AudioGroupUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *AudioGroupUpdateOne) sqlSave(ctx context.Context) (_node *AudioGroup, err error) {
	_spec := sqlgraph.NewUpdateSpec(audiogroup.Table, audiogroup.Columns, sqlgraph.NewFieldSpec(audiogroup.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "AudioGroup.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, audiogroup.FieldID)
		for _, f := range fields {
			if !audiogroup.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != audiogroup.FieldID {
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
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(audiogroup.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.DeviceRecnos(); ok {
		_spec.SetField(audiogroup.FieldDeviceRecnos, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedDeviceRecnos(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, audiogroup.FieldDeviceRecnos, value)
		})
	}
	if _u.mutation.DeviceRecnosCleared() {
		_spec.ClearField(audiogroup.FieldDeviceRecnos, field.TypeJSON)
	}
	_node = &AudioGroup{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{audiogroup.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
