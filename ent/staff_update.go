// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/messagenet/bannerd/ent/predicate"
	"github.com/messagenet/bannerd/ent/staff"
)

// StaffUpdate is the builder for updating Staff entities.
type StaffUpdate struct {
	config
	hooks    []Hook
	mutation *StaffMutation
}

// Where appends a list predicates to the StaffUpdate builder.
func (_u *StaffUpdate) Where(ps ...predicate.Staff) *StaffUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetPin sets the "pin" field.
func (_u *StaffUpdate) SetPin(v string) *StaffUpdate {
	_u.mutation.SetPin(v)
	return _u
}

// SetNillablePin sets the "pin" field if the given value is not nil.
func (_u *StaffUpdate) SetNillablePin(v *string) *StaffUpdate {
	if v != nil {
		_u.SetPin(*v)
	}
	return _u
}

// SetGender sets the "gender" field.
func (_u *StaffUpdate) SetGender(v string) *StaffUpdate {
	_u.mutation.SetGender(v)
	return _u
}

// SetNillableGender sets the "gender" field if the given value is not nil.
func (_u *StaffUpdate) SetNillableGender(v *string) *StaffUpdate {
	if v != nil {
		_u.SetGender(*v)
	}
	return _u
}

// SetName sets the "name" field.
func (_u *StaffUpdate) SetName(v string) *StaffUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *StaffUpdate) SetNillableName(v *string) *StaffUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// ClearName clears the value of the "name" field.
func (_u *StaffUpdate) ClearName() *StaffUpdate {
	_u.mutation.ClearName()
	return _u
}

// Mutation returns the StaffMutation object of the builder.
func (_u *StaffUpdate) Mutation() *StaffMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *StaffUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *StaffUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *StaffUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *StaffUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *StaffUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(staff.Table, staff.Columns, sqlgraph.NewFieldSpec(staff.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Pin(); ok {
		_spec.SetField(staff.FieldPin, field.TypeString, value)
	}
	if value, ok := _u.mutation.Gender(); ok {
		_spec.SetField(staff.FieldGender, field.TypeString, value)
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(staff.FieldName, field.TypeString, value)
	}
	if _u.mutation.NameCleared() {
		_spec.ClearField(staff.FieldName, field.TypeString)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{staff.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// StaffUpdateOne is the builder for updating a single Staff entity.
type StaffUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *StaffMutation
}

// SetPin sets the "pin" field.
func (_u *StaffUpdateOne) SetPin(v string) *StaffUpdateOne {
	_u.mutation.SetPin(v)
	return _u
}

// SetNillablePin sets the "pin" field if the given value is not nil.
func (_u *StaffUpdateOne) SetNillablePin(v *string) *StaffUpdateOne {
	if v != nil {
		_u.SetPin(*v)
	}
	return _u
}

// SetGender sets the "gender" field.
func (_u *StaffUpdateOne) SetGender(v string) *StaffUpdateOne {
	_u.mutation.SetGender(v)
	return _u
}

// SetNillableGender sets the "gender" field if the given value is not nil.
func (_u *StaffUpdateOne) SetNillableGender(v *string) *StaffUpdateOne {
	if v != nil {
		_u.SetGender(*v)
	}
	return _u
}

// SetName sets the "name" field.
func (_u *StaffUpdateOne) SetName(v string) *StaffUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *StaffUpdateOne) SetNillableName(v *string) *StaffUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// ClearName clears the value of the "name" field.
func (_u *StaffUpdateOne) ClearName() *StaffUpdateOne {
	_u.mutation.ClearName()
	return _u
}

// Mutation returns the StaffMutation object of the builder.
func (_u *StaffUpdateOne) Mutation() *StaffMutation {
	return _u.mutation
}

// Where appends a list predicates to the StaffUpdate builder.
func (_u *StaffUpdateOne) Where(ps ...predicate.Staff) *StaffUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *StaffUpdateOne) Select(field string, fields ...string) *StaffUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Staff entity.
func (_u *StaffUpdateOne) Save(ctx context.Context) (*Staff, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *StaffUpdateOne) SaveX(ctx context.Context) *Staff {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *StaffUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *StaffUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *StaffUpdateOne) sqlSave(ctx context.Context) (_node *Staff, err error) {
	_spec := sqlgraph.NewUpdateSpec(staff.Table, staff.Columns, sqlgraph.NewFieldSpec(staff.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Staff.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, staff.FieldID)
		for _, f := range fields {
			if !staff.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != staff.FieldID {
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
	if value, ok := _u.mutation.Pin(); ok {
		_spec.SetField(staff.FieldPin, field.TypeString, value)
	}
	if value, ok := _u.mutation.Gender(); ok {
		_spec.SetField(staff.FieldGender, field.TypeString, value)
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(staff.FieldName, field.TypeString, value)
	}
	if _u.mutation.NameCleared() {
		_spec.ClearField(staff.FieldName, field.TypeString)
	}
	_node = &Staff{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{staff.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
