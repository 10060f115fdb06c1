// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/messagenet/bannerd/ent/audiogroup"
)

// AudioGroupCreate is the builder for creating a AudioGroup entity.
type AudioGroupCreate struct {
	config
	mutation *AudioGroupMutation
	hooks    []Hook
}

// SetName sets the "name" field.
func (_c *AudioGroupCreate) SetName(v string) *AudioGroupCreate {
	_c.mutation.SetName(v)
	return _c
}

// SetDeviceRecnos sets the "device_recnos" field.
func (_c *AudioGroupCreate) SetDeviceRecnos(v []int) *AudioGroupCreate {
	_c.mutation.SetDeviceRecnos(v)
	return _c
}

// Mutation returns the AudioGroupMutation object of the builder.
func (_c *AudioGroupCreate) Mutation() *AudioGroupMutation {
	return _c.mutation
}

// Save creates the AudioGroup in the database.
func (_c *AudioGroupCreate) Save(ctx context.Context) (*AudioGroup, error) {
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *AudioGroupCreate) SaveX(ctx context.Context) *AudioGroup {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AudioGroupCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AudioGroupCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *AudioGroupCreate) check() error {
	if _, ok := _c.mutation.Name(); !ok {
		return &ValidationError{Name: "name", err: errors.New(`ent: missing required field "AudioGroup.name"`)}
	}
	return nil
}

func (_c *AudioGroupCreate) sqlSave(ctx context.Context) (*AudioGroup, error) {
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
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *AudioGroupCreate) createSpec() (*AudioGroup, *sqlgraph.CreateSpec) {
	var (
		_node = &AudioGroup{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(audiogroup.Table, sqlgraph.NewFieldSpec(audiogroup.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Name(); ok {
		_spec.SetField(audiogroup.FieldName, field.TypeString, value)
		_node.Name = value
	}
	if value, ok := _c.mutation.DeviceRecnos(); ok {
		_spec.SetField(audiogroup.FieldDeviceRecnos, field.TypeJSON, value)
		_node.DeviceRecnos = value
	}
	return _node, _spec
}

// AudioGroupCreateBulk is the builder for creating many AudioGroup entities in bulk.
type AudioGroupCreateBulk struct {
	config
	err      error
	builders []*AudioGroupCreate
}

// Save creates the AudioGroup entities in the database.
func (_c *AudioGroupCreateBulk) Save(ctx context.Context) ([]*AudioGroup, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*AudioGroup, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*AudioGroupMutation)
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
				if specs[i].ID.Value != nil {
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
func (_c *AudioGroupCreateBulk) SaveX(ctx context.Context) []*AudioGroup {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AudioGroupCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AudioGroupCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
