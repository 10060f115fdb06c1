// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/messagenet/bannerd/ent/wtccommand"
)

// WtcCommandCreate is the builder for creating a WtcCommand entity.
type WtcCommandCreate struct {
	config
	mutation *WtcCommandMutation
	hooks    []Hook
}

// SetCommand sets the "command" field.
func (_c *WtcCommandCreate) SetCommand(v wtccommand.Command) *WtcCommandCreate {
	_c.mutation.SetCommand(v)
	return _c
}

// SetSource sets the "source" field.
func (_c *WtcCommandCreate) SetSource(v wtccommand.Source) *WtcCommandCreate {
	_c.mutation.SetSource(v)
	return _c
}

// SetDestination sets the "destination" field.
func (_c *WtcCommandCreate) SetDestination(v wtccommand.Destination) *WtcCommandCreate {
	_c.mutation.SetDestination(v)
	return _c
}

// SetPid sets the "pid" field.
func (_c *WtcCommandCreate) SetPid(v int) *WtcCommandCreate {
	_c.mutation.SetPid(v)
	return _c
}

// SetNillablePid sets the "pid" field if the given value is not nil.
func (_c *WtcCommandCreate) SetNillablePid(v *int) *WtcCommandCreate {
	if v != nil {
		_c.SetPid(*v)
	}
	return _c
}

// SetHardwareRecno sets the "hardware_recno" field.
func (_c *WtcCommandCreate) SetHardwareRecno(v int) *WtcCommandCreate {
	_c.mutation.SetHardwareRecno(v)
	return _c
}

// SetNillableHardwareRecno sets the "hardware_recno" field if the given value is not nil.
func (_c *WtcCommandCreate) SetNillableHardwareRecno(v *int) *WtcCommandCreate {
	if v != nil {
		_c.SetHardwareRecno(*v)
	}
	return _c
}

// SetStreamRecno sets the "stream_recno" field.
func (_c *WtcCommandCreate) SetStreamRecno(v int) *WtcCommandCreate {
	_c.mutation.SetStreamRecno(v)
	return _c
}

// SetNillableStreamRecno sets the "stream_recno" field if the given value is not nil.
func (_c *WtcCommandCreate) SetNillableStreamRecno(v *int) *WtcCommandCreate {
	if v != nil {
		_c.SetStreamRecno(*v)
	}
	return _c
}

// SetTemplateRecno sets the "template_recno" field.
func (_c *WtcCommandCreate) SetTemplateRecno(v int) *WtcCommandCreate {
	_c.mutation.SetTemplateRecno(v)
	return _c
}

// SetNillableTemplateRecno sets the "template_recno" field if the given value is not nil.
func (_c *WtcCommandCreate) SetNillableTemplateRecno(v *int) *WtcCommandCreate {
	if v != nil {
		_c.SetTemplateRecno(*v)
	}
	return _c
}

// SetSequence sets the "sequence" field.
func (_c *WtcCommandCreate) SetSequence(v string) *WtcCommandCreate {
	_c.mutation.SetSequence(v)
	return _c
}

// SetNillableSequence sets the "sequence" field if the given value is not nil.
func (_c *WtcCommandCreate) SetNillableSequence(v *string) *WtcCommandCreate {
	if v != nil {
		_c.SetSequence(*v)
	}
	return _c
}

// SetMessage sets the "message" field.
func (_c *WtcCommandCreate) SetMessage(v string) *WtcCommandCreate {
	_c.mutation.SetMessage(v)
	return _c
}

// SetNillableMessage sets the "message" field if the given value is not nil.
func (_c *WtcCommandCreate) SetNillableMessage(v *string) *WtcCommandCreate {
	if v != nil {
		_c.SetMessage(*v)
	}
	return _c
}

// SetReturnNode sets the "return_node" field.
func (_c *WtcCommandCreate) SetReturnNode(v string) *WtcCommandCreate {
	_c.mutation.SetReturnNode(v)
	return _c
}

// SetNillableReturnNode sets the "return_node" field if the given value is not nil.
func (_c *WtcCommandCreate) SetNillableReturnNode(v *string) *WtcCommandCreate {
	if v != nil {
		_c.SetReturnNode(*v)
	}
	return _c
}

// SetFlag sets the "flag" field.
func (_c *WtcCommandCreate) SetFlag(v int8) *WtcCommandCreate {
	_c.mutation.SetFlag(v)
	return _c
}

// SetNillableFlag sets the "flag" field if the given value is not nil.
func (_c *WtcCommandCreate) SetNillableFlag(v *int8) *WtcCommandCreate {
	if v != nil {
		_c.SetFlag(*v)
	}
	return _c
}

// SetSeqOperation sets the "seq_operation" field.
func (_c *WtcCommandCreate) SetSeqOperation(v int8) *WtcCommandCreate {
	_c.mutation.SetSeqOperation(v)
	return _c
}

// SetNillableSeqOperation sets the "seq_operation" field if the given value is not nil.
func (_c *WtcCommandCreate) SetNillableSeqOperation(v *int8) *WtcCommandCreate {
	if v != nil {
		_c.SetSeqOperation(*v)
	}
	return _c
}

// SetMessageType sets the "message_type" field.
func (_c *WtcCommandCreate) SetMessageType(v int8) *WtcCommandCreate {
	_c.mutation.SetMessageType(v)
	return _c
}

// SetNillableMessageType sets the "message_type" field if the given value is not nil.
func (_c *WtcCommandCreate) SetNillableMessageType(v *int8) *WtcCommandCreate {
	if v != nil {
		_c.SetMessageType(*v)
	}
	return _c
}

// SetNodeName sets the "node_name" field.
func (_c *WtcCommandCreate) SetNodeName(v string) *WtcCommandCreate {
	_c.mutation.SetNodeName(v)
	return _c
}

// SetNillableNodeName sets the "node_name" field if the given value is not nil.
func (_c *WtcCommandCreate) SetNillableNodeName(v *string) *WtcCommandCreate {
	if v != nil {
		_c.SetNodeName(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *WtcCommandCreate) SetCreatedAt(v time.Time) *WtcCommandCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *WtcCommandCreate) SetNillableCreatedAt(v *time.Time) *WtcCommandCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// Mutation returns the WtcCommandMutation object of the builder.
func (_c *WtcCommandCreate) Mutation() *WtcCommandMutation {
	return _c.mutation
}

// Save creates the WtcCommand in the database.
func (_c *WtcCommandCreate) Save(ctx context.Context) (*WtcCommand, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *WtcCommandCreate) SaveX(ctx context.Context) *WtcCommand {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *WtcCommandCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *WtcCommandCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *WtcCommandCreate) defaults() {
	if _, ok := _c.mutation.Pid(); !ok {
		v := wtccommand.DefaultPid
		_c.mutation.SetPid(v)
	}
	if _, ok := _c.mutation.HardwareRecno(); !ok {
		v := wtccommand.DefaultHardwareRecno
		_c.mutation.SetHardwareRecno(v)
	}
	if _, ok := _c.mutation.StreamRecno(); !ok {
		v := wtccommand.DefaultStreamRecno
		_c.mutation.SetStreamRecno(v)
	}
	if _, ok := _c.mutation.TemplateRecno(); !ok {
		v := wtccommand.DefaultTemplateRecno
		_c.mutation.SetTemplateRecno(v)
	}
	if _, ok := _c.mutation.Sequence(); !ok {
		v := wtccommand.DefaultSequence
		_c.mutation.SetSequence(v)
	}
	if _, ok := _c.mutation.Message(); !ok {
		v := wtccommand.DefaultMessage
		_c.mutation.SetMessage(v)
	}
	if _, ok := _c.mutation.ReturnNode(); !ok {
		v := wtccommand.DefaultReturnNode
		_c.mutation.SetReturnNode(v)
	}
	if _, ok := _c.mutation.Flag(); !ok {
		v := wtccommand.DefaultFlag
		_c.mutation.SetFlag(v)
	}
	if _, ok := _c.mutation.SeqOperation(); !ok {
		v := wtccommand.DefaultSeqOperation
		_c.mutation.SetSeqOperation(v)
	}
	if _, ok := _c.mutation.MessageType(); !ok {
		v := wtccommand.DefaultMessageType
		_c.mutation.SetMessageType(v)
	}
	if _, ok := _c.mutation.NodeName(); !ok {
		v := wtccommand.DefaultNodeName
		_c.mutation.SetNodeName(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := wtccommand.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *WtcCommandCreate) check() error {
	if _, ok := _c.mutation.Command(); !ok {
		return &ValidationError{Name: "command", err: errors.New(`ent: missing required field "WtcCommand.command"`)}
	}
	if v, ok := _c.mutation.Command(); ok {
		if err := wtccommand.CommandValidator(v); err != nil {
			return &ValidationError{Name: "command", err: fmt.Errorf(`ent: validator failed for field "WtcCommand.command": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Source(); !ok {
		return &ValidationError{Name: "source", err: errors.New(`ent: missing required field "WtcCommand.source"`)}
	}
	if v, ok := _c.mutation.Source(); ok {
		if err := wtccommand.SourceValidator(v); err != nil {
			return &ValidationError{Name: "source", err: fmt.Errorf(`ent: validator failed for field "WtcCommand.source": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Destination(); !ok {
		return &ValidationError{Name: "destination", err: errors.New(`ent: missing required field "WtcCommand.destination"`)}
	}
	if v, ok := _c.mutation.Destination(); ok {
		if err := wtccommand.DestinationValidator(v); err != nil {
			return &ValidationError{Name: "destination", err: fmt.Errorf(`ent: validator failed for field "WtcCommand.destination": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Pid(); !ok {
		return &ValidationError{Name: "pid", err: errors.New(`ent: missing required field "WtcCommand.pid"`)}
	}
	if _, ok := _c.mutation.HardwareRecno(); !ok {
		return &ValidationError{Name: "hardware_recno", err: errors.New(`ent: missing required field "WtcCommand.hardware_recno"`)}
	}
	if _, ok := _c.mutation.StreamRecno(); !ok {
		return &ValidationError{Name: "stream_recno", err: errors.New(`ent: missing required field "WtcCommand.stream_recno"`)}
	}
	if _, ok := _c.mutation.TemplateRecno(); !ok {
		return &ValidationError{Name: "template_recno", err: errors.New(`ent: missing required field "WtcCommand.template_recno"`)}
	}
	if _, ok := _c.mutation.Sequence(); !ok {
		return &ValidationError{Name: "sequence", err: errors.New(`ent: missing required field "WtcCommand.sequence"`)}
	}
	if _, ok := _c.mutation.Message(); !ok {
		return &ValidationError{Name: "message", err: errors.New(`ent: missing required field "WtcCommand.message"`)}
	}
	if _, ok := _c.mutation.ReturnNode(); !ok {
		return &ValidationError{Name: "return_node", err: errors.New(`ent: missing required field "WtcCommand.return_node"`)}
	}
	if _, ok := _c.mutation.Flag(); !ok {
		return &ValidationError{Name: "flag", err: errors.New(`ent: missing required field "WtcCommand.flag"`)}
	}
	if _, ok := _c.mutation.SeqOperation(); !ok {
		return &ValidationError{Name: "seq_operation", err: errors.New(`ent: missing required field "WtcCommand.seq_operation"`)}
	}
	if _, ok := _c.mutation.MessageType(); !ok {
		return &ValidationError{Name: "message_type", err: errors.New(`ent: missing required field "WtcCommand.message_type"`)}
	}
	if _, ok := _c.mutation.NodeName(); !ok {
		return &ValidationError{Name: "node_name", err: errors.New(`ent: missing required field "WtcCommand.node_name"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "WtcCommand.created_at"`)}
	}
	return nil
}

func (_c *WtcCommandCreate) sqlSave(ctx context.Context) (*WtcCommand, error) {
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

func (_c *WtcCommandCreate) createSpec() (*WtcCommand, *sqlgraph.CreateSpec) {
	var (
		_node = &WtcCommand{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(wtccommand.Table, sqlgraph.NewFieldSpec(wtccommand.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Command(); ok {
		_spec.SetField(wtccommand.FieldCommand, field.TypeEnum, value)
		_node.Command = value
	}
	if value, ok := _c.mutation.Source(); ok {
		_spec.SetField(wtccommand.FieldSource, field.TypeEnum, value)
		_node.Source = value
	}
	if value, ok := _c.mutation.Destination(); ok {
		_spec.SetField(wtccommand.FieldDestination, field.TypeEnum, value)
		_node.Destination = value
	}
	if value, ok := _c.mutation.Pid(); ok {
		_spec.SetField(wtccommand.FieldPid, field.TypeInt, value)
		_node.Pid = value
	}
	if value, ok := _c.mutation.HardwareRecno(); ok {
		_spec.SetField(wtccommand.FieldHardwareRecno, field.TypeInt, value)
		_node.HardwareRecno = value
	}
	if value, ok := _c.mutation.StreamRecno(); ok {
		_spec.SetField(wtccommand.FieldStreamRecno, field.TypeInt, value)
		_node.StreamRecno = value
	}
	if value, ok := _c.mutation.TemplateRecno(); ok {
		_spec.SetField(wtccommand.FieldTemplateRecno, field.TypeInt, value)
		_node.TemplateRecno = value
	}
	if value, ok := _c.mutation.Sequence(); ok {
		_spec.SetField(wtccommand.FieldSequence, field.TypeString, value)
		_node.Sequence = value
	}
	if value, ok := _c.mutation.Message(); ok {
		_spec.SetField(wtccommand.FieldMessage, field.TypeString, value)
		_node.Message = value
	}
	if value, ok := _c.mutation.ReturnNode(); ok {
		_spec.SetField(wtccommand.FieldReturnNode, field.TypeString, value)
		_node.ReturnNode = value
	}
	if value, ok := _c.mutation.Flag(); ok {
		_spec.SetField(wtccommand.FieldFlag, field.TypeInt8, value)
		_node.Flag = value
	}
	if value, ok := _c.mutation.SeqOperation(); ok {
		_spec.SetField(wtccommand.FieldSeqOperation, field.TypeInt8, value)
		_node.SeqOperation = value
	}
	if value, ok := _c.mutation.MessageType(); ok {
		_spec.SetField(wtccommand.FieldMessageType, field.TypeInt8, value)
		_node.MessageType = value
	}
	if value, ok := _c.mutation.NodeName(); ok {
		_spec.SetField(wtccommand.FieldNodeName, field.TypeString, value)
		_node.NodeName = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(wtccommand.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	return _node, _spec
}

// WtcCommandCreateBulk is the builder for creating many WtcCommand entities in bulk.
type WtcCommandCreateBulk struct {
	config
	err      error
	builders []*WtcCommandCreate
}

// Save creates the WtcCommand entities in the database.
func (_c *WtcCommandCreateBulk) Save(ctx context.Context) ([]*WtcCommand, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*WtcCommand, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*WtcCommandMutation)
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
func (_c *WtcCommandCreateBulk) SaveX(ctx context.Context) []*WtcCommand {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *WtcCommandCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *WtcCommandCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
