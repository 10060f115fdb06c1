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
	"github.com/messagenet/bannerd/ent/wtccommand"
)

// WtcCommandUpdate is the builder for updating WtcCommand entities.
type WtcCommandUpdate struct {
	config
	hooks    []Hook
	mutation *WtcCommandMutation
}

// Where appends a list predicates to the WtcCommandUpdate builder.
func (_u *WtcCommandUpdate) Where(ps ...predicate.WtcCommand) *WtcCommandUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetCommand sets the "command" field.
func (_u *WtcCommandUpdate) SetCommand(v wtccommand.Command) *WtcCommandUpdate {
	_u.mutation.SetCommand(v)
	return _u
}

// SetNillableCommand sets the "command" field if the given value is not nil.
func (_u *WtcCommandUpdate) SetNillableCommand(v *wtccommand.Command) *WtcCommandUpdate {
	if v != nil {
		_u.SetCommand(*v)
	}
	return _u
}

// SetSource sets the "source" field.
func (_u *WtcCommandUpdate) SetSource(v wtccommand.Source) *WtcCommandUpdate {
	_u.mutation.SetSource(v)
	return _u
}

// SetNillableSource sets the "source" field if the given value is not nil.
func (_u *WtcCommandUpdate) SetNillableSource(v *wtccommand.Source) *WtcCommandUpdate {
	if v != nil {
		_u.SetSource(*v)
	}
	return _u
}

// SetDestination sets the "destination" field.
func (_u *WtcCommandUpdate) SetDestination(v wtccommand.Destination) *WtcCommandUpdate {
	_u.mutation.SetDestination(v)
	return _u
}

// SetNillableDestination sets the "destination" field if the given value is not nil.
func (_u *WtcCommandUpdate) SetNillableDestination(v *wtccommand.Destination) *WtcCommandUpdate {
	if v != nil {
		_u.SetDestination(*v)
	}
	return _u
}

// SetPid sets the "pid" field.
func (_u *WtcCommandUpdate) SetPid(v int) *WtcCommandUpdate {
	_u.mutation.ResetPid()
	_u.mutation.SetPid(v)
	return _u
}

// SetNillablePid sets the "pid" field if the given value is not nil.
func (_u *WtcCommandUpdate) SetNillablePid(v *int) *WtcCommandUpdate {
	if v != nil {
		_u.SetPid(*v)
	}
	return _u
}

// AddPid adds value to the "pid" field.
func (_u *WtcCommandUpdate) AddPid(v int) *WtcCommandUpdate {
	_u.mutation.AddPid(v)
	return _u
}

// SetHardwareRecno sets the "hardware_recno" field.
func (_u *WtcCommandUpdate) SetHardwareRecno(v int) *WtcCommandUpdate {
	_u.mutation.ResetHardwareRecno()
	_u.mutation.SetHardwareRecno(v)
	return _u
}

// SetNillableHardwareRecno sets the "hardware_recno" field if the given value is not nil.
func (_u *WtcCommandUpdate) SetNillableHardwareRecno(v *int) *WtcCommandUpdate {
	if v != nil {
		_u.SetHardwareRecno(*v)
	}
	return _u
}

// AddHardwareRecno adds value to the "hardware_recno" field.
func (_u *WtcCommandUpdate) AddHardwareRecno(v int) *WtcCommandUpdate {
	_u.mutation.AddHardwareRecno(v)
	return _u
}

// SetStreamRecno sets the "stream_recno" field.
func (_u *WtcCommandUpdate) SetStreamRecno(v int) *WtcCommandUpdate {
	_u.mutation.ResetStreamRecno()
	_u.mutation.SetStreamRecno(v)
	return _u
}

// SetNillableStreamRecno sets the "stream_recno" field if the given value is not nil.
func (_u *WtcCommandUpdate) SetNillableStreamRecno(v *int) *WtcCommandUpdate {
	if v != nil {
		_u.SetStreamRecno(*v)
	}
	return _u
}

// AddStreamRecno adds value to the "stream_recno" field.
func (_u *WtcCommandUpdate) AddStreamRecno(v int) *WtcCommandUpdate {
	_u.mutation.AddStreamRecno(v)
	return _u
}

// SetTemplateRecno sets the "template_recno" field.
func (_u *WtcCommandUpdate) SetTemplateRecno(v int) *WtcCommandUpdate {
	_u.mutation.ResetTemplateRecno()
	_u.mutation.SetTemplateRecno(v)
	return _u
}

// SetNillableTemplateRecno sets the "template_recno" field if the given value is not nil.
func (_u *WtcCommandUpdate) SetNillableTemplateRecno(v *int) *WtcCommandUpdate {
	if v != nil {
		_u.SetTemplateRecno(*v)
	}
	return _u
}

// AddTemplateRecno adds value to the "template_recno" field.
func (_u *WtcCommandUpdate) AddTemplateRecno(v int) *WtcCommandUpdate {
	_u.mutation.AddTemplateRecno(v)
	return _u
}

// SetSequence sets the "sequence" field.
func (_u *WtcCommandUpdate) SetSequence(v string) *WtcCommandUpdate {
	_u.mutation.SetSequence(v)
	return _u
}

// SetNillableSequence sets the "sequence" field if the given value is not nil.
func (_u *WtcCommandUpdate) SetNillableSequence(v *string) *WtcCommandUpdate {
	if v != nil {
		_u.SetSequence(*v)
	}
	return _u
}

// SetMessage sets the "message" field.
func (_u *WtcCommandUpdate) SetMessage(v string) *WtcCommandUpdate {
	_u.mutation.SetMessage(v)
	return _u
}

// SetNillableMessage sets the "message" field if the given value is not nil.
func (_u *WtcCommandUpdate) SetNillableMessage(v *string) *WtcCommandUpdate {
	if v != nil {
		_u.SetMessage(*v)
	}
	return _u
}

// SetReturnNode sets the "return_node" field.
func (_u *WtcCommandUpdate) SetReturnNode(v string) *WtcCommandUpdate {
	_u.mutation.SetReturnNode(v)
	return _u
}

// SetNillableReturnNode sets the "return_node" field if the given value is not nil.
func (_u *WtcCommandUpdate) SetNillableReturnNode(v *string) *WtcCommandUpdate {
	if v != nil {
		_u.SetReturnNode(*v)
	}
	return _u
}

// SetFlag sets the "flag" field.
func (_u *WtcCommandUpdate) SetFlag(v int8) *WtcCommandUpdate {
	_u.mutation.ResetFlag()
	_u.mutation.SetFlag(v)
	return _u
}

// SetNillableFlag sets the "flag" field if the given value is not nil.
func (_u *WtcCommandUpdate) SetNillableFlag(v *int8) *WtcCommandUpdate {
	if v != nil {
		_u.SetFlag(*v)
	}
	return _u
}

// AddFlag adds value to the "flag" field.
func (_u *WtcCommandUpdate) AddFlag(v int8) *WtcCommandUpdate {
	_u.mutation.AddFlag(v)
	return _u
}

// SetSeqOperation sets the "seq_operation" field.
func (_u *WtcCommandUpdate) SetSeqOperation(v int8) *WtcCommandUpdate {
	_u.mutation.ResetSeqOperation()
	_u.mutation.SetSeqOperation(v)
	return _u
}

// SetNillableSeqOperation sets the "seq_operation" field if the given value is not nil.
func (_u *WtcCommandUpdate) SetNillableSeqOperation(v *int8) *WtcCommandUpdate {
	if v != nil {
		_u.SetSeqOperation(*v)
	}
	return _u
}

// AddSeqOperation adds value to the "seq_operation" field.
func (_u *WtcCommandUpdate) AddSeqOperation(v int8) *WtcCommandUpdate {
	_u.mutation.AddSeqOperation(v)
	return _u
}

// SetMessageType sets the "message_type" field.
func (_u *WtcCommandUpdate) SetMessageType(v int8) *WtcCommandUpdate {
	_u.mutation.ResetMessageType()
	_u.mutation.SetMessageType(v)
	return _u
}

// SetNillableMessageType sets the "message_type" field if the given value is not nil.
func (_u *WtcCommandUpdate) SetNillableMessageType(v *int8) *WtcCommandUpdate {
	if v != nil {
		_u.SetMessageType(*v)
	}
	return _u
}

// AddMessageType adds value to the "message_type" field.
func (_u *WtcCommandUpdate) AddMessageType(v int8) *WtcCommandUpdate {
	_u.mutation.AddMessageType(v)
	return _u
}

// SetNodeName sets the "node_name" field.
func (_u *WtcCommandUpdate) SetNodeName(v string) *WtcCommandUpdate {
	_u.mutation.SetNodeName(v)
	return _u
}

// SetNillableNodeName sets the "node_name" field if the given value is not nil.
func (_u *WtcCommandUpdate) SetNillableNodeName(v *string) *WtcCommandUpdate {
	if v != nil {
		_u.SetNodeName(*v)
	}
	return _u
}

// Mutation returns the WtcCommandMutation object of the builder.
func (_u *WtcCommandUpdate) Mutation() *WtcCommandMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *WtcCommandUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *WtcCommandUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *WtcCommandUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *WtcCommandUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *WtcCommandUpdate) check() error {
	if v, ok := _u.mutation.Command(); ok {
		if err := wtccommand.CommandValidator(v); err != nil {
			return &ValidationError{Name: "command", err: fmt.Errorf(`ent: validator failed for field "WtcCommand.command": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Source(); ok {
		if err := wtccommand.SourceValidator(v); err != nil {
			return &ValidationError{Name: "source", err: fmt.Errorf(`ent: validator failed for field "WtcCommand.source": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Destination(); ok {
		if err := wtccommand.DestinationValidator(v); err != nil {
			return &ValidationError{Name: "destination", err: fmt.Errorf(`ent: validator failed for field "WtcCommand.destination": %w`, err)}
		}
	}
	return nil
}

func (_u *WtcCommandUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(wtccommand.Table, wtccommand.Columns, sqlgraph.NewFieldSpec(wtccommand.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Command(); ok {
		_spec.SetField(wtccommand.FieldCommand, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Source(); ok {
		_spec.SetField(wtccommand.FieldSource, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Destination(); ok {
		_spec.SetField(wtccommand.FieldDestination, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Pid(); ok {
		_spec.SetField(wtccommand.FieldPid, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPid(); ok {
		_spec.AddField(wtccommand.FieldPid, field.TypeInt, value)
	}
	if value, ok := _u.mutation.HardwareRecno(); ok {
		_spec.SetField(wtccommand.FieldHardwareRecno, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedHardwareRecno(); ok {
		_spec.AddField(wtccommand.FieldHardwareRecno, field.TypeInt, value)
	}
	if value, ok := _u.mutation.StreamRecno(); ok {
		_spec.SetField(wtccommand.FieldStreamRecno, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedStreamRecno(); ok {
		_spec.AddField(wtccommand.FieldStreamRecno, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TemplateRecno(); ok {
		_spec.SetField(wtccommand.FieldTemplateRecno, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTemplateRecno(); ok {
		_spec.AddField(wtccommand.FieldTemplateRecno, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Sequence(); ok {
		_spec.SetField(wtccommand.FieldSequence, field.TypeString, value)
	}
	if value, ok := _u.mutation.Message(); ok {
		_spec.SetField(wtccommand.FieldMessage, field.TypeString, value)
	}
	if value, ok := _u.mutation.ReturnNode(); ok {
		_spec.SetField(wtccommand.FieldReturnNode, field.TypeString, value)
	}
	if value, ok := _u.mutation.Flag(); ok {
		_spec.SetField(wtccommand.FieldFlag, field.TypeInt8, value)
	}
	if value, ok := _u.mutation.AddedFlag(); ok {
		_spec.AddField(wtccommand.FieldFlag, field.TypeInt8, value)
	}
	if value, ok := _u.mutation.SeqOperation(); ok {
		_spec.SetField(wtccommand.FieldSeqOperation, field.TypeInt8, value)
	}
	if value, ok := _u.mutation.AddedSeqOperation(); ok {
		_spec.AddField(wtccommand.FieldSeqOperation, field.TypeInt8, value)
	}
	if value, ok := _u.mutation.MessageType(); ok {
		_spec.SetField(wtccommand.FieldMessageType, field.TypeInt8, value)
	}
	if value, ok := _u.mutation.AddedMessageType(); ok {
		_spec.AddField(wtccommand.FieldMessageType, field.TypeInt8, value)
	}
	if value, ok := _u.mutation.NodeName(); ok {
		_spec.SetField(wtccommand.FieldNodeName, field.TypeString, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{wtccommand.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// WtcCommandUpdateOne is the builder for updating a single WtcCommand entity.
type WtcCommandUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *WtcCommandMutation
}

// SetCommand sets the "command" field.
func (_u *WtcCommandUpdateOne) SetCommand(v wtccommand.Command) *WtcCommandUpdateOne {
	_u.mutation.SetCommand(v)
	return _u
}

// SetNillableCommand sets the "command" field if the given value is not nil.
func (_u *WtcCommandUpdateOne) SetNillableCommand(v *wtccommand.Command) *WtcCommandUpdateOne {
	if v != nil {
		_u.SetCommand(*v)
	}
	return _u
}

// SetSource sets the "source" field.
func (_u *WtcCommandUpdateOne) SetSource(v wtccommand.Source) *WtcCommandUpdateOne {
	_u.mutation.SetSource(v)
	return _u
}

// SetNillableSource sets the "source" field if the given value is not nil.
func (_u *WtcCommandUpdateOne) SetNillableSource(v *wtccommand.Source) *WtcCommandUpdateOne {
	if v != nil {
		_u.SetSource(*v)
	}
	return _u
}

// SetDestination sets the "destination" field.
func (_u *WtcCommandUpdateOne) SetDestination(v wtccommand.Destination) *WtcCommandUpdateOne {
	_u.mutation.SetDestination(v)
	return _u
}

// SetNillableDestination sets the "destination" field if the given value is not nil.
func (_u *WtcCommandUpdateOne) SetNillableDestination(v *wtccommand.Destination) *WtcCommandUpdateOne {
	if v != nil {
		_u.SetDestination(*v)
	}
	return _u
}

// SetPid sets the "pid" field.
func (_u *WtcCommandUpdateOne) SetPid(v int) *WtcCommandUpdateOne {
	_u.mutation.ResetPid()
	_u.mutation.SetPid(v)
	return _u
}

// SetNillablePid sets the "pid" field if the given value is not nil.
func (_u *WtcCommandUpdateOne) SetNillablePid(v *int) *WtcCommandUpdateOne {
	if v != nil {
		_u.SetPid(*v)
	}
	return _u
}

// AddPid adds value to the "pid" field.
func (_u *WtcCommandUpdateOne) AddPid(v int) *WtcCommandUpdateOne {
	_u.mutation.AddPid(v)
	return _u
}

// SetHardwareRecno sets the "hardware_recno" field.
func (_u *WtcCommandUpdateOne) SetHardwareRecno(v int) *WtcCommandUpdateOne {
	_u.mutation.ResetHardwareRecno()
	_u.mutation.SetHardwareRecno(v)
	return _u
}

// SetNillableHardwareRecno sets the "hardware_recno" field if the given value is not nil.
func (_u *WtcCommandUpdateOne) SetNillableHardwareRecno(v *int) *WtcCommandUpdateOne {
	if v != nil {
		_u.SetHardwareRecno(*v)
	}
	return _u
}

// AddHardwareRecno adds value to the "hardware_recno" field.
func (_u *WtcCommandUpdateOne) AddHardwareRecno(v int) *WtcCommandUpdateOne {
	_u.mutation.AddHardwareRecno(v)
	return _u
}

// SetStreamRecno sets the "stream_recno" field.
func (_u *WtcCommandUpdateOne) SetStreamRecno(v int) *WtcCommandUpdateOne {
	_u.mutation.ResetStreamRecno()
	_u.mutation.SetStreamRecno(v)
	return _u
}

// SetNillableStreamRecno sets the "stream_recno" field if the given value is not nil.
func (_u *WtcCommandUpdateOne) SetNillableStreamRecno(v *int) *WtcCommandUpdateOne {
	if v != nil {
		_u.SetStreamRecno(*v)
	}
	return _u
}

// AddStreamRecno adds value to the "stream_recno" field.
func (_u *WtcCommandUpdateOne) AddStreamRecno(v int) *WtcCommandUpdateOne {
	_u.mutation.AddStreamRecno(v)
	return _u
}

// SetTemplateRecno sets the "template_recno" field.
func (_u *WtcCommandUpdateOne) SetTemplateRecno(v int) *WtcCommandUpdateOne {
	_u.mutation.ResetTemplateRecno()
	_u.mutation.SetTemplateRecno(v)
	return _u
}

// SetNillableTemplateRecno sets the "template_recno" field if the given value is not nil.
func (_u *WtcCommandUpdateOne) SetNillableTemplateRecno(v *int) *WtcCommandUpdateOne {
	if v != nil {
		_u.SetTemplateRecno(*v)
	}
	return _u
}

// AddTemplateRecno adds value to the "template_recno" field.
func (_u *WtcCommandUpdateOne) AddTemplateRecno(v int) *WtcCommandUpdateOne {
	_u.mutation.AddTemplateRecno(v)
	return _u
}

// SetSequence sets the "sequence" field.
func (_u *WtcCommandUpdateOne) SetSequence(v string) *WtcCommandUpdateOne {
	_u.mutation.SetSequence(v)
	return _u
}

// SetNillableSequence sets the "sequence" field if the given value is not nil.
func (_u *WtcCommandUpdateOne) SetNillableSequence(v *string) *WtcCommandUpdateOne {
	if v != nil {
		_u.SetSequence(*v)
	}
	return _u
}

// SetMessage sets the "message" field.
func (_u *WtcCommandUpdateOne) SetMessage(v string) *WtcCommandUpdateOne {
	_u.mutation.SetMessage(v)
	return _u
}

// SetNillableMessage sets the "message" field if the given value is not nil.
func (_u *WtcCommandUpdateOne) SetNillableMessage(v *string) *WtcCommandUpdateOne {
	if v != nil {
		_u.SetMessage(*v)
	}
	return _u
}

// SetReturnNode sets the "return_node" field.
func (_u *WtcCommandUpdateOne) SetReturnNode(v string) *WtcCommandUpdateOne {
	_u.mutation.SetReturnNode(v)
	return _u
}

// SetNillableReturnNode sets the "return_node" field if the given value is not nil.
func (_u *WtcCommandUpdateOne) SetNillableReturnNode(v *string) *WtcCommandUpdateOne {
	if v != nil {
		_u.SetReturnNode(*v)
	}
	return _u
}

// SetFlag sets the "flag" field.
func (_u *WtcCommandUpdateOne) SetFlag(v int8) *WtcCommandUpdateOne {
	_u.mutation.ResetFlag()
	_u.mutation.SetFlag(v)
	return _u
}

// SetNillableFlag sets the "flag" field if the given value is not nil.
func (_u *WtcCommandUpdateOne) SetNillableFlag(v *int8) *WtcCommandUpdateOne {
	if v != nil {
		_u.SetFlag(*v)
	}
	return _u
}

// AddFlag adds value to the "flag" field.
func (_u *WtcCommandUpdateOne) AddFlag(v int8) *WtcCommandUpdateOne {
	_u.mutation.AddFlag(v)
	return _u
}

// SetSeqOperation sets the "seq_operation" field.
func (_u *WtcCommandUpdateOne) SetSeqOperation(v int8) *WtcCommandUpdateOne {
	_u.mutation.ResetSeqOperation()
	_u.mutation.SetSeqOperation(v)
	return _u
}

// SetNillableSeqOperation sets the "seq_operation" field if the given value is not nil.
func (_u *WtcCommandUpdateOne) SetNillableSeqOperation(v *int8) *WtcCommandUpdateOne {
	if v != nil {
		_u.SetSeqOperation(*v)
	}
	return _u
}

// AddSeqOperation adds value to the "seq_operation" field.
func (_u *WtcCommandUpdateOne) AddSeqOperation(v int8) *WtcCommandUpdateOne {
	_u.mutation.AddSeqOperation(v)
	return _u
}

// SetMessageType sets the "message_type" field.
func (_u *WtcCommandUpdateOne) SetMessageType(v int8) *WtcCommandUpdateOne {
	_u.mutation.ResetMessageType()
	_u.mutation.SetMessageType(v)
	return _u
}

// SetNillableMessageType sets the "message_type" field if the given value is not nil.
func (_u *WtcCommandUpdateOne) SetNillableMessageType(v *int8) *WtcCommandUpdateOne {
	if v != nil {
		_u.SetMessageType(*v)
	}
	return _u
}

// AddMessageType adds value to the "message_type" field.
func (_u *WtcCommandUpdateOne) AddMessageType(v int8) *WtcCommandUpdateOne {
	_u.mutation.AddMessageType(v)
	return _u
}

// SetNodeName sets the "node_name" field.
func (_u *WtcCommandUpdateOne) SetNodeName(v string) *WtcCommandUpdateOne {
	_u.mutation.SetNodeName(v)
	return _u
}

// SetNillableNodeName sets the "node_name" field if the given value is not nil.
func (_u *WtcCommandUpdateOne) SetNillableNodeName(v *string) *WtcCommandUpdateOne {
	if v != nil {
		_u.SetNodeName(*v)
	}
	return _u
}

// Mutation returns the WtcCommandMutation object of the builder.
func (_u *WtcCommandUpdateOne) Mutation() *WtcCommandMutation {
	return _u.mutation
}

// Where appends a list predicates to the WtcCommandUpdate builder.
func (_u *WtcCommandUpdateOne) Where(ps ...predicate.WtcCommand) *WtcCommandUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *WtcCommandUpdateOne) Select(field string, fields ...string) *WtcCommandUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated WtcCommand entity.
func (_u *WtcCommandUpdateOne) Save(ctx context.Context) (*WtcCommand, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *WtcCommandUpdateOne) SaveX(ctx context.Context) *WtcCommand {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *WtcCommandUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *WtcCommandUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *WtcCommandUpdateOne) check() error {
	if v, ok := _u.mutation.Command(); ok {
		if err := wtccommand.CommandValidator(v); err != nil {
			return &ValidationError{Name: "command", err: fmt.Errorf(`ent: validator failed for field "WtcCommand.command": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Source(); ok {
		if err := wtccommand.SourceValidator(v); err != nil {
			return &ValidationError{Name: "source", err: fmt.Errorf(`ent: validator failed for field "WtcCommand.source": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Destination(); ok {
		if err := wtccommand.DestinationValidator(v); err != nil {
			return &ValidationError{Name: "destination", err: fmt.Errorf(`ent: validator failed for field "WtcCommand.destination": %w`, err)}
		}
	}
	return nil
}

func (_u *WtcCommandUpdateOne) sqlSave(ctx context.Context) (_node *WtcCommand, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(wtccommand.Table, wtccommand.Columns, sqlgraph.NewFieldSpec(wtccommand.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "WtcCommand.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, wtccommand.FieldID)
		for _, f := range fields {
			if !wtccommand.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != wtccommand.FieldID {
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
	if value, ok := _u.mutation.Command(); ok {
		_spec.SetField(wtccommand.FieldCommand, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Source(); ok {
		_spec.SetField(wtccommand.FieldSource, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Destination(); ok {
		_spec.SetField(wtccommand.FieldDestination, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Pid(); ok {
		_spec.SetField(wtccommand.FieldPid, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPid(); ok {
		_spec.AddField(wtccommand.FieldPid, field.TypeInt, value)
	}
	if value, ok := _u.mutation.HardwareRecno(); ok {
		_spec.SetField(wtccommand.FieldHardwareRecno, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedHardwareRecno(); ok {
		_spec.AddField(wtccommand.FieldHardwareRecno, field.TypeInt, value)
	}
	if value, ok := _u.mutation.StreamRecno(); ok {
		_spec.SetField(wtccommand.FieldStreamRecno, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedStreamRecno(); ok {
		_spec.AddField(wtccommand.FieldStreamRecno, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TemplateRecno(); ok {
		_spec.SetField(wtccommand.FieldTemplateRecno, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTemplateRecno(); ok {
		_spec.AddField(wtccommand.FieldTemplateRecno, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Sequence(); ok {
		_spec.SetField(wtccommand.FieldSequence, field.TypeString, value)
	}
	if value, ok := _u.mutation.Message(); ok {
		_spec.SetField(wtccommand.FieldMessage, field.TypeString, value)
	}
	if value, ok := _u.mutation.ReturnNode(); ok {
		_spec.SetField(wtccommand.FieldReturnNode, field.TypeString, value)
	}
	if value, ok := _u.mutation.Flag(); ok {
		_spec.SetField(wtccommand.FieldFlag, field.TypeInt8, value)
	}
	if value, ok := _u.mutation.AddedFlag(); ok {
		_spec.AddField(wtccommand.FieldFlag, field.TypeInt8, value)
	}
	if value, ok := _u.mutation.SeqOperation(); ok {
		_spec.SetField(wtccommand.FieldSeqOperation, field.TypeInt8, value)
	}
	if value, ok := _u.mutation.AddedSeqOperation(); ok {
		_spec.AddField(wtccommand.FieldSeqOperation, field.TypeInt8, value)
	}
	if value, ok := _u.mutation.MessageType(); ok {
		_spec.SetField(wtccommand.FieldMessageType, field.TypeInt8, value)
	}
	if value, ok := _u.mutation.AddedMessageType(); ok {
		_spec.AddField(wtccommand.FieldMessageType, field.TypeInt8, value)
	}
	if value, ok := _u.mutation.NodeName(); ok {
		_spec.SetField(wtccommand.FieldNodeName, field.TypeString, value)
	}
	_node = &WtcCommand{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{wtccommand.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
