// Code generated by ent, DO NOT EDIT.

package wtccommand

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/messagenet/bannerd/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.WtcCommand {
	return predicate.WtcCommand(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.WtcCommand {
	return predicate.WtcCommand(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.WtcCommand {
	return predicate.WtcCommand(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.WtcCommand {
	return predicate.WtcCommand(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.WtcCommand {
	return predicate.WtcCommand(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.WtcCommand {
	return predicate.WtcCommand(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.WtcCommand {
	return predicate.WtcCommand(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.WtcCommand {
	return predicate.WtcCommand(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.WtcCommand {
	return predicate.WtcCommand(sql.FieldLTE(FieldID, id))
}

// Pid applies equality check predicate on the "pid" field. It's identical to PidEQ.
func Pid(v int) predicate.WtcCommand {
	return predicate.WtcCommand(sql.FieldEQ(FieldPid, v))
}

// HardwareRecno applies equality check predicate on the "hardware_recno" field. It's identical to HardwareRecnoEQ.
func HardwareRecno(v int) predicate.WtcCommand {
	return predicate.WtcCommand(sql.FieldEQ(FieldHardwareRecno, v))
}

// StreamRecno applies equality check predicate on the "stream_recno" field. It's identical to StreamRecnoEQ.
func StreamRecno(v int) predicate.WtcCommand {
	return predicate.WtcCommand(sql.FieldEQ(FieldStreamRecno, v))
}

// TemplateRecno applies equality check predicate on the "template_recno" field. It's identical to TemplateRecnoEQ.
func TemplateRecno(v int) predicate.WtcCommand {
	return predicate.WtcCommand(sql.FieldEQ(FieldTemplateRecno, v))
}

// Sequence applies equality check predicate on the "sequence" field. It's identical to SequenceEQ.
func Sequence(v string) predicate.WtcCommand {
	return predicate.WtcCommand(sql.FieldEQ(FieldSequence, v))
}

// Message applies equality check predicate on the "message" field. It's identical to MessageEQ.
func Message(v string) predicate.WtcCommand {
	return predicate.WtcCommand(sql.FieldEQ(FieldMessage, v))
}

// ReturnNode applies equality check predicate on the "return_node" field. It's identical to ReturnNodeEQ.
func ReturnNode(v string) predicate.WtcCommand {
	return predicate.WtcCommand(sql.FieldEQ(FieldReturnNode, v))
}

// Flag applies equality check predicate on the "flag" field. It's identical to FlagEQ.
func Flag(v int8) predicate.WtcCommand {
	return predicate.WtcCommand(sql.FieldEQ(FieldFlag, v))
}

// SeqOperation applies equality check predicate on the "seq_operation" field. It's identical to SeqOperationEQ.
func SeqOperation(v int8) predicate.WtcCommand {
	return predicate.WtcCommand(sql.FieldEQ(FieldSeqOperation, v))
}

// MessageType applies equality check predicate on the "message_type" field. It's identical to MessageTypeEQ.
func MessageType(v int8) predicate.WtcCommand {
	return predicate.WtcCommand(sql.FieldEQ(FieldMessageType, v))
}

// NodeName applies equality check predicate on the "node_name" field. It's identical to NodeNameEQ.
func NodeName(v string) predicate.WtcCommand {
	return predicate.WtcCommand(sql.FieldEQ(FieldNodeName, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.WtcCommand {
	return predicate.WtcCommand(sql.FieldEQ(FieldCreatedAt, v))
}

// CommandEQ applies the EQ predicate on the "command" field.
func CommandEQ(v Command) predicate.WtcCommand {
	return predicate.WtcCommand(sql.FieldEQ(FieldCommand, v))
}

// CommandNEQ applies the NEQ predicate on the "command" field.
func CommandNEQ(v Command) predicate.WtcCommand {
	return predicate.WtcCommand(sql.FieldNEQ(FieldCommand, v))
}

// CommandIn applies the In predicate on the "command" field.
func CommandIn(vs ...Command) predicate.WtcCommand {
	return predicate.WtcCommand(sql.FieldIn(FieldCommand, vs...))
}

// CommandNotIn applies the NotIn predicate on the "command" field.
func CommandNotIn(vs ...Command) predicate.WtcCommand {
	return predicate.WtcCommand(sql.FieldNotIn(FieldCommand, vs...))
}

// SourceEQ applies the EQ predicate on the "source" field.
func SourceEQ(v Source) predicate.WtcCommand {
	return predicate.WtcCommand(sql.FieldEQ(FieldSource, v))
}

// SourceNEQ applies the NEQ predicate on the "source" field.
func SourceNEQ(v Source) predicate.WtcCommand {
	return predicate.WtcCommand(sql.FieldNEQ(FieldSource, v))
}

// SourceIn applies the In predicate on the "source" field.
func SourceIn(vs ...Source) predicate.WtcCommand {
	return predicate.WtcCommand(sql.FieldIn(FieldSource, vs...))
}

// SourceNotIn applies the NotIn predicate on the "source" field.
func SourceNotIn(vs ...Source) predicate.WtcCommand {
	return predicate.WtcCommand(sql.FieldNotIn(FieldSource, vs...))
}

// DestinationEQ applies the EQ predicate on the "destination" field.
func DestinationEQ(v Destination) predicate.WtcCommand {
	return predicate.WtcCommand(sql.FieldEQ(FieldDestination, v))
}

// DestinationNEQ applies the NEQ predicate on the "destination" field.
func DestinationNEQ(v Destination) predicate.WtcCommand {
	return predicate.WtcCommand(sql.FieldNEQ(FieldDestination, v))
}

// DestinationIn applies the In predicate on the "destination" field.
func DestinationIn(vs ...Destination) predicate.WtcCommand {
	return predicate.WtcCommand(sql.FieldIn(FieldDestination, vs...))
}

// DestinationNotIn applies the NotIn predicate on the "destination" field.
func DestinationNotIn(vs ...Destination) predicate.WtcCommand {
	return predicate.WtcCommand(sql.FieldNotIn(FieldDestination, vs...))
}

// PidEQ applies the EQ predicate on the "pid" field.
func PidEQ(v int) predicate.WtcCommand {
	return predicate.WtcCommand(sql.FieldEQ(FieldPid, v))
}

// PidNEQ applies the NEQ predicate on the "pid" field.
func PidNEQ(v int) predicate.WtcCommand {
	return predicate.WtcCommand(sql.FieldNEQ(FieldPid, v))
}

// PidIn applies the In predicate on the "pid" field.
func PidIn(vs ...int) predicate.WtcCommand {
	return predicate.WtcCommand(sql.FieldIn(FieldPid, vs...))
}

// PidNotIn applies the NotIn predicate on the "pid" field.
func PidNotIn(vs ...int) predicate.WtcCommand {
	return predicate.WtcCommand(sql.FieldNotIn(FieldPid, vs...))
}

// PidGT applies the GT predicate on the "pid" field.
func PidGT(v int) predicate.WtcCommand {
	return predicate.WtcCommand(sql.FieldGT(FieldPid, v))
}

// PidGTE applies the GTE predicate on the "pid" field.
func PidGTE(v int) predicate.WtcCommand {
	return predicate.WtcCommand(sql.FieldGTE(FieldPid, v))
}

// PidLT applies the LT predicate on the "pid" field.
func PidLT(v int) predicate.WtcCommand {
	return predicate.WtcCommand(sql.FieldLT(FieldPid, v))
}

// PidLTE applies the LTE predicate on the "pid" field.
func PidLTE(v int) predicate.WtcCommand {
	return predicate.WtcCommand(sql.FieldLTE(FieldPid, v))
}

// HardwareRecnoEQ applies the EQ predicate on the "hardware_recno" field.
func HardwareRecnoEQ(v int) predicate.WtcCommand {
	return predicate.WtcCommand(sql.FieldEQ(FieldHardwareRecno, v))
}

// HardwareRecnoNEQ applies the NEQ predicate on the "hardware_recno" field.
func HardwareRecnoNEQ(v int) predicate.WtcCommand {
	return predicate.WtcCommand(sql.FieldNEQ(FieldHardwareRecno, v))
}

// HardwareRecnoIn applies the In predicate on the "hardware_recno" field.
func HardwareRecnoIn(vs ...int) predicate.WtcCommand {
	return predicate.WtcCommand(sql.FieldIn(FieldHardwareRecno, vs...))
}

// HardwareRecnoNotIn applies the NotIn predicate on the "hardware_recno" field.
func HardwareRecnoNotIn(vs ...int) predicate.WtcCommand {
	return predicate.WtcCommand(sql.FieldNotIn(FieldHardwareRecno, vs...))
}

// HardwareRecnoGT applies the GT predicate on the "hardware_recno" field.
func HardwareRecnoGT(v int) predicate.WtcCommand {
	return predicate.WtcCommand(sql.FieldGT(FieldHardwareRecno, v))
}

// HardwareRecnoGTE applies the GTE predicate on the "hardware_recno" field.
func HardwareRecnoGTE(v int) predicate.WtcCommand {
	return predicate.WtcCommand(sql.FieldGTE(FieldHardwareRecno, v))
}

// HardwareRecnoLT applies the LT predicate on the "hardware_recno" field.
func HardwareRecnoLT(v int) predicate.WtcCommand {
	return predicate.WtcCommand(sql.FieldLT(FieldHardwareRecno, v))
}

// HardwareRecnoLTE applies the LTE predicate on the "hardware_recno" field.
func HardwareRecnoLTE(v int) predicate.WtcCommand {
	return predicate.WtcCommand(sql.FieldLTE(FieldHardwareRecno, v))
}

// StreamRecnoEQ applies the EQ predicate on the "stream_recno" field.
func StreamRecnoEQ(v int) predicate.WtcCommand {
	return predicate.WtcCommand(sql.FieldEQ(FieldStreamRecno, v))
}

// StreamRecnoNEQ applies the NEQ predicate on the "stream_recno" field.
func StreamRecnoNEQ(v int) predicate.WtcCommand {
	return predicate.WtcCommand(sql.FieldNEQ(FieldStreamRecno, v))
}

// StreamRecnoIn applies the In predicate on the "stream_recno" field.
func StreamRecnoIn(vs ...int) predicate.WtcCommand {
	return predicate.WtcCommand(sql.FieldIn(FieldStreamRecno, vs...))
}

// StreamRecnoNotIn applies the NotIn predicate on the "stream_recno" field.
func StreamRecnoNotIn(vs ...int) predicate.WtcCommand {
	return predicate.WtcCommand(sql.FieldNotIn(FieldStreamRecno, vs...))
}

// StreamRecnoGT applies the GT predicate on the "stream_recno" field.
func StreamRecnoGT(v int) predicate.WtcCommand {
	return predicate.WtcCommand(sql.FieldGT(FieldStreamRecno, v))
}

// StreamRecnoGTE applies the GTE predicate on the "stream_recno" field.
func StreamRecnoGTE(v int) predicate.WtcCommand {
	return predicate.WtcCommand(sql.FieldGTE(FieldStreamRecno, v))
}

// StreamRecnoLT applies the LT predicate on the "stream_recno" field.
func StreamRecnoLT(v int) predicate.WtcCommand {
	return predicate.WtcCommand(sql.FieldLT(FieldStreamRecno, v))
}

// StreamRecnoLTE applies the LTE predicate on the "stream_recno" field.
func StreamRecnoLTE(v int) predicate.WtcCommand {
	return predicate.WtcCommand(sql.FieldLTE(FieldStreamRecno, v))
}

// TemplateRecnoEQ applies the EQ predicate on the "template_recno" field.
func TemplateRecnoEQ(v int) predicate.WtcCommand {
	return predicate.WtcCommand(sql.FieldEQ(FieldTemplateRecno, v))
}

// TemplateRecnoNEQ applies the NEQ predicate on the "template_recno" field.
func TemplateRecnoNEQ(v int) predicate.WtcCommand {
	return predicate.WtcCommand(sql.FieldNEQ(FieldTemplateRecno, v))
}

// TemplateRecnoIn applies the In predicate on the "template_recno" field.
func TemplateRecnoIn(vs ...int) predicate.WtcCommand {
	return predicate.WtcCommand(sql.FieldIn(FieldTemplateRecno, vs...))
}

// TemplateRecnoNotIn applies the NotIn predicate on the "template_recno" field.
func TemplateRecnoNotIn(vs ...int) predicate.WtcCommand {
	return predicate.WtcCommand(sql.FieldNotIn(FieldTemplateRecno, vs...))
}

// TemplateRecnoGT applies the GT predicate on the "template_recno" field.
func TemplateRecnoGT(v int) predicate.WtcCommand {
	return predicate.WtcCommand(sql.FieldGT(FieldTemplateRecno, v))
}

// TemplateRecnoGTE applies the GTE predicate on the "template_recno" field.
func TemplateRecnoGTE(v int) predicate.WtcCommand {
	return predicate.WtcCommand(sql.FieldGTE(FieldTemplateRecno, v))
}

// TemplateRecnoLT applies the LT predicate on the "template_recno" field.
func TemplateRecnoLT(v int) predicate.WtcCommand {
	return predicate.WtcCommand(sql.FieldLT(FieldTemplateRecno, v))
}

// TemplateRecnoLTE applies the LTE predicate on the "template_recno" field.
func TemplateRecnoLTE(v int) predicate.WtcCommand {
	return predicate.WtcCommand(sql.FieldLTE(FieldTemplateRecno, v))
}

// SequenceEQ applies the EQ predicate on the "sequence" field.
func SequenceEQ(v string) predicate.WtcCommand {
	return predicate.WtcCommand(sql.FieldEQ(FieldSequence, v))
}

// SequenceNEQ applies the NEQ predicate on the "sequence" field.
func SequenceNEQ(v string) predicate.WtcCommand {
	return predicate.WtcCommand(sql.FieldNEQ(FieldSequence, v))
}

// SequenceIn applies the In predicate on the "sequence" field.
func SequenceIn(vs ...string) predicate.WtcCommand {
	return predicate.WtcCommand(sql.FieldIn(FieldSequence, vs...))
}

// SequenceNotIn applies the NotIn predicate on the "sequence" field.
func SequenceNotIn(vs ...string) predicate.WtcCommand {
	return predicate.WtcCommand(sql.FieldNotIn(FieldSequence, vs...))
}

// SequenceGT applies the GT predicate on the "sequence" field.
func SequenceGT(v string) predicate.WtcCommand {
	return predicate.WtcCommand(sql.FieldGT(FieldSequence, v))
}

// SequenceGTE applies the GTE predicate on the "sequence" field.
func SequenceGTE(v string) predicate.WtcCommand {
	return predicate.WtcCommand(sql.FieldGTE(FieldSequence, v))
}

// SequenceLT applies the LT predicate on the "sequence" field.
func SequenceLT(v string) predicate.WtcCommand {
	return predicate.WtcCommand(sql.FieldLT(FieldSequence, v))
}

// SequenceLTE applies the LTE predicate on the "sequence" field.
func SequenceLTE(v string) predicate.WtcCommand {
	return predicate.WtcCommand(sql.FieldLTE(FieldSequence, v))
}

// SequenceContains applies the Contains predicate on the "sequence" field.
func SequenceContains(v string) predicate.WtcCommand {
	return predicate.WtcCommand(sql.FieldContains(FieldSequence, v))
}

// SequenceHasPrefix applies the HasPrefix predicate on the "sequence" field.
func SequenceHasPrefix(v string) predicate.WtcCommand {
	return predicate.WtcCommand(sql.FieldHasPrefix(FieldSequence, v))
}

// SequenceHasSuffix applies the HasSuffix predicate on the "sequence" field.
func SequenceHasSuffix(v string) predicate.WtcCommand {
	return predicate.WtcCommand(sql.FieldHasSuffix(FieldSequence, v))
}

// SequenceEqualFold applies the EqualFold predicate on the "sequence" field.
func SequenceEqualFold(v string) predicate.WtcCommand {
	return predicate.WtcCommand(sql.FieldEqualFold(FieldSequence, v))
}

// SequenceContainsFold applies the ContainsFold predicate on the "sequence" field.
func SequenceContainsFold(v string) predicate.WtcCommand {
	return predicate.WtcCommand(sql.FieldContainsFold(FieldSequence, v))
}

// MessageEQ applies the EQ predicate on the "message" field.
func MessageEQ(v string) predicate.WtcCommand {
	return predicate.WtcCommand(sql.FieldEQ(FieldMessage, v))
}

// MessageNEQ applies the NEQ predicate on the "message" field.
func MessageNEQ(v string) predicate.WtcCommand {
	return predicate.WtcCommand(sql.FieldNEQ(FieldMessage, v))
}

// MessageIn applies the In predicate on the "message" field.
func MessageIn(vs ...string) predicate.WtcCommand {
	return predicate.WtcCommand(sql.FieldIn(FieldMessage, vs...))
}

// MessageNotIn applies the NotIn predicate on the "message" field.
func MessageNotIn(vs ...string) predicate.WtcCommand {
	return predicate.WtcCommand(sql.FieldNotIn(FieldMessage, vs...))
}

// MessageGT applies the GT predicate on the "message" field.
func MessageGT(v string) predicate.WtcCommand {
	return predicate.WtcCommand(sql.FieldGT(FieldMessage, v))
}

// MessageGTE applies the GTE predicate on the "message" field.
func MessageGTE(v string) predicate.WtcCommand {
	return predicate.WtcCommand(sql.FieldGTE(FieldMessage, v))
}

// MessageLT applies the LT predicate on the "message" field.
func MessageLT(v string) predicate.WtcCommand {
	return predicate.WtcCommand(sql.FieldLT(FieldMessage, v))
}

// MessageLTE applies the LTE predicate on the "message" field.
func MessageLTE(v string) predicate.WtcCommand {
	return predicate.WtcCommand(sql.FieldLTE(FieldMessage, v))
}

// MessageContains applies the Contains predicate on the "message" field.
func MessageContains(v string) predicate.WtcCommand {
	return predicate.WtcCommand(sql.FieldContains(FieldMessage, v))
}

// MessageHasPrefix applies the HasPrefix predicate on the "message" field.
func MessageHasPrefix(v string) predicate.WtcCommand {
	return predicate.WtcCommand(sql.FieldHasPrefix(FieldMessage, v))
}

// MessageHasSuffix applies the HasSuffix predicate on the "message" field.
func MessageHasSuffix(v string) predicate.WtcCommand {
	return predicate.WtcCommand(sql.FieldHasSuffix(FieldMessage, v))
}

// MessageEqualFold applies the EqualFold predicate on the "message" field.
func MessageEqualFold(v string) predicate.WtcCommand {
	return predicate.WtcCommand(sql.FieldEqualFold(FieldMessage, v))
}

// MessageContainsFold applies the ContainsFold predicate on the "message" field.
func MessageContainsFold(v string) predicate.WtcCommand {
	return predicate.WtcCommand(sql.FieldContainsFold(FieldMessage, v))
}

// ReturnNodeEQ applies the EQ predicate on the "return_node" field.
func ReturnNodeEQ(v string) predicate.WtcCommand {
	return predicate.WtcCommand(sql.FieldEQ(FieldReturnNode, v))
}

// ReturnNodeNEQ applies the NEQ predicate on the "return_node" field.
func ReturnNodeNEQ(v string) predicate.WtcCommand {
	return predicate.WtcCommand(sql.FieldNEQ(FieldReturnNode, v))
}

// ReturnNodeIn applies the In predicate on the "return_node" field.
func ReturnNodeIn(vs ...string) predicate.WtcCommand {
	return predicate.WtcCommand(sql.FieldIn(FieldReturnNode, vs...))
}

// ReturnNodeNotIn applies the NotIn predicate on the "return_node" field.
func ReturnNodeNotIn(vs ...string) predicate.WtcCommand {
	return predicate.WtcCommand(sql.FieldNotIn(FieldReturnNode, vs...))
}

// ReturnNodeGT applies the GT predicate on the "return_node" field.
func ReturnNodeGT(v string) predicate.WtcCommand {
	return predicate.WtcCommand(sql.FieldGT(FieldReturnNode, v))
}

// ReturnNodeGTE applies the GTE predicate on the "return_node" field.
func ReturnNodeGTE(v string) predicate.WtcCommand {
	return predicate.WtcCommand(sql.FieldGTE(FieldReturnNode, v))
}

// ReturnNodeLT applies the LT predicate on the "return_node" field.
func ReturnNodeLT(v string) predicate.WtcCommand {
	return predicate.WtcCommand(sql.FieldLT(FieldReturnNode, v))
}

// ReturnNodeLTE applies the LTE predicate on the "return_node" field.
func ReturnNodeLTE(v string) predicate.WtcCommand {
	return predicate.WtcCommand(sql.FieldLTE(FieldReturnNode, v))
}

// ReturnNodeContains applies the Contains predicate on the "return_node" field.
func ReturnNodeContains(v string) predicate.WtcCommand {
	return predicate.WtcCommand(sql.FieldContains(FieldReturnNode, v))
}

// ReturnNodeHasPrefix applies the HasPrefix predicate on the "return_node" field.
func ReturnNodeHasPrefix(v string) predicate.WtcCommand {
	return predicate.WtcCommand(sql.FieldHasPrefix(FieldReturnNode, v))
}

// ReturnNodeHasSuffix applies the HasSuffix predicate on the "return_node" field.
func ReturnNodeHasSuffix(v string) predicate.WtcCommand {
	return predicate.WtcCommand(sql.FieldHasSuffix(FieldReturnNode, v))
}

// ReturnNodeEqualFold applies the EqualFold predicate on the "return_node" field.
func ReturnNodeEqualFold(v string) predicate.WtcCommand {
	return predicate.WtcCommand(sql.FieldEqualFold(FieldReturnNode, v))
}

// ReturnNodeContainsFold applies the ContainsFold predicate on the "return_node" field.
func ReturnNodeContainsFold(v string) predicate.WtcCommand {
	return predicate.WtcCommand(sql.FieldContainsFold(FieldReturnNode, v))
}

// FlagEQ applies the EQ predicate on the "flag" field.
func FlagEQ(v int8) predicate.WtcCommand {
	return predicate.WtcCommand(sql.FieldEQ(FieldFlag, v))
}

// FlagNEQ applies the NEQ predicate on the "flag" field.
func FlagNEQ(v int8) predicate.WtcCommand {
	return predicate.WtcCommand(sql.FieldNEQ(FieldFlag, v))
}

// FlagIn applies the In predicate on the "flag" field.
func FlagIn(vs ...int8) predicate.WtcCommand {
	return predicate.WtcCommand(sql.FieldIn(FieldFlag, vs...))
}

// FlagNotIn applies the NotIn predicate on the "flag" field.
func FlagNotIn(vs ...int8) predicate.WtcCommand {
	return predicate.WtcCommand(sql.FieldNotIn(FieldFlag, vs...))
}

// FlagGT applies the GT predicate on the "flag" field.
func FlagGT(v int8) predicate.WtcCommand {
	return predicate.WtcCommand(sql.FieldGT(FieldFlag, v))
}

// FlagGTE applies the GTE predicate on the "flag" field.
func FlagGTE(v int8) predicate.WtcCommand {
	return predicate.WtcCommand(sql.FieldGTE(FieldFlag, v))
}

// FlagLT applies the LT predicate on the "flag" field.
func FlagLT(v int8) predicate.WtcCommand {
	return predicate.WtcCommand(sql.FieldLT(FieldFlag, v))
}

// FlagLTE applies the LTE predicate on the "flag" field.
func FlagLTE(v int8) predicate.WtcCommand {
	return predicate.WtcCommand(sql.FieldLTE(FieldFlag, v))
}

// SeqOperationEQ applies the EQ predicate on the "seq_operation" field.
func SeqOperationEQ(v int8) predicate.WtcCommand {
	return predicate.WtcCommand(sql.FieldEQ(FieldSeqOperation, v))
}

// SeqOperationNEQ applies the NEQ predicate on the "seq_operation" field.
func SeqOperationNEQ(v int8) predicate.WtcCommand {
	return predicate.WtcCommand(sql.FieldNEQ(FieldSeqOperation, v))
}

// SeqOperationIn applies the In predicate on the "seq_operation" field.
func SeqOperationIn(vs ...int8) predicate.WtcCommand {
	return predicate.WtcCommand(sql.FieldIn(FieldSeqOperation, vs...))
}

// SeqOperationNotIn applies the NotIn predicate on the "seq_operation" field.
func SeqOperationNotIn(vs ...int8) predicate.WtcCommand {
	return predicate.WtcCommand(sql.FieldNotIn(FieldSeqOperation, vs...))
}

// SeqOperationGT applies the GT predicate on the "seq_operation" field.
func SeqOperationGT(v int8) predicate.WtcCommand {
	return predicate.WtcCommand(sql.FieldGT(FieldSeqOperation, v))
}

// SeqOperationGTE applies the GTE predicate on the "seq_operation" field.
func SeqOperationGTE(v int8) predicate.WtcCommand {
	return predicate.WtcCommand(sql.FieldGTE(FieldSeqOperation, v))
}

// SeqOperationLT applies the LT predicate on the "seq_operation" field.
func SeqOperationLT(v int8) predicate.WtcCommand {
	return predicate.WtcCommand(sql.FieldLT(FieldSeqOperation, v))
}

// SeqOperationLTE applies the LTE predicate on the "seq_operation" field.
func SeqOperationLTE(v int8) predicate.WtcCommand {
	return predicate.WtcCommand(sql.FieldLTE(FieldSeqOperation, v))
}

// MessageTypeEQ applies the EQ predicate on the "message_type" field.
func MessageTypeEQ(v int8) predicate.WtcCommand {
	return predicate.WtcCommand(sql.FieldEQ(FieldMessageType, v))
}

// MessageTypeNEQ applies the NEQ predicate on the "message_type" field.
func MessageTypeNEQ(v int8) predicate.WtcCommand {
	return predicate.WtcCommand(sql.FieldNEQ(FieldMessageType, v))
}

// MessageTypeIn applies the In predicate on the "message_type" field.
func MessageTypeIn(vs ...int8) predicate.WtcCommand {
	return predicate.WtcCommand(sql.FieldIn(FieldMessageType, vs...))
}

// MessageTypeNotIn applies the NotIn predicate on the "message_type" field.
func MessageTypeNotIn(vs ...int8) predicate.WtcCommand {
	return predicate.WtcCommand(sql.FieldNotIn(FieldMessageType, vs...))
}

// MessageTypeGT applies the GT predicate on the "message_type" field.
func MessageTypeGT(v int8) predicate.WtcCommand {
	return predicate.WtcCommand(sql.FieldGT(FieldMessageType, v))
}

// MessageTypeGTE applies the GTE predicate on the "message_type" field.
func MessageTypeGTE(v int8) predicate.WtcCommand {
	return predicate.WtcCommand(sql.FieldGTE(FieldMessageType, v))
}

// MessageTypeLT applies the LT predicate on the "message_type" field.
func MessageTypeLT(v int8) predicate.WtcCommand {
	return predicate.WtcCommand(sql.FieldLT(FieldMessageType, v))
}

// MessageTypeLTE applies the LTE predicate on the "message_type" field.
func MessageTypeLTE(v int8) predicate.WtcCommand {
	return predicate.WtcCommand(sql.FieldLTE(FieldMessageType, v))
}

// NodeNameEQ applies the EQ predicate on the "node_name" field.
func NodeNameEQ(v string) predicate.WtcCommand {
	return predicate.WtcCommand(sql.FieldEQ(FieldNodeName, v))
}

// NodeNameNEQ applies the NEQ predicate on the "node_name" field.
func NodeNameNEQ(v string) predicate.WtcCommand {
	return predicate.WtcCommand(sql.FieldNEQ(FieldNodeName, v))
}

// NodeNameIn applies the In predicate on the "node_name" field.
func NodeNameIn(vs ...string) predicate.WtcCommand {
	return predicate.WtcCommand(sql.FieldIn(FieldNodeName, vs...))
}

// NodeNameNotIn applies the NotIn predicate on the "node_name" field.
func NodeNameNotIn(vs ...string) predicate.WtcCommand {
	return predicate.WtcCommand(sql.FieldNotIn(FieldNodeName, vs...))
}

// NodeNameGT applies the GT predicate on the "node_name" field.
func NodeNameGT(v string) predicate.WtcCommand {
	return predicate.WtcCommand(sql.FieldGT(FieldNodeName, v))
}

// NodeNameGTE applies the GTE predicate on the "node_name" field.
func NodeNameGTE(v string) predicate.WtcCommand {
	return predicate.WtcCommand(sql.FieldGTE(FieldNodeName, v))
}

// NodeNameLT applies the LT predicate on the "node_name" field.
func NodeNameLT(v string) predicate.WtcCommand {
	return predicate.WtcCommand(sql.FieldLT(FieldNodeName, v))
}

// NodeNameLTE applies the LTE predicate on the "node_name" field.
func NodeNameLTE(v string) predicate.WtcCommand {
	return predicate.WtcCommand(sql.FieldLTE(FieldNodeName, v))
}

// NodeNameContains applies the Contains predicate on the "node_name" field.
func NodeNameContains(v string) predicate.WtcCommand {
	return predicate.WtcCommand(sql.FieldContains(FieldNodeName, v))
}

// NodeNameHasPrefix applies the HasPrefix predicate on the "node_name" field.
func NodeNameHasPrefix(v string) predicate.WtcCommand {
	return predicate.WtcCommand(sql.FieldHasPrefix(FieldNodeName, v))
}

// NodeNameHasSuffix applies the HasSuffix predicate on the "node_name" field.
func NodeNameHasSuffix(v string) predicate.WtcCommand {
	return predicate.WtcCommand(sql.FieldHasSuffix(FieldNodeName, v))
}

// NodeNameEqualFold applies the EqualFold predicate on the "node_name" field.
func NodeNameEqualFold(v string) predicate.WtcCommand {
	return predicate.WtcCommand(sql.FieldEqualFold(FieldNodeName, v))
}

// NodeNameContainsFold applies the ContainsFold predicate on the "node_name" field.
func NodeNameContainsFold(v string) predicate.WtcCommand {
	return predicate.WtcCommand(sql.FieldContainsFold(FieldNodeName, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.WtcCommand {
	return predicate.WtcCommand(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.WtcCommand {
	return predicate.WtcCommand(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.WtcCommand {
	return predicate.WtcCommand(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.WtcCommand {
	return predicate.WtcCommand(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.WtcCommand {
	return predicate.WtcCommand(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.WtcCommand {
	return predicate.WtcCommand(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.WtcCommand {
	return predicate.WtcCommand(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.WtcCommand {
	return predicate.WtcCommand(sql.FieldLTE(FieldCreatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.WtcCommand) predicate.WtcCommand {
	return predicate.WtcCommand(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.WtcCommand) predicate.WtcCommand {
	return predicate.WtcCommand(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.WtcCommand) predicate.WtcCommand {
	return predicate.WtcCommand(sql.NotPredicates(p))
}
