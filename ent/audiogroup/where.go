// Code generated by ent, DO NOT EDIT.

package audiogroup

import (
	"entgo.io/ent/dialect/sql"
	"github.com/messagenet/bannerd/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.AudioGroup {
	return predicate.AudioGroup(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.AudioGroup {
	return predicate.AudioGroup(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.AudioGroup {
	return predicate.AudioGroup(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.AudioGroup {
	return predicate.AudioGroup(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.AudioGroup {
	return predicate.AudioGroup(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.AudioGroup {
	return predicate.AudioGroup(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.AudioGroup {
	return predicate.AudioGroup(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.AudioGroup {
	return predicate.AudioGroup(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.AudioGroup {
	return predicate.AudioGroup(sql.FieldLTE(FieldID, id))
}

// Name applies equality check predicate on the "name" field. It's identical to NameEQ.
func Name(v string) predicate.AudioGroup {
	return predicate.AudioGroup(sql.FieldEQ(FieldName, v))
}

// NameEQ applies the EQ predicate on the "name" field.
func NameEQ(v string) predicate.AudioGroup {
	return predicate.AudioGroup(sql.FieldEQ(FieldName, v))
}

// NameNEQ applies the NEQ predicate on the "name" field.
func NameNEQ(v string) predicate.AudioGroup {
	return predicate.AudioGroup(sql.FieldNEQ(FieldName, v))
}

// NameIn applies the In predicate on the "name" field.
func NameIn(vs ...string) predicate.AudioGroup {
	return predicate.AudioGroup(sql.FieldIn(FieldName, vs...))
}

// NameNotIn applies the NotIn predicate on the "name" field.
func NameNotIn(vs ...string) predicate.AudioGroup {
	return predicate.AudioGroup(sql.FieldNotIn(FieldName, vs...))
}

// NameGT applies the GT predicate on the "name" field.
func NameGT(v string) predicate.AudioGroup {
	return predicate.AudioGroup(sql.FieldGT(FieldName, v))
}

// NameGTE applies the GTE predicate on the "name" field.
func NameGTE(v string) predicate.AudioGroup {
	return predicate.AudioGroup(sql.FieldGTE(FieldName, v))
}

// NameLT applies the LT predicate on the "name" field.
func NameLT(v string) predicate.AudioGroup {
	return predicate.AudioGroup(sql.FieldLT(FieldName, v))
}

// NameLTE applies the LTE predicate on the "name" field.
func NameLTE(v string) predicate.AudioGroup {
	return predicate.AudioGroup(sql.FieldLTE(FieldName, v))
}

// NameContains applies the Contains predicate on the "name" field.
func NameContains(v string) predicate.AudioGroup {
	return predicate.AudioGroup(sql.FieldContains(FieldName, v))
}

// NameHasPrefix applies the HasPrefix predicate on the "name" field.
func NameHasPrefix(v string) predicate.AudioGroup {
	return predicate.AudioGroup(sql.FieldHasPrefix(FieldName, v))
}

// NameHasSuffix applies the HasSuffix predicate on the "name" field.
func NameHasSuffix(v string) predicate.AudioGroup {
	return predicate.AudioGroup(sql.FieldHasSuffix(FieldName, v))
}

// NameEqualFold applies the EqualFold predicate on the "name" field.
func NameEqualFold(v string) predicate.AudioGroup {
	return predicate.AudioGroup(sql.FieldEqualFold(FieldName, v))
}

// NameContainsFold applies the ContainsFold predicate on the "name" field.
func NameContainsFold(v string) predicate.AudioGroup {
	return predicate.AudioGroup(sql.FieldContainsFold(FieldName, v))
}

// DeviceRecnosIsNil applies the IsNil predicate on the "device_recnos" field.
func DeviceRecnosIsNil() predicate.AudioGroup {
	return predicate.AudioGroup(sql.FieldIsNull(FieldDeviceRecnos))
}

// DeviceRecnosNotNil applies the NotNil predicate on the "device_recnos" field.
func DeviceRecnosNotNil() predicate.AudioGroup {
	return predicate.AudioGroup(sql.FieldNotNull(FieldDeviceRecnos))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.AudioGroup) predicate.AudioGroup {
	return predicate.AudioGroup(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.AudioGroup) predicate.AudioGroup {
	return predicate.AudioGroup(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.AudioGroup) predicate.AudioGroup {
	return predicate.AudioGroup(sql.NotPredicates(p))
}
