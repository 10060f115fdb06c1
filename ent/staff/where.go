// Code generated by ent, DO NOT EDIT.

package staff

import (
	"entgo.io/ent/dialect/sql"
	"github.com/messagenet/bannerd/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.Staff {
	return predicate.Staff(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.Staff {
	return predicate.Staff(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.Staff {
	return predicate.Staff(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.Staff {
	return predicate.Staff(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.Staff {
	return predicate.Staff(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.Staff {
	return predicate.Staff(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.Staff {
	return predicate.Staff(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.Staff {
	return predicate.Staff(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.Staff {
	return predicate.Staff(sql.FieldLTE(FieldID, id))
}

// Pin applies equality check predicate on the "pin" field. It's identical to PinEQ.
func Pin(v string) predicate.Staff {
	return predicate.Staff(sql.FieldEQ(FieldPin, v))
}

// Gender applies equality check predicate on the "gender" field. It's identical to GenderEQ.
func Gender(v string) predicate.Staff {
	return predicate.Staff(sql.FieldEQ(FieldGender, v))
}

// Name applies equality check predicate on the "name" field. It's identical to NameEQ.
func Name(v string) predicate.Staff {
	return predicate.Staff(sql.FieldEQ(FieldName, v))
}

// PinEQ applies the EQ predicate on the "pin" field.
func PinEQ(v string) predicate.Staff {
	return predicate.Staff(sql.FieldEQ(FieldPin, v))
}

// PinNEQ applies the NEQ predicate on the "pin" field.
func PinNEQ(v string) predicate.Staff {
	return predicate.Staff(sql.FieldNEQ(FieldPin, v))
}

// PinIn applies the In predicate on the "pin" field.
func PinIn(vs ...string) predicate.Staff {
	return predicate.Staff(sql.FieldIn(FieldPin, vs...))
}

// PinNotIn applies the NotIn predicate on the "pin" field.
func PinNotIn(vs ...string) predicate.Staff {
	return predicate.Staff(sql.FieldNotIn(FieldPin, vs...))
}

// PinGT applies the GT predicate on the "pin" field.
func PinGT(v string) predicate.Staff {
	return predicate.Staff(sql.FieldGT(FieldPin, v))
}

// PinGTE applies the GTE predicate on the "pin" field.
func PinGTE(v string) predicate.Staff {
	return predicate.Staff(sql.FieldGTE(FieldPin, v))
}

// PinLT applies the LT predicate on the "pin" field.
func PinLT(v string) predicate.Staff {
	return predicate.Staff(sql.FieldLT(FieldPin, v))
}

// PinLTE applies the LTE predicate on the "pin" field.
func PinLTE(v string) predicate.Staff {
	return predicate.Staff(sql.FieldLTE(FieldPin, v))
}

// PinContains applies the Contains predicate on the "pin" field.
func PinContains(v string) predicate.Staff {
	return predicate.Staff(sql.FieldContains(FieldPin, v))
}

// PinHasPrefix applies the HasPrefix predicate on the "pin" field.
func PinHasPrefix(v string) predicate.Staff {
	return predicate.Staff(sql.FieldHasPrefix(FieldPin, v))
}

// PinHasSuffix applies the HasSuffix predicate on the "pin" field.
func PinHasSuffix(v string) predicate.Staff {
	return predicate.Staff(sql.FieldHasSuffix(FieldPin, v))
}

// PinEqualFold applies the EqualFold predicate on the "pin" field.
func PinEqualFold(v string) predicate.Staff {
	return predicate.Staff(sql.FieldEqualFold(FieldPin, v))
}

// PinContainsFold applies the ContainsFold predicate on the "pin" field.
func PinContainsFold(v string) predicate.Staff {
	return predicate.Staff(sql.FieldContainsFold(FieldPin, v))
}

// GenderEQ applies the EQ predicate on the "gender" field.
func GenderEQ(v string) predicate.Staff {
	return predicate.Staff(sql.FieldEQ(FieldGender, v))
}

// GenderNEQ applies the NEQ predicate on the "gender" field.
func GenderNEQ(v string) predicate.Staff {
	return predicate.Staff(sql.FieldNEQ(FieldGender, v))
}

// GenderIn applies the In predicate on the "gender" field.
func GenderIn(vs ...string) predicate.Staff {
	return predicate.Staff(sql.FieldIn(FieldGender, vs...))
}

// GenderNotIn applies the NotIn predicate on the "gender" field.
func GenderNotIn(vs ...string) predicate.Staff {
	return predicate.Staff(sql.FieldNotIn(FieldGender, vs...))
}

// GenderGT applies the GT predicate on the "gender" field.
func GenderGT(v string) predicate.Staff {
	return predicate.Staff(sql.FieldGT(FieldGender, v))
}

// GenderGTE applies the GTE predicate on the "gender" field.
func GenderGTE(v string) predicate.Staff {
	return predicate.Staff(sql.FieldGTE(FieldGender, v))
}

// GenderLT applies the LT predicate on the "gender" field.
func GenderLT(v string) predicate.Staff {
	return predicate.Staff(sql.FieldLT(FieldGender, v))
}

// GenderLTE applies the LTE predicate on the "gender" field.
func GenderLTE(v string) predicate.Staff {
	return predicate.Staff(sql.FieldLTE(FieldGender, v))
}

// GenderContains applies the Contains predicate on the "gender" field.
func GenderContains(v string) predicate.Staff {
	return predicate.Staff(sql.FieldContains(FieldGender, v))
}

// GenderHasPrefix applies the HasPrefix predicate on the "gender" field.
func GenderHasPrefix(v string) predicate.Staff {
	return predicate.Staff(sql.FieldHasPrefix(FieldGender, v))
}

// GenderHasSuffix applies the HasSuffix predicate on the "gender" field.
func GenderHasSuffix(v string) predicate.Staff {
	return predicate.Staff(sql.FieldHasSuffix(FieldGender, v))
}

// GenderEqualFold applies the EqualFold predicate on the "gender" field.
func GenderEqualFold(v string) predicate.Staff {
	return predicate.Staff(sql.FieldEqualFold(FieldGender, v))
}

// GenderContainsFold applies the ContainsFold predicate on the "gender" field.
func GenderContainsFold(v string) predicate.Staff {
	return predicate.Staff(sql.FieldContainsFold(FieldGender, v))
}

// NameEQ applies the EQ predicate on the "name" field.
func NameEQ(v string) predicate.Staff {
	return predicate.Staff(sql.FieldEQ(FieldName, v))
}

// NameNEQ applies the NEQ predicate on the "name" field.
func NameNEQ(v string) predicate.Staff {
	return predicate.Staff(sql.FieldNEQ(FieldName, v))
}

// NameIn applies the In predicate on the "name" field.
func NameIn(vs ...string) predicate.Staff {
	return predicate.Staff(sql.FieldIn(FieldName, vs...))
}

// NameNotIn applies the NotIn predicate on the "name" field.
func NameNotIn(vs ...string) predicate.Staff {
	return predicate.Staff(sql.FieldNotIn(FieldName, vs...))
}

// NameGT applies the GT predicate on the "name" field.
func NameGT(v string) predicate.Staff {
	return predicate.Staff(sql.FieldGT(FieldName, v))
}

// NameGTE applies the GTE predicate on the "name" field.
func NameGTE(v string) predicate.Staff {
	return predicate.Staff(sql.FieldGTE(FieldName, v))
}

// NameLT applies the LT predicate on the "name" field.
func NameLT(v string) predicate.Staff {
	return predicate.Staff(sql.FieldLT(FieldName, v))
}

// NameLTE applies the LTE predicate on the "name" field.
func NameLTE(v string) predicate.Staff {
	return predicate.Staff(sql.FieldLTE(FieldName, v))
}

// NameContains applies the Contains predicate on the "name" field.
func NameContains(v string) predicate.Staff {
	return predicate.Staff(sql.FieldContains(FieldName, v))
}

// NameHasPrefix applies the HasPrefix predicate on the "name" field.
func NameHasPrefix(v string) predicate.Staff {
	return predicate.Staff(sql.FieldHasPrefix(FieldName, v))
}

// NameHasSuffix applies the HasSuffix predicate on the "name" field.
func NameHasSuffix(v string) predicate.Staff {
	return predicate.Staff(sql.FieldHasSuffix(FieldName, v))
}

// NameIsNil applies the IsNil predicate on the "name" field.
func NameIsNil() predicate.Staff {
	return predicate.Staff(sql.FieldIsNull(FieldName))
}

// NameNotNil applies the NotNil predicate on the "name" field.
func NameNotNil() predicate.Staff {
	return predicate.Staff(sql.FieldNotNull(FieldName))
}

// NameEqualFold applies the EqualFold predicate on the "name" field.
func NameEqualFold(v string) predicate.Staff {
	return predicate.Staff(sql.FieldEqualFold(FieldName, v))
}

// NameContainsFold applies the ContainsFold predicate on the "name" field.
func NameContainsFold(v string) predicate.Staff {
	return predicate.Staff(sql.FieldContainsFold(FieldName, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Staff) predicate.Staff {
	return predicate.Staff(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Staff) predicate.Staff {
	return predicate.Staff(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Staff) predicate.Staff {
	return predicate.Staff(sql.NotPredicates(p))
}
