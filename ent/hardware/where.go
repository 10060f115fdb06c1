// Code generated by ent, DO NOT EDIT.

package hardware

import (
	"entgo.io/ent/dialect/sql"
	"github.com/messagenet/bannerd/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.Hardware {
	return predicate.Hardware(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.Hardware {
	return predicate.Hardware(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.Hardware {
	return predicate.Hardware(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.Hardware {
	return predicate.Hardware(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.Hardware {
	return predicate.Hardware(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.Hardware {
	return predicate.Hardware(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.Hardware {
	return predicate.Hardware(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.Hardware {
	return predicate.Hardware(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.Hardware {
	return predicate.Hardware(sql.FieldLTE(FieldID, id))
}

// DeviceID applies equality check predicate on the "device_id" field. It's identical to DeviceIDEQ.
func DeviceID(v string) predicate.Hardware {
	return predicate.Hardware(sql.FieldEQ(FieldDeviceID, v))
}

// Name applies equality check predicate on the "name" field. It's identical to NameEQ.
func Name(v string) predicate.Hardware {
	return predicate.Hardware(sql.FieldEQ(FieldName, v))
}

// Address applies equality check predicate on the "address" field. It's identical to AddressEQ.
func Address(v string) predicate.Hardware {
	return predicate.Hardware(sql.FieldEQ(FieldAddress, v))
}

// Port applies equality check predicate on the "port" field. It's identical to PortEQ.
func Port(v int) predicate.Hardware {
	return predicate.Hardware(sql.FieldEQ(FieldPort, v))
}

// Password applies equality check predicate on the "password" field. It's identical to PasswordEQ.
func Password(v string) predicate.Hardware {
	return predicate.Hardware(sql.FieldEQ(FieldPassword, v))
}

// AutoAddress applies equality check predicate on the "auto_address" field. It's identical to AutoAddressEQ.
func AutoAddress(v bool) predicate.Hardware {
	return predicate.Hardware(sql.FieldEQ(FieldAutoAddress, v))
}

// IPMethodConfig applies equality check predicate on the "ip_method_config" field. It's identical to IPMethodConfigEQ.
func IPMethodConfig(v string) predicate.Hardware {
	return predicate.Hardware(sql.FieldEQ(FieldIPMethodConfig, v))
}

// IPMethodCurrent applies equality check predicate on the "ip_method_current" field. It's identical to IPMethodCurrentEQ.
func IPMethodCurrent(v string) predicate.Hardware {
	return predicate.Hardware(sql.FieldEQ(FieldIPMethodCurrent, v))
}

// RtspPort applies equality check predicate on the "rtsp_port" field. It's identical to RtspPortEQ.
func RtspPort(v int) predicate.Hardware {
	return predicate.Hardware(sql.FieldEQ(FieldRtspPort, v))
}

// DeviceIDEQ applies the EQ predicate on the "device_id" field.
func DeviceIDEQ(v string) predicate.Hardware {
	return predicate.Hardware(sql.FieldEQ(FieldDeviceID, v))
}

// DeviceIDNEQ applies the NEQ predicate on the "device_id" field.
func DeviceIDNEQ(v string) predicate.Hardware {
	return predicate.Hardware(sql.FieldNEQ(FieldDeviceID, v))
}

// DeviceIDIn applies the In predicate on the "device_id" field.
func DeviceIDIn(vs ...string) predicate.Hardware {
	return predicate.Hardware(sql.FieldIn(FieldDeviceID, vs...))
}

// DeviceIDNotIn applies the NotIn predicate on the "device_id" field.
func DeviceIDNotIn(vs ...string) predicate.Hardware {
	return predicate.Hardware(sql.FieldNotIn(FieldDeviceID, vs...))
}

// DeviceIDGT applies the GT predicate on the "device_id" field.
func DeviceIDGT(v string) predicate.Hardware {
	return predicate.Hardware(sql.FieldGT(FieldDeviceID, v))
}

// DeviceIDGTE applies the GTE predicate on the "device_id" field.
func DeviceIDGTE(v string) predicate.Hardware {
	return predicate.Hardware(sql.FieldGTE(FieldDeviceID, v))
}

// DeviceIDLT applies the LT predicate on the "device_id" field.
func DeviceIDLT(v string) predicate.Hardware {
	return predicate.Hardware(sql.FieldLT(FieldDeviceID, v))
}

// DeviceIDLTE applies the LTE predicate on the "device_id" field.
func DeviceIDLTE(v string) predicate.Hardware {
	return predicate.Hardware(sql.FieldLTE(FieldDeviceID, v))
}

// DeviceIDContains applies the Contains predicate on the "device_id" field.
func DeviceIDContains(v string) predicate.Hardware {
	return predicate.Hardware(sql.FieldContains(FieldDeviceID, v))
}

// DeviceIDHasPrefix applies the HasPrefix predicate on the "device_id" field.
func DeviceIDHasPrefix(v string) predicate.Hardware {
	return predicate.Hardware(sql.FieldHasPrefix(FieldDeviceID, v))
}

// DeviceIDHasSuffix applies the HasSuffix predicate on the "device_id" field.
func DeviceIDHasSuffix(v string) predicate.Hardware {
	return predicate.Hardware(sql.FieldHasSuffix(FieldDeviceID, v))
}

// DeviceIDEqualFold applies the EqualFold predicate on the "device_id" field.
func DeviceIDEqualFold(v string) predicate.Hardware {
	return predicate.Hardware(sql.FieldEqualFold(FieldDeviceID, v))
}

// DeviceIDContainsFold applies the ContainsFold predicate on the "device_id" field.
func DeviceIDContainsFold(v string) predicate.Hardware {
	return predicate.Hardware(sql.FieldContainsFold(FieldDeviceID, v))
}

// DeviceKindEQ applies the EQ predicate on the "device_kind" field.
func DeviceKindEQ(v DeviceKind) predicate.Hardware {
	return predicate.Hardware(sql.FieldEQ(FieldDeviceKind, v))
}

// DeviceKindNEQ applies the NEQ predicate on the "device_kind" field.
func DeviceKindNEQ(v DeviceKind) predicate.Hardware {
	return predicate.Hardware(sql.FieldNEQ(FieldDeviceKind, v))
}

// DeviceKindIn applies the In predicate on the "device_kind" field.
func DeviceKindIn(vs ...DeviceKind) predicate.Hardware {
	return predicate.Hardware(sql.FieldIn(FieldDeviceKind, vs...))
}

// DeviceKindNotIn applies the NotIn predicate on the "device_kind" field.
func DeviceKindNotIn(vs ...DeviceKind) predicate.Hardware {
	return predicate.Hardware(sql.FieldNotIn(FieldDeviceKind, vs...))
}

// NameEQ applies the EQ predicate on the "name" field.
func NameEQ(v string) predicate.Hardware {
	return predicate.Hardware(sql.FieldEQ(FieldName, v))
}

// NameNEQ applies the NEQ predicate on the "name" field.
func NameNEQ(v string) predicate.Hardware {
	return predicate.Hardware(sql.FieldNEQ(FieldName, v))
}

// NameIn applies the In predicate on the "name" field.
func NameIn(vs ...string) predicate.Hardware {
	return predicate.Hardware(sql.FieldIn(FieldName, vs...))
}

// NameNotIn applies the NotIn predicate on the "name" field.
func NameNotIn(vs ...string) predicate.Hardware {
	return predicate.Hardware(sql.FieldNotIn(FieldName, vs...))
}

// NameGT applies the GT predicate on the "name" field.
func NameGT(v string) predicate.Hardware {
	return predicate.Hardware(sql.FieldGT(FieldName, v))
}

// NameGTE applies the GTE predicate on the "name" field.
func NameGTE(v string) predicate.Hardware {
	return predicate.Hardware(sql.FieldGTE(FieldName, v))
}

// NameLT applies the LT predicate on the "name" field.
func NameLT(v string) predicate.Hardware {
	return predicate.Hardware(sql.FieldLT(FieldName, v))
}

// NameLTE applies the LTE predicate on the "name" field.
func NameLTE(v string) predicate.Hardware {
	return predicate.Hardware(sql.FieldLTE(FieldName, v))
}

// NameContains applies the Contains predicate on the "name" field.
func NameContains(v string) predicate.Hardware {
	return predicate.Hardware(sql.FieldContains(FieldName, v))
}

// NameHasPrefix applies the HasPrefix predicate on the "name" field.
func NameHasPrefix(v string) predicate.Hardware {
	return predicate.Hardware(sql.FieldHasPrefix(FieldName, v))
}

// NameHasSuffix applies the HasSuffix predicate on the "name" field.
func NameHasSuffix(v string) predicate.Hardware {
	return predicate.Hardware(sql.FieldHasSuffix(FieldName, v))
}

// NameIsNil applies the IsNil predicate on the "name" field.
func NameIsNil() predicate.Hardware {
	return predicate.Hardware(sql.FieldIsNull(FieldName))
}

// NameNotNil applies the NotNil predicate on the "name" field.
func NameNotNil() predicate.Hardware {
	return predicate.Hardware(sql.FieldNotNull(FieldName))
}

// NameEqualFold applies the EqualFold predicate on the "name" field.
func NameEqualFold(v string) predicate.Hardware {
	return predicate.Hardware(sql.FieldEqualFold(FieldName, v))
}

// NameContainsFold applies the ContainsFold predicate on the "name" field.
func NameContainsFold(v string) predicate.Hardware {
	return predicate.Hardware(sql.FieldContainsFold(FieldName, v))
}

// AddressEQ applies the EQ predicate on the "address" field.
func AddressEQ(v string) predicate.Hardware {
	return predicate.Hardware(sql.FieldEQ(FieldAddress, v))
}

// AddressNEQ applies the NEQ predicate on the "address" field.
func AddressNEQ(v string) predicate.Hardware {
	return predicate.Hardware(sql.FieldNEQ(FieldAddress, v))
}

// AddressIn applies the In predicate on the "address" field.
func AddressIn(vs ...string) predicate.Hardware {
	return predicate.Hardware(sql.FieldIn(FieldAddress, vs...))
}

// AddressNotIn applies the NotIn predicate on the "address" field.
func AddressNotIn(vs ...string) predicate.Hardware {
	return predicate.Hardware(sql.FieldNotIn(FieldAddress, vs...))
}

// AddressGT applies the GT predicate on the "address" field.
func AddressGT(v string) predicate.Hardware {
	return predicate.Hardware(sql.FieldGT(FieldAddress, v))
}

// AddressGTE applies the GTE predicate on the "address" field.
func AddressGTE(v string) predicate.Hardware {
	return predicate.Hardware(sql.FieldGTE(FieldAddress, v))
}

// AddressLT applies the LT predicate on the "address" field.
func AddressLT(v string) predicate.Hardware {
	return predicate.Hardware(sql.FieldLT(FieldAddress, v))
}

// AddressLTE applies the LTE predicate on the "address" field.
func AddressLTE(v string) predicate.Hardware {
	return predicate.Hardware(sql.FieldLTE(FieldAddress, v))
}

// AddressContains applies the Contains predicate on the "address" field.
func AddressContains(v string) predicate.Hardware {
	return predicate.Hardware(sql.FieldContains(FieldAddress, v))
}

// AddressHasPrefix applies the HasPrefix predicate on the "address" field.
func AddressHasPrefix(v string) predicate.Hardware {
	return predicate.Hardware(sql.FieldHasPrefix(FieldAddress, v))
}

// AddressHasSuffix applies the HasSuffix predicate on the "address" field.
func AddressHasSuffix(v string) predicate.Hardware {
	return predicate.Hardware(sql.FieldHasSuffix(FieldAddress, v))
}

// AddressEqualFold applies the EqualFold predicate on the "address" field.
func AddressEqualFold(v string) predicate.Hardware {
	return predicate.Hardware(sql.FieldEqualFold(FieldAddress, v))
}

// AddressContainsFold applies the ContainsFold predicate on the "address" field.
func AddressContainsFold(v string) predicate.Hardware {
	return predicate.Hardware(sql.FieldContainsFold(FieldAddress, v))
}

// PortEQ applies the EQ predicate on the "port" field.
func PortEQ(v int) predicate.Hardware {
	return predicate.Hardware(sql.FieldEQ(FieldPort, v))
}

// PortNEQ applies the NEQ predicate on the "port" field.
func PortNEQ(v int) predicate.Hardware {
	return predicate.Hardware(sql.FieldNEQ(FieldPort, v))
}

// PortIn applies the In predicate on the "port" field.
func PortIn(vs ...int) predicate.Hardware {
	return predicate.Hardware(sql.FieldIn(FieldPort, vs...))
}

// PortNotIn applies the NotIn predicate on the "port" field.
func PortNotIn(vs ...int) predicate.Hardware {
	return predicate.Hardware(sql.FieldNotIn(FieldPort, vs...))
}

// PortGT applies the GT predicate on the "port" field.
func PortGT(v int) predicate.Hardware {
	return predicate.Hardware(sql.FieldGT(FieldPort, v))
}

// PortGTE applies the GTE predicate on the "port" field.
func PortGTE(v int) predicate.Hardware {
	return predicate.Hardware(sql.FieldGTE(FieldPort, v))
}

// PortLT applies the LT predicate on the "port" field.
func PortLT(v int) predicate.Hardware {
	return predicate.Hardware(sql.FieldLT(FieldPort, v))
}

// PortLTE applies the LTE predicate on the "port" field.
func PortLTE(v int) predicate.Hardware {
	return predicate.Hardware(sql.FieldLTE(FieldPort, v))
}

// PasswordEQ applies the EQ predicate on the "password" field.
func PasswordEQ(v string) predicate.Hardware {
	return predicate.Hardware(sql.FieldEQ(FieldPassword, v))
}

// PasswordNEQ applies the NEQ predicate on the "password" field.
func PasswordNEQ(v string) predicate.Hardware {
	return predicate.Hardware(sql.FieldNEQ(FieldPassword, v))
}

// PasswordIn applies the In predicate on the "password" field.
func PasswordIn(vs ...string) predicate.Hardware {
	return predicate.Hardware(sql.FieldIn(FieldPassword, vs...))
}

// PasswordNotIn applies the NotIn predicate on the "password" field.
func PasswordNotIn(vs ...string) predicate.Hardware {
	return predicate.Hardware(sql.FieldNotIn(FieldPassword, vs...))
}

// PasswordGT applies the GT predicate on the "password" field.
func PasswordGT(v string) predicate.Hardware {
	return predicate.Hardware(sql.FieldGT(FieldPassword, v))
}

// PasswordGTE applies the GTE predicate on the "password" field.
func PasswordGTE(v string) predicate.Hardware {
	return predicate.Hardware(sql.FieldGTE(FieldPassword, v))
}

// PasswordLT applies the LT predicate on the "password" field.
func PasswordLT(v string) predicate.Hardware {
	return predicate.Hardware(sql.FieldLT(FieldPassword, v))
}

// PasswordLTE applies the LTE predicate on the "password" field.
func PasswordLTE(v string) predicate.Hardware {
	return predicate.Hardware(sql.FieldLTE(FieldPassword, v))
}

// PasswordContains applies the Contains predicate on the "password" field.
func PasswordContains(v string) predicate.Hardware {
	return predicate.Hardware(sql.FieldContains(FieldPassword, v))
}

// PasswordHasPrefix applies the HasPrefix predicate on the "password" field.
func PasswordHasPrefix(v string) predicate.Hardware {
	return predicate.Hardware(sql.FieldHasPrefix(FieldPassword, v))
}

// PasswordHasSuffix applies the HasSuffix predicate on the "password" field.
func PasswordHasSuffix(v string) predicate.Hardware {
	return predicate.Hardware(sql.FieldHasSuffix(FieldPassword, v))
}

// PasswordEqualFold applies the EqualFold predicate on the "password" field.
func PasswordEqualFold(v string) predicate.Hardware {
	return predicate.Hardware(sql.FieldEqualFold(FieldPassword, v))
}

// PasswordContainsFold applies the ContainsFold predicate on the "password" field.
func PasswordContainsFold(v string) predicate.Hardware {
	return predicate.Hardware(sql.FieldContainsFold(FieldPassword, v))
}

// AutoAddressEQ applies the EQ predicate on the "auto_address" field.
func AutoAddressEQ(v bool) predicate.Hardware {
	return predicate.Hardware(sql.FieldEQ(FieldAutoAddress, v))
}

// AutoAddressNEQ applies the NEQ predicate on the "auto_address" field.
func AutoAddressNEQ(v bool) predicate.Hardware {
	return predicate.Hardware(sql.FieldNEQ(FieldAutoAddress, v))
}

// IPMethodConfigEQ applies the EQ predicate on the "ip_method_config" field.
func IPMethodConfigEQ(v string) predicate.Hardware {
	return predicate.Hardware(sql.FieldEQ(FieldIPMethodConfig, v))
}

// IPMethodConfigNEQ applies the NEQ predicate on the "ip_method_config" field.
func IPMethodConfigNEQ(v string) predicate.Hardware {
	return predicate.Hardware(sql.FieldNEQ(FieldIPMethodConfig, v))
}

// IPMethodConfigIn applies the In predicate on the "ip_method_config" field.
func IPMethodConfigIn(vs ...string) predicate.Hardware {
	return predicate.Hardware(sql.FieldIn(FieldIPMethodConfig, vs...))
}

// IPMethodConfigNotIn applies the NotIn predicate on the "ip_method_config" field.
func IPMethodConfigNotIn(vs ...string) predicate.Hardware {
	return predicate.Hardware(sql.FieldNotIn(FieldIPMethodConfig, vs...))
}

// IPMethodConfigGT applies the GT predicate on the "ip_method_config" field.
func IPMethodConfigGT(v string) predicate.Hardware {
	return predicate.Hardware(sql.FieldGT(FieldIPMethodConfig, v))
}

// IPMethodConfigGTE applies the GTE predicate on the "ip_method_config" field.
func IPMethodConfigGTE(v string) predicate.Hardware {
	return predicate.Hardware(sql.FieldGTE(FieldIPMethodConfig, v))
}

// IPMethodConfigLT applies the LT predicate on the "ip_method_config" field.
func IPMethodConfigLT(v string) predicate.Hardware {
	return predicate.Hardware(sql.FieldLT(FieldIPMethodConfig, v))
}

// IPMethodConfigLTE applies the LTE predicate on the "ip_method_config" field.
func IPMethodConfigLTE(v string) predicate.Hardware {
	return predicate.Hardware(sql.FieldLTE(FieldIPMethodConfig, v))
}

// IPMethodConfigContains applies the Contains predicate on the "ip_method_config" field.
func IPMethodConfigContains(v string) predicate.Hardware {
	return predicate.Hardware(sql.FieldContains(FieldIPMethodConfig, v))
}

// IPMethodConfigHasPrefix applies the HasPrefix predicate on the "ip_method_config" field.
func IPMethodConfigHasPrefix(v string) predicate.Hardware {
	return predicate.Hardware(sql.FieldHasPrefix(FieldIPMethodConfig, v))
}

// IPMethodConfigHasSuffix applies the HasSuffix predicate on the "ip_method_config" field.
func IPMethodConfigHasSuffix(v string) predicate.Hardware {
	return predicate.Hardware(sql.FieldHasSuffix(FieldIPMethodConfig, v))
}

// IPMethodConfigEqualFold applies the EqualFold predicate on the "ip_method_config" field.
func IPMethodConfigEqualFold(v string) predicate.Hardware {
	return predicate.Hardware(sql.FieldEqualFold(FieldIPMethodConfig, v))
}

// IPMethodConfigContainsFold applies the ContainsFold predicate on the "ip_method_config" field.
func IPMethodConfigContainsFold(v string) predicate.Hardware {
	return predicate.Hardware(sql.FieldContainsFold(FieldIPMethodConfig, v))
}

// IPMethodCurrentEQ applies the EQ predicate on the "ip_method_current" field.
func IPMethodCurrentEQ(v string) predicate.Hardware {
	return predicate.Hardware(sql.FieldEQ(FieldIPMethodCurrent, v))
}

// IPMethodCurrentNEQ applies the NEQ predicate on the "ip_method_current" field.
func IPMethodCurrentNEQ(v string) predicate.Hardware {
	return predicate.Hardware(sql.FieldNEQ(FieldIPMethodCurrent, v))
}

// IPMethodCurrentIn applies the In predicate on the "ip_method_current" field.
func IPMethodCurrentIn(vs ...string) predicate.Hardware {
	return predicate.Hardware(sql.FieldIn(FieldIPMethodCurrent, vs...))
}

// IPMethodCurrentNotIn applies the NotIn predicate on the "ip_method_current" field.
func IPMethodCurrentNotIn(vs ...string) predicate.Hardware {
	return predicate.Hardware(sql.FieldNotIn(FieldIPMethodCurrent, vs...))
}

// IPMethodCurrentGT applies the GT predicate on the "ip_method_current" field.
func IPMethodCurrentGT(v string) predicate.Hardware {
	return predicate.Hardware(sql.FieldGT(FieldIPMethodCurrent, v))
}

// IPMethodCurrentGTE applies the GTE predicate on the "ip_method_current" field.
func IPMethodCurrentGTE(v string) predicate.Hardware {
	return predicate.Hardware(sql.FieldGTE(FieldIPMethodCurrent, v))
}

// IPMethodCurrentLT applies the LT predicate on the "ip_method_current" field.
func IPMethodCurrentLT(v string) predicate.Hardware {
	return predicate.Hardware(sql.FieldLT(FieldIPMethodCurrent, v))
}

// IPMethodCurrentLTE applies the LTE predicate on the "ip_method_current" field.
func IPMethodCurrentLTE(v string) predicate.Hardware {
	return predicate.Hardware(sql.FieldLTE(FieldIPMethodCurrent, v))
}

// IPMethodCurrentContains applies the Contains predicate on the "ip_method_current" field.
func IPMethodCurrentContains(v string) predicate.Hardware {
	return predicate.Hardware(sql.FieldContains(FieldIPMethodCurrent, v))
}

// IPMethodCurrentHasPrefix applies the HasPrefix predicate on the "ip_method_current" field.
func IPMethodCurrentHasPrefix(v string) predicate.Hardware {
	return predicate.Hardware(sql.FieldHasPrefix(FieldIPMethodCurrent, v))
}

// IPMethodCurrentHasSuffix applies the HasSuffix predicate on the "ip_method_current" field.
func IPMethodCurrentHasSuffix(v string) predicate.Hardware {
	return predicate.Hardware(sql.FieldHasSuffix(FieldIPMethodCurrent, v))
}

// IPMethodCurrentEqualFold applies the EqualFold predicate on the "ip_method_current" field.
func IPMethodCurrentEqualFold(v string) predicate.Hardware {
	return predicate.Hardware(sql.FieldEqualFold(FieldIPMethodCurrent, v))
}

// IPMethodCurrentContainsFold applies the ContainsFold predicate on the "ip_method_current" field.
func IPMethodCurrentContainsFold(v string) predicate.Hardware {
	return predicate.Hardware(sql.FieldContainsFold(FieldIPMethodCurrent, v))
}

// RtspPortEQ applies the EQ predicate on the "rtsp_port" field.
func RtspPortEQ(v int) predicate.Hardware {
	return predicate.Hardware(sql.FieldEQ(FieldRtspPort, v))
}

// RtspPortNEQ applies the NEQ predicate on the "rtsp_port" field.
func RtspPortNEQ(v int) predicate.Hardware {
	return predicate.Hardware(sql.FieldNEQ(FieldRtspPort, v))
}

// RtspPortIn applies the In predicate on the "rtsp_port" field.
func RtspPortIn(vs ...int) predicate.Hardware {
	return predicate.Hardware(sql.FieldIn(FieldRtspPort, vs...))
}

// RtspPortNotIn applies the NotIn predicate on the "rtsp_port" field.
func RtspPortNotIn(vs ...int) predicate.Hardware {
	return predicate.Hardware(sql.FieldNotIn(FieldRtspPort, vs...))
}

// RtspPortGT applies the GT predicate on the "rtsp_port" field.
func RtspPortGT(v int) predicate.Hardware {
	return predicate.Hardware(sql.FieldGT(FieldRtspPort, v))
}

// RtspPortGTE applies the GTE predicate on the "rtsp_port" field.
func RtspPortGTE(v int) predicate.Hardware {
	return predicate.Hardware(sql.FieldGTE(FieldRtspPort, v))
}

// RtspPortLT applies the LT predicate on the "rtsp_port" field.
func RtspPortLT(v int) predicate.Hardware {
	return predicate.Hardware(sql.FieldLT(FieldRtspPort, v))
}

// RtspPortLTE applies the LTE predicate on the "rtsp_port" field.
func RtspPortLTE(v int) predicate.Hardware {
	return predicate.Hardware(sql.FieldLTE(FieldRtspPort, v))
}

// ConnectionStatusEQ applies the EQ predicate on the "connection_status" field.
func ConnectionStatusEQ(v ConnectionStatus) predicate.Hardware {
	return predicate.Hardware(sql.FieldEQ(FieldConnectionStatus, v))
}

// ConnectionStatusNEQ applies the NEQ predicate on the "connection_status" field.
func ConnectionStatusNEQ(v ConnectionStatus) predicate.Hardware {
	return predicate.Hardware(sql.FieldNEQ(FieldConnectionStatus, v))
}

// ConnectionStatusIn applies the In predicate on the "connection_status" field.
func ConnectionStatusIn(vs ...ConnectionStatus) predicate.Hardware {
	return predicate.Hardware(sql.FieldIn(FieldConnectionStatus, vs...))
}

// ConnectionStatusNotIn applies the NotIn predicate on the "connection_status" field.
func ConnectionStatusNotIn(vs ...ConnectionStatus) predicate.Hardware {
	return predicate.Hardware(sql.FieldNotIn(FieldConnectionStatus, vs...))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Hardware) predicate.Hardware {
	return predicate.Hardware(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Hardware) predicate.Hardware {
	return predicate.Hardware(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Hardware) predicate.Hardware {
	return predicate.Hardware(sql.NotPredicates(p))
}
