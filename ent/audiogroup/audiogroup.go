// Code generated by ent, DO NOT EDIT.

package audiogroup

import (
	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the audiogroup type in the database.
	Label = "audio_group"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldName holds the string denoting the name field in the database.
	FieldName = "name"
	// FieldDeviceRecnos holds the string denoting the device_recnos field in the database.
	FieldDeviceRecnos = "device_recnos"
	// Table holds the table name of the audiogroup in the database.
	Table = "audio_groups"
)

// Columns holds all SQL columns for audiogroup fields.
var Columns = []string{
	FieldID,
	FieldName,
	FieldDeviceRecnos,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

// OrderOption defines the ordering options for the AudioGroup queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByName orders the results by the name field.
func ByName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldName, opts...).ToFunc()
}
