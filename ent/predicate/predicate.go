// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// AudioGroup is the predicate function for audiogroup builders.
type AudioGroup func(*sql.Selector)

// Banner is the predicate function for banner builders.
type Banner func(*sql.Selector)

// Hardware is the predicate function for hardware builders.
type Hardware func(*sql.Selector)

// Staff is the predicate function for staff builders.
type Staff func(*sql.Selector)

// Template is the predicate function for template builders.
type Template func(*sql.Selector)

// WtcCommand is the predicate function for wtccommand builders.
type WtcCommand func(*sql.Selector)
