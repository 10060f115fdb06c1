// Package translate renders banner events into the appliance's JSON wire
// bodies. Key order is load-bearing: the journal's dedup compares rendered
// lines field-by-field, so every emitter here preserves insertion order.
package translate

import (
	"fmt"
	"strconv"
	"strings"
)

// Object is an insertion-ordered JSON object builder. encoding/json maps
// cannot preserve key order, so the wire bodies are assembled through
// this instead.
type Object struct {
	keys   []string
	values []string
}

// NewObject returns an empty ordered object.
func NewObject() *Object {
	return &Object{}
}

func (o *Object) add(key, rawValue string) *Object {
	o.keys = append(o.keys, key)
	o.values = append(o.values, rawValue)
	return o
}

// String appends a string field, JSON-escaped.
func (o *Object) String(key, value string) *Object {
	return o.add(key, quote(value))
}

// Int appends a numeric field.
func (o *Object) Int(key string, value int) *Object {
	return o.add(key, strconv.Itoa(value))
}

// StringArray appends an array of strings.
func (o *Object) StringArray(key string, values []string) *Object {
	var b strings.Builder
	b.WriteByte('[')
	for i, v := range values {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(quote(v))
	}
	b.WriteByte(']')
	return o.add(key, b.String())
}

// Raw appends a pre-rendered JSON value.
func (o *Object) Raw(key, rawJSON string) *Object {
	return o.add(key, rawJSON)
}

// Objects appends an array of nested objects.
func (o *Object) Objects(key string, objs []*Object) *Object {
	var b strings.Builder
	b.WriteByte('[')
	for i, obj := range objs {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(obj.Render())
	}
	b.WriteByte(']')
	return o.add(key, b.String())
}

// Render serializes the object with keys in insertion order.
func (o *Object) Render() string {
	var b strings.Builder
	b.WriteByte('{')
	for i, k := range o.keys {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(quote(k))
		b.WriteByte(':')
		b.WriteString(o.values[i])
	}
	b.WriteByte('}')
	return b.String()
}

// quote renders a JSON string literal. encoding/json's Marshal escapes
// HTML characters, which would change the bytes the appliance and the
// journal dedup see, so the escaping is done directly.
func quote(s string) string {
	var b strings.Builder
	b.WriteByte('"')
	for _, r := range s {
		switch r {
		case '"':
			b.WriteString(`\"`)
		case '\\':
			b.WriteString(`\\`)
		case '\n':
			b.WriteString(`\n`)
		case '\r':
			b.WriteString(`\r`)
		case '\t':
			b.WriteString(`\t`)
		default:
			if r < 0x20 {
				b.WriteString(fmt.Sprintf(`\u%04x`, r))
			} else {
				b.WriteRune(r)
			}
		}
	}
	b.WriteByte('"')
	return b.String()
}
