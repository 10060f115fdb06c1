package translate

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObjectPreservesInsertionOrder(t *testing.T) {
	o := NewObject()
	o.String("zulu", "last-added-first")
	o.Int("alpha", 1)
	o.String("mike", "middle")

	assert.Equal(t, `{"zulu":"last-added-first","alpha":1,"mike":"middle"}`, o.Render())
}

func TestObjectEmpty(t *testing.T) {
	assert.Equal(t, "{}", NewObject().Render())
}

func TestObjectStringEscaping(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"plain", "hello", `{"k":"hello"}`},
		{"quote", `say "hi"`, `{"k":"say \"hi\""}`},
		{"backslash", `a\b`, `{"k":"a\\b"}`},
		{"newline", "a\nb", `{"k":"a\nb"}`},
		{"tab and cr", "a\tb\r", `{"k":"a\tb\r"}`},
		{"control byte", "a\x01b", `{"k":"a\u0001b"}`},
		{"html left alone", `<b>&</b>`, `{"k":"<b>&</b>"}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NewObject().String("k", tt.in).Render()
			assert.Equal(t, tt.want, got)

			// Whatever we emit must still be valid JSON that round-trips
			// to the original value.
			var m map[string]string
			require.NoError(t, json.Unmarshal([]byte(got), &m))
			assert.Equal(t, tt.in, m["k"])
		})
	}
}

func TestObjectStringArray(t *testing.T) {
	o := NewObject().StringArray("groups", []string{"All Call", "Hall B"})
	assert.Equal(t, `{"groups":["All Call","Hall B"]}`, o.Render())
}

func TestObjectStringArrayEmpty(t *testing.T) {
	assert.Equal(t, `{"groups":[]}`, NewObject().StringArray("groups", nil).Render())
}

func TestObjectNested(t *testing.T) {
	inner := NewObject().Int("recno", 345)
	o := NewObject().
		String("password", "pw").
		Objects("bannermessages", []*Object{inner})
	assert.Equal(t, `{"password":"pw","bannermessages":[{"recno":345}]}`, o.Render())
}

func TestObjectRaw(t *testing.T) {
	o := NewObject().Raw("n", "-1")
	assert.Equal(t, `{"n":-1}`, o.Render())
}
