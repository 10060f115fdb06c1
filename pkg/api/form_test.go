package api

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseFormLookup(t *testing.T) {
	f := ParseForm("evolutionReportNetworkInfo=1&devicerecno=363&ipAddress=192.168.1.229")

	v, ok := f.Lookup("devicerecno=")
	assert.True(t, ok)
	assert.Equal(t, "363", v)

	assert.True(t, f.Has("evolutionReportNetworkInfo="))
	assert.False(t, f.Has("msgrecno="))
	assert.Equal(t, 363, f.Int("devicerecno="))
}

func TestParseFormDecoding(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"plus is space", "k=a+b", "a b"},
		{"percent hex", "k=a%20b", "a b"},
		{"percent hex upper", "k=%41%42", "AB"},
		{"double quote to backtick", "k=a%22b", "a`b"},
		{"single quote to backtick", "k=a'b", "a`b"},
		{"literal quote to backtick", `k=a"b`, "a`b"},
		{"malformed percent kept", "k=100%", "100%"},
		{"short percent kept", "k=a%2", "a%2"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := ParseForm(tt.in)
			v, ok := f.Lookup("k=")
			assert.True(t, ok)
			assert.Equal(t, tt.want, v)
		})
	}
}

func TestParseFormFirstMatchWins(t *testing.T) {
	f := ParseForm("k=first&k=second")
	v, _ := f.Lookup("k=")
	assert.Equal(t, "first", v)
}

func TestParseFormPrefixDisambiguation(t *testing.T) {
	// The underscore variants must not match the bare action prefix.
	f := ParseForm("evolutionGetActiveMessagesForDevice_recnosOnly=1&devicerecno=5")
	assert.False(t, f.Has(actionGetActiveMessages))
	assert.True(t, f.Has(actionRecnosOnly))
}

func TestParseFormIntMalformed(t *testing.T) {
	f := ParseForm("devicerecno=abc")
	assert.Equal(t, 0, f.Int("devicerecno="))
}

func TestParseFormEmpty(t *testing.T) {
	f := ParseForm("")
	assert.False(t, f.Has("k="))
}
