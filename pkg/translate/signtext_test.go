package translate

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTextPlainPassthrough(t *testing.T) {
	assert.Equal(t, "FIRE DRILL AT 2PM", Text("FIRE DRILL AT 2PM"))
}

func TestTextColorChange(t *testing.T) {
	assert.Equal(t, "{color=red}ALERT", Text("\x01K1ALERT"))
	assert.Equal(t, "{bgcolor=green}ok", Text("\x01B2ok"))
}

func TestTextColorRepeatSuppressed(t *testing.T) {
	// The second switch to the same color emits nothing.
	assert.Equal(t, "{color=red}ab", Text("\x01K1a\x01K1b"))
	// A different color emits again.
	assert.Equal(t, "{color=red}a{color=amber}b", Text("\x01K1a\x01K3b"))
}

func TestTextUnknownColorDropped(t *testing.T) {
	assert.Equal(t, "ab", Text("a\x01K9b"))
}

func TestTextSignatureSubstituted(t *testing.T) {
	assert.Equal(t, "a|X|b", Text("a\x01Gxb"))
}

func TestTextSequenceTerminates(t *testing.T) {
	assert.Equal(t, "ab", Text("ab\x01Qcd"))
}

func TestTextDroppedBytes(t *testing.T) {
	assert.Equal(t, "ab", Text("a\rb"))
	assert.Equal(t, "ab", Text("a\x7fb"))
}

func TestTextConsumedControls(t *testing.T) {
	// Speed, font, mode, and justify take an argument; all are dropped.
	assert.Equal(t, "ab", Text("a\x01S5b"))
	assert.Equal(t, "ab", Text("a\x01F2b"))
	assert.Equal(t, "ab", Text("a\x01M1b"))
	assert.Equal(t, "ab", Text("a\x01J0b"))
	// Date and time embeds take no argument.
	assert.Equal(t, "ab", Text("a\x01Db"))
	assert.Equal(t, "ab", Text("a\x01Tb"))
}

func TestTextTruncatedControl(t *testing.T) {
	assert.Equal(t, "a", Text("a\x01"))
	assert.Equal(t, "a", Text("a\x01K"))
}
