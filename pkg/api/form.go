package api

import (
	"strconv"
	"strings"
)

// Form is a decoded CGI query: the ordered tokens of a form-encoded
// request. Tokens keep their "key=" prefix so lookups match the way the
// actions are written, and the first token selects the action.
type Form struct {
	tokens []string
}

// ParseForm decodes a raw query string or request body. `+` decodes to
// space and `%HH` to the hex byte; literal `"` and `'` decode to
// backtick so a value can never escape the quoting of whatever the
// caller embeds it in.
func ParseForm(raw string) *Form {
	var tokens []string
	for _, tok := range strings.Split(raw, "&") {
		if tok == "" {
			continue
		}
		tokens = append(tokens, decodeToken(tok))
	}
	return &Form{tokens: tokens}
}

func decodeToken(tok string) string {
	var b strings.Builder
	b.Grow(len(tok))
	for i := 0; i < len(tok); i++ {
		c := tok[i]
		switch {
		case c == '+':
			b.WriteByte(' ')
		case c == '%' && i+2 < len(tok):
			hi, okHi := hexVal(tok[i+1])
			lo, okLo := hexVal(tok[i+2])
			if okHi && okLo {
				c = hi<<4 | lo
				i += 2
			}
			if c == '"' || c == '\'' {
				c = '`'
			}
			b.WriteByte(c)
		case c == '"' || c == '\'':
			b.WriteByte('`')
		default:
			b.WriteByte(c)
		}
	}
	return b.String()
}

func hexVal(c byte) (byte, bool) {
	switch {
	case c >= '0' && c <= '9':
		return c - '0', true
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10, true
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10, true
	}
	return 0, false
}

// Has reports whether any token starts with the given "key=" prefix.
func (f *Form) Has(prefix string) bool {
	_, ok := f.Lookup(prefix)
	return ok
}

// Lookup returns the value of the first token starting with the given
// "key=" prefix.
func (f *Form) Lookup(prefix string) (string, bool) {
	for _, tok := range f.tokens {
		if strings.HasPrefix(tok, prefix) {
			return tok[len(prefix):], true
		}
	}
	return "", false
}

// Int returns the value of the first token starting with the given
// prefix parsed as an integer; zero when absent or malformed.
func (f *Form) Int(prefix string) int {
	v, ok := f.Lookup(prefix)
	if !ok {
		return 0
	}
	n, err := strconv.Atoi(strings.TrimSpace(v))
	if err != nil {
		return 0
	}
	return n
}
