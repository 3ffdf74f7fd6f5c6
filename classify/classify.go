package classify

import (
	"bytes"
	"slices"

	"github.com/signadot/redlex/debug"
	"github.com/signadot/redlex/token"
)

// Classifier is the default token.Classifier.
type Classifier struct {
	cfg Config
	ops [][]byte
}

func New(cfg Config) *Classifier {
	c := &Classifier{cfg: cfg}
	for _, op := range cfg.Operators {
		c.ops = append(c.ops, []byte(op))
	}
	// longest operator first
	slices.SortStableFunc(c.ops, func(a, b []byte) int {
		return len(b) - len(a)
	})
	return c
}

func Default() *Classifier {
	return New(DefaultConfig())
}

func (c *Classifier) Config() Config {
	return c.cfg
}

func isSpace(b byte) bool {
	switch b {
	case ' ', '\t', '\n', '\r', '\v', '\f':
		return true
	}
	return false
}

func isDelim(b byte) bool {
	if isSpace(b) {
		return true
	}
	switch b {
	case '[', ']', '(', ')', '{', '}', '"', ';':
		return true
	}
	return false
}

// InfixOp matches an operator with whitespace on both sides.
func (c *Classifier) InfixOp(d []byte, i int) int {
	if !c.cfg.Infix || i == 0 || !isSpace(d[i-1]) {
		return 0
	}
	for _, op := range c.ops {
		if !bytes.HasPrefix(d[i:], op) {
			continue
		}
		end := i + len(op)
		if end < len(d) && isSpace(d[end]) {
			if debug.Classify() {
				debug.Logf("classify op %q at %d\n", op, i)
			}
			return len(op)
		}
	}
	return 0
}

// Hexa matches 2 to 8 uppercase hex digits followed by 'h' and a
// delimiter.
func (c *Classifier) Hexa(d []byte, i int) int {
	if !c.cfg.Hexa {
		return 0
	}
	j := i
	for j < len(d) && j-i <= 8 && (d[j] >= '0' && d[j] <= '9' || d[j] >= 'A' && d[j] <= 'F') {
		j++
	}
	n := j - i
	if n < 2 || n > 8 || j >= len(d) || d[j] != 'h' {
		return 0
	}
	j++
	if j < len(d) && !isDelim(d[j]) {
		return 0
	}
	return j - i
}

// RawString matches %{...}% with any number of '%', the closer repeating
// the opener's count.  An unclosed raw string runs to the end of d.
func (c *Classifier) RawString(d []byte, i int) int {
	if !c.cfg.RawStrings {
		return 0
	}
	j := i
	for j < len(d) && d[j] == '%' {
		j++
	}
	pct := j - i
	if pct == 0 || j >= len(d) || d[j] != '{' {
		return 0
	}
	closer := append([]byte{'}'}, bytes.Repeat([]byte{'%'}, pct)...)
	k := bytes.Index(d[j+1:], closer)
	if k < 0 {
		return len(d) - i
	}
	return j + 1 + k + len(closer) - i
}

// MultilineString matches a brace delimited string with nested braces.
// '^' escapes the byte following it.  An unclosed string runs to the end
// of d.
func (c *Classifier) MultilineString(d []byte, i int) int {
	if !c.cfg.MultilineStrings || i >= len(d) || d[i] != '{' {
		return 0
	}
	depth := 0
	for j := i; j < len(d); j++ {
		switch d[j] {
		case '^':
			j++
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return j + 1 - i
			}
		}
	}
	return len(d) - i
}

func (c *Classifier) Sentinel(d []byte, i int) int {
	return token.RuneLen(d, i)
}

var _ token.Classifier = (*Classifier)(nil)
