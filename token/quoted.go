package token

import (
	"bytes"
	"strings"
	"unicode/utf8"
)

var namedEscapes = []string{"(null)", "(back)", "(tab)", "(line)", "(page)", "(esc)", "(del)", "()"}

// escapedChar scans a caret escape: ^c, ^(name) or ^(hex).
func escapedChar(d []byte) int {
	if len(d) < 2 || d[0] != '^' {
		return 0
	}
	c := d[1]
	if c == '(' {
		for _, name := range namedEscapes {
			if len(d)-1 >= len(name) && strings.EqualFold(string(d[1:1+len(name)]), name) {
				return 1 + len(name)
			}
		}
		n := hexDigits(d[2:])
		if n >= 1 && n <= 6 && 2+n < len(d) && d[2+n] == ')' {
			return 3 + n
		}
		return 0
	}
	if asciiLetter(c) || strings.IndexByte(`@[\]_/-~^{}"'`, c) >= 0 {
		return 2
	}
	return 0
}

func char(d []byte) int {
	if len(d) < 4 || d[0] != '#' || d[1] != '"' {
		return 0
	}
	i := 2
	if n := escapedChar(d[i:]); n > 0 {
		i += n
	} else {
		r, sz := utf8.DecodeRune(d[i:])
		if r == '"' || r == '^' || (r == utf8.RuneError && sz <= 1) {
			return 0
		}
		i += sz
	}
	if i >= len(d) || d[i] != '"' {
		return 0
	}
	return i + 1
}

// quoted scans a single line "..." string with caret escapes.
func quoted(d []byte) int {
	if len(d) == 0 || d[0] != '"' {
		return 0
	}
	i := 1
	for i < len(d) {
		switch d[i] {
		case '"':
			return i + 1
		case '\n':
			return 0
		case '^':
			n := escapedChar(d[i:])
			if n == 0 {
				return 0
			}
			i += n
		default:
			i++
		}
	}
	return 0
}

func escapedValue(d []byte) int {
	if len(d) < 2 || d[0] != '#' || d[1] != '(' {
		return 0
	}
	i := 2
	for i < len(d) && i-2 < 20 && (asciiLetter(d[i]) || d[i] == '-' || d[i] == '!') {
		i++
	}
	if i-2 < 3 || i >= len(d) || d[i] != ')' {
		return 0
	}
	return i + 1
}

// tag scans <...>.  Quoted attribute values on the same line may
// contain '>'.
func tag(d []byte) int {
	if len(d) < 3 || d[0] != '<' {
		return 0
	}
	if runExcept(d[1:], tagFirstStops) == 0 {
		return 0
	}
	i := 1 + RuneLen(d, 1)
	for i < len(d) {
		switch c := d[i]; c {
		case '>':
			return i + 1
		case '"', '\'':
			j := bytes.IndexByte(d[i+1:], c)
			if j >= 0 && bytes.IndexByte(d[i+1:i+1+j], '\n') < 0 {
				i += j + 2
				continue
			}
			i++
		default:
			i++
		}
	}
	return 0
}
