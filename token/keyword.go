package token

import "bytes"

var (
	kwTrue    = []byte("true")
	kwFalse   = []byte("false")
	kwInclude = []byte("#include")
)

// isBoolean reports whether a plain word spells a logic value.
func isBoolean(w []byte) bool {
	return bytes.Equal(w, kwTrue) || bytes.Equal(w, kwFalse)
}

// IsInclude reports whether the issue token t is the include directive.
func IsInclude(src []byte, t *Token) bool {
	return t.Type == TIssue && bytes.Equal(t.Bytes(src), kwInclude)
}
