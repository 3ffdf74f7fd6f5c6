package token

import "unicode/utf8"

// Classifier recognizes the token classes whose boundaries cannot be
// found by the literal scanners.  Each method inspects d at offset i and
// returns the length of the match, 0 meaning no match.
type Classifier interface {
	// InfixOp matches a binary operator.  It is only consulted after an
	// operand.
	InfixOp(d []byte, i int) int
	Hexa(d []byte, i int) int
	RawString(d []byte, i int) int
	MultilineString(d []byte, i int) int
	// Sentinel returns the length of an unclassifiable token at i.
	Sentinel(d []byte, i int) int
}

// NoClassifier recognizes none of the external classes.
type NoClassifier struct{}

func (NoClassifier) InfixOp([]byte, int) int         { return 0 }
func (NoClassifier) Hexa([]byte, int) int            { return 0 }
func (NoClassifier) RawString([]byte, int) int       { return 0 }
func (NoClassifier) MultilineString([]byte, int) int { return 0 }

func (NoClassifier) Sentinel(d []byte, i int) int {
	return RuneLen(d, i)
}

// RuneLen returns the width of the utf8 encoded rune at d[i], counting
// an invalid byte as 1.
func RuneLen(d []byte, i int) int {
	if i >= len(d) {
		return 0
	}
	_, sz := utf8.DecodeRune(d[i:])
	return sz
}
