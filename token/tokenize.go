package token

import "github.com/signadot/redlex/debug"

// Tokenize appends the flat token stream of src to dst.  Containers are
// not matched: brackets and parens appear as punctuation tokens.
func Tokenize(dst []Token, src []byte, opts ...ScanOption) []Token {
	s := NewScanner(src, opts...)
	operand := false
	for i := s.SkipSpace(0); i < len(src); i = s.SkipSpace(i) {
		tok := s.Next(i, operand)
		dst = append(dst, tok)
		operand = tok.Type.IsOperand()
		i = tok.End
	}
	if debug.Scan() {
		PrintTokens(src, dst, "tokenize")
	}
	return dst
}
