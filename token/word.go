package token

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// baseWord returns the length of the identifier at the start of d.  A
// run of slashes is a word of its own.
func baseWord(d []byte) int {
	if len(d) == 0 {
		return 0
	}
	if d[0] == '/' {
		n := 1
		for n < len(d) && d[n] == '/' {
			n++
		}
		return n
	}
	r, sz := utf8.DecodeRune(d)
	switch {
	case r == utf8.RuneError && sz <= 1, unicode.IsSpace(r):
		return 0
	case r < utf8.RuneSelf && (asciiDigit(byte(r)) || r == '\''):
		return 0
	case strings.ContainsRune(wordStops, r):
		return 0
	}
	return sz + runExcept(d[sz:], wordStops)
}

// scanWordish scans the word and path family at i: an optional ' or :
// marker, a base word, '/' separated path elements and an optional
// trailing ':'.  An unmarked word followed by ':' and a non-empty rest is
// a url.
func (s *Scanner) scanWordish(i int) Token {
	d := s.src
	marker := byte(0)
	j := i
	if d[j] == '\'' || d[j] == ':' {
		marker = d[j]
		j++
	}
	n := baseWord(d[j:])
	if n == 0 {
		return Token{}
	}
	base := Token{Type: TWord, Start: j, End: j + n}
	if isBoolean(base.Bytes(d)) {
		base.Type = TBoolean
	}
	end := base.End
	var elts []Token
	if d[j] != '/' {
		elts = s.pathElements(end)
		if len(elts) > 0 {
			end = elts[len(elts)-1].End
		}
	}
	setter := marker == 0 && end < len(d) && d[end] == ':'

	tok := Token{Start: i, End: end}
	if len(elts) > 0 {
		tok.Parts = append([]Token{base}, elts...)
		switch {
		case marker == '\'':
			tok.Type = TLitPath
		case marker == ':':
			tok.Type = TGetPath
		case setter:
			tok.Type = TSetPath
			tok.End++
		default:
			tok.Type = TPath
		}
		return tok
	}
	switch {
	case marker == '\'':
		tok.Type = TLitWord
	case marker == ':':
		tok.Type = TGetWord
	case setter:
		if u := urlRest(d[end+1:]); u > 0 && d[j] != '/' {
			tok.Type = TURL
			tok.End = end + 1 + u
			return tok
		}
		tok.Type = TSetWord
		tok.End++
	default:
		tok.Type = base.Type
	}
	return tok
}

func (s *Scanner) pathElements(i int) []Token {
	var elts []Token
	for i < len(s.src) && s.src[i] == '/' {
		elt := s.pathElement(i + 1)
		if elt.Len() == 0 {
			break
		}
		elts = append(elts, elt)
		i = elt.End
	}
	return elts
}

var elementScanners = []candidate{
	{TNumber, number}, {TPair, pair}, {TTuple, tuple}, {TChar, char},
	{TFile, file}, {TString, quoted}, {TIssue, issue}, {TBinary, binary},
	{TTag, tag}, {TRef, ref},
}

// pathElement scans one element following a path separator.
func (s *Scanner) pathElement(i int) Token {
	d := s.src
	if i >= len(d) {
		return Token{}
	}
	switch {
	case d[i] == '(':
		if end := s.SkipGroup(i, TParen); end > 0 {
			return Token{Type: TParen, Start: i, End: end}
		}
		return Token{}
	case d[i] == '#' && i+1 < len(d) && d[i+1] == '[':
		if end := s.SkipGroup(i, TMap); end > 0 {
			return Token{Type: TMap, Start: i, End: end}
		}
		return Token{}
	}
	best := Token{Start: i, End: i}
	for _, c := range elementScanners {
		if n := c.scan(d[i:]); n > best.Len() {
			best = Token{Type: c.t, Start: i, End: i + n}
		}
	}
	if w := elementWord(d, i); w.Len() > best.Len() {
		best = w
	}
	return best
}

// elementWord scans a word, lit-word or get-word path element.
func elementWord(d []byte, i int) Token {
	t, j := TWord, i
	switch d[i] {
	case '\'':
		t, j = TLitWord, i+1
	case ':':
		t, j = TGetWord, i+1
	}
	if j >= len(d) || d[j] == '/' {
		return Token{}
	}
	n := baseWord(d[j:])
	if n == 0 {
		return Token{}
	}
	tok := Token{Type: t, Start: i, End: j + n}
	if t == TWord && isBoolean(tok.Bytes(d)) {
		tok.Type = TBoolean
	}
	return tok
}

// SkipGroup returns the end of the block, paren or map of type t opened
// at i, or 0 when it is not closed.  It follows the container rules of
// the tree builder: blocks and parens nest any container, maps hold flat
// tokens up to the first ']'.
func (s *Scanner) SkipGroup(i int, t Type) int {
	if t == TMap {
		i += 2
	} else {
		i++
	}
	for {
		i = s.SkipSpace(i)
		if i >= len(s.src) {
			return 0
		}
		tok := s.Next(i, false)
		end := tok.End
		switch {
		case t == TMap:
			if tok.Type == TRBracket {
				return end
			}
		case t == TParen && tok.Type == TRParen, t == TBlock && tok.Type == TRBracket:
			return end
		case tok.Type == TLBracket:
			end = s.SkipGroup(i, TBlock)
		case tok.Type == TLParen:
			end = s.SkipGroup(i, TParen)
		case tok.Type == TMapOpen:
			end = s.SkipGroup(i, TMap)
		}
		if end == 0 {
			return 0
		}
		i = end
	}
}
