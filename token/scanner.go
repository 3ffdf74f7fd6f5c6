package token

import (
	"github.com/signadot/redlex/debug"
)

type scanOpts struct {
	classifier Classifier
}

type ScanOption func(*scanOpts)

// ScanClassifier sets the classifier for the externally recognized
// classes.  The default is NoClassifier.
func ScanClassifier(c Classifier) ScanOption {
	return func(o *scanOpts) {
		o.classifier = c
	}
}

// Scanner classifies tokens of a fixed buffer.  Scanning is pure: the
// same offset always yields the same token, so callers may rescan to
// look ahead.
type Scanner struct {
	src []byte
	cls Classifier
}

func NewScanner(src []byte, opts ...ScanOption) *Scanner {
	o := &scanOpts{classifier: NoClassifier{}}
	for _, opt := range opts {
		opt(o)
	}
	if o.classifier == nil {
		o.classifier = NoClassifier{}
	}
	return &Scanner{src: src, cls: o.classifier}
}

func (s *Scanner) Src() []byte {
	return s.src
}

// SkipSpace returns the offset of the first byte at or after i which is
// neither whitespace nor part of a ';' comment.
func (s *Scanner) SkipSpace(i int) int {
	if i >= len(s.src) {
		return len(s.src)
	}
	return i + spacesAndComments(s.src[i:])
}

type candidate struct {
	t    Type
	scan func([]byte) int
}

// literalTiers holds the scanners by precedence.  Every scanner runs and
// the longest match wins.  Ties go to the earlier tier, then to the
// earlier scanner within a tier.  The nil tier is the word and path
// family, see scanWordish.
var literalTiers = [][]candidate{
	{{TTag, tag}, {TMoney, money}, {TEscapedValue, escapedValue}, {TChar, char}},
	{{TNumber, number}, {TPair, pair}, {TTuple, tuple}, {TPoint, point}, {TTime, clock}, {TDate, date}},
	nil,
	{{TRef, ref}, {TIssue, issue}, {TRefinement, refinement}, {TEmail, email}, {TFile, file}, {TBinary, binary}, {TString, quoted}},
}

// Next classifies the token starting at i, which must not be whitespace.
// afterOperand enables infix operator recognition.  Next never fails:
// input no scanner claims becomes a TError token of at least one byte.
func (s *Scanner) Next(i int, afterOperand bool) Token {
	tok := s.next(i, afterOperand)
	if debug.Scan() {
		debug.Logf("scan %d %s %q\n", i, tok.Type, tok.Text(s.src))
	}
	return tok
}

func (s *Scanner) next(i int, afterOperand bool) Token {
	d := s.src
	if i >= len(d) {
		return Token{Type: TEOF, Start: len(d), End: len(d)}
	}
	if afterOperand {
		if n := s.cls.InfixOp(d, i); n > 0 {
			return Token{Type: TOp, Start: i, End: i + n}
		}
	}
	if n := s.cls.Hexa(d, i); n > 0 {
		return Token{Type: THexa, Start: i, End: i + n}
	}
	if n := s.cls.RawString(d, i); n > 0 {
		return Token{Type: TRawString, Start: i, End: i + n}
	}
	if n := s.cls.MultilineString(d, i); n > 0 {
		return Token{Type: TMultilineString, Start: i, End: i + n}
	}

	switch d[i] {
	case '[':
		return Token{Type: TLBracket, Start: i, End: i + 1}
	case ']':
		return Token{Type: TRBracket, Start: i, End: i + 1}
	case ')':
		return Token{Type: TRParen, Start: i, End: i + 1}
	case '(':
		// a point literal outranks the opener
		if point(d[i:]) == 0 {
			return Token{Type: TLParen, Start: i, End: i + 1}
		}
	case '#':
		if i+1 < len(d) && d[i+1] == '[' {
			return Token{Type: TMapOpen, Start: i, End: i + 2}
		}
	}

	best := Token{Type: TError, Start: i, End: i}
	for _, tier := range literalTiers {
		if tier == nil {
			if w := s.scanWordish(i); w.Len() > best.Len() {
				best = w
			}
			continue
		}
		for _, c := range tier {
			if n := c.scan(d[i:]); n > best.Len() {
				best = Token{Type: c.t, Start: i, End: i + n}
			}
		}
	}
	if best.Len() > 0 {
		return best
	}
	n := max(s.cls.Sentinel(d, i), 1)
	return Token{Type: TError, Start: i, End: min(i+n, len(d))}
}
