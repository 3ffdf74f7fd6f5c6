package token

import "fmt"

// Type is the kind of a token or of a tree node built from tokens.
type Type int

const (
	TEOF Type = iota
	TError

	// literals
	TBoolean
	TNumber
	TPair
	TTuple
	TChar
	TFile
	TString
	TIssue
	TBinary
	TRefinement
	TTag
	TRef
	TEmail
	TPoint
	TMoney
	TTime
	TDate
	TEscapedValue
	TURL
	THexa
	TRawString
	TMultilineString

	// words and paths
	TWord
	TLitWord
	TGetWord
	TSetWord
	TPath
	TLitPath
	TGetPath
	TSetPath

	TOp

	// punctuation
	TLBracket
	TRBracket
	TLParen
	TRParen
	TMapOpen

	// tree nodes
	TSequence
	TBlock
	TParen
	TMap
	TInfix
	TFunction
	TDoes
	TContext
	TWhile
	TLoop
	TInclude

	numTypes
)

var typeNames = [numTypes]string{
	TEOF:             "eof",
	TError:           "error",
	TBoolean:         "boolean",
	TNumber:          "number",
	TPair:            "pair",
	TTuple:           "tuple",
	TChar:            "char",
	TFile:            "file",
	TString:          "string",
	TIssue:           "issue",
	TBinary:          "binary",
	TRefinement:      "refinement",
	TTag:             "tag",
	TRef:             "ref",
	TEmail:           "email",
	TPoint:           "point",
	TMoney:           "money",
	TTime:            "time",
	TDate:            "date",
	TEscapedValue:    "escaped-value",
	TURL:             "url",
	THexa:            "hexa",
	TRawString:       "raw-string",
	TMultilineString: "multiline-string",
	TWord:            "word",
	TLitWord:         "lit-word",
	TGetWord:         "get-word",
	TSetWord:         "set-word",
	TPath:            "path",
	TLitPath:         "lit-path",
	TGetPath:         "get-path",
	TSetPath:         "set-path",
	TOp:              "op",
	TLBracket:        "[",
	TRBracket:        "]",
	TLParen:          "(",
	TRParen:          ")",
	TMapOpen:         "#[",
	TSequence:        "sequence",
	TBlock:           "block",
	TParen:           "paren",
	TMap:             "map",
	TInfix:           "infix",
	TFunction:        "function",
	TDoes:            "does",
	TContext:         "context",
	TWhile:           "while",
	TLoop:            "loop",
	TInclude:         "include",
}

func (t Type) String() string {
	if t < 0 || t >= numTypes {
		return fmt.Sprintf("Type(%d)", int(t))
	}
	return typeNames[t]
}

func (t Type) IsLiteral() bool {
	return t >= TBoolean && t <= TMultilineString
}

func (t Type) IsWord() bool {
	return t >= TWord && t <= TSetWord
}

func (t Type) IsPath() bool {
	return t >= TPath && t <= TSetPath
}

// IsSimple reports whether a token of type t can stand alone as an
// operand: a literal, a word or a path.
func (t Type) IsSimple() bool {
	return t.IsLiteral() || t.IsWord() || t.IsPath()
}

// IsOperand reports whether a token of type t may be the operand of an
// infix operator: a simple token other than a set-word or set-path.
func (t Type) IsOperand() bool {
	return t.IsSimple() && t != TSetWord && t != TSetPath
}

func (t Type) IsPunct() bool {
	return t >= TLBracket && t <= TMapOpen
}

func (t Type) IsContainer() bool {
	switch t {
	case TSequence, TBlock, TParen, TMap:
		return true
	}
	return false
}

// IsCompound reports whether t is a keyword or operator construct
// grouping other nodes.
func (t Type) IsCompound() bool {
	return t >= TInfix && t <= TInclude
}

// Token is a classified span [Start, End) of a source buffer.  Path
// tokens carry their base word and elements in Parts.
type Token struct {
	Type       Type
	Start, End int
	Parts      []Token
}

func (t *Token) Bytes(src []byte) []byte {
	return src[t.Start:t.End]
}

func (t *Token) Text(src []byte) string {
	return string(src[t.Start:t.End])
}

func (t *Token) Len() int {
	return t.End - t.Start
}

type ScanErr struct {
	Err error
	Pos Pos
}

func (e *ScanErr) Unwrap() error {
	return e.Err
}

func NewScanErr(err error, p *Pos) *ScanErr {
	return &ScanErr{Err: err, Pos: *p}
}

func (e *ScanErr) Error() string {
	return fmt.Sprintf("%s at %s", e.Err.Error(), e.Pos.String())
}

func UnexpectedErr(what string, p *Pos) error {
	return NewScanErr(fmt.Errorf("unexpected %s", what), p)
}
