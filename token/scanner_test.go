package token

import (
	"testing"
)

type scanTest struct {
	in  string
	typ Type
	n   int
}

func runScanTests(t *testing.T, tests []scanTest, opts ...ScanOption) {
	t.Helper()
	for _, st := range tests {
		s := NewScanner([]byte(st.in), opts...)
		tok := s.Next(0, false)
		if tok.Type != st.typ || tok.Len() != st.n {
			t.Errorf("%q: got %s/%d want %s/%d", st.in, tok.Type, tok.Len(), st.typ, st.n)
		}
	}
}

func TestScanNumbers(t *testing.T) {
	runScanTests(t, []scanTest{
		{in: "123", typ: TNumber, n: 3},
		{in: "-1'000.5e3%", typ: TNumber, n: 11},
		{in: "1.#INF", typ: TNumber, n: 6},
		{in: "+1.#nan", typ: TNumber, n: 7},
		{in: "1e", typ: TNumber, n: 1},
		{in: "1e+", typ: TNumber, n: 1},
		{in: "-1", typ: TNumber, n: 2},
		{in: "10x20", typ: TPair, n: 5},
		{in: "10X20", typ: TPair, n: 5},
		{in: "-1x+2", typ: TPair, n: 5},
		{in: "10x", typ: TNumber, n: 2},
		{in: "1.2.3.4", typ: TTuple, n: 7},
		{in: "255.255.255", typ: TTuple, n: 11},
		{in: "256.1.1", typ: TNumber, n: 5},
		{in: "1.2", typ: TNumber, n: 3},
		{in: "$10.50", typ: TMoney, n: 6},
		{in: "USD$1'000", typ: TMoney, n: 9},
		{in: "-$1", typ: TMoney, n: 3},
		{in: "(1, 2)", typ: TPoint, n: 6},
		{in: "( 1.5 , 2 , -3 )", typ: TPoint, n: 16},
		{in: "(1 2)", typ: TLParen, n: 1},
		{in: "(1, 2, 3, 4)", typ: TLParen, n: 1},
	})
}

func TestScanTimeDate(t *testing.T) {
	runScanTests(t, []scanTest{
		{in: "10:30", typ: TTime, n: 5},
		{in: "10:30:15.5", typ: TTime, n: 10},
		{in: "0:0.123456789", typ: TTime, n: 13},
		{in: "2020-01-15", typ: TDate, n: 10},
		{in: "2020/1/5", typ: TDate, n: 8},
		{in: "15-Jan-2020", typ: TDate, n: 11},
		{in: "15-january-2020", typ: TDate, n: 15},
		{in: "1-SEPT-99", typ: TDate, n: 9},
		{in: "2020-01-15T10:30:00+05:00", typ: TDate, n: 25},
		{in: "2020-01-15/10:30Z", typ: TDate, n: 17},
		{in: "2020-W05", typ: TDate, n: 8},
		{in: "2020-W05-3", typ: TDate, n: 10},
		{in: "2020-123", typ: TDate, n: 8},
		{in: "20200115T103000Z", typ: TDate, n: 16},
		{in: "20200115T1030Z", typ: TDate, n: 14},
		{in: "2020-Foo-15", typ: TNumber, n: 4},
	})
}

func TestScanQuoted(t *testing.T) {
	runScanTests(t, []scanTest{
		{in: `#"a"`, typ: TChar, n: 4},
		{in: `#"^(tab)"`, typ: TChar, n: 9},
		{in: `#"^(1F600)"`, typ: TChar, n: 11},
		{in: `#"^""`, typ: TChar, n: 5},
		{in: `#"é"`, typ: TChar, n: 5},
		{in: `"a^"b"`, typ: TString, n: 6},
		{in: `"a\b"`, typ: TString, n: 5},
		{in: `"abc`, typ: TError, n: 1},
		{in: "\"ab\ncd\"", typ: TError, n: 1},
		{in: `#(true)`, typ: TEscapedValue, n: 7},
		{in: `#(none!)`, typ: TEscapedValue, n: 8},
		{in: `#(no)`, typ: TError, n: 1},
	})
}

func TestScanMarked(t *testing.T) {
	runScanTests(t, []scanTest{
		{in: `<div class="x">`, typ: TTag, n: 15},
		{in: `<a href="a>b">`, typ: TTag, n: 14},
		{in: `<a>`, typ: TTag, n: 3},
		{in: `< a>`, typ: TWord, n: 1},
		{in: "@ref", typ: TRef, n: 4},
		{in: "@", typ: TRef, n: 1},
		{in: "#issue", typ: TIssue, n: 6},
		{in: "/refine", typ: TRefinement, n: 7},
		{in: "me@example.com", typ: TEmail, n: 14},
		{in: "%file.txt", typ: TFile, n: 9},
		{in: `%"a b"`, typ: TFile, n: 6},
		{in: "#{DEADbeef}", typ: TBinary, n: 11},
		{in: "#{0A ;x\nFF}", typ: TBinary, n: 11},
		{in: "16#{0a}", typ: TBinary, n: 7},
		{in: "2#{0000 1111}", typ: TBinary, n: 13},
		{in: "64#{SGVsbG8=}", typ: TBinary, n: 13},
		{in: "64#{SG==}", typ: TBinary, n: 9},
		{in: "64#{S=G}", typ: TNumber, n: 2},
	})
}

func TestScanWords(t *testing.T) {
	runScanTests(t, []scanTest{
		{in: "foo", typ: TWord, n: 3},
		{in: "foo:", typ: TSetWord, n: 4},
		{in: "'foo", typ: TLitWord, n: 4},
		{in: ":foo", typ: TGetWord, n: 4},
		{in: "a/b/c:", typ: TSetPath, n: 6},
		{in: "a/b/c", typ: TPath, n: 5},
		{in: "'a/b", typ: TLitPath, n: 4},
		{in: ":a/b", typ: TGetPath, n: 4},
		{in: "a/1/(b c)", typ: TPath, n: 9},
		{in: "a/#[1 2]", typ: TPath, n: 8},
		{in: "a/(b", typ: TWord, n: 1},
		{in: "a/", typ: TWord, n: 1},
		{in: "true", typ: TBoolean, n: 4},
		{in: "trueish", typ: TWord, n: 7},
		{in: "http://example.com/x", typ: TURL, n: 20},
		{in: "+", typ: TWord, n: 1},
		{in: "//", typ: TWord, n: 2},
		{in: "<=", typ: TWord, n: 2},
		{in: "'", typ: TError, n: 1},
	})
}

func TestPathParts(t *testing.T) {
	src := []byte("a/b/c:")
	tok := NewScanner(src).Next(0, false)
	if tok.Type != TSetPath {
		t.Fatalf("got %s", tok.Type)
	}
	want := []string{"a", "b", "c"}
	if len(tok.Parts) != len(want) {
		t.Fatalf("got %d parts want %d", len(tok.Parts), len(want))
	}
	for i, p := range tok.Parts {
		if p.Text(src) != want[i] || p.Type != TWord {
			t.Errorf("part %d: got %s %q", i, p.Type, p.Text(src))
		}
	}

	src = []byte("blk/2/:x/(1 + 2)/'y")
	tok = NewScanner(src).Next(0, false)
	types := []Type{TWord, TNumber, TGetWord, TParen, TLitWord}
	if len(tok.Parts) != len(types) {
		t.Fatalf("got %d parts want %d", len(tok.Parts), len(types))
	}
	for i, p := range tok.Parts {
		if p.Type != types[i] {
			t.Errorf("part %d: got %s want %s", i, p.Type, types[i])
		}
	}
}

type opClassifier struct {
	NoClassifier
}

func (opClassifier) InfixOp(d []byte, i int) int {
	if d[i] == '+' && i > 0 && d[i-1] == ' ' && i+1 < len(d) && d[i+1] == ' ' {
		return 1
	}
	return 0
}

func TestScanInfixOnlyAfterOperand(t *testing.T) {
	src := []byte("a + b")
	s := NewScanner(src, ScanClassifier(opClassifier{}))
	if tok := s.Next(2, false); tok.Type != TWord {
		t.Errorf("got %s want word", tok.Type)
	}
	if tok := s.Next(2, true); tok.Type != TOp {
		t.Errorf("got %s want op", tok.Type)
	}
}

func TestScanIdempotent(t *testing.T) {
	for _, in := range []string{"123", "-1'000.5e3%", "1.2.3.4", "10x20", "$1.50", "2020-01-15T10:30Z", "a/b/c:", `<b>`} {
		src := []byte(in + " rest")
		tok := NewScanner(src).Next(0, false)
		again := NewScanner(tok.Bytes(src)).Next(0, false)
		if again.Type != tok.Type || again.Len() != tok.Len() {
			t.Errorf("%q: rescan got %s/%d want %s/%d", in, again.Type, again.Len(), tok.Type, tok.Len())
		}
	}
}

func TestSkipSpace(t *testing.T) {
	s := NewScanner([]byte("  ; comment\n\t x"))
	if i := s.SkipSpace(0); i != 14 {
		t.Errorf("got %d want 14", i)
	}
}
