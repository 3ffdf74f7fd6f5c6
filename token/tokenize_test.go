package token

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestTokenize(t *testing.T) {
	src := []byte("a: [1 + 2] ; c\n #[x 1] (b)")
	toks := Tokenize(nil, src)
	var got []string
	for i := range toks {
		got = append(got, toks[i].Type.String()+" "+toks[i].Text(src))
	}
	want := []string{
		"set-word a:",
		"[ [",
		"number 1",
		"word +",
		"number 2",
		"] ]",
		"#[ #[",
		"word x",
		"number 1",
		"] ]",
		"( (",
		"word b",
		") )",
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("tokens (-want +got):\n%s", diff)
	}
}

func TestTokenizeCoversInput(t *testing.T) {
	src := []byte("x: \"unterminated\n\x01 ^ $ % \xff y")
	toks := Tokenize(nil, src)
	end := 0
	for i := range toks {
		tok := &toks[i]
		if tok.Len() <= 0 {
			t.Fatalf("empty token %s at %d", tok.Type, tok.Start)
		}
		if tok.Start < end {
			t.Fatalf("overlapping token %s at %d", tok.Type, tok.Start)
		}
		end = tok.End
	}
	if end != len(src) {
		t.Errorf("got end %d want %d", end, len(src))
	}
}

func TestPosDoc(t *testing.T) {
	doc := NewPosDoc([]byte("ab\ncd"))
	tests := []struct {
		off, line, col int
	}{
		{0, 0, 0},
		{2, 0, 2},
		{3, 1, 0},
		{4, 1, 1},
	}
	for _, tt := range tests {
		l, c := doc.LineCol(tt.off)
		if l != tt.line || c != tt.col {
			t.Errorf("%d: got %d:%d want %d:%d", tt.off, l, c, tt.line, tt.col)
		}
	}
}
