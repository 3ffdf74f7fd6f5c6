package parse

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/signadot/redlex/classify"
	"github.com/signadot/redlex/ir"
	"github.com/signadot/redlex/token"
)

// sexpr renders the shape of the subtree at id.
func sexpr(t *ir.Tree, id ir.NodeID) string {
	n := t.Node(id)
	if len(n.Children) == 0 && ir.IsLeaf(n.Type) {
		return n.Type.String() + ":" + t.Text(id)
	}
	parts := []string{n.Type.String()}
	for _, k := range n.Children {
		parts = append(parts, sexpr(t, k))
	}
	return "(" + strings.Join(parts, " ") + ")"
}

type shapeTest struct {
	in   string
	want string
}

func runShapeTests(t *testing.T, tests []shapeTest, opts ...ParseOption) {
	t.Helper()
	opts = append([]ParseOption{ParseClassifier(classify.Default())}, opts...)
	for _, st := range tests {
		tree, _ := Parse([]byte(st.in), opts...)
		if got := sexpr(tree, tree.Root); got != st.want {
			t.Errorf("%q:\ngot  %s\nwant %s", st.in, got, st.want)
		}
		checkSpans(t, tree)
	}
}

// checkSpans verifies children lie in order inside their parent.
func checkSpans(t *testing.T, tree *ir.Tree) {
	t.Helper()
	tree.Walk(tree.Root, func(id ir.NodeID, _ int) bool {
		n := tree.Node(id)
		if n.Start > n.End {
			t.Errorf("%s %s: bad span %d-%d", n.Type, tree.Path(id), n.Start, n.End)
		}
		at := n.Start
		for _, k := range n.Children {
			kn := tree.Node(k)
			if kn.Start < at || kn.End > n.End {
				t.Errorf("%s %s: child %s %d-%d outside %d-%d", n.Type, tree.Path(id), kn.Type, kn.Start, kn.End, at, n.End)
			}
			if kn.Parent != id {
				t.Errorf("%s: bad parent link", tree.Path(k))
			}
			at = kn.End
		}
		return true
	})
}

func TestParseLiterals(t *testing.T) {
	runShapeTests(t, []shapeTest{
		{"foo:", "(sequence set-word:foo:)"},
		{"a/b/c:", "(sequence (set-path word:a word:b word:c))"},
		{"10x20 10X20", "(sequence pair:10x20 pair:10X20)"},
		{"1.2.3.4", "(sequence tuple:1.2.3.4)"},
		{`<div class="x">`, `(sequence tag:<div class="x">)`},
		{"$1 #\"a\" 10:00 2020-01-01 true", "(sequence money:$1 char:#\"a\" time:10:00 date:2020-01-01 boolean:true)"},
		{"FFh {a {b}} %{c}%", "(sequence hexa:FFh multiline-string:{a {b}} raw-string:%{c}%)"},
		{"a/(b + 1)/c", "(sequence (path word:a (paren (infix word:b op:+ number:1)) word:c))"},
		{"", "(sequence)"},
	})
}

func TestParseContainers(t *testing.T) {
	runShapeTests(t, []shapeTest{
		{"[a [b] (c)]", "(sequence (block word:a (block word:b) (paren word:c)))"},
		{"[]", "(sequence (block))"},
		{"#[a: 1 b: \"x\"]", "(sequence (map set-word:a: number:1 set-word:b: string:\"x\"))"},
		{"#[a: 1 (b)]", "(sequence (map set-word:a: number:1 error:( word:b error:)))"},
		{"#[p (1, 2)]", "(sequence (map word:p point:(1, 2)))"},
		{"#[a ; c\n 1]", "(sequence (map word:a number:1))"},
		{"a ] b", "(sequence word:a error:] word:b)"},
		{"(a ] b)", "(sequence (paren word:a error:] word:b))"},
	})
}

func TestParseInfix(t *testing.T) {
	runShapeTests(t, []shapeTest{
		{"1 + 2 * 3", "(sequence (infix (infix number:1 op:+ number:2) op:* number:3))"},
		{"x: 1 + 2", "(sequence set-word:x: (infix number:1 op:+ number:2))"},
		{"a +", "(sequence word:a word:+)"},
		{"a + [b]", "(sequence word:a word:+ (block word:b))"},
		{"(1 + 2) * 3", "(sequence (paren (infix number:1 op:+ number:2)) word:* number:3)"},
		{"a/b >= c/d", "(sequence (infix (path word:a word:b) op:>= (path word:c word:d)))"},
		{"a+b", "(sequence word:a+b)"},
	})
}

func TestParseKeywords(t *testing.T) {
	runShapeTests(t, []shapeTest{
		{"f: func [a] [a + 1]", "(sequence (function set-word:f: (block word:a) (block (infix word:a op:+ number:1))))"},
		{"f: Function [a]", "(sequence (function set-word:f: (block word:a)))"},
		{"h: ROUTINE", "(sequence (function set-word:h:))"},
		{"o/f: has [x] []", "(sequence (function (set-path word:o word:f) (block word:x) (block)))"},
		{"g: does [x]", "(sequence (does set-word:g:) (block word:x))"},
		{"o: context [a: 1]", "(sequence (context set-word:o:) (block set-word:a: number:1))"},
		{"o: Object", "(sequence (context set-word:o:))"},
		{"f: fUNC", "(sequence set-word:f: word:fUNC)"},
		{"while [a < b] [a: a + 1]", "(sequence (while (block (infix word:a op:< word:b)) (block set-word:a: (infix word:a op:+ number:1))))"},
		{"WHILE [x] []", "(sequence (while (block word:x) (block)))"},
		{"while [c][b]", "(sequence (while (block word:c) (block word:b)))"},
		{"while [x] [y", "(sequence (while (block word:x) (block word:y)))"},
		{"while [x", "(sequence word:while (block word:x))"},
		{"while [x]", "(sequence word:while (block word:x))"},
		{"loop 3 [print i]", "(sequence (loop number:3 (block word:print word:i)))"},
		{"loop n + 1 []", "(sequence (loop (infix word:n op:+ number:1) (block)))"},
		{"loop 3 x", "(sequence word:loop number:3 word:x)"},
		{"loop [x]", "(sequence word:loop (block word:x))"},
		{"#include %lib.red\nx", "(sequence (include file:%lib.red) word:x)"},
		{"[#include %a]", "(sequence (block issue:#include file:%a))"},
		{"#include x", "(sequence issue:#include word:x)"},
	})
}

func TestParseNestedControl(t *testing.T) {
	const n = 40
	for _, kw := range []string{"while [x] [", "loop 1 ["} {
		src := strings.Repeat(kw, n) + strings.Repeat("]", n)
		start := time.Now()
		tree, err := ParseString(src, ParseClassifier(classify.Default()))
		if err != nil {
			t.Fatal(err)
		}
		if d := time.Since(start); d > 2*time.Second {
			t.Errorf("%q x %d took %s", kw, n, d)
		}
		if d := tree.Depth(); d != n {
			t.Errorf("got depth %d want %d", d, n)
		}
	}
	src := strings.Repeat("while [", n) + strings.Repeat("]", n)
	start := time.Now()
	tree, err := ParseString(src, ParseClassifier(classify.Default()))
	if err != nil {
		t.Fatal(err)
	}
	if d := time.Since(start); d > 2*time.Second {
		t.Errorf("unpaired while x %d took %s", n, d)
	}
	if d := tree.Depth(); d != n {
		t.Errorf("got depth %d want %d", d, n)
	}
}

func TestParseOptionsOff(t *testing.T) {
	runShapeTests(t, []shapeTest{
		{"f: func [a]", "(sequence set-word:f: word:func (block word:a))"},
		{"while [a] [b]", "(sequence word:while (block word:a) (block word:b))"},
	}, ParseKeywords(false))
	runShapeTests(t, []shapeTest{
		{"#include %a", "(sequence issue:#include file:%a)"},
	}, ParseIncludes(false))
}

func TestParseUnterminated(t *testing.T) {
	src := "[a b c"
	tree, err := ParseString(src)
	if !errors.Is(err, token.ErrUnterminated) || !errors.Is(err, ErrParse) {
		t.Errorf("got %v", err)
	}
	if got := sexpr(tree, tree.Root); got != "(sequence (block word:a word:b word:c))" {
		t.Errorf("got %s", got)
	}
	blk := tree.Node(tree.Node(tree.Root).Children[0])
	if !blk.Unterminated || blk.End != len(src) {
		t.Errorf("got unterminated=%t end=%d", blk.Unterminated, blk.End)
	}
	if len(tree.Diags) != 1 || tree.Diags[0].Kind != ir.UnterminatedDiag || tree.Diags[0].End != len(src) {
		t.Errorf("got diags %+v", tree.Diags)
	}

	tree, _ = ParseString("[a (b ")
	if n := len(tree.Diags); n != 2 {
		t.Errorf("got %d diags want 2", n)
	}
	checkSpans(t, tree)
}

func TestParseInvalid(t *testing.T) {
	tree, err := ParseString("a \"open\n] $")
	if !errors.Is(err, token.ErrInvalidToken) || !errors.Is(err, token.ErrDocBalance) {
		t.Errorf("got %v", err)
	}
	if got := sexpr(tree, tree.Root); got != "(sequence word:a error:\" word:open error:] error:$)" {
		t.Errorf("got %s", got)
	}
	if len(tree.Diags) != 3 {
		t.Errorf("got %d diags", len(tree.Diags))
	}
}

func TestParseDepthLeaves(t *testing.T) {
	tree, err := ParseString("[a [b [c]] d] e/f")
	if err != nil {
		t.Fatal(err)
	}
	if d := tree.Depth(); d != 3 {
		t.Errorf("got depth %d want 3", d)
	}
	var got []string
	for _, id := range tree.Leaves() {
		got = append(got, tree.Text(id))
	}
	if diff := cmp.Diff([]string{"a", "b", "c", "d", "e/f"}, got); diff != "" {
		t.Errorf("leaves (-want +got):\n%s", diff)
	}
}
