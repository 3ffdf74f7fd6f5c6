package parse

import (
	"testing"

	"github.com/signadot/redlex/classify"
)

func FuzzParse(f *testing.F) {
	seeds := []string{
		`a`,
		`a: 1`,
		`[a [b] (c)]`,
		`#[a: 1]`,
		`f: func [x] [x * 2]`,
		`while [a < 10] [a: a + 1]`,
		`loop 3 [print "x"]`,
		`a/(b)/#[c]/d:`,
		`#include %file.red`,
		`{multi {nested} ^} line}`,
		`%%{raw}%%`,
		`[unterminated (also`,
		`] ) stray`,
		`<tag attr="v"> @ref #iss /ref a@b.c %f http://x`,
		`2020-01-01T10:00:00Z 1.2.3 10x20 $1.50 (1, 2)`,
		"#{DEAD} 2#{00001111} 64#{QQ==}",
		"\xff\x00^",
	}
	for _, s := range seeds {
		f.Add(s)
	}
	f.Fuzz(func(t *testing.T, in string) {
		tree, _ := ParseString(in, ParseClassifier(classify.Default()))
		root := tree.Node(tree.Root)
		if root.End != len(in) {
			t.Fatalf("root end %d want %d", root.End, len(in))
		}
		checkSpans(t, tree)
		var prev int
		for _, id := range tree.Leaves() {
			n := tree.Node(id)
			if n.Start < prev {
				t.Fatalf("leaves out of order at %d", n.Start)
			}
			prev = n.End
		}
	})
}
