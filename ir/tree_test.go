package ir

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/signadot/redlex/token"
)

// buildTree builds the tree of "a [b [c]]" by hand.
func buildTree() *Tree {
	t := NewTree([]byte("a [b [c]]"))
	root := t.Add(Node{Type: token.TSequence, Start: 0, End: 9})
	a := t.Add(Node{Type: token.TWord, Start: 0, End: 1})
	outer := t.Add(Node{Type: token.TBlock, Start: 2, End: 9})
	b := t.Add(Node{Type: token.TWord, Start: 3, End: 4})
	inner := t.Add(Node{Type: token.TBlock, Start: 5, End: 8})
	c := t.Add(Node{Type: token.TWord, Start: 6, End: 7})
	t.SetChildren(inner, []NodeID{c})
	t.SetChildren(outer, []NodeID{b, inner})
	t.SetChildren(root, []NodeID{a, outer})
	t.Root = root
	return t
}

func TestTreePath(t *testing.T) {
	tr := buildTree()
	id, err := tr.GetPath("$[1][1][0]")
	if err != nil {
		t.Fatal(err)
	}
	if got := tr.Text(id); got != "c" {
		t.Errorf("got %q want c", got)
	}
	if got := tr.Path(id); got != "$[1][1][0]" {
		t.Errorf("got %q", got)
	}
	if _, err := tr.GetPath("$[3]"); !errors.Is(err, ErrNoSuchNode) {
		t.Errorf("got %v want ErrNoSuchNode", err)
	}
	if _, err := tr.GetPath("[0]"); !errors.Is(err, ErrPath) {
		t.Errorf("got %v want ErrPath", err)
	}
	ids, err := tr.ListPath(nil, "$[1][*]")
	if err != nil {
		t.Fatal(err)
	}
	var got []string
	for _, id := range ids {
		got = append(got, tr.Text(id))
	}
	if diff := cmp.Diff([]string{"b", "[c]"}, got); diff != "" {
		t.Errorf("list (-want +got):\n%s", diff)
	}
}

func TestParsePathString(t *testing.T) {
	for _, p := range []string{"$", "$[0]", "$[1][*][2]"} {
		pp, err := ParsePath(p)
		if err != nil {
			t.Error(err)
			continue
		}
		if pp.String() != p {
			t.Errorf("got %q want %q", pp.String(), p)
		}
	}
}

func TestTreeDepthLeaves(t *testing.T) {
	tr := buildTree()
	if d := tr.Depth(); d != 2 {
		t.Errorf("got depth %d want 2", d)
	}
	var got []string
	for _, id := range tr.Leaves() {
		got = append(got, tr.Text(id))
	}
	if diff := cmp.Diff([]string{"a", "b", "c"}, got); diff != "" {
		t.Errorf("leaves (-want +got):\n%s", diff)
	}
}

func TestTreeErr(t *testing.T) {
	tr := NewTree([]byte("] $ [a"))
	if tr.Err() != nil {
		t.Fatal("expected no error")
	}
	tr.AddDiag(Diag{Kind: InvalidDiag, Type: token.TRBracket, Start: 0, End: 1})
	tr.AddDiag(Diag{Kind: InvalidDiag, Type: token.TError, Start: 2, End: 3})
	tr.AddDiag(Diag{Kind: UnterminatedDiag, Type: token.TBlock, Start: 4, End: 6})
	err := tr.Err()
	for _, want := range []error{token.ErrDocBalance, token.ErrInvalidToken, token.ErrUnterminated} {
		if !errors.Is(err, want) {
			t.Errorf("expected %v in %v", want, err)
		}
	}
}
