package ir

import (
	"errors"

	"github.com/signadot/redlex/token"
)

// NodeID indexes Tree.Nodes.
type NodeID int32

const NoNode NodeID = -1

type Node struct {
	Type         token.Type
	Start, End   int
	Parent       NodeID
	Children     []NodeID
	Unterminated bool
}

type DiagKind int

const (
	// InvalidDiag marks input no scanner recognized, or a closer with
	// no matching opener.
	InvalidDiag DiagKind = iota
	// UnterminatedDiag marks a container left open at end of input.
	UnterminatedDiag
)

func (k DiagKind) String() string {
	switch k {
	case InvalidDiag:
		return "invalid"
	case UnterminatedDiag:
		return "unterminated"
	}
	return "<unknown diag>"
}

// Diag records a recovered error.  For unterminated containers Start is
// the opener and End the end of input.
type Diag struct {
	Kind       DiagKind
	Type       token.Type
	Start, End int
}

// Tree is an arena of nodes over a source buffer.
type Tree struct {
	Src   []byte
	Nodes []Node
	Root  NodeID
	Diags []Diag

	doc *token.PosDoc
}

func NewTree(src []byte) *Tree {
	return &Tree{Src: src, Root: NoNode}
}

func (t *Tree) Add(n Node) NodeID {
	n.Parent = NoNode
	t.Nodes = append(t.Nodes, n)
	return NodeID(len(t.Nodes) - 1)
}

func (t *Tree) SetChildren(id NodeID, kids []NodeID) {
	for _, k := range kids {
		t.Nodes[k].Parent = id
	}
	t.Nodes[id].Children = kids
}

func (t *Tree) Node(id NodeID) *Node {
	return &t.Nodes[id]
}

func (t *Tree) Bytes(id NodeID) []byte {
	n := &t.Nodes[id]
	return t.Src[n.Start:n.End]
}

func (t *Tree) Text(id NodeID) string {
	return string(t.Bytes(id))
}

func (t *Tree) Doc() *token.PosDoc {
	if t.doc == nil {
		t.doc = token.NewPosDoc(t.Src)
	}
	return t.doc
}

func (t *Tree) Pos(off int) *token.Pos {
	return t.Doc().Pos(off)
}

func (t *Tree) AddDiag(d Diag) {
	t.Diags = append(t.Diags, d)
}

// Walk visits the subtree at id in document order.  Returning false
// from f skips the children of the visited node.
func (t *Tree) Walk(id NodeID, f func(id NodeID, depth int) bool) {
	t.walk(id, 0, f)
}

func (t *Tree) walk(id NodeID, depth int, f func(NodeID, int) bool) {
	if !f(id, depth) {
		return
	}
	for _, k := range t.Nodes[id].Children {
		t.walk(k, depth+1, f)
	}
}

// Depth returns the maximum container nesting below the root.
func (t *Tree) Depth() int {
	if t.Root == NoNode {
		return 0
	}
	return t.depth(t.Root)
}

func (t *Tree) depth(id NodeID) int {
	d := 0
	for _, k := range t.Nodes[id].Children {
		d = max(d, t.depth(k))
	}
	if id != t.Root && t.Nodes[id].Type.IsContainer() {
		d++
	}
	return d
}

// Leaves returns the literal, word and path nodes of the tree in
// document order.  A path counts once; its elements are not visited.
func (t *Tree) Leaves() []NodeID {
	var res []NodeID
	if t.Root == NoNode {
		return nil
	}
	t.Walk(t.Root, func(id NodeID, _ int) bool {
		typ := t.Nodes[id].Type
		if typ.IsPath() || len(t.Nodes[id].Children) == 0 && IsLeaf(typ) {
			res = append(res, id)
			return false
		}
		return true
	})
	return res
}

func (t *Tree) DiagErr(d *Diag) error {
	switch d.Kind {
	case UnterminatedDiag:
		return &token.ImbalancedErr{Open: &token.Token{Type: d.Type, Start: d.Start, End: d.End}, Doc: t.Doc()}
	default:
		if d.Type == token.TRBracket || d.Type == token.TRParen {
			return &token.ImbalancedErr{Close: &token.Token{Type: d.Type, Start: d.Start, End: d.End}, Doc: t.Doc()}
		}
		return token.NewScanErr(token.ErrInvalidToken, t.Pos(d.Start))
	}
}

// Err joins the errors of all diags, or returns nil if there are none.
func (t *Tree) Err() error {
	var errs []error
	for i := range t.Diags {
		errs = append(errs, t.DiagErr(&t.Diags[i]))
	}
	return errors.Join(errs...)
}
