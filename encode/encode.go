package encode

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/signadot/redlex/ir"
)

type EncState struct {
	depth, indent int
	spans         bool

	Color func(ir.Class, ColorAttr, string) string
}

// Encode writes the whole tree t to w.
func Encode(t *ir.Tree, w io.Writer, opts ...EncodeOption) error {
	if t.Root == ir.NoNode {
		return fmt.Errorf("%w: tree has no root", ErrEncoding)
	}
	return EncodeNode(t, t.Root, w, opts...)
}

// EncodeNode writes the subtree of t at id to w.
func EncodeNode(t *ir.Tree, id ir.NodeID, w io.Writer, opts ...EncodeOption) error {
	es := &EncState{
		indent: 2,
	}
	for _, opt := range opts {
		opt(es)
	}
	if id < 0 || int(id) >= len(t.Nodes) {
		return fmt.Errorf("%w: no node %d", ErrEncoding, id)
	}
	return encode(t, id, w, es)
}

func writeString(w io.Writer, s string) error {
	_, err := w.Write([]byte(s))
	return err
}

func applyColor(es *EncState, c ir.Class, attr ColorAttr, v string) string {
	if es.Color == nil {
		return v
	}
	return es.Color(c, attr, v)
}

// leafText renders the source text of a leaf on one line.
func leafText(s string) string {
	if strings.ContainsAny(s, "\n\r\t`") || !strconv.CanBackquote(s) {
		return strconv.Quote(s)
	}
	return s
}

func encode(t *ir.Tree, id ir.NodeID, w io.Writer, es *EncState) error {
	n := t.Node(id)
	class := ir.ClassOf(n.Type)
	var b strings.Builder
	b.WriteString(strings.Repeat(" ", es.indent*es.depth))
	b.WriteString(applyColor(es, class, TypeColor, n.Type.String()))
	if es.spans {
		b.WriteString(" " + applyColor(es, class, SpanColor, fmt.Sprintf("%d-%d", n.Start, n.End)))
	}
	if ir.IsLeaf(n.Type) {
		b.WriteString(" " + applyColor(es, class, TextColor, leafText(t.Text(id))))
	}
	if n.Unterminated {
		b.WriteString(" " + applyColor(es, ir.ErrorClass, MarkColor, "!unterminated"))
	}
	b.WriteByte('\n')
	if err := writeString(w, b.String()); err != nil {
		return err
	}
	es.depth++
	defer func() { es.depth-- }()
	for _, k := range n.Children {
		if err := encode(t, k, w, es); err != nil {
			return err
		}
	}
	return nil
}
