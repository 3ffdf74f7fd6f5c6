package ir

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"
)

// Path returns the child index path from the root to id, such as
// "$[2][0]".
func (t *Tree) Path(id NodeID) string {
	p := t.Nodes[id].Parent
	if p == NoNode {
		return "$"
	}
	for i, k := range t.Nodes[p].Children {
		if k == id {
			return t.Path(p) + "[" + strconv.Itoa(i) + "]"
		}
	}
	panic("child not in parent")
}

type Path struct {
	IndexAll bool
	Index    *int
	Next     *Path
}

func (p *Path) String() string {
	buf := bytes.NewBuffer([]byte{'$'})
	for x := p; x != nil; x = x.Next {
		if x.IndexAll {
			buf.WriteString("[*]")
			continue
		}
		if x.Index != nil {
			fmt.Fprintf(buf, "[%d]", *x.Index)
		}
	}
	return buf.String()
}

func ParsePath(p string) (*Path, error) {
	if len(p) == 0 || p[0] != '$' {
		return nil, fmt.Errorf("%w: %q should start with '$'", ErrPath, p)
	}
	root := &Path{}
	if len(p) == 1 {
		return root, nil
	}
	if err := parseFrag(p[1:], root); err != nil {
		return nil, fmt.Errorf("%w: %q: %w", ErrPath, p, err)
	}
	return root, nil
}

func parseFrag(frag string, parent *Path) error {
	if len(frag) == 0 {
		return nil
	}
	if frag[0] != '[' {
		return fmt.Errorf("expected '['")
	}
	i := strings.IndexByte(frag[1:], ']')
	if i == -1 {
		return fmt.Errorf("expected '[' <index> ']'")
	}
	index, all, err := parseIndex(frag[1 : i+1])
	if err != nil {
		return err
	}
	parent.IndexAll = all
	if !all {
		parent.Index = &index
	}
	if len(frag) == i+2 {
		return nil
	}
	next := &Path{}
	if err := parseFrag(frag[i+2:], next); err != nil {
		return err
	}
	parent.Next = next
	return nil
}

func parseIndex(is string) (index int, all bool, err error) {
	if len(is) == 1 && is[0] == '*' {
		return 0, true, nil
	}
	u64, err := strconv.ParseUint(is, 10, 31)
	if err != nil {
		return 0, false, err
	}
	return int(u64), false, nil
}

// GetPath returns the node at path p below the root.
func (t *Tree) GetPath(p string) (NodeID, error) {
	ids, err := t.ListPath(nil, p)
	if err != nil {
		return NoNode, err
	}
	if len(ids) != 1 {
		return NoNode, fmt.Errorf("%w: %q matches %d nodes", ErrPath, p, len(ids))
	}
	return ids[0], nil
}

// ListPath appends to dst the nodes matching p, which may use [*] to
// select every child.
func (t *Tree) ListPath(dst []NodeID, p string) ([]NodeID, error) {
	tp, err := ParsePath(p)
	if err != nil {
		return nil, err
	}
	if t.Root == NoNode {
		return nil, ErrNoSuchNode
	}
	return t.listPath(dst, t.Root, tp, p)
}

func (t *Tree) listPath(dst []NodeID, id NodeID, tp *Path, p string) ([]NodeID, error) {
	if tp == nil || (!tp.IndexAll && tp.Index == nil) {
		return append(dst, id), nil
	}
	kids := t.Nodes[id].Children
	if tp.IndexAll {
		var err error
		for _, k := range kids {
			dst, err = t.listPath(dst, k, tp.Next, p)
			if err != nil {
				return nil, err
			}
		}
		return dst, nil
	}
	index := *tp.Index
	if index >= len(kids) {
		return nil, fmt.Errorf("%w: %q: index %d out of bounds at %s (len %d)", ErrNoSuchNode, p, index, t.Path(id), len(kids))
	}
	return t.listPath(dst, kids[index], tp.Next, p)
}
