package parse

import (
	"fmt"

	"github.com/signadot/redlex/debug"
	"github.com/signadot/redlex/ir"
	"github.com/signadot/redlex/token"
)

// Parse builds the tree of d.  The tree is always complete: the returned
// error, if any, joins the diagnostics recorded in the tree.
func Parse(d []byte, opts ...ParseOption) (*ir.Tree, error) {
	pOpts := &parseOpts{keywords: true, includes: true}
	for _, f := range opts {
		f(pOpts)
	}
	p := &parser{
		d:    d,
		s:    token.NewScanner(d, pOpts.ScanOpts()...),
		t:    ir.NewTree(d),
		opts: pOpts,
	}
	root := p.t.Add(ir.Node{Type: token.TSequence, Start: 0, End: len(d)})
	p.t.Root = root
	kids, _ := p.seq(token.TSequence)
	p.t.SetChildren(root, kids)
	if err := p.t.Err(); err != nil {
		return p.t, fmt.Errorf("%w: %w", ErrParse, err)
	}
	return p.t, nil
}

func ParseString(s string, opts ...ParseOption) (*ir.Tree, error) {
	return Parse([]byte(s), opts...)
}

type parser struct {
	d     []byte
	s     *token.Scanner
	t     *ir.Tree
	i     int
	depth int
	opts  *parseOpts
}

// peek scans the next token without consuming it.
func (p *parser) peek(afterOperand bool) token.Token {
	i := p.s.SkipSpace(p.i)
	return p.s.Next(i, afterOperand)
}

func (p *parser) take(tok token.Token) {
	p.i = tok.End
}

func closes(kind, t token.Type) bool {
	switch kind {
	case token.TBlock:
		return t == token.TRBracket
	case token.TParen:
		return t == token.TRParen
	}
	return false
}

// seq parses expressions up to the closer of kind, reporting whether
// the closer was found.  A sequence is closed by the end of input.
func (p *parser) seq(kind token.Type) ([]ir.NodeID, bool) {
	var kids []ir.NodeID
	for {
		tok := p.peek(false)
		switch {
		case tok.Type == token.TEOF:
			return kids, kind == token.TSequence
		case closes(kind, tok.Type):
			p.take(tok)
			return kids, true
		case tok.Type == token.TRBracket, tok.Type == token.TRParen:
			p.take(tok)
			kids = append(kids, p.invalid(tok))
			continue
		}
		kids = append(kids, p.expr())
	}
}

func (p *parser) expr() ir.NodeID {
	left, operand := p.operand()
	if !operand {
		return left
	}
	return p.infix(left)
}

// infix folds "left op right" chains to the left.  An operator with no
// operand after it is left unconsumed and rescans as a word.
func (p *parser) infix(left ir.NodeID) ir.NodeID {
	for {
		op := p.peek(true)
		if op.Type != token.TOp {
			return left
		}
		save := p.i
		p.take(op)
		right := p.peek(false)
		if !right.Type.IsOperand() {
			p.i = save
			return left
		}
		p.take(right)
		opID := p.leaf(op)
		rightID := p.token(right)
		n := p.t.Add(ir.Node{Type: token.TInfix, Start: p.t.Nodes[left].Start, End: right.End})
		p.t.SetChildren(n, []ir.NodeID{left, opID, rightID})
		if debug.Build() {
			debug.Logf("infix %q\n", p.t.Text(n))
		}
		left = n
	}
}

// operand parses one expression start, reporting whether the result may
// take an infix operator.
func (p *parser) operand() (ir.NodeID, bool) {
	tok := p.peek(false)
	switch tok.Type {
	case token.TLBracket:
		return p.group(tok.Start, token.TBlock), false
	case token.TLParen:
		return p.group(tok.Start, token.TParen), false
	case token.TMapOpen:
		return p.group(tok.Start, token.TMap), false
	case token.TSetWord, token.TSetPath:
		p.take(tok)
		id := p.token(tok)
		if p.opts.keywords {
			if n, ok := p.definition(id); ok {
				return n, false
			}
		}
		return id, false
	case token.TWord:
		if p.opts.keywords {
			if n, ok := p.control(tok); ok {
				return n, false
			}
		}
	case token.TIssue:
		if p.opts.includes && p.depth == 0 && token.IsInclude(p.d, &tok) {
			if n, ok := p.include(tok); ok {
				return n, false
			}
		}
	}
	p.take(tok)
	return p.token(tok), tok.Type.IsOperand()
}

func openerLen(kind token.Type) int {
	if kind == token.TMap {
		return 2
	}
	return 1
}

// group parses the container of kind opened at start.
func (p *parser) group(start int, kind token.Type) ir.NodeID {
	id := p.t.Add(ir.Node{Type: kind, Start: start})
	if debug.Build() {
		debug.Logf("open %s at %d\n", kind, start)
	}
	p.i = start + openerLen(kind)
	p.depth++
	var (
		kids   []ir.NodeID
		closed bool
	)
	if kind == token.TMap {
		kids, closed = p.mapBody()
	} else {
		kids, closed = p.seq(kind)
	}
	p.depth--
	p.t.SetChildren(id, kids)
	n := p.t.Node(id)
	n.End = p.i
	if !closed {
		n.End = len(p.d)
		n.Unterminated = true
		p.t.AddDiag(ir.Diag{Kind: ir.UnterminatedDiag, Type: kind, Start: start, End: len(p.d)})
	}
	return id
}

// mapBody collects flat tokens up to the closing ']'.
func (p *parser) mapBody() ([]ir.NodeID, bool) {
	var kids []ir.NodeID
	for {
		tok := p.peek(false)
		p.take(tok)
		switch {
		case tok.Type == token.TEOF:
			return kids, false
		case tok.Type == token.TRBracket:
			return kids, true
		case tok.Type.IsSimple():
			kids = append(kids, p.token(tok))
		default:
			kids = append(kids, p.invalid(tok))
		}
	}
}

func (p *parser) leaf(tok token.Token) ir.NodeID {
	return p.t.Add(ir.Node{Type: tok.Type, Start: tok.Start, End: tok.End})
}

func (p *parser) invalid(tok token.Token) ir.NodeID {
	p.t.AddDiag(ir.Diag{Kind: ir.InvalidDiag, Type: tok.Type, Start: tok.Start, End: tok.End})
	return p.t.Add(ir.Node{Type: token.TError, Start: tok.Start, End: tok.End})
}

// token converts a scanned token into a node.  Path elements become
// children, paren and map elements being parsed in place.
func (p *parser) token(tok token.Token) ir.NodeID {
	if tok.Type == token.TError {
		return p.invalid(tok)
	}
	id := p.leaf(tok)
	if len(tok.Parts) == 0 {
		return id
	}
	kids := make([]ir.NodeID, 0, len(tok.Parts))
	for _, part := range tok.Parts {
		switch part.Type {
		case token.TParen, token.TMap:
			save := p.i
			kids = append(kids, p.group(part.Start, part.Type))
			p.i = save
		default:
			kids = append(kids, p.token(part))
		}
	}
	p.t.SetChildren(id, kids)
	return id
}
