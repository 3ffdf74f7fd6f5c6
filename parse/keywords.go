package parse

import (
	"strings"

	"github.com/signadot/redlex/ir"
	"github.com/signadot/redlex/token"
)

// spellings accepts the lower, title and upper case forms of words.
func spellings(words ...string) map[string]bool {
	res := make(map[string]bool, 3*len(words))
	for _, w := range words {
		res[w] = true
		res[strings.ToUpper(w[:1])+w[1:]] = true
		res[strings.ToUpper(w)] = true
	}
	return res
}

var (
	funcWords    = spellings("func", "function", "has", "routine")
	doesWords    = spellings("does")
	contextWords = spellings("context", "object")
)

// definition parses the constructs introduced by a set-word or set-path
// followed by a defining keyword.  A function takes an optional spec
// block and an optional body block.
func (p *parser) definition(name ir.NodeID) (ir.NodeID, bool) {
	kw := p.peek(false)
	if kw.Type != token.TWord {
		return ir.NoNode, false
	}
	var (
		kind   token.Type
		blocks int
	)
	switch w := kw.Text(p.d); {
	case funcWords[w]:
		kind, blocks = token.TFunction, 2
	case doesWords[w]:
		kind = token.TDoes
	case contextWords[w]:
		kind = token.TContext
	default:
		return ir.NoNode, false
	}
	p.take(kw)
	kids := []ir.NodeID{name}
	end := kw.End
	for range blocks {
		next := p.peek(false)
		if next.Type != token.TLBracket {
			break
		}
		b := p.group(next.Start, token.TBlock)
		kids = append(kids, b)
		end = p.t.Nodes[b].End
	}
	id := p.t.Add(ir.Node{Type: kind, Start: p.t.Nodes[name].Start, End: end})
	p.t.SetChildren(id, kids)
	return id, true
}

// control parses "while <block> <block>" and "loop <expr> <block>".  On
// any mismatch the keyword is left to parse as a plain word.  The shape
// is checked on tokens alone before any node is built.
func (p *parser) control(kw token.Token) (ir.NodeID, bool) {
	var kind token.Type
	switch strings.ToLower(kw.Text(p.d)) {
	case "while":
		kind = token.TWhile
	case "loop":
		kind = token.TLoop
	default:
		return ir.NoNode, false
	}
	i := kw.End
	if kind == token.TLoop {
		count := p.s.Next(p.s.SkipSpace(i), false)
		if !count.Type.IsOperand() {
			return ir.NoNode, false
		}
		i = p.skipInfix(count)
	} else {
		cond := p.s.Next(p.s.SkipSpace(i), false)
		if cond.Type != token.TLBracket {
			return ir.NoNode, false
		}
		if i = p.s.SkipGroup(cond.Start, token.TBlock); i == 0 {
			return ir.NoNode, false
		}
	}
	if p.s.Next(p.s.SkipSpace(i), false).Type != token.TLBracket {
		return ir.NoNode, false
	}
	p.take(kw)
	var kids []ir.NodeID
	if kind == token.TLoop {
		count := p.peek(false)
		p.take(count)
		kids = append(kids, p.infix(p.token(count)))
	}
	for len(kids) < 2 {
		kids = append(kids, p.group(p.peek(false).Start, token.TBlock))
	}
	id := p.t.Add(ir.Node{Type: kind, Start: kw.Start, End: p.t.Nodes[kids[1]].End})
	p.t.SetChildren(id, kids)
	return id, true
}

// skipInfix returns the end of the infix chain starting with left,
// accepting what infix would fold.
func (p *parser) skipInfix(left token.Token) int {
	end := left.End
	for {
		op := p.s.Next(p.s.SkipSpace(end), true)
		if op.Type != token.TOp {
			return end
		}
		right := p.s.Next(p.s.SkipSpace(op.End), false)
		if !right.Type.IsOperand() {
			return end
		}
		end = right.End
	}
}

// include parses a top level "#include %file" directive.
func (p *parser) include(tok token.Token) (ir.NodeID, bool) {
	i := p.s.SkipSpace(tok.End)
	f := p.s.Next(i, false)
	if f.Type != token.TFile {
		return ir.NoNode, false
	}
	p.take(f)
	fid := p.leaf(f)
	id := p.t.Add(ir.Node{Type: token.TInclude, Start: tok.Start, End: f.End})
	p.t.SetChildren(id, []ir.NodeID{fid})
	return id, true
}
