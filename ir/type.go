package ir

import (
	"github.com/signadot/redlex/token"
)

// Class groups node types for presentation.
type Class int

const (
	LiteralClass Class = iota
	WordClass
	PathClass
	ContainerClass
	CompoundClass
	OperatorClass
	ErrorClass
)

func (c Class) String() string {
	s, ok := map[Class]string{
		LiteralClass:   "Literal",
		WordClass:      "Word",
		PathClass:      "Path",
		ContainerClass: "Container",
		CompoundClass:  "Compound",
		OperatorClass:  "Operator",
		ErrorClass:     "Error",
	}[c]
	if ok {
		return s
	}
	return "<unknown class>"
}

func Classes() []Class {
	return []Class{
		LiteralClass,
		WordClass,
		PathClass,
		ContainerClass,
		CompoundClass,
		OperatorClass,
		ErrorClass,
	}
}

func ClassOf(t token.Type) Class {
	switch {
	case t.IsLiteral():
		return LiteralClass
	case t.IsWord():
		return WordClass
	case t.IsPath():
		return PathClass
	case t.IsContainer(), t.IsPunct():
		return ContainerClass
	case t.IsCompound():
		return CompoundClass
	case t == token.TOp:
		return OperatorClass
	}
	return ErrorClass
}

// IsLeaf reports whether nodes of type t never have children.
func IsLeaf(t token.Type) bool {
	return !t.IsContainer() && !t.IsCompound() && !t.IsPath()
}
