package surface

import (
	"ddl/internal/literal"
	"ddl/internal/source"
)

// Term is a surface expression. Concrete types: *Ann, *If, *Paren, *Name,
// *NumberLiteral, *StructType and *Error.
type Term interface {
	Span() source.Span
	termNode()
}

// Ann is a type ascription `Term : Type`; it nests to the right.
type Ann struct {
	Node
	Term Term
	Type Term
}

// If is `if Cond { Then } else { Else }`.
type If struct {
	Node
	Cond Term
	Then Term
	Else Term
}

// Paren keeps the parentheses: Loc covers them, Inner.Span() does not.
type Paren struct {
	Node
	Inner Term
}

func (p *Paren) InnerSpan() source.Span { return p.Inner.Span() }

// Name is an unresolved identifier.
type Name struct {
	Node
	Text string
}

// NumberLiteral is an unconverted numeric literal.
type NumberLiteral struct {
	Node
	Literal literal.Number
}

// StructType is an anonymous record type `struct { fields }`.
type StructType struct {
	Node
	Fields []TypeField
}

// Error stands for a term that could not be expressed; only produced when
// converting core trees back to surface form.
type Error struct {
	Node
}

func (*Ann) termNode()           {}
func (*If) termNode()            {}
func (*Paren) termNode()         {}
func (*Name) termNode()          {}
func (*NumberLiteral) termNode() {}
func (*StructType) termNode()    {}
func (*Error) termNode()         {}
