package core

import (
	"math/big"

	"ddl/internal/source"
)

// Term is a core expression.
type Term interface {
	Span() source.Span
	termNode()
}

// Ann is `Term : Type`, right-nested.
type Ann struct {
	Node
	Term Term
	Type Term
}

// Error marks a term that is absent or failed to resolve. Whether a
// diagnostic accompanies it depends on how it was produced.
type Error struct {
	Node
}

// ItemRef names another item of the module (`item x`).
type ItemRef struct {
	Node
	Label Label
}

type UniverseTerm struct {
	Node
	Universe Universe
}

// EncodingTerm is one of the binary format primitives (U8, S32Be, F64Le...).
type EncodingTerm struct {
	Node
	Encoding Encoding
}

// HostTypeTerm is one of the in-memory value types (Bool, Int, F32, F64).
type HostTypeTerm struct {
	Node
	Host HostType
}

type BoolConst struct {
	Node
	Value bool
}

// BoolElim is `bool_elim Head { IfTrue, IfFalse }`.
type BoolElim struct {
	Node
	Head    Term
	IfTrue  Term
	IfFalse Term
}

// IntConst holds an arbitrary-precision integer; Value is never mutated.
type IntConst struct {
	Node
	Value *big.Int
}

type F32Const struct {
	Node
	Value float32
}

type F64Const struct {
	Node
	Value float64
}

func (*Ann) termNode()          {}
func (*Error) termNode()        {}
func (*ItemRef) termNode()      {}
func (*UniverseTerm) termNode() {}
func (*EncodingTerm) termNode() {}
func (*HostTypeTerm) termNode() {}
func (*BoolConst) termNode()    {}
func (*BoolElim) termNode()     {}
func (*IntConst) termNode()     {}
func (*F32Const) termNode()     {}
func (*F64Const) termNode()     {}

// IsError reports whether t is an *Error term.
func IsError(t Term) bool {
	_, ok := t.(*Error)
	return ok
}

// Walk calls fn for t and its subterms, parents first. Returning false
// skips the children.
func Walk(t Term, fn func(Term) bool) {
	if t == nil || !fn(t) {
		return
	}
	switch t := t.(type) {
	case *Ann:
		Walk(t.Term, fn)
		Walk(t.Type, fn)
	case *BoolElim:
		Walk(t.Head, fn)
		Walk(t.IfTrue, fn)
		Walk(t.IfFalse, fn)
	}
}

// WalkModule visits every term of every item in source order.
func WalkModule(m *Module, fn func(Term) bool) {
	for _, it := range m.Items {
		switch it := it.(type) {
		case *Alias:
			Walk(it.Term, fn)
		case *Struct:
			for i := range it.Fields {
				Walk(it.Fields[i].Term, fn)
			}
		}
	}
}
