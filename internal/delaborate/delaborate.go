// Package delaborate turns core modules back into surface syntax.
//
// The conversion is lossy in one direction only: every core term has a
// surface rendering, but resolved primitives come back as plain names and
// the parenthesisation is re-derived rather than remembered.
package delaborate

import (
	"ddl/internal/core"
	"ddl/internal/literal"
	"ddl/internal/source"
	"ddl/internal/surface"
)

// Module delaborates every item of m, keeping docs and spans.
func Module(m *core.Module) *surface.Module {
	out := &surface.Module{
		File:  m.File,
		Doc:   m.Doc,
		Items: make([]surface.Item, 0, len(m.Items)),
	}
	for _, it := range m.Items {
		out.Items = append(out.Items, Item(it))
	}
	return out
}

// Item converts one item. An alias whose body is an ascription gets the
// ascription back as its Type.
func Item(it core.Item) surface.Item {
	switch it := it.(type) {
	case *core.Alias:
		a := &surface.Alias{
			Node: surface.At(it.Span()),
			Doc:  it.Doc,
			Name: ident(it.NameSpan, string(it.Name)),
		}
		if ann, ok := it.Term.(*core.Ann); ok {
			a.Term = Term(ann.Term)
			a.Type = Term(ann.Type)
		} else {
			a.Term = Term(it.Term)
		}
		return a
	case *core.Struct:
		s := &surface.Struct{
			Node:   surface.At(it.Span()),
			Doc:    it.Doc,
			Name:   ident(it.NameSpan, string(it.Name)),
			Fields: make([]surface.TypeField, len(it.Fields)),
		}
		for i, f := range it.Fields {
			s.Fields[i] = surface.TypeField{
				Node: surface.At(f.Span()),
				Doc:  f.Doc,
				Name: ident(f.NameSpan, string(f.Name)),
				Term: Term(f.Term),
			}
		}
		return s
	}
	panic("delaborate: unknown core item")
}

// Term converts a term at top-level precedence.
func Term(t core.Term) surface.Term {
	return term(t, 0)
}

// term: ascriptions below the top of an ascription chain are parenthesised.
func term(t core.Term, prec int) surface.Term {
	sp := t.Span()
	switch t := t.(type) {
	case *core.Ann:
		ann := &surface.Ann{
			Node: surface.At(sp),
			Term: term(t.Term, prec+1),
			Type: term(t.Type, prec+1),
		}
		if prec > 0 {
			return &surface.Paren{Node: surface.At(sp), Inner: ann}
		}
		return ann
	case *core.ItemRef:
		return name(sp, string(t.Label))
	case *core.UniverseTerm, *core.EncodingTerm, *core.HostTypeTerm, *core.BoolConst:
		text, _ := core.PrimitiveName(t)
		return name(sp, text)
	case *core.IntConst:
		return number(literal.FromInt(sp, t.Value))
	case *core.F32Const:
		return number(literal.FromFloat(sp, float64(t.Value), 32))
	case *core.F64Const:
		return number(literal.FromFloat(sp, t.Value, 64))
	case *core.BoolElim:
		return &surface.If{
			Node: surface.At(sp),
			Cond: term(t.Head, 0),
			Then: term(t.IfTrue, 0),
			Else: term(t.IfFalse, 0),
		}
	case *core.Error:
		return &surface.Error{Node: surface.At(sp)}
	}
	panic("delaborate: unknown core term")
}

func ident(sp source.Span, text string) surface.Ident {
	return surface.Ident{Node: surface.At(sp), Text: text}
}

func name(sp source.Span, text string) *surface.Name {
	return &surface.Name{Node: surface.At(sp), Text: text}
}

func number(n literal.Number) *surface.NumberLiteral {
	return &surface.NumberLiteral{Node: surface.At(n.Span), Literal: n}
}
