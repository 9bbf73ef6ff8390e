package testkit

import (
	"fmt"

	"fortio.org/safecast"

	"ddl/internal/core"
	"ddl/internal/source"
	"ddl/internal/surface"
)

// CheckSurfaceSpans runs the span invariants on a parsed surface module:
// 1) every item span is non-empty, points at sf and lies within its content
// 2) items appear in source order without overlapping
// 3) fields lie inside their struct, terms inside their item and children
// inside their parent term
func CheckSurfaceSpans(m *surface.Module, sf *source.File) error {
	if m == nil || sf == nil {
		return fmt.Errorf("nil module or file")
	}
	c, err := newChecker(sf)
	if err != nil {
		return err
	}
	for _, it := range m.Items {
		sp := it.Span()
		if err := c.item(sp); err != nil {
			return err
		}
		if err := c.within("item name", it.ItemName().Span(), sp); err != nil {
			return err
		}
		switch it := it.(type) {
		case *surface.Alias:
			if it.Type != nil {
				if err := c.surfaceTerm(it.Type, sp); err != nil {
					return err
				}
			}
			if err := c.surfaceTerm(it.Term, sp); err != nil {
				return err
			}
		case *surface.Struct:
			if err := c.surfaceFields(it.Fields, sp); err != nil {
				return err
			}
		}
	}
	return nil
}

// CheckCoreSpans is CheckSurfaceSpans for core modules.
func CheckCoreSpans(m *core.Module, sf *source.File) error {
	if m == nil || sf == nil {
		return fmt.Errorf("nil module or file")
	}
	c, err := newChecker(sf)
	if err != nil {
		return err
	}
	for _, it := range m.Items {
		sp := it.Span()
		if err := c.item(sp); err != nil {
			return err
		}
		switch it := it.(type) {
		case *core.Alias:
			if err := c.within("alias name", it.NameSpan, sp); err != nil {
				return err
			}
			if err := c.coreTerm(it.Term, sp); err != nil {
				return err
			}
		case *core.Struct:
			if err := c.within("struct name", it.NameSpan, sp); err != nil {
				return err
			}
			for _, f := range it.Fields {
				if err := c.within("field", f.Span(), sp); err != nil {
					return err
				}
				if err := c.within("field name", f.NameSpan, f.Span()); err != nil {
					return err
				}
				if err := c.coreTerm(f.Term, f.Span()); err != nil {
					return err
				}
			}
		}
	}
	return nil
}

type checker struct {
	file    source.FileID
	size    uint32
	prevEnd uint32
}

func newChecker(sf *source.File) (*checker, error) {
	size, err := safecast.Conv[uint32](len(sf.Content))
	if err != nil {
		return nil, fmt.Errorf("len content overflow: %w", err)
	}
	return &checker{file: sf.ID, size: size}, nil
}

func (c *checker) item(sp source.Span) error {
	if sp.End <= sp.Start {
		return fmt.Errorf("empty item span: %v", sp)
	}
	if sp.File != c.file {
		return fmt.Errorf("item span file mismatch: got=%d want=%d", sp.File, c.file)
	}
	if sp.End > c.size {
		return fmt.Errorf("item span end beyond content: %d > %d", sp.End, c.size)
	}
	if sp.Start < c.prevEnd {
		return fmt.Errorf("item span %v overlaps or precedes previous item ending at %d", sp, c.prevEnd)
	}
	c.prevEnd = sp.End
	return nil
}

func (c *checker) within(what string, inner, outer source.Span) error {
	if inner.End <= inner.Start {
		return fmt.Errorf("empty %s span: %v", what, inner)
	}
	if inner.File != c.file {
		return fmt.Errorf("%s span file mismatch: got=%d want=%d", what, inner.File, c.file)
	}
	if !outer.Contains(inner) {
		return fmt.Errorf("%s span %v is outside %v", what, inner, outer)
	}
	return nil
}

func (c *checker) surfaceFields(fields []surface.TypeField, outer source.Span) error {
	for _, f := range fields {
		if err := c.within("field", f.Span(), outer); err != nil {
			return err
		}
		if err := c.within("field name", f.Name.Span(), f.Span()); err != nil {
			return err
		}
		if err := c.surfaceTerm(f.Term, f.Span()); err != nil {
			return err
		}
	}
	return nil
}

func (c *checker) surfaceTerm(t surface.Term, outer source.Span) error {
	sp := t.Span()
	if err := c.within(fmt.Sprintf("%T", t), sp, outer); err != nil {
		return err
	}
	switch t := t.(type) {
	case *surface.Ann:
		return c.surfaceChildren(sp, t.Term, t.Type)
	case *surface.If:
		return c.surfaceChildren(sp, t.Cond, t.Then, t.Else)
	case *surface.Paren:
		if t.InnerSpan() == sp {
			return fmt.Errorf("paren span %v does not include its parentheses", sp)
		}
		return c.surfaceChildren(sp, t.Inner)
	case *surface.StructType:
		return c.surfaceFields(t.Fields, sp)
	}
	return nil
}

func (c *checker) surfaceChildren(outer source.Span, kids ...surface.Term) error {
	for _, k := range kids {
		if err := c.surfaceTerm(k, outer); err != nil {
			return err
		}
	}
	return nil
}

func (c *checker) coreTerm(t core.Term, outer source.Span) error {
	sp := t.Span()
	if err := c.within(fmt.Sprintf("%T", t), sp, outer); err != nil {
		return err
	}
	var kids []core.Term
	switch t := t.(type) {
	case *core.Ann:
		kids = []core.Term{t.Term, t.Type}
	case *core.BoolElim:
		kids = []core.Term{t.Head, t.IfTrue, t.IfFalse}
	}
	for _, k := range kids {
		if err := c.coreTerm(k, sp); err != nil {
			return err
		}
	}
	return nil
}
