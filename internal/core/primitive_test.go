package core

import (
	"testing"

	"ddl/internal/source"
)

func TestVocabularyIsComplete(t *testing.T) {
	names := PrimitiveNames()
	if len(names) != 27 {
		t.Fatalf("vocabulary has %d names, want 27: %v", len(names), names)
	}
	for _, n := range names {
		sp := source.Span{Start: 3, End: 3 + uint32(len(n))}
		term, ok := LookupPrimitive(n, sp)
		if !ok {
			t.Fatalf("LookupPrimitive(%q) failed", n)
		}
		if term.Span() != sp {
			t.Errorf("%s: span %v, want %v", n, term.Span(), sp)
		}
		back, ok := PrimitiveName(term)
		if !ok || back != n {
			t.Errorf("PrimitiveName(%T) = %q, want %q", term, back, n)
		}
	}
}

func TestLookupPrimitiveKinds(t *testing.T) {
	tests := []struct {
		name  string
		check func(Term) bool
	}{
		{"Format", func(t Term) bool { u, ok := t.(*UniverseTerm); return ok && u.Universe == UniverseFormat }},
		{"Kind", func(t Term) bool { u, ok := t.(*UniverseTerm); return ok && u.Universe == UniverseKind }},
		{"S32Be", func(t Term) bool { e, ok := t.(*EncodingTerm); return ok && e.Encoding == EncS32Be }},
		{"Int", func(t Term) bool { h, ok := t.(*HostTypeTerm); return ok && h.Host == HostInt }},
		{"false", func(t Term) bool { b, ok := t.(*BoolConst); return ok && !b.Value }},
		{"true", func(t Term) bool { b, ok := t.(*BoolConst); return ok && b.Value }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			term, ok := LookupPrimitive(tt.name, source.Span{})
			if !ok || !tt.check(term) {
				t.Fatalf("LookupPrimitive(%q) = %#v", tt.name, term)
			}
		})
	}
	for _, n := range []string{"Bogus", "u8", "U16", "bool", "Struct", ""} {
		if IsPrimitive(n) {
			t.Errorf("%q must not be a primitive", n)
		}
	}
}

func TestEncodingProperties(t *testing.T) {
	tests := []struct {
		enc    Encoding
		width  int
		signed bool
		order  ByteOrder
		host   HostType
	}{
		{EncU8, 1, false, OrderNone, HostInt},
		{EncS8, 1, true, OrderNone, HostInt},
		{EncU16Be, 2, false, OrderBig, HostInt},
		{EncS32Le, 4, true, OrderLittle, HostInt},
		{EncU64Le, 8, false, OrderLittle, HostInt},
		{EncF32Be, 4, false, OrderBig, HostF32},
		{EncF64Le, 8, false, OrderLittle, HostF64},
	}
	for _, tt := range tests {
		t.Run(tt.enc.String(), func(t *testing.T) {
			if tt.enc.Width() != tt.width || tt.enc.Signed() != tt.signed || tt.enc.Order() != tt.order || tt.enc.Host() != tt.host {
				t.Fatalf("width=%d signed=%v order=%d host=%v", tt.enc.Width(), tt.enc.Signed(), tt.enc.Order(), tt.enc.Host())
			}
		})
	}
	if Encoding(200).String() != "Encoding(200)" || Universe(9).String() != "Universe(9)" {
		t.Error("out-of-range enum values should render numerically")
	}
}

func TestNewLabel(t *testing.T) {
	for _, s := range []string{"x", "_", "Point3", "snake_case", "данные"} {
		if _, err := NewLabel(s); err != nil {
			t.Errorf("NewLabel(%q): %v", s, err)
		}
	}
	for _, s := range []string{"", "3d", "a-b", "a b", "\xff"} {
		if _, err := NewLabel(s); err == nil {
			t.Errorf("NewLabel(%q) should fail", s)
		}
	}
	if MustLabel("a") != Label("a") {
		t.Error("labels compare structurally")
	}
}
