package parser

import (
	"errors"
	"testing"

	"ddl/internal/diag"
	"ddl/internal/surface"
	"ddl/internal/token"
)

func parseSurface(t *testing.T, src string) (*surface.Module, *diag.Bag) {
	t.Helper()
	file, toks := tokenize(t, src)
	bag := diag.NewBag(16)
	m, err := ParseSurfaceModule(file, toks, diag.BagReporter{Bag: bag})
	if err != nil {
		t.Fatalf("ParseSurfaceModule(%q): %v", src, err)
	}
	if bag.Len() != 0 {
		t.Fatalf("surface parser must not report, got %s", diagnosticsSummary(bag))
	}
	return m, bag
}

func TestSurfaceAreaScenario(t *testing.T) {
	src := "Area : Format = struct { width : U32Le, height : U32Le };"
	m, _ := parseSurface(t, src)
	if len(m.Items) != 1 {
		t.Fatalf("got %d items", len(m.Items))
	}
	alias, ok := m.Items[0].(*surface.Alias)
	if !ok {
		t.Fatalf("item is %T", m.Items[0])
	}
	if alias.Name.Text != "Area" {
		t.Errorf("name = %q", alias.Name.Text)
	}
	ty, ok := alias.Type.(*surface.Name)
	if !ok || ty.Text != "Format" {
		t.Fatalf("ascription = %#v", alias.Type)
	}
	st, ok := alias.Term.(*surface.StructType)
	if !ok || len(st.Fields) != 2 || st.Fields[0].Name.Text != "width" || st.Fields[1].Name.Text != "height" {
		t.Fatalf("body = %#v", alias.Term)
	}
	if alias.Span() != span(m.File, src, src) {
		t.Errorf("alias span = %v", alias.Span())
	}
}

func TestSurfaceStructTrailingComma(t *testing.T) {
	for _, src := range []string{
		"struct S { a: Int, b: Int }",
		"struct S { a: Int, b: Int, }",
	} {
		t.Run(src, func(t *testing.T) {
			m, _ := parseSurface(t, src)
			s := m.Items[0].(*surface.Struct)
			if len(s.Fields) != 2 || s.Fields[0].Name.Text != "a" || s.Fields[1].Name.Text != "b" {
				t.Fatalf("fields = %#v", s.Fields)
			}
			if s.Fields[1].Span() != span(m.File, src, "b: Int") {
				t.Errorf("field span = %v", s.Fields[1].Span())
			}
		})
	}
}

func TestSurfaceEmptyAndDuplicateFields(t *testing.T) {
	m, _ := parseSurface(t, "struct E {} struct D { x : U8, x : U8 }")
	if got := len(m.Items[0].(*surface.Struct).Fields); got != 0 {
		t.Errorf("empty struct has %d fields", got)
	}
	if got := len(m.Items[1].(*surface.Struct).Fields); got != 2 {
		t.Errorf("duplicate fields must be kept, got %d", got)
	}
}

func TestSurfaceAscriptionIsRightAssociative(t *testing.T) {
	m, _ := parseSurface(t, "y = x : A : B;")
	ann, ok := m.Items[0].(*surface.Alias).Term.(*surface.Ann)
	if !ok {
		t.Fatalf("term is %T", m.Items[0].(*surface.Alias).Term)
	}
	if n, ok := ann.Term.(*surface.Name); !ok || n.Text != "x" {
		t.Fatalf("left = %#v", ann.Term)
	}
	inner, ok := ann.Type.(*surface.Ann)
	if !ok {
		t.Fatalf("right = %T, want *surface.Ann", ann.Type)
	}
	if inner.Term.(*surface.Name).Text != "A" || inner.Type.(*surface.Name).Text != "B" {
		t.Fatalf("inner = %#v", inner)
	}
}

func TestSurfaceParenKeepsBothSpans(t *testing.T) {
	src := "p = ( inner );"
	m, _ := parseSurface(t, src)
	paren, ok := m.Items[0].(*surface.Alias).Term.(*surface.Paren)
	if !ok {
		t.Fatalf("term is %T", m.Items[0].(*surface.Alias).Term)
	}
	if paren.Span() != span(m.File, src, "( inner )") {
		t.Errorf("outer span = %v", paren.Span())
	}
	if paren.InnerSpan() != span(m.File, src, "inner") {
		t.Errorf("inner span = %v", paren.InnerSpan())
	}
}

func TestSurfaceIfAndLiterals(t *testing.T) {
	src := "/// chooses\nc = if flag { 0x10 } else { Bogus : F32 };"
	m, _ := parseSurface(t, src)
	alias := m.Items[0].(*surface.Alias)
	if len(alias.Doc) != 1 || alias.Doc[0] != "chooses" {
		t.Errorf("doc = %q", alias.Doc)
	}
	ifTerm, ok := alias.Term.(*surface.If)
	if !ok {
		t.Fatalf("term is %T", alias.Term)
	}
	lit, ok := ifTerm.Then.(*surface.NumberLiteral)
	if !ok || lit.Literal.Text != "0x10" || lit.Span() != span(m.File, src, "0x10") {
		t.Fatalf("then = %#v", ifTerm.Then)
	}
	// unknown names stay plain names in the surface language
	if _, ok := ifTerm.Else.(*surface.Ann); !ok {
		t.Fatalf("else = %T", ifTerm.Else)
	}
	if ifTerm.Span() != span(m.File, src, "if flag { 0x10 } else { Bogus : F32 }") {
		t.Errorf("if span = %v", ifTerm.Span())
	}
}

func TestSurfaceModuleDocs(t *testing.T) {
	m, _ := parseSurface(t, "//! first\n//! second\n\n/// field doc holder\nstruct S {\n  /// the a\n  a : U8,\n}")
	if len(m.Doc) != 2 || m.Doc[1] != "second" {
		t.Fatalf("module doc = %q", m.Doc)
	}
	s := m.Items[0].(*surface.Struct)
	if len(s.Doc) != 1 || len(s.Fields[0].Doc) != 1 || s.Fields[0].Doc[0] != "the a" {
		t.Fatalf("docs = %q / %q", s.Doc, s.Fields[0].Doc)
	}
}

func TestSurfaceStructuralErrors(t *testing.T) {
	tests := []struct {
		name     string
		src      string
		expected token.Kind
		code     diag.Code
	}{
		{"missing semicolon", "x = U8", token.Semicolon, diag.SynExpectSemicolon},
		{"unclosed struct", "struct S { a : U8", token.RBrace, diag.SynUnclosedDelimiter},
		{"missing else", "x = if a { b };", token.KwElse, diag.SynUnexpectedToken},
		{"core syntax", "x = item y;", token.Ident, diag.SynExpectTerm},
		{"dangling doc", "x = U8;\n/// orphan", token.Ident, diag.SynUnexpectedToken},
		{"inner doc after item", "x = U8;\n//! late", token.Ident, diag.SynUnexpectedToken},
		{"missing comma", "struct S { a : U8 b : U8 }", token.Comma, diag.SynUnexpectedToken},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			file, toks := tokenize(t, tt.src)
			m, err := ParseSurfaceModule(file, toks, nil)
			if m != nil || err == nil {
				t.Fatalf("expected structural error, got module %#v", m)
			}
			var se *StructuralError
			if !errors.As(err, &se) {
				t.Fatalf("error %T is not *StructuralError", err)
			}
			found := false
			for _, k := range se.Expected {
				found = found || k == tt.expected
			}
			if !found {
				t.Errorf("expected set %v lacks %v (%v)", se.Expected, tt.expected, err)
			}
			if got := se.Diagnostic().Code; got != tt.code {
				t.Errorf("diagnostic code = %v, want %v (%v)", got.ID(), tt.code.ID(), err)
			}
		})
	}
}
