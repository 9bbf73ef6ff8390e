package testkit_test

import (
	"strings"
	"testing"

	"ddl/internal/core"
	"ddl/internal/diag"
	"ddl/internal/lexer"
	"ddl/internal/parser"
	"ddl/internal/source"
	"ddl/internal/surface"
	"ddl/internal/testkit"
)

const surfaceSrc = `//! shapes
/// A 2D area.
struct Area { width: F32Le, height: (F32Le : Format), }
Count : Format = U32Be;
Flag = if ok { struct { a: U8 } } else { 0x10 : Int };
`

const coreSrc = `struct Area { width : F32Le, height : F32Le }
Count : Format = U32Be;
Pick = bool_elim (true) { int 1, f64 2.5 : F64 };
Ref = item Area;
Broken = Nope;
`

func load(t *testing.T, src string) *source.File {
	t.Helper()
	fs := source.NewFileSet()
	return fs.Get(fs.AddVirtual("fixture.ddl", []byte(src)))
}

func TestParsedModulesKeepSpanInvariants(t *testing.T) {
	sf := load(t, surfaceSrc)
	sm, err := parser.ParseSurfaceModule(sf.ID, lexer.Tokenize(sf, lexer.Options{}), nil)
	if err != nil {
		t.Fatal(err)
	}
	if err := testkit.CheckSurfaceSpans(sm, sf); err != nil {
		t.Fatalf("surface: %v", err)
	}

	cf := load(t, coreSrc)
	bag := diag.NewBag(8)
	cm, err := parser.ParseCoreModule(cf.ID, lexer.Tokenize(cf, lexer.Options{}), diag.BagReporter{Bag: bag})
	if err != nil {
		t.Fatal(err)
	}
	if bag.Count(diag.SemUnknownGlobal) != 1 {
		t.Fatalf("expected the Nope diagnostic, got %d", bag.Len())
	}
	if err := testkit.CheckCoreSpans(cm, cf); err != nil {
		t.Fatalf("core: %v", err)
	}
}

func TestCheckerRejectsBrokenSpans(t *testing.T) {
	sf := load(t, "x = U8;")
	whole := source.Span{File: sf.ID, Start: 0, End: 7}

	tests := []struct {
		name string
		m    *surface.Module
		want string
	}{
		{
			"empty item",
			&surface.Module{Items: []surface.Item{&surface.Alias{Node: surface.At(source.Span{File: sf.ID})}}},
			"empty item span",
		},
		{
			"term outside item",
			&surface.Module{Items: []surface.Item{&surface.Alias{
				Node: surface.At(whole),
				Name: surface.Ident{Node: surface.At(source.Span{File: sf.ID, Start: 0, End: 1})},
				Term: &surface.Name{Node: surface.At(source.Span{File: sf.ID, Start: 4, End: 9}), Text: "U8"},
			}}},
			"outside",
		},
		{
			"beyond content",
			&surface.Module{Items: []surface.Item{&surface.Alias{Node: surface.At(source.Span{File: sf.ID, Start: 0, End: 70})}}},
			"beyond content",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := testkit.CheckSurfaceSpans(tt.m, sf)
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Fatalf("err = %v, want %q", err, tt.want)
			}
		})
	}

	overlap := &core.Module{Items: []core.Item{
		&core.Alias{Node: core.At(whole), NameSpan: source.Span{File: sf.ID, Start: 0, End: 1}, Term: &core.Error{Node: core.At(source.Span{File: sf.ID, Start: 4, End: 6})}},
		&core.Alias{Node: core.At(whole), NameSpan: source.Span{File: sf.ID, Start: 0, End: 1}, Term: &core.Error{Node: core.At(source.Span{File: sf.ID, Start: 4, End: 6})}},
	}}
	if err := testkit.CheckCoreSpans(overlap, sf); err == nil || !strings.Contains(err.Error(), "overlaps") {
		t.Fatalf("overlap err = %v", err)
	}
}
