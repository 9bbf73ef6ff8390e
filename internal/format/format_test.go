package format

import (
	"testing"

	"ddl/internal/source"
)

func load(src string) *source.File {
	fs := source.NewFileSet()
	return fs.Get(fs.AddVirtual("fmt.ddl", []byte(src)))
}

func TestFormatCanonicalOutput(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want string
	}{
		{
			"alias spacing",
			"x:Format=U8;",
			"x : Format = U8;\n",
		},
		{
			"struct one field per line",
			"/// A point.\nstruct P{x:F32Le,y:F32Le}",
			"/// A point.\nstruct P {\n    x : F32Le,\n    y : F32Le,\n}\n",
		},
		{
			"empty struct and module docs",
			"//! header\nstruct E {}\ny = 1;",
			"//! header\n\nstruct E {}\n\ny = 1;\n",
		},
		{
			"parens kept",
			"x = (a : b) : c;",
			"x = (a : b) : c;\n",
		},
		{
			"anonymous struct inline",
			"Area : Format = struct {width:U32Le,height:U32Le,};",
			"Area : Format = struct { width : U32Le, height : U32Le };\n",
		},
		{
			"if expression",
			"z = if  c {  0x1 } else {2};",
			"z = if c { 0x1 } else { 2 };\n",
		},
		{
			"field docs",
			"struct S {\n/// first\na : U8 }",
			"struct S {\n    /// first\n    a : U8,\n}\n",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := File(load(tt.src), Options{})
			if err != nil {
				t.Fatal(err)
			}
			if string(got) != tt.want {
				t.Fatalf("got:\n%s\nwant:\n%s", got, tt.want)
			}
		})
	}
}

func TestFormatTabsAndDropDocs(t *testing.T) {
	got, err := File(load("/// doc\nstruct S { a : U8 }"), Options{UseTabs: true, DropDocs: true})
	if err != nil {
		t.Fatal(err)
	}
	if want := "struct S {\n\ta : U8,\n}\n"; string(got) != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestCheckRoundTrip(t *testing.T) {
	srcs := []string{
		"//! m\n/// A\nstruct A { a : U8, b : (U8 : Format), c : struct { /// inner\n d : U8 } }\nB : Type = if x { y } else { z : Q };",
		"x = a : b : c;",
		"",
	}
	for _, src := range srcs {
		if ok, msg := CheckRoundTrip(load(src), Options{}); !ok {
			t.Errorf("%q: %s", src, msg)
		}
	}
	if ok, _ := CheckRoundTrip(load("x = ;"), Options{}); ok {
		t.Error("unparsable input must fail the check")
	}
}

func TestTermShapeIgnoresParens(t *testing.T) {
	a, err := parseSurface(load("x = (a : b) : c;"))
	if err != nil {
		t.Fatal(err)
	}
	b, err := parseSurface(load("x = ((a : b)) : (c);"))
	if err != nil {
		t.Fatal(err)
	}
	if termShape(a) != "*surface.Ann *surface.Ann a b c " {
		t.Fatalf("shape = %q", termShape(a))
	}
	if termShape(a) != termShape(b) {
		t.Fatalf("paren-only difference changed the shape: %q vs %q", termShape(a), termShape(b))
	}
}
