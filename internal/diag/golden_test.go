package diag

import (
	"errors"
	"testing"

	"ddl/internal/source"
)

func TestFormatShortDiagnostics(t *testing.T) {
	fs := source.NewFileSet()
	fs.SetBaseDir("/workspace")

	file := fs.Add("/workspace/formats/sample.cddl", []byte("x = Bogus;\ny = f32 abc;\n"), 0)

	diags := []Diagnostic{
		MalformedLiteral(source.Span{File: file, Start: 15, End: 22}, "abc", errors.New("invalid syntax")).
			WithNote(source.Span{File: file, Start: 19, End: 22}, "literal\nhere"),
		UnknownGlobal(source.Span{File: file, Start: 4, End: 9}, "Bogus"),
	}

	expected := "error SEM3001 formats/sample.cddl:1:5 unknown global `Bogus`\n" +
		"error SEM3002 formats/sample.cddl:2:5 malformed literal `abc`: invalid syntax\n" +
		"note SEM3002 formats/sample.cddl:2:9 literal here"

	if got := FormatShortDiagnostics(diags, fs, true); got != expected {
		t.Fatalf("unexpected short diagnostics:\nwant:\n%s\n\ngot:\n%s", expected, got)
	}
	if got := FormatShortDiagnostics(nil, fs, true); got != "" {
		t.Fatalf("expected empty output, got %q", got)
	}
}

func TestCodeIDs(t *testing.T) {
	cases := map[Code]string{
		LexUnknownChar:      "LEX1001",
		SynUnexpectedToken:  "SYN2001",
		SemUnknownGlobal:    "SEM3001",
		SemMalformedLiteral: "SEM3002",
		IOLoadFileError:     "IO4001",
		Code(9999):          "E0000",
	}
	for c, want := range cases {
		if got := c.ID(); got != want {
			t.Errorf("%d.ID() = %q, want %q", c, got, want)
		}
	}
	if got := SemUnknownGlobal.String(); got != "[SEM3001]: Unknown global" {
		t.Errorf("String() = %q", got)
	}
	if got := Code(9999).Title(); got != "Unknown error" {
		t.Errorf("Title() = %q", got)
	}
}
