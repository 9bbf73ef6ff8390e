package format

import (
	"bytes"
	"fmt"

	"ddl/internal/lexer"
	"ddl/internal/parser"
	"ddl/internal/source"
	"ddl/internal/surface"
)

// File parses sf as surface syntax and formats it.
func File(sf *source.File, opt Options) ([]byte, error) {
	m, err := parseSurface(sf)
	if err != nil {
		return nil, err
	}
	return Module(m, opt), nil
}

// CheckRoundTrip formats sf, re-parses the output and formats it again. The
// item names must survive and the second pass must not change anything.
func CheckRoundTrip(sf *source.File, opt Options) (ok bool, msg string) {
	orig, err := parseSurface(sf)
	if err != nil {
		return false, "fmt-check: initial parse failed: " + err.Error()
	}
	first := Module(orig, opt)

	fs := source.NewFileSet()
	again := fs.Get(fs.AddVirtual(sf.Path, first))
	reparsed, err := parseSurface(again)
	if err != nil {
		return false, "fmt-check: reparse failed: " + err.Error()
	}
	if a, b := itemNames(orig), itemNames(reparsed); a != b {
		return false, fmt.Sprintf("fmt-check: items differ after round-trip: %s vs %s", a, b)
	}
	if a, b := termShape(orig), termShape(reparsed); a != b {
		return false, fmt.Sprintf("fmt-check: term shape changed: %s vs %s", a, b)
	}
	if second := Module(reparsed, opt); !bytes.Equal(first, second) {
		return false, "fmt-check: formatting is not idempotent"
	}
	return true, "fmt-check: OK"
}

func parseSurface(sf *source.File) (*surface.Module, error) {
	toks := lexer.Tokenize(sf, lexer.Options{})
	return parser.ParseSurfaceModule(sf.ID, toks, nil)
}

func itemNames(m *surface.Module) string {
	var b bytes.Buffer
	for _, it := range m.Items {
		switch it.(type) {
		case *surface.Alias:
			b.WriteString("alias:")
		case *surface.Struct:
			b.WriteString("struct:")
		}
		b.WriteString(it.ItemName().Text)
		b.WriteByte(' ')
	}
	return b.String()
}

// termShape lists term kinds in walk order. Parens are skipped since the
// printer may add them.
func termShape(m *surface.Module) string {
	var b bytes.Buffer
	surface.WalkModule(m, func(t surface.Term) bool {
		switch t := t.(type) {
		case *surface.Paren:
		case *surface.Name:
			b.WriteString(t.Text)
			b.WriteByte(' ')
		default:
			fmt.Fprintf(&b, "%T ", t)
		}
		return true
	})
	return b.String()
}
