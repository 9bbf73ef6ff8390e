package parser

import (
	"fmt"
	"strings"
	"testing"

	"ddl/internal/diag"
	"ddl/internal/lexer"
	"ddl/internal/source"
	"ddl/internal/token"
)

func diagnosticsSummary(bag *diag.Bag) string {
	if bag == nil {
		return "<nil bag>"
	}
	diags := bag.Items()
	if len(diags) == 0 {
		return "<none>"
	}
	lines := make([]string, len(diags))
	for i, d := range diags {
		lines[i] = fmt.Sprintf("[%s] %s", d.Code.ID(), d.Message)
	}
	return strings.Join(lines, "; ")
}

func tokenize(t *testing.T, src string) (source.FileID, []token.Token) {
	t.Helper()
	fs := source.NewFileSet()
	id := fs.AddVirtual("test.ddl", []byte(src))
	lexBag := diag.NewBag(8)
	toks := lexer.Tokenize(fs.Get(id), lexer.Options{Reporter: diag.BagReporter{Bag: lexBag}})
	if lexBag.Len() != 0 {
		t.Fatalf("lexer diagnostics for %q: %s", src, diagnosticsSummary(lexBag))
	}
	return id, toks
}

func span(file source.FileID, src, sub string) source.Span {
	i := strings.Index(src, sub)
	if i < 0 {
		panic("substring not found: " + sub)
	}
	return source.Span{File: file, Start: uint32(i), End: uint32(i + len(sub))}
}
