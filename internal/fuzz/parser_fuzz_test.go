package fuzztests

import (
	"context"
	"errors"
	"testing"
	"time"

	"ddl/internal/diag"
	"ddl/internal/lexer"
	"ddl/internal/parser"
	"ddl/internal/source"
	"ddl/internal/testkit"
)

// parseTimeout is the maximum time allowed for parsing a single input.
// Longer runs point at a parser loop that stopped consuming tokens.
const parseTimeout = 5 * time.Second

func FuzzSurfaceParser(f *testing.F) {
	addCorpusSeeds(f)
	f.Fuzz(func(t *testing.T, input []byte) {
		fs := source.NewFileSet()
		file := fs.Get(fs.AddVirtual("fuzz.ddl", clampInput(input)))
		toks := lexer.Tokenize(file, lexer.Options{})

		m, err := parser.ParseSurfaceModule(file.ID, toks, nil)
		if err != nil {
			var se *parser.StructuralError
			if !errors.As(err, &se) || m != nil {
				t.Fatalf("unexpected failure shape: %v", err)
			}
			return
		}
		if err := testkit.CheckSurfaceSpans(m, file); err != nil {
			t.Fatalf("span invariant: %v", err)
		}
	})
}

func FuzzCoreParser(f *testing.F) {
	addCorpusSeeds(f)
	f.Fuzz(func(t *testing.T, input []byte) {
		fs := source.NewFileSet()
		file := fs.Get(fs.AddVirtual("fuzz.cddl", clampInput(input)))
		toks := lexer.Tokenize(file, lexer.Options{})

		bag := diag.NewBag(128)
		m, err := parser.ParseCoreModule(file.ID, toks, diag.BagReporter{Bag: bag})
		if err != nil {
			return
		}
		for _, d := range bag.Items() {
			if d.Code != diag.SemUnknownGlobal && d.Code != diag.SemMalformedLiteral {
				t.Fatalf("core parser reported %s", d.Code)
			}
		}
		if err := testkit.CheckCoreSpans(m, file); err != nil {
			t.Fatalf("span invariant: %v", err)
		}
	})
}

// FuzzParserNoHang runs both parsers under a deadline.
func FuzzParserNoHang(f *testing.F) {
	addCorpusSeeds(f)
	f.Add([]byte("struct S { a : U8,,, }"))
	f.Add([]byte("x = (((((((((((((((((((("))
	f.Add([]byte("/// a\n/// b\n/// c"))

	f.Fuzz(func(t *testing.T, input []byte) {
		input = clampInput(input)
		ctx, cancel := context.WithTimeout(context.Background(), parseTimeout)
		defer cancel()

		done := make(chan struct{})
		go func() {
			defer close(done)
			fs := source.NewFileSet()
			file := fs.Get(fs.AddVirtual("fuzz.ddl", input))
			toks := lexer.Tokenize(file, lexer.Options{})
			_, _ = parser.ParseSurfaceModule(file.ID, toks, nil)
			_, _ = parser.ParseCoreModule(file.ID, toks, nil)
		}()

		select {
		case <-done:
		case <-ctx.Done():
			t.Fatalf("parser hang detected: parsing took longer than %v\ninput (%d bytes): %q",
				parseTimeout, len(input), truncateForLog(input, 200))
		}
	})
}

func truncateForLog(input []byte, maxLen int) []byte {
	if len(input) <= maxLen {
		return input
	}
	return append(input[:maxLen:maxLen], []byte("...")...)
}
