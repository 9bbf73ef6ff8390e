package diagfmt

import (
	"bytes"
	"strings"
	"testing"

	"github.com/mattn/go-runewidth"

	"ddl/internal/diag"
	"ddl/internal/source"
)

// TestPathModes проверяет различные режимы форматирования путей
func TestPathModes(t *testing.T) {
	fs := source.NewFileSet()
	content := []byte("x = \"unterminated string\n")
	fileID := fs.AddVirtual("/home/user/project/src/test.ddl", content)
	fs.SetBaseDir("/home/user/project")

	bag := diag.NewBag(10)
	bag.Add(diag.New(diag.SevError, diag.LexUnterminatedString,
		source.Span{File: fileID, Start: 4, End: 24}, "Unterminated string literal"))

	tests := []struct {
		name     string
		mode     PathMode
		contains string
	}{
		{"Absolute path", PathModeAbsolute, "/home/user/project/src/test.ddl:1:5"},
		{"Relative path", PathModeRelative, "src/test.ddl:1:5"},
		{"Basename only", PathModeBasename, "test.ddl:1:5"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			Pretty(&buf, bag, fs, PrettyOpts{Context: 0, PathMode: tt.mode})
			output := buf.String()
			for _, want := range []string{tt.contains, "ERROR", "LEX1002", "Unterminated string"} {
				if !strings.Contains(output, want) {
					t.Errorf("expected %q in output:\n%s", want, output)
				}
			}
		})
	}
}

func TestPrettySnippetAndCaret(t *testing.T) {
	fs := source.NewFileSet()
	src := "a = U8;\nx = Bogus;\nb = U8;\n"
	id := fs.AddVirtual("m.cddl", []byte(src))
	start := uint32(strings.Index(src, "Bogus"))
	bag := diag.NewBag(4)
	bag.Add(diag.UnknownGlobal(source.Span{File: id, Start: start, End: start + 5}, "Bogus").
		WithNote(source.Span{File: id, Start: 0, End: 1}, "first item"))

	var buf bytes.Buffer
	Pretty(&buf, bag, fs, PrettyOpts{Context: 1, ShowNotes: true})
	want := "m.cddl:2:5: ERROR SEM3001: unknown global `Bogus`\n" +
		"1 | a = U8;\n" +
		"2 | x = Bogus;\n" +
		"  |     ^~~~~\n" +
		"3 | b = U8;\n" +
		"  note: m.cddl:1:1: first item\n"
	if got := buf.String(); got != want {
		t.Fatalf("got:\n%s\nwant:\n%s", got, want)
	}
}

func TestPrettyWideCharsAndTabs(t *testing.T) {
	fs := source.NewFileSet()
	src := "\t日本 = Nope;"
	id := fs.AddVirtual("w.ddl", []byte(src))
	start := uint32(strings.Index(src, "Nope"))
	bag := diag.NewBag(1)
	bag.Add(diag.UnknownGlobal(source.Span{File: id, Start: start, End: start + 4}, "Nope"))

	var buf bytes.Buffer
	Pretty(&buf, bag, fs, PrettyOpts{})
	lines := strings.Split(buf.String(), "\n")
	// tab -> 4 columns, each CJK rune -> 2 columns, then " = "
	if want := "  |" + strings.Repeat(" ", 1+4+4+3) + "^~~~"; lines[2] != want {
		t.Fatalf("caret line = %q, want %q", lines[2], want)
	}
}

func TestPrettyNoSnippetAndWidth(t *testing.T) {
	fs := source.NewFileSet()
	id := fs.AddVirtual("n.ddl", []byte("x = Nope;"))
	bag := diag.NewBag(1)
	bag.Add(diag.UnknownGlobal(source.Span{File: id, Start: 4, End: 8}, "Nope"))
	bag.Add(diag.UnknownGlobal(source.Span{File: id, Start: 4, End: 8}, "Nope"))

	var buf bytes.Buffer
	Pretty(&buf, bag, fs, PrettyOpts{Context: -1, Width: 20})
	got := buf.String()
	if strings.Contains(got, "|") {
		t.Fatalf("snippet printed with negative context:\n%s", got)
	}
	if !strings.HasSuffix(strings.Split(got, "\n")[0], "…") {
		t.Fatalf("header not clipped: %q", got)
	}
	if !strings.Contains(got, "1 more diagnostic") {
		t.Fatalf("dropped count missing:\n%s", got)
	}
}

func TestPrettyColor(t *testing.T) {
	fs := source.NewFileSet()
	id := fs.AddVirtual("c.ddl", []byte("x = Nope;"))
	bag := diag.NewBag(1)
	bag.Add(diag.UnknownGlobal(source.Span{File: id, Start: 4, End: 8}, "Nope"))

	var plain, colored bytes.Buffer
	Pretty(&plain, bag, fs, PrettyOpts{Color: false})
	Pretty(&colored, bag, fs, PrettyOpts{Color: true})
	if strings.Contains(plain.String(), "\x1b[") {
		t.Error("plain output has escapes")
	}
	if !strings.Contains(colored.String(), "\x1b[") {
		t.Error("colored output has no escapes")
	}
}

func TestPrettyColorHeaderIsClipped(t *testing.T) {
	fs := source.NewFileSet()
	id := fs.AddVirtual("c.ddl", []byte("x = NopeNopeNopeNope;"))
	bag := diag.NewBag(1)
	bag.Add(diag.UnknownGlobal(source.Span{File: id, Start: 4, End: 20}, "NopeNopeNopeNope"))

	var buf bytes.Buffer
	Pretty(&buf, bag, fs, PrettyOpts{Color: true, Context: -1, Width: 40})
	header := strings.Split(buf.String(), "\n")[0]
	if !strings.Contains(header, "\x1b[") {
		t.Fatalf("header lost its colour: %q", header)
	}
	if !strings.HasSuffix(header, "…") {
		t.Fatalf("coloured header not clipped: %q", header)
	}
	if w := runewidth.StringWidth(stripEscapes(header)); w > 40 {
		t.Fatalf("visible width %d exceeds 40: %q", w, header)
	}
}

func TestPrettyClipsWhenPrefixIsTooWide(t *testing.T) {
	fs := source.NewFileSet()
	id := fs.AddVirtual("a-rather-long-file-name.ddl", []byte("x = Nope;"))
	bag := diag.NewBag(1)
	bag.Add(diag.UnknownGlobal(source.Span{File: id, Start: 4, End: 8}, "Nope"))

	var buf bytes.Buffer
	Pretty(&buf, bag, fs, PrettyOpts{Color: true, Context: -1, Width: 10})
	header := strings.Split(buf.String(), "\n")[0]
	if header != "a-rather-…" {
		t.Fatalf("header = %q", header)
	}
}

func stripEscapes(s string) string {
	var b strings.Builder
	for i := 0; i < len(s); i++ {
		if s[i] == '\x1b' {
			for i < len(s) && s[i] != 'm' {
				i++
			}
			continue
		}
		b.WriteByte(s[i])
	}
	return b.String()
}
