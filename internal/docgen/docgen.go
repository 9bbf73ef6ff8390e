// Package docgen writes Markdown reference pages for core modules.
package docgen

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"ddl/internal/core"
	"ddl/internal/delaborate"
	"ddl/internal/format"
	"ddl/internal/version"
)

// Options tune the generated page.
type Options struct {
	Generator string // defaults to "ddl"
	Version   string // defaults to version.Current().Version
	Title     string // optional level-1 heading
}

// Markdown writes the page for m to w: a generated-file header, the module
// doc, then one section per item in source order.
func Markdown(w io.Writer, m *core.Module, opts Options) error {
	if opts.Generator == "" {
		opts.Generator = "ddl"
	}
	if opts.Version == "" {
		opts.Version = version.Current().Version
	}
	bw := bufio.NewWriter(w)
	fmt.Fprintln(bw, "<!--")
	fmt.Fprintf(bw, "  This file is automatically @generated by %s %s\n", opts.Generator, opts.Version)
	fmt.Fprintln(bw, "  It is not intended for manual editing.")
	fmt.Fprintln(bw, "-->")
	if opts.Title != "" {
		fmt.Fprintf(bw, "\n# %s\n", opts.Title)
	}
	writeDoc(bw, m.Doc)

	for _, it := range m.Items {
		fmt.Fprintf(bw, "\n## %s\n", it.ItemLabel())
		switch it := it.(type) {
		case *core.Alias:
			writeAlias(bw, it)
		case *core.Struct:
			writeStruct(bw, it)
		}
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("docgen: %w", err)
	}
	return nil
}

func writeDoc(w io.Writer, doc []string) {
	if len(doc) == 0 {
		return
	}
	fmt.Fprintln(w)
	fmt.Fprintln(w, strings.Join(doc, "\n"))
}

func writeAlias(w io.Writer, a *core.Alias) {
	writeDoc(w, a.Doc)
	body, ty := a.Term, core.Term(nil)
	if ann, ok := body.(*core.Ann); ok {
		body, ty = ann.Term, ann.Type
	}
	fmt.Fprintln(w)
	if ty != nil {
		fmt.Fprintf(w, "- **Type:** `%s`\n", render(ty))
	}
	fmt.Fprintf(w, "- **Definition:** `%s`\n", render(body))
	if refs := itemRefs(a.Term); len(refs) > 0 {
		fmt.Fprintf(w, "- **Uses:** %s\n", strings.Join(refs, ", "))
	}
}

// itemRefs lists the items t refers to, each once, as links to their
// sections.
func itemRefs(t core.Term) []string {
	var refs []string
	seen := map[string]bool{}
	core.Walk(t, func(t core.Term) bool {
		if ref, ok := t.(*core.ItemRef); ok {
			name := string(ref.Label)
			if !seen[name] {
				seen[name] = true
				refs = append(refs, fmt.Sprintf("[`%s`](#%s)", name, strings.ToLower(name)))
			}
		}
		return true
	})
	return refs
}

func writeStruct(w io.Writer, s *core.Struct) {
	writeDoc(w, s.Doc)
	if len(s.Fields) == 0 {
		return
	}
	fmt.Fprintln(w)
	fmt.Fprintln(w, "| Field | Type | Description |")
	fmt.Fprintln(w, "|---|---|---|")
	for _, f := range s.Fields {
		fmt.Fprintf(w, "| `%s` | `%s` | %s |\n", f.Name, cell(render(f.Term)), cell(strings.Join(f.Doc, " ")))
	}
}

func render(t core.Term) string {
	return format.Term(delaborate.Term(t))
}

// cell keeps one-line text from breaking the table.
func cell(s string) string {
	return strings.ReplaceAll(strings.TrimSpace(s), "|", `\|`)
}
