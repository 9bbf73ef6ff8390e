package diagfmt

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"

	"ddl/internal/diag"
	"ddl/internal/source"
)

const tabWidth = 4

type palette struct {
	err, warn, info, note, gutter, caret, bold *color.Color
}

func newPalette(enabled bool) palette {
	p := palette{
		err:    color.New(color.FgRed, color.Bold),
		warn:   color.New(color.FgYellow, color.Bold),
		info:   color.New(color.FgCyan, color.Bold),
		note:   color.New(color.FgBlue, color.Bold),
		gutter: color.New(color.FgBlue),
		caret:  color.New(color.FgRed, color.Bold),
		bold:   color.New(color.Bold),
	}
	for _, c := range []*color.Color{p.err, p.warn, p.info, p.note, p.gutter, p.caret, p.bold} {
		if enabled {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return p
}

func (p palette) severity(sev diag.Severity) *color.Color {
	switch sev {
	case diag.SevError:
		return p.err
	case diag.SevWarning:
		return p.warn
	}
	return p.info
}

// Pretty форматирует диагностики в человекочитаемый вид. Идёт по
// bag.Items(), so callers sort the bag first. For each diagnostic:
//
//	<path>:<line>:<col>: <SEV> <CODE>: <Message>
//	   3 | x = Bogus;
//	     |     ^~~~~
//	  note: <path>:<line>:<col>: <note>
func Pretty(w io.Writer, bag *diag.Bag, fs *source.FileSet, opts PrettyOpts) {
	pal := newPalette(opts.Color)
	for _, d := range bag.Items() {
		prettyOne(w, d, fs, opts, pal)
	}
	if n := bag.Dropped(); n > 0 {
		fmt.Fprintf(w, "... %d more diagnostic(s) not shown\n", n)
	}
}

func prettyOne(w io.Writer, d diag.Diagnostic, fs *source.FileSet, opts PrettyOpts, pal palette) {
	loc := location(d.Primary, fs, opts.PathMode)
	sev, code := d.Severity.String(), d.Code.ID()
	fmt.Fprintln(w, clipColored(
		fmt.Sprintf("%s: %s %s: ", loc, sev, code),
		fmt.Sprintf("%s: %s %s: ", loc, pal.severity(d.Severity).Sprint(sev), pal.bold.Sprint(code)),
		d.Message, opts.Width))

	if opts.Context >= 0 {
		snippet(w, d.Primary, fs, int(opts.Context), opts.Width, pal)
	}
	if !opts.ShowNotes {
		return
	}
	for _, n := range d.Notes {
		nloc := location(n.Span, fs, opts.PathMode)
		fmt.Fprintln(w, clipColored(
			fmt.Sprintf("  note: %s: ", nloc),
			fmt.Sprintf("  %s %s: ", pal.note.Sprint("note:"), nloc),
			n.Msg, opts.Width))
	}
}

func location(sp source.Span, fs *source.FileSet, mode PathMode) string {
	f := fs.Get(sp.File)
	if f == nil {
		return fmt.Sprintf("<file %d>:%d", sp.File, sp.Start)
	}
	start, _ := fs.Resolve(sp)
	return fmt.Sprintf("%s:%d:%d", f.FormatPath(mode.key(), fs.BaseDir()), start.Line, start.Col)
}

// snippet prints the primary line with context and an underline. Multi-line
// spans are underlined to the end of their first line.
func snippet(w io.Writer, sp source.Span, fs *source.FileSet, context int, width uint8, pal palette) {
	f := fs.Get(sp.File)
	if f == nil {
		return
	}
	start, end := fs.Resolve(sp)
	if start.Line == 0 {
		return
	}
	first := max(1, int(start.Line)-context)
	last := int(start.Line) + context
	gutterWidth := len(fmt.Sprint(last))

	for ln := first; ln <= last; ln++ {
		text, ok := lineText(f, ln)
		if !ok {
			break
		}
		fmt.Fprintf(w, "%s %s\n", pal.gutter.Sprintf("%*d |", gutterWidth, ln), clip(expandTabs(text), width))
		if ln != int(start.Line) {
			continue
		}
		col := int(start.Col) - 1
		endCol := len(text)
		if end.Line == start.Line {
			endCol = int(end.Col) - 1
		}
		col = min(col, len(text))
		endCol = min(max(endCol, col), len(text))
		pad := runewidth.StringWidth(expandTabs(text[:col]))
		mark := max(1, runewidth.StringWidth(expandTabs(text[col:endCol])))
		underline := "^" + strings.Repeat("~", mark-1)
		fmt.Fprintf(w, "%s %s%s\n", pal.gutter.Sprintf("%*s |", gutterWidth, ""), strings.Repeat(" ", pad), pal.caret.Sprint(underline))
	}
}

func lineText(f *source.File, ln int) (string, bool) {
	if ln > len(f.LineIdx)+1 {
		return "", false
	}
	text := f.GetLine(uint32(ln)) // #nosec G115 -- ln is bounded by the line index length
	if ln == len(f.LineIdx)+1 && text == "" {
		return "", false
	}
	return text, true
}

func expandTabs(s string) string {
	return strings.ReplaceAll(s, "\t", strings.Repeat(" ", tabWidth))
}

// clip truncates plain text to width display columns.
func clip(s string, width uint8) string {
	if width == 0 {
		return s
	}
	return runewidth.Truncate(s, int(width), "…")
}

// clipColored measures the uncoloured prefix and truncates only tail, so
// escapes never count towards width. When the prefix alone does not fit the
// line is clipped without colour.
func clipColored(plain, colored, tail string, width uint8) string {
	if width == 0 {
		return colored + tail
	}
	budget := int(width) - runewidth.StringWidth(plain)
	if budget <= 0 {
		return clip(plain+tail, width)
	}
	return colored + runewidth.Truncate(tail, budget, "…")
}
