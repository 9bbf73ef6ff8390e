package format

// Writer accumulates output and indents at line starts.
type Writer struct {
	opt         Options
	buf         []byte
	indentLevel int
	atLineStart bool
}

func NewWriter(opt Options) *Writer {
	return &Writer{opt: opt.withDefaults(), atLineStart: true}
}

// Bytes returns the accumulated output.
func (w *Writer) Bytes() []byte { return w.buf }

func (w *Writer) writeIndent() {
	if !w.atLineStart {
		return
	}
	if w.opt.UseTabs {
		for range w.indentLevel {
			w.buf = append(w.buf, '\t')
		}
	} else {
		for range w.indentLevel * w.opt.IndentWidth {
			w.buf = append(w.buf, ' ')
		}
	}
	w.atLineStart = false
}

// WriteString writes s; s must not contain newlines, use Newline.
func (w *Writer) WriteString(s string) {
	if s == "" {
		return
	}
	w.writeIndent()
	w.buf = append(w.buf, s...)
}

func (w *Writer) Newline() {
	w.buf = append(w.buf, '\n')
	w.atLineStart = true
}

// BlankLine ends the current line and leaves exactly one empty line.
func (w *Writer) BlankLine() {
	if !w.atLineStart {
		w.Newline()
	}
	n := len(w.buf)
	if n == 0 || (n >= 2 && w.buf[n-1] == '\n' && w.buf[n-2] == '\n') {
		return
	}
	w.Newline()
}

func (w *Writer) Indent()  { w.indentLevel++ }
func (w *Writer) Dedent() { w.indentLevel = max(0, w.indentLevel-1) }
