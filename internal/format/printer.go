package format

import (
	"ddl/internal/surface"
)

type Options struct {
	IndentWidth int
	UseTabs     bool
	// DropDocs omits doc comments from the output.
	DropDocs bool
}

func (o Options) withDefaults() Options {
	if o.IndentWidth <= 0 {
		o.IndentWidth = 4
	}
	return o
}

type printer struct {
	w   *Writer
	opt Options
}

// Module renders m. Items are separated by one blank line, struct fields go
// one per line with a trailing comma, and parentheses are added where the
// grammar needs them to keep the tree shape.
func Module(m *surface.Module, opt Options) []byte {
	opt = opt.withDefaults()
	p := printer{w: NewWriter(opt), opt: opt}
	p.docs("//!", m.Doc)
	for i, it := range m.Items {
		if i > 0 || (len(m.Doc) > 0 && !opt.DropDocs) {
			p.w.BlankLine()
		}
		p.item(it)
	}
	return p.w.Bytes()
}

// Term renders a single term on one line.
func Term(t surface.Term) string {
	p := printer{w: NewWriter(Options{}), opt: Options{DropDocs: true}}
	p.term(t, false)
	return string(p.w.Bytes())
}

func (p *printer) docs(marker string, lines []string) {
	if p.opt.DropDocs {
		return
	}
	for _, line := range lines {
		if line == "" {
			p.w.WriteString(marker)
		} else {
			p.w.WriteString(marker + " " + line)
		}
		p.w.Newline()
	}
}

func (p *printer) item(it surface.Item) {
	p.docs("///", it.ItemDoc())
	switch it := it.(type) {
	case *surface.Alias:
		p.w.WriteString(it.Name.Text)
		if it.Type != nil {
			p.w.WriteString(" : ")
			p.term(it.Type, false)
		}
		p.w.WriteString(" = ")
		p.term(it.Term, false)
		p.w.WriteString(";")
		p.w.Newline()
	case *surface.Struct:
		p.w.WriteString("struct " + it.Name.Text + " ")
		p.fieldsBlock(it.Fields)
		p.w.Newline()
	}
}

func (p *printer) fieldsBlock(fields []surface.TypeField) {
	if len(fields) == 0 {
		p.w.WriteString("{}")
		return
	}
	p.w.WriteString("{")
	p.w.Newline()
	p.w.Indent()
	for _, f := range fields {
		p.docs("///", f.Doc)
		p.w.WriteString(f.Name.Text + " : ")
		p.term(f.Term, false)
		p.w.WriteString(",")
		p.w.Newline()
	}
	p.w.Dedent()
	p.w.WriteString("}")
}

// term prints t. annLeft is set for the left operand of an ascription,
// where an ascription or if must be wrapped to parse back the same way.
func (p *printer) term(t surface.Term, annLeft bool) {
	switch t := t.(type) {
	case *surface.Ann:
		p.wrapIf(annLeft, func() {
			p.term(t.Term, true)
			p.w.WriteString(" : ")
			p.term(t.Type, false)
		})
	case *surface.If:
		p.wrapIf(annLeft, func() {
			p.w.WriteString("if ")
			p.term(t.Cond, false)
			p.w.WriteString(" { ")
			p.term(t.Then, false)
			p.w.WriteString(" } else { ")
			p.term(t.Else, false)
			p.w.WriteString(" }")
		})
	case *surface.Paren:
		p.w.WriteString("(")
		p.term(t.Inner, false)
		p.w.WriteString(")")
	case *surface.Name:
		p.w.WriteString(t.Text)
	case *surface.NumberLiteral:
		p.w.WriteString(t.Literal.Text)
	case *surface.StructType:
		if hasFieldDocs(t.Fields) && !p.opt.DropDocs {
			p.w.WriteString("struct ")
			p.fieldsBlock(t.Fields)
			return
		}
		p.w.WriteString("struct {")
		for i, f := range t.Fields {
			if i > 0 {
				p.w.WriteString(",")
			}
			p.w.WriteString(" " + f.Name.Text + " : ")
			p.term(f.Term, false)
		}
		if len(t.Fields) > 0 {
			p.w.WriteString(" ")
		}
		p.w.WriteString("}")
	case *surface.Error:
		p.w.WriteString("!")
	}
}

func (p *printer) wrapIf(cond bool, body func()) {
	if cond {
		p.w.WriteString("(")
	}
	body()
	if cond {
		p.w.WriteString(")")
	}
}

func hasFieldDocs(fields []surface.TypeField) bool {
	for _, f := range fields {
		if len(f.Doc) > 0 {
			return true
		}
	}
	return false
}
