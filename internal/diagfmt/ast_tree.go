package diagfmt

import (
	"fmt"
	"io"
	"strings"

	"ddl/internal/core"
	"ddl/internal/source"
	"ddl/internal/surface"
)

// treeNode is the shared shape behind the tree and JSON AST dumps.
type treeNode struct {
	Type     string      `json:"type"`
	Text     string      `json:"text,omitempty"`
	Span     source.Span `json:"span"`
	Doc      []string    `json:"doc,omitempty"`
	Children []*treeNode `json:"children,omitempty"`
	Role     string      `json:"role,omitempty"` // "term", "type", "cond"
}

func (n *treeNode) add(role string, child *treeNode) {
	if child == nil {
		return
	}
	child.Role = role
	n.Children = append(n.Children, child)
}

func (n *treeNode) label(fs *source.FileSet) string {
	var b strings.Builder
	if n.Role != "" {
		b.WriteString(n.Role)
		b.WriteString(": ")
	}
	b.WriteString(n.Type)
	if n.Text != "" {
		fmt.Fprintf(&b, " %q", n.Text)
	}
	fmt.Fprintf(&b, " (span: %s)", formatSpan(n.Span, fs))
	if len(n.Doc) > 0 {
		fmt.Fprintf(&b, " doc=%q", strings.Join(n.Doc, "\n"))
	}
	return b.String()
}

// formatSpan prints line:col-line:col when the file is known.
func formatSpan(sp source.Span, fs *source.FileSet) string {
	if fs == nil || fs.Get(sp.File) == nil {
		return sp.String()
	}
	start, end := fs.Resolve(sp)
	return fmt.Sprintf("%d:%d-%d:%d", start.Line, start.Col, end.Line, end.Col)
}

func writeTree(w io.Writer, root *treeNode, fs *source.FileSet) error {
	if _, err := fmt.Fprintln(w, root.label(fs)); err != nil {
		return err
	}
	return writeChildren(w, root, fs, "")
}

func writeChildren(w io.Writer, n *treeNode, fs *source.FileSet, prefix string) error {
	for i, c := range n.Children {
		branch, next := "├─ ", "│  "
		if i == len(n.Children)-1 {
			branch, next = "└─ ", "   "
		}
		if _, err := fmt.Fprintf(w, "%s%s%s\n", prefix, branch, c.label(fs)); err != nil {
			return err
		}
		if err := writeChildren(w, c, fs, prefix+next); err != nil {
			return err
		}
	}
	return nil
}

func moduleRoot(file source.FileID, doc []string, fs *source.FileSet) *treeNode {
	root := &treeNode{Type: "Module", Doc: doc, Span: source.Span{File: file}}
	if fs != nil {
		if f := fs.Get(file); f != nil {
			root.Text = f.FormatPath("auto", fs.BaseDir())
			root.Span.End = uint32(len(f.Content)) // #nosec G115 -- FileSet rejects files beyond uint32
		}
	}
	return root
}

// --- surface

func surfaceTree(m *surface.Module, fs *source.FileSet) *treeNode {
	root := moduleRoot(m.File, m.Doc, fs)
	for _, it := range m.Items {
		root.add("", surfaceItem(it))
	}
	return root
}

func surfaceItem(it surface.Item) *treeNode {
	switch it := it.(type) {
	case *surface.Alias:
		n := &treeNode{Type: "Alias", Text: it.Name.Text, Span: it.Span(), Doc: it.Doc}
		if it.Type != nil {
			n.add("type", surfaceTerm(it.Type))
		}
		n.add("term", surfaceTerm(it.Term))
		return n
	case *surface.Struct:
		n := &treeNode{Type: "Struct", Text: it.Name.Text, Span: it.Span(), Doc: it.Doc}
		surfaceFields(n, it.Fields)
		return n
	}
	return &treeNode{Type: fmt.Sprintf("%T", it)}
}

func surfaceFields(n *treeNode, fields []surface.TypeField) {
	for _, f := range fields {
		fn := &treeNode{Type: "Field", Text: f.Name.Text, Span: f.Span(), Doc: f.Doc}
		fn.add("term", surfaceTerm(f.Term))
		n.add("", fn)
	}
}

func surfaceTerm(t surface.Term) *treeNode {
	n := &treeNode{Span: t.Span()}
	switch t := t.(type) {
	case *surface.Ann:
		n.Type = "Ann"
		n.add("term", surfaceTerm(t.Term))
		n.add("type", surfaceTerm(t.Type))
	case *surface.If:
		n.Type = "If"
		n.add("cond", surfaceTerm(t.Cond))
		n.add("then", surfaceTerm(t.Then))
		n.add("else", surfaceTerm(t.Else))
	case *surface.Paren:
		n.Type = "Paren"
		n.add("inner", surfaceTerm(t.Inner))
	case *surface.Name:
		n.Type, n.Text = "Name", t.Text
	case *surface.NumberLiteral:
		n.Type, n.Text = "Number", t.Literal.Text
	case *surface.StructType:
		n.Type = "StructType"
		surfaceFields(n, t.Fields)
	case *surface.Error:
		n.Type = "Error"
	}
	return n
}

// --- core

func coreTree(m *core.Module, fs *source.FileSet) *treeNode {
	root := moduleRoot(m.File, m.Doc, fs)
	for _, it := range m.Items {
		switch it := it.(type) {
		case *core.Alias:
			n := &treeNode{Type: "Alias", Text: string(it.Name), Span: it.Span(), Doc: it.Doc}
			n.add("term", coreTerm(it.Term))
			root.add("", n)
		case *core.Struct:
			n := &treeNode{Type: "Struct", Text: string(it.Name), Span: it.Span(), Doc: it.Doc}
			for _, f := range it.Fields {
				fn := &treeNode{Type: "Field", Text: string(f.Name), Span: f.Span(), Doc: f.Doc}
				fn.add("term", coreTerm(f.Term))
				n.add("", fn)
			}
			root.add("", n)
		}
	}
	return root
}

func coreTerm(t core.Term) *treeNode {
	n := &treeNode{Span: t.Span()}
	switch t := t.(type) {
	case *core.Ann:
		n.Type = "Ann"
		n.add("term", coreTerm(t.Term))
		n.add("type", coreTerm(t.Type))
	case *core.BoolElim:
		n.Type = "BoolElim"
		n.add("head", coreTerm(t.Head))
		n.add("true", coreTerm(t.IfTrue))
		n.add("false", coreTerm(t.IfFalse))
	case *core.ItemRef:
		n.Type, n.Text = "ItemRef", string(t.Label)
	case *core.UniverseTerm:
		n.Type, n.Text = "Universe", t.Universe.String()
	case *core.EncodingTerm:
		n.Type, n.Text = "Encoding", t.Encoding.String()
	case *core.HostTypeTerm:
		n.Type, n.Text = "HostType", t.Host.String()
	case *core.BoolConst:
		n.Type, n.Text = "BoolConst", core.BoolName(t.Value)
	case *core.IntConst:
		n.Type, n.Text = "IntConst", t.Value.String()
	case *core.F32Const:
		n.Type, n.Text = "F32Const", fmt.Sprint(t.Value)
	case *core.F64Const:
		n.Type, n.Text = "F64Const", fmt.Sprint(t.Value)
	case *core.Error:
		n.Type = "Error"
	}
	return n
}
