package core

import "ddl/internal/source"

// Node carries the source range shared by every core node.
type Node struct {
	Loc source.Span
}

func At(sp source.Span) Node { return Node{Loc: sp} }

func (n Node) Span() source.Span { return n.Loc }

// Module is one parsed core file.
type Module struct {
	File  source.FileID
	Doc   []string
	Items []Item
}

// Item is either *Alias or *Struct.
type Item interface {
	Span() source.Span
	ItemLabel() Label
	ItemDoc() []string
	itemNode()
}

// Alias binds a label to a term. An ascription in the source is kept as an
// *Ann around the body.
type Alias struct {
	Node
	Doc      []string
	Name     Label
	NameSpan source.Span
	Term     Term
}

// Struct declares a named record type.
type Struct struct {
	Node
	Doc      []string
	Name     Label
	NameSpan source.Span
	Fields   []TypeField
}

// TypeField is `name : term` inside a struct; Loc spans the whole field.
type TypeField struct {
	Node
	Doc      []string
	Name     Label
	NameSpan source.Span
	Term     Term
}

// Start is the byte offset where the field begins.
func (f TypeField) Start() uint32 { return f.Loc.Start }

func (a *Alias) ItemLabel() Label  { return a.Name }
func (a *Alias) ItemDoc() []string { return a.Doc }
func (*Alias) itemNode()           {}

func (s *Struct) ItemLabel() Label  { return s.Name }
func (s *Struct) ItemDoc() []string { return s.Doc }
func (*Struct) itemNode()           {}
