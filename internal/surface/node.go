package surface

import "ddl/internal/source"

// Node carries the source range shared by every surface node.
type Node struct {
	Loc source.Span
}

func At(sp source.Span) Node { return Node{Loc: sp} }

func (n Node) Span() source.Span { return n.Loc }

// Ident is an identifier occurrence in binding position.
type Ident struct {
	Node
	Text string
}

// Module is one parsed file.
type Module struct {
	File  source.FileID
	Doc   []string // inner doc lines, markers stripped
	Items []Item
}

// Item is either *Alias or *Struct.
type Item interface {
	Span() source.Span
	ItemName() Ident
	ItemDoc() []string
	itemNode()
}

// Alias binds a name to a term, optionally ascribed: `Name [: Type] = Term;`.
type Alias struct {
	Node
	Doc  []string
	Name Ident
	Type Term // nil without ascription
	Term Term
}

// Struct declares a named record type: `struct Name { fields }`.
type Struct struct {
	Node
	Doc    []string
	Name   Ident
	Fields []TypeField
}

// TypeField is `name : term` inside a struct. Duplicate names are kept.
type TypeField struct {
	Node
	Doc  []string
	Name Ident
	Term Term
}

func (a *Alias) ItemName() Ident   { return a.Name }
func (a *Alias) ItemDoc() []string { return a.Doc }
func (*Alias) itemNode()           {}

func (s *Struct) ItemName() Ident   { return s.Name }
func (s *Struct) ItemDoc() []string { return s.Doc }
func (*Struct) itemNode()           {}
