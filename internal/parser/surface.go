package parser

import (
	"ddl/internal/diag"
	"ddl/internal/literal"
	"ddl/internal/source"
	"ddl/internal/surface"
	"ddl/internal/token"
)

// ParseSurfaceModule builds a surface module from tokens. Identifiers stay
// unresolved, so the parse either succeeds or fails structurally; report is
// accepted for symmetry with ParseCoreModule and never called.
func ParseSurfaceModule(file source.FileID, toks []token.Token, report diag.Reporter) (*surface.Module, error) {
	p := newParser(file, toks, report)
	m := &surface.Module{File: file}
	doc, err := p.parseModuleShell(func(itemDoc []string) error {
		item, err := p.parseSurfaceItem(itemDoc)
		if err != nil {
			return err
		}
		m.Items = append(m.Items, item)
		return nil
	})
	if err != nil {
		return nil, err
	}
	m.Doc = doc
	return m, nil
}

func (p *Parser) parseSurfaceItem(doc []string) (surface.Item, error) {
	switch p.peek().Kind {
	case token.KwStruct:
		return p.parseSurfaceStruct(doc)
	case token.Ident:
		return p.parseSurfaceAlias(doc)
	}
	return nil, p.unexpected("item", token.Ident, token.KwStruct)
}

// Alias = Ident [":" Term] "=" Term ";"
func (p *Parser) parseSurfaceAlias(doc []string) (*surface.Alias, error) {
	name, err := p.surfaceIdent("alias")
	if err != nil {
		return nil, err
	}
	alias := &surface.Alias{Doc: doc, Name: name}
	if _, ok := p.eat(token.Colon); ok {
		if alias.Type, err = p.parseSurfaceTerm(); err != nil {
			return nil, err
		}
	}
	if _, err = p.expect(token.Equals, "alias"); err != nil {
		return nil, err
	}
	if alias.Term, err = p.parseSurfaceTerm(); err != nil {
		return nil, err
	}
	if _, err = p.expect(token.Semicolon, "alias"); err != nil {
		return nil, err
	}
	alias.Loc = p.spanFrom(name.Span())
	return alias, nil
}

// Struct = "struct" Ident "{" Fields "}"
func (p *Parser) parseSurfaceStruct(doc []string) (*surface.Struct, error) {
	kw := p.advance()
	name, err := p.surfaceIdent("struct")
	if err != nil {
		return nil, err
	}
	fields, err := p.parseSurfaceFields()
	if err != nil {
		return nil, err
	}
	return &surface.Struct{
		Node:   surface.At(p.spanFrom(kw.Span)),
		Doc:    doc,
		Name:   name,
		Fields: fields,
	}, nil
}

func (p *Parser) parseSurfaceFields() ([]surface.TypeField, error) {
	var fields []surface.TypeField
	err := p.parseFieldList(func(doc []string) error {
		name, err := p.surfaceIdent("struct field")
		if err != nil {
			return err
		}
		if _, err = p.expect(token.Colon, "struct field"); err != nil {
			return err
		}
		term, err := p.parseSurfaceTerm()
		if err != nil {
			return err
		}
		fields = append(fields, surface.TypeField{
			Node: surface.At(p.spanFrom(name.Span())),
			Doc:  doc,
			Name: name,
			Term: term,
		})
		return nil
	})
	return fields, err
}

func (p *Parser) surfaceIdent(context string) (surface.Ident, error) {
	tok, err := p.expect(token.Ident, context)
	if err != nil {
		return surface.Ident{}, err
	}
	return surface.Ident{Node: surface.At(tok.Span), Text: tok.Text}, nil
}

// Term = "if" Term "{" Term "}" "else" "{" Term "}"
//      | TermAtomic [":" Term]
func (p *Parser) parseSurfaceTerm() (surface.Term, error) {
	if p.at(token.KwIf) {
		return p.parseSurfaceIf()
	}
	atom, err := p.parseSurfaceAtomic()
	if err != nil {
		return nil, err
	}
	if _, ok := p.eat(token.Colon); !ok {
		return atom, nil
	}
	ty, err := p.parseSurfaceTerm()
	if err != nil {
		return nil, err
	}
	return &surface.Ann{
		Node: surface.At(atom.Span().Cover(ty.Span())),
		Term: atom,
		Type: ty,
	}, nil
}

func (p *Parser) parseSurfaceIf() (surface.Term, error) {
	kw := p.advance()
	cond, err := p.parseSurfaceTerm()
	if err != nil {
		return nil, err
	}
	then, err := p.parseSurfaceBranch("if branch")
	if err != nil {
		return nil, err
	}
	if _, err = p.expect(token.KwElse, "if expression"); err != nil {
		return nil, err
	}
	els, err := p.parseSurfaceBranch("else branch")
	if err != nil {
		return nil, err
	}
	return &surface.If{
		Node: surface.At(p.spanFrom(kw.Span)),
		Cond: cond,
		Then: then,
		Else: els,
	}, nil
}

func (p *Parser) parseSurfaceBranch(context string) (surface.Term, error) {
	if _, err := p.expect(token.LBrace, context); err != nil {
		return nil, err
	}
	body, err := p.parseSurfaceTerm()
	if err != nil {
		return nil, err
	}
	if _, err = p.expect(token.RBrace, context); err != nil {
		return nil, err
	}
	return body, nil
}

// TermAtomic = "(" Term ")" | Ident | NUM | "struct" "{" Fields "}"
func (p *Parser) parseSurfaceAtomic() (surface.Term, error) {
	tok := p.peek()
	switch tok.Kind {
	case token.LParen:
		p.advance()
		inner, err := p.parseSurfaceTerm()
		if err != nil {
			return nil, err
		}
		if _, err = p.expect(token.RParen, "parenthesized term"); err != nil {
			return nil, err
		}
		return &surface.Paren{Node: surface.At(p.spanFrom(tok.Span)), Inner: inner}, nil
	case token.Ident:
		p.advance()
		return &surface.Name{Node: surface.At(tok.Span), Text: tok.Text}, nil
	case token.NumberLit:
		p.advance()
		return &surface.NumberLiteral{Node: surface.At(tok.Span), Literal: literal.NewNumber(tok.Span, tok.Text)}, nil
	case token.KwStruct:
		p.advance()
		fields, err := p.parseSurfaceFields()
		if err != nil {
			return nil, err
		}
		return &surface.StructType{Node: surface.At(p.spanFrom(tok.Span)), Fields: fields}, nil
	}
	return nil, p.unexpected("term", token.LParen, token.Ident, token.NumberLit, token.KwIf, token.KwStruct)
}
