package parser

import (
	"math/big"

	"ddl/internal/core"
	"ddl/internal/diag"
	"ddl/internal/literal"
	"ddl/internal/source"
	"ddl/internal/token"
)

// ParseCoreModule builds a core module from tokens, resolving primitive
// names and converting literals on the way. Unknown identifiers and
// malformed literals are reported once each and replaced by core.Error;
// only grammar violations abort, as a *StructuralError.
func ParseCoreModule(file source.FileID, toks []token.Token, report diag.Reporter) (*core.Module, error) {
	p := newParser(file, toks, report)
	m := &core.Module{File: file}
	doc, err := p.parseModuleShell(func(itemDoc []string) error {
		item, err := p.parseCoreItem(itemDoc)
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

func (p *Parser) parseCoreItem(doc []string) (core.Item, error) {
	switch p.peek().Kind {
	case token.KwStruct:
		return p.parseCoreStruct(doc)
	case token.Ident:
		return p.parseCoreAlias(doc)
	}
	return nil, p.unexpected("item", token.Ident, token.KwStruct)
}

// Alias = Ident [":" Term] "=" Term ";"; the ascription becomes Ann(body, type).
func (p *Parser) parseCoreAlias(doc []string) (*core.Alias, error) {
	name, nameSpan, err := p.coreLabel("alias")
	if err != nil {
		return nil, err
	}
	var ty core.Term
	if _, ok := p.eat(token.Colon); ok {
		if ty, err = p.parseCoreTerm(); err != nil {
			return nil, err
		}
	}
	if _, err = p.expect(token.Equals, "alias"); err != nil {
		return nil, err
	}
	body, err := p.parseCoreTerm()
	if err != nil {
		return nil, err
	}
	if _, err = p.expect(token.Semicolon, "alias"); err != nil {
		return nil, err
	}
	if ty != nil {
		body = &core.Ann{Node: core.At(ty.Span().Cover(body.Span())), Term: body, Type: ty}
	}
	return &core.Alias{
		Node:     core.At(p.spanFrom(nameSpan)),
		Doc:      doc,
		Name:     name,
		NameSpan: nameSpan,
		Term:     body,
	}, nil
}

func (p *Parser) parseCoreStruct(doc []string) (*core.Struct, error) {
	kw := p.advance()
	name, nameSpan, err := p.coreLabel("struct")
	if err != nil {
		return nil, err
	}
	var fields []core.TypeField
	err = p.parseFieldList(func(fieldDoc []string) error {
		label, labelSpan, err := p.coreLabel("struct field")
		if err != nil {
			return err
		}
		if _, err = p.expect(token.Colon, "struct field"); err != nil {
			return err
		}
		term, err := p.parseCoreTerm()
		if err != nil {
			return err
		}
		fields = append(fields, core.TypeField{
			Node:     core.At(p.spanFrom(labelSpan)),
			Doc:      fieldDoc,
			Name:     label,
			NameSpan: labelSpan,
			Term:     term,
		})
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &core.Struct{
		Node:     core.At(p.spanFrom(kw.Span)),
		Doc:      doc,
		Name:     name,
		NameSpan: nameSpan,
		Fields:   fields,
	}, nil
}

func (p *Parser) coreLabel(context string) (core.Label, source.Span, error) {
	tok, err := p.expect(token.Ident, context)
	if err != nil {
		return "", source.Span{}, err
	}
	label, err := core.NewLabel(tok.Text)
	if err != nil {
		return "", tok.Span, &StructuralError{Span: tok.Span, Found: tok, Context: context, Detail: err.Error()}
	}
	return label, tok.Span, nil
}

// Term = "bool_elim" Term "{" Term "," Term "}"
//      | TermAtomic [":" Term]
func (p *Parser) parseCoreTerm() (core.Term, error) {
	if p.at(token.KwBoolElim) {
		return p.parseBoolElim()
	}
	atom, err := p.parseCoreAtomic()
	if err != nil {
		return nil, err
	}
	if _, ok := p.eat(token.Colon); !ok {
		return atom, nil
	}
	ty, err := p.parseCoreTerm()
	if err != nil {
		return nil, err
	}
	return &core.Ann{Node: core.At(atom.Span().Cover(ty.Span())), Term: atom, Type: ty}, nil
}

func (p *Parser) parseBoolElim() (core.Term, error) {
	kw := p.advance()
	head, err := p.parseCoreTerm()
	if err != nil {
		return nil, err
	}
	if _, err = p.expect(token.LBrace, "bool_elim"); err != nil {
		return nil, err
	}
	ifTrue, err := p.parseCoreTerm()
	if err != nil {
		return nil, err
	}
	if _, err = p.expect(token.Comma, "bool_elim"); err != nil {
		return nil, err
	}
	ifFalse, err := p.parseCoreTerm()
	if err != nil {
		return nil, err
	}
	if _, err = p.expect(token.RBrace, "bool_elim"); err != nil {
		return nil, err
	}
	return &core.BoolElim{
		Node:    core.At(p.spanFrom(kw.Span)),
		Head:    head,
		IfTrue:  ifTrue,
		IfFalse: ifFalse,
	}, nil
}

// TermAtomic = "(" Term ")" | Ident | "item" Ident | "!"
//            | "int" NUM | "f32" NUM | "f64" NUM
func (p *Parser) parseCoreAtomic() (core.Term, error) {
	tok := p.peek()
	switch tok.Kind {
	case token.LParen:
		p.advance()
		inner, err := p.parseCoreTerm()
		if err != nil {
			return nil, err
		}
		if _, err = p.expect(token.RParen, "parenthesized term"); err != nil {
			return nil, err
		}
		return inner, nil
	case token.Ident:
		p.advance()
		return p.resolveGlobal(tok), nil
	case token.KwItem:
		p.advance()
		label, labelSpan, err := p.coreLabel("item reference")
		if err != nil {
			return nil, err
		}
		return &core.ItemRef{Node: core.At(tok.Span.Cover(labelSpan)), Label: label}, nil
	case token.Bang:
		p.advance()
		return &core.Error{Node: core.At(tok.Span)}, nil
	case token.KwInt, token.KwF32, token.KwF64:
		p.advance()
		num, err := p.expect(token.NumberLit, tok.Text+" literal")
		if err != nil {
			return nil, err
		}
		return p.convertLiteral(tok, num), nil
	}
	return nil, p.unexpected("term",
		token.LParen, token.Ident, token.KwItem, token.Bang,
		token.KwInt, token.KwF32, token.KwF64, token.KwBoolElim)
}

// resolveGlobal dispatches a bare identifier against the primitive vocabulary.
func (p *Parser) resolveGlobal(tok token.Token) core.Term {
	if term, ok := core.LookupPrimitive(tok.Text, tok.Span); ok {
		return term
	}
	p.emit(diag.UnknownGlobal(tok.Span, tok.Text))
	return &core.Error{Node: core.At(tok.Span)}
}

func (p *Parser) convertLiteral(kw, num token.Token) core.Term {
	sp := kw.Span.Cover(num.Span)
	lit := literal.NewNumber(num.Span, num.Text)

	var (
		term core.Term
		err  error
	)
	switch kw.Kind {
	case token.KwInt:
		var v *big.Int
		if v, err = lit.BigInt(); err == nil {
			term = &core.IntConst{Node: core.At(sp), Value: v}
		}
	case token.KwF32:
		var v float32
		if v, err = lit.Float32(); err == nil {
			term = &core.F32Const{Node: core.At(sp), Value: v}
		}
	default:
		var v float64
		if v, err = lit.Float64(); err == nil {
			term = &core.F64Const{Node: core.At(sp), Value: v}
		}
	}
	if err != nil {
		p.emit(diag.MalformedLiteral(sp, num.Text, err).WithNote(num.Span, "expected a "+kw.Text+" literal"))
		return &core.Error{Node: core.At(sp)}
	}
	return term
}
