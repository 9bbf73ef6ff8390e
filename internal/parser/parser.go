package parser

import (
	"slices"

	"ddl/internal/diag"
	"ddl/internal/source"
	"ddl/internal/token"
)

// Parser - состояние разбора одного файла. Both grammars share it; the
// surface productions never touch report.
type Parser struct {
	toks     []token.Token
	pos      int
	file     source.FileID
	report   diag.Reporter
	lastSpan source.Span // span последнего съеденного токена
}

func newParser(file source.FileID, toks []token.Token, report diag.Reporter) *Parser {
	if report == nil {
		report = diag.NopReporter{}
	}
	return &Parser{
		toks:     toks,
		file:     file,
		report:   report,
		lastSpan: source.Span{File: file},
	}
}

// peek returns the current token. Past the end of the slice it
// synthesises EOF right after the last consumed token, so inputs without a
// trailing EOF still terminate.
func (p *Parser) peek() token.Token {
	if p.pos < len(p.toks) {
		return p.toks[p.pos]
	}
	end := p.lastSpan.End
	return token.Token{Kind: token.EOF, Span: source.Span{File: p.file, Start: end, End: end}}
}

func (p *Parser) peekN(n int) token.Token {
	if p.pos+n < len(p.toks) {
		return p.toks[p.pos+n]
	}
	return p.peek()
}

func (p *Parser) at(k token.Kind) bool {
	return p.peek().Kind == k
}

func (p *Parser) atOr(kinds ...token.Kind) bool {
	return slices.Contains(kinds, p.peek().Kind)
}

// advance - съедает следующий токен и обновляет lastSpan.
func (p *Parser) advance() token.Token {
	tok := p.peek()
	if tok.Kind == token.EOF {
		return tok
	}
	p.pos++
	p.lastSpan = tok.Span
	return tok
}

func (p *Parser) eat(k token.Kind) (token.Token, bool) {
	if p.at(k) {
		return p.advance(), true
	}
	return token.Token{}, false
}

// expect - ожидаем конкретный токен, иначе структурная ошибка.
func (p *Parser) expect(k token.Kind, context string) (token.Token, error) {
	if p.at(k) {
		return p.advance(), nil
	}
	return token.Token{}, p.unexpected(context, k)
}

func (p *Parser) unexpected(context string, expected ...token.Kind) *StructuralError {
	found := p.peek()
	return &StructuralError{
		Span:     p.diagnosticSpan(found),
		Found:    found,
		Expected: expected,
		Context:  context,
	}
}

// diagnosticSpan points an error at EOF just past the last real token
// rather than at a zero-length span at offset 0.
func (p *Parser) diagnosticSpan(found token.Token) source.Span {
	if found.Kind == token.EOF && found.Span.Empty() && found.Span.Start == 0 && p.lastSpan.End > 0 {
		return source.Span{File: p.file, Start: p.lastSpan.End, End: p.lastSpan.End}
	}
	return found.Span
}

// spanFrom covers everything from start to the last consumed token.
func (p *Parser) spanFrom(start source.Span) source.Span {
	return start.Cover(p.lastSpan)
}

func (p *Parser) emit(d diag.Diagnostic) {
	p.report.Report(d)
}

// parseDocs collects consecutive doc comments of kind k.
func (p *Parser) parseDocs(k token.Kind) []string {
	var docs []string
	for p.at(k) {
		docs = append(docs, p.advance().DocText())
	}
	return docs
}

// itemStart reports whether the parser sits at the first token of an item,
// after any doc comments.
func (p *Parser) itemStart() bool {
	return p.atOr(token.Ident, token.KwStruct, token.DocComment)
}

// parseModuleShell drives the shared Module production: inner docs, then
// items until EOF. parseItem handles one item including its doc comments.
func (p *Parser) parseModuleShell(parseItem func(doc []string) error) ([]string, error) {
	doc := p.parseDocs(token.InnerDocComment)
	for !p.at(token.EOF) {
		if !p.itemStart() {
			return nil, p.unexpected("module", token.Ident, token.KwStruct)
		}
		itemDoc := p.parseDocs(token.DocComment)
		if err := parseItem(itemDoc); err != nil {
			return nil, err
		}
	}
	return doc, nil
}

// parseFieldList parses `{ field, field, [field] }` with an optional
// trailing comma. The opening brace must be current.
func (p *Parser) parseFieldList(parseField func(doc []string) error) error {
	if _, err := p.expect(token.LBrace, "struct body"); err != nil {
		return err
	}
	for !p.at(token.RBrace) {
		if !p.atOr(token.Ident, token.DocComment) {
			return p.unexpected("struct field", token.Ident, token.RBrace)
		}
		doc := p.parseDocs(token.DocComment)
		if err := parseField(doc); err != nil {
			return err
		}
		if _, ok := p.eat(token.Comma); !ok {
			break
		}
	}
	if !p.at(token.RBrace) {
		return p.unexpected("struct body", token.Comma, token.RBrace)
	}
	p.advance()
	return nil
}
