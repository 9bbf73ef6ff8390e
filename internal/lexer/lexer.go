package lexer

import (
	"ddl/internal/diag"
	"ddl/internal/source"
	"ddl/internal/token"
)

// Lexer turns a source file into the token stream both parsers consume.
type Lexer struct {
	file   *source.File
	cursor Cursor
	opts   Options
	look   *token.Token // 1 элементный буфер для токена
}

func New(file *source.File, opts Options) *Lexer {
	if opts.MaxTokenLength == 0 {
		opts.MaxTokenLength = DefaultMaxTokenLength
	}
	return &Lexer{
		file:   file,
		cursor: NewCursor(file),
		opts:   opts,
	}
}

// Tokenize lexes the whole file. The result always ends with exactly one EOF.
func Tokenize(file *source.File, opts Options) []token.Token {
	lx := New(file, opts)
	toks := make([]token.Token, 0, len(file.Content)/4+1)
	for {
		tok := lx.Next()
		toks = append(toks, tok)
		if tok.Kind == token.EOF {
			return toks
		}
	}
}

// Next возвращает следующий значимый токен. После EOF всегда возвращает EOF.
func (lx *Lexer) Next() token.Token {
	if lx.look != nil {
		tok := *lx.look
		lx.look = nil
		return tok
	}

	lx.skipTrivia()
	if lx.cursor.EOF() {
		return token.Token{Kind: token.EOF, Span: lx.emptySpan()}
	}

	start := lx.cursor.Mark()
	ch := lx.cursor.Peek()
	var tok token.Token
	switch {
	case ch == '/':
		tok = lx.scanDocComment()
	case isIdentStartByte(ch) || ch >= utf8RuneSelf:
		tok = lx.scanIdentOrKeyword()
	case isDec(ch), (ch == '-' || ch == '+') && isDec(lx.cursor.PeekAt(1)):
		tok = lx.scanNumber()
	case ch == '"':
		tok = lx.scanQuoted('"', token.StringLit)
	case ch == '\'':
		tok = lx.scanQuoted('\'', token.CharLit)
	default:
		tok = lx.scanPunct()
	}
	return lx.checkLength(tok, start)
}

// Peek возвращает следующий токен, не потребляя его.
func (lx *Lexer) Peek() token.Token {
	t := lx.Next()
	lx.look = &t
	return t
}

func (lx *Lexer) emptySpan() source.Span {
	return source.Span{File: lx.file.ID, Start: lx.cursor.Off, End: lx.cursor.Off}
}

func (lx *Lexer) text(sp source.Span) string {
	return string(lx.file.Content[sp.Start:sp.End])
}

func (lx *Lexer) emit(k token.Kind, m Mark) token.Token {
	sp := lx.cursor.SpanFrom(m)
	return token.Token{Kind: k, Span: sp, Text: lx.text(sp)}
}

func (lx *Lexer) checkLength(tok token.Token, m Mark) token.Token {
	if tok.Span.Len() <= lx.opts.MaxTokenLength {
		return tok
	}
	lx.report(diag.LexTokenTooLong, "token exceeds the maximum length", m)
	tok.Kind = token.Invalid
	return tok
}
