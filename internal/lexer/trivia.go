package lexer

import "ddl/internal/token"

// skipTrivia пропускает пробелы и обычные `//` комментарии. Doc comments
// (`///` и `//!`) остаются: they are tokens the grammar places.
func (lx *Lexer) skipTrivia() {
	for !lx.cursor.EOF() {
		switch ch := lx.cursor.Peek(); {
		case ch == ' ' || ch == '\t' || ch == '\n' || ch == '\r':
			lx.cursor.Bump()
		case lx.cursor.HasPrefix("//") && !lx.atDocComment():
			lx.skipLine()
		default:
			return
		}
	}
}

// atDocComment matches `///` (but not `////`) and `//!`.
func (lx *Lexer) atDocComment() bool {
	if lx.cursor.HasPrefix("//!") {
		return true
	}
	return lx.cursor.HasPrefix("///") && !lx.cursor.HasPrefix("////")
}

func (lx *Lexer) skipLine() {
	for !lx.cursor.EOF() && lx.cursor.Peek() != '\n' {
		lx.cursor.Bump()
	}
}

// scanDocComment is entered on '/': skipTrivia has already consumed plain
// comments, so anything that is not a doc comment here is a stray slash.
func (lx *Lexer) scanDocComment() token.Token {
	start := lx.cursor.Mark()
	if !lx.atDocComment() {
		return lx.scanPunct()
	}
	kind := token.DocComment
	if lx.cursor.HasPrefix("//!") {
		kind = token.InnerDocComment
	}
	lx.skipLine()
	tok := lx.emit(kind, start)
	// CR before LF was normalised by FileSet.Load; a lone CR is trimmed here.
	if n := len(tok.Text); n > 0 && tok.Text[n-1] == '\r' {
		tok.Text = tok.Text[:n-1]
		tok.Span.End--
	}
	return tok
}
