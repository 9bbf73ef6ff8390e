package lexer

import (
	"ddl/internal/diag"
	"ddl/internal/token"
)

// scanQuoted scans a string or char literal up to the matching quote on the
// same line. Escapes are skipped, not decoded.
func (lx *Lexer) scanQuoted(quote byte, kind token.Kind) token.Token {
	start := lx.cursor.Mark()
	lx.cursor.Bump()
	for {
		if lx.cursor.EOF() || lx.cursor.Peek() == '\n' {
			code, what := diag.LexUnterminatedString, "unterminated string"
			if kind == token.CharLit {
				code, what = diag.LexUnterminatedChar, "unterminated character literal"
			}
			lx.report(code, what, start)
			return lx.emit(token.Invalid, start)
		}
		switch lx.cursor.Bump() {
		case '\\':
			if lx.cursor.Peek() != '\n' {
				lx.bumpRune()
			}
		case quote:
			return lx.emit(kind, start)
		}
	}
}
