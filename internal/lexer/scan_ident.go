package lexer

import (
	"golang.org/x/text/unicode/norm"

	"ddl/internal/diag"
	"ddl/internal/token"
)

const utf8RuneSelf = 0x80

// scanIdentOrKeyword сканирует идентификатор и проверяет LookupKeyword.
// Non-ASCII identifiers are NFC-normalised so that composed and decomposed
// spellings produce equal labels; Span still covers the original bytes.
func (lx *Lexer) scanIdentOrKeyword() token.Token {
	start := lx.cursor.Mark()

	r, sz := lx.peekRune()
	if sz == 0 || !isIdentStartRune(r) {
		lx.bumpRune()
		lx.report(diag.LexUnknownChar, "unknown character", start)
		return lx.emit(token.Invalid, start)
	}
	lx.bumpRune()
	ascii := r < utf8RuneSelf
	for {
		b := lx.cursor.Peek()
		if b < utf8RuneSelf {
			if !isIdentContinueByte(b) {
				break
			}
			lx.cursor.Bump()
			continue
		}
		r2, sz2 := lx.peekRune()
		if sz2 == 0 || !isIdentContinueRune(r2) {
			break
		}
		ascii = false
		lx.bumpRune()
	}

	tok := lx.emit(token.Ident, start)
	if !ascii && !lx.opts.KeepNFD {
		tok.Text = norm.NFC.String(tok.Text)
	}
	if k, ok := token.LookupKeyword(tok.Text); ok {
		tok.Kind = k
	}
	return tok
}
