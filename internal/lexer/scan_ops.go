package lexer

import (
	"ddl/internal/diag"
	"ddl/internal/token"
)

var punct = [256]token.Kind{
	'{': token.LBrace,
	'}': token.RBrace,
	'(': token.LParen,
	')': token.RParen,
	'!': token.Bang,
	':': token.Colon,
	',': token.Comma,
	'=': token.Equals,
	';': token.Semicolon,
}

func (lx *Lexer) scanPunct() token.Token {
	start := lx.cursor.Mark()
	ch := lx.cursor.Peek()
	if k := punct[ch]; k != token.Invalid {
		lx.cursor.Bump()
		return lx.emit(k, start)
	}
	// неизвестный символ: съедаем всю руну, чтобы не резать UTF-8
	lx.bumpRune()
	lx.report(diag.LexUnknownChar, "unknown character", start)
	return lx.emit(token.Invalid, start)
}
