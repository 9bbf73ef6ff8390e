package lexer

import "ddl/internal/token"

// scanNumber greedily takes [+-]? digit followed by digits, letters, '_',
// fractional dots and signed exponents. Validation is left to the literal
// package, so a payload such as `0b102` still becomes one NumberLit and the
// core parser reports it as a malformed literal.
func (lx *Lexer) scanNumber() token.Token {
	start := lx.cursor.Mark()
	if ch := lx.cursor.Peek(); ch == '+' || ch == '-' {
		lx.cursor.Bump()
	}
	hex := lx.cursor.PeekAt(0) == '0' && (lx.cursor.PeekAt(1) == 'x' || lx.cursor.PeekAt(1) == 'X')
	for !lx.cursor.EOF() {
		ch := lx.cursor.Peek()
		switch {
		case isIdentContinueByte(ch):
			lx.cursor.Bump()
			if !hex && (ch == 'e' || ch == 'E') {
				sign := lx.cursor.Peek()
				if (sign == '+' || sign == '-') && isDec(lx.cursor.PeekAt(1)) {
					lx.cursor.Bump()
				}
			}
		case ch == '.' && isDec(lx.cursor.PeekAt(1)):
			lx.cursor.Bump()
		default:
			return lx.emit(token.NumberLit, start)
		}
	}
	return lx.emit(token.NumberLit, start)
}
