package token

import (
	"strings"

	"ddl/internal/source"
)

// Token represents a single source token with its location.
type Token struct {
	Kind Kind
	Span source.Span
	Text string
}

// IsLiteral reports whether the token is a number, string or char literal.
func (t Token) IsLiteral() bool {
	switch t.Kind {
	case NumberLit, StringLit, CharLit:
		return true
	default:
		return false
	}
}

// IsPunct reports whether the token is one of the fixed punctuation marks.
func (t Token) IsPunct() bool {
	return t.Kind >= LBrace && t.Kind <= Semicolon
}

// IsKeyword reports whether the token is a reserved word.
func (t Token) IsKeyword() bool {
	return t.Kind >= KwBoolElim && t.Kind <= KwStruct
}

// IsDoc reports whether the token is a doc comment of either flavour.
func (t Token) IsDoc() bool {
	return t.Kind == DocComment || t.Kind == InnerDocComment
}

// IsIdent reports whether the token is an identifier.
func (t Token) IsIdent() bool { return t.Kind == Ident }

// DocText strips the comment marker and one following space.
func (t Token) DocText() string {
	s := t.Text
	switch {
	case strings.HasPrefix(s, "///"), strings.HasPrefix(s, "//!"):
		s = s[3:]
	default:
		return s
	}
	return strings.TrimPrefix(s, " ")
}
