package token_test

import (
	"testing"

	"ddl/internal/source"
	"ddl/internal/token"
)

func tok(k token.Kind) token.Token {
	return token.Token{Kind: k, Span: source.Span{Start: 0, End: 0}}
}

func TestIsLiteral(t *testing.T) {
	for _, k := range []token.Kind{token.NumberLit, token.StringLit, token.CharLit} {
		if !tok(k).IsLiteral() {
			t.Fatalf("%v should be literal", k)
		}
	}
	for _, k := range []token.Kind{token.Ident, token.KwInt, token.Bang, token.DocComment} {
		if tok(k).IsLiteral() {
			t.Fatalf("%v must NOT be literal", k)
		}
	}
}

func TestPunctAndKeywordRanges(t *testing.T) {
	punct := []token.Kind{
		token.LBrace, token.RBrace, token.LParen, token.RParen, token.Bang,
		token.Colon, token.Comma, token.Equals, token.Semicolon,
	}
	for _, k := range punct {
		if !tok(k).IsPunct() || tok(k).IsKeyword() {
			t.Errorf("%v: IsPunct=%v IsKeyword=%v", k, tok(k).IsPunct(), tok(k).IsKeyword())
		}
	}
	kws := []token.Kind{
		token.KwBoolElim, token.KwElse, token.KwF32, token.KwF64,
		token.KwIf, token.KwInt, token.KwItem, token.KwStruct,
	}
	for _, k := range kws {
		if !tok(k).IsKeyword() || tok(k).IsPunct() {
			t.Errorf("%v: IsPunct=%v IsKeyword=%v", k, tok(k).IsPunct(), tok(k).IsKeyword())
		}
	}
}

func TestKindStringIsTotal(t *testing.T) {
	for k := token.Invalid; k <= token.Semicolon; k++ {
		if s := k.String(); s == "" || s == "Kind(?)" {
			t.Errorf("kind %d has no name", k)
		}
		if k.Describe() == "" {
			t.Errorf("kind %v has no description", k)
		}
	}
	if got := token.Semicolon.Describe(); got != "`;`" {
		t.Errorf("Describe(Semicolon) = %q", got)
	}
	if got := token.EOF.Describe(); got != "end of file" {
		t.Errorf("Describe(EOF) = %q", got)
	}
}

func TestDocText(t *testing.T) {
	cases := map[string]string{
		"/// A point":    "A point",
		"///no space":    "no space",
		"//! Module doc": "Module doc",
		"///":            "",
		"///  indented":  " indented",
	}
	for in, want := range cases {
		if got := (token.Token{Kind: token.DocComment, Text: in}).DocText(); got != want {
			t.Errorf("DocText(%q) = %q, want %q", in, got, want)
		}
	}
}
