package parser

import (
	"fmt"
	"strings"

	"ddl/internal/diag"
	"ddl/internal/source"
	"ddl/internal/token"
)

// StructuralError is a grammar violation. No module is produced for the
// file; callers decide whether to skip it or stop.
type StructuralError struct {
	Span     source.Span
	Found    token.Token
	Expected []token.Kind
	Context  string // production being parsed, e.g. "struct field"
	Detail   string // set for non-token failures such as invalid labels
}

func (e *StructuralError) Error() string {
	var b strings.Builder
	if e.Detail != "" {
		b.WriteString(e.Detail)
	} else {
		b.WriteString("expected ")
		b.WriteString(describeKinds(e.Expected))
		b.WriteString(", found ")
		b.WriteString(describeFound(e.Found))
	}
	if e.Context != "" {
		fmt.Fprintf(&b, " in %s", e.Context)
	}
	return b.String()
}

// Diagnostic converts the failure for display next to the recoverable
// findings of other files.
func (e *StructuralError) Diagnostic() diag.Diagnostic {
	code := diag.SynUnexpectedToken
	switch {
	case e.Found.Kind == token.EOF && expectsCloser(e.Expected):
		code = diag.SynUnclosedDelimiter
	case len(e.Expected) == 1 && e.Expected[0] == token.Semicolon:
		code = diag.SynExpectSemicolon
	case len(e.Expected) == 1 && e.Expected[0] == token.Ident:
		code = diag.SynExpectIdentifier
	case e.Context == "term":
		code = diag.SynExpectTerm
	}
	return diag.NewError(code, e.Span, e.Error())
}

func expectsCloser(kinds []token.Kind) bool {
	for _, k := range kinds {
		if k == token.RBrace || k == token.RParen {
			return true
		}
	}
	return false
}

func describeKinds(kinds []token.Kind) string {
	switch len(kinds) {
	case 0:
		return "nothing"
	case 1:
		return kinds[0].Describe()
	}
	parts := make([]string, len(kinds))
	for i, k := range kinds {
		parts[i] = k.Describe()
	}
	return strings.Join(parts[:len(parts)-1], ", ") + " or " + parts[len(parts)-1]
}

func describeFound(tok token.Token) string {
	switch tok.Kind {
	case token.EOF:
		return tok.Kind.Describe()
	case token.Ident, token.NumberLit, token.StringLit, token.CharLit, token.Invalid:
		return fmt.Sprintf("%s `%s`", tok.Kind.Describe(), tok.Text)
	}
	return tok.Kind.Describe()
}
