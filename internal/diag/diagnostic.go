package diag

import (
	"fmt"

	"ddl/internal/source"
)

type Note struct {
	Span source.Span
	Msg  string
}

type Diagnostic struct {
	Severity Severity
	Code     Code
	Message  string
	Primary  source.Span
	Notes    []Note
}

func New(sev Severity, code Code, primary source.Span, msg string) Diagnostic {
	return Diagnostic{
		Severity: sev,
		Code:     code,
		Primary:  primary,
		Message:  msg,
	}
}

func NewError(code Code, primary source.Span, msg string) Diagnostic {
	return New(SevError, code, primary, msg)
}

// UnknownGlobal builds the diagnostic for a core identifier outside the
// primitive vocabulary.
func UnknownGlobal(primary source.Span, name string) Diagnostic {
	return NewError(SemUnknownGlobal, primary, fmt.Sprintf("unknown global `%s`", name))
}

// MalformedLiteral builds the diagnostic for a literal that failed conversion.
func MalformedLiteral(primary source.Span, text string, cause error) Diagnostic {
	msg := fmt.Sprintf("malformed literal `%s`", text)
	if cause != nil {
		msg += ": " + cause.Error()
	}
	return NewError(SemMalformedLiteral, primary, msg)
}

func (d Diagnostic) WithNote(sp source.Span, msg string) Diagnostic {
	d.Notes = append(d.Notes, Note{Span: sp, Msg: msg})
	return d
}
