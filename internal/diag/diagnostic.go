package diag

import (
	"poincarelog/internal/source"
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

// Error carries a fatal diagnostic through ordinary error returns.
// The diagnostic has already been handed to a Reporter when an Error is
// created by a phase, so callers should not report it twice.
type Error struct {
	Diag Diagnostic
}

func (e *Error) Error() string {
	return e.Diag.Code.ID() + ": " + e.Diag.Message
}
