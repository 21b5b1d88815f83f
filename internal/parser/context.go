package parser

import (
	"fmt"

	"poincarelog/internal/diag"
	"poincarelog/internal/source"
	"poincarelog/internal/token"
)

// Context is what the builders share: where to report and how to word a
// fatal problem. It is injected so tests can collect diagnostics.
type Context struct {
	File     *source.File
	Reporter diag.Reporter
}

func NewContext(file *source.File, r diag.Reporter) *Context {
	if r == nil {
		r = diag.NopReporter{}
	}
	return &Context{File: file, Reporter: r}
}

// Attr looks up a required attribute. A missing one is reported with code
// and returned as an error.
func (c *Context) Attr(tok token.Token, key string, code diag.Code, format string, args ...any) (string, error) {
	if v, ok := tok.Attr(key); ok {
		return v, nil
	}
	return "", c.Fail(code, tok.Span, format, args...)
}

// Fail reports a fatal diagnostic at sp and returns it as *diag.Error.
func (c *Context) Fail(code diag.Code, sp source.Span, format string, args ...any) error {
	return diag.ReportError(c.Reporter, code, sp, fmt.Sprintf(format, args...))
}

// Unexpected reports an event that has no place inside within.
func (c *Context) Unexpected(tok token.Token, within string) error {
	return c.Fail(diag.DocUnexpectedEvent, tok.Span,
		"unexpected `%s` at position %d in %s", tok, tok.Span.Start, within)
}

// Mismatched reports an end tag that does not close open.
func (c *Context) Mismatched(tok token.Token, open string) error {
	return c.Fail(diag.DocMismatchedEnd, tok.Span,
		"mismatched end tag `%s` at position %d, expected `</%s>`", tok, tok.Span.Start, open)
}
