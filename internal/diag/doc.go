// Package diag defines the diagnostic model shared by the lexer, the
// builders, the driver and the CLI.
//
// Every malformed-document condition in a reduction log is fatal. A phase
// that hits one reports a Diagnostic through its Reporter and returns the
// same diagnostic wrapped in *Error, so the caller can stop immediately
// while the CLI still prints a located message. Warnings (unknown options)
// go through the same Reporter and never stop the run.
//
// Codes are grouped by range: XML1xxx for tokenizer errors, DOC2xxx for
// document structure, IO3xxx for input files and CFG4xxx for configuration.
//
// Package diag does no formatting beyond FormatShort; the terminal renderer
// lives in internal/diagfmt.
package diag
