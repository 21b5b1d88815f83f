package parser

import (
	"errors"
	"io"

	"poincarelog/internal/ast"
	"poincarelog/internal/diag"
	"poincarelog/internal/lexer"
	"poincarelog/internal/token"
)

type Options struct {
	Reporter diag.Reporter
}

// Parser — состояние построителя трейсов на один файл.
// It pulls tag events from the lexer and returns one ReduceProcess at a time.
type Parser struct {
	lx  *lexer.Lexer
	ctx *Context
	err error // первая фатальная ошибка; после неё Next всегда её возвращает
}

func New(lx *lexer.Lexer, opts Options) *Parser {
	return &Parser{
		lx:  lx,
		ctx: NewContext(lx.File(), opts.Reporter),
	}
}

// Next builds the next trace of the document. It returns io.EOF once the
// document is exhausted. Any malformed construct is fatal: the diagnostic
// is reported and every later call returns the same *diag.Error.
func (p *Parser) Next() (*ast.ReduceProcess, error) {
	if p.err != nil {
		return nil, p.err
	}
	proc, err := p.next()
	if err != nil {
		p.err = err
	}
	return proc, err
}

func (p *Parser) next() (*ast.ReduceProcess, error) {
	tok, err := p.lx.Next()
	if err != nil {
		return nil, err
	}
	switch {
	case tok.Kind == token.EOF:
		return nil, io.EOF
	case tok.IsStart(tagReduceProcess):
		b := traceBuilder{p: p, proc: ast.NewReduceProcess(tok.Span)}
		return b.process()
	default:
		return nil, p.ctx.Unexpected(tok, "document")
	}
}

// ParseAll collects every trace of the document.
func ParseAll(lx *lexer.Lexer, opts Options) ([]*ast.ReduceProcess, error) {
	p := New(lx, opts)
	var out []*ast.ReduceProcess
	for {
		proc, err := p.Next()
		if errors.Is(err, io.EOF) {
			return out, nil
		}
		if err != nil {
			return out, err
		}
		out = append(out, proc)
	}
}
