package parser

import (
	"poincarelog/internal/ast"
	"poincarelog/internal/diag"
	"poincarelog/internal/token"
)

const (
	tagReduceProcess      = "ReduceProcess"
	tagOriginalExpression = "OriginalExpression"
	tagResultExpression   = "ResultExpression"
	tagStep               = "Step"
	tagState              = "State"

	labelBefore = "before"
	labelAfter  = "after"
)

// traceBuilder holds the state of one ReduceProcess being built.
type traceBuilder struct {
	p          *Parser
	proc       *ast.ReduceProcess
	labelled   bool // встретился хотя бы один <State>
	positional bool // встретился снимок без обёртки <State>
}

func (b *traceBuilder) process() (*ast.ReduceProcess, error) {
	ctx := b.p.ctx
	var seenOriginal, seenResult bool
	for {
		tok, err := b.p.lx.Next()
		if err != nil {
			return nil, err
		}
		switch {
		case tok.IsStart(tagStep):
			step, err := b.step(tok)
			if err != nil {
				return nil, err
			}
			b.proc.Steps = append(b.proc.Steps, step)

		case tok.IsStart(tagOriginalExpression), tok.IsStart(tagResultExpression):
			seen := &seenOriginal
			if tok.Name == tagResultExpression {
				seen = &seenResult
			}
			if *seen {
				return nil, ctx.Fail(diag.DocDuplicateWrapper, tok.Span,
					"second %s not allowed at position %d", tok.Name, tok.Span.Start)
			}
			*seen = true
			id, err := b.wrapped(tok)
			if err != nil {
				return nil, err
			}
			if tok.Name == tagOriginalExpression {
				b.proc.Original = id
			} else {
				b.proc.Result = id
			}

		case tok.IsEnd(tagReduceProcess):
			b.proc.Span.End = tok.Span.End
			b.proc.Format = b.format(seenResult)
			return b.proc, nil

		case tok.Kind == token.EndTag:
			return nil, ctx.Mismatched(tok, tagReduceProcess)

		default:
			return nil, ctx.Unexpected(tok, "<"+tagReduceProcess+">")
		}
	}
}

// format picks the layout of a finished trace. Any <State> means labelled.
// Without one, steps that carry no positional snapshot and no
// ResultExpression are labelled too: legacy traces always end with a
// result. A trace without steps stays legacy.
func (b *traceBuilder) format(seenResult bool) ast.Format {
	switch {
	case b.labelled:
		return ast.FormatLabelled
	case len(b.proc.Steps) > 0 && !b.positional && !seenResult:
		return ast.FormatLabelled
	default:
		return ast.FormatLegacy
	}
}

// wrapped builds the single expression held by a wrapper tag
// (OriginalExpression, ResultExpression, State). The wrapper must close
// right after that expression.
func (b *traceBuilder) wrapped(open token.Token) (ast.NodeID, error) {
	ctx := b.p.ctx
	inner, err := b.p.lx.Next()
	if err != nil {
		return ast.NoNodeID, err
	}
	if inner.Kind != token.StartTag {
		return ast.NoNodeID, ctx.Fail(diag.DocWrapperArity, inner.Span,
			"<%s> must hold exactly one expression, found `%s` at position %d", open.Name, inner, inner.Span.Start)
	}
	id, err := b.expr(inner)
	if err != nil {
		return ast.NoNodeID, err
	}

	closing, err := b.p.lx.Next()
	if err != nil {
		return ast.NoNodeID, err
	}
	switch {
	case closing.IsEnd(open.Name):
		return id, nil
	case closing.Kind == token.StartTag:
		return ast.NoNodeID, ctx.Fail(diag.DocWrapperArity, closing.Span,
			"<%s> must hold exactly one expression, found a second one at position %d", open.Name, closing.Span.Start)
	case closing.Kind == token.EndTag:
		return ast.NoNodeID, ctx.Mismatched(closing, open.Name)
	default:
		return ast.NoNodeID, ctx.Unexpected(closing, "<"+open.Name+">")
	}
}

func (b *traceBuilder) step(open token.Token) (*ast.Step, error) {
	ctx := b.p.ctx
	name, err := ctx.Attr(open, "name", diag.DocMissingName,
		"no name for step at position %d", open.Span.Start)
	if err != nil {
		return nil, err
	}
	step := &ast.Step{Name: name, Span: open.Span}

	for {
		tok, err := b.p.lx.Next()
		if err != nil {
			return nil, err
		}
		switch {
		case tok.IsStart(tagStep):
			sub, err := b.step(tok)
			if err != nil {
				return nil, err
			}
			step.Parts = append(step.Parts, sub)

		case tok.IsStart(tagState):
			b.labelled = true
			label, _ := tok.Attr("name")
			id, err := b.wrapped(tok)
			if err != nil {
				return nil, err
			}
			// before/after: последняя запись побеждает, дубликаты не проверяем
			switch label {
			case labelBefore:
				step.Before = id
			case labelAfter:
				step.After = id
			default:
				step.Parts = append(step.Parts, &ast.State{
					Label: label,
					Expr:  id,
					Span:  b.proc.Exprs.Get(id).Span.Cover(tok.Span),
				})
			}

		case tok.Kind == token.StartTag:
			b.positional = true
			id, err := b.expr(tok)
			if err != nil {
				return nil, err
			}
			switch {
			case !step.Before.IsValid():
				step.Before = id
			case !step.After.IsValid():
				step.After = id
			default:
				return nil, ctx.Fail(diag.DocStepArity, tok.Span,
					"A step can only have two nodes (step `%s`, third node at position %d)", name, tok.Span.Start)
			}

		case tok.IsEnd(tagStep):
			step.Span.End = tok.Span.End
			return step, nil

		case tok.Kind == token.EndTag:
			return nil, ctx.Mismatched(tok, tagStep)

		default:
			return nil, ctx.Unexpected(tok, "<"+tagStep+">")
		}
	}
}
