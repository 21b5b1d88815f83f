package parser

import (
	"poincarelog/internal/ast"
	"poincarelog/internal/diag"
	"poincarelog/internal/token"
)

const kindParenthesis = "Parenthesis"

// expr builds one expression node from its start tag up to the matching end
// tag. Any nested start tag is a child; anything else is fatal.
func (b *traceBuilder) expr(start token.Token) (ast.NodeID, error) {
	ctx := b.p.ctx
	id, err := ctx.Attr(start, "id", diag.DocMissingID,
		"no id for node `%s` at position `%d`", start.Name, start.Span.Start)
	if err != nil {
		return ast.NoNodeID, err
	}

	exprs := b.proc.Exprs
	node := exprs.New(start.Name, id, ast.ParseAttributes(start.Name, start.Attr), start.Span)

	// дети копятся локально: Allocate в арене может сдвинуть *Node
	var children []ast.NodeID
	for {
		tok, err := b.p.lx.Next()
		if err != nil {
			return ast.NoNodeID, err
		}
		switch tok.Kind {
		case token.StartTag:
			child, err := b.expr(tok)
			if err != nil {
				return ast.NoNodeID, err
			}
			children = append(children, child)
		case token.EndTag:
			if tok.Name != start.Name {
				return ast.NoNodeID, ctx.Mismatched(tok, start.Name)
			}
			if start.Name == kindParenthesis && len(children) != 1 {
				return ast.NoNodeID, ctx.Fail(diag.DocParenthesisArity, start.Span,
					"Parenthesis can only have exactly one child, found %d at position %d", len(children), start.Span.Start)
			}
			exprs.SetChildren(node, children, tok.Span.End)
			return node, nil
		default:
			return ast.NoNodeID, ctx.Unexpected(tok, "<"+start.Name+">")
		}
	}
}
