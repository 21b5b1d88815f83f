package format

import (
	"fmt"
	"strings"

	"poincarelog/internal/ast"
	"poincarelog/internal/source"
)

// ArityError is returned when a node cannot be rendered with the number of
// children it has.
type ArityError struct {
	Kind string
	ID   string
	Want int
	Got  int
	Span source.Span
}

func (e *ArityError) Error() string {
	return fmt.Sprintf("%s(%s) can only have exactly %d child, found %d", e.Kind, e.ID, e.Want, e.Got)
}

// Printer renders expression nodes of one trace.
type Printer struct {
	exprs *ast.Exprs
	style *Style
	long  bool
}

func NewPrinter(exprs *ast.Exprs, style *Style, long bool) *Printer {
	if style == nil {
		style = NewStyle(false)
	}
	return &Printer{exprs: exprs, style: style, long: long}
}

// Expr renders id at nesting depth 0. An absent id renders as "".
func (p *Printer) Expr(id ast.NodeID) (string, error) {
	return p.expr(id, 0)
}

func (p *Printer) expr(id ast.NodeID, depth int) (string, error) {
	n := p.exprs.Get(id)
	if n == nil {
		return "", nil
	}
	if p.long {
		return p.longForm(id, n, depth, true)
	}
	out, err := p.shortForm(id, n, depth)
	if err != nil {
		return "", err
	}
	return p.style.Nesting(depth, out), nil
}

// longForm renders Name(id)[: attrs][ { child, child, }]. Children use long
// form when longChildren is set and short form otherwise.
func (p *Printer) longForm(id ast.NodeID, n *ast.Node, depth int, longChildren bool) (string, error) {
	var sb strings.Builder
	sb.WriteString(p.exprs.Name(id))
	sb.WriteString(p.style.ID("(" + n.ID + ")"))
	if n.Attrs != nil {
		sb.WriteString(": ")
		sb.WriteString(p.style.Attrs(Payload(n.Attrs)))
	}
	if len(n.Children) > 0 {
		sb.WriteString(" { ")
		for _, c := range n.Children {
			var (
				child string
				err   error
			)
			if longChildren {
				child, err = p.longForm(c, p.exprs.Get(c), depth+1, true)
			} else {
				child, err = p.expr(c, depth+1)
			}
			if err != nil {
				return "", err
			}
			sb.WriteString(child)
			sb.WriteString(", ")
		}
		sb.WriteString("}")
	}
	return p.style.Nesting(depth, sb.String()), nil
}

func (p *Printer) shortForm(id ast.NodeID, n *ast.Node, depth int) (string, error) {
	name := p.exprs.Name(id)

	if n.Attrs != nil {
		return Payload(n.Attrs), nil
	}

	if op, ok := infixOps[name]; ok {
		args, err := p.children(n, depth)
		if err != nil {
			return "", err
		}
		// скобки только вокруг детей с несколькими собственными детьми
		for i, c := range n.Children {
			if len(p.exprs.Get(c).Children) > 1 {
				args[i] = "(" + args[i] + ")"
			}
		}
		return strings.Join(args, " "+op+" "), nil
	}

	if fn, ok := prefixFuncs[name]; ok {
		args, err := p.children(n, depth)
		if err != nil {
			return "", err
		}
		return fn + "(" + strings.Join(args, ", ") + ")", nil
	}

	if plain, ok := plainNames[name]; ok {
		return plain, nil
	}

	if name == kindParenthesis {
		if len(n.Children) != 1 {
			return "", &ArityError{Kind: name, ID: n.ID, Want: 1, Got: len(n.Children), Span: n.Span}
		}
		inner, err := p.expr(n.Children[0], depth+1)
		if err != nil {
			return "", err
		}
		return "{" + inner + "}", nil
	}

	return p.longForm(id, n, depth, false)
}

func (p *Printer) children(n *ast.Node, depth int) ([]string, error) {
	out := make([]string, len(n.Children))
	for i, c := range n.Children {
		s, err := p.expr(c, depth+1)
		if err != nil {
			return nil, err
		}
		out[i] = s
	}
	return out, nil
}
