package format

import (
	"fmt"
	"io"

	"poincarelog/internal/ast"
)

const (
	processIndent = "    "
	partIndent    = "|    "
	// absent renders a missing original or result expression.
	absent = "(none)"
)

// Options configures the trace renderer.
type Options struct {
	Long  bool // long form for every expression
	Color bool
}

// Renderer lays out whole traces.
type Renderer struct {
	style *Style
	long  bool
}

func NewRenderer(opts Options) *Renderer {
	return &Renderer{style: NewStyle(opts.Color), long: opts.Long}
}

// Write renders proc to w. Nothing is written if rendering fails.
func (r *Renderer) Write(w io.Writer, proc *ast.ReduceProcess) error {
	text, err := r.Process(proc)
	if err != nil {
		return err
	}
	if _, err := io.WriteString(w, text); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}
	return nil
}

// Process renders proc, including the empty line that ends it.
func (r *Renderer) Process(proc *ast.ReduceProcess) (string, error) {
	p := NewPrinter(proc.Exprs, r.style, r.long)
	var w Writer

	original, err := r.exprOr(p, proc.Original)
	if err != nil {
		return "", err
	}
	w.Line(r.style.Reduce("* Reduce") + " " + original + ":")

	for _, step := range proc.Steps {
		block, err := r.step(p, step)
		if err != nil {
			return "", err
		}
		w.Block(block, processIndent)
	}

	if proc.Format == ast.FormatLegacy || proc.Result.IsValid() {
		result, err := r.exprOr(p, proc.Result)
		if err != nil {
			return "", err
		}
		w.Line(r.style.Reduce("*->") + " " + result)
	}
	w.Line("")
	return w.String(), nil
}

func (r *Renderer) step(p *Printer, step *ast.Step) (string, error) {
	var w Writer
	w.Line(r.style.Step("/> " + step.Name))

	if step.Before.IsValid() {
		before, err := p.Expr(step.Before)
		if err != nil {
			return "", err
		}
		w.Line(r.style.Step("|") + " " + before)
	}

	for _, part := range step.Parts {
		var (
			block string
			err   error
		)
		switch part := part.(type) {
		case *ast.Step:
			block, err = r.step(p, part)
		case *ast.State:
			block, err = r.state(p, part)
		}
		if err != nil {
			return "", err
		}
		w.Block(block, partIndent)
	}

	marker := r.style.Step(`\_`)
	if step.After.IsValid() {
		after, err := p.Expr(step.After)
		if err != nil {
			return "", err
		}
		w.Line(marker + " " + after)
	} else {
		w.Line(marker)
	}
	return w.String(), nil
}

func (r *Renderer) state(p *Printer, st *ast.State) (string, error) {
	expr, err := p.Expr(st.Expr)
	if err != nil {
		return "", err
	}
	if st.Label == "" {
		return expr + "\n", nil
	}
	return st.Label + ": " + expr + "\n", nil
}

func (r *Renderer) exprOr(p *Printer, id ast.NodeID) (string, error) {
	if !id.IsValid() {
		return absent, nil
	}
	return p.Expr(id)
}
