package prune

import (
	"context"
	"slices"

	"poincarelog/internal/ast"
	"poincarelog/internal/trace"
)

// Reason explains why a step was judged useless.
type Reason uint8

const (
	ReasonUseful Reason = iota
	// ReasonIdentical: before and after are equal nodes.
	ReasonIdentical
	// ReasonTrivial: an active triviality class matched.
	ReasonTrivial
	// ReasonEmptyParts: every part of the step is useless.
	ReasonEmptyParts
)

func (r Reason) String() string {
	switch r {
	case ReasonIdentical:
		return "identical"
	case ReasonTrivial:
		return "trivial"
	case ReasonEmptyParts:
		return "useless parts"
	default:
		return "useful"
	}
}

type verdict struct {
	reason Reason
	class  Class
}

// Pruner evaluates and removes useless steps of one trace.
type Pruner struct {
	opts   Options
	exprs  *ast.Exprs
	memo   map[*ast.Step]verdict
	tracer trace.Tracer
	parent uint64

	removed int
}

// New prepares a Pruner for proc.
func New(proc *ast.ReduceProcess, opts Options) *Pruner {
	return &Pruner{
		opts:   opts,
		exprs:  proc.Exprs,
		memo:   make(map[*ast.Step]verdict),
		tracer: trace.Nop,
	}
}

// Apply prunes proc in place and returns how many steps and states it
// removed. Every removed step is reported as a ScopeNode point to the
// tracer found in ctx.
func Apply(ctx context.Context, proc *ast.ReduceProcess, opts Options) int {
	if opts.IncludeTrivial || proc == nil {
		return 0
	}
	p := New(proc, opts)
	p.tracer = trace.FromContext(ctx)
	p.parent = trace.CurrentSpan(ctx).SpanID
	proc.Steps = p.steps(proc.Steps)
	return p.removed
}

// Useful reports whether step survives pruning.
func (p *Pruner) Useful(step *ast.Step) bool {
	return p.judge(step).reason == ReasonUseful
}

func (p *Pruner) judge(step *ast.Step) verdict {
	if v, ok := p.memo[step]; ok {
		return v
	}
	v := p.evaluate(step)
	p.memo[step] = v
	return v
}

func (p *Pruner) evaluate(step *ast.Step) verdict {
	if len(step.Parts) > 0 {
		for _, part := range step.Parts {
			if p.partUseful(part) {
				return verdict{}
			}
		}
		return verdict{reason: ReasonEmptyParts}
	}
	// без пары снимков шаг не трогаем
	if !step.HasSnapshots() {
		return verdict{}
	}
	if p.exprs.Equal(step.Before, step.After) {
		return verdict{reason: ReasonIdentical}
	}
	if c := TrivialClass(p.exprs, step.Before, step.After, p.opts); c != ClassNone {
		return verdict{reason: ReasonTrivial, class: c}
	}
	return verdict{}
}

func (p *Pruner) partUseful(part ast.Part) bool {
	switch part := part.(type) {
	case *ast.State:
		return p.opts.IncludeStates
	case *ast.Step:
		return p.Useful(part)
	default:
		return true
	}
}

// steps prunes one sibling list of steps:
// 1. collect useless indices without touching the list
// 2. delete them from the highest index down
// 3. descend into the parts of survivors only
func (p *Pruner) steps(list []*ast.Step) []*ast.Step {
	var useless []int
	for i, s := range list {
		if !p.Useful(s) {
			useless = append(useless, i)
		}
	}
	for _, i := range slices.Backward(useless) {
		p.report(list[i])
		list = slices.Delete(list, i, i+1)
	}
	for _, s := range list {
		s.Parts = p.parts(s.Parts)
	}
	return list
}

// parts does the same for a mixed list of states and substeps.
func (p *Pruner) parts(list []ast.Part) []ast.Part {
	var useless []int
	for i, part := range list {
		if !p.partUseful(part) {
			useless = append(useless, i)
		}
	}
	for _, i := range slices.Backward(useless) {
		if sub, ok := list[i].(*ast.Step); ok {
			p.report(sub)
		} else {
			p.removed++
		}
		list = slices.Delete(list, i, i+1)
	}
	for _, part := range list {
		if sub, ok := part.(*ast.Step); ok {
			sub.Parts = p.parts(sub.Parts)
		}
	}
	return list
}

func (p *Pruner) report(step *ast.Step) {
	p.removed++
	if !p.tracer.Enabled() {
		return
	}
	v := p.judge(step)
	detail := v.reason.String()
	if v.reason == ReasonTrivial {
		detail += " " + v.class.String()
	}
	trace.Point(p.tracer, trace.ScopeNode, "removed:"+step.Name, p.parent, detail)
}
