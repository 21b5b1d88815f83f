package ast

import (
	"poincarelog/internal/source"
)

// Format tells which step layout a trace was written in.
type Format uint8

const (
	// FormatLegacy: snapshots are positional children of Step, and the
	// trace carries a ResultExpression.
	FormatLegacy Format = iota
	// FormatLabelled: snapshots are wrapped in <State name="...">.
	FormatLabelled
)

func (f Format) String() string {
	if f == FormatLabelled {
		return "labelled"
	}
	return "legacy"
}

// Part is an entry of Step.Parts: *State or *Step.
type Part interface {
	part()
	PartSpan() source.Span
}

// State is an intermediate snapshot inside a step.
type State struct {
	Label string // пусто, если у State нет name
	Expr  NodeID
	Span  source.Span
}

// Step is one transformation applied during reduction.
type Step struct {
	Name   string
	Before NodeID
	After  NodeID
	Parts  []Part
	Span   source.Span
}

func (*State) part() {}
func (*Step) part()  {}

func (s *State) PartSpan() source.Span { return s.Span }
func (s *Step) PartSpan() source.Span  { return s.Span }

// HasSnapshots reports whether both before and after are present.
func (s *Step) HasSnapshots() bool {
	return s.Before.IsValid() && s.After.IsValid()
}

// Walk calls fn for s and every nested substep in pre-order.
// Returning false from fn skips the children of that step.
func (s *Step) Walk(depth int, fn func(step *Step, depth int) bool) {
	if !fn(s, depth) {
		return
	}
	for _, p := range s.Parts {
		if sub, ok := p.(*Step); ok {
			sub.Walk(depth+1, fn)
		}
	}
}

// ReduceProcess is one complete reduction trace.
type ReduceProcess struct {
	Exprs    *Exprs
	Original NodeID
	Result   NodeID
	Steps    []*Step
	Format   Format
	Span     source.Span
}

// NewReduceProcess creates an empty trace with its own node store.
func NewReduceProcess(span source.Span) *ReduceProcess {
	return &ReduceProcess{
		Exprs: NewExprs(0),
		Span:  span,
	}
}

// Walk visits every step of the trace in pre-order.
func (p *ReduceProcess) Walk(fn func(step *Step, depth int) bool) {
	for _, s := range p.Steps {
		s.Walk(0, fn)
	}
}

// CountSteps returns the number of steps at every depth.
func (p *ReduceProcess) CountSteps() int {
	n := 0
	p.Walk(func(*Step, int) bool {
		n++
		return true
	})
	return n
}
