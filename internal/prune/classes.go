package prune

import "poincarelog/internal/ast"

// Class names a family of steps considered trivial.
type Class uint8

const (
	ClassNone Class = iota
	// ClassNumberToRational: a BasedInteger rewritten into a Rational.
	ClassNumberToRational
	// ClassUndefined: the step result is or contains Undefined.
	ClassUndefined
)

func (c Class) String() string {
	switch c {
	case ClassNumberToRational:
		return "number-to-rational"
	case ClassUndefined:
		return "undefined"
	default:
		return "none"
	}
}

type triviality struct {
	class Class
	match func(e *ast.Exprs, before, after ast.NodeID) bool
}

// Порядок важен только для того, какой класс попадёт в трейс.
var trivialities = []triviality{
	{
		class: ClassNumberToRational,
		match: func(e *ast.Exprs, before, after ast.NodeID) bool {
			return e.Is(before, "BasedInteger") && e.Is(after, "Rational")
		},
	},
	{
		class: ClassUndefined,
		match: func(e *ast.Exprs, _, after ast.NodeID) bool {
			return e.Contains(after, "Undefined")
		},
	},
}

// TrivialClass returns the first active class that flags the pair, or
// ClassNone.
func TrivialClass(e *ast.Exprs, before, after ast.NodeID, opts Options) Class {
	for _, t := range trivialities {
		if opts.Active(t.class) && t.match(e, before, after) {
			return t.class
		}
	}
	return ClassNone
}
