// Package format renders reduction traces as indented text.
//
// The expression printer has two forms. Long form dumps any node as
// Name(id): attributes { children, } and short form reproduces math
// notation (infix operators, prefix functions, literal values) for the
// kinds it knows, falling back to long form for the rest.
//
// The trace renderer opens a ReduceProcess with "* Reduce <original>:",
// closes it with "*-> <result>" and one empty line, and writes every step
// in between as
//
//	/> StepName
//	| <before>
//	|    /> SubStep
//	|    ...
//	\_ <after>
package format
