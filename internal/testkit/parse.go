package testkit

import (
	"strconv"
	"testing"

	"poincarelog/internal/ast"
	"poincarelog/internal/diag"
	"poincarelog/internal/lexer"
	"poincarelog/internal/parser"
	"poincarelog/internal/source"
)

// ParseTraces builds every trace of input and fails the test on any error.
func ParseTraces(t testing.TB, input string) ([]*ast.ReduceProcess, *source.File) {
	t.Helper()
	fs := source.NewFileSet()
	file := fs.Get(fs.AddVirtual("test.xml", []byte(input)))
	bag := diag.NewBag(20)
	r := diag.BagReporter{Bag: bag}
	procs, err := parser.ParseAll(lexer.New(file, lexer.Options{Reporter: r}), parser.Options{Reporter: r})
	if err != nil {
		t.Fatalf("parse failed: %v\n%s", err, diag.FormatShort(bag.Items(), fs, true))
	}
	for _, p := range procs {
		if err := CheckArena(p); err != nil {
			t.Fatalf("arena invariant: %v", err)
		}
		if err := CheckSpanInvariants(p, file); err != nil {
			t.Fatalf("span invariant: %v", err)
		}
	}
	return procs, file
}

// ParseTrace is ParseTraces for input holding exactly one trace.
func ParseTrace(t testing.TB, input string) *ast.ReduceProcess {
	t.Helper()
	procs, _ := ParseTraces(t, input)
	if len(procs) != 1 {
		t.Fatalf("want exactly 1 trace, got %d", len(procs))
	}
	return procs[0]
}

// StepNames flattens the step tree as "name@depth" in pre-order.
func StepNames(proc *ast.ReduceProcess) []string {
	var out []string
	proc.Walk(func(s *ast.Step, depth int) bool {
		out = append(out, s.Name+"@"+strconv.Itoa(depth))
		return true
	})
	return out
}
