package testkit

import (
	"fmt"

	"fortio.org/safecast"

	"poincarelog/internal/ast"
	"poincarelog/internal/source"
)

// CheckSpanInvariants runs a minimal set of span invariants on a parsed trace:
// 1) the trace span is non-empty and within file content bounds
// 2) every expression node span lies inside its parent's span
// 3) every step span lies inside the trace span
func CheckSpanInvariants(proc *ast.ReduceProcess, sf *source.File) error {
	if proc == nil || sf == nil {
		return fmt.Errorf("nil trace or file")
	}
	sp := proc.Span
	if sp.File != sf.ID {
		return fmt.Errorf("trace span points to different file id: got=%d want=%d", sp.File, sf.ID)
	}
	lenContent, err := safecast.Conv[uint32](len(sf.Content))
	if err != nil {
		return fmt.Errorf("len content overflow: %w", err)
	}
	if sp.End <= sp.Start || sp.End > lenContent {
		return fmt.Errorf("trace span %v out of bounds (content %d)", sp, lenContent)
	}

	var checkNode func(id ast.NodeID, outer source.Span) error
	checkNode = func(id ast.NodeID, outer source.Span) error {
		n := proc.Exprs.Get(id)
		if n == nil {
			return nil
		}
		if !inside(n.Span, outer) {
			return fmt.Errorf("node %s#%s span %v is outside %v", proc.Exprs.Name(id), n.ID, n.Span, outer)
		}
		for _, c := range n.Children {
			if err := checkNode(c, n.Span); err != nil {
				return err
			}
		}
		return nil
	}

	for _, id := range []ast.NodeID{proc.Original, proc.Result} {
		if err := checkNode(id, sp); err != nil {
			return err
		}
	}
	var stepErr error
	proc.Walk(func(s *ast.Step, _ int) bool {
		if stepErr != nil {
			return false
		}
		if !inside(s.Span, sp) {
			stepErr = fmt.Errorf("step %q span %v is outside trace %v", s.Name, s.Span, sp)
			return false
		}
		for _, id := range []ast.NodeID{s.Before, s.After} {
			if err := checkNode(id, s.Span); err != nil {
				stepErr = err
				return false
			}
		}
		return true
	})
	return stepErr
}

func inside(sp, outer source.Span) bool {
	return sp.File == outer.File && sp.Start >= outer.Start && sp.End <= outer.End
}

// CheckArena verifies that every node reachable from the trace resolves in
// its arena and that Parenthesis nodes have exactly one child.
func CheckArena(proc *ast.ReduceProcess) error {
	e := proc.Exprs
	var check func(id ast.NodeID) error
	check = func(id ast.NodeID) error {
		n := e.Get(id)
		if n == nil {
			return fmt.Errorf("dangling node id %d", id)
		}
		if e.Is(id, "Parenthesis") && len(n.Children) != 1 {
			return fmt.Errorf("Parenthesis#%s has %d children", n.ID, len(n.Children))
		}
		for _, c := range n.Children {
			if err := check(c); err != nil {
				return err
			}
		}
		return nil
	}

	roots := []ast.NodeID{proc.Original, proc.Result}
	proc.Walk(func(s *ast.Step, _ int) bool {
		roots = append(roots, s.Before, s.After)
		for _, p := range s.Parts {
			if st, ok := p.(*ast.State); ok {
				roots = append(roots, st.Expr)
			}
		}
		return true
	})
	for _, id := range roots {
		if !id.IsValid() {
			continue
		}
		if err := check(id); err != nil {
			return err
		}
	}
	return nil
}
