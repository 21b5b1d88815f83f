package ast

import (
	"testing"

	"poincarelog/internal/source"
)

// leaf/tree — маленькие конструкторы для тестов
func leaf(e *Exprs, name, id string) NodeID {
	return e.New(name, id, nil, source.Span{})
}

func tree(e *Exprs, name, id string, children ...NodeID) NodeID {
	n := e.New(name, id, nil, source.Span{})
	e.SetChildren(n, children, 0)
	return n
}

func TestEqualIgnoresNameAndAttributes(t *testing.T) {
	e := NewExprs(0)
	a := e.New("Integer", "1", Integer{Value: "3"}, source.Span{})
	b := e.New("Rational", "1", Rational{Negative: "0", Numerator: "3", Denominator: "1"}, source.Span{})
	if !e.Equal(a, b) {
		t.Fatalf("nodes with the same id and no children must be equal")
	}
}

func TestEqualNumericIDs(t *testing.T) {
	e := NewExprs(0)
	tests := []struct {
		a, b string
		want bool
	}{
		{"7", "07", true},
		{"7", "8", false},
		{"x", "x", true},
		{"x", "7", false},
	}
	for _, tt := range tests {
		if got := e.Equal(leaf(e, "Integer", tt.a), leaf(e, "Integer", tt.b)); got != tt.want {
			t.Fatalf("Equal(%q,%q): want %v got %v", tt.a, tt.b, tt.want, got)
		}
	}
}

func TestEqualTruncatesChildren(t *testing.T) {
	e := NewExprs(0)
	short := tree(e, "Addition", "1", leaf(e, "Integer", "2"))
	long := tree(e, "Addition", "1", leaf(e, "Integer", "2"), leaf(e, "Integer", "3"))
	if !e.Equal(short, long) {
		t.Fatalf("extra children beyond the shorter list must be ignored")
	}
	differ := tree(e, "Addition", "1", leaf(e, "Integer", "9"))
	if e.Equal(short, differ) {
		t.Fatalf("paired children with different ids must make nodes unequal")
	}
}

func TestContainsAndIs(t *testing.T) {
	e := NewExprs(0)
	root := tree(e, "Addition", "1",
		leaf(e, "Integer", "2"),
		tree(e, "Multiplication", "3", leaf(e, "Undefined", "4")))
	if !e.Contains(root, "Undefined") {
		t.Fatalf("Contains must look at every depth")
	}
	if e.Contains(root, "Power") {
		t.Fatalf("Contains reported a kind that is not in the tree")
	}
	if !e.Contains(root, "Addition") {
		t.Fatalf("Contains must include the root")
	}
	if !e.Is(root, "Addition") || e.Is(root, "Integer") || e.Name(NoNodeID) != "" {
		t.Fatalf("Is/Name mismatch")
	}
}

func TestStepWalk(t *testing.T) {
	inner := &Step{Name: "inner"}
	outer := &Step{Name: "outer", Parts: []Part{&State{Label: "x"}, inner}}
	p := &ReduceProcess{Steps: []*Step{outer, {Name: "second"}}}

	var names []string
	p.Walk(func(s *Step, depth int) bool {
		names = append(names, s.Name)
		return true
	})
	want := []string{"outer", "inner", "second"}
	if len(names) != len(want) {
		t.Fatalf("Walk: want %v got %v", want, names)
	}
	for i := range want {
		if names[i] != want[i] {
			t.Fatalf("Walk: want %v got %v", want, names)
		}
	}
	if p.CountSteps() != 3 {
		t.Fatalf("CountSteps: want 3 got %d", p.CountSteps())
	}
}
