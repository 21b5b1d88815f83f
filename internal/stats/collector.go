package stats

import (
	"cmp"
	"slices"

	"poincarelog/internal/ast"
)

// Row counts the steps with one name.
type Row struct {
	Name string
	Seen int // до фильтрации
	Kept int // после фильтрации
}

// Pruned is the number of steps with this name that were removed,
// directly or together with a removed parent.
func (r Row) Pruned() int { return r.Seen - r.Kept }

// Collector aggregates step counts over every trace of a run.
type Collector struct {
	rows   map[string]*Row
	traces int
}

func NewCollector() *Collector {
	return &Collector{rows: make(map[string]*Row)}
}

// Before counts the steps of proc as seen. Call it before pruning.
func (c *Collector) Before(proc *ast.ReduceProcess) {
	c.traces++
	proc.Walk(func(s *ast.Step, _ int) bool {
		c.row(s.Name).Seen++
		return true
	})
}

// After counts the steps of proc as kept. Call it after pruning.
func (c *Collector) After(proc *ast.ReduceProcess) {
	proc.Walk(func(s *ast.Step, _ int) bool {
		c.row(s.Name).Kept++
		return true
	})
}

func (c *Collector) row(name string) *Row {
	r, ok := c.rows[name]
	if !ok {
		r = &Row{Name: name}
		c.rows[name] = r
	}
	return r
}

// Traces returns how many traces were counted.
func (c *Collector) Traces() int { return c.traces }

// Rows returns one row per step name, most frequent first, ties by name.
func (c *Collector) Rows() []Row {
	out := make([]Row, 0, len(c.rows))
	for _, r := range c.rows {
		out = append(out, *r)
	}
	slices.SortFunc(out, func(a, b Row) int {
		if n := cmp.Compare(b.Seen, a.Seen); n != 0 {
			return n
		}
		return cmp.Compare(a.Name, b.Name)
	})
	return out
}

// Totals sums every row.
func (c *Collector) Totals() Row {
	t := Row{Name: "total"}
	for _, r := range c.rows {
		t.Seen += r.Seen
		t.Kept += r.Kept
	}
	return t
}
