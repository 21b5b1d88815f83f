package export

import (
	"poincarelog/internal/ast"
)

// SchemaVersion is bumped whenever the exported shape changes.
const SchemaVersion uint16 = 1

// Trace is the exported form of one pruned ReduceProcess.
type Trace struct {
	Schema   uint16 `json:"schema" msgpack:"schema"`
	File     string `json:"file" msgpack:"file"`
	Index    int    `json:"index" msgpack:"index"` // порядковый номер трейса в файле, с 0
	Format   string `json:"format" msgpack:"format"`
	Original *Node  `json:"original,omitempty" msgpack:"original,omitempty"`
	Result   *Node  `json:"result,omitempty" msgpack:"result,omitempty"`
	Steps    []Step `json:"steps" msgpack:"steps"`
}

// Node is an expression node. Attrs use the attribute keys of the log.
type Node struct {
	Name     string            `json:"name" msgpack:"name"`
	ID       string            `json:"id" msgpack:"id"`
	Attrs    map[string]string `json:"attrs,omitempty" msgpack:"attrs,omitempty"`
	Children []Node            `json:"children,omitempty" msgpack:"children,omitempty"`
}

type Step struct {
	Name   string `json:"name" msgpack:"name"`
	Before *Node  `json:"before,omitempty" msgpack:"before,omitempty"`
	After  *Node  `json:"after,omitempty" msgpack:"after,omitempty"`
	Parts  []Part `json:"parts,omitempty" msgpack:"parts,omitempty"`
}

// Part is either a state (Expr set) or a substep (Step set).
type Part struct {
	Kind  string `json:"kind" msgpack:"kind"` // "state" | "step"
	Label string `json:"label,omitempty" msgpack:"label,omitempty"`
	Expr  *Node  `json:"expr,omitempty" msgpack:"expr,omitempty"`
	Step  *Step  `json:"step,omitempty" msgpack:"step,omitempty"`
}

// FromProcess converts proc into its exported form.
func FromProcess(file string, index int, proc *ast.ReduceProcess) Trace {
	c := converter{exprs: proc.Exprs}
	t := Trace{
		Schema:   SchemaVersion,
		File:     file,
		Index:    index,
		Format:   proc.Format.String(),
		Original: c.node(proc.Original),
		Result:   c.node(proc.Result),
		Steps:    make([]Step, 0, len(proc.Steps)),
	}
	for _, s := range proc.Steps {
		t.Steps = append(t.Steps, c.step(s))
	}
	return t
}

type converter struct {
	exprs *ast.Exprs
}

func (c converter) node(id ast.NodeID) *Node {
	n := c.exprs.Get(id)
	if n == nil {
		return nil
	}
	out := &Node{Name: c.exprs.Name(id), ID: n.ID}
	if n.Attrs != nil {
		fields := n.Attrs.Fields()
		out.Attrs = make(map[string]string, len(fields))
		for _, f := range fields {
			out.Attrs[f.Key] = f.Value
		}
	}
	if len(n.Children) > 0 {
		out.Children = make([]Node, 0, len(n.Children))
		for _, ch := range n.Children {
			out.Children = append(out.Children, *c.node(ch))
		}
	}
	return out
}

func (c converter) step(s *ast.Step) Step {
	out := Step{
		Name:   s.Name,
		Before: c.node(s.Before),
		After:  c.node(s.After),
	}
	for _, p := range s.Parts {
		switch p := p.(type) {
		case *ast.State:
			out.Parts = append(out.Parts, Part{Kind: "state", Label: p.Label, Expr: c.node(p.Expr)})
		case *ast.Step:
			sub := c.step(p)
			out.Parts = append(out.Parts, Part{Kind: "step", Step: &sub})
		}
	}
	return out
}
