package ast

import (
	"strconv"

	"poincarelog/internal/source"
)

// Node is one expression snapshot node. Children live in the same Exprs.
type Node struct {
	Name     source.StringID
	ID       string // строка цифр, стабильна в пределах одного трейса
	Children []NodeID
	Attrs    Attributes // nil, если вид не распознан или ключей не хватает
	Span     source.Span
}

// Exprs owns every expression node of one trace.
type Exprs struct {
	Arena   *Arena[Node]
	Strings *source.Interner
}

// NewExprs creates an empty node store. A zero capHint uses 1<<8.
func NewExprs(capHint uint) *Exprs {
	if capHint == 0 {
		capHint = 1 << 8
	}
	return &Exprs{
		Arena:   NewArena[Node](capHint),
		Strings: source.NewInterner(),
	}
}

// New allocates a node without children.
func (e *Exprs) New(name, id string, attrs Attributes, span source.Span) NodeID {
	return NodeID(e.Arena.Allocate(Node{
		Name:  e.Strings.Intern(name),
		ID:    id,
		Attrs: attrs,
		Span:  span,
	}))
}

// SetChildren replaces the children of id and extends its span to cover
// the closing tag at end.
func (e *Exprs) SetChildren(id NodeID, children []NodeID, end uint32) {
	n := e.Get(id)
	if n == nil {
		return
	}
	n.Children = children
	if end > n.Span.End {
		n.Span.End = end
	}
}

// Get returns the node for id, or nil for NoNodeID.
func (e *Exprs) Get(id NodeID) *Node {
	return e.Arena.Get(uint32(id))
}

// Name returns the kind name of id ("" for NoNodeID).
func (e *Exprs) Name(id NodeID) string {
	n := e.Get(id)
	if n == nil {
		return ""
	}
	return e.Strings.MustLookup(n.Name)
}

// Is reports whether id is a node called name.
func (e *Exprs) Is(id NodeID, name string) bool {
	n := e.Get(id)
	if n == nil {
		return false
	}
	want, ok := e.Strings.Find(name)
	return ok && n.Name == want
}

// Contains reports whether id or any of its descendants is called name.
func (e *Exprs) Contains(id NodeID, name string) bool {
	want, ok := e.Strings.Find(name)
	if !ok {
		return false
	}
	var walk func(NodeID) bool
	walk = func(cur NodeID) bool {
		n := e.Get(cur)
		if n == nil {
			return false
		}
		if n.Name == want {
			return true
		}
		for _, c := range n.Children {
			if walk(c) {
				return true
			}
		}
		return false
	}
	return walk(id)
}

// Equal compares two nodes by numeric id and then pairwise by children up
// to the shorter child list. Names and attributes are ignored and extra
// children on either side do not matter.
func (e *Exprs) Equal(a, b NodeID) bool {
	na, nb := e.Get(a), e.Get(b)
	if na == nil || nb == nil {
		return na == nil && nb == nil
	}
	if !sameID(na.ID, nb.ID) {
		return false
	}
	n := min(len(na.Children), len(nb.Children))
	for i := 0; i < n; i++ {
		if !e.Equal(na.Children[i], nb.Children[i]) {
			return false
		}
	}
	return true
}

// sameID compares ids as unsigned numbers, so "07" equals "7".
// Ids that are not numbers fall back to exact string comparison.
func sameID(a, b string) bool {
	x, errA := strconv.ParseUint(a, 10, 64)
	y, errB := strconv.ParseUint(b, 10, 64)
	if errA != nil || errB != nil {
		return a == b
	}
	return x == y
}
