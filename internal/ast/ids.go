package ast

// NodeID indexes an expression node in its trace's Exprs arena.
type NodeID uint32

const NoNodeID NodeID = 0

func (id NodeID) IsValid() bool { return id != NoNodeID }
