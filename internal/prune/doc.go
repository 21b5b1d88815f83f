// Package prune removes reduction steps that carry no information.
//
// Usefulness is decided bottom-up: a leaf step is useless when its before
// and after snapshots are equal or fall into an active triviality class,
// and a step with parts is useless when every part is. Removal then runs
// top-down over sibling lists and never visits removed subtrees.
package prune
