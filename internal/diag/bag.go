package diag

import (
	"sort"
)

// Bag collects diagnostics up to a limit.
type Bag struct {
	items []Diagnostic
	max   int
}

func NewBag(max int) *Bag {
	if max <= 0 {
		max = 100
	}
	return &Bag{
		items: make([]Diagnostic, 0, 8),
		max:   max,
	}
}

// Add добавляет диагностику, учитывая лимит.
// Ошибки добавляются всегда, чтобы фатальная причина не потерялась.
func (b *Bag) Add(d Diagnostic) bool {
	if len(b.items) >= b.max && d.Severity < SevError {
		return false
	}
	b.items = append(b.items, d)
	return true
}

// HasErrors возвращает true, если есть хотя бы одна диагностика с Severity >= Error
func (b *Bag) HasErrors() bool {
	for i := range b.items {
		if b.items[i].Severity >= SevError {
			return true
		}
	}
	return false
}

// HasWarnings reports whether anything at warning level or above was added.
func (b *Bag) HasWarnings() bool {
	for i := range b.items {
		if b.items[i].Severity >= SevWarning {
			return true
		}
	}
	return false
}

func (b *Bag) Len() int {
	return len(b.items)
}

// Items возвращает read-only slice диагностик.
func (b *Bag) Items() []Diagnostic {
	return b.items
}

// Sort orders by file, start offset, then severity (errors first) and code.
// Unlocated diagnostics sort before located ones.
func (b *Bag) Sort() {
	sort.SliceStable(b.items, func(i, j int) bool {
		di, dj := b.items[i].Primary, b.items[j].Primary
		if di.Located() != dj.Located() {
			return !di.Located()
		}
		if di.File != dj.File {
			return di.File < dj.File
		}
		if di.Start != dj.Start {
			return di.Start < dj.Start
		}
		if b.items[i].Severity != b.items[j].Severity {
			return b.items[i].Severity > b.items[j].Severity
		}
		return b.items[i].Code < b.items[j].Code
	})
}
