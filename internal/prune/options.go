package prune

// Options selects what counts as useless. The zero value is the default
// configuration: every triviality class is active and intermediate states
// are suppressed.
type Options struct {
	// IncludeTrivial disables filtering entirely.
	IncludeTrivial bool
	// IncludeNumberToRational keeps BasedInteger -> Rational steps.
	IncludeNumberToRational bool
	// IncludeUndefined keeps steps whose result contains Undefined.
	IncludeUndefined bool
	// IncludeStates keeps intermediate State parts.
	IncludeStates bool
}

// Active reports whether class c is treated as trivial under o.
func (o Options) Active(c Class) bool {
	switch c {
	case ClassNumberToRational:
		return !o.IncludeNumberToRational
	case ClassUndefined:
		return !o.IncludeUndefined
	default:
		return false
	}
}
