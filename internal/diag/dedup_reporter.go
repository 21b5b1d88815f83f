package diag

import "poincarelog/internal/source"

// DedupReporter forwards each warning once. Repeating `--bogus` on the
// command line, or a key the config and the flags both spell wrong, yields
// one CFG4001 line. Errors always pass through: every one of them stops
// the run.
type DedupReporter struct {
	next   Reporter
	warned map[warningKey]bool
}

type warningKey struct {
	code Code
	span source.Span
	msg  string
}

func NewDedupReporter(next Reporter) *DedupReporter {
	return &DedupReporter{next: next, warned: map[warningKey]bool{}}
}

func (r *DedupReporter) Report(code Code, sev Severity, primary source.Span, msg string, notes []Note) {
	if r == nil || r.next == nil {
		return
	}
	if sev < SevError {
		key := warningKey{code: code, span: primary, msg: msg}
		if r.warned[key] {
			return
		}
		r.warned[key] = true
	}
	r.next.Report(code, sev, primary, msg, notes)
}
