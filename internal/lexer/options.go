package lexer

import (
	"poincarelog/internal/diag"
)

type Options struct {
	Reporter diag.Reporter // может быть nil — ошибка всё равно вернётся из Next
}

func (lx *Lexer) reporter() diag.Reporter {
	if lx.opts.Reporter == nil {
		return diag.NopReporter{}
	}
	return lx.opts.Reporter
}
