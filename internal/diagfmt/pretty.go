package diagfmt

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"poincarelog/internal/diag"
	"poincarelog/internal/source"
)

type palette struct {
	err, warn, info, note, code, loc, caret *color.Color
}

func newPalette(enabled bool) palette {
	p := palette{
		err:   color.New(color.FgRed, color.Bold),
		warn:  color.New(color.FgYellow, color.Bold),
		info:  color.New(color.FgCyan),
		note:  color.New(color.FgBlue),
		code:  color.New(color.Faint),
		loc:   color.New(color.Bold),
		caret: color.New(color.FgGreen, color.Bold),
	}
	for _, c := range []*color.Color{p.err, p.warn, p.info, p.note, p.code, p.loc, p.caret} {
		if enabled {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return p
}

func (p palette) severity(sev diag.Severity) *color.Color {
	switch sev {
	case diag.SevError:
		return p.err
	case diag.SevWarning:
		return p.warn
	default:
		return p.info
	}
}

// Pretty форматирует диагностики в человекочитаемый вид.
// Идёт по bag.Items() (ожидается bag.Sort() заранее).
// Для каждого diag печатает:
// <path>:<line>:<col>: <severity> <CODE>: <Message>
// затем, если включено, строку лога с ^ под началом span, затем Notes.
func Pretty(w io.Writer, bag *diag.Bag, fs *source.FileSet, opts PrettyOpts) {
	if bag == nil {
		return
	}
	p := newPalette(opts.Color)
	for _, d := range bag.Items() {
		writeEntry(w, fs, opts, p, d.Primary, p.severity(d.Severity).Sprint(d.Severity.Label()), d.Code.ID(), d.Message)
		if !opts.ShowNotes {
			continue
		}
		for _, n := range d.Notes {
			writeEntry(w, fs, opts, p, n.Span, p.note.Sprint("note"), d.Code.ID(), n.Msg)
		}
	}
}

func writeEntry(w io.Writer, fs *source.FileSet, opts PrettyOpts, p palette, sp source.Span, sev, code, msg string) {
	var file *source.File
	var pos source.LineCol
	if fs != nil && sp.Located() {
		file = fs.Get(sp.File)
		pos, _ = fs.Resolve(sp)
	}
	if file != nil {
		loc := fmt.Sprintf("%s:%d:%d:", file.FormatPath(opts.PathMode.String(), fs.BaseDir()), pos.Line, pos.Col)
		fmt.Fprintf(w, "%s ", p.loc.Sprint(loc))
	}
	fmt.Fprintf(w, "%s %s: %s\n", sev, p.code.Sprint(code), msg)

	if !opts.Context || file == nil {
		return
	}
	line := file.GetLine(pos.Line)
	if line == "" {
		return
	}
	fmt.Fprintf(w, "    %s\n", line)
	pad := caretPadding(line, int(pos.Col)-1)
	fmt.Fprintf(w, "    %s%s\n", pad, p.caret.Sprint("^"))
}

// caretPadding keeps tabs so the caret lines up under the column.
func caretPadding(line string, col int) string {
	if col > len(line) {
		col = len(line)
	}
	var b strings.Builder
	for i := 0; i < col; i++ {
		if line[i] == '\t' {
			b.WriteByte('\t')
		} else {
			b.WriteByte(' ')
		}
	}
	return b.String()
}
