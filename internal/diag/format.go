package diag

import (
	"fmt"
	"path/filepath"
	"strings"

	"poincarelog/internal/source"
)

// FormatShort renders one line per diagnostic:
//
//	path:line:col: severity CODE: message
//
// Unlocated diagnostics drop the position prefix. Notes follow their
// diagnostic as "note" lines when includeNotes is set.
func FormatShort(diags []Diagnostic, fs *source.FileSet, includeNotes bool) string {
	var b strings.Builder
	for i := range diags {
		d := &diags[i]
		writeShortLine(&b, fs, d.Primary, d.Severity.Label(), d.Code.ID(), d.Message)
		if !includeNotes {
			continue
		}
		for _, n := range d.Notes {
			writeShortLine(&b, fs, n.Span, "note", d.Code.ID(), n.Msg)
		}
	}
	return strings.TrimSuffix(b.String(), "\n")
}

func writeShortLine(b *strings.Builder, fs *source.FileSet, sp source.Span, sev, code, msg string) {
	if loc, ok := Locate(fs, sp); ok {
		fmt.Fprintf(b, "%s:%d:%d: ", loc.Path, loc.Line, loc.Column)
	}
	fmt.Fprintf(b, "%s %s: %s\n", sev, code, sanitizeMessage(msg))
}

// Location is a span resolved to a display path and start position.
type Location struct {
	Path   string
	Line   uint32
	Column uint32
	Offset uint32
}

// Locate resolves sp against fs. ok is false for unlocated spans.
func Locate(fs *source.FileSet, sp source.Span) (Location, bool) {
	if fs == nil || !sp.Located() {
		return Location{}, false
	}
	file := fs.Get(sp.File)
	if file == nil {
		return Location{}, false
	}
	start, _ := fs.Resolve(sp)
	return Location{
		Path:   normalizePath(file.FormatPath("relative", fs.BaseDir())),
		Line:   start.Line,
		Column: start.Col,
		Offset: sp.Start,
	}, true
}

func normalizePath(path string) string {
	p := filepath.ToSlash(path)
	for strings.HasPrefix(p, "./") {
		p = strings.TrimPrefix(p, "./")
	}
	return p
}

func sanitizeMessage(msg string) string {
	msg = strings.ReplaceAll(msg, "\r\n", "\n")
	msg = strings.ReplaceAll(msg, "\n", " ")
	return strings.TrimSpace(msg)
}
