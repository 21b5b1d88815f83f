package format

import (
	"strings"
)

// Writer accumulates rendered lines. Nested blocks are rendered into their
// own Writer and then copied in with a prefix.
type Writer struct {
	buf strings.Builder
}

// Line writes s followed by a newline.
func (w *Writer) Line(s string) {
	w.buf.WriteString(s)
	w.buf.WriteByte('\n')
}

// Block copies text line by line, putting prefix before every non-empty
// line. Line boundaries are kept as they are.
func (w *Writer) Block(text, prefix string) {
	w.buf.WriteString(Indent(text, prefix))
}

// String returns the accumulated text.
func (w *Writer) String() string {
	return w.buf.String()
}

// Indent puts prefix before every non-empty line of text.
func Indent(text, prefix string) string {
	if prefix == "" || text == "" {
		return text
	}
	var sb strings.Builder
	sb.Grow(len(text) + len(prefix)*strings.Count(text, "\n"))
	for line := range strings.SplitAfterSeq(text, "\n") {
		if line != "\n" && line != "" {
			sb.WriteString(prefix)
		}
		sb.WriteString(line)
	}
	return sb.String()
}
