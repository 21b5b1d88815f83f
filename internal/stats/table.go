package stats

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

const maxNameWidth = 48

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("7"))
	prunedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	totalStyle  = lipgloss.NewStyle().Bold(true)
)

// Render writes the collected counts as an aligned table. Step names may
// hold any Unicode; columns are padded by display width.
func Render(w io.Writer, c *Collector, color bool) error {
	rows := c.Rows()
	totals := c.Totals()

	nameWidth := runewidth.StringWidth("step")
	for _, r := range rows {
		nameWidth = max(nameWidth, runewidth.StringWidth(r.Name))
	}
	nameWidth = min(nameWidth, maxNameWidth)

	paint := func(st lipgloss.Style, s string) string {
		if !color {
			return s
		}
		return st.Render(s)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%d trace(s)\n", c.Traces())
	b.WriteString(paint(headerStyle, fmt.Sprintf("%s  %6s  %6s  %6s", pad("step", nameWidth), "seen", "kept", "pruned")))
	b.WriteString("\n")
	for _, r := range rows {
		pruned := fmt.Sprintf("%6d", r.Pruned())
		if r.Pruned() > 0 {
			pruned = paint(prunedStyle, pruned)
		}
		fmt.Fprintf(&b, "%s  %6d  %6d  %s\n", pad(truncate(r.Name, nameWidth), nameWidth), r.Seen, r.Kept, pruned)
	}
	b.WriteString(paint(totalStyle, fmt.Sprintf("%s  %6d  %6d  %6d", pad(totals.Name, nameWidth), totals.Seen, totals.Kept, totals.Pruned())))
	b.WriteString("\n")

	if _, err := io.WriteString(w, b.String()); err != nil {
		return fmt.Errorf("failed to write stats: %w", err)
	}
	return nil
}

func pad(value string, width int) string {
	return runewidth.FillRight(value, width)
}

func truncate(value string, width int) string {
	if width <= 0 {
		return value
	}
	if runewidth.StringWidth(value) <= width {
		return value
	}
	if width <= 3 {
		return runewidth.Truncate(value, width, "")
	}
	return runewidth.Truncate(value, width, "...")
}
