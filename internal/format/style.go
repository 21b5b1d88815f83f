package format

import (
	"github.com/fatih/color"
)

// Style holds the colours of the report. A disabled Style paints nothing,
// so the text is identical with and without colour.
type Style struct {
	enabled bool
	nesting [3]*color.Color
	id      *color.Color
	attrs   *color.Color
	reduce  *color.Color
	step    *color.Color
}

// NewStyle builds the palette; enabled forces colour on or off regardless of
// the terminal, the caller decides (see --color).
func NewStyle(enabled bool) *Style {
	s := &Style{
		enabled: enabled,
		nesting: [3]*color.Color{
			color.New(color.FgYellow),
			color.New(color.FgMagenta),
			color.New(color.FgBlue),
		},
		id:     color.New(color.FgWhite),
		attrs:  color.New(color.FgGreen),
		reduce: color.New(color.FgRed, color.Bold),
		step:   color.New(color.FgCyan, color.Bold),
	}
	all := append(s.nesting[:], s.id, s.attrs, s.reduce, s.step)
	for _, c := range all {
		if enabled {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return s
}

// Enabled reports whether the style emits escape sequences.
func (s *Style) Enabled() bool { return s.enabled }

// Nesting paints a whole node rendering by its depth: yellow, magenta, blue, repeat.
func (s *Style) Nesting(depth int, text string) string {
	return s.nesting[depth%len(s.nesting)].Sprint(text)
}

func (s *Style) ID(text string) string    { return s.id.Sprint(text) }
func (s *Style) Attrs(text string) string { return s.attrs.Sprint(text) }

// Reduce paints the trace markers "* Reduce" and "*->".
func (s *Style) Reduce(text string) string { return s.reduce.Sprint(text) }

// Step paints step headers and the "|" and "\_" markers.
func (s *Style) Step(text string) string { return s.step.Sprint(text) }
