package token

import (
	"fmt"
	"strings"

	"poincarelog/internal/source"
)

// Attr is one key="value" pair of a start tag.
type Attr struct {
	Key   string
	Value string
}

// Token is one tag event with its location.
type Token struct {
	Kind  Kind
	Span  source.Span
	Name  string // имя тега для StartTag/EndTag
	Attrs []Attr // только для StartTag
	Text  string // только для Text
}

// Attr returns the value of the first attribute named key.
func (t Token) Attr(key string) (string, bool) {
	for _, a := range t.Attrs {
		if a.Key == key {
			return a.Value, true
		}
	}
	return "", false
}

// IsStart reports whether t opens a tag called name.
func (t Token) IsStart(name string) bool { return t.Kind == StartTag && t.Name == name }

// IsEnd reports whether t closes a tag called name.
func (t Token) IsEnd(name string) bool { return t.Kind == EndTag && t.Name == name }

// String renders the event the way it is quoted in diagnostics.
func (t Token) String() string {
	switch t.Kind {
	case StartTag:
		return "<" + t.Name + ">"
	case EndTag:
		return "</" + t.Name + ">"
	case Text:
		s := strings.TrimSpace(t.Text)
		if len(s) > 24 {
			s = s[:24] + "..."
		}
		return fmt.Sprintf("text %q", s)
	case EOF:
		return "end of file"
	default:
		return "invalid event"
	}
}
