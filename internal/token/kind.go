package token

// Kind is the type of a tag event.
type Kind uint8

const (
	Invalid Kind = iota
	StartTag
	EndTag
	// Text is non-whitespace character data. Reduction logs never carry it,
	// so the builders treat it as an unexpected event.
	Text
	EOF
)

func (k Kind) String() string {
	switch k {
	case StartTag:
		return "StartTag"
	case EndTag:
		return "EndTag"
	case Text:
		return "Text"
	case EOF:
		return "EOF"
	default:
		return "Invalid"
	}
}
