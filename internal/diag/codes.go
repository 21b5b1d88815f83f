package diag

import (
	"fmt"
)

type Code uint16

const (
	UnknownCode Code = 0

	// Синтаксис XML
	XMLSyntax Code = 1001

	// Структура документа
	DocUnexpectedEvent  Code = 2001
	DocMismatchedEnd    Code = 2002
	DocMissingID        Code = 2003
	DocMissingName      Code = 2004
	DocDuplicateWrapper Code = 2005
	DocStepArity        Code = 2006
	DocWrapperArity     Code = 2007
	DocParenthesisArity Code = 2008

	// Ввод/вывод
	IOUnreadable Code = 3001

	// Конфигурация
	CfgUnknownOption Code = 4001
	CfgInvalid       Code = 4002
)

var codeDescription = map[Code]string{
	UnknownCode:         "Unknown error",
	XMLSyntax:           "Malformed XML",
	DocUnexpectedEvent:  "Unexpected tag or event",
	DocMismatchedEnd:    "Mismatched end tag",
	DocMissingID:        "Expression node without id",
	DocMissingName:      "Step without name",
	DocDuplicateWrapper: "Duplicate expression wrapper",
	DocStepArity:        "Too many snapshots in step",
	DocWrapperArity:     "Wrapper must hold exactly one expression",
	DocParenthesisArity: "Parenthesis must have exactly one child",
	IOUnreadable:        "Unreadable input file",
	CfgUnknownOption:    "Unknown option",
	CfgInvalid:          "Invalid configuration",
}

// ID returns the stable textual code, e.g. DOC2002.
func (c Code) ID() string {
	switch ic := int(c); {
	case ic >= 1000 && ic < 2000:
		return fmt.Sprintf("XML%04d", ic)
	case ic >= 2000 && ic < 3000:
		return fmt.Sprintf("DOC%04d", ic)
	case ic >= 3000 && ic < 4000:
		return fmt.Sprintf("IO%04d", ic)
	case ic >= 4000 && ic < 5000:
		return fmt.Sprintf("CFG%04d", ic)
	}
	return "E0000"
}

func (c Code) Title() string {
	desc, ok := codeDescription[c]
	if !ok {
		return codeDescription[UnknownCode]
	}
	return desc
}

func (c Code) String() string {
	return fmt.Sprintf("[%s]: %s", c.ID(), c.Title())
}
