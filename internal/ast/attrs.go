package ast

// Field is one attribute as it appears in the log: XML key and raw value.
type Field struct {
	Key   string
	Value string
}

// Attributes is the typed payload of a recognized expression kind.
// Values are kept as the raw strings from the log and never parsed.
type Attributes interface {
	// Kind returns the canonical kind name; aliases such as Symbol report
	// SymbolAbstract.
	Kind() string
	// Fields returns the payload in catalog order using the XML keys.
	Fields() []Field
}

type BasedInteger struct {
	Base    string
	Integer string
}

type CodePointLayout struct {
	CodePoint string
}

type Decimal struct {
	Negative string
	Mantissa string
	Exponent string
}

type Float struct {
	Value string
}

type Infinity struct {
	Negative string
}

type Integer struct {
	Value string
}

type Matrix struct {
	Rows    string
	Columns string
}

type Rational struct {
	Negative    string
	Numerator   string
	Denominator string
}

// SymbolAbstract covers Symbol, Sequence, Function and Constant as well.
type SymbolAbstract struct {
	Name string
}

type Unit struct {
	Prefix     string
	RootSymbol string
}

func (BasedInteger) Kind() string    { return "BasedInteger" }
func (CodePointLayout) Kind() string { return "CodePointLayout" }
func (Decimal) Kind() string         { return "Decimal" }
func (Float) Kind() string           { return "Float" }
func (Infinity) Kind() string        { return "Infinity" }
func (Integer) Kind() string         { return "Integer" }
func (Matrix) Kind() string          { return "Matrix" }
func (Rational) Kind() string        { return "Rational" }
func (SymbolAbstract) Kind() string  { return "SymbolAbstract" }
func (Unit) Kind() string            { return "Unit" }

func (a BasedInteger) Fields() []Field {
	return []Field{{"base", a.Base}, {"integer", a.Integer}}
}

func (a CodePointLayout) Fields() []Field {
	return []Field{{"CodePoint", a.CodePoint}}
}

func (a Decimal) Fields() []Field {
	return []Field{{"negative", a.Negative}, {"mantissa", a.Mantissa}, {"exponent", a.Exponent}}
}

func (a Float) Fields() []Field { return []Field{{"value", a.Value}} }

func (a Infinity) Fields() []Field { return []Field{{"negative", a.Negative}} }

func (a Integer) Fields() []Field { return []Field{{"value", a.Value}} }

func (a Matrix) Fields() []Field {
	return []Field{{"rows", a.Rows}, {"columns", a.Columns}}
}

func (a Rational) Fields() []Field {
	return []Field{{"negative", a.Negative}, {"numerator", a.Numerator}, {"denominator", a.Denominator}}
}

func (a SymbolAbstract) Fields() []Field { return []Field{{"name", a.Name}} }

func (a Unit) Fields() []Field {
	return []Field{{"prefix", a.Prefix}, {"rootSymbol", a.RootSymbol}}
}
