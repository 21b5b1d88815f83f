package format

import (
	"poincarelog/internal/ast"
)

// Payload formats the attribute values of a recognized kind. Values are
// printed as they appear in the log, never reparsed.
func Payload(attrs ast.Attributes) string {
	switch a := attrs.(type) {
	case ast.BasedInteger:
		return a.Integer + "__" + a.Base
	case ast.CodePointLayout:
		return a.CodePoint
	case ast.Decimal:
		return sign(a.Negative) + a.Mantissa + " x10^" + a.Exponent
	case ast.Float:
		return a.Value
	case ast.Infinity:
		return sign(a.Negative) + "inf"
	case ast.Integer:
		return a.Value
	case ast.Matrix:
		return "rows: " + a.Rows + ", columns: " + a.Columns
	case ast.Rational:
		return sign(a.Negative) + a.Numerator + "/" + a.Denominator
	case ast.SymbolAbstract:
		return a.Name
	case ast.Unit:
		return a.Prefix + a.RootSymbol
	default:
		return ""
	}
}

func sign(negative string) string {
	switch negative {
	case "0":
		return ""
	case "1":
		return "-"
	default:
		return "sign?"
	}
}
