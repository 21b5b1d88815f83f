package format

// Infix operators join every child with the operator.
var infixOps = map[string]string{
	"Addition":       "+",
	"Subtraction":    "-",
	"Multiplication": "*",
	"Division":       "/",
	"Power":          "^",
}

// Prefix functions render as symbol(arg, arg, ...).
var prefixFuncs = map[string]string{
	"AbsoluteValue":        "abs",
	"ArcCosine":            "acos",
	"ArcSine":              "asin",
	"ArcTangent":           "atan",
	"BinomCDF":             "bCDF",
	"BinomPDF":             "bPDF",
	"Ceiling":              "ceil",
	"Conjugate":            "conj",
	"Cosine":               "cos",
	"Derivative":           "der",
	"Floor":                "floor",
	"FracPart":             "frac",
	"GreatCommonDivisor":   "gcd",
	"HyperbolicArcCosine":  "hacos",
	"HyperbolicArcSine":    "hasin",
	"HyperbolicArcTangent": "hatan",
	"HyperbolicCosine":     "hcos",
	"HyperbolicSine":       "hsin",
	"HyperbolicTangent":    "htan",
	"ImaginaryPart":        "imag",
	"LeastCommonMultiple":  "lcm",
	"Integral":             "int",
	"Logarithm":            "log",
	"Opposite":             "-",
	"Randint":              "randint",
	"Random":               "rand",
	"RealPart":             "real",
	"Round":                "round",
	"SignFunction":         "sign",
	"Sine":                 "sin",
	"Tangent":              "tan",
	"SquareRoot":           "sqrt",
	"NaperianLogarithm":    "ln",
}

// Plain names replace the node, children are not shown.
var plainNames = map[string]string{
	"Undefined": "undef",
}

const kindParenthesis = "Parenthesis"
