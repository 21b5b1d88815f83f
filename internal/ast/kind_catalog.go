package ast

// kindSpec describes a recognized expression kind: the attribute keys it
// requires and how to build its payload from their values.
type kindSpec struct {
	Keys  []string // XML attribute keys, in payload order
	build func(values []string) Attributes
}

var (
	symbolSpec = kindSpec{Keys: []string{"name"}, build: func(v []string) Attributes {
		return SymbolAbstract{Name: v[0]}
	}}

	kindRegistry = map[string]kindSpec{
		"BasedInteger": {Keys: []string{"base", "integer"}, build: func(v []string) Attributes {
			return BasedInteger{Base: v[0], Integer: v[1]}
		}},
		"CodePointLayout": {Keys: []string{"CodePoint"}, build: func(v []string) Attributes {
			return CodePointLayout{CodePoint: v[0]}
		}},
		"Decimal": {Keys: []string{"negative", "mantissa", "exponent"}, build: func(v []string) Attributes {
			return Decimal{Negative: v[0], Mantissa: v[1], Exponent: v[2]}
		}},
		"Float": {Keys: []string{"value"}, build: func(v []string) Attributes {
			return Float{Value: v[0]}
		}},
		"Infinity": {Keys: []string{"negative"}, build: func(v []string) Attributes {
			return Infinity{Negative: v[0]}
		}},
		"Integer": {Keys: []string{"value"}, build: func(v []string) Attributes {
			return Integer{Value: v[0]}
		}},
		"Matrix": {Keys: []string{"rows", "columns"}, build: func(v []string) Attributes {
			return Matrix{Rows: v[0], Columns: v[1]}
		}},
		"Rational": {Keys: []string{"negative", "numerator", "denominator"}, build: func(v []string) Attributes {
			return Rational{Negative: v[0], Numerator: v[1], Denominator: v[2]}
		}},
		"Unit": {Keys: []string{"prefix", "rootSymbol"}, build: func(v []string) Attributes {
			return Unit{Prefix: v[0], RootSymbol: v[1]}
		}},
		"SymbolAbstract": symbolSpec,
		// подклассы SymbolAbstract
		"Symbol":   symbolSpec,
		"Sequence": symbolSpec,
		"Function": symbolSpec,
		"Constant": symbolSpec,
	}
)

// ParseAttributes builds the payload for kind from lookup. It returns nil
// when the kind is not recognized or any required key is missing.
func ParseAttributes(kind string, lookup func(key string) (string, bool)) Attributes {
	spec, ok := kindRegistry[kind]
	if !ok {
		return nil
	}
	values := make([]string, len(spec.Keys))
	for i, key := range spec.Keys {
		v, ok := lookup(key)
		if !ok {
			return nil
		}
		values[i] = v
	}
	return spec.build(values)
}
