package ast

import "testing"

func lookupFrom(m map[string]string) func(string) (string, bool) {
	return func(k string) (string, bool) {
		v, ok := m[k]
		return v, ok
	}
}

func TestParseAttributes(t *testing.T) {
	tests := []struct {
		kind  string
		attrs map[string]string
		want  Attributes
	}{
		{"BasedInteger", map[string]string{"id": "5", "base": "10", "integer": "4"}, BasedInteger{Base: "10", Integer: "4"}},
		{"CodePointLayout", map[string]string{"CodePoint": "x"}, CodePointLayout{CodePoint: "x"}},
		{"Unit", map[string]string{"prefix": "k", "rootSymbol": "g"}, Unit{Prefix: "k", RootSymbol: "g"}},
		{"Constant", map[string]string{"name": "π"}, SymbolAbstract{Name: "π"}},
		{"Sequence", map[string]string{"name": "u"}, SymbolAbstract{Name: "u"}},
		// ключи с "правильным" регистром не подходят
		{"Unit", map[string]string{"prefix": "k", "root_symbol": "g"}, nil},
		{"CodePointLayout", map[string]string{"code_point": "x"}, nil},
		{"Rational", map[string]string{"negative": "0", "numerator": "1"}, nil},
		{"Addition", map[string]string{"value": "1"}, nil},
	}
	for _, tt := range tests {
		got := ParseAttributes(tt.kind, lookupFrom(tt.attrs))
		if got != tt.want {
			t.Fatalf("ParseAttributes(%s, %v): want %#v got %#v", tt.kind, tt.attrs, tt.want, got)
		}
	}
}

func TestAliasesShareCanonicalKind(t *testing.T) {
	for _, name := range []string{"Symbol", "Sequence", "Function", "Constant", "SymbolAbstract"} {
		got := ParseAttributes(name, lookupFrom(map[string]string{"name": "x"}))
		if got == nil || got.Kind() != "SymbolAbstract" {
			t.Fatalf("ParseAttributes(%s): want SymbolAbstract got %#v", name, got)
		}
	}
}

func TestFieldsUseLogKeys(t *testing.T) {
	f := Unit{Prefix: "m", RootSymbol: "s"}.Fields()
	if f[1].Key != "rootSymbol" || f[1].Value != "s" {
		t.Fatalf("Unit fields: got %v", f)
	}
}
