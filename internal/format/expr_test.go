package format_test

import (
	"errors"
	"strings"
	"testing"

	"poincarelog/internal/ast"
	"poincarelog/internal/format"
	"poincarelog/internal/testkit"
)

// renderOriginal рендерит OriginalExpression единственного трейса.
func renderOriginal(t *testing.T, expr string, long bool) (string, error) {
	t.Helper()
	proc := testkit.ParseTrace(t, "<ReduceProcess><OriginalExpression>"+expr+"</OriginalExpression></ReduceProcess>")
	return format.NewPrinter(proc.Exprs, format.NewStyle(false), long).Expr(proc.Original)
}

func TestShortForm(t *testing.T) {
	tests := []struct {
		name string
		expr string
		want string
	}{
		{
			name: "nested infix gets parentheses",
			expr: `<Addition id="1"><Integer id="2" value="1"/><Multiplication id="3"><Integer id="4" value="3"/><Constant id="5" name="π"/></Multiplication></Addition>`,
			want: "1 + (3 * π)",
		},
		{
			name: "single-child operand stays bare",
			expr: `<Power id="1"><Opposite id="2"><Symbol id="3" name="x"/></Opposite><Integer id="4" value="2"/></Power>`,
			want: "-(x) ^ 2",
		},
		{
			name: "n-ary",
			expr: `<Subtraction id="1"><Integer id="2" value="1"/><Integer id="3" value="2"/><Integer id="4" value="3"/></Subtraction>`,
			want: "1 - 2 - 3",
		},
		{
			name: "prefix function with arguments",
			expr: `<GreatCommonDivisor id="1"><Integer id="2" value="4"/><Integer id="3" value="6"/></GreatCommonDivisor>`,
			want: "gcd(4, 6)",
		},
		{
			name: "prefix function without arguments",
			expr: `<Random id="1"/>`,
			want: "rand()",
		},
		{
			name: "plain name",
			expr: `<Undefined id="1"/>`,
			want: "undef",
		},
		{
			name: "parenthesis",
			expr: `<Parenthesis id="1"><Addition id="2"><Integer id="3" value="1"/><Integer id="4" value="1"/></Addition></Parenthesis>`,
			want: "{1 + 1}",
		},
		{
			name: "fallback keeps short children",
			expr: `<Frobnicate id="7"><Integer id="8" value="5"/><Undefined id="9"/></Frobnicate>`,
			want: "Frobnicate(7) { 5, undef, }",
		},
		{
			name: "known kind without attributes falls back",
			expr: `<Integer id="3"/>`,
			want: "Integer(3)",
		},
		{
			name: "value-bearing kind ignores children",
			expr: `<Unit id="1" prefix="k" rootSymbol="g"><Integer id="2" value="9"/></Unit>`,
			want: "kg",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := renderOriginal(t, tt.expr, false)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Fatalf("want %q got %q", tt.want, got)
			}
		})
	}
}

func TestPayload(t *testing.T) {
	tests := []struct {
		attrs ast.Attributes
		want  string
	}{
		{ast.BasedInteger{Base: "2", Integer: "101"}, "101__2"},
		{ast.CodePointLayout{CodePoint: "120"}, "120"},
		{ast.Decimal{Negative: "1", Mantissa: "12", Exponent: "-3"}, "-12 x10^-3"},
		{ast.Float{Value: "1.5E3"}, "1.5E3"},
		{ast.Infinity{Negative: "0"}, "inf"},
		{ast.Infinity{Negative: "yes"}, "sign?inf"},
		{ast.Integer{Value: "007"}, "007"},
		{ast.Matrix{Rows: "2", Columns: "3"}, "rows: 2, columns: 3"},
		{ast.Rational{Negative: "1", Numerator: "4", Denominator: "1"}, "-4/1"},
		{ast.SymbolAbstract{Name: "π"}, "π"},
		{ast.Unit{Prefix: "m", RootSymbol: "s"}, "ms"},
	}
	for _, tt := range tests {
		if got := format.Payload(tt.attrs); got != tt.want {
			t.Fatalf("%s: want %q got %q", tt.attrs.Kind(), tt.want, got)
		}
	}
}

func TestLongForm(t *testing.T) {
	got, err := renderOriginal(t, `<Addition id="1"><Integer id="2" value="1"/><Opposite id="3"><Symbol id="4" name="x"/></Opposite></Addition>`, true)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := "Addition(1) { Integer(2): 1, Opposite(3) { Symbol(4): x, }, }"
	if got != want {
		t.Fatalf("want %q got %q", want, got)
	}
	// одна пара фигурных скобок на каждый узел с детьми
	if strings.Count(got, "{") != 2 {
		t.Fatalf("unexpected nesting in %q", got)
	}
}

func TestParenthesisArity(t *testing.T) {
	// парсер такое не пропустит, поэтому собираем узлы руками
	e := ast.NewExprs(0)
	a := e.New("Integer", "2", ast.Integer{Value: "1"}, testSpan)
	b := e.New("Integer", "3", ast.Integer{Value: "2"}, testSpan)
	paren := e.New("Parenthesis", "1", nil, testSpan)
	e.SetChildren(paren, []ast.NodeID{a, b}, 0)
	root := e.New("Addition", "4", nil, testSpan)
	e.SetChildren(root, []ast.NodeID{paren, a}, 0)

	out, err := format.NewPrinter(e, nil, false).Expr(root)
	var ae *format.ArityError
	if !errors.As(err, &ae) {
		t.Fatalf("want ArityError, got %v (output %q)", err, out)
	}
	if ae.Got != 2 || ae.ID != "1" {
		t.Fatalf("unexpected error detail %+v", ae)
	}
	if out != "" {
		t.Fatalf("no output expected on error, got %q", out)
	}
}

func TestColorDoesNotChangeText(t *testing.T) {
	proc := testkit.ParseTrace(t, `<ReduceProcess><OriginalExpression><Addition id="1"><Integer id="2" value="1"/><Integer id="3" value="2"/></Addition></OriginalExpression></ReduceProcess>`)
	colored, err := format.NewPrinter(proc.Exprs, format.NewStyle(true), false).Expr(proc.Original)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(colored, "\x1b[") {
		t.Fatalf("expected escape sequences in %q", colored)
	}
	if got := stripANSI(colored); got != "1 + 2" {
		t.Fatalf("stripped text: want %q got %q", "1 + 2", got)
	}
}
