package parser_test

import (
	"fmt"
	"strings"
	"testing"

	"poincarelog/internal/ast"
	"poincarelog/internal/diag"
	"poincarelog/internal/lexer"
	"poincarelog/internal/parser"
	"poincarelog/internal/source"
)

// parseSource прогоняет lexer+parser на строке и возвращает трейсы и диагностики.
func parseSource(t *testing.T, input string) ([]*ast.ReduceProcess, *diag.Bag, error) {
	t.Helper()
	fs := source.NewFileSet()
	file := fs.Get(fs.AddVirtual("test.xml", []byte(input)))
	bag := diag.NewBag(20)
	r := diag.BagReporter{Bag: bag}
	lx := lexer.New(file, lexer.Options{Reporter: r})
	procs, err := parser.ParseAll(lx, parser.Options{Reporter: r})
	return procs, bag, err
}

func mustParse(t *testing.T, input string) []*ast.ReduceProcess {
	t.Helper()
	procs, bag, err := parseSource(t, input)
	if err != nil {
		t.Fatalf("unexpected error: %v\n%s", err, diagnosticsSummary(bag))
	}
	return procs
}

func diagnosticsSummary(bag *diag.Bag) string {
	if bag == nil || bag.Len() == 0 {
		return "<no diagnostics>"
	}
	var sb strings.Builder
	for _, d := range bag.Items() {
		fmt.Fprintf(&sb, "[%s] %s\n", d.Code.ID(), d.Message)
	}
	return sb.String()
}

// shape renders a node as Name#id(children) for compact comparisons.
func shape(e *ast.Exprs, id ast.NodeID) string {
	n := e.Get(id)
	if n == nil {
		return "-"
	}
	var sb strings.Builder
	sb.WriteString(e.Name(id))
	sb.WriteString("#")
	sb.WriteString(n.ID)
	if len(n.Children) > 0 {
		sb.WriteString("(")
		for i, c := range n.Children {
			if i > 0 {
				sb.WriteString(",")
			}
			sb.WriteString(shape(e, c))
		}
		sb.WriteString(")")
	}
	return sb.String()
}
