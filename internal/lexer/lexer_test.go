package lexer_test

import (
	"errors"
	"testing"

	"poincarelog/internal/diag"
	"poincarelog/internal/lexer"
	"poincarelog/internal/source"
	"poincarelog/internal/token"
)

func lexAll(t *testing.T, input string) ([]token.Token, *diag.Bag, error) {
	t.Helper()
	fs := source.NewFileSet()
	file := fs.Get(fs.AddVirtual("test.xml", []byte(input)))
	bag := diag.NewBag(10)
	lx := lexer.New(file, lexer.Options{Reporter: diag.BagReporter{Bag: bag}})

	var out []token.Token
	for range 64 {
		tok, err := lx.Next()
		if err != nil {
			return out, bag, err
		}
		out = append(out, tok)
		if tok.Kind == token.EOF {
			return out, bag, nil
		}
	}
	t.Fatalf("lexer did not reach EOF")
	return nil, nil, nil
}

func kinds(toks []token.Token) []string {
	out := make([]string, len(toks))
	for i, tok := range toks {
		out[i] = tok.String()
	}
	return out
}

func TestEventsSkipTrivia(t *testing.T) {
	input := "<?xml version=\"1.0\"?>\n<!-- log -->\n<ReduceProcess>\n  <Integer id=\"1\" value=\"3\"/>\n</ReduceProcess>\n"
	toks, _, err := lexAll(t, input)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []string{"<ReduceProcess>", "<Integer>", "</Integer>", "</ReduceProcess>", "end of file"}
	got := kinds(toks)
	if len(got) != len(want) {
		t.Fatalf("want %v got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("event %d: want %q got %q", i, want[i], got[i])
		}
	}

	integer := toks[1]
	if v, ok := integer.Attr("value"); !ok || v != "3" {
		t.Fatalf("value attr: want %q got %q", "3", v)
	}
	if got := input[integer.Span.Start:integer.Span.End]; got != `<Integer id="1" value="3"/>` {
		t.Fatalf("start span covers %q", got)
	}
	// конец самозакрывающегося тега — пустой span сразу после него
	if !toks[2].Span.Empty() || toks[2].Span.Start != integer.Span.End {
		t.Fatalf("self-closing end span: got %v, start tag ends at %d", toks[2].Span, integer.Span.End)
	}
}

func TestUnescapedAttributes(t *testing.T) {
	toks, _, err := lexAll(t, `<Symbol id="2" name="&lt;x&gt;"/>`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v, _ := toks[0].Attr("name"); v != "<x>" {
		t.Fatalf("want unescaped %q got %q", "<x>", v)
	}
}

func TestMismatchIsNotLexerError(t *testing.T) {
	toks, _, err := lexAll(t, "<Step></Stop>")
	if err != nil {
		t.Fatalf("mismatched tags must reach the builders, got %v", err)
	}
	if toks[1].Name != "Stop" {
		t.Fatalf("want end tag Stop got %v", toks[1])
	}
}

func TestTextEvent(t *testing.T) {
	toks, _, err := lexAll(t, "<Step>  oops </Step>")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if toks[1].Kind != token.Text || toks[1].Span.Start != 8 {
		t.Fatalf("want text at offset 8, got %v at %v", toks[1].Kind, toks[1].Span)
	}
}

func TestSyntaxError(t *testing.T) {
	_, bag, err := lexAll(t, "<Step name=\"a></Step>")
	var de *diag.Error
	if !errors.As(err, &de) {
		t.Fatalf("want *diag.Error, got %v", err)
	}
	if de.Diag.Code != diag.XMLSyntax {
		t.Fatalf("want code %s got %s", diag.XMLSyntax.ID(), de.Diag.Code.ID())
	}
	if bag.Len() != 1 {
		t.Fatalf("error must be reported exactly once, got %d", bag.Len())
	}
}
