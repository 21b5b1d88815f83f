package format_test

import (
	"bytes"
	"regexp"
	"strings"
	"testing"

	"poincarelog/internal/format"
	"poincarelog/internal/source"
	"poincarelog/internal/testkit"
)

var testSpan = source.Span{}

var ansi = regexp.MustCompile("\x1b\\[[0-9;]*m")

func stripANSI(s string) string { return ansi.ReplaceAllString(s, "") }

func TestRenderLegacyTrace(t *testing.T) {
	proc := testkit.ParseTrace(t, `<ReduceProcess>
<OriginalExpression><Addition id="1"><Integer id="2" value="1"/><Integer id="3" value="2"/></Addition></OriginalExpression>
<Step name="ShallowReduce">
  <Addition id="1"><Integer id="2" value="1"/><Integer id="3" value="2"/></Addition>
  <Integer id="4" value="3"/>
</Step>
<Step name="Empty"/>
<ResultExpression><Integer id="4" value="3"/></ResultExpression>
</ReduceProcess>`)

	var buf bytes.Buffer
	if err := format.NewRenderer(format.Options{}).Write(&buf, proc); err != nil {
		t.Fatalf("render: %v", err)
	}
	want := strings.Join([]string{
		"* Reduce 1 + 2:",
		"    /> ShallowReduce",
		"    | 1 + 2",
		`    \_ 3`,
		"    /> Empty",
		`    \_`,
		"*-> 3",
		"",
		"",
	}, "\n")
	if got := buf.String(); got != want {
		t.Fatalf("want:\n%s\ngot:\n%s", want, got)
	}
}

func TestRenderLabelledTrace(t *testing.T) {
	proc := testkit.ParseTrace(t, `<ReduceProcess>
  <OriginalExpression><Symbol id="1" name="x"/></OriginalExpression>
  <Step name="DeepReduce">
    <State name="before"><Symbol id="1" name="x"/></State>
    <Step name="Inner">
      <State name="before"><Symbol id="1" name="x"/></State>
      <State name="after"><Integer id="5" value="2"/></State>
    </Step>
    <State name="between"><Integer id="5" value="2"/></State>
    <State><Integer id="6" value="7"/></State>
    <State name="after"><Integer id="5" value="2"/></State>
  </Step>
</ReduceProcess>`)

	got, err := format.NewRenderer(format.Options{}).Process(proc)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	want := strings.Join([]string{
		"* Reduce x:",
		"    /> DeepReduce",
		"    | x",
		"    |    /> Inner",
		"    |    | x",
		`    |    \_ 2`,
		"    |    between: 2",
		"    |    7",
		`    \_ 2`,
		"",
		"",
	}, "\n")
	if got != want {
		t.Fatalf("want:\n%s\ngot:\n%s", want, got)
	}
}

func TestRenderMissingOriginal(t *testing.T) {
	proc := testkit.ParseTrace(t, `<ReduceProcess/>`)
	got, err := format.NewRenderer(format.Options{}).Process(proc)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if want := "* Reduce (none):\n*-> (none)\n\n"; got != want {
		t.Fatalf("want %q got %q", want, got)
	}
}

func TestRenderColorMarkers(t *testing.T) {
	proc := testkit.ParseTrace(t, `<ReduceProcess><Step name="S"><Integer id="1" value="1"/><Integer id="2" value="2"/></Step></ReduceProcess>`)
	plain, err := format.NewRenderer(format.Options{}).Process(proc)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	colored, err := format.NewRenderer(format.Options{Color: true}).Process(proc)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if colored == plain {
		t.Fatalf("colour must add escape sequences")
	}
	if stripANSI(colored) != plain {
		t.Fatalf("colour must not change text:\n%q\n%q", stripANSI(colored), plain)
	}
}

func TestIndent(t *testing.T) {
	got := format.Indent("a\n\nb\n", "> ")
	if want := "> a\n\n> b\n"; got != want {
		t.Fatalf("want %q got %q", want, got)
	}
	if got := format.Indent("tail", "  "); got != "  tail" {
		t.Fatalf("unterminated line: got %q", got)
	}
}

func TestRenderNestedStepsWithoutResultHasNoFooter(t *testing.T) {
	proc := testkit.ParseTrace(t, `<ReduceProcess><OriginalExpression><Integer id="1" value="1"/></OriginalExpression><Step name="Outer"><Step name="Inner"/></Step></ReduceProcess>`)
	got, err := format.NewRenderer(format.Options{}).Process(proc)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if strings.Contains(got, "*->") {
		t.Fatalf("trace without result must have no footer:\n%s", got)
	}
	if !strings.HasPrefix(got, "* Reduce 1:\n") {
		t.Fatalf("unexpected header:\n%s", got)
	}
}
