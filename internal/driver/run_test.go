package driver_test

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"poincarelog/internal/diag"
	"poincarelog/internal/driver"
	"poincarelog/internal/export"
	"poincarelog/internal/format"
	"poincarelog/internal/observ"
	"poincarelog/internal/stats"
	"poincarelog/internal/trace"
)

const goodLog = `<?xml version="1.0"?>
<ReduceProcess>
  <OriginalExpression><Addition id="1"><Integer id="2" value="1"/><Integer id="3" value="2"/></Addition></OriginalExpression>
  <Step name="Noop"><Integer id="2" value="1"/><Integer id="2" value="1"/></Step>
  <Step name="Sum">
    <Addition id="1"><Integer id="2" value="1"/><Integer id="3" value="2"/></Addition>
    <Integer id="4" value="3"/>
  </Step>
  <ResultExpression><Integer id="4" value="3"/></ResultExpression>
</ReduceProcess>
`

const goodReport = "* Reduce 1 + 2:\n    /> Sum\n    | 1 + 2\n    \\_ 3\n*-> 3\n\n"

func writeLog(t *testing.T, dir, name, body string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

func TestRunRendersFilesInOrder(t *testing.T) {
	dir := t.TempDir()
	a := writeLog(t, dir, "a.xml", goodLog)
	b := writeLog(t, dir, "b.xml", goodLog+goodLog)

	var out bytes.Buffer
	res, err := driver.Run(context.Background(), []string{a, b}, driver.NewTextSink(&out, format.Options{}), driver.Options{})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if want := strings.Repeat(goodReport, 3); out.String() != want {
		t.Fatalf("want:\n%s\ngot:\n%s", want, out.String())
	}
	if res.Files != 2 || res.Traces != 3 || res.Removed != 3 {
		t.Fatalf("unexpected result %+v", res)
	}
}

func TestUnreadableInputIsFatal(t *testing.T) {
	dir := t.TempDir()
	good := writeLog(t, dir, "good.xml", goodLog)

	var out bytes.Buffer
	res, err := driver.Run(context.Background(), []string{filepath.Join(dir, "missing.xml"), good},
		driver.NewTextSink(&out, format.Options{}), driver.Options{})
	var de *diag.Error
	if !errors.As(err, &de) || de.Diag.Code != diag.IOUnreadable {
		t.Fatalf("want %s error, got %v", diag.IOUnreadable.ID(), err)
	}
	if out.Len() != 0 || res.Files != 0 {
		t.Fatalf("nothing must be processed after the failure, got %q", out.String())
	}
}

func TestKeepGoingSkipsUnreadable(t *testing.T) {
	dir := t.TempDir()
	good := writeLog(t, dir, "good.xml", goodLog)

	var out bytes.Buffer
	res, err := driver.Run(context.Background(), []string{filepath.Join(dir, "missing.xml"), good},
		driver.NewTextSink(&out, format.Options{}), driver.Options{KeepGoing: true})
	if !errors.Is(err, driver.ErrInputsSkipped) {
		t.Fatalf("want ErrInputsSkipped, got %v", err)
	}
	if out.String() != goodReport {
		t.Fatalf("remaining file must be rendered, got %q", out.String())
	}
	if res.Skipped != 1 || !res.Bag.HasErrors() {
		t.Fatalf("skip must be recorded: %+v", res)
	}
}

func TestMalformedDocumentStopsRun(t *testing.T) {
	dir := t.TempDir()
	bad := writeLog(t, dir, "bad.xml", goodLog+`<ReduceProcess><Step name="S"><Integer value="1"/></Step></ReduceProcess>`)
	next := writeLog(t, dir, "next.xml", goodLog)

	var out bytes.Buffer
	res, err := driver.Run(context.Background(), []string{bad, next},
		driver.NewTextSink(&out, format.Options{}), driver.Options{KeepGoing: true})
	var de *diag.Error
	if !errors.As(err, &de) || de.Diag.Code != diag.DocMissingID {
		t.Fatalf("want %s error, got %v", diag.DocMissingID.ID(), err)
	}
	// трейсы до ошибки уже выведены, следующий файл не тронут
	if out.String() != goodReport || res.Files != 1 {
		t.Fatalf("unexpected output %q, files %d", out.String(), res.Files)
	}
	loc, ok := diag.Locate(res.FileSet, de.Diag.Primary)
	if !ok || loc.Line != 11 {
		t.Fatalf("want error located on line 11, got %+v (ok=%v)", loc, ok)
	}
}

func TestStatsTimerAndTrace(t *testing.T) {
	dir := t.TempDir()
	a := writeLog(t, dir, "a.xml", goodLog)

	var traceOut bytes.Buffer
	tr := trace.NewStreamTracer(&traceOut, trace.LevelDebug, trace.FormatText)
	ctx := trace.WithTracer(context.Background(), tr)

	collector := stats.NewCollector()
	timer := observ.NewTimer()
	_, err := driver.Run(ctx, []string{a}, driver.DiscardSink{}, driver.Options{Stats: collector, Timer: timer})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if tot := collector.Totals(); tot.Seen != 2 || tot.Kept != 1 {
		t.Fatalf("stats totals: %+v", tot)
	}
	var names []string
	for _, s := range timer.Report().Stages {
		names = append(names, s.Name)
	}
	if got := strings.Join(names, ","); got != "load,parse,prune,render" {
		t.Fatalf("timer stages: %s", got)
	}
	for _, want := range []string{"run", "file:" + a, "parse", "prune {removed=1}", "removed:Noop (identical)"} {
		if !strings.Contains(traceOut.String(), want) {
			t.Fatalf("trace output misses %q:\n%s", want, traceOut.String())
		}
	}
}

func TestExportSink(t *testing.T) {
	dir := t.TempDir()
	a := writeLog(t, dir, "a.xml", goodLog)

	var out bytes.Buffer
	sink, err := driver.NewExportSink(export.KindJSON, &out)
	if err != nil {
		t.Fatalf("NewExportSink: %v", err)
	}
	if _, err := driver.Run(context.Background(), []string{a}, sink, driver.Options{}); err != nil {
		t.Fatalf("Run: %v", err)
	}
	line := out.String()
	if !strings.Contains(line, `"name":"Sum"`) || strings.Contains(line, `"name":"Noop"`) {
		t.Fatalf("export must hold the pruned tree: %s", line)
	}
}

func TestCancelledContext(t *testing.T) {
	dir := t.TempDir()
	a := writeLog(t, dir, "a.xml", goodLog)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := driver.Run(ctx, []string{a}, driver.DiscardSink{}, driver.Options{})
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("want context.Canceled, got %v", err)
	}
}
