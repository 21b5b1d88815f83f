package driver

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"

	"poincarelog/internal/ast"
	"poincarelog/internal/diag"
	"poincarelog/internal/format"
	"poincarelog/internal/lexer"
	"poincarelog/internal/observ"
	"poincarelog/internal/parser"
	"poincarelog/internal/prune"
	"poincarelog/internal/source"
	"poincarelog/internal/stats"
	"poincarelog/internal/trace"
)

// ErrInputsSkipped is returned at the end of a --keep-going run in which at
// least one input could not be read.
var ErrInputsSkipped = errors.New("some inputs could not be read")

// Options configures one run over a list of logs.
type Options struct {
	Prune          prune.Options
	KeepGoing      bool
	MaxDiagnostics int
	Timer          *observ.Timer    // nil: без замеров
	Stats          *stats.Collector // nil: без статистики
}

// Result describes what a run did. It is returned even when the run fails
// so the caller can print the collected diagnostics.
type Result struct {
	FileSet *source.FileSet
	Bag     *diag.Bag
	Files   int // прочитанные файлы
	Skipped int // нечитаемые файлы при KeepGoing
	Traces  int
	Removed int
}

// Run reads every path in order and pushes each pruned trace into sink.
// Files and traces are processed one at a time; the first malformed
// document stops the whole run.
func Run(ctx context.Context, paths []string, sink Sink, opts Options) (*Result, error) {
	if opts.MaxDiagnostics <= 0 {
		opts.MaxDiagnostics = 100
	}
	res := &Result{
		FileSet: source.NewFileSet(),
		Bag:     diag.NewBag(opts.MaxDiagnostics),
	}
	r := diag.BagReporter{Bag: res.Bag}

	ctx, runSpan := trace.StartSpan(ctx, trace.ScopeDriver, "run")

	err := func() error {
		for _, path := range paths {
			if err := ctx.Err(); err != nil {
				return err
			}
			if err := runFile(ctx, path, sink, opts, res, r); err != nil {
				return err
			}
		}
		if err := sink.Close(); err != nil {
			return err
		}
		if res.Skipped > 0 {
			return fmt.Errorf("%w: %d of %d", ErrInputsSkipped, res.Skipped, len(paths))
		}
		return nil
	}()

	runSpan.WithExtra("files", strconv.Itoa(res.Files)).
		WithExtra("traces", strconv.Itoa(res.Traces)).
		WithExtra("removed", strconv.Itoa(res.Removed))
	if err != nil {
		runSpan.End(err.Error())
		return res, err
	}
	runSpan.End("")
	return res, nil
}

func runFile(ctx context.Context, path string, sink Sink, opts Options, res *Result, r diag.Reporter) error {
	ctx, fileSpan := trace.StartSpan(ctx, trace.ScopeFile, "file:"+path)

	load := opts.Timer.Begin("load")
	fileID, err := res.FileSet.Load(path)
	opts.Timer.End(load, "")
	if err != nil {
		derr := diag.ReportError(r, diag.IOUnreadable, source.NoSpan,
			fmt.Sprintf("cannot read input: %v", err))
		fileSpan.End("unreadable")
		if opts.KeepGoing {
			res.Skipped++
			return nil
		}
		return derr
	}
	res.Files++
	file := res.FileSet.Get(fileID)

	p := parser.New(lexer.New(file, lexer.Options{Reporter: r}), parser.Options{Reporter: r})
	count := 0
	for index := 0; ; index++ {
		if err := ctx.Err(); err != nil {
			fileSpan.End("cancelled")
			return err
		}
		proc, err := parseNext(ctx, p, opts.Timer)
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			fileSpan.End("malformed")
			return err
		}
		if err := handleTrace(ctx, file, index, proc, sink, opts, res, r); err != nil {
			fileSpan.End("failed")
			return err
		}
		count++
	}
	fileSpan.WithExtra("traces", strconv.Itoa(count)).End("")
	return nil
}

func parseNext(ctx context.Context, p *parser.Parser, timer *observ.Timer) (*ast.ReduceProcess, error) {
	_, span := trace.StartSpan(ctx, trace.ScopePass, "parse")
	idx := timer.Begin("parse")
	proc, err := p.Next()
	timer.End(idx, "")
	if proc != nil {
		span.WithExtra("steps", strconv.Itoa(proc.CountSteps()))
	}
	span.End("")
	return proc, err
}

func handleTrace(ctx context.Context, file *source.File, index int, proc *ast.ReduceProcess, sink Sink, opts Options, res *Result, r diag.Reporter) error {
	res.Traces++

	if opts.Stats != nil {
		opts.Stats.Before(proc)
	}

	pruneCtx, pruneSpan := trace.StartSpan(ctx, trace.ScopePass, "prune")
	idx := opts.Timer.Begin("prune")
	removed := prune.Apply(pruneCtx, proc, opts.Prune)
	opts.Timer.End(idx, "")
	pruneSpan.WithExtra("removed", strconv.Itoa(removed)).End("")
	res.Removed += removed

	if opts.Stats != nil {
		opts.Stats.After(proc)
	}

	_, renderSpan := trace.StartSpan(ctx, trace.ScopePass, "render")
	idx = opts.Timer.Begin("render")
	err := sink.Trace(file, index, proc)
	opts.Timer.End(idx, "")
	renderSpan.End("")

	var arity *format.ArityError
	if errors.As(err, &arity) {
		return diag.ReportError(r, diag.DocParenthesisArity, arity.Span, arity.Error())
	}
	return err
}
