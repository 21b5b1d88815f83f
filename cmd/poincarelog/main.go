package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"poincarelog/internal/config"
	"poincarelog/internal/version"
)

// errReported означает, что диагностика уже напечатана и main остаётся
// только выйти с кодом 1.
var errReported = errors.New("diagnostics reported")

type app struct {
	unknownFlags []string // вырезаны из argv до разбора
}

// main builds the command tree, runs it with an interrupt-aware context and
// exits with status 1 on any fatal error.
func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	if err != nil {
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	a := &app{}
	root := newRootCmd(a)
	kept, unknown := splitUnknownFlags(root, args)
	a.unknownFlags = unknown
	root.SetArgs(kept)
	root.SetOut(stdout)
	root.SetErr(stderr)
	err := root.ExecuteContext(ctx)
	if err != nil && !errors.Is(err, errReported) {
		fmt.Fprintf(stderr, "error: %v\n", err)
	}
	return err
}

func newRootCmd(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:   "poincarelog [flags] [file...]",
		Short: "Readable reports from Poincaré reduction logs",
		Long: `poincarelog reads the XML reduction log written by the Poincaré
simplifier, drops the steps that changed nothing and prints every
trace as an indented tree of reduction steps.`,
		Version:       version.Version,
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          a.runRender,
	}

	// Глобальные флаги
	pf := root.PersistentFlags()
	pf.Bool("useless", false, "keep steps that changed nothing")
	pf.Bool("number-to-rational", false, "keep BasedInteger to Rational conversions")
	pf.Bool("undefined", false, "keep steps that only collapse to undef")
	pf.Bool("states", false, "keep intermediate State snapshots")
	pf.Bool("long", false, "print every expression in long form")
	pf.Bool("keep-going", false, "skip unreadable inputs instead of stopping")
	pf.String("color", "auto", "colorize output (auto|on|off)")
	pf.String("config", "", "configuration file (default: nearest "+config.FileName+")")
	pf.Bool("timings", false, "show per-stage timings on stderr")
	pf.Int("max-diagnostics", 100, "maximum number of diagnostics to show")
	pf.String("trace", "", "write trace events to PATH (- for stderr)")
	pf.String("trace-level", "off", "trace level (off|error|phase|detail|debug)")
	pf.String("trace-mode", "ring", "trace storage (stream|ring|both)")
	pf.Int("trace-ring-size", 4096, "events kept in the trace ring buffer")
	pf.String("cpu-profile", "", "write a CPU profile to PATH")
	pf.String("mem-profile", "", "write a heap profile to PATH")
	pf.String("runtime-trace", "", "write a Go runtime trace to PATH")

	root.Flags().String("format", "pretty", "output format (pretty|json|msgpack)")

	root.AddCommand(newViewCmd(a))
	root.AddCommand(newStatsCmd(a))
	root.AddCommand(newVersionCmd(a))
	root.CompletionOptions.DisableDefaultCmd = true
	return root
}
