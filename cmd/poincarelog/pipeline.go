package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"poincarelog/internal/diag"
	"poincarelog/internal/diagfmt"
	"poincarelog/internal/driver"
	"poincarelog/internal/observ"
	"poincarelog/internal/stats"
	"poincarelog/internal/trace"
)

// runPipeline drives every input through sink and prints the diagnostics,
// timings and, on failure, the trace ring to stderr.
func runPipeline(cmd *cobra.Command, s settings, sink driver.Sink, collector *stats.Collector) (*driver.Result, error) {
	stopProfiling, err := setupProfiling(cmd)
	if err != nil {
		return nil, err
	}
	defer stopProfiling()

	cleanup, err := setupTracing(cmd)
	if err != nil {
		return nil, err
	}
	defer cleanup()

	showTimings, err := cmd.Flags().GetBool("timings")
	if err != nil {
		return nil, fmt.Errorf("failed to get timings flag: %w", err)
	}
	maxDiagnostics, err := cmd.Flags().GetInt("max-diagnostics")
	if err != nil {
		return nil, fmt.Errorf("failed to get max-diagnostics flag: %w", err)
	}

	var timer *observ.Timer
	if showTimings {
		timer = observ.NewTimer()
	}

	res, runErr := driver.Run(cmd.Context(), s.cfg.Input.Files, sink, driver.Options{
		Prune:          s.cfg.PruneOptions(),
		KeepGoing:      s.cfg.Input.KeepGoing,
		MaxDiagnostics: maxDiagnostics,
		Timer:          timer,
		Stats:          collector,
	})

	stderr := cmd.ErrOrStderr()
	if res != nil && res.Bag.Len() > 0 {
		res.Bag.Sort()
		diagfmt.Pretty(stderr, res.Bag, res.FileSet, diagfmt.PrettyOpts{
			Color:     useColor(s.color, stderr),
			PathMode:  diagfmt.PathModeRelative,
			ShowNotes: true,
			Context:   true,
		})
	}
	if timer != nil {
		if err := printStageTimings(stderr, timer.Report()); err != nil {
			return res, err
		}
	}
	if runErr == nil {
		return res, nil
	}

	dumpTraceRing(cmd)
	var de *diag.Error
	if errors.As(runErr, &de) || errors.Is(runErr, driver.ErrInputsSkipped) {
		return res, errReported
	}
	return res, runErr
}

// хвост кольца, который печатается после сбоя
const failureDumpLimit = 200

// dumpTraceRing печатает последние события трассировки после сбоя.
func dumpTraceRing(cmd *cobra.Command) {
	ring := trace.RingOf(trace.FromContext(cmd.Context()))
	if ring == nil || ring.Len() == 0 {
		return
	}
	stderr := cmd.ErrOrStderr()
	fmt.Fprintln(stderr, "trace: last events before the failure:")
	if err := ring.Dump(stderr, trace.FormatText, failureDumpLimit); err != nil {
		fmt.Fprintf(stderr, "trace: dump error: %v\n", err)
	}
}
