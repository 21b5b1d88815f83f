package main

import (
	"fmt"
	"io"

	"poincarelog/internal/observ"
)

// printStageTimings prints one line per stage in first-use order, then the
// total.
func printStageTimings(out io.Writer, report observ.Report) error {
	if out == nil || len(report.Stages) == 0 {
		return nil
	}
	for _, st := range report.Stages {
		if _, err := fmt.Fprintf(out, "%-7s %8.1f ms  x%d\n", st.Name, st.DurationMS, st.Count); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintf(out, "%-7s %8.1f ms\n", "total", report.TotalMS)
	return err
}
