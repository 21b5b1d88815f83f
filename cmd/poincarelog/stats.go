package main

import (
	"github.com/spf13/cobra"

	"poincarelog/internal/driver"
	"poincarelog/internal/stats"
)

func newStatsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "stats [flags] [file...]",
		Short: "Count seen, kept and pruned steps per step name",
		Args:  cobra.ArbitraryArgs,
		RunE:  a.runStats,
	}
}

func (a *app) runStats(cmd *cobra.Command, args []string) error {
	s, err := a.loadSettings(cmd, args)
	if err != nil {
		return err
	}
	collector := stats.NewCollector()
	if _, err := runPipeline(cmd, s, driver.DiscardSink{}, collector); err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	return stats.Render(out, collector, useColor(s.color, out))
}
