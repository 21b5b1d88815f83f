package main

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"poincarelog/internal/driver"
	"poincarelog/internal/export"
	"poincarelog/internal/format"
)

// runRender is the default command: the report, or an export of the
// pruned traces, on stdout.
func (a *app) runRender(cmd *cobra.Command, args []string) error {
	s, err := a.loadSettings(cmd, args)
	if err != nil {
		return err
	}
	outputFormat, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}

	out := cmd.OutOrStdout()
	bw := bufio.NewWriter(out)

	var sink driver.Sink
	switch strings.ToLower(outputFormat) {
	case "pretty":
		sink = driver.NewTextSink(bw, format.Options{
			Long:  s.cfg.Display.Long,
			Color: useColor(s.color, out),
		})
	case "json", "msgpack":
		kind, err := export.ParseKind(outputFormat)
		if err != nil {
			return err
		}
		if sink, err = driver.NewExportSink(kind, bw); err != nil {
			return err
		}
	default:
		return fmt.Errorf("unsupported format %q (must be pretty, json or msgpack)", outputFormat)
	}

	_, runErr := runPipeline(cmd, s, sink, nil)
	if err := bw.Flush(); err != nil && runErr == nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return runErr
}
