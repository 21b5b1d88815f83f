package main

import (
	"bytes"
	"strings"

	"github.com/spf13/cobra"

	"poincarelog/internal/driver"
	"poincarelog/internal/format"
	"poincarelog/internal/ui"
)

func newViewCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "view [flags] [file...]",
		Short: "Browse the report in a scrollable viewer",
		Args:  cobra.ArbitraryArgs,
		RunE:  a.runView,
	}
}

// runView renders the whole report first and only then starts the UI.
// Without a terminal on stdout the report is printed as is.
func (a *app) runView(cmd *cobra.Command, args []string) error {
	s, err := a.loadSettings(cmd, args)
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()

	var buf bytes.Buffer
	sink := driver.NewTextSink(&buf, format.Options{
		Long:  s.cfg.Display.Long,
		Color: useColor(s.color, out),
	})
	if _, err := runPipeline(cmd, s, sink, nil); err != nil {
		return err
	}

	if !isTerminalWriter(out) {
		_, err := out.Write(buf.Bytes())
		return err
	}
	title := "poincarelog: " + strings.Join(s.cfg.Input.Files, ", ")
	return ui.RunViewer(title, buf.String(), out)
}
