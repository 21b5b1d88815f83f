package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"poincarelog/internal/prof"
)

// setupProfiling inspects profiling flags and starts the requested
// profilers. The cleanup function reports stop errors on stderr.
func setupProfiling(cmd *cobra.Command) (func(), error) {
	flags := cmd.Flags()
	var paths prof.Paths
	var err error
	if paths.CPU, err = flags.GetString("cpu-profile"); err != nil {
		return nil, fmt.Errorf("failed to get cpu-profile flag: %w", err)
	}
	if paths.Mem, err = flags.GetString("mem-profile"); err != nil {
		return nil, fmt.Errorf("failed to get mem-profile flag: %w", err)
	}
	if paths.RuntimeTrace, err = flags.GetString("runtime-trace"); err != nil {
		return nil, fmt.Errorf("failed to get runtime-trace flag: %w", err)
	}
	if paths.Empty() {
		return func() {}, nil
	}

	session, err := prof.Start(paths)
	if err != nil {
		return nil, err
	}
	return func() {
		if err := session.Stop(); err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "profile: %v\n", err)
		}
	}, nil
}
