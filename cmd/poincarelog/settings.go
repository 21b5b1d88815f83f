package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"poincarelog/internal/config"
	"poincarelog/internal/diag"
	"poincarelog/internal/diagfmt"
	"poincarelog/internal/source"
)

// settings is the configuration file merged with explicitly set flags.
type settings struct {
	cfg   config.Config
	color colorMode
}

// loadSettings reads the configuration, applies the flags the user actually
// set and prints the warnings collected on the way.
func (a *app) loadSettings(cmd *cobra.Command, args []string) (settings, error) {
	bag := diag.NewBag(100)
	// один и тот же неизвестный флаг может прийти дважды
	r := diag.NewDedupReporter(diag.BagReporter{Bag: bag})

	a.reportUnknownFlags(r)
	cfg, err := readConfig(cmd, r)
	if err == nil {
		err = applyFlags(cmd, &cfg, args)
	}
	printWarnings(cmd, bag)
	if err != nil {
		var de *diag.Error
		if errors.As(err, &de) {
			return settings{}, errReported
		}
		return settings{}, err
	}

	mode, err := readColorMode(cfg.Display.Color)
	if err != nil {
		return settings{}, err
	}
	return settings{cfg: cfg, color: mode}, nil
}

func readConfig(cmd *cobra.Command, r diag.Reporter) (config.Config, error) {
	path, err := cmd.Flags().GetString("config")
	if err != nil {
		return config.Config{}, fmt.Errorf("failed to get config flag: %w", err)
	}
	if path != "" {
		return config.Load(path, r)
	}
	return config.Discover(".", r)
}

// applyFlags overrides cfg only with flags set on the command line.
func applyFlags(cmd *cobra.Command, cfg *config.Config, args []string) error {
	flags := cmd.Flags()
	switches := []struct {
		name string
		dst  *bool
	}{
		{"useless", &cfg.Filter.Useless},
		{"number-to-rational", &cfg.Filter.NumberToRational},
		{"undefined", &cfg.Filter.Undefined},
		{"states", &cfg.Filter.States},
		{"long", &cfg.Display.Long},
		{"keep-going", &cfg.Input.KeepGoing},
	}
	for _, sw := range switches {
		if !flags.Changed(sw.name) {
			continue
		}
		v, err := flags.GetBool(sw.name)
		if err != nil {
			return fmt.Errorf("failed to get %s flag: %w", sw.name, err)
		}
		*sw.dst = v
	}
	if flags.Changed("color") {
		v, err := flags.GetString("color")
		if err != nil {
			return fmt.Errorf("failed to get color flag: %w", err)
		}
		mode, err := readColorMode(v)
		if err != nil {
			return err
		}
		cfg.Display.Color = string(mode)
	}
	if len(args) > 0 {
		cfg.Input.Files = args
	}
	return cfg.Validate()
}

// reportUnknownFlags warns once per flag that was cut from argv.
func (a *app) reportUnknownFlags(r diag.Reporter) {
	for _, name := range a.unknownFlags {
		diag.ReportWarning(r, diag.CfgUnknownOption, source.NoSpan,
			fmt.Sprintf("unknown option `%s`, skipping", name))
	}
}

func printWarnings(cmd *cobra.Command, bag *diag.Bag) {
	if bag.Len() == 0 {
		return
	}
	mode := colorAuto
	if v, err := cmd.Flags().GetString("color"); err == nil {
		if m, err := readColorMode(v); err == nil {
			mode = m
		}
	}
	stderr := cmd.ErrOrStderr()
	diagfmt.Pretty(stderr, bag, nil, diagfmt.PrettyOpts{Color: useColor(mode, stderr)})
}
