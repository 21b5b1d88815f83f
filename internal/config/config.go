package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	"poincarelog/internal/diag"
	"poincarelog/internal/prune"
	"poincarelog/internal/source"
)

const (
	// FileName is looked up from the working directory upwards.
	FileName = ".poincarelog.toml"
	// DefaultInput is read when no file is given.
	DefaultInput = "poincare-log.xml"
)

// Config mirrors the command-line switches. Every field defaults to the
// behaviour of a bare invocation.
type Config struct {
	Path    string        `toml:"-"` // пусто, если файл не найден
	Filter  FilterConfig  `toml:"filter"`
	Display DisplayConfig `toml:"display"`
	Input   InputConfig   `toml:"input"`
}

type FilterConfig struct {
	Useless          bool `toml:"useless"`
	NumberToRational bool `toml:"number_to_rational"`
	Undefined        bool `toml:"undefined"`
	States           bool `toml:"states"`
}

type DisplayConfig struct {
	Long  bool   `toml:"long"`
	Color string `toml:"color"` // auto|on|off
}

type InputConfig struct {
	Files     []string `toml:"files"`
	KeepGoing bool     `toml:"keep_going"`
}

// Default returns the configuration used when no file is present.
func Default() Config {
	return Config{
		Display: DisplayConfig{Color: "auto"},
		Input:   InputConfig{Files: []string{DefaultInput}},
	}
}

// PruneOptions converts the [filter] section.
func (c Config) PruneOptions() prune.Options {
	return prune.Options{
		IncludeTrivial:          c.Filter.Useless,
		IncludeNumberToRational: c.Filter.NumberToRational,
		IncludeUndefined:        c.Filter.Undefined,
		IncludeStates:           c.Filter.States,
	}
}

// Find walks up from startDir looking for FileName.
func Find(startDir string) (string, bool, error) {
	if startDir == "" {
		startDir = "."
	}
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", false, fmt.Errorf("failed to resolve start directory: %w", err)
	}
	for {
		candidate := filepath.Join(dir, FileName)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, true, nil
		} else if !errors.Is(err, os.ErrNotExist) {
			return "", false, fmt.Errorf("failed to stat %q: %w", candidate, err)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return "", false, nil
}

// Discover finds and loads the nearest config file. Without one it returns
// Default().
func Discover(startDir string, r diag.Reporter) (Config, error) {
	path, ok, err := Find(startDir)
	if err != nil {
		return Config{}, err
	}
	if !ok {
		return Default(), nil
	}
	return Load(path, r)
}

// Load decodes path over Default(). Unknown keys are reported as CFG4001
// warnings and skipped; a parse error or a bad value is a CFG4002 error.
func Load(path string, r diag.Reporter) (Config, error) {
	if r == nil {
		r = diag.NopReporter{}
	}
	cfg := Default()
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, diag.ReportError(r, diag.CfgInvalid, source.NoSpan,
			fmt.Sprintf("%s: failed to parse TOML: %v", path, err))
	}
	cfg.Path = path

	for _, key := range meta.Undecoded() {
		diag.ReportWarning(r, diag.CfgUnknownOption, source.NoSpan,
			fmt.Sprintf("unknown option `%s` in %s, skipping", key.String(), path))
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, diag.ReportError(r, diag.CfgInvalid, source.NoSpan, fmt.Sprintf("%s: %v", path, err))
	}
	return cfg, nil
}

// Validate checks values the TOML types cannot express.
func (c Config) Validate() error {
	switch strings.ToLower(c.Display.Color) {
	case "auto", "on", "off":
	default:
		return fmt.Errorf("[display].color must be auto, on or off, got %q", c.Display.Color)
	}
	for _, f := range c.Input.Files {
		if strings.TrimSpace(f) == "" {
			return errors.New("[input].files must not contain empty paths")
		}
	}
	return nil
}
