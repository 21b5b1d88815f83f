package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"poincarelog/internal/diag"
)

func writeConfig(t *testing.T, dir, body string) string {
	t.Helper()
	path := filepath.Join(dir, FileName)
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := writeConfig(t, t.TempDir(), `
[filter]
number_to_rational = true
states = true

[display]
long = true
color = "off"

[input]
files = ["a.xml", "b.xml"]
keep_going = true
`)
	cfg, err := Load(path, nil)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	opts := cfg.PruneOptions()
	if opts.IncludeTrivial || !opts.IncludeNumberToRational || opts.IncludeUndefined || !opts.IncludeStates {
		t.Fatalf("unexpected prune options %+v", opts)
	}
	if !cfg.Display.Long || cfg.Display.Color != "off" {
		t.Fatalf("unexpected display %+v", cfg.Display)
	}
	if len(cfg.Input.Files) != 2 || !cfg.Input.KeepGoing {
		t.Fatalf("unexpected input %+v", cfg.Input)
	}
}

func TestPartialFileKeepsDefaults(t *testing.T) {
	path := writeConfig(t, t.TempDir(), "[filter]\nundefined = true\n")
	cfg, err := Load(path, nil)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Display.Color != "auto" {
		t.Fatalf("color default lost: %q", cfg.Display.Color)
	}
	if len(cfg.Input.Files) != 1 || cfg.Input.Files[0] != DefaultInput {
		t.Fatalf("input default lost: %v", cfg.Input.Files)
	}
}

func TestUnknownKeysAreWarnings(t *testing.T) {
	path := writeConfig(t, t.TempDir(), "[filter]\nuseles = true\n[colour]\nx = 1\n")
	bag := diag.NewBag(10)
	if _, err := Load(path, diag.BagReporter{Bag: bag}); err != nil {
		t.Fatalf("unknown keys must not fail: %v", err)
	}
	if bag.HasErrors() || !bag.HasWarnings() {
		t.Fatalf("want warnings only, got %d diagnostics", bag.Len())
	}
	var msgs []string
	for _, d := range bag.Items() {
		if d.Code != diag.CfgUnknownOption {
			t.Fatalf("unexpected code %s", d.Code.ID())
		}
		msgs = append(msgs, d.Message)
	}
	joined := strings.Join(msgs, "\n")
	if !strings.Contains(joined, "unknown option `filter.useles`") || !strings.Contains(joined, "colour.x") {
		t.Fatalf("unexpected messages:\n%s", joined)
	}
}

func TestInvalidConfig(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"syntax", "[filter\n"},
		{"type", "[filter]\nstates = \"yes\"\n"},
		{"color", "[display]\ncolor = \"always\"\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeConfig(t, t.TempDir(), tt.body)
			_, err := Load(path, nil)
			var de *diag.Error
			if !errors.As(err, &de) || de.Diag.Code != diag.CfgInvalid {
				t.Fatalf("want %s error, got %v", diag.CfgInvalid.ID(), err)
			}
		})
	}
}

func TestFindWalksUp(t *testing.T) {
	root := t.TempDir()
	want := writeConfig(t, root, "")
	nested := filepath.Join(root, "a", "b")
	if err := os.MkdirAll(nested, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	got, ok, err := Find(nested)
	if err != nil || !ok {
		t.Fatalf("Find: ok=%v err=%v", ok, err)
	}
	if got != want {
		t.Fatalf("want %s got %s", want, got)
	}

	cfg, err := Discover(nested, nil)
	if err != nil || cfg.Path != want {
		t.Fatalf("Discover: path=%q err=%v", cfg.Path, err)
	}
}
