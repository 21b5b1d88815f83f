package diagfmt

import (
	"bytes"
	"strings"
	"testing"

	"poincarelog/internal/diag"
	"poincarelog/internal/source"
)

// TestPathModes проверяет различные режимы форматирования путей
func TestPathModes(t *testing.T) {
	fs := source.NewFileSet()
	fileID := fs.AddVirtual("/home/user/project/logs/poincare-log.xml", []byte("<ReduceProcess>\n  <Stepp/>\n"))
	fs.SetBaseDir("/home/user/project")

	bag := diag.NewBag(10)
	bag.Add(diag.New(diag.SevError, diag.DocUnexpectedEvent,
		source.Span{File: fileID, Start: 18, End: 26}, "unexpected `<Stepp>`"))

	tests := []struct {
		name     string
		mode     PathMode
		contains string
	}{
		{"Absolute path", PathModeAbsolute, "/home/user/project/logs/poincare-log.xml:2:3:"},
		{"Relative path", PathModeRelative, "logs/poincare-log.xml:2:3:"},
		{"Basename only", PathModeBasename, "poincare-log.xml:2:3:"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			Pretty(&buf, bag, fs, PrettyOpts{PathMode: tt.mode})
			if !strings.HasPrefix(buf.String(), tt.contains) {
				t.Fatalf("want prefix %q got %q", tt.contains, buf.String())
			}
		})
	}
}

func TestPrettyContext(t *testing.T) {
	fs := source.NewFileSet()
	fileID := fs.AddVirtual("log.xml", []byte("<ReduceProcess>\n\t<Stepp/>\n"))
	bag := diag.NewBag(10)
	bag.Add(diag.New(diag.SevError, diag.DocUnexpectedEvent,
		source.Span{File: fileID, Start: 17, End: 25}, "unexpected `<Stepp>`"))
	bag.Add(diag.New(diag.SevWarning, diag.CfgUnknownOption, source.NoSpan, "unknown option `--fast`, skipping"))

	var buf bytes.Buffer
	Pretty(&buf, bag, fs, PrettyOpts{Context: true, PathMode: PathModeBasename})
	want := "log.xml:2:2: error DOC2001: unexpected `<Stepp>`\n" +
		"    \t<Stepp/>\n" +
		"    \t^\n" +
		"warning CFG4001: unknown option `--fast`, skipping\n"
	if buf.String() != want {
		t.Fatalf("Pretty mismatch:\nwant %q\ngot  %q", want, buf.String())
	}
}
