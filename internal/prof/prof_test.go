package prof

import (
	"os"
	"path/filepath"
	"testing"
)

func TestSessionWritesRequestedProfiles(t *testing.T) {
	dir := t.TempDir()
	paths := Paths{
		CPU:          filepath.Join(dir, "cpu.pprof"),
		Mem:          filepath.Join(dir, "mem.pprof"),
		RuntimeTrace: filepath.Join(dir, "rt.trace"),
	}
	s, err := Start(paths)
	if err != nil {
		t.Fatalf("Start: %v", err)
	}
	if err := s.Stop(); err != nil {
		t.Fatalf("Stop: %v", err)
	}
	// второй вызов ничего не делает
	if err := s.Stop(); err != nil {
		t.Fatalf("second Stop: %v", err)
	}
	for _, p := range []string{paths.CPU, paths.Mem, paths.RuntimeTrace} {
		info, err := os.Stat(p)
		if err != nil {
			t.Fatalf("missing %s: %v", p, err)
		}
		if info.Size() == 0 {
			t.Fatalf("%s is empty", p)
		}
	}
}

func TestStartFailureStopsCPU(t *testing.T) {
	dir := t.TempDir()
	_, err := Start(Paths{
		CPU:          filepath.Join(dir, "cpu.pprof"),
		RuntimeTrace: filepath.Join(dir, "missing", "rt.trace"),
	})
	if err == nil {
		t.Fatalf("expected error for unwritable trace path")
	}
	// cpu-профиль должен быть остановлен, иначе повторный запуск упадёт
	s, err := Start(Paths{CPU: filepath.Join(dir, "cpu2.pprof")})
	if err != nil {
		t.Fatalf("restart: %v", err)
	}
	if err := s.Stop(); err != nil {
		t.Fatalf("Stop: %v", err)
	}
}

func TestEmptyPaths(t *testing.T) {
	if !(Paths{}).Empty() {
		t.Fatalf("zero Paths must be empty")
	}
	var s *Session
	if err := s.Stop(); err != nil {
		t.Fatalf("nil session Stop: %v", err)
	}
}
