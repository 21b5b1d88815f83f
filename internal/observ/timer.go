package observ

import (
	"fmt"
	"strings"
	"time"
)

// Stage accumulates the time spent in one pipeline stage over a run.
// A stage is entered once per file (load) or once per trace (parse, prune, render).
type Stage struct {
	Name  string
	Count int
	Dur   time.Duration
	Note  string

	started time.Time
}

// Timer tracks cumulative durations of named stages in first-seen order.
type Timer struct {
	stages []Stage
	index  map[string]int
	now    func() time.Time
}

// NewTimer creates a new empty Timer.
func NewTimer() *Timer {
	return &Timer{
		stages: make([]Stage, 0, 4),
		index:  make(map[string]int, 4),
		now:    time.Now,
	}
}

// Begin enters stage name and returns its index for End.
// A nil Timer is valid and records nothing.
func (t *Timer) Begin(name string) int {
	if t == nil {
		return -1
	}
	idx, ok := t.index[name]
	if !ok {
		idx = len(t.stages)
		t.stages = append(t.stages, Stage{Name: name})
		t.index[name] = idx
	}
	t.stages[idx].started = t.now()
	return idx
}

// End leaves the stage entered by Begin. A non-empty note replaces the
// previous one.
func (t *Timer) End(idx int, note string) {
	if t == nil || idx < 0 || idx >= len(t.stages) {
		return
	}
	s := &t.stages[idx]
	s.Dur += t.now().Sub(s.started)
	s.Count++
	if note != "" {
		s.Note = note
	}
}

// Summary returns a human-readable string summarizing all tracked stages.
func (t *Timer) Summary() string {
	report := t.Report()
	var sb strings.Builder
	sb.WriteString("timings:\n")
	for _, s := range report.Stages {
		fmt.Fprintf(&sb, "  %-10s %7.2f ms  x%d", s.Name, s.DurationMS, s.Count)
		if s.Note != "" {
			sb.WriteString("  // " + s.Note)
		}
		sb.WriteString("\n")
	}
	fmt.Fprintf(&sb, "  %-10s %7.2f ms\n", "total", report.TotalMS)
	return sb.String()
}

// StageReport представляет сжатую информацию о стадии для сериализации.
type StageReport struct {
	Name       string  `json:"name"`
	Count      int     `json:"count"`
	DurationMS float64 `json:"duration_ms"`
	Note       string  `json:"note,omitempty"`
}

// Report описывает агрегированные данные таймера.
type Report struct {
	TotalMS float64       `json:"total_ms"`
	Stages  []StageReport `json:"stages"`
}

// Report формирует срез стадий и общую длительность в миллисекундах.
func (t *Timer) Report() Report {
	if t == nil || len(t.stages) == 0 {
		return Report{}
	}
	report := Report{
		Stages: make([]StageReport, len(t.stages)),
	}
	var total time.Duration
	for i, s := range t.stages {
		total += s.Dur
		report.Stages[i] = StageReport{
			Name:       s.Name,
			Count:      s.Count,
			DurationMS: durationToMillis(s.Dur),
			Note:       s.Note,
		}
	}
	report.TotalMS = durationToMillis(total)
	return report
}

func durationToMillis(d time.Duration) float64 {
	return float64(d) / float64(time.Millisecond)
}
