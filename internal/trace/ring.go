package trace

import (
	"io"
	"sync"
)

// RingTracer remembers the most recent events of a run so they can be
// printed after a failure. Older events are overwritten.
type RingTracer struct {
	mu     sync.RWMutex
	events []Event
	next   int // позиция следующей записи
	count  int // сколько слотов занято
	level  Level
}

// NewRingTracer creates a RingTracer holding up to capacity events.
func NewRingTracer(capacity int, level Level) *RingTracer {
	if capacity <= 0 {
		capacity = 4096
	}
	return &RingTracer{
		events: make([]Event, capacity),
		level:  level,
	}
}

func (t *RingTracer) Emit(ev *Event) {
	if !t.level.ShouldEmit(ev.Scope) {
		return
	}
	t.mu.Lock()
	defer t.mu.Unlock()

	stored := *ev
	stored.Seq = NextSeq()
	t.events[t.next] = stored
	t.next = (t.next + 1) % len(t.events)
	t.count = min(t.count+1, len(t.events))
}

// Len returns the number of events currently held.
func (t *RingTracer) Len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.count
}

// Snapshot returns every held event, oldest first.
func (t *RingTracer) Snapshot() []Event {
	return t.Tail(0)
}

// Tail returns the last n events, oldest first. n <= 0 means all of them.
func (t *RingTracer) Tail(n int) []Event {
	t.mu.RLock()
	defer t.mu.RUnlock()

	if n <= 0 || n > t.count {
		n = t.count
	}
	out := make([]Event, n)
	capacity := len(t.events)
	start := (t.next - n + capacity) % capacity
	for i := range n {
		out[i] = t.events[(start+i)%capacity]
	}
	return out
}

// Dump writes the last limit events (all when limit <= 0) to w.
func (t *RingTracer) Dump(w io.Writer, format Format, limit int) error {
	events := t.Tail(limit)
	for i := range events {
		if _, err := w.Write(FormatEvent(&events[i], format)); err != nil {
			return err
		}
	}
	return nil
}

func (t *RingTracer) Flush() error  { return nil }
func (t *RingTracer) Close() error  { return nil }
func (t *RingTracer) Level() Level  { return t.level }
func (t *RingTracer) Enabled() bool { return t.level > LevelOff }
