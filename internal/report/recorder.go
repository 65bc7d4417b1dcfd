// Package report aggregates invocation events and renders the run summary.
package report

import (
	"sync"

	"daybook/internal/core"
)

// Recorder collects invocation events from the harness.
type Recorder struct {
	events []core.Event
	mu     sync.Mutex
}

func NewRecorder() *Recorder {
	return &Recorder{events: make([]core.Event, 0)}
}

// Report stores an event. Thread-safe.
func (r *Recorder) Report(event core.Event) {
	r.mu.Lock()
	r.events = append(r.events, event)
	r.mu.Unlock()
}

// Events returns a copy of recorded events.
func (r *Recorder) Events() []core.Event {
	r.mu.Lock()
	defer r.mu.Unlock()
	result := make([]core.Event, len(r.events))
	copy(result, r.events)
	return result
}
