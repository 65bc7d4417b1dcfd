package core

import "time"

// Event records a single collector invocation.
type Event struct {
	Collector string
	Round     int
	Timestamp time.Time
	Duration  time.Duration
	Success   bool
	Error     string
}

// Reporter receives invocation events from the harness.
type Reporter interface {
	Report(Event)
}

// NullReporter discards all events.
var NullReporter Reporter = nullReporter{}

type nullReporter struct{}

func (nullReporter) Report(Event) {}
