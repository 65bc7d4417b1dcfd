package report

import (
	"time"

	"daybook/internal/core"
)

// Summary aggregates all invocation events from one run.
type Summary struct {
	Invocations int
	Failures    int
	Collectors  map[string]*CollectorStats
}

// CollectorStats aggregates the invocations of a single collector.
type CollectorStats struct {
	Attempts  int
	Failures  int
	LastError string
	Duration  DurationStats
}

// DurationStats summarizes invocation wall time.
type DurationStats struct {
	Min time.Duration
	Avg time.Duration
	Max time.Duration
}

// Summarize computes per-collector statistics from events. Pure function.
func Summarize(events []core.Event) *Summary {
	s := &Summary{
		Collectors: make(map[string]*CollectorStats),
	}

	totals := make(map[string]time.Duration)

	for _, e := range events {
		s.Invocations++
		if !e.Success {
			s.Failures++
		}

		cs, exists := s.Collectors[e.Collector]
		if !exists {
			cs = &CollectorStats{Duration: DurationStats{Min: e.Duration, Max: e.Duration}}
			s.Collectors[e.Collector] = cs
		}

		cs.Attempts++
		if !e.Success {
			cs.Failures++
			cs.LastError = e.Error
		}
		totals[e.Collector] += e.Duration
		if e.Duration < cs.Duration.Min {
			cs.Duration.Min = e.Duration
		}
		if e.Duration > cs.Duration.Max {
			cs.Duration.Max = e.Duration
		}
	}

	for name, cs := range s.Collectors {
		cs.Duration.Avg = totals[name] / time.Duration(cs.Attempts)
	}

	return s
}
