package report

import (
	"testing"
	"time"

	"daybook/internal/core"
)

func TestSummarize_Empty(t *testing.T) {
	s := Summarize(nil)
	if s.Invocations != 0 || s.Failures != 0 {
		t.Errorf("expected zero counts, got %+v", s)
	}
	if len(s.Collectors) != 0 {
		t.Errorf("expected no collectors, got %d", len(s.Collectors))
	}
}

func TestSummarize_PerCollector(t *testing.T) {
	events := []core.Event{
		{Collector: "prices", Round: 1, Duration: 2 * time.Second, Success: true},
		{Collector: "news", Round: 1, Duration: 4 * time.Second, Success: false, Error: "exit status 1"},
		{Collector: "prices", Round: 2, Duration: 6 * time.Second, Success: true},
		{Collector: "news", Round: 2, Duration: 2 * time.Second, Success: true},
	}

	s := Summarize(events)

	if s.Invocations != 4 {
		t.Errorf("expected 4 invocations, got %d", s.Invocations)
	}
	if s.Failures != 1 {
		t.Errorf("expected 1 failure, got %d", s.Failures)
	}

	prices := s.Collectors["prices"]
	if prices == nil {
		t.Fatal("missing prices stats")
	}
	if prices.Attempts != 2 || prices.Failures != 0 {
		t.Errorf("unexpected prices stats: %+v", prices)
	}
	if prices.Duration.Min != 2*time.Second || prices.Duration.Max != 6*time.Second {
		t.Errorf("unexpected prices durations: %+v", prices.Duration)
	}
	if prices.Duration.Avg != 4*time.Second {
		t.Errorf("expected avg 4s, got %v", prices.Duration.Avg)
	}

	news := s.Collectors["news"]
	if news == nil {
		t.Fatal("missing news stats")
	}
	if news.Failures != 1 {
		t.Errorf("expected 1 news failure, got %d", news.Failures)
	}
	if news.LastError != "exit status 1" {
		t.Errorf("expected last error recorded, got %q", news.LastError)
	}
}

func TestRecorder_CollectsAndCopies(t *testing.T) {
	r := NewRecorder()
	r.Report(core.Event{Collector: "prices", Round: 1, Success: true})
	r.Report(core.Event{Collector: "news", Round: 1, Success: false})

	events := r.Events()
	if len(events) != 2 {
		t.Fatalf("expected 2 events, got %d", len(events))
	}

	// Mutating the returned slice must not affect the recorder.
	events[0].Collector = "mutated"
	if r.Events()[0].Collector != "prices" {
		t.Error("Events should return a copy")
	}
}
