// Package harness drives bounded retry rounds of collector invocations until
// every collector holds a quorum of valid output artifacts.
package harness

import (
	"context"
	"fmt"
	"time"

	"daybook/internal/core"
	"daybook/internal/progress"
	"daybook/internal/quorum"
	"daybook/internal/snapshot"
)

// Status is the harness's terminal state.
type Status int

const (
	// StatusSuccess means every collector reached its quorum.
	StatusSuccess Status = iota
	// StatusIncomplete means the round budget ran out first.
	StatusIncomplete
)

func (s Status) String() string {
	if s == StatusSuccess {
		return "success"
	}
	return "incomplete"
}

// Task is one collector invocation: an opaque external job that takes the
// snapshot date and writes artifacts into its output directory. A non-nil
// error is recoverable; a later round may fill in the missing artifacts.
type Task interface {
	Run(ctx context.Context, date snapshot.Date) error
}

// TaskFunc adapts a function to the Task interface.
type TaskFunc func(ctx context.Context, date snapshot.Date) error

func (f TaskFunc) Run(ctx context.Context, date snapshot.Date) error { return f(ctx, date) }

// Spec configures one collector. Static for the duration of a run.
type Spec struct {
	Name     string
	OutDir   string // date-expanded artifact directory
	Quorum   int    // minimum valid artifacts required
	MinBytes int64  // artifacts at or below this size are deleted
	Task     Task
}

// Options configures the retry loop.
type Options struct {
	MaxRounds int
	Sleep     time.Duration // pause between rounds, skipped on the terminating round
	Clock     core.Clock    // nil = RealClock
	Reporter  core.Reporter // nil = NullReporter
	Progress  *progress.Progress
}

// Outcome is the result of a completed run.
type Outcome struct {
	Status Status
	Rounds int
	Quorum *quorum.Results
}

// Run executes up to MaxRounds rounds. Each round invokes every collector in
// declared order, sweeps undersized artifacts from every output directory,
// and evaluates quorum. Invocation failures are reported and logged, never
// fatal: the end-of-round quorum check is the only retry-vs-stop decision
// point. Output directories are created and pre-swept before round 1 so
// stale remnants of an earlier run cannot count toward quorum.
func Run(ctx context.Context, date snapshot.Date, specs []Spec, opts Options) (Outcome, error) {
	if err := validate(specs, opts); err != nil {
		return Outcome{}, err
	}

	clock := opts.Clock
	if clock == nil {
		clock = core.RealClock{}
	}
	reporter := opts.Reporter
	if reporter == nil {
		reporter = core.NullReporter
	}
	prog := opts.Progress

	for _, spec := range specs {
		if err := snapshot.EnsureDir(spec.OutDir); err != nil {
			return Outcome{}, fmt.Errorf("collector %s: %w", spec.Name, err)
		}
		res, err := snapshot.Sweep(spec.OutDir, spec.MinBytes)
		if err != nil {
			return Outcome{}, fmt.Errorf("collector %s: %w", spec.Name, err)
		}
		if res.Removed > 0 {
			prog.Printf("pre-clean %s: removed %d stale artifacts", spec.Name, res.Removed)
		}
	}

	for round := 1; ; round++ {
		prog.Printf("round %d/%d", round, opts.MaxRounds)

		for _, spec := range specs {
			start := clock.Now()
			err := spec.Task.Run(ctx, date)
			event := core.Event{
				Collector: spec.Name,
				Round:     round,
				Timestamp: start,
				Duration:  clock.Since(start),
				Success:   err == nil,
			}
			if err != nil {
				event.Error = err.Error()
				prog.Printf("  %s failed: %v", spec.Name, err)
			}
			reporter.Report(event)
		}

		counts := make([]quorum.Count, 0, len(specs))
		for _, spec := range specs {
			res, err := snapshot.Sweep(spec.OutDir, spec.MinBytes)
			if err != nil {
				return Outcome{}, fmt.Errorf("collector %s: %w", spec.Name, err)
			}
			counts = append(counts, quorum.Count{
				Collector: spec.Name,
				Required:  spec.Quorum,
				Valid:     res.Kept,
			})
			prog.Printf("  %s: %d/%d valid", spec.Name, res.Kept, spec.Quorum)
		}

		results := quorum.Check(counts)
		if results.Passed {
			return Outcome{Status: StatusSuccess, Rounds: round, Quorum: results}, nil
		}
		if round >= opts.MaxRounds {
			return Outcome{Status: StatusIncomplete, Rounds: round, Quorum: results}, nil
		}

		if err := clock.Sleep(ctx, opts.Sleep); err != nil {
			return Outcome{Status: StatusIncomplete, Rounds: round, Quorum: results}, err
		}
	}
}

func validate(specs []Spec, opts Options) error {
	if opts.MaxRounds < 1 {
		return fmt.Errorf("max rounds must be >= 1, got %d", opts.MaxRounds)
	}
	if opts.Sleep < 0 {
		return fmt.Errorf("sleep must be >= 0, got %v", opts.Sleep)
	}
	for _, spec := range specs {
		if spec.Name == "" {
			return fmt.Errorf("collector name must not be empty")
		}
		if spec.OutDir == "" {
			return fmt.Errorf("collector %s: output directory must not be empty", spec.Name)
		}
		if spec.Quorum < 0 {
			return fmt.Errorf("collector %s: quorum must be >= 0, got %d", spec.Name, spec.Quorum)
		}
		if spec.MinBytes < 0 {
			return fmt.Errorf("collector %s: min bytes must be >= 0, got %d", spec.Name, spec.MinBytes)
		}
		if spec.Task == nil {
			return fmt.Errorf("collector %s: task must not be nil", spec.Name)
		}
	}
	return nil
}
