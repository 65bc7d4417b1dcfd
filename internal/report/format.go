package report

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"time"

	"daybook/internal/quorum"
)

// RunReport is everything the operator sees after a run finishes.
type RunReport struct {
	Date    string
	Status  string
	Rounds  int
	Summary *Summary
	Quorum  *quorum.Results
}

// FormatText writes the report in human-readable form.
func FormatText(w io.Writer, r *RunReport) {
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "Daybook - Snapshot Collection")
	fmt.Fprintln(w, "=============================")
	fmt.Fprintln(w, "")
	fmt.Fprintf(w, "Date:        %s\n", r.Date)
	fmt.Fprintf(w, "Status:      %s\n", r.Status)
	fmt.Fprintf(w, "Rounds:      %d\n", r.Rounds)
	if r.Summary != nil {
		fmt.Fprintf(w, "Invocations: %d (%d failed)\n", r.Summary.Invocations, r.Summary.Failures)
	}

	if r.Summary != nil && len(r.Summary.Collectors) > 0 {
		fmt.Fprintln(w, "")
		fmt.Fprintln(w, "By Collector:")
		for _, name := range sortedCollectors(r.Summary) {
			cs := r.Summary.Collectors[name]
			fmt.Fprintf(w, "  %-12s %d attempts (%d failed)   min=%s avg=%s max=%s\n",
				name, cs.Attempts, cs.Failures,
				FormatDuration(cs.Duration.Min),
				FormatDuration(cs.Duration.Avg),
				FormatDuration(cs.Duration.Max))
			if cs.LastError != "" {
				fmt.Fprintf(w, "               last error: %s\n", cs.LastError)
			}
		}
	}

	if r.Quorum != nil && len(r.Quorum.Results) > 0 {
		fmt.Fprintln(w, "")
		fmt.Fprintln(w, "Quorum:")
		for _, result := range r.Quorum.Results {
			symbol := "✓"
			if !result.Passed {
				symbol = "✗"
			}
			fmt.Fprintf(w, "  %s %s: %d valid (need %d)\n",
				symbol, result.Collector, result.Valid, result.Required)
		}
	}
}

// FormatJSON writes the report in JSON form.
func FormatJSON(w io.Writer, r *RunReport) {
	output := struct {
		Date        string                         `json:"date"`
		Status      string                         `json:"status"`
		Rounds      int                            `json:"rounds"`
		Invocations int                            `json:"invocations"`
		Failures    int                            `json:"failures"`
		Collectors  map[string]jsonCollectorStats  `json:"collectors"`
		Quorum      *quorum.Results                `json:"quorum,omitempty"`
	}{
		Date:       r.Date,
		Status:     r.Status,
		Rounds:     r.Rounds,
		Collectors: make(map[string]jsonCollectorStats),
		Quorum:     r.Quorum,
	}

	if r.Summary != nil {
		output.Invocations = r.Summary.Invocations
		output.Failures = r.Summary.Failures
		for name, cs := range r.Summary.Collectors {
			output.Collectors[name] = jsonCollectorStats{
				Attempts:  cs.Attempts,
				Failures:  cs.Failures,
				LastError: cs.LastError,
				Min:       FormatDuration(cs.Duration.Min),
				Avg:       FormatDuration(cs.Duration.Avg),
				Max:       FormatDuration(cs.Duration.Max),
			}
		}
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	_ = encoder.Encode(output) // stdout errors are unrecoverable
}

type jsonCollectorStats struct {
	Attempts  int    `json:"attempts"`
	Failures  int    `json:"failures"`
	LastError string `json:"lastError,omitempty"`
	Min       string `json:"min"`
	Avg       string `json:"avg"`
	Max       string `json:"max"`
}

func sortedCollectors(s *Summary) []string {
	names := make([]string, 0, len(s.Collectors))
	for name := range s.Collectors {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// FormatDuration formats a duration for display.
func FormatDuration(d time.Duration) string {
	if d < time.Millisecond {
		return fmt.Sprintf("%dµs", d.Microseconds())
	}
	if d < time.Second {
		return fmt.Sprintf("%dms", d.Milliseconds())
	}
	if d < time.Minute {
		return fmt.Sprintf("%.1fs", d.Seconds())
	}
	return d.Round(time.Second).String()
}
