// Package quorum evaluates per-collector completion criteria.
package quorum

// Count is one collector's valid-artifact tally after a sweep.
type Count struct {
	Collector string
	Required  int
	Valid     int
}

// Result represents the outcome of a single collector's quorum check.
type Result struct {
	Collector string `json:"collector"`
	Passed    bool   `json:"passed"`
	Required  int    `json:"required"`
	Valid     int    `json:"valid"`
}

// Results contains all quorum check results for a round.
type Results struct {
	Passed  bool     `json:"passed"`
	Results []Result `json:"results"`
}

// Check evaluates every collector's count against its required minimum.
// A collector passes on greater-or-equal; overshooting is fine. Passed on
// the whole set requires every collector to pass simultaneously.
func Check(counts []Count) *Results {
	results := &Results{
		Passed:  true,
		Results: make([]Result, 0, len(counts)),
	}

	for _, c := range counts {
		passed := c.Valid >= c.Required
		if !passed {
			results.Passed = false
		}
		results.Results = append(results.Results, Result{
			Collector: c.Collector,
			Passed:    passed,
			Required:  c.Required,
			Valid:     c.Valid,
		})
	}

	return results
}

// Violations returns only the failed results.
func (r *Results) Violations() []Result {
	violations := make([]Result, 0)
	for _, result := range r.Results {
		if !result.Passed {
			violations = append(violations, result)
		}
	}
	return violations
}
