// Package snapshot handles snapshot dates and the dated artifact directories
// collectors write into.
package snapshot

import (
	"fmt"
	"strings"
	"time"
)

// dateLayout is the ISO-8601 calendar date format used as the partition key
// for all snapshot output.
const dateLayout = "2006-01-02"

// KST is the reference zone for "today". Snapshots partition on the Korean
// trading day regardless of where the harness runs.
var KST = time.FixedZone("KST", 9*60*60)

// Date is a calendar date in ISO-8601 form. Immutable once a run starts.
type Date string

// ParseDate validates s as an ISO-8601 calendar date.
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return "", fmt.Errorf("invalid snapshot date %q: %w", s, err)
	}
	// Normalize, so "2025-3-4" style inputs cannot slip through as keys.
	return Date(t.Format(dateLayout)), nil
}

// Today returns the current date in loc, or in KST when loc is nil.
func Today(loc *time.Location) Date {
	if loc == nil {
		loc = KST
	}
	return Date(time.Now().In(loc).Format(dateLayout))
}

func (d Date) String() string { return string(d) }

// ExpandDir substitutes the {date} placeholder in a configured path pattern,
// e.g. "data/snapshots/{date}/prices".
func ExpandDir(pattern string, date Date) string {
	return strings.ReplaceAll(pattern, "{date}", string(date))
}
