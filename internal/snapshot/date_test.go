package snapshot

import (
	"testing"
	"time"
)

func TestParseDate_Valid(t *testing.T) {
	d, err := ParseDate("2025-03-14")
	if err != nil {
		t.Fatal(err)
	}
	if d.String() != "2025-03-14" {
		t.Errorf("expected 2025-03-14, got %s", d)
	}
}

func TestParseDate_Invalid(t *testing.T) {
	cases := []string{"", "20250314", "2025-13-01", "2025-03-14T00:00:00Z", "not a date"}
	for _, c := range cases {
		if _, err := ParseDate(c); err == nil {
			t.Errorf("expected error for %q", c)
		}
	}
}

func TestToday_DefaultsToKST(t *testing.T) {
	want := Date(time.Now().In(KST).Format("2006-01-02"))
	if got := Today(nil); got != want {
		t.Errorf("expected %s, got %s", want, got)
	}
}

func TestToday_ExplicitLocation(t *testing.T) {
	utc := time.UTC
	want := Date(time.Now().In(utc).Format("2006-01-02"))
	if got := Today(utc); got != want {
		t.Errorf("expected %s, got %s", want, got)
	}
}

func TestExpandDir(t *testing.T) {
	cases := []struct {
		pattern string
		want    string
	}{
		{"data/snapshots/{date}/prices", "data/snapshots/2025-03-14/prices"},
		{"data/snapshots/{date}/news", "data/snapshots/2025-03-14/news"},
		{"/abs/{date}/{date}", "/abs/2025-03-14/2025-03-14"},
		{"no-placeholder", "no-placeholder"},
	}
	for _, c := range cases {
		if got := ExpandDir(c.pattern, Date("2025-03-14")); got != c.want {
			t.Errorf("ExpandDir(%q): expected %q, got %q", c.pattern, c.want, got)
		}
	}
}
