// Package universe loads the tracked-ticker list collectors are expected to
// cover for a snapshot date.
package universe

import (
	"fmt"
	"os"
	"strings"

	"github.com/tidwall/gjson"
)

// Load reads a top-N file: a JSON array of objects carrying at least a
// "ticker" field, as emitted by the signal ranking stage. Tickers are
// zero-padded to 6 digits, the KRX code width. Entries without a ticker are
// skipped; duplicates keep first position.
func Load(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading universe file: %w", err)
	}
	return Parse(data)
}

// Parse extracts tickers from raw top-N JSON.
func Parse(data []byte) ([]string, error) {
	if !gjson.ValidBytes(data) {
		return nil, fmt.Errorf("universe file is not valid JSON")
	}

	root := gjson.ParseBytes(data)
	if !root.IsArray() {
		return nil, fmt.Errorf("universe file must be a JSON array")
	}

	seen := make(map[string]bool)
	tickers := make([]string, 0)
	for _, item := range root.Get("#.ticker").Array() {
		t := padTicker(item.String())
		if t == "" || seen[t] {
			continue
		}
		seen[t] = true
		tickers = append(tickers, t)
	}

	if len(tickers) == 0 {
		return nil, fmt.Errorf("universe file contains no tickers")
	}
	return tickers, nil
}

func padTicker(t string) string {
	t = strings.TrimSpace(t)
	if t == "" {
		return ""
	}
	for len(t) < 6 {
		t = "0" + t
	}
	return t
}
