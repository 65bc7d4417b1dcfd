package universe

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestParse_TopNFile(t *testing.T) {
	data := []byte(`[
		{"ticker": "005930", "name": "Samsung Electronics", "score": 0.91},
		{"ticker": "660", "name": "SK hynix", "score": 0.88},
		{"ticker": 35420, "name": "NAVER", "score": 0.71}
	]`)

	got, err := Parse(data)
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"005930", "000660", "035420"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("expected %v, got %v", want, got)
	}
}

func TestParse_SkipsMissingAndDuplicateTickers(t *testing.T) {
	data := []byte(`[
		{"ticker": "005930"},
		{"name": "no ticker"},
		{"ticker": "005930"},
		{"ticker": ""}
	]`)

	got, err := Parse(data)
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(got, []string{"005930"}) {
		t.Errorf("expected single deduplicated ticker, got %v", got)
	}
}

func TestParse_Invalid(t *testing.T) {
	cases := []struct {
		name string
		data string
	}{
		{"not json", "not json at all"},
		{"not array", `{"ticker": "005930"}`},
		{"empty array", `[]`},
		{"no tickers", `[{"name": "x"}]`},
	}
	for _, c := range cases {
		if _, err := Parse([]byte(c.data)); err == nil {
			t.Errorf("%s: expected error", c.name)
		}
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "topN.json")
	if err := os.WriteFile(path, []byte(`[{"ticker":"005930"},{"ticker":"000660"}]`), 0o644); err != nil {
		t.Fatal(err)
	}

	got, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 2 {
		t.Errorf("expected 2 tickers, got %v", got)
	}
}

func TestLoad_MissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.json")); err == nil {
		t.Error("expected error for missing file")
	}
}
