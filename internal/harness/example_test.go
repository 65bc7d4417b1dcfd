package harness_test

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"daybook/internal/core"
	"daybook/internal/harness"
	"daybook/internal/snapshot"
)

func ExampleRun() {
	dir, _ := os.MkdirTemp("", "daybook-example")
	defer os.RemoveAll(dir)

	// A collector that writes one valid artifact per round.
	round := 0
	collect := harness.TaskFunc(func(ctx context.Context, date snapshot.Date) error {
		round++
		name := filepath.Join(dir, fmt.Sprintf("%06d.csv", round))
		return os.WriteFile(name, []byte("date,open,close\n"), 0o644)
	})

	specs := []harness.Spec{
		{Name: "prices", OutDir: dir, Quorum: 2, MinBytes: 10, Task: collect},
	}

	outcome, err := harness.Run(context.Background(), snapshot.Date("2025-03-14"), specs, harness.Options{
		MaxRounds: 3,
		Sleep:     time.Minute,
		Clock:     core.NewFakeClock(time.Now()),
	})
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Printf("%s after %d rounds\n", outcome.Status, outcome.Rounds)
	// Output: success after 2 rounds
}
