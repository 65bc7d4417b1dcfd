package core

import (
	"context"
	"testing"
	"time"
)

func TestFakeClock_Advance(t *testing.T) {
	start := time.Date(2025, 3, 14, 9, 0, 0, 0, time.UTC)
	clk := NewFakeClock(start)

	if !clk.Now().Equal(start) {
		t.Errorf("expected %v, got %v", start, clk.Now())
	}

	clk.Advance(90 * time.Second)
	if got := clk.Since(start); got != 90*time.Second {
		t.Errorf("expected 90s since start, got %v", got)
	}
}

func TestFakeClock_SleepRecordsAndAdvances(t *testing.T) {
	start := time.Date(2025, 3, 14, 9, 0, 0, 0, time.UTC)
	clk := NewFakeClock(start)

	if err := clk.Sleep(context.Background(), 30*time.Second); err != nil {
		t.Fatal(err)
	}
	if err := clk.Sleep(context.Background(), time.Minute); err != nil {
		t.Fatal(err)
	}

	sleeps := clk.Sleeps()
	if len(sleeps) != 2 {
		t.Fatalf("expected 2 recorded sleeps, got %d", len(sleeps))
	}
	if sleeps[0] != 30*time.Second || sleeps[1] != time.Minute {
		t.Errorf("unexpected sleeps: %v", sleeps)
	}
	if got := clk.Since(start); got != 90*time.Second {
		t.Errorf("expected clock advanced 90s, got %v", got)
	}
}

func TestFakeClock_SleepCancelled(t *testing.T) {
	clk := NewFakeClock(time.Now())
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if err := clk.Sleep(ctx, time.Second); err == nil {
		t.Error("expected error from cancelled context")
	}
	if len(clk.Sleeps()) != 0 {
		t.Errorf("cancelled sleep should not be recorded, got %v", clk.Sleeps())
	}
}

func TestRealClock_SleepZero(t *testing.T) {
	clk := RealClock{}
	startedAt := time.Now()
	if err := clk.Sleep(context.Background(), 0); err != nil {
		t.Fatal(err)
	}
	if time.Since(startedAt) > 100*time.Millisecond {
		t.Error("zero sleep should return immediately")
	}
}

func TestRealClock_SleepCancelled(t *testing.T) {
	clk := RealClock{}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := clk.Sleep(ctx, time.Minute)
	if err != context.Canceled {
		t.Errorf("expected context.Canceled, got %v", err)
	}
}
