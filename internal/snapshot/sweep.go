package snapshot

import (
	"fmt"
	"os"
	"path/filepath"
)

// SweepResult reports what a sweep of one directory did.
type SweepResult struct {
	Removed int // invalid artifacts deleted
	Kept    int // valid artifacts remaining
}

// Sweep deletes every regular file in dir whose size is at or below minBytes.
// Undersized files are truncated or interrupted writes and must never count
// toward a quorum. Subdirectories are left alone. Safe to run repeatedly.
func Sweep(dir string, minBytes int64) (SweepResult, error) {
	var res SweepResult

	entries, err := os.ReadDir(dir)
	if err != nil {
		return res, fmt.Errorf("reading artifact dir: %w", err)
	}

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			return res, fmt.Errorf("stat %s: %w", entry.Name(), err)
		}
		if info.Size() > minBytes {
			res.Kept++
			continue
		}
		if err := os.Remove(filepath.Join(dir, entry.Name())); err != nil {
			return res, fmt.Errorf("removing invalid artifact %s: %w", entry.Name(), err)
		}
		res.Removed++
	}
	return res, nil
}

// CountValid counts regular files in dir larger than minBytes, without
// deleting anything.
func CountValid(dir string, minBytes int64) (int, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return 0, fmt.Errorf("reading artifact dir: %w", err)
	}
	valid := 0
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			return 0, fmt.Errorf("stat %s: %w", entry.Name(), err)
		}
		if info.Size() > minBytes {
			valid++
		}
	}
	return valid, nil
}

// EnsureDir creates dir (and parents) if absent.
func EnsureDir(dir string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating artifact dir: %w", err)
	}
	return nil
}
