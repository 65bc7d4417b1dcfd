package task

import (
	"fmt"
	"io"
	"strings"
	"sync"
	"time"
)

// DebugLogger traces collector launches and exits when --verbose is set.
// Nil receivers are safe; all methods no-op.
type DebugLogger struct {
	out io.Writer
	mu  sync.Mutex
}

func NewDebugLogger(out io.Writer) *DebugLogger {
	return &DebugLogger{out: out}
}

func (d *DebugLogger) LogLaunch(name, program string, args []string) {
	if d == nil {
		return
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	fmt.Fprintf(d.out, ">>> LAUNCH %s: %s %s\n", name, program, strings.Join(args, " "))
}

func (d *DebugLogger) LogExit(name string, err error, duration time.Duration) {
	if d == nil {
		return
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	if err != nil {
		fmt.Fprintf(d.out, "<<< EXIT %s (%s): %v\n", name, duration.Round(time.Millisecond), err)
		return
	}
	fmt.Fprintf(d.out, "<<< EXIT %s (%s): ok\n", name, duration.Round(time.Millisecond))
}
