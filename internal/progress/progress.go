// Package progress writes operator-facing status text during a run.
package progress

import (
	"fmt"
	"io"
	"os"
	"sync"
)

// Progress is a thin writer for run status lines. It goes to stderr so that
// report output on stdout stays clean for pipelines.
type Progress struct {
	quiet  bool
	output io.Writer
	mu     sync.Mutex
}

func NewProgress(quiet bool) *Progress {
	return &Progress{
		quiet:  quiet,
		output: os.Stderr,
	}
}

func (p *Progress) SetOutput(w io.Writer) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.output = w
}

func (p *Progress) Print(message string) {
	if p == nil || p.quiet {
		return
	}
	p.mu.Lock()
	fmt.Fprintf(p.output, "%s\n", message)
	p.mu.Unlock()
}

func (p *Progress) Printf(format string, args ...interface{}) {
	if p == nil || p.quiet {
		return
	}
	p.mu.Lock()
	fmt.Fprintf(p.output, format+"\n", args...)
	p.mu.Unlock()
}
