// Package task runs external collector programs.
package task

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"
	"time"

	"daybook/internal/ratelimit"
	"daybook/internal/snapshot"
)

// stderrTailBytes bounds how much collector stderr we keep for error messages.
const stderrTailBytes = 512

// Command invokes an external collector program. The {date} placeholder in
// arguments is expanded at run time, and the snapshot date is also exported
// as SNAPSHOT_DATE for collectors that read it from the environment.
type Command struct {
	Name    string // collector name, used in debug traces
	Program string
	Args    []string
	Dir     string            // working directory; empty = inherit
	Env     map[string]string // extra environment, on top of the parent's
	Limiter *ratelimit.Limiter
	Stdout  io.Writer // collector stdout; nil = discarded
	Debug   *DebugLogger
}

// Run launches the program and blocks until it exits. The exit status and a
// tail of stderr are folded into the returned error; the harness treats any
// error as recoverable.
func (c *Command) Run(ctx context.Context, date snapshot.Date) error {
	if c.Limiter != nil {
		if err := c.Limiter.Wait(ctx); err != nil {
			return fmt.Errorf("waiting for launch slot: %w", err)
		}
	}

	args := make([]string, len(c.Args))
	for i, a := range c.Args {
		args[i] = snapshot.ExpandDir(a, date)
	}

	cmd := exec.CommandContext(ctx, c.Program, args...)
	cmd.Dir = c.Dir
	cmd.Env = append(os.Environ(), "SNAPSHOT_DATE="+date.String())
	for k, v := range c.Env {
		cmd.Env = append(cmd.Env, k+"="+v)
	}

	if c.Stdout != nil {
		cmd.Stdout = c.Stdout
	}
	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	c.Debug.LogLaunch(c.Name, c.Program, args)
	start := time.Now()
	err := cmd.Run()
	c.Debug.LogExit(c.Name, err, time.Since(start))

	if err != nil {
		if tail := tailOf(stderr.Bytes()); tail != "" {
			return fmt.Errorf("%s: %w: %s", c.Program, err, tail)
		}
		return fmt.Errorf("%s: %w", c.Program, err)
	}
	return nil
}

// tailOf returns the last stderrTailBytes of b, flattened to one line.
func tailOf(b []byte) string {
	if len(b) > stderrTailBytes {
		b = b[len(b)-stderrTailBytes:]
	}
	s := strings.TrimSpace(string(b))
	return strings.Join(strings.Fields(s), " ")
}
