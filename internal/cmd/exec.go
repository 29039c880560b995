package cmd

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"
	"time"

	"github.com/grovekit/grove/internal/log"
)

// RunContext executes a command in dir (the current directory when dir
// is empty), discarding stdout. When the command exits non-zero the
// returned error carries the trimmed stderr text if there was any. A
// cancelled context surfaces as the context's own error.
func RunContext(ctx context.Context, dir, name string, args ...string) error {
	_, err := run(ctx, dir, name, args, false)
	return err
}

// OutputContext executes a command like [RunContext] and returns its
// stdout.
func OutputContext(ctx context.Context, dir, name string, args ...string) ([]byte, error) {
	return run(ctx, dir, name, args, true)
}

func run(ctx context.Context, dir, name string, args []string, wantOutput bool) ([]byte, error) {
	done := log.FromContext(ctx).Command(dir, name, args...)
	start := time.Now()

	c := exec.CommandContext(ctx, name, args...)
	c.Dir = dir

	var stdout, stderr bytes.Buffer
	if wantOutput {
		c.Stdout = &stdout
	}
	c.Stderr = &stderr

	err := c.Run()
	done(time.Since(start))

	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, ctxErr
		}
		if msg := strings.TrimSpace(stderr.String()); msg != "" {
			return nil, fmt.Errorf("%s", msg)
		}
		return nil, err
	}
	return stdout.Bytes(), nil
}
