// Package log provides context-aware logging for grove.
//
// A Logger is attached to the command context at startup and retrieved
// by lower layers via [FromContext]. Verbose mode surfaces executed
// commands and key=value debug lines; quiet suppresses everything and
// wins over verbose.
package log

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"
)

type ctxKey struct{}

// Logger writes diagnostics honoring the verbose and quiet flags.
type Logger struct {
	out     io.Writer
	verbose bool
	quiet   bool
}

// New creates a logger writing to out.
func New(out io.Writer, verbose, quiet bool) *Logger {
	return &Logger{out: out, verbose: verbose, quiet: quiet}
}

// WithLogger attaches a logger to the context.
func WithLogger(ctx context.Context, l *Logger) context.Context {
	return context.WithValue(ctx, ctxKey{}, l)
}

// FromContext retrieves the logger from the context.
// Returns a discard logger if none is attached.
func FromContext(ctx context.Context) *Logger {
	if l, ok := ctx.Value(ctxKey{}).(*Logger); ok {
		return l
	}
	return New(io.Discard, false, false)
}

// Printf writes formatted output unless quiet.
func (l *Logger) Printf(format string, args ...any) {
	if l.quiet {
		return
	}
	fmt.Fprintf(l.out, format, args...)
}

// Println writes a line of output unless quiet.
func (l *Logger) Println(args ...any) {
	if l.quiet {
		return
	}
	fmt.Fprintln(l.out, args...)
}

// Command reports an external command invocation and returns a func that
// logs the command with its duration once it finishes. No-op unless
// verbose.
func (l *Logger) Command(dir, name string, args ...string) func(time.Duration) {
	if !l.IsVerbose() {
		return func(time.Duration) {}
	}

	var sb strings.Builder
	if dir != "" {
		fmt.Fprintf(&sb, "[%s] ", dir)
	}
	sb.WriteString("$ " + name)
	if len(args) > 0 {
		sb.WriteString(" " + strings.Join(args, " "))
	}
	line := sb.String()

	return func(d time.Duration) {
		fmt.Fprintf(l.out, "%s (%s)\n", line, d)
	}
}

// Debug writes a diagnostic line with key=value pairs appended.
// An unpaired trailing key is dropped. No-op unless verbose.
func (l *Logger) Debug(msg string, keyvals ...any) {
	if !l.IsVerbose() {
		return
	}

	var sb strings.Builder
	sb.WriteString(msg)
	for i := 0; i+1 < len(keyvals); i += 2 {
		fmt.Fprintf(&sb, " %v=%v", keyvals[i], keyvals[i+1])
	}
	fmt.Fprintln(l.out, sb.String())
}

// IsVerbose reports whether verbose output is enabled.
func (l *Logger) IsVerbose() bool {
	return l.verbose && !l.quiet
}

// Writer returns the underlying writer.
func (l *Logger) Writer() io.Writer {
	return l.out
}
