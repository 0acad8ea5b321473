// Package logging defines the minimal structured-logging interface the
// todolist binaries use. The core list packages never log; only the CLI
// boundary does.
package logging

import "context"

// Logger is a context-aware, structured logger. The variadic args are
// key–value pairs, e.g.:
//
//	log.Info(ctx, "list loaded", "path", path, "entries", n)
type Logger interface {
	// Debug logs chatty diagnostics, off by default.
	Debug(ctx context.Context, msg string, args ...any)

	// Info logs an informational message.
	Info(ctx context.Context, msg string, args ...any)

	// Warn logs a warning message for unusual but non-fatal conditions.
	Warn(ctx context.Context, msg string, args ...any)

	// Error logs an error message for failures.
	Error(ctx context.Context, msg string, args ...any)

	// With returns a child logger that always includes the given key–value
	// pairs.
	With(args ...any) Logger
}

// Nop returns a logger that discards everything. Handy as a default in
// tests and optional dependencies.
func Nop() Logger {
	return nopLogger{}
}

type nopLogger struct{}

func (nopLogger) Debug(context.Context, string, ...any) {}
func (nopLogger) Info(context.Context, string, ...any)  {}
func (nopLogger) Warn(context.Context, string, ...any)  {}
func (nopLogger) Error(context.Context, string, ...any) {}
func (nopLogger) With(...any) Logger                    { return nopLogger{} }
