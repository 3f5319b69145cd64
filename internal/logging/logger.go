// Package logging defines the structured-logging interface used across the
// service. The only implementation wraps log/slog.
package logging

import "context"

// Logger is a context-aware, structured logger.
//
// The variadic args are interpreted as key-value pairs, e.g.:
//
//	log.Info(ctx, "worker created", "uid", uid, "worker_id", workerID)
type Logger interface {
	// Debug logs detail useful only while diagnosing a single request.
	Debug(ctx context.Context, msg string, args ...any)

	// Info logs an informational message.
	Info(ctx context.Context, msg string, args ...any)

	// Warn logs a degraded but non-fatal condition, e.g. a fallback path.
	Warn(ctx context.Context, msg string, args ...any)

	// Error logs an error message for failures.
	Error(ctx context.Context, msg string, args ...any)

	// With returns a child logger that always includes the given key-value pairs.
	With(args ...any) Logger
}

// Nop is a Logger that discards everything.
type Nop struct{}

func (Nop) Debug(context.Context, string, ...any) {}
func (Nop) Info(context.Context, string, ...any)  {}
func (Nop) Warn(context.Context, string, ...any)  {}
func (Nop) Error(context.Context, string, ...any) {}
func (n Nop) With(...any) Logger                  { return n }
