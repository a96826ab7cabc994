// Package logging provides the service logger and its slog implementation.
package logging

import "context"

// Logger takes a message plus alternating key/value args, for example
// logger.Info(ctx, "user registered", "username", name).
type Logger interface {
	Debug(ctx context.Context, msg string, args ...any)
	Info(ctx context.Context, msg string, args ...any)
	Warn(ctx context.Context, msg string, args ...any)
	Error(ctx context.Context, msg string, args ...any)

	// With attaches args to every record written by the returned logger.
	With(args ...any) Logger
}
