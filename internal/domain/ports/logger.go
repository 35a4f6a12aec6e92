package ports

import "context"

// Logger is an abstract logger so the domain can remain decoupled from concrete loggers.
// Args are alternating key/value pairs.
type Logger interface {
	Debug(ctx context.Context, msg string, args ...any)
	Info(ctx context.Context, msg string, args ...any)
	Error(ctx context.Context, msg string, args ...any)
}
