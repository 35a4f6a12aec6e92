package logging

import (
	"context"
	"io"

	"github.com/rs/zerolog"

	"zentra-notify/internal/domain/ports"
)

// ConsoleTimeFormat is the timestamp layout used by console log lines.
const ConsoleTimeFormat = "2006-01-02 15:04:05"

// ZLogger adapts a zerolog.Logger to ports.Logger.
type ZLogger struct {
	logger zerolog.Logger
}

var _ ports.Logger = (*ZLogger)(nil)

// NewZerolog wraps an existing zerolog logger.
func NewZerolog(logger zerolog.Logger) *ZLogger {
	return &ZLogger{logger: logger}
}

// NewConsole creates a human-readable logger writing to out. Unknown levels
// fall back to info.
func NewConsole(out io.Writer, level string, noColor bool) *ZLogger {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil || lvl == zerolog.NoLevel {
		lvl = zerolog.InfoLevel
	}

	writer := zerolog.ConsoleWriter{
		Out:        out,
		TimeFormat: ConsoleTimeFormat,
		NoColor:    noColor,
	}
	return NewZerolog(zerolog.New(writer).Level(lvl).With().Timestamp().Logger())
}

// Debug logs a diagnostic message.
func (l *ZLogger) Debug(_ context.Context, msg string, args ...any) {
	l.logger.Debug().Fields(args).Msg(msg)
}

// Info logs an informational message.
func (l *ZLogger) Info(_ context.Context, msg string, args ...any) {
	l.logger.Info().Fields(args).Msg(msg)
}

// Error logs an error message.
func (l *ZLogger) Error(_ context.Context, msg string, args ...any) {
	l.logger.Error().Fields(args).Msg(msg)
}
