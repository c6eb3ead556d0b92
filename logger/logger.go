// Package logger configures the application's logging.
//
// It uses ZeroLog for structured logging and provides the bridge
// helpers the database package needs to route pgx query tracing
// through the same logger.
package logger

import (
	"os"

	"github.com/jackc/pgx/v5/tracelog"
	"github.com/rs/zerolog"
)

// New builds the main application logger.
//
// In the "local" environment it writes a human-friendly console format
// to stderr; everywhere else it emits JSON. Timestamps are always
// attached.
func New(env string, level zerolog.Level) zerolog.Logger {
	var logger zerolog.Logger
	if env == "local" {
		logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr})
	} else {
		logger = zerolog.New(os.Stderr)
	}
	return logger.Level(level).With().Timestamp().Logger()
}

// NewPgxLogger creates the logger handed to the pgx tracelog adapter.
//
// It is separate from the main logger so SQL statement output can be
// tagged and filtered independently.
func NewPgxLogger(level zerolog.Level) *zerolog.Logger {
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		Level(level).
		With().
		Timestamp().
		Str("component", "pgx").
		Logger()
	return &logger
}

// GetPgxTraceLogLevel converts a zerolog level into the tracelog level
// pgx expects. Trace/debug map to the chattiest tracelog levels; levels
// above error silence query logging entirely.
func GetPgxTraceLogLevel(level zerolog.Level) tracelog.LogLevel {
	switch level {
	case zerolog.TraceLevel:
		return tracelog.LogLevelTrace
	case zerolog.DebugLevel:
		return tracelog.LogLevelDebug
	case zerolog.InfoLevel:
		return tracelog.LogLevelInfo
	case zerolog.WarnLevel:
		return tracelog.LogLevelWarn
	case zerolog.ErrorLevel:
		return tracelog.LogLevelError
	default:
		return tracelog.LogLevelNone
	}
}
