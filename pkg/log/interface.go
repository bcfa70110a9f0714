// Package log provides structured logging for estimator operations.
//
// The package defines a minimal, slog-compatible Logger interface plus a
// default slog-backed provider, so estimators can emit structured training
// and inference logs without binding to a concrete logging backend. Field
// keys for common ML attributes are defined in attributes.go.
package log

import (
	"context"
)

// Logger is a structured logging interface compatible with log/slog.
// Fields are alternating key/value pairs, slog style.
type Logger interface {
	// Debug logs detailed diagnostic information.
	Debug(msg string, fields ...any)

	// Info logs general operational information.
	Info(msg string, fields ...any)

	// Warn logs potentially problematic but non-fatal conditions.
	Warn(msg string, fields ...any)

	// Error logs error conditions. When the first field value is an error,
	// stack trace information is attached by the handler when available.
	Error(msg string, fields ...any)

	// With returns a new Logger with the given fields pre-populated.
	With(fields ...any) Logger

	// Enabled reports whether the logger emits records at the given level.
	Enabled(ctx context.Context, level Level) bool
}

// Level represents a logging level; values match log/slog.
type Level int

// Standard logging levels, values compatible with slog.Level.
const (
	LevelDebug Level = -4
	LevelInfo  Level = 0
	LevelWarn  Level = 4
	LevelError Level = 8
)

// String returns the string representation of the log level.
func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "DEBUG"
	case LevelInfo:
		return "INFO"
	case LevelWarn:
		return "WARN"
	case LevelError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}
