// Copyright (c) 2025 Jeremy Hahn
// Copyright (c) 2025 Automate The Things, LLC
//
// This file is part of go-webcrypto.
//
// go-webcrypto is dual-licensed:
//
// 1. GNU Affero General Public License v3.0 (AGPL-3.0)
//    See LICENSE file or visit https://www.gnu.org/licenses/agpl-3.0.html
//
// 2. Commercial License
//    Contact licensing@automatethethings.com for commercial licensing options.

// Package logging provides the structured logger used by the go-webcrypto
// packages, a thin wrapper around log/slog.
package logging

import (
	"io"
	"log/slog"
	"os"
)

// Logger wraps slog with the level methods the library uses. The zero
// value is not usable; construct with NewLogger, NewHandlerLogger or
// Discard.
type Logger struct {
	logger *slog.Logger
}

// NewLogger creates a logger writing text to stderr. When debug is true
// the level threshold is lowered to slog.LevelDebug.
func NewLogger(debug bool) *Logger {
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	return &Logger{logger: slog.New(handler)}
}

// NewHandlerLogger creates a logger on top of an arbitrary slog.Handler.
// Useful for routing library logs into an application's logging pipeline
// or capturing them in tests.
func NewHandlerLogger(handler slog.Handler) *Logger {
	return &Logger{logger: slog.New(handler)}
}

// Discard returns a logger that drops everything. This is the default for
// library components when no logger is injected.
func Discard() *Logger {
	return &Logger{logger: slog.New(slog.NewTextHandler(io.Discard, nil))}
}

// Debug logs a debug message with structured attributes.
func (l *Logger) Debug(msg string, args ...any) {
	l.logger.Debug(msg, args...)
}

// Info logs an informational message with structured attributes.
func (l *Logger) Info(msg string, args ...any) {
	l.logger.Info(msg, args...)
}

// Warn logs a warning message with structured attributes.
func (l *Logger) Warn(msg string, args ...any) {
	l.logger.Warn(msg, args...)
}

// Error logs an error message with structured attributes.
func (l *Logger) Error(msg string, args ...any) {
	l.logger.Error(msg, args...)
}

// With returns a logger carrying the given attributes on every record.
func (l *Logger) With(args ...any) *Logger {
	return &Logger{logger: l.logger.With(args...)}
}
