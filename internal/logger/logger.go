// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package logger provides a thin wrapper around zerolog.Logger that adds
// convenience constructors and context-aware helpers used throughout the
// go-natours application.
//
// The Logger type embeds zerolog.Logger so all standard zerolog methods
// (Debug, Info, Warn, Error, Fatal, etc.) are available directly on *Logger.
// Application code should pass *Logger by pointer and obtain request-scoped
// loggers via FromContext or FromRequest.
package logger

import (
	"context"
	"io"
	"net/http"
	"os"
	"runtime"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Logger is a thin wrapper around zerolog.Logger.
type Logger struct {
	zerolog.Logger
}

type options struct {
	out     io.Writer
	level   zerolog.Level
	console bool
}

// Option customizes a logger built by NewLogger.
type Option func(*options)

// WithWriter redirects log output, stdout by default.
func WithWriter(w io.Writer) Option {
	return func(o *options) { o.out = w }
}

// WithLevel sets the global minimum level, debug by default.
func WithLevel(level zerolog.Level) Option {
	return func(o *options) { o.level = level }
}

// WithConsole switches to zerolog's human-readable console format.
func WithConsole() Option {
	return func(o *options) { o.console = true }
}

// ForEnv returns the options suited to an application environment:
// colored console output at debug level in development, JSON at info
// level otherwise.
func ForEnv(env string) []Option {
	if env == "development" {
		return []Option{WithConsole(), WithLevel(zerolog.DebugLevel)}
	}
	return []Option{WithLevel(zerolog.InfoLevel)}
}

// NewLogger constructs a *Logger for the given role label
// (e.g. "server", "client").
//
// Every entry carries a "role" field, a timestamp, and a "func" caller
// field holding the fully-qualified function name instead of file:line.
func NewLogger(role string, opts ...Option) *Logger {
	o := options{out: os.Stdout, level: zerolog.DebugLevel}
	for _, opt := range opts {
		opt(&o)
	}

	zerolog.SetGlobalLevel(o.level)
	zerolog.CallerMarshalFunc = func(pc uintptr, file string, line int) string {
		return runtime.FuncForPC(pc).Name()
	}
	zerolog.CallerFieldName = "func"

	out := o.out
	if o.console {
		out = zerolog.ConsoleWriter{Out: o.out, TimeFormat: time.TimeOnly}
	}

	logger := zerolog.New(out).With().
		Str("role", role).
		Timestamp().
		Caller().
		Logger()

	return &Logger{logger}
}

// NewClientLogger builds a logger that appends to the file at path so log
// lines do not interleave with the terminal UI. If the file cannot be
// opened, output is discarded. The returned func closes the file.
func NewClientLogger(role, path string) (*Logger, func() error) {
	logFile, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return NewLogger(role, WithWriter(io.Discard)), func() error { return nil }
	}

	return NewLogger(role, WithWriter(logFile)), logFile.Close
}

// Nop returns a *Logger that discards all log output.
func Nop() *Logger {
	return &Logger{zerolog.Nop()}
}

// GetChildLogger returns a new *Logger that inherits all fields of the
// receiver.
func (l *Logger) GetChildLogger() *Logger {
	return &Logger{l.With().Logger()}
}

// FromRequest returns the request-scoped logger attached to r's context.
func FromRequest(r *http.Request) *Logger {
	return FromContext(r.Context())
}

// FromContext returns the logger stored in ctx by zerolog's WithContext.
//
// If no logger has been attached to ctx, zerolog returns its default
// logger, so this function never returns nil.
func FromContext(ctx context.Context) *Logger {
	return &Logger{*log.Ctx(ctx)}
}
