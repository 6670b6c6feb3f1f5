// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Sofia Onell

// Package logger wraps zerolog with the constructors and context
// helpers gig-desk uses throughout: a stdout JSON logger for the
// server, a file logger for the TUI client (stdout belongs to the UI),
// and request/context-scoped retrieval for handlers and services.
//
// Logger embeds zerolog.Logger, so the whole zerolog API is available
// on *Logger directly.
package logger

import (
	"context"
	"net/http"
	"os"
	"path/filepath"
	"runtime"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type Logger struct {
	zerolog.Logger
}

// configureGlobals sets the process-wide zerolog knobs: everything from
// Debug up is emitted and the caller field carries the fully qualified
// function name under "func" instead of file:line.
func configureGlobals() {
	zerolog.SetGlobalLevel(zerolog.DebugLevel)
	zerolog.CallerMarshalFunc = func(pc uintptr, file string, line int) string {
		return runtime.FuncForPC(pc).Name()
	}
	zerolog.CallerFieldName = "func"
}

// NewLogger builds the server logger: JSON to stdout, every entry
// tagged with the given role, a timestamp and the calling function.
func NewLogger(role string) *Logger {
	configureGlobals()

	logger := zerolog.New(os.Stdout).With().
		Str("role", role).
		Timestamp().
		Caller().
		Logger()

	return &Logger{logger}
}

// NewClientLogger builds the client logger. Output goes to a "logs"
// file next to the executable so log lines never corrupt the TUI; if
// the file cannot be opened it falls back to stdout.
func NewClientLogger(role string) *Logger {
	configureGlobals()

	execPath, _ := os.Executable()
	logPath := filepath.Join(filepath.Dir(execPath), "logs")
	logFile, err := os.OpenFile(logPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		logFile = os.Stdout
	}

	logger := zerolog.New(logFile).With().
		Str("role", role).
		Timestamp().
		Caller().
		Logger()

	return &Logger{logger}
}

// Nop returns a *Logger that discards everything. Used in tests.
func Nop() *Logger {
	return &Logger{zerolog.Nop()}
}

// GetChildLogger returns a new *Logger inheriting all fields of the
// receiver; enriching the child leaves the parent untouched.
func (l *Logger) GetChildLogger() *Logger {
	return &Logger{l.With().Logger()}
}

// FromRequest returns the request-scoped logger attached to the request
// context by the trace-id middleware. Falls back to zerolog's global
// logger when nothing is attached, so the result is never nil.
func FromRequest(r *http.Request) *Logger {
	return &Logger{*log.Ctx(r.Context())}
}

// FromContext returns the logger attached to ctx, or zerolog's global
// logger when nothing is attached.
func FromContext(ctx context.Context) *Logger {
	return &Logger{*log.Ctx(ctx)}
}
