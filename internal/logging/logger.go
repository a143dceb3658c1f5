// SPDX-License-Identifier: MIT

// Package logging is the CLI's slog front end: a compact console format by
// default, JSON on demand. Library packages never log.
package logging

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"sync"
)

var (
	mu     sync.RWMutex
	out    io.Writer = os.Stderr
	level  slog.Level
	asJSON bool
	logger = slog.New(NewCompactHandler(out, &slog.HandlerOptions{Level: level}))
)

// rebuild swaps the handler. Callers hold mu.
func rebuild() {
	opts := &slog.HandlerOptions{Level: level}
	if asJSON {
		logger = slog.New(slog.NewJSONHandler(out, opts))
		return
	}
	logger = slog.New(NewCompactHandler(out, opts))
}

// SetOutput redirects log output. The report itself goes to stdout, so the
// default is stderr.
func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	out = w
	rebuild()
}

// SetLevel changes the logging level.
func SetLevel(l slog.Level) {
	mu.Lock()
	defer mu.Unlock()
	level = l
	rebuild()
}

// SetJSONOutput switches between JSON and compact output.
func SetJSONOutput(on bool) {
	mu.Lock()
	defer mu.Unlock()
	asJSON = on
	rebuild()
}

// ParseLevel accepts debug, info, warn or error (any case).
func ParseLevel(s string) (slog.Level, error) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(strings.TrimSpace(s))); err != nil {
		return slog.LevelInfo, fmt.Errorf("logging: level %q: %w", s, err)
	}

	return l, nil
}

// Logger returns the current logger.
func Logger() *slog.Logger {
	mu.RLock()
	defer mu.RUnlock()

	return logger
}

// Debug logs at DEBUG level (timings, sizes).
func Debug(msg string, args ...any) { Logger().Debug(msg, args...) }

// Info logs at INFO level.
func Info(msg string, args ...any) { Logger().Info(msg, args...) }

// Warn logs at WARN level.
func Warn(msg string, args ...any) { Logger().Warn(msg, args...) }

// Error logs at ERROR level.
func Error(msg string, args ...any) { Logger().Error(msg, args...) }

// ErrorContext logs at ERROR level with context.
func ErrorContext(ctx context.Context, msg string, args ...any) {
	Logger().ErrorContext(ctx, msg, args...)
}
