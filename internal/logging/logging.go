// Package logging wraps log/slog with a tint console handler and the
// component tagging used across the CLI.
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/lmittmann/tint"
)

var (
	mu     sync.RWMutex
	logger = New(os.Stderr, slog.LevelInfo, false)
)

// New returns a logger writing colored, human-readable lines to w.
func New(w io.Writer, level slog.Level, noColor bool) *slog.Logger {
	return slog.New(tint.NewHandler(w, &tint.Options{
		Level:      level,
		TimeFormat: time.TimeOnly,
		NoColor:    noColor,
	}))
}

// Setup replaces the package logger.
func Setup(w io.Writer, level slog.Level, noColor bool) {
	l := New(w, level, noColor)
	mu.Lock()
	logger = l
	mu.Unlock()
}

// Logger returns the package logger.
func Logger() *slog.Logger {
	mu.RLock()
	defer mu.RUnlock()

	return logger
}

// ParseLevel maps debug, info, warn/warning and error (any case) to a level.
func ParseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug, nil
	case "", "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	}

	return slog.LevelInfo, fmt.Errorf("logging: unknown level %q", s)
}

// Err wraps an error as a tinted attribute.
func Err(err error) slog.Attr { return tint.Err(err) }

func Debug(msg string, args ...any) { Logger().Debug(msg, args...) }
func Info(msg string, args ...any)  { Logger().Info(msg, args...) }
func Warn(msg string, args ...any)  { Logger().Warn(msg, args...) }
func Error(msg string, args ...any) { Logger().Error(msg, args...) }

// DebugWithComponent logs at debug level tagged with component.
func DebugWithComponent(component, msg string, args ...any) {
	Logger().Debug(msg, withComponent(component, args)...)
}

// InfoWithComponent logs at info level tagged with component.
func InfoWithComponent(component, msg string, args ...any) {
	Logger().Info(msg, withComponent(component, args)...)
}

// WarnWithComponent logs at warn level tagged with component.
func WarnWithComponent(component, msg string, args ...any) {
	Logger().Warn(msg, withComponent(component, args)...)
}

// ErrorWithComponent logs at error level tagged with component.
func ErrorWithComponent(component, msg string, args ...any) {
	Logger().Error(msg, withComponent(component, args)...)
}

func withComponent(component string, args []any) []any {
	return append([]any{"component", component}, args...)
}
