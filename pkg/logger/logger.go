// Package logger provides a logging utility based on log/slog
//
// DEBUG logging can be enabled by setting the MCP_DEBUG environment variable:
//   export MCP_DEBUG=1
//
// or through the [log] section of the config file. Output goes to stderr
// (stdout carries the MCP protocol) and optionally to a log file.
package logger

import (
	"io"
	"log/slog"
	"os"
	"strings"
	"sync"

	"github.com/pkg/errors"
)

// Config controls the global logger
type Config struct {
	Debug bool
	File  string // Optional path; appended to in addition to stderr
}

var (
	mu sync.RWMutex

	// Logger is the global logger instance
	Logger = newLogger(os.Stderr, DebugFromEnv())
)

// DebugFromEnv reports whether MCP_DEBUG asks for debug logging
func DebugFromEnv() bool {
	v := os.Getenv("MCP_DEBUG")
	return v != "" && strings.ToLower(v) != "false" && v != "0"
}

func newLogger(w io.Writer, debug bool) *slog.Logger {
	logLevel := slog.LevelInfo
	if debug {
		logLevel = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: logLevel}))
}

// Setup replaces the global logger. The returned cleanup closes the log file,
// if one was opened.
func Setup(cfg Config) (func() error, error) {
	var (
		w       io.Writer = os.Stderr
		cleanup           = func() error { return nil }
	)

	if cfg.File != "" {
		f, err := os.OpenFile(cfg.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return cleanup, errors.Wrapf(err, "open log file %s", cfg.File)
		}
		w = io.MultiWriter(os.Stderr, f)
		cleanup = f.Close
	}

	l := newLogger(w, cfg.Debug)

	mu.Lock()
	Logger = l
	mu.Unlock()

	// Replace the default slog logger too
	slog.SetDefault(l)

	l.Debug("logger initialized", "file", cfg.File, "debug", cfg.Debug)
	return cleanup, nil
}

// L returns the global logger
func L() *slog.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return Logger
}

// Debug logs a debug message if debug logging is enabled
func Debug(msg string, args ...any) {
	L().Debug(msg, args...)
}

// Info logs an info message
func Info(msg string, args ...any) {
	L().Info(msg, args...)
}

// Warn logs a warning message
func Warn(msg string, args ...any) {
	L().Warn(msg, args...)
}

// Error logs an error message
func Error(msg string, args ...any) {
	L().Error(msg, args...)
}
