// Package logging configures structured JSON logging for the client.
package logging

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

// Options controls where log records go and at what level.
type Options struct {
	Path  string // Full path of the log file; parent directories are created. Empty means stdout only.
	Level string // "debug", "info", "warn" or "error"
}

var (
	mu       sync.Mutex
	logFile  *os.File
	levelVar = &slog.LevelVar{}
	logger   = slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: levelVar}))
)

// Setup replaces the process logger according to opts and returns it.
// If the log file cannot be opened, logging falls back to stdout only.
func Setup(opts Options) *slog.Logger {
	mu.Lock()
	defer mu.Unlock()

	if logFile != nil {
		logFile.Close()
		logFile = nil
	}

	var out io.Writer = os.Stdout
	if opts.Path != "" {
		if f, err := openLogFile(opts.Path); err == nil {
			logFile = f
			out = io.MultiWriter(os.Stdout, f)
		}
	}

	levelVar.Set(ParseLevel(opts.Level))
	logger = slog.New(slog.NewJSONHandler(out, &slog.HandlerOptions{
		Level:     levelVar,
		AddSource: false,
	}))
	return logger
}

func openLogFile(path string) (*os.File, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, err
	}
	return os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
}

// Logger returns the process logger.
func Logger() *slog.Logger {
	mu.Lock()
	defer mu.Unlock()
	return logger
}

// SetLevel changes the minimum level without rebuilding the handler.
func SetLevel(level slog.Level) {
	levelVar.Set(level)
}

// ParseLevel maps a level name to a slog.Level. Unknown names map to info.
func ParseLevel(raw string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// Discard returns a logger that drops every record. Useful in tests.
func Discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// Close flushes and closes the log file, if any.
func Close() {
	mu.Lock()
	defer mu.Unlock()
	if logFile != nil {
		logFile.Close()
		logFile = nil
	}
}
