// Package log provides JSON-lines structured logging for ttycap.
package log

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
)

// Config configures the structured logger.
type Config struct {
	// Output is the writer for log output (default: os.Stderr)
	Output io.Writer

	// Level is the minimum log level (default: LevelInfo)
	Level slog.Level

	// Debug enables debug level logging (overrides Level)
	Debug bool
}

// DefaultConfig returns the default logging configuration.
func DefaultConfig() *Config {
	return &Config{
		Output: os.Stderr,
		Level:  slog.LevelInfo,
		Debug:  false,
	}
}

// New creates a new JSON-lines structured logger:
//
//	{"ts":"2024-01-15T10:30:00Z","level":"DEBUG","msg":"width query failed","tty":"/dev/pts/3"}
//
// Log levels:
//   - debug: backend selection, swallowed capability failures (TTYCAP_DEBUG=1)
//   - warn: configuration fallbacks
func New(cfg *Config) *slog.Logger {
	if cfg == nil {
		cfg = DefaultConfig()
	}

	output := cfg.Output
	if output == nil {
		output = os.Stderr
	}

	level := cfg.Level
	if cfg.Debug {
		level = slog.LevelDebug
	}

	opts := &slog.HandlerOptions{
		Level: level,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if a.Key == slog.TimeKey {
				a.Key = "ts"
			}
			return a
		},
	}

	return slog.New(slog.NewJSONHandler(output, opts))
}

// NewFromEnv creates a logger configured from environment variables.
// TTYCAP_DEBUG=1 enables debug logging.
func NewFromEnv() *slog.Logger {
	cfg := DefaultConfig()
	if os.Getenv("TTYCAP_DEBUG") == "1" {
		cfg.Debug = true
	}
	return New(cfg)
}

// Discard returns a logger that drops everything.
func Discard() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

// ParseLevel maps a config log level name to a slog level.
func ParseLevel(name string) (slog.Level, error) {
	switch strings.ToLower(name) {
	case "debug":
		return slog.LevelDebug, nil
	case "info", "":
		return slog.LevelInfo, nil
	case "warn":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("unknown log level %q", name)
	}
}

// LogBackendSelected logs which capability backend the process uses.
func LogBackendSelected(logger *slog.Logger, name, requested string) {
	logger.Debug("terminal backend selected", "backend", name, "requested", requested)
}

// LogHelperFallback logs when an invalid helper configuration is replaced by
// the default.
func LogHelperFallback(logger *slog.Logger, command string, err error) {
	logger.Warn("invalid helper command; using default", "command", command, "error", err)
}

// LogNativeFailure logs a failed native terminal call.
func LogNativeFailure(logger *slog.Logger, call string, fd int, err error) {
	logger.Debug("native terminal call failed", "call", call, "fd", fd, "error", err)
}
