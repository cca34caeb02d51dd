// Package logging provides the shared logger for the Toga toolkit.
//
// The toolkit never requires logging for correctness; backends and the
// registry use it for diagnostics only. The level is taken from the
// TOGA_LOG_LEVEL environment variable (debug, info, warn, error) and
// defaults to warn so library consumers see nothing in normal operation.
package logging

import (
	"os"
	"strings"

	"github.com/charmbracelet/log"
)

// Logger is the toolkit-wide logger instance.
var Logger *log.Logger

func init() {
	Logger = log.NewWithOptions(os.Stderr, log.Options{Prefix: "toga"})
	Logger.SetTimeFormat("")
	Logger.SetLevel(parseLevel(os.Getenv("TOGA_LOG_LEVEL")))
}

func parseLevel(level string) log.Level {
	switch strings.ToLower(level) {
	case "debug":
		return log.DebugLevel
	case "info":
		return log.InfoLevel
	case "warn":
		return log.WarnLevel
	case "error":
		return log.ErrorLevel
	default:
		return log.WarnLevel
	}
}

// SetLevel overrides the level parsed from the environment.
func SetLevel(level string) {
	Logger.SetLevel(parseLevel(level))
}

// Debug logs a debug message with optional key-value pairs.
func Debug(msg any, keyvals ...any) {
	Logger.Debug(msg, keyvals...)
}

// Info logs an info message with optional key-value pairs.
func Info(msg any, keyvals ...any) {
	Logger.Info(msg, keyvals...)
}

// Warn logs a warning message with optional key-value pairs.
func Warn(msg any, keyvals ...any) {
	Logger.Warn(msg, keyvals...)
}

// Error logs an error message with optional key-value pairs.
func Error(msg any, keyvals ...any) {
	Logger.Error(msg, keyvals...)
}
