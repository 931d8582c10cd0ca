// Package pilot is the entry point for configuring the pilot navigation
// stack packages.
//
// The stack itself lives in package stack and screen dispatch in package
// router. This package configures the logging they share.
package pilot

import (
	"log/slog"
	"os"

	"github.com/BrandonKowalski/pilot/pkg/pilot/constants"
	"github.com/BrandonKowalski/pilot/pkg/pilot/internal"
)

// Options configures pilot initialization.
type Options struct {
	LogPath  string // Full path for log file including filename (creates parent directories)
	LogLevel string // Minimum log level: debug, info, warn or error
}

// Init applies options. It should be called once, before creating stacks.
// The PILOT_LOG_LEVEL and PILOT_LOG_PATH environment variables take
// precedence over the options.
func Init(options Options) {
	logPath := options.LogPath
	if env := os.Getenv(constants.LogPathEnvVar); env != "" {
		logPath = env
	}
	if logPath != "" {
		internal.SetLogPath(logPath)
	}

	level := options.LogLevel
	if env := os.Getenv(constants.LogLevelEnvVar); env != "" {
		level = env
	}
	if level == "" {
		level = constants.DefaultLogLevel
	}
	if constants.IsDevMode() {
		level = "debug"
	}
	internal.SetRawLogLevel(level)
}

// Close releases the log file, if one was opened.
func Close() {
	internal.CloseLogger()
}

// SetLogPath sets the full path for the log file, including filename.
// Creates all necessary parent directories.
// Call before Init() to take effect during initialization.
func SetLogPath(path string) {
	internal.SetLogPath(path)
}

// GetLogger returns the logger shared by the pilot packages.
func GetLogger() *slog.Logger {
	return internal.GetLogger()
}

// SetLogLevel sets the minimum log level for the pilot logger.
func SetLogLevel(level slog.Level) {
	internal.SetLogLevel(level)
}

// SetRawLogLevel parses and sets the log level from a string (e.g., "debug", "info", "error").
func SetRawLogLevel(level string) {
	internal.SetRawLogLevel(level)
}
