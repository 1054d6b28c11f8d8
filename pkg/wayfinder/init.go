// Package wayfinder reconciles a tree of live screens against a requested
// route. Navigation requests are queued and applied one route change at a
// time on the UI thread, each change waiting for its transition to finish.
//
// The engine lives in the navigator package; screens describe how they show
// and hide children through the routable package; platform/headless and
// platform/sdlui provide the UI thread and window.
package wayfinder

import (
	"log/slog"
	"os"

	"github.com/BrandonKowalski/wayfinder/pkg/wayfinder/constants"
	"github.com/BrandonKowalski/wayfinder/pkg/wayfinder/internal"
)

// Options configures logging for the wayfinder packages.
type Options struct {
	LogPath  string // Full path for the log file, parent directories are created
	LogLevel string // Application log level: debug, info, warn or error
}

// Init configures the application and internal loggers.
// Call it before creating a navigator so the log file is picked up.
//
// WAYFINDER_LOG_LEVEL overrides Options.LogLevel. Setting WAYFINDER_DEBUG
// raises the internal logger, which traces every queued batch and change,
// to debug.
func Init(options Options) {
	if options.LogPath != "" {
		internal.SetLogPath(options.LogPath)
	}

	level := options.LogLevel
	if env := os.Getenv(constants.LogLevelEnvVar); env != "" {
		level = env
	}
	if level != "" {
		internal.SetRawLogLevel(level)
	}

	if os.Getenv(constants.DebugEnvVar) != "" {
		internal.SetInternalLogLevel(slog.LevelDebug)
	} else {
		internal.SetInternalLogLevel(slog.LevelWarn)
	}
}

// Close flushes and closes the log file, if one was opened.
func Close() {
	internal.CloseLogger()
}

// SetLogPath sets the full path for the log file, including filename.
// Call before Init() to take effect during initialization.
func SetLogPath(path string) {
	internal.SetLogPath(path)
}

// GetLogger returns the application logger for structured logging.
func GetLogger() *slog.Logger {
	return internal.GetLogger()
}

// GetInternalLogger returns the logger the navigator and platforms use by default.
func GetInternalLogger() *slog.Logger {
	return internal.GetInternalLogger()
}

// SetLogLevel sets the minimum log level for the application logger.
func SetLogLevel(level slog.Level) {
	internal.SetLogLevel(level)
}

// SetInternalLogLevel sets the minimum log level for the internal logger.
func SetInternalLogLevel(level slog.Level) {
	internal.SetInternalLogLevel(level)
}

// SetRawLogLevel parses and sets the log level from a string (e.g., "debug", "info", "error").
func SetRawLogLevel(level string) {
	internal.SetRawLogLevel(level)
}
