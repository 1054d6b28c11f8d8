// Package constants defines environment variables and defaults shared across
// the wayfinder packages.
package constants

import (
	"os"
	"time"
)

// Development is the environment variable value for development mode.
const Development = "DEV"

// Environment variable names.
const (
	DebugEnvVar        = "WAYFINDER_DEBUG"
	LogLevelEnvVar     = "WAYFINDER_LOG_LEVEL"
	WindowWidthEnvVar  = "WINDOW_WIDTH"
	WindowHeightEnvVar = "WINDOW_HEIGHT"
)

// IsDevMode returns true if running in development mode (ENVIRONMENT=DEV).
func IsDevMode() bool {
	return os.Getenv("ENVIRONMENT") == Development
}

// Navigation defaults.
const (
	DefaultTransitionTimeout = 3 * time.Second // Ceiling on a single route change
	DefaultMetricsNamespace  = "wayfinder"
)
