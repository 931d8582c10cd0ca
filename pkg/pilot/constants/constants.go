// Package constants defines shared constants and configuration values
// used throughout pilot.
package constants

import "os"

// Development is the environment variable value for development mode.
const Development = "DEV"

// LogLevelEnvVar overrides the configured log level when set.
const LogLevelEnvVar = "PILOT_LOG_LEVEL"

// LogPathEnvVar overrides the configured log file path when set.
const LogPathEnvVar = "PILOT_LOG_PATH"

// LangEnvVar selects the language used by the pilot CLI.
const LangEnvVar = "PILOT_LANG"

// DefaultLogLevel is used when neither the config file nor the environment set one.
const DefaultLogLevel = "error"

// DefaultLang is the fallback language tag for CLI output.
const DefaultLang = "en"

// IsDevMode returns true if running in development mode (ENVIRONMENT=DEV).
func IsDevMode() bool {
	return os.Getenv("ENVIRONMENT") == Development
}
