// Package kinlog wires up structured logging for the kin CLI.
//
// Verbosity follows the standard env-logger convention: set KIN_LOG to one
// of "debug", "info", "warn", "error" (default "info"). No other
// environment input participates in any security decision.
package kinlog

import (
	"os"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Setup installs the process-wide logger. Call once from main().
func Setup(verbosity string) {
	if verbosity == "" {
		verbosity = os.Getenv("KIN_LOG")
	}

	// ParseLevel("") yields NoLevel without an error, which would silence
	// every log line, so an unset level falls back to info explicitly.
	level, err := zerolog.ParseLevel(strings.ToLower(verbosity))
	if err != nil || verbosity == "" {
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, NoColor: true}).
		With().Timestamp().Logger()
}

// With returns a logger that tags every line with runID, so a single
// compile or decrypt run can be traced through interleaved log output
// without persisting the ID anywhere.
func With(runID string) zerolog.Logger {
	return log.Logger.With().Str("run_id", runID).Logger()
}
