package tui

import (
	"os"
	"strings"

	"github.com/rs/zerolog"

	"burrow/internal/store"
)

// newDebugLogger returns a file logger when BURROW_DEBUG_LOG points at a
// path, and a no-op logger otherwise. The TUI owns the terminal, so debug
// output must never reach stdout/stderr.
func newDebugLogger() zerolog.Logger {
	settings, err := store.LoadSettings()
	if err != nil || strings.TrimSpace(settings.DebugLog) == "" {
		return zerolog.Nop()
	}
	f, err := os.OpenFile(settings.DebugLog, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return zerolog.Nop()
	}
	return zerolog.New(f).With().Timestamp().Logger().Level(zerolog.DebugLevel)
}
