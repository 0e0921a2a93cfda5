package tui

import (
	"log/slog"
	"os"
	"strings"
)

// newDebugLogger returns a logger writing to FLOWEDIT_TUI_DEBUG_LOG, or a
// discarding logger when it is unset. The TUI owns the terminal, so nothing is
// ever logged to stderr.
func newDebugLogger() (*slog.Logger, func()) {
	path := strings.TrimSpace(os.Getenv("FLOWEDIT_TUI_DEBUG_LOG"))
	if path == "" {
		return slog.New(slog.DiscardHandler), func() {}
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return slog.New(slog.DiscardHandler), func() {}
	}
	h := slog.NewTextHandler(f, &slog.HandlerOptions{Level: slog.LevelDebug})
	return slog.New(h).With("component", "tui"), func() { _ = f.Close() }
}
