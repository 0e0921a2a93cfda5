package tui

import (
	"flowedit/internal/editor"
	"flowedit/internal/store"

	tea "github.com/charmbracelet/bubbletea"
)

// Run starts the interactive editor on st. The chain lives only for the
// lifetime of the program.
func Run(st store.Store) error {
	applyColorProfilePreference()
	applyThemePreference()

	logger, closeLog := newDebugLogger()
	defer closeLog()

	s := editor.NewSession(st, editor.WithLogger(logger))
	m := newAppModel(s)
	m.logger = logger
	_, err := tea.NewProgram(m, tea.WithAltScreen()).Run()
	return err
}
