package tui

import (
	"fmt"
	"strings"

	"flowedit/internal/docs"

	"github.com/charmbracelet/lipgloss"
)

func (m appModel) View() string {
	if m.showHelp {
		return m.viewHelp()
	}

	header := lipgloss.NewStyle().
		Bold(true).
		Render(fmt.Sprintf("flowedit  nodes=%d%s", m.session.Store().Len(), m.historyHint()))

	bindings := m.keys.browseHelp()
	if m.focus != nil {
		bindings = m.keys.editHelp()
	}
	footer := strings.Join([]string{
		styleMuted().Render(m.minibufferText),
		m.help.ShortHelpView(bindings),
	}, "\n")

	return strings.Join([]string{header, "", m.body.View(), footer}, "\n")
}

func (m appModel) historyHint() string {
	var parts []string
	if m.session.CanUndo() {
		parts = append(parts, "u:undo")
	}
	if m.session.CanRedo() {
		parts = append(parts, "ctrl+r:redo")
	}
	if len(parts) == 0 {
		return ""
	}
	return "  " + strings.Join(parts, " ")
}

func (m appModel) viewHelp() string {
	body, ok := docs.Get("keys")
	if !ok {
		body = "No help available."
	}
	w := m.width
	if w <= 0 || w > maxHelpW {
		w = maxHelpW
	}
	out := renderMarkdown(body, w)
	return out + "\n\n" + styleMuted().Render("press any key to close")
}

const maxHelpW = 96
