package tui

import (
	"flowedit/internal/render"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

func (m appModel) Init() tea.Cmd { return nil }

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.refreshBody()
		return m, nil

	case tea.KeyMsg:
		if m.focus != nil {
			return m.updateEditing(msg)
		}
		return m.updateBrowsing(msg)
	}
	return m, nil
}

// updateEditing routes keys to the focused input. Enter only requests focus
// loss; the value is committed by blur, which is the single commit path.
func (m appModel) updateEditing(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case msg.String() == "ctrl+c":
		m.blur()
		return m, tea.Quit
	case key.Matches(msg, m.keys.Confirm), key.Matches(msg, m.keys.Blur):
		m.blur()
		m.refreshBody()
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	m.refreshBody()
	return m, cmd
}

func (m appModel) updateBrowsing(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.showHelp {
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		default:
			// Any key closes the help overlay.
			m.showHelp = false
			return m, nil
		}
	}

	m.minibufferText = ""

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.showHelp = true
		return m, nil

	case key.Matches(msg, m.keys.Down):
		m.moveSelection(1)

	case key.Matches(msg, m.keys.Up):
		m.moveSelection(-1)

	case key.Matches(msg, m.keys.Top):
		m.sel = render.Selection{Card: 0, Row: render.TitleRow}

	case key.Matches(msg, m.keys.Bottom):
		if rows := m.rows(); len(rows) > 0 {
			m.sel = rows[len(rows)-1]
		}

	case key.Matches(msg, m.keys.Edit):
		m.focusRow(m.sel)

	case key.Matches(msg, m.keys.Delete):
		// The start node has no delete affordance; the store ignores it too.
		if n, ok := m.selectedNode(); ok && m.session.Remove(n.ID) {
			m.minibufferText = "Deleted " + quoteTitle(n.Title)
			m.clampSelection()
		}

	case key.Matches(msg, m.keys.Side):
		if n, ok := m.selectedNode(); ok && m.session.ToggleSideAnnotation(n.ID) {
			if n.HasSideAnnotation {
				m.minibufferText = "Reminder removed"
			} else {
				m.minibufferText = "Reminder attached"
			}
		}

	case key.Matches(msg, m.keys.Add):
		if m.session.Append() {
			m.sel = render.Selection{Card: m.session.Store().Len() - 1, Row: render.TitleRow}
			m.minibufferText = "Added node"
		}

	case key.Matches(msg, m.keys.Undo):
		if m.session.Undo() {
			m.clampSelection()
			m.minibufferText = "Undone"
		} else {
			m.minibufferText = "Nothing to undo"
		}

	case key.Matches(msg, m.keys.Redo):
		if m.session.Redo() {
			m.clampSelection()
			m.minibufferText = "Redone"
		} else {
			m.minibufferText = "Nothing to redo"
		}

	default:
		return m, nil
	}

	m.refreshBody()
	return m, nil
}

func (m *appModel) moveSelection(delta int) {
	rows := m.rows()
	if len(rows) == 0 {
		return
	}
	i := m.rowIndex(m.sel)
	if i < 0 {
		i = 0
	}
	i += delta
	if i < 0 {
		i = 0
	}
	if i >= len(rows) {
		i = len(rows) - 1
	}
	m.sel = rows[i]
}

// focusRow gives sel's field the input focus. Whatever had focus before loses
// it first, which commits its value.
func (m *appModel) focusRow(sel render.Selection) {
	m.blur()

	n, ok := m.session.Store().At(sel.Card)
	if !ok {
		return
	}
	var value string
	if sel.Row == render.TitleRow {
		if !m.session.BeginEditTitle(n.ID) {
			return
		}
		value = n.Title
	} else {
		if !m.session.BeginEditTask(n.ID, sel.Row) {
			return
		}
		value = n.Actions[sel.Row]
	}

	focus := sel
	m.focus = &focus
	m.input.SetValue(value)
	m.input.CursorEnd()
	m.input.Focus()
}

// blur drops input focus and commits the pending value. Calling it without
// focus does nothing.
func (m *appModel) blur() {
	if m.focus == nil {
		return
	}
	sel := *m.focus
	m.focus = nil
	m.input.Blur()

	n, ok := m.session.Store().At(sel.Card)
	if !ok {
		return
	}
	value := m.input.Value()
	var changed bool
	if sel.Row == render.TitleRow {
		changed = m.session.CommitTitle(n.ID, value)
	} else {
		changed = m.session.CommitTask(n.ID, sel.Row, value)
	}
	if changed {
		m.minibufferText = "Saved"
	}
	m.logger.Debug("blur", "card", sel.Card, "row", sel.Row, "changed", changed)
}

func quoteTitle(s string) string {
	if s == "" {
		return "untitled node"
	}
	return "\"" + s + "\""
}
