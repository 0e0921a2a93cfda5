package tui

import (
	"log/slog"

	"flowedit/internal/editor"
	"flowedit/internal/model"
	"flowedit/internal/render"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
)

const (
	headerLines = 2
	footerLines = 2
	minBodyH    = 6
)

type appModel struct {
	session *editor.Session
	logger  *slog.Logger

	width  int
	height int

	// sel is the highlighted row. It is kept by card position so that nodes
	// sharing an id can still be told apart.
	sel render.Selection

	// focus is the row whose text input has keyboard focus, if any.
	focus *render.Selection
	input textinput.Model

	body     viewport.Model
	keys     keyMap
	help     help.Model
	showHelp bool

	minibufferText string
}

func newAppModel(s *editor.Session) appModel {
	in := textinput.New()
	in.Prompt = ""
	in.CharLimit = 200

	m := appModel{
		session: s,
		logger:  slog.New(slog.DiscardHandler),
		sel:     render.Selection{Card: 0, Row: render.TitleRow},
		input:   in,
		body:    viewport.New(80, 20),
		keys:    newKeyMap(),
		help:    help.New(),
	}
	m.refreshBody()
	return m
}

func (m appModel) nodes() []model.WorkflowNode { return m.session.Store().Nodes() }

// rows lists every selectable row in chain order: each node's title followed
// by its actions.
func (m appModel) rows() []render.Selection {
	var out []render.Selection
	for i, n := range m.nodes() {
		out = append(out, render.Selection{Card: i, Row: render.TitleRow})
		for ai := range n.Actions {
			out = append(out, render.Selection{Card: i, Row: ai})
		}
	}
	return out
}

func (m appModel) rowIndex(sel render.Selection) int {
	for i, r := range m.rows() {
		if r == sel {
			return i
		}
	}
	return -1
}

func (m appModel) selectedNode() (model.WorkflowNode, bool) {
	return m.session.Store().At(m.sel.Card)
}

// clampSelection keeps sel on an existing row after the chain changed.
func (m *appModel) clampSelection() {
	nodes := m.nodes()
	if len(nodes) == 0 {
		m.sel = render.Selection{Card: 0, Row: render.TitleRow}
		return
	}
	if m.sel.Card >= len(nodes) {
		m.sel = render.Selection{Card: len(nodes) - 1, Row: render.TitleRow}
	}
	if m.sel.Card < 0 {
		m.sel.Card = 0
	}
	n := nodes[m.sel.Card]
	if m.sel.Row >= len(n.Actions) {
		m.sel.Row = render.TitleRow
	}
}

func (m *appModel) bodyHeight() int {
	h := m.height - headerLines - footerLines
	if h < minBodyH {
		h = minBodyH
	}
	return h
}

// refreshBody redraws the chain into the viewport and scrolls the selected row into view.
func (m *appModel) refreshBody() {
	if m.width > 0 {
		m.body.Width = m.width
	}
	if m.height > 0 {
		m.body.Height = m.bodyHeight()
	}

	opts := render.DrawOptions{Width: m.body.Width, Selected: &m.sel}
	if m.focus != nil {
		opts.Input = m.input.View()
	}
	d := render.Layout(render.Build(m.session.Store(), m.session.Cursor()), opts)
	m.body.SetContent(d.Text)

	line := d.RowLine(m.sel)
	if line < 0 {
		return
	}
	// Keep a little context above the selected row.
	const margin = 2
	if line-margin < m.body.YOffset {
		m.body.SetYOffset(line - margin)
	} else if line+margin >= m.body.YOffset+m.body.Height {
		m.body.SetYOffset(line + margin - m.body.Height + 1)
	}
}
