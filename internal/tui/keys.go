package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Up     key.Binding
	Down   key.Binding
	Top    key.Binding
	Bottom key.Binding
	Edit   key.Binding
	Delete key.Binding
	Side   key.Binding
	Add    key.Binding
	Undo   key.Binding
	Redo   key.Binding
	Help   key.Binding
	Quit   key.Binding

	// While a field has focus.
	Confirm key.Binding
	Blur    key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		Up:     key.NewBinding(key.WithKeys("k", "up"), key.WithHelp("k/↑", "up")),
		Down:   key.NewBinding(key.WithKeys("j", "down"), key.WithHelp("j/↓", "down")),
		Top:    key.NewBinding(key.WithKeys("g", "home"), key.WithHelp("g", "first")),
		Bottom: key.NewBinding(key.WithKeys("G", "end"), key.WithHelp("G", "last")),
		Edit:   key.NewBinding(key.WithKeys("e", "enter"), key.WithHelp("e", "edit")),
		Delete: key.NewBinding(key.WithKeys("d", "x"), key.WithHelp("d", "delete node")),
		Side:   key.NewBinding(key.WithKeys("s", "right"), key.WithHelp("s/→", "reminder")),
		Add:    key.NewBinding(key.WithKeys("a", "+"), key.WithHelp("a", "add another")),
		Undo:   key.NewBinding(key.WithKeys("u"), key.WithHelp("u", "undo")),
		Redo:   key.NewBinding(key.WithKeys("ctrl+r"), key.WithHelp("ctrl+r", "redo")),
		Help:   key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:   key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),

		Confirm: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "save")),
		Blur:    key.NewBinding(key.WithKeys("esc", "tab"), key.WithHelp("esc", "done")),
	}
}

func (k keyMap) browseHelp() []key.Binding {
	return []key.Binding{k.Down, k.Up, k.Edit, k.Delete, k.Side, k.Add, k.Undo, k.Help, k.Quit}
}

func (k keyMap) editHelp() []key.Binding {
	return []key.Binding{k.Confirm, k.Blur}
}
