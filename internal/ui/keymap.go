package ui

import "github.com/charmbracelet/bubbles/key"

// keyMap defines the picker's key bindings
type keyMap struct {
	Up        key.Binding
	Down      key.Binding
	Open      key.Binding
	Back      key.Binding
	Toggle    key.Binding
	Highlight key.Binding
	Finish    key.Binding
	Cancel    key.Binding
	Help      key.Binding
}

func newKeyMap(showCancel bool) keyMap {
	km := keyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Open: key.NewBinding(
			key.WithKeys("enter", "l"),
			key.WithHelp("enter", "open album"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "h"),
			key.WithHelp("esc", "back to albums"),
		),
		Toggle: key.NewBinding(
			key.WithKeys(" "),
			key.WithHelp("space", "select"),
		),
		Highlight: key.NewBinding(
			key.WithKeys("v"),
			key.WithHelp("v", "highlight"),
		),
		Finish: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "done"),
		),
		Cancel: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "cancel"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
	}
	if !showCancel {
		// ctrl+c still works as an escape hatch, q is freed up
		km.Cancel = key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "cancel"),
		)
	}
	return km
}

// ShortHelp implements help.KeyMap
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Toggle, k.Finish, k.Cancel, k.Help}
}

// FullHelp implements help.KeyMap
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Open, k.Back},
		{k.Toggle, k.Highlight, k.Finish, k.Cancel, k.Help},
	}
}
