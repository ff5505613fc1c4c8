package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Info    key.Binding
	Warn    key.Binding
	Error   key.Binding
	Compose key.Binding
	Help    key.Binding
	Quit    key.Binding
	Escape  key.Binding
}

var keys = keyMap{
	Info: key.NewBinding(
		key.WithKeys("i"),
		key.WithHelp("i", "info toast"),
	),
	Warn: key.NewBinding(
		key.WithKeys("w"),
		key.WithHelp("w", "warn toast"),
	),
	Error: key.NewBinding(
		key.WithKeys("e"),
		key.WithHelp("e", "error toast"),
	),
	Compose: key.NewBinding(
		key.WithKeys("o"),
		key.WithHelp("o", "compose toast"),
	),
	Help: key.NewBinding(
		key.WithKeys("?"),
		key.WithHelp("?", "help"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
	Escape: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "close/cancel"),
	),
}
