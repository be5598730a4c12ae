package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Quit        key.Binding
	Close       key.Binding
	Send        key.Binding
	NextChannel key.Binding
	PrevChannel key.Binding
	Rename      key.Binding
	Recolor     key.Binding
	Length      key.Binding
	ViewAll     key.Binding
	Toggle      key.Binding
	ScrollUp    key.Binding
	ScrollDown  key.Binding
}

var keys = keyMap{
	Quit: key.NewBinding(
		key.WithKeys("ctrl+c"),
		key.WithHelp("ctrl+c", "quit"),
	),
	Close: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "close"),
	),
	Send: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "send"),
	),
	NextChannel: key.NewBinding(
		key.WithKeys("tab"),
		key.WithHelp("tab", "next channel"),
	),
	PrevChannel: key.NewBinding(
		key.WithKeys("shift+tab"),
		key.WithHelp("shift+tab", "prev channel"),
	),
	Rename: key.NewBinding(
		key.WithKeys("ctrl+r"),
		key.WithHelp("ctrl+r", "rename"),
	),
	Recolor: key.NewBinding(
		key.WithKeys("ctrl+p"),
		key.WithHelp("ctrl+p", "color"),
	),
	Length: key.NewBinding(
		key.WithKeys("ctrl+l"),
		key.WithHelp("ctrl+l", "history length"),
	),
	ViewAll: key.NewBinding(
		key.WithKeys("ctrl+o"),
		key.WithHelp("ctrl+o", "examine chat"),
	),
	Toggle: key.NewBinding(
		key.WithKeys("ctrl+t", " "),
		key.WithHelp("space", "toggle limit"),
	),
	ScrollUp: key.NewBinding(
		key.WithKeys("pgup", "up"),
		key.WithHelp("pgup", "scroll up"),
	),
	ScrollDown: key.NewBinding(
		key.WithKeys("pgdown", "down"),
		key.WithHelp("pgdn", "scroll down"),
	),
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Send, k.NextChannel, k.Rename, k.Recolor, k.Length, k.ViewAll, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Send, k.NextChannel, k.PrevChannel, k.ScrollUp, k.ScrollDown},
		{k.Rename, k.Recolor, k.Length, k.ViewAll},
		{k.Close, k.Quit},
	}
}
