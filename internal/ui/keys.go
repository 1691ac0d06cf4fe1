package ui

import (
	"github.com/charmbracelet/bubbles/key"
)

// keyMap lists the bindings of the search screen
type keyMap struct {
	Search key.Binding
	Clear  key.Binding
	Up     key.Binding
	Down   key.Binding
	Open   key.Binding
	Help   key.Binding
	Quit   key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		Search: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "search now")),
		Clear:  key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "clear")),
		Up:     key.NewBinding(key.WithKeys("up", "ctrl+p"), key.WithHelp("↑/ctrl+p", "up")),
		Down:   key.NewBinding(key.WithKeys("down", "ctrl+n"), key.WithHelp("↓/ctrl+n", "down")),
		Open:   key.NewBinding(key.WithKeys("ctrl+o"), key.WithHelp("ctrl+o", "open profile")),
		Help:   key.NewBinding(key.WithKeys("f1"), key.WithHelp("f1", "help")),
		Quit:   key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit")),
	}
}

// ShortHelp implements help.KeyMap
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Search, k.Down, k.Open, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Search, k.Clear},
		{k.Up, k.Down, k.Open},
		{k.Help, k.Quit},
	}
}
