package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Dial   key.Binding
	Digits key.Binding
	Reset  key.Binding
	HangUp key.Binding
	Quit   key.Binding
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Dial, k.Digits, k.HangUp, k.Reset, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

var defaultKeyMap = keyMap{
	Dial: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "ring"),
	),
	Digits: key.NewBinding(
		key.WithKeys("0", "1", "2", "3", "4", "5", "6", "7", "8", "9", "*", "#"),
		key.WithHelp("0-9 * #", "knapp"),
	),
	Reset: key.NewBinding(
		key.WithKeys("r"),
		key.WithHelp("r", "nytt samtal"),
	),
	HangUp: key.NewBinding(
		key.WithKeys("h"),
		key.WithHelp("h", "lägg på"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q/ctrl+c", "avsluta"),
	),
}
