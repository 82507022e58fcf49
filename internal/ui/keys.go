package ui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the editor's keybindings.
type KeyMap struct {
	Up             key.Binding
	Down           key.Binding
	NextTab        key.Binding
	PrevTab        key.Binding
	NextDifficulty key.Binding
	PrevDifficulty key.Binding
	Toggle         key.Binding
	Left           key.Binding
	Right          key.Binding
	Save           key.Binding
	Reload         key.Binding
	Cancel         key.Binding
	Quit           key.Binding
}

// DefaultKeyMap returns the default keybinding configuration.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		NextTab: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "next tab"),
		),
		PrevTab: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("shift+tab", "prev tab"),
		),
		NextDifficulty: key.NewBinding(
			key.WithKeys("]"),
			key.WithHelp("]", "next difficulty"),
		),
		PrevDifficulty: key.NewBinding(
			key.WithKeys("["),
			key.WithHelp("[", "prev difficulty"),
		),
		Toggle: key.NewBinding(
			key.WithKeys(" ", "enter"),
			key.WithHelp("space", "toggle/edit"),
		),
		Left: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←", "prev value"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→", "next value"),
		),
		Save: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "save"),
		),
		Reload: key.NewBinding(
			key.WithKeys("ctrl+r"),
			key.WithHelp("ctrl+r", "reload"),
		),
		Cancel: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "cancel"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// EditKeyMap returns the bindings active while a number is being typed.
// Navigation is disabled so keystrokes reach the text input.
func EditKeyMap() KeyMap {
	km := DefaultKeyMap()
	for _, b := range []*key.Binding{
		&km.Up, &km.Down, &km.NextTab, &km.PrevTab, &km.NextDifficulty,
		&km.PrevDifficulty, &km.Left, &km.Right, &km.Save, &km.Reload, &km.Quit,
	} {
		b.SetEnabled(false)
	}
	km.Toggle = key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "commit"),
	)
	return km
}

func browseBindings(km KeyMap) []key.Binding {
	return []key.Binding{km.Up, km.Down, km.NextTab, km.PrevDifficulty, km.NextDifficulty, km.Toggle, km.Left, km.Right, km.Save, km.Reload, km.Quit}
}

func editBindings(km KeyMap) []key.Binding {
	return []key.Binding{km.Toggle, km.Cancel}
}
