package types

import "github.com/charmbracelet/bubbles/key"

// KeyMap holds every binding the search bar reacts to
type KeyMap struct {
	NextTab      key.Binding
	PrevTab      key.Binding
	Up           key.Binding
	Down         key.Binding
	CopyLink     key.Binding
	Open         key.Binding
	Settings     key.Binding
	Toggle       key.Binding
	Clear        key.Binding
	Help         key.Binding
	Quit         key.Binding
	CloseOverlay key.Binding
}

// DefaultKeyMap returns the standard bindings
func DefaultKeyMap() KeyMap {
	return KeyMap{
		NextTab: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "next tab"),
		),
		PrevTab: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("shift+tab", "previous tab"),
		),
		Up: key.NewBinding(
			key.WithKeys("up"),
			key.WithHelp("↑", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down"),
			key.WithHelp("↓", "down"),
		),
		CopyLink: key.NewBinding(
			key.WithKeys("ctrl+y"),
			key.WithHelp("ctrl+y", "copy link"),
		),
		Open: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("⏎", "open"),
		),
		Settings: key.NewBinding(
			key.WithKeys("ctrl+t"),
			key.WithHelp("ctrl+t", "settings"),
		),
		Toggle: key.NewBinding(
			key.WithKeys(" ", "space", "enter"),
			key.WithHelp("space", "toggle tab"),
		),
		Clear: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "clear"),
		),
		Help: key.NewBinding(
			key.WithKeys("f1"),
			key.WithHelp("f1", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "quit"),
		),
		CloseOverlay: key.NewBinding(
			key.WithKeys("esc", "ctrl+t"),
			key.WithHelp("esc", "close"),
		),
	}
}

// ShortHelp implements help.KeyMap
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.NextTab, k.CopyLink, k.Open, k.Settings, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.NextTab, k.PrevTab, k.Up, k.Down},
		{k.CopyLink, k.Open, k.Clear},
		{k.Settings, k.Toggle, k.CloseOverlay},
		{k.Help, k.Quit},
	}
}

// SettingsHelp lists the bindings active while the settings panel is open
func (k KeyMap) SettingsHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Toggle, k.CloseOverlay}
}
