package playground

import "github.com/charmbracelet/bubbles/key"

// KeyMap holds the playground bindings.
type KeyMap struct {
	Next    key.Binding
	Prev    key.Binding
	Left    key.Binding
	Right   key.Binding
	More    key.Binding
	Edit    key.Binding
	Apply   key.Binding
	Cancel  key.Binding
	Copy    key.Binding
	Save    key.Binding
	ShowCSS key.Binding
	Help    key.Binding
	Quit    key.Binding
}

// DefaultKeyMap returns the standard bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Next: key.NewBinding(
			key.WithKeys("tab", "down", "j"),
			key.WithHelp("tab", "next section"),
		),
		Prev: key.NewBinding(
			key.WithKeys("shift+tab", "up", "k"),
			key.WithHelp("shift+tab", "previous section"),
		),
		Left: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←/h", "previous option"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→/l", "next option"),
		),
		More: key.NewBinding(
			key.WithKeys("m"),
			key.WithHelp("m", "more/less options"),
		),
		Edit: key.NewBinding(
			key.WithKeys("e"),
			key.WithHelp("e", "custom hex"),
		),
		Apply: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "apply"),
		),
		Cancel: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "cancel"),
		),
		Copy: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "copy css"),
		),
		Save: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "save css"),
		),
		ShowCSS: key.NewBinding(
			key.WithKeys("v"),
			key.WithHelp("v", "show/hide css"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "toggle help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Next, k.Right, k.Edit, k.Copy, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Next, k.Prev, k.Left, k.Right},
		{k.More, k.Edit, k.Apply, k.Cancel},
		{k.Copy, k.Save, k.ShowCSS},
		{k.Help, k.Quit},
	}
}
