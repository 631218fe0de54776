package common

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines shared key bindings across all views.
type KeyMap struct {
	Quit        key.Binding
	Up          key.Binding // previous sibling
	Down        key.Binding // next sibling
	Ascend      key.Binding // focus parent
	Descend     key.Binding // focus active child
	StartSearch key.Binding // clear and focus the query input
	LogIn       key.Binding // back to the login view
	Refresh     key.Binding // re-run the last query
	ToggleTheme key.Binding
	CycleKind   key.Binding // search result kind
	CycleSort   key.Binding // sort order
	CycleScope  key.Binding // listing scope
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "quit"),
		),
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Ascend: key.NewBinding(
			key.WithKeys("esc", "h"),
			key.WithHelp("esc/h", "focus parent"),
		),
		Descend: key.NewBinding(
			key.WithKeys("enter", "l"),
			key.WithHelp("enter/l", "focus child"),
		),
		StartSearch: key.NewBinding(
			key.WithKeys("/"),
			key.WithHelp("/", "search"),
		),
		LogIn: key.NewBinding(
			key.WithKeys("ctrl+l"),
			key.WithHelp("ctrl+l", "log in"),
		),
		Refresh: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "refresh"),
		),
		ToggleTheme: key.NewBinding(
			key.WithKeys("t"),
			key.WithHelp("t", "theme"),
		),
		CycleKind: key.NewBinding(
			key.WithKeys("ctrl+k"),
			key.WithHelp("ctrl+k", "kind"),
		),
		CycleSort: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "sort"),
		),
		CycleScope: key.NewBinding(
			key.WithKeys("ctrl+o"),
			key.WithHelp("ctrl+o", "scope"),
		),
	}
}
