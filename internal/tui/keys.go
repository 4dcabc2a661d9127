package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines all key bindings for the application.
type KeyMap struct {
	Up             key.Binding
	Down           key.Binding
	Top            key.Binding
	Bottom         key.Binding
	PrevDay        key.Binding
	NextDay        key.Binding
	PrevMonth      key.Binding
	NextMonth      key.Binding
	Today          key.Binding
	WidenRange     key.Binding
	NarrowRange    key.Binding
	MoreEntries    key.Binding
	FewerEntries   key.Binding
	Open           key.Binding
	ToggleOrder    key.Binding
	ToggleAll      key.Binding
	Search         key.Binding
	Settings       key.Binding
	ExpandAll      key.Binding
	CollapseAll    key.Binding
	Select         key.Binding
	YankURL        key.Binding
	Reload         key.Binding
	Quit           key.Binding
}

// DefaultKeyMap returns the default vim-style key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("k", "up"),
			key.WithHelp("k/up", "move up"),
		),
		Down: key.NewBinding(
			key.WithKeys("j", "down"),
			key.WithHelp("j/down", "move down"),
		),
		Top: key.NewBinding(
			key.WithKeys("g"),
			key.WithHelp("gg", "go to top"),
		),
		Bottom: key.NewBinding(
			key.WithKeys("G"),
			key.WithHelp("G", "go to bottom"),
		),
		PrevDay: key.NewBinding(
			key.WithKeys("h", "left"),
			key.WithHelp("h/left", "previous day"),
		),
		NextDay: key.NewBinding(
			key.WithKeys("l", "right"),
			key.WithHelp("l/right", "next day"),
		),
		PrevMonth: key.NewBinding(
			key.WithKeys("H"),
			key.WithHelp("H", "previous month"),
		),
		NextMonth: key.NewBinding(
			key.WithKeys("L"),
			key.WithHelp("L", "next month"),
		),
		Today: key.NewBinding(
			key.WithKeys("t"),
			key.WithHelp("t", "jump to today"),
		),
		WidenRange: key.NewBinding(
			key.WithKeys("+", "="),
			key.WithHelp("+", "widen day range"),
		),
		NarrowRange: key.NewBinding(
			key.WithKeys("-", "_"),
			key.WithHelp("-", "narrow day range"),
		),
		MoreEntries: key.NewBinding(
			key.WithKeys(">", "."),
			key.WithHelp(">", "more per year"),
		),
		FewerEntries: key.NewBinding(
			key.WithKeys("<", ","),
			key.WithHelp("<", "fewer per year"),
		),
		Open: key.NewBinding(
			key.WithKeys("o"),
			key.WithHelp("o", "open in browser"),
		),
		ToggleOrder: key.NewBinding(
			key.WithKeys("O"),
			key.WithHelp("O", "toggle year order"),
		),
		ToggleAll: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "search all dates"),
		),
		Search: key.NewBinding(
			key.WithKeys("/"),
			key.WithHelp("/", "search"),
		),
		Settings: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "settings"),
		),
		ExpandAll: key.NewBinding(
			key.WithKeys("e"),
			key.WithHelp("e", "expand all"),
		),
		CollapseAll: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "collapse all"),
		),
		Select: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter", "toggle year / open"),
		),
		YankURL: key.NewBinding(
			key.WithKeys("Y"),
			key.WithHelp("Y", "yank URL"),
		),
		Reload: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "reload sources"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}
