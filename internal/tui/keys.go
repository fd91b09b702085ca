package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines all key bindings for the application
type KeyMap struct {
	// Navigation
	Up    key.Binding
	Down  key.Binding
	Left  key.Binding
	Right key.Binding
	Home  key.Binding
	End   key.Binding

	// Routes
	RouteHome    key.Binding
	RoutePopular key.Binding
	RouteLatest  key.Binding
	NextRoute    key.Binding
	PrevRoute    key.Binding

	// Paging
	PrevPage key.Binding
	NextPage key.Binding

	// Actions
	Quit    key.Binding
	Help    key.Binding
	Escape  key.Binding
	Search  key.Binding
	Filter  key.Binding
	Open    key.Binding
	Refresh key.Binding
}

// DefaultKeyMap returns the default key bindings
func DefaultKeyMap() KeyMap {
	return KeyMap{
		// Navigation
		Up: key.NewBinding(
			key.WithKeys("k", "up"),
			key.WithHelp("k/↑", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("j", "down"),
			key.WithHelp("j/↓", "down"),
		),
		Left: key.NewBinding(
			key.WithKeys("h", "left"),
			key.WithHelp("h/←", "left"),
		),
		Right: key.NewBinding(
			key.WithKeys("l", "right"),
			key.WithHelp("l/→", "right"),
		),
		Home: key.NewBinding(
			key.WithKeys("g", "home"),
			key.WithHelp("g", "first title"),
		),
		End: key.NewBinding(
			key.WithKeys("G", "end"),
			key.WithHelp("G", "last title"),
		),

		// Routes
		RouteHome: key.NewBinding(
			key.WithKeys("1"),
			key.WithHelp("1", "home"),
		),
		RoutePopular: key.NewBinding(
			key.WithKeys("2"),
			key.WithHelp("2", "popular"),
		),
		RouteLatest: key.NewBinding(
			key.WithKeys("3"),
			key.WithHelp("3", "latest"),
		),
		NextRoute: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "next page type"),
		),
		PrevRoute: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("S-tab", "previous page type"),
		),

		// Paging
		PrevPage: key.NewBinding(
			key.WithKeys("[", "pgup"),
			key.WithHelp("[", "previous page"),
		),
		NextPage: key.NewBinding(
			key.WithKeys("]", "pgdown"),
			key.WithHelp("]", "next page"),
		),

		// Actions
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Escape: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "cancel/clear"),
		),
		Search: key.NewBinding(
			key.WithKeys("/"),
			key.WithHelp("/", "search"),
		),
		Filter: key.NewBinding(
			key.WithKeys("f"),
			key.WithHelp("f", "filter this page"),
		),
		Open: key.NewBinding(
			key.WithKeys("enter", "o"),
			key.WithHelp("enter", "read manga"),
		),
		Refresh: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "refresh"),
		),
	}
}

// Keys is the global key bindings instance
var Keys = DefaultKeyMap()
