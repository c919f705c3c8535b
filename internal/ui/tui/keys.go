package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the shell keybindings.
type KeyMap struct {
	NewTab         key.Binding
	CloseTab       key.Binding
	NextTab        key.Binding
	PrevTab        key.Binding
	SelectTab      key.Binding
	ToggleSidebar  key.Binding
	ToggleWidth    key.Binding
	ToggleContent  key.Binding
	ClearHistory   key.Binding
	EditAddress    key.Binding
	ExitFullscreen key.Binding
	Minimize       key.Binding
	Maximize       key.Binding
	Quit           key.Binding

	Submit key.Binding
	Cancel key.Binding
}

// DefaultKeyMap returns the default keybindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		NewTab: key.NewBinding(
			key.WithKeys("ctrl+t"),
			key.WithHelp("ctrl+t", "new tab"),
		),
		CloseTab: key.NewBinding(
			key.WithKeys("ctrl+w"),
			key.WithHelp("ctrl+w", "close tab"),
		),
		NextTab: key.NewBinding(
			key.WithKeys("ctrl+n", "ctrl+pgdown"),
			key.WithHelp("ctrl+n", "next tab"),
		),
		PrevTab: key.NewBinding(
			key.WithKeys("ctrl+p", "ctrl+pgup"),
			key.WithHelp("ctrl+p", "previous tab"),
		),
		SelectTab: key.NewBinding(
			key.WithKeys("alt+1", "alt+2", "alt+3", "alt+4", "alt+5", "alt+6", "alt+7", "alt+8", "alt+9"),
			key.WithHelp("alt+1-9", "go to tab"),
		),
		ToggleSidebar: key.NewBinding(
			key.WithKeys("ctrl+b"),
			key.WithHelp("ctrl+b", "sidebar"),
		),
		ToggleWidth: key.NewBinding(
			key.WithKeys("ctrl+e"),
			key.WithHelp("ctrl+e", "sidebar width"),
		),
		ToggleContent: key.NewBinding(
			key.WithKeys("ctrl+o"),
			key.WithHelp("ctrl+o", "history/settings"),
		),
		ClearHistory: key.NewBinding(
			key.WithKeys("ctrl+k"),
			key.WithHelp("ctrl+k", "clear history"),
		),
		EditAddress: key.NewBinding(
			key.WithKeys("ctrl+l"),
			key.WithHelp("ctrl+l", "address"),
		),
		ExitFullscreen: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "leave fullscreen"),
		),
		Minimize: key.NewBinding(
			key.WithKeys("ctrl+z"),
			key.WithHelp("ctrl+z", "suspend"),
		),
		Maximize: key.NewBinding(
			key.WithKeys("f11"),
			key.WithHelp("f11", "maximize"),
		),
		Quit: key.NewBinding(
			key.WithKeys("ctrl+q", "ctrl+c"),
			key.WithHelp("ctrl+q", "quit"),
		),
		Submit: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "go"),
		),
		Cancel: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "cancel"),
		),
	}
}

// ShortHelp returns the bindings shown in the empty state.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.NewTab, k.EditAddress, k.ToggleSidebar, k.Quit}
}
