package tui

import "github.com/charmbracelet/lipgloss"

// Styles holds the lipgloss styles of the chrome.
type Styles struct {
	Header      lipgloss.Style
	Control     lipgloss.Style
	CloseButton lipgloss.Style
	Toggle      lipgloss.Style

	Address        lipgloss.Style
	AddressEditing lipgloss.Style

	ActiveTab   lipgloss.Style
	InactiveTab lipgloss.Style
	TabClose    lipgloss.Style
	NewTab      lipgloss.Style

	SidebarTitle  lipgloss.Style
	SidebarButton lipgloss.Style
	SidebarBorder lipgloss.Style
	HistoryRow    lipgloss.Style
	Danger        lipgloss.Style

	ContentTitle lipgloss.Style
	ContentText  lipgloss.Style
	Muted        lipgloss.Style
	Separator    lipgloss.Style
}

// DefaultStyles returns the dark palette.
func DefaultStyles() Styles {
	var (
		surface = lipgloss.Color("#1e1e2e")
		raised  = lipgloss.Color("#313244")
		text    = lipgloss.Color("#cdd6f4")
		muted   = lipgloss.Color("#7f849c")
		accent  = lipgloss.Color("#89b4fa")
		danger  = lipgloss.Color("#f38ba8")
	)

	return Styles{
		Header:      lipgloss.NewStyle().Foreground(text),
		Control:     lipgloss.NewStyle().Foreground(text).Background(raised),
		CloseButton: lipgloss.NewStyle().Foreground(surface).Background(danger),
		Toggle:      lipgloss.NewStyle().Foreground(accent).Bold(true),

		Address:        lipgloss.NewStyle().Foreground(text).Background(raised),
		AddressEditing: lipgloss.NewStyle().Foreground(text).Background(raised).Underline(true),

		ActiveTab:   lipgloss.NewStyle().Foreground(surface).Background(accent).Bold(true),
		InactiveTab: lipgloss.NewStyle().Foreground(text).Background(raised),
		TabClose:    lipgloss.NewStyle().Foreground(danger).Background(raised),
		NewTab:      lipgloss.NewStyle().Foreground(accent).Background(raised).Bold(true),

		SidebarTitle:  lipgloss.NewStyle().Foreground(accent).Bold(true),
		SidebarButton: lipgloss.NewStyle().Foreground(text).Background(raised),
		SidebarBorder: lipgloss.NewStyle().Foreground(raised),
		HistoryRow:    lipgloss.NewStyle().Foreground(text),
		Danger:        lipgloss.NewStyle().Foreground(surface).Background(danger),

		ContentTitle: lipgloss.NewStyle().Foreground(text).Bold(true),
		ContentText:  lipgloss.NewStyle().Foreground(text),
		Muted:        lipgloss.NewStyle().Foreground(muted),
		Separator:    lipgloss.NewStyle().Foreground(raised),
	}
}
