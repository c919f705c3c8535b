package entity

// SidebarWidthMode selects one of the two sidebar widths.
type SidebarWidthMode int

const (
	SidebarCompact SidebarWidthMode = iota
	SidebarExpanded
)

func (m SidebarWidthMode) String() string {
	if m == SidebarExpanded {
		return "expanded"
	}
	return "compact"
}

// SidebarContentMode selects what the sidebar shows.
type SidebarContentMode int

const (
	SidebarHistory SidebarContentMode = iota
	SidebarSettings
)

func (m SidebarContentMode) String() string {
	if m == SidebarSettings {
		return "settings"
	}
	return "history"
}

// ShellMode is the coarse state of the shell.
type ShellMode int

const (
	ModeNormal ShellMode = iota
	ModeFullscreen
)

func (m ShellMode) String() string {
	if m == ModeFullscreen {
		return "fullscreen"
	}
	return "normal"
}

// ViewState holds the shell flags that are not per-tab.
type ViewState struct {
	SidebarOpen    bool
	SidebarWidth   SidebarWidthMode
	SidebarContent SidebarContentMode
	// Fullscreen mirrors the active tab's fullscreen intent.
	Fullscreen bool
}

// NewViewState returns the start-up state.
func NewViewState() ViewState {
	return ViewState{
		SidebarOpen:    true,
		SidebarWidth:   SidebarCompact,
		SidebarContent: SidebarHistory,
	}
}

// Mode returns Normal or Fullscreen.
func (v ViewState) Mode() ShellMode {
	if v.Fullscreen {
		return ModeFullscreen
	}
	return ModeNormal
}

// ToggleSidebar flips the sidebar. It is ignored in fullscreen.
func (v *ViewState) ToggleSidebar() bool {
	if v.Fullscreen {
		return false
	}
	v.SidebarOpen = !v.SidebarOpen
	return true
}

// ToggleSidebarWidth flips between compact and expanded.
func (v *ViewState) ToggleSidebarWidth() {
	if v.SidebarWidth == SidebarExpanded {
		v.SidebarWidth = SidebarCompact
		return
	}
	v.SidebarWidth = SidebarExpanded
}

// ToggleSidebarContent flips between history and settings.
func (v *ViewState) ToggleSidebarContent() {
	if v.SidebarContent == SidebarSettings {
		v.SidebarContent = SidebarHistory
		return
	}
	v.SidebarContent = SidebarSettings
}
