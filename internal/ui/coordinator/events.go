package coordinator

import (
	"github.com/bnema/sarf/internal/application/port"
	"github.com/bnema/sarf/internal/config"
	"github.com/bnema/sarf/internal/domain/entity"
)

// Event is anything the shell reacts to. Events are dispatched on the UI
// goroutine only.
type Event interface {
	event()
}

// Command is a user command without arguments.
type Command int

const (
	CmdToggleSidebar Command = iota
	CmdToggleSidebarWidth
	CmdToggleSidebarContent
	CmdClearHistory
	CmdNewTab
	CmdCloseActiveTab
	CmdNextTab
	CmdPreviousTab
	CmdExitFullscreen
	CmdMinimize
	CmdToggleMaximize
	CmdQuit
)

var commandNames = [...]string{
	CmdToggleSidebar:        "toggle-sidebar",
	CmdToggleSidebarWidth:   "toggle-sidebar-width",
	CmdToggleSidebarContent: "toggle-sidebar-content",
	CmdClearHistory:         "clear-history",
	CmdNewTab:               "new-tab",
	CmdCloseActiveTab:       "close-active-tab",
	CmdNextTab:              "next-tab",
	CmdPreviousTab:          "previous-tab",
	CmdExitFullscreen:       "exit-fullscreen",
	CmdMinimize:             "minimize",
	CmdToggleMaximize:       "toggle-maximize",
	CmdQuit:                 "quit",
}

func (c Command) String() string {
	if c < 0 || int(c) >= len(commandNames) {
		return "unknown"
	}
	return commandNames[c]
}

// NewTab opens a tab at URL, or at the home page when URL is empty.
type NewTab struct{ URL string }

// ActivateTab switches to the tab at Index.
type ActivateTab struct{ Index int }

// CloseTab closes the tab at Index.
type CloseTab struct{ Index int }

// TabCreated completes a surface request. Exactly one of Surface and Err is set.
type TabCreated struct {
	ID      entity.TabID
	Surface port.ContentSurface
	Err     error
}

// FullscreenIntentChanged reports a page entering or leaving fullscreen.
type FullscreenIntentChanged struct {
	ID    entity.TabID
	Wants bool
}

// SourceChanged reports a committed main-frame navigation.
type SourceChanged struct {
	ID  entity.TabID
	URL string
}

// TitleChanged reports a new document title.
type TitleChanged struct {
	ID    entity.TabID
	Title string
}

// PointerDown is a primary button press in client coordinates.
type PointerDown struct{ Point entity.Point }

// SubmitAddress is text confirmed in the address input.
type SubmitAddress struct{ Text string }

// Resized carries the new client area size.
type Resized struct{ Size entity.Size }

// ConfigChanged carries a reloaded configuration.
type ConfigChanged struct{ Config *config.Config }

func (Command) event()                 {}
func (NewTab) event()                  {}
func (ActivateTab) event()             {}
func (CloseTab) event()                {}
func (TabCreated) event()              {}
func (FullscreenIntentChanged) event() {}
func (SourceChanged) event()           {}
func (TitleChanged) event()            {}
func (PointerDown) event()             {}
func (SubmitAddress) event()           {}
func (Resized) event()                 {}
func (ConfigChanged) event()           {}
