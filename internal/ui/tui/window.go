// Package tui draws the shell in a terminal with Bubble Tea. The terminal
// grid is the client area: one layout unit is one cell.
package tui

import (
	"context"
	"errors"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/bnema/sarf/internal/application/port"
	"github.com/bnema/sarf/internal/domain/entity"
	"github.com/bnema/sarf/internal/domain/layout"
	"github.com/bnema/sarf/internal/logging"
	"github.com/bnema/sarf/internal/ui/coordinator"
	"github.com/bnema/sarf/internal/ui/mainloop"
)

// Shell is the controller the window forwards input to.
type Shell interface {
	Dispatch(ctx context.Context, ev coordinator.Event)
	Snapshot() coordinator.Snapshot
	Classify(p entity.Point) layout.Zone
}

// Options configures a Window.
type Options struct {
	Loop    *mainloop.Loop
	Metrics layout.Metrics
	// Engine names the content engine in the content placeholder.
	Engine string
	Keys   *KeyMap
	Styles *Styles
}

// Window is the terminal implementation of port.Window and the Bubble Tea
// model that drives the UI goroutine.
type Window struct {
	ctx     context.Context
	loop    *mainloop.Loop
	shell   Shell
	metrics layout.Metrics
	engine  string
	keys    KeyMap
	styles  Styles

	input   textinput.Model
	editing bool

	regions   layout.Regions
	address   string
	hover     layout.Zone
	width     int
	height    int
	maximized bool
	closed    bool

	pending []tea.Cmd
}

var (
	_ port.Window = (*Window)(nil)
	_ tea.Model   = (*Window)(nil)
)

// New creates a window. Attach must be called before the program starts.
func New(ctx context.Context, opts Options) *Window {
	keys := DefaultKeyMap()
	if opts.Keys != nil {
		keys = *opts.Keys
	}
	styles := DefaultStyles()
	if opts.Styles != nil {
		styles = *opts.Styles
	}

	input := textinput.New()
	input.Prompt = ""
	input.Placeholder = "Search or enter address"
	input.CharLimit = 2048

	return &Window{
		ctx:     logging.WithComponent(ctx, "tui"),
		loop:    opts.Loop,
		metrics: opts.Metrics,
		engine:  opts.Engine,
		keys:    keys,
		styles:  styles,
		input:   input,
		hover:   layout.Zone{Kind: layout.ZoneDefault, Index: -1},
	}
}

// Attach connects the window to its shell.
func (w *Window) Attach(shell Shell) {
	w.shell = shell
}

// ApplyLayout implements port.Window.
func (w *Window) ApplyLayout(regions layout.Regions) {
	w.regions = regions
	if regions.Header != nil {
		w.input.Width = max(1, regions.Header.Address.W-1)
	}
	if regions.Fullscreen && w.editing {
		w.stopEditing()
	}
}

// Invalidate implements port.Window. Shell tasks only run inside Update
// and Bubble Tea calls View after every Update, so there is nothing left to
// schedule here.
func (w *Window) Invalidate() {}

// SetAddress implements port.Window. Text being edited is left alone.
func (w *Window) SetAddress(text string) {
	w.address = text
	if !w.editing {
		w.input.SetValue(text)
	}
}

// Minimize implements port.Window by suspending the program.
func (w *Window) Minimize() {
	w.pending = append(w.pending, tea.Suspend)
}

// ToggleMaximize implements port.Window. The terminal always fills its
// window, so only the button glyph changes.
func (w *Window) ToggleMaximize() {
	w.maximized = !w.maximized
	logging.FromContext(w.ctx).Debug().Bool("maximized", w.maximized).Msg("maximize toggled")
}

// Close implements port.Window.
func (w *Window) Close() {
	if w.closed {
		return
	}
	w.closed = true
	w.pending = append(w.pending, tea.Quit)
}

// Closed reports whether Close was called.
func (w *Window) Closed() bool { return w.closed }

// Editing reports whether the address input has focus.
func (w *Window) Editing() bool { return w.editing }

// loopReadyMsg signals that the main loop has queued tasks. It carries no
// task: Update drains the queue itself.
type loopReadyMsg struct{}

// loopDoneMsg reports that the main loop was closed or cancelled.
type loopDoneMsg struct{ err error }

func (w *Window) waitForLoop() tea.Cmd {
	return func() tea.Msg {
		if err := w.loop.Wait(w.ctx); err != nil {
			return loopDoneMsg{err: err}
		}
		return loopReadyMsg{}
	}
}

// Init implements tea.Model.
func (w *Window) Init() tea.Cmd {
	return w.waitForLoop()
}

// Update implements tea.Model. Main loop tasks are drained here in post
// order, so the shell only ever runs on the Bubble Tea goroutine.
func (w *Window) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case loopReadyMsg:
		cmds = append(cmds, w.waitForLoop())
	case loopDoneMsg:
		if !errors.Is(msg.err, mainloop.ErrClosed) {
			logging.FromContext(w.ctx).Debug().Err(msg.err).Msg("main loop wait ended")
		}
	case tea.WindowSizeMsg:
		w.width, w.height = msg.Width, msg.Height
		w.dispatch(coordinator.Resized{Size: entity.Size{Width: msg.Width, Height: msg.Height}})
	case tea.KeyMsg:
		cmds = append(cmds, w.handleKey(msg))
	case tea.MouseMsg:
		cmds = append(cmds, w.handleMouse(msg))
	}

	w.loop.Drain()
	cmds = append(cmds, w.takePending()...)
	return w, tea.Batch(cmds...)
}

func (w *Window) takePending() []tea.Cmd {
	cmds := w.pending
	w.pending = nil
	return cmds
}

func (w *Window) dispatch(ev coordinator.Event) {
	if w.shell == nil || w.closed {
		return
	}
	w.shell.Dispatch(w.ctx, ev)
}

func (w *Window) handleKey(msg tea.KeyMsg) tea.Cmd {
	if w.editing {
		switch {
		case key.Matches(msg, w.keys.Submit):
			text := w.input.Value()
			w.stopEditing()
			w.dispatch(coordinator.SubmitAddress{Text: text})
			return nil
		case key.Matches(msg, w.keys.Cancel):
			w.stopEditing()
			return nil
		case key.Matches(msg, w.keys.Quit):
			w.dispatch(coordinator.CmdQuit)
			return nil
		}
		var cmd tea.Cmd
		w.input, cmd = w.input.Update(msg)
		return cmd
	}

	switch {
	case key.Matches(msg, w.keys.Quit):
		w.dispatch(coordinator.CmdQuit)
	case key.Matches(msg, w.keys.NewTab):
		w.dispatch(coordinator.CmdNewTab)
	case key.Matches(msg, w.keys.CloseTab):
		w.dispatch(coordinator.CmdCloseActiveTab)
	case key.Matches(msg, w.keys.NextTab):
		w.dispatch(coordinator.CmdNextTab)
	case key.Matches(msg, w.keys.PrevTab):
		w.dispatch(coordinator.CmdPreviousTab)
	case key.Matches(msg, w.keys.SelectTab):
		if len(msg.Runes) == 1 {
			w.dispatch(coordinator.ActivateTab{Index: int(msg.Runes[0] - '1')})
		}
	case key.Matches(msg, w.keys.ToggleSidebar):
		w.dispatch(coordinator.CmdToggleSidebar)
	case key.Matches(msg, w.keys.ToggleWidth):
		w.dispatch(coordinator.CmdToggleSidebarWidth)
	case key.Matches(msg, w.keys.ToggleContent):
		w.dispatch(coordinator.CmdToggleSidebarContent)
	case key.Matches(msg, w.keys.ClearHistory):
		w.dispatch(coordinator.CmdClearHistory)
	case key.Matches(msg, w.keys.EditAddress):
		return w.startEditing()
	case key.Matches(msg, w.keys.ExitFullscreen):
		if w.regions.Fullscreen {
			w.dispatch(coordinator.CmdExitFullscreen)
		}
	case key.Matches(msg, w.keys.Minimize):
		w.dispatch(coordinator.CmdMinimize)
	case key.Matches(msg, w.keys.Maximize):
		w.dispatch(coordinator.CmdToggleMaximize)
	}
	return nil
}

func (w *Window) handleMouse(msg tea.MouseMsg) tea.Cmd {
	p := entity.Point{X: msg.X, Y: msg.Y}
	if w.shell != nil {
		w.hover = w.shell.Classify(p)
	}
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return nil
	}

	if layout.Locate(p, w.regions).Kind == layout.TargetAddress {
		return w.startEditing()
	}
	if w.editing {
		w.stopEditing()
	}
	w.dispatch(coordinator.PointerDown{Point: p})
	return nil
}

func (w *Window) startEditing() tea.Cmd {
	if w.regions.Fullscreen || w.regions.Header == nil {
		return nil
	}
	w.editing = true
	w.input.SetValue(w.address)
	w.input.CursorEnd()
	return w.input.Focus()
}

func (w *Window) stopEditing() {
	w.editing = false
	w.input.Blur()
	w.input.SetValue(w.address)
}
