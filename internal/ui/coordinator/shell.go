// Package coordinator holds the shell controller: the single owner of tab,
// view and history state, driven by events on the UI goroutine.
package coordinator

import (
	"context"

	"github.com/bnema/sarf/internal/application/port"
	"github.com/bnema/sarf/internal/application/usecase"
	"github.com/bnema/sarf/internal/config"
	"github.com/bnema/sarf/internal/domain/entity"
	"github.com/bnema/sarf/internal/domain/layout"
	"github.com/bnema/sarf/internal/domain/url"
	"github.com/bnema/sarf/internal/logging"
	"github.com/bnema/sarf/internal/ui/mainloop"
)

const repaintKey = "repaint"

// Options configures a Shell.
type Options struct {
	Loop    *mainloop.Loop
	Tabs    *usecase.ManageTabsUseCase
	Window  port.Window
	Config  *config.Config
	Metrics layout.Metrics
	// Client is the initial client area size, in layout units.
	Client entity.Size
	// Trace, when set, is finished once the first tab is ready.
	Trace *logging.StartupTrace
}

// Shell is the shell controller. All methods except Post, Done and the
// SurfaceEvents returned by Events must be called on the UI goroutine.
type Shell struct {
	ctx       context.Context
	loop      *mainloop.Loop
	coalescer *mainloop.Coalescer
	tabs      *usecase.ManageTabsUseCase
	window    port.Window
	events    port.SurfaceEvents
	trace     *logging.StartupTrace

	view        entity.ViewState
	history     *entity.HistoryLog
	baseMetrics layout.Metrics
	metrics     layout.Metrics
	client      entity.Size
	regions     layout.Regions
	address     string

	homeURL   string
	searchURL string
	shortcuts map[string]string

	terminated bool
	done       chan struct{}
}

// New creates a shell. ctx carries the logger used for every event.
func New(ctx context.Context, opts Options) *Shell {
	cfg := opts.Config
	if cfg == nil {
		cfg = config.DefaultConfig()
	}

	s := &Shell{
		ctx:         logging.WithComponent(ctx, "shell"),
		loop:        opts.Loop,
		coalescer:   mainloop.NewCoalescer(opts.Loop.Post),
		tabs:        opts.Tabs,
		window:      opts.Window,
		trace:       opts.Trace,
		view:        entity.NewViewState(),
		history:     entity.NewHistoryLog(cfg.History.Capacity, entity.HistoryPolicy(cfg.History.Policy)),
		baseMetrics: opts.Metrics,
		client:      opts.Client,
		done:        make(chan struct{}),
	}
	s.events = surfaceEvents{shell: s}
	s.view.SidebarOpen = cfg.Sidebar.OpenOnStart
	s.applyConfig(cfg)
	s.relayout(s.ctx)
	return s
}

// Events returns the sink handed to surface factories. It is safe to call
// from any goroutine.
func (s *Shell) Events() port.SurfaceEvents { return s.events }

// Done is closed once the shell has terminated.
func (s *Shell) Done() <-chan struct{} { return s.done }

// Terminated reports whether the shell has shut down.
func (s *Shell) Terminated() bool { return s.terminated }

// Post queues ev for dispatch on the UI goroutine. It is safe to call from
// any goroutine. Returns false once the loop is closed.
func (s *Shell) Post(ev Event) bool {
	return s.loop.Post(func() { s.Dispatch(s.ctx, ev) })
}

// Start opens the first tab.
func (s *Shell) Start(initialURL string) {
	s.Post(NewTab{URL: initialURL})
}

// Dispatch applies one event.
func (s *Shell) Dispatch(ctx context.Context, ev Event) {
	if s.terminated {
		s.dropAfterTermination(ctx, ev)
		return
	}

	switch e := ev.(type) {
	case Command:
		s.handleCommand(ctx, e)
	case NewTab:
		s.openTab(ctx, e.URL)
	case ActivateTab:
		s.activate(ctx, e.Index)
	case CloseTab:
		s.closeTab(ctx, e.Index)
	case TabCreated:
		s.handleTabCreated(ctx, e)
	case FullscreenIntentChanged:
		s.handleFullscreenIntent(ctx, e)
	case SourceChanged:
		s.handleSourceChanged(ctx, e)
	case TitleChanged:
		s.handleTitleChanged(ctx, e)
	case PointerDown:
		s.handlePointerDown(ctx, e.Point)
	case SubmitAddress:
		s.submitAddress(ctx, e.Text)
	case Resized:
		s.client = e.Size
		s.relayout(ctx)
	case ConfigChanged:
		if e.Config == nil {
			return
		}
		s.applyConfig(e.Config)
		s.refresh(ctx)
		logging.FromContext(ctx).Info().Msg("configuration applied")
	default:
		logging.FromContext(ctx).Debug().Type("event", ev).Msg("unhandled event")
	}
}

func (s *Shell) handleCommand(ctx context.Context, cmd Command) {
	log := logging.FromContext(ctx)
	log.Debug().Stringer("command", cmd).Msg("command")

	switch cmd {
	case CmdToggleSidebar:
		if !s.view.ToggleSidebar() {
			log.Debug().Msg("sidebar toggle ignored in fullscreen")
			return
		}
		s.refresh(ctx)
	case CmdToggleSidebarWidth:
		s.view.ToggleSidebarWidth()
		s.refresh(ctx)
	case CmdToggleSidebarContent:
		s.view.ToggleSidebarContent()
		s.refresh(ctx)
	case CmdClearHistory:
		s.history.Clear()
		s.refresh(ctx)
	case CmdNewTab:
		s.openTab(ctx, "")
	case CmdCloseActiveTab:
		s.closeTab(ctx, s.tabs.Tabs().ActiveIndex())
	case CmdNextTab:
		s.activate(ctx, s.tabs.Tabs().Neighbor(1))
	case CmdPreviousTab:
		s.activate(ctx, s.tabs.Tabs().Neighbor(-1))
	case CmdExitFullscreen:
		if surface := s.tabs.ActiveSurface(); surface != nil {
			if err := surface.ExitFullscreen(ctx); err != nil {
				log.Warn().Err(err).Msg("failed to exit fullscreen")
			}
		}
	case CmdMinimize:
		s.window.Minimize()
	case CmdToggleMaximize:
		s.window.ToggleMaximize()
	case CmdQuit:
		s.terminate(ctx, "quit")
	}
}

func (s *Shell) openTab(ctx context.Context, target string) {
	if target == "" {
		target = s.homeURL
	}
	s.tabs.Request(ctx, target, s.events)
	s.repaint()
}

func (s *Shell) handleTabCreated(ctx context.Context, e TabCreated) {
	if e.Err != nil || e.Surface == nil {
		if !s.tabs.Fail(ctx, e.ID, e.Err) {
			logging.FromContext(ctx).Debug().Str("tab_id", string(e.ID)).Msg("discarding failure for unknown tab")
		}
		s.repaint()
		return
	}

	res, ok := s.tabs.Adopt(ctx, e.ID, e.Surface)
	if !ok {
		return
	}
	if act, ok := s.tabs.Activate(ctx, res.Index); ok {
		s.applyActivation(ctx, act)
	}
	if res.InitialURL != "" {
		if err := e.Surface.Navigate(ctx, res.InitialURL); err != nil {
			logging.FromContext(ctx).Warn().Err(err).Str("tab_id", string(e.ID)).Msg("initial navigation failed")
		}
	}
	s.trace.Finish("first_tab_ready")
}

func (s *Shell) activate(ctx context.Context, index int) {
	act, ok := s.tabs.Activate(ctx, index)
	if !ok {
		return
	}
	s.applyActivation(ctx, act)
}

func (s *Shell) applyActivation(ctx context.Context, act usecase.Activation) {
	s.view.Fullscreen = act.Fullscreen
	address := act.URL
	if address == "" {
		address = act.Tab.URL
	}
	s.setAddress(address)
	s.relayout(ctx)
	s.tabs.ShowActive()
	s.repaint()
}

func (s *Shell) closeTab(ctx context.Context, index int) {
	res, ok := s.tabs.Close(ctx, index)
	if !ok {
		return
	}
	if res.WasLast {
		s.terminate(ctx, "last tab closed")
		return
	}
	if res.Activation != nil {
		s.applyActivation(ctx, *res.Activation)
		return
	}
	s.refresh(ctx)
}

func (s *Shell) handleFullscreenIntent(ctx context.Context, e FullscreenIntentChanged) {
	tab := s.tabs.Tabs().Find(e.ID)
	if tab == nil {
		s.discard(ctx, "fullscreen", e.ID)
		return
	}
	tab.FullscreenRequested = e.Wants
	if !s.tabs.Tabs().IsActive(e.ID) || s.view.Fullscreen == e.Wants {
		return
	}

	s.view.Fullscreen = e.Wants
	logging.FromContext(ctx).Info().
		Str("tab_id", string(e.ID)).
		Stringer("mode", s.view.Mode()).
		Msg("shell mode changed")
	s.refresh(ctx)
}

func (s *Shell) handleSourceChanged(ctx context.Context, e SourceChanged) {
	tab := s.tabs.Tabs().Find(e.ID)
	if tab == nil {
		s.discard(ctx, "source", e.ID)
		return
	}
	s.history.Record(e.URL)
	tab.URL = e.URL
	if s.tabs.Tabs().IsActive(e.ID) {
		s.setAddress(e.URL)
	}
	s.refresh(ctx)
}

func (s *Shell) handleTitleChanged(ctx context.Context, e TitleChanged) {
	tab := s.tabs.Tabs().Find(e.ID)
	if tab == nil {
		s.discard(ctx, "title", e.ID)
		return
	}
	tab.Title = e.Title
	s.repaint()
}

func (s *Shell) handlePointerDown(ctx context.Context, p entity.Point) {
	target := layout.Locate(p, s.regions)
	logging.FromContext(ctx).Trace().
		Int("x", p.X).Int("y", p.Y).
		Stringer("target", target).
		Msg("pointer down")

	switch target.Kind {
	case layout.TargetMinimize:
		s.handleCommand(ctx, CmdMinimize)
	case layout.TargetMaximize:
		s.handleCommand(ctx, CmdToggleMaximize)
	case layout.TargetClose:
		s.handleCommand(ctx, CmdQuit)
	case layout.TargetSidebarToggle:
		s.handleCommand(ctx, CmdToggleSidebar)
	case layout.TargetTab:
		s.activate(ctx, target.Index)
	case layout.TargetTabClose:
		s.closeTab(ctx, target.Index)
	case layout.TargetNewTab:
		s.openTab(ctx, "")
	case layout.TargetViewToggle:
		s.handleCommand(ctx, CmdToggleSidebarContent)
	case layout.TargetWidthToggle:
		s.handleCommand(ctx, CmdToggleSidebarWidth)
	case layout.TargetClearHistory:
		s.handleCommand(ctx, CmdClearHistory)
	case layout.TargetHistoryRow:
		entry, err := s.history.At(target.Index)
		if err != nil {
			return
		}
		s.navigateActive(ctx, entry)
	}
}

func (s *Shell) submitAddress(ctx context.Context, text string) {
	target := url.Resolve(text, s.shortcuts, s.searchURL)
	if target == "" {
		return
	}
	if s.tabs.ActiveSurface() == nil {
		s.openTab(ctx, target)
		return
	}
	s.navigateActive(ctx, target)
}

func (s *Shell) navigateActive(ctx context.Context, target string) {
	surface := s.tabs.ActiveSurface()
	if surface == nil {
		return
	}
	s.setAddress(target)
	if err := surface.Navigate(ctx, target); err != nil {
		logging.FromContext(ctx).Warn().Err(err).Str("url", target).Msg("navigation failed")
	}
	s.repaint()
}

func (s *Shell) applyConfig(cfg *config.Config) {
	s.homeURL = cfg.Browser.HomeURL
	s.searchURL = cfg.Browser.SearchURL
	s.shortcuts = cfg.Shortcuts()
	s.history.SetCapacity(cfg.History.Capacity)
	s.history.SetPolicy(entity.HistoryPolicy(cfg.History.Policy))
	s.metrics = s.baseMetrics.WithSidebarWidths(cfg.Sidebar.CompactWidth, cfg.Sidebar.ExpandedWidth)
}

// relayout recomputes regions and hands them to the active surface and
// the window.
func (s *Shell) relayout(ctx context.Context) {
	tabs := s.tabs.Tabs()
	s.regions = layout.Compute(layout.Input{
		Client:       s.client,
		View:         s.view,
		TabCount:     tabs.Count(),
		ActiveIndex:  tabs.ActiveIndex(),
		HistoryCount: s.history.Len(),
		Metrics:      s.metrics,
	})

	if surface := s.tabs.ActiveSurface(); surface != nil && !s.regions.Content.Empty() {
		if err := surface.SetBounds(ctx, s.metrics.DeviceRect(s.regions.Content)); err != nil {
			logging.FromContext(ctx).Debug().Err(err).Msg("failed to apply surface bounds")
		}
	}
	s.window.ApplyLayout(s.regions)
}

func (s *Shell) refresh(ctx context.Context) {
	s.relayout(ctx)
	s.repaint()
}

func (s *Shell) repaint() {
	s.coalescer.Post(repaintKey, s.window.Invalidate)
}

func (s *Shell) setAddress(text string) {
	if s.address == text {
		return
	}
	s.address = text
	s.window.SetAddress(text)
}

func (s *Shell) discard(ctx context.Context, what string, id entity.TabID) {
	logging.FromContext(ctx).Debug().
		Str("event", what).
		Str("tab_id", string(id)).
		Msg("discarding event for unknown tab")
}

func (s *Shell) terminate(ctx context.Context, reason string) {
	if s.terminated {
		return
	}
	s.terminated = true
	log := logging.FromContext(ctx)
	log.Info().Str("reason", reason).Msg("shell terminating")

	s.coalescer.Stop()
	if err := s.tabs.CloseAll(ctx); err != nil {
		log.Warn().Err(err).Msg("failed to close some surfaces")
	}
	s.window.Close()
	close(s.done)
}

// dropAfterTermination releases surfaces that complete after shutdown.
func (s *Shell) dropAfterTermination(ctx context.Context, ev Event) {
	created, ok := ev.(TabCreated)
	if !ok || created.Surface == nil {
		return
	}
	if err := created.Surface.Close(); err != nil {
		logging.FromContext(ctx).Debug().Err(err).Msg("failed to close late surface")
	}
}

// surfaceEvents marshals engine notifications onto the UI goroutine.
type surfaceEvents struct {
	shell *Shell
}

func (e surfaceEvents) SurfaceReady(id entity.TabID, surface port.ContentSurface, err error) {
	if !e.shell.Post(TabCreated{ID: id, Surface: surface, Err: err}) && surface != nil {
		_ = surface.Close()
	}
}

func (e surfaceEvents) SourceChanged(id entity.TabID, u string) {
	e.shell.Post(SourceChanged{ID: id, URL: u})
}

func (e surfaceEvents) TitleChanged(id entity.TabID, title string) {
	e.shell.Post(TitleChanged{ID: id, Title: title})
}

func (e surfaceEvents) FullscreenIntentChanged(id entity.TabID, wants bool) {
	e.shell.Post(FullscreenIntentChanged{ID: id, Wants: wants})
}
