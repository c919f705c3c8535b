// Package cdp implements content surfaces on Chrome through the DevTools
// protocol, one browser target per tab.
package cdp

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/chromedp/cdproto/page"
	cdpruntime "github.com/chromedp/cdproto/runtime"
	"github.com/chromedp/chromedp"
	"github.com/rs/zerolog"

	"github.com/bnema/sarf/internal/application/port"
	"github.com/bnema/sarf/internal/domain/entity"
	"github.com/bnema/sarf/internal/infrastructure/engine"
	"github.com/bnema/sarf/internal/logging"
)

// Name is the registry key of this engine.
const Name = "chromedp"

// Factory creates one Chrome target per surface on a shared browser.
type Factory struct {
	opts engine.Options
	log  zerolog.Logger

	allocCtx      context.Context
	cancelAlloc   context.CancelFunc
	browserCtx    context.Context
	cancelBrowser context.CancelFunc

	mu     sync.Mutex
	wg     sync.WaitGroup
	closed bool
}

var _ port.SurfaceFactory = (*Factory)(nil)

// New launches Chrome and returns a factory for its tabs.
func New(ctx context.Context, opts engine.Options) (port.SurfaceFactory, error) {
	log := logging.FromContext(ctx).With().Str("engine", Name).Logger()
	vp := opts.ViewportOrDefault()

	allocOpts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.WindowSize(vp.Width, vp.Height),
	)
	if !opts.Headless {
		allocOpts = append(allocOpts, chromedp.Flag("headless", false))
	}
	if opts.ExecPath != "" {
		allocOpts = append(allocOpts, chromedp.ExecPath(opts.ExecPath))
	}
	if opts.UserAgent != "" {
		allocOpts = append(allocOpts, chromedp.UserAgent(opts.UserAgent))
	}

	// The browser outlives the caller's context; Close tears it down.
	allocCtx, cancelAlloc := chromedp.NewExecAllocator(context.Background(), allocOpts...)
	browserCtx, cancelBrowser := chromedp.NewContext(allocCtx,
		chromedp.WithLogf(func(format string, args ...any) { log.Debug().Msgf(format, args...) }),
		chromedp.WithErrorf(func(format string, args ...any) { log.Warn().Msgf(format, args...) }),
	)
	if err := chromedp.Run(browserCtx); err != nil {
		cancelBrowser()
		cancelAlloc()
		return nil, fmt.Errorf("launch chrome: %w", err)
	}

	log.Info().Bool("headless", opts.Headless).Str("exec_path", opts.ExecPath).Msg("chrome started")
	return &Factory{
		opts:          opts,
		log:           log,
		allocCtx:      allocCtx,
		cancelAlloc:   cancelAlloc,
		browserCtx:    browserCtx,
		cancelBrowser: cancelBrowser,
	}, nil
}

// Name implements port.SurfaceFactory.
func (f *Factory) Name() string { return Name }

// Create implements port.SurfaceFactory.
func (f *Factory) Create(ctx context.Context, id entity.TabID, events port.SurfaceEvents) {
	f.mu.Lock()
	if f.closed {
		f.mu.Unlock()
		events.SurfaceReady(id, nil, port.ErrSurfaceClosed)
		return
	}
	f.wg.Add(1)
	f.mu.Unlock()

	logCtx := logging.WithTabID(logging.WithEngine(ctx, Name), string(id))
	go func() {
		defer f.wg.Done()
		defer logging.RecoverGoroutine(logCtx, "cdp.Create")

		surface, err := f.open(logCtx, id, events)
		if err != nil {
			events.SurfaceReady(id, nil, err)
			return
		}
		events.SurfaceReady(id, surface, nil)
	}()
}

func (f *Factory) open(logCtx context.Context, id entity.TabID, events port.SurfaceEvents) (*Surface, error) {
	tabCtx, cancel := chromedp.NewContext(f.browserCtx)
	s := &Surface{
		id:     id,
		ctx:    tabCtx,
		cancel: cancel,
		logCtx: logCtx,
	}
	chromedp.ListenTarget(tabCtx, func(ev any) { s.handleEvent(ev, events) })

	vp := f.opts.ViewportOrDefault()
	err := chromedp.Run(tabCtx,
		cdpruntime.AddBinding(engine.BindingName),
		chromedp.ActionFunc(func(ctx context.Context) error {
			_, err := page.AddScriptToEvaluateOnNewDocument(engine.BridgeScript).Do(ctx)
			return err
		}),
		chromedp.EmulateViewport(int64(vp.Width), int64(vp.Height)),
	)
	if err != nil {
		cancel()
		return nil, fmt.Errorf("create chrome target: %w", err)
	}

	logging.FromContext(logCtx).Debug().Msg("chrome target ready")
	return s, nil
}

// Close shuts the browser down after in-flight creations settle.
func (f *Factory) Close() error {
	f.mu.Lock()
	if f.closed {
		f.mu.Unlock()
		return nil
	}
	f.closed = true
	f.mu.Unlock()

	f.wg.Wait()
	err := chromedp.Cancel(f.browserCtx)
	f.cancelBrowser()
	f.cancelAlloc()
	if err != nil && !errors.Is(err, context.Canceled) {
		return fmt.Errorf("stop chrome: %w", err)
	}
	f.log.Info().Msg("chrome stopped")
	return nil
}

// Surface is one Chrome target.
type Surface struct {
	id     entity.TabID
	ctx    context.Context
	cancel context.CancelFunc
	logCtx context.Context
	state  engine.State
}

var _ port.ContentSurface = (*Surface)(nil)

func (s *Surface) handleEvent(ev any, events port.SurfaceEvents) {
	switch e := ev.(type) {
	case *page.EventFrameNavigated:
		if e.Frame == nil || e.Frame.ParentID != "" {
			return
		}
		s.state.SetMainFrame(string(e.Frame.ID))
		s.committed(e.Frame.URL+e.Frame.URLFragment, events)
	case *page.EventNavigatedWithinDocument:
		if s.state.IsMainFrame(string(e.FrameID)) {
			s.committed(e.URL, events)
		}
	case *cdpruntime.EventBindingCalled:
		if e.Name != engine.BindingName {
			return
		}
		p, err := engine.ParsePayload(e.Payload)
		if err != nil {
			logging.FromContext(s.logCtx).Debug().Err(err).Msg("ignoring bridge message")
			return
		}
		engine.Deliver(s.id, &s.state, p, events)
	}
}

func (s *Surface) committed(url string, events port.SurfaceEvents) {
	if s.state.SetURL(url) {
		events.SourceChanged(s.id, url)
	}
}

// async runs actions on the target without blocking the caller.
func (s *Surface) async(what string, actions ...chromedp.Action) {
	go func() {
		defer logging.RecoverGoroutine(s.logCtx, "cdp."+what)
		if err := chromedp.Run(s.ctx, actions...); err != nil && !s.state.Closed() {
			logging.FromContext(s.logCtx).Warn().Err(err).Str("action", what).Msg("chrome action failed")
		}
	}()
}

// Navigate implements port.ContentSurface.
func (s *Surface) Navigate(_ context.Context, url string) error {
	if s.state.Closed() {
		return port.ErrSurfaceClosed
	}
	s.async("navigate", chromedp.Navigate(url))
	return nil
}

// CurrentURL implements port.ContentSurface.
func (s *Surface) CurrentURL() string { return s.state.URL() }

// SetVisible implements port.ContentSurface. Headless targets have no
// visibility of their own; showing one brings it to the front.
func (s *Surface) SetVisible(visible bool) {
	if !s.state.SetVisible(visible) || !visible || s.state.Closed() {
		return
	}
	s.async("bring-to-front", chromedp.ActionFunc(func(ctx context.Context) error {
		return page.BringToFront().Do(ctx)
	}))
}

// SetBounds implements port.ContentSurface. Only the size reaches the page.
func (s *Surface) SetBounds(_ context.Context, bounds entity.Rect) error {
	if s.state.Closed() {
		return port.ErrSurfaceClosed
	}
	if bounds.Empty() || !s.state.SetBounds(bounds) {
		return nil
	}
	s.async("viewport", chromedp.EmulateViewport(int64(bounds.W), int64(bounds.H)))
	return nil
}

// FullscreenRequested implements port.ContentSurface.
func (s *Surface) FullscreenRequested() bool { return s.state.Fullscreen() }

// ExitFullscreen implements port.ContentSurface.
func (s *Surface) ExitFullscreen(_ context.Context) error {
	if s.state.Closed() {
		return port.ErrSurfaceClosed
	}
	s.async("exit-fullscreen", chromedp.ActionFunc(func(ctx context.Context) error {
		_, exc, err := cdpruntime.Evaluate(engine.ExitFullscreenScript).Do(ctx)
		if err != nil {
			return err
		}
		if exc != nil {
			return fmt.Errorf("exit fullscreen: %s", exc.Text)
		}
		return nil
	}))
	return nil
}

// Close implements port.ContentSurface.
func (s *Surface) Close() error {
	if !s.state.MarkClosed() {
		return nil
	}
	err := chromedp.Cancel(s.ctx)
	s.cancel()
	if err != nil && !errors.Is(err, context.Canceled) && !errors.Is(err, chromedp.ErrInvalidContext) {
		return fmt.Errorf("close chrome target: %w", err)
	}
	return nil
}
