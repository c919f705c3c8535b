// Package pw implements content surfaces on Chromium driven by Playwright,
// one browser context per tab.
package pw

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sync"

	"github.com/playwright-community/playwright-go"
	"github.com/rs/zerolog"

	"github.com/bnema/sarf/internal/application/port"
	"github.com/bnema/sarf/internal/domain/entity"
	"github.com/bnema/sarf/internal/infrastructure/engine"
	"github.com/bnema/sarf/internal/logging"
)

// Name is the registry key of this engine.
const Name = "playwright"

// Factory creates one browser context and page per surface.
type Factory struct {
	opts    engine.Options
	log     zerolog.Logger
	pw      *playwright.Playwright
	browser playwright.Browser

	mu     sync.Mutex
	wg     sync.WaitGroup
	closed bool
}

var _ port.SurfaceFactory = (*Factory)(nil)

// New starts the Playwright driver and launches Chromium.
func New(ctx context.Context, opts engine.Options) (port.SurfaceFactory, error) {
	log := logging.FromContext(ctx).With().Str("engine", Name).Logger()

	runOpts := &playwright.RunOptions{
		Browsers: []string{"chromium"},
		Verbose:  false,
		Stdout:   io.Discard,
		Stderr:   io.Discard,
	}
	if opts.Install {
		log.Info().Msg("installing playwright driver and chromium")
		if err := playwright.Install(runOpts); err != nil {
			return nil, fmt.Errorf("install playwright: %w", err)
		}
	}

	pw, err := playwright.Run(runOpts)
	if err != nil {
		return nil, fmt.Errorf("start playwright: %w", err)
	}

	launch := playwright.BrowserTypeLaunchOptions{
		Headless: playwright.Bool(opts.Headless),
	}
	if opts.ExecPath != "" {
		launch.ExecutablePath = playwright.String(opts.ExecPath)
	}
	browser, err := pw.Chromium.Launch(launch)
	if err != nil {
		if stopErr := pw.Stop(); stopErr != nil {
			log.Warn().Err(stopErr).Msg("failed to stop playwright")
		}
		return nil, fmt.Errorf("launch chromium: %w", err)
	}

	log.Info().Bool("headless", opts.Headless).Str("version", browser.Version()).Msg("chromium started")
	return &Factory{opts: opts, log: log, pw: pw, browser: browser}, nil
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
		defer logging.RecoverGoroutine(logCtx, "pw.Create")

		surface, err := f.open(logCtx, id, events)
		if err != nil {
			events.SurfaceReady(id, nil, err)
			return
		}
		events.SurfaceReady(id, surface, nil)
	}()
}

func (f *Factory) open(logCtx context.Context, id entity.TabID, events port.SurfaceEvents) (*Surface, error) {
	vp := f.opts.ViewportOrDefault()
	ctxOpts := playwright.BrowserNewContextOptions{
		Viewport: &playwright.Size{Width: vp.Width, Height: vp.Height},
	}
	if f.opts.UserAgent != "" {
		ctxOpts.UserAgent = playwright.String(f.opts.UserAgent)
	}

	bctx, err := f.browser.NewContext(ctxOpts)
	if err != nil {
		return nil, fmt.Errorf("create browser context: %w", err)
	}
	page, err := bctx.NewPage()
	if err != nil {
		_ = bctx.Close()
		return nil, fmt.Errorf("create page: %w", err)
	}

	s := &Surface{id: id, page: page, bctx: bctx, logCtx: logCtx}
	if err := page.ExposeFunction(engine.BindingName, func(args ...any) any {
		s.handleBinding(args, events)
		return nil
	}); err != nil {
		_ = bctx.Close()
		return nil, fmt.Errorf("expose bridge: %w", err)
	}
	if err := page.AddInitScript(playwright.Script{Content: playwright.String(engine.BridgeScript)}); err != nil {
		_ = bctx.Close()
		return nil, fmt.Errorf("add bridge script: %w", err)
	}
	page.OnFrameNavigated(func(frame playwright.Frame) {
		s.handleNavigated(frame.URL(), frame.ParentFrame() == nil, events)
	})

	logging.FromContext(logCtx).Debug().Msg("playwright page ready")
	return s, nil
}

// Close closes Chromium and stops the driver.
func (f *Factory) Close() error {
	f.mu.Lock()
	if f.closed {
		f.mu.Unlock()
		return nil
	}
	f.closed = true
	f.mu.Unlock()

	f.wg.Wait()
	var errs []error
	if f.browser != nil {
		if err := f.browser.Close(); err != nil {
			errs = append(errs, fmt.Errorf("close chromium: %w", err))
		}
	}
	if f.pw != nil {
		if err := f.pw.Stop(); err != nil {
			errs = append(errs, fmt.Errorf("stop playwright: %w", err))
		}
	}
	f.log.Info().Msg("playwright stopped")
	return errors.Join(errs...)
}

// Surface is one Playwright page in its own browser context.
type Surface struct {
	id     entity.TabID
	page   playwright.Page
	bctx   playwright.BrowserContext
	logCtx context.Context
	state  engine.State
}

var _ port.ContentSurface = (*Surface)(nil)

func (s *Surface) handleNavigated(url string, mainFrame bool, events port.SurfaceEvents) {
	if !mainFrame {
		return
	}
	if s.state.SetURL(url) {
		events.SourceChanged(s.id, url)
	}
}

func (s *Surface) handleBinding(args []any, events port.SurfaceEvents) {
	if len(args) == 0 {
		return
	}
	raw, ok := args[0].(string)
	if !ok {
		return
	}
	p, err := engine.ParsePayload(raw)
	if err != nil {
		logging.FromContext(s.logCtx).Debug().Err(err).Msg("ignoring bridge message")
		return
	}
	engine.Deliver(s.id, &s.state, p, events)
}

// async runs fn off the caller's goroutine. Playwright calls block on the
// driver round trip and must not run inside event handlers.
func (s *Surface) async(what string, fn func() error) {
	go func() {
		defer logging.RecoverGoroutine(s.logCtx, "pw."+what)
		if err := fn(); err != nil && !s.state.Closed() {
			logging.FromContext(s.logCtx).Warn().Err(err).Str("action", what).Msg("playwright action failed")
		}
	}()
}

// Navigate implements port.ContentSurface.
func (s *Surface) Navigate(_ context.Context, url string) error {
	if s.state.Closed() {
		return port.ErrSurfaceClosed
	}
	s.async("navigate", func() error {
		_, err := s.page.Goto(url)
		return err
	})
	return nil
}

// CurrentURL implements port.ContentSurface.
func (s *Surface) CurrentURL() string { return s.state.URL() }

// SetVisible implements port.ContentSurface.
func (s *Surface) SetVisible(visible bool) {
	if !s.state.SetVisible(visible) || !visible || s.state.Closed() {
		return
	}
	s.async("bring-to-front", s.page.BringToFront)
}

// SetBounds implements port.ContentSurface. Only the size reaches the page.
func (s *Surface) SetBounds(_ context.Context, bounds entity.Rect) error {
	if s.state.Closed() {
		return port.ErrSurfaceClosed
	}
	if bounds.Empty() || !s.state.SetBounds(bounds) {
		return nil
	}
	s.async("viewport", func() error {
		return s.page.SetViewportSize(bounds.W, bounds.H)
	})
	return nil
}

// FullscreenRequested implements port.ContentSurface.
func (s *Surface) FullscreenRequested() bool { return s.state.Fullscreen() }

// ExitFullscreen implements port.ContentSurface.
func (s *Surface) ExitFullscreen(_ context.Context) error {
	if s.state.Closed() {
		return port.ErrSurfaceClosed
	}
	s.async("exit-fullscreen", func() error {
		_, err := s.page.Evaluate(engine.ExitFullscreenScript)
		return err
	})
	return nil
}

// Close implements port.ContentSurface.
func (s *Surface) Close() error {
	if !s.state.MarkClosed() {
		return nil
	}
	if s.bctx == nil {
		return nil
	}
	if err := s.bctx.Close(); err != nil {
		return fmt.Errorf("close browser context: %w", err)
	}
	return nil
}
