// Package bootstrap wires configuration, logging, the content engine and
// the terminal window into a running browser.
package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/bnema/sarf/internal/application/usecase"
	"github.com/bnema/sarf/internal/config"
	"github.com/bnema/sarf/internal/domain/entity"
	"github.com/bnema/sarf/internal/domain/layout"
	"github.com/bnema/sarf/internal/domain/url"
	"github.com/bnema/sarf/internal/logging"
	"github.com/bnema/sarf/internal/ui/coordinator"
	"github.com/bnema/sarf/internal/ui/mainloop"
	"github.com/bnema/sarf/internal/ui/tui"
)

// initialClient is the terminal size assumed until the first resize.
var initialClient = entity.Size{Width: 80, Height: 24}

// BrowseOptions are the command line overrides of a browse run.
type BrowseOptions struct {
	// URL is opened in the first tab; empty opens the home page.
	URL string
	// Engine overrides engine.kind when set.
	Engine string
	// Headless overrides engine.headless when non-nil.
	Headless *bool
}

// Browse runs the terminal browser until the window closes or ctx ends.
func Browse(ctx context.Context, opts BrowseOptions) error {
	t0 := time.Now()

	mgr, err := config.NewManager()
	if err != nil {
		return err
	}
	if err := mgr.Load(); err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	cfg := mgr.Get()

	engineCfg := cfg.Engine
	if opts.Engine != "" {
		engineCfg.Kind = config.EngineKind(opts.Engine)
	}
	if opts.Headless != nil {
		engineCfg.Headless = *opts.Headless
	}

	logger, logCloser, err := NewFileLogger(cfg.Logging)
	if err != nil {
		return fmt.Errorf("open log file: %w", err)
	}
	defer func() { _ = logCloser.Close() }()

	ctx = logging.WithContext(ctx, logger)
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	log := logging.FromContext(ctx)
	logCoreDumpLimits(ctx)
	trace := logging.NewStartupTrace(t0, log)
	trace.Mark("config_loaded")

	metrics := layout.TerminalMetrics()
	factory, err := Engines().Open(
		logging.WithEngine(ctx, string(engineCfg.Kind)),
		string(engineCfg.Kind),
		EngineOptions(engineCfg, metrics, initialClient),
	)
	if err != nil {
		log.Error().Err(err).Msg("content engine failed to start")
		return err
	}
	defer func() {
		if cerr := factory.Close(); cerr != nil {
			log.Warn().Err(cerr).Msg("content engine shutdown failed")
		}
	}()
	trace.Mark("engine_started")

	loop := mainloop.New()
	defer loop.Close()

	window := tui.New(ctx, tui.Options{
		Loop:    loop,
		Metrics: metrics,
		Engine:  factory.Name(),
	})
	shell := coordinator.New(ctx, coordinator.Options{
		Loop:    loop,
		Tabs:    usecase.NewManageTabsUseCase(factory, usecase.UUIDGenerator()),
		Window:  window,
		Config:  cfg,
		Metrics: metrics,
		Client:  initialClient,
		Trace:   trace,
	})
	window.Attach(shell)

	mgr.OnConfigChange(func(next *config.Config) {
		shell.Post(coordinator.ConfigChanged{Config: next})
	})
	if err := mgr.Watch(ctx); err != nil {
		log.Warn().Err(err).Msg("config watching disabled")
	}

	start := opts.URL
	if start != "" {
		start = url.Resolve(start, cfg.Shortcuts(), cfg.Browser.SearchURL)
	}
	shell.Start(start)
	trace.Mark("shell_ready")

	program := tea.NewProgram(window,
		tea.WithAltScreen(),
		tea.WithMouseAllMotion(),
		tea.WithContext(ctx),
	)
	_, runErr := program.Run()

	// The program no longer owns the shell; finish on this goroutine.
	if !shell.Terminated() {
		shell.Dispatch(ctx, coordinator.CmdQuit)
	}

	if runErr != nil && !errors.Is(runErr, tea.ErrProgramKilled) {
		return fmt.Errorf("run terminal window: %w", runErr)
	}
	log.Info().Msg("sarf exited")
	return nil
}
