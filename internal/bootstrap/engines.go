package bootstrap

import (
	"github.com/bnema/sarf/internal/config"
	"github.com/bnema/sarf/internal/domain/entity"
	"github.com/bnema/sarf/internal/domain/layout"
	"github.com/bnema/sarf/internal/infrastructure/engine"
	"github.com/bnema/sarf/internal/infrastructure/engine/cdp"
	"github.com/bnema/sarf/internal/infrastructure/engine/pw"
)

// Engines returns every content engine sarf can drive.
func Engines() engine.Registry {
	return engine.Registry{
		cdp.Name: cdp.New,
		pw.Name:  pw.New,
	}
}

// EngineOptions maps the engine config to engine options. The initial
// viewport is the device size of the content area of client.
func EngineOptions(cfg config.EngineConfig, metrics layout.Metrics, client entity.Size) engine.Options {
	regions := layout.Compute(layout.Input{
		Client:  client,
		View:    entity.NewViewState(),
		Metrics: metrics,
	})
	device := metrics.DeviceRect(regions.Content)

	return engine.Options{
		Headless:  cfg.Headless,
		ExecPath:  cfg.ExecPath,
		UserAgent: cfg.UserAgent,
		Install:   cfg.Install,
		Viewport:  entity.Size{Width: device.W, Height: device.H},
	}
}
