// Package engine selects and configures the headless browser engine that
// backs content surfaces.
package engine

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/bnema/sarf/internal/application/port"
	"github.com/bnema/sarf/internal/domain/entity"
)

// ErrUnknownEngine is returned when no engine is registered under a name.
var ErrUnknownEngine = errors.New("unknown content engine")

// Options configures an engine.
type Options struct {
	Headless  bool
	ExecPath  string
	UserAgent string
	// Install fetches missing engine binaries before starting.
	Install bool
	// Viewport is the initial page size in device pixels.
	Viewport entity.Size
}

// DefaultViewport is used when Options.Viewport is empty.
var DefaultViewport = entity.Size{Width: 1280, Height: 800}

// ViewportOrDefault returns the configured viewport or DefaultViewport.
func (o Options) ViewportOrDefault() entity.Size {
	if o.Viewport.Width <= 0 || o.Viewport.Height <= 0 {
		return DefaultViewport
	}
	return o.Viewport
}

// Constructor starts an engine.
type Constructor func(ctx context.Context, opts Options) (port.SurfaceFactory, error)

// Registry maps engine names to constructors.
type Registry map[string]Constructor

// Names returns the registered engine names, sorted.
func (r Registry) Names() []string {
	names := make([]string, 0, len(r))
	for name := range r {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Open starts the engine registered under name.
func (r Registry) Open(ctx context.Context, name string, opts Options) (port.SurfaceFactory, error) {
	ctor, ok := r[strings.ToLower(name)]
	if !ok {
		return nil, fmt.Errorf("%w: %q (available: %s)", ErrUnknownEngine, name, strings.Join(r.Names(), ", "))
	}
	factory, err := ctor(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("start %s engine: %w", name, err)
	}
	return factory, nil
}
