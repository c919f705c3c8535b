// Package port defines application-layer interfaces for external capabilities.
// Ports abstract the content engine and the window so the shell logic stays
// independent of chromedp, playwright or the terminal.
package port

import (
	"context"
	"errors"

	"github.com/bnema/sarf/internal/domain/entity"
)

// ErrSurfaceClosed is returned by surface operations after Close.
var ErrSurfaceClosed = errors.New("content surface closed")

// ContentSurface is one embeddable web-content unit backing a tab.
// Methods other than Close are called from the UI goroutine only.
//
//go:generate mockery --name=ContentSurface --with-expecter --output=mocks --outpkg=mocks --filename=mock_content_surface.go
type ContentSurface interface {
	// Navigate starts loading url. Completion is reported via SurfaceEvents.
	Navigate(ctx context.Context, url string) error
	// CurrentURL returns the last committed main-frame URL.
	CurrentURL() string
	// SetVisible shows or hides the surface.
	SetVisible(visible bool)
	// SetBounds positions the surface, in device pixels.
	SetBounds(ctx context.Context, bounds entity.Rect) error
	// FullscreenRequested returns the page's current fullscreen intent.
	FullscreenRequested() bool
	// ExitFullscreen asks the page to leave fullscreen.
	ExitFullscreen(ctx context.Context) error
	// Close releases the surface. Safe to call more than once.
	Close() error
}

// SurfaceEvents receives asynchronous notifications from surfaces.
// Implementations must be safe to call from any goroutine.
type SurfaceEvents interface {
	SurfaceReady(id entity.TabID, surface ContentSurface, err error)
	SourceChanged(id entity.TabID, url string)
	TitleChanged(id entity.TabID, title string)
	FullscreenIntentChanged(id entity.TabID, wants bool)
}

// SurfaceFactory creates content surfaces.
//
//go:generate mockery --name=SurfaceFactory --with-expecter --output=mocks --outpkg=mocks --filename=mock_surface_factory.go
type SurfaceFactory interface {
	// Create starts creating a surface for id and returns immediately.
	// The outcome is delivered exactly once through events.SurfaceReady,
	// after which notifications for id flow through the same events.
	Create(ctx context.Context, id entity.TabID, events SurfaceEvents)
	// Name identifies the engine in logs.
	Name() string
	// Close shuts the engine down.
	Close() error
}
