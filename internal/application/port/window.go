package port

import "github.com/bnema/sarf/internal/domain/layout"

// Window is the windowing and painting collaborator.
// All methods are called from the UI goroutine.
//
//go:generate mockgen -source=window.go -destination=mocks/mock_window.go -package=mocks
type Window interface {
	// ApplyLayout hands the window the regions to draw chrome into.
	ApplyLayout(regions layout.Regions)
	// Invalidate requests a repaint.
	Invalidate()
	// SetAddress replaces the address display text.
	SetAddress(text string)
	Minimize()
	ToggleMaximize()
	// Close tears the window down.
	Close()
}
