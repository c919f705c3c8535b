// Package layout derives the window regions and hit-test zones of the shell
// from its state. Everything here is pure: no I/O, no mutation.
package layout

import "github.com/bnema/sarf/internal/domain/entity"

// Metrics holds the fixed dimensions of the shell chrome, in layout units.
// Sidebar furniture rectangles are relative to the sidebar panel origin.
type Metrics struct {
	// Device pixels per layout unit, used when bounds are handed to surfaces.
	UnitWidth  int
	UnitHeight int

	HeaderHeight int

	ControlWidth         int
	ControlHeight        int
	ControlClusterWidth  int
	ControlClusterHeight int

	SidebarToggle entity.Rect

	AddressTop      int
	AddressHeight   int
	AddressMargin   int
	AddressMaxWidth int

	TabTop        int
	TabHeight     int
	TabBandHeight int
	TabLeft       int
	TabWidth      int
	TabGap        int
	TabCloseWidth int

	NewTabWidth  int
	NewTabHeight int
	NewTabOffset int // vertical offset from TabTop

	SidebarCompact  int
	SidebarExpanded int

	SidebarTitle    entity.Rect
	ViewToggleInset int // distance of the view toggle from the panel's right edge
	ViewToggle      entity.Rect
	WidthToggle     entity.Rect

	HistoryTop          int
	HistoryStep         int
	HistoryRowHeight    int
	HistoryInsetLeft    int
	HistoryInsetRight   int
	HistoryBottomMargin int

	ClearHistory entity.Rect
}

// PixelMetrics returns the dimensions of the desktop window, in pixels.
func PixelMetrics() Metrics {
	return Metrics{
		UnitWidth:  1,
		UnitHeight: 1,

		HeaderHeight: 105,

		ControlWidth:         45,
		ControlHeight:        30,
		ControlClusterWidth:  140,
		ControlClusterHeight: 32,

		SidebarToggle: entity.Rect{X: 12, Y: 12, W: 36, H: 36},

		AddressTop:      15,
		AddressHeight:   30,
		AddressMargin:   450,
		AddressMaxWidth: 600,

		TabTop:        65,
		TabHeight:     32,
		TabBandHeight: 36,
		TabLeft:       10,
		TabWidth:      180,
		TabGap:        5,
		TabCloseWidth: 30,

		NewTabWidth:  28,
		NewTabHeight: 28,
		NewTabOffset: 2,

		SidebarCompact:  260,
		SidebarExpanded: 550,

		SidebarTitle:    entity.Rect{X: 15, Y: 15, W: 130, H: 20},
		ViewToggleInset: 45,
		ViewToggle:      entity.Rect{Y: 10, W: 35, H: 25},
		WidthToggle:     entity.Rect{X: 150, Y: 12, W: 50, H: 22},

		HistoryTop:          50,
		HistoryStep:         35,
		HistoryRowHeight:    20,
		HistoryInsetLeft:    15,
		HistoryInsetRight:   20,
		HistoryBottomMargin: 30,

		ClearHistory: entity.Rect{X: 20, Y: 60, W: 220, H: 40},
	}
}

// TerminalMetrics returns the dimensions of the terminal window, in cells.
func TerminalMetrics() Metrics {
	return Metrics{
		UnitWidth:  8,
		UnitHeight: 16,

		HeaderHeight: 5,

		ControlWidth:         3,
		ControlHeight:        1,
		ControlClusterWidth:  10,
		ControlClusterHeight: 1,

		SidebarToggle: entity.Rect{X: 1, Y: 1, W: 3, H: 1},

		AddressTop:      1,
		AddressHeight:   1,
		AddressMargin:   24,
		AddressMaxWidth: 72,

		TabTop:        3,
		TabHeight:     1,
		TabBandHeight: 1,
		TabLeft:       1,
		TabWidth:      20,
		TabGap:        1,
		TabCloseWidth: 3,

		NewTabWidth:  3,
		NewTabHeight: 1,

		SidebarCompact:  28,
		SidebarExpanded: 48,

		SidebarTitle:    entity.Rect{X: 1, Y: 1, W: 16, H: 1},
		ViewToggleInset: 4,
		ViewToggle:      entity.Rect{W: 3, H: 1},
		WidthToggle:     entity.Rect{X: 1, W: 8, H: 1},

		HistoryTop:          3,
		HistoryStep:         1,
		HistoryRowHeight:    1,
		HistoryInsetLeft:    1,
		HistoryInsetRight:   1,
		HistoryBottomMargin: 1,

		ClearHistory: entity.Rect{X: 1, Y: 3, W: 17, H: 1},
	}
}

// WithSidebarWidths overrides the sidebar widths. Non-positive values keep
// the preset.
func (m Metrics) WithSidebarWidths(compact, expanded int) Metrics {
	if compact > 0 {
		m.SidebarCompact = compact
	}
	if expanded > 0 {
		m.SidebarExpanded = expanded
	}
	return m
}

// SidebarWidth returns the panel width for a width mode.
func (m Metrics) SidebarWidth(mode entity.SidebarWidthMode) int {
	if mode == entity.SidebarExpanded {
		return m.SidebarExpanded
	}
	return m.SidebarCompact
}

// TabStride is the horizontal distance between two tab origins.
func (m Metrics) TabStride() int {
	return m.TabWidth + m.TabGap
}

// DeviceRect converts a rectangle from layout units to device pixels.
func (m Metrics) DeviceRect(r entity.Rect) entity.Rect {
	uw, uh := m.UnitWidth, m.UnitHeight
	if uw <= 0 {
		uw = 1
	}
	if uh <= 0 {
		uh = 1
	}
	return entity.Rect{X: r.X * uw, Y: r.Y * uh, W: r.W * uw, H: r.H * uh}
}
