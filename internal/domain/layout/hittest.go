package layout

import (
	"fmt"

	"github.com/bnema/sarf/internal/domain/entity"
)

// ZoneKind is the drag-vs-client classification of a point.
type ZoneKind int

const (
	// ZoneDefault leaves the point to default handling (content or sidebar).
	ZoneDefault ZoneKind = iota
	// ZoneCaption lets the window system move the window.
	ZoneCaption
	// ZoneClient is interactive chrome handled by the shell.
	ZoneClient
	// ZoneTab is the body of tab Index.
	ZoneTab
	// ZoneTabClose is the close button of tab Index.
	ZoneTabClose
)

var zoneNames = map[ZoneKind]string{
	ZoneDefault:  "default",
	ZoneCaption:  "caption",
	ZoneClient:   "client",
	ZoneTab:      "tab",
	ZoneTabClose: "tab-close",
}

func (k ZoneKind) String() string {
	if name, ok := zoneNames[k]; ok {
		return name
	}
	return "unknown"
}

// Zone is the result of a hit test. Index is -1 unless Kind is a tab zone.
type Zone struct {
	Kind  ZoneKind
	Index int
}

// Draggable reports whether a press in the zone should move the window.
func (z Zone) Draggable() bool {
	return z.Kind == ZoneCaption
}

func (z Zone) String() string {
	if z.Kind == ZoneTab || z.Kind == ZoneTabClose {
		return fmt.Sprintf("%s(%d)", z.Kind, z.Index)
	}
	return z.Kind.String()
}

// Classify maps a point to its zone, in priority order: window controls,
// address input and sidebar toggle, tab band, remaining header (caption),
// everything else (default). In fullscreen every point is content.
func Classify(p entity.Point, r Regions) Zone {
	client := Zone{Kind: ZoneClient, Index: -1}
	h := r.Header
	if r.Fullscreen || h == nil {
		return Zone{Kind: ZoneDefault, Index: -1}
	}

	if h.Controls.Cluster.Contains(p) {
		return client
	}
	if h.Band.Contains(p) && (h.Address.Contains(p) || h.SidebarToggle.Contains(p)) {
		return client
	}
	if h.TabBand.Contains(p) {
		if i, closeHit, ok := h.tabAt(p); ok {
			if closeHit {
				return Zone{Kind: ZoneTabClose, Index: i}
			}
			return Zone{Kind: ZoneTab, Index: i}
		}
		return client
	}
	if h.Band.Contains(p) {
		return Zone{Kind: ZoneCaption, Index: -1}
	}
	return Zone{Kind: ZoneDefault, Index: -1}
}

// ClassifyAt computes the regions for in and classifies p against them.
func ClassifyAt(p entity.Point, in Input) Zone {
	return Classify(p, Compute(in))
}

func (h *Header) tabAt(p entity.Point) (index int, closeHit, ok bool) {
	for i, tab := range h.Tabs {
		if tab.Close.Contains(p) {
			return i, true, true
		}
		if tab.Bounds.Contains(p) {
			return i, false, true
		}
	}
	return -1, false, false
}

// TargetKind names what a pointer press landed on.
type TargetKind int

const (
	TargetNone TargetKind = iota
	TargetCaption
	TargetMinimize
	TargetMaximize
	TargetClose
	TargetSidebarToggle
	TargetAddress
	TargetTab
	TargetTabClose
	TargetNewTab
	TargetViewToggle
	TargetWidthToggle
	TargetHistoryRow
	TargetClearHistory
	TargetSidebar
	TargetContent
)

var targetNames = [...]string{
	TargetNone:          "none",
	TargetCaption:       "caption",
	TargetMinimize:      "minimize",
	TargetMaximize:      "maximize",
	TargetClose:         "close",
	TargetSidebarToggle: "sidebar-toggle",
	TargetAddress:       "address",
	TargetTab:           "tab",
	TargetTabClose:      "tab-close",
	TargetNewTab:        "new-tab",
	TargetViewToggle:    "view-toggle",
	TargetWidthToggle:   "width-toggle",
	TargetHistoryRow:    "history-row",
	TargetClearHistory:  "clear-history",
	TargetSidebar:       "sidebar",
	TargetContent:       "content",
}

func (k TargetKind) String() string {
	if int(k) < len(targetNames) {
		return targetNames[k]
	}
	return "unknown"
}

// Target is the element under a pointer press. Index is set for tabs and
// history rows, -1 otherwise.
type Target struct {
	Kind  TargetKind
	Index int
}

func (t Target) String() string {
	if t.Index >= 0 {
		return fmt.Sprintf("%s(%d)", t.Kind, t.Index)
	}
	return t.Kind.String()
}

// Locate finds the element under p.
func Locate(p entity.Point, r Regions) Target {
	none := Target{Kind: TargetNone, Index: -1}
	if !r.Client.Contains(p) {
		return none
	}
	if r.Fullscreen {
		return Target{Kind: TargetContent, Index: -1}
	}

	if h := r.Header; h != nil && h.Band.Contains(p) {
		return locateHeader(p, h)
	}
	if s := r.Sidebar; s != nil && s.Panel.Contains(p) {
		return locateSidebar(p, s)
	}
	if r.Content.Contains(p) {
		return Target{Kind: TargetContent, Index: -1}
	}
	return none
}

func locateHeader(p entity.Point, h *Header) Target {
	simple := []struct {
		rect entity.Rect
		kind TargetKind
	}{
		{h.Controls.Close, TargetClose},
		{h.Controls.Maximize, TargetMaximize},
		{h.Controls.Minimize, TargetMinimize},
		{h.SidebarToggle, TargetSidebarToggle},
		{h.Address, TargetAddress},
		{h.NewTab, TargetNewTab},
	}
	for _, s := range simple {
		if s.rect.Contains(p) {
			return Target{Kind: s.kind, Index: -1}
		}
	}
	if i, closeHit, ok := h.tabAt(p); ok {
		if closeHit {
			return Target{Kind: TargetTabClose, Index: i}
		}
		return Target{Kind: TargetTab, Index: i}
	}
	if h.Controls.Cluster.Contains(p) || h.TabBand.Contains(p) {
		return Target{Kind: TargetNone, Index: -1}
	}
	return Target{Kind: TargetCaption, Index: -1}
}

func locateSidebar(p entity.Point, s *Sidebar) Target {
	switch {
	case s.ViewToggle.Contains(p):
		return Target{Kind: TargetViewToggle, Index: -1}
	case s.WidthToggle.Contains(p):
		return Target{Kind: TargetWidthToggle, Index: -1}
	case s.Mode == entity.SidebarSettings && s.ClearHistory.Contains(p):
		return Target{Kind: TargetClearHistory, Index: -1}
	}
	if s.Mode == entity.SidebarHistory {
		for i, row := range s.HistoryRows {
			if row.Contains(p) {
				return Target{Kind: TargetHistoryRow, Index: i}
			}
		}
	}
	return Target{Kind: TargetSidebar, Index: -1}
}
