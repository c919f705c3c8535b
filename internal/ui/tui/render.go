package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/sarf/internal/domain/entity"
	"github.com/bnema/sarf/internal/domain/layout"
	"github.com/bnema/sarf/internal/ui/coordinator"
)

const (
	glyphMinimize   = " _ "
	glyphMaximize   = " □ "
	glyphRestore    = " ❐ "
	glyphClose      = " × "
	glyphSidebar    = " ☰ "
	glyphNewTab     = " + "
	glyphHistory    = " ⚙ "
	glyphSettings   = " ↺ "
	glyphTabClose   = " ×"
	labelCompact    = "⇥ wider"
	labelExpanded   = "⇤ narrow"
	labelClear      = "Clear history"
	titleHistory    = "History"
	titleSettings   = "Settings"
	emptyStateTitle = "No tabs open"
)

// View implements tea.Model.
func (w *Window) View() string {
	if w.closed || w.shell == nil || w.width <= 0 || w.height <= 0 {
		return ""
	}
	snap := w.shell.Snapshot()
	c := newCanvas(w.width, w.height)

	if snap.Regions.Header != nil {
		w.drawHeader(c, snap)
	}
	if snap.Regions.Sidebar != nil {
		w.drawSidebar(c, snap)
	}
	w.drawContent(c, snap)
	return c.String()
}

func (w *Window) drawHeader(c *canvas, snap coordinator.Snapshot) {
	h := snap.Regions.Header
	st := w.styles

	put(c, h.Controls.Minimize, glyphMinimize, st.Control)
	maxGlyph := glyphMaximize
	if w.maximized {
		maxGlyph = glyphRestore
	}
	put(c, h.Controls.Maximize, maxGlyph, st.Control)
	put(c, h.Controls.Close, glyphClose, st.CloseButton)
	put(c, h.SidebarToggle, glyphSidebar, st.Toggle)

	if w.editing {
		c.putRaw(h.Address.X, h.Address.Y, h.Address.W, st.AddressEditing.Inline(true).Width(h.Address.W).Render(w.input.View()))
	} else {
		text := snap.Address
		if text == "" {
			text = w.input.Placeholder
		}
		put(c, h.Address, " "+text, st.Address)
	}

	for i, tab := range h.Tabs {
		if i >= len(snap.Tabs) {
			break
		}
		style := st.InactiveTab
		if snap.Tabs[i].Active {
			style = st.ActiveTab
		}
		put(c, tab.Title, " "+snap.Tabs[i].Title, style)
		put(c, tab.Close, glyphTabClose, st.TabClose)
	}
	put(c, h.NewTab, glyphNewTab, st.NewTab)

	sepY := h.Band.Bottom() - 1
	if sepY > h.TabBand.Bottom()-1 {
		c.put(0, sepY, h.Band.W, strings.Repeat("─", h.Band.W), st.Separator)
	}
}

func (w *Window) drawSidebar(c *canvas, snap coordinator.Snapshot) {
	s := snap.Regions.Sidebar
	st := w.styles

	title, toggle := titleHistory, glyphHistory
	if s.Mode == entity.SidebarSettings {
		title, toggle = titleSettings, glyphSettings
	}
	put(c, s.Title, title, st.SidebarTitle)
	put(c, s.ViewToggle, toggle, st.SidebarButton)

	widthLabel := labelCompact
	if s.Width == entity.SidebarExpanded {
		widthLabel = labelExpanded
	}
	put(c, s.WidthToggle, widthLabel, st.SidebarButton)

	borderX := s.Panel.Right() - 1
	for y := s.Panel.Y; y < s.Panel.Bottom(); y++ {
		c.put(borderX, y, 1, "│", st.SidebarBorder)
	}

	if s.Mode == entity.SidebarSettings {
		put(c, s.ClearHistory, " "+labelClear, st.Danger)
		return
	}
	for i, row := range s.HistoryRows {
		if i >= len(snap.History) {
			break
		}
		put(c, row, snap.History[i], st.HistoryRow)
	}
	if len(snap.History) == 0 && len(s.HistoryRows) == 0 {
		c.put(s.Panel.X+1, s.Panel.Y+w.metrics.HistoryTop, s.Panel.W-2, "Nothing visited yet", st.Muted)
	}
}

func (w *Window) drawContent(c *canvas, snap coordinator.Snapshot) {
	r := snap.Regions.Content
	if r.Empty() {
		return
	}
	st := w.styles
	x, y, width := r.X+2, r.Y+1, max(0, r.W-4)

	var active *coordinator.TabView
	for i := range snap.Tabs {
		if snap.Tabs[i].Active {
			active = &snap.Tabs[i]
			break
		}
	}

	if active == nil {
		title := emptyStateTitle
		if snap.Pending > 0 {
			title = fmt.Sprintf("Opening %d tab(s)…", snap.Pending)
		}
		c.put(x, y, width, title, st.ContentTitle)
		for i, b := range w.keys.ShortHelp() {
			help := b.Help()
			c.put(x, y+2+i, width, fmt.Sprintf("%-8s %s", help.Key, help.Desc), st.Muted)
		}
		return
	}

	c.put(x, y, width, active.Title, st.ContentTitle)
	c.put(x, y+1, width, active.URL, st.Muted)

	device := w.metrics.DeviceRect(r)
	engine := w.engine
	if engine == "" {
		engine = "headless engine"
	}
	c.put(x, y+3, width, fmt.Sprintf("Rendered by %s at %dx%d px", engine, device.W, device.H), st.ContentText)
	if snap.View.Fullscreen {
		c.put(x, y+4, width, "Fullscreen: press esc to leave", st.ContentText)
	}

	c.put(x, r.Bottom()-1, width, "zone: "+zoneLabel(w.hover), st.Muted)
}

func zoneLabel(z layout.Zone) string {
	if z.Draggable() {
		return z.String() + " (drag)"
	}
	return z.String()
}

func put(c *canvas, r entity.Rect, text string, style lipgloss.Style) {
	c.put(r.X, r.Y, r.W, text, style)
}
