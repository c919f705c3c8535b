package layout

import "github.com/bnema/sarf/internal/domain/entity"

// Input is everything the layout depends on.
type Input struct {
	Client       entity.Size
	View         entity.ViewState
	TabCount     int
	ActiveIndex  int
	HistoryCount int
	Metrics      Metrics
}

// Regions names every rectangle of the window for one state.
// In fullscreen only Client and Content are set.
type Regions struct {
	Client      entity.Rect
	Content     entity.Rect
	Fullscreen  bool
	ActiveIndex int

	Header  *Header  // nil in fullscreen
	Sidebar *Sidebar // nil when closed or in fullscreen
}

// Header is the top band: window controls, address input and tab strip.
type Header struct {
	Band          entity.Rect
	Controls      Controls
	SidebarToggle entity.Rect
	Address       entity.Rect
	TabBand       entity.Rect
	Tabs          []TabRect
	NewTab        entity.Rect
}

// Controls are the minimize/maximize/close buttons and their cluster.
type Controls struct {
	Cluster  entity.Rect
	Minimize entity.Rect
	Maximize entity.Rect
	Close    entity.Rect
}

// TabRect is one tab of the strip, split into title and close button.
type TabRect struct {
	Bounds entity.Rect
	Title  entity.Rect
	Close  entity.Rect
}

// Sidebar is the left panel and its furniture.
type Sidebar struct {
	Panel       entity.Rect
	Width       entity.SidebarWidthMode
	Mode        entity.SidebarContentMode
	Title       entity.Rect
	ViewToggle  entity.Rect
	WidthToggle entity.Rect

	HistoryRows  []entity.Rect // History mode only
	ClearHistory entity.Rect   // Settings mode only
}

// Compute derives the regions for in.
func Compute(in Input) Regions {
	m := in.Metrics
	client := entity.RectFromSize(in.Client)

	regions := Regions{
		Client:      client,
		Fullscreen:  in.View.Fullscreen,
		ActiveIndex: in.ActiveIndex,
	}
	if in.View.Fullscreen {
		regions.Content = client
		return regions
	}

	headerH := min(m.HeaderHeight, client.H)
	sidebarW := 0
	if in.View.SidebarOpen {
		sidebarW = min(m.SidebarWidth(in.View.SidebarWidth), client.W)
	}

	regions.Content = entity.Rect{
		X: sidebarW,
		Y: headerH,
		W: max(0, client.W-sidebarW),
		H: max(0, client.H-headerH),
	}
	regions.Header = computeHeader(m, client, headerH, in.TabCount)
	if in.View.SidebarOpen {
		regions.Sidebar = computeSidebar(m, client, headerH, sidebarW, in)
	}
	return regions
}

func computeHeader(m Metrics, client entity.Rect, headerH, tabCount int) *Header {
	h := &Header{
		Band:          entity.Rect{W: client.W, H: headerH},
		SidebarToggle: m.SidebarToggle,
		TabBand:       entity.Rect{Y: m.TabTop, W: client.W, H: m.TabBandHeight},
	}

	right := client.W
	h.Controls = Controls{
		Cluster:  entity.Rect{X: right - m.ControlClusterWidth, W: m.ControlClusterWidth, H: m.ControlClusterHeight},
		Close:    entity.Rect{X: right - m.ControlWidth, W: m.ControlWidth, H: m.ControlHeight},
		Maximize: entity.Rect{X: right - 2*m.ControlWidth, W: m.ControlWidth, H: m.ControlHeight},
		Minimize: entity.Rect{X: right - 3*m.ControlWidth, W: m.ControlWidth, H: m.ControlHeight},
	}

	editW := max(0, min(client.W-m.AddressMargin, m.AddressMaxWidth))
	h.Address = entity.Rect{X: (client.W - editW) / 2, Y: m.AddressTop, W: editW, H: m.AddressHeight}

	h.Tabs = make([]TabRect, tabCount)
	for i := range h.Tabs {
		bounds := entity.Rect{X: m.TabLeft + i*m.TabStride(), Y: m.TabTop, W: m.TabWidth, H: m.TabHeight}
		h.Tabs[i] = TabRect{
			Bounds: bounds,
			Title:  entity.Rect{X: bounds.X, Y: bounds.Y, W: bounds.W - m.TabCloseWidth, H: bounds.H},
			Close:  entity.Rect{X: bounds.Right() - m.TabCloseWidth, Y: bounds.Y, W: m.TabCloseWidth, H: bounds.H},
		}
	}
	h.NewTab = entity.Rect{
		X: m.TabLeft + tabCount*m.TabStride(),
		Y: m.TabTop + m.NewTabOffset,
		W: m.NewTabWidth,
		H: m.NewTabHeight,
	}
	return h
}

func computeSidebar(m Metrics, client entity.Rect, headerH, width int, in Input) *Sidebar {
	panel := entity.Rect{Y: headerH, W: width, H: max(0, client.H-headerH)}
	s := &Sidebar{
		Panel:       panel,
		Width:       in.View.SidebarWidth,
		Mode:        in.View.SidebarContent,
		Title:       offset(m.SidebarTitle, panel),
		ViewToggle:  offset(entity.Rect{X: width - m.ViewToggleInset, Y: m.ViewToggle.Y, W: m.ViewToggle.W, H: m.ViewToggle.H}, panel),
		WidthToggle: offset(m.WidthToggle, panel),
	}

	if in.View.SidebarContent == entity.SidebarSettings {
		s.ClearHistory = offset(m.ClearHistory, panel)
		return s
	}

	rowW := max(0, width-m.HistoryInsetLeft-m.HistoryInsetRight)
	limit := client.H - m.HistoryBottomMargin
	for i := 0; i < in.HistoryCount; i++ {
		y := panel.Y + m.HistoryTop + i*m.HistoryStep
		if y > limit {
			break
		}
		s.HistoryRows = append(s.HistoryRows, entity.Rect{X: panel.X + m.HistoryInsetLeft, Y: y, W: rowW, H: m.HistoryRowHeight})
	}
	return s
}

func offset(r, origin entity.Rect) entity.Rect {
	r.X += origin.X
	r.Y += origin.Y
	return r
}
