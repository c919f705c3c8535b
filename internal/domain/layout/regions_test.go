package layout_test

import (
	"testing"

	"github.com/bnema/sarf/internal/domain/entity"
	"github.com/bnema/sarf/internal/domain/layout"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pixelInput(tabs int) layout.Input {
	return layout.Input{
		Client:      entity.Size{Width: 1280, Height: 800},
		View:        entity.NewViewState(),
		TabCount:    tabs,
		ActiveIndex: tabs - 1,
		Metrics:     layout.PixelMetrics(),
	}
}

func TestCompute_FullscreenOnlyContent(t *testing.T) {
	in := pixelInput(3)
	in.View.Fullscreen = true

	r := layout.Compute(in)

	assert.True(t, r.Fullscreen)
	assert.Equal(t, entity.Rect{W: 1280, H: 800}, r.Content)
	assert.Equal(t, r.Client, r.Content)
	assert.Nil(t, r.Header)
	assert.Nil(t, r.Sidebar)
}

func TestCompute_CompactSidebarContentOrigin(t *testing.T) {
	r := layout.Compute(pixelInput(1))

	assert.Equal(t, 260, r.Content.X)
	assert.Equal(t, entity.Rect{X: 260, Y: 105, W: 1020, H: 695}, r.Content)
	require.NotNil(t, r.Sidebar)
	assert.Equal(t, entity.Rect{Y: 105, W: 260, H: 695}, r.Sidebar.Panel)
}

func TestCompute_SidebarModes(t *testing.T) {
	tests := []struct {
		name     string
		mutate   func(v *entity.ViewState)
		contentX int
		sidebar  bool
	}{
		{name: "closed", mutate: func(v *entity.ViewState) { v.SidebarOpen = false }, contentX: 0},
		{name: "compact", mutate: func(v *entity.ViewState) {}, contentX: 260, sidebar: true},
		{name: "expanded", mutate: func(v *entity.ViewState) { v.SidebarWidth = entity.SidebarExpanded }, contentX: 550, sidebar: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := pixelInput(1)
			tt.mutate(&in.View)
			r := layout.Compute(in)
			assert.Equal(t, tt.contentX, r.Content.X)
			assert.Equal(t, 1280-tt.contentX, r.Content.W)
			assert.Equal(t, tt.sidebar, r.Sidebar != nil)
		})
	}
}

func TestCompute_HeaderChrome(t *testing.T) {
	r := layout.Compute(pixelInput(2))
	h := r.Header
	require.NotNil(t, h)

	assert.Equal(t, entity.Rect{W: 1280, H: 105}, h.Band)
	assert.Equal(t, entity.Rect{X: 340, Y: 15, W: 600, H: 30}, h.Address)
	assert.Equal(t, entity.Rect{X: 1235, W: 45, H: 30}, h.Controls.Close)
	assert.Equal(t, entity.Rect{X: 1190, W: 45, H: 30}, h.Controls.Maximize)
	assert.Equal(t, entity.Rect{X: 1145, W: 45, H: 30}, h.Controls.Minimize)
	assert.Equal(t, entity.Rect{X: 1140, W: 140, H: 32}, h.Controls.Cluster)

	require.Len(t, h.Tabs, 2)
	assert.Equal(t, entity.Rect{X: 10, Y: 65, W: 180, H: 32}, h.Tabs[0].Bounds)
	assert.Equal(t, entity.Rect{X: 10, Y: 65, W: 150, H: 32}, h.Tabs[0].Title)
	assert.Equal(t, entity.Rect{X: 160, Y: 65, W: 30, H: 32}, h.Tabs[0].Close)
	assert.Equal(t, 195, h.Tabs[1].Bounds.X)
	assert.Equal(t, entity.Rect{X: 380, Y: 67, W: 28, H: 28}, h.NewTab)
}

func TestCompute_AddressWidthNeverNegative(t *testing.T) {
	in := pixelInput(0)
	in.Client = entity.Size{Width: 300, Height: 200}

	r := layout.Compute(in)
	require.NotNil(t, r.Header)
	assert.Equal(t, 0, r.Header.Address.W)
	assert.Equal(t, 150, r.Header.Address.X)
	assert.Equal(t, entity.Rect{X: 10, Y: 67, W: 28, H: 28}, r.Header.NewTab)
}

func TestCompute_NarrowWindowClampsContent(t *testing.T) {
	in := pixelInput(1)
	in.Client = entity.Size{Width: 200, Height: 80}

	r := layout.Compute(in)
	assert.Equal(t, 0, r.Content.W)
	assert.Equal(t, 0, r.Content.H)
	assert.True(t, r.Content.Empty())
}

func TestCompute_HistoryRowsStopAtBottomMargin(t *testing.T) {
	in := pixelInput(1)
	in.HistoryCount = 25

	r := layout.Compute(in)
	require.NotNil(t, r.Sidebar)
	rows := r.Sidebar.HistoryRows
	require.NotEmpty(t, rows)
	assert.Less(t, len(rows), 25)

	assert.Equal(t, entity.Rect{X: 15, Y: 155, W: 225, H: 20}, rows[0])
	assert.Equal(t, 190, rows[1].Y)
	last := rows[len(rows)-1]
	assert.LessOrEqual(t, last.Y, 800-30)
	assert.Equal(t, entity.Rect{}, r.Sidebar.ClearHistory)
}

func TestCompute_SettingsShowsClearButton(t *testing.T) {
	in := pixelInput(1)
	in.HistoryCount = 4
	in.View.SidebarContent = entity.SidebarSettings

	r := layout.Compute(in)
	require.NotNil(t, r.Sidebar)
	assert.Empty(t, r.Sidebar.HistoryRows)
	assert.Equal(t, entity.Rect{X: 20, Y: 165, W: 220, H: 40}, r.Sidebar.ClearHistory)
	assert.Equal(t, entity.Rect{X: 215, Y: 115, W: 35, H: 25}, r.Sidebar.ViewToggle)
	assert.Equal(t, r.Content, layout.Compute(pixelInput(1)).Content)
}

func TestCompute_IsDeterministic(t *testing.T) {
	in := pixelInput(4)
	in.HistoryCount = 3
	assert.Equal(t, layout.Compute(in), layout.Compute(in))
}

func TestCompute_TerminalMetrics(t *testing.T) {
	in := layout.Input{
		Client:   entity.Size{Width: 120, Height: 40},
		View:     entity.NewViewState(),
		TabCount: 1,
		Metrics:  layout.TerminalMetrics(),
	}
	r := layout.Compute(in)
	assert.Equal(t, entity.Rect{X: 28, Y: 5, W: 92, H: 35}, r.Content)
	require.NotNil(t, r.Header)
	assert.Equal(t, entity.Rect{X: 24, Y: 1, W: 72, H: 1}, r.Header.Address)
}

func TestMetrics_WithSidebarWidths(t *testing.T) {
	m := layout.PixelMetrics().WithSidebarWidths(300, 0)
	assert.Equal(t, 300, m.SidebarWidth(entity.SidebarCompact))
	assert.Equal(t, 550, m.SidebarWidth(entity.SidebarExpanded))
}

func TestMetrics_DeviceRect(t *testing.T) {
	m := layout.TerminalMetrics()
	assert.Equal(t, entity.Rect{X: 16, Y: 32, W: 80, H: 160}, m.DeviceRect(entity.Rect{X: 2, Y: 2, W: 10, H: 10}))
	assert.Equal(t, entity.Rect{X: 3, Y: 4, W: 5, H: 6}, layout.PixelMetrics().DeviceRect(entity.Rect{X: 3, Y: 4, W: 5, H: 6}))
}
