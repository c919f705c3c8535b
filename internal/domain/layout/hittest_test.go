package layout_test

import (
	"testing"

	"github.com/bnema/sarf/internal/domain/entity"
	"github.com/bnema/sarf/internal/domain/layout"
	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	r := layout.Compute(pixelInput(2))

	tests := []struct {
		name  string
		point entity.Point
		want  layout.Zone
	}{
		{name: "control cluster", point: entity.Point{X: 1250, Y: 10}, want: layout.Zone{Kind: layout.ZoneClient, Index: -1}},
		{name: "cluster gap below buttons", point: entity.Point{X: 1141, Y: 31}, want: layout.Zone{Kind: layout.ZoneClient, Index: -1}},
		{name: "address input", point: entity.Point{X: 640, Y: 30}, want: layout.Zone{Kind: layout.ZoneClient, Index: -1}},
		{name: "sidebar toggle", point: entity.Point{X: 20, Y: 20}, want: layout.Zone{Kind: layout.ZoneClient, Index: -1}},
		{name: "empty header", point: entity.Point{X: 200, Y: 30}, want: layout.Zone{Kind: layout.ZoneCaption, Index: -1}},
		{name: "header bottom edge", point: entity.Point{X: 600, Y: 104}, want: layout.Zone{Kind: layout.ZoneCaption, Index: -1}},
		{name: "first tab title", point: entity.Point{X: 50, Y: 70}, want: layout.Zone{Kind: layout.ZoneTab, Index: 0}},
		{name: "first tab close", point: entity.Point{X: 170, Y: 70}, want: layout.Zone{Kind: layout.ZoneTabClose, Index: 0}},
		{name: "second tab", point: entity.Point{X: 200, Y: 90}, want: layout.Zone{Kind: layout.ZoneTab, Index: 1}},
		{name: "tab gap", point: entity.Point{X: 192, Y: 70}, want: layout.Zone{Kind: layout.ZoneClient, Index: -1}},
		{name: "tab band past tabs", point: entity.Point{X: 1000, Y: 70}, want: layout.Zone{Kind: layout.ZoneClient, Index: -1}},
		{name: "content", point: entity.Point{X: 600, Y: 400}, want: layout.Zone{Kind: layout.ZoneDefault, Index: -1}},
		{name: "sidebar", point: entity.Point{X: 100, Y: 400}, want: layout.Zone{Kind: layout.ZoneDefault, Index: -1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := layout.Classify(tt.point, r)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.want.Kind == layout.ZoneCaption, got.Draggable())
		})
	}
}

func TestClassify_FullscreenNeverDraggable(t *testing.T) {
	in := pixelInput(2)
	in.View.Fullscreen = true
	r := layout.Compute(in)

	for _, p := range []entity.Point{{X: 200, Y: 30}, {X: 1250, Y: 10}, {X: 50, Y: 70}, {X: 600, Y: 400}} {
		z := layout.Classify(p, r)
		assert.Equal(t, layout.ZoneDefault, z.Kind, "point %v", p)
		assert.False(t, z.Draggable())
	}
}

func TestClassifyAt(t *testing.T) {
	z := layout.ClassifyAt(entity.Point{X: 170, Y: 70}, pixelInput(1))
	assert.Equal(t, "tab-close(0)", z.String())
}

func TestLocate(t *testing.T) {
	in := pixelInput(2)
	in.HistoryCount = 3
	r := layout.Compute(in)

	tests := []struct {
		name  string
		point entity.Point
		want  string
	}{
		{name: "close", point: entity.Point{X: 1250, Y: 10}, want: "close"},
		{name: "maximize", point: entity.Point{X: 1200, Y: 10}, want: "maximize"},
		{name: "minimize", point: entity.Point{X: 1150, Y: 10}, want: "minimize"},
		{name: "cluster padding", point: entity.Point{X: 1141, Y: 31}, want: "none"},
		{name: "sidebar toggle", point: entity.Point{X: 20, Y: 20}, want: "sidebar-toggle"},
		{name: "address", point: entity.Point{X: 640, Y: 30}, want: "address"},
		{name: "tab", point: entity.Point{X: 200, Y: 70}, want: "tab(1)"},
		{name: "tab close", point: entity.Point{X: 360, Y: 70}, want: "tab-close(1)"},
		{name: "new tab", point: entity.Point{X: 385, Y: 70}, want: "new-tab"},
		{name: "caption", point: entity.Point{X: 200, Y: 30}, want: "caption"},
		{name: "history row", point: entity.Point{X: 30, Y: 195}, want: "history-row(1)"},
		{name: "view toggle", point: entity.Point{X: 220, Y: 120}, want: "view-toggle"},
		{name: "width toggle", point: entity.Point{X: 160, Y: 120}, want: "width-toggle"},
		{name: "sidebar blank", point: entity.Point{X: 30, Y: 600}, want: "sidebar"},
		{name: "content", point: entity.Point{X: 600, Y: 400}, want: "content"},
		{name: "outside", point: entity.Point{X: 1300, Y: 10}, want: "none"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, layout.Locate(tt.point, r).String())
		})
	}
}

func TestLocate_Settings(t *testing.T) {
	in := pixelInput(1)
	in.HistoryCount = 3
	in.View.SidebarContent = entity.SidebarSettings
	r := layout.Compute(in)

	assert.Equal(t, layout.TargetClearHistory, layout.Locate(entity.Point{X: 30, Y: 170}, r).Kind)
	assert.Equal(t, layout.TargetSidebar, layout.Locate(entity.Point{X: 30, Y: 160}, r).Kind)
}

func TestLocate_Fullscreen(t *testing.T) {
	in := pixelInput(1)
	in.View.Fullscreen = true
	r := layout.Compute(in)

	assert.Equal(t, layout.Target{Kind: layout.TargetContent, Index: -1}, layout.Locate(entity.Point{X: 1250, Y: 10}, r))
}
