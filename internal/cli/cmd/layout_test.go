package cmd

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/sarf/internal/domain/entity"
	"github.com/bnema/sarf/internal/domain/layout"
)

func TestParsePoint(t *testing.T) {
	p, err := parsePoint("40, 80")
	require.NoError(t, err)
	assert.Equal(t, entity.Point{X: 40, Y: 80}, p)

	for _, bad := range []string{"", "40", "x,1", "1,y"} {
		_, err := parsePoint(bad)
		assert.Error(t, err, bad)
	}
}

func TestLayoutFlags_Input(t *testing.T) {
	in, err := layoutFlags{metrics: "terminal", tabs: 3, active: 7, expanded: true, settings: true}.input()
	require.NoError(t, err)

	assert.Equal(t, entity.Size{Width: 120, Height: 40}, in.Client)
	assert.Equal(t, 2, in.ActiveIndex, "out of range falls back to the last tab")
	assert.True(t, in.View.SidebarOpen)
	assert.Equal(t, entity.SidebarExpanded, in.View.SidebarWidth)
	assert.Equal(t, entity.SidebarSettings, in.View.SidebarContent)

	in, err = layoutFlags{metrics: "pixel", width: 640, tabs: 1, active: -1, noSidebar: true}.input()
	require.NoError(t, err)
	assert.Equal(t, entity.Size{Width: 640, Height: 800}, in.Client)
	assert.False(t, in.View.SidebarOpen)
	assert.Equal(t, 0, in.ActiveIndex)

	_, err = layoutFlags{metrics: "inches"}.input()
	assert.Error(t, err)
	_, err = layoutFlags{metrics: "pixel", tabs: -1}.input()
	assert.Error(t, err)
}

func TestLayoutFlags_Probes(t *testing.T) {
	f := layoutFlags{metrics: "pixel", tabs: 2, hits: []string{"200,30", "50,70"}}
	in, err := f.input()
	require.NoError(t, err)

	regions := layout.Compute(in)
	probes, err := f.probes(in, regions)
	require.NoError(t, err)
	for _, pr := range probes {
		assert.Equal(t, layout.Classify(pr.Point, regions), pr.Zone)
	}
	require.Len(t, probes, 2)
	assert.Equal(t, layout.ZoneCaption, probes[0].Zone.Kind)
	assert.Equal(t, layout.ZoneTab, probes[1].Zone.Kind)
	assert.Equal(t, layout.TargetTab, probes[1].Target.Kind)
	assert.Equal(t, 0, probes[1].Target.Index)

	_, err = layoutFlags{hits: []string{"nope"}}.probes(in, regions)
	assert.Error(t, err)
}

func TestLayoutCommand(t *testing.T) {
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs([]string{"layout", "--metrics", "terminal", "--tabs", "2", "--hit", "60,2"})
	t.Cleanup(func() {
		rootCmd.SetArgs(nil)
		rootCmd.SetOut(nil)
		layoutOpts = layoutFlags{}
	})

	require.NoError(t, rootCmd.Execute())
	assert.Contains(t, out.String(), "Layout 120x40")
	assert.Contains(t, out.String(), "tab[1].close")
	assert.Contains(t, out.String(), "(60,2)")
	assert.Contains(t, out.String(), "caption (drag)")
}
