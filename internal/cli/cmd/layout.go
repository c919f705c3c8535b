package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/bnema/sarf/internal/cli/styles"
	"github.com/bnema/sarf/internal/domain/entity"
	"github.com/bnema/sarf/internal/domain/layout"
)

type layoutFlags struct {
	metrics    string
	width      int
	height     int
	tabs       int
	active     int
	history    int
	noSidebar  bool
	expanded   bool
	settings   bool
	fullscreen bool
	hits       []string
}

var layoutOpts layoutFlags

var layoutCmd = &cobra.Command{
	Use:   "layout",
	Short: "Print the window regions for a given state",
	Long: `Compute the window layout without starting an engine and print every
region. Points passed with --hit are hit tested: the zone is what the window
manager sees, the target is what a click activates.

Examples:
  sarf layout                                   # 1280x800 pixel window, one tab
  sarf layout --metrics terminal --tabs 3       # 120x40 terminal, three tabs
  sarf layout --expanded --settings --hit 40,80`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		in, err := layoutOpts.input()
		if err != nil {
			return err
		}
		regions := layout.Compute(in)
		probes, err := layoutOpts.probes(in, regions)
		if err != nil {
			return err
		}
		out := styles.NewLayoutRenderer(theme).Render(in.Client, regions, probes)
		fmt.Fprintln(cmd.OutOrStdout(), out)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(layoutCmd)
	f := layoutCmd.Flags()
	f.StringVar(&layoutOpts.metrics, "metrics", "pixel", "unit system: pixel or terminal")
	f.IntVar(&layoutOpts.width, "width", 0, "client width (0 uses 1280 px or 120 cells)")
	f.IntVar(&layoutOpts.height, "height", 0, "client height (0 uses 800 px or 40 cells)")
	f.IntVar(&layoutOpts.tabs, "tabs", 1, "number of tabs")
	f.IntVar(&layoutOpts.active, "active", -1, "active tab index (-1 is the last tab)")
	f.IntVar(&layoutOpts.history, "history", 0, "number of history entries")
	f.BoolVar(&layoutOpts.noSidebar, "no-sidebar", false, "close the sidebar")
	f.BoolVar(&layoutOpts.expanded, "expanded", false, "use the expanded sidebar width")
	f.BoolVar(&layoutOpts.settings, "settings", false, "show settings in the sidebar")
	f.BoolVar(&layoutOpts.fullscreen, "fullscreen", false, "fullscreen content")
	f.StringArrayVar(&layoutOpts.hits, "hit", nil, "hit test the point x,y (repeatable)")
}

func (f layoutFlags) input() (layout.Input, error) {
	var (
		metrics layout.Metrics
		client  entity.Size
	)
	switch strings.ToLower(f.metrics) {
	case "pixel", "px":
		metrics, client = layout.PixelMetrics(), entity.Size{Width: 1280, Height: 800}
	case "terminal", "term", "cells":
		metrics, client = layout.TerminalMetrics(), entity.Size{Width: 120, Height: 40}
	default:
		return layout.Input{}, fmt.Errorf("unknown metrics %q (want pixel or terminal)", f.metrics)
	}
	if f.width > 0 {
		client.Width = f.width
	}
	if f.height > 0 {
		client.Height = f.height
	}
	if f.tabs < 0 || f.history < 0 {
		return layout.Input{}, fmt.Errorf("--tabs and --history must not be negative")
	}

	active := f.active
	if active < 0 || active >= f.tabs {
		active = f.tabs - 1
	}

	view := entity.NewViewState()
	view.SidebarOpen = !f.noSidebar
	if f.expanded {
		view.SidebarWidth = entity.SidebarExpanded
	}
	if f.settings {
		view.SidebarContent = entity.SidebarSettings
	}
	view.Fullscreen = f.fullscreen

	return layout.Input{
		Client:       client,
		View:         view,
		TabCount:     f.tabs,
		ActiveIndex:  active,
		HistoryCount: f.history,
		Metrics:      metrics,
	}, nil
}

// probes hit tests every --hit point against in.
func (f layoutFlags) probes(in layout.Input, regions layout.Regions) ([]styles.Probe, error) {
	probes := make([]styles.Probe, 0, len(f.hits))
	for _, raw := range f.hits {
		p, err := parsePoint(raw)
		if err != nil {
			return nil, err
		}
		probes = append(probes, styles.Probe{
			Point:  p,
			Zone:   layout.ClassifyAt(p, in),
			Target: layout.Locate(p, regions),
		})
	}
	return probes, nil
}

// parsePoint parses "x,y".
func parsePoint(s string) (entity.Point, error) {
	xs, ys, ok := strings.Cut(s, ",")
	if !ok {
		return entity.Point{}, fmt.Errorf("invalid point %q: want x,y", s)
	}
	x, err := strconv.Atoi(strings.TrimSpace(xs))
	if err != nil {
		return entity.Point{}, fmt.Errorf("invalid point %q: %w", s, err)
	}
	y, err := strconv.Atoi(strings.TrimSpace(ys))
	if err != nil {
		return entity.Point{}, fmt.Errorf("invalid point %q: %w", s, err)
	}
	return entity.Point{X: x, Y: y}, nil
}

func joinNames(names []string) string {
	return strings.Join(names, ", ")
}
