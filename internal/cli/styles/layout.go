package styles

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/bnema/sarf/internal/domain/entity"
	"github.com/bnema/sarf/internal/domain/layout"
)

// Probe is the result of hit testing one point.
type Probe struct {
	Point  entity.Point
	Zone   layout.Zone
	Target layout.Target
}

// LayoutRenderer renders computed regions as a table.
type LayoutRenderer struct {
	theme *Theme
}

// NewLayoutRenderer creates a layout renderer with the given theme.
func NewLayoutRenderer(theme *Theme) *LayoutRenderer {
	return &LayoutRenderer{theme: theme}
}

// Render prints the regions, then one line per probe.
func (r *LayoutRenderer) Render(client entity.Size, regions layout.Regions, probes []Probe) string {
	var b strings.Builder

	mode := "windowed"
	if regions.Fullscreen {
		mode = "fullscreen"
	}
	b.WriteString(r.theme.Title.Render(fmt.Sprintf("Layout %dx%d", client.Width, client.Height)))
	b.WriteString(" ")
	b.WriteString(r.theme.Subtle.Render(mode))
	b.WriteString("\n")

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(r.theme.Border)).
		Headers("REGION", "X", "Y", "W", "H").
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return r.theme.TableHeader
			}
			return r.theme.TableCell
		})
	for _, nr := range regions.Named() {
		t.Row(nr.Name,
			strconv.Itoa(nr.Rect.X), strconv.Itoa(nr.Rect.Y),
			strconv.Itoa(nr.Rect.W), strconv.Itoa(nr.Rect.H))
	}
	b.WriteString(t.Render())

	for _, p := range probes {
		b.WriteString("\n")
		b.WriteString(r.RenderProbe(p))
	}
	return b.String()
}

// RenderProbe renders one hit test result.
func (r *LayoutRenderer) RenderProbe(p Probe) string {
	zone := p.Zone.String()
	if p.Zone.Draggable() {
		zone += " (drag)"
	}
	return fmt.Sprintf("%s %s %s %s %s",
		lipgloss.NewStyle().Foreground(r.theme.Accent).Render(IconPointer),
		r.theme.Normal.Render(fmt.Sprintf("(%d,%d)", p.Point.X, p.Point.Y)),
		r.theme.Highlight.Render(zone),
		r.theme.Subtle.Render("target"),
		r.theme.Normal.Render(p.Target.String()),
	)
}
