package tui

import (
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// canvas places styled text at cell positions. Later segments that overlap
// earlier ones on the same row are dropped.
type canvas struct {
	width, height int
	rows          [][]segment
}

type segment struct {
	x, w int
	text string
}

func newCanvas(width, height int) *canvas {
	return &canvas{
		width:  max(0, width),
		height: max(0, height),
		rows:   make([][]segment, max(0, height)),
	}
}

// put draws text truncated and padded to w cells at (x, y).
func (c *canvas) put(x, y, w int, text string, style lipgloss.Style) {
	if y < 0 || y >= c.height || w <= 0 || x >= c.width {
		return
	}
	if x < 0 {
		w += x
		x = 0
	}
	w = min(w, c.width-x)
	if w <= 0 {
		return
	}
	text = strings.ReplaceAll(text, "\n", " ")
	text = ansi.Truncate(text, w, "…")
	c.rows[y] = append(c.rows[y], segment{x: x, w: w, text: style.Inline(true).Width(w).Render(text)})
}

// putRaw draws pre-rendered text that is known to span w cells.
func (c *canvas) putRaw(x, y, w int, rendered string) {
	if y < 0 || y >= c.height || w <= 0 || x < 0 || x+w > c.width {
		return
	}
	c.rows[y] = append(c.rows[y], segment{x: x, w: w, text: rendered})
}

func (c *canvas) String() string {
	var b strings.Builder
	for y, row := range c.rows {
		sort.SliceStable(row, func(i, j int) bool { return row[i].x < row[j].x })
		cursor := 0
		for _, seg := range row {
			if seg.x < cursor {
				continue
			}
			b.WriteString(strings.Repeat(" ", seg.x-cursor))
			b.WriteString(seg.text)
			cursor = seg.x + seg.w
		}
		if y < len(c.rows)-1 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}
