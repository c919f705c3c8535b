package layout

import (
	"fmt"

	"github.com/bnema/sarf/internal/domain/entity"
)

// NamedRect is one region with a display name.
type NamedRect struct {
	Name string
	Rect entity.Rect
}

// Named lists every region in drawing order.
func (r Regions) Named() []NamedRect {
	out := []NamedRect{
		{"client", r.Client},
		{"content", r.Content},
	}
	if h := r.Header; h != nil {
		out = append(out,
			NamedRect{"header", h.Band},
			NamedRect{"controls", h.Controls.Cluster},
			NamedRect{"minimize", h.Controls.Minimize},
			NamedRect{"maximize", h.Controls.Maximize},
			NamedRect{"close", h.Controls.Close},
			NamedRect{"sidebar-toggle", h.SidebarToggle},
			NamedRect{"address", h.Address},
			NamedRect{"tab-band", h.TabBand},
		)
		for i, tab := range h.Tabs {
			out = append(out,
				NamedRect{fmt.Sprintf("tab[%d]", i), tab.Bounds},
				NamedRect{fmt.Sprintf("tab[%d].title", i), tab.Title},
				NamedRect{fmt.Sprintf("tab[%d].close", i), tab.Close},
			)
		}
		out = append(out, NamedRect{"new-tab", h.NewTab})
	}
	if s := r.Sidebar; s != nil {
		out = append(out,
			NamedRect{"sidebar", s.Panel},
			NamedRect{"sidebar.title", s.Title},
			NamedRect{"sidebar.view-toggle", s.ViewToggle},
			NamedRect{"sidebar.width-toggle", s.WidthToggle},
		)
		for i, row := range s.HistoryRows {
			out = append(out, NamedRect{fmt.Sprintf("history[%d]", i), row})
		}
		if !s.ClearHistory.Empty() {
			out = append(out, NamedRect{"clear-history", s.ClearHistory})
		}
	}
	return out
}
