package coordinator

import (
	"github.com/bnema/sarf/internal/domain/entity"
	"github.com/bnema/sarf/internal/domain/layout"
)

// TabView is the drawable state of one tab.
type TabView struct {
	ID     entity.TabID
	Title  string
	URL    string
	Active bool
}

// Snapshot is everything a window needs to draw the chrome.
type Snapshot struct {
	Regions layout.Regions
	View    entity.ViewState
	Tabs    []TabView
	History []string
	Address string
	// Pending counts tabs whose surface is still being created.
	Pending int
}

// Snapshot copies the current shell state for drawing. UI goroutine only.
func (s *Shell) Snapshot() Snapshot {
	tabs := s.tabs.Tabs()
	views := make([]TabView, 0, tabs.Count())
	for _, tab := range tabs.Tabs {
		views = append(views, TabView{
			ID:     tab.ID,
			Title:  tab.DisplayTitle(),
			URL:    tab.URL,
			Active: tabs.IsActive(tab.ID),
		})
	}
	return Snapshot{
		Regions: s.regions,
		View:    s.view,
		Tabs:    views,
		History: s.history.Entries(),
		Address: s.address,
		Pending: s.tabs.PendingCount(),
	}
}

// Classify answers the window's drag-or-client query for p.
func (s *Shell) Classify(p entity.Point) layout.Zone {
	return layout.Classify(p, s.regions)
}

// Regions returns the current layout.
func (s *Shell) Regions() layout.Regions { return s.regions }

// View returns the current view flags.
func (s *Shell) View() entity.ViewState { return s.view }

// History returns the history entries, most recent first.
func (s *Shell) History() []string { return s.history.Entries() }
