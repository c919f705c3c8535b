package entity

import "time"

// DefaultTabTitle is shown until a surface reports a document title.
const DefaultTabTitle = "New Tab"

// TabID uniquely identifies a tab for its whole lifetime.
type TabID string

// Tab is one entry of the tab strip. The content surface backing the tab
// is owned by the tab registry and keyed by ID.
type Tab struct {
	ID    TabID
	Title string // Document title reported by the surface
	URL   string // Last source reported by the surface

	// FullscreenRequested is the last fullscreen intent reported by the
	// tab's surface. Inactive tabs may hold a stale value.
	FullscreenRequested bool

	Position  int // Position in the tab strip (0-indexed)
	CreatedAt time.Time
}

// NewTab creates a tab with the placeholder title.
func NewTab(id TabID) *Tab {
	return &Tab{
		ID:        id,
		Title:     DefaultTabTitle,
		CreatedAt: time.Now(),
	}
}

// DisplayTitle returns the title, falling back to URL or "New Tab".
func (t *Tab) DisplayTitle() string {
	if t.Title != "" {
		return t.Title
	}
	if t.URL != "" {
		return t.URL
	}
	return DefaultTabTitle
}

// TabList manages an ordered collection of tabs.
// The active tab is tracked by ID so closing a tab before it keeps the
// selection on the same tab.
type TabList struct {
	Tabs        []*Tab
	ActiveTabID TabID
}

// NewTabList creates an empty tab list.
func NewTabList() *TabList {
	return &TabList{
		Tabs: make([]*Tab, 0),
	}
}

// Add appends a tab to the list. It does not change the active tab.
func (tl *TabList) Add(tab *Tab) int {
	tab.Position = len(tl.Tabs)
	tl.Tabs = append(tl.Tabs, tab)
	return tab.Position
}

// Remove removes a tab by ID and reindexes positions. When the removed tab
// was active the selection moves to the tab that slid into its slot, or to
// the new last tab. Returns the removed index, or -1.
func (tl *TabList) Remove(id TabID) int {
	for i, tab := range tl.Tabs {
		if tab.ID != id {
			continue
		}
		tl.Tabs = append(tl.Tabs[:i], tl.Tabs[i+1:]...)
		for j := i; j < len(tl.Tabs); j++ {
			tl.Tabs[j].Position = j
		}
		if tl.ActiveTabID == id {
			switch {
			case len(tl.Tabs) == 0:
				tl.ActiveTabID = ""
			case i < len(tl.Tabs):
				tl.ActiveTabID = tl.Tabs[i].ID
			default:
				tl.ActiveTabID = tl.Tabs[len(tl.Tabs)-1].ID
			}
		}
		return i
	}
	return -1
}

// Find returns a tab by ID.
func (tl *TabList) Find(id TabID) *Tab {
	for _, tab := range tl.Tabs {
		if tab.ID == id {
			return tab
		}
	}
	return nil
}

// IndexOf returns the position of the tab with the given ID, or -1.
func (tl *TabList) IndexOf(id TabID) int {
	for i, tab := range tl.Tabs {
		if tab.ID == id {
			return i
		}
	}
	return -1
}

// At returns the tab at index, or nil when out of range.
func (tl *TabList) At(index int) *Tab {
	if index < 0 || index >= len(tl.Tabs) {
		return nil
	}
	return tl.Tabs[index]
}

// ActiveTab returns the currently active tab.
func (tl *TabList) ActiveTab() *Tab {
	return tl.Find(tl.ActiveTabID)
}

// ActiveIndex returns the active tab position, or -1 when the list is empty.
func (tl *TabList) ActiveIndex() int {
	if tl.ActiveTabID == "" {
		return -1
	}
	return tl.IndexOf(tl.ActiveTabID)
}

// IsActive reports whether id is the active tab.
func (tl *TabList) IsActive(id TabID) bool {
	return id != "" && tl.ActiveTabID == id
}

// Count returns the number of tabs.
func (tl *TabList) Count() int {
	return len(tl.Tabs)
}

// Neighbor returns the index next to the active one in the given direction,
// wrapping around. direction: 1 for next, -1 for previous.
func (tl *TabList) Neighbor(direction int) int {
	n := len(tl.Tabs)
	if n == 0 {
		return -1
	}
	current := tl.ActiveIndex()
	if current < 0 {
		return 0
	}
	return ((current+direction)%n + n) % n
}
