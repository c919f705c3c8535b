package engine

import (
	"sync"

	"github.com/bnema/sarf/internal/domain/entity"
)

// State is the part of a surface that engine callbacks and the UI goroutine
// share.
type State struct {
	mu         sync.Mutex
	url        string
	mainFrame  string
	fullscreen bool
	visible    bool
	bounds     entity.Rect
	closed     bool
}

// SetURL records the committed main-frame URL and reports whether it changed.
func (s *State) SetURL(url string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.url == url {
		return false
	}
	s.url = url
	return true
}

// URL returns the last committed main-frame URL.
func (s *State) URL() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.url
}

// SetMainFrame records the main frame ID.
func (s *State) SetMainFrame(id string) {
	s.mu.Lock()
	s.mainFrame = id
	s.mu.Unlock()
}

// IsMainFrame reports whether id is the recorded main frame.
func (s *State) IsMainFrame(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return id != "" && id == s.mainFrame
}

// SetFullscreen records the page's fullscreen intent and reports whether it
// changed.
func (s *State) SetFullscreen(wants bool) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.fullscreen == wants {
		return false
	}
	s.fullscreen = wants
	return true
}

// Fullscreen returns the page's fullscreen intent.
func (s *State) Fullscreen() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.fullscreen
}

// SetVisible records visibility and reports whether it changed.
func (s *State) SetVisible(v bool) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.visible == v {
		return false
	}
	s.visible = v
	return true
}

// Visible reports the last requested visibility.
func (s *State) Visible() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.visible
}

// SetBounds records bounds and reports whether they changed.
func (s *State) SetBounds(r entity.Rect) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.bounds == r {
		return false
	}
	s.bounds = r
	return true
}

// Bounds returns the last applied bounds.
func (s *State) Bounds() entity.Rect {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.bounds
}

// MarkClosed flags the surface closed and reports whether this call did it.
func (s *State) MarkClosed() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return false
	}
	s.closed = true
	return true
}

// Closed reports whether the surface was closed.
func (s *State) Closed() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.closed
}
