// Package entity defines domain entities for the browser shell.
package entity

import "fmt"

// Point is a position in window client coordinates.
type Point struct {
	X, Y int
}

// Size is the extent of the window client area.
type Size struct {
	Width, Height int
}

// Rect is an axis-aligned rectangle. X/Y is the top-left corner.
// Rectangles are half-open: a point on the right or bottom edge is outside.
type Rect struct {
	X, Y int
	W, H int
}

// RectFromSize returns the rectangle covering a whole client area.
func RectFromSize(s Size) Rect {
	return Rect{W: s.Width, H: s.Height}
}

// Right returns the first column past the rectangle.
func (r Rect) Right() int { return r.X + r.W }

// Bottom returns the first row past the rectangle.
func (r Rect) Bottom() int { return r.Y + r.H }

// Empty reports whether the rectangle covers no area.
func (r Rect) Empty() bool { return r.W <= 0 || r.H <= 0 }

// Contains reports whether p lies inside the rectangle.
func (r Rect) Contains(p Point) bool {
	if r.Empty() {
		return false
	}
	return p.X >= r.X && p.X < r.Right() && p.Y >= r.Y && p.Y < r.Bottom()
}

// ContainsY reports whether row y lies in the rectangle's vertical band.
func (r Rect) ContainsY(y int) bool {
	return r.H > 0 && y >= r.Y && y < r.Bottom()
}

// Center returns the center point of the rectangle.
func (r Rect) Center() (cx, cy int) {
	return r.X + r.W/2, r.Y + r.H/2
}

func (r Rect) String() string {
	return fmt.Sprintf("(%d,%d %dx%d)", r.X, r.Y, r.W, r.H)
}
