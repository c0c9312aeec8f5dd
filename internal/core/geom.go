// Package core holds the types shared by the game and its hosts: geometry,
// the terminal screen buffer, input actions and runtime configuration.
// It has no external dependencies so game logic stays pure and testable.
package core

import "math"

// Rect represents an integer axis-aligned box, used for cell-space drawing.
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Box is a floating-point axis-aligned box in pixel space.
// Simulation hitboxes use it so sub-pixel motion is not lost to rounding.
type Box struct {
	Left, Top, Right, Bottom float64
}

// BoxAround returns a box of the given size centered on (cx, cy).
func BoxAround(cx, cy, w, h float64) Box {
	return Box{
		Left:   cx - w/2,
		Top:    cy - h/2,
		Right:  cx + w/2,
		Bottom: cy + h/2,
	}
}

// OverlapsX reports whether the horizontal spans of b and o overlap.
// Touching edges do not count as overlap.
func (b Box) OverlapsX(o Box) bool {
	return b.Right > o.Left && b.Left < o.Right
}

// Distance returns the Euclidean distance between two points.
func Distance(ax, ay, bx, by float64) float64 {
	return math.Hypot(ax-bx, ay-by)
}

// IsFinite reports whether v is neither NaN nor infinite.
func IsFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// RoundPx rounds a pixel coordinate to the nearest integer pixel.
func RoundPx(v float64) int {
	return int(math.Round(v))
}

// Max returns the larger of two integers.
func Max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
