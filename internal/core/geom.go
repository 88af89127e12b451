// Package core provides fundamental types and utilities for the arena.
// It contains no terminal dependencies (especially no Bubble Tea) to keep game
// logic pure and testable.
package core

// Rect represents an integer cell rectangle on a Screen.
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

// Box is an axis-aligned bounding box in world units.
// World space is y-up: Top is always >= Bottom.
type Box struct {
	Left, Right float32
	Top, Bottom float32
}

// BoxAround builds the box centred on pos with the given half-extents.
func BoxAround(pos Vec2, halfW, halfH float32) Box {
	return Box{
		Left:   pos.X - halfW,
		Right:  pos.X + halfW,
		Top:    pos.Y + halfH,
		Bottom: pos.Y - halfH,
	}
}

// Center returns the centre point of the box.
func (b Box) Center() Vec2 {
	return Vec2{X: (b.Left + b.Right) / 2, Y: (b.Top + b.Bottom) / 2}
}

// Side identifies which face of the other box the subject box penetrates.
type Side int

const (
	SideLeft Side = iota
	SideRight
	SideTop
	SideBottom
)

// String returns a human-readable name for the side.
func (s Side) String() string {
	switch s {
	case SideLeft:
		return "Left"
	case SideRight:
		return "Right"
	case SideTop:
		return "Top"
	case SideBottom:
		return "Bottom"
	default:
		return "Unknown"
	}
}

// Intersection is the resolution of an overlap along a single axis.
// Amount is the positive penetration depth.
type Intersection struct {
	Side   Side
	Amount float32
}

// Intersect tests subject a against other b.
//
// Each side gets a penetration candidate; the boxes overlap only when all
// four are strictly negative. The side with the greatest candidate (the
// shallowest penetration) wins, ties going to Left, Right, Top, Bottom in
// that order.
func Intersect(a, b Box) (Intersection, bool) {
	candidates := [4]float32{
		SideLeft:   a.Left - b.Right,
		SideRight:  b.Left - a.Right,
		SideTop:    b.Bottom - a.Top,
		SideBottom: a.Bottom - b.Top,
	}

	for _, c := range candidates {
		if c >= 0 {
			return Intersection{}, false
		}
	}

	best := SideLeft
	for s := SideRight; s <= SideBottom; s++ {
		// Strict comparison keeps the earlier side on ties.
		if candidates[s] > candidates[best] {
			best = s
		}
	}

	return Intersection{Side: best, Amount: -candidates[best]}, true
}

// Overlaps reports whether the two boxes intersect at all.
func Overlaps(a, b Box) bool {
	_, ok := Intersect(a, b)
	return ok
}

// Clamp restricts a value to be within [min, max].
func Clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// Min returns the smaller of two integers.
func Min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// Max returns the larger of two integers.
func Max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
