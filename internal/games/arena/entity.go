// Package arena implements a top-down arena shooter simulation: a player
// confined by four walls fires bullets at homing enemies that spawn away from
// it. One call to World.Update advances the simulation by one tick.
package arena

import "github.com/vovakirdan/tui-arena/internal/core"

// Positioned is anything with a centre position in world space.
type Positioned interface {
	Position() core.Vec2
}

// Collidable is a positioned entity with an axis-aligned bounding box.
type Collidable interface {
	Positioned
	Bounds() core.Box
}

// Drawable is a collidable entity the renderer can draw as a filled
// rectangle of its bounds.
type Drawable interface {
	Collidable
	Color() core.Color
}

// Intersect reports how subject overlaps other.
func Intersect(subject, other Collidable) (core.Intersection, bool) {
	return core.Intersect(subject.Bounds(), other.Bounds())
}

// Rect returns the render rectangle for a drawable entity.
func Rect(d Drawable) Rectangle {
	b := d.Bounds()
	return Rectangle{
		Left:   b.Left,
		Right:  b.Right,
		Top:    b.Top,
		Bottom: b.Bottom,
		Color:  d.Color(),
	}
}
