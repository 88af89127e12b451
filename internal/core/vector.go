package core

import "github.com/chewxy/math32"

// Vec2 is a 2D float vector. It is a value type and is copied freely.
type Vec2 struct {
	X, Y float32
}

// V returns a vector with the given components.
func V(x, y float32) Vec2 {
	return Vec2{X: x, Y: y}
}

// Add returns v + o.
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{X: v.X + o.X, Y: v.Y + o.Y}
}

// Sub returns v - o.
func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{X: v.X - o.X, Y: v.Y - o.Y}
}

// Mul scales the vector by m.
func (v Vec2) Mul(m float32) Vec2 {
	return Vec2{X: v.X * m, Y: v.Y * m}
}

// Len returns the euclidean length.
func (v Vec2) Len() float32 {
	return math32.Hypot(v.X, v.Y)
}

// Normalized returns the unit vector pointing the same way.
// The zero vector normalizes to the zero vector.
func (v Vec2) Normalized() Vec2 {
	l := v.Len()
	if l == 0 {
		return Vec2{}
	}
	return Vec2{X: v.X / l, Y: v.Y / l}
}

// Pulse maps sin(x) from [-1, 1] onto [min, max].
// Panics if min >= max.
func Pulse(min, max, x float32) float32 {
	if min >= max {
		panic("core: Pulse requires min < max")
	}
	v := (math32.Sin(x) + 1) / 2
	return min + v*(max-min)
}
