package arena

import "github.com/vovakirdan/tui-arena/internal/core"

// Bullet travels in a straight line until it leaves the world or hits an
// enemy. Its red channel pulses with age.
type Bullet struct {
	pos   core.Vec2
	vel   core.Vec2
	halfW float32
	halfH float32
	color core.Color
	age   float32
	dead  bool
}

// NewBullet creates a bullet at pos moving with velocity vel.
func NewBullet(pos, vel core.Vec2, halfW, halfH float32) *Bullet {
	return &Bullet{
		pos:   pos,
		vel:   vel,
		halfW: halfW,
		halfH: halfH,
		color: core.Color{R: 1, G: 0.7, B: 0.7, A: 1},
	}
}

// Update integrates position by velocity*delta and advances the color pulse.
func (b *Bullet) Update(delta float32) {
	b.age += delta
	b.pos = b.pos.Add(b.vel.Mul(delta))
	b.color.R = core.Pulse(0.7, 1.0, b.age*5)
}

// OutOfBounds reports whether the centre has left [0, w] x [0, h].
func (b *Bullet) OutOfBounds(w, h float32) bool {
	return b.pos.X < 0 || b.pos.X > w || b.pos.Y < 0 || b.pos.Y > h
}

// Position returns the bullet centre.
func (b *Bullet) Position() core.Vec2 { return b.pos }

// Velocity returns the bullet velocity in units per second.
func (b *Bullet) Velocity() core.Vec2 { return b.vel }

// Bounds returns the bullet box.
func (b *Bullet) Bounds() core.Box { return core.BoxAround(b.pos, b.halfW, b.halfH) }

// Color returns the current bullet color.
func (b *Bullet) Color() core.Color { return b.color }

// Dead reports whether the bullet is marked for removal.
func (b *Bullet) Dead() bool { return b.dead }

func (b *Bullet) kill() { b.dead = true }
