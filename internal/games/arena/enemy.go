package arena

import (
	"github.com/vovakirdan/tui-arena/internal/config"
	"github.com/vovakirdan/tui-arena/internal/core"
)

// EnemyType selects enemy behaviour.
type EnemyType int

const (
	// EnemyNormal homes straight at the player.
	EnemyNormal EnemyType = iota
)

// String returns the enemy type name.
func (t EnemyType) String() string {
	switch t {
	case EnemyNormal:
		return "Normal"
	default:
		return "Unknown"
	}
}

// Enemy chases the player. Its size pulses on two independent phases.
type Enemy struct {
	kind   EnemyType
	pos    core.Vec2
	baseW  float32
	baseH  float32
	width  float32
	height float32
	color  core.Color
	age    float32
	dead   bool
}

// NewEnemy creates an enemy at pos with the given resting half-extents.
func NewEnemy(kind EnemyType, pos core.Vec2, halfW, halfH float32) *Enemy {
	return &Enemy{
		kind:   kind,
		pos:    pos,
		baseW:  halfW * 2,
		baseH:  halfH * 2,
		width:  halfW * 2,
		height: halfH * 2,
		color:  core.Color{R: 0.1, G: 1, B: 0.1, A: 11},
	}
}

// Update moves the enemy toward target. In scaled mode it covers
// speed*delta units; in per-tick mode it covers exactly one unit.
func (e *Enemy) Update(target core.Vec2, delta, speed float32, mode config.HomingMode) {
	e.age += delta
	switch e.kind {
	case EnemyNormal:
		dir := target.Sub(e.pos).Normalized()
		step := float32(1)
		if mode == config.HomingScaled {
			step = speed * delta
		}
		e.pos = e.pos.Add(dir.Mul(step))
		e.width = e.baseW + core.Pulse(0, 5, e.age*10)
		e.height = e.baseH + core.Pulse(0, 5, e.age*7.5)
	}
}

// Kind returns the enemy type.
func (e *Enemy) Kind() EnemyType { return e.kind }

// Position returns the enemy centre.
func (e *Enemy) Position() core.Vec2 { return e.pos }

// Bounds returns the current, pulsing enemy box.
func (e *Enemy) Bounds() core.Box { return core.BoxAround(e.pos, e.width/2, e.height/2) }

// Color returns the enemy color.
func (e *Enemy) Color() core.Color { return e.color }

// Dead reports whether the enemy is marked for removal.
func (e *Enemy) Dead() bool { return e.dead }

func (e *Enemy) kill() { e.dead = true }
