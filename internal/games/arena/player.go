package arena

import (
	"github.com/vovakirdan/tui-arena/internal/config"
	"github.com/vovakirdan/tui-arena/internal/core"
)

// Player is the user-controlled square. It is never destroyed.
type Player struct {
	pos   core.Vec2
	halfW float32
	halfH float32
	color core.Color
	shoot core.Cooldown

	step        float32
	fastStep    float32
	bulletSpeed float32
	bulletHalfW float32
	bulletHalfH float32
}

// NewPlayer creates a player at pos using the player and bullet settings.
func NewPlayer(pos core.Vec2, pc config.PlayerConfig, bc config.BulletConfig) *Player {
	return &Player{
		pos:         pos,
		halfW:       pc.HalfWidth,
		halfH:       pc.HalfHeight,
		color:       core.ColorWhite,
		shoot:       core.NewCooldown(pc.FireCooldown),
		step:        pc.Step,
		fastStep:    pc.FastStep,
		bulletSpeed: pc.BulletSpeed,
		bulletHalfW: bc.HalfWidth,
		bulletHalfH: bc.HalfHeight,
	}
}

// Update advances the fire cooldown, moves the player and fires.
// A fired bullet is returned, or nil when none was spawned.
func (p *Player) Update(in Input, delta float32) *Bullet {
	p.shoot.Update(delta)
	p.move(in)
	return p.fire(in)
}

// move applies one step per held direction. Diagonals are not normalized.
func (p *Player) move(in Input) {
	step := p.step
	if in.Fast {
		step = p.fastStep
	}
	if in.MoveUp {
		p.pos.Y += step
	}
	if in.MoveDown {
		p.pos.Y -= step
	}
	if in.MoveLeft {
		p.pos.X -= step
	}
	if in.MoveRight {
		p.pos.X += step
	}
}

// fire restarts the cooldown whenever it has elapsed, even if no fire intent
// is held, and spawns a bullet only for a non-trivial aim direction.
func (p *Player) fire(in Input) *Bullet {
	if !p.shoot.IsElapsed() {
		return nil
	}
	p.shoot.Restart()

	var dir core.Vec2
	if in.FireRight {
		dir.X++
	}
	if in.FireLeft {
		dir.X--
	}
	if in.FireUp {
		dir.Y++
	}
	if in.FireDown {
		dir.Y--
	}
	if dir.Len() <= 0.5 {
		return nil
	}
	return NewBullet(p.pos, dir.Mul(p.bulletSpeed), p.bulletHalfW, p.bulletHalfH)
}

// HandleCollisions pushes the player out of walls. Every intersection is
// applied against the position read before the loop, not cumulatively.
func (p *Player) HandleCollisions(hits []core.Intersection) {
	base := p.pos
	for _, hit := range hits {
		switch hit.Side {
		case core.SideLeft:
			p.pos.X = base.X + hit.Amount
		case core.SideRight:
			p.pos.X = base.X - hit.Amount
		case core.SideTop:
			p.pos.Y = base.Y - hit.Amount
		case core.SideBottom:
			p.pos.Y = base.Y + hit.Amount
		}
	}
}

// Position returns the player centre.
func (p *Player) Position() core.Vec2 { return p.pos }

// Bounds returns the player box.
func (p *Player) Bounds() core.Box { return core.BoxAround(p.pos, p.halfW, p.halfH) }

// Color returns the player color.
func (p *Player) Color() core.Color { return p.color }

// Cooldown returns the fire cooldown.
func (p *Player) Cooldown() core.Cooldown { return p.shoot }
