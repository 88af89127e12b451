package arena

import "github.com/vovakirdan/tui-arena/internal/core"

var wallColor = core.Color{R: 1, G: 0.1, B: 0.1, A: 1}

// Wall is a static arena boundary.
type Wall struct {
	pos   core.Vec2
	halfW float32
	halfH float32
	color core.Color
}

// NewWall creates a wall centred on pos with the given full size.
func NewWall(pos core.Vec2, width, height float32) Wall {
	return Wall{pos: pos, halfW: width / 2, halfH: height / 2, color: wallColor}
}

// boundaryWalls returns the four walls hugging the edges of a w x h world.
func boundaryWalls(w, h, thickness float32) []Wall {
	half := thickness / 2
	return []Wall{
		NewWall(core.V(half, h/2), thickness, h),
		NewWall(core.V(w-half, h/2), thickness, h),
		NewWall(core.V(w/2, half), w, thickness),
		NewWall(core.V(w/2, h-half), w, thickness),
	}
}

// Position returns the wall centre.
func (w Wall) Position() core.Vec2 { return w.pos }

// Bounds returns the wall box.
func (w Wall) Bounds() core.Box { return core.BoxAround(w.pos, w.halfW, w.halfH) }

// Color returns the wall color.
func (w Wall) Color() core.Color { return w.color }
