package arena

//go:generate go tool mockgen -destination=./mocks/platform_mock.go -package=mocks . Platform

import "github.com/vovakirdan/tui-arena/internal/core"

// Platform is the capability set the simulation needs from its host.
// Implementations are supplied once when the world is built.
type Platform interface {
	// Random returns a uniform float in [min, max).
	Random(min, max float32) float32
	// Log records a structured message.
	Log(msg string, keyvals ...any)
	// StartFrame begins a new render frame.
	StartFrame()
	// DrawRectangle draws one filled world-space rectangle.
	DrawRectangle(r Rectangle)
	// EndFrame finishes the current render frame.
	EndFrame()
}

// Rectangle is one entry of the render list, in world units (y-up).
type Rectangle struct {
	Left, Right float32
	Top, Bottom float32
	Color       core.Color
}

// Center returns the rectangle centre.
func (r Rectangle) Center() core.Vec2 {
	return core.V((r.Left+r.Right)/2, (r.Top+r.Bottom)/2)
}

// Present draws a render list through the platform, framed by
// StartFrame and EndFrame.
func Present(p Platform, rects []Rectangle) {
	p.StartFrame()
	for _, r := range rects {
		p.DrawRectangle(r)
	}
	p.EndFrame()
}

// Input is the per-tick snapshot of held intents.
type Input struct {
	MoveUp, MoveDown, MoveLeft, MoveRight bool
	FireUp, FireDown, FireLeft, FireRight bool
	Fast                                  bool
	Quit                                  bool
}

// InputFromFrame maps platform actions onto arena intents.
func InputFromFrame(f core.InputFrame) Input {
	return Input{
		MoveUp:    f.Has(core.ActionMoveUp),
		MoveDown:  f.Has(core.ActionMoveDown),
		MoveLeft:  f.Has(core.ActionMoveLeft),
		MoveRight: f.Has(core.ActionMoveRight),
		FireUp:    f.Has(core.ActionFireUp),
		FireDown:  f.Has(core.ActionFireDown),
		FireLeft:  f.Has(core.ActionFireLeft),
		FireRight: f.Has(core.ActionFireRight),
		Fast:      f.Has(core.ActionFast),
		Quit:      f.Has(core.ActionQuit),
	}
}
