package arena

import (
	"io"
	"math/rand"

	"github.com/charmbracelet/log"
	"github.com/chewxy/math32"

	"github.com/vovakirdan/tui-arena/internal/core"
)

// Glyphs used by the terminal rasterizer.
const (
	BlockGlyph = '█'
	DotGlyph   = '•'
)

// Terminal is a Platform that rasterizes world rectangles onto a character
// screen. World space is y-up; screen rows grow downward.
type Terminal struct {
	rng    *rand.Rand
	logger *log.Logger

	worldW, worldH float32

	target *core.Screen
	top    int // Rows above the playfield reserved for the HUD
	frames uint64
	drawn  int
}

// NewTerminal creates a terminal platform for a worldW x worldH world.
// A nil logger discards log records.
func NewTerminal(seed int64, logger *log.Logger, worldW, worldH float32) *Terminal {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Terminal{
		rng:    rand.New(rand.NewSource(seed)), //#nosec G404 -- deterministic game RNG
		logger: logger,
		worldW: worldW,
		worldH: worldH,
	}
}

// Attach sets the screen the next frame is drawn onto. The playfield
// starts at row top.
func (t *Terminal) Attach(dst *core.Screen, top int) {
	t.target = dst
	t.top = top
}

// Random returns a uniform float in [min, max).
func (t *Terminal) Random(min, max float32) float32 {
	return min + t.rng.Float32()*(max-min)
}

// Log writes a debug record.
func (t *Terminal) Log(msg string, keyvals ...any) {
	t.logger.Debug(msg, keyvals...)
}

// StartFrame clears the playfield.
func (t *Terminal) StartFrame() {
	t.drawn = 0
	if t.target == nil {
		return
	}
	for y := t.top; y < t.target.Height(); y++ {
		for x := 0; x < t.target.Width(); x++ {
			t.target.Set(x, y, ' ')
		}
	}
}

// DrawRectangle fills every cell the rectangle touches. Rectangles smaller
// than a cell on both axes are drawn as a dot.
func (t *Terminal) DrawRectangle(r Rectangle) {
	t.drawn++
	if t.target == nil {
		return
	}
	cells, ok := t.cellRect(r)
	if !ok {
		return
	}
	glyph := BlockGlyph
	cw, ch := t.cellSize()
	if r.Right-r.Left < cw && r.Top-r.Bottom < ch {
		glyph = DotGlyph
	}
	t.target.DrawRect(cells, glyph, r.Color)
}

// EndFrame completes the frame.
func (t *Terminal) EndFrame() {
	t.frames++
}

// Frames returns the number of completed frames.
func (t *Terminal) Frames() uint64 { return t.frames }

// Drawn returns the number of rectangles drawn in the current frame.
func (t *Terminal) Drawn() int { return t.drawn }

// cellSize returns the world size of one screen cell.
func (t *Terminal) cellSize() (float32, float32) {
	cols, rows := t.playfield()
	if cols <= 0 || rows <= 0 {
		return t.worldW, t.worldH
	}
	return t.worldW / float32(cols), t.worldH / float32(rows)
}

func (t *Terminal) playfield() (int, int) {
	return t.target.Width(), t.target.Height() - t.top
}

// cellRect maps a world rectangle to the cells it covers, always at least
// one cell.
func (t *Terminal) cellRect(r Rectangle) (core.Rect, bool) {
	cols, rows := t.playfield()
	if cols <= 0 || rows <= 0 {
		return core.Rect{}, false
	}
	cw, ch := t.cellSize()

	x0 := int(math32.Floor(r.Left / cw))
	x1 := int(math32.Ceil(r.Right/cw)) - 1
	y0 := int(math32.Floor((t.worldH - r.Top) / ch))
	y1 := int(math32.Ceil((t.worldH-r.Bottom)/ch)) - 1
	x1 = core.Max(x1, x0)
	y1 = core.Max(y1, y0)

	x0 = core.Clamp(x0, 0, cols-1)
	x1 = core.Clamp(x1, 0, cols-1)
	y0 = core.Clamp(y0, 0, rows-1)
	y1 = core.Clamp(y1, 0, rows-1)

	return core.NewRect(x0, y0+t.top, x1-x0+1, y1-y0+1), true
}
