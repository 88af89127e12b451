package arena

import (
	"testing"

	"github.com/chewxy/math32"

	"github.com/vovakirdan/tui-arena/internal/config"
	"github.com/vovakirdan/tui-arena/internal/core"
)

// fakePlatform replays a fixed queue of random fractions and records calls.
type fakePlatform struct {
	fractions   []float32 // Consumed in order; the last value repeats
	randomCalls int
	logs        []string
	started     int
	ended       int
	rects       []Rectangle
}

func (f *fakePlatform) Random(min, max float32) float32 {
	f.randomCalls++
	v := float32(0)
	if len(f.fractions) > 0 {
		v = f.fractions[0]
		if len(f.fractions) > 1 {
			f.fractions = f.fractions[1:]
		}
	}
	return min + v*(max-min)
}

func (f *fakePlatform) Log(msg string, _ ...any)  { f.logs = append(f.logs, msg) }
func (f *fakePlatform) StartFrame()               { f.started++; f.rects = f.rects[:0] }
func (f *fakePlatform) DrawRectangle(r Rectangle) { f.rects = append(f.rects, r) }
func (f *fakePlatform) EndFrame()                 { f.ended++ }

func newTestWorld(t *testing.T, mutate func(*config.ArenaConfig)) (*World, *fakePlatform) {
	t.Helper()
	cfg := config.DefaultArenaConfig()
	if mutate != nil {
		mutate(&cfg)
	}
	p := &fakePlatform{}
	w, err := NewWorld(cfg, p)
	if err != nil {
		t.Fatalf("NewWorld() failed: %v", err)
	}
	return w, p
}

func approx(a, b float32) bool {
	return math32.Abs(a-b) < 1e-4
}

func approxVec(a, b core.Vec2) bool {
	return approx(a.X, b.X) && approx(a.Y, b.Y)
}
