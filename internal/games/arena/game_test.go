package arena

import (
	"strings"
	"testing"

	"github.com/vovakirdan/tui-arena/internal/config"
	"github.com/vovakirdan/tui-arena/internal/core"
	"github.com/vovakirdan/tui-arena/internal/registry"
)

func newTestGame(t *testing.T, classic bool) *Game {
	t.Helper()
	g := New()
	if classic {
		g = NewClassic()
	}
	cfg := config.DefaultArenaConfig()
	if classic {
		cfg.Enemy.Homing = config.HomingPerTick
	}
	rt := core.RuntimeConfig{ScreenW: 96, ScreenH: 55, TickRate: 60, Seed: 42}
	if err := g.ResetWith(rt, cfg); err != nil {
		t.Fatalf("ResetWith() failed: %v", err)
	}
	return g
}

func TestRegistered(t *testing.T) {
	for _, id := range []string{"arena", "arena_classic"} {
		if !registry.Exists(id) {
			t.Errorf("%s not registered", id)
		}
		g, err := registry.Create(id)
		if err != nil {
			t.Fatalf("Create(%s) failed: %v", id, err)
		}
		if g.ID() != id {
			t.Errorf("ID() = %q, want %q", g.ID(), id)
		}
	}
}

func TestGameStepAdvancesWorld(t *testing.T) {
	g := newTestGame(t, false)

	in := core.NewInputFrame()
	in.Set(core.ActionMoveRight)
	res := g.Step(in)
	if res.Err != nil {
		t.Fatalf("Step() error: %v", res.Err)
	}
	if res.State.GameOver {
		t.Fatal("game over after one tick")
	}
	if p := g.World().Player().Position(); p != core.V(481.5, 270) {
		t.Errorf("player at %v, want (481.5, 270)", p)
	}
	if g.World().FrameCount() != 1 {
		t.Errorf("frame = %d, want 1", g.World().FrameCount())
	}
}

func TestGameQuitEndsSession(t *testing.T) {
	g := newTestGame(t, false)

	in := core.NewInputFrame()
	in.Set(core.ActionQuit)
	res := g.Step(in)
	if !res.State.GameOver {
		t.Fatal("quit did not end the session")
	}
	if g.World().FrameCount() != 0 {
		t.Errorf("quit advanced the world to frame %d", g.World().FrameCount())
	}

	// Further steps are ignored.
	g.Step(core.NewInputFrame())
	if g.World().FrameCount() != 0 {
		t.Error("step after game over advanced the world")
	}
}

func TestGamePauseToggles(t *testing.T) {
	g := newTestGame(t, false)

	pause := core.NewInputFrame()
	pause.Set(core.ActionPause)
	if res := g.Step(pause); !res.State.Paused {
		t.Fatal("pause not applied")
	}
	g.Step(core.NewInputFrame())
	if g.World().FrameCount() != 0 {
		t.Error("paused game advanced")
	}
	if res := g.Step(pause); res.State.Paused {
		t.Fatal("pause not released")
	}
	if g.World().FrameCount() != 1 {
		t.Errorf("frame = %d, want 1", g.World().FrameCount())
	}
}

func TestGameScoreCountsKills(t *testing.T) {
	g := newTestGame(t, false)
	w := g.World()
	w.enemies = append(w.enemies[:0], NewEnemy(EnemyNormal, core.V(600, 270), 5, 5))
	w.bullets = append(w.bullets, NewBullet(core.V(600, 270), core.Vec2{}, 2, 2))

	res := g.Step(core.NewInputFrame())
	if res.State.Score != 1 {
		t.Errorf("score = %d, want 1", res.State.Score)
	}
}

func TestGameRender(t *testing.T) {
	g := newTestGame(t, false)
	screen := core.NewScreen(96, 55)

	g.Render(screen)

	if !strings.Contains(screen.Row(0), "Kills: 0") {
		t.Errorf("HUD = %q", screen.Row(0))
	}
	// Left wall occupies the first column of the playfield.
	if screen.Get(0, 1) != BlockGlyph || screen.Get(0, 54) != BlockGlyph {
		t.Errorf("left wall missing:\n%s", screen.String())
	}
	// Player at the centre.
	if screen.Get(47, 27) != BlockGlyph {
		t.Errorf("player missing:\n%s", screen.String())
	}
}

func TestGameRenderPausedBanner(t *testing.T) {
	g := newTestGame(t, false)
	pause := core.NewInputFrame()
	pause.Set(core.ActionPause)
	g.Step(pause)

	screen := core.NewScreen(96, 55)
	g.Render(screen)

	if !strings.Contains(screen.Row(27), "PAUSED") {
		t.Fatalf("pause text missing:\n%s", screen.String())
	}
	if screen.Get(33, 26) != '┌' || screen.Get(62, 28) != '┘' {
		t.Errorf("pause box missing:\n%s", screen.String())
	}
}

func TestClassicModeTitle(t *testing.T) {
	g := newTestGame(t, true)
	if g.Title() != "Arena (Classic)" || g.ID() != "arena_classic" {
		t.Errorf("classic identity = %q/%q", g.ID(), g.Title())
	}
}

func TestGameDeterminism(t *testing.T) {
	run := func() uint64 {
		g := newTestGame(t, true)
		in := core.NewInputFrame()
		for i := range 300 {
			in.Clear()
			if i%2 == 0 {
				in.Set(core.ActionFireLeft)
			}
			if i%7 == 0 {
				in.Set(core.ActionMoveDown)
			}
			g.Step(in)
		}
		snap := g.World().Snapshot()
		return snap.Hash()
	}
	if a, b := run(), run(); a != b {
		t.Errorf("hash mismatch: %d vs %d", a, b)
	}
}
