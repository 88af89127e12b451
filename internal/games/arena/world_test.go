package arena

import (
	"errors"
	"testing"

	"github.com/chewxy/math32"

	"github.com/vovakirdan/tui-arena/internal/config"
	"github.com/vovakirdan/tui-arena/internal/core"
)

func TestIdleTickRenderList(t *testing.T) {
	w, _ := newTestWorld(t, nil)

	res, err := w.Update(Input{}, 0.1, 0.1)
	if err != nil {
		t.Fatalf("Update() failed: %v", err)
	}
	if !res.Running {
		t.Fatal("world stopped on an idle tick")
	}
	// 0 bullets, 1 player, 1 initial enemy, 4 walls
	if len(res.Rectangles) != 6 {
		t.Fatalf("render list has %d rects, want 6", len(res.Rectangles))
	}

	player := res.Rectangles[0]
	want := Rectangle{Left: 475, Right: 485, Top: 275, Bottom: 265, Color: core.ColorWhite}
	if player != want {
		t.Errorf("player rect = %+v, want %+v", player, want)
	}
	if c := player.Center(); c != core.V(480, 270) {
		t.Errorf("player centre = %v, want (480, 270)", c)
	}

	if res.Rectangles[1].Color != (core.Color{R: 0.1, G: 1, B: 0.1, A: 11}) {
		t.Errorf("second rect is not the enemy: %+v", res.Rectangles[1])
	}
	for i, r := range res.Rectangles[2:] {
		if r.Color != wallColor {
			t.Errorf("rect %d is not a wall: %+v", i+2, r)
		}
	}
	if res.Spawned != 0 || res.Culled != 0 || res.Kills != 0 {
		t.Errorf("unexpected activity: %+v", res)
	}
	if res.Frame != 1 || w.FrameCount() != 1 {
		t.Errorf("frame = %d, want 1", res.Frame)
	}
	if w.Time() != (FrameTime{Elapsed: 0.1, Delta: 0.1}) {
		t.Errorf("time = %+v", w.Time())
	}
}

func TestWallsHugEdges(t *testing.T) {
	w, _ := newTestWorld(t, nil)

	want := []core.Box{
		{Left: 0, Right: 4, Top: 540, Bottom: 0},
		{Left: 956, Right: 960, Top: 540, Bottom: 0},
		{Left: 0, Right: 960, Top: 4, Bottom: 0},
		{Left: 0, Right: 960, Top: 540, Bottom: 536},
	}
	walls := w.Walls()
	if len(walls) != len(want) {
		t.Fatalf("got %d walls, want %d", len(walls), len(want))
	}
	for i, wall := range walls {
		if wall.Bounds() != want[i] {
			t.Errorf("wall %d = %+v, want %+v", i, wall.Bounds(), want[i])
		}
	}
}

func TestShootRightSpawnsOneBullet(t *testing.T) {
	w, _ := newTestWorld(t, nil)

	// Fire cooldown 0.1 elapses within this tick.
	res, err := w.Update(Input{FireRight: true}, 0.2, 0.2)
	if err != nil {
		t.Fatalf("Update() failed: %v", err)
	}

	bullets := w.Bullets()
	if len(bullets) != 1 {
		t.Fatalf("got %d bullets, want 1", len(bullets))
	}
	if v := bullets[0].Velocity(); v != core.V(300, 0) {
		t.Errorf("velocity = %v, want (300, 0)", v)
	}
	if p := bullets[0].Position(); p != w.Player().Position() {
		t.Errorf("bullet at %v, player at %v", p, w.Player().Position())
	}

	// Bullets render before the player.
	if c := res.Rectangles[0].Center(); c != core.V(480, 270) {
		t.Errorf("first rect centre = %v, want bullet at (480, 270)", c)
	}
	if len(res.Rectangles) != 7 {
		t.Errorf("render list has %d rects, want 7", len(res.Rectangles))
	}
}

func TestDiagonalFireIsNotNormalized(t *testing.T) {
	w, _ := newTestWorld(t, nil)
	w.Update(Input{FireUp: true, FireLeft: true}, 0.2, 0.2)

	if len(w.Bullets()) != 1 {
		t.Fatalf("got %d bullets, want 1", len(w.Bullets()))
	}
	if v := w.Bullets()[0].Velocity(); v != core.V(-300, 300) {
		t.Errorf("velocity = %v, want (-300, 300)", v)
	}
}

func TestOpposingFireCancels(t *testing.T) {
	w, _ := newTestWorld(t, nil)
	w.Update(Input{FireLeft: true, FireRight: true}, 0.2, 0.2)

	if len(w.Bullets()) != 0 {
		t.Errorf("got %d bullets, want 0", len(w.Bullets()))
	}
	// The cooldown restarts even though nothing was fired.
	if r := w.Player().Cooldown().Remaining(); r != 0.1 {
		t.Errorf("fire cooldown remaining = %v, want 0.1", r)
	}
}

func TestFireRespectsCooldown(t *testing.T) {
	w, _ := newTestWorld(t, nil)
	in := Input{FireUp: true}

	w.Update(in, 0.2, 0.2)
	w.Update(in, 0.25, 0.05)
	if n := len(w.Bullets()); n != 1 {
		t.Fatalf("after cooldown-limited tick got %d bullets, want 1", n)
	}
	w.Update(in, 0.31, 0.06)
	if n := len(w.Bullets()); n != 2 {
		t.Errorf("after cooldown elapsed got %d bullets, want 2", n)
	}
}

func TestBulletCulledOnCrossingTick(t *testing.T) {
	w, _ := newTestWorld(t, nil)
	w.bullets = append(w.bullets,
		NewBullet(core.V(959, 270), core.V(300, 0), 2, 2), // crosses x=960
		NewBullet(core.V(480, 1), core.V(0, -300), 2, 2),  // crosses y=0
		NewBullet(core.V(900, 270), core.V(300, 0), 2, 2), // stays inside
	)

	res, err := w.Update(Input{}, 0.01, 0.01)
	if err != nil {
		t.Fatalf("Update() failed: %v", err)
	}
	if res.Culled != 2 {
		t.Errorf("culled = %d, want 2", res.Culled)
	}
	if len(w.Bullets()) != 1 {
		t.Fatalf("got %d bullets, want 1", len(w.Bullets()))
	}
	if p := w.Bullets()[0].Position(); !approxVec(p, core.V(903, 270)) {
		t.Errorf("survivor at %v, want (903, 270)", p)
	}
}

func TestOneBulletKillsTwoEnemies(t *testing.T) {
	w, _ := newTestWorld(t, func(c *config.ArenaConfig) { c.Enemy.Initial = nil })
	w.enemies = append(w.enemies,
		NewEnemy(EnemyNormal, core.V(300, 300), 5, 5),
		NewEnemy(EnemyNormal, core.V(302, 300), 5, 5),
	)
	w.bullets = append(w.bullets, NewBullet(core.V(301, 300), core.Vec2{}, 2, 2))

	res, err := w.Update(Input{}, 0, 0)
	if err != nil {
		t.Fatalf("Update() failed: %v", err)
	}
	if res.Kills != 2 {
		t.Errorf("kills = %d, want 2", res.Kills)
	}
	if len(w.Enemies()) != 0 {
		t.Errorf("got %d enemies, want 0", len(w.Enemies()))
	}
	if len(w.Bullets()) != 0 {
		t.Errorf("got %d bullets, want 0", len(w.Bullets()))
	}
	if w.Kills() != 2 {
		t.Errorf("total kills = %d, want 2", w.Kills())
	}
}

func TestKillsKeepSurvivorsInOrder(t *testing.T) {
	w, _ := newTestWorld(t, func(c *config.ArenaConfig) { c.Enemy.Initial = nil })
	e0 := NewEnemy(EnemyNormal, core.V(100, 400), 5, 5)
	e1 := NewEnemy(EnemyNormal, core.V(300, 400), 5, 5)
	e2 := NewEnemy(EnemyNormal, core.V(500, 400), 5, 5)
	w.enemies = append(w.enemies, e0, e1, e2)

	b0 := NewBullet(core.V(300, 400), core.Vec2{}, 2, 2)
	b1 := NewBullet(core.V(700, 100), core.Vec2{}, 2, 2)
	b2 := NewBullet(core.V(301, 401), core.Vec2{}, 2, 2)
	w.bullets = append(w.bullets, b0, b1, b2)

	w.Update(Input{}, 0, 0)

	if got := w.Enemies(); len(got) != 2 || got[0] != e0 || got[1] != e2 {
		t.Errorf("enemies = %v, want [e0 e2]", got)
	}
	if got := w.Bullets(); len(got) != 1 || got[0] != b1 {
		t.Errorf("bullets = %v, want [b1]", got)
	}
}

func TestPlayerPushedOutOfWall(t *testing.T) {
	w, _ := newTestWorld(t, nil)
	w.player.pos = core.V(6, 270)

	w.Update(Input{}, 0, 0)

	if p := w.Player().Position(); p != core.V(9, 270) {
		t.Errorf("player at %v, want (9, 270)", p)
	}
}

func TestPlayerPushedOutOfCorner(t *testing.T) {
	w, _ := newTestWorld(t, nil)
	w.player.pos = core.V(6, 6)

	w.Update(Input{}, 0, 0)

	if p := w.Player().Position(); p != core.V(9, 9) {
		t.Errorf("player at %v, want (9, 9)", p)
	}
}

func TestPlayerSettlesAgainstCorner(t *testing.T) {
	w, _ := newTestWorld(t, nil)
	in := Input{MoveLeft: true, MoveDown: true}
	for range 400 {
		w.Update(in, 0, 0)
	}
	if p := w.Player().Position(); p != core.V(9, 9) {
		t.Errorf("player at %v, want (9, 9)", p)
	}
}

func TestSpawnRejectsPointsNearPlayer(t *testing.T) {
	w, p := newTestWorld(t, func(c *config.ArenaConfig) { c.Enemy.Initial = nil })
	// First sample lands on the player, second in the corner.
	p.fractions = []float32{0.5, 0.5, 0, 0}

	res, err := w.Update(Input{}, 0.3, 0.3)
	if err != nil {
		t.Fatalf("Update() failed: %v", err)
	}
	if res.Spawned != 1 || len(w.Enemies()) != 1 {
		t.Fatalf("spawned %d, have %d enemies; want 1", res.Spawned, len(w.Enemies()))
	}
	if p.randomCalls != 4 {
		t.Errorf("random calls = %d, want 4", p.randomCalls)
	}
	if d := w.Enemies()[0].Position().Sub(w.Player().Position()).Len(); d < 100-18 {
		t.Errorf("enemy spawned %v from player", d)
	}
	if r := w.SpawnCooldown().Remaining(); r != 0.25 {
		t.Errorf("spawn cooldown remaining = %v, want 0.25", r)
	}
}

func TestSpawnExhaustedStillCompletesTick(t *testing.T) {
	w, p := newTestWorld(t, func(c *config.ArenaConfig) {
		c.Enemy.Initial = nil
		c.Enemy.MaxSpawnAttempts = 10
	})
	p.fractions = []float32{0.5}

	res, err := w.Update(Input{}, 0.3, 0.3)
	if !errors.Is(err, ErrSpawnExhausted) {
		t.Fatalf("Update() error = %v, want ErrSpawnExhausted", err)
	}
	if p.randomCalls != 20 {
		t.Errorf("random calls = %d, want 20", p.randomCalls)
	}
	if !res.Running || len(res.Rectangles) != 5 {
		t.Errorf("tick did not complete: running=%v rects=%d", res.Running, len(res.Rectangles))
	}
	if len(w.Enemies()) != 0 {
		t.Errorf("got %d enemies, want 0", len(w.Enemies()))
	}
	if w.SpawnCooldown().IsElapsed() {
		t.Error("spawn cooldown was not restarted")
	}
}

func TestSpawnIntervalFollowsDifficulty(t *testing.T) {
	w, p := newTestWorld(t, func(c *config.ArenaConfig) {
		c.Enemy.Initial = nil
		c.Difficulty = config.DifficultyConfig{
			Enabled:     true,
			Progression: config.ProgressionConfig{Type: "time", MaxAt: 1},
			Scaling:     config.ScalingConfig{SpawnReduction: 0.5},
		}
	})
	p.fractions = []float32{0}

	w.Update(Input{}, 0.3, 0.3)

	cd := w.SpawnCooldown()
	if cd.Duration() != 0.125 || cd.Remaining() != 0.125 {
		t.Errorf("spawn cooldown = %v/%v, want 0.125/0.125", cd.Remaining(), cd.Duration())
	}
}

func TestNewWorldInfeasibleSpawn(t *testing.T) {
	cfg := config.DefaultArenaConfig()
	cfg.World.Width = 100
	cfg.World.Height = 100
	cfg.Enemy.Initial = nil

	_, err := NewWorld(cfg, &fakePlatform{})
	if !errors.Is(err, ErrInfeasibleSpawn) {
		t.Errorf("NewWorld() error = %v, want ErrInfeasibleSpawn", err)
	}
}

func TestNewWorldRejectsCornerOnlySpawn(t *testing.T) {
	cfg := config.DefaultArenaConfig()
	cfg.World.Width = 200
	cfg.World.Height = 200
	cfg.Enemy.SpawnMargin = 0
	cfg.Enemy.Initial = nil
	cfg.Enemy.ExclusionRadius = math32.Hypot(100, 100)

	_, err := NewWorld(cfg, &fakePlatform{})
	if !errors.Is(err, ErrInfeasibleSpawn) {
		t.Errorf("NewWorld() error = %v, want ErrInfeasibleSpawn", err)
	}

	cfg.Enemy.ExclusionRadius -= 1
	if _, err := NewWorld(cfg, &fakePlatform{}); err != nil {
		t.Errorf("NewWorld() with room past the radius failed: %v", err)
	}
}

func TestNewWorldRejectsNegativeEnemySize(t *testing.T) {
	cfg := config.DefaultArenaConfig()
	cfg.Enemy.HalfWidth = -5
	if _, err := NewWorld(cfg, &fakePlatform{}); err == nil {
		t.Error("NewWorld accepted negative enemy half extents")
	}
}

func TestNewWorldErrors(t *testing.T) {
	if _, err := NewWorld(config.DefaultArenaConfig(), nil); !errors.Is(err, ErrNoPlatform) {
		t.Errorf("nil platform error = %v, want ErrNoPlatform", err)
	}

	cfg := config.DefaultArenaConfig()
	cfg.Enemy.Homing = "teleport"
	if _, err := NewWorld(cfg, &fakePlatform{}); err == nil {
		t.Error("expected error for invalid config")
	}
}

func TestQuitLeavesWorldUntouched(t *testing.T) {
	w, p := newTestWorld(t, nil)
	w.Update(Input{FireRight: true}, 0.2, 0.2)
	before := w.Snapshot()

	res, err := w.Frame(Input{Quit: true, MoveUp: true, FireUp: true}, 1, 1)
	if err != nil {
		t.Fatalf("Frame() failed: %v", err)
	}
	if res.Running {
		t.Error("quit tick reported running")
	}
	after := w.Snapshot()
	if before.Hash() != after.Hash() {
		t.Error("quit tick mutated the world")
	}
	if p.started != 0 || p.ended != 0 {
		t.Error("quit tick presented a frame")
	}
}

func TestNegativeDeltaRejected(t *testing.T) {
	w, _ := newTestWorld(t, nil)
	before := w.Snapshot()

	_, err := w.Update(Input{MoveUp: true}, 0, -0.1)
	if !errors.Is(err, ErrNegativeDelta) {
		t.Fatalf("Update() error = %v, want ErrNegativeDelta", err)
	}
	after := w.Snapshot()
	if before.Hash() != after.Hash() {
		t.Error("rejected tick mutated the world")
	}
}

func TestFramePresentsRenderList(t *testing.T) {
	w, p := newTestWorld(t, nil)

	res, err := w.Frame(Input{}, 0.1, 0.1)
	if err != nil {
		t.Fatalf("Frame() failed: %v", err)
	}
	if p.started != 1 || p.ended != 1 {
		t.Errorf("frames started/ended = %d/%d, want 1/1", p.started, p.ended)
	}
	if len(p.rects) != len(res.Rectangles) {
		t.Fatalf("drew %d rects, want %d", len(p.rects), len(res.Rectangles))
	}
	for i := range p.rects {
		if p.rects[i] != res.Rectangles[i] {
			t.Errorf("rect %d = %+v, want %+v", i, p.rects[i], res.Rectangles[i])
		}
	}
}

func TestDeterminism(t *testing.T) {
	// Two worlds with the same seed should produce identical snapshots
	run := func() Snapshot {
		cfg := config.DefaultArenaConfig()
		w, err := NewWorld(cfg, NewTerminal(12345, nil, cfg.World.Width, cfg.World.Height))
		if err != nil {
			t.Fatalf("NewWorld() failed: %v", err)
		}
		for i := range 600 {
			in := Input{
				MoveUp:    i%120 < 30,
				MoveLeft:  i%90 < 20,
				FireRight: i%3 == 0,
				FireUp:    i%5 == 0,
			}
			w.Update(in, float32(i+1)/60, 1.0/60)
		}
		return w.Snapshot()
	}

	snap1 := run()
	snap2 := run()

	if snap1.Frame != 600 {
		t.Errorf("frame = %d, want 600", snap1.Frame)
	}
	if snap1.Hash() != snap2.Hash() {
		t.Errorf("hash mismatch: %d vs %d", snap1.Hash(), snap2.Hash())
	}
	if snap1.EnemyCount != snap2.EnemyCount || snap1.Kills != snap2.Kills {
		t.Errorf("state mismatch: enemies %d/%d kills %d/%d",
			snap1.EnemyCount, snap2.EnemyCount, snap1.Kills, snap2.Kills)
	}
}
