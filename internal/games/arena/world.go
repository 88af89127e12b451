package arena

import (
	"fmt"
	"slices"

	"github.com/chewxy/math32"

	"github.com/vovakirdan/tui-arena/internal/config"
	"github.com/vovakirdan/tui-arena/internal/core"
)

// FrameTime is the caller-supplied timing of the current tick.
type FrameTime struct {
	Elapsed float32 // Seconds since session start
	Delta   float32 // Seconds since the previous tick
}

// StepResult describes the outcome of one World.Update call.
type StepResult struct {
	Frame      uint64
	Running    bool
	Rectangles []Rectangle // Bullets, player, enemies, walls in that order
	Spawned    int
	Culled     int
	Kills      int
}

// World owns every entity of one arena session. It is not safe for
// concurrent use; the caller drives it one tick at a time.
type World struct {
	cfg        config.ArenaConfig
	platform   Platform
	difficulty *config.DifficultyManager

	width, height float32
	frame         uint64
	time          FrameTime

	player     *Player
	walls      []Wall
	bullets    []*Bullet
	enemies    []*Enemy
	enemySpawn core.Cooldown

	kills int
}

// NewWorld builds a world from cfg. The player starts at the centre and the
// configured initial enemies are placed immediately.
func NewWorld(cfg config.ArenaConfig, p Platform) (*World, error) {
	if p == nil {
		return nil, ErrNoPlatform
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("arena: new world: %w", err)
	}

	w := &World{
		cfg:        cfg,
		platform:   p,
		difficulty: config.NewDifficultyManager(cfg.Difficulty),
		width:      cfg.World.Width,
		height:     cfg.World.Height,
		player:     NewPlayer(core.V(cfg.World.Width/2, cfg.World.Height/2), cfg.Player, cfg.Bullet),
		walls:      boundaryWalls(cfg.World.Width, cfg.World.Height, cfg.World.WallThickness),
		enemySpawn: core.NewCooldown(cfg.Enemy.SpawnInterval),
	}
	if !w.spawnFeasible() {
		return nil, fmt.Errorf("arena: new world %vx%v, radius %v: %w",
			w.width, w.height, cfg.Enemy.ExclusionRadius, ErrInfeasibleSpawn)
	}

	for _, pt := range cfg.Enemy.Initial {
		w.enemies = append(w.enemies, NewEnemy(EnemyNormal, core.V(pt.X, pt.Y), cfg.Enemy.HalfWidth, cfg.Enemy.HalfHeight))
	}
	return w, nil
}

// spawnFeasible reports whether the spawn area has a region of points at
// least the exclusion radius away from the player's start. The farthest
// point is always a corner, and a corner at exactly the radius is a single
// point that sampling never hits, so the comparison is strict.
func (w *World) spawnFeasible() bool {
	m := w.cfg.Enemy.SpawnMargin
	dx := math32.Max(w.player.pos.X-m, w.width-m-w.player.pos.X)
	dy := math32.Max(w.player.pos.Y-m, w.height-m-w.player.pos.Y)
	return math32.Hypot(dx, dy) > w.cfg.Enemy.ExclusionRadius
}

// Update advances the world by one tick:
//
//  1. enemy spawn cooldown and spawning
//  2. bullet motion and out-of-bounds culling
//  3. enemy homing
//  4. player movement and firing
//  5. player-vs-wall resolution
//  6. bullet-vs-enemy kills
//  7. render list
//
// A quit input or a negative delta leaves the world untouched. When spawning
// gives up the tick still completes and the returned error wraps
// ErrSpawnExhausted alongside a valid result.
func (w *World) Update(in Input, elapsed, delta float32) (StepResult, error) {
	if in.Quit {
		return StepResult{Frame: w.frame, Running: false}, nil
	}
	if delta < 0 {
		return StepResult{Frame: w.frame, Running: true}, fmt.Errorf("arena: update delta %v: %w", delta, ErrNegativeDelta)
	}

	w.frame++
	w.time = FrameTime{Elapsed: elapsed, Delta: delta}
	res := StepResult{Frame: w.frame, Running: true}

	spawned, spawnErr := w.updateEnemySpawn()
	res.Spawned = spawned
	res.Culled = w.updateBullets()
	w.updateEnemies()
	if b := w.player.Update(in, delta); b != nil {
		w.bullets = append(w.bullets, b)
	}
	w.player.HandleCollisions(w.playerWallHits())
	res.Kills = w.resolveKills()
	res.Rectangles = w.renderList()

	return res, spawnErr
}

// Frame runs Update and presents the resulting render list on the world's
// platform.
func (w *World) Frame(in Input, elapsed, delta float32) (StepResult, error) {
	res, err := w.Update(in, elapsed, delta)
	if res.Running && res.Rectangles != nil {
		Present(w.platform, res.Rectangles)
	}
	return res, err
}

func (w *World) updateEnemySpawn() (int, error) {
	w.enemySpawn.Update(w.time.Delta)
	if !w.enemySpawn.IsElapsed() {
		return 0, nil
	}

	spawned := 0
	pos, err := w.sampleSpawn()
	if err == nil {
		w.enemies = append(w.enemies, NewEnemy(EnemyNormal, pos, w.cfg.Enemy.HalfWidth, w.cfg.Enemy.HalfHeight))
		w.platform.Log("enemy spawned", "frame", w.frame, "x", pos.X, "y", pos.Y, "enemies", len(w.enemies))
		spawned = 1
	} else {
		w.platform.Log("enemy spawn skipped", "frame", w.frame, "err", err)
	}

	w.enemySpawn.SetDuration(w.difficulty.SpawnInterval(w.cfg.Enemy.SpawnInterval, w.kills, int(w.frame))) //#nosec G115 -- frame count fits in int
	w.enemySpawn.Restart()
	return spawned, err
}

// sampleSpawn draws uniform positions inside the spawn margin until one is
// at least the exclusion radius from the player.
func (w *World) sampleSpawn() (core.Vec2, error) {
	m := w.cfg.Enemy.SpawnMargin
	player := w.player.Position()
	for range w.cfg.Enemy.MaxSpawnAttempts {
		pos := core.V(
			w.platform.Random(m, w.width-m),
			w.platform.Random(m, w.height-m),
		)
		if pos.Sub(player).Len() >= w.cfg.Enemy.ExclusionRadius {
			return pos, nil
		}
	}
	return core.Vec2{}, fmt.Errorf("arena: spawn after %d attempts: %w", w.cfg.Enemy.MaxSpawnAttempts, ErrSpawnExhausted)
}

func (w *World) updateBullets() int {
	for _, b := range w.bullets {
		b.Update(w.time.Delta)
		if b.OutOfBounds(w.width, w.height) {
			b.kill()
		}
	}
	before := len(w.bullets)
	w.bullets = slices.DeleteFunc(w.bullets, (*Bullet).Dead)
	return before - len(w.bullets)
}

func (w *World) updateEnemies() {
	target := w.player.Position()
	for _, e := range w.enemies {
		e.Update(target, w.time.Delta, w.cfg.Enemy.Speed, w.cfg.Enemy.Homing)
	}
}

// playerWallHits collects at most one intersection per wall.
func (w *World) playerWallHits() []core.Intersection {
	var hits []core.Intersection
	for _, wall := range w.walls {
		if hit, ok := Intersect(w.player, wall); ok {
			hits = append(hits, hit)
		}
	}
	return hits
}

// resolveKills marks every overlapping bullet and enemy dead, then compacts
// both collections once. Multiple hits on the same entity are harmless.
func (w *World) resolveKills() int {
	for _, b := range w.bullets {
		for _, e := range w.enemies {
			if core.Overlaps(b.Bounds(), e.Bounds()) {
				b.kill()
				e.kill()
			}
		}
	}
	w.bullets = slices.DeleteFunc(w.bullets, (*Bullet).Dead)

	before := len(w.enemies)
	w.enemies = slices.DeleteFunc(w.enemies, (*Enemy).Dead)
	kills := before - len(w.enemies)
	w.kills += kills
	return kills
}

func (w *World) renderList() []Rectangle {
	rects := make([]Rectangle, 0, len(w.bullets)+1+len(w.enemies)+len(w.walls))
	for _, b := range w.bullets {
		rects = append(rects, Rect(b))
	}
	rects = append(rects, Rect(w.player))
	for _, e := range w.enemies {
		rects = append(rects, Rect(e))
	}
	for _, wall := range w.walls {
		rects = append(rects, Rect(wall))
	}
	return rects
}

// Player returns the player.
func (w *World) Player() *Player { return w.player }

// Bullets returns the live bullets. The slice must not be modified.
func (w *World) Bullets() []*Bullet { return w.bullets }

// Enemies returns the live enemies. The slice must not be modified.
func (w *World) Enemies() []*Enemy { return w.enemies }

// Walls returns the boundary walls.
func (w *World) Walls() []Wall { return w.walls }

// Kills returns the number of enemies destroyed this session.
func (w *World) Kills() int { return w.kills }

// Time returns the timing of the last tick.
func (w *World) Time() FrameTime { return w.time }

// FrameCount returns the number of completed ticks.
func (w *World) FrameCount() uint64 { return w.frame }

// Size returns the world dimensions.
func (w *World) Size() (float32, float32) { return w.width, w.height }

// SpawnCooldown returns the enemy spawn cooldown.
func (w *World) SpawnCooldown() core.Cooldown { return w.enemySpawn }
