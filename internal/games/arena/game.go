package arena

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-arena/internal/config"
	"github.com/vovakirdan/tui-arena/internal/core"
	"github.com/vovakirdan/tui-arena/internal/registry"
)

// hudRows is the number of screen rows above the playfield.
const hudRows = 1

// configPath stores the custom config path set via CLI
var configPath string

// difficultyPreset stores the difficulty preset set via CLI
var difficultyPreset config.DifficultyPreset

// logger receives platform log records; nil discards them.
var logger *log.Logger

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset.
func SetDifficultyPreset(preset string) {
	difficultyPreset = config.ParsePreset(preset)
}

// SetLogger sets the logger used by games created afterwards.
func SetLogger(l *log.Logger) {
	logger = l
}

// Game adapts a World to the registry's fixed-tick game interface.
type Game struct {
	classic bool

	world *World
	term  *Terminal
	last  []Rectangle

	delta   float32
	elapsed float32

	gameOver bool
	paused   bool
}

// New creates an arena game whose enemies home at a frame-rate independent
// speed.
func New() *Game {
	return &Game{}
}

// NewClassic creates an arena game whose enemies move one unit per tick.
func NewClassic() *Game {
	return &Game{classic: true}
}

func init() {
	registry.Register("arena", func() registry.Game {
		return New()
	})
	registry.Register("arena_classic", func() registry.Game {
		return NewClassic()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	if g.classic {
		return "arena_classic"
	}
	return "arena"
}

// Title returns the display name.
func (g *Game) Title() string {
	if g.classic {
		return "Arena (Classic)"
	}
	return "Arena"
}

// Reset loads the configuration and builds a fresh world.
func (g *Game) Reset(rt core.RuntimeConfig) error {
	cfg, err := config.LoadArena(configPath)
	if err != nil {
		return fmt.Errorf("arena: reset: %w", err)
	}
	config.ApplyArenaPreset(&cfg, difficultyPreset)
	if g.classic {
		cfg.Enemy.Homing = config.HomingPerTick
	}
	return g.ResetWith(rt, cfg)
}

// ResetWith builds a fresh world from an explicit configuration.
func (g *Game) ResetWith(rt core.RuntimeConfig, cfg config.ArenaConfig) error {
	term := NewTerminal(rt.Seed, logger, cfg.World.Width, cfg.World.Height)
	world, err := NewWorld(cfg, term)
	if err != nil {
		return err
	}

	g.world = world
	g.term = term
	g.last = world.renderList()
	g.delta = rt.Delta()
	g.elapsed = 0
	g.gameOver = false
	g.paused = false
	return nil
}

// Step advances the world by one tick. A quit intent ends the session.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.world == nil || g.gameOver {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused && !in.Has(core.ActionQuit) {
		return core.StepResult{State: g.State()}
	}

	res, err := g.world.Update(InputFromFrame(in), g.elapsed+g.delta, g.delta)
	if !res.Running {
		g.gameOver = true
		return core.StepResult{State: g.State()}
	}
	g.elapsed += g.delta
	// Spawn exhaustion is already reported through the platform log.
	if err != nil && !errors.Is(err, ErrSpawnExhausted) {
		return core.StepResult{State: g.State(), Err: err}
	}
	g.last = res.Rectangles

	return core.StepResult{State: g.State()}
}

// Render draws the HUD and the last render list into dst.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	if g.world == nil {
		return
	}

	g.term.Attach(dst, hudRows)
	Present(g.term, g.last)

	hud := fmt.Sprintf(" %s  Kills: %d  Enemies: %d  Bullets: %d",
		g.Title(), g.world.Kills(), len(g.world.Enemies()), len(g.world.Bullets()))
	dst.DrawText(0, 0, hud)

	if g.paused {
		drawPauseBanner(dst)
	}
}

// pauseText is the message boxed in the middle of the screen while paused.
const pauseText = " PAUSED - press P to resume "

func drawPauseBanner(dst *core.Screen) {
	w := len(pauseText) + 2
	y := dst.Height() / 2
	box := core.NewRect((dst.Width()-w)/2, y-1, w, 3)
	dst.DrawRect(box, ' ', core.ColorDefault)
	dst.DrawBox(box)
	dst.DrawTextCentered(y, pauseText)
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	kills := 0
	if g.world != nil {
		kills = g.world.Kills()
	}
	return core.GameState{
		Score:    kills,
		GameOver: g.gameOver,
		Paused:   g.paused,
	}
}

// Frames returns the number of ticks the current world has run.
func (g *Game) Frames() uint64 {
	if g.world == nil {
		return 0
	}
	return g.world.FrameCount()
}

// World returns the underlying world, or nil before the first Reset.
func (g *Game) World() *World {
	return g.world
}
