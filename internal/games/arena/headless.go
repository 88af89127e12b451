package arena

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-arena/internal/config"
)

// ParseInput reads a held-input description such as "d,right,fast".
// Movement uses w/a/s/d, firing uses up/down/left/right, and "fast" holds
// the fast-move modifier. An empty string is no input.
func ParseInput(s string) (Input, error) {
	var in Input
	for _, tok := range strings.Split(s, ",") {
		switch strings.ToLower(strings.TrimSpace(tok)) {
		case "":
		case "w":
			in.MoveUp = true
		case "s":
			in.MoveDown = true
		case "a":
			in.MoveLeft = true
		case "d":
			in.MoveRight = true
		case "up":
			in.FireUp = true
		case "down":
			in.FireDown = true
		case "left":
			in.FireLeft = true
		case "right":
			in.FireRight = true
		case "fast":
			in.Fast = true
		default:
			return Input{}, fmt.Errorf("arena: unknown input %q", tok)
		}
	}
	return in, nil
}

// Summary describes the world after a headless run.
type Summary struct {
	Frames    uint64
	Kills     int
	Enemies   int
	Bullets   int
	Spawned   int
	Culled    int
	Exhausted int // Ticks on which spawning gave up
	Elapsed   float32
	Hash      uint64
}

// RunHeadless steps a fresh world ticks times with the same held input and
// no screen attached. Spawn exhaustion is counted; any other
// error stops the run.
func RunHeadless(cfg config.ArenaConfig, seed int64, ticks int, delta float32, in Input, logger *log.Logger) (Summary, error) {
	term := NewTerminal(seed, logger, cfg.World.Width, cfg.World.Height)
	w, err := NewWorld(cfg, term)
	if err != nil {
		return Summary{}, err
	}

	var sum Summary
	var elapsed float32
	for range ticks {
		elapsed += delta
		res, err := w.Frame(in, elapsed, delta)
		switch {
		case errors.Is(err, ErrSpawnExhausted):
			sum.Exhausted++
		case err != nil:
			return sum, err
		}
		sum.Spawned += res.Spawned
		sum.Culled += res.Culled
	}

	snap := w.Snapshot()
	sum.Frames = w.FrameCount()
	sum.Kills = w.Kills()
	sum.Enemies = len(w.Enemies())
	sum.Bullets = len(w.Bullets())
	sum.Elapsed = elapsed
	sum.Hash = snap.Hash()
	return sum, nil
}
