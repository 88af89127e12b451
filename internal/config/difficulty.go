package config

import "math"

// DifficultyManager calculates dynamic game parameters based on kills/time.
type DifficultyManager struct {
	cfg          DifficultyConfig
	initialLevel float64
}

// NewDifficultyManager creates a new difficulty manager.
func NewDifficultyManager(cfg DifficultyConfig) *DifficultyManager {
	return &DifficultyManager{
		cfg:          cfg,
		initialLevel: clampF(cfg.InitialLevel, 0.0, 1.0),
	}
}

// Level returns the current difficulty level (0.0 to 1.0) based on kills/ticks.
func (d *DifficultyManager) Level(kills int, ticks int) float64 {
	if !d.cfg.Enabled || d.cfg.Progression.Type == "none" {
		return d.initialLevel
	}

	var progress float64
	maxAt := float64(d.cfg.Progression.MaxAt)
	if maxAt <= 0 {
		maxAt = 1 // Prevent division by zero
	}

	switch d.cfg.Progression.Type {
	case "score":
		progress = float64(kills) / maxAt
	case "time":
		progress = float64(ticks) / maxAt
	default:
		return d.initialLevel
	}

	// Clamp progress to [0, 1]
	progress = clampF(progress, 0.0, 1.0)

	// Interpolate from initial level to 1.0
	return d.initialLevel + progress*(1.0-d.initialLevel)
}

// SpawnInterval returns the enemy spawn interval for the current level.
// The interval shrinks by up to spawn_reduction of base and never drops
// below a fifth of base.
func (d *DifficultyManager) SpawnInterval(base float32, kills int, ticks int) float32 {
	if !d.cfg.Enabled {
		return base
	}
	level := d.Level(kills, ticks)
	factor := 1.0 - level*clampF(d.cfg.Scaling.SpawnReduction, 0.0, 1.0)
	result := float64(base) * factor
	if floor := float64(base) * 0.2; result < floor { // Minimum playable interval
		result = floor
	}
	return float32(result)
}

// clampF restricts a float64 to [min, max].
func clampF(val, min, max float64) float64 {
	return math.Max(min, math.Min(max, val))
}
