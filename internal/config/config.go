// Package config provides YAML-based arena configuration loading and
// difficulty management.
package config

import (
	"errors"
	"fmt"
)

// HomingMode selects how enemy homing speed relates to frame time.
type HomingMode string

const (
	// HomingScaled moves enemies Speed units per second.
	HomingScaled HomingMode = "scaled"
	// HomingPerTick moves enemies one unit per tick regardless of delta.
	HomingPerTick HomingMode = "per_tick"
)

// ArenaConfig contains all configuration for the arena shooter.
type ArenaConfig struct {
	World      WorldConfig      `yaml:"world"`
	Player     PlayerConfig     `yaml:"player"`
	Bullet     BulletConfig     `yaml:"bullet"`
	Enemy      EnemyConfig      `yaml:"enemy"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// WorldConfig defines the arena dimensions in world units.
type WorldConfig struct {
	Width         float32 `yaml:"width"`
	Height        float32 `yaml:"height"`
	WallThickness float32 `yaml:"wall_thickness"`
}

// PlayerConfig defines player movement and firing.
type PlayerConfig struct {
	HalfWidth    float32 `yaml:"half_width"`
	HalfHeight   float32 `yaml:"half_height"`
	Step         float32 `yaml:"step"`          // Units per tick
	FastStep     float32 `yaml:"fast_step"`     // Units per tick while the fast modifier is held
	FireCooldown float32 `yaml:"fire_cooldown"` // Seconds between shots
	BulletSpeed  float32 `yaml:"bullet_speed"`  // Units per second along each fire axis
}

// BulletConfig defines bullet dimensions.
type BulletConfig struct {
	HalfWidth  float32 `yaml:"half_width"`
	HalfHeight float32 `yaml:"half_height"`
}

// EnemyConfig defines enemy size, homing and spawning.
type EnemyConfig struct {
	HalfWidth        float32    `yaml:"half_width"`
	HalfHeight       float32    `yaml:"half_height"`
	Speed            float32    `yaml:"speed"` // Units per second in scaled mode
	Homing           HomingMode `yaml:"homing"`
	SpawnInterval    float32    `yaml:"spawn_interval"`     // Seconds between spawns
	SpawnMargin      float32    `yaml:"spawn_margin"`       // Distance kept from the world edge
	ExclusionRadius  float32    `yaml:"exclusion_radius"`   // Minimum spawn distance from the player
	MaxSpawnAttempts int        `yaml:"max_spawn_attempts"` // Rejection sampling cap
	Initial          []Point    `yaml:"initial"`            // Enemies present at world start
}

// Point is a world position in YAML form.
type Point struct {
	X float32 `yaml:"x"`
	Y float32 `yaml:"y"`
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases over time.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "score", "time", or "none"
	MaxAt int    `yaml:"max_at"` // Kills/ticks at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	SpawnReduction float64 `yaml:"spawn_reduction"` // Fraction of the spawn interval removed at max difficulty
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset converts a CLI string into a preset. Unknown strings yield "".
func ParsePreset(s string) DifficultyPreset {
	switch DifficultyPreset(s) {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return DifficultyPreset(s)
	default:
		return ""
	}
}

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

// Validate reports configuration values the simulation cannot run with.
func (c ArenaConfig) Validate() error {
	var errs []error
	if c.World.Width <= 0 || c.World.Height <= 0 {
		errs = append(errs, fmt.Errorf("world size must be positive, got %vx%v", c.World.Width, c.World.Height))
	}
	if c.World.WallThickness <= 0 {
		errs = append(errs, errors.New("world wall_thickness must be positive"))
	}
	if c.Player.HalfWidth <= 0 || c.Player.HalfHeight <= 0 {
		errs = append(errs, errors.New("player half extents must be positive"))
	}
	if c.Bullet.HalfWidth <= 0 || c.Bullet.HalfHeight <= 0 {
		errs = append(errs, errors.New("bullet half extents must be positive"))
	}
	if c.Player.Step <= 0 || c.Player.FastStep <= 0 {
		errs = append(errs, errors.New("player step and fast_step must be positive"))
	}
	if c.Player.FireCooldown <= 0 {
		errs = append(errs, errors.New("player fire_cooldown must be positive"))
	}
	if c.Player.BulletSpeed <= 0 {
		errs = append(errs, errors.New("player bullet_speed must be positive"))
	}
	if c.Enemy.HalfWidth <= 0 || c.Enemy.HalfHeight <= 0 {
		errs = append(errs, errors.New("enemy half extents must be positive"))
	}
	if c.Enemy.Speed <= 0 {
		errs = append(errs, errors.New("enemy speed must be positive"))
	}
	if c.Enemy.ExclusionRadius < 0 {
		errs = append(errs, fmt.Errorf("enemy exclusion_radius must not be negative, got %v", c.Enemy.ExclusionRadius))
	}
	if c.Enemy.SpawnInterval <= 0 {
		errs = append(errs, errors.New("enemy spawn_interval must be positive"))
	}
	if c.Enemy.MaxSpawnAttempts <= 0 {
		errs = append(errs, errors.New("enemy max_spawn_attempts must be positive"))
	}
	if 2*c.Enemy.SpawnMargin >= c.World.Width || 2*c.Enemy.SpawnMargin >= c.World.Height {
		errs = append(errs, fmt.Errorf("enemy spawn_margin %v leaves no spawn area", c.Enemy.SpawnMargin))
	}
	switch c.Enemy.Homing {
	case HomingScaled, HomingPerTick:
	default:
		errs = append(errs, fmt.Errorf("unknown enemy homing mode %q", c.Enemy.Homing))
	}
	if len(errs) > 0 {
		return fmt.Errorf("config: invalid arena config: %w", errors.Join(errs...))
	}
	return nil
}
