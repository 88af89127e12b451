package config

import (
	_ "embed"
)

//go:embed defaults/arena.yaml
var defaultArenaYAML []byte

// DefaultArenaConfig returns the default arena configuration: a 960x540
// world with one enemy waiting at (100, 100).
func DefaultArenaConfig() ArenaConfig {
	return ArenaConfig{
		World: WorldConfig{
			Width:         960,
			Height:        540,
			WallThickness: 4,
		},
		Player: PlayerConfig{
			HalfWidth:    5,
			HalfHeight:   5,
			Step:         1.5,
			FastStep:     10,
			FireCooldown: 0.1,
			BulletSpeed:  300,
		},
		Bullet: BulletConfig{
			HalfWidth:  2,
			HalfHeight: 2,
		},
		Enemy: EnemyConfig{
			HalfWidth:        5,
			HalfHeight:       5,
			Speed:            60,
			Homing:           HomingScaled,
			SpawnInterval:    0.25,
			SpawnMargin:      5,
			ExclusionRadius:  100,
			MaxSpawnAttempts: 1000,
			Initial:          []Point{{X: 100, Y: 100}},
		},
		Difficulty: DifficultyConfig{
			Enabled:      false,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "time",
				MaxAt: 18000, // 5 minutes at 60fps
			},
			Scaling: ScalingConfig{
				SpawnReduction: 0.6,
			},
		},
	}
}
