package arena

import "errors"

var (
	// ErrNoPlatform is returned when a world is built without a platform.
	ErrNoPlatform = errors.New("arena: platform is required")
	// ErrInfeasibleSpawn is returned when no point of the spawn area can be
	// far enough from the player.
	ErrInfeasibleSpawn = errors.New("arena: world too small for enemy exclusion radius")
	// ErrSpawnExhausted is returned when rejection sampling gives up.
	ErrSpawnExhausted = errors.New("arena: enemy spawn attempts exhausted")
	// ErrNegativeDelta is returned for a tick with a negative time step.
	ErrNegativeDelta = errors.New("arena: negative delta")
)
