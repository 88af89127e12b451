package arena

import "math"

// Snapshot contains the complete simulation state for replay and
// determinism checks. Positions are stored as raw float32 bits.
type Snapshot struct {
	Frame   uint64
	Kills   int
	PlayerX uint32
	PlayerY uint32

	FireRemaining  uint32
	SpawnRemaining uint32

	// Each bullet is 4 values: X, Y, VX, VY
	BulletCount int
	BulletData  []uint32

	// Each enemy is 3 values: X, Y, Kind
	EnemyCount int
	EnemyData  []uint32
}

// Snapshot returns the current world state as a Snapshot.
func (w *World) Snapshot() Snapshot {
	bulletData := make([]uint32, 0, len(w.bullets)*4)
	for _, b := range w.bullets {
		bulletData = append(bulletData,
			math.Float32bits(b.pos.X), math.Float32bits(b.pos.Y),
			math.Float32bits(b.vel.X), math.Float32bits(b.vel.Y))
	}

	enemyData := make([]uint32, 0, len(w.enemies)*3)
	for _, e := range w.enemies {
		enemyData = append(enemyData,
			math.Float32bits(e.pos.X), math.Float32bits(e.pos.Y),
			uint32(e.Kind())) //#nosec G115 -- enemy kinds are small
	}

	return Snapshot{
		Frame:          w.frame,
		Kills:          w.kills,
		PlayerX:        math.Float32bits(w.player.pos.X),
		PlayerY:        math.Float32bits(w.player.pos.Y),
		FireRemaining:  math.Float32bits(w.player.shoot.Remaining()),
		SpawnRemaining: math.Float32bits(w.enemySpawn.Remaining()),
		BulletCount:    len(w.bullets),
		BulletData:     bulletData,
		EnemyCount:     len(w.enemies),
		EnemyData:      enemyData,
	}
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := snap.Frame
	h = h*31 + uint64(snap.Kills) //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.PlayerX)
	h = h*31 + uint64(snap.PlayerY)
	h = h*31 + uint64(snap.FireRemaining)
	h = h*31 + uint64(snap.SpawnRemaining)
	h = h*31 + uint64(snap.BulletCount) //#nosec G115 -- hash computation
	for _, v := range snap.BulletData {
		h = h*31 + uint64(v)
	}
	h = h*31 + uint64(snap.EnemyCount) //#nosec G115 -- hash computation
	for _, v := range snap.EnemyData {
		h = h*31 + uint64(v)
	}
	return h
}
