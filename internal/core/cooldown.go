package core

// Cooldown is a countdown timer gating a repeatable action such as firing
// or spawning. It starts fully charged: a new cooldown is not elapsed.
type Cooldown struct {
	remaining float32
	duration  float32
}

// NewCooldown creates a cooldown that elapses after duration seconds.
func NewCooldown(duration float32) Cooldown {
	return Cooldown{remaining: duration, duration: duration}
}

// Update advances the timer by delta seconds.
func (c *Cooldown) Update(delta float32) {
	c.remaining -= delta
}

// IsElapsed reports whether the timer ran out. Reaching exactly zero does
// not count.
func (c Cooldown) IsElapsed() bool {
	return c.remaining < 0
}

// Restart resets the remaining time to the full duration.
func (c *Cooldown) Restart() {
	c.remaining = c.duration
}

// SetDuration changes the duration used by the next Restart.
func (c *Cooldown) SetDuration(d float32) {
	c.duration = d
}

// Duration returns the configured duration.
func (c Cooldown) Duration() float32 {
	return c.duration
}

// Remaining returns the time left before the cooldown elapses.
func (c Cooldown) Remaining() float32 {
	return c.remaining
}
