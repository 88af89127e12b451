package core

import "testing"

func TestCooldownElapsed(t *testing.T) {
	c := NewCooldown(1.0)
	if c.IsElapsed() {
		t.Error("new cooldown should not be elapsed")
	}

	c.Update(1.1)
	if !c.IsElapsed() {
		t.Error("cooldown should be elapsed after 1.1s")
	}

	c.Restart()
	if c.IsElapsed() {
		t.Error("restarted cooldown should not be elapsed")
	}

	c.Update(0.1)
	c.Update(0.1)
	if c.IsElapsed() {
		t.Error("cooldown should not be elapsed after 0.2s")
	}

	c.Update(1.1)
	if !c.IsElapsed() {
		t.Error("cooldown should be elapsed after 1.3s")
	}

	c.SetDuration(0.5)
	c.Restart()
	if c.IsElapsed() {
		t.Error("cooldown should not be elapsed right after restart")
	}
	if c.Duration() != 0.5 {
		t.Errorf("Duration() = %v, expected 0.5", c.Duration())
	}

	c.Update(0.6)
	if !c.IsElapsed() {
		t.Error("shortened cooldown should be elapsed after 0.6s")
	}
}

func TestCooldownExactDurationIsNotElapsed(t *testing.T) {
	c := NewCooldown(0.5)
	c.Update(0.25)
	c.Update(0.25)

	if c.Remaining() != 0 {
		t.Fatalf("Remaining() = %v, expected 0", c.Remaining())
	}
	if c.IsElapsed() {
		t.Error("cooldown at exactly zero should not be elapsed")
	}
}
