package core

import (
	"testing"

	"pgregory.net/rapid"
)

func coord(t *rapid.T, label string) float32 {
	return rapid.Float32Range(-1000, 1000).Draw(t, label)
}

func extent(t *rapid.T, label string) float32 {
	return rapid.Float32Range(0.5, 200).Draw(t, label)
}

func TestCooldownProperties(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		duration := rapid.Float32Range(0.01, 10).Draw(t, "duration")
		c := NewCooldown(duration)
		c.Restart()
		if c.IsElapsed() {
			t.Fatalf("cooldown elapsed immediately after restart")
		}

		steps := rapid.SliceOfN(rapid.Float32Range(0, 1), 1, 50).Draw(t, "steps")
		var sum float32
		for _, d := range steps {
			c.Update(d)
			sum += d
		}

		if c.IsElapsed() != (c.Remaining() < 0) {
			t.Fatalf("IsElapsed() disagrees with Remaining() = %v", c.Remaining())
		}
		if sum > duration*1.001 && !c.IsElapsed() {
			t.Fatalf("not elapsed after %v of %v", sum, duration)
		}
		if sum < duration*0.999 && c.IsElapsed() {
			t.Fatalf("elapsed early after %v of %v", sum, duration)
		}
	})
}

func TestNormalizedLengthProperty(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		v := V(coord(t, "x"), coord(t, "y"))
		if v.Len() < 1e-3 {
			t.Skip("too short to normalize precisely")
		}
		l := v.Normalized().Len()
		if l < 0.9999 || l > 1.0001 {
			t.Fatalf("normalized length = %v", l)
		}
	})
}

func TestIntersectProperties(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		a := BoxAround(V(coord(t, "ax"), coord(t, "ay")), extent(t, "aw"), extent(t, "ah"))
		b := BoxAround(V(coord(t, "bx"), coord(t, "by")), extent(t, "bw"), extent(t, "bh"))

		ab, okAB := Intersect(a, b)
		ba, okBA := Intersect(b, a)

		if okAB != okBA {
			t.Fatalf("overlap is not symmetric: %v vs %v", okAB, okBA)
		}
		if !okAB {
			return
		}
		if ab.Amount <= 0 || ba.Amount <= 0 {
			t.Fatalf("penetration must be positive: %v, %v", ab.Amount, ba.Amount)
		}
		if ab.Amount != ba.Amount {
			t.Fatalf("penetration depth differs by subject: %v vs %v", ab.Amount, ba.Amount)
		}

		again, _ := Intersect(a, b)
		if again != ab {
			t.Fatalf("repeated query changed result: %v vs %v", again, ab)
		}
	})
}
