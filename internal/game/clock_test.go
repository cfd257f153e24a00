package game

import "testing"

func TestClockProducesTicksAtRealRate(t *testing.T) {
	c := NewClock()
	total := 0
	// One simulated second of 60fps frames.
	for i := 0; i < 60; i++ {
		total += c.Advance(1.0 / 60)
	}
	if total != tickRate {
		t.Errorf("expected %d ticks over one second, got %d", tickRate, total)
	}
}

func TestClockPauseFreezesTime(t *testing.T) {
	c := NewClock()
	c.SetPaused(true)
	for i := 0; i < 120; i++ {
		if n := c.Advance(1.0 / 60); n != 0 {
			t.Fatalf("paused clock produced %d ticks", n)
		}
	}

	// Resume: time spent paused is not retroactively applied.
	c.SetPaused(false)
	if n := c.Advance(1.0 / 60); n > 1 {
		t.Errorf("first frame after resume produced %d ticks, expected at most 1", n)
	}
}

func TestClockSpeedMultiplier(t *testing.T) {
	c := NewClock()
	c.SetSpeed(2)
	total := 0
	for i := 0; i < 60; i++ {
		total += c.Advance(1.0 / 60)
	}
	if total != 2*tickRate {
		t.Errorf("expected %d ticks at 2x, got %d", 2*tickRate, total)
	}
}

func TestClockCapsTickAvalanche(t *testing.T) {
	c := NewClock()
	// A five second stall must not demand 300 catch-up ticks.
	if n := c.Advance(5); n > 8 {
		t.Errorf("stall produced %d ticks, expected cap", n)
	}
	// And the backlog is dropped, not carried.
	if n := c.Advance(0); n != 0 {
		t.Errorf("expected no residual ticks, got %d", n)
	}
}

func TestClockSpeedClamped(t *testing.T) {
	c := NewClock()
	c.SetSpeed(1000)
	if c.Speed() > 8 {
		t.Errorf("speed should clamp at 8, got %f", c.Speed())
	}
	c.SetSpeed(0)
	if c.Speed() < 0.25 {
		t.Errorf("speed should clamp at 0.25, got %f", c.Speed())
	}
}
