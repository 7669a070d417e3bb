package anim

import "time"

// Clock supplies the per-tick delta time consumed by Manager.Update.
// Implementations must return non-negative values.
type Clock interface {
	DeltaTime() float64
}

// FixedClock reports a constant timestep, matching a fixed-TPS game loop.
type FixedClock struct {
	Step float64
}

// NewFixedClock returns a clock stepping at 1/tps seconds. Non-positive tps
// falls back to 60.
func NewFixedClock(tps int) FixedClock {
	if tps <= 0 {
		tps = 60
	}
	return FixedClock{Step: 1.0 / float64(tps)}
}

func (c FixedClock) DeltaTime() float64 { return c.Step }

// WallClock reports the monotonic wall time elapsed between calls. The
// first call returns zero.
type WallClock struct {
	last time.Time
}

func (c *WallClock) DeltaTime() float64 {
	now := time.Now()
	if c.last.IsZero() {
		c.last = now
		return 0
	}
	dt := now.Sub(c.last).Seconds()
	c.last = now
	return dt
}
