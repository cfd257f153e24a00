package game

// Simulation timing. The sim advances in fixed ticks; all timers (cooldowns,
// path refresh, retarget stagger) count sim time, never wall time.
const (
	tickRate = 60             // sim ticks per second
	tickDt   = 1.0 / tickRate // seconds of sim time per tick
)

// Clock converts real frame time into a whole number of sim ticks, with a
// speed multiplier and a global pause. While paused no ticks are produced and
// no real time accumulates, so on resume timers continue exactly where they
// stopped.
type Clock struct {
	speed  float64
	paused bool
	accum  float64 // fractional pending ticks
}

func NewClock() *Clock {
	return &Clock{speed: 1}
}

// Advance consumes realDt seconds of wall time and returns how many sim
// ticks to run. Capped so a long stall cannot produce a tick avalanche.
func (c *Clock) Advance(realDt float64) int {
	if c.paused {
		return 0
	}
	c.accum += realDt * c.speed * tickRate
	const maxTicksPerFrame = 8
	n := int(c.accum)
	if n > maxTicksPerFrame {
		n = maxTicksPerFrame
		c.accum = 0
	} else {
		c.accum -= float64(n)
	}
	return n
}

func (c *Clock) SetPaused(p bool) { c.paused = p }
func (c *Clock) Paused() bool     { return c.paused }
func (c *Clock) TogglePause()     { c.paused = !c.paused }

// SetSpeed sets the sim speed multiplier, clamped to a sane range.
func (c *Clock) SetSpeed(s float64) {
	c.speed = clamp(s, 0.25, 8)
}

func (c *Clock) Speed() float64 { return c.speed }
