package core

// Clock accumulates render time in fixed increments. It is the only piece of
// state that varies frame to frame; the volumes it drives stay frozen.
type Clock struct {
	step   float64
	now    float64
	paused bool
}

// NewClock constructs a clock advancing 1/tps seconds per tick.
func NewClock(tps int) *Clock {
	if tps <= 0 {
		tps = 60
	}
	return &Clock{step: 1 / float64(tps)}
}

// Tick advances the clock by one step unless paused and returns the current time.
func (c *Clock) Tick() float64 {
	if !c.paused {
		c.now += c.step
	}
	return c.now
}

// Now returns the accumulated time in seconds.
func (c *Clock) Now() float64 { return c.now }

// TogglePause flips the paused state.
func (c *Clock) TogglePause() { c.paused = !c.paused }

// Paused reports whether the clock is paused.
func (c *Clock) Paused() bool { return c.paused }

// Reset rewinds the clock to zero and unpauses it.
func (c *Clock) Reset() {
	c.now = 0
	c.paused = false
}
