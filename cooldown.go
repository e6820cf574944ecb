package swirl

import "time"

// Cooldown is a resettable countdown timer. It is hot while counting down and
// cold once the duration has elapsed. Cooldowns read their Clock lazily, so
// they never need a per-frame step call; a Lifetime component, an emitter
// heartbeat, and a LerpThing window are all just Cooldowns queried at
// different places.
//
// A paused Cooldown freezes its remaining time until resumed.
type Cooldown struct {
	// Clock is the time source. Nil means time.Now.
	Clock Clock

	start    time.Time
	duration float64 // seconds; 0 means unset/unbounded
	paused   bool
	frozen   float64 // elapsed seconds at the moment of pause
}

// NewCooldown returns a hot Cooldown that expires after the given number of
// seconds.
func NewCooldown(seconds float64) *Cooldown {
	c := &Cooldown{}
	c.Reset(seconds)
	return c
}

// NewColdCooldown returns a Cooldown that is already expired. The first
// Reset arms it. Emitter heartbeats start cold so the first update fires
// immediately.
func NewColdCooldown(seconds float64) *Cooldown {
	c := &Cooldown{}
	c.duration = seconds
	c.start = c.now().Add(-time.Duration(seconds * float64(time.Second)))
	return c
}

func (c *Cooldown) now() time.Time {
	if c.Clock != nil {
		return c.Clock()
	}
	return time.Now()
}

// WithClock sets the time source and re-arms the timer against it, preserving
// the hot/cold state. Returns c for chaining at construction.
func (c *Cooldown) WithClock(clk Clock) *Cooldown {
	cold := c.Cold()
	c.Clock = clk
	if cold {
		c.start = c.now().Add(-time.Duration(c.duration * float64(time.Second)))
	} else {
		c.start = c.now()
	}
	return c
}

// Elapsed returns the seconds since the last Reset, clamped to the duration.
func (c *Cooldown) Elapsed() float64 {
	var e float64
	if c.paused {
		e = c.frozen
	} else {
		e = c.now().Sub(c.start).Seconds()
	}
	if c.duration > 0 && e > c.duration {
		return c.duration
	}
	return e
}

// Hot reports whether the timer is still counting down.
func (c *Cooldown) Hot() bool {
	if c.paused {
		return c.frozen < c.duration
	}
	return c.now().Sub(c.start).Seconds() < c.duration
}

// Cold reports whether the timer has expired.
func (c *Cooldown) Cold() bool {
	return !c.Hot()
}

// Reset re-arms the timer with a new duration, starting now.
func (c *Cooldown) Reset(seconds float64) {
	c.duration = seconds
	c.start = c.now()
	c.paused = false
}

// Duration returns the configured duration in seconds. Zero means the timer
// was never given one; callers treat that as "unbounded/unset".
func (c *Cooldown) Duration() float64 {
	return c.duration
}

// Normalized returns the progress through the countdown in [0, 1].
// A zero-duration timer reports 0.
func (c *Cooldown) Normalized() float64 {
	if c.duration <= 0 {
		return 0
	}
	return c.Elapsed() / c.duration
}

// Pause freezes the countdown at its current progress. Returns c for
// chaining at construction.
func (c *Cooldown) Pause() *Cooldown {
	if !c.paused {
		c.frozen = c.now().Sub(c.start).Seconds()
		c.paused = true
	}
	return c
}

// Resume continues a paused countdown from where it stopped.
func (c *Cooldown) Resume() {
	if c.paused {
		c.start = c.now().Add(-time.Duration(c.frozen * float64(time.Second)))
		c.paused = false
	}
}
