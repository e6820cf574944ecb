package swirl

import "github.com/tanema/gween/ease"

// LerpThing interpolates between two values across the normalized progress of
// its own Cooldown, optionally shaped by a [gween/ease] easing function.
//
// Emitters use one as their emission-rate window; particles use up to three
// for rotation, scale, and alpha. The driver is self-contained: it advances
// through its timer's clock, never through an explicit step call.
type LerpThing struct {
	// A and B are the values at the start and end of the window.
	A, B float64
	// Ease shapes the interpolation. Nil means linear.
	Ease ease.TweenFunc
	// Timer owns the window. A zero Duration means unbounded: the thing
	// stays at A forever.
	Timer *Cooldown
}

// NewLerpThing returns a driver interpolating from a to b over the given
// number of seconds. A duration of 0 means "always a". fn may be nil for
// linear interpolation.
func NewLerpThing(a, b, seconds float64, fn ease.TweenFunc) *LerpThing {
	return &LerpThing{A: a, B: b, Ease: fn, Timer: NewCooldown(seconds)}
}

// At returns the eased value at an explicit normalized progress t.
// t is clamped to [0, 1]. With a zero-duration timer the window is
// unbounded and At always returns A.
func (l *LerpThing) At(t float64) float64 {
	if l.Timer != nil && l.Timer.Duration() <= 0 {
		return l.A
	}
	if t < 0 {
		t = 0
	} else if t > 1 {
		t = 1
	}
	fn := l.Ease
	if fn == nil {
		fn = ease.Linear
	}
	// gween ease functions take (elapsed, begin, change, duration).
	return float64(fn(float32(t), float32(l.A), float32(l.B-l.A), 1))
}

// V returns the eased value at the owned timer's current progress.
func (l *LerpThing) V() float64 {
	if l.Timer == nil {
		return l.A
	}
	return l.At(l.Timer.Normalized())
}
