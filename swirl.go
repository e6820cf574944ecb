package swirl

import (
	"math"
	"math/rand/v2"
	"time"
)

// Vec2 is a 2D vector used for positions, offsets, and momenta throughout
// the API.
type Vec2 struct {
	X, Y float64
}

// Add returns v + o.
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{v.X + o.X, v.Y + o.Y}
}

// Sub returns v - o.
func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{v.X - o.X, v.Y - o.Y}
}

// Scale returns v scaled by s.
func (v Vec2) Scale(s float64) Vec2 {
	return Vec2{v.X * s, v.Y * s}
}

// Len returns the euclidean length of v.
func (v Vec2) Len() float64 {
	return math.Hypot(v.X, v.Y)
}

// IsZero reports whether both components are exactly zero.
func (v Vec2) IsZero() bool {
	return v.X == 0 && v.Y == 0
}

// Rotate returns v rotated by the given angle in degrees.
func (v Vec2) Rotate(degrees float64) Vec2 {
	rad := degrees * math.Pi / 180
	sin, cos := math.Sincos(rad)
	return Vec2{v.X*cos - v.Y*sin, v.X*sin + v.Y*cos}
}

// Normalize returns v scaled to length 1. The zero vector normalizes to
// the zero vector.
func (v Vec2) Normalize() Vec2 {
	l := v.Len()
	if l == 0 {
		return Vec2{}
	}
	return Vec2{v.X / l, v.Y / l}
}

// Rect is an axis-aligned rectangle. The coordinate system has its origin at
// the top-left, with Y increasing downward.
type Rect struct {
	X, Y, Width, Height float64
}

// Center returns the rectangle's center point.
func (r Rect) Center() Vec2 {
	return Vec2{r.X + r.Width/2, r.Y + r.Height/2}
}

// Contains reports whether the point (x, y) lies inside the rectangle.
// Points on the edge are considered inside.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

// Range is a general-purpose min/max range.
// Used by the zone samplers for radii and angles.
type Range struct {
	Min, Max float64
}

// Lerp maps t in [0, 1] onto the range. t outside [0, 1] extrapolates;
// an inverted range (Min > Max) simply interpolates backwards.
func (r Range) Lerp(t float64) float64 {
	return r.Min + (r.Max-r.Min)*t
}

// RandFunc produces a sample in [0, 1). Zones take one for position and one
// for momentum scaling so distributions can be swapped out (e.g. triangular
// instead of uniform) and seeded for reproducible tests.
type RandFunc func() float64

// uniform is the default RandFunc.
func uniform() float64 {
	return rand.Float64()
}

// Clock is the time source for Cooldown timers. A nil Clock means time.Now.
// Inject a ManualClock to step a simulation deterministically.
type Clock func() time.Time

// ManualClock is a Clock that only moves when told to. Useful for
// deterministic simulations and tests.
type ManualClock struct {
	t time.Time
}

// NewManualClock returns a ManualClock starting at an arbitrary fixed instant.
func NewManualClock() *ManualClock {
	return &ManualClock{t: time.Unix(0, 0)}
}

// Now returns the clock's current time. Pass m.Now as a Clock.
func (m *ManualClock) Now() time.Time {
	return m.t
}

// Advance moves the clock forward by the given number of seconds.
func (m *ManualClock) Advance(seconds float64) {
	m.t = m.t.Add(time.Duration(seconds * float64(time.Second)))
}
