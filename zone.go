package swirl

import "errors"

// ErrZeroVector is returned by zone constructors that need a direction to
// normalize (beam) when given the zero vector.
var ErrZeroVector = errors.New("swirl: zone direction vector must be non-zero")

// Zone is a geometric/kinematic sampler. Emit returns a spawn position
// relative to the zone's anchor and a momentum to derive a particle speed
// from. The emitter adds its own position on top of the returned one.
//
// t is the emitter's normalized progress. None of the built-in zones use it,
// but the parameter is part of the contract so time-dependent zones can be
// written. Emit must be safe to call any number of times; the only state a
// zone carries is its configured random generators.
type Zone interface {
	Emit(t float64) (pos, momentum Vec2)
}

// PointZone emits from a single point. The position is always (0, 0); the
// momentum is a vector of random length in [0, Speed] at a random angle
// inside the Angle range (degrees).
type PointZone struct {
	Speed float64
	// Angle is the emission arc in degrees. The zero value emits in the
	// single direction 0°; use Range{0, 360} for a full circle.
	Angle Range
	// RndM scales the momentum length. Nil means uniform [0, 1).
	RndM RandFunc
}

func (z *PointZone) Emit(t float64) (Vec2, Vec2) {
	rndM := z.RndM
	if rndM == nil {
		rndM = uniform
	}
	m := Vec2{X: z.Speed * rndM()}.Rotate(z.Angle.Lerp(uniform()))
	return Vec2{}, m
}

// CircleZone emits from within a circle or ring. Radius selects the distance
// from the anchor; a non-zero Radius.Min makes the zone a ring. Angle limits
// the arc in degrees. Position and momentum are the same vector, so the
// momentum doubles as the radial direction from the zone's origin.
//
// An inverted Radius or Angle range is absorbed: the lerp simply runs
// backwards and the samples stay inside the swapped bounds.
type CircleZone struct {
	Radius Range
	Angle  Range
	// RndP picks the radius, RndM is accepted for interface symmetry with
	// the other zones. Nil means uniform [0, 1).
	RndP, RndM RandFunc
}

func (z *CircleZone) Emit(t float64) (Vec2, Vec2) {
	rndP := z.RndP
	if rndP == nil {
		rndP = uniform
	}
	r := z.Radius.Lerp(rndP())
	v := Vec2{X: r}.Rotate(z.Angle.Lerp(uniform()))
	return v, v
}

// BeamZone emits along a line with perpendicular spread. Positions are a
// random point on the line vector, displaced perpendicularly by up to
// Width/2 on either side. The momentum is the perpendicular displacement
// alone, so particles drift away from the beam's axis.
type BeamZone struct {
	v Vec2 // the line, rooted at (0, 0)
	w Vec2 // unit perpendicular scaled by Width
	// RndP picks the point along the line, RndM the perpendicular offset.
	// Nil means uniform [0, 1). Something like a triangular distribution
	// for RndM concentrates particles near the axis.
	RndP, RndM RandFunc
}

// NewBeamZone returns a beam along v with the given total width. v must be
// non-zero; the perpendicular cannot be normalized otherwise and the
// constructor returns ErrZeroVector.
func NewBeamZone(v Vec2, width float64) (*BeamZone, error) {
	if v.IsZero() {
		return nil, ErrZeroVector
	}
	return &BeamZone{
		v: v,
		w: Vec2{X: -v.Y, Y: v.X}.Normalize().Scale(width),
	}, nil
}

func (z *BeamZone) Emit(t float64) (Vec2, Vec2) {
	rndP, rndM := z.RndP, z.RndM
	if rndP == nil {
		rndP = uniform
	}
	if rndM == nil {
		rndM = uniform
	}
	v := z.v.Scale(rndP())
	w := z.w.Scale(rndM() - 0.5)
	return v.Add(w), w
}

// RectZone emits from within a rectangle's extent, centered at zero: samples
// fall in (-Width/2, -Height/2) .. (Width/2, Height/2) regardless of the
// rect's own X/Y. The momentum is the sampled position minus the rect's
// center point. Use this e.g. to emit particles all over the screen.
type RectZone struct {
	R Rect
	// RndP picks the position. Nil means uniform [0, 1).
	RndP RandFunc
}

func (z *RectZone) Emit(t float64) (Vec2, Vec2) {
	rndP := z.RndP
	if rndP == nil {
		rndP = uniform
	}
	pos := Vec2{
		X: z.R.Width * (rndP() - 0.5),
		Y: z.R.Height * (rndP() - 0.5),
	}
	return pos, pos.Sub(z.R.Center())
}

// LineZone emits from a random point on a line. The momentum is a fixed
// Speed vector scaled by 1 + Variance*r with r random in [0, 1), so it can
// range between Speed and Speed*(1+Variance). A zero Speed vector yields a
// zero momentum for every sample.
type LineZone struct {
	// V is the line, rooted at (0, 0).
	V Vec2
	// Speed is the momentum direction and base length.
	Speed Vec2
	// Variance scales the momentum spread.
	Variance float64
	// RndP picks the point on the line, RndM the speed scale.
	// Nil means uniform [0, 1).
	RndP, RndM RandFunc
}

func (z *LineZone) Emit(t float64) (Vec2, Vec2) {
	rndP, rndM := z.RndP, z.RndM
	if rndP == nil {
		rndP = uniform
	}
	if rndM == nil {
		rndM = uniform
	}
	return z.V.Scale(rndP()), z.Speed.Scale(1 + z.Variance*rndM())
}
