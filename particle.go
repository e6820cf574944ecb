package swirl

// Particle manages the visual lifecycle of a single spawned entity: up to
// three interpolated channels, each optional. A nil channel leaves the
// corresponding descriptor field alone, so a particle that only fades keeps
// whatever rotation and scale its image started with.
//
// There is no per-particle step: LerpThings advance through their own
// timers. Apply just copies the current values out.
type Particle struct {
	Rotate *LerpThing
	Scale  *LerpThing
	Alpha  *LerpThing
}

// Apply pushes the present channels into the renderable descriptor. The
// write is bracketed by the descriptor's lock so the rendering side never
// regenerates an image from a half-written rotate/scale/alpha triple.
func (p *Particle) Apply(img *RSAImage) {
	img.Lock = true
	if p.Rotate != nil {
		img.Rotate = p.Rotate.V()
	}
	if p.Scale != nil {
		img.Scale = p.Scale.V()
	}
	if p.Alpha != nil {
		img.Alpha = p.Alpha.V()
	}
	img.Lock = false
}
