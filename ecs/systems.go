package ecs

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/filter"

	"github.com/phanxgames/swirl"
)

// System is one per-frame pass over the world. dt is the frame delta in
// seconds; passes that run on cooldown clocks rather than frame time accept
// and ignore it so every system has the same shape.
type System func(w donburi.World, dt float64)

// Runner executes systems in registration order. The order encodes the
// pipeline invariants described in the package documentation.
type Runner struct {
	world   donburi.World
	systems []System
}

// NewRunner returns a Runner over w with no systems registered.
func NewRunner(w donburi.World) *Runner {
	return &Runner{world: w}
}

// Add appends systems to the pipeline.
func (r *Runner) Add(systems ...System) {
	r.systems = append(r.systems, systems...)
}

// World returns the wrapped world.
func (r *Runner) World() donburi.World {
	return r.world
}

// Update runs every registered system once, in order.
func (r *Runner) Update(dt float64) {
	for _, s := range r.systems {
		s(r.world, dt)
	}
}

var (
	lifetimeQuery = donburi.NewQuery(filter.Contains(Lifetime))
	emitterQuery  = donburi.NewQuery(filter.Contains(Emitter, Position))
	particleQuery = donburi.NewQuery(filter.Contains(Particle, RSAI))
	momentumQuery = donburi.NewQuery(filter.Contains(Momentum, Position))
	spriteQuery   = donburi.NewQuery(filter.Contains(Sprite, Position))
	bounceQuery   = donburi.NewQuery(filter.Contains(Container, Position, Momentum, Sprite))
)

// snapshot collects a query's matches up front. Systems that create or
// destroy entities iterate a snapshot so the entities they touch mid-pass
// are never visited by the pass itself.
func snapshot(q *donburi.Query, w donburi.World) []*donburi.Entry {
	out := make([]*donburi.Entry, 0, q.Count(w))
	q.Each(w, func(e *donburi.Entry) {
		out = append(out, e)
	})
	return out
}

// UpdateLifetimes destroys every entity whose lifetime has gone cold. Run it
// first: an expired emitter must not spawn on its last frame, and an expired
// particle must not animate on its last frame.
func UpdateLifetimes(w donburi.World, dt float64) {
	for _, e := range snapshot(lifetimeQuery, w) {
		if Lifetime.Get(e).Cold() {
			w.Remove(e.Entity())
		}
	}
}

// UpdateEmitters runs every emitter's heartbeat. The emitter entity's own
// momentum and lifetime are resolved here and handed to the core update.
func UpdateEmitters(w donburi.World, dt float64) {
	for _, e := range snapshot(emitterQuery, w) {
		if !e.Valid() {
			continue
		}
		em := Emitter.Get(e)
		pos := Position.GetValue(e)

		var momentum swirl.Vec2
		if e.HasComponent(Momentum) {
			momentum = Momentum.GetValue(e)
		}

		var lifetime *swirl.Cooldown
		if e.HasComponent(Lifetime) {
			lifetime = Lifetime.Get(e)
		}

		em.Update(pos, momentum, lifetime)
	}
}

// UpdateParticles pushes each particle's interpolated channels into its
// renderable descriptor. Run it before UpdateSprites so the descriptor is
// current when the rendering side reads it.
func UpdateParticles(w donburi.World, dt float64) {
	particleQuery.Each(w, func(e *donburi.Entry) {
		Particle.Get(e).Apply(RSAI.Get(e).Image)
	})
}

// UpdateMomentum integrates momentum into position.
func UpdateMomentum(w donburi.World, dt float64) {
	momentumQuery.Each(w, func(e *donburi.Entry) {
		pos := Position.Get(e)
		m := Momentum.Get(e)
		pos.X += m.X * dt
		pos.Y += m.Y * dt
	})
}

// UpdateSprites syncs each sprite's screen position from the entity's
// Position component.
func UpdateSprites(w donburi.World, dt float64) {
	spriteQuery.Each(w, func(e *donburi.Entry) {
		Sprite.Get(e).Pos = Position.GetValue(e)
	})
}

// BounceSprites reflects entities off their container bounds: when a
// sprite's leading edge crosses a boundary while still moving toward it, the
// momentum on that axis inverts and the position reflects by twice the
// penetration depth, an exact elastic bounce. A worked example of a reactive
// system more than a physics engine.
func BounceSprites(w donburi.World, dt float64) {
	bounceQuery.Each(w, func(e *donburi.Entry) {
		bounds := Container.GetValue(e)
		pos := Position.Get(e)
		m := Momentum.Get(e)
		s := Sprite.Get(e)

		img := s.Image.Image()
		if img == nil {
			return
		}
		hw := float64(img.Bounds().Dx()) / 2
		hh := float64(img.Bounds().Dy()) / 2

		if left := pos.X - hw; left < bounds.X && m.X < 0 {
			m.X = -m.X
			pos.X += 2 * (bounds.X - left)
		} else if right := pos.X + hw; right > bounds.X+bounds.Width && m.X > 0 {
			m.X = -m.X
			pos.X -= 2 * (right - (bounds.X + bounds.Width))
		}

		if top := pos.Y - hh; top < bounds.Y && m.Y < 0 {
			m.Y = -m.Y
			pos.Y += 2 * (bounds.Y - top)
		} else if bottom := pos.Y + hh; bottom > bounds.Y+bounds.Height && m.Y > 0 {
			m.Y = -m.Y
			pos.Y -= 2 * (bottom - (bounds.Y + bounds.Height))
		}
	})
}

// DrawSprites renders every sprite centered on its synced position, rotated
// by the descriptor's current angle. Not a System: it takes the screen
// instead of a dt and runs inside ebiten's Draw.
func DrawSprites(w donburi.World, screen *ebiten.Image) {
	spriteQuery.Each(w, func(e *donburi.Entry) {
		s := Sprite.Get(e)
		img := s.Image.Image()
		if img == nil {
			return
		}
		b := img.Bounds()
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Translate(-float64(b.Dx())/2, -float64(b.Dy())/2)
		if r := s.Image.Rotate; r != 0 {
			op.GeoM.Rotate(r * math.Pi / 180)
		}
		op.GeoM.Translate(s.Pos.X, s.Pos.Y)
		screen.DrawImage(img, op)
	})
}

// SpawnEmitter creates an emitter entity at pos. lifetime may be nil for an
// emitter that lives until removed by hand.
func SpawnEmitter(w donburi.World, em *swirl.Emitter, pos swirl.Vec2, lifetime *swirl.Cooldown) donburi.Entity {
	if lifetime == nil {
		entity := w.Create(Emitter, Position)
		entry := w.Entry(entity)
		Emitter.SetValue(entry, *em)
		Position.SetValue(entry, pos)
		return entity
	}
	entity := w.Create(Emitter, Position, Lifetime)
	entry := w.Entry(entity)
	Emitter.SetValue(entry, *em)
	Position.SetValue(entry, pos)
	Lifetime.SetValue(entry, *lifetime)
	return entity
}
