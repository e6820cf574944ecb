package swirl

import "errors"

// Construction-time validation failures. Runtime emission has no error
// channel at all: a misconfigured emitter degrades to spawning nothing
// rather than halting the frame loop.
var (
	ErrEmptyTickList = errors.New("swirl: emitter tick list must not be empty")
	ErrNoZone        = errors.New("swirl: emitter needs a zone")
	ErrNoFactory     = errors.New("swirl: emitter needs a particle factory")
	ErrNoRate        = errors.New("swirl: emitter needs an emits-per-tick driver")
)

// ParticleFactory creates one fully-formed particle entity. t is the
// emitter's normalized progress (e.g. to shrink particles relative to the
// age of the emitter), pos the world position to spawn at, and momentum the
// composed initial momentum. The emitter neither inspects nor retains
// whatever the factory builds.
type ParticleFactory func(t float64, pos, momentum Vec2)

// MomentumInheritance selects which momenta flow into spawned particles.
// Both unset means particles start at rest; both set sums the two.
type MomentumInheritance struct {
	// Emitter adds the emitter entity's own momentum, if it has one.
	Emitter bool
	// Zone adds the momentum returned by the zone sample.
	Zone bool
}

// InheritBoth composes the emitter's momentum with the zone's.
var InheritBoth = MomentumInheritance{Emitter: true, Zone: true}

// EmitterConfig describes an Emitter. The zero value of optional fields
// picks the documented default.
type EmitterConfig struct {
	// EmitsPerTick drives how many particles spawn at each heartbeat, and
	// over what window. A zero-duration driver emits at its start rate
	// forever (or for the owning entity's lifetime, see Emitter.Update).
	// Required.
	EmitsPerTick *LerpThing
	// Tick is the heartbeat period in seconds. Defaults to 0.1.
	Tick float64
	// TickList replaces Tick with a repeating sequence of heartbeat
	// periods, cycled through after every firing. Use it e.g. for bullet
	// stacking patterns like {5.0/60, 5.0/60, 5.0/60, 1}. Nil means a
	// constant heartbeat of Tick; an empty non-nil list is rejected with
	// ErrEmptyTickList.
	TickList []float64
	// TotalEmits caps the total number of spawns. Zero or negative means
	// unlimited. An exhausted emitter stops spawning but keeps beating;
	// its entity lives until a lifetime component says otherwise.
	TotalEmits int
	// Zone supplies spawn offsets and momenta. Required.
	Zone Zone
	// Factory creates the particle entities. Required.
	Factory ParticleFactory
	// Inherit selects the momentum composition for spawned particles.
	Inherit MomentumInheritance
	// Clock is the time source for the heartbeat. Nil means time.Now.
	Clock Clock
}

// Emitter is a heartbeat state machine: once per tick it computes how many
// particles to spawn and requests them from its zone and factory. Create one
// with NewEmitter and call Update once per frame.
type Emitter struct {
	ept       *LerpThing
	tick      *Cooldown
	ticks     []float64
	cursor    int
	remaining int // -1 = unlimited, 0 = exhausted
	zone      Zone
	factory   ParticleFactory
	inherit   MomentumInheritance
}

// NewEmitter validates cfg and returns an Emitter whose heartbeat starts
// cold, so the first Update fires immediately.
func NewEmitter(cfg EmitterConfig) (*Emitter, error) {
	if cfg.EmitsPerTick == nil {
		return nil, ErrNoRate
	}
	if cfg.Zone == nil {
		return nil, ErrNoZone
	}
	if cfg.Factory == nil {
		return nil, ErrNoFactory
	}

	ticks := cfg.TickList
	if ticks == nil {
		tick := cfg.Tick
		if tick <= 0 {
			tick = 0.1
		}
		ticks = []float64{tick}
	} else if len(ticks) == 0 {
		return nil, ErrEmptyTickList
	}

	remaining := -1
	if cfg.TotalEmits > 0 {
		remaining = cfg.TotalEmits
	}

	tick := NewColdCooldown(ticks[0])
	if cfg.Clock != nil {
		tick.WithClock(cfg.Clock)
	}

	return &Emitter{
		ept:       cfg.EmitsPerTick,
		tick:      tick,
		ticks:     ticks,
		remaining: remaining,
		zone:      cfg.Zone,
		factory:   cfg.Factory,
		inherit:   cfg.Inherit,
	}, nil
}

// Remaining returns the unspent emit budget: -1 for unlimited, 0 once
// exhausted. It never increases.
func (e *Emitter) Remaining() int {
	return e.remaining
}

// Update runs one heartbeat evaluation. pos is the owning entity's world
// position. momentum is the entity's own momentum, zero if it has none.
// lifetime is the entity's lifetime timer, nil if it has none.
//
// While the heartbeat is hot nothing happens. Once it goes cold it is
// re-armed with the next interval from the tick list, unconditionally, even
// when the emitter is exhausted or its emission window has closed. That
// keeps the beat phase stable for anything observing it.
//
// The normalized progress t fed to the rate driver, the zone, and the
// factory comes from the rate window if it has a duration (a closed window
// ends emission for good), else from the entity's lifetime, else it is 0.
func (e *Emitter) Update(pos, momentum Vec2, lifetime *Cooldown) {
	if e.tick.Hot() {
		return
	}
	e.tick.Reset(e.ticks[e.cursor])
	e.cursor = (e.cursor + 1) % len(e.ticks)

	if e.remaining == 0 {
		return
	}

	var t float64
	if e.ept.Timer.Duration() > 0 {
		if e.ept.Timer.Cold() {
			return
		}
		t = e.ept.Timer.Normalized()
	} else if lifetime != nil {
		t = lifetime.Normalized()
	}

	// Rates are non-negative by construction; a driver that dips below
	// zero anyway clamps to no spawns.
	emits := int(e.ept.At(t))
	if emits < 0 {
		emits = 0
	}
	if e.remaining > 0 {
		if emits > e.remaining {
			emits = e.remaining
		}
		e.remaining -= emits
	}

	if !e.inherit.Emitter {
		momentum = Vec2{}
	}

	for i := 0; i < emits; i++ {
		zpos, zmom := e.zone.Emit(t)
		m := momentum
		if e.inherit.Zone {
			m = m.Add(zmom)
		}
		e.factory(t, pos.Add(zpos), m)
	}
}
