// Package swirl is a particle-effects engine for [Ebitengine].
//
// Swirl spawns, animates, and retires large numbers of short-lived visual
// entities. Emitters decide when and how many particles appear, zones decide
// where and with what initial momentum, and per-particle interpolation
// drives rotation, scale, and alpha until a lifetime runs out.
//
// # Quick start
//
// Build an emitter from a zone and a particle factory, then update it every
// frame:
//
//	em, err := swirl.NewEmitter(swirl.EmitterConfig{
//		EmitsPerTick: swirl.NewLerpThing(2, 5, 1, ease.OutQuint),
//		Zone: &swirl.CircleZone{
//			Radius: swirl.Range{Min: 0, Max: 64},
//			Angle:  swirl.Range{Min: 0, Max: 360},
//		},
//		Factory: spawnBubble,
//		Inherit: swirl.InheritBoth,
//	})
//
// The factory is application code: it receives the emitter's normalized
// progress, a world position, and a composed momentum, and builds whatever
// entity the rendering pipeline needs.
//
// # Components
//
// A Zone is a sampler: point, circle/ring, beam, rect, or line, each with
// pluggable random functions. An Emitter is a heartbeat state machine with
// an optional emit budget and a lifetime-relative emission-rate window (a
// LerpThing, eased via [gween]). A Particle pushes its interpolated channels
// into an RSAImage, the renderable descriptor that regenerates its
// *ebiten.Image on demand and can share a cache between particles.
//
// Timers are Cooldowns: resettable countdowns that read a pluggable Clock,
// so a ManualClock can step a whole effect graph deterministically.
//
// The swirl/ecs subpackage binds all of this to a [Donburi] world with
// ready-made per-frame systems; the examples directory wires complete
// effects (explosions, rain, beam, pond) and a profiling stress run.
//
// [Ebitengine]: https://ebitengine.org
// [gween]: https://github.com/tanema/gween
// [Donburi]: https://github.com/yohamta/donburi
package swirl
