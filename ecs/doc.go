// Package ecs binds the swirl particle engine to a [Donburi] world.
//
// It declares the component types the engine's systems query (Position,
// Momentum, Lifetime, Emitter, Particle, RSAI, Sprite, Container) and the
// per-frame systems that drive them. The world is always passed in
// explicitly; there is no package-level registry, so every test can run its
// own isolated world.
//
// # Pass ordering
//
// Systems run in the order they are registered on a Runner, and that order
// is a correctness requirement, not a tuning knob. The canonical pipeline is
//
//	UpdateLifetimes   expired entities go away before they can act
//	UpdateEmitters    may spawn new particle entities
//	UpdateParticles   pushes interpolated values into the descriptors
//	UpdateMomentum    integrates position
//	UpdateSprites     syncs the visual position last
//
// Entities created by an emitter are never visited by the emitter pass that
// created them (the pass iterates a snapshot taken at its start). They are
// visible to the passes that follow in the same frame.
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
