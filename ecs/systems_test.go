package ecs

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"

	"github.com/phanxgames/swirl"
)

func onePixelFactory(rotate, scale, alpha float64) *ebiten.Image {
	return ebiten.NewImage(1, 1)
}

func near(t *testing.T, name string, got, want float64) {
	t.Helper()
	if diff := got - want; diff > 1e-6 || diff < -1e-6 {
		t.Errorf("%s = %f, want %f", name, got, want)
	}
}

// spawnParticle creates a bare moving entity, the minimal shape an emitter
// factory produces.
func spawnParticle(w donburi.World, pos, momentum swirl.Vec2) donburi.Entity {
	entity := w.Create(Position, Momentum)
	entry := w.Entry(entity)
	Position.SetValue(entry, pos)
	Momentum.SetValue(entry, momentum)
	return entity
}

func testEmitter(t *testing.T, clk *swirl.ManualClock, factory swirl.ParticleFactory, total int) *swirl.Emitter {
	t.Helper()
	em, err := swirl.NewEmitter(swirl.EmitterConfig{
		EmitsPerTick: swirl.NewLerpThing(2, 2, 0, nil),
		Tick:         0.1,
		TotalEmits:   total,
		Zone:         &swirl.PointZone{Speed: 10, Angle: swirl.Range{Min: 0, Max: 360}},
		Factory:      factory,
		Clock:        clk.Now,
	})
	if err != nil {
		t.Fatal(err)
	}
	return em
}

func TestRunnerRunsInRegistrationOrder(t *testing.T) {
	w := donburi.NewWorld()
	r := NewRunner(w)

	var order []string
	r.Add(
		func(w donburi.World, dt float64) { order = append(order, "a") },
		func(w donburi.World, dt float64) { order = append(order, "b") },
	)
	r.Add(func(w donburi.World, dt float64) { order = append(order, "c") })
	r.Update(1.0 / 60)

	if len(order) != 3 || order[0] != "a" || order[1] != "b" || order[2] != "c" {
		t.Errorf("order = %v, want [a b c]", order)
	}
	if r.World() != w {
		t.Error("World should return the wrapped world")
	}
}

func TestUpdateLifetimesRemovesCold(t *testing.T) {
	clk := swirl.NewManualClock()
	w := donburi.NewWorld()

	short := w.Entry(w.Create(Lifetime))
	Lifetime.SetValue(short, *swirl.NewCooldown(0.5).WithClock(clk.Now))
	long := w.Entry(w.Create(Lifetime))
	Lifetime.SetValue(long, *swirl.NewCooldown(5).WithClock(clk.Now))

	UpdateLifetimes(w, 0)
	if w.Len() != 2 {
		t.Fatalf("world size = %d, want 2 while both hot", w.Len())
	}

	clk.Advance(1)
	UpdateLifetimes(w, 0)
	if w.Len() != 1 {
		t.Fatalf("world size = %d, want 1 after the short lifetime", w.Len())
	}
	if !long.Valid() {
		t.Error("the long-lived entity should survive")
	}
}

func TestUpdateEmittersSpawnsIntoWorld(t *testing.T) {
	clk := swirl.NewManualClock()
	w := donburi.NewWorld()

	em := testEmitter(t, clk, func(t float64, pos, momentum swirl.Vec2) {
		spawnParticle(w, pos, momentum)
	}, 0)
	SpawnEmitter(w, em, swirl.Vec2{X: 100, Y: 100}, nil)

	UpdateEmitters(w, 0)
	if w.Len() != 3 {
		t.Fatalf("world size = %d, want emitter + 2 particles", w.Len())
	}

	// Heartbeat hot: a second pass in the same instant spawns nothing.
	UpdateEmitters(w, 0)
	if w.Len() != 3 {
		t.Errorf("world size = %d, want unchanged while hot", w.Len())
	}

	clk.Advance(0.1)
	UpdateEmitters(w, 0)
	if w.Len() != 5 {
		t.Errorf("world size = %d, want 5 after the next beat", w.Len())
	}
}

// An emitter whose factory spawns another emitter entity must not see that
// new emitter fire within the same pass.
func TestUpdateEmittersSkipsMidPassSpawns(t *testing.T) {
	clk := swirl.NewManualClock()
	w := donburi.NewWorld()

	grandchildren := 0
	inner := testEmitter(t, clk, func(t float64, pos, momentum swirl.Vec2) {
		grandchildren++
	}, 0)
	outer := testEmitter(t, clk, func(t float64, pos, momentum swirl.Vec2) {
		SpawnEmitter(w, inner, pos, nil)
	}, 2)
	SpawnEmitter(w, outer, swirl.Vec2{}, nil)

	UpdateEmitters(w, 0)
	if grandchildren != 0 {
		t.Fatalf("mid-pass emitters fired %d times within the creating pass", grandchildren)
	}

	// The pass that follows sees them.
	UpdateEmitters(w, 0)
	if grandchildren == 0 {
		t.Error("spawned emitters should fire on the next pass")
	}
}

func TestUpdateEmittersFeedsOwnMomentumAndLifetime(t *testing.T) {
	clk := swirl.NewManualClock()
	w := donburi.NewWorld()

	var got []swirl.Vec2
	em, err := swirl.NewEmitter(swirl.EmitterConfig{
		EmitsPerTick: swirl.NewLerpThing(1, 1, 0, nil),
		Tick:         0.1,
		Zone:         &swirl.PointZone{}, // zero momentum contribution
		Factory: func(t float64, pos, momentum swirl.Vec2) {
			got = append(got, momentum)
		},
		Inherit: swirl.MomentumInheritance{Emitter: true},
		Clock:   clk.Now,
	})
	if err != nil {
		t.Fatal(err)
	}

	entity := SpawnEmitter(w, em, swirl.Vec2{}, swirl.NewCooldown(10).WithClock(clk.Now))
	entry := w.Entry(entity)
	entry.AddComponent(Momentum)
	Momentum.SetValue(entry, swirl.Vec2{X: 7, Y: -2})

	UpdateEmitters(w, 0)
	if len(got) != 1 {
		t.Fatalf("spawns = %d, want 1", len(got))
	}
	if got[0] != (swirl.Vec2{X: 7, Y: -2}) {
		t.Errorf("particle momentum = %v, want the emitter entity's {7 -2}", got[0])
	}
}

func TestLifetimeExpiryBeatsEmission(t *testing.T) {
	clk := swirl.NewManualClock()
	w := donburi.NewWorld()

	spawns := 0
	em := testEmitter(t, clk, func(t float64, pos, momentum swirl.Vec2) {
		spawns++
	}, 0)
	SpawnEmitter(w, em, swirl.Vec2{}, swirl.NewCooldown(0.5).WithClock(clk.Now))

	r := NewRunner(w)
	r.Add(UpdateLifetimes, UpdateEmitters)

	r.Update(0)
	clk.Advance(1)
	// The lifetime is cold now. UpdateLifetimes removes the entity before
	// UpdateEmitters gets a chance, so no last-gasp spawn.
	r.Update(0)
	if spawns != 2 {
		t.Errorf("spawns = %d, want only the first frame's 2", spawns)
	}
	if w.Len() != 0 {
		t.Errorf("world size = %d, want 0", w.Len())
	}
}

func TestUpdateMomentumIntegrates(t *testing.T) {
	w := donburi.NewWorld()
	entity := spawnParticle(w, swirl.Vec2{X: 10, Y: 20}, swirl.Vec2{X: 60, Y: -30})

	UpdateMomentum(w, 0.5)
	pos := Position.GetValue(w.Entry(entity))
	near(t, "x after integration", pos.X, 40)
	near(t, "y after integration", pos.Y, 5)
}

func TestUpdateParticlesAppliesChannels(t *testing.T) {
	clk := swirl.NewManualClock()
	w := donburi.NewWorld()

	img := swirl.NewRSAImage(nil, nil)
	alpha := swirl.NewLerpThing(255, 0, 1, nil)
	alpha.Timer.WithClock(clk.Now)

	entry := w.Entry(w.Create(Particle, RSAI))
	Particle.SetValue(entry, swirl.Particle{Alpha: alpha})
	RSAI.SetValue(entry, RSAIData{Image: img})

	clk.Advance(0.5)
	UpdateParticles(w, 0)
	near(t, "alpha at half", img.Alpha, 127.5)
}

func TestUpdateSpritesSyncsPosition(t *testing.T) {
	w := donburi.NewWorld()
	img := swirl.NewRSAImage(nil, nil)

	entry := w.Entry(w.Create(Position, Sprite))
	Position.SetValue(entry, swirl.Vec2{X: 33, Y: 44})
	Sprite.SetValue(entry, SpriteData{Image: img})

	UpdateSprites(w, 0)
	s := Sprite.Get(entry)
	near(t, "synced x", s.Pos.X, 33)
	near(t, "synced y", s.Pos.Y, 44)
}

func TestBounceSpritesReflects(t *testing.T) {
	w := donburi.NewWorld()
	img := swirl.NewRSAImage(onePixelFactory, nil)

	entry := w.Entry(w.Create(Container, Position, Momentum, Sprite))
	Container.SetValue(entry, swirl.Rect{X: 0, Y: 0, Width: 100, Height: 100})
	Position.SetValue(entry, swirl.Vec2{X: 104, Y: 50})
	Momentum.SetValue(entry, swirl.Vec2{X: 10, Y: 0})
	Sprite.SetValue(entry, SpriteData{Image: img})

	BounceSprites(w, 0)
	m := Momentum.GetValue(entry)
	pos := Position.GetValue(entry)
	near(t, "reflected momentum x", m.X, -10)
	if pos.X >= 104 {
		t.Errorf("position x = %f, should reflect back inside", pos.X)
	}

	// Already moving away from the wall: no double reflection.
	BounceSprites(w, 0)
	m = Momentum.GetValue(entry)
	near(t, "momentum after second pass", m.X, -10)
}

func TestSpawnEmitterShapes(t *testing.T) {
	clk := swirl.NewManualClock()
	w := donburi.NewWorld()
	em := testEmitter(t, clk, func(t float64, pos, momentum swirl.Vec2) {}, 0)

	bare := w.Entry(SpawnEmitter(w, em, swirl.Vec2{X: 1}, nil))
	if bare.HasComponent(Lifetime) {
		t.Error("nil lifetime should not attach a Lifetime component")
	}
	if Position.GetValue(bare) != (swirl.Vec2{X: 1}) {
		t.Error("position not set")
	}

	timed := w.Entry(SpawnEmitter(w, em, swirl.Vec2{}, swirl.NewCooldown(1).WithClock(clk.Now)))
	if !timed.HasComponent(Lifetime) {
		t.Error("lifetime should attach a Lifetime component")
	}
}
