package swirl

import (
	"fmt"

	"github.com/tanema/gween/ease"
	"gopkg.in/yaml.v3"
)

// easings maps preset names onto gween easing functions. Only the shapes
// that make sense for particle windows are exposed; add more as demos need
// them.
var easings = map[string]ease.TweenFunc{
	"linear":      ease.Linear,
	"in-quad":     ease.InQuad,
	"out-quad":    ease.OutQuad,
	"in-out-quad": ease.InOutQuad,
	"in-cubic":    ease.InCubic,
	"out-cubic":   ease.OutCubic,
	"in-quint":    ease.InQuint,
	"out-quint":   ease.OutQuint,
	"in-expo":     ease.InExpo,
	"out-expo":    ease.OutExpo,
	"out-elastic": ease.OutElastic,
	"out-bounce":  ease.OutBounce,
}

// EaseByName returns the easing function registered under name. The empty
// name means linear.
func EaseByName(name string) (ease.TweenFunc, error) {
	if name == "" {
		return ease.Linear, nil
	}
	fn, ok := easings[name]
	if !ok {
		return nil, fmt.Errorf("swirl: unknown ease %q", name)
	}
	return fn, nil
}

// ZoneSpec is the data-file form of a zone. Kind selects the variant;
// the remaining fields apply per kind and are ignored otherwise.
type ZoneSpec struct {
	// Kind is one of point, circle, beam, rect, line.
	Kind string `yaml:"kind"`
	// Speed is the momentum magnitude (point) in pixels per second.
	Speed float64 `yaml:"speed,omitempty"`
	// Radius is the min/max radius (circle).
	Radius [2]float64 `yaml:"radius,omitempty"`
	// Angle is the emission arc in degrees (point, circle). Unset means
	// the full circle.
	Angle [2]float64 `yaml:"angle,omitempty"`
	// V is the line vector (beam, line).
	V [2]float64 `yaml:"v,omitempty"`
	// Width is the perpendicular spread (beam).
	Width float64 `yaml:"width,omitempty"`
	// Rect is the width/height of the spawn extent (rect).
	Rect [2]float64 `yaml:"rect,omitempty"`
	// Momentum is the base momentum vector (line).
	Momentum [2]float64 `yaml:"momentum,omitempty"`
	// Variance scales the momentum spread (line).
	Variance float64 `yaml:"variance,omitempty"`
}

// Build turns the spec into a Zone.
func (s ZoneSpec) Build() (Zone, error) {
	angle := Range{s.Angle[0], s.Angle[1]}
	if angle.Min == 0 && angle.Max == 0 {
		angle = Range{0, 360}
	}
	switch s.Kind {
	case "point":
		return &PointZone{Speed: s.Speed, Angle: angle}, nil
	case "circle":
		return &CircleZone{Radius: Range{s.Radius[0], s.Radius[1]}, Angle: angle}, nil
	case "beam":
		return NewBeamZone(Vec2{s.V[0], s.V[1]}, s.Width)
	case "rect":
		return &RectZone{R: Rect{Width: s.Rect[0], Height: s.Rect[1]}}, nil
	case "line":
		return &LineZone{
			V:        Vec2{s.V[0], s.V[1]},
			Speed:    Vec2{s.Momentum[0], s.Momentum[1]},
			Variance: s.Variance,
		}, nil
	default:
		return nil, fmt.Errorf("swirl: unknown zone kind %q", s.Kind)
	}
}

// EmitterSpec is the data-file form of an emitter, so effects can live in
// YAML next to the code that triggers them rather than in constructor soup.
type EmitterSpec struct {
	// Rate holds the emits-per-tick at the start and end of the emission
	// window.
	Rate [2]float64 `yaml:"rate"`
	// Duration is the emission window in seconds; 0 means unbounded.
	Duration float64 `yaml:"duration,omitempty"`
	// Ease names the easing over the rate window; empty means linear.
	Ease string `yaml:"ease,omitempty"`
	// Tick and TickList configure the heartbeat, as in EmitterConfig.
	Tick     float64   `yaml:"tick,omitempty"`
	TickList []float64 `yaml:"tick_list,omitempty"`
	// TotalEmits caps total spawns; 0 means unlimited.
	TotalEmits int `yaml:"total_emits,omitempty"`
	// Inherit is one of none, emitter, zone, both. Empty means both.
	Inherit string `yaml:"inherit,omitempty"`
	// Zone describes the spawn geometry.
	Zone ZoneSpec `yaml:"zone"`
}

// ParseEmitterSpec decodes a YAML emitter description.
func ParseEmitterSpec(data []byte) (*EmitterSpec, error) {
	var s EmitterSpec
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("swirl: decoding emitter spec: %w", err)
	}
	return &s, nil
}

// Build assembles the emitter, binding the application-supplied particle
// factory. clock may be nil for wall-clock time.
func (s *EmitterSpec) Build(factory ParticleFactory, clock Clock) (*Emitter, error) {
	fn, err := EaseByName(s.Ease)
	if err != nil {
		return nil, err
	}
	zone, err := s.Zone.Build()
	if err != nil {
		return nil, err
	}

	var inherit MomentumInheritance
	switch s.Inherit {
	case "", "both":
		inherit = InheritBoth
	case "none":
	case "emitter":
		inherit = MomentumInheritance{Emitter: true}
	case "zone":
		inherit = MomentumInheritance{Zone: true}
	default:
		return nil, fmt.Errorf("swirl: unknown inherit mode %q", s.Inherit)
	}

	ept := NewLerpThing(s.Rate[0], s.Rate[1], s.Duration, fn)
	if clock != nil {
		ept.Timer.WithClock(clock)
	}
	return NewEmitter(EmitterConfig{
		EmitsPerTick: ept,
		Tick:         s.Tick,
		TickList:     s.TickList,
		TotalEmits:   s.TotalEmits,
		Zone:         zone,
		Factory:      factory,
		Inherit:      inherit,
		Clock:        clock,
	})
}
