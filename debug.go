package swirl

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// DebugZoneColor is the outline color used by DebugDrawZone.
var DebugZoneColor color.Color = color.NRGBA{R: 255, G: 64, B: 64, A: 192}

const debugStrokeWidth = 1

// DebugDrawZone outlines a zone's spawn geometry at the given anchor, for
// eyeballing emitter placement while tuning an effect. Unknown zone types
// draw nothing.
func DebugDrawZone(dst *ebiten.Image, z Zone, anchor Vec2) {
	ax, ay := float32(anchor.X), float32(anchor.Y)
	switch z := z.(type) {
	case *PointZone:
		vector.StrokeCircle(dst, ax, ay, 2, debugStrokeWidth, DebugZoneColor, true)
	case *CircleZone:
		vector.StrokeCircle(dst, ax, ay, float32(z.Radius.Max), debugStrokeWidth, DebugZoneColor, true)
		if z.Radius.Min > 0 {
			vector.StrokeCircle(dst, ax, ay, float32(z.Radius.Min), debugStrokeWidth, DebugZoneColor, true)
		}
	case *BeamZone:
		// The axis plus the two spread edges.
		h := z.w.Scale(0.5)
		vector.StrokeLine(dst, ax, ay, ax+float32(z.v.X), ay+float32(z.v.Y), debugStrokeWidth, DebugZoneColor, true)
		for _, s := range []float64{1, -1} {
			o := h.Scale(s)
			vector.StrokeLine(dst,
				ax+float32(o.X), ay+float32(o.Y),
				ax+float32(z.v.X+o.X), ay+float32(z.v.Y+o.Y),
				debugStrokeWidth, DebugZoneColor, true)
		}
	case *RectZone:
		vector.StrokeRect(dst,
			ax-float32(z.R.Width)/2, ay-float32(z.R.Height)/2,
			float32(z.R.Width), float32(z.R.Height),
			debugStrokeWidth, DebugZoneColor, true)
	case *LineZone:
		vector.StrokeLine(dst, ax, ay, ax+float32(z.V.X), ay+float32(z.V.Y), debugStrokeWidth, DebugZoneColor, true)
	}
}
