package swirl

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Prototyping payload colors, matched to the classic water/fire/poison
// particle looks.
var (
	WaterBase       = color.NRGBA{0xad, 0xd8, 0xe6, 0xff} // lightblue
	WaterHighlight  = color.NRGBA{0xff, 0xff, 0xff, 0xff} // white
	FireBase        = color.NRGBA{0xff, 0xa5, 0x00, 0xff} // orange
	FireHighlight   = color.NRGBA{0xff, 0xff, 0x00, 0xff} // yellow
	PoisonBase      = color.NRGBA{0x7c, 0xcd, 0x7c, 0xff} // palegreen3
	PoisonHighlight = color.NRGBA{0x9a, 0xff, 0x9a, 0xff} // palegreen1
)

// The factories here are example visual payloads for prototyping, not engine
// logic. Each constructor closes over a base size and colors and returns an
// ImageFactory; the factory bakes scale and alpha into the generated pixels.
// Rotation is left to the sprite renderer (symmetric payloads ignore it).

func scaleAlpha(c color.NRGBA, alpha float64) color.NRGBA {
	if alpha < 0 {
		alpha = 0
	} else if alpha > 255 {
		alpha = 255
	}
	c.A = uint8(float64(c.A) * alpha / 255)
	return c
}

func payloadImage(size, scale float64) (*ebiten.Image, float32) {
	px := size * scale
	if px < 1 {
		px = 1
	}
	return ebiten.NewImage(int(px), int(px)), float32(px)
}

// SquareImage returns a factory drawing a filled square.
func SquareImage(size float64, clr color.NRGBA) ImageFactory {
	return func(rotate, scale, alpha float64) *ebiten.Image {
		img, px := payloadImage(size, scale)
		vector.DrawFilledRect(img, 0, 0, px, px, scaleAlpha(clr, alpha), true)
		return img
	}
}

// CircleImage returns a factory drawing a filled circle.
func CircleImage(size float64, clr color.NRGBA) ImageFactory {
	return func(rotate, scale, alpha float64) *ebiten.Image {
		img, px := payloadImage(size, scale)
		r := px / 2
		vector.DrawFilledCircle(img, r, r, r, scaleAlpha(clr, alpha), true)
		return img
	}
}

// BubbleImage returns a factory drawing a circle with a slightly offset
// highlight edge. Bubbles vary in size and transparency over a particle's
// lifetime; that part is the Particle component's job.
func BubbleImage(size float64, base, highlight color.NRGBA) ImageFactory {
	return func(rotate, scale, alpha float64) *ebiten.Image {
		img, px := payloadImage(size, scale)
		r := px/2 - 1
		if r < 1 {
			r = 1
		}
		off := r / 20
		if off < 1 {
			off = 1
		}
		vector.DrawFilledCircle(img, r, r, r, scaleAlpha(highlight, alpha), true)
		vector.DrawFilledCircle(img, r+off, r, r-off, scaleAlpha(base, alpha), true)
		return img
	}
}

// SquabbleImage returns a factory drawing a square bubble: a highlight
// backdrop with the base square nudged up and to the right.
func SquabbleImage(size float64, base, highlight color.NRGBA) ImageFactory {
	return func(rotate, scale, alpha float64) *ebiten.Image {
		img, px := payloadImage(size, scale)
		off := px / 20
		if off < 1 {
			off = 1
		}
		vector.DrawFilledRect(img, 0, 0, px, px, scaleAlpha(highlight, alpha), true)
		vector.DrawFilledRect(img, off, 0, px-off, px-off, scaleAlpha(base, alpha), true)
		return img
	}
}

// WaterBubbleImage is BubbleImage in lightblue/white.
func WaterBubbleImage(size float64) ImageFactory {
	return BubbleImage(size, WaterBase, WaterHighlight)
}

// FireBubbleImage is BubbleImage in orange/yellow.
func FireBubbleImage(size float64) ImageFactory {
	return BubbleImage(size, FireBase, FireHighlight)
}

// PoisonBubbleImage is BubbleImage in palegreen3/palegreen1.
func PoisonBubbleImage(size float64) ImageFactory {
	return BubbleImage(size, PoisonBase, PoisonHighlight)
}

// WaterSquabbleImage is SquabbleImage in lightblue/white.
func WaterSquabbleImage(size float64) ImageFactory {
	return SquabbleImage(size, WaterBase, WaterHighlight)
}

// FireSquabbleImage is SquabbleImage in orange/yellow.
func FireSquabbleImage(size float64) ImageFactory {
	return SquabbleImage(size, FireBase, FireHighlight)
}

// PoisonSquabbleImage is SquabbleImage in palegreen3/palegreen1.
func PoisonSquabbleImage(size float64) ImageFactory {
	return SquabbleImage(size, PoisonBase, PoisonHighlight)
}
