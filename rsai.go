package swirl

import "github.com/hajimehoshi/ebiten/v2"

// ImageFactory builds the image for a given rotate/scale/alpha triple.
// Factories are the visual payload of a particle; the engine only decides
// when to call them.
type ImageFactory func(rotate, scale, alpha float64) *ebiten.Image

// imageKey quantizes a rotate/scale/alpha triple for cache lookup: whole
// degrees, hundredths of a scale unit, whole alpha steps. Anything finer
// regenerates images that look identical.
type imageKey struct {
	rotate int32
	scale  int32
	alpha  int16
}

func makeKey(rotate, scale, alpha float64) imageKey {
	return imageKey{
		rotate: int32(rotate),
		scale:  int32(scale * 100),
		alpha:  int16(alpha),
	}
}

// ImageCache shares generated images between particles with the same
// factory. Many particles of one effect pass through the same quantized
// rotate/scale/alpha values, so a burst of a few hundred bubbles settles on
// a few dozen images.
//
// The engine runs single-threaded, so the cache is a bare map. Anyone moving
// particle updates onto multiple goroutines has to put a lock around it.
type ImageCache map[imageKey]*ebiten.Image

// NewImageCache returns an empty shared cache.
func NewImageCache() ImageCache {
	return make(ImageCache)
}

// Len returns the number of cached images.
func (c ImageCache) Len() int {
	return len(c)
}

// RSAImage is a renderable-image descriptor: a rotate/scale/alpha triple
// plus the machinery to turn it into an *ebiten.Image on demand. Particle
// glue writes the triple (under Lock); the rendering side calls Image.
type RSAImage struct {
	Rotate float64
	Scale  float64
	Alpha  float64 // 0..255
	// Lock suppresses regeneration while the triple is being rewritten.
	// While locked, Image returns the last generated image.
	Lock bool

	// Factory builds images for new triples. Required.
	Factory ImageFactory
	// Cache, if set, is shared with other descriptors using an equivalent
	// factory.
	Cache ImageCache

	image *ebiten.Image
	last  imageKey
	fresh bool
}

// NewRSAImage returns a descriptor at rotation 0, scale 1, alpha 255.
// cache may be nil, in which case every descriptor regenerates on its own.
func NewRSAImage(factory ImageFactory, cache ImageCache) *RSAImage {
	return &RSAImage{
		Scale:   1,
		Alpha:   255,
		Factory: factory,
		Cache:   cache,
	}
}

// Image returns the image for the current triple, regenerating it through
// the factory (or fetching it from the shared cache) when the triple has
// changed since the last call. While Lock is set the previous image is
// returned unchanged.
func (r *RSAImage) Image() *ebiten.Image {
	if r.Lock {
		return r.image
	}
	key := makeKey(r.Rotate, r.Scale, r.Alpha)
	if r.fresh && key == r.last {
		return r.image
	}
	if r.Cache != nil {
		if img, ok := r.Cache[key]; ok {
			r.image, r.last, r.fresh = img, key, true
			return img
		}
	}
	img := r.Factory(r.Rotate, r.Scale, r.Alpha)
	if r.Cache != nil {
		r.Cache[key] = img
	}
	r.image, r.last, r.fresh = img, key, true
	return img
}
