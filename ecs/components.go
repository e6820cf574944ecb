package ecs

import (
	"github.com/yohamta/donburi"

	"github.com/phanxgames/swirl"
)

// RSAIData holds an entity's renderable-image descriptor. The pointer is
// shared with the entity's SpriteData so the particle glue and the sprite
// renderer see the same descriptor.
type RSAIData struct {
	Image *swirl.RSAImage
}

// SpriteData is the visual representation of an entity: a descriptor to draw
// and the screen position UpdateSprites last synced from the Position
// component.
type SpriteData struct {
	Image *swirl.RSAImage
	Pos   swirl.Vec2
}

var (
	// Position is the entity's world position.
	Position = donburi.NewComponentType[swirl.Vec2]()
	// Momentum is integrated into Position by UpdateMomentum each frame.
	Momentum = donburi.NewComponentType[swirl.Vec2]()
	// Lifetime destroys the entity once its cooldown goes cold.
	Lifetime = donburi.NewComponentType[swirl.Cooldown]()
	// Emitter spawns particle entities on its heartbeat.
	Emitter = donburi.NewComponentType[swirl.Emitter]()
	// Particle drives the entity's rotate/scale/alpha channels.
	Particle = donburi.NewComponentType[swirl.Particle]()
	// RSAI is the renderable-image descriptor the Particle writes into.
	RSAI = donburi.NewComponentType[RSAIData]()
	// Sprite is what DrawSprites renders.
	Sprite = donburi.NewComponentType[SpriteData]()
	// Container bounds an entity for BounceSprites.
	Container = donburi.NewComponentType[swirl.Rect]()
)
