package ecs

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/yohamta/donburi"
)

// DebugHUD prints frame rate and world population in the top-left corner.
// Call it at the end of Draw so it lands on top of the sprites.
func DebugHUD(w donburi.World, screen *ebiten.Image) {
	ebitenutil.DebugPrint(screen, fmt.Sprintf(
		"FPS: %.1f\nTPS: %.1f\nentities: %d",
		ebiten.ActualFPS(), ebiten.ActualTPS(), w.Len()))
}
