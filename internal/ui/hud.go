// internal/ui/hud.go
package ui

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font"

	"go-tower-siege/internal/app"
	"go-tower-siege/internal/config"
	"go-tower-siege/internal/defs"
)

// HUD draws the match readout along the top edge and the build hint along
// the bottom.
type HUD struct {
	font font.Face
}

func NewHUD(face font.Face) *HUD {
	return &HUD{font: face}
}

func (h *HUD) Draw(screen *ebiten.Image, snap app.Snapshot, buildKind defs.TowerKind) {
	top := fmt.Sprintf("Coins: %d   Base: %d   Wave: %d   Score: %d   Escaped: %d",
		snap.Coins, snap.BaseHealth, snap.WaveNumber, snap.Score, snap.Escaped)
	text.Draw(screen, top, h.font, 12, 20, config.TextLightColor)

	def, ok := defs.TowerLibrary[buildKind]
	if ok {
		hint := fmt.Sprintf("Building: %s (%d coins)   [1-5] tower  [N] next wave  [P] pause", def.Name, def.Cost)
		text.Draw(screen, hint, h.font, 12, config.ScreenHeight-12, config.TextLightColor)
	}
}
