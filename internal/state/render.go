// internal/state/render.go
package state

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"go-tower-siege/internal/app"
	"go-tower-siege/internal/config"
	"go-tower-siege/internal/types"
	"go-tower-siege/pkg/path"
)

// drawBattlefield renders one snapshot: route, base, towers, enemies,
// projectiles and area-effect rings. selectedTower gets its range ring.
func drawBattlefield(screen *ebiten.Image, snap app.Snapshot, route *path.Path, selectedTower types.EntityID) {
	screen.Fill(config.BackgroundColor)

	for i := 1; i < route.Len(); i++ {
		a := route.Waypoint(i - 1)
		b := route.Waypoint(i)
		vector.StrokeLine(screen, float32(a.X), float32(a.Y), float32(b.X), float32(b.Y), 14, config.PathColor, true)
	}
	base := route.End()
	vector.DrawFilledRect(screen, float32(base.X)-14, float32(base.Y)-14, 28, 28, config.BaseColor, true)

	for _, tower := range snap.Towers {
		if tower.ID == selectedTower {
			vector.DrawFilledCircle(screen, float32(tower.X), float32(tower.Y), float32(tower.Range), config.RangeRingColor, true)
		}
		vector.DrawFilledCircle(screen, float32(tower.X), float32(tower.Y), tower.Radius+2, config.TowerStrokeColor, true)
		vector.DrawFilledCircle(screen, float32(tower.X), float32(tower.Y), tower.Radius, tower.Color, true)
	}

	for _, effect := range snap.AreaEffects {
		ringColor := config.AreaEffectColor
		ringColor.A = uint8(float64(ringColor.A) * (1 - effect.Progress))
		vector.StrokeCircle(screen, float32(effect.X), float32(effect.Y), float32(effect.Radius*effect.Progress), 3, ringColor, true)
	}

	for _, enemy := range snap.Enemies {
		if enemy.Stroke {
			vector.DrawFilledCircle(screen, float32(enemy.X), float32(enemy.Y), enemy.Radius+2, config.TowerStrokeColor, true)
		}
		vector.DrawFilledCircle(screen, float32(enemy.X), float32(enemy.Y), enemy.Radius, enemy.Color, true)
		drawHealthBar(screen, enemy)
	}

	for _, proj := range snap.Projectiles {
		vector.DrawFilledCircle(screen, float32(proj.X), float32(proj.Y), proj.Radius, proj.Color, true)
	}
}

func drawHealthBar(screen *ebiten.Image, enemy app.EnemyView) {
	if enemy.Health >= enemy.MaxHealth {
		return
	}
	width := enemy.Radius * 2
	fill := width * float32(enemy.Health) / float32(enemy.MaxHealth)
	x := float32(enemy.X) - enemy.Radius
	y := float32(enemy.Y) - enemy.Radius - 6
	vector.DrawFilledRect(screen, x, y, width, 3, config.TextDarkColor, true)
	vector.DrawFilledRect(screen, x, y, fill, 3, config.BaseColor, true)
}
