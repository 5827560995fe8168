// internal/system/colors.go
package system

import (
	"image/color"

	"go-tower-siege/internal/defs"
)

// Per-kind palettes. Visuals stay out of the defs tables so YAML files only
// carry gameplay numbers.
var enemyColors = map[defs.EnemyKind]color.RGBA{
	defs.EnemyBasic: {200, 60, 60, 255},
	defs.EnemyFast:  {230, 180, 60, 255},
	defs.EnemyTank:  {140, 90, 50, 255},
	defs.EnemySwarm: {220, 120, 180, 255},
	defs.EnemyBoss:  {120, 20, 160, 255},
}

var towerColors = map[defs.TowerKind]color.RGBA{
	defs.TowerGun:    {255, 50, 50, 255},
	defs.TowerRapid:  {50, 255, 50, 255},
	defs.TowerSniper: {50, 100, 255, 255},
	defs.TowerBlast:  {255, 140, 0, 255},
	defs.TowerTesla:  {80, 220, 255, 255},
}

func enemyColor(kind defs.EnemyKind) color.RGBA {
	if c, ok := enemyColors[kind]; ok {
		return c
	}
	return color.RGBA{255, 255, 255, 255}
}

// TowerColor returns the render color for a tower kind. Exported for the
// placement code in internal/app.
func TowerColor(kind defs.TowerKind) color.RGBA {
	if c, ok := towerColors[kind]; ok {
		return c
	}
	return color.RGBA{255, 255, 255, 255}
}
