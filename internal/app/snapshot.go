// internal/app/snapshot.go
package app

import (
	"image/color"
	"sort"

	"go-tower-siege/internal/component"
	"go-tower-siege/internal/defs"
	"go-tower-siege/internal/types"
)

// Snapshot is the read-only view of the simulation the renderer consumes,
// taken once per render frame independent of the tick rate. Entity slices
// are sorted by ID so draw order is stable.
type Snapshot struct {
	Enemies     []EnemyView
	Towers      []TowerView
	Projectiles []ProjectileView
	AreaEffects []AreaEffectView

	Coins      int
	BaseHealth int
	Score      int
	WaveNumber int
	Escaped    int
	Status     component.MatchStatus

	WaveActive bool
	CanStart   bool
}

type EnemyView struct {
	ID        types.EntityID
	Kind      defs.EnemyKind
	X, Y      float64
	Health    int
	MaxHealth int
	Color     color.RGBA
	Radius    float32
	Stroke    bool
}

type TowerView struct {
	ID     types.EntityID
	Kind   defs.TowerKind
	X, Y   float64
	Range  float64
	Pierce bool
	Color  color.RGBA
	Radius float32
}

type ProjectileView struct {
	ID     types.EntityID
	X, Y   float64
	Pierce bool
	Color  color.RGBA
	Radius float32
}

type AreaEffectView struct {
	ID       types.EntityID
	X, Y     float64
	Radius   float64
	Progress float64 // 0..1 of the effect's lifetime
}

// Snapshot copies the current visible state out of the ECS.
func (g *Game) Snapshot() Snapshot {
	ecs := g.ECS
	match := ecs.Match

	snap := Snapshot{
		Coins:      match.Coins,
		BaseHealth: match.BaseHealth,
		Score:      match.Score,
		WaveNumber: match.WaveNumber,
		Escaped:    match.Escaped,
		Status:     match.Status,
		WaveActive: ecs.Wave != nil,
		CanStart:   g.CanStartNextWave(),
	}

	for id, enemy := range ecs.Enemies {
		pos := ecs.Positions[id]
		health := ecs.Healths[id]
		render := ecs.Renderables[id]
		if pos == nil || health == nil || render == nil {
			continue
		}
		snap.Enemies = append(snap.Enemies, EnemyView{
			ID: id, Kind: enemy.Kind, X: pos.X, Y: pos.Y,
			Health: health.Current, MaxHealth: health.Max,
			Color: render.Color, Radius: render.Radius, Stroke: render.HasStroke,
		})
	}
	for id, tower := range ecs.Towers {
		pos := ecs.Positions[id]
		render := ecs.Renderables[id]
		if pos == nil || render == nil {
			continue
		}
		snap.Towers = append(snap.Towers, TowerView{
			ID: id, Kind: tower.Kind, X: pos.X, Y: pos.Y,
			Range: tower.Range, Pierce: tower.Pierce,
			Color: render.Color, Radius: render.Radius,
		})
	}
	for id, proj := range ecs.Projectiles {
		pos := ecs.Positions[id]
		render := ecs.Renderables[id]
		if pos == nil || render == nil {
			continue
		}
		snap.Projectiles = append(snap.Projectiles, ProjectileView{
			ID: id, X: pos.X, Y: pos.Y, Pierce: proj.Pierce,
			Color: render.Color, Radius: render.Radius,
		})
	}
	for id, effect := range ecs.AreaEffects {
		pos := ecs.Positions[id]
		if pos == nil {
			continue
		}
		snap.AreaEffects = append(snap.AreaEffects, AreaEffectView{
			ID: id, X: pos.X, Y: pos.Y, Radius: effect.Radius,
			Progress: effect.Age / effect.Duration,
		})
	}

	sort.Slice(snap.Enemies, func(i, j int) bool { return snap.Enemies[i].ID < snap.Enemies[j].ID })
	sort.Slice(snap.Towers, func(i, j int) bool { return snap.Towers[i].ID < snap.Towers[j].ID })
	sort.Slice(snap.Projectiles, func(i, j int) bool { return snap.Projectiles[i].ID < snap.Projectiles[j].ID })
	sort.Slice(snap.AreaEffects, func(i, j int) bool { return snap.AreaEffects[i].ID < snap.AreaEffects[j].ID })

	return snap
}
