// internal/app/commands.go
package app

import (
	"go-tower-siege/internal/component"
	"go-tower-siege/internal/config"
	"go-tower-siege/internal/defs"
	"go-tower-siege/internal/event"
	"go-tower-siege/internal/system"
	"go-tower-siege/internal/types"
)

// Commands issued by the presentation layer. Invalid commands are rejected
// as no-ops (a bool result where the caller needs it); nothing here panics
// or returns an error across the simulation boundary.

// StartMatch moves a not-started match into play. Waves still have to be
// started explicitly through StartNextWave.
func (g *Game) StartMatch() {
	if g.ECS.Match.Status == component.MatchNotStarted {
		g.ECS.Match.Status = component.MatchPlaying
	}
}

// PauseMatch freezes the simulation. Cooldowns and spawn timers only count
// simulated time, so nothing fires a backlog on resume.
func (g *Game) PauseMatch() {
	if g.ECS.Match.Status == component.MatchPlaying {
		g.ECS.Match.Status = component.MatchPaused
	}
}

// ResumeMatch continues a paused match.
func (g *Game) ResumeMatch() {
	if g.ECS.Match.Status == component.MatchPaused {
		g.ECS.Match.Status = component.MatchPlaying
	}
}

// ResetMatch tears the match down to its initial values. Towers, enemies,
// coins, score and wave progress are all gone afterwards.
func (g *Game) ResetMatch() {
	g.reset()
}

// CanStartNextWave holds iff the spawn scheduler is idle and no enemies are
// left alive.
func (g *Game) CanStartNextWave() bool {
	return g.ECS.Wave == nil && len(g.ECS.Enemies) == 0
}

// StartNextWave starts the next wave. Silent no-op unless CanStartNextWave
// holds and the match is running (or not yet started, in which case the
// first wave also starts the match).
func (g *Game) StartNextWave() {
	status := g.ECS.Match.Status
	if status != component.MatchPlaying && status != component.MatchNotStarted {
		return
	}
	if !g.CanStartNextWave() {
		return
	}
	if status == component.MatchNotStarted {
		g.ECS.Match.Status = component.MatchPlaying
	}
	g.ECS.Match.WaveNumber++
	g.WaveSystem.StartWave(g.ECS.Match.WaveNumber)
}

// PlaceTower creates a tower of the given kind at a position, deducting its
// cost. Fails without any state change when the kind is unknown, the match
// is over, or coins are insufficient. Tile occupancy is the placement
// collaborator's concern, not the engine's.
func (g *Game) PlaceTower(kind defs.TowerKind, x, y float64) bool {
	def, ok := defs.TowerLibrary[kind]
	if !ok {
		return false
	}
	match := g.ECS.Match
	if match.Status == component.MatchOver {
		return false
	}
	if match.Coins < def.Cost {
		return false
	}

	match.Coins -= def.Cost
	id := g.ECS.NewEntity()
	g.ECS.Positions[id] = &component.Position{X: x, Y: y}
	g.ECS.Towers[id] = &component.Tower{
		Kind:         kind,
		Range:        def.Range,
		Damage:       def.Damage,
		FireInterval: def.FireInterval,
		Upgrades:     make(map[defs.UpgradeKind]bool),
	}
	g.ECS.Renderables[id] = &component.Renderable{
		Color:     system.TowerColor(kind),
		Radius:    12,
		HasStroke: true,
	}
	g.EventDispatcher.Dispatch(event.Event{Type: event.TowerPlaced, Data: id})
	return true
}

// UpgradeTower applies an upgrade to a tower, deducting its cost. Fails
// without any state change when the tower or upgrade is unknown, the
// upgrade was already applied, the tower kind is not eligible, or coins are
// insufficient.
func (g *Game) UpgradeTower(towerID types.EntityID, kind defs.UpgradeKind) bool {
	tower, ok := g.ECS.Towers[towerID]
	if !ok {
		return false
	}
	def, ok := defs.UpgradeLibrary[kind]
	if !ok {
		return false
	}
	if tower.Upgrades[kind] || !def.EligibleFor(tower.Kind) {
		return false
	}
	match := g.ECS.Match
	if match.Status == component.MatchOver || match.Coins < def.Cost {
		return false
	}

	match.Coins -= def.Cost
	tower.Upgrades[kind] = true
	switch kind {
	case defs.UpgradeRange:
		tower.Range *= config.RangeUpgradeFactor
	case defs.UpgradeFireRate:
		tower.FireInterval *= config.FireRateUpgradeFactor
	case defs.UpgradePierce:
		tower.Pierce = true
	}
	return true
}
