// internal/system/combat.go
package system

import (
	"math"

	"go-tower-siege/internal/component"
	"go-tower-siege/internal/config"
	"go-tower-siege/internal/defs"
	"go-tower-siege/internal/entity"
	"go-tower-siege/internal/types"
	"go-tower-siege/pkg/path"
)

// CombatSystem drives single-target towers: cooldown gating, target
// selection, and projectile spawning. Area towers are handled by
// AreaAttackSystem.
type CombatSystem struct {
	ecs  *entity.ECS
	path *path.Path
}

func NewCombatSystem(ecs *entity.ECS, p *path.Path) *CombatSystem {
	return &CombatSystem{ecs: ecs, path: p}
}

func (s *CombatSystem) Update(deltaTime float64) {
	for id, tower := range s.ecs.Towers {
		def, ok := defs.TowerLibrary[tower.Kind]
		if !ok || def.Behavior != defs.BehaviorSingleTarget {
			continue
		}
		if tower.Cooldown > 0 {
			tower.Cooldown -= deltaTime
			continue
		}
		pos := s.ecs.Positions[id]
		if pos == nil {
			continue
		}

		targetID, found := s.selectTarget(pos, tower.Range)
		if !found {
			continue
		}
		s.createProjectile(pos, targetID, tower, def)
		// Cooldown resets unconditionally once a target was found.
		tower.Cooldown = tower.FireInterval
	}
}

// selectTarget picks the targetable enemy in range that is furthest along
// the path: highest waypoint index, then lowest remaining distance to that
// waypoint, then lowest entity ID. The last rule keeps the choice stable
// across map iteration order.
func (s *CombatSystem) selectTarget(from *component.Position, rangeRadius float64) (types.EntityID, bool) {
	var bestID types.EntityID
	bestIndex := -1
	bestRemaining := math.MaxFloat64

	for id := range s.ecs.Enemies {
		if !EnemyTargetable(s.ecs, id) {
			continue
		}
		pos := s.ecs.Positions[id]
		follower := s.ecs.PathFollowers[id]
		if pos == nil || follower == nil {
			continue
		}
		if math.Hypot(pos.X-from.X, pos.Y-from.Y) > rangeRadius {
			continue
		}

		remaining := math.MaxFloat64
		if follower.WaypointIndex < s.path.Len() {
			wp := s.path.Waypoint(follower.WaypointIndex)
			remaining = math.Hypot(wp.X-pos.X, wp.Y-pos.Y)
		}

		better := follower.WaypointIndex > bestIndex ||
			(follower.WaypointIndex == bestIndex && remaining < bestRemaining) ||
			(follower.WaypointIndex == bestIndex && remaining == bestRemaining && (bestID == 0 || id < bestID))
		if better {
			bestID = id
			bestIndex = follower.WaypointIndex
			bestRemaining = remaining
		}
	}

	return bestID, bestID != 0
}

func (s *CombatSystem) createProjectile(towerPos *component.Position, targetID types.EntityID, tower *component.Tower, def defs.TowerDefinition) {
	projID := s.ecs.NewEntity()
	targetPos := s.ecs.Positions[targetID]
	heading := math.Atan2(targetPos.Y-towerPos.Y, targetPos.X-towerPos.X)

	proj := &component.Projectile{
		TargetID: targetID,
		Speed:    def.ProjectileSpeed,
		Damage:   tower.Damage,
		Heading:  heading,
		OriginX:  towerPos.X,
		OriginY:  towerPos.Y,
	}
	projectileColor := config.ProjectileColor
	if tower.Pierce {
		proj.Pierce = true
		proj.Struck = make(map[types.EntityID]bool)
		projectileColor = config.PierceColor
	}

	s.ecs.Positions[projID] = &component.Position{X: towerPos.X, Y: towerPos.Y}
	s.ecs.Projectiles[projID] = proj
	s.ecs.Renderables[projID] = &component.Renderable{
		Color:  projectileColor,
		Radius: 4,
	}
}
