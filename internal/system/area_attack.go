// internal/system/area_attack.go
package system

import (
	"math"

	"go-tower-siege/internal/component"
	"go-tower-siege/internal/config"
	"go-tower-siege/internal/defs"
	"go-tower-siege/internal/entity"
	"go-tower-siege/internal/event"
)

// AreaAttackSystem drives area towers. Damage is resolved instantly at fire
// time against every enemy in range; the spawned AreaEffect entity is a
// purely visual record. The cooldown resets only when at least one enemy
// was hit, so an area tower never wastes a firing on empty ground.
type AreaAttackSystem struct {
	ecs        *entity.ECS
	dispatcher *event.Dispatcher
}

func NewAreaAttackSystem(ecs *entity.ECS, dispatcher *event.Dispatcher) *AreaAttackSystem {
	return &AreaAttackSystem{ecs: ecs, dispatcher: dispatcher}
}

func (s *AreaAttackSystem) Update(deltaTime float64) {
	for id, tower := range s.ecs.Towers {
		def, ok := defs.TowerLibrary[tower.Kind]
		if !ok || def.Behavior != defs.BehaviorAreaOfEffect {
			continue
		}
		if tower.Cooldown > 0 {
			tower.Cooldown -= deltaTime
			continue
		}
		towerPos := s.ecs.Positions[id]
		if towerPos == nil {
			continue
		}

		hits := 0
		for enemyID := range s.ecs.Enemies {
			if !EnemyTargetable(s.ecs, enemyID) {
				continue
			}
			enemyPos := s.ecs.Positions[enemyID]
			if enemyPos == nil {
				continue
			}
			if math.Hypot(enemyPos.X-towerPos.X, enemyPos.Y-towerPos.Y) > tower.Range {
				continue
			}
			ApplyDamage(s.ecs, s.dispatcher, enemyID, tower.Damage)
			hits++
		}

		if hits == 0 {
			continue
		}
		tower.Cooldown = tower.FireInterval
		s.spawnEffect(towerPos, tower.Range)
	}
}

// spawnEffect appends the single visual marker for one firing.
func (s *AreaAttackSystem) spawnEffect(towerPos *component.Position, radius float64) {
	effectID := s.ecs.NewEntity()
	s.ecs.Positions[effectID] = &component.Position{X: towerPos.X, Y: towerPos.Y}
	s.ecs.AreaEffects[effectID] = &component.AreaEffect{
		Radius:   radius,
		Duration: config.AreaEffectDuration,
	}
	s.ecs.Renderables[effectID] = &component.Renderable{
		Color:  config.AreaEffectColor,
		Radius: float32(radius),
	}
}
