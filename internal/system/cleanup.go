// internal/system/cleanup.go
package system

import (
	"go-tower-siege/internal/entity"
	"go-tower-siege/internal/types"
)

// CleanupSystem runs last in the tick: it expires area-effect markers and
// purges dead or escaped enemies. Earlier passes only flag entities
// (health 0, Escaped), so every system observes a consistent entity set
// within one tick.
type CleanupSystem struct {
	ecs *entity.ECS
}

func NewCleanupSystem(ecs *entity.ECS) *CleanupSystem {
	return &CleanupSystem{ecs: ecs}
}

func (s *CleanupSystem) Update(deltaTime float64) {
	for id, effect := range s.ecs.AreaEffects {
		effect.Age += deltaTime
		if effect.Age >= effect.Duration {
			delete(s.ecs.AreaEffects, id)
			delete(s.ecs.Positions, id)
			delete(s.ecs.Renderables, id)
		}
	}

	for id, enemy := range s.ecs.Enemies {
		health := s.ecs.Healths[id]
		if enemy.Escaped || (health != nil && health.Current <= 0) {
			s.removeEnemy(id)
		}
	}
}

func (s *CleanupSystem) removeEnemy(id types.EntityID) {
	delete(s.ecs.Enemies, id)
	delete(s.ecs.Healths, id)
	delete(s.ecs.Positions, id)
	delete(s.ecs.Velocities, id)
	delete(s.ecs.PathFollowers, id)
	delete(s.ecs.Renderables, id)
}
