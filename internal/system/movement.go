// internal/system/movement.go
package system

import (
	"math"

	"go-tower-siege/internal/entity"
	"go-tower-siege/internal/event"
	"go-tower-siege/pkg/path"
)

// MovementSystem walks every alive enemy along the match path. Escape
// detection happens here, in the same tick movement causes it: the enemy is
// flagged exactly once and the EnemyEscaped side effects fire through the
// dispatcher.
type MovementSystem struct {
	ecs        *entity.ECS
	path       *path.Path
	dispatcher *event.Dispatcher
}

func NewMovementSystem(ecs *entity.ECS, p *path.Path, dispatcher *event.Dispatcher) *MovementSystem {
	return &MovementSystem{ecs: ecs, path: p, dispatcher: dispatcher}
}

func (s *MovementSystem) Update(deltaTime float64) {
	for id, enemy := range s.ecs.Enemies {
		if enemy.Escaped {
			continue
		}
		health, hasHealth := s.ecs.Healths[id]
		if !hasHealth || health.Current <= 0 {
			continue
		}
		pos := s.ecs.Positions[id]
		vel := s.ecs.Velocities[id]
		follower := s.ecs.PathFollowers[id]
		if pos == nil || vel == nil || follower == nil {
			continue
		}
		if follower.WaypointIndex >= s.path.Len() {
			continue
		}

		target := s.path.Waypoint(follower.WaypointIndex)
		dx := target.X - pos.X
		dy := target.Y - pos.Y
		dist := math.Hypot(dx, dy)
		step := vel.Speed * deltaTime

		if dist <= step {
			pos.X = target.X
			pos.Y = target.Y
			follower.WaypointIndex++
			if follower.WaypointIndex >= s.path.Len() {
				enemy.Escaped = true
				s.dispatcher.Dispatch(event.Event{
					Type: event.EnemyEscaped,
					Data: event.EscapePayload{ID: id, Damage: enemy.BaseDamage},
				})
			}
		} else {
			pos.X += dx / dist * step
			pos.Y += dy / dist * step
		}
	}
}
