// internal/system/projectile.go
package system

import (
	"math"

	"go-tower-siege/internal/component"
	"go-tower-siege/internal/config"
	"go-tower-siege/internal/entity"
	"go-tower-siege/internal/event"
	"go-tower-siege/internal/types"
)

// ProjectileSystem integrates projectile flight and resolves impacts.
//
// A non-piercing shot re-resolves its bound target by identity every tick;
// a vanished target is a normal transient condition and just ends the shot.
// A piercing shot flies along its launch heading, striking each enemy at
// most once, until it has travelled its maximum range.
type ProjectileSystem struct {
	ecs        *entity.ECS
	dispatcher *event.Dispatcher
}

func NewProjectileSystem(ecs *entity.ECS, dispatcher *event.Dispatcher) *ProjectileSystem {
	return &ProjectileSystem{ecs: ecs, dispatcher: dispatcher}
}

func (s *ProjectileSystem) Update(deltaTime float64) {
	for id, proj := range s.ecs.Projectiles {
		pos := s.ecs.Positions[id]
		if pos == nil {
			s.removeProjectile(id)
			continue
		}
		if proj.Pierce {
			s.updatePiercing(id, proj, pos, deltaTime)
		} else {
			s.updateHoming(id, proj, pos, deltaTime)
		}
	}
}

func (s *ProjectileSystem) updateHoming(id types.EntityID, proj *component.Projectile, pos *component.Position, deltaTime float64) {
	if !EnemyTargetable(s.ecs, proj.TargetID) {
		// Target died or escaped before impact: no damage, no retargeting.
		s.removeProjectile(id)
		return
	}
	targetPos := s.ecs.Positions[proj.TargetID]

	dx := targetPos.X - pos.X
	dy := targetPos.Y - pos.Y
	dist := math.Hypot(dx, dy)
	step := proj.Speed * deltaTime

	if dist <= step {
		ApplyDamage(s.ecs, s.dispatcher, proj.TargetID, proj.Damage)
		s.removeProjectile(id)
		return
	}
	pos.X += dx / dist * step
	pos.Y += dy / dist * step
}

func (s *ProjectileSystem) updatePiercing(id types.EntityID, proj *component.Projectile, pos *component.Position, deltaTime float64) {
	// Strike at most one not-yet-struck enemy per tick; nearest first, lowest
	// ID on a tie, so the outcome does not depend on map iteration order.
	var hitID types.EntityID
	hitDist := math.MaxFloat64
	for enemyID := range s.ecs.Enemies {
		if proj.Struck[enemyID] || !EnemyTargetable(s.ecs, enemyID) {
			continue
		}
		enemyPos := s.ecs.Positions[enemyID]
		if enemyPos == nil {
			continue
		}
		dist := math.Hypot(enemyPos.X-pos.X, enemyPos.Y-pos.Y)
		if dist > config.PierceHitRadius {
			continue
		}
		if dist < hitDist || (dist == hitDist && enemyID < hitID) {
			hitID = enemyID
			hitDist = dist
		}
	}
	if hitID != 0 {
		ApplyDamage(s.ecs, s.dispatcher, hitID, proj.Damage)
		proj.Struck[hitID] = true
		// Flight continues unmodified through the enemy.
	}

	step := proj.Speed * deltaTime
	pos.X += math.Cos(proj.Heading) * step
	pos.Y += math.Sin(proj.Heading) * step
	proj.Traveled += step

	if proj.Traveled > config.PierceMaxRange {
		s.removeProjectile(id)
	}
}

func (s *ProjectileSystem) removeProjectile(id types.EntityID) {
	delete(s.ecs.Positions, id)
	delete(s.ecs.Projectiles, id)
	delete(s.ecs.Renderables, id)
}
