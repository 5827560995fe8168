// internal/system/damage.go
package system

import (
	"go-tower-siege/internal/entity"
	"go-tower-siege/internal/event"
	"go-tower-siege/internal/types"
)

// ApplyDamage reduces an enemy's health and, on the hit that empties it,
// dispatches the one-time EnemyKilled side effects (reward and score are
// credited by the listener). Dead or escaped enemies absorb nothing, so a
// second hit in the same tick can never double-pay a kill. Returns true if
// this hit killed the enemy.
func ApplyDamage(ecs *entity.ECS, dispatcher *event.Dispatcher, enemyID types.EntityID, damage int) bool {
	enemy, isEnemy := ecs.Enemies[enemyID]
	health, hasHealth := ecs.Healths[enemyID]
	if !isEnemy || !hasHealth {
		return false
	}
	if enemy.Escaped || health.Current <= 0 {
		return false
	}

	health.Current -= damage
	if health.Current > 0 {
		return false
	}
	health.Current = 0

	dispatcher.Dispatch(event.Event{
		Type: event.EnemyKilled,
		Data: event.KillPayload{ID: enemyID, Reward: enemy.Reward},
	})
	return true
}

// EnemyTargetable reports whether the enemy may still be targeted or hit:
// present, not escaped, health above zero.
func EnemyTargetable(ecs *entity.ECS, enemyID types.EntityID) bool {
	enemy, isEnemy := ecs.Enemies[enemyID]
	health, hasHealth := ecs.Healths[enemyID]
	return isEnemy && hasHealth && !enemy.Escaped && health.Current > 0
}
