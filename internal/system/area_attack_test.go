package system

import (
	"testing"

	"go-tower-siege/internal/defs"
	"go-tower-siege/internal/entity"
	"go-tower-siege/internal/event"
	"go-tower-siege/internal/types"
)

func TestAreaAttackHitsEveryEnemyInRange(t *testing.T) {
	ecs := entity.NewECS()
	dispatcher := event.NewDispatcher()
	s := NewAreaAttackSystem(ecs, dispatcher)

	addTower(ecs, defs.TowerBlast, 300, 300) // range 90, damage 8

	inRange := []types.EntityID{
		addEnemy(ecs, 300, 300, 60, 1, 30),
		addEnemy(ecs, 350, 300, 60, 1, 30),
		addEnemy(ecs, 300, 250, 60, 1, 30),
		addEnemy(ecs, 240, 300, 60, 1, 30),
		addEnemy(ecs, 300, 380, 60, 1, 30),
	}
	outside := addEnemy(ecs, 500, 300, 60, 1, 30)

	s.Update(tick)

	for _, id := range inRange {
		if got := ecs.Healths[id].Current; got != 22 {
			t.Errorf("enemy %d in range: expected health 22, got %d", id, got)
		}
	}
	if got := ecs.Healths[outside].Current; got != 30 {
		t.Errorf("enemy outside range took damage: health %d", got)
	}
	if len(ecs.AreaEffects) != 1 {
		t.Errorf("expected exactly one effect record per firing, got %d", len(ecs.AreaEffects))
	}
}

func TestAreaAttackCooldownHoldsWithoutHits(t *testing.T) {
	ecs := entity.NewECS()
	dispatcher := event.NewDispatcher()
	s := NewAreaAttackSystem(ecs, dispatcher)

	towerID := addTower(ecs, defs.TowerBlast, 300, 300)

	// Empty field: no firing, cooldown stays ready.
	for i := 0; i < 30; i++ {
		s.Update(tick)
	}
	if cd := ecs.Towers[towerID].Cooldown; cd != 0 {
		t.Errorf("cooldown consumed with no hits: %f", cd)
	}
	if len(ecs.AreaEffects) != 0 {
		t.Errorf("effect spawned with no hits")
	}

	// First enemy to walk in gets hit on the very next tick.
	id := addEnemy(ecs, 320, 300, 60, 1, 30)
	s.Update(tick)
	if got := ecs.Healths[id].Current; got != 22 {
		t.Errorf("expected immediate hit for 8, health is %d", got)
	}
	if cd := ecs.Towers[towerID].Cooldown; cd != defs.TowerLibrary[defs.TowerBlast].FireInterval {
		t.Errorf("cooldown not reset after a hit: %f", cd)
	}
}

func TestAreaAttackKillPaysExactlyOnce(t *testing.T) {
	ecs := entity.NewECS()
	dispatcher := event.NewDispatcher()
	recorder := &eventRecorder{}
	dispatcher.Subscribe(event.EnemyKilled, recorder)
	s := NewAreaAttackSystem(ecs, dispatcher)

	addTower(ecs, defs.TowerBlast, 300, 300)
	id := addEnemy(ecs, 310, 300, 60, 1, 5)

	// The corpse lingers until cleanup; later firings must ignore it.
	for i := 0; i < 120; i++ {
		s.Update(tick)
	}

	if got := recorder.count(event.EnemyKilled); got != 1 {
		t.Errorf("expected exactly 1 kill event, got %d", got)
	}
	if got := ecs.Healths[id].Current; got != 0 {
		t.Errorf("health must clamp at 0, got %d", got)
	}
}
