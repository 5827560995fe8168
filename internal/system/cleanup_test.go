package system

import (
	"testing"

	"go-tower-siege/internal/component"
	"go-tower-siege/internal/config"
	"go-tower-siege/internal/entity"
)

func TestCleanupPurgesDeadAndEscaped(t *testing.T) {
	ecs := entity.NewECS()
	s := NewCleanupSystem(ecs)

	alive := addEnemy(ecs, 10, 0, 60, 1, 30)
	dead := addEnemy(ecs, 20, 0, 60, 1, 30)
	ecs.Healths[dead].Current = 0
	escaped := addEnemy(ecs, 30, 0, 60, 1, 30)
	ecs.Enemies[escaped].Escaped = true

	s.Update(tick)

	if _, ok := ecs.Enemies[alive]; !ok {
		t.Error("living enemy was purged")
	}
	if _, ok := ecs.Enemies[dead]; ok {
		t.Error("dead enemy survived cleanup")
	}
	if _, ok := ecs.Positions[dead]; ok {
		t.Error("dead enemy left a position behind")
	}
	if _, ok := ecs.Enemies[escaped]; ok {
		t.Error("escaped enemy survived cleanup")
	}
	if _, ok := ecs.PathFollowers[escaped]; ok {
		t.Error("escaped enemy left a path follower behind")
	}
}

func TestCleanupExpiresAreaEffects(t *testing.T) {
	ecs := entity.NewECS()
	s := NewCleanupSystem(ecs)

	id := ecs.NewEntity()
	ecs.Positions[id] = &component.Position{X: 100, Y: 100}
	ecs.AreaEffects[id] = &component.AreaEffect{Radius: 90, Duration: config.AreaEffectDuration}
	ecs.Renderables[id] = &component.Renderable{}

	// 0.3s lifetime: alive after 10 ticks, gone after 20.
	for i := 0; i < 10; i++ {
		s.Update(tick)
	}
	if _, ok := ecs.AreaEffects[id]; !ok {
		t.Fatal("effect expired early")
	}
	for i := 0; i < 10; i++ {
		s.Update(tick)
	}
	if _, ok := ecs.AreaEffects[id]; ok {
		t.Error("effect outlived its duration")
	}
	if _, ok := ecs.Positions[id]; ok {
		t.Error("expired effect left a position behind")
	}
}
