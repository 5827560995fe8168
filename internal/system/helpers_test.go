package system

import (
	"go-tower-siege/internal/component"
	"go-tower-siege/internal/defs"
	"go-tower-siege/internal/entity"
	"go-tower-siege/internal/event"
	"go-tower-siege/internal/types"
	"go-tower-siege/pkg/path"
)

const tick = 1.0 / 60.0

func testRoute() *path.Path {
	return path.New(
		path.Point{X: 0, Y: 0},
		path.Point{X: 100, Y: 0},
		path.Point{X: 200, Y: 0},
		path.Point{X: 300, Y: 0},
	)
}

func addEnemy(ecs *entity.ECS, x, y, speed float64, waypointIndex, health int) types.EntityID {
	id := ecs.NewEntity()
	ecs.Positions[id] = &component.Position{X: x, Y: y}
	ecs.Velocities[id] = &component.Velocity{Speed: speed}
	ecs.PathFollowers[id] = &component.PathFollower{WaypointIndex: waypointIndex}
	ecs.Healths[id] = &component.Health{Current: health, Max: health}
	ecs.Enemies[id] = &component.Enemy{Kind: defs.EnemyBasic, Reward: 5, BaseDamage: 2}
	return id
}

func addTower(ecs *entity.ECS, kind defs.TowerKind, x, y float64) types.EntityID {
	def := defs.TowerLibrary[kind]
	id := ecs.NewEntity()
	ecs.Positions[id] = &component.Position{X: x, Y: y}
	ecs.Towers[id] = &component.Tower{
		Kind:         kind,
		Range:        def.Range,
		Damage:       def.Damage,
		FireInterval: def.FireInterval,
		Upgrades:     make(map[defs.UpgradeKind]bool),
	}
	return id
}

// eventRecorder collects dispatched events for assertions.
type eventRecorder struct {
	events []event.Event
}

func (r *eventRecorder) OnEvent(e event.Event) {
	r.events = append(r.events, e)
}

func (r *eventRecorder) count(eventType event.EventType) int {
	n := 0
	for _, e := range r.events {
		if e.Type == eventType {
			n++
		}
	}
	return n
}
