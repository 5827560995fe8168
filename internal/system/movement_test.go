package system

import (
	"math"
	"testing"

	"go-tower-siege/internal/entity"
	"go-tower-siege/internal/event"
)

func TestMovementStepsTowardWaypoint(t *testing.T) {
	ecs := entity.NewECS()
	dispatcher := event.NewDispatcher()
	s := NewMovementSystem(ecs, testRoute(), dispatcher)

	id := addEnemy(ecs, 0, 0, 60, 1, 30)
	s.Update(tick)

	pos := ecs.Positions[id]
	if math.Abs(pos.X-1.0) > 1e-9 || pos.Y != 0 {
		t.Errorf("expected position (1,0), got (%f,%f)", pos.X, pos.Y)
	}
	if ecs.PathFollowers[id].WaypointIndex != 1 {
		t.Errorf("waypoint index should not advance mid-segment")
	}
}

func TestMovementSnapsAndAdvancesWaypoint(t *testing.T) {
	ecs := entity.NewECS()
	dispatcher := event.NewDispatcher()
	s := NewMovementSystem(ecs, testRoute(), dispatcher)

	// 0.5px from the waypoint, 1px step: snap, advance.
	id := addEnemy(ecs, 99.5, 0, 60, 1, 30)
	s.Update(tick)

	pos := ecs.Positions[id]
	if pos.X != 100 || pos.Y != 0 {
		t.Errorf("expected snap to (100,0), got (%f,%f)", pos.X, pos.Y)
	}
	if got := ecs.PathFollowers[id].WaypointIndex; got != 2 {
		t.Errorf("expected waypoint index 2, got %d", got)
	}
}

func TestEscapeDetectedExactlyOnce(t *testing.T) {
	ecs := entity.NewECS()
	dispatcher := event.NewDispatcher()
	recorder := &eventRecorder{}
	dispatcher.Subscribe(event.EnemyEscaped, recorder)
	s := NewMovementSystem(ecs, testRoute(), dispatcher)

	id := addEnemy(ecs, 299.5, 0, 60, 3, 30)
	s.Update(tick)
	s.Update(tick)
	s.Update(tick)

	if got := recorder.count(event.EnemyEscaped); got != 1 {
		t.Fatalf("expected exactly 1 escape event, got %d", got)
	}
	if !ecs.Enemies[id].Escaped {
		t.Error("enemy should be flagged escaped")
	}
	payload := recorder.events[0].Data.(event.EscapePayload)
	if payload.ID != id || payload.Damage != 2 {
		t.Errorf("unexpected escape payload: %+v", payload)
	}
}

func TestDeadEnemyDoesNotMove(t *testing.T) {
	ecs := entity.NewECS()
	dispatcher := event.NewDispatcher()
	s := NewMovementSystem(ecs, testRoute(), dispatcher)

	id := addEnemy(ecs, 10, 0, 60, 1, 30)
	ecs.Healths[id].Current = 0
	s.Update(tick)

	if pos := ecs.Positions[id]; pos.X != 10 {
		t.Errorf("dead enemy moved to x=%f", pos.X)
	}
}
