package system

import (
	"testing"

	"go-tower-siege/internal/defs"
	"go-tower-siege/internal/entity"
	"go-tower-siege/internal/types"
)

func soleProjectileTarget(t *testing.T, ecs *entity.ECS) types.EntityID {
	t.Helper()
	if len(ecs.Projectiles) != 1 {
		t.Fatalf("expected 1 projectile, got %d", len(ecs.Projectiles))
	}
	for _, proj := range ecs.Projectiles {
		return proj.TargetID
	}
	return 0
}

func TestCombatTargetsFurthestAlongPath(t *testing.T) {
	ecs := entity.NewECS()
	s := NewCombatSystem(ecs, testRoute())

	addTower(ecs, defs.TowerGun, 100, 0) // range 120
	behind := addEnemy(ecs, 50, 0, 60, 1, 30)
	ahead := addEnemy(ecs, 150, 0, 60, 2, 30)

	s.Update(tick)

	target := soleProjectileTarget(t, ecs)
	if target != ahead {
		t.Errorf("expected target %d (higher waypoint index), got %d", ahead, target)
	}
	_ = behind
}

func TestCombatTieBreakByRemainingDistanceThenID(t *testing.T) {
	ecs := entity.NewECS()
	s := NewCombatSystem(ecs, testRoute())

	addTower(ecs, defs.TowerGun, 100, 0)
	farther := addEnemy(ecs, 120, 0, 60, 2, 30) // 80px to waypoint 2
	closer := addEnemy(ecs, 160, 0, 60, 2, 30)  // 40px to waypoint 2

	s.Update(tick)
	if target := soleProjectileTarget(t, ecs); target != closer {
		t.Errorf("expected target %d (less remaining distance), got %d", closer, target)
	}
	_ = farther

	// Fully symmetric enemies: the lower ID must win, every time.
	ecs = entity.NewECS()
	s = NewCombatSystem(ecs, testRoute())
	addTower(ecs, defs.TowerGun, 100, 0)
	first := addEnemy(ecs, 150, 10, 60, 2, 30)
	addEnemy(ecs, 150, -10, 60, 2, 30)

	s.Update(tick)
	if target := soleProjectileTarget(t, ecs); target != first {
		t.Errorf("expected lower-ID target %d, got %d", first, target)
	}
}

func TestCombatIgnoresOutOfRangeAndUntargetable(t *testing.T) {
	ecs := entity.NewECS()
	s := NewCombatSystem(ecs, testRoute())

	towerID := addTower(ecs, defs.TowerGun, 100, 0)
	addEnemy(ecs, 280, 0, 60, 3, 30) // 180px away, range is 120
	dead := addEnemy(ecs, 110, 0, 60, 1, 30)
	ecs.Healths[dead].Current = 0
	escaped := addEnemy(ecs, 120, 0, 60, 1, 30)
	ecs.Enemies[escaped].Escaped = true

	s.Update(tick)

	if len(ecs.Projectiles) != 0 {
		t.Errorf("expected no projectile, got %d", len(ecs.Projectiles))
	}
	if cd := ecs.Towers[towerID].Cooldown; cd != 0 {
		t.Errorf("cooldown must stay ready when nothing was targeted, got %f", cd)
	}
}

func TestCombatCooldownGatesFiring(t *testing.T) {
	ecs := entity.NewECS()
	s := NewCombatSystem(ecs, testRoute())

	towerID := addTower(ecs, defs.TowerGun, 100, 0)
	addEnemy(ecs, 150, 0, 60, 2, 1000)

	s.Update(tick)
	if len(ecs.Projectiles) != 1 {
		t.Fatalf("expected 1 projectile after first tick, got %d", len(ecs.Projectiles))
	}
	if cd := ecs.Towers[towerID].Cooldown; cd != defs.TowerLibrary[defs.TowerGun].FireInterval {
		t.Errorf("expected cooldown reset to fire interval, got %f", cd)
	}

	// The target stays in range; the cooldown alone must hold fire.
	for i := 0; i < 10; i++ {
		s.Update(tick)
	}
	if len(ecs.Projectiles) != 1 {
		t.Errorf("tower fired during cooldown: %d projectiles", len(ecs.Projectiles))
	}

	for i := 0; i < 60; i++ {
		s.Update(tick)
	}
	if len(ecs.Projectiles) != 2 {
		t.Errorf("expected second shot after cooldown elapsed, got %d projectiles", len(ecs.Projectiles))
	}
}

func TestCombatPierceTowerLaunchesPiercingShot(t *testing.T) {
	ecs := entity.NewECS()
	s := NewCombatSystem(ecs, testRoute())

	towerID := addTower(ecs, defs.TowerSniper, 100, 0)
	ecs.Towers[towerID].Pierce = true
	addEnemy(ecs, 200, 0, 60, 2, 1000)

	s.Update(tick)

	for _, proj := range ecs.Projectiles {
		if !proj.Pierce {
			t.Error("projectile from a pierce tower must be piercing")
		}
		if proj.Struck == nil {
			t.Error("piercing projectile needs its struck set initialized")
		}
	}
	if len(ecs.Projectiles) != 1 {
		t.Fatalf("expected 1 projectile, got %d", len(ecs.Projectiles))
	}
}
