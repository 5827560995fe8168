package app

import (
	"sort"
	"testing"

	"go-tower-siege/internal/defs"
)

func TestSnapshotReflectsMatchState(t *testing.T) {
	g := NewGame(longRoute())
	g.StartMatch()
	g.PlaceTower(defs.TowerGun, 100, 200)
	addEnemy(g, 50, 0, 60, 1, 30, 2)
	addEnemy(g, 80, 0, 60, 1, 30, 2)

	snap := g.Snapshot()

	if len(snap.Towers) != 1 {
		t.Errorf("expected 1 tower view, got %d", len(snap.Towers))
	}
	if len(snap.Enemies) != 2 {
		t.Errorf("expected 2 enemy views, got %d", len(snap.Enemies))
	}
	if snap.Coins != g.ECS.Match.Coins || snap.BaseHealth != g.ECS.Match.BaseHealth {
		t.Error("snapshot economy fields out of sync")
	}
	if snap.WaveActive {
		t.Error("no wave is running")
	}
	if snap.CanStart {
		t.Error("enemies on the field must block the next wave")
	}

	if !sort.SliceIsSorted(snap.Enemies, func(i, j int) bool { return snap.Enemies[i].ID < snap.Enemies[j].ID }) {
		t.Error("enemy views must be sorted by ID")
	}
}

func TestSnapshotIsACopy(t *testing.T) {
	g := NewGame(longRoute())
	g.StartMatch()
	id := addEnemy(g, 50, 0, 60, 1, 30, 2)

	snap := g.Snapshot()
	snap.Enemies[0].Health = 1
	snap.Coins = 0

	if g.ECS.Healths[id].Current != 30 {
		t.Error("mutating the snapshot leaked into the store")
	}
	if g.ECS.Match.Coins == 0 {
		t.Error("mutating the snapshot leaked into the match state")
	}
}
