package component

import "go-tower-siege/internal/defs"

// Tower holds a placed tower's mutable combat state. Its position is set
// once at placement and never changes; range and fire interval start at the
// kind's base values and only ever improve through upgrades.
type Tower struct {
	Kind         defs.TowerKind
	Range        float64
	Damage       int
	FireInterval float64
	Cooldown     float64 // seconds of simulated time until the next allowed shot
	Pierce       bool
	Upgrades     map[defs.UpgradeKind]bool // applied upgrades, at most one of each kind
}
