package defs

// BehaviorType selects how a tower resolves its attack.
type BehaviorType string

const (
	// BehaviorSingleTarget towers bind a projectile to one enemy.
	BehaviorSingleTarget BehaviorType = "SINGLE_TARGET"
	// BehaviorAreaOfEffect towers damage everything in range instantly.
	BehaviorAreaOfEffect BehaviorType = "AREA_OF_EFFECT"
)
