package component

import "go-tower-siege/internal/defs"

// Enemy marks an entity as an attacker walking the path.
type Enemy struct {
	Kind       defs.EnemyKind
	Reward     int  // coins credited when killed
	BaseDamage int  // base health lost when it escapes
	Escaped    bool // set exactly once, the tick movement carries it past the last waypoint
}
