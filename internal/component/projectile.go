package component

import "go-tower-siege/internal/types"

// Projectile is a shot in flight.
//
// Non-piercing shots home on TargetID and die after their single hit, or
// silently when the target is gone. Piercing shots ignore TargetID, fly along
// their fixed launch heading, and record every enemy they have already struck
// so no enemy is hit twice by the same shot.
type Projectile struct {
	TargetID types.EntityID
	Speed    float64
	Damage   int
	Pierce   bool
	Heading  float64 // radians, fixed at launch; only piercing shots use it
	OriginX  float64
	OriginY  float64
	Traveled float64                 // pixels flown since launch
	Struck   map[types.EntityID]bool // piercing only
}
