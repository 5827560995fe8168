// internal/entity/ecs.go
package entity

import (
	"go-tower-siege/internal/component"
	"go-tower-siege/internal/config"
	"go-tower-siege/internal/types"
)

// ECS is the single shared entity store of a match. Every component kind
// lives in its own typed map keyed by EntityID; systems iterate the map of
// the component they own. All mutation happens on the simulation tick, so
// the store needs no locking.
type ECS struct {
	GameTime float64
	NextID   types.EntityID

	Positions     map[types.EntityID]*component.Position
	Velocities    map[types.EntityID]*component.Velocity
	PathFollowers map[types.EntityID]*component.PathFollower
	Healths       map[types.EntityID]*component.Health
	Enemies       map[types.EntityID]*component.Enemy
	Towers        map[types.EntityID]*component.Tower
	Projectiles   map[types.EntityID]*component.Projectile
	AreaEffects   map[types.EntityID]*component.AreaEffect
	Renderables   map[types.EntityID]*component.Renderable

	Wave  *component.Wave // nil while the scheduler is idle
	Match *component.Match
}

func NewECS() *ECS {
	return &ECS{
		NextID:        1,
		Positions:     make(map[types.EntityID]*component.Position),
		Velocities:    make(map[types.EntityID]*component.Velocity),
		PathFollowers: make(map[types.EntityID]*component.PathFollower),
		Healths:       make(map[types.EntityID]*component.Health),
		Enemies:       make(map[types.EntityID]*component.Enemy),
		Towers:        make(map[types.EntityID]*component.Tower),
		Projectiles:   make(map[types.EntityID]*component.Projectile),
		AreaEffects:   make(map[types.EntityID]*component.AreaEffect),
		Renderables:   make(map[types.EntityID]*component.Renderable),
		Wave:          nil,
		Match: &component.Match{
			Coins:      config.StartingCoins,
			BaseHealth: config.BaseHealth,
			Status:     component.MatchNotStarted,
		},
	}
}

func (ecs *ECS) NewEntity() types.EntityID {
	id := ecs.NextID
	ecs.NextID++
	return id
}
