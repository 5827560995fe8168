// internal/system/wave.go
package system

import (
	"log"
	"math"

	"go-tower-siege/internal/component"
	"go-tower-siege/internal/config"
	"go-tower-siege/internal/defs"
	"go-tower-siege/internal/entity"
	"go-tower-siege/internal/event"
	"go-tower-siege/pkg/path"
)

// WaveSystem is the spawn scheduler: idle -> spawning -> draining -> idle.
// It runs as the first pass of each tick, so spawned enemies only ever join
// the shared collection on a tick boundary, never mid-tick.
type WaveSystem struct {
	ecs        *entity.ECS
	path       *path.Path
	dispatcher *event.Dispatcher
}

func NewWaveSystem(ecs *entity.ECS, p *path.Path, dispatcher *event.Dispatcher) *WaveSystem {
	return &WaveSystem{ecs: ecs, path: p, dispatcher: dispatcher}
}

// StartWave resolves the wave's composition into a concrete spawn queue and
// begins spawning. The first enemy appears on the next tick.
func (s *WaveSystem) StartWave(number int) *component.Wave {
	spec := defs.ForWave(number)

	queue := make([]defs.EnemyKind, 0, spec.TotalCount())
	for _, group := range spec.Groups {
		for i := 0; i < group.Count; i++ {
			queue = append(queue, group.Kind)
		}
	}

	wave := &component.Wave{
		Number:        number,
		Phase:         component.WaveSpawning,
		Queue:         queue,
		SpawnInterval: spec.SpawnInterval,
		SpawnTimer:    spec.SpawnInterval, // preloaded: first spawn fires immediately
		HealthScale:   spec.HealthScale,
	}
	s.ecs.Wave = wave
	s.dispatcher.Dispatch(event.Event{Type: event.WaveStarted, Data: number})
	return wave
}

func (s *WaveSystem) Update(deltaTime float64) {
	wave := s.ecs.Wave
	if wave == nil {
		return
	}

	switch wave.Phase {
	case component.WaveSpawning:
		wave.SpawnTimer += deltaTime
		if wave.SpawnTimer >= wave.SpawnInterval && len(wave.Queue) > 0 {
			s.spawnEnemy(wave.Queue[0], wave.HealthScale)
			wave.Queue = wave.Queue[1:]
			wave.SpawnTimer = 0
		}
		if len(wave.Queue) == 0 {
			wave.Phase = component.WaveDraining
			wave.DrainTimer = config.WaveDrainDelay
		}
	case component.WaveDraining:
		wave.DrainTimer -= deltaTime
		if wave.DrainTimer <= 0 {
			number := wave.Number
			s.ecs.Wave = nil // scheduler back to idle
			s.dispatcher.Dispatch(event.Event{Type: event.WaveEnded, Data: number})
		}
	}
}

func (s *WaveSystem) spawnEnemy(kind defs.EnemyKind, healthScale float64) {
	def, ok := defs.EnemyLibrary[kind]
	if !ok {
		log.Printf("wave: no enemy definition for kind %s", kind)
		return
	}

	maxHealth := int(math.Round(float64(def.Health) * healthScale))
	start := s.path.Start()

	id := s.ecs.NewEntity()
	s.ecs.Positions[id] = &component.Position{X: start.X, Y: start.Y}
	s.ecs.Velocities[id] = &component.Velocity{Speed: def.Speed}
	// Spawn sits on waypoint 0, so the first walk target is waypoint 1.
	s.ecs.PathFollowers[id] = &component.PathFollower{WaypointIndex: 1}
	s.ecs.Healths[id] = &component.Health{Current: maxHealth, Max: maxHealth}
	s.ecs.Enemies[id] = &component.Enemy{
		Kind:       kind,
		Reward:     def.Reward,
		BaseDamage: def.BaseDamage,
	}
	s.ecs.Renderables[id] = &component.Renderable{
		Color:     enemyColor(kind),
		Radius:    float32(def.Radius),
		HasStroke: kind == defs.EnemyBoss,
	}
}
