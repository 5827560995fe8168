package component

import "go-tower-siege/internal/defs"

// WavePhase is the spawn scheduler's state.
type WavePhase int

const (
	WaveIdle WavePhase = iota
	WaveSpawning
	WaveDraining
)

// Wave tracks the active wave's spawn schedule. The scheduler is idle
// whenever the ECS holds no Wave at all.
type Wave struct {
	Number        int
	Phase         WavePhase
	Queue         []defs.EnemyKind // remaining spawns, in order
	SpawnInterval float64
	SpawnTimer    float64 // simulated seconds accumulated toward the next spawn
	HealthScale   float64
	DrainTimer    float64
}
