// internal/event/types.go
package event

import "go-tower-siege/internal/types"

const (
	EnemyKilled  EventType = "EnemyKilled"  // Data: KillPayload
	EnemyEscaped EventType = "EnemyEscaped" // Data: EscapePayload
	WaveStarted  EventType = "WaveStarted"  // Data: wave number (int)
	WaveEnded    EventType = "WaveEnded"    // Data: wave number (int)
	TowerPlaced  EventType = "TowerPlaced"  // Data: types.EntityID
	GameOver     EventType = "GameOver"
)

// KillPayload carries the one-time side effects of a kill.
type KillPayload struct {
	ID     types.EntityID
	Reward int
}

// EscapePayload carries the one-time side effects of an escape.
type EscapePayload struct {
	ID     types.EntityID
	Damage int
}
