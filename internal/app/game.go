// internal/app/game.go
package app

import (
	"go-tower-siege/internal/component"
	"go-tower-siege/internal/config"
	"go-tower-siege/internal/entity"
	"go-tower-siege/internal/event"
	"go-tower-siege/internal/system"
	"go-tower-siege/pkg/path"
)

// Game owns one match: the shared ECS store, all simulation systems, and
// the command surface the presentation layer talks to. The whole simulation
// is single-threaded; every mutation happens inside a fixed tick.
type Game struct {
	ECS  *entity.ECS
	Path *path.Path

	WaveSystem       *system.WaveSystem
	MovementSystem   *system.MovementSystem
	CombatSystem     *system.CombatSystem
	AreaAttackSystem *system.AreaAttackSystem
	ProjectileSystem *system.ProjectileSystem
	CleanupSystem    *system.CleanupSystem
	EventDispatcher  *event.Dispatcher

	accumulator float64
}

// NewGame initializes a match on the given path with initial coins and base
// health, in the not-started state.
func NewGame(p *path.Path) *Game {
	if p == nil {
		panic("path cannot be nil")
	}
	g := &Game{Path: p}
	g.reset()
	return g
}

// reset builds a fresh ECS and wires systems and listeners to it. Used by
// NewGame and ResetMatch; the path and the definition tables are kept.
func (g *Game) reset() {
	ecs := entity.NewECS()
	dispatcher := event.NewDispatcher()

	g.ECS = ecs
	g.EventDispatcher = dispatcher
	g.WaveSystem = system.NewWaveSystem(ecs, g.Path, dispatcher)
	g.MovementSystem = system.NewMovementSystem(ecs, g.Path, dispatcher)
	g.CombatSystem = system.NewCombatSystem(ecs, g.Path)
	g.AreaAttackSystem = system.NewAreaAttackSystem(ecs, dispatcher)
	g.ProjectileSystem = system.NewProjectileSystem(ecs, dispatcher)
	g.CleanupSystem = system.NewCleanupSystem(ecs)
	g.accumulator = 0

	listener := &matchListener{game: g}
	dispatcher.Subscribe(event.EnemyKilled, listener)
	dispatcher.Subscribe(event.EnemyEscaped, listener)
}

// Update advances the simulation by real elapsed time, stepping in fixed
// ticks. While the match is paused or over, no simulated time passes, so
// cooldowns and spawn timers never accumulate a backlog.
func (g *Game) Update(deltaTime float64) {
	if deltaTime > config.MaxDeltaTime {
		deltaTime = config.MaxDeltaTime
	}
	if g.ECS.Match.Status != component.MatchPlaying {
		g.accumulator = 0
		return
	}
	g.accumulator += deltaTime
	for g.accumulator >= config.TickDuration {
		g.step(config.TickDuration)
		g.accumulator -= config.TickDuration
	}
}

// step is one atomic tick. The pass order is fixed: spawning joins at the
// tick boundary, then movement (with escape detection), then tower firing,
// then projectile resolution, then effect expiry and purging.
func (g *Game) step(deltaTime float64) {
	if g.ECS.Match.Status != component.MatchPlaying {
		return // game over can hit mid-batch; stop processing gameplay
	}
	g.ECS.GameTime += deltaTime
	g.WaveSystem.Update(deltaTime)
	g.MovementSystem.Update(deltaTime)
	g.CombatSystem.Update(deltaTime)
	g.AreaAttackSystem.Update(deltaTime)
	g.ProjectileSystem.Update(deltaTime)
	g.CleanupSystem.Update(deltaTime)
}

// matchListener applies the one-time economy and base-health side effects
// of kills and escapes to the match state.
type matchListener struct {
	game *Game
}

func (l *matchListener) OnEvent(e event.Event) {
	match := l.game.ECS.Match
	switch e.Type {
	case event.EnemyKilled:
		data := e.Data.(event.KillPayload)
		match.Coins += data.Reward
		match.Score += data.Reward * config.ScoreMultiplier
	case event.EnemyEscaped:
		data := e.Data.(event.EscapePayload)
		match.BaseHealth -= data.Damage
		match.Escaped++
		if match.BaseHealth <= 0 {
			match.BaseHealth = 0
			match.Status = component.MatchOver
			l.game.EventDispatcher.Dispatch(event.Event{Type: event.GameOver})
		}
	}
}
