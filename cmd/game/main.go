// cmd/game/main.go
package main

import (
	"log"
	"os"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/quasilyte/gdata/v2"

	"go-tower-siege/internal/config"
	"go-tower-siege/internal/defs"
	"go-tower-siege/internal/progress"
	"go-tower-siege/internal/state"
	"go-tower-siege/pkg/path"
)

// AppGame adapts the state machine to ebiten's game loop. The simulation
// itself steps on its own fixed tick inside; this only feeds it real time.
type AppGame struct {
	stateMachine   *state.StateMachine
	lastUpdateTime time.Time
}

func (a *AppGame) Update() error {
	now := time.Now()
	deltaTime := now.Sub(a.lastUpdateTime).Seconds()
	if deltaTime > config.MaxDeltaTime {
		deltaTime = config.MaxDeltaTime
	}
	a.lastUpdateTime = now
	a.stateMachine.Update(deltaTime)
	return nil
}

func (a *AppGame) Draw(screen *ebiten.Image) {
	a.stateMachine.Draw(screen)
}

func (a *AppGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.ScreenWidth, config.ScreenHeight
}

// defaultRoute is the fixed S-shaped lane enemies walk, left edge to the
// base at the right edge.
func defaultRoute() *path.Path {
	return path.New(
		path.Point{X: -20, Y: 110},
		path.Point{X: 700, Y: 110},
		path.Point{X: 700, Y: 320},
		path.Point{X: 220, Y: 320},
		path.Point{X: 220, Y: 520},
		path.Point{X: 930, Y: 520},
	)
}

// loadDefinitionOverrides picks up optional YAML tables next to the binary.
func loadDefinitionOverrides() {
	overrides := map[string]func(string) error{
		"assets/enemies.yaml":  defs.LoadEnemyDefinitions,
		"assets/towers.yaml":   defs.LoadTowerDefinitions,
		"assets/upgrades.yaml": defs.LoadUpgradeDefinitions,
	}
	for file, load := range overrides {
		if _, err := os.Stat(file); err != nil {
			continue
		}
		if err := load(file); err != nil {
			log.Printf("definition override %s skipped: %v", file, err)
		}
	}
}

func main() {
	loadDefinitionOverrides()

	gdataManager, err := gdata.Open(gdata.Config{AppName: "go-tower-siege"})
	if err != nil {
		log.Printf("persistent storage unavailable: %v (records kept in memory)", err)
		gdataManager = nil
	}
	records := progress.NewManager(gdataManager)

	sm := state.NewStateMachine()
	sm.SetState(state.NewMenuState(sm, defaultRoute(), records))

	app := &AppGame{
		stateMachine:   sm,
		lastUpdateTime: time.Now(),
	}
	ebiten.SetWindowSize(config.ScreenWidth, config.ScreenHeight)
	ebiten.SetWindowTitle("Tower Siege")
	if err := ebiten.RunGame(app); err != nil {
		log.Fatal(err)
	}
}
