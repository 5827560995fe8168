// internal/state/game_state.go
package state

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"

	"go-tower-siege/internal/app"
	"go-tower-siege/internal/component"
	"go-tower-siege/internal/config"
	"go-tower-siege/internal/defs"
	"go-tower-siege/internal/progress"
	"go-tower-siege/internal/types"
	"go-tower-siege/internal/ui"
	"go-tower-siege/pkg/path"
)

// buildOrder maps the 1-5 keys to tower kinds.
var buildOrder = []defs.TowerKind{
	defs.TowerGun,
	defs.TowerRapid,
	defs.TowerSniper,
	defs.TowerBlast,
	defs.TowerTesla,
}

// upgradeKeys maps Q/W/E to upgrade kinds for the selected tower.
var upgradeKeys = map[ebiten.Key]defs.UpgradeKind{
	ebiten.KeyQ: defs.UpgradeRange,
	ebiten.KeyW: defs.UpgradeFireRate,
	ebiten.KeyE: defs.UpgradePierce,
}

// GameState runs a match: it feeds real time into the simulation, turns
// input into engine commands, and draws snapshots.
type GameState struct {
	sm       *StateMachine
	game     *app.Game
	route    *path.Path
	records  *progress.Manager
	fontFace font.Face

	hud           *ui.HUD
	nextWaveBtn   *ui.Button
	buildKind     defs.TowerKind
	selectedTower types.EntityID
}

func NewGameState(sm *StateMachine, route *path.Path, records *progress.Manager) *GameState {
	face := basicfont.Face7x13
	gs := &GameState{
		sm:          sm,
		game:        app.NewGame(route),
		route:       route,
		records:     records,
		fontFace:    face,
		hud:         ui.NewHUD(face),
		nextWaveBtn: ui.NewButton(config.ScreenWidth-150, 36, 130, 28, "Next Wave", face),
		buildKind:   defs.TowerGun,
	}
	gs.game.StartMatch()
	return gs
}

func (g *GameState) Enter() {}

func (g *GameState) Update(deltaTime float64) {
	for i, kind := range buildOrder {
		if inpututil.IsKeyJustPressed(ebiten.Key1 + ebiten.Key(i)) {
			g.buildKind = kind
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.game.StartNextWave()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyP) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		g.sm.SetState(NewPauseState(g.sm, g))
		return
	}
	if g.selectedTower != 0 {
		for key, kind := range upgradeKeys {
			if inpututil.IsKeyJustPressed(key) {
				g.game.UpgradeTower(g.selectedTower, kind)
			}
		}
	}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		g.handleClick(x, y)
	}

	g.game.Update(deltaTime)

	if g.game.ECS.Match.Status == component.MatchOver {
		snap := g.game.Snapshot()
		g.records.Record(snap.Score, snap.WaveNumber)
		g.sm.SetState(NewGameOverState(g.sm, g.route, g.records, snap))
	}
}

func (g *GameState) handleClick(x, y int) {
	if g.nextWaveBtn.TryClick(x, y) {
		g.game.StartNextWave()
		return
	}
	if id, found := g.findTowerAt(x, y); found {
		g.selectedTower = id
		return
	}
	g.selectedTower = 0
	g.game.PlaceTower(g.buildKind, float64(x), float64(y))
}

func (g *GameState) findTowerAt(x, y int) (types.EntityID, bool) {
	for id, pos := range g.game.ECS.Positions {
		if _, isTower := g.game.ECS.Towers[id]; !isTower {
			continue
		}
		if math.Hypot(pos.X-float64(x), pos.Y-float64(y)) < 14 {
			return id, true
		}
	}
	return 0, false
}

func (g *GameState) Draw(screen *ebiten.Image) {
	snap := g.game.Snapshot()
	drawBattlefield(screen, snap, g.route, g.selectedTower)
	g.nextWaveBtn.Disabled = !snap.CanStart
	g.nextWaveBtn.Draw(screen)
	g.hud.Draw(screen, snap, g.buildKind)
}

func (g *GameState) Exit() {}

// Game exposes the engine to sibling states (pause needs it).
func (g *GameState) Game() *app.Game {
	return g.game
}
