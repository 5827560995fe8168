// internal/state/gameover_state.go
package state

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"

	"go-tower-siege/internal/app"
	"go-tower-siege/internal/config"
	"go-tower-siege/internal/progress"
	"go-tower-siege/internal/ui"
	"go-tower-siege/pkg/path"
)

var _ State = (*GameOverState)(nil)

// GameOverState shows the final tally and offers a restart.
type GameOverState struct {
	sm         *StateMachine
	route      *path.Path
	records    *progress.Manager
	finalSnap  app.Snapshot
	restartBtn *ui.Button
}

func NewGameOverState(sm *StateMachine, route *path.Path, records *progress.Manager, finalSnap app.Snapshot) *GameOverState {
	face := basicfont.Face7x13
	return &GameOverState{
		sm:         sm,
		route:      route,
		records:    records,
		finalSnap:  finalSnap,
		restartBtn: ui.NewButton(config.ScreenWidth/2-70, config.ScreenHeight/2+40, 140, 36, "Restart", face),
	}
}

func (s *GameOverState) Enter() {}

func (s *GameOverState) Update(deltaTime float64) {
	restart := inpututil.IsKeyJustPressed(ebiten.KeyR)
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		restart = restart || s.restartBtn.TryClick(x, y)
	}
	if restart {
		s.sm.SetState(NewGameState(s.sm, s.route, s.records))
	}
}

func (s *GameOverState) Draw(screen *ebiten.Image) {
	screen.Fill(config.BackgroundColor)
	face := basicfont.Face7x13

	lines := []string{
		"GAME OVER",
		fmt.Sprintf("Score: %d   Wave: %d   Escaped: %d", s.finalSnap.Score, s.finalSnap.WaveNumber, s.finalSnap.Escaped),
		fmt.Sprintf("Best score: %d (wave %d)", s.records.Best().BestScore, s.records.Best().BestWave),
	}
	y := config.ScreenHeight/2 - 60
	for _, line := range lines {
		bounds := text.BoundString(face, line)
		text.Draw(screen, line, face, (config.ScreenWidth-bounds.Dx())/2, y, config.TextLightColor)
		y += 22
	}

	s.restartBtn.Draw(screen)
}

func (s *GameOverState) Exit() {}
