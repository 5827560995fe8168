// internal/state/menu_state.go
package state

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"

	"go-tower-siege/internal/config"
	"go-tower-siege/internal/progress"
	"go-tower-siege/internal/ui"
	"go-tower-siege/pkg/path"
)

var _ State = (*MenuState)(nil)

// MenuState is the title screen.
type MenuState struct {
	sm       *StateMachine
	route    *path.Path
	records  *progress.Manager
	startBtn *ui.Button
}

func NewMenuState(sm *StateMachine, route *path.Path, records *progress.Manager) *MenuState {
	face := basicfont.Face7x13
	return &MenuState{
		sm:       sm,
		route:    route,
		records:  records,
		startBtn: ui.NewButton(config.ScreenWidth/2-70, config.ScreenHeight/2, 140, 36, "Start Match", face),
	}
}

func (s *MenuState) Enter() {}

func (s *MenuState) Update(deltaTime float64) {
	start := inpututil.IsKeyJustPressed(ebiten.KeyEnter)
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		start = start || s.startBtn.TryClick(x, y)
	}
	if start {
		s.sm.SetState(NewGameState(s.sm, s.route, s.records))
	}
}

func (s *MenuState) Draw(screen *ebiten.Image) {
	screen.Fill(config.BackgroundColor)
	face := basicfont.Face7x13

	title := "TOWER SIEGE"
	bounds := text.BoundString(face, title)
	text.Draw(screen, title, face, (config.ScreenWidth-bounds.Dx())/2, config.ScreenHeight/2-60, config.TextLightColor)

	best := s.records.Best()
	if best.BestScore > 0 {
		line := fmt.Sprintf("Best score: %d (wave %d)", best.BestScore, best.BestWave)
		lb := text.BoundString(face, line)
		text.Draw(screen, line, face, (config.ScreenWidth-lb.Dx())/2, config.ScreenHeight/2-36, config.TextLightColor)
	}

	s.startBtn.Draw(screen)
}

func (s *MenuState) Exit() {}
