// internal/state/menu_state.go
package state

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"go.uber.org/zap"
	"golang.org/x/image/font/basicfont"

	"go-survivors/internal/config"
)

// MenuState — стартовый экран.
type MenuState struct {
	sm  *StateMachine
	log *zap.SugaredLogger
}

func NewMenuState(sm *StateMachine, log *zap.SugaredLogger) *MenuState {
	return &MenuState{sm: sm, log: log}
}

func (s *MenuState) Enter() {}

func (s *MenuState) Update(deltaTime float64) {
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) || inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		s.sm.SetState(NewGameState(s.sm, s.log))
	}
}

func (s *MenuState) Draw(screen *ebiten.Image) {
	screen.Fill(config.BackgroundColor)
	lines := []string{
		"SURVIVORS",
		"",
		"WASD move, Space dash, B bomb",
		"Weapons fire on their own",
		"",
		"[Enter] start",
	}
	y := config.ScreenHeight/2 - len(lines)*12
	for _, line := range lines {
		text.Draw(screen, line, basicfont.Face7x13, (config.ScreenWidth-len(line)*7)/2, y, config.TextLightColor)
		y += 24
	}
}

func (s *MenuState) Exit() {}
