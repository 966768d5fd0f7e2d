// internal/state/pause_state.go
package state

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"go-survivors/internal/config"
)

// PauseState — пауза поверх игры.
type PauseState struct {
	sm   *StateMachine
	game *GameState
}

func NewPauseState(sm *StateMachine, game *GameState) *PauseState {
	return &PauseState{sm: sm, game: game}
}

func (s *PauseState) Enter() {}

func (s *PauseState) Update(deltaTime float64) {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		s.sm.SetState(s.game)
	}
}

func (s *PauseState) Draw(screen *ebiten.Image) {
	s.game.Draw(screen)
	vector.DrawFilledRect(screen, 0, 0, config.ScreenWidth, config.ScreenHeight, config.OverlayColor, false)

	label := "PAUSED  [Esc] resume"
	text.Draw(screen, label, basicfont.Face7x13, (config.ScreenWidth-len(label)*7)/2, config.ScreenHeight/2, config.TextLightColor)
}

func (s *PauseState) Exit() {}
