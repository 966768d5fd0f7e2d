// internal/state/game_over_state.go
package state

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"go.uber.org/zap"
	"golang.org/x/image/font/basicfont"

	"go-survivors/internal/config"
)

// GameOverState — итоговый экран после гибели игрока.
type GameOverState struct {
	sm   *StateMachine
	game *GameState
	log  *zap.SugaredLogger
}

func NewGameOverState(sm *StateMachine, game *GameState, log *zap.SugaredLogger) *GameOverState {
	return &GameOverState{sm: sm, game: game, log: log}
}

func (s *GameOverState) Enter() {
	g := s.game.Game()
	s.log.Infow("game over",
		"wave", g.Waves().Wave(),
		"level", g.Progress().Level,
		"time", g.World.GameTime,
	)
}

func (s *GameOverState) Update(deltaTime float64) {
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		s.sm.SetState(NewGameState(s.sm, s.log))
	}
}

func (s *GameOverState) Draw(screen *ebiten.Image) {
	s.game.Draw(screen)
	vector.DrawFilledRect(screen, 0, 0, config.ScreenWidth, config.ScreenHeight, config.OverlayColor, false)

	g := s.game.Game()
	lines := []string{
		"GAME OVER",
		fmt.Sprintf("Wave reached: %d", g.Waves().Wave()),
		fmt.Sprintf("Level: %d", g.Progress().Level),
		fmt.Sprintf("Survived: %0.f s", g.World.GameTime),
		"[R] restart",
	}
	y := config.ScreenHeight/2 - len(lines)*12
	for _, line := range lines {
		text.Draw(screen, line, basicfont.Face7x13, (config.ScreenWidth-len(line)*7)/2, y, config.TextLightColor)
		y += 24
	}
}

func (s *GameOverState) Exit() {}
