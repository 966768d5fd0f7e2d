// internal/state/game_state.go
package state

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"go.uber.org/zap"

	"go-survivors/internal/app"
	"go-survivors/internal/config"
	"go-survivors/internal/ui"
)

// GameState — основное игровое состояние.
type GameState struct {
	sm   *StateMachine
	log  *zap.SugaredLogger
	game *app.Game
	hud  *ui.HUD
}

func NewGameState(sm *StateMachine, log *zap.SugaredLogger) *GameState {
	gameLogic := app.NewGame(log, 0)
	return &GameState{
		sm:   sm,
		log:  log,
		game: gameLogic,
		hud:  ui.NewHUD(gameLogic),
	}
}

func (s *GameState) Enter() {}

func (s *GameState) Update(deltaTime float64) {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		s.sm.SetState(NewPauseState(s.sm, s))
		return
	}

	in := app.ReadInput(s.game.Camera())
	s.game.Update(deltaTime, in)

	if s.game.IsGameOver() {
		s.sm.SetState(NewGameOverState(s.sm, s, s.log))
		return
	}

	// Каждый накопленный уровень открывает свой экран выбора.
	if s.game.Progress().PendingLevels > 0 {
		s.sm.SetState(NewUpgradeState(s.sm, s))
	}
}

func (s *GameState) Draw(screen *ebiten.Image) {
	screen.Fill(config.BackgroundColor)
	s.game.Draw(screen)
	s.hud.Draw(screen)
}

func (s *GameState) Exit() {}

// Game открывает симуляцию вложенным состояниям (пауза, апгрейд).
func (s *GameState) Game() *app.Game { return s.game }
