// internal/state/upgrade_state.go
package state

import (
	"github.com/hajimehoshi/ebiten/v2"

	"go-survivors/internal/config"
	"go-survivors/internal/ui"
)

// UpgradeState — пауза с выбором улучшения. Симуляция стоит, мир
// рисуется под панелью.
type UpgradeState struct {
	sm    *StateMachine
	game  *GameState
	panel *ui.UpgradePanel
}

func NewUpgradeState(sm *StateMachine, game *GameState) *UpgradeState {
	choices := game.Game().Upgrades().GenerateChoices(config.UpgradeChoices)
	return &UpgradeState{
		sm:    sm,
		game:  game,
		panel: ui.NewUpgradePanel(choices),
	}
}

func (s *UpgradeState) Enter() {}

func (s *UpgradeState) Update(deltaTime float64) {
	choice, picked := s.panel.Pick()
	if !picked {
		return
	}
	g := s.game.Game()
	if err := g.Upgrades().Apply(choice); err != nil {
		// Состояние могло измениться с момента генерации вариантов;
		// уровень всё равно считается потраченным.
		s.game.log.Warnw("upgrade not applied", "id", choice.ID, "err", err)
	}
	g.Progress().PendingLevels--
	s.sm.SetState(s.game)
}

func (s *UpgradeState) Draw(screen *ebiten.Image) {
	s.game.Draw(screen)
	s.panel.Draw(screen)
}

func (s *UpgradeState) Exit() {}
