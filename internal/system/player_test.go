package system

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-survivors/internal/config"
	"go-survivors/internal/entity"
	"go-survivors/internal/utils"
	"go-survivors/pkg/vec"
)

func newPlayerSystem(w *entity.World) *PlayerSystem {
	rng := utils.NewPRNGService(1)
	bombs := NewBombSystem(w)
	return NewPlayerSystem(w, rng, bombs)
}

func TestDiagonalMovementNormalized(t *testing.T) {
	w := entity.NewWorld()
	s := newPlayerSystem(w)

	s.Update(1.0, InputFrame{Move: vec.New(1, 1)})
	// Скорость по диагонали та же, что по прямой.
	assert.InDelta(t, config.PlayerSpeed, w.Player.Vel.Len(), 1e-9)
}

func TestDashConsumesStaminaAndOverridesMovement(t *testing.T) {
	w := entity.NewWorld()
	s := newPlayerSystem(w)

	s.Update(0.016, InputFrame{Move: vec.New(1, 0), DashPressed: true})

	pl := w.Player
	assert.True(t, pl.Dash.Active)
	assert.InDelta(t, config.PlayerMaxStamina-config.DashCost, pl.Stamina, 0.01)
	assert.InDelta(t, config.DashSpeed, pl.Vel.Len(), 1e-9)
}

func TestDashRequiresStamina(t *testing.T) {
	w := entity.NewWorld()
	s := newPlayerSystem(w)
	w.Player.Stamina = config.DashCost - 1

	s.Update(0.016, InputFrame{Move: vec.New(1, 0), DashPressed: true})
	assert.False(t, w.Player.Dash.Active)
}

func TestDashEndsAndStartsCooldown(t *testing.T) {
	w := entity.NewWorld()
	s := newPlayerSystem(w)

	s.Update(0.016, InputFrame{Move: vec.New(1, 0), DashPressed: true})
	require.True(t, w.Player.Dash.Active)

	// Прогоняем время до конца рывка.
	for i := 0; i < 20; i++ {
		s.Update(0.016, InputFrame{Move: vec.New(1, 0)})
	}
	assert.False(t, w.Player.Dash.Active)

	// Сразу после окончания рывок недоступен из-за перезарядки.
	w.Player.Stamina = config.PlayerMaxStamina
	s.Update(0.016, InputFrame{Move: vec.New(1, 0), DashPressed: true})
	assert.False(t, w.Player.Dash.Active)
}

func TestDashDirectionFixedForWholeDash(t *testing.T) {
	w := entity.NewWorld()
	s := newPlayerSystem(w)

	s.Update(0.016, InputFrame{Move: vec.New(1, 0), DashPressed: true})
	dir := w.Player.Dash.Dir

	// Смена ввода посреди рывка не меняет направление.
	s.Update(0.016, InputFrame{Move: vec.New(0, 1)})
	assert.Equal(t, dir, w.Player.Dash.Dir)
	assert.InDelta(t, config.DashSpeed, w.Player.Vel.X, 1e-9)
}

func TestHealthAndStaminaRegenCapped(t *testing.T) {
	w := entity.NewWorld()
	s := newPlayerSystem(w)
	w.Player.Health = 50
	w.Player.Stamina = 99.9

	s.Update(1.0, InputFrame{})
	assert.InDelta(t, 50+config.PlayerHealthRegen, w.Player.Health, 1e-9)
	assert.Equal(t, config.PlayerMaxStamina, w.Player.Stamina)

	w.Player.Health = w.Player.MaxHealth - 0.1
	s.Update(1.0, InputFrame{})
	assert.Equal(t, w.Player.MaxHealth, w.Player.Health)
}

func TestSlowExpires(t *testing.T) {
	w := entity.NewWorld()
	s := newPlayerSystem(w)
	w.Player.SlowFactor = 0.5
	w.Player.SlowTimer = 0.1

	s.Update(1.0, InputFrame{Move: vec.New(1, 0)})
	assert.Equal(t, 1.0, w.Player.SlowFactor)
	assert.InDelta(t, config.PlayerSpeed, w.Player.Vel.Len(), 1e-9)
}

func TestSlowReducesSpeed(t *testing.T) {
	w := entity.NewWorld()
	s := newPlayerSystem(w)
	w.Player.SlowFactor = 0.5
	w.Player.SlowTimer = 5

	s.Update(0.016, InputFrame{Move: vec.New(1, 0)})
	assert.InDelta(t, config.PlayerSpeed*0.5, w.Player.Vel.Len(), 1e-9)
}

func TestBombPlacement(t *testing.T) {
	w := entity.NewWorld()
	s := newPlayerSystem(w)

	s.Update(0.016, InputFrame{BombPressed: true})
	assert.Equal(t, config.StartingBombs-1, w.Player.Bombs)
	assert.Len(t, w.Bombs, 1)

	// Перезарядка не даёт поставить вторую сразу.
	s.Update(0.016, InputFrame{BombPressed: true})
	assert.Equal(t, config.StartingBombs-1, w.Player.Bombs)
	assert.Len(t, w.Bombs, 1)
}

func TestBombPlacementNeedsInventory(t *testing.T) {
	w := entity.NewWorld()
	s := newPlayerSystem(w)
	w.Player.Bombs = 0

	s.Update(0.016, InputFrame{BombPressed: true})
	assert.Empty(t, w.Bombs)
}

func TestDeadPlayerDoesNotMove(t *testing.T) {
	w := entity.NewWorld()
	s := newPlayerSystem(w)
	w.Player.Health = 0
	start := w.Player.Pos

	s.Update(0.016, InputFrame{Move: vec.New(1, 0)})
	assert.Equal(t, start, w.Player.Pos)
}
