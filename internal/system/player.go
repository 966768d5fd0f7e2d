// internal/system/player.go
package system

import (
	"go-survivors/internal/config"
	"go-survivors/internal/entity"
	"go-survivors/internal/utils"
)

// PlayerSystem — движение, рывок, выносливость, реген и таймеры игрока.
type PlayerSystem struct {
	world      *entity.World
	rng        *utils.PRNGService
	bombSystem *BombSystem
}

func NewPlayerSystem(world *entity.World, rng *utils.PRNGService, bombSystem *BombSystem) *PlayerSystem {
	return &PlayerSystem{
		world:      world,
		rng:        rng,
		bombSystem: bombSystem,
	}
}

func (s *PlayerSystem) Update(deltaTime float64, in InputFrame) {
	pl := s.world.Player
	if pl.Health <= 0 {
		return
	}

	// Взгляд всегда следует за курсором.
	pl.Facing = in.Cursor.Sub(pl.Pos).Angle()

	s.updateTimers(deltaTime)

	if in.DashPressed {
		s.tryDash(in)
	}

	if pl.Dash.Active {
		// Рывок полностью заменяет обычное движение.
		pl.Vel = pl.Dash.Dir.Scale(config.DashSpeed)
	} else {
		dir := in.Move.Normalized()
		pl.Vel = dir.Scale(pl.EffectiveSpeed())
	}
	pl.Pos = pl.Pos.Add(pl.Vel.Scale(deltaTime))

	if in.BombPressed {
		s.tryPlaceBomb()
	}
}

func (s *PlayerSystem) updateTimers(dt float64) {
	pl := s.world.Player

	if pl.Dash.Active {
		pl.Dash.Timer -= dt
		if pl.Dash.Timer <= 0 {
			pl.Dash.Active = false
			pl.Dash.Cooldown = config.DashCooldown
		}
	} else if pl.Dash.Cooldown > 0 {
		pl.Dash.Cooldown -= dt
	}

	if pl.ImmunityTimer > 0 {
		pl.ImmunityTimer -= dt
	}
	if pl.SlowTimer > 0 {
		pl.SlowTimer -= dt
		if pl.SlowTimer <= 0 {
			pl.SlowFactor = 1.0
		}
	}
	if pl.BombCD > 0 {
		pl.BombCD -= dt
	}

	pl.Stamina += pl.StaminaRegen * dt
	if pl.Stamina > pl.MaxStamina {
		pl.Stamina = pl.MaxStamina
	}
	pl.Health += pl.Regen * dt
	if pl.Health > pl.MaxHealth {
		pl.Health = pl.MaxHealth
	}
}

// tryDash запускает рывок, если хватает выносливости и нет перезарядки.
// Направление фиксируется на весь рывок: текущий ввод, иначе взгляд.
func (s *PlayerSystem) tryDash(in InputFrame) {
	pl := s.world.Player
	if pl.Dash.Active || pl.Dash.Cooldown > 0 || pl.Stamina < config.DashCost {
		return
	}

	dir := in.Move.Normalized()
	if dir.LenSq() == 0 {
		dir = in.Cursor.Sub(pl.Pos).Normalized()
	}
	if dir.LenSq() == 0 {
		return
	}

	pl.Stamina -= config.DashCost
	pl.Dash.Active = true
	pl.Dash.Timer = config.DashDuration
	pl.Dash.Dir = dir
}

func (s *PlayerSystem) tryPlaceBomb() {
	pl := s.world.Player
	if pl.Bombs <= 0 || pl.BombCD > 0 {
		return
	}
	pl.Bombs--
	pl.BombCD = config.BombPlacementCD

	// Небольшое случайное смещение, чтобы бомбы не складывались в точку.
	offset := utils.RandomOffset(s.rng, 12)
	s.bombSystem.Place(pl.Pos.Add(offset))
}
