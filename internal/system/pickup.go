// internal/system/pickup.go
package system

import (
	"go-survivors/internal/config"
	"go-survivors/internal/entity"
)

// PickupSystem — магнитное притяжение предметов к игроку.
// Сбор предметов разрешает CombatSystem по результатам коллизий.
type PickupSystem struct {
	world *entity.World
}

func NewPickupSystem(world *entity.World) *PickupSystem {
	return &PickupSystem{world: world}
}

func (s *PickupSystem) Update(deltaTime float64) {
	pl := s.world.Player
	chaseRange := pl.PickupRange * config.PickupChaseFactor

	for _, p := range s.world.Pickups {
		toPlayer := pl.Pos.Sub(p.Pos)
		dist := toPlayer.Len()

		if !p.Magnet {
			if dist > chaseRange {
				continue
			}
			// Магнит включается один раз и больше не отпускает.
			p.Magnet = true
		}

		// Чем ближе предмет, тем быстрее он летит: от 1× на границе
		// зоны притяжения до 5× вплотную. Гарантирует захват.
		t := 1 - dist/chaseRange
		if t < 0 {
			t = 0
		}
		if t > 1 {
			t = 1
		}
		speed := config.PickupMagnetSpeed * (1 + 4*t)
		p.Pos = p.Pos.Add(toPlayer.Normalized().Scale(speed * deltaTime))
	}
}
