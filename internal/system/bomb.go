// internal/system/bomb.go
package system

import (
	"go-survivors/internal/component"
	"go-survivors/internal/config"
	"go-survivors/internal/entity"
	"go-survivors/pkg/vec"
)

// BombSystem — установленные бомбы: фитиль тикает, взрыв разрешает
// CombatSystem по результатам коллизий.
type BombSystem struct {
	world *entity.World
}

func NewBombSystem(world *entity.World) *BombSystem {
	return &BombSystem{world: world}
}

// Place ставит бомбу со стандартными параметрами в указанной точке.
func (s *BombSystem) Place(pos vec.V2) {
	id := s.world.NewEntity()
	s.world.Bombs[id] = &component.Bomb{
		Pos:             pos,
		Radius:          config.BombRadius,
		Fuse:            config.BombExplosionDelay,
		ExplosionRadius: config.BombExplosionRadius,
		Damage:          config.BombExplosionDamage,
		SelfDamage:      config.BombPlayerDamage,
	}
}

func (s *BombSystem) Update(deltaTime float64) {
	for _, b := range s.world.Bombs {
		b.Fuse -= deltaTime
	}
	// Бомбы с истёкшим фитилём удаляет CombatSystem после взрыва.
}
