// internal/system/projectile.go
package system

import (
	"go-survivors/internal/entity"
)

// ProjectileSystem интегрирует снаряды обеих сторон и время жизни лучей.
// Попадания разрешает CombatSystem по результатам коллизий.
type ProjectileSystem struct {
	world *entity.World
}

func NewProjectileSystem(world *entity.World) *ProjectileSystem {
	return &ProjectileSystem{world: world}
}

func (s *ProjectileSystem) Update(deltaTime float64) {
	for id, p := range s.world.Projectiles {
		p.Pos = p.Pos.Add(p.Vel.Scale(deltaTime))
		p.Life -= deltaTime
		if p.Life <= 0 {
			delete(s.world.Projectiles, id)
		}
	}
	for id, p := range s.world.EnemyProjectiles {
		p.Pos = p.Pos.Add(p.Vel.Scale(deltaTime))
		p.Life -= deltaTime
		if p.Life <= 0 {
			delete(s.world.EnemyProjectiles, id)
		}
	}
	for id, b := range s.world.Beams {
		b.Life -= deltaTime
		if b.Life <= 0 {
			delete(s.world.Beams, id)
		}
	}
}
