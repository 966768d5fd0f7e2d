// internal/component/projectile.go
package component

import (
	"image/color"

	"go-survivors/internal/defs"
	"go-survivors/internal/types"
	"go-survivors/pkg/vec"
)

// Projectile — снаряд игрока.
type Projectile struct {
	Pos    vec.V2
	Vel    vec.V2
	Radius float64
	Damage float64
	Life   float64 // Оставшееся время жизни в секундах
	Color  color.RGBA

	Weapon defs.WeaponClass

	// Hit — враги, уже поражённые этим снарядом. Пробивающий снаряд
	// не бьёт одну цель дважды.
	Hit map[types.EntityID]struct{}
}

// MarkHit запоминает поражённого врага.
func (p *Projectile) MarkHit(id types.EntityID) {
	if p.Hit == nil {
		p.Hit = make(map[types.EntityID]struct{})
	}
	p.Hit[id] = struct{}{}
}

// HasHit проверяет, был ли враг уже поражён.
func (p *Projectile) HasHit(id types.EntityID) bool {
	_, ok := p.Hit[id]
	return ok
}

// EnemyProjectile — вражеский снаряд (выстрел танка, осколок взрыва).
type EnemyProjectile struct {
	Pos    vec.V2
	Vel    vec.V2
	Radius float64
	Damage float64
	Life   float64
	Color  color.RGBA
}

// Beam — сегмент луча цепного лазера за текущий тик.
// Живёт один кадр логики, отрисовывается и отбрасывается.
type Beam struct {
	From  vec.V2
	To    vec.V2
	Color color.RGBA
	Life  float64 // Время затухания для отрисовки
}
