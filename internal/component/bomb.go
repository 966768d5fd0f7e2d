// internal/component/bomb.go
package component

import "go-survivors/pkg/vec"

// Bomb — установленная игроком бомба с таймером взрыва.
type Bomb struct {
	Pos    vec.V2
	Radius float64 // Радиус самой бомбы (для коллизий до взрыва)
	Fuse   float64 // Оставшееся время до взрыва

	ExplosionRadius float64
	Damage          float64 // Урон врагам
	SelfDamage      float64 // Урон игроку, если он в радиусе
}
