// internal/component/enemy.go
package component

import (
	"go-survivors/internal/defs"
	"go-survivors/pkg/vec"
)

// Phase — фаза поведения врага. У каждого врага ровно одна фаза,
// переходы задаёт его стейт-машина.
type Phase uint8

const (
	PhaseMove      Phase = iota // Обычное движение (преследование, орбита)
	PhaseTelegraph              // Мигание перед действием
	PhaseAction                 // Рывок или выстрел
)

// Enemy представляет вражескую сущность.
type Enemy struct {
	Class  defs.EnemyClass
	Pos    vec.V2
	Vel    vec.V2
	Radius float64

	Health    float64
	MaxHealth float64
	Speed     float64 // Скорость с учётом масштаба сложности
	XPValue   int

	Phase      Phase
	PhaseTimer float64 // Оставшееся время текущей фазы

	// Кулдаун до следующего телеграфа (fast dash, tank shot, elite dash).
	ActionCD float64

	// Направление зафиксированного действия: рывок или выстрел.
	ActionDir vec.V2

	// Орбитальное направление для ENEMY_FAST: +1 или -1.
	OrbitSign float64

	// DashHitDone не даёт рывку ударить игрока дважды за одно действие.
	DashHitDone bool
}

// IsInvulnerable — элитный враг неуязвим во время телеграфа.
func (e *Enemy) IsInvulnerable(def *defs.EnemyDefinition) bool {
	return e.Phase == PhaseTelegraph && def.Behavior.TelegraphInvulnerable
}
