// internal/component/player.go
package component

import (
	"go-survivors/internal/defs"
	"go-survivors/internal/types"
	"go-survivors/pkg/vec"
)

// Player хранит всё состояние игрока: движение, здоровье, выносливость,
// рывок, бомбы и слоты оружия.
type Player struct {
	Pos    vec.V2
	Vel    vec.V2
	Radius float64
	Facing float64 // Угол взгляда в радианах (к курсору)

	Health    float64
	MaxHealth float64
	Regen     float64 // Здоровье в секунду

	Stamina      float64
	MaxStamina   float64
	StaminaRegen float64

	Speed           float64 // Базовая скорость без модификаторов
	PickupRange     float64
	AttackSpeedMult float64 // Множитель скорости перезарядки оружия

	Dash Dash

	// Slow — дебафф замедления от удара элитного врага.
	SlowTimer  float64
	SlowFactor float64 // Множитель скорости, 1.0 когда дебаффа нет

	// Иммунитет к урону от вражеских снарядов после попадания.
	ImmunityTimer float64

	Bombs    int
	MaxBombs int
	BombCD   float64 // Оставшееся время до следующей установки

	Weapons []WeaponSlot
}

// Dash — состояние рывка игрока.
type Dash struct {
	Active   bool
	Timer    float64 // Оставшееся время рывка
	Cooldown float64 // Оставшееся время перезарядки
	Dir      vec.V2  // Направление рывка, нормализованное
}

// WeaponSlot — одно установленное оружие игрока.
type WeaponSlot struct {
	Class    defs.WeaponClass
	Level    int
	Cooldown float64 // Оставшееся время до следующего выстрела
	Mount    vec.V2  // Смещение ствола от центра игрока (до поворота)

	// Target — захваченная цель непрерывного луча (0 — нет захвата).
	Target types.EntityID
}

// EffectiveSpeed возвращает скорость с учётом замедления.
func (p *Player) EffectiveSpeed() float64 {
	if p.SlowTimer > 0 {
		return p.Speed * p.SlowFactor
	}
	return p.Speed
}

// IsImmune сообщает, действует ли сейчас иммунитет к снарядам.
// Во время рывка игрок тоже неуязвим для снарядов.
func (p *Player) IsImmune() bool {
	return p.ImmunityTimer > 0 || p.Dash.Active
}

// HasWeapon проверяет, установлено ли оружие данного класса.
func (p *Player) HasWeapon(class defs.WeaponClass) bool {
	for i := range p.Weapons {
		if p.Weapons[i].Class == class {
			return true
		}
	}
	return false
}
