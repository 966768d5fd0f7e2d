// internal/entity/world.go
package entity

import (
	"go-survivors/internal/component"
	"go-survivors/internal/config"
	"go-survivors/internal/defs"
	"go-survivors/internal/types"
	"go-survivors/pkg/vec"
)

// World — хранилище всех сущностей симуляции. Игрок единственный и живёт
// в отдельном поле, остальные сущности лежат в картах по EntityID.
type World struct {
	GameTime float64
	NextID   types.EntityID

	Player   *component.Player
	Progress *component.Progress

	Enemies          map[types.EntityID]*component.Enemy
	Projectiles      map[types.EntityID]*component.Projectile
	EnemyProjectiles map[types.EntityID]*component.EnemyProjectile
	Bombs            map[types.EntityID]*component.Bomb
	Pickups          map[types.EntityID]*component.Pickup
	Particles        map[types.EntityID]*component.Particle
	Beams            map[types.EntityID]*component.Beam
}

// NewWorld создаёт мир с игроком в центре экрана.
func NewWorld() *World {
	return &World{
		NextID:           1,
		Player:           newPlayer(),
		Progress:         &component.Progress{Level: 1, XPRequired: config.CalculateXPForNextLevel(1)},
		Enemies:          make(map[types.EntityID]*component.Enemy),
		Projectiles:      make(map[types.EntityID]*component.Projectile),
		EnemyProjectiles: make(map[types.EntityID]*component.EnemyProjectile),
		Bombs:            make(map[types.EntityID]*component.Bomb),
		Pickups:          make(map[types.EntityID]*component.Pickup),
		Particles:        make(map[types.EntityID]*component.Particle),
		Beams:            make(map[types.EntityID]*component.Beam),
	}
}

func newPlayer() *component.Player {
	p := &component.Player{
		Pos:             vec.New(float64(config.ScreenWidth)/2, float64(config.ScreenHeight)/2),
		Radius:          config.PlayerRadius,
		Health:          config.PlayerMaxHealth,
		MaxHealth:       config.PlayerMaxHealth,
		Regen:           config.PlayerHealthRegen,
		Stamina:         config.PlayerMaxStamina,
		MaxStamina:      config.PlayerMaxStamina,
		StaminaRegen:    config.PlayerStaminaRegen,
		Speed:           config.PlayerSpeed,
		PickupRange:     config.PickupRange,
		AttackSpeedMult: 1.0,
		SlowFactor:      1.0,
		Bombs:           config.StartingBombs,
		MaxBombs:        config.MaxBombs,
	}
	p.Weapons = append(p.Weapons, component.WeaponSlot{
		Class: defs.WeaponBasic,
		Level: 1,
		Mount: MountOffsets()[0],
	})
	return p
}

// NewEntity выдаёт следующий свободный идентификатор.
func (w *World) NewEntity() types.EntityID {
	id := w.NextID
	w.NextID++
	return id
}

// MountOffsets — фиксированные смещения стволов для слотов 0..3.
func MountOffsets() []vec.V2 {
	return []vec.V2{
		vec.New(config.WeaponBarrelLength, 0),
		vec.New(0, config.WeaponBarrelLength),
		vec.New(-config.WeaponBarrelLength, 0),
		vec.New(0, -config.WeaponBarrelLength),
	}
}
