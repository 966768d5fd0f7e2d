// internal/defs/enemies.go
package defs

import (
	"fmt"
	"image/color"
)

// EnemyLibrary — все определения врагов по классу.
var EnemyLibrary = map[EnemyClass]EnemyDefinition{
	EnemyBasic: {
		ID:         EnemyBasic,
		Health:     50,
		Speed:      80,
		ContactDPS: 10,
		XPValue:    5,
		Radius:     12,
		Color:      color.RGBA{220, 60, 60, 255},
	},
	EnemyFast: {
		ID:         EnemyFast,
		Health:     30,
		Speed:      150,
		ContactDPS: 8,
		// Рывок наносит разовый урон вместо контактного DPS
		DashHitDamage: 8,
		XPValue:       8,
		Radius:        10,
		Color:         color.RGBA{255, 200, 100, 255},
		Behavior: BehaviorParams{
			TelegraphDuration:  0.4,
			TelegraphBlinkRate: 10,
			CooldownMin:        2.0,
			CooldownMax:        4.0,
			DashDuration:       0.35,
			DashSpeedMult:      4.0,
			OrbitDistance:      180,
			OrbitThreshold:     30,
			RadialSpeedMult:    0.8,
			ExplosionChance:    0.3,
			ExplosionShards:    8,
			ShardSpeed:         500,
			ShardDamage:        20,
			ShardLifetime:      3.0,
		},
	},
	EnemyTank: {
		ID:         EnemyTank,
		Health:     150,
		Speed:      50,
		ContactDPS: 20,
		XPValue:    15,
		Radius:     16,
		Color:      color.RGBA{140, 140, 150, 255},
		Behavior: BehaviorParams{
			TelegraphDuration:  0.3,
			TelegraphBlinkRate: 8,
			CooldownMin:        2.0,
			CooldownMax:        3.5,
			ShootRange:         400,
			ShotSpeed:          800,
			ShotDamage:         25,
			ShotLifetime:       6.0,
		},
	},
	EnemyElite: {
		ID:            EnemyElite,
		Health:        100,
		Speed:         100,
		ContactDPS:    15,
		DashHitDamage: 15,
		XPValue:       20,
		Radius:        14,
		Color:         color.RGBA{180, 50, 230, 255},
		Behavior: BehaviorParams{
			TelegraphDuration:     0.5,
			TelegraphBlinkRate:    8,
			TelegraphInvulnerable: true,
			CooldownMin:           3.0,
			CooldownMax:           5.0,
			DashDuration:          0.8,
			DashSpeedMult:         5.0,
			DashChance:            0.9,
			DashHitSlow:           0.5,
			DashSlowTime:          2.0,
		},
	},
}

// Enemy возвращает определение врага или ошибку, если класс неизвестен.
// Неизвестный класс — это баг контента, поэтому ошибка описательная.
func Enemy(class EnemyClass) (EnemyDefinition, error) {
	def, ok := EnemyLibrary[class]
	if !ok {
		return EnemyDefinition{}, fmt.Errorf("defs: unknown enemy class %q", class)
	}
	return def, nil
}
