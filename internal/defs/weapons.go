// internal/defs/weapons.go
package defs

import (
	"fmt"
	"image/color"
)

// WeaponLibrary — все определения оружия по классу (статы первого уровня).
var WeaponLibrary = map[WeaponClass]WeaponDefinition{
	WeaponBasic: {
		ID:                 WeaponBasic,
		Name:               "Basic Weapon",
		Cooldown:           1.0,
		Damage:             25,
		ProjectileSpeed:    300,
		Range:              300,
		Aim:                AimAuto,
		ProjectileRadius:   4,
		ProjectileLifetime: 2.0,
		Color:              color.RGBA{255, 240, 120, 255},
	},
	WeaponSpread: {
		ID:                 WeaponSpread,
		Name:               "Spread Weapon",
		Cooldown:           2.0,
		Damage:             10,
		ProjectileSpeed:    600,
		Range:              1200, // lifetime * speed, только для таргетинга
		Aim:                AimCursor,
		ProjectileRadius:   3,
		ProjectileLifetime: 2.0,
		Color:              color.RGBA{255, 215, 0, 255},
		SpreadCount:        3,
		SpreadAngleDeg:     30,
	},
	WeaponLaser: {
		ID:          WeaponLaser,
		Name:        "Laser Weapon",
		Cooldown:    1.5,
		Damage:      40,
		Range:       350,
		Aim:         AimAuto,
		Color:       color.RGBA{0, 255, 255, 255},
		BaseBounces: 2,
		BounceRange: 200,
	},
	WeaponChainLaser: {
		ID:                  WeaponChainLaser,
		Name:                "Chain Laser",
		Cooldown:            0.1, // частота перезахвата цели
		Damage:              50,  // урон в секунду
		Range:               300,
		Aim:                 AimAuto,
		Color:               color.RGBA{100, 200, 255, 255},
		ChainRange:          150,
		ChainEnabledAtLevel: 2,
	},
	WeaponBombPlacer: {
		ID:       WeaponBombPlacer,
		Name:     "Bomb Placer",
		Cooldown: 6.0,
		Damage:   120,
		Aim:      AimAuto,
		Color:    color.RGBA{90, 90, 90, 255},
	},
}

// WeaponLevelDamageMult — множитель урона по уровню оружия (1..8).
// Разреженность допустима: отсутствующий уровень берёт ближайший
// определённый ниже.
var WeaponLevelDamageMult = map[int]float64{
	1: 1.0,
	2: 1.1,
	3: 1.25,
	4: 1.4,
	5: 1.6,
	6: 1.85,
	7: 2.1,
	8: 2.5,
}

// ChainCountByLevel — сколько целей может охватить цепной лазер на уровне.
var ChainCountByLevel = map[int]int{
	1: 1,
	2: 2,
	4: 3,
	6: 4,
	8: 5,
}

// Weapon возвращает определение оружия или ошибку для неизвестного класса.
func Weapon(class WeaponClass) (WeaponDefinition, error) {
	def, ok := WeaponLibrary[class]
	if !ok {
		return WeaponDefinition{}, fmt.Errorf("defs: unknown weapon class %q", class)
	}
	return def, nil
}

// DamageMultForLevel возвращает множитель урона для уровня оружия,
// откатываясь к ближайшему определённому уровню ниже.
func DamageMultForLevel(level int) float64 {
	if m, ok := WeaponLevelDamageMult[level]; ok {
		return m
	}
	best := 1.0
	bestLevel := 0
	for lvl, m := range WeaponLevelDamageMult {
		if lvl <= level && lvl > bestLevel {
			bestLevel = lvl
			best = m
		}
	}
	return best
}

// ChainCountForLevel аналогично возвращает число целей цепного лазера.
func ChainCountForLevel(level int) int {
	if n, ok := ChainCountByLevel[level]; ok {
		return n
	}
	best := 1
	bestLevel := 0
	for lvl, n := range ChainCountByLevel {
		if lvl <= level && lvl > bestLevel {
			bestLevel = lvl
			best = n
		}
	}
	return best
}
