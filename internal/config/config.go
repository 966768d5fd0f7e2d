// internal/config/config.go
package config

import (
	"image/color"
	"math"
)

const (
	ScreenWidth  = 1280
	ScreenHeight = 720
	MaxDeltaTime = 0.06

	// Пространственная сетка
	GridCellSize = 100.0

	// Игрок
	PlayerSpeed       = 200.0
	PlayerMaxHealth   = 100.0
	PlayerHealthRegen = 0.5 // HP в секунду
	PlayerRadius      = 16.0
	PickupRange       = 50.0

	// Выносливость и рывок
	PlayerMaxStamina   = 100.0
	PlayerStaminaRegen = 5.0
	DashCost           = 30.0
	DashSpeed          = 800.0
	DashDuration       = 0.2
	DashCooldown       = 0.5

	// Окно неуязвимости после попадания снаряда. Контактный урон
	// игнорирует это окно, но не неуязвимость рывка.
	DamageImmunityDuration = 0.2

	// Бомбы
	StartingBombs       = 3
	MaxBombs            = 10
	BombPlacementCD     = 2.0
	BombExplosionRadius = 120.0
	BombExplosionDamage = 120.0
	BombPlayerDamage    = 40.0
	BombExplosionDelay  = 2.5
	BombRadius          = 8.0

	// Оружейные слоты
	MaxWeaponSlots     = 4
	WeaponBarrelLength = 22.0

	// Опыт и уровни
	BaseXPRequired = 10
	XPMultiplier   = 1.5
	MaxWeaponLevel = 8

	// Подбираемые предметы
	PickupMagnetSpeed = 200.0
	PickupChaseFactor = 2.0 // радиус притяжения = PickupRange * фактор

	// Спавн вокруг игрока
	MinSpawnDistance = 400.0
	MaxSpawnDistance = 600.0
	MaxEnemies       = 500

	// Темп волн живёт в defs.WaveTuning: он переопределяется файлом
	// баланса, а не компилируется намертво.

	// Непрерывная сложность (параллельно волнам)
	DifficultyInterval = 60.0
	EnemyHealthScale   = 1.01
	EnemySpeedScale    = 1.005
	MaxSpeedScale      = 1.5

	// Количество вариантов улучшений на выбор при новом уровне
	UpgradeChoices = 3
)

var (
	BackgroundColor = color.RGBA{20, 20, 30, 255}
	GridLineColor   = color.RGBA{40, 40, 55, 255}
	PlayerColor     = color.RGBA{80, 140, 255, 255}
	TextLightColor  = color.RGBA{240, 240, 240, 255}
	HealthBarColor  = color.RGBA{220, 60, 60, 255}
	HealthBackColor = color.RGBA{70, 20, 20, 255}
	StaminaBarColor = color.RGBA{80, 200, 120, 255}
	XPBarColor      = color.RGBA{100, 200, 255, 255}
	BarBackColor    = color.RGBA{35, 35, 50, 255}
	DashTrailColor  = color.RGBA{120, 180, 255, 160}
	TelegraphColor  = color.RGBA{255, 60, 60, 255}
	BombColor       = color.RGBA{50, 50, 50, 255}
	BombWarnColor   = color.RGBA{255, 0, 0, 255}
	ExplosionColor  = color.RGBA{255, 160, 40, 255}
	PanelColor      = color.RGBA{25, 25, 40, 230}
	OverlayColor    = color.RGBA{10, 10, 15, 170}
	PanelStroke     = color.RGBA{120, 120, 160, 255}
)

// CalculateXPForNextLevel возвращает порог опыта для перехода с уровня level
// на следующий: base * multiplier^(level-1) с отбрасыванием дробной части,
// то есть 10, 15, 22, 33...
func CalculateXPForNextLevel(level int) int {
	if level < 1 {
		level = 1
	}
	return int(BaseXPRequired * math.Pow(XPMultiplier, float64(level-1)))
}
