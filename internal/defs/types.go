// internal/defs/types.go
package defs

import "image/color"

// EnemyClass — закрытый набор вариантов поведения врагов.
type EnemyClass string

const (
	EnemyBasic EnemyClass = "ENEMY_BASIC"
	EnemyFast  EnemyClass = "ENEMY_FAST"
	EnemyTank  EnemyClass = "ENEMY_TANK"
	EnemyElite EnemyClass = "ENEMY_ELITE"
)

// WeaponClass — закрытый набор вариантов оружия.
type WeaponClass string

const (
	WeaponBasic      WeaponClass = "WEAPON_BASIC"
	WeaponSpread     WeaponClass = "WEAPON_SPREAD"
	WeaponLaser      WeaponClass = "WEAPON_LASER"
	WeaponChainLaser WeaponClass = "WEAPON_CHAIN_LASER"
	WeaponBombPlacer WeaponClass = "WEAPON_BOMB_PLACER"
)

// AimMode определяет, куда целится оружие.
type AimMode int

const (
	AimAuto   AimMode = iota // ближайший враг в радиусе от точки крепления
	AimCursor                // мировая позиция курсора
)

// PickupKind — вид подбираемого предмета.
type PickupKind string

const (
	PickupXP     PickupKind = "PICKUP_XP"
	PickupHealth PickupKind = "PICKUP_HEALTH"
	PickupBomb   PickupKind = "PICKUP_BOMB"
)

// BehaviorParams — параметры машины состояний варианта врага.
// Поля, не относящиеся к варианту, остаются нулевыми.
type BehaviorParams struct {
	// Телеграф перед действием
	TelegraphDuration     float64
	TelegraphBlinkRate    float64 // миганий в секунду
	TelegraphInvulnerable bool

	// Кулдаун действия, рандомизируется в диапазоне [Min, Max]
	CooldownMin float64
	CooldownMax float64

	// Рывок
	DashDuration  float64
	DashSpeedMult float64
	DashChance    float64 // elite: вероятность рывка при готовом кулдауне
	DashHitSlow   float64 // elite: множитель замедления при попадании рывком
	DashSlowTime  float64

	// Орбита (fast)
	OrbitDistance   float64
	OrbitThreshold  float64
	RadialSpeedMult float64

	// Радиальный взрыв после рывка (fast)
	ExplosionChance float64
	ExplosionShards int
	ShardSpeed      float64
	ShardDamage     float64
	ShardLifetime   float64

	// Стрельба (tank)
	ShootRange   float64
	ShotSpeed    float64
	ShotDamage   float64
	ShotLifetime float64
}

// EnemyDefinition описывает один вариант врага.
type EnemyDefinition struct {
	ID            EnemyClass
	Health        float64
	Speed         float64
	ContactDPS    float64 // контактный урон в секунду, масштабируется dt
	DashHitDamage float64 // разовый урон рывка, применяется один раз за рывок
	XPValue       int
	Radius        float64
	Color         color.RGBA
	Behavior      BehaviorParams
}

// WeaponDefinition описывает один вариант оружия на первом уровне.
type WeaponDefinition struct {
	ID                 WeaponClass
	Name               string
	Cooldown           float64
	Damage             float64
	ProjectileSpeed    float64
	Range              float64
	Aim                AimMode
	ProjectileRadius   float64
	ProjectileLifetime float64
	Pierces            bool
	Color              color.RGBA

	// spread
	SpreadCount    int
	SpreadAngleDeg float64

	// laser (мгновенный луч с отскоками)
	BaseBounces int
	BounceRange float64

	// chain laser (непрерывный луч)
	ChainRange          float64
	ChainEnabledAtLevel int
}

// DropEntry — одна строка таблицы выпадения.
type DropEntry struct {
	Weight int
	Kind   PickupKind
	Amount int // опыт, лечение или число бомб в зависимости от Kind
}

// CompositionEntry — доля одного класса врагов в составе волны.
// Слайс вместо карты, чтобы взвешенный выбор был детерминированным.
type CompositionEntry struct {
	Class  EnemyClass
	Weight float64
}
