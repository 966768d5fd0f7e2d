// internal/defs/upgrades.go
package defs

// UpgradeKind — вид улучшения в каталоге.
type UpgradeKind int

const (
	UpgradeWeaponLevel UpgradeKind = iota
	UpgradeStat
	UpgradeNewWeapon
)

// StatKind — изменяемая характеристика игрока.
type StatKind string

const (
	StatSpeed       StatKind = "speed"
	StatPickupRange StatKind = "pickup_range"
	StatMaxHealth   StatKind = "max_health"
)

// UpgradeDefinition — один пункт каталога улучшений.
type UpgradeDefinition struct {
	ID          string
	Kind        UpgradeKind
	Name        string
	Description string

	// UpgradeStat
	Stat         StatKind
	Amount       float64
	IsPercentage bool

	// UpgradeNewWeapon
	Weapon WeaponClass
}

// UpgradeCatalog — фиксированный каталог. Применимость фильтруется
// системой улучшений по состоянию игрока.
var UpgradeCatalog = []UpgradeDefinition{
	{
		ID:          "weapon_level",
		Kind:        UpgradeWeaponLevel,
		Name:        "Level Up: Weapon",
		Description: "+damage for the lowest-level weapon",
	},
	{
		ID:          "stat_speed",
		Kind:        UpgradeStat,
		Name:        "Boost: Speed",
		Description: "+20 Speed",
		Stat:        StatSpeed,
		Amount:      20,
	},
	{
		ID:          "stat_pickup_range",
		Kind:        UpgradeStat,
		Name:        "Boost: Pickup Range",
		Description: "+20 Pickup Range",
		Stat:        StatPickupRange,
		Amount:      20,
	},
	{
		ID:          "stat_max_health",
		Kind:        UpgradeStat,
		Name:        "Boost: Max Health",
		Description: "+20 Max Health",
		Stat:        StatMaxHealth,
		Amount:      20,
	},
	{
		ID:          "new_spread",
		Kind:        UpgradeNewWeapon,
		Name:        "New Weapon: Spread",
		Description: "Cursor-aimed fan of projectiles",
		Weapon:      WeaponSpread,
	},
	{
		ID:          "new_laser",
		Kind:        UpgradeNewWeapon,
		Name:        "New Weapon: Laser",
		Description: "Instant bouncing beam",
		Weapon:      WeaponLaser,
	},
	{
		ID:          "new_chain_laser",
		Kind:        UpgradeNewWeapon,
		Name:        "New Weapon: Chain Laser",
		Description: "Continuous lock-on beam",
		Weapon:      WeaponChainLaser,
	},
	{
		ID:          "new_bomb_placer",
		Kind:        UpgradeNewWeapon,
		Name:        "New Weapon: Bomb Placer",
		Description: "Periodically arms a bomb",
		Weapon:      WeaponBombPlacer,
	},
}
