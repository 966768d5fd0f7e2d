// internal/event/types.go
package event

import (
	"go-survivors/internal/defs"
	"go-survivors/internal/types"
	"go-survivors/pkg/vec"
)

// Типы событий симуляции.
const (
	EnemySpawned        EventType = "ENEMY_SPAWNED"
	EnemyKilled         EventType = "ENEMY_KILLED"
	ProjectileHit       EventType = "PROJECTILE_HIT"
	BombExploded        EventType = "BOMB_EXPLODED"
	PlayerDamaged       EventType = "PLAYER_DAMAGED"
	PlayerDied          EventType = "PLAYER_DIED"
	XPGained            EventType = "XP_GAINED"
	LevelUp             EventType = "LEVEL_UP"
	WaveStarted         EventType = "WAVE_STARTED"
	WaveCompleted       EventType = "WAVE_COMPLETED"
	PickupCollected     EventType = "PICKUP_COLLECTED"
	DifficultyIncreased EventType = "DIFFICULTY_INCREASED"
)

// EnemySpawnedData — враг появился на арене.
type EnemySpawnedData struct {
	ID    types.EntityID
	Class defs.EnemyClass
	Pos   vec.V2
}

// EnemyKilledData — враг убит. Отправляется ровно один раз на врага.
type EnemyKilledData struct {
	ID      types.EntityID
	Class   defs.EnemyClass
	Pos     vec.V2
	XPValue int
}

// ProjectileHitData — снаряд игрока попал во врага.
type ProjectileHitData struct {
	ProjectileID types.EntityID
	EnemyID      types.EntityID
	Damage       float64
	Pos          vec.V2
}

// BombExplodedData — бомба взорвалась.
type BombExplodedData struct {
	ID        types.EntityID
	Pos       vec.V2
	Radius    float64
	HitPlayer bool
}

// PlayerDamagedData — игрок получил урон.
type PlayerDamagedData struct {
	Amount    float64
	Source    string // "contact", "dash", "projectile", "bomb"
	Remaining float64
}

// PlayerDiedData — игрок погиб.
type PlayerDiedData struct {
	GameTime float64
}

// XPGainedData — игрок подобрал опыт.
type XPGainedData struct {
	Amount int
	Total  int
}

// LevelUpData — отправляется на каждый достигнутый уровень отдельно.
type LevelUpData struct {
	Level int
}

// WaveStartedData — началась активная фаза волны.
type WaveStartedData struct {
	Wave      int
	Quota     int
	SpawnRate float64
}

// WaveCompletedData — волна зачищена: квота исчерпана и врагов не осталось.
type WaveCompletedData struct {
	Wave int
}

// PickupCollectedData — подобран предмет.
type PickupCollectedData struct {
	ID     types.EntityID
	Kind   defs.PickupKind
	Amount int
	Pos    vec.V2
}

// DifficultyIncreasedData — сработал таймер сложности.
type DifficultyIncreasedData struct {
	Step        int
	HealthScale float64
	SpeedScale  float64
}
