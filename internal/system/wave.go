// internal/system/wave.go
package system

import (
	"math"

	"go.uber.org/zap"

	"go-survivors/internal/component"
	"go-survivors/internal/config"
	"go-survivors/internal/defs"
	"go-survivors/internal/entity"
	"go-survivors/internal/event"
	"go-survivors/internal/utils"
	"go-survivors/pkg/vec"
)

// WavePhase — фаза планировщика волн.
type WavePhase uint8

const (
	WaveRest   WavePhase = iota // Передышка между волнами
	WaveActive                  // Спавн идёт или враги ещё живы
)

// WaveSystem — планировщик волн и непрерывная шкала сложности.
// Волны авторитетны для темпа спавна; таймер сложности масштабирует
// только характеристики врагов.
type WaveSystem struct {
	world           *entity.World
	eventDispatcher *event.Dispatcher
	rng             *utils.PRNGService
	log             *zap.SugaredLogger

	phase      WavePhase
	wave       int     // Номер текущей (или последней начатой) волны
	restTimer  float64 // Оставшаяся передышка
	quota      int     // Сколько врагов осталось заспавнить
	spawnRate  float64 // Врагов в секунду
	spawnTimer float64

	difficultyTimer float64
	difficultyStep  int
	healthScale     float64
	speedScale      float64
}

func NewWaveSystem(world *entity.World, eventDispatcher *event.Dispatcher, rng *utils.PRNGService, log *zap.SugaredLogger) *WaveSystem {
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	return &WaveSystem{
		world:           world,
		eventDispatcher: eventDispatcher,
		rng:             rng,
		log:             log,
		phase:           WaveRest,
		restTimer:       defs.WaveTuning.FirstWaveDelay,
		healthScale:     1.0,
		speedScale:      1.0,
	}
}

// Wave возвращает номер текущей волны (0 до первой волны).
func (s *WaveSystem) Wave() int { return s.wave }

// Phase возвращает текущую фазу планировщика.
func (s *WaveSystem) Phase() WavePhase { return s.phase }

// RestRemaining — сколько осталось передышки (0 в активной фазе).
func (s *WaveSystem) RestRemaining() float64 {
	if s.phase != WaveRest {
		return 0
	}
	return s.restTimer
}

// QuotaRemaining — сколько врагов ещё будет заспавнено в этой волне.
func (s *WaveSystem) QuotaRemaining() int { return s.quota }

func (s *WaveSystem) Update(deltaTime float64) {
	s.updateDifficulty(deltaTime)

	switch s.phase {
	case WaveRest:
		s.restTimer -= deltaTime
		if s.restTimer <= 0 {
			s.startWave()
		}
	case WaveActive:
		s.updateActive(deltaTime)
	}
}

// startWave считает квоту и темп по формулам и открывает активную фазу.
func (s *WaveSystem) startWave() {
	s.wave++
	t := defs.WaveTuning

	s.quota = t.BaseEnemies + (s.wave-1)*t.EnemiesPerWave
	if s.quota > t.MaxEnemies {
		s.quota = t.MaxEnemies
	}
	s.spawnRate = t.BaseSpawnRate + float64(s.wave-1)*t.SpawnRateInc
	if s.spawnRate > t.MaxSpawnRate {
		s.spawnRate = t.MaxSpawnRate
	}
	s.spawnTimer = 0
	s.phase = WaveActive

	s.log.Infow("wave started", "wave", s.wave, "quota", s.quota, "rate", s.spawnRate)
	s.eventDispatcher.Dispatch(event.Event{
		Type: event.WaveStarted,
		Data: event.WaveStartedData{Wave: s.wave, Quota: s.quota, SpawnRate: s.spawnRate},
	})
}

func (s *WaveSystem) updateActive(dt float64) {
	if s.quota > 0 {
		s.spawnTimer -= dt
		for s.spawnTimer <= 0 && s.quota > 0 {
			s.spawnTimer += 1.0 / s.spawnRate
			if len(s.world.Enemies) >= config.MaxEnemies {
				// Арена переполнена: квота не сгорает, спавн ждёт.
				s.spawnTimer = 1.0 / s.spawnRate
				break
			}
			s.spawnOne()
			s.quota--
		}
	}

	// Волна закрыта, когда квота исчерпана И врагов не осталось.
	if s.quota == 0 && len(s.world.Enemies) == 0 {
		s.eventDispatcher.Dispatch(event.Event{
			Type: event.WaveCompleted,
			Data: event.WaveCompletedData{Wave: s.wave},
		})
		s.phase = WaveRest
		s.restTimer = defs.WaveTuning.RestDuration
	}
}

// spawnOne выбирает класс по составу волны и ставит врага на кольцо
// вокруг игрока.
func (s *WaveSystem) spawnOne() {
	comp := defs.CompositionForWave(s.wave)
	weights := make([]float64, len(comp))
	for i, c := range comp {
		weights[i] = c.Weight
	}
	idx := s.rng.ChooseWeightedFloat(weights)
	if idx < 0 {
		return
	}
	class := comp[idx].Class

	pos := utils.RandomOnRing(s.rng, s.world.Player.Pos, config.MinSpawnDistance, config.MaxSpawnDistance)
	s.SpawnEnemy(class, pos)
}

// SpawnEnemy создаёт врага класса в точке с учётом шкалы сложности.
func (s *WaveSystem) SpawnEnemy(class defs.EnemyClass, pos vec.V2) {
	def, err := defs.Enemy(class)
	if err != nil {
		s.log.Errorw("spawn of unknown enemy class skipped", "class", string(class))
		return
	}

	orbitSign := 1.0
	if s.rng.Float64() < 0.5 {
		orbitSign = -1.0
	}

	id := s.world.NewEntity()
	s.world.Enemies[id] = &component.Enemy{
		Class:     class,
		Pos:       pos,
		Radius:    def.Radius,
		Health:    def.Health * s.healthScale,
		MaxHealth: def.Health * s.healthScale,
		Speed:     def.Speed * s.speedScale,
		XPValue:   def.XPValue,
		Phase:     component.PhaseMove,
		ActionCD:  s.rng.Range(def.Behavior.CooldownMin, def.Behavior.CooldownMax),
		OrbitSign: orbitSign,
	}
	s.eventDispatcher.Dispatch(event.Event{
		Type: event.EnemySpawned,
		Data: event.EnemySpawnedData{ID: id, Class: class, Pos: pos},
	})
}

// updateDifficulty — независимый от волн таймер: каждый интервал
// приподнимает множители здоровья и скорости. Скорость ограничена
// сверху, здоровье растёт без предела.
func (s *WaveSystem) updateDifficulty(dt float64) {
	s.difficultyTimer += dt
	for s.difficultyTimer >= config.DifficultyInterval {
		s.difficultyTimer -= config.DifficultyInterval
		s.difficultyStep++
		s.healthScale *= config.EnemyHealthScale
		s.speedScale = math.Min(s.speedScale*config.EnemySpeedScale, config.MaxSpeedScale)

		s.eventDispatcher.Dispatch(event.Event{
			Type: event.DifficultyIncreased,
			Data: event.DifficultyIncreasedData{
				Step:        s.difficultyStep,
				HealthScale: s.healthScale,
				SpeedScale:  s.speedScale,
			},
		})
	}
}
