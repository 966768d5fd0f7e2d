// internal/system/enemy.go
package system

import (
	"math"

	"go.uber.org/zap"

	"go-survivors/internal/component"
	"go-survivors/internal/defs"
	"go-survivors/internal/entity"
	"go-survivors/internal/types"
	"go-survivors/internal/utils"
	"go-survivors/pkg/vec"
)

// EnemySystem — стейт-машины поведения врагов.
// Общая форма у всех вариантов: MOVE → TELEGRAPH → ACTION → MOVE,
// параметры и смысл действия свои у каждого класса.
type EnemySystem struct {
	world *entity.World
	rng   *utils.PRNGService
	log   *zap.SugaredLogger
}

func NewEnemySystem(world *entity.World, rng *utils.PRNGService, log *zap.SugaredLogger) *EnemySystem {
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	return &EnemySystem{world: world, rng: rng, log: log}
}

func (s *EnemySystem) Update(deltaTime float64) {
	for id, e := range s.world.Enemies {
		def, err := defs.Enemy(e.Class)
		if err != nil {
			s.log.Errorw("enemy with unknown class, removing", "id", id, "class", string(e.Class))
			delete(s.world.Enemies, id)
			continue
		}

		switch e.Phase {
		case component.PhaseMove:
			s.updateMove(e, &def, deltaTime)
		case component.PhaseTelegraph:
			s.updateTelegraph(e, &def, deltaTime)
		case component.PhaseAction:
			s.updateAction(id, e, &def, deltaTime)
		}

		e.Pos = e.Pos.Add(e.Vel.Scale(deltaTime))
	}
}

func (s *EnemySystem) updateMove(e *component.Enemy, def *defs.EnemyDefinition, dt float64) {
	pl := s.world.Player
	toPlayer := pl.Pos.Sub(e.Pos)

	switch e.Class {
	case defs.EnemyFast:
		s.moveOrbit(e, def, toPlayer)
	default:
		e.Vel = toPlayer.Normalized().Scale(e.Speed)
	}

	if e.ActionCD > 0 {
		e.ActionCD -= dt
		return
	}
	if pl.Health <= 0 {
		return
	}
	s.maybeTelegraph(e, def, toPlayer)
}

// moveOrbit — смесь перпендикулярной и радиальной скорости: враг кружит
// на целевой дистанции, радиальная составляющая подтягивает его к кольцу.
func (s *EnemySystem) moveOrbit(e *component.Enemy, def *defs.EnemyDefinition, toPlayer vec.V2) {
	dist := toPlayer.Len()
	radial := toPlayer.Normalized()
	tangent := radial.Perp().Scale(e.OrbitSign)

	err := dist - def.Behavior.OrbitDistance
	// Чем дальше от кольца, тем сильнее радиальная поправка.
	correction := math.Max(-1, math.Min(1, err/def.Behavior.OrbitDistance*4))
	blend := tangent.Add(radial.Scale(correction * def.Behavior.RadialSpeedMult)).Normalized()
	e.Vel = blend.Scale(e.Speed)
}

// maybeTelegraph решает, начинать ли телеграф. Цель действия
// фиксируется здесь один раз и не перенацеливается.
func (s *EnemySystem) maybeTelegraph(e *component.Enemy, def *defs.EnemyDefinition, toPlayer vec.V2) {
	b := &def.Behavior

	switch e.Class {
	case defs.EnemyFast:
		// Рывок только из орбитального кольца.
		if math.Abs(toPlayer.Len()-b.OrbitDistance) > b.OrbitThreshold {
			return
		}
	case defs.EnemyTank:
		if toPlayer.Len() > b.ShootRange {
			return
		}
	case defs.EnemyElite:
		if s.rng.Float64() >= b.DashChance {
			e.ActionCD = s.rng.Range(b.CooldownMin, b.CooldownMax)
			return
		}
	default:
		// Базовый враг не телеграфирует.
		return
	}

	e.Phase = component.PhaseTelegraph
	e.PhaseTimer = b.TelegraphDuration
	e.ActionDir = toPlayer.Normalized()
	e.DashHitDone = false
	e.Vel = vec.V2{}
}

func (s *EnemySystem) updateTelegraph(e *component.Enemy, def *defs.EnemyDefinition, dt float64) {
	e.PhaseTimer -= dt
	if e.PhaseTimer > 0 {
		return
	}

	switch e.Class {
	case defs.EnemyTank:
		// Выстрел мгновенный: снаряд и сразу обратно в движение.
		s.fireShot(e, def)
		s.resetToMove(e, def)
	default:
		e.Phase = component.PhaseAction
		e.PhaseTimer = def.Behavior.DashDuration
		e.Vel = e.ActionDir.Scale(e.Speed * def.Behavior.DashSpeedMult)
	}
}

func (s *EnemySystem) updateAction(id types.EntityID, e *component.Enemy, def *defs.EnemyDefinition, dt float64) {
	e.PhaseTimer -= dt
	if e.PhaseTimer > 0 {
		return
	}

	if e.Class == defs.EnemyFast && s.rng.Float64() < def.Behavior.ExplosionChance {
		s.explodeRadial(id, e, def)
		return
	}
	if e.Class == defs.EnemyFast {
		// После рывка кружим в другую сторону.
		e.OrbitSign = -e.OrbitSign
	}
	s.resetToMove(e, def)
}

func (s *EnemySystem) resetToMove(e *component.Enemy, def *defs.EnemyDefinition) {
	e.Phase = component.PhaseMove
	e.ActionCD = s.rng.Range(def.Behavior.CooldownMin, def.Behavior.CooldownMax)
	e.Vel = vec.V2{}
}

// fireShot — выстрел танка по захваченному при телеграфе направлению.
func (s *EnemySystem) fireShot(e *component.Enemy, def *defs.EnemyDefinition) {
	if e.ActionDir.LenSq() == 0 {
		return
	}
	b := &def.Behavior
	id := s.world.NewEntity()
	s.world.EnemyProjectiles[id] = &component.EnemyProjectile{
		Pos:    e.Pos.Add(e.ActionDir.Scale(e.Radius)),
		Vel:    e.ActionDir.Scale(b.ShotSpeed),
		Radius: 6,
		Damage: b.ShotDamage,
		Life:   b.ShotLifetime,
		Color:  def.Color,
	}
}

// explodeRadial — самоподрыв быстрого врага: веер осколков, ровно
// распределённых по кругу, и удаление без добычи.
func (s *EnemySystem) explodeRadial(id types.EntityID, e *component.Enemy, def *defs.EnemyDefinition) {
	b := &def.Behavior
	for i := 0; i < b.ExplosionShards; i++ {
		angle := 2 * math.Pi * float64(i) / float64(b.ExplosionShards)
		dir := vec.FromAngle(angle)
		sid := s.world.NewEntity()
		s.world.EnemyProjectiles[sid] = &component.EnemyProjectile{
			Pos:    e.Pos.Add(dir.Scale(e.Radius)),
			Vel:    dir.Scale(b.ShardSpeed),
			Radius: 4,
			Damage: b.ShardDamage,
			Life:   b.ShardLifetime,
			Color:  def.Color,
		}
	}
	spawnBurst(s.world, s.rng, e.Pos, def.Color, 12)
	delete(s.world.Enemies, id)
}
