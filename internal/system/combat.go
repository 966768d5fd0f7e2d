// internal/system/combat.go
package system

import (
	"go.uber.org/zap"

	"go-survivors/internal/component"
	"go-survivors/internal/config"
	"go-survivors/internal/defs"
	"go-survivors/internal/entity"
	"go-survivors/internal/event"
	"go-survivors/internal/types"
	"go-survivors/internal/utils"
)

// CombatSystem разрешает урон по результатам коллизий: попадания,
// контакт, взрывы, подбор предметов, смерти и добычу.
type CombatSystem struct {
	world           *entity.World
	eventDispatcher *event.Dispatcher
	rng             *utils.PRNGService
	log             *zap.SugaredLogger

	playerDeadDispatched bool
}

func NewCombatSystem(world *entity.World, eventDispatcher *event.Dispatcher, rng *utils.PRNGService, log *zap.SugaredLogger) *CombatSystem {
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	return &CombatSystem{
		world:           world,
		eventDispatcher: eventDispatcher,
		rng:             rng,
		log:             log,
	}
}

// Resolve применяет все последствия коллизий за тик. Смерти врагов
// обрабатываются один раз в конце: сколько бы источников урона ни
// сработало за тик, враг умирает ровно однажды — один бросок добычи,
// одно событие ENEMY_KILLED.
func (s *CombatSystem) Resolve(fc FrameCollisions, deltaTime float64) {
	s.resolveProjectileHits(fc.ProjectileHits)
	s.resolveEnemyContact(fc.ContactEnemies, deltaTime)
	s.resolveShotsOnPlayer(fc.ShotsOnPlayer)
	s.resolveBombBlasts(fc.BombBlasts)
	s.resolvePickups(fc.Pickups)
	s.resolveDeaths()
}

func (s *CombatSystem) resolveProjectileHits(hits []ProjectileHit) {
	for _, hit := range hits {
		proj, pok := s.world.Projectiles[hit.ProjectileID]
		e, eok := s.world.Enemies[hit.EnemyID]
		if !pok || !eok {
			continue
		}
		def, err := defs.Enemy(e.Class)
		if err != nil {
			continue
		}

		if !e.IsInvulnerable(&def) {
			e.Health -= proj.Damage
			s.eventDispatcher.Dispatch(event.Event{
				Type: event.ProjectileHit,
				Data: event.ProjectileHitData{
					ProjectileID: hit.ProjectileID,
					EnemyID:      hit.EnemyID,
					Damage:       proj.Damage,
					Pos:          proj.Pos,
				},
			})
		}
		proj.MarkHit(hit.EnemyID)
		// Пробивающий снаряд летит дальше, обычный поглощается.
		if wdef, err := defs.Weapon(proj.Weapon); err != nil || !wdef.Pierces {
			delete(s.world.Projectiles, hit.ProjectileID)
		}
	}
}

// resolveEnemyContact — контактный урон. Обычный контакт — это DPS,
// умноженный на dt; рывок бьёт одним куском ровно один раз за рывок.
// Окно иммунитета от снарядов контакт игнорирует, неуязвимость рывка
// игрока — нет.
func (s *CombatSystem) resolveEnemyContact(touching []types.EntityID, dt float64) {
	pl := s.world.Player
	if pl.Health <= 0 || pl.Dash.Active {
		return
	}

	for _, id := range touching {
		e, ok := s.world.Enemies[id]
		if !ok {
			continue
		}
		def, err := defs.Enemy(e.Class)
		if err != nil {
			continue
		}

		if e.Phase == component.PhaseAction && def.DashHitDamage > 0 {
			if e.DashHitDone {
				continue
			}
			e.DashHitDone = true
			s.damagePlayer(def.DashHitDamage, "dash")
			if def.Behavior.DashHitSlow > 0 {
				pl.SlowFactor = def.Behavior.DashHitSlow
				pl.SlowTimer = def.Behavior.DashSlowTime
			}
			continue
		}
		if def.ContactDPS > 0 {
			s.damagePlayer(def.ContactDPS*dt, "contact")
		}
	}
}

func (s *CombatSystem) resolveShotsOnPlayer(hits []types.EntityID) {
	pl := s.world.Player
	for _, id := range hits {
		shot, ok := s.world.EnemyProjectiles[id]
		if !ok {
			continue
		}
		if pl.IsImmune() || pl.Health <= 0 {
			// Иммунитет: снаряд пролетает сквозь, не расходуясь.
			continue
		}
		s.damagePlayer(shot.Damage, "projectile")
		pl.ImmunityTimer = config.DamageImmunityDuration
		delete(s.world.EnemyProjectiles, id)
	}
}

func (s *CombatSystem) resolveBombBlasts(blasts []BombBlast) {
	for _, blast := range blasts {
		b, ok := s.world.Bombs[blast.BombID]
		if !ok {
			continue
		}
		for _, eid := range blast.Enemies {
			e, alive := s.world.Enemies[eid]
			if !alive {
				continue
			}
			def, err := defs.Enemy(e.Class)
			if err != nil || e.IsInvulnerable(&def) {
				continue
			}
			e.Health -= b.Damage
		}
		if blast.HitPlayer && !s.world.Player.Dash.Active {
			s.damagePlayer(b.SelfDamage, "bomb")
		}

		s.eventDispatcher.Dispatch(event.Event{
			Type: event.BombExploded,
			Data: event.BombExplodedData{
				ID:        blast.BombID,
				Pos:       b.Pos,
				Radius:    b.ExplosionRadius,
				HitPlayer: blast.HitPlayer,
			},
		})
		delete(s.world.Bombs, blast.BombID)
	}
}

func (s *CombatSystem) resolvePickups(collected []types.EntityID) {
	pl := s.world.Player
	for _, id := range collected {
		p, ok := s.world.Pickups[id]
		if !ok {
			continue
		}
		switch p.Kind {
		case defs.PickupXP:
			// Опыт засчитывает ProgressionSystem по событию.
		case defs.PickupHealth:
			pl.Health += float64(p.Amount)
			if pl.Health > pl.MaxHealth {
				pl.Health = pl.MaxHealth
			}
		case defs.PickupBomb:
			pl.Bombs += p.Amount
			if pl.Bombs > pl.MaxBombs {
				pl.Bombs = pl.MaxBombs
			}
		}
		s.eventDispatcher.Dispatch(event.Event{
			Type: event.PickupCollected,
			Data: event.PickupCollectedData{ID: id, Kind: p.Kind, Amount: p.Amount, Pos: p.Pos},
		})
		delete(s.world.Pickups, id)
	}
}

func (s *CombatSystem) damagePlayer(amount float64, source string) {
	pl := s.world.Player
	pl.Health -= amount
	if pl.Health < 0 {
		pl.Health = 0
	}
	s.eventDispatcher.Dispatch(event.Event{
		Type: event.PlayerDamaged,
		Data: event.PlayerDamagedData{Amount: amount, Source: source, Remaining: pl.Health},
	})
}

// resolveDeaths убирает мёртвых врагов и погибшего игрока.
func (s *CombatSystem) resolveDeaths() {
	for id, e := range s.world.Enemies {
		if e.Health > 0 {
			continue
		}
		s.killEnemy(id, e)
	}

	pl := s.world.Player
	if pl.Health <= 0 && !s.playerDeadDispatched {
		s.playerDeadDispatched = true
		s.eventDispatcher.Dispatch(event.Event{
			Type: event.PlayerDied,
			Data: event.PlayerDiedData{GameTime: s.world.GameTime},
		})
	}
}

func (s *CombatSystem) killEnemy(id types.EntityID, e *component.Enemy) {
	s.rollDrop(e)
	s.eventDispatcher.Dispatch(event.Event{
		Type: event.EnemyKilled,
		Data: event.EnemyKilledData{ID: id, Class: e.Class, Pos: e.Pos, XPValue: e.XPValue},
	})
	delete(s.world.Enemies, id)
}

// rollDrop — один взвешенный бросок на смерть. Веса таблицы заданы
// из ста: недостающий до 100 вес — это "ничего не выпало".
func (s *CombatSystem) rollDrop(e *component.Enemy) {
	table := defs.DropTableFor(e.Class)
	total := 0
	weights := make([]int, len(table))
	for i, entry := range table {
		weights[i] = entry.Weight
		total += entry.Weight
	}
	if total < 100 {
		r := s.rng.Intn(100)
		if r >= total {
			return
		}
	}
	idx := s.rng.ChooseWeighted(weights)
	if idx < 0 {
		return
	}
	entry := table[idx]

	id := s.world.NewEntity()
	s.world.Pickups[id] = &component.Pickup{
		Kind:   entry.Kind,
		Pos:    e.Pos,
		Radius: 6,
		Amount: entry.Amount,
	}
}
