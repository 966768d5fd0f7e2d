package system

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-survivors/internal/component"
	"go-survivors/internal/config"
	"go-survivors/internal/defs"
	"go-survivors/internal/entity"
	"go-survivors/internal/event"
	"go-survivors/internal/types"
	"go-survivors/internal/utils"
	"go-survivors/pkg/vec"
)

func newCombatSystem(w *entity.World) (*CombatSystem, *event.Dispatcher) {
	d := event.NewDispatcher(nil)
	return NewCombatSystem(w, d, utils.NewPRNGService(7), nil), d
}

func countEvents(d *event.Dispatcher, kind event.EventType) *int {
	n := new(int)
	d.Subscribe(kind, func(e event.Event) { *n++ })
	return n
}

func TestEnemyDiesOnceWithTwoHitsSameTick(t *testing.T) {
	w := newTestWorld()
	cs, d := newCombatSystem(w)
	kills := countEvents(d, event.EnemyKilled)

	eid := addEnemy(w, vec.New(300, 300), 16)
	w.Enemies[eid].Health = 50
	w.Enemies[eid].MaxHealth = 50
	p1 := addProjectile(w, vec.New(300, 300), 4, 30)
	p2 := addProjectile(w, vec.New(301, 300), 4, 30)

	cs.Resolve(FrameCollisions{
		ProjectileHits: []ProjectileHit{
			{ProjectileID: p1, EnemyID: eid},
			{ProjectileID: p2, EnemyID: eid},
		},
	}, 0.016)

	assert.Equal(t, 1, *kills)
	assert.NotContains(t, w.Enemies, eid)
	assert.Empty(t, w.Projectiles)
	// Один бросок добычи: не больше одного предмета.
	assert.LessOrEqual(t, len(w.Pickups), 1)
}

func TestProjectileHitDamagesAndConsumes(t *testing.T) {
	w := newTestWorld()
	cs, d := newCombatSystem(w)
	hits := countEvents(d, event.ProjectileHit)

	eid := addEnemy(w, vec.New(100, 0), 16)
	pid := addProjectile(w, vec.New(100, 0), 4, 5)

	cs.Resolve(FrameCollisions{ProjectileHits: []ProjectileHit{{ProjectileID: pid, EnemyID: eid}}}, 0.016)

	assert.Equal(t, 1, *hits)
	assert.InDelta(t, 15.0, w.Enemies[eid].Health, 1e-9)
	assert.NotContains(t, w.Projectiles, pid)
}

func TestTelegraphInvulnerabilityBlocksProjectileDamage(t *testing.T) {
	w := newTestWorld()
	cs, _ := newCombatSystem(w)

	eid := w.NewEntity()
	w.Enemies[eid] = &component.Enemy{
		Class:     defs.EnemyElite,
		Pos:       vec.New(100, 0),
		Radius:    20,
		Health:    100,
		MaxHealth: 100,
		Phase:     component.PhaseTelegraph,
	}
	pid := addProjectile(w, vec.New(100, 0), 4, 40)

	cs.Resolve(FrameCollisions{ProjectileHits: []ProjectileHit{{ProjectileID: pid, EnemyID: eid}}}, 0.016)

	// Урона нет, но снаряд расходуется.
	assert.InDelta(t, 100.0, w.Enemies[eid].Health, 1e-9)
	assert.NotContains(t, w.Projectiles, pid)
}

func TestContactDamageScalesWithDt(t *testing.T) {
	w := newTestWorld()
	cs, _ := newCombatSystem(w)

	eid := addEnemy(w, vec.New(10, 0), 16)
	def, err := defs.Enemy(defs.EnemyBasic)
	require.NoError(t, err)

	cs.Resolve(FrameCollisions{ContactEnemies: []types.EntityID{eid}}, 0.5)
	expected := config.PlayerMaxHealth - def.ContactDPS*0.5
	assert.InDelta(t, expected, w.Player.Health, 1e-9)
}

func TestContactDamageIgnoresProjectileImmunity(t *testing.T) {
	w := newTestWorld()
	cs, _ := newCombatSystem(w)
	w.Player.ImmunityTimer = 1.0

	eid := addEnemy(w, vec.New(10, 0), 16)
	cs.Resolve(FrameCollisions{ContactEnemies: []types.EntityID{eid}}, 0.5)
	assert.Less(t, w.Player.Health, float64(config.PlayerMaxHealth))
}

func TestDashInvulnerabilityBlocksContact(t *testing.T) {
	w := newTestWorld()
	cs, _ := newCombatSystem(w)
	w.Player.Dash.Active = true

	eid := addEnemy(w, vec.New(10, 0), 16)
	cs.Resolve(FrameCollisions{ContactEnemies: []types.EntityID{eid}}, 0.5)
	assert.Equal(t, float64(config.PlayerMaxHealth), w.Player.Health)
}

func TestDashHitLandsOncePerDash(t *testing.T) {
	w := newTestWorld()
	cs, _ := newCombatSystem(w)

	def, err := defs.Enemy(defs.EnemyElite)
	require.NoError(t, err)
	require.Greater(t, def.DashHitDamage, 0.0)

	eid := w.NewEntity()
	w.Enemies[eid] = &component.Enemy{
		Class:     defs.EnemyElite,
		Pos:       vec.New(10, 0),
		Radius:    20,
		Health:    100,
		MaxHealth: 100,
		Phase:     component.PhaseAction,
	}

	cs.Resolve(FrameCollisions{ContactEnemies: []types.EntityID{eid}}, 0.016)
	afterFirst := w.Player.Health
	assert.InDelta(t, config.PlayerMaxHealth-def.DashHitDamage, afterFirst, 1e-9)

	// Замедление от удара элиты.
	assert.Equal(t, def.Behavior.DashHitSlow, w.Player.SlowFactor)
	assert.Equal(t, def.Behavior.DashSlowTime, w.Player.SlowTimer)

	// Второй тик того же рывка не бьёт повторно.
	cs.Resolve(FrameCollisions{ContactEnemies: []types.EntityID{eid}}, 0.016)
	assert.Equal(t, afterFirst, w.Player.Health)
}

func TestEnemyShotDamagesAndGrantsImmunity(t *testing.T) {
	w := newTestWorld()
	cs, d := newCombatSystem(w)
	damaged := countEvents(d, event.PlayerDamaged)

	first := w.NewEntity()
	w.EnemyProjectiles[first] = &component.EnemyProjectile{Pos: vec.New(5, 0), Damage: 10, Radius: 6, Life: 1}
	second := w.NewEntity()
	w.EnemyProjectiles[second] = &component.EnemyProjectile{Pos: vec.New(-5, 0), Damage: 10, Radius: 6, Life: 1}

	cs.Resolve(FrameCollisions{ShotsOnPlayer: []types.EntityID{first, second}}, 0.016)

	// Первый снаряд попал и включил окно иммунитета, второй пролетел.
	assert.Equal(t, 1, *damaged)
	assert.InDelta(t, config.PlayerMaxHealth-10, w.Player.Health, 1e-9)
	assert.Equal(t, config.DamageImmunityDuration, w.Player.ImmunityTimer)
	assert.NotContains(t, w.EnemyProjectiles, first)
	assert.Contains(t, w.EnemyProjectiles, second)
}

func TestBombBlastDamagesEnemiesAndPlayer(t *testing.T) {
	w := newTestWorld()
	cs, d := newCombatSystem(w)
	exploded := countEvents(d, event.BombExploded)

	eid := addEnemy(w, vec.New(60, 0), 16)
	w.Enemies[eid].Health = 500
	w.Enemies[eid].MaxHealth = 500

	bid := w.NewEntity()
	w.Bombs[bid] = &component.Bomb{
		Pos:             vec.New(50, 0),
		Fuse:            0,
		ExplosionRadius: config.BombExplosionRadius,
		Damage:          config.BombExplosionDamage,
		SelfDamage:      config.BombPlayerDamage,
	}

	cs.Resolve(FrameCollisions{BombBlasts: []BombBlast{{
		BombID:    bid,
		Enemies:   []types.EntityID{eid},
		HitPlayer: true,
	}}}, 0.016)

	assert.Equal(t, 1, *exploded)
	assert.InDelta(t, 500-config.BombExplosionDamage, w.Enemies[eid].Health, 1e-9)
	assert.InDelta(t, config.PlayerMaxHealth-config.BombPlayerDamage, w.Player.Health, 1e-9)
	assert.NotContains(t, w.Bombs, bid)
}

func TestHealthPickupClampsAtMax(t *testing.T) {
	w := newTestWorld()
	cs, _ := newCombatSystem(w)
	w.Player.Health = 95

	id := w.NewEntity()
	w.Pickups[id] = &component.Pickup{Kind: defs.PickupHealth, Pos: vec.New(5, 0), Radius: 6, Amount: 25}

	cs.Resolve(FrameCollisions{Pickups: []types.EntityID{id}}, 0.016)
	assert.Equal(t, w.Player.MaxHealth, w.Player.Health)
	assert.Empty(t, w.Pickups)
}

func TestBombPickupClampsAtCap(t *testing.T) {
	w := newTestWorld()
	cs, _ := newCombatSystem(w)
	w.Player.Bombs = config.MaxBombs

	id := w.NewEntity()
	w.Pickups[id] = &component.Pickup{Kind: defs.PickupBomb, Pos: vec.New(5, 0), Radius: 6, Amount: 1}

	cs.Resolve(FrameCollisions{Pickups: []types.EntityID{id}}, 0.016)
	assert.Equal(t, config.MaxBombs, w.Player.Bombs)
}

func TestPlayerDiedDispatchedOnce(t *testing.T) {
	w := newTestWorld()
	cs, d := newCombatSystem(w)
	died := countEvents(d, event.PlayerDied)
	w.Player.Health = 1

	eid := addEnemy(w, vec.New(10, 0), 16)
	cs.Resolve(FrameCollisions{ContactEnemies: []types.EntityID{eid}}, 1.0)
	cs.Resolve(FrameCollisions{ContactEnemies: []types.EntityID{eid}}, 1.0)

	assert.Equal(t, 1, *died)
	assert.Equal(t, 0.0, w.Player.Health)
}

func TestLethalDamageClampsHealthAtZero(t *testing.T) {
	w := newTestWorld()
	cs, _ := newCombatSystem(w)
	w.Player.Health = 5

	bid := w.NewEntity()
	w.Bombs[bid] = &component.Bomb{
		Pos:             vec.New(0, 0),
		Fuse:            0,
		ExplosionRadius: config.BombExplosionRadius,
		Damage:          config.BombExplosionDamage,
		SelfDamage:      config.BombPlayerDamage,
	}

	cs.Resolve(FrameCollisions{BombBlasts: []BombBlast{{BombID: bid, HitPlayer: true}}}, 0.016)

	// Здоровье не уходит в минус даже при избыточном уроне.
	assert.Equal(t, 0.0, w.Player.Health)
}
