package system

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-survivors/internal/component"
	"go-survivors/internal/defs"
	"go-survivors/internal/entity"
	"go-survivors/internal/types"
	"go-survivors/internal/utils"
	"go-survivors/pkg/vec"
)

func newEnemySystem(w *entity.World) *EnemySystem {
	return NewEnemySystem(w, utils.NewPRNGService(3), nil)
}

func placeEnemy(w *entity.World, class defs.EnemyClass, pos vec.V2, cd float64) types.EntityID {
	def, _ := defs.Enemy(class)
	id := w.NewEntity()
	w.Enemies[id] = &component.Enemy{
		Class:     class,
		Pos:       pos,
		Radius:    def.Radius,
		Health:    def.Health,
		MaxHealth: def.Health,
		Speed:     def.Speed,
		XPValue:   def.XPValue,
		Phase:     component.PhaseMove,
		ActionCD:  cd,
		OrbitSign: 1,
	}
	return id
}

func TestBasicEnemyChasesPlayer(t *testing.T) {
	w := newTestWorld()
	s := newEnemySystem(w)

	id := placeEnemy(w, defs.EnemyBasic, vec.New(200, 0), 10)
	s.Update(0.016)

	e := w.Enemies[id]
	def, _ := defs.Enemy(defs.EnemyBasic)
	// Скорость направлена к игроку (в минус X).
	assert.Less(t, e.Vel.X, 0.0)
	assert.InDelta(t, def.Speed, e.Vel.Len(), 1e-9)
	assert.Less(t, e.Pos.X, 200.0)
}

func TestFastEnemyOrbitsAtRing(t *testing.T) {
	w := newTestWorld()
	s := newEnemySystem(w)

	def, _ := defs.Enemy(defs.EnemyFast)
	// Ровно на орбитальном кольце: скорость почти вся тангенциальная.
	id := placeEnemy(w, defs.EnemyFast, vec.New(def.Behavior.OrbitDistance, 0), 10)
	s.Update(0.016)

	e := w.Enemies[id]
	radial := w.Player.Pos.Sub(e.Pos).Normalized()
	tangentialShare := math.Abs(e.Vel.Normalized().Dot(radial.Perp()))
	assert.Greater(t, tangentialShare, 0.95)
}

func TestFastEnemyApproachesWhenFar(t *testing.T) {
	w := newTestWorld()
	s := newEnemySystem(w)

	def, _ := defs.Enemy(defs.EnemyFast)
	id := placeEnemy(w, defs.EnemyFast, vec.New(def.Behavior.OrbitDistance*3, 0), 10)
	distBefore := w.Enemies[id].Pos.Dist(w.Player.Pos)

	for i := 0; i < 30; i++ {
		s.Update(0.016)
	}
	assert.Less(t, w.Enemies[id].Pos.Dist(w.Player.Pos), distBefore)
}

func TestFastEnemyTelegraphsFromRing(t *testing.T) {
	w := newTestWorld()
	s := newEnemySystem(w)

	def, _ := defs.Enemy(defs.EnemyFast)
	id := placeEnemy(w, defs.EnemyFast, vec.New(def.Behavior.OrbitDistance, 0), 0)
	s.Update(0.016)

	e := w.Enemies[id]
	require.Equal(t, component.PhaseTelegraph, e.Phase)
	// Направление рывка зафиксировано на игрока.
	assert.InDelta(t, -1.0, e.ActionDir.X, 0.05)
	assert.False(t, e.DashHitDone)
}

func TestFastEnemySkipsTelegraphOffRing(t *testing.T) {
	w := newTestWorld()
	s := newEnemySystem(w)

	def, _ := defs.Enemy(defs.EnemyFast)
	id := placeEnemy(w, defs.EnemyFast, vec.New(def.Behavior.OrbitDistance*2, 0), 0)
	s.Update(0.016)
	assert.Equal(t, component.PhaseMove, w.Enemies[id].Phase)
}

func TestTelegraphCapturedDirectionNotReaimed(t *testing.T) {
	w := newTestWorld()
	s := newEnemySystem(w)

	def, _ := defs.Enemy(defs.EnemyFast)
	id := placeEnemy(w, defs.EnemyFast, vec.New(def.Behavior.OrbitDistance, 0), 0)
	s.Update(0.016)
	captured := w.Enemies[id].ActionDir

	// Игрок переместился, но цель телеграфа прежняя.
	w.Player.Pos = vec.New(0, 500)
	s.Update(0.016)
	assert.Equal(t, captured, w.Enemies[id].ActionDir)
}

func TestTankShootsAfterTelegraph(t *testing.T) {
	w := newTestWorld()
	s := newEnemySystem(w)

	def, _ := defs.Enemy(defs.EnemyTank)
	id := placeEnemy(w, defs.EnemyTank, vec.New(def.Behavior.ShootRange-50, 0), 0)

	s.Update(0.016)
	require.Equal(t, component.PhaseTelegraph, w.Enemies[id].Phase)

	// Досиживаем телеграф.
	for i := 0; i < 30; i++ {
		s.Update(0.016)
	}
	e := w.Enemies[id]
	assert.Equal(t, component.PhaseMove, e.Phase)
	assert.Greater(t, e.ActionCD, 0.0)
	require.Len(t, w.EnemyProjectiles, 1)
	for _, shot := range w.EnemyProjectiles {
		assert.Less(t, shot.Vel.X, 0.0) // к игроку
		assert.InDelta(t, def.Behavior.ShotDamage, shot.Damage, 1e-9)
	}
}

func TestTankHoldsFireOutOfRange(t *testing.T) {
	w := newTestWorld()
	s := newEnemySystem(w)

	def, _ := defs.Enemy(defs.EnemyTank)
	id := placeEnemy(w, defs.EnemyTank, vec.New(def.Behavior.ShootRange*2, 0), 0)
	s.Update(0.016)
	assert.Equal(t, component.PhaseMove, w.Enemies[id].Phase)
	assert.Empty(t, w.EnemyProjectiles)
}

func TestEliteEitherDashesOrResetsCooldown(t *testing.T) {
	w := newTestWorld()
	s := newEnemySystem(w)

	id := placeEnemy(w, defs.EnemyElite, vec.New(300, 0), 0)
	s.Update(0.016)

	e := w.Enemies[id]
	if e.Phase == component.PhaseMove {
		// Бросок на рывок не удался: кулдаун перевыдан.
		assert.Greater(t, e.ActionCD, 0.0)
	} else {
		assert.Equal(t, component.PhaseTelegraph, e.Phase)
	}
}

// setFastExplosionChance временно правит библиотеку, чтобы исход броска
// после рывка был предсказуем.
func setFastExplosionChance(t *testing.T, chance float64) {
	t.Helper()
	saved := defs.EnemyLibrary[defs.EnemyFast]
	t.Cleanup(func() { defs.EnemyLibrary[defs.EnemyFast] = saved })

	def := saved
	def.Behavior.ExplosionChance = chance
	defs.EnemyLibrary[defs.EnemyFast] = def
}

func TestFastEnemyFlipsOrbitAfterDash(t *testing.T) {
	setFastExplosionChance(t, 0)
	w := newTestWorld()
	s := newEnemySystem(w)

	id := placeEnemy(w, defs.EnemyFast, vec.New(200, 0), 10)
	e := w.Enemies[id]
	e.Phase = component.PhaseAction
	e.PhaseTimer = 0.01

	s.Update(0.02)
	assert.Equal(t, component.PhaseMove, e.Phase)
	assert.Equal(t, -1.0, e.OrbitSign)
	assert.Greater(t, e.ActionCD, 0.0)
}

func TestFastEnemyExplodesIntoShards(t *testing.T) {
	setFastExplosionChance(t, 1)
	w := newTestWorld()
	s := newEnemySystem(w)

	id := placeEnemy(w, defs.EnemyFast, vec.New(200, 0), 10)
	e := w.Enemies[id]
	e.Phase = component.PhaseAction
	e.PhaseTimer = 0.01

	s.Update(0.02)
	def, _ := defs.Enemy(defs.EnemyFast)
	assert.NotContains(t, w.Enemies, id)
	assert.Len(t, w.EnemyProjectiles, def.Behavior.ExplosionShards)
	// Самоподрыв не считается убийством: добычи нет.
	assert.Empty(t, w.Pickups)
}

func TestEliteInvulnerableOnlyDuringTelegraph(t *testing.T) {
	def, err := defs.Enemy(defs.EnemyElite)
	require.NoError(t, err)
	require.True(t, def.Behavior.TelegraphInvulnerable)

	e := &component.Enemy{Class: defs.EnemyElite, Phase: component.PhaseTelegraph}
	assert.True(t, e.IsInvulnerable(&def))
	e.Phase = component.PhaseAction
	assert.False(t, e.IsInvulnerable(&def))

	basicDef, err := defs.Enemy(defs.EnemyBasic)
	require.NoError(t, err)
	b := &component.Enemy{Class: defs.EnemyBasic, Phase: component.PhaseTelegraph}
	assert.False(t, b.IsInvulnerable(&basicDef))
}

func TestDeadPlayerStopsTelegraphs(t *testing.T) {
	w := newTestWorld()
	s := newEnemySystem(w)
	w.Player.Health = 0

	def, _ := defs.Enemy(defs.EnemyTank)
	id := placeEnemy(w, defs.EnemyTank, vec.New(def.Behavior.ShootRange-50, 0), 0)
	s.Update(0.016)
	assert.Equal(t, component.PhaseMove, w.Enemies[id].Phase)
}

func TestUnknownEnemyClassRemoved(t *testing.T) {
	w := newTestWorld()
	s := newEnemySystem(w)

	id := w.NewEntity()
	w.Enemies[id] = &component.Enemy{Class: "ENEMY_BOGUS", Pos: vec.New(10, 10)}
	s.Update(0.016)
	assert.NotContains(t, w.Enemies, id)
}
