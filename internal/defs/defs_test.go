package defs

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnemyLookup(t *testing.T) {
	for _, class := range []EnemyClass{EnemyBasic, EnemyFast, EnemyTank, EnemyElite} {
		def, err := Enemy(class)
		require.NoError(t, err)
		assert.Equal(t, class, def.ID)
		assert.Greater(t, def.Health, 0.0)
		assert.Greater(t, def.Speed, 0.0)
		assert.Greater(t, def.Radius, 0.0)
		assert.Greater(t, def.XPValue, 0)
	}

	_, err := Enemy("ENEMY_BOGUS")
	assert.Error(t, err)
}

func TestWeaponLookup(t *testing.T) {
	for _, class := range []WeaponClass{WeaponBasic, WeaponSpread, WeaponLaser, WeaponChainLaser, WeaponBombPlacer} {
		def, err := Weapon(class)
		require.NoError(t, err)
		assert.Equal(t, class, def.ID)
		assert.Greater(t, def.Cooldown, 0.0)
	}

	_, err := Weapon("WEAPON_BOGUS")
	assert.Error(t, err)
}

func TestCompositionSparseLookup(t *testing.T) {
	// Волна 4 не определена: действует ближайшая снизу (3).
	assert.Equal(t, WaveCompositions[3], CompositionForWave(4))
	// Точное совпадение.
	assert.Equal(t, WaveCompositions[5], CompositionForWave(5))
	// За пределами таблицы действует последняя запись.
	assert.Equal(t, WaveCompositions[10], CompositionForWave(999))
	// До первой записи действует состав по умолчанию.
	assert.Equal(t, DefaultComposition, CompositionForWave(0))
}

func TestWaveOneIsBasicsOnly(t *testing.T) {
	comp := CompositionForWave(1)
	require.Len(t, comp, 1)
	assert.Equal(t, EnemyBasic, comp[0].Class)
}

func TestDamageMultFallsBackToLowerLevel(t *testing.T) {
	assert.Equal(t, 1.0, DamageMultForLevel(1))
	assert.Equal(t, 2.5, DamageMultForLevel(8))
	// Уровень выше таблицы берёт максимум.
	assert.Equal(t, 2.5, DamageMultForLevel(12))
	// Уровень ниже таблицы остаётся на базовом множителе.
	assert.Equal(t, 1.0, DamageMultForLevel(0))
}

func TestChainCountFallsBackToLowerLevel(t *testing.T) {
	assert.Equal(t, 1, ChainCountForLevel(1))
	assert.Equal(t, 2, ChainCountForLevel(3)) // 3 не определён, берём 2
	assert.Equal(t, 3, ChainCountForLevel(5))
	assert.Equal(t, 5, ChainCountForLevel(20))
}

func TestDropTableFallback(t *testing.T) {
	assert.Equal(t, DropTables[EnemyBasic], DropTableFor(EnemyBasic))
	assert.Equal(t, DefaultDropTable, DropTableFor("ENEMY_BOGUS"))
}

func TestDropTableWeightsSumAtMostHundred(t *testing.T) {
	// Веса заданы из ста: недостающее до 100 — шанс пустого броска.
	for class, table := range DropTables {
		total := 0
		for _, entry := range table {
			assert.Greater(t, entry.Weight, 0, "class %s", class)
			total += entry.Weight
		}
		assert.LessOrEqual(t, total, 100, "class %s", class)
	}
}
