package defs

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeBalanceFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "balance.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func snapshotGlobals(t *testing.T) {
	t.Helper()
	savedTuning := WaveTuning
	savedBasic := EnemyLibrary[EnemyBasic]
	t.Cleanup(func() {
		WaveTuning = savedTuning
		EnemyLibrary[EnemyBasic] = savedBasic
	})
}

func TestMissingBalanceFileIsNotAnError(t *testing.T) {
	assert.NoError(t, LoadBalanceOverrides(filepath.Join(t.TempDir(), "absent.toml")))
}

func TestWaveOverridesApplied(t *testing.T) {
	snapshotGlobals(t)
	path := writeBalanceFile(t, `
[waves]
rest_duration = 2.5
base_enemies = 20
max_spawn_rate = 30.0
`)

	require.NoError(t, LoadBalanceOverrides(path))
	assert.Equal(t, 2.5, WaveTuning.RestDuration)
	assert.Equal(t, 20, WaveTuning.BaseEnemies)
	assert.Equal(t, 30.0, WaveTuning.MaxSpawnRate)
	// Незаданные поля не тронуты.
	assert.Equal(t, 25, WaveTuning.EnemiesPerWave)
}

func TestEnemyOverridesApplied(t *testing.T) {
	snapshotGlobals(t)
	path := writeBalanceFile(t, `
[enemies.ENEMY_BASIC]
health = 75.0
xp_value = 9
`)

	require.NoError(t, LoadBalanceOverrides(path))
	def, err := Enemy(EnemyBasic)
	require.NoError(t, err)
	assert.Equal(t, 75.0, def.Health)
	assert.Equal(t, 9, def.XPValue)
	// Скорость осталась встроенной.
	assert.Equal(t, 80.0, def.Speed)
}

func TestUnknownEnemyClassRejected(t *testing.T) {
	snapshotGlobals(t)
	path := writeBalanceFile(t, `
[enemies.ENEMY_BOGUS]
health = 1.0
`)
	assert.Error(t, LoadBalanceOverrides(path))
}

func TestMalformedTomlRejected(t *testing.T) {
	path := writeBalanceFile(t, "waves = {{{")
	assert.Error(t, LoadBalanceOverrides(path))
}
