// internal/defs/loader.go
package defs

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/BurntSushi/toml"
)

// balanceFile — формат файла баланса. Все секции и поля необязательны:
// заданные значения накладываются поверх встроенных таблиц.
type balanceFile struct {
	Waves   *waveOverrides            `toml:"waves"`
	Enemies map[string]enemyOverrides `toml:"enemies"`
}

type waveOverrides struct {
	RestDuration   *float64 `toml:"rest_duration"`
	BaseEnemies    *int     `toml:"base_enemies"`
	EnemiesPerWave *int     `toml:"enemies_per_wave"`
	MaxEnemies     *int     `toml:"max_enemies"`
	BaseSpawnRate  *float64 `toml:"base_spawn_rate"`
	SpawnRateInc   *float64 `toml:"spawn_rate_inc"`
	MaxSpawnRate   *float64 `toml:"max_spawn_rate"`
}

type enemyOverrides struct {
	Health     *float64 `toml:"health"`
	Speed      *float64 `toml:"speed"`
	ContactDPS *float64 `toml:"contact_dps"`
	XPValue    *int     `toml:"xp_value"`
}

// LoadBalanceOverrides накладывает файл баланса поверх встроенных таблиц.
// Отсутствующий файл — не ошибка: игра работает на значениях по умолчанию.
func LoadBalanceOverrides(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("defs: read balance file: %w", err)
	}

	var bf balanceFile
	if err := toml.Unmarshal(data, &bf); err != nil {
		return fmt.Errorf("defs: parse balance file: %w", err)
	}

	if bf.Waves != nil {
		applyWaveOverrides(bf.Waves)
	}
	for key, ov := range bf.Enemies {
		class := EnemyClass(key)
		def, ok := EnemyLibrary[class]
		if !ok {
			return fmt.Errorf("defs: balance file references unknown enemy class %q", key)
		}
		if ov.Health != nil {
			def.Health = *ov.Health
		}
		if ov.Speed != nil {
			def.Speed = *ov.Speed
		}
		if ov.ContactDPS != nil {
			def.ContactDPS = *ov.ContactDPS
		}
		if ov.XPValue != nil {
			def.XPValue = *ov.XPValue
		}
		EnemyLibrary[class] = def
	}
	return nil
}

func applyWaveOverrides(ov *waveOverrides) {
	if ov.RestDuration != nil {
		WaveTuning.RestDuration = *ov.RestDuration
	}
	if ov.BaseEnemies != nil {
		WaveTuning.BaseEnemies = *ov.BaseEnemies
	}
	if ov.EnemiesPerWave != nil {
		WaveTuning.EnemiesPerWave = *ov.EnemiesPerWave
	}
	if ov.MaxEnemies != nil {
		WaveTuning.MaxEnemies = *ov.MaxEnemies
	}
	if ov.BaseSpawnRate != nil {
		WaveTuning.BaseSpawnRate = *ov.BaseSpawnRate
	}
	if ov.SpawnRateInc != nil {
		WaveTuning.SpawnRateInc = *ov.SpawnRateInc
	}
	if ov.MaxSpawnRate != nil {
		WaveTuning.MaxSpawnRate = *ov.MaxSpawnRate
	}
}
