// internal/defs/waves.go
package defs

import "sort"

// WaveTuning — настройки темпа волн. Значения могут быть переопределены
// файлом баланса (см. loader.go).
type WaveTuningParams struct {
	RestDuration   float64
	FirstWaveDelay float64
	BaseEnemies    int
	EnemiesPerWave int
	MaxEnemies     int
	BaseSpawnRate  float64
	SpawnRateInc   float64
	MaxSpawnRate   float64
}

var WaveTuning = WaveTuningParams{
	RestDuration:   5.0,
	FirstWaveDelay: 3.0,
	BaseEnemies:    11,
	EnemiesPerWave: 25,
	MaxEnemies:     550,
	BaseSpawnRate:  2.0,
	SpawnRateInc:   0.2,
	MaxSpawnRate:   15.0,
}

// WaveCompositions — разреженная таблица состава волн, ключ — номер волны.
// Для волны берётся наибольший определённый номер, не превышающий её;
// за пределами таблицы действует DefaultComposition.
var WaveCompositions = map[int][]CompositionEntry{
	1: {
		{Class: EnemyBasic, Weight: 1.0},
	},
	2: {
		{Class: EnemyBasic, Weight: 0.8},
		{Class: EnemyFast, Weight: 0.2},
	},
	3: {
		{Class: EnemyBasic, Weight: 0.6},
		{Class: EnemyFast, Weight: 0.3},
		{Class: EnemyTank, Weight: 0.1},
	},
	5: {
		{Class: EnemyBasic, Weight: 0.4},
		{Class: EnemyFast, Weight: 0.3},
		{Class: EnemyTank, Weight: 0.2},
		{Class: EnemyElite, Weight: 0.1},
	},
	10: {
		{Class: EnemyBasic, Weight: 0.3},
		{Class: EnemyFast, Weight: 0.3},
		{Class: EnemyTank, Weight: 0.2},
		{Class: EnemyElite, Weight: 0.2},
	},
}

// DefaultComposition действует, когда таблица не определяет состав.
var DefaultComposition = []CompositionEntry{
	{Class: EnemyBasic, Weight: 0.3},
	{Class: EnemyFast, Weight: 0.3},
	{Class: EnemyTank, Weight: 0.2},
	{Class: EnemyElite, Weight: 0.2},
}

// CompositionForWave возвращает состав для номера волны с учётом
// разреженности таблицы.
func CompositionForWave(wave int) []CompositionEntry {
	keys := make([]int, 0, len(WaveCompositions))
	for k := range WaveCompositions {
		keys = append(keys, k)
	}
	sort.Sort(sort.Reverse(sort.IntSlice(keys)))
	for _, k := range keys {
		if wave >= k {
			return WaveCompositions[k]
		}
	}
	return DefaultComposition
}
