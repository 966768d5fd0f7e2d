// internal/system/upgrade.go
package system

import (
	"fmt"

	"go-survivors/internal/component"
	"go-survivors/internal/config"
	"go-survivors/internal/defs"
	"go-survivors/internal/entity"
	"go-survivors/internal/utils"
)

// UpgradeSystem — выбор и применение улучшений при новом уровне.
type UpgradeSystem struct {
	world *entity.World
	rng   *utils.PRNGService
}

func NewUpgradeSystem(world *entity.World, rng *utils.PRNGService) *UpgradeSystem {
	return &UpgradeSystem{world: world, rng: rng}
}

// GenerateChoices фильтрует каталог по состоянию игрока и выбирает
// до n разных вариантов без возврата.
func (s *UpgradeSystem) GenerateChoices(n int) []defs.UpgradeDefinition {
	pool := s.applicable()
	if len(pool) <= n {
		return pool
	}
	s.rng.Shuffle(len(pool), func(i, j int) {
		pool[i], pool[j] = pool[j], pool[i]
	})
	return pool[:n]
}

func (s *UpgradeSystem) applicable() []defs.UpgradeDefinition {
	pl := s.world.Player
	var pool []defs.UpgradeDefinition
	for _, def := range defs.UpgradeCatalog {
		switch def.Kind {
		case defs.UpgradeWeaponLevel:
			if slot := s.lowestLevelSlot(); slot != nil {
				pool = append(pool, def)
			}
		case defs.UpgradeNewWeapon:
			if len(pl.Weapons) >= config.MaxWeaponSlots {
				continue
			}
			if pl.HasWeapon(def.Weapon) {
				continue
			}
			pool = append(pool, def)
		default:
			pool = append(pool, def)
		}
	}
	return pool
}

// lowestLevelSlot — слот с минимальным уровнем, не достигший потолка.
// При равных уровнях берётся первый по порядку слотов.
func (s *UpgradeSystem) lowestLevelSlot() *component.WeaponSlot {
	pl := s.world.Player
	var best *component.WeaponSlot
	for i := range pl.Weapons {
		slot := &pl.Weapons[i]
		if slot.Level >= config.MaxWeaponLevel {
			continue
		}
		if best == nil || slot.Level < best.Level {
			best = slot
		}
	}
	return best
}

// Apply применяет выбранное улучшение к игроку.
func (s *UpgradeSystem) Apply(def defs.UpgradeDefinition) error {
	pl := s.world.Player
	switch def.Kind {
	case defs.UpgradeWeaponLevel:
		slot := s.lowestLevelSlot()
		if slot == nil {
			return fmt.Errorf("apply %s: no weapon below max level", def.ID)
		}
		slot.Level++
		return nil

	case defs.UpgradeStat:
		amount := def.Amount
		switch def.Stat {
		case defs.StatSpeed:
			if def.IsPercentage {
				amount = pl.Speed * def.Amount / 100
			}
			pl.Speed += amount
		case defs.StatPickupRange:
			if def.IsPercentage {
				amount = pl.PickupRange * def.Amount / 100
			}
			pl.PickupRange += amount
		case defs.StatMaxHealth:
			if def.IsPercentage {
				amount = pl.MaxHealth * def.Amount / 100
			}
			pl.MaxHealth += amount
			pl.Health += amount // Прибавка к максимуму лечит на ту же величину
		default:
			return fmt.Errorf("apply %s: unknown stat %q", def.ID, def.Stat)
		}
		return nil

	case defs.UpgradeNewWeapon:
		if len(pl.Weapons) >= config.MaxWeaponSlots {
			return fmt.Errorf("apply %s: all weapon slots occupied", def.ID)
		}
		if pl.HasWeapon(def.Weapon) {
			return fmt.Errorf("apply %s: weapon already owned", def.ID)
		}
		mounts := entity.MountOffsets()
		pl.Weapons = append(pl.Weapons, component.WeaponSlot{
			Class: def.Weapon,
			Level: 1,
			Mount: mounts[len(pl.Weapons)%len(mounts)],
		})
		return nil
	}
	return fmt.Errorf("apply %s: unknown upgrade kind %d", def.ID, def.Kind)
}
