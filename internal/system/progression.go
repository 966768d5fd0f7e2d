// internal/system/progression.go
package system

import (
	"go-survivors/internal/config"
	"go-survivors/internal/defs"
	"go-survivors/internal/entity"
	"go-survivors/internal/event"
)

// ProgressionSystem — опыт и уровни. Слушает подбор предметов и
// начисляет опыт; одно большое пополнение может дать несколько
// уровней подряд, каждый со своим событием LEVEL_UP.
type ProgressionSystem struct {
	world           *entity.World
	eventDispatcher *event.Dispatcher
}

func NewProgressionSystem(world *entity.World, eventDispatcher *event.Dispatcher) *ProgressionSystem {
	s := &ProgressionSystem{world: world, eventDispatcher: eventDispatcher}
	eventDispatcher.Subscribe(event.PickupCollected, s.onPickup)
	return s
}

func (s *ProgressionSystem) onPickup(e event.Event) {
	data, ok := e.Data.(event.PickupCollectedData)
	if !ok || data.Kind != defs.PickupXP {
		return
	}
	s.AddXP(data.Amount)
}

// AddXP начисляет опыт и переводит уровни, пока хватает порога.
// Остаток переносится на следующий уровень.
func (s *ProgressionSystem) AddXP(amount int) {
	if amount <= 0 {
		return
	}
	pr := s.world.Progress
	pr.XP += amount

	s.eventDispatcher.Dispatch(event.Event{
		Type: event.XPGained,
		Data: event.XPGainedData{Amount: amount, Total: pr.XP},
	})

	for pr.XP >= pr.XPRequired {
		pr.XP -= pr.XPRequired
		pr.Level++
		pr.PendingLevels++
		pr.XPRequired = config.CalculateXPForNextLevel(pr.Level)

		s.eventDispatcher.Dispatch(event.Event{
			Type: event.LevelUp,
			Data: event.LevelUpData{Level: pr.Level},
		})
	}
}
