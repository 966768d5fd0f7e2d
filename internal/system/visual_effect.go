// internal/system/visual_effect.go
package system

import (
	"image/color"
	"math"

	"go-survivors/internal/component"
	"go-survivors/internal/config"
	"go-survivors/internal/defs"
	"go-survivors/internal/entity"
	"go-survivors/internal/event"
	"go-survivors/internal/utils"
	"go-survivors/pkg/vec"
)

var sparkColor = color.RGBA{255, 240, 180, 255}

// VisualEffectSystem рождает частицы по боевым событиям, двигает и гасит их.
// Сам он в бой не вмешивается: только слушает шину.
type VisualEffectSystem struct {
	world *entity.World
	rng   *utils.PRNGService
}

func NewVisualEffectSystem(world *entity.World, eventDispatcher *event.Dispatcher, rng *utils.PRNGService) *VisualEffectSystem {
	s := &VisualEffectSystem{world: world, rng: rng}

	eventDispatcher.Subscribe(event.EnemyKilled, func(ev event.Event) {
		data, ok := ev.Data.(event.EnemyKilledData)
		if !ok {
			return
		}
		c := sparkColor
		if def, err := defs.Enemy(data.Class); err == nil {
			c = def.Color
		}
		spawnBurst(s.world, s.rng, data.Pos, c, 10)
	})
	eventDispatcher.Subscribe(event.ProjectileHit, func(ev event.Event) {
		data, ok := ev.Data.(event.ProjectileHitData)
		if !ok {
			return
		}
		spawnBurst(s.world, s.rng, data.Pos, sparkColor, 4)
	})
	eventDispatcher.Subscribe(event.BombExploded, func(ev event.Event) {
		data, ok := ev.Data.(event.BombExplodedData)
		if !ok {
			return
		}
		spawnBurst(s.world, s.rng, data.Pos, config.ExplosionColor, 24)
	})

	return s
}

func (s *VisualEffectSystem) Update(deltaTime float64) {
	for id, p := range s.world.Particles {
		p.Pos = p.Pos.Add(p.Vel.Scale(deltaTime))
		p.Vel = p.Vel.Scale(1 - 3*deltaTime) // Трение
		p.Life -= deltaTime
		if p.Life <= 0 {
			delete(s.world.Particles, id)
		}
	}
}

// spawnBurst разбрасывает частицы из точки во все стороны.
func spawnBurst(world *entity.World, rng *utils.PRNGService, pos vec.V2, c color.RGBA, count int) {
	for i := 0; i < count; i++ {
		angle := rng.Float64() * 2 * math.Pi
		speed := rng.Range(60, 220)
		life := rng.Range(0.3, 0.7)
		id := world.NewEntity()
		world.Particles[id] = &component.Particle{
			Pos:     pos,
			Vel:     vec.FromAngle(angle).Scale(speed),
			Radius:  rng.Range(1.5, 3.5),
			Life:    life,
			MaxLife: life,
			Color:   c,
		}
	}
}
