// internal/system/render.go
package system

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"go-survivors/internal/component"
	"go-survivors/internal/config"
	"go-survivors/internal/defs"
	"go-survivors/internal/entity"
	"go-survivors/pkg/vec"
)

// RenderSystem рисует мир в экранных координатах камеры.
type RenderSystem struct {
	world *entity.World
}

func NewRenderSystem(world *entity.World) *RenderSystem {
	return &RenderSystem{world: world}
}

// Draw отрисовывает все сущности. cam — мировая позиция левого
// верхнего угла экрана.
func (s *RenderSystem) Draw(screen *ebiten.Image, cam vec.V2, gameTime float64) {
	s.drawBackgroundGrid(screen, cam)
	s.drawPickups(screen, cam, gameTime)
	s.drawBombs(screen, cam, gameTime)
	s.drawEnemies(screen, cam, gameTime)
	s.drawProjectiles(screen, cam)
	s.drawBeams(screen, cam)
	s.drawParticles(screen, cam)
	s.drawPlayer(screen, cam)
}

func toScreen(p, cam vec.V2) (float32, float32) {
	return float32(p.X - cam.X), float32(p.Y - cam.Y)
}

// drawBackgroundGrid — разметка пола, чтобы движение камеры читалось.
func (s *RenderSystem) drawBackgroundGrid(screen *ebiten.Image, cam vec.V2) {
	const step = 100.0
	x0 := math.Floor(cam.X/step) * step
	y0 := math.Floor(cam.Y/step) * step
	for x := x0; x < cam.X+config.ScreenWidth+step; x += step {
		sx := float32(x - cam.X)
		vector.StrokeLine(screen, sx, 0, sx, config.ScreenHeight, 1, config.GridLineColor, false)
	}
	for y := y0; y < cam.Y+config.ScreenHeight+step; y += step {
		sy := float32(y - cam.Y)
		vector.StrokeLine(screen, 0, sy, config.ScreenWidth, sy, 1, config.GridLineColor, false)
	}
}

func (s *RenderSystem) drawPlayer(screen *ebiten.Image, cam vec.V2) {
	pl := s.world.Player
	x, y := toScreen(pl.Pos, cam)

	if pl.Dash.Active {
		// След рывка позади игрока.
		trail := pl.Pos.Sub(pl.Dash.Dir.Scale(24))
		tx, ty := toScreen(trail, cam)
		vector.DrawFilledCircle(screen, tx, ty, float32(pl.Radius)*0.8, config.DashTrailColor, true)
	}

	vector.DrawFilledCircle(screen, x, y, float32(pl.Radius), config.PlayerColor, true)

	// Стволы оружия из точек крепления.
	for i := range pl.Weapons {
		slot := &pl.Weapons[i]
		mount := pl.Pos.Add(slot.Mount.Rotate(pl.Facing))
		tip := mount.Add(vec.FromAngle(pl.Facing).Scale(config.WeaponBarrelLength * 0.5))
		mx, my := toScreen(mount, cam)
		tx, ty := toScreen(tip, cam)
		vector.StrokeLine(screen, mx, my, tx, ty, 3, config.TextLightColor, true)
	}
}

func (s *RenderSystem) drawEnemies(screen *ebiten.Image, cam vec.V2, gameTime float64) {
	for _, e := range s.world.Enemies {
		def, err := defs.Enemy(e.Class)
		if err != nil {
			continue
		}
		c := def.Color

		if e.Phase == component.PhaseTelegraph {
			// Мигание телеграфа: видимость по прямоугольной волне.
			blink := math.Sin(gameTime * def.Behavior.TelegraphBlinkRate * 2 * math.Pi)
			if blink > 0 {
				c = config.TelegraphColor
			}
		}

		x, y := toScreen(e.Pos, cam)
		vector.DrawFilledCircle(screen, x, y, float32(e.Radius), c, true)

		// Полоска здоровья над раненым врагом.
		if e.Health < e.MaxHealth {
			frac := float32(e.Health / e.MaxHealth)
			w := float32(e.Radius) * 2
			vector.DrawFilledRect(screen, x-w/2, y-float32(e.Radius)-7, w, 3, config.HealthBackColor, false)
			vector.DrawFilledRect(screen, x-w/2, y-float32(e.Radius)-7, w*frac, 3, config.HealthBarColor, false)
		}
	}
}

func (s *RenderSystem) drawProjectiles(screen *ebiten.Image, cam vec.V2) {
	for _, p := range s.world.Projectiles {
		x, y := toScreen(p.Pos, cam)
		vector.DrawFilledCircle(screen, x, y, float32(p.Radius), p.Color, true)
	}
	for _, p := range s.world.EnemyProjectiles {
		x, y := toScreen(p.Pos, cam)
		vector.DrawFilledCircle(screen, x, y, float32(p.Radius), p.Color, true)
	}
}

func (s *RenderSystem) drawBeams(screen *ebiten.Image, cam vec.V2) {
	for _, b := range s.world.Beams {
		x0, y0 := toScreen(b.From, cam)
		x1, y1 := toScreen(b.To, cam)
		vector.StrokeLine(screen, x0, y0, x1, y1, 2, b.Color, true)
	}
}

func (s *RenderSystem) drawBombs(screen *ebiten.Image, cam vec.V2, gameTime float64) {
	for _, b := range s.world.Bombs {
		x, y := toScreen(b.Pos, cam)
		c := config.BombColor
		// Чем короче фитиль, тем чаще красные вспышки.
		rate := 2.0 + (config.BombExplosionDelay-b.Fuse)*4
		if math.Sin(gameTime*rate*2*math.Pi) > 0.5 {
			c = config.BombWarnColor
		}
		vector.DrawFilledCircle(screen, x, y, float32(b.Radius), c, true)
	}
}

func (s *RenderSystem) drawPickups(screen *ebiten.Image, cam vec.V2, gameTime float64) {
	for _, p := range s.world.Pickups {
		x, y := toScreen(p.Pos, cam)
		pulse := float32(1 + 0.15*math.Sin(gameTime*4))
		var c = config.XPBarColor
		switch p.Kind {
		case defs.PickupHealth:
			c = config.HealthBarColor
		case defs.PickupBomb:
			c = config.BombColor
		}
		vector.DrawFilledCircle(screen, x, y, float32(p.Radius)*pulse, c, true)
	}
}

func (s *RenderSystem) drawParticles(screen *ebiten.Image, cam vec.V2) {
	for _, p := range s.world.Particles {
		x, y := toScreen(p.Pos, cam)
		c := p.Color
		c.A = uint8(255 * p.Life / p.MaxLife)
		vector.DrawFilledCircle(screen, x, y, float32(p.Radius), c, false)
	}
}
