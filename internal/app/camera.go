// internal/app/camera.go
package app

import (
	"go-survivors/internal/config"
	"go-survivors/pkg/vec"
)

// Camera плавно следует за игроком. Хранится центр, а не угол.
type Camera struct {
	Center vec.V2
}

func NewCamera(center vec.V2) *Camera {
	return &Camera{Center: center}
}

// Follow подтягивает центр камеры к цели с экспоненциальным сглаживанием.
func (c *Camera) Follow(target vec.V2, dt float64) {
	k := 8 * dt
	if k > 1 {
		k = 1
	}
	c.Center = c.Center.Add(target.Sub(c.Center).Scale(k))
}

// TopLeft — мировая позиция левого верхнего угла экрана.
func (c *Camera) TopLeft() vec.V2 {
	return vec.New(c.Center.X-float64(config.ScreenWidth)/2, c.Center.Y-float64(config.ScreenHeight)/2)
}

// ScreenToWorld переводит экранные координаты в мировые.
func (c *Camera) ScreenToWorld(x, y int) vec.V2 {
	tl := c.TopLeft()
	return vec.New(tl.X+float64(x), tl.Y+float64(y))
}
