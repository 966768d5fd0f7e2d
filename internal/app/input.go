// internal/app/input.go
package app

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"go-survivors/internal/system"
	"go-survivors/pkg/vec"
)

// ReadInput собирает снимок ввода за кадр. Системы не трогают
// устройства напрямую, поэтому симуляция остаётся тестируемой.
func ReadInput(cam *Camera) system.InputFrame {
	var move vec.V2
	if ebiten.IsKeyPressed(ebiten.KeyW) || ebiten.IsKeyPressed(ebiten.KeyArrowUp) {
		move.Y -= 1
	}
	if ebiten.IsKeyPressed(ebiten.KeyS) || ebiten.IsKeyPressed(ebiten.KeyArrowDown) {
		move.Y += 1
	}
	if ebiten.IsKeyPressed(ebiten.KeyA) || ebiten.IsKeyPressed(ebiten.KeyArrowLeft) {
		move.X -= 1
	}
	if ebiten.IsKeyPressed(ebiten.KeyD) || ebiten.IsKeyPressed(ebiten.KeyArrowRight) {
		move.X += 1
	}

	mx, my := ebiten.CursorPosition()

	return system.InputFrame{
		Move:        move,
		Cursor:      cam.ScreenToWorld(mx, my),
		DashPressed: inpututil.IsKeyJustPressed(ebiten.KeySpace) || inpututil.IsKeyJustPressed(ebiten.KeyShiftLeft),
		BombPressed: inpututil.IsKeyJustPressed(ebiten.KeyB) || inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonRight),
	}
}
