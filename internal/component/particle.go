// internal/component/particle.go
package component

import (
	"image/color"

	"go-survivors/pkg/vec"
)

// Particle — короткоживущая визуальная частица (взрывы, смерть врага).
type Particle struct {
	Pos     vec.V2
	Vel     vec.V2
	Radius  float64
	Life    float64
	MaxLife float64
	Color   color.RGBA
}
