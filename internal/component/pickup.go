// internal/component/pickup.go
package component

import (
	"go-survivors/internal/defs"
	"go-survivors/pkg/vec"
)

// Pickup — предмет на земле: опыт, аптечка или бомба.
type Pickup struct {
	Kind   defs.PickupKind
	Pos    vec.V2
	Radius float64
	Amount int // Опыт / здоровье / число бомб

	// Magnet — предмет летит к игроку, попав в двойной радиус подбора.
	Magnet bool
}
