// internal/system/input.go
package system

import "go-survivors/pkg/vec"

// InputFrame — снимок ввода за один тик. Собирается оболочкой игры,
// системы не читают устройства напрямую.
type InputFrame struct {
	Move        vec.V2 // Направление движения, ненормализованное
	Cursor      vec.V2 // Позиция курсора в мировых координатах
	DashPressed bool
	BombPressed bool
}
