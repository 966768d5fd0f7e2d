// pkg/grid/grid.go
package grid

import (
	"go-survivors/internal/types"
	"go-survivors/pkg/vec"
)

// Kind различает категории сущностей внутри одной сетки.
type Kind uint8

// В сетку попадают только враги и подбираемые предметы: снаряды и бомбы
// слишком короткоживущие, им дешевле точный перебор.
const (
	KindEnemy Kind = iota
	KindPickup
)

// Ref — ссылка на сущность в сетке. Хранится по значению, а не указателем.
type Ref struct {
	Kind Kind
	ID   types.EntityID
}

type cell struct {
	cx, cy int
}

// SpatialGrid разбивает мир на квадратные ячейки для быстрого поиска соседей.
// Сетка перестраивается целиком каждый кадр: сущности двигаются каждый тик,
// поэтому инкрементальное обновление ничего не даёт. Крупная сущность хранится
// в каждой накрываемой ячейке избыточно; дубликаты отсекаются при запросе.
type SpatialGrid struct {
	cellSize float64
	cells    map[cell][]Ref
}

// NewSpatialGrid создаёт сетку с указанным размером ячейки.
// Неположительный размер — ошибка программиста.
func NewSpatialGrid(cellSize float64) *SpatialGrid {
	if cellSize <= 0 {
		panic("grid: cell size must be positive")
	}
	return &SpatialGrid{
		cellSize: cellSize,
		cells:    make(map[cell][]Ref),
	}
}

// Clear опустошает все ячейки, сохраняя выделенную ёмкость.
func (g *SpatialGrid) Clear() {
	for c := range g.cells {
		g.cells[c] = g.cells[c][:0]
	}
}

func (g *SpatialGrid) cellRange(pos vec.V2, radius float64) (minX, maxX, minY, maxY int) {
	minX = cellIndex(pos.X-radius, g.cellSize)
	maxX = cellIndex(pos.X+radius, g.cellSize)
	minY = cellIndex(pos.Y-radius, g.cellSize)
	maxY = cellIndex(pos.Y+radius, g.cellSize)
	return
}

func cellIndex(v, size float64) int {
	q := v / size
	i := int(q)
	if q < 0 && float64(i) != q {
		i--
	}
	return i
}

// Insert добавляет ссылку во все ячейки, которые накрывает круг (pos, radius).
func (g *SpatialGrid) Insert(ref Ref, pos vec.V2, radius float64) {
	minX, maxX, minY, maxY := g.cellRange(pos, radius)
	for cx := minX; cx <= maxX; cx++ {
		for cy := minY; cy <= maxY; cy++ {
			c := cell{cx, cy}
			g.cells[c] = append(g.cells[c], ref)
		}
	}
}

// QueryNear возвращает дедуплицированный список ссылок вблизи круга (pos, radius).
// Это только широкая фаза: вызывающий обязан выполнить точную проверку формы.
// Ложные срабатывания допустимы, пропуски — нет.
func (g *SpatialGrid) QueryNear(pos vec.V2, radius float64) []Ref {
	minX, maxX, minY, maxY := g.cellRange(pos, radius)
	var out []Ref
	seen := make(map[Ref]struct{})
	for cx := minX; cx <= maxX; cx++ {
		for cy := minY; cy <= maxY; cy++ {
			for _, ref := range g.cells[cell{cx, cy}] {
				if _, dup := seen[ref]; dup {
					continue
				}
				seen[ref] = struct{}{}
				out = append(out, ref)
			}
		}
	}
	return out
}

// CellSize возвращает размер ячейки сетки.
func (g *SpatialGrid) CellSize() float64 {
	return g.cellSize
}

// Stats возвращает количество занятых ячеек и суммарное число ссылок.
func (g *SpatialGrid) Stats() (cells, refs int) {
	for _, bucket := range g.cells {
		if len(bucket) > 0 {
			cells++
			refs += len(bucket)
		}
	}
	return
}
