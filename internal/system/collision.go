// internal/system/collision.go
package system

import (
	"sort"

	"go-survivors/internal/entity"
	"go-survivors/internal/types"
	"go-survivors/pkg/grid"
	"go-survivors/pkg/vec"
)

// queryMargin — запас широкой фазы поверх радиусов фигур.
const queryMargin = 8.0

// ProjectileHit — попадание снаряда игрока во врага.
type ProjectileHit struct {
	ProjectileID types.EntityID
	EnemyID      types.EntityID
}

// BombBlast — взрыв бомбы и все враги в радиусе поражения.
type BombBlast struct {
	BombID    types.EntityID
	Enemies   []types.EntityID
	HitPlayer bool
}

// FrameCollisions — типизированные результаты всех пяти категорий
// коллизий за один тик.
type FrameCollisions struct {
	ProjectileHits []ProjectileHit  // Снаряд игрока → враг
	ContactEnemies []types.EntityID // Враги, касающиеся игрока (все, не первый)
	ShotsOnPlayer  []types.EntityID // Вражеские снаряды, попавшие в игрока
	BombBlasts     []BombBlast      // Взорвавшиеся бомбы
	Pickups        []types.EntityID // Подобранные предметы
}

// CollisionSystem — широкая фаза на пространственной сетке плюс точные
// проверки. Сетка перестраивается целиком каждый тик: всё движется
// каждый кадр, инкрементальное обновление ничего не экономит.
type CollisionSystem struct {
	world *entity.World
	grid  *grid.SpatialGrid
}

func NewCollisionSystem(world *entity.World, cellSize float64) *CollisionSystem {
	return &CollisionSystem{
		world: world,
		grid:  grid.NewSpatialGrid(cellSize),
	}
}

// CheckAll перестраивает сетку и выполняет все категории проверок.
// Пустые наборы сущностей дают пустые результаты, это не ошибка.
func (s *CollisionSystem) CheckAll() FrameCollisions {
	s.rebuild()

	var out FrameCollisions
	out.ProjectileHits = s.checkProjectiles()
	out.ContactEnemies = s.checkEnemyContact()
	out.ShotsOnPlayer = s.checkEnemyShots()
	out.BombBlasts = s.checkBombs()
	out.Pickups = s.checkPickups()
	return out
}

func (s *CollisionSystem) rebuild() {
	s.grid.Clear()
	for id, e := range s.world.Enemies {
		s.grid.Insert(grid.Ref{Kind: grid.KindEnemy, ID: id}, e.Pos, e.Radius)
	}
	for id, p := range s.world.Pickups {
		s.grid.Insert(grid.Ref{Kind: grid.KindPickup, ID: id}, p.Pos, p.Radius)
	}
}

// checkProjectiles — снаряд игрока против врагов. Кандидаты сортируются
// по расстоянию до снаряда, так что при нескольких перекрывающихся
// врагах удар всегда принимает ближайший.
func (s *CollisionSystem) checkProjectiles() []ProjectileHit {
	var hits []ProjectileHit
	for pid, proj := range s.world.Projectiles {
		refs := s.grid.QueryNear(proj.Pos, proj.Radius+queryMargin)

		type candidate struct {
			id   types.EntityID
			dist float64
		}
		var cands []candidate
		for _, ref := range refs {
			if ref.Kind != grid.KindEnemy {
				continue
			}
			e, ok := s.world.Enemies[ref.ID]
			if !ok {
				continue
			}
			if proj.HasHit(ref.ID) {
				continue
			}
			d := proj.Pos.Dist(e.Pos)
			if d <= proj.Radius+e.Radius {
				cands = append(cands, candidate{id: ref.ID, dist: d})
			}
		}
		if len(cands) == 0 {
			continue
		}
		sort.Slice(cands, func(i, j int) bool {
			if cands[i].dist != cands[j].dist {
				return cands[i].dist < cands[j].dist
			}
			return cands[i].id < cands[j].id
		})
		// Один удар на снаряд за тик; ближайший враг принимает его.
		hits = append(hits, ProjectileHit{ProjectileID: pid, EnemyID: cands[0].id})
	}
	return hits
}

// checkEnemyContact возвращает всех врагов, касающихся игрока сейчас:
// контактный урон непрерывный, нужен весь набор, а не первый.
func (s *CollisionSystem) checkEnemyContact() []types.EntityID {
	pl := s.world.Player
	refs := s.grid.QueryNear(pl.Pos, pl.Radius+queryMargin)

	var touching []types.EntityID
	for _, ref := range refs {
		if ref.Kind != grid.KindEnemy {
			continue
		}
		e, ok := s.world.Enemies[ref.ID]
		if !ok {
			continue
		}
		if pl.Pos.Dist(e.Pos) <= pl.Radius+e.Radius {
			touching = append(touching, ref.ID)
		}
	}
	sort.Slice(touching, func(i, j int) bool { return touching[i] < touching[j] })
	return touching
}

// checkEnemyShots — вражеские снаряды против единственного игрока,
// сетка тут не нужна.
func (s *CollisionSystem) checkEnemyShots() []types.EntityID {
	pl := s.world.Player
	var hits []types.EntityID
	for id, shot := range s.world.EnemyProjectiles {
		if pl.Pos.Dist(shot.Pos) <= pl.Radius+shot.Radius {
			hits = append(hits, id)
		}
	}
	sort.Slice(hits, func(i, j int) bool { return hits[i] < hits[j] })
	return hits
}

// checkBombs собирает врагов в радиусе поражения каждой бомбы с
// истёкшим фитилём.
func (s *CollisionSystem) checkBombs() []BombBlast {
	pl := s.world.Player
	var blasts []BombBlast
	for id, b := range s.world.Bombs {
		if b.Fuse > 0 {
			continue
		}
		refs := s.grid.QueryNear(b.Pos, b.ExplosionRadius+queryMargin)
		blast := BombBlast{BombID: id}
		for _, ref := range refs {
			if ref.Kind != grid.KindEnemy {
				continue
			}
			e, ok := s.world.Enemies[ref.ID]
			if !ok {
				continue
			}
			if b.Pos.Dist(e.Pos) <= b.ExplosionRadius+e.Radius {
				blast.Enemies = append(blast.Enemies, ref.ID)
			}
		}
		sort.Slice(blast.Enemies, func(i, j int) bool { return blast.Enemies[i] < blast.Enemies[j] })
		blast.HitPlayer = b.Pos.Dist(pl.Pos) <= b.ExplosionRadius+pl.Radius
		blasts = append(blasts, blast)
	}
	sort.Slice(blasts, func(i, j int) bool { return blasts[i].BombID < blasts[j].BombID })
	return blasts
}

// checkPickups — предметы в радиусе подбора игрока.
func (s *CollisionSystem) checkPickups() []types.EntityID {
	pl := s.world.Player
	refs := s.grid.QueryNear(pl.Pos, pl.PickupRange+queryMargin)

	var collected []types.EntityID
	for _, ref := range refs {
		if ref.Kind != grid.KindPickup {
			continue
		}
		p, ok := s.world.Pickups[ref.ID]
		if !ok {
			continue
		}
		if pl.Pos.Dist(p.Pos) <= pl.Radius+p.Radius {
			collected = append(collected, ref.ID)
		}
	}
	sort.Slice(collected, func(i, j int) bool { return collected[i] < collected[j] })
	return collected
}

// EnemiesNearSegment — узкая фаза для лучевого оружия: враги, чей круг
// пересекает отрезок [from, to]. Широкая фаза сэмплирует отрезок по
// клеткам сетки.
func (s *CollisionSystem) EnemiesNearSegment(from, to vec.V2, width float64) []types.EntityID {
	seen := make(map[types.EntityID]struct{})
	var out []types.EntityID

	length := from.Dist(to)
	step := s.grid.CellSize()
	steps := int(length/step) + 1
	for i := 0; i <= steps; i++ {
		t := float64(i) / float64(steps)
		p := from.Add(to.Sub(from).Scale(t))
		for _, ref := range s.grid.QueryNear(p, step) {
			if ref.Kind != grid.KindEnemy {
				continue
			}
			if _, dup := seen[ref.ID]; dup {
				continue
			}
			seen[ref.ID] = struct{}{}
			e, ok := s.world.Enemies[ref.ID]
			if !ok {
				continue
			}
			if vec.DistToSegment(e.Pos, from, to) <= e.Radius+width {
				out = append(out, ref.ID)
			}
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
