package grid

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-survivors/internal/types"
	"go-survivors/pkg/vec"
)

func TestQueryNearEmptyGrid(t *testing.T) {
	g := NewSpatialGrid(100)
	assert.Empty(t, g.QueryNear(vec.New(0, 0), 500))
}

func TestInsertAndQuerySameCell(t *testing.T) {
	g := NewSpatialGrid(100)
	ref := Ref{Kind: KindEnemy, ID: 1}
	g.Insert(ref, vec.New(50, 50), 10)

	got := g.QueryNear(vec.New(60, 60), 20)
	require.Len(t, got, 1)
	assert.Equal(t, ref, got[0])
}

func TestLargeEntitySpansCellsButDedupes(t *testing.T) {
	g := NewSpatialGrid(100)
	ref := Ref{Kind: KindEnemy, ID: 7}
	// Радиус 150 накрывает ячейки от -2 до 1 по обеим осям.
	g.Insert(ref, vec.New(0, 0), 150)

	got := g.QueryNear(vec.New(0, 0), 300)
	require.Len(t, got, 1, "redundant cell membership must be deduplicated on query")
}

func TestNegativeCoordinatesUseFloorSemantics(t *testing.T) {
	g := NewSpatialGrid(100)
	ref := Ref{Kind: KindPickup, ID: 3}
	g.Insert(ref, vec.New(-50, -50), 5)

	got := g.QueryNear(vec.New(-60, -40), 20)
	require.Len(t, got, 1)

	// Запрос далеко в положительном квадранте сущность не видит.
	assert.Empty(t, g.QueryNear(vec.New(250, 250), 20))
}

// Широкая фаза обязана возвращать надмножество точных пересечений:
// ложные пропуски недопустимы.
func TestQueryIsSupersetOfExactIntersections(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	g := NewSpatialGrid(100)

	type ent struct {
		ref Ref
		pos vec.V2
		r   float64
	}
	ents := make([]ent, 0, 200)
	for i := 0; i < 200; i++ {
		e := ent{
			ref: Ref{Kind: KindEnemy, ID: types.EntityID(i + 1)},
			pos: vec.New(rng.Float64()*2000-1000, rng.Float64()*2000-1000),
			r:   1 + rng.Float64()*40,
		}
		g.Insert(e.ref, e.pos, e.r)
		ents = append(ents, e)
	}

	for trial := 0; trial < 50; trial++ {
		qPos := vec.New(rng.Float64()*2000-1000, rng.Float64()*2000-1000)
		qR := 10 + rng.Float64()*150

		found := make(map[Ref]bool)
		for _, ref := range g.QueryNear(qPos, qR) {
			found[ref] = true
		}

		for _, e := range ents {
			if e.pos.Dist(qPos) <= e.r+qR {
				assert.True(t, found[e.ref],
					"entity %d intersects query circle but was not returned", e.ref.ID)
			}
		}
	}
}

func TestClearRemovesEverything(t *testing.T) {
	g := NewSpatialGrid(100)
	for i := 0; i < 10; i++ {
		g.Insert(Ref{Kind: KindEnemy, ID: types.EntityID(i)}, vec.New(float64(i)*30, 0), 10)
	}
	g.Clear()
	assert.Empty(t, g.QueryNear(vec.New(0, 0), 1000))

	_, refs := g.Stats()
	assert.Zero(t, refs)
}

func TestNewSpatialGridRejectsBadCellSize(t *testing.T) {
	assert.Panics(t, func() { NewSpatialGrid(0) })
	assert.Panics(t, func() { NewSpatialGrid(-10) })
}
