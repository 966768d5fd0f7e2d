// pkg/vec/vec.go
package vec

import "math"

// V2 is a 2D vector in world units.
type V2 struct {
	X, Y float64
}

func New(x, y float64) V2 {
	return V2{X: x, Y: y}
}

// FromAngle returns a unit vector pointing along the given angle in radians.
func FromAngle(rad float64) V2 {
	return V2{X: math.Cos(rad), Y: math.Sin(rad)}
}

func (v V2) Add(o V2) V2 {
	return V2{X: v.X + o.X, Y: v.Y + o.Y}
}

func (v V2) Sub(o V2) V2 {
	return V2{X: v.X - o.X, Y: v.Y - o.Y}
}

func (v V2) Scale(s float64) V2 {
	return V2{X: v.X * s, Y: v.Y * s}
}

func (v V2) Len() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y)
}

func (v V2) LenSq() float64 {
	return v.X*v.X + v.Y*v.Y
}

// Normalized returns a unit vector in the same direction.
// The zero vector is returned unchanged.
func (v V2) Normalized() V2 {
	l := v.Len()
	if l == 0 {
		return V2{}
	}
	return V2{X: v.X / l, Y: v.Y / l}
}

func (v V2) Dot(o V2) float64 {
	return v.X*o.X + v.Y*o.Y
}

// Perp returns the vector rotated a quarter turn counter-clockwise.
func (v V2) Perp() V2 {
	return V2{X: -v.Y, Y: v.X}
}

func (v V2) Dist(o V2) float64 {
	return v.Sub(o).Len()
}

func (v V2) Angle() float64 {
	return math.Atan2(v.Y, v.X)
}

// Rotate rotates the vector by the given angle in radians.
func (v V2) Rotate(rad float64) V2 {
	sin, cos := math.Sincos(rad)
	return V2{
		X: v.X*cos - v.Y*sin,
		Y: v.X*sin + v.Y*cos,
	}
}

// DistToSegment returns the distance from point p to the segment [a, b].
// Используется для узкой фазы коллизий лучевых снарядов.
func DistToSegment(p, a, b V2) float64 {
	ab := b.Sub(a)
	lenSq := ab.LenSq()
	if lenSq == 0 {
		return p.Dist(a)
	}
	t := p.Sub(a).Dot(ab) / lenSq
	if t < 0 {
		t = 0
	} else if t > 1 {
		t = 1
	}
	closest := a.Add(ab.Scale(t))
	return p.Dist(closest)
}
