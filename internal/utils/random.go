// internal/utils/random.go
package utils

import (
	"math"

	"go-survivors/pkg/vec"
)

// RandomOffset возвращает случайную точку внутри круга заданного радиуса.
func RandomOffset(rng *PRNGService, radius float64) vec.V2 {
	angle := rng.Float64() * 2 * math.Pi
	dist := rng.Float64() * radius
	return vec.FromAngle(angle).Scale(dist)
}

// RandomOnRing возвращает точку на кольце [minDist, maxDist] вокруг центра.
func RandomOnRing(rng *PRNGService, center vec.V2, minDist, maxDist float64) vec.V2 {
	angle := rng.Float64() * 2 * math.Pi
	dist := rng.Range(minDist, maxDist)
	return center.Add(vec.FromAngle(angle).Scale(dist))
}
