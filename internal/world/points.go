package world

import (
	"math"

	"tileplane/internal/core"
)

// Point is a tile-local position with a global identity unique within one
// cache.
type Point struct {
	X, Y float64
	ID   uint64
}

// TileSeed packs a tile coordinate into a 64-bit seed: X in the high 32 bits,
// Y in the low 32 bits.
func TileSeed(c Coord) uint64 {
	return uint64(uint32(c.X))<<32 | uint64(uint32(c.Y))
}

// GeneratePoints draws n points uniformly in [0, size) × [0, size) and assigns
// them the identities next, next+1, ..., next+n-1. It returns the points and
// the advanced counter.
func GeneratePoints(rng *core.RNG, n int, size float64, next uint64) ([]Point, uint64) {
	below := math.Nextafter(size, 0)
	pts := make([]Point, n)
	for i := range pts {
		x := math.Min(rng.Float64()*size, below)
		y := math.Min(rng.Float64()*size, below)
		pts[i] = Point{X: x, Y: y, ID: next}
		next++
	}
	return pts, next
}
