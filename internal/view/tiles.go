package view

import "math"

// Range is a half-open rectangle of tile coordinates: MinX <= x < MaxX and
// MinY <= y < MaxY.
type Range struct {
	MinX, MinY int
	MaxX, MaxY int
}

// VisibleTiles returns the tiles covering a w×h viewport at cam, expanded by
// margin tiles on every side so neighbors are ready before they scroll in.
func VisibleTiles(cam Camera, w, h int, tileSize float64, margin int) Range {
	left := cam.ScrollX / tileSize
	top := cam.ScrollY / tileSize
	right := (cam.ScrollX + float64(w)) / tileSize
	bottom := (cam.ScrollY + float64(h)) / tileSize
	return Range{
		MinX: int(math.Floor(left)) - margin,
		MinY: int(math.Floor(top)) - margin,
		MaxX: int(math.Ceil(right)) + margin,
		MaxY: int(math.Ceil(bottom)) + margin,
	}
}

// Each calls fn for every tile in the range, row by row.
func (r Range) Each(fn func(x, y int)) {
	for y := r.MinY; y < r.MaxY; y++ {
		for x := r.MinX; x < r.MaxX; x++ {
			fn(x, y)
		}
	}
}

// Contains reports whether tile (x, y) is in the range.
func (r Range) Contains(x, y int) bool {
	return x >= r.MinX && x < r.MaxX && y >= r.MinY && y < r.MaxY
}

// Count returns the number of tiles in the range.
func (r Range) Count() int {
	if r.MaxX <= r.MinX || r.MaxY <= r.MinY {
		return 0
	}
	return (r.MaxX - r.MinX) * (r.MaxY - r.MinY)
}

// TileAt returns the coordinate of the tile containing world position
// (wx, wy).
func TileAt(wx, wy, tileSize float64) (int, int) {
	return int(math.Floor(wx / tileSize)), int(math.Floor(wy / tileSize))
}
