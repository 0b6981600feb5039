package world

import (
	"image/color"
	"sort"

	"tileplane/internal/core"
	"tileplane/internal/geom"
)

// Coord identifies a tile by integer grid coordinates.
type Coord struct {
	X, Y int
}

// TriangleKey holds a triangle's three global point identities in ascending
// order. It is independent of vertex order and winding.
type TriangleKey [3]uint64

// KeyOf builds the key for the triangle tri over pts.
func KeyOf(pts []Point, tri [3]int) TriangleKey {
	ids := []uint64{pts[tri[0]].ID, pts[tri[1]].ID, pts[tri[2]].ID}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return TriangleKey{ids[0], ids[1], ids[2]}
}

// Tile is one generated cell of the world. It is immutable once created.
type Tile struct {
	Coord  Coord
	Origin geom.Vec2

	Points    []Point
	Triangles [][3]int
	Colors    map[TriangleKey]color.RGBA
}

// Key returns the key of the triangle tri.
func (t *Tile) Key(tri [3]int) TriangleKey { return KeyOf(t.Points, tri) }

// Color returns the color assigned to tri.
func (t *Tile) Color(tri [3]int) color.RGBA { return t.Colors[t.Key(tri)] }

// WorldPoint returns the world position of point i.
func (t *Tile) WorldPoint(i int) geom.Vec2 {
	p := t.Points[i]
	return geom.Vec2{X: t.Origin.X + p.X, Y: t.Origin.Y + p.Y}
}

// generateTile runs the full generation pass for c: points, triangulation and
// colors, all drawn from the tile's generator. next is the first global
// identity to assign; the advanced counter is returned.
func generateTile(c Coord, cfg Config, next uint64) (*Tile, uint64) {
	rng := core.NewRNG(TileSeed(c), cfg.Seed)

	pts, next := GeneratePoints(rng, cfg.PointsPerTile, cfg.TileSize, next)

	local := make([]geom.Vec2, len(pts))
	for i, p := range pts {
		local[i] = geom.Vec2{X: p.X, Y: p.Y}
	}
	tris := geom.Triples(cfg.Triangulate(local))

	pal, _ := PaletteByName(cfg.Palette)
	t := &Tile{
		Coord:     c,
		Origin:    geom.Vec2{X: float64(c.X) * cfg.TileSize, Y: float64(c.Y) * cfg.TileSize},
		Points:    pts,
		Triangles: tris,
		Colors:    AssignColors(rng, pts, tris, pal),
	}
	return t, next
}
