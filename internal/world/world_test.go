package world

import (
	"image/color"
	"sort"
	"testing"
	"time"

	"tileplane/internal/core"
	"tileplane/internal/geom"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func smallConfig() Config {
	cfg := DefaultConfig()
	cfg.TileSize = 256
	cfg.PointsPerTile = 48
	return cfg
}

func TestGetOrCreateIdempotent(t *testing.T) {
	cache := NewCache(smallConfig())
	first := cache.GetOrCreate(Coord{X: 3, Y: -2})

	points := append([]Point(nil), first.Points...)
	tris := append([][3]int(nil), first.Triangles...)
	colors := make(map[TriangleKey]color.RGBA, len(first.Colors))
	for k, v := range first.Colors {
		colors[k] = v
	}
	next := cache.NextID()

	second := cache.GetOrCreate(Coord{X: 3, Y: -2})
	require.Same(t, first, second)
	assert.Equal(t, points, second.Points)
	assert.Equal(t, tris, second.Triangles)
	assert.Len(t, second.Colors, len(colors))
	for k, v := range second.Colors {
		assert.Equal(t, colors[k], v)
	}
	assert.Equal(t, next, cache.NextID(), "cached lookups must not advance the counter")
	assert.Equal(t, 1, cache.Len())
}

func TestTilesDeterministicAcrossVisitOrder(t *testing.T) {
	target := Coord{X: -7, Y: 11}

	a := NewCache(smallConfig())
	ta := a.GetOrCreate(target)

	b := NewCache(smallConfig())
	b.GetOrCreate(Coord{X: 0, Y: 0})
	b.GetOrCreate(Coord{X: 1, Y: 0})
	tb := b.GetOrCreate(target)

	require.Len(t, tb.Points, len(ta.Points))
	for i := range ta.Points {
		assert.Equal(t, ta.Points[i].X, tb.Points[i].X, "point %d x", i)
		assert.Equal(t, ta.Points[i].Y, tb.Points[i].Y, "point %d y", i)
		assert.NotEqual(t, ta.Points[i].ID, tb.Points[i].ID, "identities follow visitation order")
	}
	assert.Equal(t, ta.Triangles, tb.Triangles)
	for _, tri := range ta.Triangles {
		assert.Equal(t, ta.Color(tri), tb.Color(tri))
	}
	assert.Equal(t, ta.Origin, tb.Origin)
}

func TestTileInvariants(t *testing.T) {
	cfg := smallConfig()
	cache := NewCache(cfg)
	coords := []Coord{{0, 0}, {1, 0}, {-1, -1}, {5, -3}}

	seen := map[uint64]bool{}
	var lastMax uint64
	for i, c := range coords {
		tile := cache.GetOrCreate(c)
		require.Len(t, tile.Points, cfg.PointsPerTile)
		require.NotEmpty(t, tile.Triangles)
		require.Len(t, tile.Colors, len(tile.Triangles))

		for j, p := range tile.Points {
			assert.GreaterOrEqual(t, p.X, 0.0)
			assert.Less(t, p.X, cfg.TileSize)
			assert.GreaterOrEqual(t, p.Y, 0.0)
			assert.Less(t, p.Y, cfg.TileSize)
			require.False(t, seen[p.ID], "identity %d reused", p.ID)
			seen[p.ID] = true
			if j > 0 {
				require.Equal(t, tile.Points[j-1].ID+1, p.ID)
			}
		}
		if i > 0 {
			require.Greater(t, tile.Points[0].ID, lastMax)
		}
		lastMax = tile.Points[len(tile.Points)-1].ID

		keys := map[TriangleKey]bool{}
		for _, tri := range tile.Triangles {
			k := tile.Key(tri)
			require.False(t, keys[k], "duplicate key %v", k)
			keys[k] = true
			assert.True(t, k[0] < k[1] && k[1] < k[2], "key %v not sorted", k)
			_, ok := tile.Colors[k]
			assert.True(t, ok)
		}

		assert.Equal(t, float64(c.X)*cfg.TileSize, tile.Origin.X)
		assert.Equal(t, float64(c.Y)*cfg.TileSize, tile.Origin.Y)
	}
	assert.Equal(t, uint64(len(coords)*cfg.PointsPerTile), cache.NextID())
}

// hullSize counts strict convex hull vertices with a monotone chain.
func hullSize(pts []Point) int {
	s := make([]geom.Vec2, len(pts))
	for i, p := range pts {
		s[i] = geom.Vec2{X: p.X, Y: p.Y}
	}
	sort.Slice(s, func(i, j int) bool {
		if s[i].X != s[j].X {
			return s[i].X < s[j].X
		}
		return s[i].Y < s[j].Y
	})
	size := 0
	for pass := 0; pass < 2; pass++ {
		var chain []geom.Vec2
		for _, p := range s {
			for len(chain) >= 2 && geom.EdgeFunction(chain[len(chain)-2], chain[len(chain)-1], p) <= 0 {
				chain = chain[:len(chain)-1]
			}
			chain = append(chain, p)
		}
		size += len(chain) - 1
		for i, j := 0, len(s)-1; i < j; i, j = i+1, j-1 {
			s[i], s[j] = s[j], s[i]
		}
	}
	return size
}

func TestDefaultTilesCoverTheirHull(t *testing.T) {
	cache := NewCache(DefaultConfig())
	for x := -1; x <= 1; x++ {
		for y := -1; y <= 1; y++ {
			tile := cache.GetOrCreate(Coord{X: x, Y: y})
			n := len(tile.Points)
			assert.Len(t, tile.Triangles, 2*n-2-hullSize(tile.Points), "tile (%d,%d)", x, y)
		}
	}
}

func TestKeyOfOrderIndependent(t *testing.T) {
	pts := []Point{{ID: 40}, {ID: 7}, {ID: 19}}
	want := TriangleKey{7, 19, 40}
	assert.Equal(t, want, KeyOf(pts, [3]int{0, 1, 2}))
	assert.Equal(t, want, KeyOf(pts, [3]int{2, 0, 1}))
	assert.Equal(t, want, KeyOf(pts, [3]int{1, 2, 0}))
}

func TestTileSeedPacksCoordinates(t *testing.T) {
	assert.Equal(t, uint64(3)<<32|uint64(0xFFFFFFFE), TileSeed(Coord{X: 3, Y: -2}))
	assert.NotEqual(t, TileSeed(Coord{X: 1, Y: 2}), TileSeed(Coord{X: 2, Y: 1}))
	assert.Equal(t, TileSeed(Coord{X: 9, Y: 9}), TileSeed(Coord{X: 9, Y: 9}))
}

func TestGeneratePointsCounter(t *testing.T) {
	pts, next := GeneratePoints(core.NewRNG(1, 0), 5, 10, 100)
	require.Len(t, pts, 5)
	assert.Equal(t, uint64(105), next)
	for i, p := range pts {
		assert.Equal(t, uint64(100+i), p.ID)
	}
}

func TestSeedChangesTiles(t *testing.T) {
	cfg := smallConfig()
	a := NewCache(cfg).GetOrCreate(Coord{})
	cfg.Seed = 99
	b := NewCache(cfg).GetOrCreate(Coord{})
	assert.NotEqual(t, a.Points[0].X, b.Points[0].X)
}

func TestPalettesDeterministic(t *testing.T) {
	for _, name := range PaletteNames() {
		pal, ok := PaletteByName(name)
		require.True(t, ok)
		r1, r2 := core.NewRNG(5, 0), core.NewRNG(5, 0)
		for i := 0; i < 16; i++ {
			c1, c2 := pal(r1), pal(r2)
			require.Equal(t, c1, c2, "palette %s draw %d", name, i)
			require.Equal(t, uint8(255), c1.A)
		}
	}

	gray, _ := PaletteByName(PaletteGray)
	rng := core.NewRNG(2, 0)
	for i := 0; i < 200; i++ {
		c := gray(rng)
		require.Equal(t, c.R, c.G)
		require.Equal(t, c.G, c.B)
		require.GreaterOrEqual(t, c.R, uint8(32))
		require.Less(t, c.R, uint8(180))
	}
}

func TestFromMap(t *testing.T) {
	c := FromMap(map[string]string{
		"tile_size": "512",
		"points":    "64",
		"seed":      "77",
		"palette":   "Hue",
	})
	assert.Equal(t, 512.0, c.TileSize)
	assert.Equal(t, 64, c.PointsPerTile)
	assert.Equal(t, uint64(77), c.Seed)
	assert.Equal(t, PaletteHue, c.Palette)

	bad := FromMap(map[string]string{"tile_size": "-4", "points": "2", "seed": "x", "palette": "neon"})
	assert.Equal(t, DefaultConfig().TileSize, bad.TileSize)
	assert.Equal(t, DefaultConfig().PointsPerTile, bad.PointsPerTile)
	assert.Equal(t, uint64(0), bad.Seed)
	assert.Equal(t, PaletteGray, bad.Palette)

	assert.Equal(t, DefaultConfig().PointsPerTile, FromMap(nil).PointsPerTile)
}

func TestCustomTriangulatorAndHook(t *testing.T) {
	cfg := smallConfig()
	cfg.Triangulate = func(pts []geom.Vec2) []int { return []int{0, 1, 2, 3} }
	cache := NewCache(cfg)

	var generated []Coord
	cache.OnGenerate = func(tile *Tile, elapsed time.Duration) {
		generated = append(generated, tile.Coord)
		assert.GreaterOrEqual(t, elapsed, time.Duration(0))
	}
	tile := cache.GetOrCreate(Coord{X: 2, Y: 2})
	cache.GetOrCreate(Coord{X: 2, Y: 2})

	assert.Equal(t, [][3]int{{0, 1, 2}}, tile.Triangles, "incomplete tail must be dropped")
	assert.Len(t, tile.Colors, 1)
	assert.Equal(t, []Coord{{2, 2}}, generated)

	_, ok := cache.Lookup(Coord{X: 9, Y: 9})
	assert.False(t, ok)
	assert.Equal(t, 1, cache.Len())
}

func TestNewCacheNormalizesConfig(t *testing.T) {
	c := NewCache(Config{})
	got := c.Config()
	assert.Equal(t, DefaultConfig().TileSize, got.TileSize)
	assert.Equal(t, DefaultConfig().PointsPerTile, got.PointsPerTile)
	assert.Equal(t, PaletteGray, got.Palette)
	assert.NotNil(t, got.Triangulate)
}
