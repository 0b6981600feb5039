package view

import (
	"testing"

	"tileplane/internal/geom"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func axisValues(min, max int) []int {
	var out []int
	for v := min; v < max; v++ {
		out = append(out, v)
	}
	return out
}

func TestVisibleTilesAtOrigin(t *testing.T) {
	r := VisibleTiles(Camera{}, 800, 600, 1024, 1)
	assert.Equal(t, []int{-1, 0, 1}, axisValues(r.MinX, r.MaxX))
	assert.Equal(t, []int{-1, 0, 1}, axisValues(r.MinY, r.MaxY))
	assert.Equal(t, 9, r.Count())
}

func TestVisibleTilesScrolled(t *testing.T) {
	cases := []struct {
		name   string
		cam    Camera
		margin int
		want   Range
	}{
		{"negative offset", Camera{ScrollX: -100, ScrollY: -2000}, 0, Range{MinX: -1, MinY: -2, MaxX: 1, MaxY: -1}},
		{"straddles boundary", Camera{ScrollX: 1000, ScrollY: 0}, 0, Range{MinX: 0, MinY: 0, MaxX: 2, MaxY: 1}},
		{"wide margin", Camera{ScrollX: 3 * 1024, ScrollY: -2 * 1024}, 2, Range{MinX: 1, MinY: -4, MaxX: 6, MaxY: 1}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, VisibleTiles(tc.cam, 800, 600, 1024, tc.margin))
		})
	}
}

func TestRangeEach(t *testing.T) {
	r := Range{MinX: -1, MinY: 0, MaxX: 1, MaxY: 2}
	var got [][2]int
	r.Each(func(x, y int) { got = append(got, [2]int{x, y}) })
	assert.Equal(t, [][2]int{{-1, 0}, {0, 0}, {-1, 1}, {0, 1}}, got)
	assert.True(t, r.Contains(0, 1))
	assert.False(t, r.Contains(1, 1))
	assert.Zero(t, Range{MinX: 2, MaxX: 2, MaxY: 5}.Count())
}

func TestDragPansWithCursor(t *testing.T) {
	var c Controller
	c.MouseDown(100, 100)
	require.True(t, c.Dragging())
	c.MouseMove(120, 130)
	assert.Equal(t, -20.0, c.ScrollX)
	assert.Equal(t, -30.0, c.ScrollY)

	c.MouseMove(125, 130)
	assert.Equal(t, -25.0, c.ScrollX)
	assert.Equal(t, -30.0, c.ScrollY)

	c.MouseUp()
	assert.False(t, c.Dragging())
	c.MouseMove(500, 500)
	assert.Equal(t, -25.0, c.ScrollX, "moves without a drag must not pan")
}

func TestScrollAddsDelta(t *testing.T) {
	var c Controller
	c.Scroll(3.5, -12)
	c.Scroll(1, 2)
	assert.Equal(t, 4.5, c.ScrollX)
	assert.Equal(t, -10.0, c.ScrollY)

	c.MouseDown(1, 1)
	c.Reset()
	assert.Equal(t, Camera{}, c.Camera)
	assert.False(t, c.Dragging())
}

func TestScreenMapping(t *testing.T) {
	cam := Camera{ScrollX: 50, ScrollY: -20}
	w := geom.Vec2{X: 60, Y: 0}
	s := cam.WorldToScreen(w)
	assert.Equal(t, geom.Vec2{X: 10, Y: 20}, s)
	assert.Equal(t, w, cam.ScreenToWorld(s))

	x, y := TileAt(-1, 2048, 1024)
	assert.Equal(t, -1, x)
	assert.Equal(t, 2, y)
}
