package window

import (
	"bytes"
	"testing"

	"tileplane/internal/core"
	"tileplane/internal/world"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func smallConfig() Config {
	cfg := DefaultConfig()
	cfg.Seed = 7
	cfg.ViewMargin = 64
	cfg.SpawnPadding = 16
	cfg.Density = 0.002
	return cfg
}

func TestPointBudget(t *testing.T) {
	w := New(smallConfig())
	w.Tick(core.NewFrame(200, 150))

	width, height := 200.0+128, 150.0+128
	target := int(0.002 * width * height)
	assert.Len(t, w.Points(), target)
	assert.NotEmpty(t, w.Triangles())

	capped := smallConfig()
	capped.MaxPoints = 50
	c := New(capped)
	c.Tick(core.NewFrame(200, 150))
	assert.Len(t, c.Points(), 50)
}

func TestColorsPersistByKey(t *testing.T) {
	w := New(smallConfig())
	f := core.NewFrame(200, 150)
	w.Tick(f)
	before := make(map[world.TriangleKey][4]uint8, len(w.Colors()))
	for k, c := range w.Colors() {
		before[k] = [4]uint8{c.R, c.G, c.B, c.A}
	}

	w.OnScroll(10, 5)
	w.Tick(f)

	shared := 0
	for k, c := range w.Colors() {
		if old, ok := before[k]; ok {
			shared++
			assert.Equal(t, old, [4]uint8{c.R, c.G, c.B, c.A})
		}
	}
	assert.Greater(t, shared, 0)

	// The table holds exactly the live triangles.
	live := make(map[world.TriangleKey]bool)
	for _, tri := range w.Triangles() {
		live[world.KeyOf(w.Points(), tri)] = true
	}
	assert.Len(t, w.Colors(), len(live))
	for k := range w.Colors() {
		assert.True(t, live[k])
	}
}

func TestPointsStayInsideMargin(t *testing.T) {
	cfg := smallConfig()
	w := New(cfg)
	f := core.NewFrame(200, 150)
	w.Tick(f)
	w.OnScroll(-300, 400)
	w.Tick(f)

	for _, p := range w.Points() {
		require.GreaterOrEqual(t, p.X, -300-cfg.ViewMargin-cfg.SpawnPadding)
		require.LessOrEqual(t, p.X, -300+200+cfg.ViewMargin+cfg.SpawnPadding)
		require.GreaterOrEqual(t, p.Y, 400-cfg.ViewMargin-cfg.SpawnPadding)
		require.LessOrEqual(t, p.Y, 400+150+cfg.ViewMargin+cfg.SpawnPadding)
	}
}

func TestSeededRunsMatch(t *testing.T) {
	a, b := New(smallConfig()), New(smallConfig())
	fa, fb := core.NewFrame(120, 90), core.NewFrame(120, 90)
	for i := 0; i < 3; i++ {
		a.OnScroll(7, 3)
		b.OnScroll(7, 3)
		a.Tick(fa)
		b.Tick(fb)
	}
	assert.True(t, bytes.Equal(fa.Pix, fb.Pix))
}

func TestDragAndToggles(t *testing.T) {
	w := New(smallConfig())
	w.OnMouseDown(core.Mouse{X: 100, Y: 100, Down: true})
	w.OnMouseMove(core.Mouse{X: 120, Y: 130, Down: true})
	w.OnMouseUp(core.Mouse{X: 120, Y: 130})

	snap := w.Parameters()
	x, _ := snap.Lookup("scroll_x")
	y, _ := snap.Lookup("scroll_y")
	assert.Equal(t, "-20.0", x.Value)
	assert.Equal(t, "-30.0", y.Value)

	assert.True(t, w.SetBoolParameter("show_points", false))
	assert.False(t, w.SetBoolParameter("show_bounds", true))
	w.ResetView()
	x, _ = w.Parameters().Lookup("scroll_x")
	assert.Equal(t, "0.0", x.Value)
}

func TestFromMap(t *testing.T) {
	cfg := FromMap(map[string]string{
		"seed":       "9",
		"max_points": "2",
		"density":    "0.01",
		"palette":    "hue",
	})
	assert.Equal(t, uint64(9), cfg.Seed)
	assert.Equal(t, 5000, cfg.MaxPoints)
	assert.Equal(t, 0.01, cfg.Density)
	assert.Equal(t, world.PaletteHue, cfg.Palette)

	assert.Equal(t, world.PaletteEarth, FromMap(map[string]string{"palette": " Earth "}).Palette)
	assert.Equal(t, world.PaletteGray, FromMap(map[string]string{"palette": "plaid"}).Palette)

	_, ok := core.Apps()["window"]
	assert.True(t, ok)
}
