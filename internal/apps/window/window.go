// Package window implements the single-window strategy: one point set that
// follows the viewport and is re-triangulated every tick.
package window

import (
	"image/color"
	"strconv"
	"strings"

	"tileplane/internal/core"
	"tileplane/internal/geom"
	"tileplane/internal/raster"
	"tileplane/internal/view"
	"tileplane/internal/world"
)

// Config holds the window app parameters.
type Config struct {
	Seed    uint64
	Palette string

	ViewMargin   float64
	SpawnPadding float64
	Density      float64
	MaxPoints    int

	LineThickness int
	PointRadius   int
	ShowEdges     bool
	ShowPoints    bool
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{
		Palette:       world.PaletteGray,
		ViewMargin:    512,
		SpawnPadding:  128,
		Density:       0.00015,
		MaxPoints:     5000,
		LineThickness: 1,
		PointRadius:   5,
		ShowEdges:     true,
		ShowPoints:    true,
	}
}

// FromMap populates the config from a string map, keeping defaults for
// invalid values.
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseUint(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}
	if v, ok := cfg["palette"]; ok {
		name := strings.ToLower(strings.TrimSpace(v))
		if _, known := world.PaletteByName(name); known {
			c.Palette = name
		}
	}
	if v, ok := cfg["view_margin"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 {
			c.ViewMargin = parsed
		}
	}
	if v, ok := cfg["spawn_padding"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 {
			c.SpawnPadding = parsed
		}
	}
	if v, ok := cfg["density"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed > 0 {
			c.Density = parsed
		}
	}
	if v, ok := cfg["max_points"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 3 {
			c.MaxPoints = parsed
		}
	}
	if v, ok := cfg["line_thickness"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 1 {
			c.LineThickness = parsed
		}
	}
	if v, ok := cfg["point_radius"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			c.PointRadius = parsed
		}
	}
	if v, ok := cfg["show_edges"]; ok {
		if parsed, err := strconv.ParseBool(v); err == nil {
			c.ShowEdges = parsed
		}
	}
	if v, ok := cfg["show_points"]; ok {
		if parsed, err := strconv.ParseBool(v); err == nil {
			c.ShowPoints = parsed
		}
	}
	return c
}

var (
	background = color.RGBA{A: 255}
	lineColor  = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	pointColor = color.RGBA{R: 214, G: 34, B: 64, A: 255}
)

// Window is the single-window app.
type Window struct {
	cfg     Config
	rng     *core.RNG
	palette world.Palette
	ctl     view.Controller

	points    []world.Point
	triangles [][3]int
	colors    map[world.TriangleKey]color.RGBA
	next      uint64
	scratch   []geom.Vec2
}

// New creates a window app.
func New(cfg Config) *Window {
	pal, ok := world.PaletteByName(cfg.Palette)
	if !ok {
		cfg.Palette = world.PaletteGray
		pal, _ = world.PaletteByName(cfg.Palette)
	}
	return &Window{
		cfg:     cfg,
		rng:     core.NewRNG(cfg.Seed, 0x77696e646f77),
		palette: pal,
		colors:  make(map[world.TriangleKey]color.RGBA),
	}
}

// Name returns the registry name.
func (w *Window) Name() string { return "window" }

// Points returns the live point set in world coordinates.
func (w *Window) Points() []world.Point { return w.points }

// Triangles returns the current triangulation as point index triples.
func (w *Window) Triangles() [][3]int { return w.triangles }

// Colors returns the color table keyed by sorted point identities.
func (w *Window) Colors() map[world.TriangleKey]color.RGBA { return w.colors }

// ResetView moves the camera back to the origin.
func (w *Window) ResetView() { w.ctl.Reset() }

// regenerate drops points that left the padded view, tops the set back up
// and re-triangulates. Colors survive for triangles whose three points
// survive.
func (w *Window) regenerate(width, height float64) {
	cam := w.ctl.Camera
	left := cam.ScrollX - w.cfg.ViewMargin
	top := cam.ScrollY - w.cfg.ViewMargin
	right := cam.ScrollX + width + w.cfg.ViewMargin
	bottom := cam.ScrollY + height + w.cfg.ViewMargin

	kept := w.points[:0]
	for _, p := range w.points {
		if p.X >= left && p.X <= right && p.Y >= top && p.Y <= bottom {
			kept = append(kept, p)
		}
	}
	w.points = kept

	target := int(w.cfg.Density * (right - left) * (bottom - top))
	pad := w.cfg.SpawnPadding
	for len(w.points) < target && len(w.points) < w.cfg.MaxPoints {
		w.points = append(w.points, world.Point{
			X:  w.rng.Range(left-pad, right+pad),
			Y:  w.rng.Range(top-pad, bottom+pad),
			ID: w.next,
		})
		w.next++
	}

	pos := make([]geom.Vec2, len(w.points))
	for i, p := range w.points {
		pos[i] = geom.Vec2{X: p.X, Y: p.Y}
	}
	w.triangles = geom.Triples(geom.Triangulate(pos))

	colors := make(map[world.TriangleKey]color.RGBA, len(w.triangles))
	for _, tri := range w.triangles {
		key := world.KeyOf(w.points, tri)
		if c, ok := w.colors[key]; ok {
			colors[key] = c
			continue
		}
		colors[key] = w.palette(w.rng)
	}
	w.colors = colors
}

// Tick renders one frame into f.
func (w *Window) Tick(f *core.Frame) {
	c := raster.New(f.Pix, f.W, f.H)
	c.Clear(background)
	w.regenerate(float64(c.W), float64(c.H))

	cam := w.ctl.Camera
	if cap(w.scratch) < len(w.points) {
		w.scratch = make([]geom.Vec2, len(w.points))
	}
	screen := w.scratch[:len(w.points)]
	for i, p := range w.points {
		screen[i] = cam.WorldToScreen(geom.Vec2{X: p.X, Y: p.Y})
	}

	for _, tri := range w.triangles {
		a, b, v := screen[tri[0]], screen[tri[1]], screen[tri[2]]
		c.FillTriangle(a, b, v, w.colors[world.KeyOf(w.points, tri)])
		if w.cfg.ShowEdges {
			c.Line(a, b, w.cfg.LineThickness, lineColor)
			c.Line(b, v, w.cfg.LineThickness, lineColor)
			c.Line(v, a, w.cfg.LineThickness, lineColor)
		}
	}
	if w.cfg.ShowPoints {
		for _, s := range screen {
			c.Disc(s, w.cfg.PointRadius, pointColor)
		}
	}
}

// OnMouseDown starts a drag.
func (w *Window) OnMouseDown(m core.Mouse) { w.ctl.MouseDown(m.X, m.Y) }

// OnMouseUp ends the drag.
func (w *Window) OnMouseUp(core.Mouse) { w.ctl.MouseUp() }

// OnMouseMove pans while dragging.
func (w *Window) OnMouseMove(m core.Mouse) { w.ctl.MouseMove(m.X, m.Y) }

// OnScroll pans by the wheel delta.
func (w *Window) OnScroll(dx, dy float64) { w.ctl.Scroll(dx, dy) }

// Parameters returns the HUD snapshot.
func (w *Window) Parameters() core.ParameterSnapshot {
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{
		{Name: "Camera", Params: []core.Parameter{
			core.FloatParam("scroll_x", "Scroll X", w.ctl.ScrollX),
			core.FloatParam("scroll_y", "Scroll Y", w.ctl.ScrollY),
		}},
		{Name: "Points", Params: []core.Parameter{
			core.IntParam("points", "Live points", len(w.points)),
			core.IntParam("triangles", "Triangles", len(w.triangles)),
			core.Uint64Param("next_id", "Next point ID", w.next),
			core.IntParam("max_points", "Max points", w.cfg.MaxPoints),
		}},
		{Name: "Display", Params: []core.Parameter{
			core.BoolParam("show_edges", "Edges [E]", w.cfg.ShowEdges),
			core.BoolParam("show_points", "Points [P]", w.cfg.ShowPoints),
		}},
	}}
}

// SetBoolParameter flips one of the display toggles.
func (w *Window) SetBoolParameter(key string, value bool) bool {
	switch key {
	case "show_edges":
		w.cfg.ShowEdges = value
	case "show_points":
		w.cfg.ShowPoints = value
	default:
		return false
	}
	return true
}

func init() {
	core.Register("window", func(cfg map[string]string) core.App {
		return New(FromMap(cfg))
	})
}
