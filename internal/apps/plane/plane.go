// Package plane renders the tile-cached infinite triangulated plane.
package plane

import (
	"fmt"
	"log"
	"time"

	"tileplane/internal/core"
	"tileplane/internal/geom"
	"tileplane/internal/raster"
	"tileplane/internal/view"
	"tileplane/internal/world"
)

// Plane is the tile-cached app. Tiles are generated the first time they fall
// inside the padded viewport and are reused unchanged afterwards.
type Plane struct {
	opts  Options
	cache *world.Cache
	ctl   view.Controller

	cursor  geom.Vec2
	visible []*world.Tile
	scratch []geom.Vec2

	lastRange     view.Range
	lastTriangles int
}

// New creates a plane app.
func New(opts Options) *Plane {
	if opts.Margin < 0 {
		opts.Margin = 0
	}
	if opts.LineThickness < 1 {
		opts.LineThickness = 1
	}
	if opts.PointRadius < 0 {
		opts.PointRadius = 0
	}
	return &Plane{opts: opts, cache: world.NewCache(opts.World)}
}

// Name returns the registry name.
func (p *Plane) Name() string { return "plane" }

// Options returns the effective options.
func (p *Plane) Options() Options { return p.opts }

// Cache exposes the tile cache.
func (p *Plane) Cache() *world.Cache { return p.cache }

// Camera returns the current scroll offset.
func (p *Plane) Camera() view.Camera { return p.ctl.Camera }

// ResetView moves the camera back to the origin.
func (p *Plane) ResetView() { p.ctl.Reset() }

// SetLogger reports each tile generation through l.
func (p *Plane) SetLogger(l *log.Logger) {
	if l == nil {
		p.cache.OnGenerate = nil
		return
	}
	p.cache.OnGenerate = func(t *world.Tile, elapsed time.Duration) {
		l.Printf("tile (%d,%d) generated: %d points, %d triangles in %s",
			t.Coord.X, t.Coord.Y, len(t.Points), len(t.Triangles), elapsed)
	}
}

// Tick renders one frame into f.
func (p *Plane) Tick(f *core.Frame) {
	c := raster.New(f.Pix, f.W, f.H)
	c.Clear(p.opts.Background)

	cfg := p.cache.Config()
	cam := p.ctl.Camera
	r := view.VisibleTiles(cam, c.W, c.H, cfg.TileSize, p.opts.Margin)

	p.visible = p.visible[:0]
	r.Each(func(x, y int) {
		p.visible = append(p.visible, p.cache.GetOrCreate(world.Coord{X: x, Y: y}))
	})

	p.lastRange = r
	p.lastTriangles = 0
	for _, t := range p.visible {
		pts := p.project(t, cam)
		for _, tri := range t.Triangles {
			c.FillTriangle(pts[tri[0]], pts[tri[1]], pts[tri[2]], t.Color(tri))
		}
		p.lastTriangles += len(t.Triangles)
	}
	if p.opts.ShowEdges {
		for _, t := range p.visible {
			pts := p.project(t, cam)
			for _, tri := range t.Triangles {
				a, b, v := pts[tri[0]], pts[tri[1]], pts[tri[2]]
				c.Line(a, b, p.opts.LineThickness, p.opts.LineColor)
				c.Line(b, v, p.opts.LineThickness, p.opts.LineColor)
				c.Line(v, a, p.opts.LineThickness, p.opts.LineColor)
			}
		}
	}
	if p.opts.ShowPoints {
		for _, t := range p.visible {
			for _, s := range p.project(t, cam) {
				c.Disc(s, p.opts.PointRadius, p.opts.PointColor)
			}
		}
	}
	if p.opts.ShowBounds {
		for _, t := range p.visible {
			min := cam.WorldToScreen(t.Origin)
			max := min.Add(geom.Vec2{X: cfg.TileSize - 1, Y: cfg.TileSize - 1})
			c.Rect(min, max, 1, p.opts.BoundColor)
		}
	}
}

// project maps the tile's points to screen space. The returned slice is
// reused by the next call.
func (p *Plane) project(t *world.Tile, cam view.Camera) []geom.Vec2 {
	if cap(p.scratch) < len(t.Points) {
		p.scratch = make([]geom.Vec2, len(t.Points))
	}
	p.scratch = p.scratch[:len(t.Points)]
	for i := range t.Points {
		p.scratch[i] = cam.WorldToScreen(t.WorldPoint(i))
	}
	return p.scratch
}

// OnMouseDown starts a drag at the cursor.
func (p *Plane) OnMouseDown(m core.Mouse) {
	p.cursor = geom.Vec2{X: m.X, Y: m.Y}
	p.ctl.MouseDown(m.X, m.Y)
}

// OnMouseUp ends the drag.
func (p *Plane) OnMouseUp(m core.Mouse) {
	p.cursor = geom.Vec2{X: m.X, Y: m.Y}
	p.ctl.MouseUp()
}

// OnMouseMove tracks the cursor and pans while dragging.
func (p *Plane) OnMouseMove(m core.Mouse) {
	p.cursor = geom.Vec2{X: m.X, Y: m.Y}
	p.ctl.MouseMove(m.X, m.Y)
}

// OnScroll pans by the wheel delta.
func (p *Plane) OnScroll(dx, dy float64) { p.ctl.Scroll(dx, dy) }

// Parameters returns the HUD snapshot.
func (p *Plane) Parameters() core.ParameterSnapshot {
	cfg := p.cache.Config()
	cam := p.ctl.Camera
	w := cam.ScreenToWorld(p.cursor)
	tx, ty := view.TileAt(w.X, w.Y, cfg.TileSize)
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{
		{Name: "Camera", Params: []core.Parameter{
			core.FloatParam("scroll_x", "Scroll X", cam.ScrollX),
			core.FloatParam("scroll_y", "Scroll Y", cam.ScrollY),
			core.StringParam("cursor_tile", "Cursor tile", fmt.Sprintf("(%d,%d)", tx, ty)),
			core.BoolParam("dragging", "Dragging", p.ctl.Dragging()),
		}},
		{Name: "World", Params: []core.Parameter{
			core.FloatParam("tile_size", "Tile size", cfg.TileSize),
			core.IntParam("points", "Points per tile", cfg.PointsPerTile),
			core.Uint64Param("seed", "Seed", cfg.Seed),
			core.StringParam("palette", "Palette", cfg.Palette),
			core.IntParam("tiles_cached", "Tiles cached", p.cache.Len()),
			core.Uint64Param("next_id", "Next point ID", p.cache.NextID()),
		}},
		{Name: "Frame", Params: []core.Parameter{
			core.IntParam("tiles_visible", "Tiles visible", p.lastRange.Count()),
			core.IntParam("triangles", "Triangles drawn", p.lastTriangles),
		}},
		{Name: "Display", Params: []core.Parameter{
			core.BoolParam("show_edges", "Edges [E]", p.opts.ShowEdges),
			core.BoolParam("show_points", "Points [P]", p.opts.ShowPoints),
			core.BoolParam("show_bounds", "Tile bounds [B]", p.opts.ShowBounds),
		}},
	}}
}

// SetBoolParameter flips one of the display toggles.
func (p *Plane) SetBoolParameter(key string, value bool) bool {
	switch key {
	case "show_edges":
		p.opts.ShowEdges = value
	case "show_points":
		p.opts.ShowPoints = value
	case "show_bounds":
		p.opts.ShowBounds = value
	default:
		return false
	}
	return true
}

func init() {
	core.Register("plane", func(cfg map[string]string) core.App {
		return New(FromMap(cfg))
	})
}
