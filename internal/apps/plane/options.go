package plane

import (
	"image/color"
	"strconv"
	"strings"

	"tileplane/internal/world"

	"github.com/lucasb-eyer/go-colorful"
)

// Options controls world generation and drawing of the plane.
type Options struct {
	World world.Config

	// Margin is the number of extra tiles kept ready on every side of the
	// viewport.
	Margin int

	LineThickness int
	PointRadius   int

	Background color.RGBA
	LineColor  color.RGBA
	PointColor color.RGBA
	BoundColor color.RGBA

	ShowEdges  bool
	ShowPoints bool
	ShowBounds bool
}

// DefaultOptions returns the standard configuration.
func DefaultOptions() Options {
	return Options{
		World:         world.DefaultConfig(),
		Margin:        1,
		LineThickness: 1,
		PointRadius:   3,
		Background:    color.RGBA{A: 255},
		LineColor:     color.RGBA{R: 255, G: 255, B: 255, A: 255},
		PointColor:    color.RGBA{R: 214, G: 34, B: 64, A: 255},
		BoundColor:    color.RGBA{R: 100, G: 100, B: 200, A: 255},
		ShowEdges:     true,
		ShowPoints:    true,
	}
}

// FromMap populates Options from a string map. World keys are handled by
// world.FromMap; unparsable values keep their defaults.
func FromMap(cfg map[string]string) Options {
	o := DefaultOptions()
	o.World = world.FromMap(cfg)
	if cfg == nil {
		return o
	}
	if v, ok := cfg["margin"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			o.Margin = parsed
		}
	}
	if v, ok := cfg["line_thickness"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 1 {
			o.LineThickness = parsed
		}
	}
	if v, ok := cfg["point_radius"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			o.PointRadius = parsed
		}
	}
	parseBool(cfg, "show_edges", &o.ShowEdges)
	parseBool(cfg, "show_points", &o.ShowPoints)
	parseBool(cfg, "show_bounds", &o.ShowBounds)
	parseColor(cfg, "background", &o.Background)
	parseColor(cfg, "line_color", &o.LineColor)
	parseColor(cfg, "point_color", &o.PointColor)
	parseColor(cfg, "bound_color", &o.BoundColor)
	return o
}

func parseBool(cfg map[string]string, key string, dst *bool) {
	v, ok := cfg[key]
	if !ok {
		return
	}
	if parsed, err := strconv.ParseBool(v); err == nil {
		*dst = parsed
	}
}

// parseColor accepts "#rrggbb" hex colors.
func parseColor(cfg map[string]string, key string, dst *color.RGBA) {
	v, ok := cfg[key]
	if !ok {
		return
	}
	v = strings.TrimSpace(v)
	if !strings.HasPrefix(v, "#") {
		v = "#" + v
	}
	c, err := colorful.Hex(v)
	if err != nil {
		return
	}
	r, g, b := c.RGB255()
	*dst = color.RGBA{R: r, G: g, B: b, A: 255}
}
