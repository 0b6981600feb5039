package world

import (
	"image/color"
	"sort"

	"tileplane/internal/core"

	"github.com/lucasb-eyer/go-colorful"
)

// Palette names accepted by Config.Palette.
const (
	PaletteGray  = "gray"
	PaletteHue   = "hue"
	PaletteEarth = "earth"
)

// Palette draws one triangle color from the tile's generator. Each palette
// consumes a fixed number of draws so tile streams stay reproducible.
type Palette func(rng *core.RNG) color.RGBA

var (
	earthLow  = colorful.Color{R: 0.16, G: 0.24, B: 0.14}
	earthHigh = colorful.Color{R: 0.78, G: 0.70, B: 0.52}
)

var palettes = map[string]Palette{
	PaletteGray: func(rng *core.RNG) color.RGBA {
		shade := uint8(rng.IntRange(32, 180))
		return color.RGBA{R: shade, G: shade, B: shade, A: 255}
	},
	PaletteHue: func(rng *core.RNG) color.RGBA {
		h := rng.Range(0, 360)
		v := rng.Range(0.45, 0.85)
		return toRGBA(colorful.Hsv(h, 0.55, v))
	},
	PaletteEarth: func(rng *core.RNG) color.RGBA {
		return toRGBA(earthLow.BlendLab(earthHigh, rng.Float64()))
	},
}

// PaletteByName returns the named palette.
func PaletteByName(name string) (Palette, bool) {
	p, ok := palettes[name]
	return p, ok
}

// PaletteNames lists the known palettes in sorted order.
func PaletteNames() []string {
	names := make([]string, 0, len(palettes))
	for name := range palettes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func toRGBA(c colorful.Color) color.RGBA {
	r, g, b := c.Clamped().RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 255}
}

// AssignColors draws one color per triangle, in triangle order, and stores it
// under the triangle's key.
func AssignColors(rng *core.RNG, pts []Point, tris [][3]int, pal Palette) map[TriangleKey]color.RGBA {
	colors := make(map[TriangleKey]color.RGBA, len(tris))
	for _, tri := range tris {
		colors[KeyOf(pts, tri)] = pal(rng)
	}
	return colors
}
