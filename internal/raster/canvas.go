// Package raster draws filled triangles, lines and discs into a row-major
// RGBA8 pixel buffer. Every routine clips silently: geometry that is partly or
// entirely outside the buffer, or not finite, never writes out of bounds.
package raster

import (
	"image"
	"image/color"
	"math"

	"tileplane/internal/geom"
)

// Canvas is a drawing surface over a caller-owned RGBA8 buffer.
type Canvas struct {
	Pix  []byte
	W, H int
}

// New wraps pix as a w*h canvas. The buffer must hold at least w*h*4 bytes;
// smaller buffers shrink the drawable height.
func New(pix []byte, w, h int) *Canvas {
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	if w > 0 && len(pix) < w*h*4 {
		h = len(pix) / (w * 4)
	}
	return &Canvas{Pix: pix, W: w, H: h}
}

// Image exposes the canvas as an *image.RGBA sharing the same bytes.
func (c *Canvas) Image() *image.RGBA {
	return &image.RGBA{Pix: c.Pix[:c.W*c.H*4], Stride: c.W * 4, Rect: image.Rect(0, 0, c.W, c.H)}
}

// Clear fills every pixel with col.
func (c *Canvas) Clear(col color.RGBA) {
	buf := c.Pix[:c.W*c.H*4]
	for i := 0; i < len(buf); i += 4 {
		buf[i+0] = col.R
		buf[i+1] = col.G
		buf[i+2] = col.B
		buf[i+3] = col.A
	}
}

// Set writes a single pixel. Writes outside the canvas are dropped.
func (c *Canvas) Set(x, y int, col color.RGBA) {
	if x < 0 || y < 0 || x >= c.W || y >= c.H {
		return
	}
	i := (y*c.W + x) * 4
	c.Pix[i+0] = col.R
	c.Pix[i+1] = col.G
	c.Pix[i+2] = col.B
	c.Pix[i+3] = col.A
}

// At returns the pixel at (x, y), or transparent black outside the canvas.
func (c *Canvas) At(x, y int) color.RGBA {
	if x < 0 || y < 0 || x >= c.W || y >= c.H {
		return color.RGBA{}
	}
	i := (y*c.W + x) * 4
	return color.RGBA{R: c.Pix[i], G: c.Pix[i+1], B: c.Pix[i+2], A: c.Pix[i+3]}
}

// clampSpan converts the float range [lo, hi] to integer pixel indices inside
// [0, limit). ok is false when the range misses the canvas.
func clampSpan(lo, hi float64, limit int) (int, int, bool) {
	if limit <= 0 || math.IsNaN(lo) || math.IsNaN(hi) {
		return 0, 0, false
	}
	if hi < 0 || lo > float64(limit-1) {
		return 0, 0, false
	}
	lo = math.Max(lo, 0)
	hi = math.Min(hi, float64(limit-1))
	return int(lo), int(hi), true
}

// FillTriangle fills every pixel whose center lies inside or on the edge of
// the triangle (a, b, c). Zero-area and non-finite triangles are skipped.
func (c *Canvas) FillTriangle(a, b, v geom.Vec2, col color.RGBA) {
	if !a.Finite() || !b.Finite() || !v.Finite() {
		return
	}

	minX, maxX, ok := clampSpan(math.Floor(math.Min(a.X, math.Min(b.X, v.X))), math.Ceil(math.Max(a.X, math.Max(b.X, v.X))), c.W)
	if !ok {
		return
	}
	minY, maxY, ok := clampSpan(math.Floor(math.Min(a.Y, math.Min(b.Y, v.Y))), math.Ceil(math.Max(a.Y, math.Max(b.Y, v.Y))), c.H)
	if !ok {
		return
	}

	// Edge functions of huge triangles overflow; evaluate them in a frame
	// scaled by a power of two so the signs are unchanged.
	s := 1.0
	area := geom.EdgeFunction(a, b, v)
	if math.IsInf(area, 0) {
		s = fitScale(a, b, v)
		a, b, v = scaled(a, s), scaled(b, s), scaled(v, s)
		area = geom.EdgeFunction(a, b, v)
	}
	if area == 0 || math.IsNaN(area) || math.IsInf(area, 0) {
		return
	}
	if area < 0 {
		b, v = v, b
	}

	for y := minY; y <= maxY; y++ {
		py := (float64(y) + 0.5) * s
		row := y * c.W * 4
		for x := minX; x <= maxX; x++ {
			p := geom.Vec2{X: (float64(x) + 0.5) * s, Y: py}
			w0 := geom.EdgeFunction(b, v, p)
			w1 := geom.EdgeFunction(v, a, p)
			w2 := geom.EdgeFunction(a, b, p)
			if !(w0 >= 0 && w1 >= 0 && w2 >= 0) {
				continue
			}
			i := row + x*4
			c.Pix[i+0] = col.R
			c.Pix[i+1] = col.G
			c.Pix[i+2] = col.B
			c.Pix[i+3] = col.A
		}
	}
}

// fitScale returns the power of two that maps the largest coordinate of the
// points into [0.5, 1).
func fitScale(pts ...geom.Vec2) float64 {
	m := 0.0
	for _, p := range pts {
		m = math.Max(m, math.Max(math.Abs(p.X), math.Abs(p.Y)))
	}
	_, exp := math.Frexp(m)
	return math.Ldexp(1, -exp)
}

func scaled(p geom.Vec2, s float64) geom.Vec2 {
	return geom.Vec2{X: p.X * s, Y: p.Y * s}
}

// Disc fills the disc of the given pixel radius around center.
func (c *Canvas) Disc(center geom.Vec2, radius int, col color.RGBA) {
	if !center.Finite() || radius < 0 {
		return
	}
	r := float64(radius)
	minX, maxX, ok := clampSpan(math.Round(center.X)-r, math.Round(center.X)+r, c.W)
	if !ok {
		return
	}
	minY, maxY, ok := clampSpan(math.Round(center.Y)-r, math.Round(center.Y)+r, c.H)
	if !ok {
		return
	}
	cx, cy := int(math.Round(center.X)), int(math.Round(center.Y))
	r2 := radius * radius
	for y := minY; y <= maxY; y++ {
		dy := y - cy
		for x := minX; x <= maxX; x++ {
			dx := x - cx
			if dx*dx+dy*dy <= r2 {
				c.Set(x, y, col)
			}
		}
	}
}
