package raster

import (
	"image/color"
	"math"

	"tileplane/internal/geom"
)

// Line draws the segment a→b. A thickness above one stamps the same line at
// integer offsets in -(t/2)..t/2 on both axes.
func (c *Canvas) Line(a, b geom.Vec2, thickness int, col color.RGBA) {
	if thickness <= 1 {
		c.thinLine(a, b, col)
		return
	}
	half := thickness / 2
	for dx := -half; dx <= half; dx++ {
		for dy := -half; dy <= half; dy++ {
			off := geom.Vec2{X: float64(dx), Y: float64(dy)}
			c.thinLine(a.Add(off), b.Add(off), col)
		}
	}
}

// Rect outlines the axis-aligned rectangle spanned by min and max.
func (c *Canvas) Rect(min, max geom.Vec2, thickness int, col color.RGBA) {
	tr := geom.Vec2{X: max.X, Y: min.Y}
	bl := geom.Vec2{X: min.X, Y: max.Y}
	c.Line(min, tr, thickness, col)
	c.Line(tr, max, thickness, col)
	c.Line(max, bl, thickness, col)
	c.Line(bl, min, thickness, col)
}

func (c *Canvas) thinLine(a, b geom.Vec2, col color.RGBA) {
	a, b, ok := clipSegment(a, b, -1, -1, float64(c.W), float64(c.H))
	if !ok {
		return
	}
	x0, y0 := int(math.Round(a.X)), int(math.Round(a.Y))
	x1, y1 := int(math.Round(b.X)), int(math.Round(b.Y))

	dx := absInt(x1 - x0)
	dy := -absInt(y1 - y0)
	sx, sy := 1, 1
	if x0 > x1 {
		sx = -1
	}
	if y0 > y1 {
		sy = -1
	}
	err := dx + dy
	for {
		c.Set(x0, y0, col)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

// Outcode bits for clipSegment.
const (
	outLeft = 1 << iota
	outRight
	outTop
	outBottom
)

func outcode(p geom.Vec2, minX, minY, maxX, maxY float64) int {
	code := 0
	switch {
	case p.X < minX:
		code |= outLeft
	case p.X > maxX:
		code |= outRight
	}
	switch {
	case p.Y < minY:
		code |= outTop
	case p.Y > maxY:
		code |= outBottom
	}
	return code
}

// clipSegment clips a→b to the rectangle [minX, maxX] × [minY, maxY]
// (Cohen-Sutherland). A clipped endpoint lands exactly on the boundary, so
// far-away endpoints do not cost precision near the rectangle. ok is false
// when nothing of the segment remains.
func clipSegment(a, b geom.Vec2, minX, minY, maxX, maxY float64) (geom.Vec2, geom.Vec2, bool) {
	if !a.Finite() || !b.Finite() {
		return a, b, false
	}
	ca := outcode(a, minX, minY, maxX, maxY)
	cb := outcode(b, minX, minY, maxX, maxY)
	for i := 0; i < 8; i++ {
		if ca|cb == 0 {
			return a, b, true
		}
		if ca&cb != 0 {
			return a, b, false
		}
		if ca != 0 {
			a = toBoundary(a, b, ca, minX, minY, maxX, maxY)
			if !a.Finite() {
				return a, b, false
			}
			ca = outcode(a, minX, minY, maxX, maxY)
			continue
		}
		b = toBoundary(b, a, cb, minX, minY, maxX, maxY)
		if !b.Finite() {
			return a, b, false
		}
		cb = outcode(b, minX, minY, maxX, maxY)
	}
	return a, b, false
}

// toBoundary slides the outside endpoint p along p→q onto the first boundary
// named by code.
func toBoundary(p, q geom.Vec2, code int, minX, minY, maxX, maxY float64) geom.Vec2 {
	switch {
	case code&outLeft != 0:
		return geom.Vec2{X: minX, Y: interp(p.Y, q.Y, p.X, q.X, minX)}
	case code&outRight != 0:
		return geom.Vec2{X: maxX, Y: interp(p.Y, q.Y, p.X, q.X, maxX)}
	case code&outTop != 0:
		return geom.Vec2{X: interp(p.X, q.X, p.Y, q.Y, minY), Y: minY}
	default:
		return geom.Vec2{X: interp(p.X, q.X, p.Y, q.Y, maxY), Y: maxY}
	}
}

// interp evaluates at u the line through (u0, v0) and (u1, v1). Differences
// are taken on halved values so finite inputs cannot overflow.
func interp(v0, v1, u0, u1, u float64) float64 {
	t := (u/2 - u0/2) / (u1/2 - u0/2)
	h := v1/2 - v0/2
	return v0 + t*h + t*h
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
