// Package geom holds the 2D primitives shared by the world generator and the
// rasterizer, including the Delaunay triangulator.
package geom

import "math"

// Vec2 is a 2D point or vector in double precision.
type Vec2 struct {
	X, Y float64
}

// Add returns v + o.
func (v Vec2) Add(o Vec2) Vec2 { return Vec2{v.X + o.X, v.Y + o.Y} }

// Sub returns v - o.
func (v Vec2) Sub(o Vec2) Vec2 { return Vec2{v.X - o.X, v.Y - o.Y} }

// Finite reports whether both components are neither NaN nor infinite.
func (v Vec2) Finite() bool {
	return !math.IsNaN(v.X) && !math.IsNaN(v.Y) && !math.IsInf(v.X, 0) && !math.IsInf(v.Y, 0)
}

// EdgeFunction evaluates the signed edge function of the directed segment a→b
// at p. It is twice the signed area of (a, b, p); zero means collinear.
func EdgeFunction(a, b, p Vec2) float64 {
	return (b.X-a.X)*(p.Y-a.Y) - (b.Y-a.Y)*(p.X-a.X)
}

// InCircle reports whether p lies strictly inside the circumcircle of the
// triangle (a, b, c). The triangle may have either winding.
func InCircle(a, b, c, p Vec2) bool {
	ax, ay := a.X-p.X, a.Y-p.Y
	bx, by := b.X-p.X, b.Y-p.Y
	cx, cy := c.X-p.X, c.Y-p.Y

	det := (ax*ax+ay*ay)*(bx*cy-cx*by) -
		(bx*bx+by*by)*(ax*cy-cx*ay) +
		(cx*cx+cy*cy)*(ax*by-bx*ay)

	if EdgeFunction(a, b, c) < 0 {
		return det < 0
	}
	return det > 0
}
