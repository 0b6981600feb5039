package geom

// Triangulator computes a Delaunay triangulation and returns it as a flat index
// list: every three consecutive entries index one triangle of the input.
type Triangulator func(points []Vec2) []int

// ghost is the index of the vertex at infinity. Every convex hull edge a→b
// has a ghost triangle (b, a, ghost) on its outer side.
const ghost = -1

// triangle is counter-clockwise. Ghost triangles keep the infinite vertex in c.
type triangle struct {
	a, b, c int
}

// Triangulate is the default Triangulator: an incremental Bowyer-Watson
// triangulation closed by ghost triangles around the convex hull, so the
// result covers the whole hull of the input.
//
// Inputs with fewer than three usable points, all points collinear, or only
// duplicates yield fewer (possibly zero) triangles. Non-finite points are
// skipped. Each emitted triangle is counter-clockwise in a y-up frame.
func Triangulate(points []Vec2) []int {
	i0, i1, i2, ok := seed(points)
	if !ok {
		return nil
	}
	if EdgeFunction(points[i0], points[i1], points[i2]) < 0 {
		i1, i2 = i2, i1
	}

	tris := make([]triangle, 0, 2*len(points)+4)
	tris = append(tris,
		triangle{i0, i1, i2},
		triangle{i1, i0, ghost},
		triangle{i2, i1, ghost},
		triangle{i0, i2, ghost},
	)

	var bad []int
	var cavity [][2]int
	for pi, p := range points {
		if pi == i0 || pi == i1 || pi == i2 || !p.Finite() {
			continue
		}

		bad = bad[:0]
		for ti, t := range tris {
			if conflicts(points, t, p) {
				bad = append(bad, ti)
			}
		}
		if len(bad) == 0 {
			// Duplicate of an existing vertex.
			continue
		}

		// Cavity boundary: edges of bad triangles whose reverse edge does not
		// belong to another bad triangle.
		cavity = cavity[:0]
		for _, ti := range bad {
			t := tris[ti]
			for _, e := range [3][2]int{{t.a, t.b}, {t.b, t.c}, {t.c, t.a}} {
				if !sharedEdge(tris, bad, ti, e) {
					cavity = append(cavity, e)
				}
			}
		}

		for i := len(bad) - 1; i >= 0; i-- {
			ti := bad[i]
			tris[ti] = tris[len(tris)-1]
			tris = tris[:len(tris)-1]
		}

		for _, e := range cavity {
			switch {
			case e[0] == ghost:
				tris = append(tris, triangle{e[1], pi, ghost})
			case e[1] == ghost:
				tris = append(tris, triangle{pi, e[0], ghost})
			default:
				tris = append(tris, triangle{e[0], e[1], pi})
			}
		}
	}

	out := make([]int, 0, 3*len(tris))
	for _, t := range tris {
		if t.c == ghost {
			continue
		}
		if EdgeFunction(points[t.a], points[t.b], points[t.c]) <= 0 {
			continue
		}
		out = append(out, t.a, t.b, t.c)
	}
	return out
}

// seed picks the first three finite, distinct, non-collinear points.
func seed(points []Vec2) (int, int, int, bool) {
	i0, i1 := -1, -1
	for i, p := range points {
		if !p.Finite() {
			continue
		}
		switch {
		case i0 < 0:
			i0 = i
		case i1 < 0:
			if p != points[i0] {
				i1 = i
			}
		default:
			if EdgeFunction(points[i0], points[i1], p) != 0 {
				return i0, i1, i, true
			}
		}
	}
	return 0, 0, 0, false
}

// conflicts reports whether p lies inside the circumcircle of t. For a ghost
// triangle the circumcircle degenerates to the open half-plane beyond its hull
// edge plus the open edge itself.
func conflicts(points []Vec2, t triangle, p Vec2) bool {
	if t.c != ghost {
		return InCircle(points[t.a], points[t.b], points[t.c], p)
	}
	a, b := points[t.a], points[t.b]
	if s := EdgeFunction(a, b, p); s != 0 {
		return s > 0
	}
	d, q := b.Sub(a), p.Sub(a)
	dot := d.X*q.X + d.Y*q.Y
	return dot > 0 && dot < d.X*d.X+d.Y*d.Y
}

// sharedEdge reports whether another bad triangle contains the reversed edge.
// Bad triangles are all counter-clockwise, so a shared edge appears reversed.
func sharedEdge(tris []triangle, bad []int, self int, e [2]int) bool {
	for _, ti := range bad {
		if ti == self {
			continue
		}
		t := tris[ti]
		if (t.a == e[1] && t.b == e[0]) || (t.b == e[1] && t.c == e[0]) || (t.c == e[1] && t.a == e[0]) {
			return true
		}
	}
	return false
}

// Triples groups a flat index list into triangles. A trailing group with
// fewer than three indices is dropped.
func Triples(flat []int) [][3]int {
	out := make([][3]int, 0, len(flat)/3)
	for i := 0; i+3 <= len(flat); i += 3 {
		out = append(out, [3]int{flat[i], flat[i+1], flat[i+2]})
	}
	return out
}
