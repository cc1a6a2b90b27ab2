package geom

import (
	"fmt"
	"math"
)

// Incremental Delaunay triangulation (Bowyer-Watson): seed with a
// super-triangle enclosing all input, insert points one at a time by
// collecting the triangles whose circumcircle contains the point, carving
// out that cavity and fanning new triangles from the point to the cavity
// boundary, then drop everything still attached to the super-triangle.

// delTriangle references its vertices by index into the working point
// slice; super-triangle vertices use negative indices.
type delTriangle struct {
	a, b, c int
	cx, cy  float64 // circumcenter
	r       float64 // circumradius
}

type delEdge struct {
	a, b int
}

func (e delEdge) canonical() delEdge {
	if e.b < e.a {
		return delEdge{e.b, e.a}
	}
	return e
}

// Triangulate builds a Delaunay TIN over the input points. At least three
// points are required; coincident points (within Epsilon in the XY plane)
// fail with ErrDuplicatePoint. Points exactly on a circumcircle are
// treated as inside it, which guarantees termination at the cost of
// occasional sliver retriangulation.
func Triangulate(points []Point) (*TIN, error) {
	if len(points) < 3 {
		return nil, fmt.Errorf("%w: triangulation needs at least 3 points, got %d", ErrEmptyGeometry, len(points))
	}
	seen := map[coordKey]int{}
	for i, p := range points {
		k := newCoordKey(p.X, p.Y, 0)
		if j, dup := seen[k]; dup {
			return nil, fmt.Errorf("%w: points %d and %d coincide at (%v, %v)", ErrDuplicatePoint, j, i, p.X, p.Y)
		}
		seen[k] = i
	}

	pts := make([]Point, len(points))
	copy(pts, points)
	sa, sb, sc := superTriangle(pts)
	vertex := func(i int) Point {
		switch i {
		case -1:
			return sa
		case -2:
			return sb
		case -3:
			return sc
		}
		return pts[i]
	}

	tris := []delTriangle{newDelTriangle(-1, -2, -3, vertex)}
	for i := range pts {
		p := pts[i]

		// Cavity: every triangle whose circumcircle contains p,
		// boundary inclusive.
		bad := make([]bool, len(tris))
		anyBad := false
		for ti, t := range tris {
			if math.Hypot(p.X-t.cx, p.Y-t.cy) <= t.r+Epsilon {
				bad[ti] = true
				anyBad = true
			}
		}
		if !anyBad {
			// Cannot happen with an enclosing super-triangle; guard
			// against a collapsed circumcircle anyway.
			continue
		}

		// The cavity boundary: edges owned by exactly one bad triangle.
		edgeCount := map[delEdge]int{}
		var edgeOrder []delEdge
		for ti, t := range tris {
			if !bad[ti] {
				continue
			}
			for _, e := range []delEdge{{t.a, t.b}, {t.b, t.c}, {t.c, t.a}} {
				k := e.canonical()
				if edgeCount[k] == 0 {
					edgeOrder = append(edgeOrder, k)
				}
				edgeCount[k]++
			}
		}

		kept := tris[:0]
		for ti, t := range tris {
			if !bad[ti] {
				kept = append(kept, t)
			}
		}
		tris = kept
		for _, e := range edgeOrder {
			if edgeCount[e] != 1 {
				continue
			}
			tris = append(tris, newDelTriangle(e.a, e.b, i, vertex))
		}
	}

	out := &TIN{}
	if len(pts) > 0 {
		out.srs = pts[0].srs
	}
	for _, t := range tris {
		if t.a < 0 || t.b < 0 || t.c < 0 {
			continue // still attached to the super-triangle
		}
		tr, err := NewTriangle(pts[t.a], pts[t.b], pts[t.c])
		if err != nil {
			continue // sliver collapsed below tolerance
		}
		out.triangles = append(out.triangles, tr)
	}
	if len(out.triangles) == 0 {
		return nil, fmt.Errorf("%w: all input points are collinear", ErrDegenerateTriangle)
	}
	out.rebuildNeighbors()
	return out, nil
}

func newDelTriangle(a, b, c int, vertex func(int) Point) delTriangle {
	t := delTriangle{a: a, b: b, c: c}
	t.cx, t.cy, t.r = circumcircle(vertex(a), vertex(b), vertex(c))
	return t
}

// circumcircle returns the center and radius of the circle through three
// points, with an infinite radius for degenerate triples.
func circumcircle(p1, p2, p3 Point) (cx, cy, r float64) {
	ax, ay := p1.X, p1.Y
	bx, by := p2.X, p2.Y
	qx, qy := p3.X, p3.Y
	d := 2 * (ax*(by-qy) + bx*(qy-ay) + qx*(ay-by))
	if math.Abs(d) < Epsilon {
		return 0, 0, math.Inf(1)
	}
	cx = ((ax*ax+ay*ay)*(by-qy) + (bx*bx+by*by)*(qy-ay) + (qx*qx+qy*qy)*(ay-by)) / d
	cy = ((ax*ax+ay*ay)*(qx-bx) + (bx*bx+by*by)*(ax-qx) + (qx*qx+qy*qy)*(bx-ax)) / d
	return cx, cy, math.Hypot(cx-ax, cy-ay)
}

// superTriangle returns three synthetic vertices strictly enclosing all
// input points, from the bounding box inflated by a generous margin.
func superTriangle(pts []Point) (Point, Point, Point) {
	b := NewBounds()
	b.extendPoints(pts)
	d := math.Max(b.Width(), b.Height())
	if d < 1 {
		d = 1
	}
	midX := (b.MinX + b.MaxX) / 2
	midY := (b.MinY + b.MaxY) / 2
	return Point{X: midX - 20*d, Y: midY - d},
		Point{X: midX, Y: midY + 20*d},
		Point{X: midX + 20*d, Y: midY - d}
}
