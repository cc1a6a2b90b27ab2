package geom

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/floats/scalar"
)

// This file collects the stateless planar primitives the rest of the
// package is built on: orientation and crossing tests, ray casting, the
// shoelace sums, and the convex hull.

// Location classifies a point relative to a region.
type Location int

const (
	// Exterior means strictly outside.
	Exterior Location = iota
	// Interior means strictly inside.
	Interior
	// OnBoundary means on an edge or vertex, within tolerance.
	OnBoundary
)

func (l Location) invert() Location {
	if l == Exterior {
		return Interior
	}
	return Exterior
}

// Orientation returns the cross product (b-a) x (c-a): positive when the
// triple turns counter-clockwise, negative when clockwise, near zero when
// collinear.
func Orientation(a, b, c Point) float64 {
	return (b.X-a.X)*(c.Y-a.Y) - (b.Y-a.Y)*(c.X-a.X)
}

// SegmentsCross reports whether segments (p1,p2) and (p3,p4) properly
// cross, i.e. intersect at a single point interior to both. Collinear
// overlaps and endpoint touches report false; simplicity checks rely on
// that so that consecutive segments sharing a vertex do not count as
// self-intersections.
func SegmentsCross(p1, p2, p3, p4 Point) bool {
	d1 := Orientation(p1, p2, p3)
	d2 := Orientation(p1, p2, p4)
	d3 := Orientation(p3, p4, p1)
	d4 := Orientation(p3, p4, p2)
	return ((d1 > 0 && d2 < 0) || (d1 < 0 && d2 > 0)) &&
		((d3 > 0 && d4 < 0) || (d3 < 0 && d4 > 0))
}

// SegmentIntersection returns the intersection point of segments (p1,p2)
// and (p3,p4) when they properly cross, and ok=false otherwise.
func SegmentIntersection(p1, p2, p3, p4 Point) (Point, bool) {
	if !SegmentsCross(p1, p2, p3, p4) {
		return Point{}, false
	}
	d1x, d1y := p2.X-p1.X, p2.Y-p1.Y
	d2x, d2y := p4.X-p3.X, p4.Y-p3.Y
	denom := d1x*d2y - d1y*d2x
	t := ((p3.X-p1.X)*d2y - (p3.Y-p1.Y)*d2x) / denom
	return Point{X: p1.X + t*d1x, Y: p1.Y + t*d1y}, true
}

// PointOnSegment reports whether p lies on segment (a,b) within tol.
func PointOnSegment(p, a, b Point, tol float64) bool {
	return distancePointSegment(p, a, b) <= tol
}

// distancePointSegment returns the distance from p to the closest point of
// segment (a,b).
func distancePointSegment(p, a, b Point) float64 {
	dx, dy := b.X-a.X, b.Y-a.Y
	l2 := dx*dx + dy*dy
	if l2 == 0 {
		return math.Hypot(p.X-a.X, p.Y-a.Y)
	}
	t := ((p.X-a.X)*dx + (p.Y-a.Y)*dy) / l2
	t = math.Max(0, math.Min(1, t))
	return math.Hypot(p.X-(a.X+t*dx), p.Y-(a.Y+t*dy))
}

// rayIntersectsSegment reports whether a horizontal ray cast from p toward
// +x crosses segment (a,b). The test point is nudged off segment endpoint
// rows so that a vertex shared by two segments is counted exactly once.
func rayIntersectsSegment(p, a, b Point) bool {
	if a.Y > b.Y {
		a, b = b, a
	}
	for p.Y == a.Y || p.Y == b.Y {
		p.Y = math.Nextafter(p.Y, math.Inf(1))
	}
	if p.Y < a.Y || p.Y > b.Y {
		return false
	}
	if a.X > b.X {
		if p.X >= a.X {
			return false
		}
		if p.X < b.X {
			return true
		}
	} else {
		if p.X > b.X {
			return false
		}
		if p.X < a.X {
			return true
		}
	}
	return (p.Y-a.Y)/(p.X-a.X) >= (b.Y-a.Y)/(b.X-a.X)
}

// locateInRing classifies p against the closed ring pts by ray casting.
// Boundary points are detected within Epsilon.
func locateInRing(p Point, pts []Point) Location {
	if len(pts) < 3 {
		return Exterior
	}
	loc := Exterior
	n := len(pts)
	for i := 0; i < n; i++ {
		a, b := pts[i], pts[(i+1)%n]
		if a.Equals(b) {
			continue
		}
		if PointOnSegment(p, a, b, Epsilon) {
			return OnBoundary
		}
		if rayIntersectsSegment(p, a, b) {
			loc = loc.invert()
		}
	}
	return loc
}

// locateInRings classifies p against a polygon given as its rings, the
// exterior first. A point inside an odd number of rings is interior;
// matching the even-odd rule, a point inside a hole is exterior.
func locateInRings(p Point, rings [][]Point) Location {
	loc := Exterior
	for _, r := range rings {
		switch locateInRing(p, r) {
		case OnBoundary:
			return OnBoundary
		case Interior:
			loc = loc.invert()
		}
	}
	return loc
}

// signedArea returns the signed shoelace area of a ring: positive when the
// ring winds counter-clockwise. The ring may be given open or closed.
func signedArea(pts []Point) float64 {
	n := len(pts)
	if n < 3 {
		return 0
	}
	a := 0.0
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		a += pts[i].X*pts[j].Y - pts[j].X*pts[i].Y
	}
	return a / 2
}

// ringCentroid returns the centroid of the ring's enclosed area together
// with its signed area, using the shoelace cross terms. ok is false for
// zero-area rings.
func ringCentroid(pts []Point) (cx, cy, area float64, ok bool) {
	n := len(pts)
	if n < 3 {
		return 0, 0, 0, false
	}
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		cross := pts[i].X*pts[j].Y - pts[j].X*pts[i].Y
		cx += (pts[i].X + pts[j].X) * cross
		cy += (pts[i].Y + pts[j].Y) * cross
		area += cross
	}
	area /= 2
	if scalar.EqualWithinAbs(area, 0, Epsilon) {
		return 0, 0, 0, false
	}
	return cx / (6 * area), cy / (6 * area), area, true
}

// isSimpleChain reports whether no two non-adjacent segments of the point
// chain cross. closed marks the implicit segment from last to first point
// as present, making the first and last segments adjacent.
func isSimpleChain(pts []Point, closed bool) bool {
	segs := len(pts) - 1
	if closed {
		segs = len(pts)
	}
	if segs < 2 {
		return true
	}
	at := func(i int) Point { return pts[i%len(pts)] }
	for i := 0; i < segs; i++ {
		for j := i + 2; j < segs; j++ {
			if closed && i == 0 && j == segs-1 {
				continue // first and last segments share a vertex
			}
			if SegmentsCross(at(i), at(i+1), at(j), at(j+1)) {
				return false
			}
		}
	}
	return true
}

// convexHull returns the convex hull of pts in counter-clockwise order,
// first point not repeated, using Andrew's monotone chain. Fewer than
// three distinct points yield the distinct points themselves.
func convexHull(pts []Point) []Point {
	uniq := make([]Point, 0, len(pts))
	seen := map[coordKey]bool{}
	for _, p := range pts {
		k := newCoordKey(p.X, p.Y, 0)
		if !seen[k] {
			seen[k] = true
			uniq = append(uniq, p)
		}
	}
	if len(uniq) < 3 {
		sort.Slice(uniq, func(i, j int) bool {
			return uniq[i].X < uniq[j].X || (uniq[i].X == uniq[j].X && uniq[i].Y < uniq[j].Y)
		})
		return uniq
	}
	sort.Slice(uniq, func(i, j int) bool {
		return uniq[i].X < uniq[j].X || (uniq[i].X == uniq[j].X && uniq[i].Y < uniq[j].Y)
	})
	var lower, upper []Point
	for _, p := range uniq {
		for len(lower) >= 2 && Orientation(lower[len(lower)-2], lower[len(lower)-1], p) <= 0 {
			lower = lower[:len(lower)-1]
		}
		lower = append(lower, p)
	}
	for i := len(uniq) - 1; i >= 0; i-- {
		p := uniq[i]
		for len(upper) >= 2 && Orientation(upper[len(upper)-2], upper[len(upper)-1], p) <= 0 {
			upper = upper[:len(upper)-1]
		}
		upper = append(upper, p)
	}
	return append(lower[:len(lower)-1], upper[:len(upper)-1]...)
}

// coordKey snaps a coordinate triple to the Epsilon grid so points can
// key maps with tolerance-stable identity.
type coordKey struct {
	x, y, z float64
}

func newCoordKey(x, y, z float64) coordKey {
	return coordKey{snapToGrid(x), snapToGrid(y), snapToGrid(z)}
}

// snapToGrid rounds v to the nearest Epsilon multiple. The snap stays in
// the float domain; an integer grid index overflows int64 once |v|
// exceeds about 9e8.
func snapToGrid(v float64) float64 {
	return math.Round(v/Epsilon) * Epsilon
}
