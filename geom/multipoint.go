package geom

import "fmt"

// MultiPoint is an aggregate of points.
type MultiPoint struct {
	points []Point
	srs    SRS
}

// NewMultiPoint builds an aggregate from a copy of pts.
func NewMultiPoint(pts []Point) *MultiPoint {
	mp := &MultiPoint{points: make([]Point, len(pts))}
	copy(mp.points, pts)
	if len(pts) > 0 {
		mp.srs = pts[0].srs
	}
	return mp
}

// NewMultiPointSRS builds an aggregate tagged with srs.
func NewMultiPointSRS(pts []Point, srs SRS) *MultiPoint {
	mp := NewMultiPoint(pts)
	mp.srs = srs
	return mp
}

// SRS returns the spatial reference system tag.
func (mp *MultiPoint) SRS() SRS { return mp.srs }

// NumGeometries returns the number of points.
func (mp *MultiPoint) NumGeometries() int { return len(mp.points) }

// IsEmpty reports whether the aggregate has no points.
func (mp *MultiPoint) IsEmpty() bool { return len(mp.points) == 0 }

// GeometryN returns the nth point, 1-indexed.
func (mp *MultiPoint) GeometryN(n int) (Point, error) {
	if n < 1 || n > len(mp.points) {
		return Point{}, fmt.Errorf("%w: geometry %d of %d", ErrIndexOutOfRange, n, len(mp.points))
	}
	return mp.points[n-1], nil
}

// Add appends p to the aggregate.
func (mp *MultiPoint) Add(p Point) {
	mp.points = append(mp.points, p)
}

// Remove deletes the first point equal to p (within Epsilon) and reports
// whether one was found.
func (mp *MultiPoint) Remove(p Point) bool {
	for i, q := range mp.points {
		if q.Equals(p) {
			mp.points = append(mp.points[:i], mp.points[i+1:]...)
			return true
		}
	}
	return false
}

// Contains reports whether the aggregate holds a point equal to p.
func (mp *MultiPoint) Contains(p Point) bool {
	for _, q := range mp.points {
		if q.Equals(p) {
			return true
		}
	}
	return false
}

// Clear removes all points.
func (mp *MultiPoint) Clear() { mp.points = nil }

// Points returns a copy of the member slice.
func (mp *MultiPoint) Points() []Point {
	out := make([]Point, len(mp.points))
	copy(out, mp.points)
	return out
}

// Centroid returns the arithmetic mean of the member points, or
// ErrEmptyGeometry on an empty aggregate.
func (mp *MultiPoint) Centroid() (Point, error) {
	if mp.IsEmpty() {
		return Point{}, fmt.Errorf("%w: centroid of empty multipoint", ErrEmptyGeometry)
	}
	var sx, sy float64
	for _, p := range mp.points {
		sx += p.X
		sy += p.Y
	}
	n := float64(len(mp.points))
	return Point{X: sx / n, Y: sy / n, srs: mp.srs}, nil
}

// IsSimple reports whether no two member points coincide.
func (mp *MultiPoint) IsSimple() bool {
	seen := map[coordKey]bool{}
	for _, p := range mp.points {
		k := newCoordKey(p.X, p.Y, 0)
		if seen[k] {
			return false
		}
		seen[k] = true
	}
	return true
}

// Bounds gives the extent of the member points.
func (mp *MultiPoint) Bounds() *Bounds {
	b := NewBounds()
	b.extendPoints(mp.points)
	return b
}

// Clone returns a deep copy.
func (mp *MultiPoint) Clone() Geom {
	return NewMultiPointSRS(mp.points, mp.srs)
}

// WKT renders the aggregate, e.g. "MULTIPOINT ((10 40), (40 30))".
func (mp *MultiPoint) WKT() string {
	if mp.IsEmpty() {
		return "MULTIPOINT EMPTY"
	}
	s := "MULTIPOINT" + dimOf(mp.points).wktTag() + " ("
	for i, p := range mp.points {
		if i > 0 {
			s += ", "
		}
		s += "(" + wktCoord(p) + ")"
	}
	return s + ")"
}
