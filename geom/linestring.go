package geom

import "fmt"

// LineString is an ordered chain of points. The zero value is an empty
// curve. The vertex slice is owned: constructors and accessors copy.
type LineString struct {
	vertices []Point
	srs      SRS
}

// NewLineString builds a curve from a copy of pts.
func NewLineString(pts []Point) *LineString {
	l := &LineString{vertices: make([]Point, len(pts))}
	copy(l.vertices, pts)
	if len(pts) > 0 {
		l.srs = pts[0].srs
	}
	return l
}

// NewLineStringSRS builds a curve tagged with srs.
func NewLineStringSRS(pts []Point, srs SRS) *LineString {
	l := NewLineString(pts)
	l.srs = srs
	return l
}

// SRS returns the spatial reference system tag.
func (l *LineString) SRS() SRS { return l.srs }

// NumPoints returns the number of points in the chain.
func (l *LineString) NumPoints() int { return len(l.vertices) }

// IsEmpty reports whether the chain has no points.
func (l *LineString) IsEmpty() bool { return len(l.vertices) == 0 }

// PointN returns the nth point, 1-indexed per the simple-features accessor
// convention.
func (l *LineString) PointN(n int) (Point, error) {
	if n < 1 || n > len(l.vertices) {
		return Point{}, fmt.Errorf("%w: point %d of %d", ErrIndexOutOfRange, n, len(l.vertices))
	}
	return l.vertices[n-1], nil
}

// AddPoint appends p to the chain.
func (l *LineString) AddPoint(p Point) {
	l.vertices = append(l.vertices, p)
}

// Points returns a copy of the vertex slice.
func (l *LineString) Points() []Point {
	out := make([]Point, len(l.vertices))
	copy(out, l.vertices)
	return out
}

// Length is the sum of Euclidean distances between consecutive points,
// 0 for fewer than two points.
func (l *LineString) Length() float64 {
	length := 0.0
	for i := 1; i < len(l.vertices); i++ {
		length += l.vertices[i-1].Distance(l.vertices[i])
	}
	return length
}

// StartPoint returns the first point, or ErrEmptyGeometry.
func (l *LineString) StartPoint() (Point, error) {
	if l.IsEmpty() {
		return Point{}, fmt.Errorf("%w: start point of empty linestring", ErrEmptyGeometry)
	}
	return l.vertices[0], nil
}

// EndPoint returns the last point, or ErrEmptyGeometry.
func (l *LineString) EndPoint() (Point, error) {
	if l.IsEmpty() {
		return Point{}, fmt.Errorf("%w: end point of empty linestring", ErrEmptyGeometry)
	}
	return l.vertices[len(l.vertices)-1], nil
}

// Closed reports whether the chain has at least two points and its first
// point equals its last.
func (l *LineString) Closed() bool {
	n := len(l.vertices)
	return n >= 2 && l.vertices[0].Equals(l.vertices[n-1])
}

// IsSimple reports whether no two non-adjacent segments properly cross.
// Segments that merely share an endpoint do not count, and neither do
// collinear overlaps; the test is the strict-crossing approximation.
func (l *LineString) IsSimple() bool {
	return isSimpleChain(l.vertices, false)
}

// IsRing reports whether the curve is closed and simple.
func (l *LineString) IsRing() bool {
	return l.Closed() && l.IsSimple()
}

// Boundary returns the empty multipoint for a closed (or empty) curve,
// else the aggregate of the start and end points.
func (l *LineString) Boundary() *MultiPoint {
	mp := NewMultiPointSRS(nil, l.srs)
	if l.IsEmpty() || l.Closed() {
		return mp
	}
	mp.Add(l.vertices[0])
	mp.Add(l.vertices[len(l.vertices)-1])
	return mp
}

// Interpolate returns the point at the given distance along the curve,
// measured from the start. Distances outside [0, Length] fail with
// ErrOutOfRange.
func (l *LineString) Interpolate(distance float64) (Point, error) {
	if l.IsEmpty() {
		return Point{}, fmt.Errorf("%w: interpolate on empty linestring", ErrEmptyGeometry)
	}
	if distance < 0 || distance > l.Length() {
		return Point{}, fmt.Errorf("%w: distance %v not in [0, %v]", ErrOutOfRange, distance, l.Length())
	}
	remaining := distance
	for i := 1; i < len(l.vertices); i++ {
		a, b := l.vertices[i-1], l.vertices[i]
		seg := a.Distance(b)
		if remaining <= seg || i == len(l.vertices)-1 {
			if seg == 0 {
				return a, nil
			}
			return interpolateBetween(a, b, remaining/seg), nil
		}
		remaining -= seg
	}
	return l.vertices[0], nil
}

// Reverse returns a copy of the curve with its point order reversed.
func (l *LineString) Reverse() *LineString {
	out := &LineString{vertices: make([]Point, len(l.vertices)), srs: l.srs}
	for i, p := range l.vertices {
		out.vertices[len(l.vertices)-1-i] = p
	}
	return out
}

// Simplify returns a copy of the curve decimated with Douglas-Peucker:
// interior points closer than tol to the chord of their span are dropped.
func (l *LineString) Simplify(tol float64) *LineString {
	if len(l.vertices) < 3 {
		return l.cloneLineString()
	}
	keep := make([]bool, len(l.vertices))
	keep[0], keep[len(l.vertices)-1] = true, true
	douglasPeucker(l.vertices, 0, len(l.vertices)-1, tol, keep)
	out := &LineString{srs: l.srs}
	for i, k := range keep {
		if k {
			out.vertices = append(out.vertices, l.vertices[i])
		}
	}
	return out
}

func douglasPeucker(pts []Point, first, last int, tol float64, keep []bool) {
	if last <= first+1 {
		return
	}
	maxDist, maxIdx := 0.0, -1
	for i := first + 1; i < last; i++ {
		d := distancePointSegment(pts[i], pts[first], pts[last])
		if d > maxDist {
			maxDist, maxIdx = d, i
		}
	}
	if maxDist > tol {
		keep[maxIdx] = true
		douglasPeucker(pts, first, maxIdx, tol, keep)
		douglasPeucker(pts, maxIdx, last, tol, keep)
	}
}

// Bounds gives the rectangular extent of the chain.
func (l *LineString) Bounds() *Bounds {
	b := NewBounds()
	b.extendPoints(l.vertices)
	return b
}

func (l *LineString) cloneLineString() *LineString {
	out := &LineString{vertices: make([]Point, len(l.vertices)), srs: l.srs}
	copy(out.vertices, l.vertices)
	return out
}

// Clone returns a deep copy.
func (l *LineString) Clone() Geom { return l.cloneLineString() }

// WKT renders the curve, e.g. "LINESTRING (0 0, 3 0, 3 4)".
func (l *LineString) WKT() string {
	if l.IsEmpty() {
		return "LINESTRING EMPTY"
	}
	return "LINESTRING" + dimOf(l.vertices).wktTag() + " " + wktCoordList(l.vertices)
}

// dimOf returns the common dimension of a vertex slice, falling back to XY
// when the slice is empty or mixed.
func dimOf(pts []Point) Dim {
	if len(pts) == 0 {
		return XY
	}
	d := pts[0].dim
	for _, p := range pts[1:] {
		if p.dim != d {
			return XY
		}
	}
	return d
}

// interpolateBetween returns the point fraction t of the way from a to b.
func interpolateBetween(a, b Point, t float64) Point {
	p := Point{
		X:   a.X + t*(b.X-a.X),
		Y:   a.Y + t*(b.Y-a.Y),
		dim: a.dim,
		srs: a.srs,
	}
	if a.dim.HasZ() && b.dim.HasZ() {
		p.Z = a.Z + t*(b.Z-a.Z)
	}
	if a.dim.HasM() && b.dim.HasM() {
		p.M = a.M + t*(b.M-a.M)
	}
	return p
}
