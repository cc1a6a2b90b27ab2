package geom

import (
	"fmt"
	"math"
)

// LinearRing is a closed simple curve usable as a polygon boundary. A
// valid ring has at least four points (three distinct vertices plus the
// repeated first point), is closed, and has no two non-adjacent segments
// crossing each other.
type LinearRing struct {
	vertices []Point
	srs      SRS
}

// NewLinearRing builds a ring from a copy of pts, validating the ring
// constraints. An open chain whose endpoints are within Epsilon of each
// other is accepted and snapped closed. Failures report ErrInvalidRing.
func NewLinearRing(pts []Point) (*LinearRing, error) {
	r := &LinearRing{vertices: make([]Point, len(pts))}
	copy(r.vertices, pts)
	if len(pts) > 0 {
		r.srs = pts[0].srs
	}
	if err := r.validate(); err != nil {
		return nil, err
	}
	return r, nil
}

// MustLinearRing is a test and literal helper; it panics on invalid input.
func MustLinearRing(r *LinearRing, err error) *LinearRing {
	if err != nil {
		panic(err)
	}
	return r
}

func (r *LinearRing) validate() error {
	n := len(r.vertices)
	if n == 0 {
		return nil // the empty ring is valid
	}
	if n < 4 {
		return fmt.Errorf("%w: %d points, need at least 4", ErrInvalidRing, n)
	}
	if !r.vertices[0].Equals(r.vertices[n-1]) {
		return fmt.Errorf("%w: not closed", ErrInvalidRing)
	}
	r.vertices[n-1] = r.vertices[0] // snap exactly closed
	if !isSimpleChain(r.vertices[:n-1], true) {
		return fmt.Errorf("%w: self-intersecting", ErrInvalidRing)
	}
	return nil
}

// SRS returns the spatial reference system tag.
func (r *LinearRing) SRS() SRS { return r.srs }

// NumPoints returns the number of points including the closing repeat.
func (r *LinearRing) NumPoints() int { return len(r.vertices) }

// IsEmpty reports whether the ring has no points.
func (r *LinearRing) IsEmpty() bool { return len(r.vertices) == 0 }

// PointN returns the nth point, 1-indexed. For a valid non-empty ring,
// PointN(1) equals PointN(NumPoints()).
func (r *LinearRing) PointN(n int) (Point, error) {
	if n < 1 || n > len(r.vertices) {
		return Point{}, fmt.Errorf("%w: point %d of %d", ErrIndexOutOfRange, n, len(r.vertices))
	}
	return r.vertices[n-1], nil
}

// Points returns a copy of the vertex slice, closing point included.
func (r *LinearRing) Points() []Point {
	out := make([]Point, len(r.vertices))
	copy(out, r.vertices)
	return out
}

// open returns the vertices without the closing repeat. Internal callers
// must not mutate the result.
func (r *LinearRing) open() []Point {
	if len(r.vertices) == 0 {
		return nil
	}
	return r.vertices[:len(r.vertices)-1]
}

// IsValid reports whether the ring is empty or satisfies all ring
// constraints.
func (r *LinearRing) IsValid() bool {
	return r.validate() == nil
}

// Length is the ring perimeter.
func (r *LinearRing) Length() float64 {
	length := 0.0
	for i := 1; i < len(r.vertices); i++ {
		length += r.vertices[i-1].Distance(r.vertices[i])
	}
	return length
}

// StartPoint returns the first point, or ErrEmptyGeometry.
func (r *LinearRing) StartPoint() (Point, error) {
	if r.IsEmpty() {
		return Point{}, fmt.Errorf("%w: start point of empty ring", ErrEmptyGeometry)
	}
	return r.vertices[0], nil
}

// EndPoint returns the last point, or ErrEmptyGeometry.
func (r *LinearRing) EndPoint() (Point, error) {
	if r.IsEmpty() {
		return Point{}, fmt.Errorf("%w: end point of empty ring", ErrEmptyGeometry)
	}
	return r.vertices[len(r.vertices)-1], nil
}

// Closed reports true for every non-empty ring.
func (r *LinearRing) Closed() bool {
	n := len(r.vertices)
	return n >= 2 && r.vertices[0].Equals(r.vertices[n-1])
}

// IsSimple reports whether no two non-adjacent ring segments cross.
func (r *LinearRing) IsSimple() bool {
	if len(r.vertices) < 2 {
		return true
	}
	return isSimpleChain(r.open(), true)
}

// Boundary of a closed curve is empty.
func (r *LinearRing) Boundary() *MultiPoint {
	return NewMultiPointSRS(nil, r.srs)
}

// SignedArea returns the shoelace area of the ring: positive for
// counter-clockwise winding, negative for clockwise.
func (r *LinearRing) SignedArea() float64 {
	return signedArea(r.open())
}

// RingArea returns the absolute enclosed area.
func (r *LinearRing) RingArea() float64 {
	return math.Abs(r.SignedArea())
}

// IsCCW reports whether the ring winds counter-clockwise. The sign
// convention is fixed by the shoelace sum: the square
// (0,0),(10,0),(10,10),(0,10),(0,0) is counter-clockwise.
func (r *LinearRing) IsCCW() bool { return r.SignedArea() > 0 }

// IsCW reports whether the ring winds clockwise.
func (r *LinearRing) IsCW() bool { return r.SignedArea() < 0 }

// Centroid returns the centroid of the enclosed area, or ErrEmptyGeometry
// for empty or zero-area rings.
func (r *LinearRing) Centroid() (Point, error) {
	cx, cy, _, ok := ringCentroid(r.open())
	if !ok {
		return Point{}, fmt.Errorf("%w: centroid of degenerate ring", ErrEmptyGeometry)
	}
	return Point{X: cx, Y: cy, srs: r.srs}, nil
}

// ContainsPoint reports whether p is inside the ring or on its boundary.
func (r *LinearRing) ContainsPoint(p Point) bool {
	return locateInRing(p, r.open()) != Exterior
}

// Reverse returns a copy of the ring with the opposite winding.
func (r *LinearRing) Reverse() *LinearRing {
	out := &LinearRing{vertices: make([]Point, len(r.vertices)), srs: r.srs}
	for i, p := range r.vertices {
		out.vertices[len(r.vertices)-1-i] = p
	}
	return out
}

// AsLineString returns the ring as a general curve.
func (r *LinearRing) AsLineString() *LineString {
	return NewLineStringSRS(r.vertices, r.srs)
}

// Bounds gives the rectangular extent of the ring.
func (r *LinearRing) Bounds() *Bounds {
	b := NewBounds()
	b.extendPoints(r.vertices)
	return b
}

func (r *LinearRing) cloneRing() *LinearRing {
	out := &LinearRing{vertices: make([]Point, len(r.vertices)), srs: r.srs}
	copy(out.vertices, r.vertices)
	return out
}

// Clone returns a deep copy.
func (r *LinearRing) Clone() Geom { return r.cloneRing() }

// WKT renders the ring as a LINESTRING, its simple-features text form.
func (r *LinearRing) WKT() string {
	if r.IsEmpty() {
		return "LINESTRING EMPTY"
	}
	return "LINESTRING" + dimOf(r.vertices).wktTag() + " " + wktCoordList(r.vertices)
}
