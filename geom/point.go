package geom

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats/scalar"
)

// Point is an immutable 2D location, optionally carrying an elevation Z
// and/or a linear measure M. The zero value is the 2D origin.
type Point struct {
	X, Y, Z, M float64

	dim Dim
	srs SRS
}

// NewPoint returns a 2D point. Non-finite coordinates fail with
// ErrInvalidCoordinate.
func NewPoint(x, y float64) (Point, error) {
	if !finite(x, y) {
		return Point{}, fmt.Errorf("%w: (%v, %v)", ErrInvalidCoordinate, x, y)
	}
	return Point{X: x, Y: y}, nil
}

// NewPointZ returns a 3D point.
func NewPointZ(x, y, z float64) (Point, error) {
	if !finite(x, y, z) {
		return Point{}, fmt.Errorf("%w: (%v, %v, %v)", ErrInvalidCoordinate, x, y, z)
	}
	return Point{X: x, Y: y, Z: z, dim: XYZ}, nil
}

// NewPointM returns a measured 2D point.
func NewPointM(x, y, m float64) (Point, error) {
	if !finite(x, y, m) {
		return Point{}, fmt.Errorf("%w: (%v, %v, m=%v)", ErrInvalidCoordinate, x, y, m)
	}
	return Point{X: x, Y: y, M: m, dim: XYM}, nil
}

// NewPointZM returns a measured 3D point.
func NewPointZM(x, y, z, m float64) (Point, error) {
	if !finite(x, y, z, m) {
		return Point{}, fmt.Errorf("%w: (%v, %v, %v, m=%v)", ErrInvalidCoordinate, x, y, z, m)
	}
	return Point{X: x, Y: y, Z: z, M: m, dim: XYZM}, nil
}

// NewPointSRS returns a 2D point tagged with srs. For geographic systems
// the coordinate is interpreted as (longitude, latitude) and range checked.
func NewPointSRS(x, y float64, srs SRS) (Point, error) {
	p, err := NewPoint(x, y)
	if err != nil {
		return Point{}, err
	}
	if srs.Geographic() && (x < -180 || x > 180 || y < -90 || y > 90) {
		return Point{}, fmt.Errorf("%w: lon/lat (%v, %v) out of range", ErrInvalidCoordinate, x, y)
	}
	p.srs = srs
	return p, nil
}

// MustPoint is a test and literal helper; it panics on invalid input.
func MustPoint(p Point, err error) Point {
	if err != nil {
		panic(err)
	}
	return p
}

func finite(vs ...float64) bool {
	for _, v := range vs {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

// Dim returns which coordinate dimensions the point carries.
func (p Point) Dim() Dim { return p.dim }

// SRS returns the spatial reference system tag.
func (p Point) SRS() SRS { return p.srs }

// WithSRS returns a copy of p tagged with srs.
func (p Point) WithSRS(srs SRS) Point {
	p.srs = srs
	return p
}

// Equals reports coordinate-wise equality within Epsilon. The Z
// coordinates are compared only when both points carry one; measures never
// participate in equality.
func (p Point) Equals(q Point) bool {
	return p.EqualsWithin(q, Epsilon)
}

// EqualsWithin is Equals with an explicit tolerance.
func (p Point) EqualsWithin(q Point, tol float64) bool {
	if !scalar.EqualWithinAbs(p.X, q.X, tol) || !scalar.EqualWithinAbs(p.Y, q.Y, tol) {
		return false
	}
	if p.dim.HasZ() && q.dim.HasZ() {
		return scalar.EqualWithinAbs(p.Z, q.Z, tol)
	}
	return true
}

// Distance returns the Euclidean distance to q, in three dimensions when
// both points carry a Z coordinate.
func (p Point) Distance(q Point) float64 {
	dx, dy := q.X-p.X, q.Y-p.Y
	if p.dim.HasZ() && q.dim.HasZ() {
		dz := q.Z - p.Z
		return math.Sqrt(dx*dx + dy*dy + dz*dz)
	}
	return math.Hypot(dx, dy)
}

// Bounds gives the degenerate extent covering only p.
func (p Point) Bounds() *Bounds {
	return &Bounds{MinX: p.X, MinY: p.Y, MaxX: p.X, MaxY: p.Y}
}

// IsEmpty always reports false: points are never empty.
func (p Point) IsEmpty() bool { return false }

// Clone returns p itself; Point is a value type.
func (p Point) Clone() Geom { return p }

// WKT renders the point, e.g. "POINT (30 10)" or "POINT Z (30 10 5)".
func (p Point) WKT() string {
	return "POINT" + p.dim.wktTag() + " (" + wktCoord(p) + ")"
}
