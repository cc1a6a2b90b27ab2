package geom

import (
	"fmt"
	"math"
)

// Triangle is a polygon specialization with exactly three distinct,
// non-collinear vertices and no interior rings.
type Triangle struct {
	a, b, c Point
	srs     SRS
}

// NewTriangle builds a triangle from three vertices. Coincident or
// collinear vertices fail with ErrDegenerateTriangle.
func NewTriangle(a, b, c Point) (*Triangle, error) {
	t := &Triangle{a: a, b: b, c: c, srs: a.srs}
	if err := t.checkDegenerate(); err != nil {
		return nil, err
	}
	return t, nil
}

// MustTriangle is a test and literal helper; it panics on invalid input.
func MustTriangle(t *Triangle, err error) *Triangle {
	if err != nil {
		panic(err)
	}
	return t
}

func (t *Triangle) checkDegenerate() error {
	if t.a.Equals(t.b) || t.b.Equals(t.c) || t.a.Equals(t.c) {
		return fmt.Errorf("%w: coincident vertices", ErrDegenerateTriangle)
	}
	if math.Abs(Orientation(t.a, t.b, t.c)) < Epsilon {
		return fmt.Errorf("%w: collinear vertices", ErrDegenerateTriangle)
	}
	return nil
}

// SetVertices replaces all three vertices, with the same validation as
// NewTriangle.
func (t *Triangle) SetVertices(a, b, c Point) error {
	n := Triangle{a: a, b: b, c: c}
	if err := n.checkDegenerate(); err != nil {
		return err
	}
	t.a, t.b, t.c = a, b, c
	t.srs = a.srs
	return nil
}

// AddInteriorRing always fails: triangles admit no holes.
func (t *Triangle) AddInteriorRing(*LinearRing) error {
	return fmt.Errorf("%w: triangle cannot have interior rings", ErrUnsupportedOperation)
}

// Vertices returns the three corner points.
func (t *Triangle) Vertices() (Point, Point, Point) { return t.a, t.b, t.c }

// SRS returns the spatial reference system tag.
func (t *Triangle) SRS() SRS { return t.srs }

// IsEmpty always reports false: a constructed triangle has vertices.
func (t *Triangle) IsEmpty() bool { return false }

// Area is half the absolute cross product of two edge vectors.
func (t *Triangle) Area() float64 {
	return math.Abs(Orientation(t.a, t.b, t.c)) / 2
}

// Centroid is the arithmetic mean of the vertices, exact for triangles.
func (t *Triangle) Centroid() (Point, error) {
	p := Point{
		X:   (t.a.X + t.b.X + t.c.X) / 3,
		Y:   (t.a.Y + t.b.Y + t.c.Y) / 3,
		srs: t.srs,
	}
	if t.is3D() {
		p.Z = (t.a.Z + t.b.Z + t.c.Z) / 3
		p.dim = XYZ
	}
	return p, nil
}

// PointOnSurface returns the centroid, which is always interior for a
// triangle.
func (t *Triangle) PointOnSurface() (Point, error) { return t.Centroid() }

func (t *Triangle) is3D() bool {
	return t.a.dim.HasZ() && t.b.dim.HasZ() && t.c.dim.HasZ()
}

// Barycentric returns the barycentric weights of (x, y) with respect to
// the triangle's vertices. The weights sum to 1 and are all non-negative
// when the point is inside or on the triangle.
func (t *Triangle) Barycentric(x, y float64) (wa, wb, wc float64) {
	denom := (t.b.Y-t.c.Y)*(t.a.X-t.c.X) + (t.c.X-t.b.X)*(t.a.Y-t.c.Y)
	wa = ((t.b.Y-t.c.Y)*(x-t.c.X) + (t.c.X-t.b.X)*(y-t.c.Y)) / denom
	wb = ((t.c.Y-t.a.Y)*(x-t.c.X) + (t.a.X-t.c.X)*(y-t.c.Y)) / denom
	wc = 1 - wa - wb
	return wa, wb, wc
}

// ContainsPoint reports whether p is inside the triangle or on its
// boundary, via barycentric coordinates.
func (t *Triangle) ContainsPoint(p Point) bool {
	wa, wb, wc := t.Barycentric(p.X, p.Y)
	return wa >= -Epsilon && wb >= -Epsilon && wc >= -Epsilon
}

// containsPointStrict reports whether p is strictly interior.
func (t *Triangle) containsPointStrict(p Point) bool {
	wa, wb, wc := t.Barycentric(p.X, p.Y)
	return wa > Epsilon && wb > Epsilon && wc > Epsilon
}

// InterpolateZ returns the plane elevation of the triangle's facet at
// (x, y). ok is false when the point is outside the triangle or the
// vertices carry no Z.
func (t *Triangle) InterpolateZ(x, y float64) (float64, bool) {
	if !t.is3D() {
		return 0, false
	}
	wa, wb, wc := t.Barycentric(x, y)
	if wa < -Epsilon || wb < -Epsilon || wc < -Epsilon {
		return 0, false
	}
	return wa*t.a.Z + wb*t.b.Z + wc*t.c.Z, true
}

// Angles returns the three interior angles in radians, at the first,
// second and third vertex respectively. They sum to pi.
func (t *Triangle) Angles() (float64, float64, float64) {
	return vertexAngle(t.a, t.b, t.c), vertexAngle(t.b, t.c, t.a), vertexAngle(t.c, t.a, t.b)
}

// vertexAngle returns the interior angle at v between edges (v,p) and
// (v,q), via atan2 of the cross and dot products of the edge vectors.
func vertexAngle(v, p, q Point) float64 {
	ux, uy := p.X-v.X, p.Y-v.Y
	wx, wy := q.X-v.X, q.Y-v.Y
	return math.Abs(math.Atan2(ux*wy-uy*wx, ux*wx+uy*wy))
}

// Circumcircle returns the center and radius of the circle through the
// three vertices.
func (t *Triangle) Circumcircle() (Point, float64) {
	ax, ay := t.a.X, t.a.Y
	bx, by := t.b.X, t.b.Y
	cx, cy := t.c.X, t.c.Y
	d := 2 * (ax*(by-cy) + bx*(cy-ay) + cx*(ay-by))
	if math.Abs(d) < Epsilon {
		return Point{srs: t.srs}, math.Inf(1)
	}
	ux := ((ax*ax+ay*ay)*(by-cy) + (bx*bx+by*by)*(cy-ay) + (cx*cx+cy*cy)*(ay-by)) / d
	uy := ((ax*ax+ay*ay)*(cx-bx) + (bx*bx+by*by)*(ax-cx) + (cx*cx+cy*cy)*(bx-ax)) / d
	center := Point{X: ux, Y: uy, srs: t.srs}
	return center, math.Hypot(ux-ax, uy-ay)
}

// Normal returns the unit normal vector of the triangle's facet in three
// dimensions. Vertices without a Z coordinate lie in the z=0 plane.
func (t *Triangle) Normal() (nx, ny, nz float64) {
	v1x, v1y, v1z := t.b.X-t.a.X, t.b.Y-t.a.Y, t.b.Z-t.a.Z
	v2x, v2y, v2z := t.c.X-t.a.X, t.c.Y-t.a.Y, t.c.Z-t.a.Z
	nx = v1y*v2z - v1z*v2y
	ny = v1z*v2x - v1x*v2z
	nz = v1x*v2y - v1y*v2x
	if l := math.Sqrt(nx*nx + ny*ny + nz*nz); l > 0 {
		nx, ny, nz = nx/l, ny/l, nz/l
	}
	return nx, ny, nz
}

// Area3D returns the facet area in three dimensions, half the magnitude of
// the edge cross product.
func (t *Triangle) Area3D() float64 {
	v1x, v1y, v1z := t.b.X-t.a.X, t.b.Y-t.a.Y, t.b.Z-t.a.Z
	v2x, v2y, v2z := t.c.X-t.a.X, t.c.Y-t.a.Y, t.c.Z-t.a.Z
	cx := v1y*v2z - v1z*v2y
	cy := v1z*v2x - v1x*v2z
	cz := v1x*v2y - v1y*v2x
	return math.Sqrt(cx*cx+cy*cy+cz*cz) / 2
}

// AsPolygon returns the triangle as a general polygon with a CCW exterior
// ring.
func (t *Triangle) AsPolygon() *Polygon {
	a, b, c := t.a, t.b, t.c
	if Orientation(a, b, c) < 0 {
		b, c = c, b
	}
	ring := MustLinearRing(NewLinearRing([]Point{a, b, c, a}))
	return MustPolygon(NewPolygon(ring))
}

// Boundary returns the triangle outline as a multi-curve.
func (t *Triangle) Boundary() *MultiLineString {
	return t.AsPolygon().Boundary()
}

// Bounds gives the extent of the three vertices.
func (t *Triangle) Bounds() *Bounds {
	b := NewBounds()
	b.extendPoints([]Point{t.a, t.b, t.c})
	return b
}

// Clone returns a copy.
func (t *Triangle) Clone() Geom {
	c := *t
	return &c
}

// WKT renders the triangle in polygon form, matching the text produced for
// any other surface, e.g. "POLYGON ((0 0, 1 0, 0 1, 0 0))".
func (t *Triangle) WKT() string {
	pts := []Point{t.a, t.b, t.c, t.a}
	return "POLYGON" + dimOf(pts).wktTag() + " (" + wktCoordList(pts) + ")"
}

// edge returns the triangle's ith edge (0..2) as its endpoint pair.
func (t *Triangle) edge(i int) (Point, Point) {
	switch i {
	case 0:
		return t.a, t.b
	case 1:
		return t.b, t.c
	default:
		return t.c, t.a
	}
}
