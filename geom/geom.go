// Package geom implements a planar geometry kernel following the OGC
// Simple Features type hierarchy: points, curves, surfaces, triangulated
// surfaces, and their collections, together with the measures (length,
// area, centroid), predicates (contains, intersects, touches, equals) and
// set operations (intersection, union, difference, buffer, convex hull)
// defined over them.
//
// All computation is floating point with an epsilon tolerance; there is no
// exact or interval arithmetic. Epsilon is the documented default and every
// comparison that tolerates noise either uses it or takes an explicit
// tolerance parameter.
//
// Geometries are tree shaped: containers copy their elements on insert and
// on retrieval, so no mutable state is ever shared between a container and
// its caller. Instances are safe for concurrent reads once construction and
// mutation are finished, and are not safe for concurrent mutation.
package geom

// Epsilon is the default tolerance for coordinate comparisons.
const Epsilon = 1e-10

// Dim describes which coordinate dimensions a geometry carries.
type Dim uint8

const (
	// XY is a plain two dimensional coordinate.
	XY Dim = iota
	// XYZ adds an elevation.
	XYZ
	// XYM adds a linear measure.
	XYM
	// XYZM adds both.
	XYZM
)

// HasZ reports whether the dimension includes an elevation.
func (d Dim) HasZ() bool { return d == XYZ || d == XYZM }

// HasM reports whether the dimension includes a measure.
func (d Dim) HasM() bool { return d == XYM || d == XYZM }

// wktTag returns the dimension suffix used in well-known text, with a
// leading space ("" for plain XY).
func (d Dim) wktTag() string {
	switch d {
	case XYZ:
		return " Z"
	case XYM:
		return " M"
	case XYZM:
		return " ZM"
	}
	return ""
}

// CoordSys identifies the kind of coordinate system a geometry's
// coordinates are expressed in. It is carried opaquely; the kernel never
// transforms between systems.
type CoordSys int

const (
	Cartesian2D CoordSys = iota
	Cartesian3D
	Geographic2D
	Geographic3D
)

// SRS tags a geometry with a spatial reference system: an opaque SRID and
// the coordinate system kind. The zero value is Cartesian 2D with no SRID.
type SRS struct {
	ID     int
	System CoordSys
}

// Geographic reports whether the reference system uses geographic
// (longitude/latitude) coordinates.
func (s SRS) Geographic() bool {
	return s.System == Geographic2D || s.System == Geographic3D
}

// Geom is the interface shared by every geometry type in this package.
type Geom interface {
	// Bounds gives the rectangular extent, empty for empty geometries.
	Bounds() *Bounds
	// IsEmpty reports whether the geometry has no coordinates.
	IsEmpty() bool
	// WKT renders the geometry as well-known text.
	WKT() string
	// Clone returns a deep copy sharing no mutable state with the
	// original. The spatial reference system is propagated.
	Clone() Geom
	// SRS returns the spatial reference system tag.
	SRS() SRS
}

// Curve is the behavior shared by the curve family (LineString and
// LinearRing).
type Curve interface {
	Geom
	// NumPoints returns the number of points in the curve.
	NumPoints() int
	// PointN returns the nth point, 1-indexed.
	PointN(n int) (Point, error)
	// Length is the sum of Euclidean segment lengths.
	Length() float64
	// StartPoint fails with ErrEmptyGeometry on an empty curve.
	StartPoint() (Point, error)
	// EndPoint fails with ErrEmptyGeometry on an empty curve.
	EndPoint() (Point, error)
	// Closed reports whether the first point equals the last.
	Closed() bool
	// IsSimple reports whether no two non-adjacent segments cross.
	IsSimple() bool
	// Boundary is empty for a closed curve, else its two endpoints.
	Boundary() *MultiPoint
}

// Surface is the behavior shared by the surface family (Polygon, Triangle,
// PolyhedralSurface, TIN and MultiPolygon).
type Surface interface {
	Geom
	// Area is the total surface area, holes subtracted.
	Area() float64
	// Centroid fails with ErrEmptyGeometry on an empty or zero-area
	// surface.
	Centroid() (Point, error)
	// PointOnSurface returns a point guaranteed to lie on the surface.
	PointOnSurface() (Point, error)
	// ContainsPoint reports whether p is in the interior or on the
	// boundary of the surface.
	ContainsPoint(p Point) bool
}
