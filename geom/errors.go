package geom

import "errors"

// Sentinel errors for the distinguishable failure kinds raised by
// constructors, mutators and accessors. Raise sites wrap them with
// fmt.Errorf("...: %w", ...) so callers can test with errors.Is.
var (
	// ErrInvalidCoordinate reports a non-finite coordinate, or a
	// longitude/latitude outside its valid range for geographic systems.
	ErrInvalidCoordinate = errors.New("geom: invalid coordinate")

	// ErrEmptyGeometry reports an operation that requires at least one
	// element invoked on an empty geometry.
	ErrEmptyGeometry = errors.New("geom: empty geometry")

	// ErrIndexOutOfRange reports a 1-indexed accessor called outside
	// [1, count].
	ErrIndexOutOfRange = errors.New("geom: index out of range")

	// ErrOutOfRange reports a scalar argument outside its valid
	// interval, e.g. an interpolation distance beyond the curve length.
	ErrOutOfRange = errors.New("geom: argument out of range")

	// ErrInvalidRing reports a ring that fails its closure, minimum
	// point, self-intersection or containment checks.
	ErrInvalidRing = errors.New("geom: invalid ring")

	// ErrDegenerateTriangle reports three collinear or coincident
	// vertices.
	ErrDegenerateTriangle = errors.New("geom: degenerate triangle")

	// ErrUnsupportedOperation reports an operation the receiving type
	// does not admit, e.g. adding an interior ring to a Triangle.
	ErrUnsupportedOperation = errors.New("geom: unsupported operation")

	// ErrDuplicatePoint reports coincident input points where distinct
	// ones are required, e.g. in triangulation input.
	ErrDuplicatePoint = errors.New("geom: duplicate point")

	// ErrTopology reports an inconsistent adjacency or neighbor
	// relationship, e.g. a triangle added to a TIN that overlaps or is
	// disconnected from the existing surface.
	ErrTopology = errors.New("geom: inconsistent topology")
)
