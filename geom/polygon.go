package geom

import (
	"fmt"
	"math"
	"sort"
)

// Polygon is a surface bounded by one exterior ring and zero or more
// interior rings (holes). Construction and mutation normalize orientation:
// the exterior ring winds counter-clockwise, holes wind clockwise. Holes
// must lie inside the exterior ring and must not cross each other or the
// exterior boundary.
type Polygon struct {
	// rings[0] is the exterior; the rest are holes.
	rings []*LinearRing
	srs   SRS
}

// NewPolygon builds a polygon from an exterior ring and optional holes.
// Ring ownership is not shared: the rings are cloned in.
func NewPolygon(exterior *LinearRing, holes ...*LinearRing) (*Polygon, error) {
	p := &Polygon{}
	if exterior != nil && !exterior.IsEmpty() {
		if err := p.SetExteriorRing(exterior); err != nil {
			return nil, err
		}
		for _, h := range holes {
			if err := p.AddInteriorRing(h); err != nil {
				return nil, err
			}
		}
	} else if len(holes) > 0 {
		return nil, fmt.Errorf("%w: interior rings without an exterior ring", ErrInvalidRing)
	}
	return p, nil
}

// MustPolygon is a test and literal helper; it panics on invalid input.
func MustPolygon(p *Polygon, err error) *Polygon {
	if err != nil {
		panic(err)
	}
	return p
}

// SetExteriorRing replaces the exterior ring, normalizing it to
// counter-clockwise winding. All existing holes must remain inside the new
// exterior.
func (p *Polygon) SetExteriorRing(r *LinearRing) error {
	if r == nil || r.IsEmpty() {
		return fmt.Errorf("%w: empty exterior ring", ErrInvalidRing)
	}
	if !r.IsValid() {
		return fmt.Errorf("%w: exterior ring", ErrInvalidRing)
	}
	ext := r.cloneRing()
	if ext.IsCW() {
		ext = ext.Reverse()
	}
	for _, h := range p.holes() {
		if !ringInsideRing(h, ext) {
			return fmt.Errorf("%w: existing hole outside new exterior ring", ErrInvalidRing)
		}
	}
	if len(p.rings) == 0 {
		p.rings = []*LinearRing{ext}
	} else {
		p.rings[0] = ext
	}
	p.srs = ext.srs
	return nil
}

// AddInteriorRing appends a hole, normalizing it to clockwise winding. The
// hole must be a valid ring lying fully inside the exterior ring, and must
// not cross or nest with any existing hole.
func (p *Polygon) AddInteriorRing(r *LinearRing) error {
	if p.IsEmpty() {
		return fmt.Errorf("%w: interior ring on empty polygon", ErrInvalidRing)
	}
	if r == nil || r.IsEmpty() || !r.IsValid() {
		return fmt.Errorf("%w: interior ring", ErrInvalidRing)
	}
	hole := r.cloneRing()
	if hole.IsCCW() {
		hole = hole.Reverse()
	}
	if !ringInsideRing(hole, p.rings[0]) {
		return fmt.Errorf("%w: interior ring not inside exterior ring", ErrInvalidRing)
	}
	for _, h := range p.holes() {
		if ringsCross(hole, h) || ringInsideRing(hole, h) || ringInsideRing(h, hole) {
			return fmt.Errorf("%w: interior rings intersect", ErrInvalidRing)
		}
	}
	hole.srs = p.srs
	p.rings = append(p.rings, hole)
	return nil
}

// ringInsideRing reports whether every point of inner lies inside or on
// outer and no segments of the two rings cross.
func ringInsideRing(inner, outer *LinearRing) bool {
	for _, pt := range inner.open() {
		if locateInRing(pt, outer.open()) == Exterior {
			return false
		}
	}
	return !ringsCross(inner, outer)
}

// ringsCross reports whether any segment of a properly crosses any
// segment of b.
func ringsCross(a, b *LinearRing) bool {
	av, bv := a.vertices, b.vertices
	for i := 1; i < len(av); i++ {
		for j := 1; j < len(bv); j++ {
			if SegmentsCross(av[i-1], av[i], bv[j-1], bv[j]) {
				return true
			}
		}
	}
	return false
}

// SRS returns the spatial reference system tag.
func (p *Polygon) SRS() SRS { return p.srs }

// IsEmpty reports whether the polygon has no exterior ring.
func (p *Polygon) IsEmpty() bool { return len(p.rings) == 0 }

// ExteriorRing returns a copy of the exterior ring, or an empty ring for
// an empty polygon.
func (p *Polygon) ExteriorRing() *LinearRing {
	if p.IsEmpty() {
		return &LinearRing{srs: p.srs}
	}
	return p.rings[0].cloneRing()
}

// NumInteriorRing returns the number of holes.
func (p *Polygon) NumInteriorRing() int {
	if p.IsEmpty() {
		return 0
	}
	return len(p.rings) - 1
}

// InteriorRingN returns a copy of the nth hole, 1-indexed.
func (p *Polygon) InteriorRingN(n int) (*LinearRing, error) {
	if n < 1 || n > p.NumInteriorRing() {
		return nil, fmt.Errorf("%w: interior ring %d of %d", ErrIndexOutOfRange, n, p.NumInteriorRing())
	}
	return p.rings[n].cloneRing(), nil
}

func (p *Polygon) holes() []*LinearRing {
	if len(p.rings) < 2 {
		return nil
	}
	return p.rings[1:]
}

// ringPoints returns the open vertex lists of all rings, exterior first.
func (p *Polygon) ringPoints() [][]Point {
	out := make([][]Point, len(p.rings))
	for i, r := range p.rings {
		out[i] = r.open()
	}
	return out
}

// Area returns the exterior area minus the hole areas.
func (p *Polygon) Area() float64 {
	if p.IsEmpty() {
		return 0
	}
	a := p.rings[0].RingArea()
	for _, h := range p.holes() {
		a -= h.RingArea()
	}
	return a
}

// Centroid returns the area centroid, holes weighted negatively via the
// signed shoelace cross terms. Orientation normalization (exterior CCW,
// holes CW) makes the signed ring areas combine directly.
func (p *Polygon) Centroid() (Point, error) {
	if p.IsEmpty() {
		return Point{}, fmt.Errorf("%w: centroid of empty polygon", ErrEmptyGeometry)
	}
	var sx, sy, sa float64
	for _, r := range p.rings {
		cx, cy, a, ok := ringCentroid(r.open())
		if !ok {
			continue
		}
		sx += cx * a
		sy += cy * a
		sa += a
	}
	if math.Abs(sa) < Epsilon {
		return Point{}, fmt.Errorf("%w: centroid of zero-area polygon", ErrEmptyGeometry)
	}
	return Point{X: sx / sa, Y: sy / sa, srs: p.srs}, nil
}

// PointOnSurface returns a point guaranteed to lie in the polygon
// interior. The centroid is used when it qualifies; concave polygons and
// polygons whose centroid falls in a hole fall back to a horizontal
// scanline through the interior.
func (p *Polygon) PointOnSurface() (Point, error) {
	if p.IsEmpty() {
		return Point{}, fmt.Errorf("%w: point on empty polygon", ErrEmptyGeometry)
	}
	if c, err := p.Centroid(); err == nil {
		if locateInRings(c, p.ringPoints()) == Interior {
			return c, nil
		}
	}
	return p.scanlineInteriorPoint()
}

// scanlineInteriorPoint intersects a horizontal line through the polygon
// with every boundary segment and returns the midpoint of the widest
// interior interval. A few scan rows are tried so that degenerate rows
// (through vertices or holes) do not defeat the search.
func (p *Polygon) scanlineInteriorPoint() (Point, error) {
	b := p.Bounds()
	for _, f := range []float64{0.5, 0.25, 0.75, 0.375, 0.625} {
		y := b.MinY + f*b.Height()
		xs := p.scanCrossings(y)
		if len(xs) < 2 {
			continue
		}
		bestX, bestW := 0.0, -1.0
		for i := 0; i+1 < len(xs); i += 2 {
			if w := xs[i+1] - xs[i]; w > bestW {
				bestW = w
				bestX = (xs[i] + xs[i+1]) / 2
			}
		}
		cand := Point{X: bestX, Y: y, srs: p.srs}
		if bestW > 0 && locateInRings(cand, p.ringPoints()) == Interior {
			return cand, nil
		}
	}
	return Point{}, fmt.Errorf("%w: no interior point found", ErrEmptyGeometry)
}

// scanCrossings returns the sorted x coordinates where the horizontal line
// at y crosses the polygon boundary.
func (p *Polygon) scanCrossings(y float64) []float64 {
	var xs []float64
	for _, ring := range p.ringPoints() {
		n := len(ring)
		for i := 0; i < n; i++ {
			a, b := ring[i], ring[(i+1)%n]
			if (a.Y <= y) == (b.Y <= y) {
				continue
			}
			t := (y - a.Y) / (b.Y - a.Y)
			xs = append(xs, a.X+t*(b.X-a.X))
		}
	}
	sort.Float64s(xs)
	return xs
}

// ContainsPoint reports whether pt is in the polygon interior or on its
// boundary, holes excluded, by ray casting.
func (p *Polygon) ContainsPoint(pt Point) bool {
	if p.IsEmpty() || !p.Bounds().ContainsXY(pt.X, pt.Y) {
		return false
	}
	return locateInRings(pt, p.ringPoints()) != Exterior
}

// Locate classifies pt against the polygon.
func (p *Polygon) Locate(pt Point) Location {
	if p.IsEmpty() {
		return Exterior
	}
	return locateInRings(pt, p.ringPoints())
}

// Boundary returns all rings as a multi-curve.
func (p *Polygon) Boundary() *MultiLineString {
	ml := NewMultiLineStringSRS(nil, p.srs)
	for _, r := range p.rings {
		ml.Add(r.AsLineString())
	}
	return ml
}

// IsValid reports whether every ring is valid, holes lie inside the
// exterior, and holes are pairwise disjoint. Ring orientation is re-checked
// even though mutators normalize it.
func (p *Polygon) IsValid() bool {
	if p.IsEmpty() {
		return true
	}
	if !p.rings[0].IsValid() || !p.rings[0].IsCCW() {
		return false
	}
	hs := p.holes()
	for i, h := range hs {
		if !h.IsValid() || !h.IsCW() || !ringInsideRing(h, p.rings[0]) {
			return false
		}
		for _, h2 := range hs[i+1:] {
			if ringsCross(h, h2) || ringInsideRing(h, h2) || ringInsideRing(h2, h) {
				return false
			}
		}
	}
	return true
}

// Bounds gives the extent of the exterior ring.
func (p *Polygon) Bounds() *Bounds {
	b := NewBounds()
	if !p.IsEmpty() {
		b.extendPoints(p.rings[0].vertices)
	}
	return b
}

func (p *Polygon) clonePolygon() *Polygon {
	out := &Polygon{srs: p.srs}
	for _, r := range p.rings {
		out.rings = append(out.rings, r.cloneRing())
	}
	return out
}

// Clone returns a deep copy.
func (p *Polygon) Clone() Geom { return p.clonePolygon() }

// WKT renders the polygon, e.g. "POLYGON ((0 0, 1 0, 0 1, 0 0))".
func (p *Polygon) WKT() string {
	if p.IsEmpty() {
		return "POLYGON EMPTY"
	}
	return "POLYGON" + dimOf(p.rings[0].vertices).wktTag() + " " + p.wktBody()
}

// wktBody renders the parenthesized ring list shared by POLYGON and the
// patch lists of TIN and POLYHEDRALSURFACE.
func (p *Polygon) wktBody() string {
	s := "("
	for i, r := range p.rings {
		if i > 0 {
			s += ", "
		}
		s += wktCoordList(r.vertices)
	}
	return s + ")"
}
