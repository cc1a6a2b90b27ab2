package geom

import "fmt"

// MultiPolygon is an aggregate of polygons. When used as a simple
// geometry, member interiors must be pairwise disjoint; AddPolygon
// enforces this at the mutation site.
type MultiPolygon struct {
	polygons []*Polygon
	srs      SRS
}

// NewMultiPolygon builds an aggregate from clones of polys, rejecting
// members whose interiors overlap.
func NewMultiPolygon(polys []*Polygon) (*MultiPolygon, error) {
	mp := &MultiPolygon{}
	for _, p := range polys {
		if err := mp.AddPolygon(p); err != nil {
			return nil, err
		}
	}
	if len(polys) > 0 {
		mp.srs = polys[0].srs
	}
	return mp, nil
}

// MustMultiPolygon is a test and literal helper; it panics on invalid
// input.
func MustMultiPolygon(mp *MultiPolygon, err error) *MultiPolygon {
	if err != nil {
		panic(err)
	}
	return mp
}

// SRS returns the spatial reference system tag.
func (mp *MultiPolygon) SRS() SRS { return mp.srs }

// NumGeometries returns the number of member polygons.
func (mp *MultiPolygon) NumGeometries() int { return len(mp.polygons) }

// IsEmpty reports whether the aggregate has no members.
func (mp *MultiPolygon) IsEmpty() bool { return len(mp.polygons) == 0 }

// GeometryN returns a copy of the nth polygon, 1-indexed.
func (mp *MultiPolygon) GeometryN(n int) (*Polygon, error) {
	if n < 1 || n > len(mp.polygons) {
		return nil, fmt.Errorf("%w: geometry %d of %d", ErrIndexOutOfRange, n, len(mp.polygons))
	}
	return mp.polygons[n-1].clonePolygon(), nil
}

// AddPolygon appends a clone of p. A member whose interior overlaps an
// existing member's interior is rejected; touching along boundaries is
// allowed.
func (mp *MultiPolygon) AddPolygon(p *Polygon) error {
	if p == nil || p.IsEmpty() {
		return fmt.Errorf("%w: empty polygon member", ErrEmptyGeometry)
	}
	for _, q := range mp.polygons {
		if polygonInteriorsOverlap(p, q) {
			return fmt.Errorf("%w: polygon interiors overlap", ErrTopology)
		}
	}
	if len(mp.polygons) == 0 {
		mp.srs = p.srs
	}
	mp.polygons = append(mp.polygons, p.clonePolygon())
	return nil
}

// Remove deletes the first member equal to p and reports whether one was
// found. Equality is by value, not identity.
func (mp *MultiPolygon) Remove(p *Polygon) bool {
	for i, q := range mp.polygons {
		if polygonsEqual(q, p) {
			mp.polygons = append(mp.polygons[:i], mp.polygons[i+1:]...)
			return true
		}
	}
	return false
}

// Contains reports whether the aggregate holds a member equal to p.
func (mp *MultiPolygon) Contains(p *Polygon) bool {
	for _, q := range mp.polygons {
		if polygonsEqual(q, p) {
			return true
		}
	}
	return false
}

// Clear removes all members.
func (mp *MultiPolygon) Clear() { mp.polygons = nil }

func polygonsEqual(a, b *Polygon) bool {
	if len(a.rings) != len(b.rings) {
		return false
	}
	for i := range a.rings {
		av, bv := a.rings[i].vertices, b.rings[i].vertices
		if len(av) != len(bv) {
			return false
		}
		for j := range av {
			if !av[j].Equals(bv[j]) {
				return false
			}
		}
	}
	return true
}

// Polygons returns copies of the member polygons.
func (mp *MultiPolygon) Polygons() []*Polygon {
	out := make([]*Polygon, len(mp.polygons))
	for i, p := range mp.polygons {
		out[i] = p.clonePolygon()
	}
	return out
}

// Area is the sum of the member areas.
func (mp *MultiPolygon) Area() float64 {
	a := 0.0
	for _, p := range mp.polygons {
		a += p.Area()
	}
	return a
}

// Centroid is the area-weighted average of the member centroids.
func (mp *MultiPolygon) Centroid() (Point, error) {
	if mp.IsEmpty() {
		return Point{}, fmt.Errorf("%w: centroid of empty multipolygon", ErrEmptyGeometry)
	}
	var sx, sy, sa float64
	for _, p := range mp.polygons {
		c, err := p.Centroid()
		if err != nil {
			continue
		}
		a := p.Area()
		sx += c.X * a
		sy += c.Y * a
		sa += a
	}
	if sa < Epsilon {
		return Point{}, fmt.Errorf("%w: centroid of zero-area multipolygon", ErrEmptyGeometry)
	}
	return Point{X: sx / sa, Y: sy / sa, srs: mp.srs}, nil
}

// PointOnSurface returns an interior point of the member with the largest
// area.
func (mp *MultiPolygon) PointOnSurface() (Point, error) {
	if mp.IsEmpty() {
		return Point{}, fmt.Errorf("%w: point on empty multipolygon", ErrEmptyGeometry)
	}
	var largest *Polygon
	best := -1.0
	for _, p := range mp.polygons {
		if a := p.Area(); a > best {
			best = a
			largest = p
		}
	}
	return largest.PointOnSurface()
}

// ContainsPoint reports whether any member contains pt.
func (mp *MultiPolygon) ContainsPoint(pt Point) bool {
	for _, p := range mp.polygons {
		if p.ContainsPoint(pt) {
			return true
		}
	}
	return false
}

// Boundary returns the rings of all members as a multi-curve.
func (mp *MultiPolygon) Boundary() *MultiLineString {
	ml := NewMultiLineStringSRS(nil, mp.srs)
	for _, p := range mp.polygons {
		for _, r := range p.rings {
			ml.Add(r.AsLineString())
		}
	}
	return ml
}

// IsSimple reports whether every member is valid and member interiors are
// pairwise disjoint.
func (mp *MultiPolygon) IsSimple() bool {
	for i, p := range mp.polygons {
		if !p.IsValid() {
			return false
		}
		for _, q := range mp.polygons[i+1:] {
			if polygonInteriorsOverlap(p, q) {
				return false
			}
		}
	}
	return true
}

// Bounds gives the combined extent of the members.
func (mp *MultiPolygon) Bounds() *Bounds {
	b := NewBounds()
	for _, p := range mp.polygons {
		b.Extend(p.Bounds())
	}
	return b
}

// Clone returns a deep copy.
func (mp *MultiPolygon) Clone() Geom {
	out := &MultiPolygon{srs: mp.srs}
	for _, p := range mp.polygons {
		out.polygons = append(out.polygons, p.clonePolygon())
	}
	return out
}

// WKT renders the aggregate, e.g.
// "MULTIPOLYGON (((0 0, 1 0, 1 1, 0 0)), ((2 2, 3 2, 3 3, 2 2)))".
func (mp *MultiPolygon) WKT() string {
	if mp.IsEmpty() {
		return "MULTIPOLYGON EMPTY"
	}
	s := "MULTIPOLYGON ("
	for i, p := range mp.polygons {
		if i > 0 {
			s += ", "
		}
		s += p.wktBody()
	}
	return s + ")"
}
