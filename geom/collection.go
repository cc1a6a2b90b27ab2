package geom

import "fmt"

// GeometryCollection is an ordered, possibly heterogeneous aggregate of
// geometries. Elements are owned by value: they are cloned on insert and
// on retrieval.
type GeometryCollection struct {
	geoms []Geom
	srs   SRS
}

// NewGeometryCollection builds a collection from clones of gs.
func NewGeometryCollection(gs ...Geom) *GeometryCollection {
	gc := &GeometryCollection{}
	for _, g := range gs {
		gc.Append(g)
	}
	if len(gs) > 0 {
		gc.srs = gs[0].SRS()
	}
	return gc
}

// SRS returns the spatial reference system tag.
func (gc *GeometryCollection) SRS() SRS { return gc.srs }

// NumGeometries returns the number of elements.
func (gc *GeometryCollection) NumGeometries() int { return len(gc.geoms) }

// IsEmpty reports whether the collection has no elements.
func (gc *GeometryCollection) IsEmpty() bool { return len(gc.geoms) == 0 }

// GeometryN returns a clone of the nth element, 1-indexed.
func (gc *GeometryCollection) GeometryN(n int) (Geom, error) {
	if n < 1 || n > len(gc.geoms) {
		return nil, fmt.Errorf("%w: geometry %d of %d", ErrIndexOutOfRange, n, len(gc.geoms))
	}
	return gc.geoms[n-1].Clone(), nil
}

// Append adds a clone of g to the collection.
func (gc *GeometryCollection) Append(g Geom) {
	if g == nil {
		return
	}
	if len(gc.geoms) == 0 {
		gc.srs = g.SRS()
	}
	gc.geoms = append(gc.geoms, g.Clone())
}

// Remove deletes the first element equal to g by value and reports
// whether one was found.
func (gc *GeometryCollection) Remove(g Geom) bool {
	for i, m := range gc.geoms {
		if GeomEqual(m, g) {
			gc.geoms = append(gc.geoms[:i], gc.geoms[i+1:]...)
			return true
		}
	}
	return false
}

// Contains reports whether the collection holds an element equal to g by
// value.
func (gc *GeometryCollection) Contains(g Geom) bool {
	for _, m := range gc.geoms {
		if GeomEqual(m, g) {
			return true
		}
	}
	return false
}

// Clear removes all elements.
func (gc *GeometryCollection) Clear() { gc.geoms = nil }

// Bounds gives the combined extent of the elements.
func (gc *GeometryCollection) Bounds() *Bounds {
	b := NewBounds()
	for _, g := range gc.geoms {
		b.Extend(g.Bounds())
	}
	return b
}

// Clone returns a deep copy.
func (gc *GeometryCollection) Clone() Geom {
	out := &GeometryCollection{srs: gc.srs}
	for _, g := range gc.geoms {
		out.geoms = append(out.geoms, g.Clone())
	}
	return out
}

// WKT renders the collection, e.g.
// "GEOMETRYCOLLECTION (POINT (4 6), LINESTRING (4 6, 7 10))".
func (gc *GeometryCollection) WKT() string {
	if gc.IsEmpty() {
		return "GEOMETRYCOLLECTION EMPTY"
	}
	s := "GEOMETRYCOLLECTION ("
	for i, g := range gc.geoms {
		if i > 0 {
			s += ", "
		}
		s += g.WKT()
	}
	return s + ")"
}
