package geom

import "fmt"

// PolyhedralSurface is an ordered collection of polygon patches with a
// derived adjacency topology keyed by undirected edge. The topology map is
// an auxiliary index, rebuilt whenever the patch set changes, never
// mutated in place.
type PolyhedralSurface struct {
	patches []*Polygon
	srs     SRS

	// edges maps each undirected edge to the indices of the patches it
	// occurs in.
	edges map[edgeKey][]int
	// neighbors[i] lists the patches sharing at least one edge with
	// patch i.
	neighbors [][]int
}

// edgeKey identifies an undirected edge by its quantized endpoints in
// canonical order, so (a,b) and (b,a) key identically and endpoints
// within Epsilon compare equal.
type edgeKey struct {
	p, q coordKey
}

func newEdgeKey(a, b Point) edgeKey {
	ka := newCoordKey(a.X, a.Y, a.Z)
	kb := newCoordKey(b.X, b.Y, b.Z)
	if kb.x < ka.x || (kb.x == ka.x && kb.y < ka.y) ||
		(kb.x == ka.x && kb.y == ka.y && kb.z < ka.z) {
		ka, kb = kb, ka
	}
	return edgeKey{p: ka, q: kb}
}

// NewPolyhedralSurface builds a surface from clones of patches.
func NewPolyhedralSurface(patches []*Polygon) *PolyhedralSurface {
	ps := &PolyhedralSurface{}
	for _, p := range patches {
		ps.patches = append(ps.patches, p.clonePolygon())
	}
	if len(patches) > 0 {
		ps.srs = patches[0].srs
	}
	ps.rebuildTopology()
	return ps
}

// SRS returns the spatial reference system tag.
func (ps *PolyhedralSurface) SRS() SRS { return ps.srs }

// NumPatches returns the number of patches.
func (ps *PolyhedralSurface) NumPatches() int { return len(ps.patches) }

// IsEmpty reports whether the surface has no patches.
func (ps *PolyhedralSurface) IsEmpty() bool { return len(ps.patches) == 0 }

// PatchN returns a copy of the nth patch, 1-indexed.
func (ps *PolyhedralSurface) PatchN(n int) (*Polygon, error) {
	if n < 1 || n > len(ps.patches) {
		return nil, fmt.Errorf("%w: patch %d of %d", ErrIndexOutOfRange, n, len(ps.patches))
	}
	return ps.patches[n-1].clonePolygon(), nil
}

// AddPatch appends a clone of p and rebuilds the topology.
func (ps *PolyhedralSurface) AddPatch(p *Polygon) error {
	if p == nil || p.IsEmpty() {
		return fmt.Errorf("%w: empty patch", ErrEmptyGeometry)
	}
	if len(ps.patches) == 0 {
		ps.srs = p.srs
	}
	ps.patches = append(ps.patches, p.clonePolygon())
	ps.rebuildTopology()
	return nil
}

// RemovePatch deletes the nth patch, 1-indexed, and rebuilds the topology.
func (ps *PolyhedralSurface) RemovePatch(n int) error {
	if n < 1 || n > len(ps.patches) {
		return fmt.Errorf("%w: patch %d of %d", ErrIndexOutOfRange, n, len(ps.patches))
	}
	ps.patches = append(ps.patches[:n-1], ps.patches[n:]...)
	ps.rebuildTopology()
	return nil
}

// patchEdges yields the undirected edges of a patch's exterior ring.
func patchEdges(p *Polygon) []edgeKey {
	if p.IsEmpty() {
		return nil
	}
	pts := p.rings[0].vertices
	out := make([]edgeKey, 0, len(pts)-1)
	for i := 1; i < len(pts); i++ {
		out = append(out, newEdgeKey(pts[i-1], pts[i]))
	}
	return out
}

// rebuildTopology recomputes the edge map and the reciprocal neighbor
// lists from scratch.
func (ps *PolyhedralSurface) rebuildTopology() {
	edges := map[edgeKey][]int{}
	for i, p := range ps.patches {
		for _, e := range patchEdges(p) {
			edges[e] = append(edges[e], i)
		}
	}
	neighbors := make([][]int, len(ps.patches))
	seen := make([]map[int]bool, len(ps.patches))
	for i := range seen {
		seen[i] = map[int]bool{}
	}
	for _, owners := range edges {
		for _, i := range owners {
			for _, j := range owners {
				if i != j && !seen[i][j] {
					seen[i][j] = true
					neighbors[i] = append(neighbors[i], j)
				}
			}
		}
	}
	ps.edges = edges
	ps.neighbors = neighbors
}

// Closed reports whether every edge is shared by exactly two patches,
// i.e. the boundary edge set is empty.
func (ps *PolyhedralSurface) Closed() bool {
	if ps.IsEmpty() {
		return false
	}
	for _, owners := range ps.edges {
		if len(owners) != 2 {
			return false
		}
	}
	return true
}

// BoundaryEdges returns the edges that occur in exactly one patch, as
// two-point curves.
func (ps *PolyhedralSurface) BoundaryEdges() *MultiLineString {
	ml := NewMultiLineStringSRS(nil, ps.srs)
	for _, p := range ps.patches {
		if p.IsEmpty() {
			continue
		}
		pts := p.rings[0].vertices
		for j := 1; j < len(pts); j++ {
			if len(ps.edges[newEdgeKey(pts[j-1], pts[j])]) == 1 {
				ml.Add(NewLineStringSRS([]Point{pts[j-1], pts[j]}, ps.srs))
			}
		}
	}
	return ml
}

// PatchNeighbors returns the indices (1-indexed) of the patches sharing
// an edge with patch n.
func (ps *PolyhedralSurface) PatchNeighbors(n int) ([]int, error) {
	if n < 1 || n > len(ps.patches) {
		return nil, fmt.Errorf("%w: patch %d of %d", ErrIndexOutOfRange, n, len(ps.patches))
	}
	out := make([]int, 0, len(ps.neighbors[n-1]))
	for _, j := range ps.neighbors[n-1] {
		out = append(out, j+1)
	}
	return out, nil
}

// Validate checks the symmetry of the derived neighbor relation,
// reporting ErrTopology on inconsistency.
func (ps *PolyhedralSurface) Validate() error {
	for i, ns := range ps.neighbors {
		for _, j := range ns {
			if !containsInt(ps.neighbors[j], i) {
				return fmt.Errorf("%w: neighbor relation not symmetric between patches %d and %d", ErrTopology, i+1, j+1)
			}
		}
	}
	return nil
}

func containsInt(s []int, v int) bool {
	for _, x := range s {
		if x == v {
			return true
		}
	}
	return false
}

// Area is the sum of the patch areas.
func (ps *PolyhedralSurface) Area() float64 {
	a := 0.0
	for _, p := range ps.patches {
		a += p.Area()
	}
	return a
}

// Centroid is the area-weighted average of the patch centroids.
func (ps *PolyhedralSurface) Centroid() (Point, error) {
	if ps.IsEmpty() {
		return Point{}, fmt.Errorf("%w: centroid of empty surface", ErrEmptyGeometry)
	}
	var sx, sy, sa float64
	for _, p := range ps.patches {
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
		return Point{}, fmt.Errorf("%w: centroid of zero-area surface", ErrEmptyGeometry)
	}
	return Point{X: sx / sa, Y: sy / sa, srs: ps.srs}, nil
}

// PointOnSurface returns an interior point of the largest patch.
func (ps *PolyhedralSurface) PointOnSurface() (Point, error) {
	if ps.IsEmpty() {
		return Point{}, fmt.Errorf("%w: point on empty surface", ErrEmptyGeometry)
	}
	var largest *Polygon
	best := -1.0
	for _, p := range ps.patches {
		if a := p.Area(); a > best {
			best = a
			largest = p
		}
	}
	return largest.PointOnSurface()
}

// ContainsPoint reports whether any patch contains pt in the XY plane.
func (ps *PolyhedralSurface) ContainsPoint(pt Point) bool {
	for _, p := range ps.patches {
		if p.ContainsPoint(pt) {
			return true
		}
	}
	return false
}

// Bounds gives the combined extent of the patches.
func (ps *PolyhedralSurface) Bounds() *Bounds {
	b := NewBounds()
	for _, p := range ps.patches {
		b.Extend(p.Bounds())
	}
	return b
}

// Clone returns a deep copy with its own topology index.
func (ps *PolyhedralSurface) Clone() Geom {
	return NewPolyhedralSurface(ps.patches)
}

// WKT renders the surface, e.g.
// "POLYHEDRALSURFACE (((0 0, 1 0, 1 1, 0 0)), ((...)))".
func (ps *PolyhedralSurface) WKT() string {
	if ps.IsEmpty() {
		return "POLYHEDRALSURFACE EMPTY"
	}
	s := "POLYHEDRALSURFACE" + dimOf(ps.patches[0].rings[0].vertices).wktTag() + " ("
	for i, p := range ps.patches {
		if i > 0 {
			s += ", "
		}
		s += p.wktBody()
	}
	return s + ")"
}
