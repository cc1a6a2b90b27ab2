package geom

import (
	"fmt"
	"math"
	"sort"
)

// TIN is a triangulated irregular network: a polyhedral surface restricted
// to triangle patches, with a derived neighbor relation of up to three
// adjacent triangles per patch. Neighbor and edge indices are rebuilt
// whenever the triangle set changes.
type TIN struct {
	triangles []*Triangle
	srs       SRS

	// edges maps each undirected triangle edge to the indices of the
	// triangles it occurs in.
	edges map[edgeKey][]int
	// neighbors[i] holds up to three triangle indices sharing an edge
	// with triangle i; unused slots are -1.
	neighbors [][3]int
}

// NewTIN builds a network from clones of tris, validating connectivity
// the same way repeated AddTriangle calls would.
func NewTIN(tris []*Triangle) (*TIN, error) {
	t := &TIN{}
	for _, tr := range tris {
		if err := t.AddTriangle(tr); err != nil {
			return nil, err
		}
	}
	return t, nil
}

// SRS returns the spatial reference system tag.
func (t *TIN) SRS() SRS { return t.srs }

// NumTriangles returns the number of triangle patches.
func (t *TIN) NumTriangles() int { return len(t.triangles) }

// IsEmpty reports whether the network has no triangles.
func (t *TIN) IsEmpty() bool { return len(t.triangles) == 0 }

// TriangleN returns a copy of the nth triangle, 1-indexed.
func (t *TIN) TriangleN(n int) (*Triangle, error) {
	if n < 1 || n > len(t.triangles) {
		return nil, fmt.Errorf("%w: triangle %d of %d", ErrIndexOutOfRange, n, len(t.triangles))
	}
	c := *t.triangles[n-1]
	return &c, nil
}

// AddTriangle appends a copy of tr. Once the network is non-empty the new
// triangle must share an edge with an existing one and must not overlap
// any existing triangle; violations report ErrTopology.
func (t *TIN) AddTriangle(tr *Triangle) error {
	if tr == nil {
		return fmt.Errorf("%w: nil triangle", ErrDegenerateTriangle)
	}
	if err := tr.checkDegenerate(); err != nil {
		return err
	}
	if len(t.triangles) > 0 {
		shared := false
		for i := 0; i < 3; i++ {
			a, b := tr.edge(i)
			if len(t.edges[newEdgeKey(a, b)]) > 0 {
				shared = true
				break
			}
		}
		if !shared {
			return fmt.Errorf("%w: triangle shares no edge with the network", ErrTopology)
		}
		for _, ex := range t.triangles {
			if trianglesOverlap(tr, ex) {
				return fmt.Errorf("%w: triangle overlaps the network", ErrTopology)
			}
		}
	} else {
		t.srs = tr.srs
	}
	c := *tr
	t.triangles = append(t.triangles, &c)
	t.rebuildNeighbors()
	return nil
}

// trianglesOverlap reports whether the triangle interiors intersect: a
// vertex of one strictly inside the other, or properly crossing edges.
func trianglesOverlap(a, b *Triangle) bool {
	for _, v := range []Point{a.a, a.b, a.c} {
		if b.containsPointStrict(v) {
			return true
		}
	}
	for _, v := range []Point{b.a, b.b, b.c} {
		if a.containsPointStrict(v) {
			return true
		}
	}
	for i := 0; i < 3; i++ {
		a1, a2 := a.edge(i)
		for j := 0; j < 3; j++ {
			b1, b2 := b.edge(j)
			if SegmentsCross(a1, a2, b1, b2) {
				return true
			}
		}
	}
	return false
}

// rebuildNeighbors recomputes the edge map and per-triangle neighbor
// slots from scratch.
func (t *TIN) rebuildNeighbors() {
	edges := map[edgeKey][]int{}
	for i, tr := range t.triangles {
		for e := 0; e < 3; e++ {
			a, b := tr.edge(e)
			k := newEdgeKey(a, b)
			edges[k] = append(edges[k], i)
		}
	}
	neighbors := make([][3]int, len(t.triangles))
	counts := make([]int, len(t.triangles))
	for i := range neighbors {
		neighbors[i] = [3]int{-1, -1, -1}
	}
	for _, owners := range edges {
		if len(owners) != 2 {
			continue
		}
		i, j := owners[0], owners[1]
		if counts[i] < 3 {
			neighbors[i][counts[i]] = j
			counts[i]++
		}
		if counts[j] < 3 {
			neighbors[j][counts[j]] = i
			counts[j]++
		}
	}
	t.edges = edges
	t.neighbors = neighbors
}

// Neighbors returns the 1-indexed indices of the triangles adjacent to
// triangle n.
func (t *TIN) Neighbors(n int) ([]int, error) {
	if n < 1 || n > len(t.triangles) {
		return nil, fmt.Errorf("%w: triangle %d of %d", ErrIndexOutOfRange, n, len(t.triangles))
	}
	var out []int
	for _, j := range t.neighbors[n-1] {
		if j >= 0 {
			out = append(out, j+1)
		}
	}
	sort.Ints(out)
	return out, nil
}

// Validate checks neighbor symmetry, reporting ErrTopology on
// inconsistency.
func (t *TIN) Validate() error {
	for i, ns := range t.neighbors {
		for _, j := range ns {
			if j < 0 {
				continue
			}
			back := false
			for _, k := range t.neighbors[j] {
				if k == i {
					back = true
					break
				}
			}
			if !back {
				return fmt.Errorf("%w: neighbor relation not symmetric between triangles %d and %d", ErrTopology, i+1, j+1)
			}
		}
	}
	return nil
}

// Closed reports whether every edge is shared by exactly two triangles.
func (t *TIN) Closed() bool {
	if t.IsEmpty() {
		return false
	}
	for _, owners := range t.edges {
		if len(owners) != 2 {
			return false
		}
	}
	return true
}

// Area is the sum of the planar triangle areas.
func (t *TIN) Area() float64 {
	a := 0.0
	for _, tr := range t.triangles {
		a += tr.Area()
	}
	return a
}

// Area3D is the sum of the triangle facet areas in three dimensions.
func (t *TIN) Area3D() float64 {
	a := 0.0
	for _, tr := range t.triangles {
		a += tr.Area3D()
	}
	return a
}

// Centroid is the area-weighted average of the triangle centroids.
func (t *TIN) Centroid() (Point, error) {
	if t.IsEmpty() {
		return Point{}, fmt.Errorf("%w: centroid of empty tin", ErrEmptyGeometry)
	}
	var sx, sy, sa float64
	for _, tr := range t.triangles {
		c, _ := tr.Centroid()
		a := tr.Area()
		sx += c.X * a
		sy += c.Y * a
		sa += a
	}
	if sa < Epsilon {
		return Point{}, fmt.Errorf("%w: centroid of zero-area tin", ErrEmptyGeometry)
	}
	return Point{X: sx / sa, Y: sy / sa, srs: t.srs}, nil
}

// PointOnSurface returns the centroid of the largest triangle.
func (t *TIN) PointOnSurface() (Point, error) {
	if t.IsEmpty() {
		return Point{}, fmt.Errorf("%w: point on empty tin", ErrEmptyGeometry)
	}
	var largest *Triangle
	best := -1.0
	for _, tr := range t.triangles {
		if a := tr.Area(); a > best {
			best = a
			largest = tr
		}
	}
	return largest.Centroid()
}

// ContainsPoint reports whether any triangle contains pt in the XY plane.
func (t *TIN) ContainsPoint(pt Point) bool {
	for _, tr := range t.triangles {
		if tr.ContainsPoint(pt) {
			return true
		}
	}
	return false
}

// is3D reports whether every triangle carries elevations.
func (t *TIN) is3D() bool {
	if t.IsEmpty() {
		return false
	}
	for _, tr := range t.triangles {
		if !tr.is3D() {
			return false
		}
	}
	return true
}

// InterpolateZ returns the surface elevation at (x, y) by barycentric
// interpolation within the containing triangle. ok is false when the
// point lies outside every triangle or the network carries no elevations;
// that is an expected outcome, not an error.
func (t *TIN) InterpolateZ(x, y float64) (float64, bool) {
	if !t.is3D() {
		return 0, false
	}
	for _, tr := range t.triangles {
		if z, ok := tr.InterpolateZ(x, y); ok {
			return z, true
		}
	}
	return 0, false
}

// SlopeAspectAt estimates the slope (radians from horizontal) and aspect
// (radians clockwise from +y) of the surface at (x, y) by central
// differences with sample spacing delta. Samples falling off the surface
// reuse the center elevation.
func (t *TIN) SlopeAspectAt(x, y, delta float64) (slope, aspect float64, err error) {
	if delta <= 0 {
		delta = 0.1
	}
	z0, ok := t.InterpolateZ(x, y)
	if !ok {
		return 0, 0, fmt.Errorf("%w: point (%v, %v) not on the surface", ErrEmptyGeometry, x, y)
	}
	sample := func(sx, sy float64) float64 {
		if z, ok := t.InterpolateZ(sx, sy); ok {
			return z
		}
		return z0
	}
	dzdx := (sample(x+delta, y) - sample(x-delta, y)) / (2 * delta)
	dzdy := (sample(x, y+delta) - sample(x, y-delta)) / (2 * delta)
	slope = math.Atan(math.Hypot(dzdx, dzdy))
	if dzdx == 0 && dzdy == 0 {
		return slope, 0, nil
	}
	aspect = math.Atan2(dzdx, dzdy)
	if aspect < 0 {
		aspect += 2 * math.Pi
	}
	return slope, aspect, nil
}

// vertices returns the distinct vertices of the network.
func (t *TIN) vertices() []Point {
	seen := map[coordKey]bool{}
	var out []Point
	for _, tr := range t.triangles {
		for _, v := range []Point{tr.a, tr.b, tr.c} {
			k := newCoordKey(v.X, v.Y, 0)
			if !seen[k] {
				seen[k] = true
				out = append(out, v)
			}
		}
	}
	return out
}

// Simplify decimates the network: vertices are ranked by a local
// importance score (mean absolute elevation difference to the vertices
// they share a triangle with) and greedily discarded, least important
// first, while re-triangulating and keeping the interpolation error
// against the original surface at every discarded vertex within maxError.
// This is a heuristic decimation, not a globally optimal simplification.
func (t *TIN) Simplify(maxError float64) (*TIN, error) {
	if t.IsEmpty() {
		return &TIN{srs: t.srs}, nil
	}
	if !t.is3D() {
		return nil, fmt.Errorf("%w: simplify requires elevations", ErrUnsupportedOperation)
	}
	if maxError < 0 {
		return nil, fmt.Errorf("%w: negative error bound", ErrOutOfRange)
	}
	verts := t.vertices()
	importance := t.vertexImportance(verts)
	order := make([]int, len(verts))
	for i := range order {
		order[i] = i
	}
	sort.Slice(order, func(i, j int) bool {
		return importance[order[i]] < importance[order[j]]
	})

	retained := make([]bool, len(verts))
	for i := range verts {
		retained[i] = true
	}
	remaining := len(verts)
	var discarded []Point
	result := t.Clone().(*TIN)
	for _, idx := range order {
		if remaining <= 3 {
			break
		}
		retained[idx] = false
		trial := make([]Point, 0, remaining-1)
		for i := range verts {
			if retained[i] {
				trial = append(trial, verts[i])
			}
		}
		candidate, err := Triangulate(trial)
		if err != nil {
			retained[idx] = true
			continue
		}
		if !withinErrorBound(candidate, append(discarded, verts[idx]), maxError) {
			retained[idx] = true
			continue
		}
		discarded = append(discarded, verts[idx])
		remaining--
		result = candidate
	}
	result.srs = t.srs
	return result, nil
}

// vertexImportance scores each vertex by the mean absolute elevation
// difference to its triangle-adjacent vertices.
func (t *TIN) vertexImportance(verts []Point) []float64 {
	index := map[coordKey]int{}
	for i, v := range verts {
		index[newCoordKey(v.X, v.Y, 0)] = i
	}
	adj := make([]map[int]bool, len(verts))
	for i := range adj {
		adj[i] = map[int]bool{}
	}
	for _, tr := range t.triangles {
		vs := []Point{tr.a, tr.b, tr.c}
		for i := 0; i < 3; i++ {
			for j := 0; j < 3; j++ {
				if i == j {
					continue
				}
				a := index[newCoordKey(vs[i].X, vs[i].Y, 0)]
				b := index[newCoordKey(vs[j].X, vs[j].Y, 0)]
				adj[a][b] = true
			}
		}
	}
	out := make([]float64, len(verts))
	for i, ns := range adj {
		if len(ns) == 0 {
			out[i] = math.Inf(1) // isolated vertices are never discarded
			continue
		}
		sum := 0.0
		for j := range ns {
			sum += math.Abs(verts[i].Z - verts[j].Z)
		}
		out[i] = sum / float64(len(ns))
	}
	return out
}

// withinErrorBound checks that the candidate surface reproduces the
// elevation of every discarded point within maxError. Points falling
// outside the candidate count as violations.
func withinErrorBound(candidate *TIN, discarded []Point, maxError float64) bool {
	for _, p := range discarded {
		z, ok := candidate.InterpolateZ(p.X, p.Y)
		if !ok || math.Abs(z-p.Z) > maxError {
			return false
		}
	}
	return true
}

// Bounds gives the combined extent of the triangles.
func (t *TIN) Bounds() *Bounds {
	b := NewBounds()
	for _, tr := range t.triangles {
		b.Extend(tr.Bounds())
	}
	return b
}

// Clone returns a deep copy with its own indices.
func (t *TIN) Clone() Geom {
	out := &TIN{srs: t.srs}
	for _, tr := range t.triangles {
		c := *tr
		out.triangles = append(out.triangles, &c)
	}
	out.rebuildNeighbors()
	return out
}

// AsPolyhedralSurface returns the network as a general polyhedral
// surface.
func (t *TIN) AsPolyhedralSurface() *PolyhedralSurface {
	var patches []*Polygon
	for _, tr := range t.triangles {
		patches = append(patches, tr.AsPolygon())
	}
	ps := NewPolyhedralSurface(patches)
	ps.srs = t.srs
	return ps
}

// WKT renders the network, e.g.
// "TIN (((0 0, 1 0, 0 1, 0 0)), ((...)))".
func (t *TIN) WKT() string {
	if t.IsEmpty() {
		return "TIN EMPTY"
	}
	tag := ""
	if t.is3D() {
		tag = " Z"
	}
	s := "TIN" + tag + " ("
	for i, tr := range t.triangles {
		if i > 0 {
			s += ", "
		}
		s += "(" + wktCoordList([]Point{tr.a, tr.b, tr.c, tr.a}) + ")"
	}
	return s + ")"
}
