package geom

// shape is the point set decomposition the spatial predicates work on:
// bare points, vertex chains, and areal polygons.
type shape struct {
	pts    []Point
	chains [][]Point
	polys  []*Polygon
}

func decompose(g Geom) shape {
	var s shape
	switch v := g.(type) {
	case Point:
		s.pts = append(s.pts, v)
	case *MultiPoint:
		s.pts = append(s.pts, v.points...)
	case *LineString:
		if len(v.vertices) > 0 {
			s.chains = append(s.chains, v.vertices)
		}
	case *LinearRing:
		if len(v.vertices) > 0 {
			s.chains = append(s.chains, v.vertices)
		}
	case *MultiLineString:
		for _, l := range v.lines {
			if len(l.vertices) > 0 {
				s.chains = append(s.chains, l.vertices)
			}
		}
	case *Polygon:
		if !v.IsEmpty() {
			s.polys = append(s.polys, v)
		}
	case *Triangle:
		s.polys = append(s.polys, v.AsPolygon())
	case *MultiPolygon:
		s.polys = append(s.polys, v.polygons...)
	case *PolyhedralSurface:
		s.polys = append(s.polys, v.patches...)
	case *TIN:
		for _, tr := range v.triangles {
			s.polys = append(s.polys, tr.AsPolygon())
		}
	case *GeometryCollection:
		for _, m := range v.geoms {
			ms := decompose(m)
			s.pts = append(s.pts, ms.pts...)
			s.chains = append(s.chains, ms.chains...)
			s.polys = append(s.polys, ms.polys...)
		}
	}
	return s
}

func (s shape) empty() bool {
	return len(s.pts) == 0 && len(s.chains) == 0 && len(s.polys) == 0
}

// topoDim is 0 for point sets, 1 for curves, 2 for areal shapes.
func (s shape) topoDim() int {
	if len(s.polys) > 0 {
		return 2
	}
	if len(s.chains) > 0 {
		return 1
	}
	return 0
}

func (s shape) segments(fn func(a, b Point) bool) bool {
	for _, ch := range s.chains {
		for i := 0; i+1 < len(ch); i++ {
			if fn(ch[i], ch[i+1]) {
				return true
			}
		}
	}
	for _, p := range s.polys {
		for _, ring := range p.ringPoints() {
			for i := 0; i+1 < len(ring); i++ {
				if fn(ring[i], ring[i+1]) {
					return true
				}
			}
		}
	}
	return false
}

// segmentsTouch reports whether two segments share any point: a proper
// crossing, an endpoint on the other segment, or a collinear overlap.
func segmentsTouch(a1, a2, b1, b2 Point) bool {
	if SegmentsCross(a1, a2, b1, b2) {
		return true
	}
	return PointOnSegment(a1, b1, b2, Epsilon) || PointOnSegment(a2, b1, b2, Epsilon) ||
		PointOnSegment(b1, a1, a2, Epsilon) || PointOnSegment(b2, a1, a2, Epsilon)
}

// segmentsOverlap reports a collinear overlap of positive length.
func segmentsOverlap(a1, a2, b1, b2 Point) bool {
	if absFloat(Orientation(a1, a2, b1)) > Epsilon || absFloat(Orientation(a1, a2, b2)) > Epsilon {
		return false
	}
	dx, dy := a2.X-a1.X, a2.Y-a1.Y
	den := dx*dx + dy*dy
	if den < Epsilon {
		return false
	}
	t1 := ((b1.X-a1.X)*dx + (b1.Y-a1.Y)*dy) / den
	t2 := ((b2.X-a1.X)*dx + (b2.Y-a1.Y)*dy) / den
	if t1 > t2 {
		t1, t2 = t2, t1
	}
	lo, hi := maxFloat(t1, 0), minFloat(t2, 1)
	return hi-lo > Epsilon
}

func absFloat(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}

func minFloat(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}

func maxFloat(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}

// locateInShape classifies p relative to a shape's point set. Boundary
// means p falls on a chain or a polygon ring.
func (s shape) locate(p Point) Location {
	for _, q := range s.pts {
		if p.Equals(q) {
			return Interior
		}
	}
	for _, ch := range s.chains {
		for i := 0; i+1 < len(ch); i++ {
			if PointOnSegment(p, ch[i], ch[i+1], Epsilon) {
				return OnBoundary
			}
		}
	}
	for _, poly := range s.polys {
		if loc := poly.Locate(p); loc != Exterior {
			return loc
		}
	}
	return Exterior
}

// Intersects reports whether the point sets of a and b share at least one
// point. Shapes that merely touch at a boundary intersect. The extent
// prefilter is inflated by Epsilon to match the tolerance of the segment
// and ring tests.
func Intersects(a, b Geom) bool {
	if !a.Bounds().Expanded(Epsilon).Overlaps(b.Bounds()) {
		return false
	}
	sa, sb := decompose(a), decompose(b)
	if sa.empty() || sb.empty() {
		return false
	}
	for _, p := range sa.pts {
		if sb.locate(p) != Exterior {
			return true
		}
	}
	for _, p := range sb.pts {
		if sa.locate(p) != Exterior {
			return true
		}
	}
	if sa.segments(func(a1, a2 Point) bool {
		return sb.segments(func(b1, b2 Point) bool {
			return segmentsTouch(a1, a2, b1, b2)
		})
	}) {
		return true
	}
	// One areal shape may swallow the other whole without any boundary
	// contact, so test a representative vertex each way.
	if len(sa.polys) > 0 {
		for _, ch := range sb.chains {
			if sa.locate(ch[0]) != Exterior {
				return true
			}
		}
		for _, poly := range sb.polys {
			if sa.locate(poly.rings[0].vertices[0]) != Exterior {
				return true
			}
		}
	}
	if len(sb.polys) > 0 {
		for _, ch := range sa.chains {
			if sb.locate(ch[0]) != Exterior {
				return true
			}
		}
		for _, poly := range sa.polys {
			if sb.locate(poly.rings[0].vertices[0]) != Exterior {
				return true
			}
		}
	}
	return false
}

// Contains reports whether every point of b lies in a. The test is
// inclusive: points of b on a's boundary still count. For curve and areal
// arguments the check is vertex based, refined by a boundary crossing test.
func Contains(a, b Geom) bool {
	sa, sb := decompose(a), decompose(b)
	if sa.empty() || sb.empty() {
		return false
	}
	if sa.topoDim() < sb.topoDim() {
		return false
	}
	for _, p := range sb.pts {
		if sa.locate(p) == Exterior {
			return false
		}
	}
	for _, ch := range sb.chains {
		for _, p := range ch {
			if sa.locate(p) == Exterior {
				return false
			}
		}
	}
	for _, poly := range sb.polys {
		for _, ring := range poly.ringPoints() {
			for _, p := range ring {
				if sa.locate(p) == Exterior {
					return false
				}
			}
		}
	}
	// A segment of b with both endpoints inside can still escape through
	// a concavity; a proper crossing of a's boundary betrays that.
	if len(sa.polys) > 0 && sb.topoDim() >= 1 {
		crossed := sb.segments(func(b1, b2 Point) bool {
			return sa.segments(func(a1, a2 Point) bool {
				return SegmentsCross(a1, a2, b1, b2)
			})
		})
		if crossed {
			return false
		}
	}
	// With no crossing at all, b can still drape over a hole of a; a point
	// inside such a hole is outside a.
	if len(sa.polys) > 0 && len(sb.polys) > 0 {
		for _, poly := range sa.polys {
			for _, hole := range poly.holes() {
				if holeBreached(hole, poly.srs, sa, sb) {
					return false
				}
			}
		}
	}
	return true
}

// holeBreached reports whether b's area reaches into a hole of a. The
// hole ring is promoted to a polygon so a representative interior point
// can be located against both operands.
func holeBreached(hole *LinearRing, srs SRS, sa, sb shape) bool {
	hp := &Polygon{srs: srs, rings: []*LinearRing{hole.Reverse()}}
	ip, err := hp.PointOnSurface()
	if err != nil {
		return false
	}
	if sa.locate(ip) != Exterior {
		return false
	}
	for _, poly := range sb.polys {
		if poly.Locate(ip) == Interior {
			return true
		}
	}
	return false
}

// Touches reports whether a and b intersect without their interiors
// sharing any point. Two point geometries never touch.
func Touches(a, b Geom) bool {
	if !Intersects(a, b) {
		return false
	}
	sa, sb := decompose(a), decompose(b)
	da, db := sa.topoDim(), sb.topoDim()
	if da == 0 && db == 0 {
		return false
	}
	if da > db {
		sa, sb = sb, sa
		da, db = db, da
	}
	switch {
	case da == 0 && db == 1:
		return pointsTouchCurve(sa.pts, sb)
	case da == 0 && db == 2:
		return pointsTouchAreal(sa.pts, sb)
	case da == 1 && db == 1:
		return !curveInteriorsMeet(sa, sb)
	case da == 1 && db == 2:
		return !curveEntersAreal(sa, sb)
	default: // 2 and 2
		return intersectPolys(sa.polys[0].srs, sa.polys, sb.polys).Area() <= Epsilon
	}
}

// pointsTouchCurve holds when every point lies on the curve set and each
// one sits at a chain endpoint.
func pointsTouchCurve(pts []Point, s shape) bool {
	for _, p := range pts {
		if s.locate(p) == Exterior {
			continue
		}
		if !isChainEndpoint(p, s.chains) {
			return false
		}
	}
	return true
}

func isChainEndpoint(p Point, chains [][]Point) bool {
	for _, ch := range chains {
		if len(ch) == 0 {
			continue
		}
		if p.Equals(ch[0]) || p.Equals(ch[len(ch)-1]) {
			return true
		}
	}
	return false
}

func pointsTouchAreal(pts []Point, s shape) bool {
	for _, p := range pts {
		for _, poly := range s.polys {
			if poly.Locate(p) == Interior {
				return false
			}
		}
	}
	return true
}

// curveInteriorsMeet detects interior contact between two curve sets: a
// proper segment crossing, a collinear overlap of positive length, or an
// interior vertex of one curve lying on the interior of the other.
func curveInteriorsMeet(sa, sb shape) bool {
	if sa.segments(func(a1, a2 Point) bool {
		return sb.segments(func(b1, b2 Point) bool {
			return SegmentsCross(a1, a2, b1, b2) || segmentsOverlap(a1, a2, b1, b2)
		})
	}) {
		return true
	}
	return curveVertexInsideOther(sa, sb) || curveVertexInsideOther(sb, sa)
}

// curveVertexInsideOther reports an interior vertex of sa landing on a
// point of sb that is not one of sb's boundary points. Two curves crossing
// exactly at a shared vertex meet this way without any proper crossing.
func curveVertexInsideOther(sa, sb shape) bool {
	for _, ch := range sa.chains {
		closed := len(ch) > 1 && ch[0].Equals(ch[len(ch)-1])
		for i, p := range ch {
			if !closed && (i == 0 || i == len(ch)-1) {
				continue
			}
			if curveBoundaryVertex(p, sb.chains) {
				continue
			}
			if sb.locate(p) == OnBoundary {
				return true
			}
		}
	}
	return false
}

// curveBoundaryVertex reports whether p is an endpoint of an open chain.
// Closed chains contribute no boundary points.
func curveBoundaryVertex(p Point, chains [][]Point) bool {
	for _, ch := range chains {
		if len(ch) < 2 || ch[0].Equals(ch[len(ch)-1]) {
			continue
		}
		if p.Equals(ch[0]) || p.Equals(ch[len(ch)-1]) {
			return true
		}
	}
	return false
}

// curveEntersAreal detects a curve reaching the interior of an areal
// shape, either through a vertex strictly inside or by crossing a ring.
func curveEntersAreal(curve, areal shape) bool {
	for _, ch := range curve.chains {
		for _, p := range ch {
			for _, poly := range areal.polys {
				if poly.Locate(p) == Interior {
					return true
				}
			}
		}
	}
	return curve.segments(func(c1, c2 Point) bool {
		return areal.segments(func(r1, r2 Point) bool {
			return SegmentsCross(c1, c2, r1, r2)
		})
	})
}

// GeomEqual compares two geometries by concrete type and coordinate
// values. Vertex order matters; no geometric normalization is applied.
func GeomEqual(a, b Geom) bool {
	switch av := a.(type) {
	case Point:
		bv, ok := b.(Point)
		return ok && av.Equals(bv)
	case *LineString:
		bv, ok := b.(*LineString)
		return ok && lineStringsEqual(av, bv)
	case *LinearRing:
		bv, ok := b.(*LinearRing)
		return ok && pointSlicesEqual(av.vertices, bv.vertices)
	case *Polygon:
		bv, ok := b.(*Polygon)
		return ok && polygonsEqual(av, bv)
	case *Triangle:
		bv, ok := b.(*Triangle)
		return ok && av.a.Equals(bv.a) && av.b.Equals(bv.b) && av.c.Equals(bv.c)
	case *MultiPoint:
		bv, ok := b.(*MultiPoint)
		return ok && pointSlicesEqual(av.points, bv.points)
	case *MultiLineString:
		bv, ok := b.(*MultiLineString)
		if !ok || len(av.lines) != len(bv.lines) {
			return false
		}
		for i := range av.lines {
			if !lineStringsEqual(av.lines[i], bv.lines[i]) {
				return false
			}
		}
		return true
	case *MultiPolygon:
		bv, ok := b.(*MultiPolygon)
		if !ok || len(av.polygons) != len(bv.polygons) {
			return false
		}
		for i := range av.polygons {
			if !polygonsEqual(av.polygons[i], bv.polygons[i]) {
				return false
			}
		}
		return true
	case *PolyhedralSurface:
		bv, ok := b.(*PolyhedralSurface)
		if !ok || len(av.patches) != len(bv.patches) {
			return false
		}
		for i := range av.patches {
			if !polygonsEqual(av.patches[i], bv.patches[i]) {
				return false
			}
		}
		return true
	case *TIN:
		bv, ok := b.(*TIN)
		if !ok || len(av.triangles) != len(bv.triangles) {
			return false
		}
		for i := range av.triangles {
			if !GeomEqual(av.triangles[i], bv.triangles[i]) {
				return false
			}
		}
		return true
	case *GeometryCollection:
		bv, ok := b.(*GeometryCollection)
		if !ok || len(av.geoms) != len(bv.geoms) {
			return false
		}
		for i := range av.geoms {
			if !GeomEqual(av.geoms[i], bv.geoms[i]) {
				return false
			}
		}
		return true
	}
	return false
}

func pointSlicesEqual(a, b []Point) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !a[i].Equals(b[i]) {
			return false
		}
	}
	return true
}
