package geom

import (
	"fmt"
	"math"
	"sort"

	polyclip "github.com/ctessum/polyclip-go"
)

// Boolean set operations are delegated to the Martinez-Rueda clipper in
// polyclip-go; this file converts between the kernel's ring model and
// polyclip contours and reassembles clipper output into shells with
// assigned holes.

// Intersection returns the region shared by p and q.
func (p *Polygon) Intersection(q *Polygon) *MultiPolygon {
	return clipOp(polyclip.INTERSECTION, p.srs, []*Polygon{p}, []*Polygon{q})
}

// Union returns the combined region of p and q.
func (p *Polygon) Union(q *Polygon) *MultiPolygon {
	return clipOp(polyclip.UNION, p.srs, []*Polygon{p}, []*Polygon{q})
}

// Difference returns the region of p not shared with q.
func (p *Polygon) Difference(q *Polygon) *MultiPolygon {
	return clipOp(polyclip.DIFFERENCE, p.srs, []*Polygon{p}, []*Polygon{q})
}

// XOr returns the region covered by exactly one of p and q.
func (p *Polygon) XOr(q *Polygon) *MultiPolygon {
	return clipOp(polyclip.XOR, p.srs, []*Polygon{p}, []*Polygon{q})
}

// Intersection returns the region shared by mp and q.
func (mp *MultiPolygon) Intersection(q *MultiPolygon) *MultiPolygon {
	return clipOp(polyclip.INTERSECTION, mp.srs, mp.polygons, q.polygons)
}

// Union returns the combined region of mp and q.
func (mp *MultiPolygon) Union(q *MultiPolygon) *MultiPolygon {
	return clipOp(polyclip.UNION, mp.srs, mp.polygons, q.polygons)
}

// Difference returns the region of mp not shared with q.
func (mp *MultiPolygon) Difference(q *MultiPolygon) *MultiPolygon {
	return clipOp(polyclip.DIFFERENCE, mp.srs, mp.polygons, q.polygons)
}

// XOr returns the region covered by exactly one of mp and q.
func (mp *MultiPolygon) XOr(q *MultiPolygon) *MultiPolygon {
	return clipOp(polyclip.XOR, mp.srs, mp.polygons, q.polygons)
}

func clipOp(op polyclip.Op, srs SRS, subject, clip []*Polygon) *MultiPolygon {
	s := toPolyclip(subject)
	c := toPolyclip(clip)
	return fromPolyclip(s.Construct(op, c), srs)
}

// intersectPolys clips two bare polygon sets against each other.
func intersectPolys(srs SRS, subject, clip []*Polygon) *MultiPolygon {
	return clipOp(polyclip.INTERSECTION, srs, subject, clip)
}

// toPolyclip flattens polygons into one contour set; the clipper applies
// the even-odd rule, so holes ride along as plain contours.
func toPolyclip(polys []*Polygon) polyclip.Polygon {
	var out polyclip.Polygon
	for _, p := range polys {
		if p == nil || p.IsEmpty() {
			continue
		}
		for _, r := range p.rings {
			contour := make(polyclip.Contour, 0, len(r.vertices)-1)
			for _, pt := range r.open() {
				contour = append(contour, polyclip.Point{X: pt.X, Y: pt.Y})
			}
			out = append(out, contour)
		}
	}
	return out
}

// fromPolyclip reassembles clipper output contours into polygons:
// containment depth decides shell versus hole, and each hole is attached
// to the smallest shell containing it.
func fromPolyclip(pc polyclip.Polygon, srs SRS) *MultiPolygon {
	type contour struct {
		pts   []Point
		area  float64
		depth int
	}
	var cs []*contour
	for _, c := range pc {
		if len(c) < 3 {
			continue
		}
		pts := make([]Point, 0, len(c))
		for _, p := range c {
			pts = append(pts, Point{X: p.X, Y: p.Y, srs: srs})
		}
		a := math.Abs(signedArea(pts))
		if a < Epsilon {
			continue
		}
		cs = append(cs, &contour{pts: pts, area: a})
	}
	// Depth = number of other contours strictly containing the contour.
	for i, c := range cs {
		for j, o := range cs {
			if i == j || o.area <= c.area {
				continue
			}
			if contourContains(o.pts, c.pts) {
				c.depth++
			}
		}
	}
	// Sort shells by area so holes attach to the innermost shell first.
	sort.Slice(cs, func(i, j int) bool { return cs[i].area < cs[j].area })

	out := &MultiPolygon{srs: srs}
	shellFor := map[*contour]*Polygon{}
	for _, c := range cs {
		if c.depth%2 != 0 {
			continue
		}
		shell := &Polygon{srs: srs}
		shell.rings = []*LinearRing{closedRing(c.pts, false, srs)}
		shellFor[c] = shell
		out.polygons = append(out.polygons, shell)
	}
	for _, c := range cs {
		if c.depth%2 == 0 {
			continue
		}
		for _, s := range cs {
			if s.depth%2 != 0 || s.area <= c.area || !contourContains(s.pts, c.pts) {
				continue
			}
			shell := shellFor[s]
			shell.rings = append(shell.rings, closedRing(c.pts, true, srs))
			break
		}
	}
	return out
}

// contourContains reports whether any vertex of inner is strictly inside
// outer; clipper output contours never cross, so one strict vertex
// settles containment.
func contourContains(outer, inner []Point) bool {
	for _, p := range inner {
		switch locateInRing(p, outer) {
		case Interior:
			return true
		case Exterior:
			return false
		}
	}
	return false
}

// closedRing builds a ring from open contour points, normalized CCW for
// shells and CW for holes. Clipper output is trusted; validation is
// skipped.
func closedRing(open []Point, hole bool, srs SRS) *LinearRing {
	pts := make([]Point, len(open)+1)
	copy(pts, open)
	pts[len(open)] = open[0]
	r := &LinearRing{vertices: pts, srs: srs}
	if (hole && r.IsCCW()) || (!hole && r.IsCW()) {
		r = r.Reverse()
	}
	return r
}

// polygonInteriorsOverlap reports whether the interiors of p and q share
// area beyond tolerance.
func polygonInteriorsOverlap(p, q *Polygon) bool {
	if !p.Bounds().Overlaps(q.Bounds()) {
		return false
	}
	return p.Intersection(q).Area() > Epsilon
}

// Buffer returns the region within dist of g, with round joins and caps
// approximated by 4*quadSegs-gon arcs. Negative distances are not
// supported.
func Buffer(g Geom, dist float64, quadSegs int) (*MultiPolygon, error) {
	if dist < 0 {
		return nil, fmt.Errorf("%w: negative buffer distance", ErrUnsupportedOperation)
	}
	if quadSegs < 1 {
		quadSegs = 8
	}
	var pieces []*Polygon
	switch t := g.(type) {
	case Point:
		pieces = append(pieces, diskPolygon(t, dist, quadSegs, g.SRS()))
	case *MultiPoint:
		for _, p := range t.points {
			pieces = append(pieces, diskPolygon(p, dist, quadSegs, g.SRS()))
		}
	case *LineString:
		pieces = append(pieces, bufferChain(t.vertices, dist, quadSegs, g.SRS())...)
	case *LinearRing:
		pieces = append(pieces, bufferChain(t.vertices, dist, quadSegs, g.SRS())...)
	case *MultiLineString:
		for _, l := range t.lines {
			pieces = append(pieces, bufferChain(l.vertices, dist, quadSegs, g.SRS())...)
		}
	case *Polygon:
		pieces = append(pieces, t)
		for _, r := range t.rings {
			pieces = append(pieces, bufferChain(r.vertices, dist, quadSegs, g.SRS())...)
		}
	case *Triangle:
		return Buffer(t.AsPolygon(), dist, quadSegs)
	case *MultiPolygon:
		for _, p := range t.polygons {
			pieces = append(pieces, p)
			for _, r := range p.rings {
				pieces = append(pieces, bufferChain(r.vertices, dist, quadSegs, g.SRS())...)
			}
		}
	case *GeometryCollection:
		for _, m := range t.geoms {
			sub, err := Buffer(m, dist, quadSegs)
			if err != nil {
				return nil, err
			}
			pieces = append(pieces, sub.polygons...)
		}
	default:
		return nil, fmt.Errorf("%w: buffer of %T", ErrUnsupportedOperation, g)
	}
	return unionAll(pieces, g.SRS()), nil
}

// bufferChain covers a vertex chain with per-segment rectangles and
// per-vertex disks.
func bufferChain(pts []Point, dist float64, quadSegs int, srs SRS) []*Polygon {
	var out []*Polygon
	for _, p := range pts {
		out = append(out, diskPolygon(p, dist, quadSegs, srs))
	}
	for i := 1; i < len(pts); i++ {
		if box := segmentBox(pts[i-1], pts[i], dist, srs); box != nil {
			out = append(out, box)
		}
	}
	return out
}

// unionAll folds the pieces pairwise through the clipper.
func unionAll(pieces []*Polygon, srs SRS) *MultiPolygon {
	acc := toPolyclip(nil)
	for _, p := range pieces {
		if p == nil || p.IsEmpty() {
			continue
		}
		if len(acc) == 0 {
			acc = toPolyclip([]*Polygon{p})
			continue
		}
		acc = acc.Construct(polyclip.UNION, toPolyclip([]*Polygon{p}))
	}
	return fromPolyclip(acc, srs)
}

// diskPolygon approximates the disk of radius r around c with a regular
// 4*quadSegs-gon.
func diskPolygon(c Point, r float64, quadSegs int, srs SRS) *Polygon {
	if r <= 0 {
		return &Polygon{srs: srs}
	}
	n := 4 * quadSegs
	pts := make([]Point, n+1)
	for i := 0; i < n; i++ {
		theta := 2 * math.Pi * float64(i) / float64(n)
		pts[i] = Point{X: c.X + r*math.Cos(theta), Y: c.Y + r*math.Sin(theta), srs: srs}
	}
	pts[n] = pts[0]
	return &Polygon{srs: srs, rings: []*LinearRing{{vertices: pts, srs: srs}}}
}

// segmentBox returns the rectangle of half-width r around segment (a,b),
// or nil for a degenerate segment.
func segmentBox(a, b Point, r float64, srs SRS) *Polygon {
	dx, dy := b.X-a.X, b.Y-a.Y
	l := math.Hypot(dx, dy)
	if l < Epsilon || r <= 0 {
		return nil
	}
	nx, ny := -dy/l*r, dx/l*r
	pts := []Point{
		{X: a.X + nx, Y: a.Y + ny, srs: srs},
		{X: b.X + nx, Y: b.Y + ny, srs: srs},
		{X: b.X - nx, Y: b.Y - ny, srs: srs},
		{X: a.X - nx, Y: a.Y - ny, srs: srs},
	}
	pts = append(pts, pts[0])
	ring := &LinearRing{vertices: pts, srs: srs}
	if ring.IsCW() {
		ring = ring.Reverse()
	}
	return &Polygon{srs: srs, rings: []*LinearRing{ring}}
}

// ConvexHull returns the convex hull of g's coordinates: a Polygon for
// three or more extreme points, a LineString for two, a Point for one.
func ConvexHull(g Geom) Geom {
	pts := collectPoints(g)
	hull := convexHull(pts)
	srs := g.SRS()
	switch len(hull) {
	case 0:
		return &Polygon{srs: srs}
	case 1:
		return hull[0].WithSRS(srs)
	case 2:
		return NewLineStringSRS(hull, srs)
	}
	ring := make([]Point, len(hull)+1)
	copy(ring, hull)
	ring[len(hull)] = hull[0]
	return &Polygon{srs: srs, rings: []*LinearRing{{vertices: ring, srs: srs}}}
}

// Envelope returns the bounding box of g as a counter-clockwise polygon,
// empty when g is empty.
func Envelope(g Geom) *Polygon {
	b := g.Bounds()
	srs := g.SRS()
	if b.Empty() {
		return &Polygon{srs: srs}
	}
	pts := []Point{
		{X: b.MinX, Y: b.MinY, srs: srs},
		{X: b.MaxX, Y: b.MinY, srs: srs},
		{X: b.MaxX, Y: b.MaxY, srs: srs},
		{X: b.MinX, Y: b.MaxY, srs: srs},
		{X: b.MinX, Y: b.MinY, srs: srs},
	}
	return &Polygon{srs: srs, rings: []*LinearRing{{vertices: pts, srs: srs}}}
}

// collectPoints gathers every coordinate of g.
func collectPoints(g Geom) []Point {
	switch t := g.(type) {
	case Point:
		return []Point{t}
	case *MultiPoint:
		return t.Points()
	case *LineString:
		return t.Points()
	case *LinearRing:
		return t.Points()
	case *MultiLineString:
		var out []Point
		for _, l := range t.lines {
			out = append(out, l.vertices...)
		}
		return out
	case *Polygon:
		var out []Point
		for _, r := range t.rings {
			out = append(out, r.vertices...)
		}
		return out
	case *Triangle:
		return []Point{t.a, t.b, t.c}
	case *MultiPolygon:
		var out []Point
		for _, p := range t.polygons {
			for _, r := range p.rings {
				out = append(out, r.vertices...)
			}
		}
		return out
	case *PolyhedralSurface:
		var out []Point
		for _, p := range t.patches {
			for _, r := range p.rings {
				out = append(out, r.vertices...)
			}
		}
		return out
	case *TIN:
		var out []Point
		for _, tr := range t.triangles {
			out = append(out, tr.a, tr.b, tr.c)
		}
		return out
	case *GeometryCollection:
		var out []Point
		for _, m := range t.geoms {
			out = append(out, collectPoints(m)...)
		}
		return out
	}
	return nil
}
