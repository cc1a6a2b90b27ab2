package geom

import "fmt"

// MultiLineString is an aggregate of curves.
type MultiLineString struct {
	lines []*LineString
	srs   SRS
}

// NewMultiLineString builds an aggregate from clones of lines.
func NewMultiLineString(lines []*LineString) *MultiLineString {
	ml := &MultiLineString{}
	for _, l := range lines {
		ml.Add(l)
	}
	if len(lines) > 0 {
		ml.srs = lines[0].srs
	}
	return ml
}

// NewMultiLineStringSRS builds an aggregate tagged with srs.
func NewMultiLineStringSRS(lines []*LineString, srs SRS) *MultiLineString {
	ml := NewMultiLineString(lines)
	ml.srs = srs
	return ml
}

// SRS returns the spatial reference system tag.
func (ml *MultiLineString) SRS() SRS { return ml.srs }

// NumGeometries returns the number of member curves.
func (ml *MultiLineString) NumGeometries() int { return len(ml.lines) }

// IsEmpty reports whether the aggregate has no members.
func (ml *MultiLineString) IsEmpty() bool { return len(ml.lines) == 0 }

// GeometryN returns a copy of the nth curve, 1-indexed.
func (ml *MultiLineString) GeometryN(n int) (*LineString, error) {
	if n < 1 || n > len(ml.lines) {
		return nil, fmt.Errorf("%w: geometry %d of %d", ErrIndexOutOfRange, n, len(ml.lines))
	}
	return ml.lines[n-1].cloneLineString(), nil
}

// Add appends a clone of l to the aggregate.
func (ml *MultiLineString) Add(l *LineString) {
	ml.lines = append(ml.lines, l.cloneLineString())
}

// Remove deletes the first member equal to l and reports whether one was
// found. Equality is by value, not identity.
func (ml *MultiLineString) Remove(l *LineString) bool {
	for i, m := range ml.lines {
		if lineStringsEqual(m, l) {
			ml.lines = append(ml.lines[:i], ml.lines[i+1:]...)
			return true
		}
	}
	return false
}

// Contains reports whether the aggregate holds a member equal to l.
func (ml *MultiLineString) Contains(l *LineString) bool {
	for _, m := range ml.lines {
		if lineStringsEqual(m, l) {
			return true
		}
	}
	return false
}

// Clear removes all members.
func (ml *MultiLineString) Clear() { ml.lines = nil }

func lineStringsEqual(a, b *LineString) bool {
	if len(a.vertices) != len(b.vertices) {
		return false
	}
	for i := range a.vertices {
		if !a.vertices[i].Equals(b.vertices[i]) {
			return false
		}
	}
	return true
}

// Length is the sum of the member lengths.
func (ml *MultiLineString) Length() float64 {
	length := 0.0
	for _, l := range ml.lines {
		length += l.Length()
	}
	return length
}

// Closed reports whether every member curve is closed.
func (ml *MultiLineString) Closed() bool {
	for _, l := range ml.lines {
		if !l.Closed() {
			return false
		}
	}
	return len(ml.lines) > 0
}

// Boundary applies the mod-2 rule: a point is on the boundary iff it
// occurs an odd number of times among the member endpoints. An endpoint
// shared by two open curves cancels out, modeling the curves as connected
// there; closed members contribute nothing.
func (ml *MultiLineString) Boundary() *MultiPoint {
	counts := map[coordKey]int{}
	reps := map[coordKey]Point{}
	var order []coordKey
	for _, l := range ml.lines {
		if l.IsEmpty() || l.Closed() {
			continue
		}
		for _, p := range []Point{l.vertices[0], l.vertices[len(l.vertices)-1]} {
			k := newCoordKey(p.X, p.Y, 0)
			if _, ok := counts[k]; !ok {
				order = append(order, k)
				reps[k] = p
			}
			counts[k]++
		}
	}
	out := NewMultiPointSRS(nil, ml.srs)
	for _, k := range order {
		if counts[k]%2 == 1 {
			out.Add(reps[k])
		}
	}
	return out
}

// IsSimple reports whether every member is simple and members meet, if at
// all, only at their boundary (start or end) points.
func (ml *MultiLineString) IsSimple() bool {
	for _, l := range ml.lines {
		if !l.IsSimple() {
			return false
		}
	}
	for i, a := range ml.lines {
		for _, b := range ml.lines[i+1:] {
			if curvesCrossImproperly(a, b) {
				return false
			}
		}
	}
	return true
}

// curvesCrossImproperly reports whether the two curves intersect anywhere
// other than at shared boundary points.
func curvesCrossImproperly(a, b *LineString) bool {
	for i := 1; i < len(a.vertices); i++ {
		for j := 1; j < len(b.vertices); j++ {
			if SegmentsCross(a.vertices[i-1], a.vertices[i], b.vertices[j-1], b.vertices[j]) {
				return true
			}
		}
	}
	// Vertex contact anywhere other than at both curves' boundary points
	// also counts.
	return vertexTouchesImproperly(a, b) || vertexTouchesImproperly(b, a)
}

// vertexTouchesImproperly reports whether a vertex of a touches b in a way
// not allowed for a simple aggregate: an interior vertex of a lying
// anywhere on b, or an endpoint of a lying on the interior of b.
func vertexTouchesImproperly(a, b *LineString) bool {
	if len(a.vertices) == 0 || len(b.vertices) == 0 {
		return false
	}
	bStart := b.vertices[0]
	bEnd := b.vertices[len(b.vertices)-1]
	for i, p := range a.vertices {
		if !pointOnCurve(p, b) {
			continue
		}
		endpointOfA := i == 0 || i == len(a.vertices)-1
		endpointOfB := p.Equals(bStart) || p.Equals(bEnd)
		if !endpointOfA || !endpointOfB {
			return true
		}
	}
	return false
}

// pointOnCurve reports whether p lies on any segment of l within Epsilon.
func pointOnCurve(p Point, l *LineString) bool {
	for i := 1; i < len(l.vertices); i++ {
		if PointOnSegment(p, l.vertices[i-1], l.vertices[i], Epsilon) {
			return true
		}
	}
	return false
}

// Bounds gives the combined extent of the members.
func (ml *MultiLineString) Bounds() *Bounds {
	b := NewBounds()
	for _, l := range ml.lines {
		b.Extend(l.Bounds())
	}
	return b
}

// Clone returns a deep copy.
func (ml *MultiLineString) Clone() Geom {
	out := &MultiLineString{srs: ml.srs}
	for _, l := range ml.lines {
		out.lines = append(out.lines, l.cloneLineString())
	}
	return out
}

// WKT renders the aggregate, e.g. "MULTILINESTRING ((0 0, 1 1), (2 2, 3 3))".
func (ml *MultiLineString) WKT() string {
	if ml.IsEmpty() {
		return "MULTILINESTRING EMPTY"
	}
	s := "MULTILINESTRING ("
	for i, l := range ml.lines {
		if i > 0 {
			s += ", "
		}
		s += wktCoordList(l.vertices)
	}
	return s + ")"
}
