package geom

import (
	"strconv"
	"strings"
)

// Well-known text writers. Parsing is deliberately out of scope: the text
// forms produced here are consumed by external collaborators.

// wktNum formats a coordinate with the shortest exact representation.
func wktNum(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// wktCoord renders one coordinate tuple, e.g. "30 10" or "30 10 5".
func wktCoord(p Point) string {
	var b strings.Builder
	b.WriteString(wktNum(p.X))
	b.WriteByte(' ')
	b.WriteString(wktNum(p.Y))
	if p.dim.HasZ() {
		b.WriteByte(' ')
		b.WriteString(wktNum(p.Z))
	}
	if p.dim.HasM() {
		b.WriteByte(' ')
		b.WriteString(wktNum(p.M))
	}
	return b.String()
}

// wktCoordList renders a parenthesized coordinate sequence, e.g.
// "(0 0, 3 0, 3 4)".
func wktCoordList(pts []Point) string {
	var b strings.Builder
	b.WriteByte('(')
	for i, p := range pts {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(wktCoord(p))
	}
	b.WriteByte(')')
	return b.String()
}
