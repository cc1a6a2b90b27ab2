package geom

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMultiLineStringLength(t *testing.T) {
	ml := NewMultiLineString([]*LineString{
		NewLineString([]Point{pt(0, 0), pt(3, 0), pt(3, 4)}),
		NewLineString([]Point{pt(10, 0), pt(10, 3)}),
	})
	assert.InDelta(t, 10.0, ml.Length(), 1e-12)
}

func TestMultiLineStringClosed(t *testing.T) {
	rings := NewMultiLineString([]*LineString{
		NewLineString(ccwSquare(1)),
		NewLineString(ccwSquare(2)),
	})
	assert.True(t, rings.Closed())

	mixed := NewMultiLineString([]*LineString{
		NewLineString(ccwSquare(1)),
		NewLineString([]Point{pt(5, 5), pt(6, 6)}),
	})
	assert.False(t, mixed.Closed())

	assert.False(t, NewMultiLineString(nil).Closed())
}

// The boundary follows the mod-2 rule: an endpoint shared by an even
// number of curves cancels out.
func TestMultiLineStringBoundaryMod2(t *testing.T) {
	// Two open curves chained end to end: the shared point (1, 0)
	// appears twice and drops out.
	ml := NewMultiLineString([]*LineString{
		NewLineString([]Point{pt(0, 0), pt(1, 0)}),
		NewLineString([]Point{pt(1, 0), pt(2, 0)}),
	})
	b := ml.Boundary()
	assert.Equal(t, 2, b.NumGeometries())
	assert.True(t, b.Contains(pt(0, 0)))
	assert.True(t, b.Contains(pt(2, 0)))
	assert.False(t, b.Contains(pt(1, 0)))

	// Three curves meeting at one point: the junction survives.
	star := NewMultiLineString([]*LineString{
		NewLineString([]Point{pt(0, 0), pt(1, 0)}),
		NewLineString([]Point{pt(0, 0), pt(0, 1)}),
		NewLineString([]Point{pt(0, 0), pt(-1, 0)}),
	})
	assert.True(t, star.Boundary().Contains(pt(0, 0)))

	// Closed members contribute nothing.
	withRing := NewMultiLineString([]*LineString{
		NewLineString(ccwSquare(1)),
		NewLineString([]Point{pt(5, 5), pt(6, 6)}),
	})
	assert.Equal(t, 2, withRing.Boundary().NumGeometries())
}

func TestMultiLineStringIsSimple(t *testing.T) {
	disjoint := NewMultiLineString([]*LineString{
		NewLineString([]Point{pt(0, 0), pt(1, 0)}),
		NewLineString([]Point{pt(0, 1), pt(1, 1)}),
	})
	assert.True(t, disjoint.IsSimple())

	// Curves meeting only at endpoints stay simple.
	chained := NewMultiLineString([]*LineString{
		NewLineString([]Point{pt(0, 0), pt(1, 0)}),
		NewLineString([]Point{pt(1, 0), pt(2, 1)}),
	})
	assert.True(t, chained.IsSimple())

	// A proper crossing breaks simplicity.
	crossing := NewMultiLineString([]*LineString{
		NewLineString([]Point{pt(0, 0), pt(2, 2)}),
		NewLineString([]Point{pt(0, 2), pt(2, 0)}),
	})
	assert.False(t, crossing.IsSimple())
}

func TestMultiLineStringAddCopies(t *testing.T) {
	l := NewLineString([]Point{pt(0, 0), pt(1, 1)})
	ml := NewMultiLineString(nil)
	ml.Add(l)
	l.AddPoint(pt(9, 9))

	got, err := ml.GeometryN(1)
	require.NoError(t, err)
	assert.Equal(t, 2, got.NumPoints())
}

func TestMultiLineStringWKT(t *testing.T) {
	ml := NewMultiLineString([]*LineString{
		NewLineString([]Point{pt(0, 0), pt(1, 1)}),
		NewLineString([]Point{pt(2, 2), pt(3, 3)}),
	})
	assert.Equal(t, "MULTILINESTRING ((0 0, 1 1), (2 2, 3 3))", ml.WKT())
	assert.Equal(t, "MULTILINESTRING EMPTY", NewMultiLineString(nil).WKT())
}
