package geom

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGeometryCollectionAccessors(t *testing.T) {
	gc := NewGeometryCollection(
		pt(4, 6),
		NewLineString([]Point{pt(4, 6), pt(7, 10)}),
	)
	assert.Equal(t, 2, gc.NumGeometries())
	assert.False(t, gc.IsEmpty())

	g, err := gc.GeometryN(1)
	require.NoError(t, err)
	assert.True(t, GeomEqual(g, pt(4, 6)))

	_, err = gc.GeometryN(0)
	assert.ErrorIs(t, err, ErrIndexOutOfRange)
	_, err = gc.GeometryN(3)
	assert.ErrorIs(t, err, ErrIndexOutOfRange)
}

func TestGeometryCollectionValueSemantics(t *testing.T) {
	l := NewLineString([]Point{pt(0, 0), pt(1, 1)})
	gc := NewGeometryCollection(l)

	// Mutating the source after insert must not be visible.
	l.AddPoint(pt(9, 9))
	g, err := gc.GeometryN(1)
	require.NoError(t, err)
	assert.Equal(t, 2, g.(*LineString).NumPoints())

	// Mutating a retrieved element must not be visible either.
	g.(*LineString).AddPoint(pt(8, 8))
	g2, err := gc.GeometryN(1)
	require.NoError(t, err)
	assert.Equal(t, 2, g2.(*LineString).NumPoints())
}

func TestGeometryCollectionRemoveByValue(t *testing.T) {
	gc := NewGeometryCollection(
		pt(1, 1),
		NewLineString([]Point{pt(0, 0), pt(1, 1)}),
	)

	// An equal but distinct instance matches.
	needle := NewLineString([]Point{pt(0, 0), pt(1, 1)})
	assert.True(t, gc.Contains(needle))
	assert.True(t, gc.Remove(needle))
	assert.False(t, gc.Contains(needle))
	assert.Equal(t, 1, gc.NumGeometries())

	assert.False(t, gc.Remove(pt(5, 5)))

	gc.Clear()
	assert.True(t, gc.IsEmpty())
}

func TestGeometryCollectionBounds(t *testing.T) {
	gc := NewGeometryCollection(
		pt(-5, 2),
		MustPolygon(NewPolygon(square(0, 0, 10))),
	)
	b := gc.Bounds()
	assert.Equal(t, -5.0, b.MinX)
	assert.Equal(t, 10.0, b.MaxX)
	assert.Equal(t, 0.0, b.MinY)
	assert.Equal(t, 10.0, b.MaxY)
}

func TestGeometryCollectionWKT(t *testing.T) {
	gc := NewGeometryCollection(
		pt(4, 6),
		NewLineString([]Point{pt(4, 6), pt(7, 10)}),
	)
	assert.Equal(t, "GEOMETRYCOLLECTION (POINT (4 6), LINESTRING (4 6, 7 10))", gc.WKT())
	assert.Equal(t, "GEOMETRYCOLLECTION EMPTY", NewGeometryCollection().WKT())
}
