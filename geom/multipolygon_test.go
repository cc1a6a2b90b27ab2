package geom

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMultiPolygonRejectsOverlap(t *testing.T) {
	_, err := NewMultiPolygon([]*Polygon{
		MustPolygon(NewPolygon(square(0, 0, 10))),
		MustPolygon(NewPolygon(square(5, 5, 10))),
	})
	assert.ErrorIs(t, err, ErrTopology)

	// Touching along an edge is fine.
	mp, err := NewMultiPolygon([]*Polygon{
		MustPolygon(NewPolygon(square(0, 0, 10))),
		MustPolygon(NewPolygon(square(10, 0, 10))),
	})
	require.NoError(t, err)
	assert.Equal(t, 2, mp.NumGeometries())
}

func TestMultiPolygonArea(t *testing.T) {
	mp := MustMultiPolygon(NewMultiPolygon([]*Polygon{
		MustPolygon(NewPolygon(square(0, 0, 10), square(4, 4, 2))),
		MustPolygon(NewPolygon(square(20, 0, 5))),
	}))
	assert.InDelta(t, 121.0, mp.Area(), 1e-9)
}

func TestMultiPolygonCentroid(t *testing.T) {
	// Two equal squares: the centroid is the midpoint of their centers.
	mp := MustMultiPolygon(NewMultiPolygon([]*Polygon{
		MustPolygon(NewPolygon(square(0, 0, 2))),
		MustPolygon(NewPolygon(square(10, 0, 2))),
	}))
	c, err := mp.Centroid()
	require.NoError(t, err)
	assert.True(t, c.Equals(pt(6, 1)))

	// Unequal members weight by area.
	uneven := MustMultiPolygon(NewMultiPolygon([]*Polygon{
		MustPolygon(NewPolygon(square(0, 0, 1))),
		MustPolygon(NewPolygon(square(10, 0, 3))),
	}))
	c, err = uneven.Centroid()
	require.NoError(t, err)
	assert.InDelta(t, (0.5*1+11.5*9)/10, c.X, 1e-9)
}

func TestMultiPolygonContainsPoint(t *testing.T) {
	mp := MustMultiPolygon(NewMultiPolygon([]*Polygon{
		MustPolygon(NewPolygon(square(0, 0, 10))),
		MustPolygon(NewPolygon(square(20, 0, 5))),
	}))
	assert.True(t, mp.ContainsPoint(pt(5, 5)))
	assert.True(t, mp.ContainsPoint(pt(22, 3)))
	assert.False(t, mp.ContainsPoint(pt(15, 5)))
}

func TestMultiPolygonPointOnSurface(t *testing.T) {
	mp := MustMultiPolygon(NewMultiPolygon([]*Polygon{
		MustPolygon(NewPolygon(square(0, 0, 2))),
		MustPolygon(NewPolygon(square(10, 0, 8))),
	}))
	pos, err := mp.PointOnSurface()
	require.NoError(t, err)
	// The largest member hosts the representative point.
	assert.True(t, pos.X >= 10 && pos.X <= 18)
	assert.True(t, mp.ContainsPoint(pos))
}

func TestMultiPolygonBoundary(t *testing.T) {
	mp := MustMultiPolygon(NewMultiPolygon([]*Polygon{
		MustPolygon(NewPolygon(square(0, 0, 10), square(4, 4, 2))),
		MustPolygon(NewPolygon(square(20, 0, 5))),
	}))
	b := mp.Boundary()
	assert.Equal(t, 3, b.NumGeometries())
	assert.InDelta(t, 68.0, b.Length(), 1e-9)
}

func TestMultiPolygonWKT(t *testing.T) {
	mp := MustMultiPolygon(NewMultiPolygon([]*Polygon{
		MustPolygon(NewPolygon(square(0, 0, 1))),
	}))
	assert.Equal(t, "MULTIPOLYGON (((0 0, 1 0, 1 1, 0 1, 0 0)))", mp.WKT())
	assert.Equal(t, "MULTIPOLYGON EMPTY", MustMultiPolygon(NewMultiPolygon(nil)).WKT())
}
