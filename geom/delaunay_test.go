package geom

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTriangulateErrors(t *testing.T) {
	_, err := Triangulate([]Point{pt(0, 0), pt(1, 1)})
	assert.ErrorIs(t, err, ErrEmptyGeometry)

	_, err = Triangulate([]Point{pt(0, 0), pt(1, 1), pt(0, 0)})
	assert.ErrorIs(t, err, ErrDuplicatePoint)

	_, err = Triangulate([]Point{pt(0, 0), pt(1, 1), pt(2, 2), pt(3, 3)})
	assert.ErrorIs(t, err, ErrDegenerateTriangle)
}

func TestTriangulateSquare(t *testing.T) {
	tin, err := Triangulate([]Point{pt(0, 0), pt(10, 0), pt(10, 10), pt(0, 10)})
	require.NoError(t, err)

	assert.Equal(t, 2, tin.NumTriangles())
	assert.InDelta(t, 100.0, tin.Area(), 1e-9)
	require.NoError(t, tin.Validate())

	ns, err := tin.Neighbors(1)
	require.NoError(t, err)
	assert.Equal(t, []int{2}, ns)
}

func TestTriangulateCoversConvexHull(t *testing.T) {
	points := []Point{
		pt(0, 0), pt(10, 0), pt(10, 10), pt(0, 10),
		pt(3, 2), pt(7, 3), pt(5, 8), pt(2, 6),
	}
	tin, err := Triangulate(points)
	require.NoError(t, err)

	// The triangulation tiles the convex hull without gaps or overlaps.
	assert.InDelta(t, 100.0, tin.Area(), 1e-9)
	require.NoError(t, tin.Validate())

	// Every input point is a vertex of the network.
	verts := map[coordKey]bool{}
	for i := 1; i <= tin.NumTriangles(); i++ {
		tr, err := tin.TriangleN(i)
		require.NoError(t, err)
		a, b, c := tr.Vertices()
		for _, v := range []Point{a, b, c} {
			verts[newCoordKey(v.X, v.Y, 0)] = true
		}
	}
	for _, p := range points {
		assert.True(t, verts[newCoordKey(p.X, p.Y, 0)])
	}
}

// The defining Delaunay property: no input point falls strictly inside
// any triangle's circumcircle.
func TestTriangulateEmptyCircumcircles(t *testing.T) {
	points := []Point{
		pt(0, 0), pt(10, 0), pt(10, 10), pt(0, 10),
		pt(3, 2), pt(7, 3), pt(5, 8), pt(2, 6), pt(6, 6),
	}
	tin, err := Triangulate(points)
	require.NoError(t, err)

	for i := 1; i <= tin.NumTriangles(); i++ {
		tr, err := tin.TriangleN(i)
		require.NoError(t, err)
		center, radius := tr.Circumcircle()
		for _, p := range points {
			d := math.Hypot(p.X-center.X, p.Y-center.Y)
			assert.GreaterOrEqual(t, d, radius-1e-7,
				"point inside circumcircle of triangle %d", i)
		}
	}
}

func TestTriangulateLargeCoordinates(t *testing.T) {
	// An integer grid index for the Epsilon grid overflows at this
	// magnitude; distinct points must keep distinct keys or the duplicate
	// screen merges points that are far apart.
	const off = 1e9
	assert.NotEqual(t, newCoordKey(off, off, 0), newCoordKey(off+10, off, 0))
	assert.Equal(t, newCoordKey(off, off, 0), newCoordKey(off, off, 0))

	_, err := Triangulate([]Point{pt(off, off), pt(off+10, off), pt(off, off)})
	assert.ErrorIs(t, err, ErrDuplicatePoint)
}

func TestTriangulateCarriesElevation(t *testing.T) {
	tin, err := Triangulate([]Point{
		ptZ(0, 0, 5), ptZ(10, 0, 5), ptZ(10, 10, 5), ptZ(0, 10, 5),
	})
	require.NoError(t, err)

	z, ok := tin.InterpolateZ(5, 5)
	assert.True(t, ok)
	assert.InDelta(t, 5.0, z, 1e-9)
}
