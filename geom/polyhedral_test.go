package geom

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// quad builds a single-ring patch from four corners.
func quad(a, b, c, d Point) *Polygon {
	return MustPolygon(NewPolygon(MustLinearRing(NewLinearRing([]Point{a, b, c, d, a}))))
}

// stripSurface is an open 2x1 strip of two unit patches sharing one edge.
func stripSurface() *PolyhedralSurface {
	return NewPolyhedralSurface([]*Polygon{
		quad(pt(0, 0), pt(1, 0), pt(1, 1), pt(0, 1)),
		quad(pt(1, 0), pt(2, 0), pt(2, 1), pt(1, 1)),
	})
}

func TestPolyhedralSurfacePatches(t *testing.T) {
	ps := stripSurface()
	assert.Equal(t, 2, ps.NumPatches())

	p, err := ps.PatchN(1)
	require.NoError(t, err)
	assert.InDelta(t, 1.0, p.Area(), 1e-12)

	_, err = ps.PatchN(3)
	assert.ErrorIs(t, err, ErrIndexOutOfRange)

	require.NoError(t, ps.AddPatch(quad(pt(2, 0), pt(3, 0), pt(3, 1), pt(2, 1))))
	assert.Equal(t, 3, ps.NumPatches())

	err = ps.AddPatch(&Polygon{})
	assert.ErrorIs(t, err, ErrEmptyGeometry)

	require.NoError(t, ps.RemovePatch(3))
	assert.Equal(t, 2, ps.NumPatches())
}

func TestPolyhedralSurfaceNeighbors(t *testing.T) {
	ps := stripSurface()

	ns, err := ps.PatchNeighbors(1)
	require.NoError(t, err)
	assert.Equal(t, []int{2}, ns)

	ns, err = ps.PatchNeighbors(2)
	require.NoError(t, err)
	assert.Equal(t, []int{1}, ns)

	require.NoError(t, ps.Validate())

	// Edge direction does not matter: patch 2 above lists the shared
	// edge (1,0)-(1,1) in the opposite order from patch 1.
}

func TestPolyhedralSurfaceBoundaryEdges(t *testing.T) {
	ps := stripSurface()
	b := ps.BoundaryEdges()
	// 8 total edges, 1 shared: 6 boundary edges remain.
	assert.Equal(t, 6, b.NumGeometries())
	assert.InDelta(t, 6.0, b.Length(), 1e-12)
	assert.False(t, ps.Closed())
}

func TestPolyhedralSurfaceClosed(t *testing.T) {
	// The unit cube: six faces, every edge shared by exactly two.
	v := func(x, y, z float64) Point { return ptZ(x, y, z) }
	cube := NewPolyhedralSurface([]*Polygon{
		quad(v(0, 0, 0), v(0, 1, 0), v(1, 1, 0), v(1, 0, 0)),
		quad(v(0, 0, 1), v(1, 0, 1), v(1, 1, 1), v(0, 1, 1)),
		quad(v(0, 0, 0), v(1, 0, 0), v(1, 0, 1), v(0, 0, 1)),
		quad(v(1, 0, 0), v(1, 1, 0), v(1, 1, 1), v(1, 0, 1)),
		quad(v(1, 1, 0), v(0, 1, 0), v(0, 1, 1), v(1, 1, 1)),
		quad(v(0, 1, 0), v(0, 0, 0), v(0, 0, 1), v(0, 1, 1)),
	})
	assert.True(t, cube.Closed())
	assert.Equal(t, 0, cube.BoundaryEdges().NumGeometries())
	require.NoError(t, cube.Validate())

	assert.False(t, NewPolyhedralSurface(nil).Closed())
}

func TestPolyhedralSurfaceMeasures(t *testing.T) {
	ps := stripSurface()
	assert.InDelta(t, 2.0, ps.Area(), 1e-12)

	c, err := ps.Centroid()
	require.NoError(t, err)
	assert.True(t, c.Equals(pt(1, 0.5)))

	pos, err := ps.PointOnSurface()
	require.NoError(t, err)
	assert.True(t, ps.ContainsPoint(pos))

	assert.True(t, ps.ContainsPoint(pt(1.5, 0.5)))
	assert.False(t, ps.ContainsPoint(pt(2.5, 0.5)))
}

func TestPolyhedralSurfaceLargeCoordinates(t *testing.T) {
	// Edge keys must stay distinct for large magnitude coordinates;
	// collapsing keys would wire every patch to every other.
	const off = 1e9
	q := func(x, y float64) *Polygon {
		return quad(pt(off+x, off+y), pt(off+x+1, off+y), pt(off+x+1, off+y+1), pt(off+x, off+y+1))
	}
	ps := NewPolyhedralSurface([]*Polygon{q(0, 0), q(1, 0), q(2, 0)})

	ns, err := ps.PatchNeighbors(1)
	require.NoError(t, err)
	assert.Equal(t, []int{2}, ns)

	ns, err = ps.PatchNeighbors(3)
	require.NoError(t, err)
	assert.Equal(t, []int{2}, ns)

	require.NoError(t, ps.Validate())
}

func TestPolyhedralSurfaceWKT(t *testing.T) {
	ps := NewPolyhedralSurface([]*Polygon{
		quad(pt(0, 0), pt(1, 0), pt(1, 1), pt(0, 1)),
	})
	assert.Equal(t, "POLYHEDRALSURFACE (((0 0, 1 0, 1 1, 0 1, 0 0)))", ps.WKT())
	assert.Equal(t, "POLYHEDRALSURFACE EMPTY", NewPolyhedralSurface(nil).WKT())
}

func TestPolyhedralSurfaceCloneIndependence(t *testing.T) {
	ps := stripSurface()
	c := ps.Clone().(*PolyhedralSurface)
	require.NoError(t, c.RemovePatch(1))
	assert.Equal(t, 2, ps.NumPatches())
	assert.Equal(t, 1, c.NumPatches())
}
