package geom

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// rampTIN is the plane z = x over the square [0,10]^2, as two triangles.
func rampTIN(t *testing.T) *TIN {
	t.Helper()
	tin, err := NewTIN([]*Triangle{
		MustTriangle(NewTriangle(ptZ(0, 0, 0), ptZ(10, 0, 10), ptZ(10, 10, 10))),
		MustTriangle(NewTriangle(ptZ(0, 0, 0), ptZ(10, 10, 10), ptZ(0, 10, 0))),
	})
	require.NoError(t, err)
	return tin
}

func TestTINAddTriangleTopology(t *testing.T) {
	tin, err := NewTIN([]*Triangle{
		MustTriangle(NewTriangle(pt(0, 0), pt(2, 0), pt(0, 2))),
	})
	require.NoError(t, err)

	// Sharing an edge is required once the network is non-empty.
	err = tin.AddTriangle(MustTriangle(NewTriangle(pt(10, 10), pt(12, 10), pt(10, 12))))
	assert.ErrorIs(t, err, ErrTopology)

	// Sharing an edge but overlapping is rejected too.
	err = tin.AddTriangle(MustTriangle(NewTriangle(pt(0, 0), pt(2, 0), pt(0.5, 0.5))))
	assert.ErrorIs(t, err, ErrTopology)

	// A proper edge-sharing neighbor is accepted.
	err = tin.AddTriangle(MustTriangle(NewTriangle(pt(2, 0), pt(0, 2), pt(2, 2))))
	require.NoError(t, err)
	assert.Equal(t, 2, tin.NumTriangles())
}

func TestTINNeighbors(t *testing.T) {
	tin := rampTIN(t)

	ns, err := tin.Neighbors(1)
	require.NoError(t, err)
	assert.Equal(t, []int{2}, ns)

	ns, err = tin.Neighbors(2)
	require.NoError(t, err)
	assert.Equal(t, []int{1}, ns)

	_, err = tin.Neighbors(3)
	assert.ErrorIs(t, err, ErrIndexOutOfRange)

	require.NoError(t, tin.Validate())
	assert.False(t, tin.Closed())
}

func TestTINMeasures(t *testing.T) {
	tin := rampTIN(t)
	assert.InDelta(t, 100.0, tin.Area(), 1e-9)
	// A 45 degree tilt stretches the surface area by sqrt(2).
	assert.InDelta(t, 100.0*math.Sqrt2, tin.Area3D(), 1e-9)

	c, err := tin.Centroid()
	require.NoError(t, err)
	assert.True(t, c.Equals(pt(5, 5)))

	pos, err := tin.PointOnSurface()
	require.NoError(t, err)
	assert.True(t, tin.ContainsPoint(pos))
}

func TestTINInterpolateZ(t *testing.T) {
	tin := rampTIN(t)

	z, ok := tin.InterpolateZ(2, 7)
	assert.True(t, ok)
	assert.InDelta(t, 2.0, z, 1e-9)

	z, ok = tin.InterpolateZ(10, 10)
	assert.True(t, ok)
	assert.InDelta(t, 10.0, z, 1e-9)

	_, ok = tin.InterpolateZ(20, 20)
	assert.False(t, ok)

	// A network without elevations interpolates nothing.
	flat, err := NewTIN([]*Triangle{
		MustTriangle(NewTriangle(pt(0, 0), pt(1, 0), pt(0, 1))),
	})
	require.NoError(t, err)
	_, ok = flat.InterpolateZ(0.2, 0.2)
	assert.False(t, ok)
}

func TestTINSlopeAspect(t *testing.T) {
	tin := rampTIN(t)

	slope, aspect, err := tin.SlopeAspectAt(5, 5, 1)
	require.NoError(t, err)
	// The plane z = x rises at 45 degrees facing +x.
	assert.InDelta(t, math.Pi/4, slope, 1e-9)
	assert.InDelta(t, math.Pi/2, aspect, 1e-9)

	_, _, err = tin.SlopeAspectAt(50, 50, 1)
	assert.ErrorIs(t, err, ErrEmptyGeometry)
}

func TestTINSimplify(t *testing.T) {
	// A 3x3 grid on the plane z = x: the interior vertices carry no
	// information and decimation removes them without error growth.
	var grid []Point
	for _, x := range []float64{0, 5, 10} {
		for _, y := range []float64{0, 5, 10} {
			grid = append(grid, ptZ(x, y, x))
		}
	}
	tin, err := Triangulate(grid)
	require.NoError(t, err)

	simple, err := tin.Simplify(0.01)
	require.NoError(t, err)
	assert.Less(t, simple.NumTriangles(), tin.NumTriangles())

	// The decimated surface still reproduces the plane.
	for _, p := range []Point{pt(5, 5), pt(1, 9), pt(9, 1)} {
		z, ok := simple.InterpolateZ(p.X, p.Y)
		require.True(t, ok)
		assert.InDelta(t, p.X, z, 0.01+1e-9)
	}
}

func TestTINSimplifyErrors(t *testing.T) {
	flat, err := NewTIN([]*Triangle{
		MustTriangle(NewTriangle(pt(0, 0), pt(1, 0), pt(0, 1))),
	})
	require.NoError(t, err)
	_, err = flat.Simplify(0.1)
	assert.ErrorIs(t, err, ErrUnsupportedOperation)

	_, err = rampTIN(t).Simplify(-1)
	assert.ErrorIs(t, err, ErrOutOfRange)
}

func TestTINAsPolyhedralSurface(t *testing.T) {
	tin := rampTIN(t)
	ps := tin.AsPolyhedralSurface()
	assert.Equal(t, 2, ps.NumPatches())
	assert.InDelta(t, tin.Area(), ps.Area(), 1e-9)

	ns, err := ps.PatchNeighbors(1)
	require.NoError(t, err)
	assert.Equal(t, []int{2}, ns)
}

func TestTINWKT(t *testing.T) {
	flat, err := NewTIN([]*Triangle{
		MustTriangle(NewTriangle(pt(0, 0), pt(1, 0), pt(0, 1))),
	})
	require.NoError(t, err)
	assert.Equal(t, "TIN (((0 0, 1 0, 0 1, 0 0)))", flat.WKT())

	assert.Equal(t, "TIN EMPTY", (&TIN{}).WKT())

	z, err := NewTIN([]*Triangle{
		MustTriangle(NewTriangle(ptZ(0, 0, 1), ptZ(1, 0, 2), ptZ(0, 1, 3))),
	})
	require.NoError(t, err)
	assert.Equal(t, "TIN Z (((0 0 1, 1 0 2, 0 1 3, 0 0 1)))", z.WKT())
}

func TestTINCloneIndependence(t *testing.T) {
	tin := rampTIN(t)
	c := tin.Clone().(*TIN)
	require.NoError(t, c.AddTriangle(MustTriangle(NewTriangle(ptZ(10, 0, 10), ptZ(10, 10, 10), ptZ(20, 5, 0)))))
	assert.Equal(t, 2, tin.NumTriangles())
	assert.Equal(t, 3, c.NumTriangles())
}
