package geom

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPointRejectsNonFinite(t *testing.T) {
	_, err := NewPoint(math.NaN(), 0)
	assert.ErrorIs(t, err, ErrInvalidCoordinate)

	_, err = NewPoint(0, math.Inf(1))
	assert.ErrorIs(t, err, ErrInvalidCoordinate)

	_, err = NewPointZ(1, 2, math.Inf(-1))
	assert.ErrorIs(t, err, ErrInvalidCoordinate)

	_, err = NewPointZM(1, 2, 3, math.NaN())
	assert.ErrorIs(t, err, ErrInvalidCoordinate)
}

func TestNewPointSRSGeographicRange(t *testing.T) {
	wgs84 := SRS{ID: 4326, System: Geographic2D}

	p, err := NewPointSRS(-122.4, 37.8, wgs84)
	require.NoError(t, err)
	assert.Equal(t, wgs84, p.SRS())

	_, err = NewPointSRS(-181, 0, wgs84)
	assert.ErrorIs(t, err, ErrInvalidCoordinate)

	_, err = NewPointSRS(0, 90.5, wgs84)
	assert.ErrorIs(t, err, ErrInvalidCoordinate)

	// Cartesian systems carry no range restriction.
	_, err = NewPointSRS(1e6, -1e6, SRS{ID: 3857})
	assert.NoError(t, err)
}

func TestPointEquals(t *testing.T) {
	a := MustPoint(NewPoint(1, 2))
	b := MustPoint(NewPoint(1+1e-12, 2-1e-12))
	assert.True(t, a.Equals(b))
	assert.False(t, a.Equals(MustPoint(NewPoint(1.1, 2))))

	// Z participates only when both points carry one.
	az := MustPoint(NewPointZ(1, 2, 10))
	bz := MustPoint(NewPointZ(1, 2, 20))
	assert.False(t, az.Equals(bz))
	assert.True(t, az.Equals(a))

	// Measures never participate.
	am := MustPoint(NewPointM(1, 2, 7))
	bm := MustPoint(NewPointM(1, 2, 99))
	assert.True(t, am.Equals(bm))
}

func TestPointEqualsWithin(t *testing.T) {
	a := MustPoint(NewPoint(0, 0))
	b := MustPoint(NewPoint(0.05, 0))
	assert.False(t, a.Equals(b))
	assert.True(t, a.EqualsWithin(b, 0.1))
}

func TestPointDistance(t *testing.T) {
	a := MustPoint(NewPoint(0, 0))
	b := MustPoint(NewPoint(3, 4))
	assert.InDelta(t, 5.0, a.Distance(b), 1e-12)
	assert.Equal(t, a.Distance(b), b.Distance(a))

	az := MustPoint(NewPointZ(0, 0, 0))
	bz := MustPoint(NewPointZ(1, 2, 2))
	assert.InDelta(t, 3.0, az.Distance(bz), 1e-12)

	// Mixed dimensionality falls back to the planar distance.
	assert.InDelta(t, 5.0, az.Distance(b), 1e-12)
}

func TestPointWKT(t *testing.T) {
	assert.Equal(t, "POINT (10 20)", MustPoint(NewPoint(10, 20)).WKT())
	assert.Equal(t, "POINT Z (1 2 3)", MustPoint(NewPointZ(1, 2, 3)).WKT())
	assert.Equal(t, "POINT M (1 2 4)", MustPoint(NewPointM(1, 2, 4)).WKT())
	assert.Equal(t, "POINT ZM (1 2 3 4)", MustPoint(NewPointZM(1, 2, 3, 4)).WKT())
	assert.Equal(t, "POINT (0.5 -1.25)", MustPoint(NewPoint(0.5, -1.25)).WKT())
}

func TestPointBounds(t *testing.T) {
	b := MustPoint(NewPoint(3, -7)).Bounds()
	assert.Equal(t, 3.0, b.MinX)
	assert.Equal(t, 3.0, b.MaxX)
	assert.Equal(t, -7.0, b.MinY)
	assert.Equal(t, -7.0, b.MaxY)
	assert.False(t, b.Empty())
}
