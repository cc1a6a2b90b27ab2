package geom

import "math"

// Bounds is an axis-aligned rectangular extent. A freshly initialized
// Bounds is empty (inverted infinities) and grows as points are added.
type Bounds struct {
	MinX, MinY, MaxX, MaxY float64
}

// NewBounds returns an empty extent.
func NewBounds() *Bounds {
	return &Bounds{
		MinX: math.Inf(1), MinY: math.Inf(1),
		MaxX: math.Inf(-1), MaxY: math.Inf(-1),
	}
}

// Empty reports whether the extent covers no points.
func (b *Bounds) Empty() bool {
	return b.MaxX < b.MinX || b.MaxY < b.MinY
}

// ExtendPoint grows the extent to include p.
func (b *Bounds) ExtendPoint(p Point) {
	b.MinX = math.Min(b.MinX, p.X)
	b.MinY = math.Min(b.MinY, p.Y)
	b.MaxX = math.Max(b.MaxX, p.X)
	b.MaxY = math.Max(b.MaxY, p.Y)
}

func (b *Bounds) extendPoints(pts []Point) {
	for _, p := range pts {
		b.ExtendPoint(p)
	}
}

// Extend grows the extent to include b2.
func (b *Bounds) Extend(b2 *Bounds) {
	if b2 == nil || b2.Empty() {
		return
	}
	b.MinX = math.Min(b.MinX, b2.MinX)
	b.MinY = math.Min(b.MinY, b2.MinY)
	b.MaxX = math.Max(b.MaxX, b2.MaxX)
	b.MaxY = math.Max(b.MaxY, b2.MaxY)
}

// Overlaps reports whether the two extents share any point.
func (b *Bounds) Overlaps(b2 *Bounds) bool {
	if b.Empty() || b2.Empty() {
		return false
	}
	return b.MinX <= b2.MaxX && b.MinY <= b2.MaxY && b.MaxX >= b2.MinX && b.MaxY >= b2.MinY
}

// Expanded returns a copy of the extent grown by d on every side. An
// empty extent stays empty.
func (b *Bounds) Expanded(d float64) *Bounds {
	if b.Empty() {
		return b.Copy()
	}
	return &Bounds{MinX: b.MinX - d, MinY: b.MinY - d, MaxX: b.MaxX + d, MaxY: b.MaxY + d}
}

// ContainsXY reports whether (x, y) lies inside or on the extent.
func (b *Bounds) ContainsXY(x, y float64) bool {
	return x >= b.MinX && x <= b.MaxX && y >= b.MinY && y <= b.MaxY
}

// Width returns the x extent, 0 when empty.
func (b *Bounds) Width() float64 {
	if b.Empty() {
		return 0
	}
	return b.MaxX - b.MinX
}

// Height returns the y extent, 0 when empty.
func (b *Bounds) Height() float64 {
	if b.Empty() {
		return 0
	}
	return b.MaxY - b.MinY
}

// Copy returns an independent copy of b.
func (b *Bounds) Copy() *Bounds {
	c := *b
	return &c
}
