// Package geom provides the axis-aligned geometry primitives shared by the
// layout pipeline: points, rectangles, and a bounding-box accumulator.
//
// Adapted from: skia/models/rect.go, skia/models/irect.go (zodimo/go-skia-support).
package geom

import "math"

// Point is a 2D coordinate in the layout's logical unit space.
type Point struct {
	X, Y float64
}

// Size is a width/height pair.
type Size struct {
	Width, Height float64
}

// Rect is an axis-aligned rectangle, left/top inclusive, right/bottom exclusive.
type Rect struct {
	X, Y, Width, Height float64
}

// NewRect constructs a Rect from origin and size.
func NewRect(x, y, w, h float64) Rect {
	return Rect{X: x, Y: y, Width: w, Height: h}
}

// Left returns the rect's left edge.
func (r Rect) Left() float64 { return r.X }

// Top returns the rect's top edge.
func (r Rect) Top() float64 { return r.Y }

// Right returns the rect's right edge.
func (r Rect) Right() float64 { return r.X + r.Width }

// Bottom returns the rect's bottom edge.
func (r Rect) Bottom() float64 { return r.Y + r.Height }

// MaxY is an alias for Bottom, used by the column-flow code in the typesetter.
func (r Rect) MaxY() float64 { return r.Bottom() }

// Contains reports whether p falls within the rect (right/bottom exclusive).
func (r Rect) Contains(p Point) bool {
	return p.X >= r.Left() && p.X < r.Right() && p.Y >= r.Top() && p.Y < r.Bottom()
}

// Inset shrinks the rect by left/top/right/bottom amounts (negative grows it).
func (r Rect) Inset(left, top, right, bottom float64) Rect {
	return Rect{
		X:      r.X + left,
		Y:      r.Y + top,
		Width:  r.Width - left - right,
		Height: r.Height - top - bottom,
	}
}

// BBox is a mutable bounding-box accumulator.
type BBox struct {
	MinX, MinY float64
	MaxX, MaxY float64
	empty      bool
}

// NewBBox returns an empty accumulator.
func NewBBox() *BBox {
	return &BBox{
		MinX: math.Inf(1), MinY: math.Inf(1),
		MaxX: math.Inf(-1), MaxY: math.Inf(-1),
		empty: true,
	}
}

// AddPoint extends the box to include p.
func (b *BBox) AddPoint(p Point) {
	b.empty = false
	b.MinX = math.Min(b.MinX, p.X)
	b.MinY = math.Min(b.MinY, p.Y)
	b.MaxX = math.Max(b.MaxX, p.X)
	b.MaxY = math.Max(b.MaxY, p.Y)
}

// AddRect extends the box to include r.
func (b *BBox) AddRect(r Rect) {
	b.AddPoint(Point{r.Left(), r.Top()})
	b.AddPoint(Point{r.Right(), r.Bottom()})
}

// Empty reports whether nothing has been accumulated yet.
func (b *BBox) Empty() bool { return b.empty }

// Rect materializes the accumulated bounds. Returns the zero Rect if empty.
func (b *BBox) Rect() Rect {
	if b.empty {
		return Rect{}
	}
	return Rect{X: b.MinX, Y: b.MinY, Width: b.MaxX - b.MinX, Height: b.MaxY - b.MinY}
}
