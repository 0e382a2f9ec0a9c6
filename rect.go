package geom

import "math"

// Rect is a rectangle described by its origin (lower-left corner) and size.
// A rect with a negative dimension is a valid, if degenerate, value: edge
// queries are derived algebraically from origin and size, so MaxX ends up
// less than MinX rather than the rect being normalized.
type Rect struct {
	Origin Point
	Size   Size
}

// NewRect creates a Rect from an origin and dimensions.
func NewRect(x, y, width, height float64) Rect {
	return Rect{Origin: Point{X: x, Y: y}, Size: Size{Width: width, Height: height}}
}

// RectOfSize returns a rect of the given size with origin (0, 0).
func RectOfSize(size Size) Rect {
	return Rect{Size: size}
}

// MinX returns the x-coordinate of the left edge.
func (r Rect) MinX() float64 {
	return r.Origin.X
}

// MidX returns the x-coordinate of the horizontal center.
func (r Rect) MidX() float64 {
	return r.Origin.X + r.Size.Width/2
}

// MaxX returns the x-coordinate of the right edge.
func (r Rect) MaxX() float64 {
	return r.Origin.X + r.Size.Width
}

// MinY returns the y-coordinate of the bottom edge.
func (r Rect) MinY() float64 {
	return r.Origin.Y
}

// MidY returns the y-coordinate of the vertical center.
func (r Rect) MidY() float64 {
	return r.Origin.Y + r.Size.Height/2
}

// MaxY returns the y-coordinate of the top edge.
func (r Rect) MaxY() float64 {
	return r.Origin.Y + r.Size.Height
}

// MidLeft returns the middle of the left edge.
func (r Rect) MidLeft() Point {
	return Point{X: r.MinX(), Y: r.MidY()}
}

// MidRight returns the middle of the right edge.
func (r Rect) MidRight() Point {
	return Point{X: r.MaxX(), Y: r.MidY()}
}

// MidTop returns the middle of the top edge.
func (r Rect) MidTop() Point {
	return Point{X: r.MidX(), Y: r.MaxY()}
}

// MidBottom returns the middle of the bottom edge.
func (r Rect) MidBottom() Point {
	return Point{X: r.MidX(), Y: r.MinY()}
}

// Center returns the center of the rect.
func (r Rect) Center() Point {
	return Point{X: r.MidX(), Y: r.MidY()}
}

// BottomLeft returns the lower-left corner, which is the origin.
func (r Rect) BottomLeft() Point {
	return Point{X: r.MinX(), Y: r.MinY()}
}

// BottomRight returns the lower-right corner.
func (r Rect) BottomRight() Point {
	return Point{X: r.MaxX(), Y: r.MinY()}
}

// TopLeft returns the upper-left corner.
func (r Rect) TopLeft() Point {
	return Point{X: r.MinX(), Y: r.MaxY()}
}

// TopRight returns the upper-right corner.
func (r Rect) TopRight() Point {
	return Point{X: r.MaxX(), Y: r.MaxY()}
}

// IsEmpty returns true if the rect has zero or negative area.
func (r Rect) IsEmpty() bool {
	return r.Size.Width <= 0 || r.Size.Height <= 0
}

// Translate returns a new Rect moved by (dx, dy).
func (r Rect) Translate(dx, dy float64) Rect {
	return Rect{Origin: Point{X: r.Origin.X + dx, Y: r.Origin.Y + dy}, Size: r.Size}
}

// Scale returns a rect with the same origin and the size multiplied
// component-wise by the given factors. A factor of 1.0 is identity;
// zero and negative factors produce degenerate rects.
func (r Rect) Scale(xScale, yScale float64) Rect {
	return Rect{
		Origin: r.Origin,
		Size:   Size{Width: r.Size.Width * xScale, Height: r.Size.Height * yScale},
	}
}

// Contains returns true if the point lies inside the rect.
// Both edges are inclusive on the continuous plane.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.MinX() && p.X <= r.MaxX() &&
		p.Y >= r.MinY() && p.Y <= r.MaxY()
}

// ContainsRect returns true if the other rect is fully contained within this rect.
func (r Rect) ContainsRect(other Rect) bool {
	if other.IsEmpty() {
		return true
	}
	if r.IsEmpty() {
		return false
	}
	return other.MinX() >= r.MinX() && other.MinY() >= r.MinY() &&
		other.MaxX() <= r.MaxX() && other.MaxY() <= r.MaxY()
}

// Intersect returns the intersection of two rects.
// If the rects don't overlap, returns a zero Rect.
func (r Rect) Intersect(other Rect) Rect {
	x := math.Max(r.MinX(), other.MinX())
	y := math.Max(r.MinY(), other.MinY())
	maxX := math.Min(r.MaxX(), other.MaxX())
	maxY := math.Min(r.MaxY(), other.MaxY())

	width := maxX - x
	height := maxY - y

	if width <= 0 || height <= 0 {
		return Rect{}
	}

	return NewRect(x, y, width, height)
}

// Intersects returns true if the two rects overlap.
// Touching edges do not count as overlapping.
func (r Rect) Intersects(other Rect) bool {
	return !r.Intersect(other).IsEmpty()
}

// Union returns the smallest rect that contains both rects.
// If either rect is empty, returns the other rect.
func (r Rect) Union(other Rect) Rect {
	if r.IsEmpty() {
		return other
	}
	if other.IsEmpty() {
		return r
	}

	x := math.Min(r.MinX(), other.MinX())
	y := math.Min(r.MinY(), other.MinY())
	maxX := math.Max(r.MaxX(), other.MaxX())
	maxY := math.Max(r.MaxY(), other.MaxY())

	return NewRect(x, y, maxX-x, maxY-y)
}
