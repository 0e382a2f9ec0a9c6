// Package render holds the drawing-layer geometry representation. It is
// structurally identical to the toolkit-layer types in the parent package
// and shares the same lower-left origin convention, so conversions in both
// directions are pure field copies with no flip or offset.
//
// The drawing layer only needs the types and the boundary conversions; all
// geometry computation lives in the parent package, reached by converting
// with Geom and back with FromPoint, FromSize, or FromRect.
package render

import geom "github.com/grindlemire/go-geom"

// Point is the drawing-layer point representation.
type Point struct {
	X, Y float64
}

// Size is the drawing-layer size representation.
type Size struct {
	Width, Height float64
}

// Rect is the drawing-layer rect representation.
type Rect struct {
	Origin Point
	Size   Size
}

// FromPoint converts a toolkit-layer point to the drawing layer.
func FromPoint(p geom.Point) Point {
	return Point{X: p.X, Y: p.Y}
}

// FromSize converts a toolkit-layer size to the drawing layer.
func FromSize(s geom.Size) Size {
	return Size{Width: s.Width, Height: s.Height}
}

// FromRect converts a toolkit-layer rect to the drawing layer.
func FromRect(r geom.Rect) Rect {
	return Rect{Origin: FromPoint(r.Origin), Size: FromSize(r.Size)}
}

// Geom converts the point back to the toolkit layer.
func (p Point) Geom() geom.Point {
	return geom.Point{X: p.X, Y: p.Y}
}

// Geom converts the size back to the toolkit layer.
func (s Size) Geom() geom.Size {
	return geom.Size{Width: s.Width, Height: s.Height}
}

// Geom converts the rect back to the toolkit layer.
func (r Rect) Geom() geom.Rect {
	return geom.Rect{Origin: r.Origin.Geom(), Size: r.Size.Geom()}
}
