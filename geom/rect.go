package geom

import "math"

// Rect is an axis-aligned rectangle in document units.
type Rect struct {
	MinX, MinY, MaxX, MaxY float64
}

// RectFromPoints returns the smallest Rect containing both points.
func RectFromPoints(a, b Point) Rect {
	return Rect{
		MinX: math.Min(a.X, b.X),
		MinY: math.Min(a.Y, b.Y),
		MaxX: math.Max(a.X, b.X),
		MaxY: math.Max(a.Y, b.Y),
	}
}

// Center returns the geometric center of the rectangle.
func (r Rect) Center() Point {
	return Point{X: (r.MinX + r.MaxX) / 2, Y: (r.MinY + r.MaxY) / 2}
}

// Width returns the horizontal extent.
func (r Rect) Width() float64 { return r.MaxX - r.MinX }

// Height returns the vertical extent.
func (r Rect) Height() float64 { return r.MaxY - r.MinY }

// Union returns the smallest Rect containing both r and o.
func (r Rect) Union(o Rect) Rect {
	return Rect{
		MinX: math.Min(r.MinX, o.MinX),
		MinY: math.Min(r.MinY, o.MinY),
		MaxX: math.Max(r.MaxX, o.MaxX),
		MaxY: math.Max(r.MaxY, o.MaxY),
	}
}

// ExpandToPoint grows r to contain p.
func (r Rect) ExpandToPoint(p Point) Rect {
	return Rect{
		MinX: math.Min(r.MinX, p.X),
		MinY: math.Min(r.MinY, p.Y),
		MaxX: math.Max(r.MaxX, p.X),
		MaxY: math.Max(r.MaxY, p.Y),
	}
}

// Transform maps all four corners through m and returns their
// axis-aligned bounds.
func (r Rect) Transform(m Matrix) Rect {
	p0 := m.Apply(Point{X: r.MinX, Y: r.MinY})
	out := Rect{MinX: p0.X, MinY: p0.Y, MaxX: p0.X, MaxY: p0.Y}
	out = out.ExpandToPoint(m.Apply(Point{X: r.MaxX, Y: r.MinY}))
	out = out.ExpandToPoint(m.Apply(Point{X: r.MinX, Y: r.MaxY}))
	out = out.ExpandToPoint(m.Apply(Point{X: r.MaxX, Y: r.MaxY}))
	return out
}
