package chart

import "math"

// Point represents a 2D point in pixel space.
type Point struct {
	X, Y float64
}

// Pt is a convenience function to create a Point.
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

// Add returns the sum of two points.
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Sub returns the difference of two points.
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// Lerp performs linear interpolation between two points.
func (p Point) Lerp(q Point, t float64) Point {
	return Point{
		X: p.X + (q.X-p.X)*t,
		Y: p.Y + (q.Y-p.Y)*t,
	}
}

// Rect is an axis-aligned rectangle in pixel space.
// Origin is top-left and Y grows downward, so Top <= Bottom for a
// well-formed rectangle.
type Rect struct {
	Left, Top, Right, Bottom float64
}

// RectOf returns a normalized rectangle spanning the two corners.
func RectOf(x1, y1, x2, y2 float64) Rect {
	return Rect{
		Left:   math.Min(x1, x2),
		Top:    math.Min(y1, y2),
		Right:  math.Max(x1, x2),
		Bottom: math.Max(y1, y2),
	}
}

// RectXYWH returns the rectangle with the given origin and size.
// Negative sizes are clamped to zero.
func RectXYWH(x, y, w, h float64) Rect {
	return Rect{Left: x, Top: y, Right: x + math.Max(w, 0), Bottom: y + math.Max(h, 0)}
}

// Width returns the horizontal extent of r.
func (r Rect) Width() float64 { return r.Right - r.Left }

// Height returns the vertical extent of r.
func (r Rect) Height() float64 { return r.Bottom - r.Top }

// CenterX returns the horizontal center of r.
func (r Rect) CenterX() float64 { return (r.Left + r.Right) / 2 }

// CenterY returns the vertical center of r.
func (r Rect) CenterY() float64 { return (r.Top + r.Bottom) / 2 }

// Empty reports whether r has no area.
func (r Rect) Empty() bool {
	return !(r.Left < r.Right) || !(r.Top < r.Bottom)
}

// Contains reports whether o lies entirely inside r (edges inclusive).
func (r Rect) Contains(o Rect) bool {
	return o.Left >= r.Left && o.Right <= r.Right && o.Top >= r.Top && o.Bottom <= r.Bottom
}

// ContainsPoint reports whether p lies inside r (edges inclusive).
func (r Rect) ContainsPoint(p Point) bool {
	return p.X >= r.Left && p.X <= r.Right && p.Y >= r.Top && p.Y <= r.Bottom
}

// Inset shrinks r by dx on the left and right and dy on the top and bottom.
// Negative values grow the rectangle. The result never inverts.
func (r Rect) Inset(dx, dy float64) Rect {
	out := Rect{Left: r.Left + dx, Top: r.Top + dy, Right: r.Right - dx, Bottom: r.Bottom - dy}
	if out.Left > out.Right {
		cx := r.CenterX()
		out.Left, out.Right = cx, cx
	}
	if out.Top > out.Bottom {
		cy := r.CenterY()
		out.Top, out.Bottom = cy, cy
	}
	return out
}

// Translate returns r moved by (dx, dy).
func (r Rect) Translate(dx, dy float64) Rect {
	return Rect{Left: r.Left + dx, Top: r.Top + dy, Right: r.Right + dx, Bottom: r.Bottom + dy}
}

// Dimensions describes extra space a renderer needs around the dataset
// bounds, split by direction.
type Dimensions struct {
	Horizontal float64
	Vertical   float64
}
