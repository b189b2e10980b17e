package chart

import "math"

// PathElement represents a single element in a path.
type PathElement interface {
	isPathElement()
}

// MoveTo moves to a point without drawing.
type MoveTo struct {
	Point Point
}

func (MoveTo) isPathElement() {}

// LineTo draws a line to a point.
type LineTo struct {
	Point Point
}

func (LineTo) isPathElement() {}

// CubicTo draws a cubic Bezier curve.
type CubicTo struct {
	Control1 Point
	Control2 Point
	Point    Point
}

func (CubicTo) isPathElement() {}

// Close closes the current subpath.
type Close struct{}

func (Close) isPathElement() {}

// Path represents a vector outline filled by a Canvas.
type Path struct {
	elements []PathElement
	start    Point
	current  Point
}

// NewPath creates a new empty path.
func NewPath() *Path {
	return &Path{
		elements: make([]PathElement, 0, 16),
	}
}

// MoveTo moves to a point without drawing.
func (p *Path) MoveTo(x, y float64) {
	pt := Pt(x, y)
	p.elements = append(p.elements, MoveTo{Point: pt})
	p.start = pt
	p.current = pt
}

// LineTo draws a line to a point.
func (p *Path) LineTo(x, y float64) {
	pt := Pt(x, y)
	p.elements = append(p.elements, LineTo{Point: pt})
	p.current = pt
}

// CubicTo draws a cubic Bezier curve.
func (p *Path) CubicTo(c1x, c1y, c2x, c2y, x, y float64) {
	pt := Pt(x, y)
	p.elements = append(p.elements, CubicTo{
		Control1: Pt(c1x, c1y),
		Control2: Pt(c2x, c2y),
		Point:    pt,
	})
	p.current = pt
}

// Close closes the current subpath by drawing a line to the start point.
func (p *Path) Close() {
	p.elements = append(p.elements, Close{})
	p.current = p.start
}

// Elements returns the path elements.
func (p *Path) Elements() []PathElement {
	return p.elements
}

// Empty reports whether the path has no elements.
func (p *Path) Empty() bool {
	return len(p.elements) == 0
}

// Rect adds the rectangle r to the path.
func (p *Path) Rect(r Rect) {
	p.MoveTo(r.Left, r.Top)
	p.LineTo(r.Right, r.Top)
	p.LineTo(r.Right, r.Bottom)
	p.LineTo(r.Left, r.Bottom)
	p.Close()
}

// RoundedRect adds r with circular corners of radius rad.
// The radius is clamped to half of the smaller side.
func (p *Path) RoundedRect(r Rect, rad float64) {
	rad = math.Min(rad, math.Min(r.Width(), r.Height())/2)
	if rad <= 0 {
		p.Rect(r)
		return
	}
	// 4/3 * (sqrt(2) - 1)
	const k = 0.5522847498307936
	o := rad * (1 - k)

	p.MoveTo(r.Left+rad, r.Top)
	p.LineTo(r.Right-rad, r.Top)
	p.CubicTo(r.Right-o, r.Top, r.Right, r.Top+o, r.Right, r.Top+rad)
	p.LineTo(r.Right, r.Bottom-rad)
	p.CubicTo(r.Right, r.Bottom-o, r.Right-o, r.Bottom, r.Right-rad, r.Bottom)
	p.LineTo(r.Left+rad, r.Bottom)
	p.CubicTo(r.Left+o, r.Bottom, r.Left, r.Bottom-o, r.Left, r.Bottom-rad)
	p.LineTo(r.Left, r.Top+rad)
	p.CubicTo(r.Left, r.Top+o, r.Left+o, r.Top, r.Left+rad, r.Top)
	p.Close()
}

// CutCornerRect adds r with its corners cut diagonally by cut pixels.
func (p *Path) CutCornerRect(r Rect, cut float64) {
	cut = math.Min(cut, math.Min(r.Width(), r.Height())/2)
	if cut <= 0 {
		p.Rect(r)
		return
	}
	p.MoveTo(r.Left+cut, r.Top)
	p.LineTo(r.Right-cut, r.Top)
	p.LineTo(r.Right, r.Top+cut)
	p.LineTo(r.Right, r.Bottom-cut)
	p.LineTo(r.Right-cut, r.Bottom)
	p.LineTo(r.Left+cut, r.Bottom)
	p.LineTo(r.Left, r.Bottom-cut)
	p.LineTo(r.Left, r.Top+cut)
	p.Close()
}

// Bounds returns the bounding box of all points and control points.
func (p *Path) Bounds() Rect {
	if len(p.elements) == 0 {
		return Rect{}
	}
	b := Rect{Left: math.Inf(1), Top: math.Inf(1), Right: math.Inf(-1), Bottom: math.Inf(-1)}
	add := func(pt Point) {
		b.Left = math.Min(b.Left, pt.X)
		b.Top = math.Min(b.Top, pt.Y)
		b.Right = math.Max(b.Right, pt.X)
		b.Bottom = math.Max(b.Bottom, pt.Y)
	}
	for _, elem := range p.elements {
		switch e := elem.(type) {
		case MoveTo:
			add(e.Point)
		case LineTo:
			add(e.Point)
		case CubicTo:
			add(e.Control1)
			add(e.Control2)
			add(e.Point)
		}
	}
	return b
}

// Clone creates a deep copy of the path.
func (p *Path) Clone() *Path {
	result := NewPath()
	result.elements = make([]PathElement, len(p.elements))
	copy(result.elements, p.elements)
	result.start = p.start
	result.current = p.current
	return result
}
