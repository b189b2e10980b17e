package chart

import "github.com/gogpu/chart/text"

// Canvas is the draw surface charts render onto.
//
// Coordinates are in pixels with the origin at the top-left corner and Y
// increasing downward. Implementations must accept degenerate input
// (empty rectangles, zero-width lines, empty strings) and draw nothing for it.
type Canvas interface {
	// Width returns the surface width in pixels.
	Width() int

	// Height returns the surface height in pixels.
	Height() int

	// FillRect fills r with c.
	FillRect(r Rect, c RGBA)

	// FillPath fills the closed outline p with c using the non-zero rule.
	FillPath(p *Path, c RGBA)

	// StrokeLine draws a line segment of the given width with butt caps.
	StrokeLine(x1, y1, x2, y2, width float64, c RGBA)

	// DrawText draws s with its left edge at x and its baseline at y.
	DrawText(s string, x, baseline float64, face *text.Face, c RGBA)
}

// Bounds returns the full-surface rectangle of c.
func Bounds(c Canvas) Rect {
	if c == nil {
		return Rect{}
	}
	return Rect{Right: float64(c.Width()), Bottom: float64(c.Height())}
}
