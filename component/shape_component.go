package component

import (
	"math"

	"github.com/gogpu/chart"
)

// ShapeComponent fills a Shape with a solid color.
type ShapeComponent struct {
	Color chart.RGBA

	// Shape defaults to RectShape when nil.
	Shape Shape

	// ElevationDp tints the color with the context's elevation overlay.
	ElevationDp float64
}

// NewShapeComponent returns a rectangular ShapeComponent of the given color.
func NewShapeComponent(col chart.RGBA) ShapeComponent {
	return ShapeComponent{Color: col, Shape: RectShape{}}
}

// Draw fills the rectangle (left, top, right, bottom). Rectangles with
// no area are skipped.
func (s ShapeComponent) Draw(ctx *chart.DrawContext, left, top, right, bottom float64) {
	if !(left < right) || !(top < bottom) {
		return
	}
	shape := s.Shape
	if shape == nil {
		shape = RectShape{}
	}
	shape.DrawShape(ctx.Canvas(), ctx.MeasureContext, s.colorFor(ctx), chart.Rect{
		Left:   left,
		Top:    top,
		Right:  right,
		Bottom: bottom,
	})
}

// colorFor blends the context's elevation overlay into the color. The
// overlay strength grows logarithmically with elevation and is scaled by
// the overlay's own alpha, so a transparent overlay leaves colors untouched.
func (s ShapeComponent) colorFor(ctx *chart.DrawContext) chart.RGBA {
	overlay := ctx.ElevationOverlayColor
	if s.ElevationDp <= 0 || overlay.A <= 0 {
		return s.Color
	}
	alpha := overlay.A * (4.5*math.Log(s.ElevationDp+1) + 2) / 100
	tinted := overlay.WithAlpha(alpha).Over(s.Color)
	tinted.A = s.Color.A
	return tinted
}
