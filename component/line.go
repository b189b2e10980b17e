package component

import (
	"math"

	"github.com/gogpu/chart"
)

// LineComponent is a ShapeComponent drawn as a straight band of fixed
// thickness, used for axis lines and guidelines.
type LineComponent struct {
	ShapeComponent

	// ThicknessDp is the band thickness in dp.
	ThicknessDp float64
}

// NewLine returns a rectangular line of the given color and thickness.
func NewLine(col chart.RGBA, thicknessDp float64) LineComponent {
	return LineComponent{
		ShapeComponent: NewShapeComponent(col),
		ThicknessDp:    thicknessDp,
	}
}

// ThicknessPx returns the thickness in pixels.
func (l LineComponent) ThicknessPx(m chart.MeasureContext) float64 {
	return m.Pixels(l.ThicknessDp)
}

// extentPx is the thickness used for fit checks; hairlines still take a
// full pixel.
func (l LineComponent) extentPx(m chart.MeasureContext) float64 {
	return math.Max(l.ThicknessPx(m), 1)
}

// DrawHorizontal draws the line from left to right centered on centerY.
func (l LineComponent) DrawHorizontal(ctx *chart.DrawContext, left, right, centerY float64) {
	half := l.ThicknessPx(ctx.MeasureContext) / 2
	l.Draw(ctx, left, centerY-half, right, centerY+half)
}

// DrawVertical draws the line from top to bottom centered on centerX.
func (l LineComponent) DrawVertical(ctx *chart.DrawContext, top, bottom, centerX float64) {
	half := l.ThicknessPx(ctx.MeasureContext) / 2
	l.Draw(ctx, centerX-half, top, centerX+half, bottom)
}

// FitsInHorizontal reports whether the horizontal line at centerY lies
// inside bounds.
func (l LineComponent) FitsInHorizontal(m chart.MeasureContext, left, right, centerY float64, bounds chart.Rect) bool {
	half := l.extentPx(m) / 2
	return bounds.Contains(chart.Rect{Left: left, Top: centerY - half, Right: right, Bottom: centerY + half})
}

// FitsInVertical reports whether the vertical line at centerX lies inside
// bounds.
func (l LineComponent) FitsInVertical(m chart.MeasureContext, top, bottom, centerX float64, bounds chart.Rect) bool {
	half := l.extentPx(m) / 2
	return bounds.Contains(chart.Rect{Left: centerX - half, Top: top, Right: centerX + half, Bottom: bottom})
}

// TickComponent is a short line marking a position along an axis.
type TickComponent struct {
	LineComponent

	// LengthDp is how far the tick extends past the axis line.
	LengthDp float64
}

// NewTick returns a tick whose length defaults to twice its thickness.
func NewTick(col chart.RGBA, thicknessDp float64) TickComponent {
	return TickComponent{
		LineComponent: NewLine(col, thicknessDp),
		LengthDp:      2 * thicknessDp,
	}
}

// LengthPx returns the tick length in pixels.
func (t TickComponent) LengthPx(m chart.MeasureContext) float64 {
	return m.Pixels(t.LengthDp)
}
