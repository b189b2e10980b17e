package component

import (
	"math"

	"github.com/gogpu/chart"
)

// Shape fills an outline within bounds.
type Shape interface {
	DrawShape(c chart.Canvas, m chart.MeasureContext, col chart.RGBA, bounds chart.Rect)
}

// RectShape fills the bounds exactly.
type RectShape struct{}

// DrawShape implements Shape.
func (RectShape) DrawShape(c chart.Canvas, _ chart.MeasureContext, col chart.RGBA, bounds chart.Rect) {
	c.FillRect(bounds, col)
}

// RoundedShape fills the bounds with circular corners.
type RoundedShape struct {
	RadiusDp float64
}

// DrawShape implements Shape.
func (s RoundedShape) DrawShape(c chart.Canvas, m chart.MeasureContext, col chart.RGBA, bounds chart.Rect) {
	p := chart.NewPath()
	p.RoundedRect(bounds, m.Pixels(s.RadiusDp))
	c.FillPath(p, col)
}

// PillShape fills the bounds with fully rounded ends.
type PillShape struct{}

// DrawShape implements Shape.
func (PillShape) DrawShape(c chart.Canvas, _ chart.MeasureContext, col chart.RGBA, bounds chart.Rect) {
	p := chart.NewPath()
	p.RoundedRect(bounds, math.Min(bounds.Width(), bounds.Height())/2)
	c.FillPath(p, col)
}

// CutCornerShape fills the bounds with diagonally cut corners.
type CutCornerShape struct {
	CutDp float64
}

// DrawShape implements Shape.
func (s CutCornerShape) DrawShape(c chart.Canvas, m chart.MeasureContext, col chart.RGBA, bounds chart.Rect) {
	p := chart.NewPath()
	p.CutCornerRect(bounds, m.Pixels(s.CutDp))
	c.FillPath(p, col)
}
