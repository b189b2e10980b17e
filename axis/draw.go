package axis

import (
	"github.com/gogpu/chart"
	"github.com/gogpu/chart/component"
)

// Draw runs both draw layers: DrawBehindChart then DrawAboveChart. Hosts
// that draw chart content between the layers call them separately.
func (a *Axis) Draw(ctx *chart.DrawContext, model chart.AxisModel) {
	a.DrawBehindChart(ctx, model)
	a.DrawAboveChart(ctx, model)
}

// DrawBehindChart draws guidelines across the dataset, one per tick index
// accepted by the guideline filter. Guidelines that would spill outside the
// dataset bounds are skipped.
func (a *Axis) DrawBehindChart(ctx *chart.DrawContext, model chart.AxisModel) {
	if a.guideline == nil {
		return
	}
	m := ctx.MeasureContext
	ds := a.dataSetBounds
	horizontal := a.position.IsHorizontal()

	for i, c := range a.Layout(model).TickCenters {
		if !a.guidelineVisible(i) {
			continue
		}
		if horizontal {
			if a.guideline.FitsInVertical(m, ds.Top, ds.Bottom, c, ds) {
				a.guideline.DrawVertical(ctx, ds.Top, ds.Bottom, c)
			}
			continue
		}
		if a.guideline.FitsInHorizontal(m, ds.Left, ds.Right, c, ds) {
			a.guideline.DrawHorizontal(ctx, ds.Left, ds.Right, c)
		}
	}
}

// DrawAboveChart draws ticks, labels and the axis line.
func (a *Axis) DrawAboveChart(ctx *chart.DrawContext, model chart.AxisModel) {
	l := a.Layout(model)
	e := a.edges(ctx.MeasureContext)

	chart.Logger().Debug("axis: draw",
		"position", a.position,
		"tickType", a.tickType,
		"ticks", len(l.TickCenters),
		"labels", len(l.LabelCenters),
		"step", l.Step)

	if a.position.IsHorizontal() {
		if model.EntryCount <= 0 {
			chart.Logger().Warn("axis: model has no entries", "position", a.position)
		}
		a.drawHorizontal(ctx, model, l, e)
		return
	}
	a.drawVertical(ctx, model, l, e)
}

func (a *Axis) drawHorizontal(ctx *chart.DrawContext, model chart.AxisModel, l Layout, e edges) {
	if a.tick != nil {
		top, bottom := ordered(e.tickInner, e.tickOuter)
		for _, x := range l.TickCenters {
			a.tick.DrawVertical(ctx, top, bottom, x)
		}
	}

	if a.label != nil {
		vpos := component.VerticalBottom
		if e.outward < 0 {
			vpos = component.VerticalTop
		}
		f := a.valueFormatter(ctx.MeasureContext)
		maxWidth := float64(int(l.Step))
		for i, x := range l.LabelCenters {
			s := f.FormatValue(l.LabelValues[i], model)
			a.label.DrawText(ctx, s, x, e.tickOuter, component.HorizontalCenter, vpos, maxWidth)
		}
	}

	if a.line != nil {
		a.line.DrawHorizontal(ctx, a.dataSetBounds.Left, a.dataSetBounds.Right, e.line)
	}
}

func (a *Axis) drawVertical(ctx *chart.DrawContext, model chart.AxisModel, l Layout, e edges) {
	if a.tick != nil {
		left, right := ordered(e.tickInner, e.tickOuter)
		for _, y := range l.TickCenters {
			a.tick.DrawHorizontal(ctx, left, right, y)
		}
	}

	if a.label != nil {
		hpos := outwardPosition(e.outward, ctx.RTL)
		f := a.valueFormatter(ctx.MeasureContext)
		maxWidth := a.maxLabelWidth(ctx.MeasureContext)
		for i, y := range l.LabelCenters {
			s := f.FormatValue(l.LabelValues[i], model)
			a.label.DrawText(ctx, s, e.tickOuter, y, hpos, component.VerticalCenter, maxWidth)
		}
	}

	if a.line != nil {
		a.line.DrawVertical(ctx, a.dataSetBounds.Top, a.dataSetBounds.Bottom, e.line)
	}
}

// outwardPosition returns the text position that puts a label block on the
// outward side of its anchor.
func outwardPosition(outward float64, rtl bool) component.HorizontalPosition {
	if (outward > 0) != rtl {
		return component.HorizontalStart
	}
	return component.HorizontalEnd
}

func ordered(a, b float64) (float64, float64) {
	if a > b {
		return b, a
	}
	return a, b
}
