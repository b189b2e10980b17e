package axis

import "github.com/gogpu/chart"

// Size returns the thickness the axis needs across its direction: height
// for horizontal axes, width for vertical axes. It covers the axis line
// when the line lies inside the axis bounds, the tick length and the
// largest label.
func (a *Axis) Size(m chart.MeasureContext, model chart.AxisModel) float64 {
	size := a.tickLength(m)
	if a.position.ownsLine() {
		size += a.lineThickness(m)
	}
	if a.position.IsHorizontal() {
		return size + a.tallestLabel(m, model, float64(int(model.XSegmentWidth)))
	}
	return size + a.widestLabel(m, model)
}

// DrawExtends returns how far the axis draws past its bounds along its own
// direction, on each side. Minor ticks are centered on the bounds edges so
// half a tick spills over; vertical labels centered on edge ticks spill
// half their height.
func (a *Axis) DrawExtends(m chart.MeasureContext, model chart.AxisModel) chart.Dimensions {
	if a.tickType != Minor {
		return chart.Dimensions{}
	}
	halfTick := a.tickThickness(m) / 2
	if a.position.IsHorizontal() {
		return chart.Dimensions{Horizontal: halfTick}
	}
	labelHeight := a.tallestLabel(m, model, a.maxLabelWidth(m))
	return chart.Dimensions{Vertical: max(halfTick, labelHeight/2)}
}

func (a *Axis) tallestLabel(m chart.MeasureContext, model chart.AxisModel, maxWidth float64) float64 {
	if a.label == nil {
		return 0
	}
	tallest := 0.0
	for _, s := range a.Labels(m, model) {
		tallest = max(tallest, a.label.Height(m, s, maxWidth))
	}
	return tallest
}

func (a *Axis) widestLabel(m chart.MeasureContext, model chart.AxisModel) float64 {
	if a.label == nil {
		return 0
	}
	limit := a.maxLabelWidth(m)
	widest := 0.0
	for _, s := range a.Labels(m, model) {
		w := a.label.Width(m, s)
		if limit > 0 {
			w = min(w, limit)
		}
		widest = max(widest, w)
	}
	return widest
}
