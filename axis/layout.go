package axis

import (
	"math"

	"github.com/gogpu/chart"
)

// maxMeasuredLabels bounds the label walk in Labels so a huge range with a
// tiny step cannot stall measurement.
const maxMeasuredLabels = 10_000

// Layout is the placement of ticks and labels along the axis direction.
// Coordinates are X for horizontal axes and Y for vertical axes.
type Layout struct {
	// Step is the distance between neighbouring segments in pixels.
	Step float64

	// TickCenters holds one entry per tick, in index order.
	TickCenters []float64

	// LabelCenters and LabelValues are parallel: the anchor of each label
	// and the value it shows.
	LabelCenters []float64
	LabelValues  []float64
}

// Layout computes tick and label placement for the current bounds.
//
// Horizontal axes divide the bounds width into model.EntryCount segments.
// Vertical axes divide the bounds height into LabelCount segments and index
// from the bottom up.
func (a *Axis) Layout(model chart.AxisModel) Layout {
	if a.position.IsHorizontal() {
		return a.horizontalLayout(model)
	}
	return a.verticalLayout(model)
}

// TickCenters returns the tick center coordinates for model.
func (a *Axis) TickCenters(model chart.AxisModel) []float64 {
	return a.Layout(model).TickCenters
}

// LabelPositions returns the label anchor coordinates for model.
func (a *Axis) LabelPositions(model chart.AxisModel) []float64 {
	return a.Layout(model).LabelCenters
}

func (a *Axis) horizontalLayout(model chart.AxisModel) Layout {
	entries := max(model.EntryCount, 0)
	left := a.bounds.Left

	var step float64
	if entries > 0 {
		step = a.bounds.Width() / float64(entries)
	}
	textCenter := left + step/2

	count, center := entries+1, left
	if a.tickType == Major {
		count, center = entries, textCenter
	}

	l := Layout{
		Step:         step,
		TickCenters:  make([]float64, count),
		LabelCenters: make([]float64, entries),
		LabelValues:  make([]float64, entries),
	}
	for i := 0; i < count; i++ {
		l.TickCenters[i] = center + float64(i)*step
	}
	for i := 0; i < entries; i++ {
		l.LabelCenters[i] = textCenter + float64(i)*step
		l.LabelValues[i] = model.MinX + float64(i)*model.Step
	}
	return l
}

func (a *Axis) verticalLayout(model chart.AxisModel) Layout {
	n := max(a.labelCount, 1)
	bottom := a.bounds.Bottom
	step := a.bounds.Height() / float64(n)
	valueStep := model.YRange() / float64(n)

	count, offset := n+1, 0.0
	if a.tickType == Major {
		count, offset = n, 0.5
	}

	l := Layout{
		Step:         step,
		TickCenters:  make([]float64, count),
		LabelCenters: make([]float64, count),
		LabelValues:  make([]float64, count),
	}
	for i := 0; i < count; i++ {
		pos := float64(i) + offset
		l.TickCenters[i] = bottom - pos*step
		l.LabelCenters[i] = l.TickCenters[i]
		l.LabelValues[i] = model.MinY + pos*valueStep
	}
	return l
}

// Labels returns every label string the axis can show for model, formatted
// with the same formatter the draw pass uses. Horizontal axes walk from
// MaxX down to MinX by model.Step; vertical axes list their segment values
// from the top down.
func (a *Axis) Labels(m chart.MeasureContext, model chart.AxisModel) []string {
	f := a.valueFormatter(m)
	if a.position.IsVertical() {
		values := a.verticalLayout(model).LabelValues
		labels := make([]string, len(values))
		for i := range values {
			labels[i] = f.FormatValue(values[len(values)-1-i], model)
		}
		return labels
	}

	if !(model.Step > 0) || model.MaxX < model.MinX {
		return []string{f.FormatValue(model.MaxX, model)}
	}
	n := int(math.Floor(model.XRange()/model.Step + 1e-9))
	if n >= maxMeasuredLabels {
		chart.Logger().Warn("axis: label walk truncated",
			"position", a.position, "labels", n+1, "limit", maxMeasuredLabels)
		n = maxMeasuredLabels - 1
	}
	labels := make([]string, 0, n+1)
	for i := 0; i <= n; i++ {
		labels = append(labels, f.FormatValue(model.MaxX-float64(i)*model.Step, model))
	}
	return labels
}

// edges is the cross-axis geometry of an axis: where the axis line sits and
// the span its ticks cover. outward is +1 when ticks grow toward larger
// coordinates and -1 otherwise.
type edges struct {
	line      float64
	tickInner float64
	tickOuter float64
	outward   float64
}

func (a *Axis) edges(m chart.MeasureContext) edges {
	var near, outward float64
	switch {
	case a.position == Bottom:
		near, outward = a.bounds.Top, 1
	case a.position == Top:
		near, outward = a.bounds.Bottom, -1
	case a.position.IsLeft(m.RTL):
		near, outward = a.bounds.Right, -1
	default:
		near, outward = a.bounds.Left, 1
	}

	t := a.lineThickness(m)
	length := a.tickLength(m)
	if a.position.ownsLine() {
		return edges{
			line:      near + outward*t/2,
			tickInner: near,
			tickOuter: near + outward*(t+length),
			outward:   outward,
		}
	}
	return edges{
		line:      near - outward*t/2,
		tickInner: near - outward*t,
		tickOuter: near + outward*length,
		outward:   outward,
	}
}
