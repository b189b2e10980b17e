package main

import (
	"fmt"

	"github.com/gogpu/chart"
	"github.com/gogpu/chart/axis"
	"github.com/gogpu/chart/config"
	"github.com/gogpu/chart/decoration"
	"github.com/gogpu/chart/scroll"
)

// paddingDp separates the chart from the canvas edges.
const paddingDp = 8

// viewport describes the visible slice of the model after scrolling.
type viewport struct {
	first, count, total int
	scroll, offset      float64
	dataSet             chart.Rect
}

// render draws every configured axis and threshold line onto c.
func render(c chart.Canvas, cfg *config.Config, scrollTo float64) (viewport, error) {
	model, err := cfg.Model.Build()
	if err != nil {
		return viewport{}, fmt.Errorf("model: %w", err)
	}
	axes := make([]*axis.Axis, 0, len(cfg.Axes))
	for i, ac := range cfg.Axes {
		a, err := ac.Build()
		if err != nil {
			return viewport{}, fmt.Errorf("axes[%d]: %w", i, err)
		}
		axes = append(axes, a)
	}
	thresholds := make([]decoration.Decoration, 0, len(cfg.Thresholds))
	for i, tc := range cfg.Thresholds {
		t, err := tc.Build()
		if err != nil {
			return viewport{}, fmt.Errorf("thresholds[%d]: %w", i, err)
		}
		thresholds = append(thresholds, t)
	}

	m := cfg.MeasureContext()
	dataSet := layout(m, chart.Bounds(c), model, axes)

	// Content narrower than the dataset is stretched to fill it.
	segment := model.XSegmentWidth
	if n := float64(model.EntryCount); n > 0 && (segment <= 0 || segment*n < dataSet.Width()) {
		segment = dataSet.Width() / n
	}
	h := scroll.NewHandler(
		scroll.WithMaxScrollDistance(scroll.MaxScrollFor(model.EntryCount, segment, dataSet.Width())),
		scroll.WithListener(func(requested, current float64) {
			chart.Logger().Debug("chartdemo: scroll", "requested", requested, "current", current)
		}),
	)
	h.HandleScroll(scrollTo)
	first, count := h.VisibleWindow(model.EntryCount, segment, dataSet.Width())
	window := model.Window(first, count)
	offset := h.Current() - float64(first)*segment
	pan(axes, dataSet, offset, float64(count)*segment)

	ctx := chart.NewDrawContext(c,
		chart.WithMeasure(m),
		chart.WithChartModel(window.ChartModel),
		chart.WithHorizontalScroll(h.Current()),
	)

	for _, a := range axes {
		a.DrawBehindChart(ctx, window)
	}
	for _, a := range axes {
		a.DrawAboveChart(ctx, window)
	}
	decoration.DrawAll(ctx, dataSet, thresholds...)

	return viewport{
		first:   first,
		count:   count,
		total:   model.EntryCount,
		scroll:  h.Current(),
		offset:  offset,
		dataSet: dataSet,
	}, nil
}

// layout reserves space for each axis around the canvas edges, assigns axis
// bounds and returns the dataset rectangle. Axes on the same edge stack
// outward in configuration order.
func layout(m chart.MeasureContext, canvas chart.Rect, model chart.AxisModel, axes []*axis.Axis) chart.Rect {
	pad := m.Pixels(paddingDp)
	sizes := make([]float64, len(axes))
	var left, top, right, bottom float64
	var extendX, extendY float64
	for i, a := range axes {
		sizes[i] = a.Size(m, model)
		ext := a.DrawExtends(m, model)
		extendX = max(extendX, ext.Horizontal)
		extendY = max(extendY, ext.Vertical)
		switch side(m, a.Position()) {
		case edgeTop:
			top += sizes[i]
		case edgeBottom:
			bottom += sizes[i]
		case edgeLeft:
			left += sizes[i]
		default:
			right += sizes[i]
		}
	}

	ds := chart.RectOf(
		canvas.Left+pad+left+extendX,
		canvas.Top+pad+top+extendY,
		max(canvas.Right-pad-right-extendX, canvas.Left+pad+left+extendX),
		max(canvas.Bottom-pad-bottom-extendY, canvas.Top+pad+top+extendY),
	)

	var offTop, offBottom, offLeft, offRight float64
	for i, a := range axes {
		size := sizes[i]
		var r chart.Rect
		switch side(m, a.Position()) {
		case edgeTop:
			r = chart.RectOf(ds.Left, ds.Top-offTop-size, ds.Right, ds.Top-offTop)
			offTop += size
		case edgeBottom:
			r = chart.RectOf(ds.Left, ds.Bottom+offBottom, ds.Right, ds.Bottom+offBottom+size)
			offBottom += size
		case edgeLeft:
			r = chart.RectOf(ds.Left-offLeft-size, ds.Top, ds.Left-offLeft, ds.Bottom)
			offLeft += size
		default:
			r = chart.RectOf(ds.Right+offRight, ds.Top, ds.Right+offRight+size, ds.Bottom)
			offRight += size
		}
		a.SetBounds(r, ds)
	}
	return ds
}

// pan moves horizontal axes so that the visible window, width pixels wide,
// starts offset pixels left of the dataset.
func pan(axes []*axis.Axis, dataSet chart.Rect, offset, width float64) {
	for _, a := range axes {
		if !a.Position().IsHorizontal() {
			continue
		}
		r := a.Bounds()
		r.Left = dataSet.Left - offset
		r.Right = r.Left + width
		a.SetBounds(r, dataSet)
	}
}

type edge int

const (
	edgeTop edge = iota
	edgeBottom
	edgeLeft
	edgeRight
)

func side(m chart.MeasureContext, p axis.Position) edge {
	switch {
	case p == axis.Top:
		return edgeTop
	case p == axis.Bottom:
		return edgeBottom
	case p.IsLeft(m.RTL):
		return edgeLeft
	default:
		return edgeRight
	}
}
