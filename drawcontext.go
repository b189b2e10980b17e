package chart

import "fmt"

// DrawContext bundles what one draw pass needs: the active canvas, its
// bounds, the measurement parameters and a snapshot of the chart model.
//
// A DrawContext is created per pass by the rendering root and is not safe
// for concurrent use.
type DrawContext struct {
	MeasureContext
	Extras

	canvas Canvas

	// CanvasBounds is the full drawable area.
	CanvasBounds Rect

	// ChartModel is the data domain snapshot for this pass.
	ChartModel ChartModel

	// ElevationOverlayColor tints components that cast shadows.
	ElevationOverlayColor RGBA

	// HorizontalScroll is the current horizontal scroll offset in pixels.
	HorizontalScroll float64

	// IsHorizontalScrollEnabled reports whether the host scrolls the chart.
	IsHorizontalScrollEnabled bool

	// ChartScale is the chart zoom factor.
	ChartScale float64
}

// DrawOption configures a DrawContext.
type DrawOption func(*DrawContext)

// WithMeasure sets all measurement parameters at once.
func WithMeasure(m MeasureContext) DrawOption {
	return func(c *DrawContext) {
		c.MeasureContext = m
	}
}

// WithDensity sets the pixel density.
func WithDensity(density float64) DrawOption {
	return func(c *DrawContext) {
		c.Density = density
	}
}

// WithFontScale sets the font scale.
func WithFontScale(scale float64) DrawOption {
	return func(c *DrawContext) {
		c.FontScale = scale
	}
}

// WithRTL sets right-to-left layout direction.
func WithRTL(rtl bool) DrawOption {
	return func(c *DrawContext) {
		c.RTL = rtl
	}
}

// WithChartModel sets the chart model snapshot.
func WithChartModel(m ChartModel) DrawOption {
	return func(c *DrawContext) {
		c.ChartModel = m
	}
}

// WithElevationOverlayColor sets the elevation overlay color.
func WithElevationOverlayColor(col RGBA) DrawOption {
	return func(c *DrawContext) {
		c.ElevationOverlayColor = col
	}
}

// WithHorizontalScroll enables horizontal scrolling at the given offset.
func WithHorizontalScroll(offset float64) DrawOption {
	return func(c *DrawContext) {
		c.IsHorizontalScrollEnabled = true
		c.HorizontalScroll = offset
	}
}

// WithChartScale sets the chart zoom factor.
func WithChartScale(scale float64) DrawOption {
	return func(c *DrawContext) {
		c.ChartScale = scale
	}
}

// NewDrawContext creates a DrawContext drawing onto canvas. CanvasBounds
// covers the whole canvas.
func NewDrawContext(canvas Canvas, opts ...DrawOption) *DrawContext {
	c := &DrawContext{
		canvas:                canvas,
		CanvasBounds:          Bounds(canvas),
		ElevationOverlayColor: DefaultElevationOverlayColor,
		ChartScale:            1,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Canvas returns the active canvas.
func (c *DrawContext) Canvas() Canvas {
	return c.canvas
}

// WithOtherCanvas runs fn with canvas as the active canvas and then
// restores the previous one. The previous canvas is restored when fn
// returns an error or panics, so nested calls unwind in stack order.
func (c *DrawContext) WithOtherCanvas(canvas Canvas, fn func(*DrawContext) error) error {
	if canvas == nil {
		return ErrNilCanvas
	}
	original := c.canvas
	c.canvas = canvas
	defer func() {
		c.canvas = original
	}()

	if err := fn(c); err != nil {
		return fmt.Errorf("chart: drawing on substitute canvas: %w", err)
	}
	return nil
}
