package axis

import (
	"fmt"

	"github.com/gogpu/chart"
	"github.com/gogpu/chart/component"
)

// DefaultLabelCount is the number of Y segments a vertical axis splits its
// range into unless WithLabelCount says otherwise.
const DefaultLabelCount = 4

// Axis draws one axis of a chart. Create it with New and call SetBounds
// before measuring or drawing labels against real geometry.
//
// An Axis is not safe for concurrent use; draw passes are expected to run
// on a single goroutine.
type Axis struct {
	position Position
	tickType TickType

	label     *component.TextComponent
	line      *component.LineComponent
	tick      *component.TickComponent
	guideline *component.LineComponent

	guidelineFilter func(index int) bool
	formatter       chart.ValueFormatter

	labelCount      int
	maxLabelWidthDp float64

	bounds        chart.Rect
	dataSetBounds chart.Rect
}

// Option configures an Axis.
type Option func(*Axis)

// WithLabel sets the label style. Nil disables labels.
func WithLabel(label *component.TextComponent) Option {
	return func(a *Axis) {
		a.label = label
	}
}

// WithLine sets the axis line style. Nil disables the axis line.
func WithLine(line *component.LineComponent) Option {
	return func(a *Axis) {
		a.line = line
	}
}

// WithTick sets the tick style. Nil disables ticks.
func WithTick(tick *component.TickComponent) Option {
	return func(a *Axis) {
		a.tick = tick
	}
}

// WithGuideline sets the guideline style. Nil disables guidelines.
func WithGuideline(guideline *component.LineComponent) Option {
	return func(a *Axis) {
		a.guideline = guideline
	}
}

// WithGuidelineFilter sets a predicate deciding per tick index whether its
// guideline is drawn. Nil draws every guideline that fits.
func WithGuidelineFilter(fn func(index int) bool) Option {
	return func(a *Axis) {
		a.guidelineFilter = fn
	}
}

// WithTickType sets the tick placement mode.
func WithTickType(t TickType) Option {
	return func(a *Axis) {
		a.tickType = t
	}
}

// WithValueFormatter sets the label formatter. Nil falls back to the
// formatter of the measure context.
func WithValueFormatter(f chart.ValueFormatter) Option {
	return func(a *Axis) {
		a.formatter = f
	}
}

// WithLabelCount sets how many segments a vertical axis splits the Y range
// into. Horizontal axes ignore it.
func WithLabelCount(n int) Option {
	return func(a *Axis) {
		a.labelCount = n
	}
}

// WithMaxLabelWidth caps vertical axis label width in dp. Zero means
// unlimited.
func WithMaxLabelWidth(dp float64) Option {
	return func(a *Axis) {
		a.maxLabelWidthDp = dp
	}
}

// New returns an axis attached to the given edge, using default label, line,
// tick and guideline styles unless overridden.
func New(position Position, opts ...Option) (*Axis, error) {
	if !position.valid() {
		return nil, fmt.Errorf("%w: %d", ErrInvalidPosition, int(position))
	}
	a := &Axis{
		position:   position,
		tickType:   Minor,
		label:      component.DefaultLabel(),
		line:       component.DefaultLine(),
		tick:       component.DefaultTick(),
		guideline:  component.DefaultGuideline(),
		labelCount: DefaultLabelCount,
	}
	for _, opt := range opts {
		opt(a)
	}
	if a.tickType != Minor && a.tickType != Major {
		return nil, fmt.Errorf("%w: %d", ErrInvalidTickType, int(a.tickType))
	}
	if position.IsVertical() && a.labelCount < 1 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidLabelCount, a.labelCount)
	}
	return a, nil
}

// Position returns the edge the axis is attached to.
func (a *Axis) Position() Position { return a.position }

// TickType returns the tick placement mode.
func (a *Axis) TickType() TickType { return a.tickType }

// Label returns the label style, or nil when labels are disabled.
func (a *Axis) Label() *component.TextComponent { return a.label }

// Line returns the axis line style, or nil.
func (a *Axis) Line() *component.LineComponent { return a.line }

// Tick returns the tick style, or nil.
func (a *Axis) Tick() *component.TickComponent { return a.tick }

// Guideline returns the guideline style, or nil.
func (a *Axis) Guideline() *component.LineComponent { return a.guideline }

// LabelCount returns the number of Y segments of a vertical axis.
func (a *Axis) LabelCount() int { return a.labelCount }

// Bounds returns the rectangle reserved for the axis.
func (a *Axis) Bounds() chart.Rect { return a.bounds }

// DataSetBounds returns the rectangle of the plotted data.
func (a *Axis) DataSetBounds() chart.Rect { return a.dataSetBounds }

// SetBounds sets the axis rectangle and the dataset rectangle it frames.
func (a *Axis) SetBounds(axisBounds, dataSetBounds chart.Rect) {
	a.bounds = axisBounds
	a.dataSetBounds = dataSetBounds
}

func (a *Axis) valueFormatter(m chart.MeasureContext) chart.ValueFormatter {
	if a.formatter != nil {
		return a.formatter
	}
	return m.ValueFormatter()
}

func (a *Axis) guidelineVisible(index int) bool {
	return a.guidelineFilter == nil || a.guidelineFilter(index)
}

func (a *Axis) lineThickness(m chart.MeasureContext) float64 {
	if a.line == nil {
		return 0
	}
	return a.line.ThicknessPx(m)
}

func (a *Axis) tickLength(m chart.MeasureContext) float64 {
	if a.tick == nil {
		return 0
	}
	return a.tick.LengthPx(m)
}

func (a *Axis) tickThickness(m chart.MeasureContext) float64 {
	if a.tick == nil {
		return 0
	}
	return a.tick.ThicknessPx(m)
}

func (a *Axis) maxLabelWidth(m chart.MeasureContext) float64 {
	if a.maxLabelWidthDp <= 0 {
		return 0
	}
	return m.Pixels(a.maxLabelWidthDp)
}
