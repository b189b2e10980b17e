package decoration

import (
	"fmt"
	"math"

	"github.com/gogpu/chart"
	"github.com/gogpu/chart/component"
)

// DefaultMinimumThicknessDp is the thinnest a threshold band is drawn.
const DefaultMinimumThicknessDp = 2

var labelFormatter = chart.NewDecimalFormatter()

// ThresholdLine highlights the Y range [Start, End] with a horizontal band
// across the dataset and labels it.
//
// ThresholdLine is an immutable value: use With to derive a modified copy.
type ThresholdLine struct {
	start, end float64

	label    string
	hasLabel bool

	line           component.ShapeComponent
	minThicknessDp float64
	labelComponent component.TextComponent
	horizontal     LabelHorizontalPosition
	vertical       LabelVerticalPosition
}

// ThresholdOption configures a ThresholdLine.
type ThresholdOption func(*ThresholdLine)

// WithLabel overrides the label text. By default the label is the range
// formatted as "start–end", or just the value for a single-value line.
func WithLabel(label string) ThresholdOption {
	return func(t *ThresholdLine) {
		t.label = label
		t.hasLabel = true
	}
}

// WithLineComponent sets the band style.
func WithLineComponent(line component.ShapeComponent) ThresholdOption {
	return func(t *ThresholdLine) {
		t.line = line
	}
}

// WithMinimumThickness sets the minimum band height in dp.
func WithMinimumThickness(dp float64) ThresholdOption {
	return func(t *ThresholdLine) {
		t.minThicknessDp = dp
	}
}

// WithLabelComponent sets the label style.
func WithLabelComponent(label component.TextComponent) ThresholdOption {
	return func(t *ThresholdLine) {
		t.labelComponent = label
	}
}

// WithLabelHorizontalPosition sets which end of the band the label uses.
func WithLabelHorizontalPosition(p LabelHorizontalPosition) ThresholdOption {
	return func(t *ThresholdLine) {
		t.horizontal = p
	}
}

// WithLabelVerticalPosition sets the preferred side of the band for the
// label. The label moves to the other side when it would not fit.
func WithLabelVerticalPosition(p LabelVerticalPosition) ThresholdOption {
	return func(t *ThresholdLine) {
		t.vertical = p
	}
}

// NewThresholdLine returns a threshold covering [start, end].
// It returns ErrInvalidRange when start > end or either bound is NaN or
// infinite.
func NewThresholdLine(start, end float64, opts ...ThresholdOption) (ThresholdLine, error) {
	t := ThresholdLine{
		start:          start,
		end:            end,
		line:           component.NewShapeComponent(chart.DefaultThresholdColor),
		minThicknessDp: DefaultMinimumThicknessDp,
		labelComponent: *component.DefaultLabel(),
		horizontal:     LabelStart,
		vertical:       LabelTop,
	}
	return t.With(opts...)
}

// NewThresholdValue returns a threshold covering the single value v.
func NewThresholdValue(v float64, opts ...ThresholdOption) (ThresholdLine, error) {
	return NewThresholdLine(v, v, opts...)
}

// With returns a copy of t with opts applied.
func (t ThresholdLine) With(opts ...ThresholdOption) (ThresholdLine, error) {
	for _, opt := range opts {
		opt(&t)
	}
	if err := t.validate(); err != nil {
		return ThresholdLine{}, err
	}
	return t, nil
}

func (t ThresholdLine) validate() error {
	if !finite(t.start) || !finite(t.end) {
		return fmt.Errorf("%w: [%v, %v] is not finite", ErrInvalidRange, t.start, t.end)
	}
	if t.start > t.end {
		return fmt.Errorf("%w: start %v > end %v", ErrInvalidRange, t.start, t.end)
	}
	if math.IsNaN(t.minThicknessDp) || t.minThicknessDp < 0 {
		return fmt.Errorf("%w: %v", ErrInvalidThickness, t.minThicknessDp)
	}
	if t.horizontal != LabelStart && t.horizontal != LabelEnd {
		return fmt.Errorf("%w: horizontal %d", ErrInvalidPosition, int(t.horizontal))
	}
	if t.vertical != LabelTop && t.vertical != LabelBottom {
		return fmt.Errorf("%w: vertical %d", ErrInvalidPosition, int(t.vertical))
	}
	return nil
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// Start returns the low end of the range.
func (t ThresholdLine) Start() float64 { return t.start }

// End returns the high end of the range.
func (t ThresholdLine) End() float64 { return t.end }

// Median returns the center of the range.
func (t ThresholdLine) Median() float64 { return (t.start + t.end) / 2 }

// Label returns the label text.
func (t ThresholdLine) Label() string {
	if t.hasLabel {
		return t.label
	}
	if t.start == t.end {
		return labelFormatter.Format(t.start)
	}
	return labelFormatter.FormatRange(t.start, t.end)
}

// LineComponent returns the band style.
func (t ThresholdLine) LineComponent() component.ShapeComponent { return t.line }

// MinimumThickness returns the minimum band height in dp.
func (t ThresholdLine) MinimumThickness() float64 { return t.minThicknessDp }

// LabelComponent returns the label style.
func (t ThresholdLine) LabelComponent() component.TextComponent { return t.labelComponent }

// LabelHorizontalPosition returns the configured horizontal label position.
func (t ThresholdLine) LabelHorizontalPosition() LabelHorizontalPosition { return t.horizontal }

// LabelVerticalPosition returns the preferred vertical label position.
func (t ThresholdLine) LabelVerticalPosition() LabelVerticalPosition { return t.vertical }

// Placement is where a threshold line draws for one pass.
type Placement struct {
	// Band is the highlighted rectangle after minimum thickness and
	// pixel rounding are applied.
	Band chart.Rect

	// X and Y anchor the label.
	X, Y float64

	// Horizontal and Vertical are the resolved label positions. Vertical
	// differs from the preference when the label was flipped.
	Horizontal LabelHorizontalPosition
	Vertical   LabelVerticalPosition

	// Flipped reports that the preferred vertical position did not fit.
	Flipped bool
}

// LabelPlacement computes the band and label geometry Draw would use.
func (t ThresholdLine) LabelPlacement(ctx *chart.DrawContext, bounds chart.Rect) Placement {
	band := t.band(ctx.MeasureContext, ctx.ChartModel, bounds)

	textY := band.Top
	if t.vertical == LabelBottom {
		textY = band.Bottom
	}
	height := t.labelComponent.Height(ctx.MeasureContext, t.Label(), labelMaxWidth(bounds))
	vertical := suggestVerticalPosition(t.vertical, textY, height, bounds)

	return Placement{
		Band:       band,
		X:          labelX(t.horizontal, bounds, ctx.RTL),
		Y:          textY,
		Horizontal: t.horizontal,
		Vertical:   vertical,
		Flipped:    vertical != t.vertical,
	}
}

// Draw implements Decoration.
func (t ThresholdLine) Draw(ctx *chart.DrawContext, bounds chart.Rect) {
	if !(ctx.ChartModel.YRange() > 0) {
		chart.Logger().Warn("decoration: empty Y range, threshold drawn at bottom edge",
			"minY", ctx.ChartModel.MinY, "maxY", ctx.ChartModel.MaxY)
	}
	p := t.LabelPlacement(ctx, bounds)
	if p.Flipped {
		chart.Logger().Debug("decoration: threshold label flipped",
			"label", t.Label(), "from", t.vertical, "to", p.Vertical)
	}
	t.line.Draw(ctx, p.Band.Left, p.Band.Top, p.Band.Right, p.Band.Bottom)
	t.labelComponent.DrawText(ctx, t.Label(), p.X, p.Y,
		p.Horizontal.Position(), p.Vertical.Position(), labelMaxWidth(bounds))
}

// band maps the range into bounds and widens it to the minimum thickness
// around the range median. The top edge rounds up and the bottom edge down.
func (t ThresholdLine) band(m chart.MeasureContext, model chart.ChartModel, bounds chart.Rect) chart.Rect {
	half := m.Pixels(t.minThicknessDp) / 2
	center := valueToY(t.Median(), model, bounds)
	top := math.Ceil(min(valueToY(t.end, model, bounds), center-half))
	bottom := math.Floor(max(valueToY(t.start, model, bounds), center+half))
	return chart.Rect{Left: bounds.Left, Top: top, Right: bounds.Right, Bottom: bottom}
}

// valueToY maps a Y value into bounds. An empty Y range maps everything to
// the bottom edge.
func valueToY(v float64, model chart.ChartModel, bounds chart.Rect) float64 {
	r := model.YRange()
	if !(r > 0) {
		return bounds.Bottom
	}
	return bounds.Bottom - (v-model.MinY)/r*bounds.Height()
}

func labelX(p LabelHorizontalPosition, bounds chart.Rect, rtl bool) float64 {
	if (p == LabelStart) != rtl {
		return bounds.Left
	}
	return bounds.Right
}

func labelMaxWidth(bounds chart.Rect) float64 {
	return float64(int(bounds.Width()))
}

// suggestVerticalPosition flips the preferred position when a label of the
// given height anchored at textY would cross the bounds edge.
func suggestVerticalPosition(pref LabelVerticalPosition, textY, labelHeight float64, bounds chart.Rect) LabelVerticalPosition {
	switch pref {
	case LabelTop:
		if textY-labelHeight < bounds.Top {
			return LabelBottom
		}
	case LabelBottom:
		if textY+labelHeight > bounds.Bottom {
			return LabelTop
		}
	}
	return pref
}
