package component

import "github.com/gogpu/chart"

// Default sizes in dp.
const (
	DefaultAxisThicknessDp      = 1
	DefaultTickThicknessDp      = 1
	DefaultTickLengthDp         = 4
	DefaultGuidelineThicknessDp = 1
	DefaultLabelPaddingDp       = 4
)

// DefaultLine returns a new axis line style.
func DefaultLine() *LineComponent {
	l := NewLine(chart.DefaultAxisColor, DefaultAxisThicknessDp)
	return &l
}

// DefaultTick returns a new tick style.
func DefaultTick() *TickComponent {
	t := NewTick(chart.DefaultAxisColor, DefaultTickThicknessDp)
	t.LengthDp = DefaultTickLengthDp
	return &t
}

// DefaultGuideline returns a new guideline style, a faded axis color.
func DefaultGuideline() *LineComponent {
	l := NewLine(chart.DefaultAxisColor.WithAlpha(0.33), DefaultGuidelineThicknessDp)
	return &l
}

// DefaultLabel returns a new single-line label style.
func DefaultLabel() *TextComponent {
	return &TextComponent{
		Color:      chart.DefaultLabelColor,
		TextSizeSp: DefaultTextSizeSp,
		LineCount:  1,
		Padding:    chart.Dimensions{Horizontal: DefaultLabelPaddingDp, Vertical: DefaultLabelPaddingDp / 2},
	}
}
