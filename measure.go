package chart

import "github.com/gogpu/chart/text"

// MeasureContext carries what layout code needs to turn density-independent
// sizes into pixels: screen density, font scale and text direction, plus the
// default value formatter.
//
// The zero value is usable: density and font scale default to 1, text is
// left-to-right and values format with a "#.##" DecimalFormatter.
type MeasureContext struct {
	// Density is the number of pixels per density-independent unit (dp).
	Density float64

	// FontScale multiplies text sizes given in scale-independent units (sp).
	FontScale float64

	// RTL reports right-to-left layout direction.
	RTL bool

	// Formatter formats axis values when an axis has no formatter of its own.
	Formatter ValueFormatter
}

// DensityOrDefault returns Density, or 1 when unset.
func (m MeasureContext) DensityOrDefault() float64 {
	if m.Density <= 0 {
		return 1
	}
	return m.Density
}

// FontScaleOrDefault returns FontScale, or 1 when unset.
func (m MeasureContext) FontScaleOrDefault() float64 {
	if m.FontScale <= 0 {
		return 1
	}
	return m.FontScale
}

// Pixels converts dp to pixels.
func (m MeasureContext) Pixels(dp float64) float64 {
	return dp * m.DensityOrDefault()
}

// SPToPixels converts a text size in sp to pixels.
func (m MeasureContext) SPToPixels(sp float64) float64 {
	return sp * m.FontScaleOrDefault() * m.DensityOrDefault()
}

// IsLTR reports left-to-right layout direction.
func (m MeasureContext) IsLTR() bool {
	return !m.RTL
}

// TextDirection returns the layout direction as a text.Direction.
func (m MeasureContext) TextDirection() text.Direction {
	if m.RTL {
		return text.DirectionRTL
	}
	return text.DirectionLTR
}

// ValueFormatter returns Formatter, or a new "#.##" DecimalFormatter.
func (m MeasureContext) ValueFormatter() ValueFormatter {
	if m.Formatter != nil {
		return m.Formatter
	}
	return NewDecimalFormatter()
}
