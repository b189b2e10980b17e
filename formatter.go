package chart

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// ValueFormatter turns axis values into label text.
type ValueFormatter interface {
	FormatValue(value float64, model AxisModel) string
}

// ValueFormatterFunc adapts a function to ValueFormatter.
type ValueFormatterFunc func(value float64, model AxisModel) string

// FormatValue calls f(value, model).
func (f ValueFormatterFunc) FormatValue(value float64, model AxisModel) string {
	return f(value, model)
}

// DecimalFormatter formats values like the "#.##" decimal pattern: at most
// a fixed number of fraction digits, no trailing zeros and no grouping
// separators. Digits and the decimal mark follow the formatter's language.
type DecimalFormatter struct {
	printer        *message.Printer
	maxFraction    int
	groupSeparator bool
}

// FormatterOption configures a DecimalFormatter.
type FormatterOption func(*formatterOptions)

type formatterOptions struct {
	lang        language.Tag
	maxFraction int
	grouping    bool
}

func defaultFormatterOptions() formatterOptions {
	return formatterOptions{
		lang:        language.English,
		maxFraction: 2,
	}
}

// WithLanguage sets the locale used for digits and separators.
func WithLanguage(tag language.Tag) FormatterOption {
	return func(o *formatterOptions) {
		o.lang = tag
	}
}

// WithMaxFractionDigits sets the maximum number of fraction digits.
// Negative values are treated as zero.
func WithMaxFractionDigits(n int) FormatterOption {
	return func(o *formatterOptions) {
		o.maxFraction = max(n, 0)
	}
}

// WithGrouping enables locale grouping separators (1,234).
func WithGrouping(enabled bool) FormatterOption {
	return func(o *formatterOptions) {
		o.grouping = enabled
	}
}

// NewDecimalFormatter returns a formatter for the "#.##" pattern in English
// unless options say otherwise.
func NewDecimalFormatter(opts ...FormatterOption) *DecimalFormatter {
	o := defaultFormatterOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &DecimalFormatter{
		printer:        message.NewPrinter(o.lang),
		maxFraction:    o.maxFraction,
		groupSeparator: o.grouping,
	}
}

// Format formats v.
func (f *DecimalFormatter) Format(v float64) string {
	opts := []number.Option{number.MaxFractionDigits(f.maxFraction)}
	if !f.groupSeparator {
		opts = append(opts, number.NoSeparator())
	}
	return f.printer.Sprint(number.Decimal(v, opts...))
}

// FormatValue implements ValueFormatter.
func (f *DecimalFormatter) FormatValue(value float64, _ AxisModel) string {
	return f.Format(value)
}

// FormatRange formats an inclusive range as "start–end".
func (f *DecimalFormatter) FormatRange(start, end float64) string {
	return f.Format(start) + "–" + f.Format(end)
}
