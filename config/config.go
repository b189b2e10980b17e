package config

import (
	"errors"
	"fmt"

	"golang.org/x/text/language"

	"github.com/gogpu/chart"
	"github.com/gogpu/chart/axis"
	"github.com/gogpu/chart/component"
	"github.com/gogpu/chart/decoration"
)

// ErrInvalidConfig is wrapped by every validation error.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config describes one chart image.
type Config struct {
	Width     int     `yaml:"width" toml:"width"`
	Height    int     `yaml:"height" toml:"height"`
	Density   float64 `yaml:"density" toml:"density"`
	FontScale float64 `yaml:"font_scale" toml:"font_scale"`
	RTL       bool    `yaml:"rtl" toml:"rtl"`

	// Background is a hex color; empty means white.
	Background string `yaml:"background" toml:"background"`

	// Language is a BCP 47 tag used for number formatting.
	Language string `yaml:"language" toml:"language"`

	// FractionDigits is the maximum number of fraction digits in labels.
	FractionDigits int `yaml:"fraction_digits" toml:"fraction_digits"`

	Model      ModelConfig       `yaml:"model" toml:"model"`
	Axes       []AxisConfig      `yaml:"axes" toml:"axes"`
	Thresholds []ThresholdConfig `yaml:"thresholds" toml:"thresholds"`
}

// ModelConfig describes the data domain.
type ModelConfig struct {
	MinX         float64 `yaml:"min_x" toml:"min_x"`
	MaxX         float64 `yaml:"max_x" toml:"max_x"`
	MinY         float64 `yaml:"min_y" toml:"min_y"`
	MaxY         float64 `yaml:"max_y" toml:"max_y"`
	Step         float64 `yaml:"step" toml:"step"`
	EntryCount   int     `yaml:"entry_count" toml:"entry_count"`
	SegmentWidth float64 `yaml:"segment_width" toml:"segment_width"`
}

// AxisConfig describes one axis. Colors are hex strings; empty values keep
// the defaults.
type AxisConfig struct {
	Position      axis.Position `yaml:"position" toml:"position"`
	TickType      axis.TickType `yaml:"tick_type" toml:"tick_type"`
	LabelCount    int           `yaml:"label_count" toml:"label_count"`
	MaxLabelWidth float64       `yaml:"max_label_width" toml:"max_label_width"`

	// Guidelines disables guidelines when set to false.
	Guidelines *bool `yaml:"guidelines" toml:"guidelines"`

	// GuidelineEvery keeps every n-th guideline when greater than one.
	GuidelineEvery int `yaml:"guideline_every" toml:"guideline_every"`

	Color      string  `yaml:"color" toml:"color"`
	LabelColor string  `yaml:"label_color" toml:"label_color"`
	TextSize   float64 `yaml:"text_size" toml:"text_size"`
}

// ThresholdConfig describes one threshold line. Set Value for a single
// value or Start and End for a range.
type ThresholdConfig struct {
	Value        *float64                           `yaml:"value" toml:"value"`
	Start        float64                            `yaml:"start" toml:"start"`
	End          float64                            `yaml:"end" toml:"end"`
	Label        string                             `yaml:"label" toml:"label"`
	Color        string                             `yaml:"color" toml:"color"`
	MinThickness float64                            `yaml:"min_thickness" toml:"min_thickness"`
	Horizontal   decoration.LabelHorizontalPosition `yaml:"label_horizontal" toml:"label_horizontal"`
	Vertical     decoration.LabelVerticalPosition   `yaml:"label_vertical" toml:"label_vertical"`
}

// Default returns the configuration used for fields a file leaves out.
// Axes are left nil; Decode fills them from DefaultAxes when a file has
// no axes key.
func Default() *Config {
	return &Config{
		Width:          800,
		Height:         480,
		Density:        1,
		FontScale:      1,
		Language:       "en",
		FractionDigits: 2,
		Model: ModelConfig{
			MaxX:         11,
			MaxY:         100,
			Step:         1,
			EntryCount:   12,
			SegmentWidth: 60,
		},
	}
}

// DefaultAxes returns the axes used when a file lists none: a bottom axis
// with major ticks and a start axis with minor ticks.
func DefaultAxes() []AxisConfig {
	return []AxisConfig{
		{Position: axis.Bottom, TickType: axis.Major},
		{Position: axis.Start, TickType: axis.Minor},
	}
}

// Validate checks every field and reports all problems at once. Each
// problem wraps ErrInvalidConfig.
func (c *Config) Validate() error {
	var errs []error
	add := func(format string, args ...any) {
		errs = append(errs, fmt.Errorf("%w: "+format, append([]any{ErrInvalidConfig}, args...)...))
	}

	if c.Width <= 0 || c.Height <= 0 {
		add("size %dx%d must be positive", c.Width, c.Height)
	}
	if c.Density <= 0 {
		add("density %v must be positive", c.Density)
	}
	if c.FontScale <= 0 {
		add("font_scale %v must be positive", c.FontScale)
	}
	if c.FractionDigits < 0 {
		add("fraction_digits %d must not be negative", c.FractionDigits)
	}
	if _, err := parseColor(c.Background, chart.White); err != nil {
		add("background: %v", err)
	}
	if _, err := c.languageTag(); err != nil {
		add("language %q: %v", c.Language, err)
	}
	if _, err := c.Model.Build(); err != nil {
		add("model: %v", err)
	}
	for i, a := range c.Axes {
		if _, err := a.Build(); err != nil {
			add("axes[%d]: %v", i, err)
		}
	}
	for i, t := range c.Thresholds {
		if _, err := t.Build(); err != nil {
			add("thresholds[%d]: %v", i, err)
		}
	}
	return errors.Join(errs...)
}

// MeasureContext returns the measurement parameters and label formatter.
func (c *Config) MeasureContext() chart.MeasureContext {
	tag, err := c.languageTag()
	if err != nil {
		tag = language.English
	}
	return chart.MeasureContext{
		Density:   c.Density,
		FontScale: c.FontScale,
		RTL:       c.RTL,
		Formatter: chart.NewDecimalFormatter(
			chart.WithLanguage(tag),
			chart.WithMaxFractionDigits(c.FractionDigits),
		),
	}
}

// BackgroundColor returns the parsed background color.
func (c *Config) BackgroundColor() chart.RGBA {
	col, err := parseColor(c.Background, chart.White)
	if err != nil {
		return chart.White
	}
	return col
}

func (c *Config) languageTag() (language.Tag, error) {
	if c.Language == "" {
		return language.English, nil
	}
	return language.Parse(c.Language)
}

// Build returns the validated axis model.
func (m ModelConfig) Build() (chart.AxisModel, error) {
	return chart.NewAxisModel(chart.ChartModel{
		MinX: m.MinX,
		MaxX: m.MaxX,
		MinY: m.MinY,
		MaxY: m.MaxY,
	}, m.Step, m.EntryCount, m.SegmentWidth)
}

// Build returns the configured axis.
func (a AxisConfig) Build() (*axis.Axis, error) {
	opts := []axis.Option{axis.WithTickType(a.TickType)}
	if a.LabelCount != 0 {
		opts = append(opts, axis.WithLabelCount(a.LabelCount))
	}
	if a.MaxLabelWidth > 0 {
		opts = append(opts, axis.WithMaxLabelWidth(a.MaxLabelWidth))
	}

	if a.Color != "" {
		col, err := parseColor(a.Color, chart.DefaultAxisColor)
		if err != nil {
			return nil, err
		}
		line := component.DefaultLine()
		line.Color = col
		tick := component.DefaultTick()
		tick.Color = col
		guideline := component.DefaultGuideline()
		guideline.Color = col.WithAlpha(guideline.Color.A)
		opts = append(opts, axis.WithLine(line), axis.WithTick(tick), axis.WithGuideline(guideline))
	}

	if a.LabelColor != "" || a.TextSize > 0 {
		label := component.DefaultLabel()
		if a.TextSize > 0 {
			label.TextSizeSp = a.TextSize
		}
		col, err := parseColor(a.LabelColor, label.Color)
		if err != nil {
			return nil, err
		}
		label.Color = col
		opts = append(opts, axis.WithLabel(label))
	}

	switch {
	case a.Guidelines != nil && !*a.Guidelines:
		opts = append(opts, axis.WithGuideline(nil))
	case a.GuidelineEvery > 1:
		every := a.GuidelineEvery
		opts = append(opts, axis.WithGuidelineFilter(func(i int) bool { return i%every == 0 }))
	}

	return axis.New(a.Position, opts...)
}

// Build returns the configured threshold line.
func (t ThresholdConfig) Build() (decoration.ThresholdLine, error) {
	var opts []decoration.ThresholdOption
	if t.Label != "" {
		opts = append(opts, decoration.WithLabel(t.Label))
	}
	if t.Color != "" {
		col, err := parseColor(t.Color, chart.DefaultThresholdColor)
		if err != nil {
			return decoration.ThresholdLine{}, err
		}
		opts = append(opts, decoration.WithLineComponent(component.NewShapeComponent(col)))
	}
	if t.MinThickness != 0 {
		opts = append(opts, decoration.WithMinimumThickness(t.MinThickness))
	}
	opts = append(opts,
		decoration.WithLabelHorizontalPosition(t.Horizontal),
		decoration.WithLabelVerticalPosition(t.Vertical))

	if t.Value != nil {
		return decoration.NewThresholdValue(*t.Value, opts...)
	}
	return decoration.NewThresholdLine(t.Start, t.End, opts...)
}

func parseColor(s string, fallback chart.RGBA) (chart.RGBA, error) {
	if s == "" {
		return fallback, nil
	}
	col, ok := chart.Hex(s)
	if !ok {
		return fallback, fmt.Errorf("bad color %q", s)
	}
	return col, nil
}
