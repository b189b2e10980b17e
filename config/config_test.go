package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gogpu/chart"
	"github.com/gogpu/chart/axis"
	"github.com/gogpu/chart/decoration"
)

const sampleYAML = `
width: 640
height: 400
density: 2
rtl: true
background: "#202020"
model:
  max_x: 9
  max_y: 50
  step: 1
  entry_count: 10
  segment_width: 40
axes:
  - position: bottom
    tick_type: major
    guideline_every: 2
  - position: end
    label_count: 5
    max_label_width: 48
    color: "#ff0000"
    guidelines: false
thresholds:
  - start: 20
    end: 30
    label: target
    label_vertical: bottom
  - value: 45
    label_horizontal: end
    color: "#00ff00"
`

const sampleTOML = `
width = 640
height = 400
density = 2.0
rtl = true
background = "#202020"

[model]
max_x = 9.0
max_y = 50.0
step = 1.0
entry_count = 10
segment_width = 40.0

[[axes]]
position = "bottom"
tick_type = "major"
guideline_every = 2

[[axes]]
position = "end"
label_count = 5
max_label_width = 48.0
color = "#ff0000"
guidelines = false

[[thresholds]]
start = 20.0
end = 30.0
label = "target"
label_vertical = "bottom"

[[thresholds]]
value = 45.0
label_horizontal = "end"
color = "#00ff00"
`

func TestDecode(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		format Format
	}{
		{"yaml", sampleYAML, FormatYAML},
		{"toml", sampleTOML, FormatTOML},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := Decode(strings.NewReader(tt.input), tt.format)
			if err != nil {
				t.Fatalf("Decode() error = %v", err)
			}
			if cfg.Width != 640 || cfg.Height != 400 || cfg.Density != 2 || !cfg.RTL {
				t.Errorf("Decode() header = %+v", cfg)
			}
			if cfg.FontScale != 1 || cfg.FractionDigits != 2 {
				t.Errorf("defaults lost: font_scale %v fraction_digits %d", cfg.FontScale, cfg.FractionDigits)
			}
			if got := cfg.BackgroundColor(); got != chart.RGB(32.0/255, 32.0/255, 32.0/255) {
				t.Errorf("BackgroundColor() = %v", got)
			}

			model, err := cfg.Model.Build()
			if err != nil {
				t.Fatalf("Model.Build() error = %v", err)
			}
			if model.EntryCount != 10 || model.MaxY != 50 || model.XSegmentWidth != 40 {
				t.Errorf("Model.Build() = %+v", model)
			}

			if len(cfg.Axes) != 2 {
				t.Fatalf("len(Axes) = %d, want 2", len(cfg.Axes))
			}
			bottom, err := cfg.Axes[0].Build()
			if err != nil {
				t.Fatalf("Axes[0].Build() error = %v", err)
			}
			if bottom.Position() != axis.Bottom || bottom.TickType() != axis.Major {
				t.Errorf("Axes[0] = %v/%v, want Bottom/Major", bottom.Position(), bottom.TickType())
			}
			end, err := cfg.Axes[1].Build()
			if err != nil {
				t.Fatalf("Axes[1].Build() error = %v", err)
			}
			if end.Position() != axis.End || end.LabelCount() != 5 {
				t.Errorf("Axes[1] = %v/%d, want End/5", end.Position(), end.LabelCount())
			}
			if end.Guideline() != nil {
				t.Error("Axes[1] guidelines should be disabled")
			}
			if end.Line().Color != chart.RGB(1, 0, 0) {
				t.Errorf("Axes[1] line color = %v, want red", end.Line().Color)
			}

			if len(cfg.Thresholds) != 2 {
				t.Fatalf("len(Thresholds) = %d, want 2", len(cfg.Thresholds))
			}
			band, err := cfg.Thresholds[0].Build()
			if err != nil {
				t.Fatalf("Thresholds[0].Build() error = %v", err)
			}
			if band.Start() != 20 || band.End() != 30 || band.Label() != "target" ||
				band.LabelVerticalPosition() != decoration.LabelBottom {
				t.Errorf("Thresholds[0] = [%v, %v] %q %v", band.Start(), band.End(), band.Label(), band.LabelVerticalPosition())
			}
			single, err := cfg.Thresholds[1].Build()
			if err != nil {
				t.Fatalf("Thresholds[1].Build() error = %v", err)
			}
			if single.Start() != 45 || single.End() != 45 || single.LabelHorizontalPosition() != decoration.LabelEnd {
				t.Errorf("Thresholds[1] = [%v, %v] %v", single.Start(), single.End(), single.LabelHorizontalPosition())
			}
			if single.LineComponent().Color != chart.RGB(0, 1, 0) {
				t.Errorf("Thresholds[1] color = %v, want green", single.LineComponent().Color)
			}
		})
	}
}

func TestDecodeDefaults(t *testing.T) {
	cfg, err := Decode(strings.NewReader(""), FormatYAML)
	if err != nil {
		t.Fatalf("Decode(empty) error = %v", err)
	}
	want := Default()
	if cfg.Width != want.Width || cfg.Height != want.Height || cfg.Model != want.Model {
		t.Errorf("Decode(empty) = %+v, want defaults", cfg)
	}
	if len(cfg.Axes) != len(DefaultAxes()) {
		t.Errorf("len(Axes) = %d, want %d", len(cfg.Axes), len(DefaultAxes()))
	}

	cfg, err = Decode(strings.NewReader("axes: []\n"), FormatYAML)
	if err != nil {
		t.Fatalf("Decode(no axes) error = %v", err)
	}
	if len(cfg.Axes) != 0 {
		t.Errorf("explicit empty axes replaced by %d defaults", len(cfg.Axes))
	}
}

func TestDecodeErrors(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		format  Format
		wantErr error
	}{
		{"unknown yaml field", "colour: red\n", FormatYAML, nil},
		{"unknown toml field", "colour = \"red\"\n", FormatTOML, nil},
		{"bad position", "axes:\n  - position: left\n", FormatYAML, axis.ErrInvalidPosition},
		{"bad tick type", "axes = [{position = \"top\", tick_type = \"tiny\"}]\n", FormatTOML, nil},
		{"bad label position", "thresholds:\n  - label_vertical: middle\n", FormatYAML, decoration.ErrInvalidPosition},
		{"inverted threshold", "thresholds:\n  - start: 5\n    end: 1\n", FormatYAML, ErrInvalidConfig},
		{"zero step", "model:\n  step: 0\n", FormatYAML, ErrInvalidConfig},
		{"bad size", "width: 0\n", FormatYAML, ErrInvalidConfig},
		{"bad color", "background: nope\n", FormatYAML, ErrInvalidConfig},
		{"bad language", "language: \"???\"\n", FormatYAML, ErrInvalidConfig},
		{"vertical axis without segments", "axes:\n  - position: start\n    label_count: -1\n", FormatYAML, ErrInvalidConfig},
		{"unknown format", "", Format(7), ErrUnknownFormat},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode(strings.NewReader(tt.input), tt.format)
			if err == nil {
				t.Fatal("Decode() error = nil, want error")
			}
			if tt.wantErr != nil && !errors.Is(err, tt.wantErr) {
				t.Errorf("Decode() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidateReportsAll(t *testing.T) {
	cfg := Default()
	cfg.Width = 0
	cfg.Density = -1
	cfg.Model.Step = 0
	err := cfg.Validate()
	if !errors.Is(err, ErrInvalidConfig) {
		t.Fatalf("Validate() error = %v, want ErrInvalidConfig", err)
	}
	for _, want := range []string{"size", "density", "model"} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("Validate() error %q does not mention %q", err, want)
		}
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	for name, content := range map[string]string{
		"chart.yaml": sampleYAML,
		"chart.yml":  sampleYAML,
		"chart.toml": sampleTOML,
	} {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(dir, name)
			if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
				t.Fatal(err)
			}
			cfg, err := Load(path)
			if err != nil {
				t.Fatalf("Load(%s) error = %v", name, err)
			}
			if cfg.Width != 640 {
				t.Errorf("Load(%s).Width = %d, want 640", name, cfg.Width)
			}
		})
	}

	if _, err := Load(filepath.Join(dir, "chart.json")); !errors.Is(err, ErrUnknownFormat) {
		t.Errorf("Load(json) error = %v, want ErrUnknownFormat", err)
	}
	if _, err := Load(filepath.Join(dir, "missing.yaml")); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("Load(missing) error = %v, want os.ErrNotExist", err)
	}
}

func TestMeasureContext(t *testing.T) {
	cfg := Default()
	cfg.Density = 3
	cfg.RTL = true
	cfg.FractionDigits = 1
	m := cfg.MeasureContext()
	if m.Density != 3 || !m.RTL {
		t.Errorf("MeasureContext() = %+v", m)
	}
	if got := m.ValueFormatter().FormatValue(2.25, chart.AxisModel{}); got != "2.2" && got != "2.3" {
		t.Errorf("FormatValue(2.25) = %q, want one fraction digit", got)
	}
}

func TestFormatFromPath(t *testing.T) {
	tests := []struct {
		path string
		want Format
		err  bool
	}{
		{"a.yaml", FormatYAML, false},
		{"a.YML", FormatYAML, false},
		{"dir/a.toml", FormatTOML, false},
		{"a.json", 0, true},
		{"noext", 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			got, err := FormatFromPath(tt.path)
			if (err != nil) != tt.err || (!tt.err && got != tt.want) {
				t.Errorf("FormatFromPath(%q) = %v, %v", tt.path, got, err)
			}
		})
	}
}
