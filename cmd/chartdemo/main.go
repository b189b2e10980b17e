// Command chartdemo renders chart axes and threshold lines to a PNG file.
//
// Usage:
//
//	chartdemo -config chart.yaml -output chart.png -scroll 120
//
// Without -config a built-in twelve-entry chart is drawn.
package main

import (
	"flag"
	"log"
	"log/slog"
	"os"

	"github.com/gogpu/chart"
	"github.com/gogpu/chart/config"
	"github.com/gogpu/chart/raster"
)

func main() {
	var (
		configPath = flag.String("config", "", "chart configuration file (.yaml, .yml or .toml)")
		output     = flag.String("output", "chart.png", "output file")
		scrollTo   = flag.Float64("scroll", 0, "horizontal scroll offset in pixels")
		verbose    = flag.Bool("v", false, "log layout diagnostics to stderr")
	)
	flag.Parse()

	if *verbose {
		chart.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	cfg, err := loadConfig(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	canvas := raster.New(cfg.Width, cfg.Height)
	canvas.Clear(cfg.BackgroundColor())

	view, err := render(canvas, cfg, *scrollTo)
	if err != nil {
		log.Fatalf("Failed to render: %v", err)
	}

	if err := canvas.SavePNG(*output); err != nil {
		log.Fatalf("Failed to save: %v", err)
	}

	log.Printf("Chart saved to %s (%dx%d, entries %d..%d of %d)\n",
		*output, cfg.Width, cfg.Height, view.first, view.first+view.count, view.total)
}

// loadConfig reads path, or returns the built-in chart when path is empty.
func loadConfig(path string) (*config.Config, error) {
	if path != "" {
		return config.Load(path)
	}
	cfg := config.Default()
	cfg.Axes = config.DefaultAxes()
	cfg.Thresholds = []config.ThresholdConfig{
		{Start: 40, End: 60, Label: "target"},
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
