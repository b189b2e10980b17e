// Package chart is the axis and decoration engine of a charting library.
//
// # Overview
//
// chart turns a data model (value ranges, entry counts, step sizes) into
// pixel geometry for axis ticks, guidelines, labels and threshold overlays,
// and issues draw calls onto a Canvas supplied by the host.
//
// The root package holds the shared vocabulary:
//   - Geometry: Rect, Point, Path, Dimensions
//   - Colors: RGBA, Hex
//   - Canvas: the draw surface contract
//   - MeasureContext and DrawContext: density, font scale, direction,
//     formatter, per-frame extras and canvas substitution
//   - ChartModel and AxisModel: the numeric domain
//   - ValueFormatter and DecimalFormatter
//
// Renderers live in sub-packages:
//   - component: shapes, lines, ticks and text labels
//   - axis: position-aware axis layout and drawing
//   - decoration: threshold lines drawn above chart content
//   - scroll: clamped horizontal scroll state
//   - raster, recording: Canvas implementations
//   - config: YAML/TOML style files
//
// # Quick Start
//
//	canvas := raster.New(640, 360)
//	ctx := chart.NewDrawContext(canvas, chart.WithDensity(2))
//
//	bottom, _ := axis.New(axis.Bottom)
//	bottom.SetBounds(axisBounds, dataBounds)
//	bottom.Draw(ctx, model)
//
// # Coordinate System
//
// Origin (0,0) at top-left, X increases right, Y increases down.
// Density-independent sizes (dp, sp) are converted with MeasureContext.
package chart
