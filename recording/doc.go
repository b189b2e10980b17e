// Package recording provides a chart.Canvas that records drawing
// operations as commands instead of rasterizing them.
//
// A Recorder serves three purposes:
//
//   - off-screen measurement passes: substitute it with
//     chart.DrawContext.WithOtherCanvas and inspect what would be drawn
//   - caching: record a layer once and Playback it onto the real canvas
//     on later frames
//   - testing: assert tick positions and label text from the commands
//
// # Example
//
//	rec := recording.NewRecorder(800, 600)
//	_ = ctx.WithOtherCanvas(rec, func(ctx *chart.DrawContext) error {
//	    bottom.DrawAboveChart(ctx, model)
//	    return nil
//	})
//	for _, t := range rec.Texts() {
//	    fmt.Println(t.Text, t.X)
//	}
//	rec.Playback(screen)
package recording
