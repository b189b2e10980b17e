// Package axis lays out and draws chart axes.
//
// An Axis is tagged with a Position (Top, Bottom, Start or End) instead of
// being specialized by type: horizontal axes walk the X domain of an
// AxisModel one entry at a time, vertical axes split the Y domain into a
// fixed number of segments. Both place ticks in one of two modes:
//
//   - Minor: ticks on segment boundaries (entries + 1 ticks)
//   - Major: ticks on segment centers (one tick per entry)
//
// A draw pass has two layers. DrawBehindChart draws guidelines and must run
// before chart content; DrawAboveChart draws ticks, labels and the axis
// line. Size and DrawExtends report the space an axis needs so the host can
// carve dataset bounds before drawing.
package axis
