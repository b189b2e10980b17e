// Package decoration draws overlays on top of finished chart content.
//
// The only decoration so far is ThresholdLine: a horizontal band marking a
// value range on the Y axis, labeled on the side of the band that keeps
// the label inside the chart bounds.
package decoration
