package scroll

import "math"

// MaxScrollFor returns how far content of entryCount segments, each
// segmentWidth pixels wide, can scroll inside a viewport. Content that
// fits returns zero.
func MaxScrollFor(entryCount int, segmentWidth, viewportWidth float64) float64 {
	if entryCount <= 0 || !(segmentWidth > 0) {
		return 0
	}
	return max(float64(entryCount)*segmentWidth-viewportWidth, 0)
}

// VisibleWindow returns the first visible segment index and the number of
// segments that intersect the viewport at the current offset.
func (h *Handler) VisibleWindow(entryCount int, segmentWidth, viewportWidth float64) (first, count int) {
	if entryCount <= 0 || !(segmentWidth > 0) {
		return 0, max(entryCount, 0)
	}
	first = min(int(h.current/segmentWidth), entryCount-1)
	last := int(math.Ceil((h.current + viewportWidth) / segmentWidth))
	last = min(max(last, first+1), entryCount)
	return first, last - first
}
