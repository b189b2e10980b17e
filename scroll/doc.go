// Package scroll tracks the horizontal scroll offset of a chart.
//
// A Handler is a clamped one-dimensional accumulator: the stored value
// always lies in [0, MaxScrollDistance]. Gesture code feeds it deltas or
// targets and gets back how much of the request was consumed, which lets
// callers pass the remainder on to an enclosing scroll container.
package scroll
