package scroll

import (
	"math"

	"github.com/gogpu/chart"
)

// Listener is notified after every scroll assignment. requested is the
// value the caller asked for; current is the clamped value now stored.
type Listener func(requested, current float64)

// Handler clamps and stores a scroll offset.
//
// A Handler is not safe for concurrent use. It is owned by the chart root
// and read by renderers between updates.
type Handler struct {
	current     float64
	maxDistance float64
	listener    Listener
}

// Option configures a Handler.
type Option func(*Handler)

// WithMaxScrollDistance sets the upper scroll bound. Negative values
// are treated as zero.
func WithMaxScrollDistance(d float64) Option {
	return func(h *Handler) {
		h.maxDistance = sanitizeDistance(d)
	}
}

// WithListener sets the function called on every scroll assignment.
func WithListener(fn Listener) Option {
	return func(h *Handler) {
		h.listener = fn
	}
}

// NewHandler returns a Handler scrolled to zero.
func NewHandler(opts ...Option) *Handler {
	h := &Handler{}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// Current returns the stored scroll offset.
func (h *Handler) Current() float64 {
	return h.current
}

// MaxScrollDistance returns the upper scroll bound.
func (h *Handler) MaxScrollDistance() float64 {
	return h.maxDistance
}

// SetMaxScrollDistance changes the upper bound and re-clamps the current
// offset. The listener fires only when the offset changes.
func (h *Handler) SetMaxScrollDistance(d float64) {
	h.maxDistance = sanitizeDistance(d)
	if clamped := h.clamp(h.current); clamped != h.current {
		h.SetScroll(clamped)
	}
}

// SetScroll stores v clamped to [0, MaxScrollDistance] and notifies the
// listener with both the requested and the stored value. NaN is ignored.
func (h *Handler) SetScroll(v float64) {
	if math.IsNaN(v) {
		chart.Logger().Warn("scroll: ignoring NaN scroll value")
		return
	}
	h.current = h.clamp(v)
	if h.listener != nil {
		h.listener(v, h.current)
	}
}

// HandleScrollDelta scrolls by -delta and returns the consumed part of
// delta: the previous offset minus the new one. The result has the sign of
// delta and never exceeds it in magnitude.
func (h *Handler) HandleScrollDelta(delta float64) float64 {
	if math.IsNaN(delta) {
		return 0
	}
	previous := h.current
	target := previous - delta
	h.SetScroll(target)
	if h.current == target && target != previous {
		// Unclamped: the whole delta was consumed.
		return delta
	}
	return previous - h.current
}

// CanScrollBy reports whether HandleScrollDelta(delta) would move the
// offset. It does not change state.
func (h *Handler) CanScrollBy(delta float64) bool {
	if math.IsNaN(delta) {
		return false
	}
	return h.current-h.clamp(h.current-delta) != 0
}

// HandleScroll scrolls to target and returns the consumed delta.
func (h *Handler) HandleScroll(target float64) float64 {
	return h.HandleScrollDelta(h.current - target)
}

func (h *Handler) clamp(v float64) float64 {
	return max(min(v, h.maxDistance), 0)
}

func sanitizeDistance(d float64) float64 {
	if math.IsNaN(d) || d < 0 {
		return 0
	}
	return d
}
