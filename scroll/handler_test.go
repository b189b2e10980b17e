package scroll

import (
	"math"
	"testing"
)

func TestSetScrollClamps(t *testing.T) {
	tests := []struct {
		name string
		v    float64
		want float64
	}{
		{"inside", 40, 40},
		{"zero", 0, 0},
		{"max", 100, 100},
		{"below", -15, 0},
		{"above", 250, 100},
		{"negative infinity", math.Inf(-1), 0},
		{"positive infinity", math.Inf(1), 100},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewHandler(WithMaxScrollDistance(100))
			h.SetScroll(tt.v)
			if got := h.Current(); got != tt.want {
				t.Errorf("SetScroll(%v): Current() = %v, want %v", tt.v, got, tt.want)
			}
			h.SetScroll(h.Current())
			if got := h.Current(); got != tt.want {
				t.Errorf("re-setting clamped value changed Current() to %v", got)
			}
		})
	}
}

func TestSetScrollIgnoresNaN(t *testing.T) {
	calls := 0
	h := NewHandler(WithMaxScrollDistance(10), WithListener(func(float64, float64) { calls++ }))
	h.SetScroll(5)
	h.SetScroll(math.NaN())
	if h.Current() != 5 {
		t.Errorf("Current() = %v after NaN, want 5", h.Current())
	}
	if calls != 1 {
		t.Errorf("listener called %d times, want 1", calls)
	}
	if h.CanScrollBy(math.NaN()) || h.HandleScrollDelta(math.NaN()) != 0 {
		t.Error("NaN delta should not scroll")
	}
}

func TestListener(t *testing.T) {
	var gotRequested, gotCurrent float64
	h := NewHandler(
		WithMaxScrollDistance(50),
		WithListener(func(requested, current float64) {
			gotRequested, gotCurrent = requested, current
		}),
	)
	h.SetScroll(80)
	if gotRequested != 80 || gotCurrent != 50 {
		t.Errorf("listener got (%v, %v), want (80, 50)", gotRequested, gotCurrent)
	}
}

func TestHandleScrollDelta(t *testing.T) {
	tests := []struct {
		name     string
		start    float64
		delta    float64
		consumed float64
		current  float64
	}{
		{"scroll back", 50, 20, 20, 30},
		{"scroll forward", 50, -20, -20, 70},
		{"hit start", 10, 30, 10, 0},
		{"hit end", 90, -30, -10, 100},
		{"at start", 0, 5, 0, 0},
		{"at end", 100, -5, 0, 100},
		{"zero", 40, 0, 0, 40},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewHandler(WithMaxScrollDistance(100))
			h.SetScroll(tt.start)
			if got := h.HandleScrollDelta(tt.delta); got != tt.consumed {
				t.Errorf("HandleScrollDelta(%v) = %v, want %v", tt.delta, got, tt.consumed)
			}
			if got := h.Current(); got != tt.current {
				t.Errorf("Current() = %v, want %v", got, tt.current)
			}
		})
	}
}

func TestDeltaConservation(t *testing.T) {
	deltas := []float64{-250, -100, -33.3, -1, -0.1, 0, 1e-20, 0.1, 1, 12.5, 99, 1000, math.Inf(1), math.Inf(-1)}
	starts := []float64{0, 0.3, 12.5, 50, 99.9, 100}
	for _, start := range starts {
		for _, d := range deltas {
			h := NewHandler(WithMaxScrollDistance(100))
			h.SetScroll(start)
			can := h.CanScrollBy(d)
			if h.Current() != start {
				t.Fatalf("CanScrollBy(%v) changed state", d)
			}
			c := h.HandleScrollDelta(d)
			if !can && c != 0 {
				t.Errorf("start %v: CanScrollBy(%v) = false but consumed %v", start, d, c)
			}
			if math.Abs(c) > math.Abs(d) {
				t.Errorf("start %v: |HandleScrollDelta(%v)| = %v exceeds |delta|", start, d, c)
			}
			if can && c == 0 {
				t.Errorf("start %v: CanScrollBy(%v) = true but nothing consumed", start, d)
			}
		}
	}
}

func TestHandleScroll(t *testing.T) {
	h := NewHandler(WithMaxScrollDistance(100))
	h.SetScroll(20)
	if got := h.HandleScroll(60); got != -40 {
		t.Errorf("HandleScroll(60) = %v, want -40", got)
	}
	if h.Current() != 60 {
		t.Errorf("Current() = %v, want 60", h.Current())
	}
	if got := h.HandleScroll(500); got != -40 {
		t.Errorf("HandleScroll(500) = %v, want -40", got)
	}
	if h.Current() != 100 {
		t.Errorf("Current() = %v, want 100", h.Current())
	}
}

func TestSetMaxScrollDistance(t *testing.T) {
	var calls []float64
	h := NewHandler(WithMaxScrollDistance(100), WithListener(func(_, current float64) {
		calls = append(calls, current)
	}))
	h.SetScroll(80)
	h.SetMaxScrollDistance(200)
	if h.Current() != 80 || len(calls) != 1 {
		t.Errorf("growing max moved scroll: current %v, %d notifications", h.Current(), len(calls))
	}
	h.SetMaxScrollDistance(30)
	if h.Current() != 30 {
		t.Errorf("Current() = %v after shrinking max, want 30", h.Current())
	}
	if len(calls) != 2 || calls[1] != 30 {
		t.Errorf("notifications = %v, want [80 30]", calls)
	}
	h.SetMaxScrollDistance(-5)
	if h.MaxScrollDistance() != 0 || h.Current() != 0 {
		t.Errorf("negative max: max %v current %v, want 0 0", h.MaxScrollDistance(), h.Current())
	}
}

func TestMaxScrollFor(t *testing.T) {
	tests := []struct {
		name     string
		entries  int
		segment  float64
		viewport float64
		want     float64
	}{
		{"overflow", 20, 10, 150, 50},
		{"fits", 10, 10, 150, 0},
		{"empty", 0, 10, 150, 0},
		{"zero segment", 10, 0, 150, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := MaxScrollFor(tt.entries, tt.segment, tt.viewport); got != tt.want {
				t.Errorf("MaxScrollFor() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestVisibleWindow(t *testing.T) {
	tests := []struct {
		name      string
		scroll    float64
		entries   int
		wantFirst int
		wantCount int
	}{
		{"start", 0, 20, 0, 5},
		{"aligned", 50, 20, 5, 5},
		{"partial", 55, 20, 5, 6},
		{"end", 150, 20, 15, 5},
		{"few entries", 0, 3, 0, 3},
		{"no entries", 0, 0, 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewHandler(WithMaxScrollDistance(MaxScrollFor(tt.entries, 10, 50)))
			h.SetScroll(tt.scroll)
			first, count := h.VisibleWindow(tt.entries, 10, 50)
			if first != tt.wantFirst || count != tt.wantCount {
				t.Errorf("VisibleWindow() = (%d, %d), want (%d, %d)", first, count, tt.wantFirst, tt.wantCount)
			}
		})
	}
}
