package chart

import "math"

// ChartModel is the numeric domain of the plotted data.
// It is a value type: renderers receive a copy per draw pass and never
// observe concurrent updates within that pass.
type ChartModel struct {
	MinX, MaxX float64
	MinY, MaxY float64
}

// XRange returns MaxX - MinX.
func (m ChartModel) XRange() float64 { return m.MaxX - m.MinX }

// YRange returns MaxY - MinY.
func (m ChartModel) YRange() float64 { return m.MaxY - m.MinY }

// Validate reports a *ModelError when the ranges are inverted or not finite.
func (m ChartModel) Validate() error {
	for _, f := range []struct {
		name string
		v    float64
	}{{"MinX", m.MinX}, {"MaxX", m.MaxX}, {"MinY", m.MinY}, {"MaxY", m.MaxY}} {
		if math.IsNaN(f.v) || math.IsInf(f.v, 0) {
			return &ModelError{Field: f.name, Reason: "is not finite"}
		}
	}
	if m.MaxX < m.MinX {
		return &ModelError{Field: "MaxX", Reason: "is less than MinX"}
	}
	if m.MaxY < m.MinY {
		return &ModelError{Field: "MaxY", Reason: "is less than MinY"}
	}
	return nil
}

// AxisModel is the read-only view of chart data an axis lays itself out
// against.
type AxisModel struct {
	ChartModel

	// Step is the stride between labeled X values.
	Step float64

	// EntryCount is the number of data segments along X.
	EntryCount int

	// XSegmentWidth is the pixel width of one data segment. It bounds label
	// width during size measurement.
	XSegmentWidth float64
}

// NewAxisModel returns a validated AxisModel.
func NewAxisModel(chart ChartModel, step float64, entryCount int, xSegmentWidth float64) (AxisModel, error) {
	m := AxisModel{
		ChartModel:    chart,
		Step:          step,
		EntryCount:    entryCount,
		XSegmentWidth: xSegmentWidth,
	}
	if err := m.Validate(); err != nil {
		return AxisModel{}, err
	}
	return m, nil
}

// Validate reports a *ModelError when any invariant is broken:
// ranges must be ordered, Step positive and EntryCount non-negative.
func (m AxisModel) Validate() error {
	if err := m.ChartModel.Validate(); err != nil {
		return err
	}
	if math.IsNaN(m.Step) || m.Step <= 0 {
		return &ModelError{Field: "Step", Reason: "must be positive"}
	}
	if m.EntryCount < 0 {
		return &ModelError{Field: "EntryCount", Reason: "must not be negative"}
	}
	if math.IsNaN(m.XSegmentWidth) || m.XSegmentWidth < 0 {
		return &ModelError{Field: "XSegmentWidth", Reason: "must not be negative"}
	}
	return nil
}

// Window returns the model of count entries starting at entry first.
// The window is clamped to the model's entries.
func (m AxisModel) Window(first, count int) AxisModel {
	first = max(0, min(first, m.EntryCount))
	count = max(0, min(count, m.EntryCount-first))

	w := m
	w.MinX = m.MinX + float64(first)*m.Step
	w.MaxX = w.MinX + float64(count)*m.Step
	w.EntryCount = count
	return w
}
