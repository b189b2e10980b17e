package chart

import (
	"testing"

	"github.com/gogpu/chart/text"
)

func TestMeasureContextDefaults(t *testing.T) {
	var m MeasureContext
	if m.DensityOrDefault() != 1 || m.FontScaleOrDefault() != 1 {
		t.Errorf("zero MeasureContext density/scale = %v/%v, want 1/1", m.DensityOrDefault(), m.FontScaleOrDefault())
	}
	if !m.IsLTR() || m.TextDirection() != text.DirectionLTR {
		t.Error("zero MeasureContext should be left-to-right")
	}
	if m.ValueFormatter() == nil {
		t.Error("ValueFormatter() returned nil")
	}
}

func TestMeasureContextConversions(t *testing.T) {
	tests := []struct {
		name      string
		m         MeasureContext
		dp, sp    float64
		wantPx    float64
		wantSPPix float64
	}{
		{"unit", MeasureContext{}, 4, 12, 4, 12},
		{"density", MeasureContext{Density: 2.5}, 4, 12, 10, 30},
		{"font scale", MeasureContext{Density: 2, FontScale: 1.5}, 1, 10, 2, 30},
		{"negative density", MeasureContext{Density: -1}, 3, 3, 3, 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.m.Pixels(tt.dp); got != tt.wantPx {
				t.Errorf("Pixels(%v) = %v, want %v", tt.dp, got, tt.wantPx)
			}
			if got := tt.m.SPToPixels(tt.sp); got != tt.wantSPPix {
				t.Errorf("SPToPixels(%v) = %v, want %v", tt.sp, got, tt.wantSPPix)
			}
		})
	}
}

func TestMeasureContextRTL(t *testing.T) {
	m := MeasureContext{RTL: true}
	if m.IsLTR() || m.TextDirection() != text.DirectionRTL {
		t.Error("RTL MeasureContext should report right-to-left")
	}
}
