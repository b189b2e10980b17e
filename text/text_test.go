package text

import (
	"errors"
	"strings"
	"testing"

	"golang.org/x/image/font/gofont/goregular"
)

func testFace(t *testing.T, size float64) *Face {
	t.Helper()
	source, err := NewFontSource(goregular.TTF)
	if err != nil {
		t.Fatalf("NewFontSource() error = %v", err)
	}
	return source.Face(size)
}

func TestNewFontSourceErrors(t *testing.T) {
	if _, err := NewFontSource(nil); !errors.Is(err, ErrEmptyFontData) {
		t.Errorf("NewFontSource(nil) error = %v, want ErrEmptyFontData", err)
	}
	if _, err := NewFontSource([]byte("not a font")); err == nil {
		t.Error("NewFontSource(garbage) error = nil, want parse error")
	}
	if _, err := NewFontSourceFromFile("/nonexistent/font.ttf"); err == nil {
		t.Error("NewFontSourceFromFile(missing) error = nil, want error")
	}
}

func TestDefaultSourceShared(t *testing.T) {
	if DefaultSource() != DefaultSource() {
		t.Error("DefaultSource() returned different sources")
	}
	if name := DefaultSource().Name(); name == "" {
		t.Error("DefaultSource().Name() is empty")
	}
}

func TestFaceMetrics(t *testing.T) {
	face := testFace(t, 16)
	m := face.Metrics()
	if m.Ascent <= 0 || m.Descent <= 0 {
		t.Fatalf("Metrics() = %+v, want positive ascent and descent", m)
	}
	if got := m.LineHeight(); got < m.Ascent+m.Descent {
		t.Errorf("LineHeight() = %v, want >= %v", got, m.Ascent+m.Descent)
	}

	big := testFace(t, 32).Metrics()
	if big.LineHeight() <= m.LineHeight() {
		t.Errorf("32px line height %v not larger than 16px line height %v", big.LineHeight(), m.LineHeight())
	}
}

func TestFaceAdvance(t *testing.T) {
	face := testFace(t, 16)
	if got := face.Advance(""); got != 0 {
		t.Errorf("Advance(\"\") = %v, want 0", got)
	}
	a := face.Advance("a")
	ab := face.Advance("ab")
	if a <= 0 || ab <= a {
		t.Errorf("Advance(a) = %v, Advance(ab) = %v, want 0 < a < ab", a, ab)
	}
	if n := face.nominalAdvance("ab"); n <= 0 {
		t.Errorf("nominalAdvance(ab) = %v, want > 0", n)
	}

	w, h := Measure("abc", face)
	if w <= 0 || h <= 0 {
		t.Errorf("Measure(abc) = (%v, %v), want positive", w, h)
	}
	if w, h := Measure("abc", nil); w != 0 || h != 0 {
		t.Errorf("Measure(abc, nil) = (%v, %v), want (0, 0)", w, h)
	}
}

func TestWrap(t *testing.T) {
	face := testFace(t, 16)
	word := face.Advance("word")

	tests := []struct {
		name      string
		text      string
		maxWidth  float64
		maxLines  int
		wantLines int
	}{
		{"no width keeps hard lines", "a b\nc", 0, 0, 2},
		{"fits on one line", "word word", word*3 + 10, 0, 1},
		{"wraps at spaces", "word word word", word + 1, 0, 3},
		{"line limit", "word word word", word + 1, 2, 2},
		{"empty", "", 100, 1, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Wrap(tt.text, face, tt.maxWidth, tt.maxLines)
			if len(got) != tt.wantLines {
				t.Fatalf("Wrap(%q) = %q, want %d lines", tt.text, got, tt.wantLines)
			}
		})
	}
}

func TestWrapEllipsizesLastLine(t *testing.T) {
	face := testFace(t, 16)
	maxWidth := face.Advance("word") * 1.5
	got := Wrap("word word word", face, maxWidth, 2)
	if len(got) != 2 {
		t.Fatalf("Wrap() = %q, want 2 lines", got)
	}
	if !strings.HasSuffix(got[1], Ellipsis) {
		t.Errorf("last line = %q, want ellipsis suffix", got[1])
	}
	for _, line := range got {
		if w := face.Advance(line); w > maxWidth {
			t.Errorf("line %q width %v exceeds %v", line, w, maxWidth)
		}
	}
}

func TestWrapSplitsLongWord(t *testing.T) {
	face := testFace(t, 16)
	maxWidth := face.Advance("abc")
	got := Wrap("abcdefghi", face, maxWidth, 0)
	if len(got) < 3 {
		t.Fatalf("Wrap() = %q, want at least 3 lines", got)
	}
	if joined := strings.Join(got, ""); joined != "abcdefghi" {
		t.Errorf("joined lines = %q, want %q", joined, "abcdefghi")
	}
}

func TestEllipsize(t *testing.T) {
	face := testFace(t, 16)
	if got := Ellipsize("ok", face, 1000); got != "ok" {
		t.Errorf("Ellipsize(fits) = %q, want %q", got, "ok")
	}
	long := "a rather long label"
	maxWidth := face.Advance("a rather")
	got := Ellipsize(long, face, maxWidth)
	if !strings.HasSuffix(got, Ellipsis) {
		t.Errorf("Ellipsize() = %q, want ellipsis suffix", got)
	}
	if w := face.Advance(got); w > maxWidth {
		t.Errorf("Ellipsize() width %v exceeds %v", w, maxWidth)
	}
}

func TestDetectDirection(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		fallback Direction
		want     Direction
	}{
		{"latin", "hello", DirectionRTL, DirectionLTR},
		{"hebrew", "שלום", DirectionLTR, DirectionRTL},
		{"empty", "", DirectionRTL, DirectionRTL},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DetectDirection(tt.text, tt.fallback); got != tt.want {
				t.Errorf("DetectDirection(%q) = %v, want %v", tt.text, got, tt.want)
			}
		})
	}
}

func TestDirectionString(t *testing.T) {
	if DirectionLTR.String() != "LTR" || DirectionRTL.String() != "RTL" || Direction(9).String() != "Unknown" {
		t.Error("Direction.String() mismatch")
	}
}
