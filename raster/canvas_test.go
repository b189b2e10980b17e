package raster

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/gogpu/chart"
	"github.com/gogpu/chart/text"
)

var red = chart.RGB(1, 0, 0)

func TestCanvasSize(t *testing.T) {
	c := New(40, 30)
	if c.Width() != 40 || c.Height() != 30 {
		t.Errorf("size = %dx%d, want 40x30", c.Width(), c.Height())
	}
	if b := chart.Bounds(c); b != chart.RectOf(0, 0, 40, 30) {
		t.Errorf("chart.Bounds() = %v", b)
	}
	if z := New(-1, 5); z.Width() != 0 {
		t.Errorf("New(-1, 5).Width() = %d, want 0", z.Width())
	}
}

func TestFillRect(t *testing.T) {
	c := New(10, 10)
	c.FillRect(chart.RectOf(2, 2, 8, 8), red)

	tests := []struct {
		x, y int
		want color.RGBA
	}{
		{5, 5, color.RGBA{R: 255, A: 255}},
		{2, 2, color.RGBA{R: 255, A: 255}},
		{0, 0, color.RGBA{}},
		{9, 9, color.RGBA{}},
	}
	for _, tt := range tests {
		if got := c.Image().RGBAAt(tt.x, tt.y); got != tt.want {
			t.Errorf("pixel (%d,%d) = %v, want %v", tt.x, tt.y, got, tt.want)
		}
	}
}

func TestFillRectBlends(t *testing.T) {
	c := New(4, 4)
	c.Clear(chart.White)
	c.FillRect(chart.RectOf(0, 0, 4, 4), chart.Black.WithAlpha(0.5))
	got := c.Image().RGBAAt(1, 1)
	if got.A != 255 || got.R < 120 || got.R > 135 {
		t.Errorf("half black over white = %v, want mid gray", got)
	}
}

func TestFillPath(t *testing.T) {
	c := New(20, 20)
	p := chart.NewPath()
	p.MoveTo(0, 0)
	p.LineTo(20, 0)
	p.LineTo(0, 20)
	c.FillPath(p, red)

	if got := c.Image().RGBAAt(3, 3); got.R != 255 {
		t.Errorf("inside triangle pixel = %v, want red", got)
	}
	if got := c.Image().RGBAAt(17, 17); got.A != 0 {
		t.Errorf("outside triangle pixel = %v, want transparent", got)
	}

	c.FillPath(nil, red)
	c.FillPath(chart.NewPath(), red)
}

func TestStrokeLine(t *testing.T) {
	c := New(10, 10)
	c.StrokeLine(0, 5, 10, 5, 2, red)
	if got := c.Image().RGBAAt(5, 5); got.R != 255 {
		t.Errorf("pixel on line = %v, want red", got)
	}
	if got := c.Image().RGBAAt(5, 1); got.A != 0 {
		t.Errorf("pixel off line = %v, want transparent", got)
	}

	before := bytes.Clone(c.Image().Pix)
	c.StrokeLine(1, 1, 1, 1, 2, red)
	c.StrokeLine(0, 0, 9, 9, 0, red)
	if !bytes.Equal(before, c.Image().Pix) {
		t.Error("degenerate lines changed pixels")
	}
}

func TestDrawText(t *testing.T) {
	c := New(40, 40)
	face := text.DefaultSource().Face(24)
	c.DrawText("H", 4, 30, face, chart.Black)

	painted := 0
	pix := c.Image().Pix
	for i := 3; i < len(pix); i += 4 {
		if pix[i] != 0 {
			painted++
		}
	}
	if painted == 0 {
		t.Error("DrawText painted no pixels")
	}
}

func TestNewForImageOffset(t *testing.T) {
	img := image.NewRGBA(image.Rect(10, 10, 20, 20))
	c := NewForImage(img)
	c.FillRect(chart.RectOf(0, 0, 5, 5), red)
	if got := img.RGBAAt(12, 12); got.R != 255 {
		t.Errorf("pixel (12,12) = %v, want red", got)
	}
	if got := img.RGBAAt(17, 17); got.A != 0 {
		t.Errorf("pixel (17,17) = %v, want transparent", got)
	}
}

func TestPNG(t *testing.T) {
	c := New(8, 6)
	c.Clear(chart.White)

	var buf bytes.Buffer
	if err := c.EncodePNG(&buf); err != nil {
		t.Fatalf("EncodePNG() error = %v", err)
	}
	img, err := png.Decode(&buf)
	if err != nil {
		t.Fatalf("png.Decode() error = %v", err)
	}
	if b := img.Bounds(); b.Dx() != 8 || b.Dy() != 6 {
		t.Errorf("decoded size = %v", b)
	}

	path := filepath.Join(t.TempDir(), "out.png")
	if err := c.SavePNG(path); err != nil {
		t.Fatalf("SavePNG() error = %v", err)
	}
	if info, err := os.Stat(path); err != nil || info.Size() == 0 {
		t.Errorf("SavePNG() wrote %v, %v", info, err)
	}
	if err := c.SavePNG(filepath.Join(t.TempDir(), "missing", "out.png")); err == nil {
		t.Error("SavePNG() into a missing directory should fail")
	}
}
