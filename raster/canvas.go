package raster

import (
	"image"
	"image/draw"
	"math"

	"golang.org/x/image/vector"

	"github.com/gogpu/chart"
	"github.com/gogpu/chart/text"
)

// Canvas draws onto an *image.RGBA. The zero value is not usable; create
// one with New or NewForImage.
//
// A Canvas is not safe for concurrent use.
type Canvas struct {
	img *image.RGBA
	z   *vector.Rasterizer
}

// New returns a transparent canvas of the given size in pixels.
// Negative sizes are treated as zero.
func New(width, height int) *Canvas {
	return NewForImage(image.NewRGBA(image.Rect(0, 0, max(width, 0), max(height, 0))))
}

// NewForImage returns a canvas drawing into img. The canvas origin is the
// top-left corner of img.Bounds().
func NewForImage(img *image.RGBA) *Canvas {
	b := img.Bounds()
	z := vector.NewRasterizer(b.Dx(), b.Dy())
	z.DrawOp = draw.Over
	return &Canvas{img: img, z: z}
}

// Width implements chart.Canvas.
func (c *Canvas) Width() int { return c.img.Bounds().Dx() }

// Height implements chart.Canvas.
func (c *Canvas) Height() int { return c.img.Bounds().Dy() }

// Image returns the backing image.
func (c *Canvas) Image() *image.RGBA { return c.img }

// Clear fills the whole canvas with col, replacing existing pixels.
func (c *Canvas) Clear(col chart.RGBA) {
	draw.Draw(c.img, c.img.Bounds(), image.NewUniform(col.Color()), image.Point{}, draw.Src)
}

// FillRect implements chart.Canvas.
func (c *Canvas) FillRect(r chart.Rect, col chart.RGBA) {
	if r.Empty() || col.A <= 0 {
		return
	}
	c.begin()
	c.z.MoveTo(c.pt(r.Left, r.Top))
	c.z.LineTo(c.pt(r.Right, r.Top))
	c.z.LineTo(c.pt(r.Right, r.Bottom))
	c.z.LineTo(c.pt(r.Left, r.Bottom))
	c.z.ClosePath()
	c.flush(col)
}

// FillPath implements chart.Canvas. Subpaths are closed implicitly.
func (c *Canvas) FillPath(p *chart.Path, col chart.RGBA) {
	if p == nil || p.Empty() || col.A <= 0 {
		return
	}
	c.begin()
	open := false
	for _, el := range p.Elements() {
		switch e := el.(type) {
		case chart.MoveTo:
			if open {
				c.z.ClosePath()
			}
			c.z.MoveTo(c.pt(e.Point.X, e.Point.Y))
			open = true
		case chart.LineTo:
			c.z.LineTo(c.pt(e.Point.X, e.Point.Y))
		case chart.CubicTo:
			bx, by := c.pt(e.Control1.X, e.Control1.Y)
			cx, cy := c.pt(e.Control2.X, e.Control2.Y)
			dx, dy := c.pt(e.Point.X, e.Point.Y)
			c.z.CubeTo(bx, by, cx, cy, dx, dy)
		case chart.Close:
			c.z.ClosePath()
			open = false
		}
	}
	if open {
		c.z.ClosePath()
	}
	c.flush(col)
}

// StrokeLine implements chart.Canvas. The line has butt caps.
func (c *Canvas) StrokeLine(x1, y1, x2, y2, width float64, col chart.RGBA) {
	dx, dy := x2-x1, y2-y1
	length := math.Hypot(dx, dy)
	if !(width > 0) || length == 0 || col.A <= 0 {
		return
	}
	// Offset perpendicular to the segment by half the width.
	nx, ny := -dy/length*width/2, dx/length*width/2

	c.begin()
	c.z.MoveTo(c.pt(x1+nx, y1+ny))
	c.z.LineTo(c.pt(x2+nx, y2+ny))
	c.z.LineTo(c.pt(x2-nx, y2-ny))
	c.z.LineTo(c.pt(x1-nx, y1-ny))
	c.z.ClosePath()
	c.flush(col)
}

// DrawText implements chart.Canvas.
func (c *Canvas) DrawText(s string, x, baseline float64, face *text.Face, col chart.RGBA) {
	if s == "" || face == nil || col.A <= 0 {
		return
	}
	origin := c.img.Bounds().Min
	text.Draw(c.img, s, face, x+float64(origin.X), baseline+float64(origin.Y), col.Color())
}

func (c *Canvas) begin() {
	b := c.img.Bounds()
	c.z.Reset(b.Dx(), b.Dy())
	c.z.DrawOp = draw.Over
}

func (c *Canvas) flush(col chart.RGBA) {
	c.z.Draw(c.img, c.img.Bounds(), image.NewUniform(col.Color()), image.Point{})
}

func (c *Canvas) pt(x, y float64) (float32, float32) {
	return float32(x), float32(y)
}
