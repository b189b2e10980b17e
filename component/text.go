package component

import (
	"github.com/gogpu/chart"
	"github.com/gogpu/chart/text"
)

// DefaultTextSizeSp is the label text size used by DefaultLabel.
const DefaultTextSizeSp = 12

// TextComponent draws and measures label text.
type TextComponent struct {
	Color chart.RGBA

	// TextSizeSp is the text size in sp.
	TextSizeSp float64

	// Source is the font; nil uses text.DefaultSource.
	Source *text.FontSource

	// LineCount limits wrapped lines; the last kept line is ellipsized.
	// Zero or negative means unlimited.
	LineCount int

	// Padding is applied on both sides in each direction, in dp.
	Padding chart.Dimensions

	// Background is drawn behind the text block when set.
	Background *ShapeComponent
}

// TextLayout is measured text ready to draw.
type TextLayout struct {
	Lines      []string
	LineWidths []float64
	Width      float64
	Height     float64
	lineHeight float64
	ascent     float64
	face       *text.Face
	padX, padY float64
}

// Face returns the font face at the context's scaled text size.
func (t TextComponent) Face(m chart.MeasureContext) *text.Face {
	source := t.Source
	if source == nil {
		source = text.DefaultSource()
	}
	return source.Face(m.SPToPixels(t.TextSizeSp), text.WithDirection(m.TextDirection()))
}

// Layout wraps s to maxWidth pixels (padding included) and measures it.
// A non-positive maxWidth leaves the text unwrapped.
func (t TextComponent) Layout(m chart.MeasureContext, s string, maxWidth float64) TextLayout {
	face := t.Face(m)
	padX := m.Pixels(t.Padding.Horizontal)
	padY := m.Pixels(t.Padding.Vertical)

	available := 0.0
	if maxWidth > 0 {
		// Keep at least a pixel so wrapping never degenerates into "unlimited".
		available = max(maxWidth-2*padX, 1)
	}
	lines := text.Wrap(s, face, available, t.LineCount)

	metrics := face.Metrics()
	l := TextLayout{
		Lines:      lines,
		LineWidths: make([]float64, len(lines)),
		lineHeight: metrics.LineHeight(),
		ascent:     metrics.Ascent,
		face:       face,
		padX:       padX,
		padY:       padY,
	}
	widest := 0.0
	for i, line := range lines {
		l.LineWidths[i] = face.Advance(line)
		widest = max(widest, l.LineWidths[i])
	}
	l.Width = widest + 2*padX
	l.Height = float64(len(lines))*l.lineHeight + 2*padY
	return l
}

// Width returns the unwrapped width of s including padding.
func (t TextComponent) Width(m chart.MeasureContext, s string) float64 {
	return t.Layout(m, s, 0).Width
}

// Height returns the height of s wrapped to maxWidth, including padding.
func (t TextComponent) Height(m chart.MeasureContext, s string, maxWidth float64) float64 {
	return t.Layout(m, s, maxWidth).Height
}

// DrawText draws s anchored at (x, y). hpos and vpos say on which side of
// the anchor the text block lies; maxWidth bounds line width and
// non-positive values disable wrapping.
func (t TextComponent) DrawText(
	ctx *chart.DrawContext,
	s string,
	x, y float64,
	hpos HorizontalPosition,
	vpos VerticalPosition,
	maxWidth float64,
) TextLayout {
	l := t.Layout(ctx.MeasureContext, s, maxWidth)
	left := hpos.TextLeft(x, l.Width, ctx.RTL)
	top := vpos.TextTop(y, l.Height)

	if t.Background != nil {
		t.Background.Draw(ctx, left, top, left+l.Width, top+l.Height)
	}

	canvas := ctx.Canvas()
	inner := l.Width - 2*l.padX
	for i, line := range l.Lines {
		lineLeft := left + l.padX
		switch {
		case hpos == HorizontalCenter:
			lineLeft += (inner - l.LineWidths[i]) / 2
		case alignsRight(hpos, line, ctx.TextDirection()):
			lineLeft += inner - l.LineWidths[i]
		}
		baseline := top + l.padY + float64(i)*l.lineHeight + l.ascent
		canvas.DrawText(line, lineLeft, baseline, l.face, t.Color)
	}
	return l
}

// Bounds returns the rectangle DrawText would cover for this layout.
func (l TextLayout) Bounds(x, y float64, hpos HorizontalPosition, vpos VerticalPosition, rtl bool) chart.Rect {
	left := hpos.TextLeft(x, l.Width, rtl)
	top := vpos.TextTop(y, l.Height)
	return chart.RectXYWH(left, top, l.Width, l.Height)
}

// alignsRight reports whether a line sits against the right edge of its
// block. Lines follow their own script direction, so a Hebrew label in a
// left-to-right chart still starts on the right.
func alignsRight(hpos HorizontalPosition, line string, layout text.Direction) bool {
	rtl := text.DetectDirection(line, layout) == text.DirectionRTL
	return (hpos == HorizontalEnd) != rtl
}
