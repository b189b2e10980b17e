package text

import (
	"image"
	"image/color"
	"image/draw"

	"golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

// Draw renders s to dst with its baseline origin at (x, y).
func Draw(dst draw.Image, s string, face *Face, x, y float64, col color.Color) {
	if s == "" || face == nil || face.size == 0 {
		return
	}

	otFace, err := opentype.NewFace(face.source.font, &opentype.FaceOptions{
		Size:    face.size,
		DPI:     72,
		Hinting: face.config.hinting,
	})
	if err != nil {
		return
	}
	defer func() {
		_ = otFace.Close()
	}()

	d := &font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(col),
		Face: otFace,
		Dot:  fixed.Point26_6{X: floatToFixed(x), Y: floatToFixed(y)},
	}
	d.DrawString(s)
}
