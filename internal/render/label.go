package render

import (
	"image"
	"image/color"
	"image/draw"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// DrawLabel writes text centred on dst using the built-in 7x13 face.
func DrawLabel(dst draw.Image, text string, c color.Color) {
	if text == "" {
		return
	}
	face := basicfont.Face7x13
	d := &font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(c),
		Face: face,
	}
	b := dst.Bounds()
	m := face.Metrics()
	width := d.MeasureString(text)
	cx := fixed.I(b.Min.X + b.Dx()/2)
	cy := fixed.I(b.Min.Y + b.Dy()/2)
	// Baseline sits half the cap height below the centre.
	d.Dot = fixed.Point26_6{
		X: cx - width/2,
		Y: cy + (m.Ascent-m.Descent)/2,
	}
	d.DrawString(text)
}
