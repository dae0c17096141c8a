package render

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
	"math"

	"github.com/wcharczuk/go-chart/v2/drawing"
)

// ErrUnsupportedImage is returned when no graphic context can be built for
// the target image.
var ErrUnsupportedImage = errors.New("render: unsupported image type")

// Raster draws onto an RGBA image through a go-chart graphic context.
// Resize replaces the backing image. It implements pie.Tooltip by stamping
// the text in the middle of encoded images.
type Raster struct {
	img        *image.RGBA
	gc         *drawing.RasterGraphicContext
	background color.Color
	label      string
	labelColor color.Color
}

// NewRaster wraps dst. Only *image.RGBA targets are supported.
func NewRaster(dst draw.Image) (*Raster, error) {
	img, ok := dst.(*image.RGBA)
	if !ok {
		return nil, fmt.Errorf("%w: %T", ErrUnsupportedImage, dst)
	}
	gc, err := drawing.NewRasterGraphicContext(img)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnsupportedImage, err)
	}
	return &Raster{
		img:        img,
		gc:         gc,
		background: color.Transparent,
		labelColor: color.Black,
	}, nil
}

// SetBackground sets the colour Clear paints with.
func (r *Raster) SetBackground(c color.Color) { r.background = c }

// SetLabelColor sets the colour of the tooltip stamp.
func (r *Raster) SetLabelColor(c color.Color) { r.labelColor = c }

func (r *Raster) Resize(width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	b := r.img.Bounds()
	if b.Dx() == width && b.Dy() == height {
		return
	}
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	gc, err := drawing.NewRasterGraphicContext(img)
	if err != nil {
		return
	}
	r.img, r.gc = img, gc
}

func (r *Raster) Clear() {
	draw.Draw(r.img, r.img.Bounds(), image.NewUniform(r.background), image.Point{}, draw.Src)
	r.gc.BeginPath()
}

func (r *Raster) BeginPath() {
	r.gc.BeginPath()
}

func (r *Raster) Arc(x, y, radius, startAngle, endAngle float64, counterClockwise bool) {
	r.gc.ArcTo(x, y, radius, radius, startAngle, sweep(startAngle, endAngle, counterClockwise))
}

func (r *Raster) Fill(c color.Color, alpha float64) {
	cr, cg, cb, _ := c.RGBA()
	r.gc.SetFillColor(drawing.Color{
		R: uint8(cr >> 8),
		G: uint8(cg >> 8),
		B: uint8(cb >> 8),
		A: uint8(math.Round(clamp01(alpha) * 0xff)),
	})
	r.gc.Close()
	r.gc.Fill()
}

// SetTooltip sets the label stamped by Encode; empty removes it.
func (r *Raster) SetTooltip(text string) { r.label = text }

// Image returns the drawing without the label.
func (r *Raster) Image() *image.RGBA { return r.img }

// Encode writes the drawing, with its label, as PNG.
func (r *Raster) Encode(w io.Writer) error {
	out := image.Image(r.img)
	if r.label != "" {
		labelled := image.NewRGBA(r.img.Bounds())
		draw.Draw(labelled, labelled.Bounds(), r.img, image.Point{}, draw.Src)
		DrawLabel(labelled, r.label, r.labelColor)
		out = labelled
	}
	if err := png.Encode(w, out); err != nil {
		return fmt.Errorf("encode png: %w", err)
	}
	return nil
}

func clamp01(v float64) float64 {
	return math.Max(0, math.Min(1, v))
}
