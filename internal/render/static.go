package render

import (
	"image"
	"image/color"
	"io"

	"piechart/pkg/pie"
)

// Still describes a one-off render of a chart.
type Still struct {
	Items      []pie.Item
	Size       int
	Focus      string // focused id, empty for none
	Background color.Color
	LabelColor color.Color // tooltip stamp on PNGs, black when nil
	Options    []pie.Option
}

func (s Still) size() float64 {
	if s.Size <= 0 {
		return pie.DefaultSize
	}
	return float64(s.Size)
}

// PNG draws s on a raster and writes it as PNG, with the tooltip of the
// focused segment stamped in the middle.
func PNG(w io.Writer, s Still) error {
	r, err := NewRaster(image.NewRGBA(image.Rect(0, 0, 1, 1)))
	if err != nil {
		return err
	}
	if s.Background != nil {
		r.SetBackground(s.Background)
	}
	if s.LabelColor != nil {
		r.SetLabelColor(s.LabelColor)
	}
	if err := drawStill(r, r, s); err != nil {
		return err
	}
	return r.Encode(w)
}

// SVGDocument draws s as an SVG document.
func SVGDocument(w io.Writer, s Still) error {
	doc := NewSVG(0, 0)
	if err := drawStill(doc, doc, s); err != nil {
		return err
	}
	return doc.Encode(w)
}

func drawStill(surface pie.Surface, tooltip pie.Tooltip, s Still) error {
	opts := append([]pie.Option{pie.WithTooltip(tooltip)}, s.Options...)
	c, err := pie.New(s.Items, surface, opts...)
	if err != nil {
		return err
	}
	defer c.Close()
	c.Resize(s.size(), s.size())
	if s.Focus != "" {
		c.SetFocusedItemByID(s.Focus)
	}
	return nil
}
