package render

import (
	"bytes"
	"fmt"
	"image/color"
	"io"
	"math"
	"strconv"
	"strings"

	svg "github.com/ajstarks/svgo"

	"piechart/pkg/pie"
)

type svgPath struct {
	d     string
	fill  string
	alpha float64
}

// SVG records chart drawing commands and serialises them as an SVG document.
// It also implements pie.Tooltip by emitting the text as the document title.
type SVG struct {
	width, height int
	paths         []svgPath
	cur           []string
	title         string
}

// NewSVG returns an empty SVG surface of the given size.
func NewSVG(width, height int) *SVG {
	return &SVG{width: width, height: height}
}

func (s *SVG) Resize(width, height int) {
	s.width, s.height = width, height
}

func (s *SVG) Clear() {
	s.paths = s.paths[:0]
	s.cur = s.cur[:0]
}

func (s *SVG) BeginPath() {
	s.cur = s.cur[:0]
}

func (s *SVG) Arc(x, y, radius, startAngle, endAngle float64, counterClockwise bool) {
	delta := sweep(startAngle, endAngle, counterClockwise)
	sx, sy := pointOn(x, y, radius, startAngle)
	if len(s.cur) == 0 {
		s.cur = append(s.cur, "M", f64s(sx), f64s(sy))
	} else {
		s.cur = append(s.cur, "L", f64s(sx), f64s(sy))
	}
	if delta == 0 || radius == 0 {
		return
	}
	// An SVG arc whose endpoints coincide draws nothing, so full turns are
	// split into two halves.
	if math.Abs(delta) >= fullTurn {
		mid := startAngle + delta/2
		s.arcTo(x, y, radius, mid, delta/2)
		s.arcTo(x, y, radius, startAngle+delta, delta/2)
		return
	}
	s.arcTo(x, y, radius, startAngle+delta, delta)
}

func (s *SVG) arcTo(x, y, radius, end, delta float64) {
	ex, ey := pointOn(x, y, radius, end)
	large := "0"
	if math.Abs(delta) > math.Pi {
		large = "1"
	}
	dir := "1"
	if delta < 0 {
		dir = "0"
	}
	s.cur = append(s.cur, "A", f64s(radius), f64s(radius), "0", large, dir, f64s(ex), f64s(ey))
}

func (s *SVG) Fill(c color.Color, alpha float64) {
	if len(s.cur) == 0 {
		return
	}
	d := strings.Join(append(s.cur, "Z"), " ")
	s.paths = append(s.paths, svgPath{d: d, fill: pie.HexString(c), alpha: alpha})
	s.cur = s.cur[:0]
}

// SetTooltip sets the document title; empty removes it.
func (s *SVG) SetTooltip(text string) {
	s.title = text
}

// Size returns the current document size.
func (s *SVG) Size() (int, int) { return s.width, s.height }

// Encode writes the document to w.
func (s *SVG) Encode(w io.Writer) error {
	var buf bytes.Buffer
	canvas := svg.New(&buf)
	canvas.Start(s.width, s.height)
	if s.title != "" {
		canvas.Title(s.title)
	}
	for _, p := range s.paths {
		canvas.Path(p.d,
			fmt.Sprintf(`fill=%q`, p.fill),
			fmt.Sprintf(`fill-opacity=%q`, f64s(p.alpha)),
		)
	}
	canvas.End()
	if _, err := w.Write(buf.Bytes()); err != nil {
		return fmt.Errorf("write svg: %w", err)
	}
	return nil
}

// String returns the encoded document.
func (s *SVG) String() string {
	var buf bytes.Buffer
	_ = s.Encode(&buf)
	return buf.String()
}

// f64s keeps three decimals, well below a device pixel.
func f64s(v float64) string {
	v = math.Round(v*1000) / 1000
	if v == 0 {
		v = 0 // drop the sign of -0
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}
