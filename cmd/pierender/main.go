// Command pierender draws a donut chart to a PNG or SVG file, optionally
// with one segment focused.
//
// Usage:
//
//	pierender -items "e74c3c:12,2ecc71:19,3498db:5" -size 400 -focus 2ecc71 -out chart.png
package main

import (
	"errors"
	"flag"
	"fmt"
	"image/color"
	"os"
	"path/filepath"
	"strings"

	"piechart/internal/chart"
	"piechart/internal/render"
	"piechart/pkg/pie"
)

func main() {
	itemsFlag := flag.String("items", "", "Items as id:value pairs separated by commas (default: demo palette)")
	out := flag.String("out", "chart.png", "Output file; the extension picks the format unless -format is set")
	format := flag.String("format", "", "Output format: png or svg")
	size := flag.Int("size", pie.DefaultSize, "Image size in pixels (square)")
	focus := flag.String("focus", "", "Id of the segment to focus")
	dim := flag.Float64("dim", pie.DefaultDimAlpha, "Opacity of the focused segment")
	inner := flag.Float64("inner", pie.DefaultInnerRatio, "Inner radius as a fraction of the outer radius")
	white := flag.Bool("white", false, "Paint a white background (png only)")
	label := flag.String("label", "", "Hex colour of the focused segment's percentage (png only, default black)")
	flag.Parse()

	if err := run(*itemsFlag, *out, *format, *size, *focus, *dim, *inner, *white, *label); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(itemsText, out, format string, size int, focus string, dim, inner float64, white bool, label string) error {
	items := chart.DefaultItems
	if strings.TrimSpace(itemsText) != "" {
		parsed, err := chart.ParseItems(itemsText)
		if err != nil {
			return fmt.Errorf("parse items: %w", err)
		}
		items = parsed
	}
	if size < 1 {
		return errors.New("size must be positive")
	}
	if format == "" {
		format = strings.TrimPrefix(strings.ToLower(filepath.Ext(out)), ".")
	}

	still := render.Still{
		Items:   items,
		Size:    size,
		Focus:   focus,
		Options: []pie.Option{pie.WithDimAlpha(dim), pie.WithInnerRatio(inner)},
	}
	if white {
		still.Background = color.White
	}
	if label != "" {
		still.LabelColor = pie.HexColor(label)
	}

	f, err := os.Create(out)
	if err != nil {
		return fmt.Errorf("create %s: %w", out, err)
	}
	switch format {
	case "png":
		err = render.PNG(f, still)
	case "svg":
		err = render.SVGDocument(f, still)
	default:
		err = fmt.Errorf("unknown format %q", format)
	}
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		_ = os.Remove(out)
		return err
	}

	fmt.Printf("Wrote %s (%d items, %dpx", out, len(items), size)
	if focus != "" {
		fmt.Printf(", focus %s", focus)
	}
	fmt.Println(")")
	return nil
}
