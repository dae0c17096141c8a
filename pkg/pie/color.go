package pie

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/wcharczuk/go-chart/v2/drawing"
)

// ColorFunc maps a segment id to its fill colour.
type ColorFunc func(id string) color.Color

// Fallback is used for ids HexColor cannot parse.
var Fallback = drawing.Color{R: 0xf6, G: 0xf6, B: 0xf6, A: 0xff}

// HexColor reads the id as a hex colour ("ff8800", "#f80").
func HexColor(id string) color.Color {
	hex := strings.TrimPrefix(strings.TrimSpace(id), "#")
	if !isHex(hex) || (len(hex) != 3 && len(hex) != 6) {
		return Fallback
	}
	return drawing.ColorFromHex(hex)
}

// HexString renders c as "#rrggbb".
func HexString(c color.Color) string {
	r, g, b, _ := c.RGBA()
	return fmt.Sprintf("#%02x%02x%02x", uint8(r>>8), uint8(g>>8), uint8(b>>8))
}

func isHex(s string) bool {
	if s == "" {
		return false
	}
	for _, c := range s {
		switch {
		case c >= '0' && c <= '9', c >= 'a' && c <= 'f', c >= 'A' && c <= 'F':
		default:
			return false
		}
	}
	return true
}
