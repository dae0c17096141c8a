// Package render provides drawing surfaces for pie charts: an SVG document
// builder and an RGBA raster.
package render

import "math"

const fullTurn = 2 * math.Pi

// sweep returns the signed angle travelled from start to end, following the
// 2D canvas convention: positive is clockwise on screen, a sweep of at least
// a full turn draws the whole circle.
func sweep(start, end float64, counterClockwise bool) float64 {
	if !counterClockwise {
		d := end - start
		if d >= fullTurn {
			return fullTurn
		}
		d = math.Mod(d, fullTurn)
		if d < 0 {
			d += fullTurn
		}
		return d
	}
	d := start - end
	if d >= fullTurn {
		return -fullTurn
	}
	d = math.Mod(d, fullTurn)
	if d < 0 {
		d += fullTurn
	}
	return -d
}

func pointOn(x, y, r, angle float64) (float64, float64) {
	return x + r*math.Cos(angle), y + r*math.Sin(angle)
}
