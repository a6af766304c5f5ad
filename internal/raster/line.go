// Package raster converts continuous 2D primitives into discrete pixel
// writes on anything exposing a pixel-set operation. It implements an
// incremental line scan-conversion with octant normalization, symmetry-
// replicated arc sampling, and a self-intersection gate for polygons.
package raster

import (
	"math"

	"github.com/vovakirdan/tui-sketch/internal/canvas"
	"github.com/vovakirdan/tui-sketch/internal/geom"
)

// Line draws the straight segment between a and b as a single-pixel-wide
// run of writes into dst, with no gaps.
//
// The algorithm is a floating-point incremental scan-conversion: steep
// segments swap the roles of x and y so iteration always proceeds along
// the axis of greatest extent, endpoints are reordered so the major axis
// increases, and the minor coordinate accumulates the slope once per step.
// Pixel coordinates round to nearest with ties away from zero; the exact
// pixel set is part of the contract and covered by tests.
func Line(dst canvas.PixelSetter, a, b geom.Point, c canvas.Color) {
	x0, y0 := a.X, a.Y
	x1, y1 := b.X, b.Y

	dx := x1 - x0
	dy := y1 - y0

	// A zero-length segment is not an error: it draws one pixel.
	if dx == 0 && dy == 0 {
		dst.SetPixel(round(x0), round(y0), c)
		return
	}

	steep := math.Abs(dy) > math.Abs(dx)
	if steep {
		x0, y0 = y0, x0
		x1, y1 = y1, x1
		dx, dy = dy, dx
	}

	if x0 > x1 {
		x0, x1 = x1, x0
		y0, y1 = y1, y0
		dx = x1 - x0
		dy = y1 - y0
	}

	m := 0.0
	if dx != 0 {
		m = dy / dx
	}

	y := y0
	for x := round(x0); x <= round(x1); x++ {
		if steep {
			dst.SetPixel(round(y), x, c)
		} else {
			dst.SetPixel(x, round(y), c)
		}
		y += m
	}
}

// round rounds to the nearest integer, ties away from zero.
func round(v float64) int {
	return int(math.Round(v))
}
