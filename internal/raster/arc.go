package raster

import (
	"math"

	"github.com/vovakirdan/tui-sketch/internal/canvas"
	"github.com/vovakirdan/tui-sketch/internal/geom"
)

// Circle draws the outline of a circle of radius r centered at center.
//
// The angle is sampled over one octant, [0, π/4], in steps+1 evenly spaced
// increments; each sample is replicated to the remaining seven octants via
// the eight sign/axis-swap combinations. steps therefore counts samples per
// octant, not over the full outline. Duplicate writes at octant boundaries
// are harmless because pixel writes are idempotent.
func Circle(dst canvas.PixelSetter, center geom.Point, r float64, c canvas.Color, steps int) {
	if steps < 1 {
		steps = 1
	}
	x0, y0 := center.X, center.Y

	for i := 0; i <= steps; i++ {
		alpha := (math.Pi / 4) * float64(i) / float64(steps)
		x := r * math.Cos(alpha)
		y := r * math.Sin(alpha)

		dst.SetPixel(round(x0+x), round(y0+y), c)
		dst.SetPixel(round(x0+y), round(y0+x), c)
		dst.SetPixel(round(x0-x), round(y0+y), c)
		dst.SetPixel(round(x0-y), round(y0+x), c)
		dst.SetPixel(round(x0-x), round(y0-y), c)
		dst.SetPixel(round(x0-y), round(y0-x), c)
		dst.SetPixel(round(x0+x), round(y0-y), c)
		dst.SetPixel(round(x0+y), round(y0-x), c)
	}
}

// Ellipse draws the outline of an axis-aligned ellipse with radii rx, ry
// centered at center.
//
// Unlike Circle, the angle is sampled over a full quadrant, [0, π/2], in
// steps+1 increments, and each sample is replicated via the four sign
// combinations only: with two distinct radii the axis-swap symmetry does
// not hold. The circle/ellipse sampling-domain asymmetry is deliberate.
func Ellipse(dst canvas.PixelSetter, center geom.Point, rx, ry float64, c canvas.Color, steps int) {
	if steps < 1 {
		steps = 1
	}
	x0, y0 := center.X, center.Y

	for i := 0; i <= steps; i++ {
		alpha := (math.Pi / 2) * float64(i) / float64(steps)
		x := rx * math.Cos(alpha)
		y := ry * math.Sin(alpha)

		dst.SetPixel(round(x0+x), round(y0+y), c)
		dst.SetPixel(round(x0-x), round(y0+y), c)
		dst.SetPixel(round(x0+x), round(y0-y), c)
		dst.SetPixel(round(x0-x), round(y0-y), c)
	}
}
