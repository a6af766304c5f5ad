package raster

import (
	"errors"

	"github.com/vovakirdan/tui-sketch/internal/canvas"
	"github.com/vovakirdan/tui-sketch/internal/geom"
)

// Polygon drawing failures. Callers are expected to skip rendering the
// rejected polygon rather than treat these as fatal.
var (
	ErrTooFewVertices   = errors.New("raster: polygon needs at least 3 vertices")
	ErrSelfIntersecting = errors.New("raster: polygon edges cross")
)

// Polygon draws the closed outline of pts, refusing to draw anything when
// the outline is degenerate or self-intersecting.
//
// Every pair of edges that are not identical and not cyclically adjacent is
// tested for a proper crossing; any hit rejects the whole polygon before a
// single pixel is written. The test compares strict signs of cross
// products, so collinear overlaps and edges touching exactly at a
// non-adjacent vertex are not flagged. That is a known, deliberate
// limitation of the gate, not a bug.
//
// The O(n²) pair scan is fine at interactive polygon sizes.
func Polygon(dst canvas.PixelSetter, pts geom.Polygon, c canvas.Color) error {
	if len(pts) < 3 {
		return ErrTooFewVertices
	}

	n := len(pts)
	for i := 0; i < n; i++ {
		a1 := pts[i]
		a2 := pts[(i+1)%n]
		for j := i + 1; j < n; j++ {
			// Skip the wrap-adjacent edges sharing an endpoint with edge i.
			if (j+1)%n == i || (i+1)%n == j {
				continue
			}
			if segmentsCross(a1, a2, pts[j], pts[(j+1)%n]) {
				return ErrSelfIntersecting
			}
		}
	}

	for i := 0; i < n; i++ {
		Line(dst, pts[i], pts[(i+1)%n], c)
	}
	return nil
}

// segmentsCross reports whether segments a1-a2 and b1-b2 properly cross:
// the endpoints of each segment lie strictly on opposite sides of the
// other. Zero cross products (collinear cases) never count as a crossing.
func segmentsCross(a1, a2, b1, b2 geom.Point) bool {
	d1 := geom.Cross(a1, a2, b1)
	d2 := geom.Cross(a1, a2, b2)
	d3 := geom.Cross(b1, b2, a1)
	d4 := geom.Cross(b1, b2, a2)

	return ((d1 > 0 && d2 < 0) || (d1 < 0 && d2 > 0)) &&
		((d3 > 0 && d4 < 0) || (d3 < 0 && d4 > 0))
}
