// Package fill implements the two breadth-first region fills: boundary
// fill, which stops at a designated boundary color, and flood fill, which
// replaces the background color captured at the seed.
//
// Both floods are iterative with an explicit FIFO queue of pixel
// coordinates, never recursive. That is a correctness property, not a
// style choice: it keeps large regions safe from stack-depth limits.
// They terminate because the canvas is finite and every processed pixel
// transitions to the fill color, which makes it ineligible for
// re-processing. The end state depends only on connectivity and the stop
// predicate, not on traversal order.
package fill

import "github.com/vovakirdan/tui-sketch/internal/canvas"

// neighbors4 are the 4-connected offsets: east, west, south, north.
var neighbors4 = [4]canvas.Coord{{X: 1, Y: 0}, {X: -1, Y: 0}, {X: 0, Y: 1}, {X: 0, Y: -1}}

// Boundary flood-fills outward from seed, painting fillColor over every
// 4-connected pixel until it reaches pixels colored boundaryColor.
//
// Pixels already equal to fillColor also stop the flood, so re-filling a
// region is a cheap no-op. A seed outside the image, on the boundary
// color, or already filled leaves the image untouched. The queue can grow
// up to the image area in the worst case.
func Boundary(img canvas.Image, seed canvas.Coord, fillColor, boundaryColor canvas.Color) {
	if seed.X < 0 || seed.Y < 0 || seed.X >= img.Width() || seed.Y >= img.Height() {
		return
	}
	start := img.PixelAt(seed.X, seed.Y)
	if start == boundaryColor || start == fillColor {
		return
	}

	queue := []canvas.Coord{seed}
	for len(queue) > 0 {
		p := queue[0]
		queue = queue[1:]

		if p.X < 0 || p.Y < 0 || p.X >= img.Width() || p.Y >= img.Height() {
			continue
		}
		c := img.PixelAt(p.X, p.Y)
		if c == boundaryColor || c == fillColor {
			continue
		}

		img.SetPixel(p.X, p.Y, fillColor)

		for _, d := range neighbors4 {
			queue = append(queue, p.Add(d.X, d.Y))
		}
	}
}

// Flood replaces the connected region of the seed pixel's color with
// fillColor. The background color is captured once, at the seed, before
// the flood starts; a filled pixel no longer matches it, which is what
// keeps already-visited pixels from being re-enqueued forever.
//
// When the seed already has the fill color the call is a no-op, as is a
// seed outside the image.
func Flood(img canvas.Image, seed canvas.Coord, fillColor canvas.Color) {
	if seed.X < 0 || seed.Y < 0 || seed.X >= img.Width() || seed.Y >= img.Height() {
		return
	}
	background := img.PixelAt(seed.X, seed.Y)
	if background == fillColor {
		return
	}

	queue := []canvas.Coord{seed}
	for len(queue) > 0 {
		p := queue[0]
		queue = queue[1:]

		if p.X < 0 || p.Y < 0 || p.X >= img.Width() || p.Y >= img.Height() {
			continue
		}
		if img.PixelAt(p.X, p.Y) != background {
			continue
		}

		img.SetPixel(p.X, p.Y, fillColor)

		for _, d := range neighbors4 {
			queue = append(queue, p.Add(d.X, d.Y))
		}
	}
}
