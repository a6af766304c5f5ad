package canvas

// PixelSetter is the transient render-target capability: anything that can
// accept a pixel write. The rasterization algorithms are written against
// this interface so they can draw into a Canvas or straight into a display
// frame buffer that supports no read-back.
type PixelSetter interface {
	SetPixel(x, y int, c Color)
}

// Image is the persistent image capability: a pixel sink that also supports
// reading pixels back and reporting its bounds. The region-fill algorithms
// require it, since they inspect prior pixel state.
type Image interface {
	PixelSetter
	PixelAt(x, y int) Color
	Width() int
	Height() int
}

// Canvas is a fixed-size 2D grid of colored pixels with bounds-checked
// access. Pixels are stored in row-major order: index = y*W + x.
// A Canvas never shares storage with another Canvas.
type Canvas struct {
	width  int
	height int
	pixels []Color
}

// Canvas satisfies both pixel-sink capabilities.
var _ Image = (*Canvas)(nil)

// New creates a canvas of the given dimensions with every pixel set to bg.
func New(width, height int, bg Color) *Canvas {
	cv := &Canvas{
		width:  width,
		height: height,
		pixels: make([]Color, width*height),
	}
	cv.Fill(bg)
	return cv
}

// Width returns the canvas width in pixels.
func (cv *Canvas) Width() int {
	return cv.width
}

// Height returns the canvas height in pixels.
func (cv *Canvas) Height() int {
	return cv.height
}

// InBounds returns true if (x, y) lies inside the canvas.
func (cv *Canvas) InBounds(x, y int) bool {
	return x >= 0 && x < cv.width && y >= 0 && y < cv.height
}

// SetPixel writes a pixel. Out-of-bounds coordinates are silently ignored;
// partial geometry at canvas edges is expected during interactive drawing.
func (cv *Canvas) SetPixel(x, y int, c Color) {
	if !cv.InBounds(x, y) {
		return
	}
	cv.pixels[y*cv.width+x] = c
}

// PixelAt returns the pixel at (x, y).
// Returns the zero Color for out-of-bounds coordinates.
func (cv *Canvas) PixelAt(x, y int) Color {
	if !cv.InBounds(x, y) {
		return Color{}
	}
	return cv.pixels[y*cv.width+x]
}

// Fill sets every pixel to c.
func (cv *Canvas) Fill(c Color) {
	for i := range cv.pixels {
		cv.pixels[i] = c
	}
}

// Clone returns a deep copy of the canvas.
func (cv *Canvas) Clone() *Canvas {
	pixels := make([]Color, len(cv.pixels))
	copy(pixels, cv.pixels)
	return &Canvas{
		width:  cv.width,
		height: cv.height,
		pixels: pixels,
	}
}

// Equal returns true if two canvases have the same dimensions and contents.
func (cv *Canvas) Equal(other *Canvas) bool {
	if cv.width != other.width || cv.height != other.height {
		return false
	}
	for i, px := range cv.pixels {
		if px != other.pixels[i] {
			return false
		}
	}
	return true
}

// Blit copies src onto the canvas with its top-left corner at (x, y).
// Pixels with zero alpha are skipped so sprite frames can carry holes.
// Parts falling outside the canvas are clipped.
func (cv *Canvas) Blit(src *Canvas, x, y int) {
	for sy := 0; sy < src.height; sy++ {
		for sx := 0; sx < src.width; sx++ {
			px := src.pixels[sy*src.width+sx]
			if px.A == 0 {
				continue
			}
			cv.SetPixel(x+sx, y+sy, px)
		}
	}
}

// Count returns the number of pixels equal to c.
func (cv *Canvas) Count(c Color) int {
	n := 0
	for _, px := range cv.pixels {
		if px == c {
			n++
		}
	}
	return n
}
