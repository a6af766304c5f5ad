// Package canvas provides the mutable pixel grid and the pixel-sink
// capabilities the drawing algorithms render into. It contains no external
// dependencies (especially no Bubble Tea) to keep the raster core pure and
// testable.
package canvas

import "fmt"

// Color is a 4-channel RGBA pixel value. Colors compare component-wise;
// the alpha channel participates in equality but is only interpreted by
// the sprite blitter (zero alpha is skipped) and ignored by the terminal
// renderer.
type Color struct {
	R, G, B, A uint8
}

// RGB constructs an opaque color.
func RGB(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b, A: 255}
}

// Predefined colors used by the demo scene and tests.
var (
	Transparent = Color{}
	Black       = RGB(0, 0, 0)
	White       = RGB(255, 255, 255)
	Red         = RGB(255, 0, 0)
	Green       = RGB(0, 255, 0)
	Blue        = RGB(0, 0, 255)
	Yellow      = RGB(255, 255, 0)
	Magenta     = RGB(255, 0, 255)
	Cyan        = RGB(0, 255, 255)
	Gray        = RGB(128, 128, 128)
)

// Hex returns the color as a #rrggbb string for terminal styling.
func (c Color) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// String returns a debug representation including alpha.
func (c Color) String() string {
	return fmt.Sprintf("rgba(%d,%d,%d,%d)", c.R, c.G, c.B, c.A)
}

// ParseColor converts a #rrggbb or #rrggbbaa string to a Color.
func ParseColor(s string) (Color, error) {
	var c Color
	switch len(s) {
	case 7:
		if _, err := fmt.Sscanf(s, "#%02x%02x%02x", &c.R, &c.G, &c.B); err != nil {
			return Color{}, fmt.Errorf("canvas: invalid color %q: %w", s, err)
		}
		c.A = 255
	case 9:
		if _, err := fmt.Sscanf(s, "#%02x%02x%02x%02x", &c.R, &c.G, &c.B, &c.A); err != nil {
			return Color{}, fmt.Errorf("canvas: invalid color %q: %w", s, err)
		}
	default:
		return Color{}, fmt.Errorf("canvas: invalid color %q: want #rrggbb or #rrggbbaa", s)
	}
	return c, nil
}
