package scene

import (
	"math"

	"github.com/vovakirdan/tui-sketch/internal/canvas"
	"github.com/vovakirdan/tui-sketch/internal/geom"
)

// Sprite is an animated bitmap: a list of equally sized frames cycled on a
// fixed time budget, drawn at a float position with an accumulated
// rotation and scale.
type Sprite struct {
	frames       []*canvas.Canvas
	timePerFrame float64
	elapsed      float64
	current      int

	Pos    geom.Point
	Angle  float64 // degrees, about the sprite center
	Sx, Sy float64
}

// NewSprite creates a sprite from the given frames. All frames are assumed
// to share the first frame's dimensions.
func NewSprite(frames []*canvas.Canvas, timePerFrame float64) *Sprite {
	return &Sprite{
		frames:       frames,
		timePerFrame: timePerFrame,
		Sx:           1,
		Sy:           1,
	}
}

// Frame returns the currently displayed frame, or nil without frames.
func (s *Sprite) Frame() *canvas.Canvas {
	if len(s.frames) == 0 {
		return nil
	}
	return s.frames[s.current]
}

// FrameIndex returns the index of the current frame.
func (s *Sprite) FrameIndex() int {
	return s.current
}

// Animate advances the frame cycle by dt seconds.
func (s *Sprite) Animate(dt float64) {
	if len(s.frames) == 0 {
		return
	}
	s.elapsed += dt
	for s.elapsed >= s.timePerFrame && s.timePerFrame > 0 {
		s.elapsed -= s.timePerFrame
		s.current = (s.current + 1) % len(s.frames)
	}
}

// Update implements Updatable by animating.
func (s *Sprite) Update(dt float64) {
	s.Animate(dt)
}

// Translate moves the sprite.
func (s *Sprite) Translate(dx, dy float64) {
	s.Pos = s.Pos.Translated(dx, dy)
}

// Rotate turns the sprite about its own center by degrees.
func (s *Sprite) Rotate(deg float64) {
	s.Angle += deg
}

// Scale multiplies the sprite's scale factors.
func (s *Sprite) Scale(sx, sy float64) {
	s.Sx *= sx
	s.Sy *= sy
}

// Draw blits the current frame at the sprite position, applying scale and
// rotation by inverse-mapped nearest-neighbor sampling: every destination
// pixel inside the rotated bounding box is transformed back into frame
// space and takes that frame pixel's color. Transparent frame pixels
// (zero alpha) are skipped.
func (s *Sprite) Draw(dst canvas.PixelSetter) {
	frame := s.Frame()
	if frame == nil || s.Sx == 0 || s.Sy == 0 {
		return
	}

	fw := float64(frame.Width())
	fh := float64(frame.Height())
	cx := fw / 2
	cy := fh / 2

	// Center of the scaled sprite in destination space; Pos stays the
	// unrotated top-left corner.
	ox := s.Pos.X + cx*s.Sx
	oy := s.Pos.Y + cy*s.Sy

	// Half the scaled frame diagonal covers every rotation angle.
	r := int(math.Ceil(math.Hypot(fw*math.Abs(s.Sx), fh*math.Abs(s.Sy)) / 2))

	rad := geom.Radians(s.Angle)
	cos := math.Cos(rad)
	sin := math.Sin(rad)

	for y := int(math.Floor(oy)) - r; y <= int(math.Ceil(oy))+r; y++ {
		for x := int(math.Floor(ox)) - r; x <= int(math.Ceil(ox))+r; x++ {
			// Inverse transform: unrotate about the center, then unscale
			// into frame space.
			ux := (float64(x)-ox)*cos + (float64(y)-oy)*sin
			uy := -(float64(x)-ox)*sin + (float64(y)-oy)*cos
			fx := int(math.Floor(ux/s.Sx + cx))
			fy := int(math.Floor(uy/s.Sy + cy))
			if fx < 0 || fy < 0 || fx >= frame.Width() || fy >= frame.Height() {
				continue
			}
			px := frame.PixelAt(fx, fy)
			if px.A == 0 {
				continue
			}
			dst.SetPixel(x, y, px)
		}
	}
}

var (
	_ Drawable      = (*Sprite)(nil)
	_ Updatable     = (*Sprite)(nil)
	_ Transformable = (*Sprite)(nil)
)
