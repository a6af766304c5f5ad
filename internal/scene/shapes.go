package scene

import (
	"github.com/vovakirdan/tui-sketch/internal/canvas"
	"github.com/vovakirdan/tui-sketch/internal/geom"
	"github.com/vovakirdan/tui-sketch/internal/raster"
)

// Dot is a single colored point.
type Dot struct {
	Pos   geom.Point
	Color canvas.Color
}

// Draw writes the dot's rounded pixel into dst.
func (d *Dot) Draw(dst canvas.PixelSetter) {
	raster.Line(dst, d.Pos, d.Pos, d.Color)
}

// Translate moves the dot.
func (d *Dot) Translate(dx, dy float64) { d.Pos = d.Pos.Translated(dx, dy) }

// Rotate rotates the dot about the origin by degrees.
func (d *Dot) Rotate(deg float64) { d.Pos = d.Pos.Rotated(deg) }

// Scale scales the dot's position about the origin.
func (d *Dot) Scale(sx, sy float64) { d.Pos = d.Pos.Scaled(sx, sy) }

// LineFunc is a line-drawing strategy with the raster.Line signature.
type LineFunc func(dst canvas.PixelSetter, a, b geom.Point, c canvas.Color)

// Line is a colored line segment. Raster is an optional drawing strategy;
// when nil the default incremental scan-conversion is used.
type Line struct {
	Seg    geom.Segment
	Color  canvas.Color
	Raster LineFunc
}

// Draw renders the segment through the configured strategy.
func (l *Line) Draw(dst canvas.PixelSetter) {
	draw := l.Raster
	if draw == nil {
		draw = raster.Line
	}
	draw(dst, l.Seg.A, l.Seg.B, l.Color)
}

// Translate moves both endpoints.
func (l *Line) Translate(dx, dy float64) { l.Seg = l.Seg.Translated(dx, dy) }

// Rotate rotates both endpoints about the origin by degrees.
func (l *Line) Rotate(deg float64) { l.Seg = l.Seg.Rotated(deg) }

// Scale scales both endpoints about the origin.
func (l *Line) Scale(sx, sy float64) { l.Seg = l.Seg.Scaled(sx, sy) }

// Circle is a circle outline.
type Circle struct {
	Center geom.Point
	Radius float64
	Color  canvas.Color
	Steps  int
}

// Draw renders the outline via octant sampling.
func (c *Circle) Draw(dst canvas.PixelSetter) {
	raster.Circle(dst, c.Center, c.Radius, c.Color, c.Steps)
}

// Translate moves the center.
func (c *Circle) Translate(dx, dy float64) { c.Center = c.Center.Translated(dx, dy) }

// Rotate rotates the center about the origin; the outline is rotation-
// invariant so only the position moves.
func (c *Circle) Rotate(deg float64) { c.Center = c.Center.Rotated(deg) }

// Scale scales the center position and the radius by the x factor.
func (c *Circle) Scale(sx, sy float64) {
	c.Center = c.Center.Scaled(sx, sy)
	c.Radius *= sx
}

// Ellipse is an axis-aligned ellipse outline.
type Ellipse struct {
	Center geom.Point
	Rx, Ry float64
	Color  canvas.Color
	Steps  int
}

// Draw renders the outline via quadrant sampling.
func (e *Ellipse) Draw(dst canvas.PixelSetter) {
	raster.Ellipse(dst, e.Center, e.Rx, e.Ry, e.Color, e.Steps)
}

// Translate moves the center.
func (e *Ellipse) Translate(dx, dy float64) { e.Center = e.Center.Translated(dx, dy) }

// Rotate rotates the center about the origin.
func (e *Ellipse) Rotate(deg float64) { e.Center = e.Center.Rotated(deg) }

// Scale scales the center and both radii.
func (e *Ellipse) Scale(sx, sy float64) {
	e.Center = e.Center.Scaled(sx, sy)
	e.Rx *= sx
	e.Ry *= sy
}

// PolygonShape is a closed polygon outline. Drawing silently skips the
// polygon when the self-intersection gate rejects it; Err exposes the
// last refusal so the shell can report it.
type PolygonShape struct {
	Vertices geom.Polygon
	Color    canvas.Color
	Err      error
}

// Draw renders the outline unless the validator refuses it.
func (p *PolygonShape) Draw(dst canvas.PixelSetter) {
	p.Err = raster.Polygon(dst, p.Vertices, p.Color)
}

// Translate moves every vertex.
func (p *PolygonShape) Translate(dx, dy float64) { p.Vertices = p.Vertices.Translated(dx, dy) }

// Rotate rotates every vertex about the origin by degrees.
func (p *PolygonShape) Rotate(deg float64) { p.Vertices = p.Vertices.Rotated(deg) }

// Scale scales every vertex about the origin.
func (p *PolygonShape) Scale(sx, sy float64) { p.Vertices = p.Vertices.Scaled(sx, sy) }

// Compile-time capability checks.
var (
	_ Drawable      = (*Dot)(nil)
	_ Transformable = (*Dot)(nil)
	_ Drawable      = (*Line)(nil)
	_ Transformable = (*Line)(nil)
	_ Drawable      = (*Circle)(nil)
	_ Transformable = (*Circle)(nil)
	_ Drawable      = (*Ellipse)(nil)
	_ Transformable = (*Ellipse)(nil)
	_ Drawable      = (*PolygonShape)(nil)
	_ Transformable = (*PolygonShape)(nil)
)
