// Package geom provides the float-valued geometry types consumed by the
// rasterization algorithms: points, segments and polygon vertex lists,
// together with the affine transforms the studio applies before drawing.
package geom

import (
	"fmt"
	"math"
)

// Radians converts an angle in degrees to radians. Both the rotation
// transform and the arc samplers go through this single conversion so the
// two can never disagree on angle units.
func Radians(deg float64) float64 {
	return deg * math.Pi / 180
}

// Point is a 2D position with float coordinates.
type Point struct {
	X float64
	Y float64
}

// P is a convenience constructor for Point.
func P(x, y float64) Point {
	return Point{X: x, Y: y}
}

// String returns a string representation of the point.
func (p Point) String() string {
	return fmt.Sprintf("(%g,%g)", p.X, p.Y)
}

// Translated returns the point moved by (dx, dy).
func (p Point) Translated(dx, dy float64) Point {
	return Point{X: p.X + dx, Y: p.Y + dy}
}

// Rotated returns the point rotated about the origin by the given angle
// in degrees. Positive angles rotate toward positive Y (clockwise in
// screen coordinates).
func (p Point) Rotated(deg float64) Point {
	rad := Radians(deg)
	cs := math.Cos(rad)
	sn := math.Sin(rad)
	return Point{
		X: p.X*cs - p.Y*sn,
		Y: p.X*sn + p.Y*cs,
	}
}

// Scaled returns the point scaled about the origin.
func (p Point) Scaled(sx, sy float64) Point {
	return Point{X: p.X * sx, Y: p.Y * sy}
}

// Cross returns the z-component of (b-a) × (c-a). Its sign tells which
// side of the directed line a→b the point c lies on.
func Cross(a, b, c Point) float64 {
	return (b.X-a.X)*(c.Y-a.Y) - (b.Y-a.Y)*(c.X-a.X)
}

// Segment is a straight line segment between two points.
type Segment struct {
	A Point
	B Point
}

// Translated returns the segment moved by (dx, dy).
func (s Segment) Translated(dx, dy float64) Segment {
	return Segment{A: s.A.Translated(dx, dy), B: s.B.Translated(dx, dy)}
}

// Rotated returns the segment rotated about the origin by degrees.
func (s Segment) Rotated(deg float64) Segment {
	return Segment{A: s.A.Rotated(deg), B: s.B.Rotated(deg)}
}

// Scaled returns the segment scaled about the origin.
func (s Segment) Scaled(sx, sy float64) Segment {
	return Segment{A: s.A.Scaled(sx, sy), B: s.B.Scaled(sx, sy)}
}

// Polygon is an ordered vertex list. The outline is implicitly closed:
// the last vertex connects back to the first.
type Polygon []Point

// Translated returns a new polygon moved by (dx, dy).
func (pg Polygon) Translated(dx, dy float64) Polygon {
	out := make(Polygon, len(pg))
	for i, p := range pg {
		out[i] = p.Translated(dx, dy)
	}
	return out
}

// Rotated returns a new polygon rotated about the origin by degrees.
func (pg Polygon) Rotated(deg float64) Polygon {
	out := make(Polygon, len(pg))
	for i, p := range pg {
		out[i] = p.Rotated(deg)
	}
	return out
}

// Scaled returns a new polygon scaled about the origin.
func (pg Polygon) Scaled(sx, sy float64) Polygon {
	out := make(Polygon, len(pg))
	for i, p := range pg {
		out[i] = p.Scaled(sx, sy)
	}
	return out
}
