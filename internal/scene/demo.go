package scene

import (
	"github.com/vovakirdan/tui-sketch/internal/canvas"
	"github.com/vovakirdan/tui-sketch/internal/fill"
	"github.com/vovakirdan/tui-sketch/internal/geom"
	"github.com/vovakirdan/tui-sketch/internal/raster"
)

// Demo builds the showcase scene: one primitive of every kind, laid out
// proportionally to the target size.
func Demo(w, h int) *Scene {
	fw := float64(w)
	fh := float64(h)

	s := &Scene{}
	s.Add(
		// Fallback strategy line and explicit incremental line.
		&Line{
			Seg:   geom.Segment{A: geom.P(fw*0.05, fh*0.07), B: geom.P(fw*0.3, fh*0.14)},
			Color: canvas.Red,
		},
		&Line{
			Seg:    geom.Segment{A: geom.P(fw*0.05, fh*0.14), B: geom.P(fw*0.3, fh*0.29)},
			Color:  canvas.Blue,
			Raster: raster.Line,
		},
		&Circle{
			Center: geom.P(fw*0.2, fh*0.43),
			Radius: fh * 0.12,
			Color:  canvas.Black,
			Steps:  64,
		},
		&Ellipse{
			Center: geom.P(fw*0.4, fh*0.43),
			Rx:     fw * 0.08,
			Ry:     fh * 0.08,
			Color:  canvas.Black,
			Steps:  90,
		},
		&PolygonShape{
			Vertices: geom.Polygon{
				geom.P(fw*0.1, fh*0.57),
				geom.P(fw*0.2, fh*0.64),
				geom.P(fw*0.18, fh*0.79),
				geom.P(fw*0.06, fh*0.74),
			},
			Color: canvas.Magenta,
		},
	)
	return s
}

// PlayerFrames builds the procedural animation frames for the player: a
// filled box whose tint shifts per frame, with a black one-pixel border.
func PlayerFrames(w, h, count int) []*canvas.Canvas {
	frames := make([]*canvas.Canvas, 0, count)
	for i := 0; i < count; i++ {
		tint := canvas.RGB(
			uint8(100+30*i),
			uint8(100+20*i),
			uint8(255-30*i),
		)
		frame := canvas.New(w, h, tint)
		for x := 0; x < w; x++ {
			frame.SetPixel(x, 0, canvas.Black)
			frame.SetPixel(x, h-1, canvas.Black)
		}
		for y := 0; y < h; y++ {
			frame.SetPixel(0, y, canvas.Black)
			frame.SetPixel(w-1, y, canvas.Black)
		}
		frames = append(frames, frame)
	}
	return frames
}

// BoundaryDemoPanel renders the boundary-fill showcase: a black rectangle
// outline on white, interior boundary-filled pale green.
func BoundaryDemoPanel(w, h int) *canvas.Canvas {
	panel := canvas.New(w, h, canvas.White)
	inset := 1
	for x := inset; x < w-inset; x++ {
		panel.SetPixel(x, inset, canvas.Black)
		panel.SetPixel(x, h-1-inset, canvas.Black)
	}
	for y := inset; y < h-inset; y++ {
		panel.SetPixel(inset, y, canvas.Black)
		panel.SetPixel(w-1-inset, y, canvas.Black)
	}
	fill.Boundary(panel, canvas.C(w/2, h/2), canvas.RGB(200, 255, 200), canvas.Black)
	return panel
}

// FloodDemoPanel renders the flood-fill showcase: a bordered panel whose
// background color is replaced with a peach fill.
func FloodDemoPanel(w, h int) *canvas.Canvas {
	bg := canvas.RGB(240, 240, 255)
	panel := canvas.New(w, h, bg)
	for x := 0; x < w; x++ {
		panel.SetPixel(x, 0, canvas.Black)
		panel.SetPixel(x, h-1, canvas.Black)
	}
	for y := 0; y < h; y++ {
		panel.SetPixel(0, y, canvas.Black)
		panel.SetPixel(w-1, y, canvas.Black)
	}
	fill.Flood(panel, canvas.C(w/2, h/2), canvas.RGB(255, 220, 200))
	return panel
}
