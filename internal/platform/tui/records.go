package tui

import (
	"fmt"

	"github.com/vovakirdan/tui-sketch/internal/canvas"
	"github.com/vovakirdan/tui-sketch/internal/geom"
	"github.com/vovakirdan/tui-sketch/internal/scene"
	"github.com/vovakirdan/tui-sketch/internal/storage"
)

// arcSteps is the sample count per symmetric segment used for stamped and
// restored arcs.
const arcSteps = 48

// RecordToDrawable rebuilds a scene object from its gallery record.
func RecordToDrawable(rec storage.ShapeRecord) (scene.Drawable, error) {
	color, err := canvas.ParseColor(rec.Color)
	if err != nil {
		return nil, err
	}
	pts, err := storage.ParsePoints(rec.Points)
	if err != nil {
		return nil, err
	}

	switch rec.Kind {
	case storage.KindDot:
		if len(pts) != 1 {
			return nil, fmt.Errorf("tui: dot record needs 1 point, got %d", len(pts))
		}
		return &scene.Dot{Pos: pts[0], Color: color}, nil

	case storage.KindLine:
		if len(pts) != 2 {
			return nil, fmt.Errorf("tui: line record needs 2 points, got %d", len(pts))
		}
		return &scene.Line{Seg: geom.Segment{A: pts[0], B: pts[1]}, Color: color}, nil

	case storage.KindCircle:
		if len(pts) != 2 {
			return nil, fmt.Errorf("tui: circle record needs center and rim, got %d points", len(pts))
		}
		return &scene.Circle{
			Center: pts[0],
			Radius: pts[1].X - pts[0].X,
			Color:  color,
			Steps:  arcSteps,
		}, nil

	case storage.KindEllipse:
		if len(pts) != 2 {
			return nil, fmt.Errorf("tui: ellipse record needs center and rim, got %d points", len(pts))
		}
		return &scene.Ellipse{
			Center: pts[0],
			Rx:     pts[1].X - pts[0].X,
			Ry:     pts[1].Y - pts[0].Y,
			Color:  color,
			Steps:  arcSteps,
		}, nil

	case storage.KindPolygon:
		return &scene.PolygonShape{Vertices: pts, Color: color}, nil
	}

	return nil, fmt.Errorf("tui: unknown shape kind %q", rec.Kind)
}

// SceneFromRecords rebuilds a full scene, skipping no records: any broken
// record fails the whole load so a stored scene never renders partially.
func SceneFromRecords(records []storage.ShapeRecord) (*scene.Scene, error) {
	s := &scene.Scene{}
	for _, rec := range records {
		obj, err := RecordToDrawable(rec)
		if err != nil {
			return nil, err
		}
		s.Add(obj)
	}
	return s, nil
}

// circleRecord encodes a circle as its center plus a rim point east of it.
func circleRecord(center geom.Point, r float64, c canvas.Color) storage.ShapeRecord {
	return storage.ShapeRecord{
		Kind:   storage.KindCircle,
		Color:  c.Hex(),
		Points: storage.FormatPoints([]geom.Point{center, geom.P(center.X+r, center.Y)}),
	}
}

// lineRecord encodes a line's two endpoints.
func lineRecord(seg geom.Segment, c canvas.Color) storage.ShapeRecord {
	return storage.ShapeRecord{
		Kind:   storage.KindLine,
		Color:  c.Hex(),
		Points: storage.FormatPoints([]geom.Point{seg.A, seg.B}),
	}
}

// polygonRecord encodes a polygon's vertex list.
func polygonRecord(pg geom.Polygon, c canvas.Color) storage.ShapeRecord {
	return storage.ShapeRecord{
		Kind:   storage.KindPolygon,
		Color:  c.Hex(),
		Points: storage.FormatPoints(pg),
	}
}
