// Package scene provides the drawable objects the studio composes on top
// of the raster core: primitive shapes, animated sprites and the player.
//
// Capabilities are independent interfaces implemented per concrete type
// and composed by containment. A renderer works against "anything that can
// draw itself into a pixel sink" rather than a type hierarchy.
package scene

import "github.com/vovakirdan/tui-sketch/internal/canvas"

// Drawable is anything that can render itself into a pixel sink.
type Drawable interface {
	Draw(dst canvas.PixelSetter)
}

// Updatable is anything advanced by the simulation tick.
type Updatable interface {
	Update(dt float64)
}

// Transformable is anything supporting the affine transforms the studio
// drives from the keyboard.
type Transformable interface {
	Translate(dx, dy float64)
	Rotate(deg float64)
	Scale(sx, sy float64)
}

// Scene is an ordered collection of objects. Draw renders them in
// insertion order; Update advances only the objects that are Updatable.
type Scene struct {
	objects []Drawable
}

// Add appends objects to the scene.
func (s *Scene) Add(objs ...Drawable) {
	s.objects = append(s.objects, objs...)
}

// Len returns the number of objects in the scene.
func (s *Scene) Len() int {
	return len(s.objects)
}

// Update advances every updatable object by dt seconds.
func (s *Scene) Update(dt float64) {
	for _, obj := range s.objects {
		if u, ok := obj.(Updatable); ok {
			u.Update(dt)
		}
	}
}

// Draw renders every object into dst in insertion order.
func (s *Scene) Draw(dst canvas.PixelSetter) {
	for _, obj := range s.objects {
		obj.Draw(dst)
	}
}
