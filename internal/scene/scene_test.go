package scene

import (
	"testing"

	"github.com/vovakirdan/tui-sketch/internal/canvas"
	"github.com/vovakirdan/tui-sketch/internal/geom"
)

func TestSpriteFrameCycling(t *testing.T) {
	frames := PlayerFrames(3, 3, 4)
	sp := NewSprite(frames, 0.2)

	if sp.FrameIndex() != 0 {
		t.Fatalf("initial frame = %d, expected 0", sp.FrameIndex())
	}

	sp.Animate(0.1)
	if sp.FrameIndex() != 0 {
		t.Errorf("frame advanced too early: %d", sp.FrameIndex())
	}

	sp.Animate(0.1)
	if sp.FrameIndex() != 1 {
		t.Errorf("frame = %d after one budget, expected 1", sp.FrameIndex())
	}

	// A large dt may step several frames; the accumulator carries over.
	sp.Animate(0.45)
	if sp.FrameIndex() != 3 {
		t.Errorf("frame = %d after 0.65s total, expected 3", sp.FrameIndex())
	}

	// Wraps around.
	sp.Animate(0.2)
	if sp.FrameIndex() != 0 {
		t.Errorf("frame = %d after wrap, expected 0", sp.FrameIndex())
	}
}

func TestSpriteDrawUnscaled(t *testing.T) {
	frame := canvas.New(2, 2, canvas.Red)
	sp := NewSprite([]*canvas.Canvas{frame}, 0.2)
	sp.Pos = geom.P(4, 4)

	cv := canvas.New(10, 10, canvas.White)
	sp.Draw(cv)

	for _, c := range []canvas.Coord{canvas.C(4, 4), canvas.C(5, 4), canvas.C(4, 5), canvas.C(5, 5)} {
		if cv.PixelAt(c.X, c.Y) != canvas.Red {
			t.Errorf("frame pixel %v not blitted", c)
		}
	}
	if got := cv.Count(canvas.Red); got != 4 {
		t.Errorf("blit wrote %d pixels, expected 4", got)
	}
}

func TestSpriteDrawSkipsTransparent(t *testing.T) {
	frame := canvas.New(2, 1, canvas.Red)
	frame.SetPixel(1, 0, canvas.Transparent)
	sp := NewSprite([]*canvas.Canvas{frame}, 0.2)
	sp.Pos = geom.P(3, 3)

	cv := canvas.New(8, 8, canvas.White)
	sp.Draw(cv)

	if got := cv.Count(canvas.Red); got != 1 {
		t.Errorf("blit wrote %d opaque pixels, expected 1", got)
	}
}

func TestSpriteHalfTurn(t *testing.T) {
	// Asymmetric 2x1 frame: after a half turn the colors swap sides.
	frame := canvas.New(2, 1, canvas.Red)
	frame.SetPixel(1, 0, canvas.Blue)
	sp := NewSprite([]*canvas.Canvas{frame}, 0.2)
	sp.Pos = geom.P(4, 4)

	straight := canvas.New(10, 10, canvas.White)
	sp.Draw(straight)

	sp.Rotate(180)
	turned := canvas.New(10, 10, canvas.White)
	sp.Draw(turned)

	if straight.Count(canvas.Red) != 1 || straight.Count(canvas.Blue) != 1 {
		t.Fatal("unrotated draw lost pixels")
	}
	if turned.Count(canvas.Red) != 1 || turned.Count(canvas.Blue) != 1 {
		t.Fatal("rotated draw lost pixels")
	}

	// Find the red pixel in both renders; it must have moved to the other
	// side of the blue one.
	redX := func(cv *canvas.Canvas) int {
		for y := 0; y < 10; y++ {
			for x := 0; x < 10; x++ {
				if cv.PixelAt(x, y) == canvas.Red {
					return x
				}
			}
		}
		return -1
	}
	blueX := func(cv *canvas.Canvas) int {
		for y := 0; y < 10; y++ {
			for x := 0; x < 10; x++ {
				if cv.PixelAt(x, y) == canvas.Blue {
					return x
				}
			}
		}
		return -1
	}

	if redX(straight) >= blueX(straight) {
		t.Error("unrotated frame order wrong")
	}
	if redX(turned) <= blueX(turned) {
		t.Error("half turn did not swap pixel order")
	}
}

func TestPlayerIntegration(t *testing.T) {
	frames := PlayerFrames(3, 3, 2)
	p := NewPlayer(NewSprite(frames, 0.2), 10)

	p.SetVelocity(1, 0)
	p.Update(0.5) // 10 px/s * 0.5 s = 5 px

	if got := p.Sprite().Pos; got.X != 5 || got.Y != 0 {
		t.Errorf("position after update = %v, expected (5,0)", got)
	}

	p.SetVelocity(0, -1)
	p.Update(0.1)
	if got := p.Sprite().Pos; got.X != 5 || got.Y != -1 {
		t.Errorf("position after second update = %v, expected (5,-1)", got)
	}
}

func TestSceneUpdateAndDraw(t *testing.T) {
	s := &Scene{}
	dot := &Dot{Pos: geom.P(6, 6), Color: canvas.Red}
	player := NewPlayer(NewSprite(PlayerFrames(2, 2, 2), 0.1), 4)
	s.Add(dot, player)

	if s.Len() != 2 {
		t.Fatalf("scene has %d objects, expected 2", s.Len())
	}

	player.SetVelocity(1, 1)
	s.Update(0.25) // only the player is Updatable

	if got := player.Sprite().Pos; got.X != 1 || got.Y != 1 {
		t.Errorf("player not advanced by scene update: %v", got)
	}

	cv := canvas.New(10, 10, canvas.White)
	s.Draw(cv)
	if cv.PixelAt(6, 6) != canvas.Red {
		t.Error("dot not drawn by scene")
	}
}

func TestLineFallbackStrategy(t *testing.T) {
	var called bool
	custom := func(dst canvas.PixelSetter, a, b geom.Point, c canvas.Color) {
		called = true
		dst.SetPixel(0, 0, c)
	}

	cv := canvas.New(6, 6, canvas.White)

	withStrategy := &Line{Seg: geom.Segment{A: geom.P(1, 1), B: geom.P(4, 1)}, Color: canvas.Red, Raster: custom}
	withStrategy.Draw(cv)
	if !called {
		t.Error("explicit strategy not invoked")
	}

	fallback := &Line{Seg: geom.Segment{A: geom.P(1, 3), B: geom.P(4, 3)}, Color: canvas.Blue}
	fallback.Draw(cv)
	for x := 1; x <= 4; x++ {
		if cv.PixelAt(x, 3) != canvas.Blue {
			t.Errorf("fallback did not draw pixel (%d,3)", x)
		}
	}
}

func TestDemoSceneDrawsAllPrimitives(t *testing.T) {
	cv := canvas.New(100, 70, canvas.White)
	Demo(100, 70).Draw(cv)

	for _, c := range []canvas.Color{canvas.Red, canvas.Blue, canvas.Black, canvas.Magenta} {
		if cv.Count(c) == 0 {
			t.Errorf("demo scene drew no %v pixels", c)
		}
	}
}

func TestDemoPanels(t *testing.T) {
	boundary := BoundaryDemoPanel(40, 30)
	if boundary.PixelAt(20, 15) != canvas.RGB(200, 255, 200) {
		t.Errorf("boundary panel center = %v, expected pale green", boundary.PixelAt(20, 15))
	}
	if boundary.PixelAt(0, 0) != canvas.White {
		t.Error("boundary panel corner outside the outline should stay white")
	}
	if boundary.PixelAt(1, 1) != canvas.Black {
		t.Error("boundary panel outline missing")
	}

	flood := FloodDemoPanel(40, 30)
	if flood.PixelAt(20, 15) != canvas.RGB(255, 220, 200) {
		t.Errorf("flood panel center = %v, expected peach", flood.PixelAt(20, 15))
	}
	if flood.PixelAt(0, 0) != canvas.Black {
		t.Error("flood panel border missing")
	}
}
