package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-sketch/internal/canvas"
	"github.com/vovakirdan/tui-sketch/internal/config"
	"github.com/vovakirdan/tui-sketch/internal/storage"
)

func testModel() Model {
	cfg := config.DefaultSketchConfig()
	cfg.Canvas.Width = 40
	cfg.Canvas.Height = 30
	cfg.Player.StartX = 15
	cfg.Player.StartY = 12
	cfg.Demo.ShowShapes = false
	cfg.Demo.ShowBoundary = false
	cfg.Demo.ShowFlood = false
	return NewModel(cfg, nil, 30)
}

func TestMapKeyBindings(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		key  string
		want Action
	}{
		{"a", ActionMoveLeft},
		{"d", ActionMoveRight},
		{"w", ActionMoveUp},
		{"s", ActionMoveDown},
		{"q", ActionRotateCCW},
		{"e", ActionRotateCW},
		{"z", ActionScaleUp},
		{"x", ActionScaleDown},
		{"l", ActionStampLine},
		{"c", ActionStampCircle},
		{"p", ActionStampPolygon},
		{"f", ActionFloodFill},
		{"g", ActionBoundaryFill},
		{"?", ActionNone},
	}

	for _, tt := range tests {
		msg := tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(tt.key)}
		if got := km.MapKey(msg); got != tt.want {
			t.Errorf("MapKey(%q) = %v, want %v", tt.key, got, tt.want)
		}
	}

	if got := km.MapKey(tea.KeyMsg{Type: tea.KeyCtrlC}); got != ActionQuit {
		t.Errorf("MapKey(ctrl+c) = %v, want ActionQuit", got)
	}
	if got := km.MapKey(tea.KeyMsg{Type: tea.KeyCtrlS}); got != ActionSaveScene {
		t.Errorf("MapKey(ctrl+s) = %v, want ActionSaveScene", got)
	}
}

func TestStampLinePaintsAndRecords(t *testing.T) {
	m := testModel()

	m.stampLine()

	if len(m.stamped) != 1 {
		t.Fatalf("stamped records = %d, want 1", len(m.stamped))
	}
	if m.stamped[0].Kind != storage.KindLine {
		t.Errorf("record kind = %q, want %q", m.stamped[0].Kind, storage.KindLine)
	}
	if m.paint.Count(stampLineColor) == 0 {
		t.Error("paint layer has no line pixels")
	}
}

func TestStampCircleAndPolygon(t *testing.T) {
	m := testModel()

	m.stampCircle()
	m.stampPolygon()

	if len(m.stamped) != 2 {
		t.Fatalf("stamped records = %d, want 2", len(m.stamped))
	}
	if m.paint.Count(stampCircleColor) == 0 {
		t.Error("paint layer has no circle pixels")
	}
	if m.paint.Count(stampPolygonColor) == 0 {
		t.Error("paint layer has no polygon pixels")
	}
}

func TestFloodFillPaintLayer(t *testing.T) {
	m := testModel()

	// The paint layer is uniformly transparent, so a flood from the player
	// center recolors all of it.
	m.floodAtPlayer()

	want := m.paint.Width() * m.paint.Height()
	if got := m.paint.Count(floodColor); got != want {
		t.Errorf("flooded pixels = %d, want %d", got, want)
	}
	if len(m.stamped) != 0 {
		t.Error("flood fill must not produce shape records")
	}
}

func TestBoundaryFillStopsAtStampedCircle(t *testing.T) {
	m := testModel()

	// A stamped circle is a closed black outline around the player center,
	// so the boundary fill stays inside it.
	m.stampCircle()
	m.boundaryFillAtPlayer()

	got := m.paint.Count(boundaryFillColor)
	if got == 0 {
		t.Fatal("boundary fill wrote nothing")
	}
	if got >= m.paint.Width()*m.paint.Height()/2 {
		t.Errorf("boundary fill escaped the outline: %d pixels", got)
	}
}

func TestSaveSceneWithoutStore(t *testing.T) {
	m := testModel()
	m.stampLine()

	status := m.saveScene()
	if status != "no gallery database, scene not saved" {
		t.Errorf("status = %q", status)
	}
}

func TestSaveSceneEmpty(t *testing.T) {
	m := testModel()

	status := m.saveScene()
	if status != "nothing stamped yet, scene not saved" {
		t.Errorf("status = %q", status)
	}
}

func TestViewHasCanvasDimensions(t *testing.T) {
	m := testModel()
	m.stampCircle()

	view := m.View()
	if view == "" {
		t.Fatal("View returned empty string")
	}

	lines := 1
	for _, r := range view {
		if r == '\n' {
			lines++
		}
	}
	// Canvas rows plus the status line.
	if lines != m.frame.Height()+1 {
		t.Errorf("view lines = %d, want %d", lines, m.frame.Height()+1)
	}
}

func TestRenderCanvasDimensions(t *testing.T) {
	cv := canvas.New(5, 3, canvas.White)
	out := RenderCanvas(cv)

	lines := 1
	for _, r := range out {
		if r == '\n' {
			lines++
		}
	}
	if lines != 3 {
		t.Errorf("rendered lines = %d, want 3", lines)
	}
}
