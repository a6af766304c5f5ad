package tui

import (
	"fmt"
	"math"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-sketch/internal/canvas"
	"github.com/vovakirdan/tui-sketch/internal/config"
	"github.com/vovakirdan/tui-sketch/internal/fill"
	"github.com/vovakirdan/tui-sketch/internal/geom"
	"github.com/vovakirdan/tui-sketch/internal/raster"
	"github.com/vovakirdan/tui-sketch/internal/scene"
	"github.com/vovakirdan/tui-sketch/internal/storage"
)

// Stamp geometry and palette. Stamps are placed relative to the player
// center so the sprite doubles as the drawing cursor.
const (
	stampLineHalf = 8.0
	stampRadius   = 6.0
	stampTriSide  = 10.0
	rotateStepDeg = 15.0
	scaleStepUp   = 1.25
	scaleStepDown = 0.8
)

var (
	stampLineColor    = canvas.Blue
	stampCircleColor  = canvas.Black
	stampPolygonColor = canvas.Magenta
	floodColor        = canvas.RGB(255, 160, 60)
	boundaryFillColor = canvas.RGB(200, 255, 200)
)

// Model is the Bubble Tea model for the interactive drawing studio.
type Model struct {
	cfg      config.SketchConfig
	store    *storage.Store
	keys     *KeyMapper
	tickRate int

	frame *canvas.Canvas // composed every View
	paint *canvas.Canvas // stamped shapes and fills, transparent backed
	bg    canvas.Color

	demo          *scene.Scene
	boundaryPanel *canvas.Canvas
	floodPanel    *canvas.Canvas
	player        *scene.Player

	stamped  []storage.ShapeRecord
	status   string
	quitting bool
}

// NewModel builds a studio model from the loaded configuration. A nil
// store disables scene saving but keeps the studio usable.
func NewModel(cfg config.SketchConfig, store *storage.Store, tickRate int) Model {
	w := cfg.Canvas.Width
	h := cfg.Canvas.Height

	bg, err := canvas.ParseColor(cfg.Canvas.Background)
	if err != nil {
		bg = canvas.Gray
	}

	frames := scene.PlayerFrames(cfg.Player.Width, cfg.Player.Height, cfg.Player.FrameCount)
	sprite := scene.NewSprite(frames, cfg.Player.TimePerFrame)
	sprite.Pos = geom.P(cfg.Player.StartX, cfg.Player.StartY)
	player := scene.NewPlayer(sprite, cfg.Player.Speed)

	m := Model{
		cfg:      cfg,
		store:    store,
		keys:     NewKeyMapper(),
		tickRate: tickRate,
		frame:    canvas.New(w, h, bg),
		paint:    canvas.New(w, h, canvas.Transparent),
		bg:       bg,
		player:   player,
		status:   "wasd move · q/e rotate · z/x scale · l/c/p stamp · f/g fill · ctrl+s save",
	}

	if cfg.Demo.ShowShapes {
		m.demo = scene.Demo(w, h)
	}
	if cfg.Demo.ShowBoundary {
		m.boundaryPanel = scene.BoundaryDemoPanel(cfg.Demo.PanelWidth, cfg.Demo.PanelHeight)
	}
	if cfg.Demo.ShowFlood {
		m.floodPanel = scene.FloodDemoPanel(cfg.Demo.PanelWidth, cfg.Demo.PanelHeight)
	}

	return m
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.tickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		// The canvas size comes from configuration, not the terminal.
		// An undersized terminal simply crops the frame.
		return m, nil

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey maps a key press to a studio action and applies it.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keys.MapKey(msg) {
	case ActionQuit:
		m.quitting = true
		return m, tea.Quit

	case ActionMoveLeft:
		m.player.SetVelocity(-1, 0)
	case ActionMoveRight:
		m.player.SetVelocity(1, 0)
	case ActionMoveUp:
		m.player.SetVelocity(0, -1)
	case ActionMoveDown:
		m.player.SetVelocity(0, 1)

	case ActionRotateCCW:
		m.player.Rotate(-rotateStepDeg)
	case ActionRotateCW:
		m.player.Rotate(rotateStepDeg)
	case ActionScaleUp:
		m.player.Scale(scaleStepUp, scaleStepUp)
	case ActionScaleDown:
		m.player.Scale(scaleStepDown, scaleStepDown)

	case ActionStampLine:
		m.stampLine()
	case ActionStampCircle:
		m.stampCircle()
	case ActionStampPolygon:
		m.stampPolygon()
	case ActionFloodFill:
		m.floodAtPlayer()
	case ActionBoundaryFill:
		m.boundaryFillAtPlayer()

	case ActionSaveScene:
		m.status = m.saveScene()
	}

	return m, nil
}

// handleTick advances the player one simulation step. Velocity is an
// impulse: each key press moves the player for exactly one tick.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	m.player.Update(1 / float64(m.tickRate))
	m.player.SetVelocity(0, 0)
	return m, tickCmd(m.tickRate)
}

// playerCenter returns the center of the scaled player sprite, the anchor
// for stamps and fills.
func (m Model) playerCenter() geom.Point {
	sp := m.player.Sprite()
	frame := sp.Frame()
	if frame == nil {
		return sp.Pos
	}
	return geom.P(
		sp.Pos.X+float64(frame.Width())*math.Abs(sp.Sx)/2,
		sp.Pos.Y+float64(frame.Height())*math.Abs(sp.Sy)/2,
	)
}

func (m *Model) stampLine() {
	c := m.playerCenter()
	seg := geom.Segment{
		A: geom.P(c.X-stampLineHalf, c.Y),
		B: geom.P(c.X+stampLineHalf, c.Y),
	}
	raster.Line(m.paint, seg.A, seg.B, stampLineColor)
	m.stamped = append(m.stamped, lineRecord(seg, stampLineColor))
	m.status = fmt.Sprintf("stamped line at (%.0f, %.0f)", c.X, c.Y)
}

func (m *Model) stampCircle() {
	c := m.playerCenter()
	raster.Circle(m.paint, c, stampRadius, stampCircleColor, arcSteps)
	m.stamped = append(m.stamped, circleRecord(c, stampRadius, stampCircleColor))
	m.status = fmt.Sprintf("stamped circle at (%.0f, %.0f)", c.X, c.Y)
}

func (m *Model) stampPolygon() {
	c := m.playerCenter()
	pg := geom.Polygon{
		geom.P(c.X, c.Y-stampTriSide),
		geom.P(c.X+stampTriSide, c.Y+stampTriSide*0.7),
		geom.P(c.X-stampTriSide, c.Y+stampTriSide*0.7),
	}
	if err := raster.Polygon(m.paint, pg, stampPolygonColor); err != nil {
		m.status = "polygon rejected: " + err.Error()
		return
	}
	m.stamped = append(m.stamped, polygonRecord(pg, stampPolygonColor))
	m.status = fmt.Sprintf("stamped polygon at (%.0f, %.0f)", c.X, c.Y)
}

// floodAtPlayer floods the paint layer at the player center. Fills are a
// raster effect on the layer; they are not recorded in the scene gallery,
// which stores only shape geometry.
func (m *Model) floodAtPlayer() {
	c := m.playerCenter()
	seed := canvas.C(int(math.Round(c.X)), int(math.Round(c.Y)))
	fill.Flood(m.paint, seed, floodColor)
	m.status = fmt.Sprintf("flooded from (%d, %d)", seed.X, seed.Y)
}

// boundaryFillAtPlayer runs a boundary fill on the paint layer from the
// player center, stopping at black circle outlines.
func (m *Model) boundaryFillAtPlayer() {
	c := m.playerCenter()
	seed := canvas.C(int(math.Round(c.X)), int(math.Round(c.Y)))
	fill.Boundary(m.paint, seed, boundaryFillColor, stampCircleColor)
	m.status = fmt.Sprintf("boundary filled from (%d, %d)", seed.X, seed.Y)
}

// saveScene persists the stamped shapes under a timestamped name and
// returns a status line describing the outcome.
func (m *Model) saveScene() string {
	if m.store == nil {
		return "no gallery database, scene not saved"
	}
	if len(m.stamped) == 0 {
		return "nothing stamped yet, scene not saved"
	}
	name := "sketch_" + time.Now().Format("20060102_150405")
	if _, err := m.store.SaveScene(name, m.stamped); err != nil {
		return "save failed: " + err.Error()
	}
	return fmt.Sprintf("saved %q (%d shapes)", name, len(m.stamped))
}

// View composes the frame back to front: background, demo shapes, fill
// panels, the paint layer, then the player sprite on top.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.frame.Fill(m.bg)
	if m.demo != nil {
		m.demo.Draw(m.frame)
	}
	if m.boundaryPanel != nil {
		m.frame.Blit(m.boundaryPanel, m.frame.Width()-m.boundaryPanel.Width()-2, 2)
	}
	if m.floodPanel != nil {
		y := 2
		if m.boundaryPanel != nil {
			y += m.boundaryPanel.Height() + 1
		}
		m.frame.Blit(m.floodPanel, m.frame.Width()-m.floodPanel.Width()-2, y)
	}
	m.frame.Blit(m.paint, 0, 0)
	m.player.Draw(m.frame)

	return RenderCanvas(m.frame) + "\n" + m.status
}

// Run starts the Bubble Tea program for the studio.
func Run(cfg config.SketchConfig, store *storage.Store, tickRate int) error {
	p := tea.NewProgram(
		NewModel(cfg, store, tickRate),
		tea.WithAltScreen(),
	)
	_, err := p.Run()
	return err
}
