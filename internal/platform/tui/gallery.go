package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-sketch/internal/canvas"
	"github.com/vovakirdan/tui-sketch/internal/storage"
)

// Gallery layout constants
const (
	minWidthForPreview = 90 // Minimum terminal width to show the preview pane
	previewWidth       = 48 // Preview canvas width in pixels
	previewHeight      = 24 // Preview canvas height in pixels
)

// GalleryKeyMap defines the key bindings for the scene gallery.
type GalleryKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Delete key.Binding
	Quit   key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k GalleryKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Delete, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k GalleryKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down},
		{k.Delete, k.Quit},
	}
}

// DefaultGalleryKeyMap returns default key bindings.
func DefaultGalleryKeyMap() GalleryKeyMap {
	return GalleryKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		Delete: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "delete scene"),
		),
		Quit: key.NewBinding(
			key.WithKeys("esc", "q", "ctrl+c"),
			key.WithHelp("esc/q", "quit"),
		),
	}
}

// GalleryModel is the Bubble Tea model for browsing saved scenes. The
// selected scene is rendered into a small preview pane; shapes outside
// the preview viewport are silently cropped.
type GalleryModel struct {
	store       *storage.Store
	scenes      []storage.SceneEntry
	table       table.Model
	help        help.Model
	keys        GalleryKeyMap
	width       int
	height      int
	preview     string
	status      string
	quitting    bool
	showPreview bool
}

// NewGalleryModel creates a gallery model and loads the scene list.
func NewGalleryModel(store *storage.Store, width, height int) GalleryModel {
	h := help.New()
	h.ShowAll = false

	m := GalleryModel{
		store:       store,
		keys:        DefaultGalleryKeyMap(),
		help:        h,
		width:       width,
		height:      height,
		showPreview: width >= minWidthForPreview,
	}

	m.table = m.createTable()
	m.loadScenes()
	return m
}

// createTable creates the scene table with appropriate columns.
func (m *GalleryModel) createTable() table.Model {
	columns := []table.Column{
		{Title: "Scene", Width: 24},
		{Title: "Shapes", Width: 8},
		{Title: "Created", Width: 18},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(m.height-8),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return t
}

// loadScenes reloads the scene list and refreshes the preview.
func (m *GalleryModel) loadScenes() {
	if m.store == nil {
		m.scenes = nil
	} else if scenes, err := m.store.ListScenes(); err != nil {
		m.scenes = nil
		m.status = "load failed: " + err.Error()
	} else {
		m.scenes = scenes
	}

	rows := make([]table.Row, len(m.scenes))
	for i, s := range m.scenes {
		rows[i] = table.Row{
			s.Name,
			fmt.Sprintf("%d", s.ShapeCount),
			s.CreatedAt.Format("Jan 02 15:04"),
		}
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
	m.renderPreview()
}

// renderPreview draws the selected scene into the preview canvas.
func (m *GalleryModel) renderPreview() {
	m.preview = ""
	if !m.showPreview || m.store == nil {
		return
	}
	cursor := m.table.Cursor()
	if cursor < 0 || cursor >= len(m.scenes) {
		return
	}

	records, err := m.store.SceneShapes(m.scenes[cursor].ID)
	if err != nil {
		m.status = "preview failed: " + err.Error()
		return
	}
	s, err := SceneFromRecords(records)
	if err != nil {
		m.status = "preview failed: " + err.Error()
		return
	}

	cv := canvas.New(previewWidth, previewHeight, canvas.White)
	s.Draw(cv)
	m.preview = RenderCanvas(cv)
}

// deleteSelected removes the scene under the cursor.
func (m *GalleryModel) deleteSelected() {
	cursor := m.table.Cursor()
	if m.store == nil || cursor < 0 || cursor >= len(m.scenes) {
		return
	}
	entry := m.scenes[cursor]
	if err := m.store.DeleteScene(entry.ID); err != nil {
		m.status = "delete failed: " + err.Error()
		return
	}
	m.status = fmt.Sprintf("deleted %q", entry.Name)
	m.loadScenes()
}

// Init initializes the gallery model.
func (m GalleryModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the gallery.
func (m GalleryModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Delete):
			m.deleteSelected()
			return m, nil

		case key.Matches(msg, m.keys.Up), key.Matches(msg, m.keys.Down):
			m.table, cmd = m.table.Update(msg)
			m.renderPreview()
			return m, cmd
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.showPreview = m.width >= minWidthForPreview
		m.table = m.createTable()
		m.loadScenes()
		m.help.Width = msg.Width
		return m, nil
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the gallery.
func (m GalleryModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229")).
		MarginBottom(1)
	b.WriteString(titleStyle.Render("SCENE GALLERY"))
	b.WriteString("\n\n")

	tableStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)

	content := m.renderTableContent()
	if m.showPreview && m.preview != "" {
		previewStyle := lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240"))
		b.WriteString(lipgloss.JoinHorizontal(
			lipgloss.Top,
			tableStyle.Render(content),
			"  ",
			previewStyle.Render(m.preview),
		))
	} else {
		b.WriteString(tableStyle.Render(content))
	}

	b.WriteString("\n")
	if m.status != "" {
		b.WriteString(m.status)
		b.WriteString("\n")
	}
	helpStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241"))
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))

	return b.String()
}

// renderTableContent renders the table or an empty message.
func (m GalleryModel) renderTableContent() string {
	if len(m.scenes) == 0 {
		emptyStyle := lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Italic(true).
			Padding(2, 4)
		return emptyStyle.Render("No scenes saved yet.\nStamp shapes in the studio and press ctrl+s!")
	}
	return m.table.View()
}

// RunGallery runs the gallery screen.
func RunGallery(store *storage.Store, width, height int) error {
	p := tea.NewProgram(
		NewGalleryModel(store, width, height),
		tea.WithAltScreen(),
	)
	_, err := p.Run()
	return err
}
