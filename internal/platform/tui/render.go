package tui

import (
	"strings"
	"sync"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-sketch/internal/canvas"
)

// styleCache memoizes lipgloss styles per color so a frame does not
// rebuild one per pixel. Guarded because SSH sessions render concurrently.
var (
	styleMu    sync.Mutex
	styleCache = map[canvas.Color]lipgloss.Style{}
)

func styleFor(c canvas.Color) lipgloss.Style {
	styleMu.Lock()
	defer styleMu.Unlock()
	if st, ok := styleCache[c]; ok {
		return st
	}
	st := lipgloss.NewStyle().Foreground(lipgloss.Color(c.Hex()))
	styleCache[c] = st
	return st
}

// RenderCanvas converts a pixel canvas to a styled string for display,
// one terminal cell per pixel. Adjacent pixels with the same color are
// grouped into a single styled run to minimize ANSI escape sequences.
func RenderCanvas(cv *canvas.Canvas) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(cv.Width()*cv.Height()*4 + cv.Height())

	for y := 0; y < cv.Height(); y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < cv.Width() {
			runColor := cv.PixelAt(x, y)

			var run strings.Builder
			for x < cv.Width() && cv.PixelAt(x, y) == runColor {
				run.WriteRune('█')
				x++
			}

			sb.WriteString(styleFor(runColor).Render(run.String()))
		}
	}
	return sb.String()
}
