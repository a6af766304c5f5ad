package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-sketch/internal/config"
	"github.com/vovakirdan/tui-sketch/internal/platform/tui"
	"github.com/vovakirdan/tui-sketch/internal/storage"
)

var drawCmd = &cobra.Command{
	Use:   "draw",
	Short: "Open the interactive drawing studio",
	Long: `Open the drawing studio. The animated player sprite is your cursor.

Controls:
  WASD/Arrows - Move the cursor
  Q/E         - Rotate the cursor sprite
  Z/X         - Scale the cursor sprite up/down
  L           - Stamp a line at the cursor
  C           - Stamp a circle at the cursor
  P           - Stamp a triangle at the cursor
  F           - Flood-fill the paint layer at the cursor
  G           - Boundary-fill at the cursor (stops at black outlines)
  Ctrl+S      - Save stamped shapes as a gallery scene
  Esc/Ctrl+C  - Quit

Examples:
  sketch draw
  sketch draw --fps 60
  sketch draw --config ./my-studio.yaml`,
	Run: runDraw,
}

func runDraw(cmd *cobra.Command, args []string) {
	cfg, err := config.LoadSketch(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	// Shrink the canvas to the terminal so the frame is not wrapped.
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		if cfg.Canvas.Width > w {
			cfg.Canvas.Width = w
		}
		// Leave one row for the status line.
		if cfg.Canvas.Height > h-1 {
			cfg.Canvas.Height = h - 1
		}
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scene database: %v\n", err)
		// Continue without storage - drawing still works
		store = nil
	}

	runErr := tui.Run(cfg, store, flagFPS)

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running studio: %v\n", runErr)
		os.Exit(1)
	}
}
