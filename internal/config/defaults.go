package config

import (
	_ "embed"
)

//go:embed defaults/sketch.yaml
var defaultSketchYAML []byte

// DefaultSketchConfig returns the default studio configuration.
func DefaultSketchConfig() SketchConfig {
	return SketchConfig{
		Canvas: CanvasConfig{
			Width:      120,
			Height:     70,
			Background: "#dcdcdc",
		},
		Player: PlayerConfig{
			Width:        6,
			Height:       8,
			FrameCount:   4,
			TimePerFrame: 0.2,
			Speed:        30,
			StartX:       40,
			StartY:       45,
		},
		Demo: DemoConfig{
			ShowShapes:   true,
			PanelWidth:   28,
			PanelHeight:  18,
			ShowBoundary: true,
			ShowFlood:    true,
		},
	}
}
