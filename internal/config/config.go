// Package config provides YAML-based configuration loading for the sketch
// studio.
package config

// SketchConfig contains all configuration for the drawing studio.
type SketchConfig struct {
	Canvas CanvasConfig `yaml:"canvas"`
	Player PlayerConfig `yaml:"player"`
	Demo   DemoConfig   `yaml:"demo"`
}

// CanvasConfig defines the drawing surface.
type CanvasConfig struct {
	Width      int    `yaml:"width"`
	Height     int    `yaml:"height"`
	Background string `yaml:"background"` // #rrggbb
}

// PlayerConfig defines the keyboard-driven sprite.
type PlayerConfig struct {
	Width        int     `yaml:"width"`
	Height       int     `yaml:"height"`
	FrameCount   int     `yaml:"frame_count"`
	TimePerFrame float64 `yaml:"time_per_frame"` // seconds
	Speed        float64 `yaml:"speed"`          // pixels per second
	StartX       float64 `yaml:"start_x"`
	StartY       float64 `yaml:"start_y"`
}

// DemoConfig defines the showcase panels.
type DemoConfig struct {
	ShowShapes   bool `yaml:"show_shapes"`
	PanelWidth   int  `yaml:"panel_width"`
	PanelHeight  int  `yaml:"panel_height"`
	ShowBoundary bool `yaml:"show_boundary"`
	ShowFlood    bool `yaml:"show_flood"`
}
