// sketch is a terminal drawing studio built on a software rasterizer.
//
// Usage:
//
//	sketch draw              - Open the interactive drawing studio
//	sketch render [scene]    - Render the demo or a saved scene to stdout
//	sketch scenes            - List saved scenes
//	sketch gallery           - Browse saved scenes interactively
//	sketch serve             - Start SSH server for remote drawing
//
// Global flags:
//
//	--fps <rate>     - Set tick rate (default: 30)
//	--config <path>  - Path to custom studio config YAML
//	--db <path>      - Set database path (default: ~/.sketch/scenes.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS    int
	flagConfig string
	flagDBPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "sketch",
	Short: "Sketch - A drawing studio in your terminal",
	Long: `Sketch is a terminal drawing studio: an animated sprite doubles as your
cursor, and you stamp rasterized lines, circles and polygons onto the
canvas, flood-fill regions, and save scenes to a gallery.

Available commands:
  draw     - Open the interactive studio
  render   - Render the demo or a saved scene to stdout
  scenes   - List saved scenes
  gallery  - Browse saved scenes interactively
  serve    - Start SSH server for remote drawing

Examples:
  sketch draw
  sketch render
  sketch render my_scene
  sketch gallery
  sketch serve --ssh :2222`,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 30, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom studio config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.sketch/scenes.db", "Path to scene database")

	rootCmd.AddCommand(drawCmd)
	rootCmd.AddCommand(renderCmd)
	rootCmd.AddCommand(scenesCmd)
	rootCmd.AddCommand(galleryCmd)
	rootCmd.AddCommand(serveCmd)
}
