package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-sketch/internal/platform/tui"
	"github.com/vovakirdan/tui-sketch/internal/storage"
)

var flagDeleteScene string

var scenesCmd = &cobra.Command{
	Use:   "scenes",
	Short: "List saved scenes",
	Long: `Display all scenes saved in the gallery, newest first.

Examples:
  sketch scenes
  sketch scenes --delete my_scene`,
	Run: runScenes,
}

func init() {
	scenesCmd.Flags().StringVar(&flagDeleteScene, "delete", "", "Delete the named scene instead of listing")
}

func runScenes(cmd *cobra.Command, args []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scene database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagDeleteScene != "" {
		deleteScene(store, flagDeleteScene)
		return
	}

	scenes, err := store.ListScenes()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error listing scenes: %v\n", err)
		os.Exit(1)
	}

	if len(scenes) == 0 {
		fmt.Println("No scenes saved yet.")
		fmt.Println()
		fmt.Println("Stamp shapes in 'sketch draw' and press Ctrl+S to save one.")
		return
	}

	// Calculate name column width
	maxNameLen := 5 // "Scene" header
	for _, s := range scenes {
		if len(s.Name) > maxNameLen {
			maxNameLen = len(s.Name)
		}
	}

	fmt.Printf("  %-*s  %-8s  %s\n", maxNameLen, "Scene", "Shapes", "Created")
	fmt.Printf("  %-*s  %-8s  %s\n", maxNameLen, "-----", "------", "-------")
	for _, s := range scenes {
		fmt.Printf("  %-*s  %-8d  %s\n", maxNameLen, s.Name, s.ShapeCount, s.CreatedAt.Format("2006-01-02 15:04"))
	}

	fmt.Println()
	fmt.Println("Run 'sketch render <scene>' to display one.")
}

func deleteScene(store *storage.Store, name string) {
	entry, err := store.SceneByName(name)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading scene: %v\n", err)
		os.Exit(1)
	}
	if entry == nil {
		fmt.Fprintf(os.Stderr, "Error: unknown scene %q\n", name)
		os.Exit(1)
	}
	if err := store.DeleteScene(entry.ID); err != nil {
		fmt.Fprintf(os.Stderr, "Error deleting scene: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Deleted %q.\n", name)
}

var galleryCmd = &cobra.Command{
	Use:   "gallery",
	Short: "Browse saved scenes interactively",
	Long: `Open the interactive scene gallery with a live preview pane.

Controls:
  Up/Down/J/K - Move between scenes
  D           - Delete the selected scene
  Esc/Q       - Quit`,
	Run: runGallery,
}

func runGallery(cmd *cobra.Command, args []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scene database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	width, height := 80, 24
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	if err := tui.RunGallery(store, width, height); err != nil {
		fmt.Fprintf(os.Stderr, "Error running gallery: %v\n", err)
		os.Exit(1)
	}
}
