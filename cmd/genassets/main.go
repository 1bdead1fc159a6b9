package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"escape-maze/internal/assets"
	"escape-maze/internal/audio"
	"escape-maze/internal/core"
)

// theme is a short A minor arpeggio used as placeholder music.
var theme = []float64{220.00, 261.63, 329.63, 440.00, 329.63, 261.63, 196.00, 246.94}

func main() {
	dir := flag.String("dir", "assets", "directory to write textures, splash and music into")
	maze := flag.String("maze", "maze.txt", "path for the sample maze; empty skips it")
	width := flag.Int("width", 1300, "splash width")
	height := flag.Int("height", 900, "splash height")
	seed := flag.Int64("seed", 42, "seed for texture variation")
	noMusic := flag.Bool("no-music", false, "skip the placeholder music track")
	flag.Parse()

	fmt.Println("Escape Maze Placeholder Asset Generator")
	fmt.Println("=======================================")

	m := assets.DefaultManifest(*dir)
	if err := assets.GeneratePlaceholders(m, *maze, core.Size{W: *width, H: *height}, *seed); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	for _, sym := range m.Symbols() {
		fmt.Printf("  wall %q -> %s\n", sym, m.Path(m.Walls[sym]))
	}
	fmt.Printf("  splash   -> %s\n", m.Path(m.Splash))
	if *maze != "" {
		fmt.Printf("  maze     -> %s\n", *maze)
	}

	if !*noMusic {
		path := filepath.Join(*dir, "music.wav")
		if err := audio.WriteMelody(path, theme, 400*time.Millisecond); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("  music    -> %s\n", path)
	}

	fmt.Println()
	fmt.Println("Done! Run `go run -tags ebiten ./cmd/maze` to play.")
}
