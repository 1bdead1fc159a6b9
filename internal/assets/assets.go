// Package assets resolves and loads the images the renderer needs.
package assets

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"escape-maze/internal/core"
	"escape-maze/internal/render"
)

// ErrMissingTexture is returned when a manifest entry has no file on disk.
var ErrMissingTexture = errors.New("texture not found")

// Manifest names the image files, relative to Dir, used for the splash
// screen and for each wall symbol.
type Manifest struct {
	Dir    string
	Splash string
	Walls  map[core.Cell]string
}

// DefaultManifest returns the standard file layout under dir.
func DefaultManifest(dir string) Manifest {
	return Manifest{
		Dir:    dir,
		Splash: "start_screen.png",
		Walls: map[core.Cell]string{
			'-':       "wall1.png",
			'|':       "wall2.png",
			'+':       "wall4.png",
			core.Goal: "wall5.png",
		},
	}
}

// Path resolves a manifest file name against Dir.
func (m Manifest) Path(name string) string {
	return filepath.Join(m.Dir, name)
}

// Symbols returns the mapped wall symbols in a stable order.
func (m Manifest) Symbols() []core.Cell {
	out := make([]core.Cell, 0, len(m.Walls))
	for c := range m.Walls {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Bundle holds every decoded texture. It is built once at startup and
// shared read-only by the renderer.
type Bundle struct {
	Splash *render.Texture
	Walls  render.WallSet
}

// Load decodes every texture named in the manifest. Any failure aborts the
// load; there is no partial bundle.
func Load(m Manifest) (*Bundle, error) {
	splash, err := loadOne(m.Path(m.Splash))
	if err != nil {
		return nil, fmt.Errorf("splash: %w", err)
	}
	b := &Bundle{Splash: splash, Walls: make(render.WallSet, len(m.Walls))}
	for _, sym := range m.Symbols() {
		tex, err := loadOne(m.Path(m.Walls[sym]))
		if err != nil {
			return nil, fmt.Errorf("wall %q: %w", sym, err)
		}
		b.Walls[sym] = tex
	}
	return b, nil
}

func loadOne(path string) (*render.Texture, error) {
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", ErrMissingTexture, path)
	}
	return render.LoadTexture(path)
}
