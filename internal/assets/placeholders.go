package assets

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"

	"escape-maze/internal/core"
	"escape-maze/pkg/rng"

	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// SampleMaze is a small closed maze with a goal, written next to the
// placeholder textures.
const SampleMaze = `+-------------+
|   |       | |
| + | +---+ | |
| |   |   |   |
| +---+ + +-+ |
|     | |   | |
|---+ | +-+ | |
|   | |   |   |
| + | +-+ +- -|
| |       |  g|
+-------------+
`

// Placeholder colors, one per wall symbol.
var wallPalette = map[core.Cell]color.RGBA{
	'-':       {R: 140, G: 145, B: 155, A: 255},
	'|':       {R: 120, G: 130, B: 140, A: 255},
	'+':       {R: 160, G: 120, B: 80, A: 255},
	core.Goal: {R: 255, G: 215, B: 0, A: 255},
}

var (
	mortarColor     = color.RGBA{R: 40, G: 40, B: 45, A: 255}
	splashBackdrop  = color.RGBA{R: 8, G: 56, B: 99, A: 255}
	splashTextColor = color.RGBA{R: 238, G: 238, B: 238, A: 255}
)

// weatheredBricks is the share of bricks drawn darker.
const weatheredBricks = 0.2

func weather(c color.RGBA) color.RGBA {
	dim := func(v uint8) uint8 { return uint8(int(v) * 3 / 4) }
	return color.RGBA{R: dim(c.R), G: dim(c.G), B: dim(c.B), A: c.A}
}

// BrickTexture draws a size×size brick pattern in base, with per-brick
// shading jitter and occasional weathered bricks from r.
func BrickTexture(size int, base color.RGBA, r *rng.RNG) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	brickH := max(size/8, 2)
	brickW := max(size/4, 2)
	for row := 0; row*brickH < size; row++ {
		offset := 0
		if row%2 == 1 {
			offset = brickW / 2
		}
		for col := -1; col*brickW < size; col++ {
			shade := color.RGBA{
				R: r.Jitter(base.R, 12),
				G: r.Jitter(base.G, 12),
				B: r.Jitter(base.B, 12),
				A: 255,
			}
			if r.Chance(weatheredBricks) {
				shade = weather(shade)
			}
			x0 := col*brickW + offset
			for y := row * brickH; y < min((row+1)*brickH, size); y++ {
				for x := max(x0, 0); x < min(x0+brickW, size); x++ {
					c := shade
					if y == row*brickH || x == x0 {
						c = mortarColor
					}
					img.SetRGBA(x, y, c)
				}
			}
		}
	}
	return img
}

// SplashImage renders a w×h title card with scaled-up bitmap text.
func SplashImage(w, h int, lines ...string) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	xdraw.Draw(img, img.Bounds(), &image.Uniform{C: splashBackdrop}, image.Point{}, xdraw.Src)

	face := basicfont.Face7x13
	lineH := face.Metrics().Height.Ceil()
	const scale = 4

	for i, line := range lines {
		adv := font.MeasureString(face, line).Ceil()
		if adv == 0 {
			continue
		}
		small := image.NewRGBA(image.Rect(0, 0, adv, lineH))
		d := &font.Drawer{
			Dst:  small,
			Src:  image.NewUniform(splashTextColor),
			Face: face,
			Dot:  fixed.P(0, face.Metrics().Ascent.Ceil()),
		}
		d.DrawString(line)

		dw, dh := adv*scale, lineH*scale
		x := (w - dw) / 2
		y := h/3 + i*(dh+lineH)
		dst := image.Rect(x, y, x+dw, y+dh)
		xdraw.NearestNeighbor.Scale(img, dst, small, small.Bounds(), xdraw.Over, nil)
	}
	return img
}

// GeneratePlaceholders writes a brick texture for every wall in m, a splash
// image of the given size and the sample maze to mazePath. Existing files
// are overwritten.
func GeneratePlaceholders(m Manifest, mazePath string, size core.Size, seed int64) error {
	if err := os.MkdirAll(m.Dir, 0o755); err != nil {
		return fmt.Errorf("create asset dir: %w", err)
	}
	r := rng.New(seed)
	for _, sym := range m.Symbols() {
		base, ok := wallPalette[sym]
		if !ok {
			base = color.RGBA{R: uint8(r.Intn(256)), G: uint8(r.Intn(256)), B: uint8(r.Intn(256)), A: 255}
		}
		if err := savePNG(m.Path(m.Walls[sym]), BrickTexture(core.TextureSize, base, r)); err != nil {
			return err
		}
	}
	splash := SplashImage(size.W, size.H, "ESCAPE MAZE", "PRESS SPACE")
	if err := savePNG(m.Path(m.Splash), splash); err != nil {
		return err
	}
	if mazePath == "" {
		return nil
	}
	if dir := filepath.Dir(mazePath); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create maze dir: %w", err)
		}
	}
	if err := os.WriteFile(mazePath, []byte(SampleMaze), 0o644); err != nil {
		return fmt.Errorf("write maze: %w", err)
	}
	return nil
}

func savePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return f.Close()
}
