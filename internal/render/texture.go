package render

import (
	"fmt"
	"image"
	"image/color"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"os"

	_ "golang.org/x/image/bmp"
)

// OutOfRange is returned by PixelColor for coordinates outside the texture.
const OutOfRange uint32 = 0xFF0000

// Texture is an immutable decoded image. Texels are packed once at
// construction so sampling in the render loop is a slice lookup.
type Texture struct {
	Width  int
	Height int
	texels []uint32
}

// NewTexture packs an already decoded image.
func NewTexture(img image.Image) *Texture {
	b := img.Bounds()
	t := &Texture{Width: b.Dx(), Height: b.Dy()}
	t.texels = make([]uint32, t.Width*t.Height)
	for y := 0; y < t.Height; y++ {
		for x := 0; x < t.Width; x++ {
			c := color.NRGBAModel.Convert(img.At(b.Min.X+x, b.Min.Y+y)).(color.NRGBA)
			t.texels[y*t.Width+x] = uint32(c.R)<<16 | uint32(c.G)<<8 | uint32(c.B)
		}
	}
	return t
}

// LoadTexture decodes a PNG, JPEG, GIF or BMP file.
func LoadTexture(path string) (*Texture, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open texture %s: %w", path, err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode texture %s: %w", path, err)
	}
	return NewTexture(img), nil
}

// PixelColor returns the texel at (x, y) packed as 0xRRGGBB, discarding
// alpha, or OutOfRange when (x, y) lies outside the texture.
func (t *Texture) PixelColor(x, y int) uint32 {
	if x < 0 || y < 0 || x >= t.Width || y >= t.Height {
		return OutOfRange
	}
	return t.texels[y*t.Width+x]
}
