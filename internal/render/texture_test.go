package render

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"golang.org/x/image/bmp"
)

func checker(w, h int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetNRGBA(x, y, color.NRGBA{R: uint8(10 * x), G: uint8(10 * y), B: 0xC0, A: 0x80})
		}
	}
	return img
}

func TestPixelColorPacksRGB(t *testing.T) {
	tex := NewTexture(checker(4, 3))
	if tex.Width != 4 || tex.Height != 3 {
		t.Fatalf("size = %dx%d", tex.Width, tex.Height)
	}
	if got, want := tex.PixelColor(2, 1), uint32(20<<16|10<<8|0xC0); got != want {
		t.Fatalf("PixelColor(2,1) = %06x, want %06x", got, want)
	}
}

func TestPixelColorOutOfRange(t *testing.T) {
	tex := NewTexture(checker(4, 3))
	for _, pt := range [][2]int{{4, 0}, {0, 3}, {-1, 0}, {0, -1}, {100, 100}} {
		if got := tex.PixelColor(pt[0], pt[1]); got != OutOfRange {
			t.Fatalf("PixelColor(%d,%d) = %06x, want sentinel", pt[0], pt[1], got)
		}
	}
}

func TestNewTextureHonorsBoundsOrigin(t *testing.T) {
	img := checker(6, 6).SubImage(image.Rect(2, 2, 5, 5))
	tex := NewTexture(img)
	if tex.Width != 3 || tex.Height != 3 {
		t.Fatalf("size = %dx%d, want 3x3", tex.Width, tex.Height)
	}
	if got, want := tex.PixelColor(0, 0), uint32(20<<16|20<<8|0xC0); got != want {
		t.Fatalf("PixelColor(0,0) = %06x, want %06x", got, want)
	}
}

func TestLoadTextureFormats(t *testing.T) {
	dir := t.TempDir()
	src := image.NewRGBA(image.Rect(0, 0, 2, 2))
	src.Set(1, 1, color.RGBA{R: 0x11, G: 0x22, B: 0x33, A: 0xFF})

	pngPath := filepath.Join(dir, "wall.png")
	f, err := os.Create(pngPath)
	if err != nil {
		t.Fatal(err)
	}
	if err := png.Encode(f, src); err != nil {
		t.Fatal(err)
	}
	f.Close()

	bmpPath := filepath.Join(dir, "wall.bmp")
	f, err = os.Create(bmpPath)
	if err != nil {
		t.Fatal(err)
	}
	if err := bmp.Encode(f, src); err != nil {
		t.Fatal(err)
	}
	f.Close()

	for _, path := range []string{pngPath, bmpPath} {
		tex, err := LoadTexture(path)
		if err != nil {
			t.Fatalf("LoadTexture(%s): %v", path, err)
		}
		if got := tex.PixelColor(1, 1); got != 0x112233 {
			t.Fatalf("%s: PixelColor(1,1) = %06x", path, got)
		}
	}
}

func TestLoadTextureErrors(t *testing.T) {
	dir := t.TempDir()
	if _, err := LoadTexture(filepath.Join(dir, "missing.png")); err == nil {
		t.Fatal("expected error for missing file")
	}
	junk := filepath.Join(dir, "junk.png")
	if err := os.WriteFile(junk, []byte("not an image"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadTexture(junk); err == nil {
		t.Fatal("expected decode error")
	}
}

func TestWallSetColorScalesToTexture(t *testing.T) {
	walls := WallSet{'#': NewTexture(checker(4, 4))}
	c, ok := walls.Color('#', 127, 64)
	if !ok {
		t.Fatal("mapped wall reported missing")
	}
	if want := uint32(30<<16 | 20<<8 | 0xC0); c != want {
		t.Fatalf("Color = %06x, want %06x", c, want)
	}
	if _, ok := walls.Color('X', 0, 0); ok {
		t.Fatal("unmapped symbol reported present")
	}
	if _, ok := walls.Color(' ', 0, 0); ok {
		t.Fatal("empty impact reported present")
	}
}
