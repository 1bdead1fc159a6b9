//go:build ebiten

package render

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// Painter uploads a Surface into a single ebiten image and draws it.
type Painter struct {
	w, h int
	img  *ebiten.Image
	buf  []byte
}

// NewPainter allocates a painter for surfaces of size w*h.
func NewPainter(w, h int) *Painter {
	p := &Painter{w: w, h: h, buf: make([]byte, 4*w*h)}
	p.img = ebiten.NewImage(w, h)
	return p
}

// Blit uploads the surface pixels and draws them onto dst at the given scale.
func (p *Painter) Blit(dst *ebiten.Image, s *Surface, scale float64) {
	if s.Width != p.w || s.Height != p.h {
		return
	}
	s.FillRGBA(p.buf)
	p.img.WritePixels(p.buf)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(scale, scale)
	dst.DrawImage(p.img, op)
}

// Size returns the dimensions of the underlying image.
func (p *Painter) Size() (int, int) { return p.w, p.h }
