//go:build ebiten

package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/basicfont"
)

const (
	hudPadding    = 8
	hudLineHeight = 16
	hudMargin     = 10
)

// HUD renders a small status panel in the top-right corner of the view.
type HUD struct {
	face  text.Face
	pixel *ebiten.Image
}

// NewHUD constructs a HUD using the built-in bitmap font.
func NewHUD() *HUD {
	h := &HUD{face: text.NewGoXFace(basicfont.Face7x13)}
	h.pixel = ebiten.NewImage(1, 1)
	h.pixel.Fill(color.White)
	return h
}

// Draw paints the status panel onto screen.
func (h *HUD) Draw(screen *ebiten.Image, st Status) {
	if h == nil {
		return
	}
	lines := st.Lines()
	width := 0.0
	for _, line := range lines {
		if w, _ := text.Measure(line, h.face, hudLineHeight); w > width {
			width = w
		}
	}
	panelW := width + 2*hudPadding
	panelH := float64(len(lines)*hudLineHeight + 2*hudPadding)
	x := float64(screen.Bounds().Dx()) - panelW - hudMargin

	bg := &ebiten.DrawImageOptions{}
	bg.GeoM.Scale(panelW, panelH)
	bg.GeoM.Translate(x, hudMargin)
	bg.ColorScale.ScaleWithColor(color.RGBA{R: 16, G: 16, B: 20, A: 200})
	screen.DrawImage(h.pixel, bg)

	for i, line := range lines {
		op := &text.DrawOptions{}
		op.GeoM.Translate(x+hudPadding, float64(hudMargin+hudPadding+i*hudLineHeight))
		op.ColorScale.ScaleWithColor(color.White)
		text.Draw(screen, line, h.face, op)
	}
}
