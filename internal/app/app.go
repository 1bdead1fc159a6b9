//go:build ebiten

package app

import (
	"escape-maze/internal/render"
	"escape-maze/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
)

// Game adapts a Session to the ebiten.Game interface.
type Game struct {
	session *Session
	painter *render.Painter
	hud     *ui.HUD
	pads    []ebiten.GamepadID
}

// New constructs a Game for the provided session. The HUD is omitted when
// showHUD is false.
func New(s *Session, showHUD bool) *Game {
	surf := s.Surface()
	g := &Game{
		session: s,
		painter: render.NewPainter(surf.Width, surf.Height),
	}
	if showHUD {
		g.hud = ui.NewHUD()
	}
	return g
}

// Update samples input and advances the session by one tick.
func (g *Game) Update() error {
	in := pollKeyboard().Merge(g.pollGamepads())
	g.session.Tick(in)
	if g.session.State().Terminal() {
		return ebiten.Termination
	}
	return nil
}

// Draw renders the last frame the session produced.
func (g *Game) Draw(screen *ebiten.Image) {
	g.painter.Blit(screen, g.session.Surface(), 1)
	if g.hud != nil && g.session.State() == Playing {
		g.hud.Draw(screen, g.session.Status())
	}
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.painter.Size()
}
