package render

import "escape-maze/internal/core"

// MinimapLayout places the overhead map on screen.
type MinimapLayout struct {
	X, Y         int
	CellPixels   int
	MarkerRadius int
}

// DefaultMinimapLayout returns the standard top-left placement at 15 px/cell.
func DefaultMinimapLayout() MinimapLayout {
	return MinimapLayout{X: 10, Y: 5, CellPixels: 15, MarkerRadius: 3}
}

// DrawCell fills a size×size tile at (xo, yo) for wall cells. Empty and goal
// cells are skipped so the exit stays hidden.
func DrawCell(s *Surface, xo, yo, size int, cell core.Cell, color uint32) {
	if !cell.Solid() {
		return
	}
	s.SetCurrentColor(color)
	s.FillRect(xo, yo, size, size)
}

// MarkerCell returns the minimap cell that holds the player marker.
func MarkerCell(p core.Player, g *core.Grid) (col, row int) {
	col, row = core.Quantize(p.Pos)
	col = min(max(col, 0), g.W-1)
	row = min(max(row, 0), g.H-1)
	return col, row
}

func (c *Composer) drawMinimap(s *Surface, p core.Player, g *core.Grid) {
	m := c.Minimap
	s.SetCurrentColor(c.Palette.MinimapBackground)
	s.FillRect(m.X, m.Y, g.W*m.CellPixels, g.H*m.CellPixels)

	for row := 0; row < g.H; row++ {
		for col := 0; col < g.W; col++ {
			DrawCell(s, m.X+col*m.CellPixels, m.Y+row*m.CellPixels, m.CellPixels, g.At(col, row), c.Palette.MinimapWall)
		}
	}

	col, row := MarkerCell(p, g)
	s.SetCurrentColor(c.Palette.MinimapPlayer)
	s.DrawCircle(m.X+col*m.CellPixels, m.Y+row*m.CellPixels, m.MarkerRadius)
}
