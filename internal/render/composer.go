package render

import (
	"math"

	"escape-maze/internal/core"
	"escape-maze/internal/raycast"
)

const (
	// Projection calibrates apparent wall height: a wall at distance d
	// spans (screenHeight/d)*Projection pixels.
	Projection = 70.0
	// MinDistance keeps the slab height finite for grazing rays.
	MinDistance = 1e-3
)

// Palette holds the flat colors used by the composer.
type Palette struct {
	Sky               uint32
	Floor             uint32
	DefaultWall       uint32
	MinimapBackground uint32
	MinimapWall       uint32
	MinimapPlayer     uint32
	Ray               uint32
}

// DefaultPalette returns the standard colors.
func DefaultPalette() Palette {
	return Palette{
		Sky:               0x083863,
		Floor:             0x443C33,
		DefaultWall:       0x805E3C,
		MinimapBackground: 0x202020,
		MinimapWall:       0xEEEEEE,
		MinimapPlayer:     0xFF0000,
		Ray:               0xFFFFFF,
	}
}

// Composer draws the first-person view, the minimap and the top-down debug
// view onto a Surface.
type Composer struct {
	Walls    WallSet
	Palette  Palette
	Minimap  MinimapLayout
	CellSize int

	zbuf []float64
}

// NewComposer constructs a composer for the given wall textures.
func NewComposer(walls WallSet) *Composer {
	return &Composer{
		Walls:    walls,
		Palette:  DefaultPalette(),
		Minimap:  DefaultMinimapLayout(),
		CellSize: core.CellSize,
	}
}

// ZBuffer returns the corrected wall distance recorded for each column of the
// last rendered frame. Columns not yet drawn hold +Inf.
func (c *Composer) ZBuffer() []float64 { return c.zbuf }

func (c *Composer) resetZBuffer(w int) {
	if len(c.zbuf) != w {
		c.zbuf = make([]float64, w)
	}
	inf := math.Inf(1)
	for i := range c.zbuf {
		c.zbuf[i] = inf
	}
}

// Slab is the vertical extent of one wall column. Top and Bottom are not
// clipped to the screen.
type Slab struct {
	Top    int
	Bottom int
}

// ProjectSlab converts a fish-eye corrected distance into a screen slab
// centered on the horizon.
func ProjectSlab(screenHeight int, distance float64) Slab {
	if !(distance > MinDistance) {
		distance = MinDistance
	}
	half := float64(screenHeight) / 2
	height := float64(screenHeight) / distance * Projection
	return Slab{
		Top:    int(half - height/2),
		Bottom: int(half + height/2),
	}
}

// RayAngle returns the angle of column i out of w across the player's view.
func RayAngle(p core.Player, i, w int) float64 {
	return p.Angle - p.FOV/2 + p.FOV*(float64(i)/float64(w))
}

// Render draws sky, floor, one textured slab per column and the minimap.
func (c *Composer) Render(s *Surface, p core.Player, scene *core.Scene) {
	w, h := s.Width, s.Height
	c.resetZBuffer(w)

	s.SetCurrentColor(c.Palette.Sky)
	s.FillRect(0, 0, w, h/2)
	s.SetCurrentColor(c.Palette.Floor)
	s.FillRect(0, h/2, w, h-h/2)

	for i := 0; i < w; i++ {
		angle := RayAngle(p, i, w)
		hit := raycast.Cast(s, scene.Grid, p.Pos, angle, c.CellSize, false)

		dist := hit.Distance * math.Cos(angle-p.Angle)
		if !(dist > MinDistance) {
			dist = MinDistance
		}
		c.zbuf[i] = dist
		c.drawSlab(s, i, ProjectSlab(h, dist), hit)
	}

	c.drawMinimap(s, p, scene.Grid)
}

func (c *Composer) drawSlab(s *Surface, col int, slab Slab, hit raycast.Intersect) {
	span := float64(slab.Bottom - slab.Top)
	if span <= 0 {
		return
	}
	y0, y1 := max(slab.Top, 0), min(slab.Bottom, s.Height)
	for y := y0; y < y1; y++ {
		v := int(math.Round(float64(y-slab.Top) / span * core.TextureSize))
		if v > core.TextureSize-1 {
			v = core.TextureSize - 1
		}
		color, ok := c.Walls.Color(hit.Impact, hit.TexU, v)
		if !ok {
			color = c.Palette.DefaultWall
		}
		s.SetCurrentColor(color)
		s.Point(col, y)
	}
}

// RenderTopDown clears the surface and draws the maze with the marched path
// of every view ray, for inspecting the caster. World units map to pixels at
// 1:1, shrunk when needed so the whole grid fits the surface.
func (c *Composer) RenderTopDown(s *Surface, p core.Player, scene *core.Scene) {
	g := scene.Grid
	s.Clear()

	k := TopDownScale(s, g, c.CellSize)
	at := func(v float64) int { return int(v * k) }

	s.SetCurrentColor(c.Palette.MinimapWall)
	for row := 0; row < g.H; row++ {
		for col := 0; col < g.W; col++ {
			if !g.At(col, row).Solid() {
				continue
			}
			x0, y0 := at(float64(col*c.CellSize)), at(float64(row*c.CellSize))
			x1, y1 := at(float64((col+1)*c.CellSize)), at(float64((row+1)*c.CellSize))
			s.FillRect(x0, y0, x1-x0, y1-y0)
		}
	}

	s.SetCurrentColor(c.Palette.Ray)
	plot := scaledPlotter{s: s, k: k}
	for i := 0; i < s.Width; i++ {
		raycast.Cast(plot, g, p.Pos, RayAngle(p, i, s.Width), c.CellSize, true)
	}

	s.SetCurrentColor(c.Palette.MinimapPlayer)
	s.DrawCircle(at(p.Pos.X), at(p.Pos.Y), 5)
}

// TopDownScale returns the pixels per world unit that fit g on s, at most 1.
func TopDownScale(s *Surface, g *core.Grid, cellSize int) float64 {
	worldW, worldH := float64(g.W*cellSize), float64(g.H*cellSize)
	return min(1, float64(s.Width)/worldW, float64(s.Height)/worldH)
}

type scaledPlotter struct {
	s *Surface
	k float64
}

func (p scaledPlotter) Point(x, y int) {
	p.s.Point(int(float64(x)*p.k), int(float64(y)*p.k))
}
