// Package raycast marches rays through a maze grid in fixed world-unit steps.
package raycast

import (
	"math"

	"escape-maze/internal/core"
)

// Plotter receives the sample points of a ray that is recording its path.
type Plotter interface {
	Point(x, y int)
}

// Intersect describes where a ray stopped.
type Intersect struct {
	Distance float64
	Impact   core.Cell
	TexU     int
}

// Escaped reports whether the ray left the grid without hitting a wall.
func (it Intersect) Escaped() bool { return it.Impact == core.Empty }

// MaxSteps bounds the march: no ray can travel further than the grid's
// diagonal and still be inside it.
func MaxSteps(g *core.Grid, cellSize int) int {
	return int(math.Ceil(math.Hypot(float64(g.W*cellSize), float64(g.H*cellSize)))) + cellSize
}

// TextureU picks the horizontal texture coordinate from the in-cell offsets
// of a hit. The x offset wins when it lies strictly inside (1, cellSize-1),
// which means the ray crossed a north or south face; otherwise the y offset
// is used. The result lies in [0, TextureSize).
func TextureU(hitX, hitY, cellSize int) int {
	off := hitY
	if 1 < hitX && hitX < cellSize-1 {
		off = hitX
	}
	return off * core.TextureSize / cellSize
}

// Cast marches from origin along angle one world unit at a time and returns
// the first non-empty cell. Rays that leave the grid, or exhaust MaxSteps,
// return an escaped intersect. With recordPath set every empty sample is
// plotted.
func Cast(plot Plotter, g *core.Grid, origin core.Vec2, angle float64, cellSize int, recordPath bool) Intersect {
	cos, sin := math.Cos(angle), math.Sin(angle)
	limit := MaxSteps(g, cellSize)

	for step := 0; step <= limit; step++ {
		d := float64(step)
		fx := origin.X + d*cos
		fy := origin.Y + d*sin
		if fx < 0 || fy < 0 {
			return Intersect{Distance: d, Impact: core.Empty}
		}
		x, y := int(fx), int(fy)
		col, row := x/cellSize, y/cellSize
		if col >= g.W || row >= g.H {
			return Intersect{Distance: d, Impact: core.Empty}
		}

		if cell := g.At(col, row); cell != core.Empty {
			return Intersect{
				Distance: d,
				Impact:   cell,
				TexU:     TextureU(x%cellSize, y%cellSize, cellSize),
			}
		}
		if recordPath && plot != nil {
			plot.Point(x, y)
		}
	}
	return Intersect{Distance: float64(limit), Impact: core.Empty}
}
