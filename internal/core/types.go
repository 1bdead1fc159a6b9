package core

import "math"

// Cell is a single maze symbol.
type Cell rune

const (
	// Empty marks walkable open floor.
	Empty Cell = ' '
	// Goal marks the exit. It is walkable and hidden on the minimap.
	Goal Cell = 'g'
)

// Solid reports whether the cell stops rays and blocks movement.
func (c Cell) Solid() bool { return c != Empty && c != Goal }

// Walkable reports whether the player may stand in the cell.
func (c Cell) Walkable() bool { return !c.Solid() }

const (
	// CellSize is the number of world units spanned by one grid cell.
	CellSize = 100
	// TextureSize is the side of the normalized wall texture space.
	TextureSize = 128
)

// Size describes a width and height in pixels or cells.
type Size struct {
	W int
	H int
}

// Vec2 is a 2-D point or direction in world units.
type Vec2 struct {
	X, Y float64
}

// Add returns v+o.
func (v Vec2) Add(o Vec2) Vec2 { return Vec2{X: v.X + o.X, Y: v.Y + o.Y} }

// Scale returns v*k.
func (v Vec2) Scale(k float64) Vec2 { return Vec2{X: v.X * k, Y: v.Y * k} }

// Heading returns the unit vector for angle a in radians.
func Heading(a float64) Vec2 { return Vec2{X: math.Cos(a), Y: math.Sin(a)} }

// Quantize maps a world position to the nearest grid coordinate, rounding
// world/CellSize. Callers clamp when they need a valid index.
func Quantize(p Vec2) (col, row int) {
	return int(math.Round(p.X / CellSize)), int(math.Round(p.Y / CellSize))
}
