package core

import "math"

const (
	// MoveSpeed is the distance covered per tick while walking.
	MoveSpeed = 7.0
	// TurnSpeed is the heading change per tick while turning.
	TurnSpeed = math.Pi / 20
)

// Input is the set of discrete controls sampled once per tick.
type Input struct {
	Forward   bool
	Back      bool
	TurnLeft  bool
	TurnRight bool
	Confirm   bool
	Quit      bool
	ToggleMap bool
}

// Merge combines two input sources, e.g. keyboard and gamepad.
func (in Input) Merge(o Input) Input {
	return Input{
		Forward:   in.Forward || o.Forward,
		Back:      in.Back || o.Back,
		TurnLeft:  in.TurnLeft || o.TurnLeft,
		TurnRight: in.TurnRight || o.TurnRight,
		Confirm:   in.Confirm || o.Confirm,
		Quit:      in.Quit || o.Quit,
		ToggleMap: in.ToggleMap || o.ToggleMap,
	}
}

// Player is the viewer's position, heading and field of view.
type Player struct {
	Pos   Vec2
	Angle float64
	FOV   float64
}

// NewPlayer returns the player at the standard starting pose.
func NewPlayer() Player {
	return Player{
		Pos:   Vec2{X: 150, Y: 150},
		Angle: math.Pi / 4,
		FOV:   math.Pi / 3,
	}
}

// Apply moves and turns the player for one tick. Movement uses the heading
// from before this tick's turn. Each axis of a move is kept only if the
// destination is walkable in g, so the player slides along walls. A nil grid
// disables collision.
func (p *Player) Apply(in Input, g *Grid) {
	dir := Heading(p.Angle)
	if in.TurnLeft {
		p.Angle -= TurnSpeed
	}
	if in.TurnRight {
		p.Angle += TurnSpeed
	}
	if in.Forward {
		p.move(dir.Scale(MoveSpeed), g)
	}
	if in.Back {
		p.move(dir.Scale(-MoveSpeed), g)
	}
}

func (p *Player) move(delta Vec2, g *Grid) {
	if g == nil {
		p.Pos = p.Pos.Add(delta)
		return
	}
	if walkable(g, p.Pos.X+delta.X, p.Pos.Y) {
		p.Pos.X += delta.X
	}
	if walkable(g, p.Pos.X, p.Pos.Y+delta.Y) {
		p.Pos.Y += delta.Y
	}
}

func walkable(g *Grid, x, y float64) bool {
	if x < 0 || y < 0 {
		return false
	}
	col, row := int(x)/CellSize, int(y)/CellSize
	if !g.InBounds(col, row) {
		return false
	}
	return g.At(col, row).Walkable()
}
