package core

// Scene couples the maze with the location of its goal cell.
type Scene struct {
	Grid    *Grid
	GoalRow int
	GoalCol int
	HasGoal bool
}

// NewScene locates the goal marker in g. When several markers exist the
// last one in row-major order wins.
func NewScene(g *Grid) *Scene {
	s := &Scene{Grid: g}
	s.GoalRow, s.GoalCol, s.HasGoal = g.Find(Goal)
	return s
}

// Reached reports whether the player's quantized cell is the goal cell.
func (s *Scene) Reached(p Player) bool {
	if s == nil || !s.HasGoal {
		return false
	}
	col, row := Quantize(p.Pos)
	return col == s.GoalCol && row == s.GoalRow
}
