package ui

import (
	"fmt"
	"time"
)

// Status is the game state shown in the HUD.
type Status struct {
	Remaining time.Duration
	FPS       int
	TopDown   bool
}

// Lines formats the status as HUD text, one entry per line.
func (s Status) Lines() []string {
	secs := int(s.Remaining.Round(time.Second) / time.Second)
	lines := []string{
		fmt.Sprintf("TIME %d:%02d", secs/60, secs%60),
		fmt.Sprintf("FPS  %d", s.FPS),
	}
	if s.TopDown {
		lines = append(lines, "MAP VIEW")
	}
	return lines
}
