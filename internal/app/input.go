//go:build ebiten

package app

import (
	"escape-maze/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
)

func anyKey(keys ...ebiten.Key) bool {
	for _, k := range keys {
		if ebiten.IsKeyPressed(k) {
			return true
		}
	}
	return false
}

func pollKeyboard() core.Input {
	return core.Input{
		Forward:   anyKey(ebiten.KeyArrowUp, ebiten.KeyW),
		Back:      anyKey(ebiten.KeyArrowDown, ebiten.KeyS),
		TurnLeft:  anyKey(ebiten.KeyArrowLeft, ebiten.KeyA),
		TurnRight: anyKey(ebiten.KeyArrowRight, ebiten.KeyD),
		Confirm:   anyKey(ebiten.KeySpace, ebiten.KeyEnter),
		Quit:      anyKey(ebiten.KeyEscape),
		ToggleMap: anyKey(ebiten.KeyTab),
	}
}

// pollGamepads merges every connected pad that has a standard layout.
func (g *Game) pollGamepads() core.Input {
	g.pads = ebiten.AppendGamepadIDs(g.pads[:0])
	var in core.Input
	for _, id := range g.pads {
		if !ebiten.IsStandardGamepadLayoutAvailable(id) {
			continue
		}
		pressed := func(b ebiten.StandardGamepadButton) bool {
			return ebiten.IsStandardGamepadButtonPressed(id, b)
		}
		in = in.Merge(core.Input{
			Forward:   pressed(ebiten.StandardGamepadButtonLeftTop),
			Back:      pressed(ebiten.StandardGamepadButtonLeftBottom),
			TurnLeft:  pressed(ebiten.StandardGamepadButtonLeftLeft),
			TurnRight: pressed(ebiten.StandardGamepadButtonLeftRight),
			Confirm:   pressed(ebiten.StandardGamepadButtonRightBottom),
			Quit:      pressed(ebiten.StandardGamepadButtonCenterRight),
			ToggleMap: pressed(ebiten.StandardGamepadButtonCenterLeft),
		})
	}
	return in
}
