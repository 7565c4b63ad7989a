package game

import (
	rl "github.com/gen2brain/raylib-go/raylib"
	"gonum.org/v1/gonum/spatial/r2"

	"github.com/pthm-cable/treedee/input"
)

// keyBinding maps a physical key to a logical action.
type keyBinding struct {
	key    int32
	action input.Action
}

var defaultBindings = []keyBinding{
	{rl.KeyW, input.MoveForward},
	{rl.KeyS, input.MoveBack},
	{rl.KeyA, input.StrafeLeft},
	{rl.KeyD, input.StrafeRight},
	{rl.KeyLeftShift, input.Sprint},
	{rl.KeySpace, input.Jump},
	{rl.KeyE, input.ZoomIn},
	{rl.KeyQ, input.ZoomOut},
	{rl.KeyTab, input.ToggleStats},
	{rl.KeyEnter, input.SuperLeap},
	{rl.KeyP, input.Pause},
}

// RaylibInput samples the keyboard and mouse through raylib.
type RaylibInput struct {
	bindings []keyBinding
}

// NewRaylibInput creates a sampler with the default key bindings.
func NewRaylibInput() *RaylibInput {
	return &RaylibInput{bindings: defaultBindings}
}

// Sample implements input.Source.
func (r *RaylibInput) Sample() input.Frame {
	var f input.Frame

	delta := rl.GetMouseDelta()
	f.MouseDelta = r2.Vec{X: float64(delta.X), Y: float64(delta.Y)}

	for _, b := range r.bindings {
		if rl.IsKeyDown(b.key) {
			f.Down.Add(b.action)
		}
		if rl.IsKeyPressed(b.key) {
			f.Pressed.Add(b.action)
		}
	}

	if rl.IsMouseButtonDown(rl.MouseButtonLeft) {
		f.Down.Add(input.Throw)
	}
	if rl.IsMouseButtonPressed(rl.MouseButtonLeft) {
		f.Pressed.Add(input.Throw)
	}
	return f
}
