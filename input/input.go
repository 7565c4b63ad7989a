// Package input defines the logical actions the world responds to and the
// per-frame snapshot the platform layer fills in.
package input

import "gonum.org/v1/gonum/spatial/r2"

// Action is a logical control, independent of the physical key bound to it.
type Action uint16

const (
	MoveForward Action = 1 << iota
	MoveBack
	StrafeLeft
	StrafeRight
	Sprint
	Jump
	ZoomIn
	ZoomOut
	ToggleStats
	SuperLeap // test action
	Throw
	Pause
)

// Set is a bitset of actions.
type Set uint16

// Add includes a in the set.
func (s *Set) Add(a Action) { *s |= Set(a) }

// Has reports whether a is in the set.
func (s Set) Has(a Action) bool { return s&Set(a) != 0 }

// Frame is everything sampled from the input devices for one frame.
type Frame struct {
	MouseDelta r2.Vec // pixels moved since the previous frame
	Down       Set    // held this frame
	Pressed    Set    // went down this frame (edge triggered)
}

// IsDown reports whether a is held.
func (f Frame) IsDown(a Action) bool { return f.Down.Has(a) }

// IsPressed reports whether a went down this frame.
func (f Frame) IsPressed(a Action) bool { return f.Pressed.Has(a) }

// HasMouseMoved reports whether the mouse delta is non-zero.
func (f Frame) HasMouseMoved() bool { return f.MouseDelta != (r2.Vec{}) }

// Source produces one Frame per rendered frame.
type Source interface {
	Sample() Frame
}
