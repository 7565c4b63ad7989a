package input

import "gonum.org/v1/gonum/spatial/r2"

// Script is a deterministic Source for headless runs: it sprints forward
// while sweeping the view, jumps and throws on fixed periods.
type Script struct {
	ThrowEvery int     // frames between throws, 0 disables
	JumpEvery  int     // frames between jumps, 0 disables
	TurnRate   float64 // horizontal mouse pixels per frame

	frame int
}

// NewScript returns a script with the soak-test defaults.
func NewScript() *Script {
	return &Script{ThrowEvery: 45, JumpEvery: 240, TurnRate: 12}
}

// Sample implements Source.
func (s *Script) Sample() Frame {
	s.frame++

	var f Frame
	f.MouseDelta = r2.Vec{X: s.TurnRate}
	f.Down.Add(MoveForward)
	f.Down.Add(Sprint)

	if s.ThrowEvery > 0 && s.frame%s.ThrowEvery == 0 {
		f.Down.Add(Throw)
		f.Pressed.Add(Throw)
	}
	if s.JumpEvery > 0 && s.frame%s.JumpEvery == 0 {
		f.Down.Add(Jump)
		f.Pressed.Add(Jump)
	}
	return f
}

// Frames returns how many frames have been sampled.
func (s *Script) Frames() int { return s.frame }
