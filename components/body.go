package components

import "gonum.org/v1/gonum/spatial/r3"

// Body holds the kinematic state of a mobile entity.
// Its bounding box spans [Pos, Pos+Dim].
type Body struct {
	Pos r3.Vec // meters, ground plane at Y=0
	Vel r3.Vec // meters per second
	Dim r3.Vec
}

// NewBody returns a body at rest with a cubic bounding box of the given edge.
func NewBody(pos r3.Vec, size float64) Body {
	return Body{Pos: pos, Dim: r3.Vec{X: size, Y: size, Z: size}}
}

func (b *Body) Position() r3.Vec  { return b.Pos }
func (b *Body) Velocity() r3.Vec  { return b.Vel }
func (b *Body) Dimension() r3.Vec { return b.Dim }

func (b *Body) SetPosition(v r3.Vec) { b.Pos = v }
func (b *Body) SetVelocity(v r3.Vec) { b.Vel = v }

// Center returns the middle of the bounding box.
func (b *Body) Center() r3.Vec {
	return r3.Add(b.Pos, r3.Scale(0.5, b.Dim))
}
