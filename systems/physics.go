// Package systems contains the simulation kernels shared by every entity.
package systems

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/pthm-cable/treedee/config"
)

// Movable is anything with a position, velocity and bounding box.
type Movable interface {
	Position() r3.Vec
	Velocity() r3.Vec
	// Dimension is ordered forward, up, right.
	Dimension() r3.Vec

	SetPosition(r3.Vec)
	SetVelocity(r3.Vec)
}

// Bounds describes the square terrain centered on the origin and the void below it.
type Bounds struct {
	HalfWidth      float64
	VoidHeight     float64
	VoidTransition float64
}

// NewBounds builds bounds from the loaded config.
func NewBounds(cfg *config.Config) Bounds {
	return Bounds{
		HalfWidth:      cfg.Derived.HalfWidth,
		VoidHeight:     cfg.World.VoidHeight,
		VoidTransition: cfg.World.VoidTransition,
	}
}

// IsOutside reports whether pos lies beyond the terrain edge or below the floor.
func (b Bounds) IsOutside(pos r3.Vec) bool {
	if pos.Y < 0 {
		return true
	}
	return math.Abs(pos.X) > b.HalfWidth || math.Abs(pos.Z) > b.HalfWidth
}

// IsOnGround reports whether pos rests exactly on the floor inside the terrain.
func (b Bounds) IsOnGround(pos r3.Vec) bool {
	return !b.IsOutside(pos) && pos.Y == 0
}

// VoidEnd is the height at which the void fully resolves.
func (b Bounds) VoidEnd() float64 {
	return b.VoidHeight - b.VoidTransition
}

// IsInVoid reports whether height y is at or below the end of the void.
func (b Bounds) IsInVoid(y float64) bool {
	return y <= b.VoidEnd()
}

// VoidDepth returns how far y has sunk into the void transition, in [0, 1].
func (b Bounds) VoidDepth(y float64) float64 {
	return clamp01((b.VoidHeight - y) / b.VoidTransition)
}

// Kernel integrates gravity, drag and friction for any Movable.
type Kernel struct {
	Gravity       float64
	AirResistance float64
	Friction      float64
	// ReferenceDT is the frame time at which drag divides velocity by
	// exactly coeff*dt. Other frame times scale the divisor geometrically.
	ReferenceDT float64
	Bounds      Bounds
}

// NewKernel builds a kernel from the loaded config.
func NewKernel(cfg *config.Config) Kernel {
	return Kernel{
		Gravity:       cfg.Physics.Gravity,
		AirResistance: cfg.Physics.AirResistance,
		Friction:      cfg.Physics.Friction,
		ReferenceDT:   cfg.Derived.ReferenceDT,
		Bounds:        NewBounds(cfg),
	}
}

// divisor returns the per-frame drag divisor for coeff at frame time dt.
// It is 1 at dt=0 and coeff*dt at the reference frame time.
func (k Kernel) divisor(coeff, dt float64) float64 {
	return math.Pow(coeff*k.ReferenceDT, dt/k.ReferenceDT)
}

// ApplyForces updates velocity for one frame: gravity while airborne, drag
// always, friction while grounded.
func (k Kernel) ApplyForces(m Movable, dt float64) {
	if dt <= 0 {
		return
	}

	vel := m.Velocity()
	onGround := k.Bounds.IsOnGround(m.Position())

	if !onGround {
		vel.Y -= k.Gravity * dt
	}

	vel = r3.Scale(1/k.divisor(k.AirResistance, dt), vel)

	if onGround {
		vel = r3.Scale(1/k.divisor(k.Friction, dt), vel)
	}

	m.SetVelocity(vel)
}

// ApplyVel integrates position for one frame. Inside the terrain the floor
// stops the fall; outside it the entity keeps falling into the void.
func (k Kernel) ApplyVel(m Movable, dt float64) {
	if dt <= 0 {
		return
	}

	pos, vel := m.Position(), m.Velocity()

	pos.X += vel.X * dt
	pos.Z += vel.Z * dt

	// Bounds are tested with the new horizontal position and the old height.
	y := pos.Y + vel.Y*dt
	if !k.Bounds.IsOutside(pos) {
		y = math.Max(0, y)
	}
	pos.Y = y

	m.SetPosition(pos)
}

// Step applies forces then velocity, in that order.
func (k Kernel) Step(m Movable, dt float64) {
	k.ApplyForces(m, dt)
	k.ApplyVel(m, dt)
}

// IsOnGround reports whether m rests on the floor.
func (k Kernel) IsOnGround(m Movable) bool {
	return k.Bounds.IsOnGround(m.Position())
}

// IsOutsideBounds reports whether m is beyond the terrain or below the floor.
func (k Kernel) IsOutsideBounds(m Movable) bool {
	return k.Bounds.IsOutside(m.Position())
}

// Intersects reports whether the bounding boxes of a and b overlap on all
// three axes. Touching faces count as overlap.
func Intersects(a, b Movable) bool {
	minA, minB := a.Position(), b.Position()
	maxA, maxB := r3.Add(minA, a.Dimension()), r3.Add(minB, b.Dimension())

	return maxA.X >= minB.X && minA.X <= maxB.X &&
		maxA.Y >= minB.Y && minA.Y <= maxB.Y &&
		maxA.Z >= minB.Z && minA.Z <= maxB.Z
}

// Transfer adds share of from's velocity to to's velocity.
func Transfer(from, to Movable, share float64) {
	to.SetVelocity(r3.Add(to.Velocity(), r3.Scale(share, from.Velocity())))
}
