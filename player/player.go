// Package player implements the first-person controller: look, locomotion,
// jumping, kicking frogs and throwing balls.
package player

import (
	"gonum.org/v1/gonum/spatial/r2"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/pthm-cable/treedee/camera"
	"github.com/pthm-cable/treedee/components"
	"github.com/pthm-cable/treedee/config"
	"github.com/pthm-cable/treedee/systems"
)

// Direction is a locomotion direction relative to the view.
type Direction uint8

const (
	Front Direction = iota
	Back
	Right
	Left
)

// Player is the mobile entity the camera rides on. Its position is the
// feet; the eye sits CamHeight above it.
type Player struct {
	Cam *camera.Camera

	body   components.Body
	kernel systems.Kernel
	cfg    config.PlayerConfig

	Sprinting    bool
	ShowingStats bool
	victorious   bool
}

// New creates a player standing at the origin.
func New(cfg *config.Config, kernel systems.Kernel) *Player {
	pc := cfg.Player
	p := &Player{
		Cam:    camera.New(pc),
		kernel: kernel,
		cfg:    pc,
		// Dimensions of an average human.
		body: components.Body{Dim: r3.Vec{X: pc.Width, Y: pc.CamHeight, Z: pc.Depth}},
	}
	return p
}

func (p *Player) Position() r3.Vec  { return p.body.Pos }
func (p *Player) Velocity() r3.Vec  { return p.body.Vel }
func (p *Player) Dimension() r3.Vec { return p.body.Dim }

// SetPosition moves the feet and carries the camera along.
func (p *Player) SetPosition(v r3.Vec) {
	p.body.Pos = v
	p.Cam.MoveTo(r3.Add(v, r3.Vec{Y: p.cfg.CamHeight}))
}

func (p *Player) SetVelocity(v r3.Vec) { p.body.Vel = v }

func (p *Player) IsSprinting() bool  { return p.Sprinting }
func (p *Player) IsVictorious() bool { return p.victorious }

// Win marks the player victorious. There is no way back.
func (p *Player) Win() { p.victorious = true }

// IsOnGround reports whether the player stands on the terrain.
func (p *Player) IsOnGround() bool { return p.kernel.IsOnGround(p) }

// IsInVoid reports whether the player has sunk to the end of the void.
func (p *Player) IsInVoid() bool { return p.kernel.Bounds.IsInVoid(p.body.Pos.Y) }

// VoidDepth is how dark the void shroud should be, in [0, 1].
func (p *Player) VoidDepth() float64 { return p.kernel.Bounds.VoidDepth(p.body.Pos.Y) }

// CanMove reports whether locomotion input applies: the player must be on
// the ground, or victorious and above the void.
func (p *Player) CanMove() bool {
	return p.victorious && !p.IsInVoid() || p.IsOnGround()
}

// HorizontalSpeed ignores vertical velocity.
func (p *Player) HorizontalSpeed() float64 {
	return r3.Norm(systems.Horizontal(p.body.Vel))
}

// Look turns the view by a mouse delta.
func (p *Player) Look(delta r2.Vec, dt float64) { p.Cam.Look(delta, dt) }

// Zoom nudges the field of view.
func (p *Player) Zoom(kind camera.ZoomKind, dt float64) { p.Cam.Zoom(kind, dt) }

// Accel pushes the player along the ground plane. Forward is faster than
// strafing or backing up; sprinting multiplies all of them.
func (p *Player) Accel(dir Direction, dt float64) {
	front := p.Cam.FrontHorizontal()
	right := p.Cam.RightHorizontal()

	coeff := dt
	if p.Sprinting {
		coeff *= p.cfg.SprintCoeff
	}

	vel := p.body.Vel
	switch dir {
	case Front:
		vel = r3.Add(vel, r3.Scale(coeff*p.cfg.WalkSpeed, front))
	case Back:
		vel = r3.Sub(vel, r3.Scale(coeff*p.cfg.StrafeSpeed, front))
	case Right:
		vel = r3.Add(vel, r3.Scale(coeff*p.cfg.StrafeSpeed, right))
	case Left:
		vel = r3.Sub(vel, r3.Scale(coeff*p.cfg.StrafeSpeed, right))
	}
	p.body.Vel = vel
}

// Jump adds an upward impulse. Nothing stops repeated jumps mid-air;
// callers gate it with CanMove.
func (p *Player) Jump() {
	p.body.Vel.Y += p.cfg.JumpSpeed
}

// SuperLeap is a test action: a burst of forward accels and stacked jumps.
// It respects sprint.
func (p *Player) SuperLeap(dt float64) {
	for i := 0; i < p.cfg.SuperLeapAccels; i++ {
		p.Accel(Front, dt)
	}
	for i := 0; i < p.cfg.SuperLeapJumps; i++ {
		p.Jump()
	}
}

// Kick hands a share of the player's velocity to m. Jumping while kicking
// pushes upwards too.
func (p *Player) Kick(m systems.Movable) {
	systems.Transfer(p, m, p.cfg.PushCoeff)
}

// Throw returns the spawn position and velocity for a new ball: from the
// eye, along the view, inheriting the player's own velocity.
func (p *Player) Throw() (pos, vel r3.Vec) {
	pos = p.Cam.Position
	vel = r3.Add(p.body.Vel, r3.Scale(p.cfg.ThrowSpeed, p.Cam.Front))
	return pos, vel
}

// Update is the only function that actually moves the player.
func (p *Player) Update(dt float64) {
	p.kernel.Step(p, dt)
}
