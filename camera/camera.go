// Package camera provides the first-person view: mouse look, a derived
// front/right basis and a narrow field-of-view zoom.
package camera

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/pthm-cable/treedee/config"
)

// WorldUp is the reference up direction.
var WorldUp = r3.Vec{Y: 1}

// ZoomKind selects the zoom direction.
type ZoomKind uint8

const (
	ZoomIn ZoomKind = iota
	ZoomOut
)

// Camera is a perspective eye oriented by yaw and pitch.
type Camera struct {
	// Position is the eye in world coordinates
	Position r3.Vec
	Target   r3.Vec
	Up       r3.Vec

	// Vertical field of view in degrees
	Fovy float64

	// Orientation in radians. Yaw is unbounded; trig wraps it.
	Yaw, Pitch float64

	// Unit basis derived from yaw and pitch
	Front, Right r3.Vec

	// Tuning
	LookSpeed float64
	MaxPitch  float64
	ZoomSpeed float64
	FOVMin    float64
	FOVMax    float64
}

// New creates a camera at eye height above the origin looking along +X.
func New(cfg config.PlayerConfig) *Camera {
	c := &Camera{
		Position:  r3.Vec{Y: cfg.CamHeight},
		Up:        WorldUp,
		Fovy:      cfg.FOV,
		Front:     r3.Vec{X: 1},
		Right:     r3.Vec{Z: 1},
		LookSpeed: cfg.LookSpeed,
		MaxPitch:  cfg.MaxPitch,
		ZoomSpeed: cfg.ZoomSpeed,
		FOVMin:    cfg.FOVMin,
		FOVMax:    cfg.FOVMax,
	}
	c.Target = r3.Add(c.Position, c.Front)
	return c
}

// Look turns the camera by a mouse delta in pixels.
func (c *Camera) Look(delta r2.Vec, dt float64) {
	// Don't break your neck!
	c.Pitch = clamp(c.Pitch-delta.Y*c.LookSpeed*dt, -c.MaxPitch, c.MaxPitch)
	c.Yaw += delta.X * c.LookSpeed * dt

	cosPitch := math.Cos(c.Pitch)
	c.Front = unit(r3.Vec{
		X: math.Cos(c.Yaw) * cosPitch,
		Y: math.Sin(c.Pitch),
		Z: math.Sin(c.Yaw) * cosPitch,
	})

	c.Right = unit(r3.Cross(c.Front, WorldUp))
	c.Up = unit(r3.Cross(c.Right, c.Front))
	c.Target = r3.Add(c.Position, c.Front)
}

// Zoom narrows or widens the field of view within its band.
func (c *Camera) Zoom(kind ZoomKind, dt float64) {
	switch kind {
	case ZoomIn:
		c.Fovy = math.Max(c.FOVMin, c.Fovy-c.ZoomSpeed*dt)
	case ZoomOut:
		c.Fovy = math.Min(c.FOVMax, c.Fovy+c.ZoomSpeed*dt)
	}
}

// MoveTo places the eye, keeping the current orientation.
func (c *Camera) MoveTo(eye r3.Vec) {
	c.Position = eye
	c.Target = r3.Add(eye, c.Front)
}

// FrontHorizontal is the front direction projected on the ground plane.
func (c *Camera) FrontHorizontal() r3.Vec {
	return unit(r3.Vec{X: c.Front.X, Z: c.Front.Z})
}

// RightHorizontal is the right direction projected on the ground plane.
func (c *Camera) RightHorizontal() r3.Vec {
	return unit(r3.Vec{X: c.Right.X, Z: c.Right.Z})
}

// unit normalizes v, leaving the zero vector unchanged.
func unit(v r3.Vec) r3.Vec {
	if r3.Norm(v) == 0 {
		return v
	}
	return r3.Unit(v)
}

func clamp(v, minVal, maxVal float64) float64 {
	if v < minVal {
		return minVal
	}
	if v > maxVal {
		return maxVal
	}
	return v
}
