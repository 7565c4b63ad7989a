package systems

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/pthm-cable/treedee/components"
	"github.com/pthm-cable/treedee/config"
)

const frame = 1.0 / 60

func testKernel(t *testing.T) Kernel {
	t.Helper()
	cfg, err := config.Load("")
	require.NoError(t, err)
	return NewKernel(cfg)
}

func body(pos, vel r3.Vec) *components.Body {
	b := components.NewBody(pos, 1)
	b.Vel = vel
	return &b
}

func TestBoundsIsOutside(t *testing.T) {
	b := Bounds{HalfWidth: 100, VoidHeight: -600, VoidTransition: 500}

	tests := []struct {
		name string
		pos  r3.Vec
		want bool
	}{
		{"origin", r3.Vec{}, false},
		{"on the edge", r3.Vec{X: 100, Z: -100}, false},
		{"past x edge", r3.Vec{X: 100.01}, true},
		{"past z edge", r3.Vec{Z: -101}, true},
		{"below floor", r3.Vec{Y: -0.001}, true},
		{"high above", r3.Vec{Y: 1000}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, b.IsOutside(tt.pos))
		})
	}
}

func TestBoundsIsOnGround(t *testing.T) {
	b := Bounds{HalfWidth: 100}

	assert.True(t, b.IsOnGround(r3.Vec{X: 3, Z: -7}))
	assert.False(t, b.IsOnGround(r3.Vec{Y: 0.1}))
	assert.False(t, b.IsOnGround(r3.Vec{X: 150}), "outside the terrain there is no ground")
}

func TestBoundsVoid(t *testing.T) {
	b := Bounds{HalfWidth: 100, VoidHeight: -600, VoidTransition: 500}

	assert.Equal(t, -1100.0, b.VoidEnd())
	assert.True(t, b.IsInVoid(-1100))
	assert.True(t, b.IsInVoid(-5000))
	assert.False(t, b.IsInVoid(-1099))

	tests := []struct {
		y, want float64
	}{
		{0, 0},
		{-600, 0},
		{-850, 0.5},
		{-1100, 1},
		{-9000, 1},
	}
	for _, tt := range tests {
		assert.InDelta(t, tt.want, b.VoidDepth(tt.y), 1e-9, "y=%v", tt.y)
	}
}

func TestApplyVelFloorClamp(t *testing.T) {
	k := testKernel(t)

	tests := []struct {
		name  string
		pos   r3.Vec
		vel   r3.Vec
		wantY float64
	}{
		{"inside clamps to floor", r3.Vec{}, r3.Vec{Y: -5}, 0},
		{"inside from above clamps", r3.Vec{Y: 0.01}, r3.Vec{Y: -60}, 0},
		{"inside rising", r3.Vec{}, r3.Vec{Y: 6}, 0.1},
		{"outside keeps falling", r3.Vec{X: 150}, r3.Vec{Y: -6}, -0.1},
		{"below floor keeps falling", r3.Vec{Y: -1}, r3.Vec{Y: -6}, -1.1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := body(tt.pos, tt.vel)
			k.ApplyVel(b, frame)
			assert.InDelta(t, tt.wantY, b.Pos.Y, 1e-9)
			if tt.wantY == 0 {
				assert.Equal(t, 0.0, b.Pos.Y, "floor clamp must be exact")
			}
		})
	}
}

func TestApplyVelHorizontalAlwaysIntegrates(t *testing.T) {
	k := testKernel(t)
	b := body(r3.Vec{X: 99.9}, r3.Vec{X: 60, Y: -60, Z: -30})

	k.ApplyVel(b, frame)

	assert.InDelta(t, 100.9, b.Pos.X, 1e-9)
	assert.InDelta(t, -0.5, b.Pos.Z, 1e-9)
	// The new horizontal position is past the edge, so there is no floor.
	assert.InDelta(t, -1.0, b.Pos.Y, 1e-9)
}

func TestApplyForcesGrounded(t *testing.T) {
	k := testKernel(t)
	b := body(r3.Vec{}, r3.Vec{X: 10, Y: 10})

	k.ApplyForces(b, frame)

	// No gravity on the ground; drag and friction both divide by coeff*dt.
	want := 10 / (60.5 * frame) / (70 * frame)
	assert.InDelta(t, want, b.Vel.X, 1e-9)
	assert.InDelta(t, want, b.Vel.Y, 1e-9)
}

func TestApplyForcesAirborne(t *testing.T) {
	k := testKernel(t)
	b := body(r3.Vec{Y: 5}, r3.Vec{X: 10})

	k.ApplyForces(b, frame)

	drag := 60.5 * frame
	assert.InDelta(t, 10/drag, b.Vel.X, 1e-9)
	assert.InDelta(t, -30*frame/drag, b.Vel.Y, 1e-9)
}

func TestApplyForcesZeroDT(t *testing.T) {
	k := testKernel(t)
	b := body(r3.Vec{Y: 5}, r3.Vec{X: 10, Y: 3})

	k.ApplyForces(b, 0)
	k.ApplyVel(b, 0)

	assert.Equal(t, r3.Vec{X: 10, Y: 3}, b.Vel)
	assert.Equal(t, r3.Vec{Y: 5}, b.Pos)
}

func TestApplyForcesSmallDTStaysBounded(t *testing.T) {
	k := testKernel(t)

	for _, dt := range []float64{1e-6, 1.0 / 1000, 1.0 / 240, 1.0 / 120, frame, 1.0 / 30} {
		b := body(r3.Vec{Y: 50}, r3.Vec{X: 10, Z: -10})
		before := r3.Norm(Horizontal(b.Vel))

		k.ApplyForces(b, dt)

		after := r3.Norm(Horizontal(b.Vel))
		assert.False(t, math.IsInf(after, 0) || math.IsNaN(after), "dt=%v", dt)
		assert.LessOrEqual(t, after, before, "drag must not accelerate, dt=%v", dt)
	}
}

func TestJumpFrame(t *testing.T) {
	k := testKernel(t)
	b := body(r3.Vec{}, r3.Vec{})

	b.Vel.Y += 10
	k.Step(b, frame)

	assert.Greater(t, b.Vel.Y, 0.0)
	assert.Less(t, b.Vel.Y, 10.0)
	assert.Greater(t, b.Pos.Y, 0.0)
	assert.InDelta(t, b.Vel.Y*frame, b.Pos.Y, 1e-12)
}

func TestFallingSettlesOnFloor(t *testing.T) {
	k := testKernel(t)
	b := body(r3.Vec{X: 4, Y: 4, Z: -4}, r3.Vec{})

	for i := 0; i < 600; i++ {
		k.Step(b, frame)
		require.GreaterOrEqual(t, b.Pos.Y, 0.0)
	}

	assert.True(t, k.IsOnGround(b))
	assert.Equal(t, 0.0, b.Pos.Y)
}

func TestIntersects(t *testing.T) {
	tests := []struct {
		name string
		a, b r3.Vec
		want bool
	}{
		{"same place", r3.Vec{}, r3.Vec{}, true},
		{"partial overlap", r3.Vec{}, r3.Vec{X: 0.5, Y: 0.5, Z: 0.5}, true},
		{"touching faces", r3.Vec{}, r3.Vec{X: 1}, true},
		{"touching corner", r3.Vec{}, r3.Vec{X: 1, Y: 1, Z: 1}, true},
		{"gap on x", r3.Vec{}, r3.Vec{X: 1.01}, false},
		{"gap on y", r3.Vec{}, r3.Vec{Y: -1.5}, false},
		{"gap on z only", r3.Vec{X: 0.2, Y: 0.2}, r3.Vec{Z: 3}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, b := body(tt.a, r3.Vec{}), body(tt.b, r3.Vec{})
			assert.Equal(t, tt.want, Intersects(a, b))
			assert.Equal(t, Intersects(a, b), Intersects(b, a), "intersection must be symmetric")
		})
	}
}

func TestIntersectsMixedSizes(t *testing.T) {
	big := body(r3.Vec{}, r3.Vec{})
	small := &components.Body{Pos: r3.Vec{X: 0.4, Y: 0.4, Z: 0.4}, Dim: r3.Vec{X: 0.1, Y: 0.1, Z: 0.1}}

	assert.True(t, Intersects(big, small))
	assert.True(t, Intersects(small, big))
}

func TestTransfer(t *testing.T) {
	from := body(r3.Vec{}, r3.Vec{X: 8, Y: -4, Z: 2})
	to := body(r3.Vec{}, r3.Vec{X: 1})

	Transfer(from, to, 0.25)

	assert.Equal(t, r3.Vec{X: 3, Y: -1, Z: 0.5}, to.Vel)
	assert.Equal(t, r3.Vec{X: 8, Y: -4, Z: 2}, from.Vel)
}
