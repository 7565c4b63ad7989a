package sim

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r2"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/pthm-cable/treedee/components"
	"github.com/pthm-cable/treedee/config"
	"github.com/pthm-cable/treedee/input"
)

const dt = 1.0 / 60

func newTestWorld(t *testing.T) (*World, *[]Event) {
	t.Helper()
	w, err := NewWorld(config.Default(), 1)
	require.NoError(t, err)

	events := &[]Event{}
	w.AddListener(ListenerFunc(func(e Event) { *events = append(*events, e) }))
	return w, events
}

func countEvents(events []Event, typ EventType) int {
	n := 0
	for _, e := range events {
		if e.Type == typ {
			n++
		}
	}
	return n
}

// placeFrog parks frog i at pos with no velocity.
func placeFrog(w *World, i int, pos r3.Vec) {
	body := w.FrogBody(i)
	body.Pos = pos
	body.Vel = r3.Vec{}
}

func TestNewWorldSpawnsFrogs(t *testing.T) {
	w, _ := newTestWorld(t)

	require.Equal(t, 3, w.FrogCount())
	assert.Equal(t, r3.Vec{X: 4, Y: 4, Z: -4}, w.FrogBody(0).Pos)
	assert.Equal(t, r3.Vec{X: 1, Y: 1, Z: 1}, w.FrogBody(0).Dim)

	var tints []components.Frog
	w.EachFrog(func(_ *components.Body, f *components.Frog) { tints = append(tints, *f) })
	require.Len(t, tints, 3)
	assert.Equal(t, components.Violet, tints[0].Tint)
	assert.Equal(t, components.Green, tints[1].Tint)
	assert.Equal(t, components.Blue, tints[2].Tint)
	assert.Equal(t, 2, tints[2].Index)
}

func TestNewWorldRejectsUnknownColor(t *testing.T) {
	cfg := config.Default()
	cfg.Frogs.Spawns[1].Color = "mauve"

	_, err := NewWorld(cfg, 1)
	assert.Error(t, err)
}

func TestVictory(t *testing.T) {
	t.Run("herded outside", func(t *testing.T) {
		w, events := newTestWorld(t)
		placeFrog(w, 0, r3.Vec{X: 150, Y: -10, Z: 0})
		placeFrog(w, 1, r3.Vec{X: 150.5, Y: -10, Z: 0.5})
		placeFrog(w, 2, r3.Vec{X: 150.2, Y: -10.3, Z: 0.2})

		require.True(t, w.FrogsHerded())
		w.Update(dt)

		assert.True(t, w.Player.IsVictorious())
		assert.Equal(t, 1, countEvents(*events, EventVictory))
	})

	t.Run("one frog still inside", func(t *testing.T) {
		w, _ := newTestWorld(t)
		placeFrog(w, 0, r3.Vec{X: 100.5, Y: -0.5, Z: 0})
		placeFrog(w, 1, r3.Vec{X: 100.6, Y: -0.4, Z: 0.1})
		placeFrog(w, 2, r3.Vec{X: 99.9, Y: 0, Z: 0})

		assert.False(t, w.FrogsHerded())
		w.Update(dt)
		assert.False(t, w.Player.IsVictorious())
	})

	t.Run("outside but apart", func(t *testing.T) {
		w, _ := newTestWorld(t)
		placeFrog(w, 0, r3.Vec{X: 150, Y: -10, Z: 0})
		placeFrog(w, 1, r3.Vec{X: 150.5, Y: -10, Z: 0.5})
		placeFrog(w, 2, r3.Vec{X: -150, Y: -10, Z: 0})

		assert.False(t, w.FrogsHerded())
	})

	t.Run("never revoked", func(t *testing.T) {
		w, events := newTestWorld(t)
		placeFrog(w, 0, r3.Vec{X: 150, Y: -10, Z: 0})
		placeFrog(w, 1, r3.Vec{X: 150.5, Y: -10, Z: 0.5})
		placeFrog(w, 2, r3.Vec{X: 150.2, Y: -10.3, Z: 0.2})
		w.Update(dt)
		require.True(t, w.Player.IsVictorious())

		for i := range w.FrogCount() {
			placeFrog(w, i, r3.Vec{X: float64(i * 10)})
		}
		for range 10 {
			w.Update(dt)
		}
		assert.True(t, w.Player.IsVictorious())
		assert.Equal(t, 1, countEvents(*events, EventVictory))
	})
}

func TestPlayerKicksFrog(t *testing.T) {
	w, events := newTestWorld(t)
	w.Player.SetPosition(r3.Vec{})
	w.Player.SetVelocity(r3.Vec{X: 8})
	placeFrog(w, 0, r3.Vec{X: 0.1})

	w.Update(dt)

	assert.Greater(t, w.FrogBody(0).Vel.X, 0.0)
	require.Equal(t, 1, countEvents(*events, EventKick))
	assert.Equal(t, 0, (*events)[0].Frog)
}

func TestBallStrikesFrog(t *testing.T) {
	w, events := newTestWorld(t)
	w.Player.SetPosition(r3.Vec{X: -20})
	placeFrog(w, 0, r3.Vec{})

	serial := w.spawnBall(r3.Vec{X: 0.5, Y: 0.5, Z: 0.5}, r3.Vec{X: 40})
	w.Update(dt)

	// The frog stepped before the strike, so it carries exactly a quarter.
	assert.InDelta(t, 10.0, w.FrogBody(0).Vel.X, 1e-12)

	require.Equal(t, 1, countEvents(*events, EventStrike))
	assert.Equal(t, serial, (*events)[0].Ball)

	w.EachBall(func(body *components.Body, ball *components.Ball) {
		assert.Equal(t, 1, ball.Strikes)
		assert.Less(t, body.Vel.X, 4.0)
		assert.Greater(t, body.Vel.X, 3.9)
	})
}

func TestStrike(t *testing.T) {
	ball := components.NewBody(r3.Vec{}, 0.25)
	ball.Vel = r3.Vec{X: 8, Y: -4, Z: 20}
	frog := components.NewBody(r3.Vec{}, 1)
	frog.Vel = r3.Vec{X: 1}

	Strike(&ball, &frog, 0.25, 0.1)

	assert.InDelta(t, 3.0, frog.Vel.X, 1e-12)
	assert.InDelta(t, -1.0, frog.Vel.Y, 1e-12)
	assert.InDelta(t, 5.0, frog.Vel.Z, 1e-12)
	assert.InDelta(t, 0.8, ball.Vel.X, 1e-12)
	assert.InDelta(t, -0.4, ball.Vel.Y, 1e-12)
	assert.InDelta(t, 2.0, ball.Vel.Z, 1e-12)
}

func TestBallRingEvictsOldest(t *testing.T) {
	w, events := newTestWorld(t)

	w.ThrowBall()
	first := w.balls.At(0)
	require.True(t, w.world.Alive(first))

	for range 50 {
		w.ThrowBall()
	}

	assert.Equal(t, 50, w.BallCount())
	assert.False(t, w.world.Alive(first))
	assert.Equal(t, 51, countEvents(*events, EventThrow))

	var serials []uint64
	w.EachBall(func(_ *components.Body, b *components.Ball) { serials = append(serials, b.Serial) })
	require.Len(t, serials, 50)
	assert.Equal(t, uint64(2), serials[0])
	assert.Equal(t, uint64(51), serials[49])
}

func TestThrowInheritsPlayerVelocity(t *testing.T) {
	w, _ := newTestWorld(t)
	w.Player.SetVelocity(r3.Vec{X: 3})

	w.ThrowBall()

	w.EachBall(func(body *components.Body, _ *components.Ball) {
		assert.Equal(t, w.Player.Cam.Position, body.Pos)
		want := r3.Add(r3.Vec{X: 3}, r3.Scale(20, w.Player.Cam.Front))
		assert.InDelta(t, want.X, body.Vel.X, 1e-9)
		assert.InDelta(t, want.Y, body.Vel.Y, 1e-9)
		assert.InDelta(t, want.Z, body.Vel.Z, 1e-9)
	})
}

func TestHandleInputGating(t *testing.T) {
	frame := input.Frame{MouseDelta: r2.Vec{X: 10}}
	frame.Down.Add(input.MoveForward)
	frame.Down.Add(input.Sprint)
	frame.Pressed.Add(input.Jump)
	frame.Pressed.Add(input.Throw)
	frame.Pressed.Add(input.ToggleStats)

	t.Run("airborne", func(t *testing.T) {
		w, _ := newTestWorld(t)
		w.Player.SetPosition(r3.Vec{Y: 5})
		yaw := w.Player.Cam.Yaw

		w.HandleInput(frame, dt)

		assert.Equal(t, r3.Vec{}, w.Player.Velocity())
		assert.NotEqual(t, yaw, w.Player.Cam.Yaw)
		assert.True(t, w.Player.Sprinting)
		assert.True(t, w.Player.ShowingStats)
		assert.Equal(t, 1, w.BallCount())
	})

	t.Run("grounded", func(t *testing.T) {
		w, _ := newTestWorld(t)
		w.Player.SetPosition(r3.Vec{})

		w.HandleInput(frame, dt)

		vel := w.Player.Velocity()
		assert.Equal(t, 10.0, vel.Y)
		assert.Greater(t, r3.Norm(r3.Vec{X: vel.X, Z: vel.Z}), 0.0)
		assert.Equal(t, 1, w.BallCount())
	})

	t.Run("victorious flies", func(t *testing.T) {
		w, _ := newTestWorld(t)
		w.Player.SetPosition(r3.Vec{Y: 5})
		w.Player.Win()

		w.HandleInput(frame, dt)

		assert.Equal(t, 10.0, w.Player.Velocity().Y)
		assert.Equal(t, 1, w.BallCount())
	})
}

func TestZeroDTLeavesWorldUnchanged(t *testing.T) {
	w, _ := newTestWorld(t)
	before := *w.FrogBody(0)

	w.Update(0)

	assert.Equal(t, before, *w.FrogBody(0))
	assert.Equal(t, uint64(1), w.Frame())
}

func TestSeedDeterminesWallStress(t *testing.T) {
	run := func(seed int64) r3.Vec {
		w, err := NewWorld(config.Default(), seed)
		require.NoError(t, err)
		w.Player.SetPosition(r3.Vec{X: 80})
		for range 30 {
			w.Update(dt)
		}
		return w.Terrain.WallPos
	}

	a, b := run(7), run(7)
	assert.Equal(t, a, b)
	assert.NotEqual(t, r3.Vec{}, a)
}
