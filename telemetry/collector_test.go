package telemetry

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/pthm-cable/treedee/config"
	"github.com/pthm-cable/treedee/sim"
)

func TestCollectorWindow(t *testing.T) {
	c := NewCollector("run", 1, 1.0/60)
	require.Equal(t, uint64(60), c.WindowDurationFrames())

	assert.False(t, c.ShouldFlush(59))
	assert.True(t, c.ShouldFlush(60))

	c.OnEvent(sim.Event{Type: sim.EventThrow})
	c.OnEvent(sim.Event{Type: sim.EventThrow})
	c.OnEvent(sim.Event{Type: sim.EventStrike})
	c.OnEvent(sim.Event{Type: sim.EventKick})

	stats := c.Flush(60, Snapshot{Player: r3.Vec{X: 1, Y: 2, Z: 3}, Balls: 2})
	assert.Equal(t, "run", stats.RunID)
	assert.Equal(t, 2, stats.Throws)
	assert.Equal(t, 1, stats.Strikes)
	assert.Equal(t, 1, stats.Kicks)
	assert.Equal(t, 2.0, stats.PlayerY)
	assert.InDelta(t, 1.0, stats.SimTimeSec, 1e-9)

	// Counters reset, and the next window starts where this one ended.
	assert.False(t, c.ShouldFlush(61))
	next := c.Flush(120, Snapshot{})
	assert.Zero(t, next.Throws)
	assert.Equal(t, uint64(60), next.WindowStartFrame)
}

func TestCollectorTinyWindow(t *testing.T) {
	c := NewCollector("run", 0, 1.0/60)
	assert.Equal(t, uint64(1), c.WindowDurationFrames())
}

func TestCollectorVictory(t *testing.T) {
	c := NewCollector("run", 10, 1.0/60)

	_, ok := c.Victory()
	assert.False(t, ok)

	c.OnEvent(sim.Event{Type: sim.EventVictory, Frame: 42})
	frame, ok := c.Victory()
	assert.True(t, ok)
	assert.Equal(t, uint64(42), frame)
}

func TestFrogSpread(t *testing.T) {
	assert.Nil(t, FrogSpread(nil))

	dists := FrogSpread([]r3.Vec{{X: -1}, {X: 1}})
	require.Len(t, dists, 2)
	assert.InDelta(t, 1.0, dists[0], 1e-12)
	assert.InDelta(t, 1.0, dists[1], 1e-12)
}

func TestSampleWorld(t *testing.T) {
	w, err := sim.NewWorld(config.Default(), 1)
	require.NoError(t, err)

	c := NewCollector("run", 1, 1.0/60)
	w.AddListener(c)
	w.ThrowBall()

	snap := Sample(w)
	assert.Len(t, snap.Frogs, 3)
	assert.Equal(t, 1, snap.Balls)
	assert.Zero(t, snap.FrogsOutside)
	assert.False(t, snap.Victorious)

	stats := c.Flush(w.Frame(), snap)
	assert.Equal(t, 1, stats.Throws)
	assert.Greater(t, stats.FrogSpreadMean, 0.0)
}
