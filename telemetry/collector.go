// Package telemetry collects per-window gameplay stats and frame timings and
// writes them as CSV.
package telemetry

import (
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/pthm-cable/treedee/sim"
)

// Collector accumulates world events within time windows and produces WindowStats.
type Collector struct {
	runID string

	windowDurationSec    float64
	windowDurationFrames uint64
	dt                   float64

	// Current window tracking
	windowStartFrame uint64

	// Event counters for current window
	throws  int
	strikes int
	kicks   int

	// Victory is sticky across windows.
	victoryFrame uint64
	victorious   bool
}

// NewCollector creates a new stats collector.
// windowDurationSec: how long each stats window lasts in simulation seconds
// dt: seconds per frame (used for frame-to-time conversion)
func NewCollector(runID string, windowDurationSec, dt float64) *Collector {
	framesPerWindow := uint64(1)
	if dt > 0 && windowDurationSec/dt >= 1 {
		framesPerWindow = uint64(windowDurationSec / dt)
	}

	return &Collector{
		runID:                runID,
		windowDurationSec:    windowDurationSec,
		windowDurationFrames: framesPerWindow,
		dt:                   dt,
	}
}

// OnEvent implements sim.Listener.
func (c *Collector) OnEvent(e sim.Event) {
	switch e.Type {
	case sim.EventThrow:
		c.throws++
	case sim.EventStrike:
		c.strikes++
	case sim.EventKick:
		c.kicks++
	case sim.EventVictory:
		c.victorious = true
		c.victoryFrame = e.Frame
	}
}

// Victory reports whether a victory event was seen, and in which frame.
func (c *Collector) Victory() (frame uint64, ok bool) {
	return c.victoryFrame, c.victorious
}

// ShouldFlush returns true if enough frames have passed to flush the window.
func (c *Collector) ShouldFlush(currentFrame uint64) bool {
	return currentFrame-c.windowStartFrame >= c.windowDurationFrames
}

// Snapshot is the world state sampled at the end of a window.
type Snapshot struct {
	Player       r3.Vec
	PlayerSpeed  float64
	Victorious   bool
	Balls        int
	Frogs        []r3.Vec // frog centres
	FrogsOutside int
}

// Sample reads a Snapshot from the world.
func Sample(w *sim.World) Snapshot {
	s := Snapshot{
		Player:      w.Player.Position(),
		PlayerSpeed: w.Player.HorizontalSpeed(),
		Victorious:  w.Player.IsVictorious(),
		Balls:       w.BallCount(),
		Frogs:       make([]r3.Vec, 0, w.FrogCount()),
	}
	kernel := w.Kernel()
	for i := range w.FrogCount() {
		body := w.FrogBody(i)
		s.Frogs = append(s.Frogs, body.Center())
		if kernel.IsOutsideBounds(body) {
			s.FrogsOutside++
		}
	}
	return s
}

// FrogSpread returns the distance of each frog from the frogs' centroid.
func FrogSpread(frogs []r3.Vec) []float64 {
	if len(frogs) == 0 {
		return nil
	}

	var centroid r3.Vec
	for _, f := range frogs {
		centroid = r3.Add(centroid, f)
	}
	centroid = r3.Scale(1/float64(len(frogs)), centroid)

	dists := make([]float64, len(frogs))
	for i, f := range frogs {
		dists[i] = r3.Norm(r3.Sub(f, centroid))
	}
	return dists
}

// Flush produces a WindowStats and resets counters for the next window.
func (c *Collector) Flush(currentFrame uint64, snap Snapshot) WindowStats {
	spread := ComputeSpreadStats(FrogSpread(snap.Frogs))

	stats := WindowStats{
		RunID:            c.runID,
		WindowStartFrame: c.windowStartFrame,
		WindowEndFrame:   currentFrame,
		SimTimeSec:       float64(currentFrame) * c.dt,

		Throws:  c.throws,
		Strikes: c.strikes,
		Kicks:   c.kicks,

		PlayerX:     snap.Player.X,
		PlayerY:     snap.Player.Y,
		PlayerZ:     snap.Player.Z,
		PlayerSpeed: snap.PlayerSpeed,
		Victorious:  snap.Victorious,
		Balls:       snap.Balls,

		FrogsOutside:   snap.FrogsOutside,
		FrogSpreadMean: spread.Mean,
		FrogSpreadStd:  spread.Std,
		FrogSpreadP10:  spread.P10,
		FrogSpreadP50:  spread.P50,
		FrogSpreadP90:  spread.P90,
	}

	// Reset for next window
	c.windowStartFrame = currentFrame
	c.throws = 0
	c.strikes = 0
	c.kicks = 0

	return stats
}

// WindowDurationFrames returns the number of frames per window.
func (c *Collector) WindowDurationFrames() uint64 {
	return c.windowDurationFrames
}
