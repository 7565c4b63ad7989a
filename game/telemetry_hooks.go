package game

import (
	"log/slog"

	"github.com/pthm-cable/treedee/sim"
	"github.com/pthm-cable/treedee/telemetry"
)

// flushTelemetry checks if the stats window should be flushed and writes it out.
func (g *Game) flushTelemetry() {
	frame := g.world.Frame()
	if !g.collector.ShouldFlush(frame) {
		return
	}

	stats := g.collector.Flush(frame, telemetry.Sample(g.world))
	perfStats := g.perf.Stats()

	if g.opts.LogStats {
		stats.LogStats()
		perfStats.LogStats()
	}

	if err := g.output.WriteTelemetry(stats); err != nil {
		slog.Error("failed to write telemetry", "error", err)
	}
	if err := g.output.WritePerf(perfStats, stats.WindowEndFrame); err != nil {
		slog.Error("failed to write perf", "error", err)
	}
}

// logEvent logs the events worth a line of their own.
func (g *Game) logEvent(e sim.Event) {
	switch e.Type {
	case sim.EventVictory:
		p := g.world.Player.Position()
		slog.Info("victory",
			"frame", e.Frame,
			"player_x", p.X,
			"player_y", p.Y,
			"player_z", p.Z,
			"balls", g.world.BallCount(),
		)
	case sim.EventThrow:
		slog.Debug("throw", "frame", e.Frame, "ball", e.Ball)
	case sim.EventStrike:
		slog.Debug("strike", "frame", e.Frame, "ball", e.Ball, "frog", e.Frog)
	}
}
